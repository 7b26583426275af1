package utils

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"math"
)

// RazorpaySignatureValid recomputes the expected HMAC-SHA256 signature over
// "orderID|paymentID" with the key secret and compares it in constant time.
// This is the sole trust boundary for accepting a payment.
func RazorpaySignatureValid(orderID, paymentID, signature, secret string) bool {
	h := hmac.New(sha256.New, []byte(secret))
	h.Write([]byte(orderID + "|" + paymentID))
	expected := hex.EncodeToString(h.Sum(nil))
	return hmac.Equal([]byte(expected), []byte(signature))
}

// RupeesToPaise converts a rupee amount to the gateway's minor unit.
func RupeesToPaise(amount float64) int64 {
	return int64(math.Round(amount * 100))
}

// PaiseToRupees converts a gateway minor-unit amount back to rupees.
func PaiseToRupees(paise int64) float64 {
	return float64(paise) / 100
}
