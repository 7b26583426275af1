package utils

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"testing"

	"github.com/stretchr/testify/assert"
)

func sign(orderID, paymentID, secret string) string {
	h := hmac.New(sha256.New, []byte(secret))
	h.Write([]byte(orderID + "|" + paymentID))
	return hex.EncodeToString(h.Sum(nil))
}

func TestRazorpaySignatureValid(t *testing.T) {
	const secret = "test_secret"
	orderID := "order_Nxyz123"
	paymentID := "pay_Nabc456"
	signature := sign(orderID, paymentID, secret)

	assert.True(t, RazorpaySignatureValid(orderID, paymentID, signature, secret))

	t.Run("tampered payment id fails", func(t *testing.T) {
		assert.False(t, RazorpaySignatureValid(orderID, "pay_other", signature, secret))
	})

	t.Run("tampered signature fails", func(t *testing.T) {
		assert.False(t, RazorpaySignatureValid(orderID, paymentID, signature[:len(signature)-1]+"0", secret))
	})

	t.Run("wrong secret fails", func(t *testing.T) {
		assert.False(t, RazorpaySignatureValid(orderID, paymentID, signature, "other_secret"))
	})

	t.Run("empty signature fails", func(t *testing.T) {
		assert.False(t, RazorpaySignatureValid(orderID, paymentID, "", secret))
	})
}

func TestPaiseConversion(t *testing.T) {
	assert.Equal(t, int64(45000), RupeesToPaise(450))
	assert.Equal(t, int64(8050), RupeesToPaise(80.50))
	assert.Equal(t, int64(10), RupeesToPaise(0.099999)) // rounds, never truncates
	assert.InDelta(t, 450.0, PaiseToRupees(45000), 0.001)
	assert.InDelta(t, 80.50, PaiseToRupees(8050), 0.001)
}
