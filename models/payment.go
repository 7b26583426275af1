package models

import (
	"time"
)

// Payment record statuses
const (
	PaymentRecordPaid   = "paid"
	PaymentRecordFailed = "failed"
)

// Payment is the record of a gateway capture attempt. A row with status
// "paid" exists only after the gateway signature verified; failed attempts
// are kept for audit and never influence order state.
type Payment struct {
	ID                uint      `json:"id" gorm:"primaryKey"`
	UserID            uint      `json:"user_id"`
	OrderID           *uint     `json:"order_id,omitempty"`
	RazorpayOrderID   string    `json:"razorpay_order_id"`
	RazorpayPaymentID string    `json:"razorpay_payment_id"`
	RazorpaySignature string    `json:"-"`
	Amount            float64   `json:"amount"` // rupees, converted back from paise
	Status            string    `json:"status"` // paid, failed
	FailureReason     string    `json:"failure_reason,omitempty"`
	CreatedAt         time.Time `json:"created_at"`
	UpdatedAt         time.Time `json:"updated_at"`
}
