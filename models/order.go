package models

import (
	"time"
)

// Order status constants
const (
	OrderStatusProcessing = "Processing"
	OrderStatusShipped    = "Shipped"
	OrderStatusDelivered  = "Delivered"
	OrderStatusCancelled  = "Cancelled"
)

// Payment status constants
const (
	PaymentStatusPending = "Pending"
	PaymentStatusPaid    = "Paid"
	PaymentStatusFailed  = "Failed"
)

// Payment methods
const (
	PaymentMethodCOD    = "COD"
	PaymentMethodOnline = "Online"
)

// ValidOrderStatuses lists every status the state machine knows about.
var ValidOrderStatuses = []string{
	OrderStatusProcessing,
	OrderStatusShipped,
	OrderStatusDelivered,
	OrderStatusCancelled,
}

// orderTransitions is the forward-only transition table. Cancelled is
// reachable from any non-terminal state; Delivered and Cancelled are terminal.
var orderTransitions = map[string][]string{
	OrderStatusProcessing: {OrderStatusShipped, OrderStatusDelivered, OrderStatusCancelled},
	OrderStatusShipped:    {OrderStatusDelivered, OrderStatusCancelled},
	OrderStatusDelivered:  {},
	OrderStatusCancelled:  {},
}

// IsValidOrderStatus reports whether s names a known order status.
func IsValidOrderStatus(s string) bool {
	for _, v := range ValidOrderStatuses {
		if v == s {
			return true
		}
	}
	return false
}

// CanTransition reports whether an order may move from one status to another.
// Backward moves (e.g. Delivered back to Processing) are never allowed.
func CanTransition(from, to string) bool {
	for _, next := range orderTransitions[from] {
		if next == to {
			return true
		}
	}
	return false
}

// ValidTransitions returns the statuses an order in the given status may
// move to. Terminal statuses return an empty slice.
func ValidTransitions(from string) []string {
	return orderTransitions[from]
}

// ShippingAddress is snapshotted onto the order at creation time and
// never updated afterwards.
type ShippingAddress struct {
	Name       string `json:"name"`
	Phone      string `json:"phone"`
	Line1      string `json:"line1"`
	Line2      string `json:"line2"`
	City       string `json:"city"`
	State      string `json:"state"`
	Country    string `json:"country"`
	PostalCode string `json:"postal_code"`
}

type Order struct {
	ID     uint `gorm:"primaryKey" json:"id"`
	UserID uint `json:"user_id"`
	User   User `json:"user" gorm:"foreignKey:UserID"`

	OrderItems []OrderItem `json:"order_items" gorm:"foreignKey:OrderID"`
	ItemsPrice float64     `json:"items_price"`

	CouponCode     string  `json:"coupon_code,omitempty"`
	CouponDiscount float64 `json:"coupon_discount,omitempty"`
	TotalPrice     float64 `json:"total_price"`

	PaymentMethod     string `json:"payment_method"` // COD or Online
	PaymentStatus     string `json:"payment_status"`
	RazorpayOrderID   string `json:"razorpay_order_id,omitempty"`
	RazorpayPaymentID string `json:"razorpay_payment_id,omitempty"`

	Status          string          `json:"status"`
	ShippingAddress ShippingAddress `json:"shipping_address" gorm:"embedded;embeddedPrefix:ship_"`

	ShipmentID     string          `json:"shipment_id,omitempty"`
	TrackingID     string          `json:"tracking_id,omitempty"` // AWB code, assigned at most once
	CourierName    string          `json:"courier_name,omitempty"`
	ShipmentStatus string          `json:"shipment_status,omitempty"`
	TrackingEvents []TrackingEvent `json:"tracking_history" gorm:"foreignKey:OrderID"`

	DeliveredAt *time.Time `json:"delivered_at,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}

// OrderItem is an immutable snapshot of a product at purchase time.
// Later edits to the product never alter order history.
type OrderItem struct {
	ID        uint    `gorm:"primaryKey" json:"id"`
	OrderID   uint    `json:"order_id"`
	ProductID uint    `json:"product_id"`
	Name      string  `json:"name"`
	Quantity  int     `json:"quantity"`
	Price     float64 `json:"price"`
}

// TrackingEvent is one scan reported by the logistics aggregator.
// The shipping webhook is the sole writer of these rows.
type TrackingEvent struct {
	ID       uint      `gorm:"primaryKey" json:"id"`
	OrderID  uint      `json:"order_id"`
	Status   string    `json:"status"`
	Location string    `json:"location"`
	Time     time.Time `json:"time"`
}

// MarkDelivered transitions the order into Delivered, forcing the payment
// status to Paid (covers COD collection) and stamping DeliveredAt. Returns
// false without touching the order when it is already Delivered or Cancelled,
// so webhook replays stay no-ops.
func (o *Order) MarkDelivered(at time.Time) bool {
	if o.Status == OrderStatusDelivered || o.Status == OrderStatusCancelled {
		return false
	}
	o.Status = OrderStatusDelivered
	o.PaymentStatus = PaymentStatusPaid
	o.DeliveredAt = &at
	return true
}
