package models

import (
	"time"

	"gorm.io/gorm"
)

// Coupon types
const (
	CouponTypeFlat    = "flat"
	CouponTypePercent = "percent"
)

type Coupon struct {
	ID           uint           `gorm:"primaryKey" json:"id"`
	Code         string         `gorm:"uniqueIndex:idx_coupons_code_lower" json:"code"`
	Type         string         `json:"type"` // "flat" or "percent"
	Value        float64        `json:"value"`
	MinCartValue float64        `json:"min_cart_value"`
	MaxDiscount  float64        `json:"max_discount"` // cap for percent coupons, 0 = uncapped
	Expiry       time.Time      `json:"expiry"`
	Active       bool           `json:"active"`
	CreatedAt    time.Time      `json:"created_at"`
	UpdatedAt    time.Time      `json:"updated_at"`
	DeletedAt    gorm.DeletedAt `gorm:"index" json:"-"`
}

// IsExpired reports whether the coupon has passed its expiry at the given instant.
func (c *Coupon) IsExpired(now time.Time) bool {
	return now.After(c.Expiry)
}
