package utils

import (
	"time"

	"github.com/hungerbites/backend/models"
)

// CheckCouponUsable validates a coupon against a cart total at a given
// instant. It does not compute the discount; see ComputeCouponDiscount.
func CheckCouponUsable(coupon *models.Coupon, cartTotal float64, now time.Time) error {
	if coupon == nil || !coupon.Active {
		return ErrInvalidCoupon
	}
	if coupon.IsExpired(now) {
		return ErrCouponExpired
	}
	if cartTotal < coupon.MinCartValue {
		return ErrCouponBelowMinimum
	}
	return nil
}

// ComputeCouponDiscount returns the bounded discount for a coupon. Percent
// coupons are clamped to MaxDiscount when set; every coupon is finally
// clamped to the cart total so the payable amount can never go negative.
func ComputeCouponDiscount(coupon *models.Coupon, cartTotal float64) float64 {
	var discount float64
	switch coupon.Type {
	case models.CouponTypePercent:
		discount = cartTotal * coupon.Value / 100
		if coupon.MaxDiscount > 0 && discount > coupon.MaxDiscount {
			discount = coupon.MaxDiscount
		}
	case models.CouponTypeFlat:
		discount = coupon.Value
	}
	if discount > cartTotal {
		discount = cartTotal
	}
	if discount < 0 {
		discount = 0
	}
	return discount
}

// ValidateCouponValue checks if the coupon value is valid based on its type
func ValidateCouponValue(couponType string, value float64) error {
	if value <= 0 {
		return ErrInvalidCoupon
	}
	if couponType == models.CouponTypePercent && value > 100 {
		return ErrInvalidCoupon
	}
	return nil
}
