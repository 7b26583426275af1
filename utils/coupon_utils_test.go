package utils

import (
	"testing"
	"time"

	"github.com/hungerbites/backend/models"
	"github.com/stretchr/testify/assert"
)

func TestComputeCouponDiscount(t *testing.T) {
	tests := []struct {
		name      string
		coupon    models.Coupon
		cartTotal float64
		want      float64
	}{
		{
			name:      "flat discount",
			coupon:    models.Coupon{Type: models.CouponTypeFlat, Value: 100},
			cartTotal: 450,
			want:      100,
		},
		{
			name:      "percent discount",
			coupon:    models.Coupon{Type: models.CouponTypePercent, Value: 10},
			cartTotal: 500,
			want:      50,
		},
		{
			name:      "percent capped by max discount",
			coupon:    models.Coupon{Type: models.CouponTypePercent, Value: 20, MaxDiscount: 150},
			cartTotal: 1000,
			want:      150,
		},
		{
			name:      "percent uncapped when max discount is zero",
			coupon:    models.Coupon{Type: models.CouponTypePercent, Value: 20},
			cartTotal: 1000,
			want:      200,
		},
		{
			name:      "flat discount clamped to cart total",
			coupon:    models.Coupon{Type: models.CouponTypeFlat, Value: 500},
			cartTotal: 300,
			want:      300,
		},
		{
			name:      "unknown type yields zero",
			coupon:    models.Coupon{Type: "bogus", Value: 100},
			cartTotal: 500,
			want:      0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ComputeCouponDiscount(&tt.coupon, tt.cartTotal)
			assert.InDelta(t, tt.want, got, 0.001)
		})
	}
}

func TestCheckCouponUsable(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	valid := models.Coupon{
		Code:         "SAVE10",
		Type:         models.CouponTypePercent,
		Value:        10,
		MinCartValue: 200,
		Expiry:       now.Add(24 * time.Hour),
		Active:       true,
	}

	t.Run("valid coupon passes", func(t *testing.T) {
		assert.NoError(t, CheckCouponUsable(&valid, 500, now))
	})

	t.Run("inactive coupon rejected", func(t *testing.T) {
		c := valid
		c.Active = false
		assert.ErrorIs(t, CheckCouponUsable(&c, 500, now), ErrInvalidCoupon)
	})

	t.Run("expired coupon rejected", func(t *testing.T) {
		c := valid
		c.Expiry = now.Add(-time.Hour)
		assert.ErrorIs(t, CheckCouponUsable(&c, 500, now), ErrCouponExpired)
	})

	t.Run("cart below minimum rejected", func(t *testing.T) {
		assert.ErrorIs(t, CheckCouponUsable(&valid, 199.99, now), ErrCouponBelowMinimum)
	})

	t.Run("cart exactly at minimum passes", func(t *testing.T) {
		assert.NoError(t, CheckCouponUsable(&valid, 200, now))
	})

	t.Run("nil coupon rejected", func(t *testing.T) {
		assert.ErrorIs(t, CheckCouponUsable(nil, 500, now), ErrInvalidCoupon)
	})
}

func TestValidateCouponValue(t *testing.T) {
	assert.NoError(t, ValidateCouponValue(models.CouponTypeFlat, 100))
	assert.NoError(t, ValidateCouponValue(models.CouponTypePercent, 100))
	assert.Error(t, ValidateCouponValue(models.CouponTypePercent, 101))
	assert.Error(t, ValidateCouponValue(models.CouponTypeFlat, 0))
	assert.Error(t, ValidateCouponValue(models.CouponTypeFlat, -5))
}
