package controllers

import (
	"errors"
	"strings"
	"time"

	"github.com/hungerbites/backend/config"
	"github.com/hungerbites/backend/models"
	"github.com/hungerbites/backend/utils"
	"github.com/gin-gonic/gin"
)

// ValidateCouponRequest represents the request body for validating a coupon
type ValidateCouponRequest struct {
	Code      string  `json:"code" binding:"required"`
	CartTotal float64 `json:"cart_total" binding:"required,gt=0"`
}

// validateCouponForCart loads a coupon by code and checks it against a cart
// total. Shared by the validate endpoint and order creation, so checkout can
// never apply a discount the validate endpoint would refuse.
func validateCouponForCart(code string, cartTotal float64) (*models.Coupon, float64, error) {
	var coupon models.Coupon
	if err := config.DB.Where("UPPER(code) = ? AND active = ?", strings.ToUpper(code), true).First(&coupon).Error; err != nil {
		return nil, 0, utils.ErrInvalidCoupon
	}

	if err := utils.CheckCouponUsable(&coupon, cartTotal, time.Now()); err != nil {
		return nil, 0, err
	}

	return &coupon, utils.ComputeCouponDiscount(&coupon, cartTotal), nil
}

// ValidateCoupon validates a coupon code against the given cart total and
// returns the bounded discount
func ValidateCoupon(c *gin.Context) {
	var req ValidateCouponRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, "Invalid request. code and cart_total are required", err.Error())
		return
	}

	coupon, discount, err := validateCouponForCart(req.Code, req.CartTotal)
	if err != nil {
		switch {
		case errors.Is(err, utils.ErrInvalidCoupon):
			utils.NotFound(c, "Invalid or inactive coupon")
		case errors.Is(err, utils.ErrCouponExpired):
			utils.BadRequest(c, "Coupon has expired", nil)
		case errors.Is(err, utils.ErrCouponBelowMinimum):
			utils.BadRequest(c, "Cart total is less than the minimum cart value for this coupon", nil)
		default:
			utils.InternalServerError(c, "Failed to validate coupon", nil)
		}
		return
	}

	utils.Success(c, "Coupon is valid", gin.H{
		"coupon": gin.H{
			"code":     coupon.Code,
			"discount": discount,
		},
	})
}

// GetActiveAnnouncement returns the single most recently created active,
// unexpired coupon as a public-safe summary
func GetActiveAnnouncement(c *gin.Context) {
	var coupon models.Coupon
	err := config.DB.
		Where("active = ? AND expiry > ?", true, time.Now()).
		Order("created_at DESC").
		First(&coupon).Error
	if err != nil {
		utils.Success(c, "No active coupon", gin.H{"coupon": nil})
		return
	}

	utils.Success(c, "Active coupon retrieved successfully", gin.H{
		"coupon": gin.H{
			"code":           coupon.Code,
			"type":           coupon.Type,
			"value":          coupon.Value,
			"min_cart_value": coupon.MinCartValue,
			"expiry":         coupon.Expiry.Format("2006-01-02"),
		},
	})
}
