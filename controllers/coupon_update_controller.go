package controllers

import (
	"strconv"
	"time"

	"github.com/hungerbites/backend/config"
	"github.com/hungerbites/backend/models"
	"github.com/hungerbites/backend/utils"
	"github.com/gin-gonic/gin"
)

// UpdateCouponRequest represents the request body for updating a coupon
type UpdateCouponRequest struct {
	Value        *float64   `json:"value"`
	MinCartValue *float64   `json:"min_cart_value"`
	MaxDiscount  *float64   `json:"max_discount"`
	Expiry       *time.Time `json:"expiry"`
	Active       *bool      `json:"active"`
}

// UpdateCoupon updates an existing coupon. The code and type are immutable;
// a mis-issued coupon is deactivated and recreated instead.
func UpdateCoupon(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		utils.BadRequest(c, "Invalid coupon ID", nil)
		return
	}

	var coupon models.Coupon
	if err := config.DB.First(&coupon, id).Error; err != nil {
		utils.NotFound(c, "Coupon not found")
		return
	}

	var req UpdateCouponRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, "Invalid request", err.Error())
		return
	}

	updates := map[string]interface{}{}
	if req.Value != nil {
		if err := utils.ValidateCouponValue(coupon.Type, *req.Value); err != nil {
			utils.BadRequest(c, "Invalid coupon value for this coupon type", nil)
			return
		}
		updates["value"] = *req.Value
	}
	if req.MinCartValue != nil {
		updates["min_cart_value"] = *req.MinCartValue
	}
	if req.MaxDiscount != nil {
		updates["max_discount"] = *req.MaxDiscount
	}
	if req.Expiry != nil {
		if req.Expiry.Before(time.Now()) {
			utils.BadRequest(c, "Expiry date must be in the future", nil)
			return
		}
		updates["expiry"] = *req.Expiry
	}
	if req.Active != nil {
		updates["active"] = *req.Active
	}

	if len(updates) == 0 {
		utils.BadRequest(c, "Nothing to update", nil)
		return
	}

	if err := config.DB.Model(&coupon).Updates(updates).Error; err != nil {
		utils.LogError("Failed to update coupon ID: %d: %v", coupon.ID, err)
		utils.InternalServerError(c, "Failed to update coupon", err.Error())
		return
	}
	utils.LogInfo("Updated coupon ID: %d", coupon.ID)

	utils.Success(c, "Coupon updated successfully", gin.H{"coupon": coupon})
}
