package controllers

import (
	"strings"
	"time"

	"github.com/hungerbites/backend/config"
	"github.com/hungerbites/backend/models"
	"github.com/hungerbites/backend/utils"
	"github.com/gin-gonic/gin"
)

// CreateCouponRequest represents the request body for creating a new coupon
type CreateCouponRequest struct {
	Code         string    `json:"code" binding:"required"`
	Type         string    `json:"type" binding:"required,oneof=flat percent"`
	Value        float64   `json:"value" binding:"required,gt=0"`
	MinCartValue float64   `json:"min_cart_value"`
	MaxDiscount  float64   `json:"max_discount"`
	Expiry       time.Time `json:"expiry" binding:"required"`
}

// CreateCoupon creates a new coupon
func CreateCoupon(c *gin.Context) {
	var req CreateCouponRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, "Invalid request", err.Error())
		return
	}

	if err := utils.ValidateCouponValue(req.Type, req.Value); err != nil {
		utils.BadRequest(c, "Percentage coupon value cannot exceed 100", nil)
		return
	}

	// Codes are stored and compared upper-cased
	req.Code = strings.ToUpper(strings.TrimSpace(req.Code))

	if req.Expiry.Before(time.Now()) {
		utils.BadRequest(c, "Expiry date must be in the future", nil)
		return
	}

	// Uniqueness is case-insensitive
	var existing models.Coupon
	if err := config.DB.Where("LOWER(code) = LOWER(?)", req.Code).First(&existing).Error; err == nil {
		utils.LogError("Coupon code already exists: %s", req.Code)
		utils.Conflict(c, utils.ErrCouponExists.Error(), nil)
		return
	}

	coupon := models.Coupon{
		Code:         req.Code,
		Type:         req.Type,
		Value:        req.Value,
		MinCartValue: req.MinCartValue,
		MaxDiscount:  req.MaxDiscount,
		Expiry:       req.Expiry,
		Active:       true,
	}

	if err := config.DB.Create(&coupon).Error; err != nil {
		utils.LogError("Failed to create coupon: %v", err)
		utils.InternalServerError(c, "Failed to create coupon", err.Error())
		return
	}
	utils.LogInfo("Created coupon %s, ID: %d", coupon.Code, coupon.ID)

	utils.Created(c, "Coupon created successfully", gin.H{
		"id":             coupon.ID,
		"code":           coupon.Code,
		"type":           coupon.Type,
		"value":          coupon.Value,
		"min_cart_value": coupon.MinCartValue,
		"max_discount":   coupon.MaxDiscount,
		"active":         coupon.Active,
		"expiry":         coupon.Expiry.Format("2006-01-02"),
	})
}
