package controllers

import (
	"strconv"
	"time"

	"github.com/hungerbites/backend/config"
	"github.com/hungerbites/backend/models"
	"github.com/hungerbites/backend/utils"
	"github.com/gin-gonic/gin"
)

// DeleteCoupon soft-deletes a coupon
func DeleteCoupon(c *gin.Context) {
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

	if err := config.DB.Delete(&coupon).Error; err != nil {
		utils.LogError("Failed to delete coupon ID: %d: %v", coupon.ID, err)
		utils.InternalServerError(c, "Failed to delete coupon", nil)
		return
	}
	utils.LogInfo("Deleted coupon ID: %d", coupon.ID)

	utils.Success(c, "Coupon deleted successfully", nil)
}

// ListCoupons lists all coupons for the admin back-office
func ListCoupons(c *gin.Context) {
	var coupons []models.Coupon
	if err := config.DB.Order("created_at DESC").Find(&coupons).Error; err != nil {
		utils.LogError("Failed to fetch coupons: %v", err)
		utils.InternalServerError(c, "Failed to fetch coupons", nil)
		return
	}

	now := time.Now()
	summaries := make([]gin.H, 0, len(coupons))
	for _, coupon := range coupons {
		summaries = append(summaries, gin.H{
			"id":             coupon.ID,
			"code":           coupon.Code,
			"type":           coupon.Type,
			"value":          coupon.Value,
			"min_cart_value": coupon.MinCartValue,
			"max_discount":   coupon.MaxDiscount,
			"active":         coupon.Active,
			"is_expired":     coupon.IsExpired(now),
			"expiry":         coupon.Expiry.Format("2006-01-02"),
			"created_at":     coupon.CreatedAt.Format("2006-01-02 15:04:05"),
		})
	}

	utils.Success(c, "Coupons retrieved successfully", gin.H{"coupons": summaries})
}
