package controllers

import (
	"strconv"

	"github.com/hungerbites/backend/config"
	"github.com/hungerbites/backend/models"
	"github.com/hungerbites/backend/utils"
	"github.com/gin-gonic/gin"
)

// ListMyOrders lists the logged-in user's orders. Online orders appear only
// once their payment has been captured; COD orders appear immediately.
func ListMyOrders(c *gin.Context) {
	userVal, exists := c.Get("user")
	if !exists {
		utils.Unauthorized(c, "User not found")
		return
	}
	user := userVal.(models.User)

	var orders []models.Order
	query := config.DB.
		Where("user_id = ?", user.ID).
		Where("payment_method = ? OR payment_status = ?", models.PaymentMethodCOD, models.PaymentStatusPaid)

	if status := c.Query("status"); status != "" {
		query = query.Where("status = ?", status)
	}

	if err := query.Order("created_at DESC").Preload("OrderItems").Find(&orders).Error; err != nil {
		utils.LogError("Failed to fetch orders for user ID: %d: %v", user.ID, err)
		utils.InternalServerError(c, "Failed to fetch orders", nil)
		return
	}

	summaries := make([]gin.H, 0, len(orders))
	for _, o := range orders {
		summaries = append(summaries, gin.H{
			"id":              o.ID,
			"date":            o.CreatedAt.Format("2006-01-02 15:04:05"),
			"status":          o.Status,
			"payment_status":  o.PaymentStatus,
			"shipment_status": o.ShipmentStatus,
			"tracking_id":     o.TrackingID,
			"total_price":     o.TotalPrice,
			"items":           len(o.OrderItems),
		})
	}

	utils.Success(c, "Orders retrieved successfully", gin.H{"orders": summaries})
}

// GetOrderDetails returns detailed info for a specific order, including the
// tracking history merged in by the shipping webhook
func GetOrderDetails(c *gin.Context) {
	userVal, exists := c.Get("user")
	if !exists {
		utils.Unauthorized(c, "User not found")
		return
	}
	user := userVal.(models.User)

	orderID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		utils.BadRequest(c, "Invalid order ID", nil)
		return
	}

	var order models.Order
	if err := config.DB.
		Preload("OrderItems").
		Preload("TrackingEvents").
		Where("id = ? AND user_id = ?", orderID, user.ID).
		First(&order).Error; err != nil {
		utils.NotFound(c, "Order not found")
		return
	}

	utils.Success(c, "Order retrieved successfully", gin.H{"order": order})
}
