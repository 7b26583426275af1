package controllers

import (
	"github.com/hungerbites/backend/config"
	"github.com/hungerbites/backend/models"
	"github.com/hungerbites/backend/utils"
	"github.com/gin-gonic/gin"
)

// AdminListOrders lists all orders with user and item details, paginated
func AdminListOrders(c *gin.Context) {
	pagination := utils.NewPagination(c)

	query := config.DB.Model(&models.Order{})
	if status := c.Query("status"); status != "" {
		query = query.Where("status = ?", status)
	}
	if paymentStatus := c.Query("payment_status"); paymentStatus != "" {
		query = query.Where("payment_status = ?", paymentStatus)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		utils.LogError("Failed to count orders: %v", err)
		utils.InternalServerError(c, "Failed to fetch orders", nil)
		return
	}
	pagination.SetTotal(total)

	var orders []models.Order
	if err := query.
		Preload("User").
		Preload("OrderItems").
		Preload("TrackingEvents").
		Order("created_at DESC").
		Offset(pagination.Offset).
		Limit(pagination.Limit).
		Find(&orders).Error; err != nil {
		utils.LogError("Failed to fetch orders: %v", err)
		utils.InternalServerError(c, "Failed to fetch orders", nil)
		return
	}

	summaries := make([]gin.H, 0, len(orders))
	for _, o := range orders {
		summaries = append(summaries, gin.H{
			"id":              o.ID,
			"username":        o.User.Username,
			"email":           o.User.Email,
			"status":          o.Status,
			"payment_method":  o.PaymentMethod,
			"payment_status":  o.PaymentStatus,
			"shipment_id":     o.ShipmentID,
			"tracking_id":     o.TrackingID,
			"courier_name":    o.CourierName,
			"shipment_status": o.ShipmentStatus,
			"items_price":     o.ItemsPrice,
			"coupon_discount": o.CouponDiscount,
			"total_price":     o.TotalPrice,
			"created_at":      o.CreatedAt.Format("2006-01-02 15:04:05"),
			"items":           o.OrderItems,
		})
	}

	utils.SendPaginatedResponse(c, summaries, pagination)
}
