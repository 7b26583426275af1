package controllers

import (
	"strconv"
	"time"

	"github.com/hungerbites/backend/config"
	"github.com/hungerbites/backend/models"
	"github.com/hungerbites/backend/utils"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// UpdateOrderStatusRequest represents the request body for updating order status
type UpdateOrderStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

// AdminUpdateOrderStatus moves an order along the fulfilment lifecycle.
// Backward and terminal transitions are rejected. Marking Delivered also
// settles payment and stamps the delivery time; cancelling restores the
// reserved stock.
func AdminUpdateOrderStatus(c *gin.Context) {
	orderID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		utils.BadRequest(c, "Invalid order ID", nil)
		return
	}

	var req UpdateOrderStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, "Invalid request. status is required", err.Error())
		return
	}

	if !models.IsValidOrderStatus(req.Status) {
		utils.BadRequest(c, "Invalid status", gin.H{"valid_statuses": models.ValidOrderStatuses})
		return
	}

	var order models.Order
	if err := config.DB.Preload("OrderItems").First(&order, orderID).Error; err != nil {
		utils.NotFound(c, "Order not found")
		return
	}

	if !models.CanTransition(order.Status, req.Status) {
		utils.BadRequest(c, "Invalid status transition", gin.H{
			"current_status":    order.Status,
			"requested_status":  req.Status,
			"valid_transitions": models.ValidTransitions(order.Status),
		})
		return
	}

	err = config.DB.Transaction(func(tx *gorm.DB) error {
		switch req.Status {
		case models.OrderStatusDelivered:
			order.MarkDelivered(time.Now())
		case models.OrderStatusCancelled:
			// Cancelling releases the inventory the order had reserved
			for _, item := range order.OrderItems {
				if err := tx.Model(&models.Product{}).Where("id = ?", item.ProductID).
					UpdateColumn("stock", gorm.Expr("stock + ?", item.Quantity)).Error; err != nil {
					return err
				}
			}
			order.Status = models.OrderStatusCancelled
		default:
			order.Status = req.Status
		}
		return tx.Save(&order).Error
	})
	if err != nil {
		utils.LogError("Failed to update status for order ID: %d: %v", order.ID, err)
		utils.InternalServerError(c, "Failed to update order status", nil)
		return
	}
	utils.LogInfo("Order ID: %d status updated to %s", order.ID, order.Status)

	utils.Success(c, "Order status updated successfully", gin.H{
		"order": gin.H{
			"id":             order.ID,
			"status":         order.Status,
			"payment_status": order.PaymentStatus,
			"delivered_at":   order.DeliveredAt,
		},
	})
}
