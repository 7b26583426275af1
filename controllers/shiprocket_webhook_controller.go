package controllers

import (
	"time"

	"github.com/hungerbites/backend/config"
	"github.com/hungerbites/backend/models"
	"github.com/hungerbites/backend/utils"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// ShiprocketWebhookPayload is the tracking update pushed by the aggregator.
type ShiprocketWebhookPayload struct {
	AWB           string `json:"awb"`
	CurrentStatus string `json:"current_status"`
	Scan          struct {
		Location string `json:"location"`
		Time     string `json:"time"`
	} `json:"scan"`
}

// ShiprocketWebhook ingests tracking pushes from the aggregator. It always
// answers 200 so the aggregator never retries into a loop; unknown waybills
// are acknowledged without touching anything. This handler is the sole writer
// of tracking events.
func ShiprocketWebhook(c *gin.Context) {
	var payload ShiprocketWebhookPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.LogError("Malformed shipping webhook payload: %v", err)
		utils.Success(c, "Webhook received", nil)
		return
	}

	if payload.AWB == "" {
		utils.Success(c, "Webhook received", nil)
		return
	}

	var order models.Order
	if err := config.DB.Where("tracking_id = ?", payload.AWB).First(&order).Error; err != nil {
		utils.LogInfo("Shipping webhook for unknown AWB %s ignored", payload.AWB)
		utils.Success(c, "Webhook received", nil)
		return
	}

	delivered := false
	err := config.DB.Transaction(func(tx *gorm.DB) error {
		order.ShipmentStatus = payload.CurrentStatus

		if payload.Scan.Location != "" || payload.Scan.Time != "" {
			scanTime := time.Now()
			if t, err := time.Parse("2006-01-02 15:04:05", payload.Scan.Time); err == nil {
				scanTime = t
			}
			event := models.TrackingEvent{
				OrderID:  order.ID,
				Status:   payload.CurrentStatus,
				Location: payload.Scan.Location,
				Time:     scanTime,
			}
			if err := tx.Create(&event).Error; err != nil {
				return err
			}
		}

		if payload.CurrentStatus == models.OrderStatusDelivered {
			delivered = order.MarkDelivered(time.Now())
		}
		return tx.Save(&order).Error
	})
	if err != nil {
		utils.LogError("Failed to apply shipping webhook for order ID: %d: %v", order.ID, err)
		utils.Success(c, "Webhook received", nil)
		return
	}
	utils.LogInfo("Shipping webhook applied to order ID: %d, status %s", order.ID, payload.CurrentStatus)

	if delivered {
		var user models.User
		if err := config.DB.First(&user, order.UserID).Error; err == nil {
			if err := utils.SendDeliveredNotification(user.Email, &order); err != nil {
				utils.LogError("Failed to send delivery email for order ID: %d: %v", order.ID, err)
			}
		}
	}

	utils.Success(c, "Webhook received", nil)
}
