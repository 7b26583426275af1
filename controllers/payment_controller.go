package controllers

import (
	"os"

	"github.com/hungerbites/backend/config"
	"github.com/hungerbites/backend/models"
	"github.com/hungerbites/backend/utils"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	razorpay "github.com/razorpay/razorpay-go"
	"gorm.io/gorm"
)

// CreatePaymentOrderRequest represents the request body for initiating an
// online payment
type CreatePaymentOrderRequest struct {
	OrderID uint `json:"order_id" binding:"required"`
}

// CreatePaymentOrder creates a Razorpay order for an existing Online order
// awaiting payment and returns the gateway order ID for the client checkout
func CreatePaymentOrder(c *gin.Context) {
	userVal, exists := c.Get("user")
	if !exists {
		utils.Unauthorized(c, "User not found")
		return
	}
	user := userVal.(models.User)

	var req CreatePaymentOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, "Invalid request. order_id is required", err.Error())
		return
	}

	var order models.Order
	if err := config.DB.Where("id = ? AND user_id = ?", req.OrderID, user.ID).First(&order).Error; err != nil {
		utils.NotFound(c, "Order not found")
		return
	}

	if order.PaymentMethod != models.PaymentMethodOnline {
		utils.BadRequest(c, "Order is not an online payment order", nil)
		return
	}
	if order.PaymentStatus == models.PaymentStatusPaid {
		utils.BadRequest(c, "Order is already paid", nil)
		return
	}
	if order.TotalPrice <= 0 {
		utils.BadRequest(c, "Order amount must be positive", nil)
		return
	}

	amountPaise := utils.RupeesToPaise(order.TotalPrice)
	utils.LogInfo("Creating payment order of %d paise for order ID: %d", amountPaise, order.ID)

	client := razorpay.NewClient(os.Getenv("RAZORPAY_KEY"), os.Getenv("RAZORPAY_SECRET"))
	orderData := map[string]interface{}{
		"amount":          amountPaise,
		"currency":        "INR",
		"receipt":         "rcpt_" + uuid.NewString(),
		"payment_capture": 1,
	}
	rzOrder, err := client.Order.Create(orderData, nil)
	if err != nil {
		utils.LogError("Failed to create Razorpay order for order ID: %d: %v", order.ID, err)
		utils.InternalServerError(c, "Failed to create Razorpay order", nil)
		return
	}

	razorpayOrderID, _ := rzOrder["id"].(string)
	if err := config.DB.Model(&order).Update("razorpay_order_id", razorpayOrderID).Error; err != nil {
		utils.LogError("Failed to save Razorpay order ID for order ID: %d: %v", order.ID, err)
		utils.InternalServerError(c, "Failed to create Razorpay order", nil)
		return
	}

	utils.Success(c, "Payment order created successfully", gin.H{
		"razorpay_order_id": razorpayOrderID,
		"amount":            amountPaise,
		"currency":          "INR",
		"key":               os.Getenv("RAZORPAY_KEY"),
	})
}

// VerifyPaymentRequest represents the request body for verifying a payment
type VerifyPaymentRequest struct {
	RazorpayOrderID   string `json:"razorpay_order_id" binding:"required"`
	RazorpayPaymentID string `json:"razorpay_payment_id" binding:"required"`
	RazorpaySignature string `json:"razorpay_signature" binding:"required"`
}

// VerifyPayment checks the gateway signature over "order_id|payment_id" and,
// only if it matches, records the capture and settles the linked order. A
// mismatched signature persists nothing.
func VerifyPayment(c *gin.Context) {
	userVal, exists := c.Get("user")
	if !exists {
		utils.Unauthorized(c, "User not found")
		return
	}
	user := userVal.(models.User)

	var req VerifyPaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, "Invalid request", err.Error())
		return
	}

	if !utils.RazorpaySignatureValid(req.RazorpayOrderID, req.RazorpayPaymentID, req.RazorpaySignature, os.Getenv("RAZORPAY_SECRET")) {
		utils.LogError("Signature mismatch on payment ID: %s for user ID: %d", req.RazorpayPaymentID, user.ID)
		utils.BadRequest(c, utils.ErrSignatureMismatch.Error(), nil)
		return
	}

	var order models.Order
	orderFound := config.DB.
		Where("razorpay_order_id = ? AND user_id = ?", req.RazorpayOrderID, user.ID).
		First(&order).Error == nil

	err := config.DB.Transaction(func(tx *gorm.DB) error {
		payment := models.Payment{
			UserID:            user.ID,
			RazorpayOrderID:   req.RazorpayOrderID,
			RazorpayPaymentID: req.RazorpayPaymentID,
			RazorpaySignature: req.RazorpaySignature,
			Status:            models.PaymentRecordPaid,
		}
		if orderFound {
			payment.OrderID = &order.ID
			payment.Amount = order.TotalPrice
		}
		if err := tx.Create(&payment).Error; err != nil {
			return err
		}

		if orderFound {
			order.PaymentStatus = models.PaymentStatusPaid
			order.RazorpayPaymentID = req.RazorpayPaymentID
			return tx.Save(&order).Error
		}
		return nil
	})
	if err != nil {
		utils.LogError("Failed to record payment ID: %s: %v", req.RazorpayPaymentID, err)
		utils.InternalServerError(c, "Failed to record payment", nil)
		return
	}
	utils.LogInfo("Payment verified for user ID: %d, payment ID: %s", user.ID, req.RazorpayPaymentID)

	resp := gin.H{"razorpay_payment_id": req.RazorpayPaymentID}
	if orderFound {
		resp["order_id"] = order.ID
		resp["payment_status"] = order.PaymentStatus
	}
	utils.Success(c, "Payment verified successfully", resp)
}

// RecordFailedPaymentRequest represents the request body for recording a
// failed payment attempt
type RecordFailedPaymentRequest struct {
	RazorpayOrderID   string `json:"razorpay_order_id" binding:"required"`
	RazorpayPaymentID string `json:"razorpay_payment_id"`
	FailureReason     string `json:"failure_reason"`
}

// RecordFailedPayment stores a failed gateway attempt for audit. It never
// changes order state; the order stays pending and can be retried.
func RecordFailedPayment(c *gin.Context) {
	userVal, exists := c.Get("user")
	if !exists {
		utils.Unauthorized(c, "User not found")
		return
	}
	user := userVal.(models.User)

	var req RecordFailedPaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, "Invalid request", err.Error())
		return
	}

	payment := models.Payment{
		UserID:            user.ID,
		RazorpayOrderID:   req.RazorpayOrderID,
		RazorpayPaymentID: req.RazorpayPaymentID,
		Status:            models.PaymentRecordFailed,
		FailureReason:     req.FailureReason,
	}

	var order models.Order
	if config.DB.Where("razorpay_order_id = ? AND user_id = ?", req.RazorpayOrderID, user.ID).First(&order).Error == nil {
		payment.OrderID = &order.ID
		payment.Amount = order.TotalPrice
	}

	if err := config.DB.Create(&payment).Error; err != nil {
		utils.LogError("Failed to record failed payment for user ID: %d: %v", user.ID, err)
		utils.InternalServerError(c, "Failed to record payment failure", nil)
		return
	}
	utils.LogInfo("Recorded failed payment attempt for user ID: %d, gateway order: %s", user.ID, req.RazorpayOrderID)

	utils.Success(c, "Payment failure recorded", nil)
}
