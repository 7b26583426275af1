package controllers

import (
	"errors"
	"math"

	"github.com/hungerbites/backend/config"
	"github.com/hungerbites/backend/models"
	"github.com/hungerbites/backend/utils"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Client-supplied totals may drift from the server computation by float
// rounding; anything beyond a paisa is rejected.
const totalPriceEpsilon = 0.01

// PlaceOrderRequest represents the request body for creating an order
type PlaceOrderRequest struct {
	OrderItems      []utils.OrderItemRequest `json:"order_items" binding:"required,min=1"`
	CouponCode      string                   `json:"coupon_code"`
	TotalPrice      float64                  `json:"total_price" binding:"required,gt=0"`
	PaymentMethod   string                   `json:"payment_method" binding:"required"`
	ShippingAddress models.ShippingAddress   `json:"shipping_address" binding:"required"`
}

// PlaceOrder validates the cart against live stock and prices, re-applies
// any coupon server-side, and atomically reserves inventory while creating
// the order. Nothing is trusted from the client except product references,
// quantities and the address.
func PlaceOrder(c *gin.Context) {
	userVal, exists := c.Get("user")
	if !exists {
		utils.Unauthorized(c, "User not found")
		return
	}
	user := userVal.(models.User)
	utils.LogInfo("Processing order placement for user ID: %d", user.ID)

	var req PlaceOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, "Invalid request", err.Error())
		return
	}

	if req.PaymentMethod != models.PaymentMethodCOD && req.PaymentMethod != models.PaymentMethodOnline {
		utils.BadRequest(c, "Invalid payment method. Must be COD or Online", nil)
		return
	}

	if req.ShippingAddress.Line1 == "" || req.ShippingAddress.City == "" || req.ShippingAddress.PostalCode == "" {
		utils.BadRequest(c, "Shipping address must include line1, city and postal_code", nil)
		return
	}

	productIDs := make([]uint, 0, len(req.OrderItems))
	for _, item := range req.OrderItems {
		productIDs = append(productIDs, item.ProductID)
	}

	var order models.Order

	// Item validation, stock decrement and order insert commit or roll back
	// together so a crash can never leave stock inconsistent with issued
	// orders. Product rows are locked so two concurrent orders for the last
	// unit cannot both pass the stock check.
	err := config.DB.Transaction(func(tx *gorm.DB) error {
		var products []models.Product
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("id IN ?", productIDs).Find(&products).Error; err != nil {
			return err
		}

		productsByID := make(map[uint]*models.Product, len(products))
		for i := range products {
			productsByID[products[i].ID] = &products[i]
		}

		orderItems, itemsPrice, err := utils.BuildOrderItems(req.OrderItems, productsByID)
		if err != nil {
			return err
		}

		var couponDiscount float64
		var couponCode string
		if req.CouponCode != "" {
			coupon, discount, err := validateCouponForCart(req.CouponCode, itemsPrice)
			if err != nil {
				return err
			}
			couponCode = coupon.Code
			couponDiscount = discount
		}

		totalPrice := itemsPrice - couponDiscount
		if math.Abs(totalPrice-req.TotalPrice) > totalPriceEpsilon {
			utils.LogError("Total mismatch for user ID: %d: client %.2f, server %.2f",
				user.ID, req.TotalPrice, totalPrice)
			return errTotalMismatch
		}

		for _, item := range orderItems {
			if err := tx.Model(&models.Product{}).Where("id = ?", item.ProductID).
				UpdateColumn("stock", gorm.Expr("stock - ?", item.Quantity)).Error; err != nil {
				return err
			}
		}

		order = models.Order{
			UserID:          user.ID,
			OrderItems:      orderItems,
			ItemsPrice:      itemsPrice,
			CouponCode:      couponCode,
			CouponDiscount:  couponDiscount,
			TotalPrice:      totalPrice,
			PaymentMethod:   req.PaymentMethod,
			PaymentStatus:   models.PaymentStatusPending,
			Status:          models.OrderStatusProcessing,
			ShippingAddress: req.ShippingAddress,
		}
		return tx.Create(&order).Error
	})

	if err != nil {
		var stockErr *utils.StockError
		var missingErr *utils.MissingProductError
		switch {
		case errors.As(err, &missingErr):
			utils.NotFound(c, missingErr.Error())
		case errors.As(err, &stockErr):
			utils.BadRequest(c, stockErr.Error(), nil)
		case errors.Is(err, utils.ErrInvalidCoupon):
			utils.BadRequest(c, "Invalid or inactive coupon", nil)
		case errors.Is(err, utils.ErrCouponExpired):
			utils.BadRequest(c, "Coupon has expired", nil)
		case errors.Is(err, utils.ErrCouponBelowMinimum):
			utils.BadRequest(c, "Cart total is less than the minimum cart value for this coupon", nil)
		case errors.Is(err, errTotalMismatch):
			utils.BadRequest(c, "Order total does not match the server-side price", nil)
		default:
			utils.LogError("Failed to place order for user ID: %d: %v", user.ID, err)
			utils.InternalServerError(c, "Failed to place order", nil)
		}
		return
	}
	utils.LogInfo("Created order ID: %d for user ID: %d, total: %.2f", order.ID, user.ID, order.TotalPrice)

	if err := utils.SendOrderConfirmation(user.Email, &order); err != nil {
		utils.LogError("Failed to send confirmation email for order ID: %d: %v", order.ID, err)
	}

	utils.Created(c, "Order placed successfully", gin.H{"order": order})
}

var errTotalMismatch = errors.New("order total does not match server-side price")
