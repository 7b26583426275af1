package controllers

import (
	"errors"
	"strconv"

	"github.com/hungerbites/backend/config"
	"github.com/hungerbites/backend/models"
	"github.com/hungerbites/backend/shiprocket"
	"github.com/hungerbites/backend/utils"
	"github.com/gin-gonic/gin"
)

// ShippingClient is set from main at startup. Nil means shipping endpoints
// report the integration as unavailable instead of panicking.
var ShippingClient *shiprocket.Client

// CreateShipment books the order with the logistics aggregator and stores
// the returned shipment ID on the order
func CreateShipment(c *gin.Context) {
	if ShippingClient == nil {
		utils.ServiceUnavailable(c, "Shipping service is not configured", nil)
		return
	}

	orderID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		utils.BadRequest(c, "Invalid order ID", nil)
		return
	}

	var order models.Order
	if err := config.DB.Preload("OrderItems").First(&order, orderID).Error; err != nil {
		utils.NotFound(c, "Order not found")
		return
	}

	if order.Status == models.OrderStatusCancelled {
		utils.BadRequest(c, "Cannot ship a cancelled order", nil)
		return
	}
	if order.ShipmentID != "" {
		utils.BadRequest(c, "Shipment already created for this order", gin.H{"shipment_id": order.ShipmentID})
		return
	}

	paymentMethod := "Prepaid"
	if order.PaymentMethod == models.PaymentMethodCOD {
		paymentMethod = "COD"
	}

	items := make([]shiprocket.ShipmentItem, 0, len(order.OrderItems))
	for _, item := range order.OrderItems {
		items = append(items, shiprocket.ShipmentItem{
			Name:  item.Name,
			SKU:   strconv.FormatUint(uint64(item.ProductID), 10),
			Units: item.Quantity,
			Price: item.Price,
		})
	}

	req := &shiprocket.ShipmentRequest{
		OrderID:        strconv.FormatUint(uint64(order.ID), 10),
		OrderDate:      order.CreatedAt.Format("2006-01-02 15:04"),
		BillingName:    order.ShippingAddress.Name,
		BillingPhone:   order.ShippingAddress.Phone,
		BillingLine1:   order.ShippingAddress.Line1,
		BillingCity:    order.ShippingAddress.City,
		BillingState:   order.ShippingAddress.State,
		BillingPin:     order.ShippingAddress.PostalCode,
		BillingCountry: order.ShippingAddress.Country,
		PaymentMethod:  paymentMethod,
		SubTotal:       order.TotalPrice,
		Items:          items,
	}

	resp, err := ShippingClient.CreateShipment(req)
	if err != nil {
		utils.LogError("Failed to create shipment for order ID: %d: %v", order.ID, err)
		if errors.Is(err, utils.ErrShippingUnavailable) {
			utils.ServiceUnavailable(c, "Shipping service is unavailable", nil)
			return
		}
		utils.InternalServerError(c, "Failed to create shipment", nil)
		return
	}

	order.ShipmentID = strconv.FormatInt(resp.ShipmentID, 10)
	order.ShipmentStatus = resp.Status
	if err := config.DB.Save(&order).Error; err != nil {
		utils.LogError("Failed to save shipment ID for order ID: %d: %v", order.ID, err)
		utils.InternalServerError(c, "Failed to save shipment details", nil)
		return
	}
	utils.LogInfo("Created shipment %s for order ID: %d", order.ShipmentID, order.ID)

	utils.Success(c, "Shipment created successfully", gin.H{
		"order_id":    order.ID,
		"shipment_id": order.ShipmentID,
	})
}

// GenerateAWB assigns a courier and waybill to the order's shipment, stores
// both on the order and moves it to Shipped. A waybill is assigned at most
// once per order.
func GenerateAWB(c *gin.Context) {
	if ShippingClient == nil {
		utils.ServiceUnavailable(c, "Shipping service is not configured", nil)
		return
	}

	orderID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		utils.BadRequest(c, "Invalid order ID", nil)
		return
	}

	var order models.Order
	if err := config.DB.First(&order, orderID).Error; err != nil {
		utils.NotFound(c, "Order not found")
		return
	}

	if order.ShipmentID == "" {
		utils.BadRequest(c, utils.ErrShipmentNotCreated.Error(), nil)
		return
	}
	if order.TrackingID != "" {
		utils.Conflict(c, utils.ErrAwbAlreadyGenerated.Error(), gin.H{
			"tracking_id":  order.TrackingID,
			"courier_name": order.CourierName,
		})
		return
	}

	awb, err := ShippingClient.GenerateAWB(order.ShipmentID)
	if err != nil {
		utils.LogError("Failed to generate AWB for order ID: %d: %v", order.ID, err)
		if errors.Is(err, utils.ErrShippingUnavailable) {
			utils.ServiceUnavailable(c, "Shipping service is unavailable", nil)
			return
		}
		utils.InternalServerError(c, "Failed to generate AWB", nil)
		return
	}

	order.TrackingID = awb.AwbCode
	order.CourierName = awb.CourierName
	if models.CanTransition(order.Status, models.OrderStatusShipped) {
		order.Status = models.OrderStatusShipped
	}
	if err := config.DB.Save(&order).Error; err != nil {
		utils.LogError("Failed to save AWB for order ID: %d: %v", order.ID, err)
		utils.InternalServerError(c, "Failed to save AWB details", nil)
		return
	}
	utils.LogInfo("Assigned AWB %s (%s) to order ID: %d", order.TrackingID, order.CourierName, order.ID)

	utils.Success(c, "AWB generated successfully", gin.H{
		"order_id":     order.ID,
		"tracking_id":  order.TrackingID,
		"courier_name": order.CourierName,
		"status":       order.Status,
	})
}

// RequestPickup schedules a courier pickup for an order that already has a
// waybill assigned
func RequestPickup(c *gin.Context) {
	if ShippingClient == nil {
		utils.ServiceUnavailable(c, "Shipping service is not configured", nil)
		return
	}

	orderID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		utils.BadRequest(c, "Invalid order ID", nil)
		return
	}

	var order models.Order
	if err := config.DB.First(&order, orderID).Error; err != nil {
		utils.NotFound(c, "Order not found")
		return
	}

	if order.TrackingID == "" {
		utils.BadRequest(c, utils.ErrAwbNotGenerated.Error(), nil)
		return
	}

	if err := ShippingClient.RequestPickup(order.ShipmentID); err != nil {
		utils.LogError("Failed to request pickup for order ID: %d: %v", order.ID, err)
		if errors.Is(err, utils.ErrShippingUnavailable) {
			utils.ServiceUnavailable(c, "Shipping service is unavailable", nil)
			return
		}
		utils.InternalServerError(c, "Failed to request pickup", nil)
		return
	}
	utils.LogInfo("Pickup requested for order ID: %d, shipment %s", order.ID, order.ShipmentID)

	utils.Success(c, "Pickup requested successfully", gin.H{
		"order_id":    order.ID,
		"shipment_id": order.ShipmentID,
	})
}
