package controllers

import (
	"bytes"
	"fmt"
	"net/http"
	"strconv"

	"github.com/hungerbites/backend/config"
	"github.com/hungerbites/backend/models"
	"github.com/hungerbites/backend/utils"
	"github.com/gin-gonic/gin"
	"github.com/jung-kurt/gofpdf"
)

// DownloadInvoice generates and returns a PDF invoice for the order
func DownloadInvoice(c *gin.Context) {
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
	if err := config.DB.Preload("OrderItems").Where("id = ? AND user_id = ?", orderID, user.ID).First(&order).Error; err != nil {
		utils.NotFound(c, "Order not found")
		return
	}

	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.AddPage()
	pdf.SetFont("Arial", "B", 16)
	pdf.Cell(40, 10, "Hunger Bites - Invoice")
	pdf.Ln(12)
	pdf.SetFont("Arial", "", 12)
	pdf.Cell(40, 10, "Order ID: "+strconv.Itoa(int(order.ID)))
	pdf.Ln(8)
	pdf.Cell(40, 10, "Date: "+order.CreatedAt.Format("2006-01-02 15:04:05"))
	pdf.Ln(8)
	pdf.Cell(40, 10, "Status: "+order.Status)
	pdf.Ln(8)
	pdf.Cell(40, 10, "Payment: "+order.PaymentMethod+" ("+order.PaymentStatus+")")
	pdf.Ln(12)
	pdf.Cell(40, 10, "Items:")
	pdf.Ln(8)
	for _, item := range order.OrderItems {
		line := fmt.Sprintf("%s x%d - %.2f", item.Name, item.Quantity, item.Price*float64(item.Quantity))
		pdf.Cell(40, 10, line)
		pdf.Ln(7)
	}
	pdf.Ln(5)
	pdf.Cell(40, 10, fmt.Sprintf("Items total: %.2f", order.ItemsPrice))
	pdf.Ln(7)
	if order.CouponCode != "" {
		pdf.Cell(40, 10, fmt.Sprintf("Coupon %s: -%.2f", order.CouponCode, order.CouponDiscount))
		pdf.Ln(7)
	}
	pdf.SetFont("Arial", "B", 12)
	pdf.Cell(40, 10, fmt.Sprintf("Total: %.2f", order.TotalPrice))

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		utils.LogError("Failed to render invoice for order ID: %d: %v", order.ID, err)
		utils.InternalServerError(c, "Failed to generate invoice", nil)
		return
	}
	c.Header("Content-Disposition", "attachment; filename=invoice.pdf")
	c.Data(http.StatusOK, "application/pdf", buf.Bytes())
}
