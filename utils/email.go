package utils

import (
	"fmt"
	"os"
	"strconv"

	"github.com/hungerbites/backend/models"
	"gopkg.in/gomail.v2"
)

// SendEmail sends an HTML email through the configured SMTP relay.
func SendEmail(to, subject, body string) error {
	port, err := strconv.Atoi(os.Getenv("SMTP_PORT"))
	if err != nil || port == 0 {
		port = 587
	}

	m := gomail.NewMessage()
	m.SetHeader("From", os.Getenv("SMTP_FROM"))
	m.SetHeader("To", to)
	m.SetHeader("Subject", subject)
	m.SetBody("text/html", body)

	d := gomail.NewDialer(os.Getenv("SMTP_HOST"), port, os.Getenv("SMTP_USERNAME"), os.Getenv("SMTP_PASSWORD"))

	if err := d.DialAndSend(m); err != nil {
		return fmt.Errorf("failed to send email: %v", err)
	}
	return nil
}

// SendOrderConfirmation sends the post-checkout confirmation email.
func SendOrderConfirmation(to string, order *models.Order) error {
	subject := fmt.Sprintf("Hunger Bites - Order #%d confirmed", order.ID)
	body := fmt.Sprintf(`
		<h2>Thank you for your order!</h2>
		<p>Your order #%d has been placed and is now being processed.</p>
		<p>Total: ₹%.2f (%s)</p>
		<p>We will let you know as soon as it ships.</p>
	`, order.ID, order.TotalPrice, order.PaymentMethod)
	return SendEmail(to, subject, body)
}

// SendDeliveredNotification tells the customer their order has arrived.
func SendDeliveredNotification(to string, order *models.Order) error {
	subject := fmt.Sprintf("Hunger Bites - Order #%d delivered", order.ID)
	body := fmt.Sprintf(`
		<h2>Your order has been delivered!</h2>
		<p>Order #%d was delivered by %s.</p>
		<p>We hope you enjoy your treats. See you again soon!</p>
	`, order.ID, order.CourierName)
	return SendEmail(to, subject, body)
}
