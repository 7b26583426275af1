package routes

import (
	"github.com/hungerbites/backend/controllers"
	"github.com/hungerbites/backend/middleware"
	"github.com/gin-gonic/gin"
)

// initUserRoutes initializes all user-facing routes
func initUserRoutes(router *gin.RouterGroup) {
	// Public routes (no authentication required)
	router.POST("/register", controllers.RegisterUser)
	router.POST("/login", controllers.LoginUser)

	// Catalog
	router.GET("/products", controllers.GetProducts)
	router.GET("/products/:id", controllers.GetProductDetails)
	router.GET("/categories", controllers.ListCategories)

	// Coupons
	router.GET("/coupons/announcement", controllers.GetActiveAnnouncement)

	authenticated := router.Group("")
	authenticated.Use(middleware.AuthMiddleware())
	{
		authenticated.POST("/coupons/validate", controllers.ValidateCoupon)
		authenticated.POST("/orders", controllers.PlaceOrder)
	}

	user := router.Group("/user")
	user.Use(middleware.AuthMiddleware())
	{
		// Orders
		user.GET("/orders", controllers.ListMyOrders)
		user.GET("/orders/:id", controllers.GetOrderDetails)
		user.GET("/orders/:id/invoice", controllers.DownloadInvoice)

		// Payments
		user.POST("/payment/order", controllers.CreatePaymentOrder)
		user.POST("/payment/verify", controllers.VerifyPayment)
		user.POST("/payment/failed", controllers.RecordFailedPayment)
	}
}
