package routes

import (
	"github.com/hungerbites/backend/controllers"
	"github.com/hungerbites/backend/middleware"
	"github.com/gin-gonic/gin"
)

// initAdminRoutes initializes all admin-related routes
func initAdminRoutes(router *gin.RouterGroup) {
	admin := router.Group("/admin")
	admin.Use(middleware.AuthMiddleware(), middleware.AdminMiddleware())
	{
		// Category management
		admin.POST("/categories", controllers.CreateCategory)

		// Product management
		admin.POST("/products", controllers.CreateProduct)
		admin.PUT("/products/:id", controllers.UpdateProduct)
		admin.DELETE("/products/:id", controllers.DeleteProduct)
		admin.PATCH("/products/:id/restock", controllers.RestockProduct)
		admin.POST("/products/:id/image", controllers.UploadProductImage)

		// Coupon management
		admin.POST("/coupons", controllers.CreateCoupon)
		admin.PUT("/coupons/:id", controllers.UpdateCoupon)
		admin.DELETE("/coupons/:id", controllers.DeleteCoupon)
		admin.GET("/coupons", controllers.ListCoupons)

		// Order management
		admin.GET("/orders", controllers.AdminListOrders)
		admin.PUT("/orders/:id/status", controllers.AdminUpdateOrderStatus)

		// Shipping
		admin.POST("/orders/:id/create-shipment", controllers.CreateShipment)
		admin.POST("/orders/:id/generate-awb", controllers.GenerateAWB)
		admin.POST("/orders/:id/request-pickup", controllers.RequestPickup)
	}
}
