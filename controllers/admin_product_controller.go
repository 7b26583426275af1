package controllers

import (
	"strconv"

	"github.com/hungerbites/backend/config"
	"github.com/hungerbites/backend/models"
	"github.com/hungerbites/backend/utils"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// ProductRequest represents the request body for creating/updating a product
type ProductRequest struct {
	Name        string  `json:"name" binding:"required"`
	Description string  `json:"description"`
	Price       float64 `json:"price" binding:"required"`
	Stock       int     `json:"stock"`
	CategoryID  uint    `json:"category_id" binding:"required"`
	IsActive    *bool   `json:"is_active"`
}

// CreateProduct creates a new product
func CreateProduct(c *gin.Context) {
	var req ProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, "Invalid request", err.Error())
		return
	}

	if err := utils.ValidatePrice(req.Price); err != nil {
		utils.BadRequest(c, err.Error(), nil)
		return
	}
	if err := utils.ValidateStock(req.Stock); err != nil {
		utils.BadRequest(c, err.Error(), nil)
		return
	}

	var category models.Category
	if err := config.DB.First(&category, req.CategoryID).Error; err != nil {
		utils.BadRequest(c, "Category not found", nil)
		return
	}

	product := models.Product{
		Name:        req.Name,
		Description: req.Description,
		Price:       req.Price,
		Stock:       req.Stock,
		CategoryID:  req.CategoryID,
		IsActive:    true,
	}
	if req.IsActive != nil {
		product.IsActive = *req.IsActive
	}

	if err := config.DB.Create(&product).Error; err != nil {
		utils.LogError("Failed to create product: %v", err)
		utils.InternalServerError(c, "Failed to create product", err.Error())
		return
	}
	utils.LogInfo("Created product ID: %d", product.ID)

	utils.Created(c, "Product created successfully", gin.H{"product": product})
}

// UpdateProduct updates an existing product. Stock is not editable here;
// use RestockProduct so inventory changes stay auditable.
func UpdateProduct(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		utils.BadRequest(c, "Invalid product ID", nil)
		return
	}

	var product models.Product
	if err := config.DB.First(&product, id).Error; err != nil {
		utils.NotFound(c, "Product not found")
		return
	}

	var req ProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, "Invalid request", err.Error())
		return
	}
	if err := utils.ValidatePrice(req.Price); err != nil {
		utils.BadRequest(c, err.Error(), nil)
		return
	}

	updates := map[string]interface{}{
		"name":        req.Name,
		"description": req.Description,
		"price":       req.Price,
		"category_id": req.CategoryID,
	}
	if req.IsActive != nil {
		updates["is_active"] = *req.IsActive
	}

	if err := config.DB.Model(&product).Updates(updates).Error; err != nil {
		utils.LogError("Failed to update product ID: %d: %v", product.ID, err)
		utils.InternalServerError(c, "Failed to update product", err.Error())
		return
	}
	utils.LogInfo("Updated product ID: %d", product.ID)

	utils.Success(c, "Product updated successfully", gin.H{"product": product})
}

// DeleteProduct soft-deletes a product
func DeleteProduct(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		utils.BadRequest(c, "Invalid product ID", nil)
		return
	}

	if err := config.DB.Delete(&models.Product{}, id).Error; err != nil {
		utils.LogError("Failed to delete product ID: %d: %v", id, err)
		utils.InternalServerError(c, "Failed to delete product", nil)
		return
	}
	utils.LogInfo("Deleted product ID: %d", id)

	utils.Success(c, "Product deleted successfully", nil)
}

// RestockProduct increments a product's stock by the requested quantity
func RestockProduct(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		utils.BadRequest(c, "Invalid product ID", nil)
		return
	}

	var req struct {
		Quantity int `json:"quantity" binding:"required,gt=0"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, "Quantity must be a positive integer", err.Error())
		return
	}

	var product models.Product
	if err := config.DB.First(&product, id).Error; err != nil {
		utils.NotFound(c, "Product not found")
		return
	}

	if err := config.DB.Model(&models.Product{}).Where("id = ?", product.ID).
		UpdateColumn("stock", gorm.Expr("stock + ?", req.Quantity)).Error; err != nil {
		utils.LogError("Failed to restock product ID: %d: %v", product.ID, err)
		utils.InternalServerError(c, "Failed to restock product", nil)
		return
	}
	utils.LogInfo("Restocked product ID: %d by %d units", product.ID, req.Quantity)

	utils.Success(c, "Product restocked successfully", gin.H{
		"product_id": product.ID,
		"stock":      product.Stock + req.Quantity,
	})
}

// UploadProductImage stores a product image and records its URL
func UploadProductImage(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		utils.BadRequest(c, "Invalid product ID", nil)
		return
	}

	var product models.Product
	if err := config.DB.First(&product, id).Error; err != nil {
		utils.NotFound(c, "Product not found")
		return
	}

	file, err := c.FormFile("image")
	if err != nil {
		utils.BadRequest(c, "Image file is required", err.Error())
		return
	}

	cfg, err := config.LoadConfig()
	if err != nil {
		utils.InternalServerError(c, "Failed to load config", nil)
		return
	}

	url, err := utils.SaveUploadedFile(file, cfg.UploadDir)
	if err != nil {
		utils.BadRequest(c, err.Error(), nil)
		return
	}

	if err := config.DB.Model(&product).Update("image_url", url).Error; err != nil {
		utils.LogError("Failed to save image URL for product ID: %d: %v", product.ID, err)
		utils.InternalServerError(c, "Failed to save image", nil)
		return
	}
	utils.LogInfo("Uploaded image for product ID: %d", product.ID)

	utils.Success(c, "Image uploaded successfully", gin.H{"image_url": url})
}

// CreateCategory creates a new product category
func CreateCategory(c *gin.Context) {
	var req struct {
		Name        string `json:"name" binding:"required"`
		Description string `json:"description"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, "Invalid request", err.Error())
		return
	}

	var existing models.Category
	if err := config.DB.Where("LOWER(name) = LOWER(?)", req.Name).First(&existing).Error; err == nil {
		utils.Conflict(c, "Category already exists", nil)
		return
	}

	category := models.Category{
		Name:        req.Name,
		Description: req.Description,
		IsActive:    true,
	}
	if err := config.DB.Create(&category).Error; err != nil {
		utils.LogError("Failed to create category: %v", err)
		utils.InternalServerError(c, "Failed to create category", err.Error())
		return
	}

	utils.Created(c, "Category created successfully", gin.H{"category": category})
}
