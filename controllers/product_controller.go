package controllers

import (
	"strconv"

	"github.com/hungerbites/backend/config"
	"github.com/hungerbites/backend/models"
	"github.com/hungerbites/backend/utils"
	"github.com/gin-gonic/gin"
)

// GetProducts lists active products, optionally filtered by category
func GetProducts(c *gin.Context) {
	query := config.DB.Where("is_active = ?", true)
	if categoryID := c.Query("category_id"); categoryID != "" {
		query = query.Where("category_id = ?", categoryID)
	}

	var products []models.Product
	if err := query.Preload("Category").Order("created_at DESC").Find(&products).Error; err != nil {
		utils.LogError("Failed to fetch products: %v", err)
		utils.InternalServerError(c, "Failed to fetch products", nil)
		return
	}

	utils.Success(c, "Products retrieved successfully", gin.H{"products": products})
}

// GetProductDetails returns a single product by id
func GetProductDetails(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		utils.BadRequest(c, "Invalid product ID", nil)
		return
	}

	var product models.Product
	if err := config.DB.Preload("Category").Where("id = ? AND is_active = ?", id, true).First(&product).Error; err != nil {
		utils.NotFound(c, "Product not found")
		return
	}

	utils.Success(c, "Product retrieved successfully", gin.H{"product": product})
}

// ListCategories lists active categories
func ListCategories(c *gin.Context) {
	var categories []models.Category
	if err := config.DB.Where("is_active = ?", true).Order("name").Find(&categories).Error; err != nil {
		utils.LogError("Failed to fetch categories: %v", err)
		utils.InternalServerError(c, "Failed to fetch categories", nil)
		return
	}

	utils.Success(c, "Categories retrieved successfully", gin.H{"categories": categories})
}
