package models

import (
	"gorm.io/gorm"
)

// User represents a customer or back-office user
type User struct {
	gorm.Model
	Username  string `gorm:"uniqueIndex;not null" json:"username"`
	Email     string `gorm:"uniqueIndex;not null" json:"email"`
	Password  string `json:"-"`
	Phone     string `json:"phone"`
	IsBlocked bool   `json:"is_blocked"`
	IsAdmin   bool   `json:"is_admin" gorm:"default:false"`
}

// Category represents a product category
type Category struct {
	gorm.Model
	Name        string    `json:"name" gorm:"uniqueIndex"`
	Description string    `json:"description"`
	Products    []Product `json:"products,omitempty"`
	IsActive    bool      `json:"is_active" gorm:"default:true"`
}

// Product represents an item in the catalog. Price is authoritative;
// stock is mutated only by order placement, cancellation restock and
// admin restocks.
type Product struct {
	gorm.Model
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Price       float64  `json:"price"`
	Stock       int      `json:"stock"`
	CategoryID  uint     `json:"category_id"`
	Category    Category `json:"category,omitempty" gorm:"foreignKey:CategoryID"`
	ImageURL    string   `json:"image_url"`
	IsActive    bool     `json:"is_active" gorm:"default:true"`
}
