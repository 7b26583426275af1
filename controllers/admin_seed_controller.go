package controllers

import (
	"os"

	"github.com/hungerbites/backend/config"
	"github.com/hungerbites/backend/models"
	"github.com/hungerbites/backend/utils"
)

// CreateSampleAdmin ensures an admin account exists, using ADMIN_EMAIL and
// ADMIN_PASSWORD when set. Skips silently if an admin is already present.
func CreateSampleAdmin() error {
	var count int64
	if err := config.DB.Model(&models.User{}).Where("is_admin = ?", true).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	email := os.Getenv("ADMIN_EMAIL")
	if email == "" {
		email = "admin@hungerbites.local"
	}
	password := os.Getenv("ADMIN_PASSWORD")
	if password == "" {
		password = "Admin@123"
	}

	hashed, err := utils.HashPassword(password)
	if err != nil {
		return err
	}

	admin := models.User{
		Username: "admin",
		Email:    email,
		Password: hashed,
		IsAdmin:  true,
	}
	if err := config.DB.Create(&admin).Error; err != nil {
		return err
	}
	utils.LogInfo("Created admin account %s", email)
	return nil
}
