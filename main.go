package main

import (
	"log"

	"github.com/hungerbites/backend/config"
	"github.com/hungerbites/backend/controllers"
	"github.com/hungerbites/backend/routes"
	"github.com/hungerbites/backend/shiprocket"
	"github.com/hungerbites/backend/utils"
)

func main() {
	// Initialize logger
	if err := utils.InitLogger(); err != nil {
		log.Fatal("Failed to initialize logger:", err)
	}

	// Load environment variables
	cfg, err := config.LoadConfig()
	if err != nil {
		utils.LogError("Error loading config: %v", err)
		log.Fatal("Error loading config:", err)
	}

	// Initialize database
	config.InitDB()

	// Create sample admin
	if err := controllers.CreateSampleAdmin(); err != nil {
		utils.LogError("Failed to create sample admin: %v", err)
		log.Fatal("Failed to create sample admin:", err)
	}

	// Shipping integration is optional; without credentials the shipping
	// endpoints answer 503 instead of failing startup
	if cfg.ShiprocketEmail != "" && cfg.ShiprocketPassword != "" {
		controllers.ShippingClient = shiprocket.NewClient(cfg.ShiprocketBaseURL, cfg.ShiprocketEmail, cfg.ShiprocketPassword)
	} else {
		utils.LogInfo("Shiprocket credentials not set, shipping endpoints disabled")
	}

	// Set up router
	router := routes.SetupRouter()

	utils.LogInfo("Server starting on port %s", cfg.Port)
	if err := router.Run(":" + cfg.Port); err != nil {
		utils.LogError("Error starting server: %v", err)
		log.Fatal("Error starting server:", err)
	}
}
