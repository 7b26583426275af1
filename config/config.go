package config

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
)

// Config holds all configuration for the application
type Config struct {
	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	JWTSecret  string
	Port       string
	Env        string

	RazorpayKey    string
	RazorpaySecret string

	ShiprocketBaseURL  string
	ShiprocketEmail    string
	ShiprocketPassword string

	SMTPHost     string
	SMTPPort     string
	SMTPUsername string
	SMTPPassword string
	SMTPFrom     string

	UploadDir string
}

// LoadConfig loads configuration from environment variables
func LoadConfig() (*Config, error) {
	err := godotenv.Load()
	if err != nil {
		return nil, fmt.Errorf("error loading .env file: %v", err)
	}

	config := &Config{
		DBHost:     os.Getenv("DB_HOST"),
		DBPort:     os.Getenv("DB_PORT"),
		DBUser:     os.Getenv("DB_USER"),
		DBPassword: os.Getenv("DB_PASSWORD"),
		DBName:     os.Getenv("DB_NAME"),
		JWTSecret:  os.Getenv("JWT_SECRET"),
		Port:       os.Getenv("PORT"),
		Env:        os.Getenv("ENV"),

		RazorpayKey:    os.Getenv("RAZORPAY_KEY"),
		RazorpaySecret: os.Getenv("RAZORPAY_SECRET"),

		ShiprocketBaseURL:  os.Getenv("SHIPROCKET_BASE_URL"),
		ShiprocketEmail:    os.Getenv("SHIPROCKET_EMAIL"),
		ShiprocketPassword: os.Getenv("SHIPROCKET_PASSWORD"),

		SMTPHost:     os.Getenv("SMTP_HOST"),
		SMTPPort:     os.Getenv("SMTP_PORT"),
		SMTPUsername: os.Getenv("SMTP_USERNAME"),
		SMTPPassword: os.Getenv("SMTP_PASSWORD"),
		SMTPFrom:     os.Getenv("SMTP_FROM"),

		UploadDir: os.Getenv("UPLOAD_DIR"),
	}

	if config.Port == "" {
		config.Port = "8080"
	}
	if config.UploadDir == "" {
		config.UploadDir = "uploads"
	}
	if config.ShiprocketBaseURL == "" {
		config.ShiprocketBaseURL = "https://apiv2.shiprocket.in/v1/external"
	}

	return config, nil
}
