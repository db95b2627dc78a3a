package config

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

type Config struct {
	DBHost      string
	DBUser      string
	DBPassword  string
	DBName      string
	DBPort      string
	AppPort     string
	AppEnv      string
	JWTSecret   string
	UploadDir   string
	PaymentsDir string
}

func LoadConfig() *Config {
	_ = godotenv.Load()

	cfg := &Config{
		DBHost:      os.Getenv("DB_HOST"),
		DBUser:      os.Getenv("DB_USER"),
		DBPassword:  os.Getenv("DB_PASSWORD"),
		DBName:      os.Getenv("DB_NAME"),
		DBPort:      os.Getenv("DB_PORT"),
		AppPort:     os.Getenv("APP_PORT"),
		AppEnv:      os.Getenv("APP_ENV"),
		JWTSecret:   os.Getenv("JWT_SECRET"),
		UploadDir:   os.Getenv("UPLOAD_DIR"),
		PaymentsDir: os.Getenv("PAYMENTS_DIR"),
	}

	if cfg.UploadDir == "" {
		cfg.UploadDir = "static/uploads/products"
	}
	if cfg.PaymentsDir == "" {
		cfg.PaymentsDir = "static/uploads/payments"
	}

	if cfg.DBHost == "" {
		log.Fatal("Environment variables not loaded properly")
	}

	return cfg
}
