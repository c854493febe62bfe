package config

import (
	"os"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
)

var (
	PORT        string
	DB_URL      string
	ADMIN_TOKEN string

	// Base URL the API is reachable at; used to derive public image URLs.
	PUBLIC_URL string

	// Object storage (optional). When MINIO_ENDPOINT is empty the media
	// routes answer 503.
	MINIO_ENDPOINT   string
	MINIO_ACCESS_KEY string
	MINIO_SECRET_KEY string
	MINIO_BUCKET     string
	MINIO_USE_SSL    bool

	LOG_LEVEL string
)

func LoadEnv() {
	err := godotenv.Load()
	if err != nil {
		logrus.Info("No .env file found. Using system environment variables.")
	}

	PORT = getEnv("PORT", "8080")
	DB_URL = mustEnv("DB_URL")
	ADMIN_TOKEN = mustEnv("ADMIN_TOKEN")

	PUBLIC_URL = getEnv("PUBLIC_URL", "http://localhost:"+PORT)

	MINIO_ENDPOINT = getEnv("MINIO_ENDPOINT", "")
	MINIO_ACCESS_KEY = getEnv("MINIO_ACCESS_KEY", "")
	MINIO_SECRET_KEY = getEnv("MINIO_SECRET_KEY", "")
	MINIO_BUCKET = getEnv("MINIO_BUCKET", "portfolio-media")
	MINIO_USE_SSL = getEnv("MINIO_USE_SSL", "false") == "true"

	LOG_LEVEL = getEnv("LOG_LEVEL", "info")
}

func mustEnv(key string) string {
	v, ok := os.LookupEnv(key)
	if !ok || v == "" {
		logrus.Fatalf("Missing required environment variable: %s", key)
	}
	return v
}

func getEnv(key string, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}
