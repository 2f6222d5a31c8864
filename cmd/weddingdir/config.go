package main

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config contains application-wide settings sourced from the environment.
type Config struct {
	Addr           string
	SiteURL        string
	DataDir        string
	UploadDir      string
	AllowedOrigins []string

	DataForSEOLogin    string
	DataForSEOPassword string
	DataForSEOTimeout  time.Duration

	LogLevel  string
	LogFormat string
}

func loadConfig() (Config, error) {
	_ = godotenv.Load()

	addr := fmt.Sprintf(":%s", envOrDefault("PORT", "8080"))

	timeout, err := time.ParseDuration(envOrDefault("DATAFORSEO_TIMEOUT", "5s"))
	if err != nil {
		return Config{}, fmt.Errorf("parse DATAFORSEO_TIMEOUT: %w", err)
	}

	return Config{
		Addr:           addr,
		SiteURL:        envOrDefault("SITE_URL", "http://localhost:8080"),
		DataDir:        os.Getenv("DATA_DIR"),
		UploadDir:      envOrDefault("UPLOAD_DIR", "uploads"),
		AllowedOrigins: parseAllowedOrigins(envOrDefault("CORS_ALLOWED_ORIGINS", "http://localhost:3000")),

		DataForSEOLogin:    os.Getenv("DATAFORSEO_USERNAME"),
		DataForSEOPassword: os.Getenv("DATAFORSEO_PASSWORD"),
		DataForSEOTimeout:  timeout,

		LogLevel:  envOrDefault("LOG_LEVEL", "info"),
		LogFormat: envOrDefault("LOG_FORMAT", "json"),
	}, nil
}

func envOrDefault(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func parseAllowedOrigins(raw string) []string {
	parts := strings.Split(raw, ",")
	var origins []string
	for _, part := range parts {
		trimmed := strings.TrimSpace(part)
		if trimmed != "" {
			origins = append(origins, trimmed)
		}
	}
	return origins
}
