// Package config loads the service configuration from the environment.
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
)

// Config holds all configuration for the application.
type Config struct {
	// Server configuration
	ServerHost string
	ServerPort string `validate:"required,numeric"`

	// Recipe search API
	SpoonacularAPIKey string `validate:"required"`
	SpoonacularAPIURL string

	// Product lookup API
	OpenFoodFactsAPIURL string

	// Generative-AI collaborator; empty key disables it
	GeminiAPIKey string
	GeminiAPIURL string

	// Redis, used for rate limiting only; empty host disables it
	RedisHost     string
	RedisPort     string
	RedisPassword string
	RedisDB       int
	RedisURL      string

	AllowedOrigins []string
}

// LoadConfig reads environment variables (a local .env is honored when
// present) and validates the result.
func LoadConfig() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{
		ServerHost:          os.Getenv("SERVER_HOST"),
		ServerPort:          getEnv("SERVER_PORT", "8080"),
		SpoonacularAPIKey:   os.Getenv("SPOONACULAR_API_KEY"),
		SpoonacularAPIURL:   os.Getenv("SPOONACULAR_API_URL"),
		OpenFoodFactsAPIURL: os.Getenv("OPENFOODFACTS_API_URL"),
		GeminiAPIKey:        os.Getenv("GEMINI_API_KEY"),
		GeminiAPIURL:        os.Getenv("GEMINI_API_URL"),
		RedisHost:           os.Getenv("REDIS_HOST"),
		RedisPort:           getEnv("REDIS_PORT", "6379"),
		RedisPassword:       os.Getenv("REDIS_PASSWORD"),
		RedisURL:            os.Getenv("REDIS_URL"),
	}

	if dbStr := os.Getenv("REDIS_DB"); dbStr != "" {
		db, err := strconv.Atoi(dbStr)
		if err != nil {
			return nil, fmt.Errorf("invalid REDIS_DB %q: %w", dbStr, err)
		}
		cfg.RedisDB = db
	}

	if origins := os.Getenv("ALLOWED_ORIGINS"); origins != "" {
		for _, o := range strings.Split(origins, ",") {
			cfg.AllowedOrigins = append(cfg.AllowedOrigins, strings.TrimSpace(o))
		}
	}

	if err := validator.New().Struct(cfg); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return cfg, nil
}

// RateLimitEnabled reports whether Redis is configured at all.
func (c *Config) RateLimitEnabled() bool {
	return c.RedisHost != "" || c.RedisURL != ""
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
