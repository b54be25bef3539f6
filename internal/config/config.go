package config

import (
	"os"
	"time"
)

// Config holds application configuration
type Config struct {
	// Server
	HTTPAddr string
	LogLevel string

	// Gemini API
	GeminiAPIEndpoint string // if set, overrides default Gemini API base URL (e.g. http://localhost:31300/gemini)
	GeminiModelText   string // prompt enhancement, e.g. gemini-2.5-flash
	GeminiModelImage  string // image generation, e.g. gemini-3-pro-image-preview

	// Image output
	ImageAspectRatio string // e.g. 1:1, 16:9
	ImageSize        string // e.g. 1K, 2K

	// Processing
	GenerateTimeout time.Duration // upper bound for the two chained Gemini calls
}

// Load loads configuration from environment variables
func Load() *Config {
	return &Config{
		HTTPAddr: getEnv("HTTP_ADDR", ":8080"),
		LogLevel: getEnv("LOG_LEVEL", "info"),

		GeminiAPIEndpoint: getEnv("GEMINI_API_ENDPOINT", ""),
		GeminiModelText:   getEnv("GEMINI_MODEL_TEXT", "gemini-2.5-flash"),
		GeminiModelImage:  getEnv("GEMINI_MODEL_IMAGE", "gemini-3-pro-image-preview"),

		ImageAspectRatio: getEnv("IMAGE_ASPECT_RATIO", "1:1"),
		ImageSize:        getEnv("IMAGE_SIZE", "1K"),

		GenerateTimeout: getEnvDuration("GENERATE_TIMEOUT", 2*time.Minute),
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
	}
	return defaultValue
}
