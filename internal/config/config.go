// Package config provides configuration for the feelio engine.
package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config holds the engine configuration.
type Config struct {
	// Server settings
	HTTPPort    int
	CORSOrigins []string

	// Database
	DatabaseURL string

	// LLM settings
	GeminiAPIKey string
	GeminiModel  string
	LLMTimeout   time.Duration

	// Safety
	EnableSafetyNet bool

	// Logging
	LogLevel string
}

// Load loads configuration from a .env file (if present) and environment
// variables.
func Load() *Config {
	// Missing .env is fine; env vars still apply.
	_ = godotenv.Load()

	cfg := &Config{
		HTTPPort:        getEnvInt("HTTP_PORT", 8080),
		CORSOrigins:     []string{getEnv("CORS_ORIGINS", "*")},
		DatabaseURL:     getEnv("DATABASE_URL", "file:feelio.db?cache=shared&mode=rwc"),
		GeminiAPIKey:    getEnv("GEMINI_API_KEY", ""),
		GeminiModel:     getEnv("GEMINI_MODEL", "gemini-2.5-flash"),
		LLMTimeout:      time.Duration(getEnvInt("LLM_TIMEOUT_MS", 30000)) * time.Millisecond,
		EnableSafetyNet: getEnvBool("ENABLE_SAFETY_NET", true),
		LogLevel:        getEnv("LOG_LEVEL", "info"),
	}
	return cfg
}

func getEnv(key, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return defaultVal
}

func getEnvInt(key string, defaultVal int) int {
	if val := os.Getenv(key); val != "" {
		if intVal, err := strconv.Atoi(val); err == nil {
			return intVal
		}
	}
	return defaultVal
}

func getEnvBool(key string, defaultVal bool) bool {
	if val := os.Getenv(key); val != "" {
		if b, err := strconv.ParseBool(val); err == nil {
			return b
		}
	}
	return defaultVal
}
