package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	AppEnv   string
	LogLevel string

	// Endpoint is the backend base URL including the API prefix,
	// e.g. "https://store.example.com/api/v1".
	Endpoint string

	HTTPTimeout    time.Duration
	SearchDebounce time.Duration

	// HTTPPort is only used by the dev server.
	HTTPPort int
}

func Load() Config {
	// Best effort, a missing .env file is fine.
	_ = godotenv.Load()

	return Config{
		AppEnv:         getEnv("APP_ENV", "dev"),
		LogLevel:       getEnv("LOG_LEVEL", "info"),
		Endpoint:       getEnv("STOREFRONT_ENDPOINT", "http://localhost:8082/api/v1"),
		HTTPTimeout:    getEnvMS("HTTP_TIMEOUT_MS", 15000),
		SearchDebounce: getEnvMS("SEARCH_DEBOUNCE_MS", 500),
		HTTPPort:       getEnvInt("HTTP_PORT", 8082),
	}
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getEnvInt(key string, def int) int {
	v := os.Getenv(key)

	if v == "" {
		return def
	}

	n, err := strconv.Atoi(v)
	if err != nil {
		return def
	}
	return n
}

func getEnvMS(key string, def int) time.Duration {
	return time.Duration(getEnvInt(key, def)) * time.Millisecond
}
