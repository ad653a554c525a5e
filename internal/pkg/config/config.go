// Package config loads the storefront's environment configuration.
package config

import "os"

// Storage backend names accepted in STORAGE_BACKEND.
const (
	BackendSQLite = "sqlite"
	BackendRedis  = "redis"
	BackendMemory = "memory"
)

type Config struct {
	HTTPAddr string
	LogLevel string

	// StorageBackend selects where the key-value namespace lives:
	// sqlite (default), redis, or memory.
	StorageBackend string
	SQLitePath     string
	RedisAddr      string

	// AdminPassword gates the /admin routes. Empty keeps them closed.
	AdminPassword string
}

func Load() Config {
	return Config{
		HTTPAddr:       getEnv("HTTP_ADDR", ":8080"),
		LogLevel:       getEnv("LOG_LEVEL", "info"),
		StorageBackend: getEnv("STORAGE_BACKEND", BackendSQLite),
		SQLitePath:     getEnv("SQLITE_PATH", "./data/freshmart.db"),
		RedisAddr:      getEnv("REDIS_ADDR", "localhost:6379"),
		AdminPassword:  getEnv("ADMIN_PASSWORD", ""),
	}
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
