package config

import (
	"os"
	"strconv"
	"strings"
)

// Config carries everything the binaries read from the environment.
type Config struct {
	// Server
	Port        string
	Environment string

	// Persistence
	DatabaseDSN string

	// Messaging
	KafkaBrokers []string
	RedisAddr    string

	// Auth
	JWTSecret string

	// Google Maps platform (route and place lookups)
	GoogleAPIKey string

	// Monitoring
	EnableMetrics bool
}

func Load() *Config {
	return &Config{
		Port:        getEnv("PORT", "8080"),
		Environment: getEnv("ENVIRONMENT", "development"),

		DatabaseDSN: getEnv("DATABASE_DSN",
			"host=localhost user=bustrip password=bustrip dbname=bustrip port=5432 sslmode=disable TimeZone=UTC"),

		KafkaBrokers: strings.Split(getEnv("KAFKA_BROKERS", "localhost:9092"), ","),
		RedisAddr:    getEnv("REDIS_ADDR", "localhost:6379"),

		JWTSecret: getEnv("JWT_SECRET", "dev-secret"),

		GoogleAPIKey: getEnv("GOOGLE_API_KEY", ""),

		EnableMetrics: getEnvAsBool("ENABLE_METRICS", true),
	}
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok && value != "" {
		return value
	}
	return fallback
}

func getEnvAsBool(key string, fallback bool) bool {
	value, ok := os.LookupEnv(key)
	if !ok || value == "" {
		return fallback
	}
	parsed, err := strconv.ParseBool(value)
	if err != nil {
		return fallback
	}
	return parsed
}
