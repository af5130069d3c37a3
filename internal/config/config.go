package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	AppPort string

	DBHost     string
	DBUser     string
	DBPassword string
	DBName     string
	DBPort     string

	// Readiness probe against the database at startup
	DBRetryAttempts int
	DBRetryDelay    time.Duration

	LogLevel string
	LogJSON  bool
}

// Load reads configuration from the environment. Every value has a
// fixed fallback so the service starts with no env at all.
func Load() *Config {
	_ = godotenv.Load()

	return &Config{
		AppPort: getEnv("PORT", "3000"),

		DBHost:     getEnv("DB_HOST", "localhost"),
		DBUser:     getEnv("DB_USER", "postgres"),
		DBPassword: getEnv("DB_PASSWORD", "password"),
		DBName:     getEnv("DB_NAME", "todoapp"),
		DBPort:     getEnv("DB_PORT", "5432"),

		DBRetryAttempts: getEnvAsInt("DB_RETRY_ATTEMPTS", 5),
		DBRetryDelay:    time.Duration(getEnvAsInt("DB_RETRY_DELAY_SECONDS", 5)) * time.Second,

		LogLevel: getEnv("LOG_LEVEL", "info"),
		LogJSON:  getEnv("LOG_JSON", "") == "true",
	}
}

// DatabaseDSN builds the pgx connection string for the configured store.
func (c *Config) DatabaseDSN() string {
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s",
		c.DBHost, c.DBPort, c.DBUser, c.DBPassword, c.DBName)
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvAsInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			return n
		}
	}
	return fallback
}
