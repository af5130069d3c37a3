package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{
		"PORT", "DB_HOST", "DB_USER", "DB_PASSWORD", "DB_NAME", "DB_PORT",
		"DB_RETRY_ATTEMPTS", "DB_RETRY_DELAY_SECONDS", "LOG_LEVEL", "LOG_JSON",
	} {
		t.Setenv(key, "")
	}
}

func TestLoadDefaults(t *testing.T) {
	clearEnv(t)

	cfg := Load()

	assert.Equal(t, "3000", cfg.AppPort)
	assert.Equal(t, "localhost", cfg.DBHost)
	assert.Equal(t, "postgres", cfg.DBUser)
	assert.Equal(t, "password", cfg.DBPassword)
	assert.Equal(t, "todoapp", cfg.DBName)
	assert.Equal(t, "5432", cfg.DBPort)
	assert.Equal(t, 5, cfg.DBRetryAttempts)
	assert.Equal(t, 5*time.Second, cfg.DBRetryDelay)
}

func TestLoadOverrides(t *testing.T) {
	clearEnv(t)
	t.Setenv("PORT", "8080")
	t.Setenv("DB_HOST", "db.internal")
	t.Setenv("DB_RETRY_ATTEMPTS", "3")
	t.Setenv("DB_RETRY_DELAY_SECONDS", "1")

	cfg := Load()

	assert.Equal(t, "8080", cfg.AppPort)
	assert.Equal(t, "db.internal", cfg.DBHost)
	assert.Equal(t, 3, cfg.DBRetryAttempts)
	assert.Equal(t, time.Second, cfg.DBRetryDelay)
}

func TestLoadIgnoresBadInts(t *testing.T) {
	clearEnv(t)
	t.Setenv("DB_RETRY_ATTEMPTS", "not-a-number")
	t.Setenv("DB_RETRY_DELAY_SECONDS", "-2")

	cfg := Load()

	assert.Equal(t, 5, cfg.DBRetryAttempts)
	assert.Equal(t, 5*time.Second, cfg.DBRetryDelay)
}

func TestDatabaseDSN(t *testing.T) {
	clearEnv(t)

	cfg := Load()

	assert.Equal(t,
		"host=localhost port=5432 user=postgres password=password dbname=todoapp",
		cfg.DatabaseDSN())
}
