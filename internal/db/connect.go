package db

import (
	"context"
	"fmt"
	"time"

	"todo_webapp/internal/logger"

	"github.com/jackc/pgx/v5/pgxpool"
)

// Pinger is the slice of the pool the readiness probe needs.
type Pinger interface {
	Ping(ctx context.Context) error
}

// Connect creates the process-wide connection pool. The pool is lazy:
// no round-trip happens here, WaitReady does the first one.
func Connect(ctx context.Context, dsn string) (*pgxpool.Pool, error) {
	pool, err := pgxpool.New(ctx, dsn)
	if err != nil {
		return nil, fmt.Errorf("create database pool: %w", err)
	}
	return pool, nil
}

// WaitReady blocks until the store answers a trivial round-trip, retrying
// up to attempts times with a fixed delay between tries. Exactly one
// attempt is in flight at a time. Returns an error once attempts are
// exhausted; the caller treats that as fatal.
func WaitReady(ctx context.Context, db Pinger, attempts int, delay time.Duration) error {
	for i := 1; i <= attempts; i++ {
		err := db.Ping(ctx)
		if err == nil {
			logger.Info("database connection established", "attempt", i)
			return nil
		}
		logger.Warn("database not ready", "attempt", i, "remaining", attempts-i, "error", err)

		if i == attempts {
			break
		}

		select {
		case <-time.After(delay):
		case <-ctx.Done():
			return ctx.Err()
		}
	}
	return fmt.Errorf("database not reachable after %d attempts", attempts)
}
