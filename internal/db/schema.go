package db

import (
	"context"
	"fmt"

	"todo_webapp/internal/logger"

	"github.com/jackc/pgx/v5/pgxpool"
)

const createTasksTable = `
CREATE TABLE tasks (
    id SERIAL PRIMARY KEY,
    title VARCHAR(255) NOT NULL,
    completed BOOLEAN DEFAULT false,
    created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
)`

const seedTasks = `
INSERT INTO tasks (title, completed) VALUES
    ('Aprender Docker', false),
    ('Configurar PostgreSQL', true),
    ('Implementar API REST', false)`

// EnsureSchema creates the tasks table and its example rows the first
// time the service runs against a fresh database. On every later start
// the table already exists and nothing is touched. Any error here
// aborts startup.
func EnsureSchema(ctx context.Context, pool *pgxpool.Pool) error {
	var exists bool
	err := pool.QueryRow(ctx, `
		SELECT EXISTS (
			SELECT FROM information_schema.tables
			WHERE table_schema = 'public'
			AND table_name = 'tasks'
		)`).Scan(&exists)
	if err != nil {
		return fmt.Errorf("check tasks table: %w", err)
	}

	if exists {
		logger.Info("tasks table already exists")
		return nil
	}

	if _, err := pool.Exec(ctx, createTasksTable); err != nil {
		return fmt.Errorf("create tasks table: %w", err)
	}
	if _, err := pool.Exec(ctx, seedTasks); err != nil {
		return fmt.Errorf("seed tasks table: %w", err)
	}

	logger.Info("tasks table created and seeded")
	return nil
}
