package repository

import (
	"context"
	"errors"

	"todo_webapp/internal/domain"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type TaskRepository struct {
	db *pgxpool.Pool
}

func NewTaskRepository(db *pgxpool.Pool) *TaskRepository {
	return &TaskRepository{db: db}
}

// List returns all tasks, newest first.
func (r *TaskRepository) List(ctx context.Context) ([]domain.Task, error) {
	rows, err := r.db.Query(ctx, `SELECT id, title, completed, created_at FROM tasks ORDER BY created_at DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	tasks := []domain.Task{}
	for rows.Next() {
		var t domain.Task
		if err := rows.Scan(&t.ID, &t.Title, &t.Completed, &t.CreatedAt); err != nil {
			return nil, err
		}
		tasks = append(tasks, t)
	}
	return tasks, rows.Err()
}

// Create inserts a task with the given title; id, completed and
// created_at come back from the store.
func (r *TaskRepository) Create(ctx context.Context, title string) (domain.Task, error) {
	var t domain.Task
	err := r.db.QueryRow(ctx,
		`INSERT INTO tasks (title) VALUES ($1) RETURNING id, title, completed, created_at`,
		title).Scan(&t.ID, &t.Title, &t.Completed, &t.CreatedAt)
	return t, err
}

// SetCompleted updates only the completed flag of the task.
func (r *TaskRepository) SetCompleted(ctx context.Context, id int64, completed bool) (domain.Task, error) {
	var t domain.Task
	err := r.db.QueryRow(ctx,
		`UPDATE tasks SET completed = $1 WHERE id = $2 RETURNING id, title, completed, created_at`,
		completed, id).Scan(&t.ID, &t.Title, &t.Completed, &t.CreatedAt)
	return t, mapNoRows(err)
}

// Rename updates only the title of the task.
func (r *TaskRepository) Rename(ctx context.Context, id int64, title string) (domain.Task, error) {
	var t domain.Task
	err := r.db.QueryRow(ctx,
		`UPDATE tasks SET title = $1 WHERE id = $2 RETURNING id, title, completed, created_at`,
		title, id).Scan(&t.ID, &t.Title, &t.Completed, &t.CreatedAt)
	return t, mapNoRows(err)
}

// Delete removes the task with the given id.
func (r *TaskRepository) Delete(ctx context.Context, id int64) error {
	var deleted int64
	err := r.db.QueryRow(ctx,
		`DELETE FROM tasks WHERE id = $1 RETURNING id`, id).Scan(&deleted)
	return mapNoRows(err)
}

func mapNoRows(err error) error {
	if errors.Is(err, pgx.ErrNoRows) {
		return domain.ErrTaskNotFound
	}
	return err
}
