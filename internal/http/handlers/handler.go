package handlers

import (
	"context"

	"todo_webapp/internal/domain"
)

// TaskStore is what the task handlers need from the persistence gateway.
// Satisfied by repository.TaskRepository.
type TaskStore interface {
	List(ctx context.Context) ([]domain.Task, error)
	Create(ctx context.Context, title string) (domain.Task, error)
	SetCompleted(ctx context.Context, id int64, completed bool) (domain.Task, error)
	Rename(ctx context.Context, id int64, title string) (domain.Task, error)
	Delete(ctx context.Context, id int64) error
}

type Handler struct {
	Tasks TaskStore
}

func NewHandler(tasks TaskStore) *Handler {
	return &Handler{Tasks: tasks}
}
