package handlers

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"todo_webapp/internal/domain"
	"todo_webapp/internal/logger"

	"github.com/gin-gonic/gin"
)

const (
	msgTitleRequired = "El título es requerido"
	msgUpdateFields  = "Se requiere completed o title en el body"
	msgTaskNotFound  = "Tarea no encontrada"
	msgInternalError = "Error interno del servidor"
)

type createTaskIn struct {
	Title string `json:"title"`
}

type updateTaskIn struct {
	Completed *bool   `json:"completed"`
	Title     *string `json:"title"`
}

// ListTasks returns every task, newest first.
func (h *Handler) ListTasks(c *gin.Context) {
	tasks, err := h.Tasks.List(c.Request.Context())
	if err != nil {
		logger.Error("list tasks failed", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": msgInternalError})
		return
	}
	c.JSON(http.StatusOK, tasks)
}

// CreateTask inserts a task from {title}. The title is trimmed and must
// not be empty after trimming.
func (h *Handler) CreateTask(c *gin.Context) {
	var in createTaskIn
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": msgTitleRequired})
		return
	}

	title := strings.TrimSpace(in.Title)
	if title == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": msgTitleRequired})
		return
	}

	task, err := h.Tasks.Create(c.Request.Context(), title)
	if err != nil {
		logger.Error("create task failed", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": msgInternalError})
		return
	}
	c.JSON(http.StatusCreated, task)
}

// UpdateTask applies exactly one change to the task: either the
// completed flag or the title. When both fields are in the body,
// completed wins and title is ignored.
func (h *Handler) UpdateTask(c *gin.Context) {
	id, ok := taskID(c)
	if !ok {
		return
	}

	var in updateTaskIn
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": msgUpdateFields})
		return
	}

	var (
		task domain.Task
		err  error
	)
	switch {
	case in.Completed != nil:
		task, err = h.Tasks.SetCompleted(c.Request.Context(), id, *in.Completed)
	case in.Title != nil:
		title := strings.TrimSpace(*in.Title)
		if title == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": msgTitleRequired})
			return
		}
		task, err = h.Tasks.Rename(c.Request.Context(), id, title)
	default:
		c.JSON(http.StatusBadRequest, gin.H{"error": msgUpdateFields})
		return
	}

	if err != nil {
		h.taskError(c, "update task failed", err)
		return
	}
	c.JSON(http.StatusOK, task)
}

// DeleteTask removes the task with the given id.
func (h *Handler) DeleteTask(c *gin.Context) {
	id, ok := taskID(c)
	if !ok {
		return
	}

	if err := h.Tasks.Delete(c.Request.Context(), id); err != nil {
		h.taskError(c, "delete task failed", err)
		return
	}
	c.Status(http.StatusNoContent)
}

// taskID parses the :id path param. A non-numeric id cannot match any
// row, so it is reported as not found.
func taskID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": msgTaskNotFound})
		return 0, false
	}
	return id, true
}

func (h *Handler) taskError(c *gin.Context, msg string, err error) {
	if errors.Is(err, domain.ErrTaskNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": msgTaskNotFound})
		return
	}
	logger.Error(msg, "error", err)
	c.JSON(http.StatusInternalServerError, gin.H{"error": msgInternalError})
}
