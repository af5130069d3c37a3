package handlers

import (
	"context"
	"net/http"
	"time"

	"todo_webapp/internal/db"

	"github.com/gin-gonic/gin"
)

// HealthHandler reports combined service + store health.
type HealthHandler struct {
	db db.Pinger
}

func NewHealthHandler(db db.Pinger) *HealthHandler {
	return &HealthHandler{db: db}
}

// Health answers 200 when the store is reachable and 500 otherwise.
func (h *HealthHandler) Health(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 3*time.Second)
	defer cancel()

	now := time.Now().UTC().Format(time.RFC3339)

	if err := h.db.Ping(ctx); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":    "ERROR",
			"message":   "Error de conexión a la base de datos",
			"timestamp": now,
			"database":  "disconnected",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":    "OK",
		"message":   "Backend y base de datos funcionando correctamente",
		"timestamp": now,
		"database":  "connected",
	})
}
