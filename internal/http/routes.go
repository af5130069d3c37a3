package http

import (
	"net/http"

	"todo_webapp/internal/db"
	"todo_webapp/internal/http/handlers"

	"github.com/gin-gonic/gin"
)

// RegisterRoutes wires the task API, the health check and the static
// frontend onto the engine. Anything else answers a JSON 404.
func RegisterRoutes(r *gin.Engine, tasks handlers.TaskStore, pinger db.Pinger) {
	h := handlers.NewHandler(tasks)
	healthHandler := handlers.NewHealthHandler(pinger)

	r.GET("/health", healthHandler.Health)

	r.GET("/tasks", h.ListTasks)
	r.POST("/tasks", h.CreateTask)
	r.PUT("/tasks/:id", h.UpdateTask)
	r.DELETE("/tasks/:id", h.DeleteTask)

	// Frontend static files
	r.Static("/app", "./web")

	r.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Ruta no encontrada"})
	})
}
