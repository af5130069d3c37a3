package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"todo_webapp/internal/config"
	"todo_webapp/internal/db"
	httpServer "todo_webapp/internal/http"
	"todo_webapp/internal/http/middleware"
	"todo_webapp/internal/logger"
	"todo_webapp/internal/repository"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func main() {
	cfg := config.Load()
	logger.Init(cfg.LogLevel, cfg.LogJSON)

	ctx := context.Background()

	pool, err := db.Connect(ctx, cfg.DatabaseDSN())
	if err != nil {
		logger.Fatal("failed to create database pool", "error", err)
	}
	defer pool.Close()

	// The store may still be starting (docker compose); wait for it
	// before touching the schema or accepting traffic.
	if err := db.WaitReady(ctx, pool, cfg.DBRetryAttempts, cfg.DBRetryDelay); err != nil {
		logger.Fatal("database never became ready", "error", err)
	}
	if err := db.EnsureSchema(ctx, pool); err != nil {
		logger.Fatal("schema initialization failed", "error", err)
	}

	r := gin.Default()
	r.Use(cors.Default())
	r.Use(middleware.Metrics())
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	taskRepo := repository.NewTaskRepository(pool)
	httpServer.RegisterRoutes(r, taskRepo, pool)

	srv := &http.Server{
		Addr:    ":" + cfg.AppPort,
		Handler: r,
	}

	go func() {
		logger.Info("server started", "port", cfg.AppPort)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("listen failed", "error", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Fatal("server forced to shutdown", "error", err)
	}

	logger.Info("server exited")
}
