package main

import (
	"context"
	"ctchen222/exercise-tracker/internal/api/controller"
	"ctchen222/exercise-tracker/internal/api/service"
	"ctchen222/exercise-tracker/internal/config"
	"ctchen222/exercise-tracker/internal/logger"
	"ctchen222/exercise-tracker/internal/server"
	"ctchen222/exercise-tracker/internal/storage"
	"ctchen222/exercise-tracker/internal/telemetry"
	"errors"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
)

func main() {
	ctx := context.Background()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	// Initialize telemetry before the logger so the otel log bridge has a provider.
	shutdown, err := telemetry.InitOtel(ctx, cfg.Telemetry)
	if err != nil {
		log.Fatalf("failed to initialize telemetry: %v", err)
	}
	defer func() {
		if err := shutdown(ctx); err != nil {
			log.Printf("Error shutting down telemetry: %v", err)
		}
	}()

	logger.Init(cfg.LogLevel, cfg.LogFormat, cfg.Telemetry.Enabled)

	// Open the store
	openCtx, cancelOpen := context.WithTimeout(ctx, 10*time.Second)
	store, err := storage.Open(openCtx, cfg.DatabaseURL)
	cancelOpen()
	if err != nil {
		slog.Error("failed to open store", "error", err)
		os.Exit(1)
	}
	defer func() {
		if err := store.Close(); err != nil {
			slog.Error("failed to close store", "error", err)
		}
	}()

	// Create services
	userService := service.NewUserService(store.Users)
	exerciseService := service.NewExerciseService(store.Users, store.Exercises, time.Now)

	// Create controllers
	userController := controller.NewUserController(userService)
	exerciseController := controller.NewExerciseController(exerciseService, cfg.StrictStatus)

	// Create the Gin-based server
	gin.SetMode(gin.ReleaseMode)
	srv, err := server.NewServer(userController, exerciseController, store)
	if err != nil {
		slog.Error("failed to create server", "error", err)
		os.Exit(1)
	}

	// Graceful shutdown
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	httpServer := &http.Server{
		Addr:              cfg.Addr(),
		Handler:           srv.Engine(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		slog.Info("Your app is listening", "addr", httpServer.Addr, "backend", store.Backend)
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("ListenAndServe failed", "error", err)
			stop <- syscall.SIGTERM
		}
	}()

	<-stop

	slog.Info("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		slog.Error("Server forced to shutdown", "error", err)
	}

	slog.Info("Server exiting")
}
