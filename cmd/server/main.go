package main

import (
	"context"
	"errors"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"dashboard-seed-backend/internal/auth"
	"dashboard-seed-backend/internal/config"
	"dashboard-seed-backend/internal/database"
	"dashboard-seed-backend/internal/logging"
	"dashboard-seed-backend/internal/placeholder"
	"dashboard-seed-backend/internal/routes"
	service "dashboard-seed-backend/internal/services/seeding"

	"github.com/gin-gonic/gin"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	logger := logging.New(os.Stdout, cfg.Env, cfg.LogLevel)
	slog.SetDefault(logger)
	gin.SetMode(cfg.GinMode)

	// Connects on the first /seed request.
	provider := database.ProviderFor(cfg, logger)
	defer provider.Close()

	seedService := service.NewSeedService(provider, placeholder.Default(), auth.DefaultHasher, logger)
	r := routes.NewEngine(seedService, cfg.Origins(), logger)

	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: r,
	}

	go func() {
		logger.Info("Server starting", slog.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("server error", slog.String("error", err.Error()))
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("Shutting down server...")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("Server shutdown error", slog.String("error", err.Error()))
	}
}
