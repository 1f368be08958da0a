package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/noah-isme/employee-availability-api/internal/service"
	"github.com/noah-isme/employee-availability-api/internal/source"
	"github.com/noah-isme/employee-availability-api/pkg/config"
	"github.com/noah-isme/employee-availability-api/pkg/logger"
)

// @title Employee Availability API
// @version 1.0.0
// @description Working days, busy and free slots, and availability lookups for one employee schedule
// @BasePath /api/v1
// @schemes http

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logr, err := logger.New(cfg)
	if err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}
	defer logr.Sync() //nolint:errcheck

	if cfg.Env == config.EnvProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	var metrics *service.MetricsService
	if cfg.Metrics.Enabled {
		metrics = service.NewMetricsService()
	}

	src, cleanup, err := source.FromConfig(ctx, cfg, logr, metrics)
	if err != nil {
		logr.Fatal("failed to configure schedule source", zap.Error(err))
	}
	defer cleanup()

	engine, err := source.Load(ctx, src, logr, metrics)
	if err != nil {
		logr.Fatal("failed to load schedule", zap.Error(err))
	}

	availability := service.NewAvailabilityService(engine, metrics, logr)
	router := newRouter(cfg, logr, metrics, availability, func() bool { return len(engine.Days()) > 0 })

	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.Port),
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		logr.Sugar().Infow("server starting", "addr", srv.Addr, "env", cfg.Env, "source", src.Locator())
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logr.Sugar().Fatalw("server failed", "error", err)
		}
	}()

	<-ctx.Done()
	logr.Info("server shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logr.Error("server forced to shutdown", zap.Error(err))
		return
	}
	logr.Info("server stopped gracefully")
}
