package main

import (
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"

	_ "github.com/noah-isme/employee-availability-api/api/swagger"
	"github.com/noah-isme/employee-availability-api/internal/handler"
	"github.com/noah-isme/employee-availability-api/internal/middleware"
	"github.com/noah-isme/employee-availability-api/internal/service"
	"github.com/noah-isme/employee-availability-api/pkg/config"
	appErrors "github.com/noah-isme/employee-availability-api/pkg/errors"
	"github.com/noah-isme/employee-availability-api/pkg/logger"
	corsmiddleware "github.com/noah-isme/employee-availability-api/pkg/middleware/cors"
	reqidmiddleware "github.com/noah-isme/employee-availability-api/pkg/middleware/requestid"
	"github.com/noah-isme/employee-availability-api/pkg/response"
)

func newRouter(cfg *config.Config, logr *zap.Logger, metrics *service.MetricsService, availability *service.AvailabilityService, ready func() bool) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(reqidmiddleware.Middleware())
	r.Use(logger.GinMiddleware(logr))
	r.Use(corsmiddleware.New(cfg.CORS.AllowedOrigins))
	r.Use(middleware.Metrics(metrics))
	r.NoRoute(func(c *gin.Context) {
		response.Error(c, appErrors.Clone(appErrors.ErrNotFound, "route not found"))
	})

	metricsHandler := handler.NewMetricsHandler(metrics, ready)
	r.GET("/health", metricsHandler.Health)
	r.GET("/ready", metricsHandler.Ready)
	if cfg.Metrics.Enabled {
		r.GET("/metrics", metricsHandler.Prometheus)
	}

	if cfg.Env != config.EnvProduction {
		r.GET("/docs/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	api := r.Group(cfg.APIPrefix)
	if cfg.Auth.Enabled {
		api.Use(middleware.Auth(cfg.Auth.Secret))
	}
	handler.NewAvailabilityHandler(availability).Register(api)

	return r
}
