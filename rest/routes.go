package rest

import (
	"strings"

	"flock/config"
	"flock/di"
	middleware_custom "flock/middleware"
	"flock/utils/logger"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
)

func RegisterRoutes(e *echo.Echo, container *di.ApplicationComponents, cfg *config.Config) {
	// Request ID first so every later log line carries it.
	e.Use(middleware_custom.RequestIDMiddleware())
	e.Use(middleware.Recover())

	e.Use(middleware.TimeoutWithConfig(middleware.TimeoutConfig{
		Timeout: cfg.Server.ReadTimeout,
		Skipper: func(c echo.Context) bool {
			return strings.Contains(c.Path(), "/health")
		},
	}))

	e.Use(middleware_custom.LoggingMiddleware(logger.Logger))

	v1 := e.Group("/v1")

	v1.GET("/health", handleHealth(container))

	scheduler := v1.Group("/scheduler")
	scheduler.POST("/tick", handleSchedulerTick(container))

	feeds := v1.Group("/feeds")
	feeds.GET("/:feed_id", handleGetFeed(container))
	feeds.POST("/:feed_id/refresh", handleRefreshFeed(container))
	feeds.POST("/:feed_id/reset", handleResetFeed(container))
}
