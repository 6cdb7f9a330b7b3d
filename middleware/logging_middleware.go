package middleware

import (
	"log/slog"
	"time"

	"flock/utils/logger"

	"github.com/labstack/echo/v4"
)

// LoggingMiddleware emits a start and completion record for every request,
// with the completion level escalating alongside the response status. The
// health endpoint is exempt so liveness checks do not flood the logs.
func LoggingMiddleware(baseLogger *slog.Logger) echo.MiddlewareFunc {
	contextLogger := logger.NewContextLogger(baseLogger)

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			req := c.Request()
			if req.URL.Path == "/v1/health" {
				return next(c)
			}

			ctx := req.Context()
			log := contextLogger.WithContext(ctx)

			log.InfoContext(ctx, "request started",
				"method", req.Method,
				"path", req.URL.Path,
				"remote_addr", c.RealIP(),
				"user_agent", req.UserAgent(),
			)

			start := time.Now()
			err := next(c)
			duration := time.Since(start)

			res := c.Response()
			attrs := []any{
				"method", req.Method,
				"path", req.URL.Path,
				"status", res.Status,
				"duration_ms", duration.Milliseconds(),
				"response_size", res.Size,
			}
			switch {
			case res.Status >= 500:
				log.ErrorContext(ctx, "request completed", attrs...)
			case res.Status >= 400:
				log.WarnContext(ctx, "request completed", attrs...)
			default:
				log.InfoContext(ctx, "request completed", attrs...)
			}

			if err != nil {
				log.ErrorContext(ctx, "request error",
					"method", req.Method,
					"path", req.URL.Path,
					"error", err,
					"duration_ms", duration.Milliseconds(),
				)
			}

			return err
		}
	}
}
