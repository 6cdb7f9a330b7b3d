package rest

import (
	"net/http"
	"strconv"

	"flock/di"

	"github.com/labstack/echo/v4"
)

// handleSchedulerTick runs one due-feed sweep on demand. The periodic sweep
// job calls the same usecase; this endpoint exists for operators and tests.
// An optional batch_size query parameter overrides the configured batch.
func handleSchedulerTick(container *di.ApplicationComponents) echo.HandlerFunc {
	return func(c echo.Context) error {
		batchSize := 0
		if raw := c.QueryParam("batch_size"); raw != "" {
			parsed, err := strconv.Atoi(raw)
			if err != nil || parsed < 1 {
				return echo.NewHTTPError(http.StatusBadRequest, "invalid batch_size")
			}
			batchSize = parsed
		}

		result, err := container.SchedulerUsecase.Tick(c.Request().Context(), batchSize)
		if err != nil {
			return handleError(c, err, "scheduler_tick")
		}
		return c.JSON(http.StatusOK, result)
	}
}

func handleHealth(container *di.ApplicationComponents) echo.HandlerFunc {
	return func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]interface{}{
			"status":    "ok",
			"ingestion": container.IngestionMetrics.Snapshot(),
		})
	}
}
