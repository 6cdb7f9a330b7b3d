package rest

import (
	"net/http"

	"flock/di"

	"github.com/labstack/echo/v4"
)

func handleGetFeed(container *di.ApplicationComponents) echo.HandlerFunc {
	return func(c echo.Context) error {
		feedID, err := parseFeedID(c)
		if err != nil {
			return err
		}

		feed, err := container.FeedStore.GetFeedByID(c.Request().Context(), feedID)
		if err != nil {
			return handleError(c, err, "get_feed")
		}
		return c.JSON(http.StatusOK, feed)
	}
}

// handleRefreshFeed triggers an immediate refresh cycle for one feed,
// bypassing the due-time check. Concurrent triggers for the same feed share
// one cycle.
func handleRefreshFeed(container *di.ApplicationComponents) echo.HandlerFunc {
	return func(c echo.Context) error {
		feedID, err := parseFeedID(c)
		if err != nil {
			return err
		}

		result, err := container.SchedulerUsecase.RefreshOne(c.Request().Context(), feedID)
		if err != nil {
			return handleError(c, err, "refresh_feed")
		}
		return c.JSON(http.StatusOK, result)
	}
}

// handleResetFeed is the operator override for disabled or backing off feeds.
func handleResetFeed(container *di.ApplicationComponents) echo.HandlerFunc {
	return func(c echo.Context) error {
		feedID, err := parseFeedID(c)
		if err != nil {
			return err
		}

		feed, err := container.ResetFeedHealthUsecase.Execute(c.Request().Context(), feedID)
		if err != nil {
			return handleError(c, err, "reset_feed")
		}
		return c.JSON(http.StatusOK, feed)
	}
}
