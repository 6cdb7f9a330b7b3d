package rest

import (
	stderrors "errors"
	"net/http"

	"flock/domain"
	"flock/utils/errors"
	"flock/utils/logger"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

type errorResponse struct {
	Error     string `json:"error"`
	Code      string `json:"code"`
	RequestID string `json:"request_id,omitempty"`
}

// handleError maps domain and context errors to HTTP responses. The response
// body never carries the raw cause chain, only the public message and code.
func handleError(c echo.Context, err error, operation string) error {
	ctx := c.Request().Context()
	requestID := c.Response().Header().Get("X-Request-ID")

	status := http.StatusInternalServerError
	code := errors.CodeUnknown
	message := "internal server error"

	var appErr *errors.AppContextError
	var fetchErr *domain.FetchError
	switch {
	case stderrors.Is(err, domain.ErrFeedNotFound), stderrors.Is(err, domain.ErrGroupNotFound), stderrors.Is(err, domain.ErrArticleNotFound):
		status = http.StatusNotFound
		code = errors.CodeNotFound
		message = err.Error()
	case stderrors.Is(err, domain.ErrFeedInactive):
		status = http.StatusConflict
		code = errors.CodeConflict
		message = err.Error()
	// A context error outranks the FetchError underneath it: the code
	// distinguishes timeouts from broken upstreams.
	case stderrors.As(err, &appErr):
		status = appErr.HTTPStatusCode()
		code = appErr.Code
		message = appErr.Message
	case stderrors.As(err, &fetchErr):
		status = http.StatusBadGateway
		code = errors.CodeFetch
		message = fetchErr.Error()
	}

	logger.SafeErrorContext(ctx, "request failed",
		"operation", operation,
		"status", status,
		"error", err,
	)

	return c.JSON(status, errorResponse{
		Error:     message,
		Code:      code,
		RequestID: requestID,
	})
}

// parseFeedID validates the :feed_id path parameter.
func parseFeedID(c echo.Context) (uuid.UUID, error) {
	feedID, err := uuid.Parse(c.Param("feed_id"))
	if err != nil {
		return uuid.Nil, echo.NewHTTPError(http.StatusBadRequest, "invalid feed id")
	}
	return feedID, nil
}
