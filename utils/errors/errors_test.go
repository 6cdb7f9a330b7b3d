package errors

import (
	stderrors "errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAppContextError_Error(t *testing.T) {
	tests := []struct {
		name string
		err  *AppContextError
		want string
	}{
		{
			name: "error with cause and full context",
			err: &AppContextError{
				Code:      CodeDatabase,
				Message:   "failed to select due feeds",
				Layer:     "driver",
				Component: "FeedDriver",
				Operation: "SelectDueFeeds",
				Cause:     stderrors.New("connection timeout"),
			},
			want: "[driver:FeedDriver:SelectDueFeeds] DATABASE_ERROR: failed to select due feeds (caused by: connection timeout)",
		},
		{
			name: "error without cause or context",
			err: &AppContextError{
				Code:    CodeValidation,
				Message: "invalid batch size",
			},
			want: "VALIDATION_ERROR: invalid batch size",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.err.Error())
		})
	}
}

func TestAppContextError_Unwrap(t *testing.T) {
	cause := stderrors.New("boom")
	err := New(CodeFetch, "fetch failed", "gateway", "FeedFetchGateway", "Fetch", cause, nil)

	assert.ErrorIs(t, err, cause)

	wrapped := fmt.Errorf("outer: %w", err)
	got, ok := AsAppContextError(wrapped)
	require.True(t, ok)
	assert.Equal(t, CodeFetch, got.Code)
}

func TestAppContextError_HTTPStatusCode(t *testing.T) {
	tests := []struct {
		code string
		want int
	}{
		{CodeValidation, http.StatusBadRequest},
		{CodeNotFound, http.StatusNotFound},
		{CodeConflict, http.StatusConflict},
		{CodeRateLimit, http.StatusTooManyRequests},
		{CodeFetch, http.StatusBadGateway},
		{CodeTimeout, http.StatusGatewayTimeout},
		{CodeDatabase, http.StatusInternalServerError},
		{CodeUnknown, http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.code, func(t *testing.T) {
			err := &AppContextError{Code: tt.code}
			assert.Equal(t, tt.want, err.HTTPStatusCode())
		})
	}
}

func TestAppContextError_IsRetryable(t *testing.T) {
	assert.True(t, (&AppContextError{Code: CodeTimeout}).IsRetryable())
	assert.True(t, (&AppContextError{Code: CodeFetch}).IsRetryable())
	assert.True(t, (&AppContextError{Code: CodeRateLimit}).IsRetryable())
	assert.False(t, (&AppContextError{Code: CodeDatabase}).IsRetryable())
	assert.False(t, (&AppContextError{Code: CodeConflict}).IsRetryable())
}
