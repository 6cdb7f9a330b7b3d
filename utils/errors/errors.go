package errors

import (
	"errors"
	"fmt"
	"net/http"
)

// Error codes used across the service.
const (
	CodeValidation  = "VALIDATION_ERROR"
	CodeFetch       = "FETCH_ERROR"
	CodeTimeout     = "TIMEOUT_ERROR"
	CodeConflict    = "CONFLICT_ERROR"
	CodeDatabase    = "DATABASE_ERROR"
	CodeRateLimit   = "RATE_LIMIT_ERROR"
	CodeNotFound    = "NOT_FOUND"
	CodeUnknown     = "UNKNOWN_ERROR"
)

// AppContextError carries an error code plus the layer, component and
// operation it originated from.
type AppContextError struct {
	Code      string                 `json:"code"`
	Message   string                 `json:"message"`
	Layer     string                 `json:"layer,omitempty"`     // rest, usecase, gateway, driver
	Component string                 `json:"component,omitempty"`
	Operation string                 `json:"operation,omitempty"`
	Cause     error                  `json:"-"`
	Context   map[string]interface{} `json:"context,omitempty"`
}

func (e *AppContextError) Error() string {
	var prefix string
	if e.Layer != "" && e.Component != "" && e.Operation != "" {
		prefix = fmt.Sprintf("[%s:%s:%s] ", e.Layer, e.Component, e.Operation)
	}

	if e.Cause != nil {
		return fmt.Sprintf("%s%s: %s (caused by: %v)", prefix, e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s%s: %s", prefix, e.Code, e.Message)
}

func (e *AppContextError) Unwrap() error {
	return e.Cause
}

// HTTPStatusCode maps error codes to HTTP status codes
func (e *AppContextError) HTTPStatusCode() int {
	switch e.Code {
	case CodeValidation:
		return http.StatusBadRequest
	case CodeNotFound:
		return http.StatusNotFound
	case CodeConflict:
		return http.StatusConflict
	case CodeRateLimit:
		return http.StatusTooManyRequests
	case CodeFetch:
		return http.StatusBadGateway
	case CodeTimeout:
		return http.StatusGatewayTimeout
	default:
		return http.StatusInternalServerError
	}
}

// IsRetryable reports whether the next scheduling cycle may succeed without
// operator intervention.
func (e *AppContextError) IsRetryable() bool {
	switch e.Code {
	case CodeRateLimit, CodeTimeout, CodeFetch:
		return true
	default:
		return false
	}
}

// New creates an AppContextError with full context.
func New(code, message, layer, component, operation string, cause error, context map[string]interface{}) *AppContextError {
	if context == nil {
		context = make(map[string]interface{})
	}

	return &AppContextError{
		Code:      code,
		Message:   message,
		Layer:     layer,
		Component: component,
		Operation: operation,
		Cause:     cause,
		Context:   context,
	}
}

// AsAppContextError unwraps err to an AppContextError if one is in the chain.
func AsAppContextError(err error) (*AppContextError, bool) {
	var appErr *AppContextError
	if errors.As(err, &appErr) {
		return appErr, true
	}
	return nil, false
}
