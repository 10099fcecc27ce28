package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"fintrack/internal/errors"
)

const (
	// TraceIDContextKey is the context key for storing the trace ID
	TraceIDContextKey = "trace_id"
)

// ErrorResponse is an alias for the standardized error response type
type ErrorResponse = errors.ErrorResponse

// getTraceID extracts the trace ID from the Echo context
func getTraceID(c echo.Context) string {
	traceID, ok := c.Get(TraceIDContextKey).(string)
	if !ok {
		return ""
	}
	return traceID
}

// SendError sends the standard error envelope with the status mapped from
// the error code.
func SendError(c echo.Context, code errors.ErrorCode) error {
	return c.JSON(errors.GetHTTPStatus(code), errors.NewErrorResponse(code))
}

// SendErrorMessage sends the standard error envelope with an explicit
// message, for validation details worth surfacing.
func SendErrorMessage(c echo.Context, code errors.ErrorCode, message string) error {
	return c.JSON(errors.GetHTTPStatus(code), errors.NewErrorResponseWithMessage(message))
}

// SendSystemError hides an internal error behind the generic envelope and
// logs it through echo's logger with the request trace id.
func SendSystemError(c echo.Context, err error) error {
	response, internal := errors.WrapSystemError(err)
	c.Logger().Errorf("internal error (trace %s): %v", getTraceID(c), internal)
	return c.JSON(http.StatusInternalServerError, response)
}
