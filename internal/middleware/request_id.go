package middleware

import (
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

const (
	// TraceIDHeader carries the trace id between the expense API and its
	// clients.
	TraceIDHeader = "X-Trace-ID"
	// TraceIDContextKey stores the trace id in the echo context.
	TraceIDContextKey = "trace_id"
)

// RequestID tags every request with a trace id. A client-supplied id is
// kept so a caller can correlate its own ledger mutation with the service
// logs; otherwise a fresh uuid is assigned. The id is exposed in both the
// context and the response header.
func RequestID() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			traceID := c.Request().Header.Get(TraceIDHeader)
			if traceID == "" {
				traceID = uuid.NewString()
			}

			c.Set(TraceIDContextKey, traceID)
			c.Response().Header().Set(TraceIDHeader, traceID)
			return next(c)
		}
	}
}

// GetTraceID returns the request's trace id, or "" when RequestID did not
// run for this request.
func GetTraceID(c echo.Context) string {
	traceID, _ := c.Get(TraceIDContextKey).(string)
	return traceID
}
