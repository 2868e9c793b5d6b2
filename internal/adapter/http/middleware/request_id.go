// Package middleware provides the HTTP middleware stack for the flight
// finder API: request identity, request logging with session correlation,
// and panic recovery.
package middleware

import (
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

const (
	// RequestIDHeader carries the client-supplied or generated request ID.
	RequestIDHeader = "X-Request-ID"

	// requestIDKey is the echo context key the request ID is stored under.
	requestIDKey = "request_id"

	// maxRequestIDLength caps propagated IDs so a hostile header cannot
	// bloat every log line of the request.
	maxRequestIDLength = 64
)

// RequestID returns middleware that propagates the incoming X-Request-ID
// header, or generates a UUID when the header is absent or oversized.
// The ID is stored in the context for the request logger and echoed on the
// response so clients can correlate.
func RequestID() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			reqID := c.Request().Header.Get(RequestIDHeader)
			if reqID == "" || len(reqID) > maxRequestIDLength {
				reqID = uuid.NewString()
			}

			c.Set(requestIDKey, reqID)
			c.Response().Header().Set(RequestIDHeader, reqID)

			return next(c)
		}
	}
}

// GetRequestID retrieves the request ID from the echo context.
// Returns an empty string if no request ID is set.
func GetRequestID(c echo.Context) string {
	id, _ := c.Get(requestIDKey).(string)
	return id
}
