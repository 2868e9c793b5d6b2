package middleware

import (
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"
)

// Setup registers the service's middleware stack on the Echo instance.
// Order matters: the request ID must exist before the request logger runs,
// and recovery wraps the handlers so a panicking session endpoint surfaces
// as an envelope 500 instead of killing the server.
//
// Call this before registering routes.
func Setup(e *echo.Echo, log zerolog.Logger) {
	SetupWithConfig(e, log, RecoveryConfig{})
}

// SetupWithConfig registers the stack with custom recovery configuration.
func SetupWithConfig(e *echo.Echo, log zerolog.Logger, recoveryConfig RecoveryConfig) {
	e.Use(RequestID())
	e.Use(RequestLogger(log))
	e.Use(RecoverWithConfig(log, recoveryConfig))
}

// Chain returns the same stack as a slice, for route groups that opt in
// individually (see RegisterRoutesWithMiddleware).
func Chain(log zerolog.Logger) []echo.MiddlewareFunc {
	return []echo.MiddlewareFunc{
		RequestID(),
		RequestLogger(log),
		Recover(log),
	}
}
