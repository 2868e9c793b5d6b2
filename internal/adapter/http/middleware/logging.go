package middleware

import (
	"strings"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"
)

// sessionRoutePrefix identifies routes whose :id parameter is a search
// session. Requests against these routes log a session_id field matching the
// one the session attaches to its own fetch and dispatch logs, so one
// search can be followed across the API and usecase layers.
const sessionRoutePrefix = "/api/v1/sessions/"

// RequestLogger returns middleware that logs each request on completion.
// The level follows the response status: 5xx logs at error, 4xx at warn,
// everything else at info.
func RequestLogger(log zerolog.Logger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()

			err := next(c)
			if err != nil {
				// Let Echo's error handler shape the response first,
				// so the logged status is the one the client saw
				c.Error(err)
			}

			req := c.Request()
			res := c.Response()

			var event *zerolog.Event
			switch {
			case res.Status >= 500:
				event = log.Error()
			case res.Status >= 400:
				event = log.Warn()
			default:
				event = log.Info()
			}

			event = event.
				Str("request_id", GetRequestID(c)).
				Str("method", req.Method).
				Str("path", req.URL.Path).
				Str("query", req.URL.RawQuery).
				Int("status", res.Status).
				Int64("duration_ms", time.Since(start).Milliseconds()).
				Int64("bytes_out", res.Size).
				Str("client_ip", c.RealIP())

			if sessionID := sessionIDOf(c); sessionID != "" {
				event = event.Str("session_id", sessionID)
			}

			event.Msg("HTTP request")

			// The error was already handled via c.Error
			return nil
		}
	}
}

// sessionIDOf extracts the session path parameter on session routes, and
// returns "" for everything else.
func sessionIDOf(c echo.Context) string {
	if !strings.HasPrefix(c.Path(), sessionRoutePrefix) {
		return ""
	}
	return c.Param("id")
}
