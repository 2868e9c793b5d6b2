package http

import (
	"github.com/labstack/echo/v4"
)

// RegisterRoutes registers all flight finder API routes.
// It creates a versioned API group and attaches the handler methods.
func RegisterRoutes(e *echo.Echo, h *SessionHandler) {
	// Health check endpoint (no version prefix)
	e.GET("/health", h.Health)

	// API v1 group
	api := e.Group("/api/v1")

	// Session lifecycle and state
	sessions := api.Group("/sessions")
	sessions.POST("", h.CreateSession)
	sessions.GET("/:id", h.GetSession)
	sessions.DELETE("/:id", h.ReleaseSession)

	// Search, filters, and sorting act on one session
	sessions.POST("/:id/search", h.Search)
	sessions.PATCH("/:id/filters", h.UpdateFilter)
	sessions.DELETE("/:id/filters", h.ResetFilters)
	sessions.PUT("/:id/sort", h.SetSort)
	sessions.GET("/:id/flights/:flightID", h.GetFlight)

	// Airport autocomplete
	airports := api.Group("/airports")
	airports.GET("", h.SearchAirports)
	airports.GET("/:code", h.GetAirport)
}

// RegisterRoutesWithMiddleware registers routes with custom middleware.
// The health check stays outside the middleware chain for load balancers.
func RegisterRoutesWithMiddleware(e *echo.Echo, h *SessionHandler, middleware ...echo.MiddlewareFunc) {
	e.GET("/health", h.Health)

	api := e.Group("/api/v1", middleware...)

	sessions := api.Group("/sessions")
	sessions.POST("", h.CreateSession)
	sessions.GET("/:id", h.GetSession)
	sessions.DELETE("/:id", h.ReleaseSession)
	sessions.POST("/:id/search", h.Search)
	sessions.PATCH("/:id/filters", h.UpdateFilter)
	sessions.DELETE("/:id/filters", h.ResetFilters)
	sessions.PUT("/:id/sort", h.SetSort)
	sessions.GET("/:id/flights/:flightID", h.GetFlight)

	airports := api.Group("/airports")
	airports.GET("", h.SearchAirports)
	airports.GET("/:code", h.GetAirport)
}
