package http

import (
	"errors"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/flightfinder/flight-finder-service/internal/adapter/http/response"
	"github.com/flightfinder/flight-finder-service/internal/domain"
	"github.com/flightfinder/flight-finder-service/internal/usecase"
)

// SessionHandler handles HTTP requests for search sessions and airport
// lookups.
type SessionHandler struct {
	sessions *usecase.SessionStore
	airports domain.AirportGateway
}

// NewSessionHandler creates a new SessionHandler.
func NewSessionHandler(sessions *usecase.SessionStore, airports domain.AirportGateway) *SessionHandler {
	return &SessionHandler{
		sessions: sessions,
		airports: airports,
	}
}

// CreateSession handles POST /api/v1/sessions
//
// @Summary Create a search session
// @Description Create a new flight search session in its initial state
// @Tags sessions
// @Produce json
// @Success 201 {object} SessionResponse
// @Router /api/v1/sessions [post]
func (h *SessionHandler) CreateSession(c echo.Context) error {
	session := h.sessions.Create()
	return response.Created(c, NewSessionResponse(session))
}

// GetSession handles GET /api/v1/sessions/:id
//
// @Summary Get session state
// @Description Get the current state of a search session, including the filtered flight list
// @Tags sessions
// @Produce json
// @Param id path string true "Session ID"
// @Success 200 {object} SessionResponse
// @Failure 404 {object} response.ErrorDetail "Session not found"
// @Router /api/v1/sessions/{id} [get]
func (h *SessionHandler) GetSession(c echo.Context) error {
	session, err := h.sessions.Get(c.Param("id"))
	if err != nil {
		return h.handleError(c, err)
	}
	return response.OK(c, NewSessionResponse(session))
}

// ReleaseSession handles DELETE /api/v1/sessions/:id
//
// @Summary Release a session
// @Description Release a search session and free its state
// @Tags sessions
// @Param id path string true "Session ID"
// @Success 204
// @Failure 404 {object} response.ErrorDetail "Session not found"
// @Router /api/v1/sessions/{id} [delete]
func (h *SessionHandler) ReleaseSession(c echo.Context) error {
	if err := h.sessions.Release(c.Param("id")); err != nil {
		return h.handleError(c, err)
	}
	return response.NoContent(c)
}

// Search handles POST /api/v1/sessions/:id/search
//
// @Summary Dispatch a flight search
// @Description Validate search parameters and start an asynchronous provider fetch. Poll the session for results.
// @Tags sessions
// @Accept json
// @Produce json
// @Param id path string true "Session ID"
// @Param request body SearchRequest true "Search parameters"
// @Success 202 {object} SessionResponse
// @Failure 400 {object} response.ErrorDetail "Validation error"
// @Failure 404 {object} response.ErrorDetail "Session not found"
// @Router /api/v1/sessions/{id}/search [post]
func (h *SessionHandler) Search(c echo.Context) error {
	session, err := h.sessions.Get(c.Param("id"))
	if err != nil {
		return h.handleError(c, err)
	}

	var req SearchRequest
	if err := c.Bind(&req); err != nil {
		return response.InvalidRequestBody(c)
	}
	if details := req.Validate(); len(details) > 0 {
		return response.ValidationError(c, details)
	}

	if err := session.SetSearchParams(req.ToParams()); err != nil {
		return h.handleError(c, err)
	}

	return response.Accepted(c, NewSessionResponse(session))
}

// UpdateFilter handles PATCH /api/v1/sessions/:id/filters
//
// @Summary Update one filter field
// @Description Replace a single filter field; the other filters keep their values
// @Tags sessions
// @Accept json
// @Produce json
// @Param id path string true "Session ID"
// @Param request body UpdateFilterRequest true "Filter update"
// @Success 200 {object} SessionResponse
// @Failure 400 {object} response.ErrorDetail "Validation error"
// @Failure 404 {object} response.ErrorDetail "Session not found"
// @Router /api/v1/sessions/{id}/filters [patch]
func (h *SessionHandler) UpdateFilter(c echo.Context) error {
	session, err := h.sessions.Get(c.Param("id"))
	if err != nil {
		return h.handleError(c, err)
	}

	var req UpdateFilterRequest
	if err := c.Bind(&req); err != nil {
		return response.InvalidRequestBody(c)
	}
	if details := req.Validate(); len(details) > 0 {
		return response.ValidationError(c, details)
	}

	if err := session.UpdateFilter(req.ToAction()); err != nil {
		return h.handleError(c, err)
	}

	return response.OK(c, NewSessionResponse(session))
}

// ResetFilters handles DELETE /api/v1/sessions/:id/filters
//
// @Summary Reset all filters
// @Description Restore the accept-everything filters for the current result set
// @Tags sessions
// @Produce json
// @Param id path string true "Session ID"
// @Success 200 {object} SessionResponse
// @Failure 404 {object} response.ErrorDetail "Session not found"
// @Router /api/v1/sessions/{id}/filters [delete]
func (h *SessionHandler) ResetFilters(c echo.Context) error {
	session, err := h.sessions.Get(c.Param("id"))
	if err != nil {
		return h.handleError(c, err)
	}

	session.ResetFilters()
	return response.OK(c, NewSessionResponse(session))
}

// SetSort handles PUT /api/v1/sessions/:id/sort
//
// @Summary Change the sort order
// @Description Set the sort order for the filtered flight view. Unknown options fall back to cheapest.
// @Tags sessions
// @Accept json
// @Produce json
// @Param id path string true "Session ID"
// @Param request body SortRequest true "Sort option"
// @Success 200 {object} SessionResponse
// @Failure 404 {object} response.ErrorDetail "Session not found"
// @Router /api/v1/sessions/{id}/sort [put]
func (h *SessionHandler) SetSort(c echo.Context) error {
	session, err := h.sessions.Get(c.Param("id"))
	if err != nil {
		return h.handleError(c, err)
	}

	var req SortRequest
	if err := c.Bind(&req); err != nil {
		return response.InvalidRequestBody(c)
	}

	session.SetSortBy(domain.ParseSortOption(req.SortBy))
	return response.OK(c, NewSessionResponse(session))
}

// GetFlight handles GET /api/v1/sessions/:id/flights/:flightID
//
// @Summary Get one flight
// @Description Look up a single flight from the session's current result set
// @Tags sessions
// @Produce json
// @Param id path string true "Session ID"
// @Param flightID path string true "Flight ID"
// @Success 200 {object} domain.Flight
// @Failure 404 {object} response.ErrorDetail "Session or flight not found"
// @Router /api/v1/sessions/{id}/flights/{flightID} [get]
func (h *SessionHandler) GetFlight(c echo.Context) error {
	session, err := h.sessions.Get(c.Param("id"))
	if err != nil {
		return h.handleError(c, err)
	}

	flight, err := session.FlightByID(c.Param("flightID"))
	if err != nil {
		return h.handleError(c, err)
	}

	return response.OK(c, flight)
}

// SearchAirports handles GET /api/v1/airports
//
// @Summary Airport autocomplete
// @Description Search airports by keyword. Keywords shorter than 2 characters return an empty list; provider failures degrade to a static fallback list.
// @Tags airports
// @Produce json
// @Param keyword query string true "Search keyword"
// @Success 200 {object} AirportListResponse
// @Router /api/v1/airports [get]
func (h *SessionHandler) SearchAirports(c echo.Context) error {
	keyword := c.QueryParam("keyword")

	airports, err := h.airports.SearchAirports(c.Request().Context(), keyword)
	if err != nil {
		return h.handleError(c, err)
	}

	return response.OK(c, NewAirportListResponse(airports))
}

// GetAirport handles GET /api/v1/airports/:code
//
// @Summary Get airport by code
// @Description Look up a single airport by its 3-letter IATA code
// @Tags airports
// @Produce json
// @Param code path string true "IATA airport code"
// @Success 200 {object} domain.Airport
// @Failure 404 {object} response.ErrorDetail "Airport not found"
// @Router /api/v1/airports/{code} [get]
func (h *SessionHandler) GetAirport(c echo.Context) error {
	code := strings.ToUpper(strings.TrimSpace(c.Param("code")))

	airport, err := h.airports.AirportByCode(c.Request().Context(), code)
	if err != nil {
		return h.handleError(c, err)
	}
	if airport == nil {
		return response.AirportNotFound(c)
	}

	return response.OK(c, airport)
}

// Health handles GET /health
// Simple health check endpoint.
func (h *SessionHandler) Health(c echo.Context) error {
	return response.Health(c)
}

// handleError maps domain errors to appropriate HTTP responses.
func (h *SessionHandler) handleError(c echo.Context, err error) error {
	if errors.Is(err, domain.ErrSessionNotFound) {
		return response.SessionNotFound(c)
	}

	if errors.Is(err, domain.ErrFlightNotFound) {
		return response.FlightNotFound(c)
	}

	if errors.Is(err, domain.ErrInvalidSearch) {
		return response.ValidationErrorWithMessage(c, err.Error())
	}

	return response.InternalServerError(c)
}
