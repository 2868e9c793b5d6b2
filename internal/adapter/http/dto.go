package http

import (
	"github.com/flightfinder/flight-finder-service/internal/domain"
	"github.com/flightfinder/flight-finder-service/internal/usecase"
)

// SessionResponse is the API view of a search session: its identity plus the
// current search state with the filtered, sorted flight list.
type SessionResponse struct {
	// SessionID identifies the session for subsequent requests
	SessionID string `json:"sessionId"`

	// SearchParams is the active search, null before the first search
	SearchParams *domain.SearchParams `json:"searchParams"`

	// IsLoading is true while a search is in flight
	IsLoading bool `json:"isLoading"`

	// IsError is true when the last search failed
	IsError bool `json:"isError"`

	// Error is the user-facing error message ("" when IsError is false)
	Error string `json:"error,omitempty"`

	// TotalResults is the provider-reported total match count
	TotalResults int `json:"totalResults"`

	// PriceRange is the min/max price over the unfiltered result set
	PriceRange domain.PriceRange `json:"priceRange"`

	// Airlines is the deduplicated airline list of the result set
	Airlines []domain.AirlineInfo `json:"airlines"`

	// Filters holds the active filter values
	Filters domain.FlightFilters `json:"filters"`

	// SortBy is the active sort order
	SortBy domain.SortOption `json:"sortBy"`

	// Flights is the filtered, sorted view of the result set
	Flights []domain.Flight `json:"flights"`

	// FilteredCount is len(Flights), for convenience
	FilteredCount int `json:"filteredCount"`
}

// NewSessionResponse snapshots a session into its API representation.
func NewSessionResponse(session *usecase.Session) SessionResponse {
	state := session.State()
	flights := session.FilteredFlights()

	return SessionResponse{
		SessionID:     session.ID(),
		SearchParams:  state.SearchParams,
		IsLoading:     state.IsLoading,
		IsError:       state.IsError,
		Error:         state.Error,
		TotalResults:  state.TotalResults,
		PriceRange:    state.PriceRange,
		Airlines:      state.Airlines,
		Filters:       state.Filters,
		SortBy:        state.SortBy,
		Flights:       flights,
		FilteredCount: len(flights),
	}
}

// AirportListResponse wraps airport suggestions for the autocomplete endpoint.
type AirportListResponse struct {
	Airports []domain.Airport `json:"airports"`
	Count    int              `json:"count"`
}

// NewAirportListResponse wraps an airport list, normalizing nil to empty.
func NewAirportListResponse(airports []domain.Airport) AirportListResponse {
	if airports == nil {
		airports = []domain.Airport{}
	}
	return AirportListResponse{Airports: airports, Count: len(airports)}
}
