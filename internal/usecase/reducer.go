package usecase

import (
	"github.com/flightfinder/flight-finder-service/internal/domain"
)

// SearchState is the single source of truth for one search session. It is
// only ever replaced through Reduce; derived values such as the filtered
// flight list are recomputed from it, never stored.
type SearchState struct {
	// SearchParams is the most recently dispatched search, nil before the
	// first search
	SearchParams *domain.SearchParams

	// Fingerprint is the structural key of SearchParams ("" when nil).
	// Fetch completions carrying a different fingerprint are stale and
	// must be discarded.
	Fingerprint string

	// AllFlights is the raw, unfiltered result set of the current search
	AllFlights []domain.Flight

	// Airlines is the deduplicated airline list of the current result set
	Airlines []domain.AirlineInfo

	// PriceRange is the min/max price over AllFlights
	PriceRange domain.PriceRange

	// TotalResults is the provider-reported total match count
	TotalResults int

	// Filters holds the active filters; reset to accept-everything whenever
	// new results arrive
	Filters domain.FlightFilters

	// IsLoading is true while a search is in flight
	IsLoading bool

	// IsError is true when the last fetch ended in an error
	IsError bool

	// Error is the user-facing error message ("" when IsError is false)
	Error string

	// SortBy is the active sort order for the filtered view
	SortBy domain.SortOption
}

// InitialState returns the state of a freshly created session.
func InitialState() SearchState {
	return SearchState{
		AllFlights: []domain.Flight{},
		Airlines:   []domain.AirlineInfo{},
		Filters:    domain.DefaultFilters(domain.PriceRange{}),
		SortBy:     domain.SortCheapest,
	}
}

// Action is a state transition request consumed by Reduce. The concrete
// types below form a closed tagged union.
type Action interface {
	// actionName returns the action's name for logging.
	actionName() string
}

// SetSearchParams records new search parameters, clears all previous results
// and filters, and enters the loading state. The UI never sees stale results
// from a prior search while a new one is in flight.
type SetSearchParams struct {
	Params domain.SearchParams
}

// SetSearchResults installs a new result set and resets the filters to accept
// everything in it.
type SetSearchResults struct {
	Flights      []domain.Flight
	Airlines     []domain.AirlineInfo
	PriceRange   domain.PriceRange
	TotalResults int
}

// UpdateFilter replaces exactly one named filter field. Only the payload
// field matching Field is read; the others are ignored.
type UpdateFilter struct {
	Field         domain.FilterField
	Stops         []int
	PriceRange    [2]float64
	Airlines      []string
	DepartureTime []domain.DayPart
}

// ResetFilters restores the accept-everything filters using the current
// result set's price range.
type ResetFilters struct{}

// SetSortBy replaces the sort order only.
type SetSortBy struct {
	SortBy domain.SortOption
}

// SetLoading sets the loading flag without touching results.
type SetLoading struct {
	IsLoading bool
}

// SetError records the error channel of the fetch driver. Results are left
// untouched; the provider gateway never surfaces transport errors here, so
// this path is reached only through the fetch driver's own error channel.
type SetError struct {
	IsError bool
	Error   string
}

func (SetSearchParams) actionName() string  { return "SET_SEARCH_PARAMS" }
func (SetSearchResults) actionName() string { return "SET_SEARCH_RESULTS" }
func (UpdateFilter) actionName() string     { return "UPDATE_FILTER" }
func (ResetFilters) actionName() string     { return "RESET_FILTERS" }
func (SetSortBy) actionName() string        { return "SET_SORT_BY" }
func (SetLoading) actionName() string       { return "SET_LOADING" }
func (SetError) actionName() string         { return "SET_ERROR" }

// Reduce is the pure transition function of the search state machine. It
// returns a new state and never mutates its input; unknown actions return
// the state unchanged.
func Reduce(state SearchState, action Action) SearchState {
	switch a := action.(type) {
	case SetSearchParams:
		params := a.Params
		next := state
		next.SearchParams = &params
		next.Fingerprint = params.Fingerprint()
		next.AllFlights = []domain.Flight{}
		next.Airlines = []domain.AirlineInfo{}
		next.PriceRange = domain.PriceRange{}
		next.TotalResults = 0
		next.Filters = domain.DefaultFilters(domain.PriceRange{})
		next.IsLoading = true
		next.IsError = false
		next.Error = ""
		return next

	case SetSearchResults:
		next := state
		next.AllFlights = a.Flights
		next.Airlines = a.Airlines
		next.PriceRange = a.PriceRange
		next.TotalResults = a.TotalResults
		next.Filters = domain.DefaultFilters(a.PriceRange)
		next.IsLoading = false
		next.IsError = false
		next.Error = ""
		return next

	case UpdateFilter:
		next := state
		next.Filters = applyFilterUpdate(state.Filters, a)
		return next

	case ResetFilters:
		next := state
		next.Filters = domain.DefaultFilters(state.PriceRange)
		return next

	case SetSortBy:
		next := state
		next.SortBy = a.SortBy
		return next

	case SetLoading:
		next := state
		next.IsLoading = a.IsLoading
		return next

	case SetError:
		next := state
		next.IsError = a.IsError
		next.Error = a.Error
		next.IsLoading = false
		return next

	default:
		return state
	}
}

// applyFilterUpdate replaces the single filter field named by the action.
func applyFilterUpdate(filters domain.FlightFilters, a UpdateFilter) domain.FlightFilters {
	switch a.Field {
	case domain.FilterStops:
		filters.Stops = a.Stops
	case domain.FilterPriceRange:
		filters.PriceRange = a.PriceRange
	case domain.FilterAirlines:
		filters.Airlines = a.Airlines
	case domain.FilterDepartureTime:
		filters.DepartureTime = a.DepartureTime
	}
	return filters
}
