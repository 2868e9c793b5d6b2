// Package http provides the HTTP handler layer for the flight finder API.
// It handles request parsing, validation, response formatting, and error
// mapping.
package http

import (
	"regexp"

	"github.com/flightfinder/flight-finder-service/internal/domain"
	"github.com/flightfinder/flight-finder-service/internal/usecase"
)

// SearchRequest represents the request body for dispatching a flight search.
type SearchRequest struct {
	// TripType is the search shape: one-way, round-trip, or multi-city
	// (optional; inferred from returnDate when empty)
	TripType string `json:"tripType,omitempty"`

	// Origin is the IATA code of the departure airport (e.g., "JFK")
	Origin string `json:"origin"`

	// Destination is the IATA code of the arrival airport (e.g., "LHR")
	Destination string `json:"destination"`

	// DepartureDate is the desired departure date in YYYY-MM-DD format
	DepartureDate string `json:"departureDate"`

	// ReturnDate is the return date for round-trip searches (optional)
	ReturnDate string `json:"returnDate,omitempty"`

	// Passengers is the number of adult passengers (1-9, default 1)
	Passengers int `json:"passengers,omitempty"`

	// CabinClass is the requested cabin (optional, defaults to Economy)
	CabinClass string `json:"cabinClass,omitempty"`

	// NonStop restricts results to direct flights when true
	NonStop bool `json:"nonStop,omitempty"`

	// Legs is the ordered leg list for multi-city searches
	Legs []LegRequest `json:"legs,omitempty"`
}

// LegRequest is one leg of a multi-city search request.
type LegRequest struct {
	Origin        string `json:"origin"`
	Destination   string `json:"destination"`
	DepartureDate string `json:"departureDate"`
}

// UpdateFilterRequest represents the request body for replacing one filter
// field. Only the payload member matching Field is read.
type UpdateFilterRequest struct {
	// Field names the filter to replace: stops, priceRange, airlines, or
	// departureTime
	Field string `json:"field"`

	// Stops is the accepted stop-bucket set (0, 1, or 2 for "2+")
	Stops []int `json:"stops,omitempty"`

	// PriceRange is the accepted [min, max] price window, inclusive
	PriceRange *[2]float64 `json:"priceRange,omitempty"`

	// Airlines is the accepted airline code set
	Airlines []string `json:"airlines,omitempty"`

	// DepartureTime is the accepted day-part set: morning, afternoon, evening
	DepartureTime []string `json:"departureTime,omitempty"`
}

// SortRequest represents the request body for changing the sort order.
type SortRequest struct {
	// SortBy is the sort option: cheapest, fastest, or best
	SortBy string `json:"sortBy"`
}

// Validation patterns for request fields. Full semantic validation happens in
// the domain layer; these catch obvious shape errors early so the client gets
// field-level details.
var (
	airportCodePattern = regexp.MustCompile(`^[A-Z]{3}$`)
	datePattern        = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)
)

// Validate performs field-level validation on the search request.
// Returns a map of field name to problem description, empty when valid.
func (r *SearchRequest) Validate() map[string]string {
	details := make(map[string]string)

	if r.TripType == string(domain.TripMultiCity) {
		if len(r.Legs) < 2 {
			details["legs"] = "multi-city searches require at least 2 legs"
		}
		for _, leg := range r.Legs {
			if !airportCodePattern.MatchString(leg.Origin) || !airportCodePattern.MatchString(leg.Destination) {
				details["legs"] = "each leg needs 3-letter IATA origin and destination codes"
				break
			}
			if !datePattern.MatchString(leg.DepartureDate) {
				details["legs"] = "each leg needs a departure date in YYYY-MM-DD format"
				break
			}
		}
		return details
	}

	if r.Origin == "" {
		details["origin"] = "is required"
	} else if !airportCodePattern.MatchString(r.Origin) {
		details["origin"] = "must be a 3-letter IATA code"
	}

	if r.Destination == "" {
		details["destination"] = "is required"
	} else if !airportCodePattern.MatchString(r.Destination) {
		details["destination"] = "must be a 3-letter IATA code"
	}

	if r.DepartureDate == "" {
		details["departureDate"] = "is required"
	} else if !datePattern.MatchString(r.DepartureDate) {
		details["departureDate"] = "must be in YYYY-MM-DD format"
	}

	if r.ReturnDate != "" && !datePattern.MatchString(r.ReturnDate) {
		details["returnDate"] = "must be in YYYY-MM-DD format"
	}

	if r.Passengers < 0 || r.Passengers > 9 {
		details["passengers"] = "must be between 1 and 9"
	}

	return details
}

// ToParams converts the request into domain search parameters. Defaults and
// full semantic validation are applied by the session.
func (r *SearchRequest) ToParams() domain.SearchParams {
	legs := make([]domain.FlightLeg, 0, len(r.Legs))
	for _, leg := range r.Legs {
		legs = append(legs, domain.FlightLeg{
			Origin:        leg.Origin,
			Destination:   leg.Destination,
			DepartureDate: leg.DepartureDate,
		})
	}

	return domain.SearchParams{
		TripType:      domain.TripType(r.TripType),
		Origin:        r.Origin,
		Destination:   r.Destination,
		DepartureDate: r.DepartureDate,
		ReturnDate:    r.ReturnDate,
		Passengers:    r.Passengers,
		CabinClass:    r.CabinClass,
		NonStop:       r.NonStop,
		Legs:          legs,
	}
}

// Validate checks the filter update request.
// Returns a map of field name to problem description, empty when valid.
func (r *UpdateFilterRequest) Validate() map[string]string {
	details := make(map[string]string)

	field := domain.FilterField(r.Field)
	if !field.IsValid() {
		details["field"] = "must be one of: stops, priceRange, airlines, departureTime"
		return details
	}

	switch field {
	case domain.FilterStops:
		for _, s := range r.Stops {
			if s < 0 || s > domain.StopBucketCap {
				details["stops"] = "buckets must be 0, 1, or 2"
				break
			}
		}
	case domain.FilterPriceRange:
		if r.PriceRange == nil {
			details["priceRange"] = "is required for this field"
		} else if r.PriceRange[0] > r.PriceRange[1] {
			details["priceRange"] = "min must not exceed max"
		}
	case domain.FilterDepartureTime:
		for _, d := range r.DepartureTime {
			if !domain.DayPart(d).IsValid() {
				details["departureTime"] = "buckets must be morning, afternoon, or evening"
				break
			}
		}
	}

	return details
}

// ToAction converts the request into a reducer action. Call Validate first.
func (r *UpdateFilterRequest) ToAction() usecase.UpdateFilter {
	action := usecase.UpdateFilter{
		Field:    domain.FilterField(r.Field),
		Stops:    r.Stops,
		Airlines: r.Airlines,
	}
	if r.PriceRange != nil {
		action.PriceRange = *r.PriceRange
	}
	for _, d := range r.DepartureTime {
		action.DepartureTime = append(action.DepartureTime, domain.DayPart(d))
	}
	return action
}
