// Package domain contains the core business entities and rules for the flight
// finder. These entities are provider-agnostic and form the contract between
// the search core and the presentation layer that consumes it.
package domain

import "time"

// Flight represents a single priced flight offer, normalized from the
// provider's offer schema.
//
// Only the outbound itinerary of an offer is modeled; for round-trip searches
// the return itinerary is not represented as a separate entity. This is a
// known scope boundary carried over from the product design.
type Flight struct {
	// ID is the provider's offer identifier
	ID string `json:"id"`

	// Airline is the validating airline for the offer
	Airline Airline `json:"airline"`

	// FlightNumber is the first segment's carrier code and number (e.g., "DL 401")
	FlightNumber string `json:"flightNumber"`

	// DepartureTime is the departure time of the first segment
	DepartureTime time.Time `json:"departureTime"`

	// ArrivalTime is the arrival time of the last segment
	ArrivalTime time.Time `json:"arrivalTime"`

	// Origin is the IATA code of the departure airport (e.g., "JFK")
	Origin string `json:"origin"`

	// Destination is the IATA code of the arrival airport (e.g., "LHR")
	Destination string `json:"destination"`

	// Duration is the total itinerary duration in minutes
	Duration int `json:"duration"`

	// Stops is the number of intermediate stops (0 = direct flight)
	Stops int `json:"stops"`

	// StopLocations holds the IATA codes of intermediate airports, in order.
	// Its length always equals Stops.
	StopLocations []string `json:"stopLocations"`

	// Price is the offer's grand total
	Price float64 `json:"price"`

	// Currency is the ISO 4217 currency code (e.g., "USD")
	Currency string `json:"currency"`

	// CabinClass is the title-cased cabin of the first traveler's first
	// segment fare (e.g., "Economy", "Premium Economy")
	CabinClass string `json:"cabinClass"`

	// Aircraft is the display name of the first segment's aircraft
	Aircraft string `json:"aircraft"`

	// IsNextDay is true when the arrival falls on a different UTC calendar
	// day than the departure
	IsNextDay bool `json:"isNextDay"`

	// IsBestValue marks the single standout flight of a result set.
	// At most one flight per FlightSearchResult carries this flag.
	IsBestValue bool `json:"isBestValue"`

	// Segments holds per-leg detail, in order. Its length equals Stops+1,
	// Segments[0].Origin == Origin and Segments[last].Destination == Destination.
	Segments []FlightSegment `json:"segments"`
}

// Airline identifies the validating airline of a flight offer.
type Airline struct {
	// Code is the IATA airline code (e.g., "DL")
	Code string `json:"code"`

	// Name is the display name (e.g., "Delta Air Lines")
	Name string `json:"name"`

	// Logo is a reference to the airline's logo asset
	Logo string `json:"logo"`
}

// FlightSegment is one non-stop leg within a flight's itinerary.
type FlightSegment struct {
	// Airline is the display name of the operating carrier for this leg
	Airline string `json:"airline"`

	// FlightNumber is the carrier code and number for this leg
	FlightNumber string `json:"flightNumber"`

	// Origin is the IATA code of the leg's departure airport
	Origin string `json:"origin"`

	// Destination is the IATA code of the leg's arrival airport
	Destination string `json:"destination"`

	// DepartureTime is the leg's scheduled departure
	DepartureTime time.Time `json:"departureTime"`

	// ArrivalTime is the leg's scheduled arrival
	ArrivalTime time.Time `json:"arrivalTime"`

	// Duration is the leg duration in minutes
	Duration int `json:"duration"`

	// Aircraft is the display name of the aircraft flying this leg
	Aircraft string `json:"aircraft"`
}

// AirlineInfo is an airline entry in a result set's deduplicated airline list.
type AirlineInfo struct {
	// Code is the IATA airline code
	Code string `json:"code"`

	// Name is the display name
	Name string `json:"name"`
}

// PriceRange holds the minimum and maximum price across a result set.
type PriceRange struct {
	Min float64 `json:"min"`
	Max float64 `json:"max"`
}

// FlightSearchResult is the normalized outcome of one provider search.
type FlightSearchResult struct {
	// Flights is the transformed offer list, price-ascending immediately
	// after transformation
	Flights []Flight `json:"flights"`

	// Airlines is the deduplicated airline list in first-seen order
	Airlines []AirlineInfo `json:"airlines"`

	// PriceRange is the min/max price over Flights ({0,0} when empty)
	PriceRange PriceRange `json:"priceRange"`

	// TotalResults is the provider-reported match count. The provider may
	// report more matches than offers were returned; falls back to
	// len(Flights) when the provider omits it.
	TotalResults int `json:"totalResults"`
}

// EmptyFlightSearchResult returns the canonical zero-result value.
// Provider failures are represented with this value rather than an error.
func EmptyFlightSearchResult() FlightSearchResult {
	return FlightSearchResult{
		Flights:    []Flight{},
		Airlines:   []AirlineInfo{},
		PriceRange: PriceRange{Min: 0, Max: 0},
	}
}

// Airport is a location entry served to the autocomplete UI.
type Airport struct {
	// Code is the IATA airport code (e.g., "JFK")
	Code string `json:"code"`

	// Name is the title-cased airport name (e.g., "John F Kennedy Intl")
	Name string `json:"name"`

	// City is the title-cased city name
	City string `json:"city"`

	// Country is the ISO 3166-1 alpha-2 country code
	Country string `json:"country"`
}
