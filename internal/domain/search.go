package domain

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"regexp"
	"time"
)

// TripType identifies the shape of a search.
type TripType string

// Supported trip types.
const (
	TripOneWay    TripType = "one-way"
	TripRoundTrip TripType = "round-trip"
	TripMultiCity TripType = "multi-city"
)

// IsValid checks if the trip type is a supported value.
func (t TripType) IsValid() bool {
	switch t {
	case TripOneWay, TripRoundTrip, TripMultiCity:
		return true
	default:
		return false
	}
}

// Cabin classes accepted in search parameters. These are the UI-facing names;
// the provider adapter maps them to the provider's enumerated values.
const (
	CabinEconomy        = "Economy"
	CabinPremiumEconomy = "Premium Economy"
	CabinBusiness       = "Business"
	CabinFirst          = "First"
)

// validCabinClasses defines the allowed cabin classes.
var validCabinClasses = map[string]bool{
	CabinEconomy:        true,
	CabinPremiumEconomy: true,
	CabinBusiness:       true,
	CabinFirst:          true,
}

// FlightLeg is one leg of a multi-city search.
type FlightLeg struct {
	// Origin is the IATA code of the leg's departure airport
	Origin string `json:"origin"`

	// Destination is the IATA code of the leg's arrival airport
	Destination string `json:"destination"`

	// DepartureDate is the leg's departure date in YYYY-MM-DD format
	DepartureDate string `json:"departureDate"`
}

// SearchParams defines the parameters for a flight search.
type SearchParams struct {
	// Origin is the IATA code of the departure airport (e.g., "JFK")
	Origin string `json:"origin"`

	// Destination is the IATA code of the arrival airport (e.g., "LHR")
	Destination string `json:"destination"`

	// DepartureDate is the desired departure date in YYYY-MM-DD format
	DepartureDate string `json:"departureDate"`

	// ReturnDate is the return date for round-trip searches (optional)
	ReturnDate string `json:"returnDate,omitempty"`

	// Passengers is the number of adult passengers (default: 1)
	Passengers int `json:"passengers"`

	// CabinClass is the requested cabin (optional, defaults to Economy)
	CabinClass string `json:"cabinClass,omitempty"`

	// TripType is the search shape (default: one-way)
	TripType TripType `json:"tripType"`

	// Legs is the ordered leg list for multi-city searches
	Legs []FlightLeg `json:"legs,omitempty"`

	// NonStop restricts results to direct flights when true
	NonStop bool `json:"nonStop,omitempty"`
}

// airportCodeRegex matches valid IATA airport codes (3 uppercase letters).
var airportCodeRegex = regexp.MustCompile(`^[A-Z]{3}$`)

// dateRegex matches dates in YYYY-MM-DD format.
var dateRegex = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)

// Validate checks if the search parameters are complete and well-formed.
// A search with missing origin, destination or date is rejected here,
// before any provider call is made.
// Returns a wrapped ErrInvalidSearch error if validation fails.
func (p *SearchParams) Validate() error {
	if p.TripType == TripMultiCity {
		return p.validateLegs()
	}

	if p.Origin == "" {
		return fmt.Errorf("%w: origin is required", ErrInvalidSearch)
	}
	if !airportCodeRegex.MatchString(p.Origin) {
		return fmt.Errorf("%w: origin must be a valid 3-letter IATA code, got %q", ErrInvalidSearch, p.Origin)
	}

	if p.Destination == "" {
		return fmt.Errorf("%w: destination is required", ErrInvalidSearch)
	}
	if !airportCodeRegex.MatchString(p.Destination) {
		return fmt.Errorf("%w: destination must be a valid 3-letter IATA code, got %q", ErrInvalidSearch, p.Destination)
	}

	if p.Origin == p.Destination {
		return fmt.Errorf("%w: origin and destination must be different", ErrInvalidSearch)
	}

	if err := validateDate("departureDate", p.DepartureDate); err != nil {
		return err
	}

	if p.TripType == TripRoundTrip {
		if p.ReturnDate == "" {
			return fmt.Errorf("%w: returnDate is required for round-trip searches", ErrInvalidSearch)
		}
		if err := validateDate("returnDate", p.ReturnDate); err != nil {
			return err
		}
	}

	if p.Passengers < 1 {
		return fmt.Errorf("%w: passengers must be at least 1", ErrInvalidSearch)
	}
	if p.Passengers > 9 {
		return fmt.Errorf("%w: passengers cannot exceed 9", ErrInvalidSearch)
	}

	if p.CabinClass != "" && !validCabinClasses[p.CabinClass] {
		return fmt.Errorf("%w: cabinClass must be one of: Economy, Premium Economy, Business, First; got %q", ErrInvalidSearch, p.CabinClass)
	}

	if p.TripType != "" && !p.TripType.IsValid() {
		return fmt.Errorf("%w: tripType must be one of: one-way, round-trip, multi-city; got %q", ErrInvalidSearch, p.TripType)
	}

	return nil
}

// validateLegs validates a multi-city leg list.
func (p *SearchParams) validateLegs() error {
	if len(p.Legs) < 2 {
		return fmt.Errorf("%w: multi-city searches require at least 2 legs", ErrInvalidSearch)
	}
	for i, leg := range p.Legs {
		if !airportCodeRegex.MatchString(leg.Origin) {
			return fmt.Errorf("%w: leg %d origin must be a valid 3-letter IATA code, got %q", ErrInvalidSearch, i+1, leg.Origin)
		}
		if !airportCodeRegex.MatchString(leg.Destination) {
			return fmt.Errorf("%w: leg %d destination must be a valid 3-letter IATA code, got %q", ErrInvalidSearch, i+1, leg.Destination)
		}
		if leg.Origin == leg.Destination {
			return fmt.Errorf("%w: leg %d origin and destination must be different", ErrInvalidSearch, i+1)
		}
		if err := validateDate(fmt.Sprintf("leg %d departureDate", i+1), leg.DepartureDate); err != nil {
			return err
		}
	}
	if p.Passengers < 1 {
		return fmt.Errorf("%w: passengers must be at least 1", ErrInvalidSearch)
	}
	return nil
}

// validateDate validates a YYYY-MM-DD date field.
func validateDate(field, value string) error {
	if value == "" {
		return fmt.Errorf("%w: %s is required", ErrInvalidSearch, field)
	}
	if !dateRegex.MatchString(value) {
		return fmt.Errorf("%w: %s must be in YYYY-MM-DD format, got %q", ErrInvalidSearch, field, value)
	}
	if _, err := time.Parse("2006-01-02", value); err != nil {
		return fmt.Errorf("%w: %s is not a valid date: %s", ErrInvalidSearch, field, value)
	}
	return nil
}

// SetDefaults applies default values to empty optional fields.
func (p *SearchParams) SetDefaults() {
	if p.Passengers == 0 {
		p.Passengers = 1
	}
	if p.CabinClass == "" {
		p.CabinClass = CabinEconomy
	}
	if p.TripType == "" {
		if p.ReturnDate != "" {
			p.TripType = TripRoundTrip
		} else {
			p.TripType = TripOneWay
		}
	}
}

// fingerprintForm is the canonical shape hashed by Fingerprint. Field order is
// fixed by the struct definition, so structurally equal parameters always
// serialize to the same bytes regardless of how they were built.
type fingerprintForm struct {
	Origin        string      `json:"o"`
	Destination   string      `json:"d"`
	DepartureDate string      `json:"dd"`
	ReturnDate    string      `json:"rd"`
	Passengers    int         `json:"p"`
	CabinClass    string      `json:"c"`
	TripType      TripType    `json:"t"`
	NonStop       bool        `json:"ns"`
	Legs          []FlightLeg `json:"l,omitempty"`
}

// Fingerprint returns a structural key for these parameters. Two parameter
// values that are deeply equal produce the same fingerprint, which the search
// session uses to dedupe identical searches and to discard responses that
// arrive after the parameters have been superseded.
func (p *SearchParams) Fingerprint() string {
	form := fingerprintForm{
		Origin:        p.Origin,
		Destination:   p.Destination,
		DepartureDate: p.DepartureDate,
		ReturnDate:    p.ReturnDate,
		Passengers:    p.Passengers,
		CabinClass:    p.CabinClass,
		TripType:      p.TripType,
		NonStop:       p.NonStop,
		Legs:          p.Legs,
	}

	// Marshal of a flat struct with string/int/bool fields cannot fail.
	raw, _ := json.Marshal(form)
	sum := sha256.Sum256(raw)
	return hex.EncodeToString(sum[:])
}
