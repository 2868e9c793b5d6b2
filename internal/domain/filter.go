package domain

// SortOption defines the available sorting options for filtered flight lists.
type SortOption string

// Available sort options.
const (
	// SortCheapest sorts by price ascending (default)
	SortCheapest SortOption = "cheapest"

	// SortFastest sorts by total duration ascending
	SortFastest SortOption = "fastest"

	// SortBest re-ranks the whole filtered list by the composite score
	// price*0.6 + duration*0.4, ascending. This is deliberately a different
	// notion of "best" than the ingestion-time best-value badge on Flight.
	SortBest SortOption = "best"
)

// IsValid checks if the sort option is a supported value.
func (s SortOption) IsValid() bool {
	switch s {
	case SortCheapest, SortFastest, SortBest:
		return true
	default:
		return false
	}
}

// ParseSortOption converts a string to a SortOption.
// Returns SortCheapest if the string is empty or unknown.
func ParseSortOption(s string) SortOption {
	option := SortOption(s)
	if option.IsValid() {
		return option
	}
	return SortCheapest
}

// DayPart is a departure time-of-day bucket.
type DayPart string

// Departure time buckets, derived from the local hour of day:
// 06:00-11:59 morning, 12:00-17:59 afternoon, everything else evening.
const (
	DayPartMorning   DayPart = "morning"
	DayPartAfternoon DayPart = "afternoon"
	DayPartEvening   DayPart = "evening"
)

// IsValid checks if the day part is a supported value.
func (d DayPart) IsValid() bool {
	switch d {
	case DayPartMorning, DayPartAfternoon, DayPartEvening:
		return true
	default:
		return false
	}
}

// DayPartForHour buckets an hour of day (0-23) into a DayPart.
func DayPartForHour(hour int) DayPart {
	switch {
	case hour >= 6 && hour < 12:
		return DayPartMorning
	case hour >= 12 && hour < 18:
		return DayPartAfternoon
	default:
		return DayPartEvening
	}
}

// StopBucketCap is the bucket that collects flights with two or more stops.
const StopBucketCap = 2

// StopBucket collapses a stop count into its filter bucket: 0, 1, or 2
// (meaning "2 or more").
func StopBucket(stops int) int {
	if stops >= StopBucketCap {
		return StopBucketCap
	}
	return stops
}

// FlightFilters holds the active filters over a result set. A zero-length
// set or a full-range price tuple means "no constraint" for that field.
type FlightFilters struct {
	// Stops is the set of accepted stop buckets (0, 1, or 2 for "2+")
	Stops []int `json:"stops"`

	// PriceRange is the accepted [min, max] price window, inclusive
	PriceRange [2]float64 `json:"priceRange"`

	// Airlines is the set of accepted airline codes (empty = all)
	Airlines []string `json:"airlines"`

	// DepartureTime is the set of accepted day-part buckets (empty = all)
	DepartureTime []DayPart `json:"departureTime"`
}

// DefaultFilters returns filters that accept every flight in a result set
// with the given price range.
func DefaultFilters(priceRange PriceRange) FlightFilters {
	return FlightFilters{
		Stops:         []int{},
		PriceRange:    [2]float64{priceRange.Min, priceRange.Max},
		Airlines:      []string{},
		DepartureTime: []DayPart{},
	}
}

// FilterField names a single filter field for targeted updates.
type FilterField string

// Updatable filter fields.
const (
	FilterStops         FilterField = "stops"
	FilterPriceRange    FilterField = "priceRange"
	FilterAirlines      FilterField = "airlines"
	FilterDepartureTime FilterField = "departureTime"
)

// IsValid checks if the filter field is a supported value.
func (f FilterField) IsValid() bool {
	switch f {
	case FilterStops, FilterPriceRange, FilterAirlines, FilterDepartureTime:
		return true
	default:
		return false
	}
}
