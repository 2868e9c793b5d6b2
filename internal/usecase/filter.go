// Package usecase contains the business logic of the flight finder: the pure
// filter/sort engine and the reducer-driven search session that mediates
// between the UI, the provider gateway and the filtered view of results.
package usecase

import (
	"sort"
	"strings"

	"github.com/flightfinder/flight-finder-service/internal/domain"
)

// Weights of the "best" sort comparator. These are a fixed design constant,
// not configurable, and intentionally different from the ingestion-time
// best-value badge score used by the transformer.
const (
	bestSortPriceWeight    = 0.6
	bestSortDurationWeight = 0.4
)

// ApplyFilters applies the active filters and sort order to a flight list and
// returns a new slice. The input slice is never mutated.
//
// Filter semantics:
//   - Stops: flights are bucketed as 0, 1 or 2 ("2+"); a flight passes when
//     its bucket is in the accepted set. Empty set = no constraint.
//   - PriceRange: inclusive [min, max] window.
//   - Airlines: accepted airline codes (case-insensitive). Empty = all.
//   - DepartureTime: day-part bucket of the local departure hour. Empty = all.
//
// All three sorts are stable: flights that compare equal keep their input
// order.
func ApplyFilters(flights []domain.Flight, filters domain.FlightFilters, sortBy domain.SortOption) []domain.Flight {
	var airlineSet map[string]struct{}
	if len(filters.Airlines) > 0 {
		airlineSet = buildAirlineSet(filters.Airlines)
	}

	var stopSet map[int]struct{}
	if len(filters.Stops) > 0 {
		stopSet = make(map[int]struct{}, len(filters.Stops))
		for _, s := range filters.Stops {
			stopSet[s] = struct{}{}
		}
	}

	var dayPartSet map[domain.DayPart]struct{}
	if len(filters.DepartureTime) > 0 {
		dayPartSet = make(map[domain.DayPart]struct{}, len(filters.DepartureTime))
		for _, d := range filters.DepartureTime {
			dayPartSet[d] = struct{}{}
		}
	}

	result := make([]domain.Flight, 0, len(flights))
	for _, f := range flights {
		if passesAllFilters(f, filters, stopSet, airlineSet, dayPartSet) {
			result = append(result, f)
		}
	}

	sortFlights(result, sortBy)
	return result
}

// passesAllFilters checks a single flight against every active filter.
func passesAllFilters(
	f domain.Flight,
	filters domain.FlightFilters,
	stopSet map[int]struct{},
	airlineSet map[string]struct{},
	dayPartSet map[domain.DayPart]struct{},
) bool {
	if stopSet != nil {
		if _, ok := stopSet[domain.StopBucket(f.Stops)]; !ok {
			return false
		}
	}

	if f.Price < filters.PriceRange[0] || f.Price > filters.PriceRange[1] {
		return false
	}

	if airlineSet != nil {
		if _, ok := airlineSet[strings.ToUpper(f.Airline.Code)]; !ok {
			return false
		}
	}

	if dayPartSet != nil {
		// Hour in the departure airport's local time, as carried by the
		// provider timestamp's offset.
		part := domain.DayPartForHour(f.DepartureTime.Hour())
		if _, ok := dayPartSet[part]; !ok {
			return false
		}
	}

	return true
}

// sortFlights orders the slice in place by the given sort option.
func sortFlights(flights []domain.Flight, sortBy domain.SortOption) {
	switch sortBy {
	case domain.SortFastest:
		sort.SliceStable(flights, func(i, j int) bool {
			return flights[i].Duration < flights[j].Duration
		})
	case domain.SortBest:
		sort.SliceStable(flights, func(i, j int) bool {
			return bestSortScore(flights[i]) < bestSortScore(flights[j])
		})
	case domain.SortCheapest:
		fallthrough
	default:
		sort.SliceStable(flights, func(i, j int) bool {
			return flights[i].Price < flights[j].Price
		})
	}
}

// bestSortScore is the composite list-ranking score (lower is better).
func bestSortScore(f domain.Flight) float64 {
	return f.Price*bestSortPriceWeight + float64(f.Duration)*bestSortDurationWeight
}

// buildAirlineSet creates a case-insensitive lookup set of airline codes.
func buildAirlineSet(airlines []string) map[string]struct{} {
	set := make(map[string]struct{}, len(airlines))
	for _, code := range airlines {
		set[strings.ToUpper(code)] = struct{}{}
	}
	return set
}
