package usecase

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/flightfinder/flight-finder-service/internal/domain"
)

func testFlights() []domain.Flight {
	return []domain.Flight{
		{
			ID:            "f1",
			Airline:       domain.Airline{Code: "DL", Name: "Delta Air Lines"},
			Price:         450,
			Duration:      300,
			Stops:         0,
			DepartureTime: time.Date(2024, 10, 24, 8, 0, 0, 0, time.UTC),
		},
		{
			ID:            "f2",
			Airline:       domain.Airline{Code: "BA", Name: "British Airways"},
			Price:         600,
			Duration:      100,
			Stops:         1,
			DepartureTime: time.Date(2024, 10, 24, 14, 0, 0, 0, time.UTC),
		},
		{
			ID:            "f3",
			Airline:       domain.Airline{Code: "AF", Name: "Air France"},
			Price:         900,
			Duration:      200,
			Stops:         3,
			DepartureTime: time.Date(2024, 10, 24, 21, 0, 0, 0, time.UTC),
		},
	}
}

func acceptAll() domain.FlightFilters {
	return domain.DefaultFilters(domain.PriceRange{Min: 450, Max: 900})
}

func flightIDs(flights []domain.Flight) []string {
	ids := make([]string, len(flights))
	for i, f := range flights {
		ids[i] = f.ID
	}
	return ids
}

// TestApplyFilters_NoFilters verifies default filters pass everything
// through sorted by price.
func TestApplyFilters_NoFilters(t *testing.T) {
	result := ApplyFilters(testFlights(), acceptAll(), domain.SortCheapest)
	assert.Equal(t, []string{"f1", "f2", "f3"}, flightIDs(result))
}

// TestApplyFilters_PriceRange verifies the price window is inclusive on
// both ends.
func TestApplyFilters_PriceRange(t *testing.T) {
	filters := acceptAll()
	filters.PriceRange = [2]float64{500, 700}

	result := ApplyFilters(testFlights(), filters, domain.SortCheapest)
	assert.Equal(t, []string{"f2"}, flightIDs(result))

	// Boundary values stay in.
	filters.PriceRange = [2]float64{450, 900}
	result = ApplyFilters(testFlights(), filters, domain.SortCheapest)
	assert.Len(t, result, 3)
}

// TestApplyFilters_Stops verifies stop-count bucketing with the 2+ bucket.
func TestApplyFilters_Stops(t *testing.T) {
	tests := []struct {
		name  string
		stops []int
		want  []string
	}{
		{name: "nonstop only", stops: []int{0}, want: []string{"f1"}},
		{name: "one stop", stops: []int{1}, want: []string{"f2"}},
		{name: "two plus catches three stops", stops: []int{2}, want: []string{"f3"}},
		{name: "empty means no constraint", stops: nil, want: []string{"f1", "f2", "f3"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			filters := acceptAll()
			filters.Stops = tt.stops
			result := ApplyFilters(testFlights(), filters, domain.SortCheapest)
			assert.Equal(t, tt.want, flightIDs(result))
		})
	}
}

// TestApplyFilters_Airlines verifies airline filtering is case-insensitive.
func TestApplyFilters_Airlines(t *testing.T) {
	filters := acceptAll()
	filters.Airlines = []string{"dl", "AF"}

	result := ApplyFilters(testFlights(), filters, domain.SortCheapest)
	assert.Equal(t, []string{"f1", "f3"}, flightIDs(result))
}

// TestApplyFilters_DepartureTime verifies day-part bucketing of the
// departure hour.
func TestApplyFilters_DepartureTime(t *testing.T) {
	filters := acceptAll()
	filters.DepartureTime = []domain.DayPart{domain.DayPartMorning, domain.DayPartEvening}

	result := ApplyFilters(testFlights(), filters, domain.SortCheapest)
	assert.Equal(t, []string{"f1", "f3"}, flightIDs(result))
}

// TestApplyFilters_SortFastest verifies duration ordering.
func TestApplyFilters_SortFastest(t *testing.T) {
	result := ApplyFilters(testFlights(), acceptAll(), domain.SortFastest)
	assert.Equal(t, []string{"f2", "f3", "f1"}, flightIDs(result))
}

// TestApplyFilters_SortBest verifies the weighted price/duration ordering.
func TestApplyFilters_SortBest(t *testing.T) {
	// Scores: f1 = 450*0.6 + 300*0.4 = 390, f2 = 400, f3 = 620.
	result := ApplyFilters(testFlights(), acceptAll(), domain.SortBest)
	assert.Equal(t, []string{"f1", "f2", "f3"}, flightIDs(result))
}

// TestApplyFilters_StableSort verifies equal sort keys keep input order.
func TestApplyFilters_StableSort(t *testing.T) {
	flights := []domain.Flight{
		{ID: "a", Price: 500, Duration: 120},
		{ID: "b", Price: 500, Duration: 90},
		{ID: "c", Price: 500, Duration: 150},
	}
	filters := domain.DefaultFilters(domain.PriceRange{Min: 500, Max: 500})

	result := ApplyFilters(flights, filters, domain.SortCheapest)
	assert.Equal(t, []string{"a", "b", "c"}, flightIDs(result))
}

// TestApplyFilters_DoesNotMutateInput verifies the input slice keeps its
// order after a sorted call.
func TestApplyFilters_DoesNotMutateInput(t *testing.T) {
	flights := testFlights()
	_ = ApplyFilters(flights, acceptAll(), domain.SortFastest)
	assert.Equal(t, []string{"f1", "f2", "f3"}, flightIDs(flights))
}

// TestApplyFilters_CombinedFilters verifies filters compose with AND
// semantics.
func TestApplyFilters_CombinedFilters(t *testing.T) {
	filters := acceptAll()
	filters.Stops = []int{0, 1}
	filters.PriceRange = [2]float64{500, 900}

	result := ApplyFilters(testFlights(), filters, domain.SortCheapest)
	require.Len(t, result, 1)
	assert.Equal(t, "f2", result[0].ID)
}
