// Package mock provides test doubles for the flight finder service.
// These mocks are designed for integration testing where we need
// configurable behavior (delays, errors, specific responses).
package mock

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/flightfinder/flight-finder-service/internal/domain"
)

// Gateway is a configurable mock implementation of domain.FlightGateway and
// domain.AirportGateway. It supports configurable delays, errors, and
// responses for testing various scenarios including slow fetches and
// degraded airport lookups.
type Gateway struct {
	result   domain.FlightSearchResult
	airports []domain.Airport
	err      error
	delay    time.Duration

	mu           sync.Mutex
	searchCalls  int
	airportCalls int
	lastParams   domain.SearchParams
	lastKeyword  string
}

// NewGateway creates a new mock gateway.
// The gateway is configured using the builder pattern methods.
func NewGateway() *Gateway {
	return &Gateway{}
}

// WithResult configures the gateway to return the given search result.
func (g *Gateway) WithResult(result domain.FlightSearchResult) *Gateway {
	g.result = result
	return g
}

// WithAirports configures the gateway to return the given airports.
func (g *Gateway) WithAirports(airports []domain.Airport) *Gateway {
	g.airports = airports
	return g
}

// WithError configures the gateway to return the given error.
func (g *Gateway) WithError(err error) *Gateway {
	g.err = err
	return g
}

// WithDelay configures the gateway to wait the given duration before
// responding. This is useful for observing the loading state.
func (g *Gateway) WithDelay(d time.Duration) *Gateway {
	g.delay = d
	return g
}

// SearchFlights implements domain.FlightGateway.
// It respects context cancellation, applies the configured delay, and
// returns the configured result or error.
func (g *Gateway) SearchFlights(ctx context.Context, params domain.SearchParams) (domain.FlightSearchResult, error) {
	g.mu.Lock()
	g.searchCalls++
	g.lastParams = params
	g.mu.Unlock()

	if g.delay > 0 {
		select {
		case <-ctx.Done():
			return domain.EmptyFlightSearchResult(), ctx.Err()
		case <-time.After(g.delay):
		}
	}

	if g.err != nil {
		return domain.EmptyFlightSearchResult(), g.err
	}
	return g.result, nil
}

// SearchAirports implements domain.AirportGateway.
func (g *Gateway) SearchAirports(ctx context.Context, keyword string) ([]domain.Airport, error) {
	g.mu.Lock()
	g.airportCalls++
	g.lastKeyword = keyword
	g.mu.Unlock()

	if g.err != nil {
		return nil, g.err
	}
	return g.airports, nil
}

// AirportByCode implements domain.AirportGateway.
func (g *Gateway) AirportByCode(ctx context.Context, code string) (*domain.Airport, error) {
	if g.err != nil {
		return nil, g.err
	}
	for i := range g.airports {
		if g.airports[i].Code == code {
			return &g.airports[i], nil
		}
	}
	return nil, nil
}

// SearchCalls returns how many flight searches the gateway has served.
func (g *Gateway) SearchCalls() int {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.searchCalls
}

// LastParams returns the parameters of the most recent flight search.
func (g *Gateway) LastParams() domain.SearchParams {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.lastParams
}

// SampleFlights generates n flights with ascending prices and durations.
// Flight IDs follow the pattern "<airline>-1", "<airline>-2", ...
func SampleFlights(airline string, n int) []domain.Flight {
	base := time.Date(2026, 9, 1, 8, 0, 0, 0, time.UTC)

	flights := make([]domain.Flight, n)
	for i := 0; i < n; i++ {
		departure := base.Add(time.Duration(i) * 2 * time.Hour)
		duration := 300 + i*60
		flights[i] = domain.Flight{
			ID:            fmt.Sprintf("%s-%d", airline, i+1),
			Airline:       domain.Airline{Code: airline, Name: airline},
			FlightNumber:  fmt.Sprintf("%s%d", airline, 100+i),
			Origin:        "JFK",
			Destination:   "LHR",
			DepartureTime: departure,
			ArrivalTime:   departure.Add(time.Duration(duration) * time.Minute),
			Duration:      duration,
			Stops:         i % 3,
			Price:         450 + float64(i)*75,
			Currency:      "USD",
			CabinClass:    "Economy",
		}
	}
	return flights
}

// SampleAirports returns a small airport set for lookup tests.
func SampleAirports() []domain.Airport {
	return []domain.Airport{
		{Code: "JFK", Name: "John F Kennedy Intl", City: "New York", Country: "US"},
		{Code: "LHR", Name: "Heathrow", City: "London", Country: "GB"},
		{Code: "LGW", Name: "Gatwick", City: "London", Country: "GB"},
	}
}

// SampleResult wraps the given flights into a complete search result with
// derived airline and price-range metadata.
func SampleResult(flights []domain.Flight) domain.FlightSearchResult {
	if len(flights) == 0 {
		return domain.EmptyFlightSearchResult()
	}

	pr := domain.PriceRange{Min: flights[0].Price, Max: flights[0].Price}
	seen := make(map[string]struct{})
	var airlines []domain.AirlineInfo
	for _, f := range flights {
		if f.Price < pr.Min {
			pr.Min = f.Price
		}
		if f.Price > pr.Max {
			pr.Max = f.Price
		}
		if _, ok := seen[f.Airline.Code]; !ok {
			seen[f.Airline.Code] = struct{}{}
			airlines = append(airlines, domain.AirlineInfo{Code: f.Airline.Code, Name: f.Airline.Name})
		}
	}

	return domain.FlightSearchResult{
		Flights:      flights,
		Airlines:     airlines,
		PriceRange:   pr,
		TotalResults: len(flights),
	}
}
