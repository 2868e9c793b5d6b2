package domain

import "context"

//go:generate mockgen -source=gateway.go -destination=gateway_mock.go -package=domain

// FlightGateway is the port to the external flight provider.
// Implementations handle authentication, retries and fallbacks at the
// boundary; SearchFlights returns the empty result rather than an error when
// the provider fails, so callers never see transport failures as exceptions.
type FlightGateway interface {
	// SearchFlights runs a flight-offer search for the given parameters and
	// returns the normalized result. A provider failure yields the empty
	// FlightSearchResult and a nil error.
	SearchFlights(ctx context.Context, params SearchParams) (FlightSearchResult, error)
}

// AirportGateway is the port to the external location-search provider.
type AirportGateway interface {
	// SearchAirports returns airport suggestions for a free-text keyword
	// (minimum 2 characters). On provider failure it degrades to a static
	// fallback list rather than returning an error.
	SearchAirports(ctx context.Context, keyword string) ([]Airport, error)

	// AirportByCode looks up a single airport by exact IATA code.
	// Returns nil when no airport matches.
	AirportByCode(ctx context.Context, code string) (*Airport, error)
}
