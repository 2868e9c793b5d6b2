package amadeus

import (
	"context"
	"net/url"
	"strconv"

	"github.com/flightfinder/flight-finder-service/internal/domain"
)

// flightOffersPath is the provider's flight-offer search endpoint.
const flightOffersPath = "/v2/shopping/flight-offers"

// searchCurrency pins all offer pricing to one currency.
const searchCurrency = "USD"

// cabinClassMap translates UI cabin names to the provider's enumeration.
var cabinClassMap = map[string]string{
	domain.CabinEconomy:        "ECONOMY",
	domain.CabinPremiumEconomy: "PREMIUM_ECONOMY",
	domain.CabinBusiness:       "BUSINESS",
	domain.CabinFirst:          "FIRST",
}

// SearchFlights implements domain.FlightGateway.
//
// Provider failures never propagate: any gateway error is logged, reported
// through the fallback hook and converted to the empty result, so the UI
// shows "no flights" rather than an error page. Callers that must tell the
// two apart observe the fallback hook.
func (c *Client) SearchFlights(ctx context.Context, params domain.SearchParams) (domain.FlightSearchResult, error) {
	if params.TripType == domain.TripMultiCity && len(params.Legs) >= 2 {
		return c.searchMultiCity(ctx, params)
	}

	query := c.offerQuery(params.Origin, params.Destination, params.DepartureDate, params)
	if params.ReturnDate != "" {
		query.Set("returnDate", params.ReturnDate)
	}

	var resp flightOffersResponse
	if err := c.get(ctx, flightOffersPath, query, &resp); err != nil {
		c.log.Warn().Err(err).
			Str("origin", params.Origin).
			Str("destination", params.Destination).
			Msg("Flight search failed, returning empty result")
		c.onFallback("flight_search_error")
		return domain.EmptyFlightSearchResult(), nil
	}

	return c.finishTransform(TransformOffers(resp))
}

// searchMultiCity runs one point-to-point search per leg and merges the
// results. The provider's offer search is point-to-point, so legs are
// queried independently.
func (c *Client) searchMultiCity(ctx context.Context, params domain.SearchParams) (domain.FlightSearchResult, error) {
	legResults := make([]domain.FlightSearchResult, 0, len(params.Legs))

	for _, leg := range params.Legs {
		query := c.offerQuery(leg.Origin, leg.Destination, leg.DepartureDate, params)

		var resp flightOffersResponse
		if err := c.get(ctx, flightOffersPath, query, &resp); err != nil {
			c.log.Warn().Err(err).
				Str("origin", leg.Origin).
				Str("destination", leg.Destination).
				Msg("Multi-city leg search failed, skipping leg")
			c.onFallback("flight_search_error")
			continue
		}

		result, stats := TransformOffers(resp)
		c.reportStats(stats)
		legResults = append(legResults, result)
	}

	return MergeResults(legResults...), nil
}

// offerQuery builds the common offer-search query parameters.
func (c *Client) offerQuery(origin, destination, departureDate string, params domain.SearchParams) url.Values {
	query := url.Values{}
	query.Set("originLocationCode", origin)
	query.Set("destinationLocationCode", destination)
	query.Set("departureDate", departureDate)
	query.Set("adults", strconv.Itoa(params.Passengers))
	query.Set("max", strconv.Itoa(c.resultLimit))
	query.Set("currencyCode", searchCurrency)

	if params.CabinClass != "" {
		travelClass, ok := cabinClassMap[params.CabinClass]
		if !ok {
			travelClass = "ECONOMY"
		}
		query.Set("travelClass", travelClass)
	}
	if params.NonStop {
		query.Set("nonStop", "true")
	}

	return query
}

// finishTransform reports transform fallbacks and returns the result.
func (c *Client) finishTransform(result domain.FlightSearchResult, stats transformStats) (domain.FlightSearchResult, error) {
	c.reportStats(stats)
	return result, nil
}

// reportStats surfaces silent transform fallbacks through the log and hook.
func (c *Client) reportStats(stats transformStats) {
	if stats.malformedDurations > 0 {
		c.log.Warn().Int("count", stats.malformedDurations).Msg("Malformed durations coerced to zero")
		for i := 0; i < stats.malformedDurations; i++ {
			c.onFallback("malformed_duration")
		}
	}
}

// Ensure Client implements the gateway ports at compile time.
var (
	_ domain.FlightGateway  = (*Client)(nil)
	_ domain.AirportGateway = (*Client)(nil)
)
