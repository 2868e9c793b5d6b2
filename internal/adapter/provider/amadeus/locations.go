package amadeus

import (
	"context"
	"net/url"
	"sort"
	"strings"

	"github.com/flightfinder/flight-finder-service/internal/domain"
)

// locationsPath is the provider's location search endpoint.
const locationsPath = "/v1/reference-data/locations"

// locationResultLimit caps autocomplete suggestions per query.
const locationResultLimit = 10

// minKeywordLength is the minimum keyword length for a location search.
const minKeywordLength = 2

// SearchAirports implements domain.AirportGateway.
//
// Results are title-cased, deduplicated by code and sorted by relevance to
// the keyword. When the provider fails or returns nothing, the embedded
// major-airports list is searched instead so autocomplete stays usable
// offline.
func (c *Client) SearchAirports(ctx context.Context, keyword string) ([]domain.Airport, error) {
	keyword = strings.TrimSpace(keyword)
	if len(keyword) < minKeywordLength {
		return []domain.Airport{}, nil
	}

	query := url.Values{}
	query.Set("keyword", keyword)
	query.Set("subType", "AIRPORT,CITY")
	query.Set("page[limit]", "10")

	var resp locationsResponse
	if err := c.get(ctx, locationsPath, query, &resp); err != nil {
		c.log.Warn().Err(err).Str("keyword", keyword).Msg("Location search failed, using fallback list")
		c.onFallback("airport_search_fallback")
		return searchFallbackAirports(keyword), nil
	}

	if len(resp.Data) == 0 {
		c.log.Debug().Str("keyword", keyword).Msg("No locations from provider, using fallback list")
		c.onFallback("airport_search_fallback")
		return searchFallbackAirports(keyword), nil
	}

	airports := make([]domain.Airport, 0, len(resp.Data))
	for _, loc := range resp.Data {
		airports = append(airports, toAirport(loc))
	}

	airports = dedupeAirports(airports)
	sortAirportsByRelevance(airports, keyword)
	return airports, nil
}

// AirportByCode implements domain.AirportGateway. It returns nil when the
// provider has no airport with the given code, and degrades to nil on
// provider failure rather than erroring.
func (c *Client) AirportByCode(ctx context.Context, code string) (*domain.Airport, error) {
	code = strings.ToUpper(strings.TrimSpace(code))
	if len(code) != 3 {
		return nil, nil
	}

	query := url.Values{}
	query.Set("keyword", code)
	query.Set("subType", "AIRPORT")
	query.Set("page[limit]", "1")

	var resp locationsResponse
	if err := c.get(ctx, locationsPath, query, &resp); err != nil {
		c.log.Warn().Err(err).Str("code", code).Msg("Airport lookup failed")
		return nil, nil
	}

	for _, loc := range resp.Data {
		if strings.EqualFold(loc.IataCode, code) {
			airport := toAirport(loc)
			return &airport, nil
		}
	}
	return nil, nil
}

// toAirport converts a provider location to the domain Airport, title-casing
// the upper-cased provider names.
func toAirport(loc location) domain.Airport {
	return domain.Airport{
		Code:    loc.IataCode,
		Name:    TitleCase(loc.Name),
		City:    TitleCase(loc.Address.CityName),
		Country: loc.Address.CountryCode,
	}
}

// dedupeAirports removes duplicate codes, keeping the first occurrence.
func dedupeAirports(airports []domain.Airport) []domain.Airport {
	seen := make(map[string]struct{}, len(airports))
	result := airports[:0]
	for _, a := range airports {
		if _, ok := seen[a.Code]; ok {
			continue
		}
		seen[a.Code] = struct{}{}
		result = append(result, a)
	}
	return result
}

// sortAirportsByRelevance orders suggestions by relevance to the keyword:
// exact code match, code prefix, exact city, city prefix, name prefix, then
// alphabetical by city.
func sortAirportsByRelevance(airports []domain.Airport, keyword string) {
	term := strings.ToLower(keyword)

	rank := func(a domain.Airport) int {
		code := strings.ToLower(a.Code)
		city := strings.ToLower(a.City)
		name := strings.ToLower(a.Name)

		switch {
		case code == term:
			return 0
		case strings.HasPrefix(code, term):
			return 1
		case city == term:
			return 2
		case strings.HasPrefix(city, term):
			return 3
		case strings.HasPrefix(name, term):
			return 4
		default:
			return 5
		}
	}

	sort.SliceStable(airports, func(i, j int) bool {
		ri, rj := rank(airports[i]), rank(airports[j])
		if ri != rj {
			return ri < rj
		}
		return strings.ToLower(airports[i].City) < strings.ToLower(airports[j].City)
	})
}
