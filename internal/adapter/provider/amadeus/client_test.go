package amadeus

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/flightfinder/flight-finder-service/internal/domain"
	"github.com/flightfinder/flight-finder-service/internal/infrastructure/timeutil"
)

const tokenBody = `{"access_token":"tok-abc","token_type":"Bearer","expires_in":1799}`

const minimalOffersBody = `{
	"meta": {"count": 1},
	"data": [{
		"id": "1",
		"itineraries": [{
			"duration": "PT7H30M",
			"segments": [{
				"departure": {"iataCode": "JFK", "at": "2024-10-24T08:00:00"},
				"arrival": {"iataCode": "LHR", "at": "2024-10-24T20:30:00"},
				"carrierCode": "DL",
				"number": "42",
				"aircraft": {"code": "764"},
				"duration": "PT7H30M"
			}]
		}],
		"price": {"currency": "USD", "total": "450.00", "grandTotal": "450.00"},
		"validatingAirlineCodes": ["DL"]
	}]
}`

// testClient builds a Client against the given handler, which receives every
// non-token request. Token requests are answered automatically.
func testClient(t *testing.T, handler http.HandlerFunc) (*Client, *httptest.Server) {
	t.Helper()
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == tokenPath {
			_, _ = w.Write([]byte(tokenBody))
			return
		}
		handler(w, r)
	}))
	t.Cleanup(server.Close)

	client := NewWithClock(Config{
		BaseURL:      server.URL,
		ClientID:     "test-id",
		ClientSecret: "test-secret",
		RateLimit:    1000,
	}, zerolog.Nop(), timeutil.NewMockClockFromString("2024-10-24T10:00:00Z"))
	return client, server
}

func searchParams() domain.SearchParams {
	return domain.SearchParams{
		TripType:      domain.TripOneWay,
		Origin:        "JFK",
		Destination:   "LHR",
		DepartureDate: "2024-10-24",
		Passengers:    1,
		CabinClass:    domain.CabinEconomy,
	}
}

// TestClient_SearchFlights verifies a successful search is authenticated,
// parameterized and transformed.
func TestClient_SearchFlights(t *testing.T) {
	client, _ := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, flightOffersPath, r.URL.Path)
		assert.Equal(t, "Bearer tok-abc", r.Header.Get("Authorization"))

		q := r.URL.Query()
		assert.Equal(t, "JFK", q.Get("originLocationCode"))
		assert.Equal(t, "LHR", q.Get("destinationLocationCode"))
		assert.Equal(t, "2024-10-24", q.Get("departureDate"))
		assert.Equal(t, "1", q.Get("adults"))
		assert.Equal(t, "USD", q.Get("currencyCode"))
		assert.Equal(t, "ECONOMY", q.Get("travelClass"))
		assert.Empty(t, q.Get("nonStop"))

		_, _ = w.Write([]byte(minimalOffersBody))
	})

	result, err := client.SearchFlights(context.Background(), searchParams())
	require.NoError(t, err)
	require.Len(t, result.Flights, 1)
	assert.Equal(t, 450.0, result.Flights[0].Price)
	assert.Equal(t, 450, result.Flights[0].Duration)
	assert.True(t, result.Flights[0].IsBestValue)
}

// TestClient_SearchFlights_Unauthorized verifies a 401 invalidates the token
// and the request is retried exactly once with a fresh one.
func TestClient_SearchFlights_Unauthorized(t *testing.T) {
	var attempts int32
	client, _ := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		if atomic.AddInt32(&attempts, 1) == 1 {
			w.WriteHeader(http.StatusUnauthorized)
			_, _ = w.Write([]byte(`{"errors":[{"status":401,"code":38191,"title":"Invalid access token"}]}`))
			return
		}
		_, _ = w.Write([]byte(minimalOffersBody))
	})

	result, err := client.SearchFlights(context.Background(), searchParams())
	require.NoError(t, err)
	assert.Len(t, result.Flights, 1)
	assert.Equal(t, int32(2), atomic.LoadInt32(&attempts))
}

// TestClient_SearchFlights_RateLimited verifies a 429 waits the Retry-After
// interval and retries once.
func TestClient_SearchFlights_RateLimited(t *testing.T) {
	var attempts int32
	client, _ := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		if atomic.AddInt32(&attempts, 1) == 1 {
			w.Header().Set("Retry-After", "1")
			w.WriteHeader(http.StatusTooManyRequests)
			return
		}
		_, _ = w.Write([]byte(minimalOffersBody))
	})

	start := time.Now()
	result, err := client.SearchFlights(context.Background(), searchParams())
	require.NoError(t, err)

	assert.Len(t, result.Flights, 1)
	assert.Equal(t, int32(2), atomic.LoadInt32(&attempts))
	assert.GreaterOrEqual(t, time.Since(start), time.Second)
}

// TestClient_SearchFlights_FractionalRateLimit verifies a configured rate
// below one request per second still lets a request through instead of
// starving on an empty burst.
func TestClient_SearchFlights_FractionalRateLimit(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == tokenPath {
			_, _ = w.Write([]byte(tokenBody))
			return
		}
		_, _ = w.Write([]byte(minimalOffersBody))
	}))
	t.Cleanup(server.Close)

	client := NewWithClock(Config{
		BaseURL:      server.URL,
		ClientID:     "test-id",
		ClientSecret: "test-secret",
		RateLimit:    0.5,
	}, zerolog.Nop(), timeutil.NewMockClockFromString("2024-10-24T10:00:00Z"))

	var fallbacks []string
	client.SetFallbackHook(func(reason string) { fallbacks = append(fallbacks, reason) })

	result, err := client.SearchFlights(context.Background(), searchParams())
	require.NoError(t, err)
	assert.Len(t, result.Flights, 1)
	assert.Empty(t, fallbacks)
}

// TestClient_SearchFlights_ErrorSwallowed verifies hard provider failures
// degrade to the empty result and fire the fallback hook instead of erroring.
func TestClient_SearchFlights_ErrorSwallowed(t *testing.T) {
	client, _ := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte(`{"errors":[{"status":500,"code":141,"title":"SYSTEM ERROR HAS OCCURRED"}]}`))
	})

	var fallbacks []string
	client.SetFallbackHook(func(reason string) { fallbacks = append(fallbacks, reason) })

	result, err := client.SearchFlights(context.Background(), searchParams())
	require.NoError(t, err)
	assert.Empty(t, result.Flights)
	assert.Zero(t, result.TotalResults)
	assert.Equal(t, []string{"flight_search_error"}, fallbacks)
}

// TestClient_SearchFlights_MultiCity verifies every leg is searched
// point-to-point and failed legs are skipped rather than failing the search.
func TestClient_SearchFlights_MultiCity(t *testing.T) {
	var calls int32
	client, _ := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		if atomic.AddInt32(&calls, 1) == 2 {
			w.WriteHeader(http.StatusBadGateway)
			return
		}
		_, _ = w.Write([]byte(minimalOffersBody))
	})

	params := domain.SearchParams{
		TripType:   domain.TripMultiCity,
		Passengers: 1,
		Legs: []domain.FlightLeg{
			{Origin: "JFK", Destination: "LHR", DepartureDate: "2024-10-24"},
			{Origin: "LHR", Destination: "CDG", DepartureDate: "2024-10-28"},
		},
	}

	result, err := client.SearchFlights(context.Background(), params)
	require.NoError(t, err)
	assert.Len(t, result.Flights, 1)
	assert.Equal(t, int32(2), atomic.LoadInt32(&calls))
}

// TestClient_SearchAirports verifies provider locations are title-cased,
// deduplicated and ranked by relevance.
func TestClient_SearchAirports(t *testing.T) {
	client, _ := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, locationsPath, r.URL.Path)
		assert.Equal(t, "lon", r.URL.Query().Get("keyword"))
		_, _ = w.Write([]byte(`{"data":[
			{"subType":"AIRPORT","name":"GATWICK","iataCode":"LGW","address":{"cityName":"LONDON","countryCode":"GB"}},
			{"subType":"AIRPORT","name":"LONG BEACH","iataCode":"LGB","address":{"cityName":"LONG BEACH","countryCode":"US"}},
			{"subType":"AIRPORT","name":"HEATHROW","iataCode":"LHR","address":{"cityName":"LONDON","countryCode":"GB"}},
			{"subType":"AIRPORT","name":"HEATHROW","iataCode":"LHR","address":{"cityName":"LONDON","countryCode":"GB"}}
		]}`))
	})

	airports, err := client.SearchAirports(context.Background(), "lon")
	require.NoError(t, err)

	// Duplicate LHR removed; equal ranks sort alphabetically by city.
	require.Len(t, airports, 3)
	assert.Equal(t, "Gatwick", airports[0].Name)
	assert.Equal(t, "London", airports[0].City)
	codes := []string{airports[0].Code, airports[1].Code, airports[2].Code}
	assert.Equal(t, []string{"LGW", "LHR", "LGB"}, codes)
}

// TestClient_SearchAirports_ShortKeyword verifies sub-minimum keywords skip
// the provider entirely.
func TestClient_SearchAirports_ShortKeyword(t *testing.T) {
	client, _ := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("provider must not be called for short keywords")
	})

	airports, err := client.SearchAirports(context.Background(), "l")
	require.NoError(t, err)
	assert.Empty(t, airports)
}

// TestClient_SearchAirports_Fallback verifies provider failures fall back to
// the embedded airport list and report through the fallback hook.
func TestClient_SearchAirports_Fallback(t *testing.T) {
	client, _ := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	})

	var fallbacks []string
	client.SetFallbackHook(func(reason string) { fallbacks = append(fallbacks, reason) })

	airports, err := client.SearchAirports(context.Background(), "london")
	require.NoError(t, err)

	require.NotEmpty(t, airports)
	for _, a := range airports {
		assert.Equal(t, "London", a.City)
	}
	assert.Equal(t, []string{"airport_search_fallback"}, fallbacks)
}

// TestClient_SearchAirports_EmptyFallsBack verifies an empty provider result
// also consults the embedded list.
func TestClient_SearchAirports_EmptyFallsBack(t *testing.T) {
	client, _ := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"data":[]}`))
	})

	airports, err := client.SearchAirports(context.Background(), "tokyo")
	require.NoError(t, err)

	require.Len(t, airports, 2)
	assert.Equal(t, "HND", airports[0].Code)
	assert.Equal(t, "NRT", airports[1].Code)
}

// TestClient_AirportByCode verifies exact-code lookup and its nil miss.
func TestClient_AirportByCode(t *testing.T) {
	client, _ := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"data":[
			{"subType":"AIRPORT","name":"HEATHROW","iataCode":"LHR","address":{"cityName":"LONDON","countryCode":"GB"}}
		]}`))
	})

	airport, err := client.AirportByCode(context.Background(), "lhr")
	require.NoError(t, err)
	require.NotNil(t, airport)
	assert.Equal(t, "LHR", airport.Code)
	assert.Equal(t, "Heathrow", airport.Name)

	airport, err = client.AirportByCode(context.Background(), "XXXX")
	require.NoError(t, err)
	assert.Nil(t, airport)
}

// TestSearchFallbackAirports tests the embedded list search directly.
func TestSearchFallbackAirports(t *testing.T) {
	assert.Empty(t, searchFallbackAirports("j"))

	byCode := searchFallbackAirports("jfk")
	require.Len(t, byCode, 1)
	assert.Equal(t, "New York", byCode[0].City)

	byCity := searchFallbackAirports("paris")
	require.Len(t, byCity, 1)
	assert.Equal(t, "CDG", byCity[0].Code)
}

// TestRetryAfterDelay tests Retry-After header parsing.
func TestRetryAfterDelay(t *testing.T) {
	assert.Equal(t, defaultRetryAfter, retryAfterDelay(""))
	assert.Equal(t, defaultRetryAfter, retryAfterDelay("soon"))
	assert.Equal(t, defaultRetryAfter, retryAfterDelay("-1"))
	assert.Equal(t, 5*time.Second, retryAfterDelay("5"))
	assert.Equal(t, time.Duration(0), retryAfterDelay("0"))
}
