// Package integration provides helpers and integration tests for the flight
// finder service. Integration tests verify that components work together
// correctly, including HTTP handlers, sessions, and the provider gateway.
package integration

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"

	httpAdapter "github.com/flightfinder/flight-finder-service/internal/adapter/http"
	"github.com/flightfinder/flight-finder-service/internal/domain"
	"github.com/flightfinder/flight-finder-service/internal/infrastructure/cache"
	"github.com/flightfinder/flight-finder-service/internal/usecase"
	"github.com/flightfinder/flight-finder-service/test/testutil"
)

// eventuallyTimeout bounds polling for asynchronous search completion.
const eventuallyTimeout = 2 * time.Second

// TestServer wraps an Echo instance and provides helper methods for
// integration testing.
type TestServer struct {
	Echo  *echo.Echo
	Store *usecase.SessionStore
}

// NewTestServer creates a test server backed by the given gateways.
// The store is closed automatically when the test finishes.
func NewTestServer(t *testing.T, flights domain.FlightGateway, airports domain.AirportGateway) *TestServer {
	t.Helper()

	store := usecase.NewSessionStore(flights, nil, zerolog.Nop(), usecase.StoreConfig{})
	t.Cleanup(store.Close)

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	handler := httpAdapter.NewSessionHandler(store, airports)
	httpAdapter.RegisterRoutes(e, handler)

	return &TestServer{Echo: e, Store: store}
}

// NewTestServerWithCache is NewTestServer with a result cache installed.
func NewTestServerWithCache(t *testing.T, flights domain.FlightGateway, airports domain.AirportGateway, results cache.ResultCache) *TestServer {
	t.Helper()

	store := usecase.NewSessionStore(flights, results, zerolog.Nop(), usecase.StoreConfig{})
	t.Cleanup(store.Close)

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	handler := httpAdapter.NewSessionHandler(store, airports)
	httpAdapter.RegisterRoutes(e, handler)

	return &TestServer{Echo: e, Store: store}
}

// Request represents a test HTTP request configuration.
type Request struct {
	Method string
	Path   string
	Body   interface{}
}

// Response represents a test HTTP response.
type Response struct {
	Code    int
	Body    []byte
	Headers http.Header
}

// Do executes a test request and returns the response.
func (ts *TestServer) Do(req Request) Response {
	var bodyReader *bytes.Reader
	if req.Body != nil {
		bodyBytes, _ := json.Marshal(req.Body)
		bodyReader = bytes.NewReader(bodyBytes)
	} else {
		bodyReader = bytes.NewReader(nil)
	}

	httpReq := httptest.NewRequest(req.Method, req.Path, bodyReader)
	if req.Body != nil {
		httpReq.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}

	rec := httptest.NewRecorder()
	ts.Echo.ServeHTTP(rec, httpReq)

	return Response{
		Code:    rec.Code,
		Body:    rec.Body.Bytes(),
		Headers: rec.Header(),
	}
}

// CreateSession creates a session through the API and returns its ID.
func (ts *TestServer) CreateSession(t *testing.T) string {
	t.Helper()

	resp := ts.Do(Request{Method: http.MethodPost, Path: "/api/v1/sessions"})
	require.Equal(t, http.StatusCreated, resp.Code)

	session, err := resp.ParseSession()
	require.NoError(t, err)
	require.NotEmpty(t, session.SessionID)
	return session.SessionID
}

// Search dispatches a search on the given session.
func (ts *TestServer) Search(sessionID string, body interface{}) Response {
	return ts.Do(Request{
		Method: http.MethodPost,
		Path:   fmt.Sprintf("/api/v1/sessions/%s/search", sessionID),
		Body:   body,
	})
}

// GetSession fetches the current state of a session.
func (ts *TestServer) GetSession(sessionID string) Response {
	return ts.Do(Request{
		Method: http.MethodGet,
		Path:   "/api/v1/sessions/" + sessionID,
	})
}

// WaitForResults polls the session until its search settles, then returns
// the session view.
func (ts *TestServer) WaitForResults(t *testing.T, sessionID string) httpAdapter.SessionResponse {
	t.Helper()

	var session httpAdapter.SessionResponse
	require.Eventually(t, func() bool {
		resp := ts.GetSession(sessionID)
		if resp.Code != http.StatusOK {
			return false
		}
		parsed, err := resp.ParseSession()
		if err != nil {
			return false
		}
		session = *parsed
		return !session.IsLoading
	}, eventuallyTimeout, 10*time.Millisecond)

	return session
}

// envelope mirrors the API response wrapper with the payload left raw.
type envelope struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data"`
	Error   *ErrorDetail    `json:"error"`
}

// ErrorDetail is the error payload of the response envelope.
type ErrorDetail struct {
	Code    string            `json:"code"`
	Message string            `json:"message"`
	Details map[string]string `json:"details"`
}

// ParseSession parses the response payload as a session view.
func (r *Response) ParseSession() (*httpAdapter.SessionResponse, error) {
	var env envelope
	if err := json.Unmarshal(r.Body, &env); err != nil {
		return nil, err
	}

	var session httpAdapter.SessionResponse
	if err := json.Unmarshal(env.Data, &session); err != nil {
		return nil, err
	}
	return &session, nil
}

// ParseError parses the response payload as an error detail.
func (r *Response) ParseError() (*ErrorDetail, error) {
	var env envelope
	if err := json.Unmarshal(r.Body, &env); err != nil {
		return nil, err
	}
	return env.Error, nil
}

// DefaultSearchRequest returns a valid one-way search request body.
func DefaultSearchRequest() map[string]interface{} {
	return map[string]interface{}{
		"origin":        "JFK",
		"destination":   "LHR",
		"departureDate": testutil.FutureDate(14),
		"passengers":    1,
	}
}
