// Package amadeus implements the flight and location gateway against the
// Amadeus self-service APIs. It owns authentication, retries, fallbacks and
// the transformation of provider offers into the normalized domain model.
package amadeus

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/time/rate"

	"github.com/flightfinder/flight-finder-service/internal/domain"
	"github.com/flightfinder/flight-finder-service/internal/infrastructure/timeutil"
)

// Default client settings.
const (
	// DefaultTimeout is the per-request HTTP timeout.
	DefaultTimeout = 30 * time.Second

	// DefaultRateLimit is the sustained outbound request rate (the
	// provider's free tier allows 10 transactions per second).
	DefaultRateLimit = 10

	// defaultRetryAfter is the wait before retrying a 429 response that
	// carries no Retry-After header.
	defaultRetryAfter = 2 * time.Second
)

// FallbackHook observes a degraded-path decision at the gateway boundary.
// Reasons: "flight_search_error", "airport_search_fallback",
// "malformed_duration".
type FallbackHook func(reason string)

// Config contains configuration options for the Amadeus client.
type Config struct {
	// BaseURL is the API root (e.g., "https://test.api.amadeus.com")
	BaseURL string

	// ClientID and ClientSecret are the OAuth2 client credentials
	ClientID     string
	ClientSecret string

	// Timeout is the per-request HTTP timeout (default: DefaultTimeout)
	Timeout time.Duration

	// RateLimit caps outbound requests per second (default: DefaultRateLimit)
	RateLimit float64

	// ResultLimit caps offers requested per search (default: 100; the
	// larger cap gives the filter sidebar enough data)
	ResultLimit int
}

// Client is the authenticated HTTP gateway to the provider. It satisfies
// both domain.FlightGateway and domain.AirportGateway.
type Client struct {
	httpClient  *http.Client
	baseURL     string
	tokens      *tokenSource
	limiter     *rate.Limiter
	log         zerolog.Logger
	resultLimit int
	onFallback  FallbackHook
}

// New creates a provider client. The clock is injectable for token-expiry
// tests via NewWithClock.
func New(cfg Config, log zerolog.Logger) *Client {
	return NewWithClock(cfg, log, timeutil.NewRealClock())
}

// NewWithClock creates a provider client with a custom clock.
func NewWithClock(cfg Config, log zerolog.Logger, clock timeutil.Clock) *Client {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	rateLimit := cfg.RateLimit
	if rateLimit <= 0 {
		rateLimit = DefaultRateLimit
	}
	resultLimit := cfg.ResultLimit
	if resultLimit <= 0 {
		resultLimit = 100
	}

	// Fractional rates truncate to burst 0, which would make every Wait
	// fail; a single request must always be able to proceed.
	burst := int(rateLimit)
	if burst < 1 {
		burst = 1
	}

	httpClient := &http.Client{Timeout: timeout}

	return &Client{
		httpClient:  httpClient,
		baseURL:     cfg.BaseURL,
		tokens:      newTokenSource(httpClient, cfg.BaseURL, cfg.ClientID, cfg.ClientSecret, clock, log),
		limiter:     rate.NewLimiter(rate.Limit(rateLimit), burst),
		log:         log,
		resultLimit: resultLimit,
		onFallback:  func(string) {},
	}
}

// SetFallbackHook installs an observer for degraded-path decisions.
// Intended for metrics counters and tests; must not block.
func (c *Client) SetFallbackHook(hook FallbackHook) {
	if hook != nil {
		c.onFallback = hook
	}
}

// get performs an authenticated GET against the provider and decodes the
// response into out.
//
// Retry policy, applied once each:
//   - 401: the cached token is invalidated and the request repeated with a
//     fresh token.
//   - 429: waits the Retry-After header (seconds; default 2s) and repeats.
//
// Every other failure is returned as a structured *domain.ProviderError.
func (c *Client) get(ctx context.Context, path string, query url.Values, out any) error {
	if err := c.limiter.Wait(ctx); err != nil {
		return domain.NewProviderError(http.StatusInternalServerError, err.Error(), "rate_limit_wait")
	}

	const maxRetries = 1
	for attempt := 0; ; attempt++ {
		token, err := c.tokens.Token(ctx)
		if err != nil {
			return err
		}

		req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path+"?"+query.Encode(), nil)
		if err != nil {
			return domain.NewProviderError(http.StatusInternalServerError, err.Error(), "build_request")
		}
		req.Header.Set("Authorization", "Bearer "+token)

		res, err := c.httpClient.Do(req)
		if err != nil {
			return domain.NewProviderError(http.StatusInternalServerError, err.Error(), "network_error")
		}

		body, err := io.ReadAll(res.Body)
		res.Body.Close()
		if err != nil {
			return domain.NewProviderError(http.StatusInternalServerError, err.Error(), "read_error")
		}

		switch {
		case res.StatusCode == http.StatusOK:
			if err := json.Unmarshal(body, out); err != nil {
				return domain.NewProviderError(res.StatusCode, "malformed provider response", "decode_error")
			}
			return nil

		case res.StatusCode == http.StatusUnauthorized && attempt < maxRetries:
			c.log.Debug().Str("path", path).Msg("401 from provider, refreshing token and retrying")
			c.tokens.Invalidate()
			continue

		case res.StatusCode == http.StatusTooManyRequests && attempt < maxRetries:
			delay := retryAfterDelay(res.Header.Get("Retry-After"))
			c.log.Debug().Dur("delay", delay).Str("path", path).Msg("Rate limited by provider, retrying")
			select {
			case <-ctx.Done():
				return domain.NewProviderError(http.StatusInternalServerError, ctx.Err().Error(), "cancelled")
			case <-time.After(delay):
			}
			continue

		default:
			return parseProviderError(res.StatusCode, body)
		}
	}
}

// retryAfterDelay converts a Retry-After header (whole seconds) into a wait
// duration, defaulting when absent or malformed.
func retryAfterDelay(header string) time.Duration {
	if header == "" {
		return defaultRetryAfter
	}
	seconds, err := strconv.Atoi(header)
	if err != nil || seconds < 0 {
		return defaultRetryAfter
	}
	return time.Duration(seconds) * time.Second
}

// parseProviderError builds a structured error from a provider error body.
func parseProviderError(status int, body []byte) *domain.ProviderError {
	var payload apiError
	if err := json.Unmarshal(body, &payload); err == nil {
		if len(payload.Errors) > 0 {
			detail := payload.Errors[0]
			message := detail.Detail
			if message == "" {
				message = detail.Title
			}
			return domain.NewProviderError(status, message, strconv.Itoa(detail.Code))
		}
		if payload.ErrorDescription != "" {
			return domain.NewProviderError(status, payload.ErrorDescription, payload.Error)
		}
	}
	return domain.NewProviderError(status, fmt.Sprintf("provider returned status %d", status), "")
}
