package amadeus

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/sync/singleflight"

	"github.com/flightfinder/flight-finder-service/internal/domain"
	"github.com/flightfinder/flight-finder-service/internal/infrastructure/retry"
	"github.com/flightfinder/flight-finder-service/internal/infrastructure/timeutil"
)

// tokenPath is the provider's OAuth2 client-credentials endpoint.
const tokenPath = "/v1/security/oauth2/token"

// expiryMargin is the safety window before the reported expiry within which
// a cached token is considered stale and refreshed.
const expiryMargin = 60 * time.Second

// tokenRefreshRetry retries token acquisition on transport failures only.
// Provider rejections (bad credentials) are permanent and surface at once.
var tokenRefreshRetry = retry.Config{
	MaxAttempts:  2,
	InitialDelay: 200 * time.Millisecond,
	MaxDelay:     time.Second,
	Multiplier:   2.0,
	JitterFactor: 0.1,
	RetryIf:      retry.SkipPermanent,
}

// tokenSource owns the OAuth2 client-credentials token cache. It is the
// exclusive owner of its mutable fields: callers only see Token and
// Invalidate. Concurrent refreshes are collapsed into one in-flight request.
type tokenSource struct {
	httpClient   *http.Client
	baseURL      string
	clientID     string
	clientSecret string
	clock        timeutil.Clock
	log          zerolog.Logger

	group singleflight.Group

	mu        sync.Mutex
	token     string
	expiresAt time.Time
}

// newTokenSource creates a token source for the given credentials.
func newTokenSource(httpClient *http.Client, baseURL, clientID, clientSecret string, clock timeutil.Clock, log zerolog.Logger) *tokenSource {
	return &tokenSource{
		httpClient:   httpClient,
		baseURL:      baseURL,
		clientID:     clientID,
		clientSecret: clientSecret,
		clock:        clock,
		log:          log,
	}
}

// Token returns a valid access token, refreshing it when the cached one is
// missing or within the expiry margin. Concurrent callers during a refresh
// share the single in-flight token request.
func (ts *tokenSource) Token(ctx context.Context) (string, error) {
	ts.mu.Lock()
	if ts.token != "" && ts.clock.Now().Add(expiryMargin).Before(ts.expiresAt) {
		token := ts.token
		ts.mu.Unlock()
		return token, nil
	}
	ts.mu.Unlock()

	token, err, _ := ts.group.Do("token", func() (interface{}, error) {
		return ts.refresh(ctx)
	})
	if err != nil {
		return "", err
	}
	return token.(string), nil
}

// Invalidate drops the cached token, forcing the next Token call to refresh.
// Used when the provider rejects a request with 401 despite a cached token.
func (ts *tokenSource) Invalidate() {
	ts.mu.Lock()
	ts.token = ""
	ts.expiresAt = time.Time{}
	ts.mu.Unlock()
}

// refresh acquires a new token from the provider and caches it.
func (ts *tokenSource) refresh(ctx context.Context) (string, error) {
	// The refresh is shared by every coalesced waiter, so it must not be
	// torn down when the caller that happened to start it cancels. The
	// HTTP client timeout still bounds the request.
	ctx = context.WithoutCancel(ctx)

	resp, err := retry.DoWithResult(ctx, func() (tokenResponse, error) {
		return ts.requestToken(ctx)
	}, tokenRefreshRetry)
	if err != nil {
		return "", err
	}

	ts.mu.Lock()
	ts.token = resp.AccessToken
	ts.expiresAt = ts.clock.Now().Add(time.Duration(resp.ExpiresIn) * time.Second)
	ts.mu.Unlock()

	ts.log.Debug().Int("expires_in", resp.ExpiresIn).Msg("Access token obtained")
	return resp.AccessToken, nil
}

// requestToken performs the client-credentials grant.
func (ts *tokenSource) requestToken(ctx context.Context) (tokenResponse, error) {
	form := url.Values{}
	form.Set("grant_type", "client_credentials")
	form.Set("client_id", ts.clientID)
	form.Set("client_secret", ts.clientSecret)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, ts.baseURL+tokenPath, strings.NewReader(form.Encode()))
	if err != nil {
		return tokenResponse{}, retry.NewPermanent(fmt.Errorf("build token request: %w", err))
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	res, err := ts.httpClient.Do(req)
	if err != nil {
		return tokenResponse{}, domain.NewProviderError(http.StatusInternalServerError, err.Error(), "network_error")
	}
	defer res.Body.Close()

	body, err := io.ReadAll(res.Body)
	if err != nil {
		return tokenResponse{}, domain.NewProviderError(http.StatusInternalServerError, err.Error(), "read_error")
	}

	if res.StatusCode != http.StatusOK {
		return tokenResponse{}, retry.NewPermanent(parseProviderError(res.StatusCode, body))
	}

	var token tokenResponse
	if err := json.Unmarshal(body, &token); err != nil {
		return tokenResponse{}, retry.NewPermanent(domain.NewProviderError(res.StatusCode, "malformed token response", "decode_error"))
	}
	if token.AccessToken == "" {
		return tokenResponse{}, retry.NewPermanent(domain.NewProviderError(res.StatusCode, "token response missing access_token", "decode_error"))
	}

	return token, nil
}
