package spotify

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"

	"golang.org/x/oauth2"

	"github.com/kswain/cochlea/cochlea"
)

const tokenURL = "https://accounts.spotify.com/api/token"

// safetyMargin is subtracted from the provider's expires_in before caching,
// so a cached token can never expire mid-flight of a later catalog call.
const safetyMargin = 10 * time.Minute

// TokenManager owns the single cached client-credentials token. It is an
// explicitly injected component, not an ambient global; one instance is
// shared by both resolver tiers.
type TokenManager struct {
	clientID     string
	clientSecret string
	tokenURL     string
	httpClient   *http.Client
	now          func() time.Time

	mu    sync.Mutex
	token *oauth2.Token
}

func NewTokenManager(clientID, clientSecret string) *TokenManager {
	return &TokenManager{
		clientID:     clientID,
		clientSecret: clientSecret,
		tokenURL:     tokenURL,
		httpClient:   &http.Client{Timeout: 15 * time.Second},
		now:          time.Now,
	}
}

// Configured reports whether client credentials are present.
func (m *TokenManager) Configured() bool {
	return m.clientID != "" && m.clientSecret != ""
}

type tokenResponse struct {
	AccessToken string `json:"access_token"`
	ExpiresIn   int    `json:"expires_in"`
}

type tokenErrorResponse struct {
	Name        string `json:"error"`
	Description string `json:"error_description"`
}

// GetAccessToken returns the cached bearer token, exchanging client
// credentials against the provider's token endpoint when the slot is empty
// or expired. The lock is held across the exchange so concurrent callers
// observing an expired slot coalesce on a single refresh.
func (m *TokenManager) GetAccessToken(ctx context.Context) (string, error) {
	if !m.Configured() {
		return "", cochlea.ErrAuthConfig
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	if m.token != nil && m.now().Before(m.token.Expiry) {
		return m.token.AccessToken, nil
	}

	form := url.Values{}
	form.Set("grant_type", "client_credentials")

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, m.tokenURL, strings.NewReader(form.Encode()))
	if err != nil {
		return "", fmt.Errorf("spotify: build token request: %w", err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.SetBasicAuth(m.clientID, m.clientSecret)

	resp, err := m.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("%w: %v", cochlea.ErrTokenExchange, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		var detail tokenErrorResponse
		if json.NewDecoder(resp.Body).Decode(&detail) == nil && detail.Name != "" {
			if detail.Description != "" {
				return "", fmt.Errorf("%w: %s: %s", cochlea.ErrTokenExchange, detail.Name, detail.Description)
			}
			return "", fmt.Errorf("%w: %s", cochlea.ErrTokenExchange, detail.Name)
		}
		return "", fmt.Errorf("%w: status %d", cochlea.ErrTokenExchange, resp.StatusCode)
	}

	var body tokenResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return "", fmt.Errorf("%w: decode response: %v", cochlea.ErrTokenExchange, err)
	}
	if body.AccessToken == "" {
		return "", fmt.Errorf("%w: empty access_token", cochlea.ErrTokenExchange)
	}

	m.token = &oauth2.Token{
		AccessToken: body.AccessToken,
		TokenType:   "Bearer",
		Expiry:      m.now().Add(time.Duration(body.ExpiresIn)*time.Second - safetyMargin),
	}
	return m.token.AccessToken, nil
}

// authTransport injects the managed bearer token into outgoing catalog
// requests.
type authTransport struct {
	tokens *TokenManager
	base   http.RoundTripper
}

func (t *authTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	token, err := t.tokens.GetAccessToken(req.Context())
	if err != nil {
		return nil, err
	}

	clone := req.Clone(req.Context())
	clone.Header.Set("Authorization", "Bearer "+token)

	base := t.base
	if base == nil {
		base = http.DefaultTransport
	}
	return base.RoundTrip(clone)
}
