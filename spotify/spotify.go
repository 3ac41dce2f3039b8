// Package spotify owns the catalog integration: client-credentials token
// lifecycle and the two-tier track resolution strategy.
package spotify

import (
	"net/http"
	"time"

	spot "github.com/zmb3/spotify/v2"
	"go.uber.org/zap"

	"github.com/kswain/cochlea/config"
)

// SpotifyClient bundles the catalog API client with its token manager. The
// underlying transport injects the managed bearer token into every call.
type SpotifyClient struct {
	Client *spot.Client
	Tokens *TokenManager
}

// Configured reports whether catalog credentials are present.
func (c *SpotifyClient) Configured() bool {
	return c.Tokens.Configured()
}

// ProvideSpotify builds the catalog client. Credentials may be absent; the
// resolver degrades to an empty playlist in that case.
func ProvideSpotify(cfg config.Config, log *zap.SugaredLogger) *SpotifyClient {
	log.Info("setting up spotify client")

	tokens := NewTokenManager(cfg.SpotifyID, cfg.SpotifySecret)
	httpClient := &http.Client{
		Timeout:   30 * time.Second,
		Transport: &authTransport{tokens: tokens},
	}

	return &SpotifyClient{
		Client: spot.New(httpClient),
		Tokens: tokens,
	}
}

var Options = ProvideSpotify
