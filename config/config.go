package config

import (
	"log"

	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	Port int `default:"8080"`

	GroqKey string

	SpotifyID     string
	SpotifySecret string
}

// SpotifyConfigured reports whether catalog credentials are present. Their
// absence is a degraded mode (empty playlists), not a startup failure.
func (c Config) SpotifyConfigured() bool {
	return c.SpotifyID != "" && c.SpotifySecret != ""
}

func ProvideConfig() Config {
	var cfg Config
	err := envconfig.Process("cochlea", &cfg)
	if err != nil {
		log.Fatal(err.Error())
	}
	return cfg
}

var Options = ProvideConfig
