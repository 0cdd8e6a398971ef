package client

import (
	"fmt"
	"time"

	"github.com/MKhiriev/go-marketplace/internal/adapter"
	"github.com/caarlos0/env/v11"
)

// Config is read from MARKETPLACE_* environment variables.
type Config struct {
	ServerURL  string        `env:"SERVER_URL" envDefault:"http://localhost:8080"`
	Token      string        `env:"TOKEN"`
	Timeout    time.Duration `env:"TIMEOUT" envDefault:"15s"`
	RetryCount int           `env:"RETRY_COUNT" envDefault:"2"`
	Verbose    bool          `env:"VERBOSE"`
}

func GetConfig() (Config, error) {
	cfg, err := env.ParseAsWithOptions[Config](env.Options{Prefix: "MARKETPLACE_"})
	if err != nil {
		return Config{}, fmt.Errorf("parse client config: %w", err)
	}
	return cfg, nil
}

// Adapter returns the HTTP client settings.
func (c Config) Adapter() adapter.HTTPClientConfig {
	return adapter.HTTPClientConfig{
		BaseURL:    c.ServerURL,
		Timeout:    c.Timeout,
		RetryCount: c.RetryCount,
	}
}
