package app

import (
	"fmt"
	"net/http"

	"github.com/caarlos0/env/v11"
)

// Config holds runtime wiring options for building the app.
type Config struct {
	// APIBaseURL is the marketplace origin, e.g. http://localhost:8080/api.
	APIBaseURL string `env:"HANDUP_API_URL" envDefault:"http://localhost:8080/api"`

	// HTTP is the transport used for every request; defaults to
	// http.DefaultClient. Tests inject their own.
	HTTP *http.Client `env:"-"`
}

// LoadConfig reads configuration from the environment.
func LoadConfig() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	return cfg, nil
}
