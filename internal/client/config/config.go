// Package config loads runtime settings for the authkeeper CLI.
//
// Sources are applied in order, later ones overriding earlier ones:
// built-in defaults, a JSON file (-c/-config), environment variables
// (AUTHKEEPER_*), and command-line flags.
package config

import "time"

// Config holds runtime settings for the CLI.
//
// Fields:
//   - ServerBaseURL: base URL of the identity service, e.g. "http://127.0.0.1:8000".
//   - RequestTimeout: upper bound for a single identity request.
//   - DatabasePath: location of the local profile database.
type Config struct {
	ServerBaseURL  string
	RequestTimeout time.Duration
	DatabasePath   string
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.ServerBaseURL = "http://127.0.0.1:8000"
	c.RequestTimeout = 10 * time.Second
	c.DatabasePath = "authkeeper.db"
}

// LoadConfig constructs a Config, applies defaults, then overlays values
// from JSON (if present), environment variables, and command-line flags.
// Later sources take precedence over earlier ones.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)
	parseEnv(cfg)
	parseFlags(cfg)
	return cfg
}
