package config

import (
	"time"

	"github.com/caarlos0/env/v11"
)

type envConfig struct {
	ServerBaseURL  string        `env:"AUTHKEEPER_SERVER_URL"`
	RequestTimeout time.Duration `env:"AUTHKEEPER_REQUEST_TIMEOUT"`
	DatabasePath   string        `env:"AUTHKEEPER_DB_PATH"`
}

// parseEnv overlays cfg with AUTHKEEPER_* environment variables. Unset
// variables leave the corresponding field untouched.
func parseEnv(cfg *Config) {
	var ec envConfig
	if err := env.Parse(&ec); err != nil {
		panic(err)
	}

	if ec.ServerBaseURL != "" {
		cfg.ServerBaseURL = ec.ServerBaseURL
	}
	if ec.RequestTimeout != 0 {
		cfg.RequestTimeout = ec.RequestTimeout
	}
	if ec.DatabasePath != "" {
		cfg.DatabasePath = ec.DatabasePath
	}
}
