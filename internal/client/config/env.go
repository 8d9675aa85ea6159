package config

import (
	"time"

	"github.com/caarlos0/env/v11"
)

// envConfig is a DTO for environment parsing. Empty values leave the
// corresponding Config field untouched.
type envConfig struct {
	ServerBaseURL  string        `env:"FORUM_SERVER_URL"`
	RequestTimeout time.Duration `env:"FORUM_REQUEST_TIMEOUT"`
	DatabasePath   string        `env:"FORUM_DB_PATH"`
	ToastDuration  time.Duration `env:"FORUM_TOAST_DURATION"`
}

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
	if ec.ToastDuration != 0 {
		cfg.ToastDuration = ec.ToastDuration
	}
}
