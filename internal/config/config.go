package config

import (
	"fmt"
	"strings"
	"time"

	env "github.com/Netflix/go-env"
	"github.com/joho/godotenv"
)

// Config holds server configuration.
type Config struct {
	// Port is the listen port for the HTTP server.
	Port int `env:"PORT,default=5000"`
	// FrontendURL is a comma-separated list of allowed CORS origins.
	FrontendURL string `env:"FRONTEND_URL"`
	// ExecutionEndpoint is the external code-execution service URL.
	ExecutionEndpoint string `env:"EXECUTION_ENDPOINT,default=https://emkc.org/api/v2/piston/execute"`
	// ExecutionTimeout bounds a single execution round-trip.
	ExecutionTimeout time.Duration `env:"EXECUTION_TIMEOUT,default=15s"`
	Debug            bool          `env:"DEBUG"`
	LogLevel         string        `env:"LOG_LEVEL,default=info"`
}

// Addr is the listen address derived from Port.
func (c *Config) Addr() string {
	return fmt.Sprintf(":%d", c.Port)
}

// AllowedOrigins returns the CORS origins to accept. With no FRONTEND_URL
// configured the local dev origins are allowed, matching the frontend's
// default dev server.
func (c *Config) AllowedOrigins() []string {
	if c.FrontendURL == "" {
		return []string{"http://localhost:5173", "http://127.0.0.1:5173"}
	}
	parts := strings.Split(c.FrontendURL, ",")
	origins := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			origins = append(origins, trimmed)
		}
	}
	return origins
}

// Overrides optionally overrides values from environment variables.
//
// A nil pointer means "use the environment/default value".
type Overrides struct {
	Port              *int
	ExecutionEndpoint *string
	ExecutionTimeout  *time.Duration
	Debug             *bool
}

// Load loads server configuration from a .env file (if present) and the
// environment, then applies any explicit overrides.
func Load(overrides Overrides) (*Config, error) {
	// Missing .env is fine; the environment alone is a valid configuration.
	_ = godotenv.Load()

	var cfg Config
	if _, err := env.UnmarshalFromEnviron(&cfg); err != nil {
		return nil, fmt.Errorf("parse environment: %w", err)
	}

	if overrides.Port != nil {
		cfg.Port = *overrides.Port
	}
	if overrides.ExecutionEndpoint != nil {
		cfg.ExecutionEndpoint = *overrides.ExecutionEndpoint
	}
	if overrides.ExecutionTimeout != nil {
		cfg.ExecutionTimeout = *overrides.ExecutionTimeout
	}
	if overrides.Debug != nil {
		cfg.Debug = *overrides.Debug
	}

	if cfg.ExecutionTimeout <= 0 {
		return nil, fmt.Errorf("EXECUTION_TIMEOUT must be positive, got %s", cfg.ExecutionTimeout)
	}

	return &cfg, nil
}
