package config

import (
	"fmt"
	"time"

	pkgconfig "github.com/jorchsg/fashion-eccommerce/pkg/config"
)

// Config holds all configuration for the storefront service.
type Config struct {
	Environment string `env:"ENVIRONMENT" envDefault:"development"`
	LogLevel    string `env:"LOG_LEVEL" envDefault:"info"`

	// HTTP server
	HTTPPort int `env:"HTTP_PORT" envDefault:"8080"`

	// Redis, used for cart persistence
	RedisAddr string `env:"REDIS_ADDR" envDefault:"localhost:6379"`
	RedisPass string `env:"REDIS_PASSWORD" envDefault:""`
	RedisDB   int    `env:"REDIS_DB" envDefault:"0"`

	// Cart TTL in hours (default: 30 days)
	CartTTLHours int `env:"CART_TTL_HOURS" envDefault:"720"`

	// Kafka
	KafkaBrokers []string `env:"KAFKA_BROKERS" envDefault:"localhost:9092" envSeparator:","`

	// External auth provider
	AuthProviderURL string `env:"AUTH_PROVIDER_URL" envDefault:"http://localhost:9999"`
	AuthJWTSecret   string `env:"AUTH_JWT_SECRET" envDefault:"change-this-to-a-secure-secret"`

	// CORS
	CORSAllowedOrigins []string `env:"CORS_ALLOWED_ORIGINS" envDefault:"*" envSeparator:","`

	// Pprof endpoint IP allowlist
	PprofAllowedCIDRs []string `env:"PPROF_ALLOWED_CIDRS" envDefault:"127.0.0.0/8" envSeparator:","`

	// Tracing
	TracingEnabled    bool    `env:"TRACING_ENABLED" envDefault:"false"`
	TracingEndpoint   string  `env:"TRACING_OTLP_ENDPOINT" envDefault:"localhost:4318"`
	TracingSampleRate float64 `env:"TRACING_SAMPLE_RATE" envDefault:"1.0"`
}

// Load reads configuration from environment variables.
func Load() (*Config, error) {
	cfg := &Config{}
	if err := pkgconfig.Load(cfg); err != nil {
		return nil, fmt.Errorf("load storefront config: %w", err)
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// CartTTL returns the cart persistence TTL as a duration.
func (c *Config) CartTTL() time.Duration {
	return time.Duration(c.CartTTLHours) * time.Hour
}

// validate checks configuration invariants.
func (c *Config) validate() error {
	if c.HTTPPort < 1 || c.HTTPPort > 65535 {
		return fmt.Errorf("invalid HTTP port: %d", c.HTTPPort)
	}
	if c.CartTTLHours < 1 {
		return fmt.Errorf("cart TTL must be at least one hour, got %d", c.CartTTLHours)
	}
	// In non-development environments, require an explicitly set, strong JWT secret.
	if c.Environment != "development" {
		if c.AuthJWTSecret == "change-this-to-a-secure-secret" {
			return fmt.Errorf("AUTH_JWT_SECRET must be explicitly set via environment variable in %q mode", c.Environment)
		}
		if len(c.AuthJWTSecret) < 32 {
			return fmt.Errorf("AUTH_JWT_SECRET must be at least 32 characters long, got %d", len(c.AuthJWTSecret))
		}
	}
	return nil
}
