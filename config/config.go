package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Config struct to hold the configuration settings
type Config struct {
	Postgres      PostgresConfig      `yaml:"postgres"`
	HTTP          HTTPConfig          `yaml:"http"`
	JWT           JWTConfig           `yaml:"jwt"`
	Discord       DiscordConfig       `yaml:"discord"`
	Observability ObservabilityConfig `yaml:"observability"`
}

// PostgresConfig holds Postgres configuration.
type PostgresConfig struct {
	DSN          string `yaml:"dsn" env:"DATABASE_URL"`
	MaxOpenConns int    `yaml:"max_open_conns" env:"DATABASE_MAX_OPEN_CONNS"`
}

// HTTPConfig holds the API listener settings. RateLimit is requests per
// second per client IP.
type HTTPConfig struct {
	Addr           string        `yaml:"addr" env:"HTTP_ADDR"`
	AllowedOrigins []string      `yaml:"allowed_origins" env:"CORS_ALLOWED_ORIGINS" envSeparator:","`
	RateLimit      float64       `yaml:"rate_limit" env:"HTTP_RATE_LIMIT"`
	RateBurst      int           `yaml:"rate_burst" env:"HTTP_RATE_BURST"`
	ReadTimeout    time.Duration `yaml:"read_timeout" env:"HTTP_READ_TIMEOUT"`
	WriteTimeout   time.Duration `yaml:"write_timeout" env:"HTTP_WRITE_TIMEOUT"`
}

// JWTConfig holds JWT configuration.
type JWTConfig struct {
	Secret string `yaml:"secret" env:"JWT_SECRET"`
	Issuer string `yaml:"issuer" env:"JWT_ISSUER"`
}

// DiscordConfig holds Discord configuration. An empty token disables profile lookups.
type DiscordConfig struct {
	Token           string        `yaml:"token" env:"DISCORD_TOKEN"`
	ProfileCacheTTL time.Duration `yaml:"profile_cache_ttl" env:"DISCORD_PROFILE_CACHE_TTL"`
}

// ObservabilityConfig holds configuration for observability components
type ObservabilityConfig struct {
	MetricsAddress string `yaml:"metrics_address" env:"METRICS_ADDRESS"` // empty serves /metrics on the API listener
	Environment    string `yaml:"environment" env:"ENV"`
	LogLevel       string `yaml:"log_level" env:"LOG_LEVEL"`
	LogFormat      string `yaml:"log_format" env:"LOG_FORMAT"` // json|text
	OTLPEndpoint   string `yaml:"otlp_endpoint" env:"OTLP_ENDPOINT"`
	OTLPInsecure   bool   `yaml:"otlp_insecure" env:"OTLP_INSECURE"`
}

// Default returns the settings used when neither file nor environment says otherwise.
func Default() *Config {
	return &Config{
		Postgres: PostgresConfig{MaxOpenConns: 10},
		HTTP: HTTPConfig{
			Addr:         ":3000",
			RateLimit:    10,
			RateBurst:    20,
			ReadTimeout:  15 * time.Second,
			WriteTimeout: 15 * time.Second,
		},
		JWT:     JWTConfig{Issuer: "tripsit-api"},
		Discord: DiscordConfig{ProfileCacheTTL: 10 * time.Minute},
		Observability: ObservabilityConfig{
			Environment: "development",
			LogLevel:    "info",
			LogFormat:   "json",
		},
	}
}

// LoadConfig layers defaults, the YAML file and the environment, in that
// order. Variables from envFiles (default .env) are loaded first but never
// replace ones already set. A missing config file or default .env is not an
// error.
func LoadConfig(filename string, envFiles ...string) (*Config, error) {
	if err := godotenv.Load(envFiles...); err != nil {
		if len(envFiles) > 0 || !errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("failed to load env file: %w", err)
		}
	}

	cfg := Default()
	data, err := os.ReadFile(filename)
	switch {
	case err == nil:
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to unmarshal config: %w", err)
		}
	case errors.Is(err, os.ErrNotExist):
	default:
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("failed to parse environment: %w", err)
	}
	if cfg.Postgres.DSN == "" {
		return nil, errors.New("DATABASE_URL environment variable not set")
	}
	return cfg, nil
}

// RequireJWT reports a missing signing secret. Only the API server needs it.
func (c *Config) RequireJWT() error {
	if c.JWT.Secret == "" {
		return errors.New("JWT_SECRET environment variable not set")
	}
	return nil
}
