package config

import (
	"errors"
	"fmt"
	"strings"
)

// ErrMissingAPIKey is returned when the upstream key is required but absent.
var ErrMissingAPIKey = errors.New("config: " + envSrAPIKey + " is required")

// Config holds runtime configuration for the server.
type Config struct {
	Port        string
	Provider    string
	CORSOrigins []string
	Sportradar  SportradarConfig
	Metrics     MetricsConfig
	Log         LogConfig
}

// LogConfig selects the log level and handler format.
type LogConfig struct {
	Level  string
	Format string
}

// Load reads configuration from the environment and an optional .env file in the working directory.
func Load() (Config, error) {
	return LoadFrom(envFileName)
}

// LoadFrom is Load with an explicit dotenv path. An empty path reads the environment only.
func LoadFrom(envFile string) (Config, error) {
	src := newSource(envFile)
	cfg := Config{
		Port:        envOrDefault(src, envPort, defaultPort),
		Provider:    strings.ToLower(envOrDefault(src, envProvider, defaultProvider)),
		CORSOrigins: listEnvOrDefault(src, envCORSOrigins, defaultCORSOrigins),
		Sportradar:  loadSportradar(src),
		Metrics:     loadMetrics(src),
		Log: LogConfig{
			Level:  envOrDefault(src, envLogLevel, defaultLogLevel),
			Format: envOrDefault(src, envLogFormat, defaultLogFormat),
		},
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate reports configuration that would prevent the service from starting.
func (c Config) Validate() error {
	switch c.Provider {
	case ProviderSportradar:
		if c.Sportradar.APIKey == "" {
			return ErrMissingAPIKey
		}
	case ProviderFixture:
	default:
		return fmt.Errorf("config: unknown provider %q", c.Provider)
	}
	return nil
}
