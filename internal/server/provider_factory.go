package server

import (
	"log/slog"

	"github.com/preston-bernstein/fantasy-football-service/internal/config"
	"github.com/preston-bernstein/fantasy-football-service/internal/metrics"
	"github.com/preston-bernstein/fantasy-football-service/internal/providers"
	"github.com/preston-bernstein/fantasy-football-service/internal/providers/fixture"
	"github.com/preston-bernstein/fantasy-football-service/internal/providers/sportradar"
)

// providerFactory assembles the configured provider behind the instrumented wrapper.
type providerFactory struct {
	logger  *slog.Logger
	metrics *metrics.Recorder
}

func newProviderFactory(logger *slog.Logger, metrics *metrics.Recorder) providerFactory {
	return providerFactory{logger: logger, metrics: metrics}
}

func (f providerFactory) build(cfg config.Config) providers.StatsProvider {
	return f.wrap(selectProvider(cfg, f.logger), providerName(cfg))
}

func (f providerFactory) wrap(inner providers.StatsProvider, name string) providers.StatsProvider {
	return providers.NewInstrumentedProvider(inner, f.logger, f.metrics, name)
}

func selectProvider(cfg config.Config, logger *slog.Logger) providers.StatsProvider {
	switch cfg.Provider {
	case config.ProviderFixture:
		return fixture.New()
	case config.ProviderSportradar, "":
		return sportradar.NewClient(sportradar.Config{
			BaseURL: cfg.Sportradar.BaseURL,
			APIKey:  cfg.Sportradar.APIKey,
			Timeout: cfg.Sportradar.Timeout,
		})
	default:
		if logger != nil {
			logger.Warn("unknown provider, falling back to fixture", slog.String("provider", cfg.Provider))
		}
		return fixture.New()
	}
}

func providerName(cfg config.Config) string {
	if cfg.Provider == "" {
		return config.ProviderSportradar
	}
	return cfg.Provider
}
