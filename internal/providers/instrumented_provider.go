package providers

import (
	"context"
	"log/slog"
	"time"

	"github.com/preston-bernstein/fantasy-football-service/internal/domain/stats"
	"github.com/preston-bernstein/fantasy-football-service/internal/logging"
	"github.com/preston-bernstein/fantasy-football-service/internal/metrics"
)

// instrumentedProvider records latency, errors and rate limits for every upstream
// call and logs failures. It makes exactly one inner call per request.
type instrumentedProvider struct {
	inner        StatsProvider
	logger       *slog.Logger
	metrics      *metrics.Recorder
	providerName string
	now          func() time.Time
}

// NewInstrumentedProvider wraps inner with metrics and logging.
func NewInstrumentedProvider(inner StatsProvider, logger *slog.Logger, recorder *metrics.Recorder, providerName string) StatsProvider {
	if providerName == "" {
		providerName = "provider"
	}
	return &instrumentedProvider{
		inner:        inner,
		logger:       logger,
		metrics:      recorder,
		providerName: providerName,
		now:          time.Now,
	}
}

func (p *instrumentedProvider) ListTeams(ctx context.Context) ([]string, error) {
	if p.inner == nil {
		p.logFailure(ctx, "list teams", ErrProviderUnavailable)
		return nil, ErrProviderUnavailable
	}

	start := p.now()
	names, err := p.inner.ListTeams(ctx)
	p.observe(ctx, "list teams", start, err)
	if err != nil {
		return nil, err
	}

	logWithProvider(ctx, p.logger, slog.LevelDebug, p.providerName, "fetched team list",
		slog.Int(logging.FieldCount, len(names)))
	return names, nil
}

func (p *instrumentedProvider) FetchTeamStatistics(ctx context.Context, teamID string, season int) (stats.TeamSeason, error) {
	if p.inner == nil {
		p.logFailure(ctx, "fetch team statistics", ErrProviderUnavailable)
		return stats.TeamSeason{}, ErrProviderUnavailable
	}

	start := p.now()
	result, err := p.inner.FetchTeamStatistics(ctx, teamID, season)
	p.observe(ctx, "fetch team statistics", start, err,
		slog.String(logging.FieldTeam, teamID), slog.Int(logging.FieldSeason, season))
	if err != nil {
		return stats.TeamSeason{}, err
	}
	return result, nil
}

func (p *instrumentedProvider) observe(ctx context.Context, op string, start time.Time, err error, args ...any) {
	p.metrics.RecordProviderAttempt(p.providerName, p.now().Sub(start), err)
	if rlErr, ok := AsRateLimitError(err); ok {
		p.metrics.RecordRateLimit(p.providerName, rlErr.RetryAfter)
	}
	if err != nil {
		p.logFailure(ctx, op, err, args...)
	}
}

func (p *instrumentedProvider) logFailure(ctx context.Context, op string, err error, args ...any) {
	args = append(args, slog.String("op", op), slog.Any("error", err))
	logWithProvider(ctx, p.logger, slog.LevelWarn, p.providerName, "provider call failed", args...)
}
