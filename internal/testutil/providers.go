package testutil

import (
	"context"

	"github.com/preston-bernstein/fantasy-football-service/internal/domain/stats"
	"github.com/preston-bernstein/fantasy-football-service/internal/providers"
)

// GoodProvider returns the provided teams and season with no error.
type GoodProvider struct {
	Teams  []string
	Season stats.TeamSeason
}

func (p GoodProvider) ListTeams(ctx context.Context) ([]string, error) {
	return p.Teams, nil
}

func (p GoodProvider) FetchTeamStatistics(ctx context.Context, teamID string, season int) (stats.TeamSeason, error) {
	return p.Season, nil
}

// ErrProvider always returns the provided error.
type ErrProvider struct {
	Err error
}

func (p ErrProvider) ListTeams(ctx context.Context) ([]string, error) {
	return nil, p.Err
}

func (p ErrProvider) FetchTeamStatistics(ctx context.Context, teamID string, season int) (stats.TeamSeason, error) {
	return stats.TeamSeason{}, p.Err
}

// UnavailableProvider returns ErrProviderUnavailable.
type UnavailableProvider struct{}

func (UnavailableProvider) ListTeams(ctx context.Context) ([]string, error) {
	return nil, providers.ErrProviderUnavailable
}

func (UnavailableProvider) FetchTeamStatistics(ctx context.Context, teamID string, season int) (stats.TeamSeason, error) {
	return stats.TeamSeason{}, providers.ErrProviderUnavailable
}
