package providers

import (
	"context"

	"github.com/preston-bernstein/fantasy-football-service/internal/domain/stats"
)

// StatsProvider fetches league and team statistics from an upstream source.
type StatsProvider interface {
	// ListTeams returns league team names in upstream order, excluding placeholders.
	ListTeams(ctx context.Context) ([]string, error)
	// FetchTeamStatistics returns one team's regular-season statistics for a season year.
	FetchTeamStatistics(ctx context.Context, teamID string, season int) (stats.TeamSeason, error)
}
