package teststubs

import (
	"context"
	"sync"
	"sync/atomic"

	"github.com/preston-bernstein/fantasy-football-service/internal/domain/stats"
)

// StubProvider is a test double for providers.StatsProvider.
type StubProvider struct {
	Teams   []string
	Seasons map[string]stats.TeamSeason // keyed by team ID
	Err     error

	ListCalls  atomic.Int32
	FetchCalls atomic.Int32

	mu       sync.Mutex
	lastID   string
	lastYear int
}

// ListTeams returns the configured team names and error while tracking calls.
func (s *StubProvider) ListTeams(ctx context.Context) ([]string, error) {
	_ = ctx
	s.ListCalls.Add(1)
	if s.Err != nil {
		return nil, s.Err
	}
	return s.Teams, nil
}

// FetchTeamStatistics returns the season configured for teamID, or a zero season.
func (s *StubProvider) FetchTeamStatistics(ctx context.Context, teamID string, season int) (stats.TeamSeason, error) {
	_ = ctx
	s.FetchCalls.Add(1)
	s.mu.Lock()
	s.lastID, s.lastYear = teamID, season
	s.mu.Unlock()
	if s.Err != nil {
		return stats.TeamSeason{}, s.Err
	}
	return s.Seasons[teamID], nil
}

// LastFetch reports the arguments of the most recent FetchTeamStatistics call.
func (s *StubProvider) LastFetch() (string, int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lastID, s.lastYear
}
