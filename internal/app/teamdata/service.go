// Package teamdata resolves a team name, fetches its season from the stats
// provider and turns it into the fantasy payload.
package teamdata

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"
	"strings"

	"github.com/preston-bernstein/fantasy-football-service/internal/domain/fantasy"
	"github.com/preston-bernstein/fantasy-football-service/internal/domain/teams"
	"github.com/preston-bernstein/fantasy-football-service/internal/logging"
	"github.com/preston-bernstein/fantasy-football-service/internal/metrics"
	"github.com/preston-bernstein/fantasy-football-service/internal/providers"
)

// Service coordinates team lookups against a StatsProvider.
type Service struct {
	provider  providers.StatsProvider
	directory *teams.Directory
	metrics   *metrics.Recorder
	logger    *slog.Logger
}

// NewService constructs a Service. A nil directory falls back to the NFL directory.
func NewService(provider providers.StatsProvider, directory *teams.Directory, recorder *metrics.Recorder, logger *slog.Logger) *Service {
	if directory == nil {
		directory = teams.NFL
	}
	return &Service{
		provider:  provider,
		directory: directory,
		metrics:   recorder,
		logger:    logger,
	}
}

// AllTeams returns the league's team names as the provider lists them.
func (s *Service) AllTeams(ctx context.Context) ([]string, error) {
	if s.provider == nil {
		return nil, providers.ErrProviderUnavailable
	}
	names, err := s.provider.ListTeams(ctx)
	if err != nil {
		return nil, err
	}
	if names == nil {
		names = []string{}
	}
	return names, nil
}

// TeamStats resolves team and returns its fantasy stats for season.
// An unresolved name fails with ErrUnknownTeam before the provider is called.
func (s *Service) TeamStats(ctx context.Context, team string, season int) (fantasy.TeamStats, error) {
	if season <= 0 {
		return fantasy.TeamStats{}, fmt.Errorf("%w: %d", ErrInvalidSeason, season)
	}

	name := strings.TrimSpace(team)
	teamID, ok := s.directory.Resolve(name)
	s.metrics.RecordTeamLookup(ok)
	if !ok {
		logging.Info(logging.FromContext(ctx, s.logger), "unknown team requested",
			slog.String(logging.FieldTeam, team))
		return fantasy.TeamStats{}, &UnknownTeamError{Name: team}
	}

	if s.provider == nil {
		return fantasy.TeamStats{}, providers.ErrProviderUnavailable
	}
	raw, err := s.provider.FetchTeamStatistics(ctx, teamID, season)
	if err != nil {
		return fantasy.TeamStats{}, err
	}

	result := fantasy.ComputeTeamStats(raw)
	s.recordEmptySlots(result)
	return result, nil
}

func (s *Service) recordEmptySlots(result fantasy.TeamStats) {
	lineup := fantasy.Lineup{
		Quarterback: result.Quarterback,
		RunningBack: result.RunningBack,
		Receivers:   result.Receivers,
		TightEnd:    result.TightEnd,
	}
	for slot, count := range lineup.EmptySlots() {
		s.metrics.RecordEmptySlots(slot, count)
	}
}

// ParseSeason converts a season path segment to a year.
func ParseSeason(raw string) (int, error) {
	year, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil || year <= 0 {
		return 0, fmt.Errorf("%w: %q", ErrInvalidSeason, raw)
	}
	return year, nil
}
