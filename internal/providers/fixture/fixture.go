package fixture

import (
	"context"
	"fmt"
	"net/http"

	"github.com/preston-bernstein/fantasy-football-service/internal/domain/stats"
	"github.com/preston-bernstein/fantasy-football-service/internal/domain/teams"
	"github.com/preston-bernstein/fantasy-football-service/internal/providers"
)

const providerName = "fixture"

// Provider serves deterministic statistics for local runs and tests without an API key.
type Provider struct {
	directory *teams.Directory
	byID      map[string]teams.Team
}

// New creates a fixture provider backed by the NFL team directory.
func New() *Provider {
	return NewWithDirectory(teams.NFL)
}

// NewWithDirectory creates a fixture provider over a custom directory.
func NewWithDirectory(dir *teams.Directory) *Provider {
	all := dir.Teams()
	byID := make(map[string]teams.Team, len(all))
	for _, t := range all {
		byID[t.ID] = t
	}
	return &Provider{directory: dir, byID: byID}
}

// ListTeams returns every team nickname in directory order.
func (p *Provider) ListTeams(ctx context.Context) ([]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	all := p.directory.Teams()
	names := make([]string, 0, len(all))
	for _, t := range all {
		names = append(names, t.Name)
	}
	return names, nil
}

// FetchTeamStatistics returns a generated season for a known team ID.
// Unknown IDs yield a 404 StatusError, the same shape the live API produces.
func (p *Provider) FetchTeamStatistics(ctx context.Context, teamID string, season int) (stats.TeamSeason, error) {
	if err := ctx.Err(); err != nil {
		return stats.TeamSeason{}, err
	}
	team, ok := p.byID[teamID]
	if !ok {
		return stats.TeamSeason{}, &providers.StatusError{
			Provider:   providerName,
			StatusCode: http.StatusNotFound,
			Body:       fmt.Sprintf("team %s not found", teamID),
		}
	}
	return buildSeason(team, season), nil
}

func buildSeason(team teams.Team, year int) stats.TeamSeason {
	// seed varies output between teams and seasons while staying stable across calls.
	seed := year % 10
	for _, r := range team.ID {
		seed += int(r)
	}
	seed %= 17

	games := 17
	qb := stats.PlayerLine{
		ID: team.Alias + "-qb1", Name: team.Market + " Passer", Position: "QB", GamesPlayed: games,
		Passing: &stats.PassingLine{Attempts: 540 + seed, Completions: 350 + seed, Yards: 3800 + 20*seed, Touchdowns: 24 + seed%6},
		Rushing: &stats.RushingLine{Attempts: 60, Yards: 220 + seed, AvgYards: float64(220+seed) / 60, Touchdowns: 2},
	}
	rb1 := stats.PlayerLine{
		ID: team.Alias + "-rb1", Name: team.Market + " Lead Back", Position: "RB", GamesPlayed: games,
		Rushing:   &stats.RushingLine{Attempts: 250, Yards: 1100 + 10*seed, AvgYards: float64(1100+10*seed) / 250, Touchdowns: 8 + seed%4},
		Receiving: &stats.ReceivingLine{Targets: 55, Receptions: 42, Yards: 310, Touchdowns: 1},
	}
	rb2 := stats.PlayerLine{
		ID: team.Alias + "-rb2", Name: team.Market + " Change Back", Position: "RB", GamesPlayed: 15,
		Rushing:   &stats.RushingLine{Attempts: 110, Yards: 460 + seed, AvgYards: float64(460+seed) / 110, Touchdowns: 3},
		Receiving: &stats.ReceivingLine{Targets: 30, Receptions: 22, Yards: 170, Touchdowns: 0},
	}
	wr1 := stats.PlayerLine{
		ID: team.Alias + "-wr1", Name: team.Market + " Top Receiver", Position: "WR", GamesPlayed: games,
		Receiving: &stats.ReceivingLine{Targets: 150, Receptions: 100 + seed, Yards: 1300 + 15*seed, Touchdowns: 9},
	}
	wr2 := stats.PlayerLine{
		ID: team.Alias + "-wr2", Name: team.Market + " Second Receiver", Position: "WR", GamesPlayed: 16,
		Receiving: &stats.ReceivingLine{Targets: 110, Receptions: 72, Yards: 900 + 5*seed, Touchdowns: 6},
	}
	wr3 := stats.PlayerLine{
		ID: team.Alias + "-wr3", Name: team.Market + " Slot Receiver", Position: "WR", GamesPlayed: 17,
		Receiving: &stats.ReceivingLine{Targets: 70, Receptions: 48, Yards: 560, Touchdowns: 3},
	}
	te := stats.PlayerLine{
		ID: team.Alias + "-te1", Name: team.Market + " Tight End", Position: "TE", GamesPlayed: games,
		Receiving: &stats.ReceivingLine{Targets: 90, Receptions: 64, Yards: 700 + 5*seed, Touchdowns: 5},
	}
	kicker := stats.PlayerLine{
		ID: team.Alias + "-k1", Name: team.Market + " Kicker", Position: "K", GamesPlayed: games,
	}

	return stats.TeamSeason{
		ID:     team.ID,
		Name:   team.Name,
		Market: team.Market,
		Alias:  team.Alias,
		Season: stats.SeasonRef{Year: year, Type: "REG"},
		Record: stats.TeamRecord{
			GamesPlayed: games,
			Touchdowns: stats.TouchdownCounts{
				Total: 45 + seed,
				Pass:  24 + seed%6,
				Rush:  13 + seed%4,
			},
			FieldGoalsMade: 25 + seed%8,
			Passing:        stats.PassingTotals{Attempts: 560 + seed, Completions: 360 + seed, NetYards: 3650 + 20*seed},
			Rushing:        stats.RushingTotals{Attempts: 440, Yards: 1850 + 11*seed},
		},
		Players: []stats.PlayerLine{qb, rb1, rb2, wr1, wr2, wr3, te, kicker},
	}
}
