package testutil

import (
	"github.com/preston-bernstein/fantasy-football-service/internal/domain/stats"
	"github.com/preston-bernstein/fantasy-football-service/internal/domain/teams"
)

// SampleTeam returns a team fixture with the provided id.
func SampleTeam(id string) teams.Team {
	return teams.Team{ID: id, Name: "Testers", Market: "Unit", Alias: "UT"}
}

// SampleTeamSeason returns a small season with one player per lineup slot plus a kicker.
func SampleTeamSeason(id string) stats.TeamSeason {
	return stats.TeamSeason{
		ID:     id,
		Name:   "Testers",
		Market: "Unit",
		Alias:  "UT",
		Season: stats.SeasonRef{Year: 2023, Type: "REG"},
		Record: stats.TeamRecord{
			GamesPlayed:    17,
			Touchdowns:     stats.TouchdownCounts{Total: 40, Pass: 22, Rush: 15},
			FieldGoalsMade: 28,
			Passing:        stats.PassingTotals{Attempts: 550, Completions: 360, NetYards: 3800},
			Rushing:        stats.RushingTotals{Attempts: 450, Yards: 1900},
		},
		Players: []stats.PlayerLine{
			{
				ID: "qb", Name: "Quarter Back", Position: "QB", GamesPlayed: 17,
				Passing: &stats.PassingLine{Attempts: 540, Completions: 350, Yards: 3700, Touchdowns: 22},
			},
			{
				ID: "rb", Name: "Running Back", Position: "RB", GamesPlayed: 17,
				Rushing: &stats.RushingLine{Attempts: 250, Yards: 1100, AvgYards: 4.4, Touchdowns: 9},
			},
			{
				ID: "wr", Name: "Wide Receiver", Position: "WR", GamesPlayed: 17,
				Receiving: &stats.ReceivingLine{Targets: 140, Receptions: 95, Yards: 1250, Touchdowns: 8},
			},
			{
				ID: "te", Name: "Tight End", Position: "TE", GamesPlayed: 16,
				Receiving: &stats.ReceivingLine{Targets: 80, Receptions: 60, Yards: 640, Touchdowns: 5},
			},
			{ID: "k", Name: "Place Kicker", Position: "K", GamesPlayed: 17},
		},
	}
}
