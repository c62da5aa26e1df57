package fantasy

import (
	"sort"

	"github.com/preston-bernstein/fantasy-football-service/internal/domain/stats"
)

// ComputeTeamStats turns a provider season record into team totals and a ranked lineup.
// It performs no I/O.
func ComputeTeamStats(season stats.TeamSeason) TeamStats {
	lineup := SelectLineup(RankPlayers(season))

	return TeamStats{
		ID:           season.ID,
		IsPrediction: false,
		Name:         season.Name,
		Season: Season{
			Year: season.Season.Year,
			Type: season.Season.Type,
		},
		Totals:      ComputeTotals(season.Record),
		Quarterback: lineup.Quarterback,
		Receivers:   lineup.Receivers,
		RunningBack: lineup.RunningBack,
		TightEnd:    lineup.TightEnd,
	}
}

// ComputeTotals derives team totals. Points count touchdowns at seven and field
// goals at three; conversions and safeties are not reported and so not counted.
func ComputeTotals(record stats.TeamRecord) Totals {
	points := record.Touchdowns.Total*TouchdownValue + record.FieldGoalsMade*FieldGoalValue

	return Totals{
		Points:             points,
		PointsPerGame:      ratio(float64(points), float64(record.GamesPlayed)),
		Touchdowns:         record.Touchdowns.Total,
		PassingTouchdowns:  record.Touchdowns.Pass,
		RushingTouchdowns:  record.Touchdowns.Rush,
		Yards:              record.Rushing.Yards + record.Passing.NetYards,
		PassingAttempts:    record.Passing.Attempts,
		PassingCompletions: record.Passing.Completions,
		PassingYards:       record.Passing.NetYards,
		RushingAttempts:    record.Rushing.Attempts,
		RushingYards:       record.Rushing.Yards,
	}
}

// RankPlayers scores every eligible player who appeared in a game and orders
// them by fantasy points per game, highest first. Ties keep provider order.
func RankPlayers(season stats.TeamSeason) []PlayerStats {
	ranked := make([]PlayerStats, 0, len(season.Players))
	for _, line := range season.Players {
		if !IsEligiblePosition(line.Position) || line.GamesPlayed <= 0 {
			continue
		}
		ranked = append(ranked, ScorePlayer(line, season.Name, season.Record))
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].FantasyPointsPerGame > ranked[j].FantasyPointsPerGame
	})
	return ranked
}

// ScorePlayer builds a player's stat slices and fantasy points. Shares are
// measured against the team's passing and rushing attempts.
func ScorePlayer(line stats.PlayerLine, team string, record stats.TeamRecord) PlayerStats {
	player := PlayerStats{
		Name:     line.Name,
		Position: line.Position,
		Team:     team,
	}

	var total float64
	if r := line.Rushing; r != nil {
		player.RushingStats = &RushingStats{
			Name:              line.Name,
			Attempts:          r.Attempts,
			RushingShare:      ratio(float64(r.Attempts), float64(record.Rushing.Attempts)),
			Yards:             r.Yards,
			YPC:               r.AvgYards,
			RushingTouchdowns: r.Touchdowns,
		}
		total += player.RushingStats.fantasyPoints()
	}

	if r := line.Receiving; r != nil {
		player.ReceivingStats = &ReceivingStats{
			Name:                line.Name,
			TargetShare:         ratio(float64(r.Targets), float64(record.Passing.Attempts)),
			Receptions:          r.Receptions,
			Yards:               r.Yards,
			ReceivingTouchdowns: r.Touchdowns,
		}
		total += player.ReceivingStats.fantasyPoints()
	}

	if p := line.Passing; p != nil {
		player.PassingStats = &PassingStats{
			Name:                 line.Name,
			Completions:          p.Completions,
			Attempts:             p.Attempts,
			CompletionPercentage: ratio(float64(p.Completions), float64(p.Attempts)),
			Yards:                p.Yards,
			PassingTouchdowns:    p.Touchdowns,
		}
		total += player.PassingStats.fantasyPoints()
	}

	player.TotalFantasyPoints = total
	player.FantasyPointsPerGame = ratio(total, float64(line.GamesPlayed))
	return player
}
