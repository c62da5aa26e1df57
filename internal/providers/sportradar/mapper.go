package sportradar

import (
	"strings"

	"github.com/preston-bernstein/fantasy-football-service/internal/domain/stats"
)

func mapTeamNames(teams []teamResponse) []string {
	names := make([]string, 0, len(teams))
	for _, t := range teams {
		name := strings.TrimSpace(t.Name)
		if name == "" || name == placeholderTeam {
			continue
		}
		names = append(names, name)
	}
	return names
}

func mapTeamSeason(r teamStatisticsResponse) stats.TeamSeason {
	players := make([]stats.PlayerLine, 0, len(r.Players))
	for _, p := range r.Players {
		players = append(players, mapPlayer(p))
	}

	return stats.TeamSeason{
		ID:     r.ID,
		Name:   r.Name,
		Market: r.Market,
		Alias:  r.Alias,
		Season: stats.SeasonRef{Year: r.Season.Year, Type: r.Season.Type},
		Record: stats.TeamRecord{
			GamesPlayed: r.Record.GamesPlayed,
			Touchdowns: stats.TouchdownCounts{
				Total: r.Record.Touchdowns.Total,
				Pass:  r.Record.Touchdowns.Pass,
				Rush:  r.Record.Touchdowns.Rush,
			},
			FieldGoalsMade: r.Record.FieldGoals.Made,
			Passing: stats.PassingTotals{
				Attempts:    r.Record.Passing.Attempts,
				Completions: r.Record.Passing.Completions,
				NetYards:    r.Record.Passing.NetYards,
			},
			Rushing: stats.RushingTotals{
				Attempts: r.Record.Rushing.Attempts,
				Yards:    r.Record.Rushing.Yards,
			},
		},
		Players: players,
	}
}

func mapPlayer(p playerResponse) stats.PlayerLine {
	line := stats.PlayerLine{
		ID:          p.ID,
		Name:        p.Name,
		Position:    p.Position,
		GamesPlayed: p.GamesPlayed,
	}
	if p.Rushing != nil {
		line.Rushing = &stats.RushingLine{
			Attempts:   p.Rushing.Attempts,
			Yards:      p.Rushing.Yards,
			AvgYards:   p.Rushing.AvgYards,
			Touchdowns: p.Rushing.Touchdowns,
		}
	}
	if p.Receiving != nil {
		line.Receiving = &stats.ReceivingLine{
			Targets:    p.Receiving.Targets,
			Receptions: p.Receiving.Receptions,
			Yards:      p.Receiving.Yards,
			Touchdowns: p.Receiving.Touchdowns,
		}
	}
	if p.Passing != nil {
		line.Passing = &stats.PassingLine{
			Attempts:    p.Passing.Attempts,
			Completions: p.Passing.Completions,
			Yards:       p.Passing.Yards,
			Touchdowns:  p.Passing.Touchdowns,
		}
	}
	return line
}
