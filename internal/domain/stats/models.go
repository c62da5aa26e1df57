// Package stats holds one team's season statistics as reported by an upstream
// provider, before any fantasy scoring is applied.
package stats

// SeasonRef identifies the season a record belongs to.
type SeasonRef struct {
	Year int
	Type string
}

// TeamSeason is a team's aggregate record plus the per-player lines for one season.
type TeamSeason struct {
	ID      string
	Name    string
	Market  string
	Alias   string
	Season  SeasonRef
	Record  TeamRecord
	Players []PlayerLine
}

// TeamRecord carries the team-level aggregates the fantasy totals are derived from.
type TeamRecord struct {
	GamesPlayed    int
	Touchdowns     TouchdownCounts
	FieldGoalsMade int
	Passing        PassingTotals
	Rushing        RushingTotals
}

// TouchdownCounts splits team touchdowns by how they were scored.
type TouchdownCounts struct {
	Total int
	Pass  int
	Rush  int
}

// PassingTotals is the team passing aggregate. NetYards excludes sack yardage.
type PassingTotals struct {
	Attempts    int
	Completions int
	NetYards    int
}

// RushingTotals is the team rushing aggregate.
type RushingTotals struct {
	Attempts int
	Yards    int
}

// PlayerLine is one player's season line. Each stat slice is nil when the
// provider reported no activity of that kind for the player.
type PlayerLine struct {
	ID          string
	Name        string
	Position    string
	GamesPlayed int
	Rushing     *RushingLine
	Receiving   *ReceivingLine
	Passing     *PassingLine
}

// RushingLine is a player's rushing slice. AvgYards is the provider's yards per carry.
type RushingLine struct {
	Attempts   int
	Yards      int
	AvgYards   float64
	Touchdowns int
}

// ReceivingLine is a player's receiving slice.
type ReceivingLine struct {
	Targets    int
	Receptions int
	Yards      int
	Touchdowns int
}

// PassingLine is a player's passing slice.
type PassingLine struct {
	Attempts    int
	Completions int
	Yards       int
	Touchdowns  int
}
