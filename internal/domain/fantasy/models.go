package fantasy

// Season identifies the scoring period of a TeamStats payload.
type Season struct {
	Year int    `json:"year"`
	Type string `json:"type"`
}

// Totals holds team-level aggregates derived from the provider record.
type Totals struct {
	Points             int     `json:"points"`
	PointsPerGame      float64 `json:"pointsPerGame"`
	Touchdowns         int     `json:"touchdowns"`
	PassingTouchdowns  int     `json:"passingTouchdowns"`
	RushingTouchdowns  int     `json:"rushingTouchdowns"`
	Yards              int     `json:"yards"`
	PassingAttempts    int     `json:"passingAttempts"`
	PassingCompletions int     `json:"passingCompletions"`
	PassingYards       int     `json:"passingYards"`
	RushingAttempts    int     `json:"rushingAttempts"`
	RushingYards       int     `json:"rushingYards"`
}

// PassingStats is a player's passing slice.
type PassingStats struct {
	Name                 string  `json:"name"`
	Completions          int     `json:"completions"`
	Attempts             int     `json:"attempts"`
	CompletionPercentage float64 `json:"completionPercentage"`
	Yards                int     `json:"yards"`
	PassingTouchdowns    int     `json:"passingTouchdowns"`
}

// ReceivingStats is a player's receiving slice.
type ReceivingStats struct {
	Name                string  `json:"name"`
	TargetShare         float64 `json:"targetShare"`
	Receptions          int     `json:"receptions"`
	Yards               int     `json:"yards"`
	ReceivingTouchdowns int     `json:"receivingTouchdowns"`
}

// RushingStats is a player's rushing slice.
type RushingStats struct {
	Name              string  `json:"name"`
	Attempts          int     `json:"attempts"`
	RushingShare      float64 `json:"rushingShare"`
	Yards             int     `json:"yards"`
	YPC               float64 `json:"ypc"`
	RushingTouchdowns int     `json:"rushingTouchdowns"`
}

// PlayerStats is a flat player record with three independently optional slices.
type PlayerStats struct {
	Name                 string          `json:"name"`
	Position             string          `json:"position"`
	Team                 string          `json:"team"`
	PassingStats         *PassingStats   `json:"passingStats"`
	ReceivingStats       *ReceivingStats `json:"receivingStats"`
	RushingStats         *RushingStats   `json:"rushingStats"`
	TotalFantasyPoints   float64         `json:"totalFantasyPoints"`
	FantasyPointsPerGame float64         `json:"fantasyPointsPerGame"`
}

// TeamStats is the response payload for a team's season.
// Quarterback, RunningBack and TightEnd are null when no eligible player exists;
// Receivers is always present and holds at most two players in rank order.
type TeamStats struct {
	ID           string        `json:"id"`
	IsPrediction bool          `json:"isPrediction"`
	Name         string        `json:"name"`
	Season       Season        `json:"season"`
	Totals       Totals        `json:"totals"`
	Quarterback  *PlayerStats  `json:"quarterback"`
	Receivers    []PlayerStats `json:"receivers"`
	RunningBack  *PlayerStats  `json:"runningBack"`
	TightEnd     *PlayerStats  `json:"tightEnd"`
}
