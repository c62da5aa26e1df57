package sportradar

type teamsResponse struct {
	Teams []teamResponse `json:"teams"`
}

type teamResponse struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Market string `json:"market"`
	Alias  string `json:"alias"`
}

type teamStatisticsResponse struct {
	ID      string           `json:"id"`
	Name    string           `json:"name"`
	Market  string           `json:"market"`
	Alias   string           `json:"alias"`
	Season  seasonResponse   `json:"season"`
	Record  recordResponse   `json:"record"`
	Players []playerResponse `json:"players"`
}

type seasonResponse struct {
	ID   string `json:"id"`
	Year int    `json:"year"`
	Type string `json:"type"`
}

type recordResponse struct {
	GamesPlayed int                `json:"games_played"`
	Touchdowns  touchdownsResponse `json:"touchdowns"`
	FieldGoals  fieldGoalsResponse `json:"field_goals"`
	Passing     teamPassing        `json:"passing"`
	Rushing     teamRushing        `json:"rushing"`
}

type touchdownsResponse struct {
	Total int `json:"total"`
	Pass  int `json:"pass"`
	Rush  int `json:"rush"`
}

type fieldGoalsResponse struct {
	Made int `json:"made"`
}

type teamPassing struct {
	Attempts    int `json:"attempts"`
	Completions int `json:"completions"`
	NetYards    int `json:"net_yards"`
}

type teamRushing struct {
	Attempts int `json:"attempts"`
	Yards    int `json:"yards"`
}

type playerResponse struct {
	ID          string            `json:"id"`
	Name        string            `json:"name"`
	Position    string            `json:"position"`
	GamesPlayed int               `json:"games_played"`
	Rushing     *playerRushing   `json:"rushing"`
	Receiving   *playerReceiving `json:"receiving"`
	Passing     *playerPassing   `json:"passing"`
}

type playerRushing struct {
	Attempts   int     `json:"attempts"`
	Yards      int     `json:"yards"`
	AvgYards   float64 `json:"avg_yards"`
	Touchdowns int     `json:"touchdowns"`
}

type playerReceiving struct {
	Targets    int `json:"targets"`
	Receptions int `json:"receptions"`
	Yards      int `json:"yards"`
	Touchdowns int `json:"touchdowns"`
}

type playerPassing struct {
	Attempts    int `json:"attempts"`
	Completions int `json:"completions"`
	Yards       int `json:"yards"`
	Touchdowns  int `json:"touchdowns"`
}
