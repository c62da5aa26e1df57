package sportradar

import "time"

const (
	providerName = "sportradar"

	defaultBaseURL     = "https://api.sportradar.com/nfl/official/trial/v7/en"
	defaultHTTPTimeout = 10 * time.Second

	apiKeyHeader = "x-api-key"
	seasonType   = "REG"

	// placeholderTeam marks league directory entries for unassigned teams.
	placeholderTeam = "TBD"

	maxErrorBody = 512
)
