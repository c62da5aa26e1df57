package sportradar

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/preston-bernstein/fantasy-football-service/internal/domain/stats"
	"github.com/preston-bernstein/fantasy-football-service/internal/providers"
)

// Config controls how the Sportradar client reaches the upstream API.
type Config struct {
	BaseURL    string
	APIKey     string
	HTTPClient *http.Client
	Timeout    time.Duration
}

// Client fetches NFL league and team statistics from Sportradar.
type Client struct {
	baseURL    string
	apiKey     string
	httpClient httpDoer
}

// NewClient constructs a Sportradar client with the provided configuration.
func NewClient(cfg Config) *Client {
	return &Client{
		baseURL:    normalizeBaseURL(cfg.BaseURL),
		apiKey:     cfg.APIKey,
		httpClient: resolveHTTPClient(cfg.HTTPClient, cfg.Timeout),
	}
}

// ListTeams returns league team names in upstream order, skipping placeholder entries.
func (c *Client) ListTeams(ctx context.Context) ([]string, error) {
	var payload teamsResponse
	if err := c.getJSON(ctx, "/league/teams.json", &payload); err != nil {
		return nil, err
	}
	return mapTeamNames(payload.Teams), nil
}

// FetchTeamStatistics retrieves one team's regular-season statistics for a season year.
func (c *Client) FetchTeamStatistics(ctx context.Context, teamID string, season int) (stats.TeamSeason, error) {
	path := fmt.Sprintf("/seasons/%d/%s/teams/%s/statistics.json", season, seasonType, url.PathEscape(teamID))

	var payload teamStatisticsResponse
	if err := c.getJSON(ctx, path, &payload); err != nil {
		return stats.TeamSeason{}, err
	}
	return mapTeamSeason(payload), nil
}

func (c *Client) getJSON(ctx context.Context, path string, dest any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return err
	}
	req.Header.Set("Accept", "application/json")
	if c.apiKey != "" {
		req.Header.Set(apiKeyHeader, c.apiKey)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return providers.Unavailable(providerName, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusTooManyRequests {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		return &providers.RateLimitError{
			Provider:   providerName,
			StatusCode: resp.StatusCode,
			RetryAfter: parseRetryAfter(resp.Header.Get("Retry-After")),
			Message:    strings.TrimSpace(string(body)),
		}
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		return &providers.StatusError{
			Provider:   providerName,
			StatusCode: resp.StatusCode,
			Body:       strings.TrimSpace(string(body)),
		}
	}

	if err := json.NewDecoder(resp.Body).Decode(dest); err != nil {
		return providers.Unavailable(providerName, fmt.Errorf("decode %s: %w", path, err))
	}
	return nil
}
