package sportradar

import (
	"context"
	"errors"
	"io"
	"net/http"
	"strings"
	"testing"
	"time"

	"github.com/preston-bernstein/fantasy-football-service/internal/providers"
)

const eaglesStatistics = `{
	"id": "386bdbf9-9eea-4869-bb9a-274b0bc66e80",
	"name": "Eagles",
	"market": "Philadelphia",
	"alias": "PHI",
	"season": { "id": "s-2023", "year": 2023, "type": "REG" },
	"record": {
		"games_played": 17,
		"touchdowns": { "total": 50, "pass": 23, "rush": 25 },
		"field_goals": { "made": 33 },
		"passing": { "attempts": 600, "completions": 400, "net_yards": 4000 },
		"rushing": { "attempts": 480, "yards": 2000 }
	},
	"players": [
		{
			"id": "p-1",
			"name": "Jalen Hurts",
			"position": "QB",
			"games_played": 17,
			"rushing": { "attempts": 157, "yards": 605, "avg_yards": 3.9, "touchdowns": 15 },
			"passing": { "attempts": 538, "completions": 352, "yards": 3858, "touchdowns": 23 }
		},
		{
			"id": "p-2",
			"name": "A.J. Brown",
			"position": "WR",
			"games_played": 17,
			"receiving": { "targets": 158, "receptions": 106, "yards": 1456, "touchdowns": 7 }
		}
	]
}`

func TestFetchTeamStatisticsHitsAPIAndMapsResponse(t *testing.T) {
	var capturedKey, capturedPath string
	rt := roundTripperFunc(func(req *http.Request) (*http.Response, error) {
		capturedPath = req.URL.Path
		capturedKey = req.Header.Get(apiKeyHeader)
		return jsonResponse(http.StatusOK, eaglesStatistics), nil
	})

	client := NewClient(Config{
		BaseURL:    "https://api.example.com/nfl/",
		APIKey:     "secret",
		HTTPClient: &http.Client{Transport: rt},
	})

	season, err := client.FetchTeamStatistics(context.Background(), "386bdbf9-9eea-4869-bb9a-274b0bc66e80", 2023)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if capturedPath != "/nfl/seasons/2023/REG/teams/386bdbf9-9eea-4869-bb9a-274b0bc66e80/statistics.json" {
		t.Fatalf("unexpected path %s", capturedPath)
	}
	if capturedKey != "secret" {
		t.Fatalf("expected api key header, got %q", capturedKey)
	}
	if season.Name != "Eagles" || season.Market != "Philadelphia" || season.Season.Year != 2023 {
		t.Fatalf("unexpected team mapping %+v", season)
	}
	if season.Record.GamesPlayed != 17 || season.Record.FieldGoalsMade != 33 || season.Record.Passing.NetYards != 4000 {
		t.Fatalf("unexpected record mapping %+v", season.Record)
	}
	if len(season.Players) != 2 {
		t.Fatalf("expected 2 players, got %d", len(season.Players))
	}
	qb := season.Players[0]
	if qb.Passing == nil || qb.Passing.Touchdowns != 23 || qb.Rushing == nil || qb.Rushing.AvgYards != 3.9 {
		t.Fatalf("unexpected qb mapping %+v", qb)
	}
	if qb.Receiving != nil {
		t.Fatalf("expected nil receiving slice for qb")
	}
}

func TestFetchTeamStatisticsEscapesTeamID(t *testing.T) {
	var rawPath string
	rt := roundTripperFunc(func(req *http.Request) (*http.Response, error) {
		rawPath = req.URL.EscapedPath()
		return jsonResponse(http.StatusOK, `{}`), nil
	})
	client := NewClient(Config{BaseURL: "https://api.example.com", HTTPClient: &http.Client{Transport: rt}})

	if _, err := client.FetchTeamStatistics(context.Background(), "a/b", 2022); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(rawPath, "/teams/a%2Fb/") {
		t.Fatalf("expected escaped team id in path, got %s", rawPath)
	}
}

func TestListTeamsSkipsPlaceholders(t *testing.T) {
	rt := roundTripperFunc(func(req *http.Request) (*http.Response, error) {
		if req.URL.Path != "/league/teams.json" {
			t.Fatalf("unexpected path %s", req.URL.Path)
		}
		return jsonResponse(http.StatusOK, `{"teams":[{"name":"TBD"},{"name":"Eagles"}]}`), nil
	})
	client := NewClient(Config{BaseURL: "https://api.example.com", HTTPClient: &http.Client{Transport: rt}})

	names, err := client.ListTeams(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(names) != 1 || names[0] != "Eagles" {
		t.Fatalf("expected [Eagles], got %v", names)
	}
}

func TestListTeamsReturnsEmptyListForNoTeams(t *testing.T) {
	rt := roundTripperFunc(func(req *http.Request) (*http.Response, error) {
		return jsonResponse(http.StatusOK, `{"teams":[]}`), nil
	})
	client := NewClient(Config{BaseURL: "https://api.example.com", HTTPClient: &http.Client{Transport: rt}})

	names, err := client.ListTeams(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if names == nil || len(names) != 0 {
		t.Fatalf("expected empty non-nil list, got %v", names)
	}
}

func TestClientReturnsStatusErrorOnNon2xx(t *testing.T) {
	rt := roundTripperFunc(func(req *http.Request) (*http.Response, error) {
		return jsonResponse(http.StatusForbidden, "  forbidden  "), nil
	})
	client := NewClient(Config{HTTPClient: &http.Client{Transport: rt}})

	_, err := client.ListTeams(context.Background())
	var statusErr *providers.StatusError
	if !errors.As(err, &statusErr) {
		t.Fatalf("expected StatusError, got %v", err)
	}
	if statusErr.StatusCode != http.StatusForbidden || statusErr.Body != "forbidden" {
		t.Fatalf("unexpected status error %+v", statusErr)
	}
	if !providers.IsUpstreamFailure(err) {
		t.Fatalf("expected upstream failure classification")
	}
}

func TestClientReturnsRateLimitErrorOn429(t *testing.T) {
	rt := roundTripperFunc(func(req *http.Request) (*http.Response, error) {
		resp := jsonResponse(http.StatusTooManyRequests, "slow down")
		resp.Header.Set("Retry-After", "3")
		return resp, nil
	})
	client := NewClient(Config{HTTPClient: &http.Client{Transport: rt}})

	_, err := client.FetchTeamStatistics(context.Background(), "id", 2023)
	rlErr, ok := providers.AsRateLimitError(err)
	if !ok {
		t.Fatalf("expected rate limit error, got %v", err)
	}
	if rlErr.RetryAfter != 3*time.Second || rlErr.Message != "slow down" {
		t.Fatalf("unexpected rate limit error %+v", rlErr)
	}
	if !providers.IsUpstreamFailure(err) {
		t.Fatalf("expected upstream failure classification")
	}
}

func TestClientWrapsTransportErrors(t *testing.T) {
	boom := errors.New("connection refused")
	rt := roundTripperFunc(func(req *http.Request) (*http.Response, error) {
		return nil, boom
	})
	client := NewClient(Config{HTTPClient: &http.Client{Transport: rt}})

	_, err := client.ListTeams(context.Background())
	if !errors.Is(err, providers.ErrUpstreamUnavailable) {
		t.Fatalf("expected upstream unavailable, got %v", err)
	}
	if !errors.Is(err, boom) {
		t.Fatalf("expected transport cause to be preserved, got %v", err)
	}
}

func TestClientWrapsDecodeErrors(t *testing.T) {
	rt := roundTripperFunc(func(req *http.Request) (*http.Response, error) {
		return jsonResponse(http.StatusOK, "{not json"), nil
	})
	client := NewClient(Config{HTTPClient: &http.Client{Transport: rt}})

	_, err := client.FetchTeamStatistics(context.Background(), "id", 2023)
	if !providers.IsUpstreamFailure(err) {
		t.Fatalf("expected decode failure to be an upstream failure, got %v", err)
	}
}

func TestClientOmitsAPIKeyHeaderWhenUnset(t *testing.T) {
	rt := roundTripperFunc(func(req *http.Request) (*http.Response, error) {
		if _, ok := req.Header[http.CanonicalHeaderKey(apiKeyHeader)]; ok {
			t.Fatalf("expected no api key header")
		}
		return jsonResponse(http.StatusOK, `{"teams":[]}`), nil
	})
	client := NewClient(Config{HTTPClient: &http.Client{Transport: rt}})

	if _, err := client.ListTeams(context.Background()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func jsonResponse(status int, body string) *http.Response {
	return &http.Response{
		StatusCode: status,
		Body:       io.NopCloser(strings.NewReader(body)),
		Header:     make(http.Header),
	}
}

type roundTripperFunc func(req *http.Request) (*http.Response, error)

func (f roundTripperFunc) RoundTrip(req *http.Request) (*http.Response, error) {
	return f(req)
}
