package http

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/preston-bernstein/fantasy-football-service/internal/app/teamdata"
	"github.com/preston-bernstein/fantasy-football-service/internal/domain/fantasy"
	"github.com/preston-bernstein/fantasy-football-service/internal/domain/stats"
	"github.com/preston-bernstein/fantasy-football-service/internal/domain/teams"
	"github.com/preston-bernstein/fantasy-football-service/internal/http/handlers"
	"github.com/preston-bernstein/fantasy-football-service/internal/metrics"
	"github.com/preston-bernstein/fantasy-football-service/internal/testutil"
	"github.com/preston-bernstein/fantasy-football-service/internal/teststubs"
)

func newTestRouter(t *testing.T, origins []string) (http.Handler, *metrics.Recorder) {
	t.Helper()
	eaglesID, _ := teams.NFL.Resolve("eagles")
	stub := &teststubs.StubProvider{
		Teams:   []string{"Eagles"},
		Seasons: map[string]stats.TeamSeason{eaglesID: testutil.SampleTeamSeason(eaglesID)},
	}
	logger, _ := testutil.NewBufferLogger()
	rec := metrics.NewRecorder()
	svc := teamdata.NewService(stub, nil, rec, logger)
	h := handlers.NewHandler(svc, logger)
	return NewRouter(h, RouterOptions{Logger: logger, Metrics: rec, CORSOrigins: origins}), rec
}

func TestRouterRoutesKnownPaths(t *testing.T) {
	router, _ := newTestRouter(t, nil)

	cases := map[string]int{
		"/":                                http.StatusOK,
		"/health":                          http.StatusOK,
		"/api/v1/team-data/all-teams":      http.StatusOK,
		"/api/v1/team-data/eagles/2023":    http.StatusOK,
		"/api/v1/team-data/atlantis/2023":  http.StatusBadRequest,
		"/api/v1/team-data/eagles/notyear": http.StatusBadRequest,
		"/api/v1/team-data/eagles":         http.StatusNotFound,
		"/unknown":                         http.StatusNotFound,
	}

	for path, expected := range cases {
		rr := testutil.Serve(router, http.MethodGet, path, nil)
		if rr.Code != expected {
			t.Fatalf("path %s expected %d, got %d", path, expected, rr.Code)
		}
	}
}

func TestRouterSetsRequestIDAndRecordsRoutePattern(t *testing.T) {
	router, rec := newTestRouter(t, nil)

	rr := testutil.Serve(router, http.MethodGet, "/api/v1/team-data/eagles/2023", nil)
	testutil.AssertStatus(t, rr, http.StatusOK)
	if rr.Header().Get("X-Request-ID") == "" {
		t.Fatalf("expected request id header")
	}
	if got := rec.HTTPRequests("/api/v1/team-data/{team}/{season}"); got != 1 {
		t.Fatalf("expected route pattern label, got %d", got)
	}
}

func TestRouterAppliesCORS(t *testing.T) {
	router, _ := newTestRouter(t, []string{"https://app.example.com"})

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	req.Header.Set("Origin", "https://app.example.com")
	rr := testutil.ServeRequest(router, req)

	if got := rr.Header().Get("Access-Control-Allow-Origin"); got != "https://app.example.com" {
		t.Fatalf("expected allowed origin echoed, got %q", got)
	}
	if got := rr.Header().Get("Access-Control-Allow-Credentials"); got != "true" {
		t.Fatalf("expected credentials allowed, got %q", got)
	}

	req = httptest.NewRequest(http.MethodGet, "/health", nil)
	req.Header.Set("Origin", "https://evil.example.com")
	rr = testutil.ServeRequest(router, req)
	if got := rr.Header().Get("Access-Control-Allow-Origin"); got != "" {
		t.Fatalf("expected disallowed origin to get no CORS header, got %q", got)
	}
}

func TestRouterRecoversFromPanics(t *testing.T) {
	logger, _ := testutil.NewBufferLogger()
	h := handlers.NewHandler(panickingTeamData{}, logger)
	router := NewRouter(h, RouterOptions{Logger: logger})

	rr := testutil.Serve(router, http.MethodGet, "/api/v1/team-data/all-teams", nil)
	testutil.AssertStatus(t, rr, http.StatusInternalServerError)
}

type panickingTeamData struct{}

func (panickingTeamData) AllTeams(ctx context.Context) ([]string, error) {
	panic("boom")
}

func (panickingTeamData) TeamStats(ctx context.Context, team string, season int) (fantasy.TeamStats, error) {
	panic("boom")
}
