package teamdata

import (
	"context"
	"errors"
	"testing"

	"github.com/preston-bernstein/fantasy-football-service/internal/domain/stats"
	"github.com/preston-bernstein/fantasy-football-service/internal/domain/teams"
	"github.com/preston-bernstein/fantasy-football-service/internal/metrics"
	"github.com/preston-bernstein/fantasy-football-service/internal/providers"
	"github.com/preston-bernstein/fantasy-football-service/internal/testutil"
	"github.com/preston-bernstein/fantasy-football-service/internal/teststubs"
)

func newTestService(p providers.StatsProvider, rec *metrics.Recorder) *Service {
	logger, _ := testutil.NewBufferLogger()
	return NewService(p, nil, rec, logger)
}

func TestTeamStatsUnknownTeamSkipsUpstream(t *testing.T) {
	stub := &teststubs.StubProvider{}
	rec := metrics.NewRecorder()
	svc := newTestService(stub, rec)

	_, err := svc.TeamStats(context.Background(), "Atlantis", 2023)
	if !errors.Is(err, ErrUnknownTeam) {
		t.Fatalf("expected ErrUnknownTeam, got %v", err)
	}
	var unknown *UnknownTeamError
	if !errors.As(err, &unknown) || unknown.Name != "Atlantis" {
		t.Fatalf("expected unknown team name preserved, got %v", err)
	}
	if stub.FetchCalls.Load() != 0 {
		t.Fatalf("expected no upstream call, got %d", stub.FetchCalls.Load())
	}
	if rec.UnknownTeamLookups() != 1 {
		t.Fatalf("expected unknown lookup recorded")
	}
}

func TestTeamStatsResolvesNameCaseInsensitively(t *testing.T) {
	eaglesID, _ := teams.NFL.Resolve("eagles")
	stub := &teststubs.StubProvider{
		Seasons: map[string]stats.TeamSeason{eaglesID: testutil.SampleTeamSeason(eaglesID)},
	}
	svc := newTestService(stub, metrics.NewRecorder())

	for _, name := range []string{"Eagles", "PHILADELPHIA EAGLES", " phi "} {
		result, err := svc.TeamStats(context.Background(), name, 2023)
		if err != nil {
			t.Fatalf("%q: unexpected error: %v", name, err)
		}
		if result.ID != eaglesID {
			t.Fatalf("%q: expected id %s, got %s", name, eaglesID, result.ID)
		}
		id, year := stub.LastFetch()
		if id != eaglesID || year != 2023 {
			t.Fatalf("%q: unexpected fetch args %s %d", name, id, year)
		}
	}
}

func TestTeamStatsBuildsLineupAndRecordsEmptySlots(t *testing.T) {
	id, _ := teams.NFL.Resolve("bears")
	stub := &teststubs.StubProvider{
		Seasons: map[string]stats.TeamSeason{id: testutil.SampleTeamSeason(id)},
	}
	rec := metrics.NewRecorder()
	svc := newTestService(stub, rec)

	result, err := svc.TeamStats(context.Background(), "bears", 2023)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.IsPrediction {
		t.Fatalf("expected isPrediction false")
	}
	if result.Quarterback == nil || result.RunningBack == nil || result.TightEnd == nil {
		t.Fatalf("expected filled qb/rb/te slots, got %+v", result)
	}
	if len(result.Receivers) != 1 {
		t.Fatalf("expected one receiver, got %d", len(result.Receivers))
	}
	if rec.EmptySlots("receivers") != 1 {
		t.Fatalf("expected one empty receiver slot recorded, got %d", rec.EmptySlots("receivers"))
	}
	if rec.EmptySlots("quarterback") != 0 {
		t.Fatalf("expected no empty quarterback slot")
	}
}

func TestTeamStatsPropagatesUpstreamFailure(t *testing.T) {
	upstream := &providers.StatusError{Provider: "sportradar", StatusCode: 500}
	svc := newTestService(&teststubs.StubProvider{Err: upstream}, nil)

	_, err := svc.TeamStats(context.Background(), "Lions", 2023)
	if !providers.IsUpstreamFailure(err) {
		t.Fatalf("expected upstream failure, got %v", err)
	}
}

func TestTeamStatsRejectsNonPositiveSeason(t *testing.T) {
	stub := &teststubs.StubProvider{}
	svc := newTestService(stub, nil)

	if _, err := svc.TeamStats(context.Background(), "Lions", 0); !errors.Is(err, ErrInvalidSeason) {
		t.Fatalf("expected ErrInvalidSeason, got %v", err)
	}
	if stub.FetchCalls.Load() != 0 {
		t.Fatalf("expected no upstream call")
	}
}

func TestTeamStatsNilProvider(t *testing.T) {
	svc := newTestService(nil, nil)
	if _, err := svc.TeamStats(context.Background(), "Lions", 2023); !errors.Is(err, providers.ErrProviderUnavailable) {
		t.Fatalf("expected provider unavailable, got %v", err)
	}
	if _, err := svc.AllTeams(context.Background()); !errors.Is(err, providers.ErrProviderUnavailable) {
		t.Fatalf("expected provider unavailable, got %v", err)
	}
}

func TestAllTeamsReturnsProviderOrder(t *testing.T) {
	stub := &teststubs.StubProvider{Teams: []string{"Eagles", "Bears"}}
	svc := newTestService(stub, nil)

	names, err := svc.AllTeams(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(names) != 2 || names[0] != "Eagles" || names[1] != "Bears" {
		t.Fatalf("unexpected names %v", names)
	}
}

func TestAllTeamsNeverReturnsNil(t *testing.T) {
	svc := newTestService(&teststubs.StubProvider{}, nil)
	names, err := svc.AllTeams(context.Background())
	if err != nil || names == nil {
		t.Fatalf("expected empty non-nil list, got %v err %v", names, err)
	}
}

func TestNewServiceUsesCustomDirectory(t *testing.T) {
	dir := teams.NewDirectory([]teams.Team{{ID: "x-1", Name: "Testers", Market: "Unit", Alias: "UT"}})
	stub := &teststubs.StubProvider{Seasons: map[string]stats.TeamSeason{"x-1": testutil.SampleTeamSeason("x-1")}}
	svc := NewService(stub, dir, nil, nil)

	if _, err := svc.TeamStats(context.Background(), "unit testers", 2023); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := svc.TeamStats(context.Background(), "eagles", 2023); !errors.Is(err, ErrUnknownTeam) {
		t.Fatalf("expected eagles unknown in custom directory, got %v", err)
	}
}

func TestParseSeason(t *testing.T) {
	cases := []struct {
		raw     string
		want    int
		wantErr bool
	}{
		{"2023", 2023, false},
		{" 2021 ", 2021, false},
		{"0", 0, true},
		{"-5", 0, true},
		{"twenty", 0, true},
		{"", 0, true},
	}
	for _, c := range cases {
		got, err := ParseSeason(c.raw)
		if c.wantErr {
			if !errors.Is(err, ErrInvalidSeason) {
				t.Fatalf("%q: expected ErrInvalidSeason, got %v", c.raw, err)
			}
			continue
		}
		if err != nil || got != c.want {
			t.Fatalf("%q: expected %d, got %d err %v", c.raw, c.want, got, err)
		}
	}
}
