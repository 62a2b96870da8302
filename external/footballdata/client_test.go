package footballdata

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/riskibarqy/match-predictor/internal/platform/logging"
	"github.com/riskibarqy/match-predictor/internal/platform/resilience"
)

func newTestClient(t *testing.T, handler http.HandlerFunc, breaker resilience.BreakerConfig) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return NewClient(ClientConfig{
		BaseURL:      srv.URL,
		Token:        "secret",
		Timeout:      2 * time.Second,
		MaxRetries:   2,
		RetryBackoff: time.Millisecond,
		Breaker:      breaker,
		Logger:       logging.NewNop(),
	})
}

func TestListCompetitionTeams(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/competitions/PL/teams" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		if got := r.Header.Get(authHeader); got != "secret" {
			t.Errorf("unexpected auth header %q", got)
		}
		_, _ = w.Write([]byte(`{"count":3,"teams":[
			{"id":57,"name":"Arsenal FC","tla":"ARS"},
			{"id":0,"name":"Ghost"},
			{"id":65,"name":" Manchester City FC "}]}`))
	}, resilience.BreakerConfig{})

	teams, err := client.ListCompetitionTeams(context.Background(), " pl ")
	if err != nil {
		t.Fatalf("ListCompetitionTeams: %v", err)
	}
	if len(teams) != 2 {
		t.Fatalf("expected 2 teams, got %d", len(teams))
	}
	if teams[0].ID != 57 || teams[0].Name != "Arsenal FC" {
		t.Fatalf("unexpected first team %+v", teams[0])
	}
	if teams[1].Name != "Manchester City FC" {
		t.Fatalf("expected trimmed name, got %q", teams[1].Name)
	}
}

func TestListCompetitionTeamsRequiresCode(t *testing.T) {
	client := NewClient(ClientConfig{Logger: logging.NewNop()})
	if _, err := client.ListCompetitionTeams(context.Background(), "  "); err == nil {
		t.Fatalf("expected error for blank competition")
	}
}

func TestListTeamMatches(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/teams/57/matches" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		if got := r.URL.Query().Get("status"); got != "FINISHED" {
			t.Errorf("expected status filter, got %q", got)
		}
		if got := r.URL.Query().Get("limit"); got != "15" {
			t.Errorf("expected limit 15, got %q", got)
		}
		_, _ = w.Write([]byte(`{"matches":[
			{"id":1,"utcDate":"2026-08-17T14:00:00Z","status":"FINISHED",
			 "homeTeam":{"id":57,"name":"Arsenal FC"},"awayTeam":{"id":76,"name":"Wolverhampton Wanderers FC"},
			 "score":{"winner":"HOME_TEAM","fullTime":{"home":2,"away":0}}},
			{"id":2,"utcDate":"not-a-date","status":"POSTPONED",
			 "homeTeam":{"id":34,"name":"Newcastle United FC"},"awayTeam":{"id":57,"name":"Arsenal FC"},
			 "score":{"winner":null,"fullTime":{"home":null,"away":null}}}]}`))
	}, resilience.BreakerConfig{})

	matches, err := client.ListTeamMatches(context.Background(), 57, 15)
	if err != nil {
		t.Fatalf("ListTeamMatches: %v", err)
	}
	if len(matches) != 2 {
		t.Fatalf("expected 2 matches, got %d", len(matches))
	}

	first := matches[0]
	if first.HomeTeam != "Arsenal FC" || first.AwayTeam != "Wolverhampton Wanderers FC" {
		t.Fatalf("unexpected teams %+v", first)
	}
	if first.HomeScore == nil || *first.HomeScore != 2 || first.AwayScore == nil || *first.AwayScore != 0 {
		t.Fatalf("unexpected score %+v", first)
	}
	if want := time.Date(2026, 8, 17, 14, 0, 0, 0, time.UTC); !first.Date.Equal(want) {
		t.Fatalf("expected date %v, got %v", want, first.Date)
	}

	second := matches[1]
	if !second.Date.IsZero() {
		t.Fatalf("expected zero date for unparseable value, got %v", second.Date)
	}
	if second.HomeScore != nil || second.AwayScore != nil {
		t.Fatalf("expected nil scores, got %+v", second)
	}
}

func TestRetriesTransientStatus(t *testing.T) {
	var calls atomic.Int32
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if calls.Add(1) < 3 {
			w.WriteHeader(http.StatusTooManyRequests)
			return
		}
		_, _ = w.Write([]byte(`{"teams":[{"id":57,"name":"Arsenal FC"}]}`))
	}, resilience.BreakerConfig{})

	teams, err := client.ListCompetitionTeams(context.Background(), "PL")
	if err != nil {
		t.Fatalf("expected success after retries, got %v", err)
	}
	if len(teams) != 1 {
		t.Fatalf("expected 1 team, got %d", len(teams))
	}
	if got := calls.Load(); got != 3 {
		t.Fatalf("expected 3 calls, got %d", got)
	}
}

func TestDoesNotRetryClientError(t *testing.T) {
	var calls atomic.Int32
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusForbidden)
		_, _ = w.Write([]byte(`{"message":"restricted"}`))
	}, resilience.BreakerConfig{})

	_, err := client.ListCompetitionTeams(context.Background(), "CL")
	if err == nil {
		t.Fatalf("expected error")
	}
	if IsTransient(err) {
		t.Fatalf("403 must not be transient: %v", err)
	}
	if got := calls.Load(); got != 1 {
		t.Fatalf("expected a single call, got %d", got)
	}
}

func TestBreakerOpensAfterTransientFailures(t *testing.T) {
	var calls atomic.Int32
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusBadGateway)
	}, resilience.BreakerConfig{Enabled: true, FailureThreshold: 1, OpenTimeout: time.Minute, HalfOpenTrials: 1})

	_, err := client.ListTeamMatches(context.Background(), 57, 5)
	if err == nil || !IsTransient(err) {
		t.Fatalf("expected transient error, got %v", err)
	}
	before := calls.Load()

	_, err = client.ListTeamMatches(context.Background(), 57, 5)
	if err == nil || !IsTransient(err) {
		t.Fatalf("expected rejected request, got %v", err)
	}
	if got := calls.Load(); got != before {
		t.Fatalf("open breaker must not reach the provider, calls went %d -> %d", before, got)
	}
}

func TestAbbreviateBody(t *testing.T) {
	long := make([]byte, 300)
	for i := range long {
		long[i] = 'x'
	}
	if got := abbreviateBody(long); len(got) != 259 {
		t.Fatalf("expected truncated body, got len %d", len(got))
	}
	if got := abbreviateBody([]byte("  ok ")); got != "ok" {
		t.Fatalf("expected trimmed body, got %q", got)
	}
}
