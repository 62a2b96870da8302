package usecase

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/riskibarqy/match-predictor/internal/domain/match"
	matchmock "github.com/riskibarqy/match-predictor/internal/mocks/domain/match"
	"github.com/stretchr/testify/mock"
)

type stubProvider struct {
	mu          sync.Mutex
	teams       map[string][]ExternalTeam
	matches     map[int64][]ExternalMatch
	failTeamIDs map[int64]bool
	fetched     []int64
}

func (p *stubProvider) ListCompetitionTeams(_ context.Context, competition string) ([]ExternalTeam, error) {
	teams, ok := p.teams[competition]
	if !ok {
		return nil, errors.New("competition not available on this plan")
	}
	return teams, nil
}

func (p *stubProvider) ListTeamMatches(_ context.Context, teamID int64, _ int) ([]ExternalMatch, error) {
	p.mu.Lock()
	p.fetched = append(p.fetched, teamID)
	p.mu.Unlock()
	if p.failTeamIDs[teamID] {
		return nil, errors.New("rate limited")
	}
	return p.matches[teamID], nil
}

func intPtr(v int) *int { return &v }

func TestSyncService_Run(t *testing.T) {
	t.Parallel()

	kickoff := time.Date(2026, 9, 20, 15, 0, 0, 0, time.UTC)
	provider := &stubProvider{
		teams: map[string][]ExternalTeam{
			"PL": {{ID: 57, Name: "Arsenal FC"}, {ID: 61, Name: "Chelsea FC"}},
			"CL": {{ID: 57, Name: "Arsenal FC"}, {ID: 5, Name: "FC Bayern München"}},
		},
		matches: map[int64][]ExternalMatch{
			57: {
				{Date: kickoff, HomeTeam: "Arsenal FC", AwayTeam: "Chelsea FC", HomeScore: intPtr(2), AwayScore: intPtr(1)},
				{Date: kickoff.AddDate(0, 0, 7), HomeTeam: "Everton FC", AwayTeam: "Arsenal FC"},
			},
			61: {{Date: kickoff, HomeTeam: "Arsenal FC", AwayTeam: "Chelsea FC", HomeScore: intPtr(2), AwayScore: intPtr(1)}},
		},
		failTeamIDs: map[int64]bool{5: true},
	}

	var written []match.Record
	writer := matchmock.NewWriter(t)
	writer.On("ReplaceAll", mock.Anything, mock.Anything).
		Run(func(args mock.Arguments) { written = args.Get(1).([]match.Record) }).
		Return(nil).
		Once()

	service := NewSyncService(provider, SyncConfig{Competitions: []string{"PL", "CL", "XX"}, Workers: 2}, nil, writer)
	result, err := service.Run(context.Background())
	if err != nil {
		t.Fatalf("run sync: %v", err)
	}

	if result.Teams != 3 || result.FailedTeams != 1 || result.Records != 3 {
		t.Fatalf("unexpected result: %+v", result)
	}
	if len(provider.fetched) != 3 {
		t.Fatalf("expected each team fetched once, got %v", provider.fetched)
	}
	if len(written) != 3 {
		t.Fatalf("unexpected written rows: %d", len(written))
	}

	first := written[0]
	if first.Team != "Arsenal FC" || first.HomeTeam != "Everton FC" || first.HomeScore != "" {
		t.Fatalf("expected newest Arsenal row first, got %+v", first)
	}
	if written[1].HomeScore != "2" || written[1].AwayScore != "1" {
		t.Fatalf("unexpected scores: %+v", written[1])
	}
	if written[2].Team != "Chelsea FC" {
		t.Fatalf("expected Chelsea rows last, got %+v", written[2])
	}
}

func TestSyncService_Run_NoTeams(t *testing.T) {
	t.Parallel()

	writer := matchmock.NewWriter(t)
	service := NewSyncService(&stubProvider{}, SyncConfig{Competitions: []string{"PL"}}, nil, writer)
	if _, err := service.Run(context.Background()); !errors.Is(err, ErrDataUnavailable) {
		t.Fatalf("expected ErrDataUnavailable, got %v", err)
	}
}

func TestSyncService_Run_WriterError(t *testing.T) {
	t.Parallel()

	provider := &stubProvider{
		teams:   map[string][]ExternalTeam{"PL": {{ID: 1, Name: "Arsenal FC"}}},
		matches: map[int64][]ExternalMatch{1: {{HomeTeam: "Arsenal FC", AwayTeam: "Chelsea FC"}}},
	}
	writer := matchmock.NewWriter(t)
	writer.On("ReplaceAll", mock.Anything, mock.Anything).Return(errors.New("disk full")).Once()

	service := NewSyncService(provider, SyncConfig{Competitions: []string{"PL"}}, nil, writer)
	if _, err := service.Run(context.Background()); err == nil {
		t.Fatalf("expected writer error")
	}
}

type gatedProvider struct {
	release  chan struct{}
	finished atomic.Bool
}

func (p *gatedProvider) ListCompetitionTeams(context.Context, string) ([]ExternalTeam, error) {
	return nil, nil
}

func (p *gatedProvider) ListTeamMatches(context.Context, int64, int) ([]ExternalMatch, error) {
	<-p.release
	p.finished.Store(true)
	return []ExternalMatch{{HomeTeam: "Arsenal FC", AwayTeam: "Chelsea FC"}}, nil
}

func TestSyncService_FetchWaitsForAcceptedTasksOnSubmitError(t *testing.T) {
	t.Parallel()

	provider := &gatedProvider{release: make(chan struct{})}
	service := NewSyncService(provider, SyncConfig{Competitions: []string{"PL"}}, nil)

	submitted := 0
	submit := func(task func()) error {
		submitted++
		if submitted > 1 {
			return errors.New("pool overloaded")
		}
		go task()
		return nil
	}
	go func() {
		time.Sleep(20 * time.Millisecond)
		close(provider.release)
	}()

	teams := []ExternalTeam{{ID: 57, Name: "Arsenal FC"}, {ID: 61, Name: "Chelsea FC"}}
	if _, _, err := service.fetchWith(context.Background(), teams, submit); err == nil {
		t.Fatalf("expected submit error")
	}
	if !provider.finished.Load() {
		t.Fatalf("fetch returned before the accepted task finished")
	}
}
