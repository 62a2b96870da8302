package usecase

import (
	"context"
	"fmt"
	"sort"
	"strconv"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"github.com/panjf2000/ants/v2"
	"github.com/riskibarqy/match-predictor/internal/domain/match"
	"github.com/riskibarqy/match-predictor/internal/platform/logging"
	"github.com/sourcegraph/conc/pool"
)

type ExternalTeam struct {
	ID   int64
	Name string
}

type ExternalMatch struct {
	Date      time.Time
	HomeTeam  string
	AwayTeam  string
	HomeScore *int
	AwayScore *int
}

// MatchProvider is the remote source of finished matches.
type MatchProvider interface {
	ListCompetitionTeams(ctx context.Context, competition string) ([]ExternalTeam, error)
	ListTeamMatches(ctx context.Context, teamID int64, limit int) ([]ExternalMatch, error)
}

type SyncConfig struct {
	Competitions []string
	Workers      int
	MatchLimit   int
}

type SyncResult struct {
	Competitions int
	Teams        int
	FailedTeams  int
	Records      int
	Duration     time.Duration
}

// SyncService pulls per-team match lists and replaces the stored dataset.
type SyncService struct {
	provider MatchProvider
	writers  []match.Writer
	cfg      SyncConfig
	logger   *logging.Logger
}

func NewSyncService(provider MatchProvider, cfg SyncConfig, logger *logging.Logger, writers ...match.Writer) *SyncService {
	if cfg.Workers < 1 {
		cfg.Workers = 4
	}
	if cfg.MatchLimit < 1 {
		cfg.MatchLimit = 50
	}
	if logger == nil {
		logger = logging.Default()
	}
	return &SyncService{
		provider: provider,
		writers:  writers,
		cfg:      cfg,
		logger:   logger,
	}
}

type competitionTeams struct {
	code  string
	teams []ExternalTeam
	err   error
}

func (s *SyncService) Run(ctx context.Context) (SyncResult, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.SyncService.Run")
	defer span.End()

	started := time.Now()
	if s.provider == nil {
		return SyncResult{}, fmt.Errorf("%w: match provider is not configured", ErrDataUnavailable)
	}
	if len(s.writers) == 0 {
		return SyncResult{}, fmt.Errorf("%w: no dataset writer configured", ErrInvalidInput)
	}

	teams := s.collectTeams(ctx)
	if len(teams) == 0 {
		return SyncResult{}, fmt.Errorf("%w: no teams returned for competitions %v", ErrDataUnavailable, s.cfg.Competitions)
	}

	records, failed, err := s.fetchMatches(ctx, teams)
	if err != nil {
		return SyncResult{}, err
	}
	if len(records) == 0 {
		return SyncResult{}, fmt.Errorf("%w: no matches fetched for %d team(s)", ErrDataUnavailable, len(teams))
	}

	sort.SliceStable(records, func(i, j int) bool {
		if records[i].Team != records[j].Team {
			return records[i].Team < records[j].Team
		}
		return records[i].Date.After(records[j].Date)
	})

	for _, w := range s.writers {
		if err := w.ReplaceAll(ctx, records); err != nil {
			return SyncResult{}, fmt.Errorf("write match dataset: %w", err)
		}
	}

	result := SyncResult{
		Competitions: len(s.cfg.Competitions),
		Teams:        len(teams),
		FailedTeams:  failed,
		Records:      len(records),
		Duration:     time.Since(started),
	}
	s.logger.InfoContext(ctx, "match dataset synced",
		"competitions", result.Competitions,
		"teams", result.Teams,
		"failed_teams", result.FailedTeams,
		"records", result.Records,
		"duration_ms", result.Duration.Milliseconds(),
	)
	return result, nil
}

// collectTeams lists every competition concurrently and dedupes teams by id.
func (s *SyncService) collectTeams(ctx context.Context) []ExternalTeam {
	p := pool.NewWithResults[competitionTeams]().WithMaxGoroutines(s.cfg.Workers)
	for _, code := range s.cfg.Competitions {
		code := strings.TrimSpace(code)
		if code == "" {
			continue
		}
		p.Go(func() competitionTeams {
			teams, err := s.provider.ListCompetitionTeams(ctx, code)
			return competitionTeams{code: code, teams: teams, err: err}
		})
	}

	seen := make(map[int64]struct{})
	out := make([]ExternalTeam, 0)
	for _, item := range p.Wait() {
		if item.err != nil {
			s.logger.WarnContext(ctx, "list competition teams failed", "competition", item.code, "error", item.err)
			continue
		}
		for _, t := range item.teams {
			if _, ok := seen[t.ID]; ok || strings.TrimSpace(t.Name) == "" {
				continue
			}
			seen[t.ID] = struct{}{}
			out = append(out, t)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

func (s *SyncService) fetchMatches(ctx context.Context, teams []ExternalTeam) ([]match.Record, int, error) {
	workers, err := ants.NewPool(s.cfg.Workers)
	if err != nil {
		return nil, 0, fmt.Errorf("create worker pool: %w", err)
	}
	defer workers.Release()

	return s.fetchWith(ctx, teams, workers.Submit)
}

// fetchWith runs one fetch per team through submit. It always waits for
// every accepted task before returning.
func (s *SyncService) fetchWith(ctx context.Context, teams []ExternalTeam, submit func(func()) error) ([]match.Record, int, error) {
	var (
		mu      sync.Mutex
		records []match.Record
		failed  atomic.Int32
		wg      sync.WaitGroup
	)
	for _, t := range teams {
		wg.Add(1)
		if err := submit(func() {
			defer wg.Done()

			items, err := s.provider.ListTeamMatches(ctx, t.ID, s.cfg.MatchLimit)
			if err != nil {
				failed.Add(1)
				s.logger.WarnContext(ctx, "list team matches failed", "team_id", t.ID, "team", t.Name, "error", err)
				return
			}

			rows := make([]match.Record, 0, len(items))
			for _, item := range items {
				rows = append(rows, toRecord(t.Name, item))
			}
			mu.Lock()
			records = append(records, rows...)
			mu.Unlock()
		}); err != nil {
			wg.Done()
			wg.Wait()
			return nil, 0, fmt.Errorf("submit team fetch to worker pool: %w", err)
		}
	}
	wg.Wait()

	return records, int(failed.Load()), nil
}

func toRecord(team string, m ExternalMatch) match.Record {
	return match.Record{
		Team:      team,
		Date:      m.Date,
		HomeTeam:  m.HomeTeam,
		AwayTeam:  m.AwayTeam,
		HomeScore: formatScore(m.HomeScore),
		AwayScore: formatScore(m.AwayScore),
	}
}

func formatScore(v *int) string {
	if v == nil {
		return ""
	}
	return strconv.Itoa(*v)
}
