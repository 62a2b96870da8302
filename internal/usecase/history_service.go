package usecase

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/riskibarqy/match-predictor/internal/domain/match"
	"github.com/riskibarqy/match-predictor/internal/platform/logging"
	"go.opentelemetry.io/otel/attribute"
)

// HistoryRow is one dataset row labelled from the selected team's side.
type HistoryRow struct {
	Record  match.Record
	Outcome match.Outcome
}

type OutcomeTally struct {
	Wins         int
	Draws        int
	Losses       int
	Unfinished   int
	Unidentified int
}

func (t *OutcomeTally) add(o match.Outcome) {
	switch o {
	case match.OutcomeWin:
		t.Wins++
	case match.OutcomeDraw:
		t.Draws++
	case match.OutcomeLoss:
		t.Losses++
	case match.OutcomeUnidentified:
		t.Unidentified++
	default:
		t.Unfinished++
	}
}

type TeamHistory struct {
	Team  string
	Rows  []HistoryRow
	Tally OutcomeTally
	Form  []string
}

type HistoryService struct {
	dataset    DatasetReader
	matcher    match.TeamMatcher
	formLength int
	logger     *logging.Logger
}

func NewHistoryService(dataset DatasetReader, matcher match.TeamMatcher, formLength int, logger *logging.Logger) *HistoryService {
	if formLength <= 0 {
		formLength = match.DefaultFormLength
	}
	if logger == nil {
		logger = logging.Default()
	}
	return &HistoryService{
		dataset:    dataset,
		matcher:    matcher,
		formLength: formLength,
		logger:     logger,
	}
}

// ListTeams returns the distinct subject teams of the dataset, sorted.
func (s *HistoryService) ListTeams(ctx context.Context) ([]string, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.HistoryService.ListTeams")
	defer span.End()

	records, err := s.dataset.Records(ctx)
	if err != nil {
		return nil, err
	}

	seen := make(map[string]struct{})
	teams := make([]string, 0)
	for _, r := range records {
		name := strings.TrimSpace(r.Team)
		if name == "" {
			continue
		}
		if _, ok := seen[name]; ok {
			continue
		}
		seen[name] = struct{}{}
		teams = append(teams, name)
	}
	sort.Strings(teams)
	return teams, nil
}

// HistoryFor classifies every row filed under team, most recent first.
// An empty dataset yields an empty history; an unknown team is ErrNotFound.
func (s *HistoryService) HistoryFor(ctx context.Context, team string) (TeamHistory, error) {
	team = strings.TrimSpace(team)
	ctx, span := startUsecaseSpan(ctx, "usecase.HistoryService.HistoryFor", attribute.String("team", team))
	defer span.End()

	if team == "" {
		return TeamHistory{}, fmt.Errorf("%w: team is required", ErrInvalidInput)
	}

	records, err := s.dataset.Records(ctx)
	if err != nil {
		return TeamHistory{}, err
	}

	if len(records) == 0 {
		return TeamHistory{Team: team, Rows: []HistoryRow{}, Form: []string{}}, nil
	}

	rows := filterByTeam(records, team)
	if len(rows) == 0 {
		return TeamHistory{}, fmt.Errorf("%w: no matches recorded for team %q", ErrNotFound, team)
	}
	sort.SliceStable(rows, func(i, j int) bool {
		return rows[i].Date.After(rows[j].Date)
	})

	history := TeamHistory{
		Team: team,
		Rows: make([]HistoryRow, 0, len(rows)),
	}
	outcomes := make([]match.Outcome, 0, len(rows))
	for _, r := range rows {
		outcome := match.Classify(s.matcher, team, r)
		history.Rows = append(history.Rows, HistoryRow{Record: r, Outcome: outcome})
		history.Tally.add(outcome)
		outcomes = append(outcomes, outcome)
	}
	history.Form = match.FormSymbols(outcomes, s.formLength)

	if history.Tally.Unidentified > 0 {
		s.logger.WarnContext(ctx, "history rows did not match either side",
			"team", team,
			"unidentified", history.Tally.Unidentified,
		)
	}
	return history, nil
}

// FormFor returns the glyph strip for the n most recent matches of team.
func (s *HistoryService) FormFor(ctx context.Context, team string, n int) ([]string, error) {
	history, err := s.HistoryFor(ctx, team)
	if err != nil {
		return nil, err
	}

	outcomes := make([]match.Outcome, 0, len(history.Rows))
	for _, row := range history.Rows {
		outcomes = append(outcomes, row.Outcome)
	}
	if n <= 0 {
		n = s.formLength
	}
	return match.FormSymbols(outcomes, n), nil
}

// filterByTeam keeps rows filed under team, in dataset order.
func filterByTeam(records []match.Record, team string) []match.Record {
	out := make([]match.Record, 0)
	for _, r := range records {
		if strings.TrimSpace(r.Team) == team {
			out = append(out, r)
		}
	}
	return out
}
