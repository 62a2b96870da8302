package prediction

import (
	"github.com/riskibarqy/match-predictor/internal/domain/match"
	"github.com/sourcegraph/conc/panics"
)

// DefaultFormWindow is how many rows of a team's history feed its form.
const DefaultFormWindow = 15

// FormSummary aggregates a team's recent results.
type FormSummary struct {
	Points            int
	GoalsScored       int
	GoalsConceded     int
	MatchesConsidered int
	// RowsInWindow counts every row inspected, decided or not.
	RowsInWindow int
}

func (f FormSummary) GoalDifference() int {
	return f.GoalsScored - f.GoalsConceded
}

// Aggregate folds the first window rows into a form summary for subject.
// Rows that do not parse or do not involve subject are skipped.
func Aggregate(rows []match.Record, subject string, window int, m match.TeamMatcher) FormSummary {
	if window <= 0 {
		window = DefaultFormWindow
	}
	if window > len(rows) {
		window = len(rows)
	}

	summary := FormSummary{RowsInWindow: window}
	for _, r := range rows[:window] {
		var catcher panics.Catcher
		catcher.Try(func() {
			accumulate(&summary, r, subject, m)
		})
	}
	return summary
}

func accumulate(summary *FormSummary, r match.Record, subject string, m match.TeamMatcher) {
	parsed, err := match.ParseRow(r)
	if err != nil {
		return
	}
	side := match.ResolveSide(m, subject, r)
	if side == match.SideNone {
		return
	}

	scored, conceded := parsed.Goals(side)
	switch {
	case scored > conceded:
		summary.Points += match.OutcomeWin.Points()
	case scored == conceded:
		summary.Points += match.OutcomeDraw.Points()
	}
	summary.GoalsScored += scored
	summary.GoalsConceded += conceded
	summary.MatchesConsidered++
}
