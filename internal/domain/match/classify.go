package match

import (
	"github.com/sourcegraph/conc/panics"
)

// ResolveSide finds the side the subject played on. Home wins ties.
func ResolveSide(m TeamMatcher, subject string, r Record) Side {
	switch {
	case m.Equal(subject, r.HomeTeam):
		return SideHome
	case m.Equal(subject, r.AwayTeam):
		return SideAway
	default:
		return SideNone
	}
}

// Goals returns the subject's goals for and against on side.
func (p ParsedRow) Goals(side Side) (scored, conceded int) {
	switch side {
	case SideHome:
		return p.HomeGoals, p.AwayGoals
	case SideAway:
		return p.AwayGoals, p.HomeGoals
	default:
		return 0, 0
	}
}

// Classify labels one row from the subject's perspective. A row that fails
// to parse, or panics while being examined, is Unfinished.
func Classify(m TeamMatcher, subject string, r Record) Outcome {
	outcome := OutcomeUnfinished
	var catcher panics.Catcher
	catcher.Try(func() {
		outcome = classify(m, subject, r)
	})
	if catcher.Recovered() != nil {
		return OutcomeUnfinished
	}
	return outcome
}

func classify(m TeamMatcher, subject string, r Record) Outcome {
	row, err := ParseRow(r)
	if err != nil {
		return OutcomeUnfinished
	}

	side := ResolveSide(m, subject, r)
	if side == SideNone {
		return OutcomeUnidentified
	}

	scored, conceded := row.Goals(side)
	switch {
	case scored > conceded:
		return OutcomeWin
	case scored < conceded:
		return OutcomeLoss
	default:
		return OutcomeDraw
	}
}
