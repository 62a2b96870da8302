package match

import (
	"errors"
	"time"
)

// Outcome is the result of a historical match from one team's point of view.
type Outcome string

const (
	OutcomeWin          Outcome = "win"
	OutcomeDraw         Outcome = "draw"
	OutcomeLoss         Outcome = "loss"
	OutcomeUnfinished   Outcome = "unfinished"
	OutcomeUnidentified Outcome = "unidentified"
)

// Points awards league points for a decided outcome.
func (o Outcome) Points() int {
	switch o {
	case OutcomeWin:
		return 3
	case OutcomeDraw:
		return 1
	default:
		return 0
	}
}

// Decided reports whether the outcome counts toward form.
func (o Outcome) Decided() bool {
	return o == OutcomeWin || o == OutcomeDraw || o == OutcomeLoss
}

// Side identifies which side of a fixture a team played on.
type Side string

const (
	SideHome Side = "home"
	SideAway Side = "away"
	SideNone Side = "none"
)

// Record is one row of the history dataset. Team is the club whose history
// the row belongs to; scores are kept as the raw cell text.
type Record struct {
	Team      string
	Date      time.Time
	HomeTeam  string
	AwayTeam  string
	HomeScore string
	AwayScore string
}

// ParsedRow is a Record whose scores are known non-negative integers.
type ParsedRow struct {
	Record
	HomeGoals int
	AwayGoals int
}

var (
	ErrRowParse       = errors.New("row parse failed")
	ErrDatasetMissing = errors.New("match dataset missing")
)

// TeamMatcher decides club identity across spelling variants.
type TeamMatcher interface {
	Equal(a, b string) bool
}
