package prediction

import (
	"math"

	"github.com/riskibarqy/match-predictor/internal/domain/match"
)

const (
	maxExpectedGoals = 7.0
	blowoutChance    = 0.2
	homeBaseGoals    = 1.6
	awayBaseGoals    = 1.2
	deltaWeight      = 0.08
)

// PredictInput carries both teams' form. HomeMatches and AwayMatches are the
// row counts used as the per-match divisor in the form index.
type PredictInput struct {
	HomeForm       FormSummary
	AwayForm       FormSummary
	HomeMatches    int
	AwayMatches    int
	HomePossession float64
}

type Result struct {
	HomeGoals         int
	AwayGoals         int
	HomePossessionPct float64
	AwayPossessionPct float64
	Favored           match.Side
	Blowout           bool
}

// FormIndex blends points per match, goal difference and the possession edge.
func FormIndex(form FormSummary, matches int, possession float64) float64 {
	perMatch := float64(form.Points) / float64(max(matches, 1))
	return perMatch + float64(form.GoalDifference())*0.3 + (possession-50)*0.05
}

// Predict draws a scoreline. Draw order: surprise, home goals, away goals,
// blowout roll, then the two blowout margins.
func Predict(in PredictInput, rnd RandomSource) Result {
	homePos, awayPos := SplitPossession(in.HomePossession)
	delta := FormIndex(in.HomeForm, in.HomeMatches, homePos) - FormIndex(in.AwayForm, in.AwayMatches, awayPos)

	surprise := rnd.Uniform(-0.5, 0.5)
	homeExpected := clamp(rnd.Normal(homeBaseGoals+delta*deltaWeight+surprise, 0.9), 0, maxExpectedGoals)
	awayExpected := clamp(rnd.Normal(awayBaseGoals-delta*deltaWeight-surprise, 1.0), 0, maxExpectedGoals)

	result := Result{
		HomeGoals:         int(math.RoundToEven(homeExpected)),
		AwayGoals:         int(math.RoundToEven(awayExpected)),
		HomePossessionPct: homePos,
		AwayPossessionPct: awayPos,
	}

	if rnd.Uniform(0, 1) < blowoutChance {
		result.Blowout = true
		result.HomeGoals += pick(rnd, 1, 2, 3)
		result.AwayGoals += pick(rnd, 0, 1, 2)
	}

	result.Favored = Favored(result.HomeGoals, result.AwayGoals)
	return result
}

func Favored(homeGoals, awayGoals int) match.Side {
	switch {
	case homeGoals > awayGoals:
		return match.SideHome
	case awayGoals > homeGoals:
		return match.SideAway
	default:
		return match.SideNone
	}
}
