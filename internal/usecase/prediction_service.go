package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/riskibarqy/match-predictor/internal/domain/match"
	"github.com/riskibarqy/match-predictor/internal/domain/prediction"
	"github.com/riskibarqy/match-predictor/internal/platform/logging"
	"go.opentelemetry.io/otel/attribute"
)

type Prediction struct {
	HomeTeam  string
	AwayTeam  string
	HomeForm  prediction.FormSummary
	AwayForm  prediction.FormSummary
	Result    prediction.Result
	Narrative string
}

type PredictionService struct {
	dataset DatasetReader
	matcher match.TeamMatcher
	rnd     prediction.RandomSource
	window  int
	logger  *logging.Logger
}

func NewPredictionService(
	dataset DatasetReader,
	matcher match.TeamMatcher,
	rnd prediction.RandomSource,
	window int,
	logger *logging.Logger,
) *PredictionService {
	if rnd == nil {
		rnd = prediction.NewTimeSeededSource()
	}
	if window <= 0 {
		window = prediction.DefaultFormWindow
	}
	if logger == nil {
		logger = logging.Default()
	}
	return &PredictionService{
		dataset: dataset,
		matcher: matcher,
		rnd:     rnd,
		window:  window,
		logger:  logger,
	}
}

// Predict draws a scoreline for home vs away from each team's recent rows.
func (s *PredictionService) Predict(ctx context.Context, home, away string) (Prediction, error) {
	home = strings.TrimSpace(home)
	away = strings.TrimSpace(away)
	ctx, span := startUsecaseSpan(ctx, "usecase.PredictionService.Predict",
		attribute.String("home_team", home),
		attribute.String("away_team", away),
	)
	defer span.End()

	if home == "" || away == "" {
		return Prediction{}, fmt.Errorf("%w: both home and away teams are required", ErrInvalidInput)
	}
	if home == away {
		return Prediction{}, fmt.Errorf("%w: choose two different teams", ErrInvalidInput)
	}

	records, err := s.dataset.Records(ctx)
	if err != nil {
		return Prediction{}, err
	}

	homeRows, err := s.recentRows(records, home)
	if err != nil {
		return Prediction{}, err
	}
	awayRows, err := s.recentRows(records, away)
	if err != nil {
		return Prediction{}, err
	}

	homeForm := prediction.Aggregate(homeRows, home, s.window, s.matcher)
	awayForm := prediction.Aggregate(awayRows, away, s.window, s.matcher)
	possession := prediction.EstimatePossession(home, float64(homeForm.Points), s.rnd)

	result := prediction.Predict(prediction.PredictInput{
		HomeForm:       homeForm,
		AwayForm:       awayForm,
		HomeMatches:    homeForm.RowsInWindow,
		AwayMatches:    awayForm.RowsInWindow,
		HomePossession: possession,
	}, s.rnd)

	s.logger.DebugContext(ctx, "prediction drawn",
		"home_team", home,
		"away_team", away,
		"home_goals", result.HomeGoals,
		"away_goals", result.AwayGoals,
		"blowout", result.Blowout,
	)

	return Prediction{
		HomeTeam:  home,
		AwayTeam:  away,
		HomeForm:  homeForm,
		AwayForm:  awayForm,
		Result:    result,
		Narrative: Narrative(home, away, result),
	}, nil
}

// recentRows returns the first window rows filed under team, in dataset order.
func (s *PredictionService) recentRows(records []match.Record, team string) ([]match.Record, error) {
	rows := filterByTeam(records, team)
	if len(rows) == 0 {
		return nil, fmt.Errorf("%w: no matches recorded for team %q", ErrNotFound, team)
	}
	if len(rows) > s.window {
		rows = rows[:s.window]
	}
	return rows, nil
}

// Narrative summarizes who the drawn scoreline favors.
func Narrative(home, away string, result prediction.Result) string {
	switch result.Favored {
	case match.SideHome:
		return fmt.Sprintf("%s is favored", home)
	case match.SideAway:
		return fmt.Sprintf("%s looks stronger", away)
	default:
		return "Balanced match, a draw is possible"
	}
}
