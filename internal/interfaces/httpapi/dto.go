package httpapi

import (
	"math"
	"strings"
	"time"

	"github.com/riskibarqy/match-predictor/internal/domain/match"
	"github.com/riskibarqy/match-predictor/internal/domain/prediction"
	"github.com/riskibarqy/match-predictor/internal/usecase"
)

type teamListDTO struct {
	Teams []string `json:"teams"`
}

type historyRowDTO struct {
	Date      string `json:"date,omitempty"`
	HomeTeam  string `json:"home_team"`
	AwayTeam  string `json:"away_team"`
	HomeScore *int   `json:"home_score"`
	AwayScore *int   `json:"away_score"`
	Outcome   string `json:"outcome"`
	Symbol    string `json:"symbol"`
}

type outcomeTallyDTO struct {
	Wins         int `json:"wins"`
	Draws        int `json:"draws"`
	Losses       int `json:"losses"`
	Unfinished   int `json:"unfinished"`
	Unidentified int `json:"unidentified"`
}

type teamHistoryDTO struct {
	Team    string          `json:"team"`
	Summary outcomeTallyDTO `json:"summary"`
	Form    formStripDTO    `json:"form"`
	Matches []historyRowDTO `json:"matches"`
}

type formStripDTO struct {
	Symbols []string `json:"symbols"`
	Line    string   `json:"line"`
}

type teamFormDTO struct {
	Team string `json:"team"`
	formStripDTO
}

type createPredictionRequest struct {
	HomeTeam string `json:"home_team" validate:"required,max=200"`
	AwayTeam string `json:"away_team" validate:"required,max=200"`
}

type formSummaryDTO struct {
	Points            int `json:"points"`
	GoalsScored       int `json:"goals_scored"`
	GoalsConceded     int `json:"goals_conceded"`
	GoalDifference    int `json:"goal_difference"`
	MatchesConsidered int `json:"matches_considered"`
	RowsInWindow      int `json:"rows_in_window"`
}

type predictionDTO struct {
	HomeTeam       string         `json:"home_team"`
	AwayTeam       string         `json:"away_team"`
	HomeGoals      int            `json:"home_goals"`
	AwayGoals      int            `json:"away_goals"`
	HomePossession float64        `json:"home_possession"`
	AwayPossession float64        `json:"away_possession"`
	Favored        string         `json:"favored"`
	Blowout        bool           `json:"blowout"`
	Narrative      string         `json:"narrative"`
	HomeForm       formSummaryDTO `json:"home_form"`
	AwayForm       formSummaryDTO `json:"away_form"`
}

type datasetReloadDTO struct {
	Rows int `json:"rows"`
}

func historyToDTO(history usecase.TeamHistory) teamHistoryDTO {
	rows := make([]historyRowDTO, 0, len(history.Rows))
	for _, row := range history.Rows {
		rows = append(rows, historyRowDTO{
			Date:      formatDate(row.Record.Date),
			HomeTeam:  row.Record.HomeTeam,
			AwayTeam:  row.Record.AwayTeam,
			HomeScore: scoreCell(row.Record.HomeScore),
			AwayScore: scoreCell(row.Record.AwayScore),
			Outcome:   string(row.Outcome),
			Symbol:    match.Glyph(row.Outcome),
		})
	}

	return teamHistoryDTO{
		Team: history.Team,
		Summary: outcomeTallyDTO{
			Wins:         history.Tally.Wins,
			Draws:        history.Tally.Draws,
			Losses:       history.Tally.Losses,
			Unfinished:   history.Tally.Unfinished,
			Unidentified: history.Tally.Unidentified,
		},
		Form:    formStrip(history.Form),
		Matches: rows,
	}
}

func formStrip(symbols []string) formStripDTO {
	if symbols == nil {
		symbols = []string{}
	}
	return formStripDTO{Symbols: symbols, Line: strings.Join(symbols, "")}
}

func predictionToDTO(p usecase.Prediction) predictionDTO {
	return predictionDTO{
		HomeTeam:       p.HomeTeam,
		AwayTeam:       p.AwayTeam,
		HomeGoals:      p.Result.HomeGoals,
		AwayGoals:      p.Result.AwayGoals,
		HomePossession: oneDecimal(p.Result.HomePossessionPct),
		AwayPossession: oneDecimal(p.Result.AwayPossessionPct),
		Favored:        string(p.Result.Favored),
		Blowout:        p.Result.Blowout,
		Narrative:      p.Narrative,
		HomeForm:       formSummaryToDTO(p.HomeForm),
		AwayForm:       formSummaryToDTO(p.AwayForm),
	}
}

func formSummaryToDTO(f prediction.FormSummary) formSummaryDTO {
	return formSummaryDTO{
		Points:            f.Points,
		GoalsScored:       f.GoalsScored,
		GoalsConceded:     f.GoalsConceded,
		GoalDifference:    f.GoalDifference(),
		MatchesConsidered: f.MatchesConsidered,
		RowsInWindow:      f.RowsInWindow,
	}
}

func scoreCell(raw string) *int {
	n, err := match.ParseScore(raw)
	if err != nil {
		return nil
	}
	return &n
}

func formatDate(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format("2006-01-02")
}

func oneDecimal(v float64) float64 {
	return math.Round(v*10) / 10
}
