package footballdata

import (
	"strings"
	"time"

	"github.com/riskibarqy/match-predictor/internal/usecase"
)

type teamsEnvelope struct {
	Count int       `json:"count"`
	Teams []teamRef `json:"teams"`
}

type teamRef struct {
	ID        int64  `json:"id"`
	Name      string `json:"name"`
	ShortName string `json:"shortName"`
	TLA       string `json:"tla"`
}

type matchesEnvelope struct {
	Matches []matchItem `json:"matches"`
}

type matchItem struct {
	ID       int64      `json:"id"`
	UTCDate  string     `json:"utcDate"`
	Status   string     `json:"status"`
	HomeTeam teamRef    `json:"homeTeam"`
	AwayTeam teamRef    `json:"awayTeam"`
	Score    matchScore `json:"score"`
}

type matchScore struct {
	Winner   string    `json:"winner"`
	FullTime scorePair `json:"fullTime"`
}

type scorePair struct {
	Home *int `json:"home"`
	Away *int `json:"away"`
}

func (m matchItem) toExternal() usecase.ExternalMatch {
	var date time.Time
	if parsed, err := time.Parse(time.RFC3339, strings.TrimSpace(m.UTCDate)); err == nil {
		date = parsed.UTC()
	}
	return usecase.ExternalMatch{
		Date:      date,
		HomeTeam:  strings.TrimSpace(m.HomeTeam.Name),
		AwayTeam:  strings.TrimSpace(m.AwayTeam.Name),
		HomeScore: m.Score.FullTime.Home,
		AwayScore: m.Score.FullTime.Away,
	}
}
