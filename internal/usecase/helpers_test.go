package usecase

import (
	"context"
	"sync/atomic"
	"time"

	"github.com/riskibarqy/match-predictor/internal/domain/match"
)

type stubDataset struct {
	records []match.Record
	err     error
	calls   atomic.Int32
}

func (s *stubDataset) Records(context.Context) ([]match.Record, error) {
	s.calls.Add(1)
	if s.err != nil {
		return nil, s.err
	}
	return append([]match.Record(nil), s.records...), nil
}

// midpointSource returns interval midpoints and distribution means, and
// never rolls a blowout.
type midpointSource struct{}

func (midpointSource) Uniform(lo, hi float64) float64 {
	if lo == 0 && hi == 1 {
		return 0.99
	}
	return (lo + hi) / 2
}

func (midpointSource) Normal(mean, _ float64) float64 { return mean }

func onDay(s string) time.Time {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		panic(err)
	}
	return t
}

// sampleRecords is in dataset order, not date order.
func sampleRecords() []match.Record {
	return []match.Record{
		{Team: "Arsenal", Date: onDay("2026-08-10"), HomeTeam: "Arsenal FC", AwayTeam: "Chelsea", HomeScore: "2", AwayScore: "1"},
		{Team: "Arsenal", Date: onDay("2026-08-24"), HomeTeam: "Liverpool", AwayTeam: "Arsenal", HomeScore: "0", AwayScore: "0"},
		{Team: "Arsenal", Date: onDay("2026-09-14"), HomeTeam: "Arsenal", AwayTeam: "Everton", HomeScore: "", AwayScore: ""},
		{Team: "Arsenal", Date: onDay("2026-09-01"), HomeTeam: "Barcelona", AwayTeam: "Sevilla", HomeScore: "3", AwayScore: "0"},
		{Team: "Chelsea", Date: onDay("2026-08-31"), HomeTeam: "Chelsea", AwayTeam: "Tottenham", HomeScore: "1", AwayScore: "1"},
	}
}
