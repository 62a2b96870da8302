package memory

import (
	"time"

	"github.com/riskibarqy/match-predictor/internal/domain/match"
)

func seedDay(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

// SeedMatches is a small demo dataset used when no CSV or database is
// configured. Team names are spelled the way scraped sources spell them.
func SeedMatches() []match.Record {
	return []match.Record{
		{Team: "Arsenal", Date: seedDay(2026, 8, 16), HomeTeam: "Arsenal FC", AwayTeam: "Chelsea", HomeScore: "2", AwayScore: "1"},
		{Team: "Arsenal", Date: seedDay(2026, 8, 23), HomeTeam: "Liverpool FC", AwayTeam: "Arsenal", HomeScore: "1", AwayScore: "1"},
		{Team: "Arsenal", Date: seedDay(2026, 8, 30), HomeTeam: "Arsenal", AwayTeam: "Man City", HomeScore: "0", AwayScore: "2"},
		{Team: "Arsenal", Date: seedDay(2026, 9, 13), HomeTeam: "Tottenham Hotspur", AwayTeam: "Arsenal FC", HomeScore: "", AwayScore: ""},
		{Team: "Manchester City", Date: seedDay(2026, 8, 16), HomeTeam: "Manchester City", AwayTeam: "Everton", HomeScore: "3", AwayScore: "0"},
		{Team: "Manchester City", Date: seedDay(2026, 8, 30), HomeTeam: "Arsenal", AwayTeam: "Man City", HomeScore: "0", AwayScore: "2"},
		{Team: "Manchester City", Date: seedDay(2026, 9, 6), HomeTeam: "Manchester United", AwayTeam: "Manchester City", HomeScore: "2", AwayScore: "2"},
		{Team: "Real Madrid", Date: seedDay(2026, 8, 17), HomeTeam: "Real Madrid CF", AwayTeam: "Atletico Madrid", HomeScore: "1", AwayScore: "0"},
		{Team: "Real Madrid", Date: seedDay(2026, 8, 24), HomeTeam: "FC Barcelona", AwayTeam: "Real Madrid", HomeScore: "2", AwayScore: "3"},
		{Team: "Bayern Munich", Date: seedDay(2026, 8, 22), HomeTeam: "FC Bayern München", AwayTeam: "Borussia Dortmund", HomeScore: "4", AwayScore: "1"},
		{Team: "Bayern Munich", Date: seedDay(2026, 8, 29), HomeTeam: "RB Leipzig", AwayTeam: "Bayern", HomeScore: "1", AwayScore: "1"},
		{Team: "Paris Saint-Germain", Date: seedDay(2026, 8, 15), HomeTeam: "PSG", AwayTeam: "Olympique Lyonnais", HomeScore: "2", AwayScore: "0"},
	}
}
