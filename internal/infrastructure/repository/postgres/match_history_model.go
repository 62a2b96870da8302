package postgres

import (
	"database/sql"
	"strconv"
	"time"

	"github.com/riskibarqy/match-predictor/internal/domain/match"
)

const matchHistoryTable = "match_history"

var matchHistoryColumns = []string{"team", "match_date", "home_team", "away_team", "home_score", "away_score"}

type matchHistoryTableModel struct {
	ID        int64         `db:"id"`
	Team      string        `db:"team"`
	MatchDate sql.NullTime  `db:"match_date"`
	HomeTeam  string        `db:"home_team"`
	AwayTeam  string        `db:"away_team"`
	HomeScore sql.NullInt64 `db:"home_score"`
	AwayScore sql.NullInt64 `db:"away_score"`
	CreatedAt time.Time     `db:"created_at"`
}

func (m matchHistoryTableModel) toDomain() match.Record {
	var date time.Time
	if m.MatchDate.Valid {
		date = m.MatchDate.Time.UTC()
	}
	return match.Record{
		Team:      m.Team,
		Date:      date,
		HomeTeam:  m.HomeTeam,
		AwayTeam:  m.AwayTeam,
		HomeScore: nullIntToCell(m.HomeScore),
		AwayScore: nullIntToCell(m.AwayScore),
	}
}

// rowValues returns the insert values in matchHistoryColumns order. Score
// cells that do not parse are stored as NULL.
func rowValues(r match.Record) []any {
	var date sql.NullTime
	if !r.Date.IsZero() {
		date = sql.NullTime{Time: r.Date, Valid: true}
	}
	return []any{r.Team, date, r.HomeTeam, r.AwayTeam, cellToNullInt(r.HomeScore), cellToNullInt(r.AwayScore)}
}

func nullIntToCell(v sql.NullInt64) string {
	if !v.Valid {
		return ""
	}
	return strconv.FormatInt(v.Int64, 10)
}

func cellToNullInt(cell string) sql.NullInt64 {
	n, err := match.ParseScore(cell)
	if err != nil {
		return sql.NullInt64{}
	}
	return sql.NullInt64{Int64: int64(n), Valid: true}
}
