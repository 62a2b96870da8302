package csvfile

import (
	"strings"
	"time"
)

// Column headers of the dataset file. They keep the names the loader has
// always written.
const (
	ColumnTeam      = "Echipa"
	ColumnDate      = "Data"
	ColumnHomeTeam  = "Gazda"
	ColumnAwayTeam  = "Oaspete"
	ColumnHomeScore = "Scor_Gazda"
	ColumnAwayScore = "Scor_Oaspete"
)

var header = []string{ColumnTeam, ColumnDate, ColumnHomeTeam, ColumnAwayTeam, ColumnHomeScore, ColumnAwayScore}

const dateLayout = "2006-01-02"

var dateLayouts = []string{
	dateLayout,
	"2006-01-02 15:04:05",
	time.RFC3339,
	"2006-01-02T15:04:05",
	"02.01.2006",
}

// parseDate returns the zero time for cells it cannot read.
func parseDate(raw string) time.Time {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return time.Time{}
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, raw); err == nil {
			return t.UTC()
		}
	}
	return time.Time{}
}

func formatDate(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.UTC().Format(dateLayout)
}
