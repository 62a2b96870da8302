package match

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
)

var (
	errMissingValue  = errors.New("value is missing")
	errNotInteger    = errors.New("value is not an integer")
	errNegativeScore = errors.New("score is negative")
)

// RowParseError describes the first field of a row that could not be used.
type RowParseError struct {
	Field string
	Value string
	Err   error
}

func (e *RowParseError) Error() string {
	return fmt.Sprintf("%s: field %s=%q: %v", ErrRowParse, e.Field, e.Value, e.Err)
}

func (e *RowParseError) Unwrap() error { return e.Err }

func (e *RowParseError) Is(target error) bool { return target == ErrRowParse }

// ParseRow validates the team names and converts both score cells.
func ParseRow(r Record) (ParsedRow, error) {
	if strings.TrimSpace(r.HomeTeam) == "" {
		return ParsedRow{}, &RowParseError{Field: "home_team", Value: r.HomeTeam, Err: errMissingValue}
	}
	if strings.TrimSpace(r.AwayTeam) == "" {
		return ParsedRow{}, &RowParseError{Field: "away_team", Value: r.AwayTeam, Err: errMissingValue}
	}

	home, err := ParseScore(r.HomeScore)
	if err != nil {
		return ParsedRow{}, &RowParseError{Field: "home_score", Value: r.HomeScore, Err: err}
	}
	away, err := ParseScore(r.AwayScore)
	if err != nil {
		return ParsedRow{}, &RowParseError{Field: "away_score", Value: r.AwayScore, Err: err}
	}

	return ParsedRow{Record: r, HomeGoals: home, AwayGoals: away}, nil
}

// ParseScore accepts "2" and integral decimals such as "2.0".
func ParseScore(raw string) (int, error) {
	value := strings.TrimSpace(raw)
	if value == "" || strings.EqualFold(value, "nan") || strings.EqualFold(value, "null") {
		return 0, errMissingValue
	}

	n, err := strconv.Atoi(value)
	if err != nil {
		f, ferr := strconv.ParseFloat(value, 64)
		if ferr != nil || math.IsInf(f, 0) || math.IsNaN(f) || f != math.Trunc(f) || math.Abs(f) > math.MaxInt32 {
			return 0, errNotInteger
		}
		n = int(f)
	}
	if n < 0 {
		return 0, errNegativeScore
	}
	return n, nil
}
