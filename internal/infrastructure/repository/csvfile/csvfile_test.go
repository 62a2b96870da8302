package csvfile

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/riskibarqy/match-predictor/internal/domain/match"
)

func TestRepository_ListMissingFile(t *testing.T) {
	repo := NewRepository(filepath.Join(t.TempDir(), "nope.csv"))

	_, err := repo.List(context.Background())
	if !errors.Is(err, match.ErrDatasetMissing) {
		t.Fatalf("expected ErrDatasetMissing, got %v", err)
	}
}

func TestDecode_ColumnOrderAndBadCells(t *testing.T) {
	src := strings.Join([]string{
		"Data,Echipa,Gazda,Oaspete,Scor_Oaspete,Scor_Gazda,Extra",
		"2026-08-16,Arsenal,Arsenal FC,Chelsea,1.0,2.0,x",
		"not-a-date,Arsenal,Liverpool,Arsenal,,,",
		"2026-09-01 00:00:00,Arsenal,,Arsenal",
	}, "\n")

	got, err := Decode(context.Background(), strings.NewReader(src))
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(got) != 3 {
		t.Fatalf("expected 3 rows, got %d", len(got))
	}

	first := got[0]
	if first.Team != "Arsenal" || first.HomeTeam != "Arsenal FC" || first.HomeScore != "2.0" || first.AwayScore != "1.0" {
		t.Fatalf("unexpected first row: %+v", first)
	}
	if !first.Date.Equal(time.Date(2026, 8, 16, 0, 0, 0, 0, time.UTC)) {
		t.Fatalf("unexpected first date: %s", first.Date)
	}
	if !got[1].Date.IsZero() {
		t.Fatalf("expected zero date for unparseable cell, got %s", got[1].Date)
	}
	if got[2].HomeTeam != "" || got[2].AwayScore != "" {
		t.Fatalf("expected short row padded with blanks, got %+v", got[2])
	}
}

func TestDecode_MissingColumn(t *testing.T) {
	_, err := Decode(context.Background(), strings.NewReader("Echipa,Data,Gazda\n"))
	if err == nil || !strings.Contains(err.Error(), "Oaspete") {
		t.Fatalf("expected missing column error, got %v", err)
	}
}

func TestDecode_StrayQuoteStaysInItsRow(t *testing.T) {
	src := strings.Join([]string{
		"Echipa,Data,Gazda,Oaspete,Scor_Gazda,Scor_Oaspete",
		"Arsenal,2026-08-10,Arsenal FC,Chelsea,2,1",
		`Arsenal,2026-08-17,Arsenal "B",Wolves,1,0`,
		"Arsenal,2026-08-24,Liverpool,Arsenal,0,0",
	}, "\n")

	got, err := Decode(context.Background(), strings.NewReader(src))
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(got) != 3 {
		t.Fatalf("expected 3 rows, got %d", len(got))
	}
	if got[1].HomeTeam != `Arsenal "B"` || got[1].AwayTeam != "Wolves" {
		t.Fatalf("unexpected middle row: %+v", got[1])
	}
	if got[0].AwayTeam != "Chelsea" || got[2].HomeTeam != "Liverpool" {
		t.Fatalf("neighbouring rows changed: %+v / %+v", got[0], got[2])
	}
}

func TestDecode_EmptyFile(t *testing.T) {
	got, err := Decode(context.Background(), strings.NewReader(""))
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(got) != 0 {
		t.Fatalf("expected no rows, got %d", len(got))
	}
}

func TestWriter_ReplaceAllThenList(t *testing.T) {
	path := filepath.Join(t.TempDir(), "data", "matches.csv")
	records := []match.Record{
		{Team: "Real Madrid", Date: time.Date(2026, 8, 24, 0, 0, 0, 0, time.UTC), HomeTeam: "FC Barcelona", AwayTeam: "Real Madrid", HomeScore: "2", AwayScore: "3"},
		{Team: "Real Madrid", HomeTeam: "Real Madrid, CF", AwayTeam: "Getafe", HomeScore: "", AwayScore: ""},
	}

	if err := NewWriter(path).ReplaceAll(context.Background(), records); err != nil {
		t.Fatalf("replace all: %v", err)
	}

	got, err := NewRepository(path).List(context.Background())
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("expected 2 rows, got %d", len(got))
	}
	for i := range records {
		if !sameRecord(got[i], records[i]) {
			t.Fatalf("row %d round trip mismatch:\n got %+v\nwant %+v", i, got[i], records[i])
		}
	}

	entries, err := os.ReadDir(filepath.Dir(path))
	if err != nil {
		t.Fatalf("read dir: %v", err)
	}
	if len(entries) != 1 {
		t.Fatalf("expected temp file to be cleaned up, found %d entries", len(entries))
	}
}

func sameRecord(a, b match.Record) bool {
	return a.Team == b.Team && a.Date.Equal(b.Date) &&
		a.HomeTeam == b.HomeTeam && a.AwayTeam == b.AwayTeam &&
		a.HomeScore == b.HomeScore && a.AwayScore == b.AwayScore
}
