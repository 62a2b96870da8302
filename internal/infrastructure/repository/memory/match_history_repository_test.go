package memory

import (
	"context"
	"testing"

	"github.com/riskibarqy/match-predictor/internal/domain/match"
)

func TestMatchHistoryRepository_ListReturnsCopy(t *testing.T) {
	repo := NewMatchHistoryRepository(SeedMatches())

	first, err := repo.List(context.Background())
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	first[0].Team = "mutated"

	second, err := repo.List(context.Background())
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if second[0].Team != "Arsenal" {
		t.Fatalf("list leaked internal slice, got team %q", second[0].Team)
	}
	if len(second) != len(SeedMatches()) {
		t.Fatalf("unexpected row count: %d", len(second))
	}
}

func TestMatchHistoryRepository_ReplaceAll(t *testing.T) {
	repo := NewMatchHistoryRepository(SeedMatches())

	replacement := []match.Record{{Team: "Everton", HomeTeam: "Everton", AwayTeam: "Fulham", HomeScore: "1", AwayScore: "0"}}
	if err := repo.ReplaceAll(context.Background(), replacement); err != nil {
		t.Fatalf("replace all: %v", err)
	}

	got, _ := repo.List(context.Background())
	if len(got) != 1 || got[0].Team != "Everton" {
		t.Fatalf("unexpected rows after replace: %+v", got)
	}
}
