package memory

import (
	"context"
	"sync"

	"github.com/riskibarqy/match-predictor/internal/domain/match"
)

type MatchHistoryRepository struct {
	mu      sync.RWMutex
	records []match.Record
}

func NewMatchHistoryRepository(records []match.Record) *MatchHistoryRepository {
	return &MatchHistoryRepository{records: append([]match.Record(nil), records...)}
}

func (r *MatchHistoryRepository) List(_ context.Context) ([]match.Record, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]match.Record, 0, len(r.records))
	out = append(out, r.records...)
	return out, nil
}

func (r *MatchHistoryRepository) ReplaceAll(_ context.Context, records []match.Record) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.records = append([]match.Record(nil), records...)
	return nil
}
