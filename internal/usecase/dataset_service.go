package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/riskibarqy/match-predictor/internal/domain/match"
	"github.com/riskibarqy/match-predictor/internal/platform/cache"
	"github.com/riskibarqy/match-predictor/internal/platform/logging"
)

const datasetCacheKey = "dataset:matches"

// DatasetReader hands out the read-only match dataset for one session.
type DatasetReader interface {
	Records(ctx context.Context) ([]match.Record, error)
}

// DatasetService loads the dataset once and serves it from a session cache
// until it expires or is invalidated.
type DatasetService struct {
	repo   match.Repository
	store  *cache.Store[[]match.Record]
	logger *logging.Logger
}

func NewDatasetService(repo match.Repository, ttl time.Duration, logger *logging.Logger) *DatasetService {
	if logger == nil {
		logger = logging.Default()
	}
	return &DatasetService{
		repo:   repo,
		store:  cache.NewStore[[]match.Record](ttl),
		logger: logger,
	}
}

func (s *DatasetService) Records(ctx context.Context) ([]match.Record, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.DatasetService.Records")
	defer span.End()

	records, err := s.store.GetOrLoad(ctx, datasetCacheKey, s.load)
	if err != nil {
		span.RecordError(err)
		return nil, err
	}
	return records, nil
}

// Invalidate drops the cached dataset; the next read reloads it.
func (s *DatasetService) Invalidate(ctx context.Context) {
	s.store.Delete(ctx, datasetCacheKey)
	s.logger.InfoContext(ctx, "match dataset invalidated")
}

// Reload invalidates and immediately loads the dataset, returning its size.
func (s *DatasetService) Reload(ctx context.Context) (int, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.DatasetService.Reload")
	defer span.End()

	s.Invalidate(ctx)
	records, err := s.Records(ctx)
	if err != nil {
		return 0, err
	}
	return len(records), nil
}

func (s *DatasetService) load(ctx context.Context) ([]match.Record, error) {
	if s.repo == nil {
		return nil, fmt.Errorf("%w: no dataset repository configured", ErrDataUnavailable)
	}

	started := time.Now()
	records, err := s.repo.List(ctx)
	if err != nil {
		if errors.Is(err, match.ErrDatasetMissing) {
			s.logger.WarnContext(ctx, "match dataset missing", "error", err)
		} else {
			s.logger.ErrorContext(ctx, "load match dataset failed", "error", err)
		}
		return nil, fmt.Errorf("%w: %w", ErrDataUnavailable, err)
	}

	s.logger.InfoContext(ctx, "match dataset loaded",
		"rows", len(records),
		"duration_ms", time.Since(started).Milliseconds(),
	)
	return records, nil
}
