package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/riskibarqy/match-predictor/internal/domain/match"
	qb "github.com/riskibarqy/match-predictor/internal/platform/querybuilder"
)

// insertBatchSize keeps each statement well under the 65535 bind limit.
const insertBatchSize = 500

type MatchHistoryRepository struct {
	db *sqlx.DB
}

func NewMatchHistoryRepository(db *sqlx.DB) *MatchHistoryRepository {
	return &MatchHistoryRepository{db: db}
}

// List returns every row in insertion order, which is the dataset order.
func (r *MatchHistoryRepository) List(ctx context.Context) ([]match.Record, error) {
	query, args, err := qb.Select("*").From(matchHistoryTable).OrderBy("id").ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build select match history query: %w", err)
	}

	var rows []matchHistoryTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		if isUndefinedTable(err) {
			return nil, fmt.Errorf("%w: table %s does not exist: %v", match.ErrDatasetMissing, matchHistoryTable, err)
		}
		return nil, fmt.Errorf("select match history: %w", err)
	}

	out := make([]match.Record, 0, len(rows))
	for _, row := range rows {
		out = append(out, row.toDomain())
	}
	return out, nil
}

// ListByTeam returns the rows filed under team, in dataset order.
func (r *MatchHistoryRepository) ListByTeam(ctx context.Context, team string, limit int) ([]match.Record, error) {
	query, args, err := qb.Select("*").From(matchHistoryTable).
		Where(qb.Eq("team", team)).
		OrderBy("id").
		Limit(limit).
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build select match history by team query: %w", err)
	}

	var rows []matchHistoryTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("select match history by team: %w", err)
	}

	out := make([]match.Record, 0, len(rows))
	for _, row := range rows {
		out = append(out, row.toDomain())
	}
	return out, nil
}

// ReplaceAll swaps the whole table contents in one transaction.
func (r *MatchHistoryRepository) ReplaceAll(ctx context.Context, records []match.Record) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx replace match history: %w", err)
	}
	defer func() {
		_ = tx.Rollback()
	}()

	deleteQuery, deleteArgs, err := qb.DeleteFrom(matchHistoryTable).ToSQL()
	if err != nil {
		return fmt.Errorf("build delete match history query: %w", err)
	}
	if _, err := tx.ExecContext(ctx, deleteQuery, deleteArgs...); err != nil {
		return fmt.Errorf("delete match history: %w", err)
	}

	for _, batch := range batches(records, insertBatchSize) {
		insert := qb.InsertInto(matchHistoryTable).Columns(matchHistoryColumns...)
		for _, record := range batch {
			insert.Values(rowValues(record)...)
		}
		query, args, err := insert.ToSQL()
		if err != nil {
			return fmt.Errorf("build insert match history query: %w", err)
		}
		if _, err := tx.ExecContext(ctx, query, args...); err != nil {
			return fmt.Errorf("insert match history: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit replace match history: %w", err)
	}
	return nil
}

func batches(records []match.Record, size int) [][]match.Record {
	out := make([][]match.Record, 0, (len(records)+size-1)/size)
	for start := 0; start < len(records); start += size {
		end := min(start+size, len(records))
		out = append(out, records[start:end])
	}
	return out
}
