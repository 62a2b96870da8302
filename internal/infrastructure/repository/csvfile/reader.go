package csvfile

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"strings"

	"github.com/riskibarqy/match-predictor/internal/domain/match"
	"github.com/riskibarqy/match-predictor/internal/platform/logging"
)

// Repository reads the match dataset from a CSV file on every List call.
// Caching is the caller's concern.
type Repository struct {
	path string
}

func NewRepository(path string) *Repository {
	return &Repository{path: path}
}

func (r *Repository) Path() string {
	return r.path
}

func (r *Repository) List(ctx context.Context) ([]match.Record, error) {
	f, err := os.Open(r.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", match.ErrDatasetMissing, r.path)
		}
		return nil, fmt.Errorf("open dataset %s: %w", r.path, err)
	}
	defer f.Close()

	return Decode(ctx, f)
}

// Decode reads a dataset with a header row. Columns may appear in any order
// and extra columns are ignored. Rows with bad dates or blank cells are kept
// as they are; a row the CSV reader cannot split is skipped. Only header and
// I/O failures fail the whole file.
func Decode(ctx context.Context, src io.Reader) ([]match.Record, error) {
	logger := logging.Default()
	reader := csv.NewReader(src)
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true
	reader.LazyQuotes = true

	head, err := reader.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return []match.Record{}, nil
		}
		return nil, fmt.Errorf("read dataset header: %w", err)
	}
	index, err := indexHeader(head)
	if err != nil {
		return nil, err
	}

	out := make([]match.Record, 0, 256)
	for {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		row, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		var parseErr *csv.ParseError
		if errors.As(err, &parseErr) {
			logger.DebugContext(ctx, "dataset row skipped", "line", parseErr.StartLine, "error", err)
			continue
		}
		if err != nil {
			return nil, fmt.Errorf("read dataset row %d: %w", len(out)+2, err)
		}

		out = append(out, match.Record{
			Team:      cell(row, index[ColumnTeam]),
			Date:      parseDate(cell(row, index[ColumnDate])),
			HomeTeam:  cell(row, index[ColumnHomeTeam]),
			AwayTeam:  cell(row, index[ColumnAwayTeam]),
			HomeScore: cell(row, index[ColumnHomeScore]),
			AwayScore: cell(row, index[ColumnAwayScore]),
		})
	}
	return out, nil
}

func indexHeader(head []string) (map[string]int, error) {
	index := make(map[string]int, len(head))
	for i, name := range head {
		name = strings.TrimSpace(strings.TrimPrefix(name, "\ufeff"))
		index[name] = i
	}

	var missing []string
	for _, name := range header {
		if _, ok := index[name]; !ok {
			missing = append(missing, name)
		}
	}
	if len(missing) > 0 {
		return nil, fmt.Errorf("dataset header is missing columns: %s", strings.Join(missing, ", "))
	}
	return index, nil
}

func cell(row []string, i int) string {
	if i >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[i])
}
