package csvfile

import (
	"context"
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"

	"github.com/riskibarqy/match-predictor/internal/domain/match"
	"github.com/valyala/bytebufferpool"
)

// Writer replaces the dataset file atomically: the rows are rendered into a
// pooled buffer, written to a temp file next to the target and renamed over it.
type Writer struct {
	path string
}

func NewWriter(path string) *Writer {
	return &Writer{path: path}
}

func (w *Writer) ReplaceAll(ctx context.Context, records []match.Record) error {
	buf := bytebufferpool.Get()
	defer bytebufferpool.Put(buf)

	if err := Encode(ctx, buf, records); err != nil {
		return err
	}

	dir := filepath.Dir(w.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create dataset dir %s: %w", dir, err)
	}

	tmp, err := os.CreateTemp(dir, "."+filepath.Base(w.path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("create temp dataset: %w", err)
	}
	tmpName := tmp.Name()
	defer func() {
		_ = os.Remove(tmpName)
	}()

	if _, err := tmp.Write(buf.B); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("write temp dataset: %w", err)
	}
	if err := tmp.Sync(); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("sync temp dataset: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("close temp dataset: %w", err)
	}
	if err := os.Rename(tmpName, w.path); err != nil {
		return fmt.Errorf("replace dataset %s: %w", w.path, err)
	}
	return nil
}

// Encode writes records with the standard header.
func Encode(ctx context.Context, dst *bytebufferpool.ByteBuffer, records []match.Record) error {
	cw := csv.NewWriter(dst)
	if err := cw.Write(header); err != nil {
		return fmt.Errorf("write dataset header: %w", err)
	}
	for i, r := range records {
		if i%1024 == 0 {
			if err := ctx.Err(); err != nil {
				return err
			}
		}
		row := []string{r.Team, formatDate(r.Date), r.HomeTeam, r.AwayTeam, r.HomeScore, r.AwayScore}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("write dataset row %d: %w", i, err)
		}
	}
	cw.Flush()
	if err := cw.Error(); err != nil {
		return fmt.Errorf("flush dataset: %w", err)
	}
	return nil
}
