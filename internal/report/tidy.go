package report

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"path/filepath"
	"time"
)

// ErrInvalidKeepDays is returned by Tidy when the retention period is not positive.
var ErrInvalidKeepDays = errors.New("keep days must be greater than zero")

// TidySummary describes the outcome of a Tidy run.
type TidySummary struct {
	Removed    int
	Kept       int
	BytesFreed int64
}

// Tidy removes dated reports older than keepDays from the base directory.
// A report is only removed when its archived copy exists and has the same
// content; everything else is kept and logged.
func (m *Manager) Tidy(ctx context.Context, keepDays int) (TidySummary, error) {
	var summary TidySummary

	if keepDays <= 0 {
		return summary, fmt.Errorf("%w: %d", ErrInvalidKeepDays, keepDays)
	}

	now := m.now()
	cutoff := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location()).
		AddDate(0, 0, -keepDays)

	paths, _, err := m.datedReports()
	if err != nil {
		return summary, err
	}

	slog.Debug("starting tidy", "base_dir", m.baseDir, "keep_days", keepDays, "cutoff", cutoff.Format(DateLayout))

	for _, path := range paths {
		if err := ctx.Err(); err != nil {
			return summary, err
		}

		name := filepath.Base(path)
		date, err := time.ParseInLocation(DateLayout, name[:8], now.Location())
		if err != nil {
			slog.Warn("failed to parse date from filename", "file", name)
			summary.Kept++
			continue
		}
		if !date.Before(cutoff) {
			continue
		}

		removed, err := m.tidyOne(path, name)
		if err != nil {
			return summary, err
		}
		if removed < 0 {
			summary.Kept++
			continue
		}

		summary.Removed++
		summary.BytesFreed += removed
		slog.Info("removed archived report",
			"file", name,
			"age_days", int(now.Sub(date).Hours()/24),
			"size_bytes", removed)
		m.events.Removed(name)
	}

	slog.Info("tidy complete",
		"files_removed", summary.Removed,
		"files_kept", summary.Kept,
		"bytes_freed", summary.BytesFreed)
	return summary, nil
}

// tidyOne removes the report at path if its archived copy is identical. It
// returns the number of bytes freed, or -1 when the report was kept.
func (m *Manager) tidyOne(path, name string) (int64, error) {
	sub, err := ArchiveDir(name)
	if err != nil {
		return -1, err
	}
	archived := filepath.Join(m.baseDir, sub, name)

	ok, err := m.store.Exists(archived)
	if err != nil {
		return -1, err
	}
	if !ok {
		slog.Warn("report has not been archived, keeping it", "file", name)
		return -1, nil
	}

	changed, err := m.store.Changed(path, archived)
	if err != nil {
		return -1, err
	}
	if changed {
		slog.Warn("report differs from its archived copy, keeping it", "file", name)
		return -1, nil
	}

	return m.store.Remove(path)
}
