package report

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
)

// ErrInvalidReportName is returned when a file name does not start with an
// 8-digit date and end in .txt.
var ErrInvalidReportName = errors.New("invalid report file name")

// Summary describes the outcome of an ArchiveAll run.
type Summary struct {
	Considered int // dated reports found in the base directory
	Copied     int // reports copied into the archive tree
	Unchanged  int // reports whose archived copy was already up to date
	Skipped    int // directory entries that could not be inspected
}

// IsDatedReportName reports whether name is exactly eight digits followed by
// ".txt", e.g. 20200826.txt.
func IsDatedReportName(name string) bool {
	return len(name) == 8+len(reportExt) && hasDatePrefix(name) && strings.HasSuffix(name, reportExt)
}

// ArchiveDir returns the archive subdirectory for a report file name:
// "20200826.txt" -> "Archive/2020/08". The year and month are taken from the
// first six characters as-is; no calendar validation is done.
func ArchiveDir(name string) (string, error) {
	if !hasDatePrefix(name) || !strings.HasSuffix(name, reportExt) {
		return "", fmt.Errorf("%w: %q", ErrInvalidReportName, name)
	}
	return filepath.Join(ArchiveDirName, name[0:4], name[4:6]), nil
}

func hasDatePrefix(name string) bool {
	if len(name) < 8 {
		return false
	}
	for i := 0; i < 8; i++ {
		if name[i] < '0' || name[i] > '9' {
			return false
		}
	}
	return true
}

// Archive copies the report at srcPath into Archive/YYYY/MM under the base
// directory. An existing archived copy is only replaced when its content
// differs from the source. It reports whether a copy was made.
func (m *Manager) Archive(srcPath string) (bool, error) {
	name := filepath.Base(srcPath)
	sub, err := ArchiveDir(name)
	if err != nil {
		return false, err
	}

	dstDir := filepath.Join(m.baseDir, sub)
	if err := m.store.EnsureDir(dstDir); err != nil {
		return false, err
	}

	dstPath := filepath.Join(dstDir, name)
	archived, err := m.store.Exists(dstPath)
	if err != nil {
		return false, err
	}

	if archived {
		changed, err := m.store.Changed(srcPath, dstPath)
		if err != nil {
			return false, fmt.Errorf("failed to compare %s with archived copy: %w", name, err)
		}
		if !changed {
			slog.Debug("archived copy up to date", "file", name)
			return false, nil
		}
	}

	if _, err := m.store.Copy(srcPath, dstPath); err != nil {
		return false, err
	}

	slog.Info("archived report", "file", name, "dst", dstPath, "updated", archived)
	m.events.Archived(name)
	return true, nil
}

// ArchiveAll archives every dated report in the base directory. Entries that
// cannot be inspected are skipped; any other failure stops the run.
func (m *Manager) ArchiveAll(ctx context.Context) (Summary, error) {
	var summary Summary

	m.events.ArchiveStarted(m.baseDir)

	paths, skipped, err := m.datedReports()
	if err != nil {
		return summary, err
	}
	summary.Skipped = skipped

	for _, path := range paths {
		if err := ctx.Err(); err != nil {
			return summary, err
		}

		summary.Considered++
		copied, err := m.Archive(path)
		if err != nil {
			return summary, err
		}
		if copied {
			summary.Copied++
		} else {
			summary.Unchanged++
		}
	}

	m.events.ArchiveFinished(summary)
	return summary, nil
}

// datedReports lists the dated report files in the base directory, in name
// order, along with the number of entries that had to be skipped.
func (m *Manager) datedReports() ([]string, int, error) {
	entries, err := m.store.ReadDir(m.baseDir)
	if err != nil {
		return nil, 0, err
	}

	var (
		paths   []string
		skipped int
	)
	for _, entry := range entries {
		name := entry.Name()

		ok, err := filepath.Match("*"+reportExt, name)
		if err != nil || !ok {
			continue
		}
		if !IsDatedReportName(name) {
			continue
		}
		path := filepath.Join(m.baseDir, name)
		mode := entry.Mode()
		if mode&os.ModeSymlink != 0 {
			target, err := m.store.Stat(path)
			if err != nil {
				slog.Warn("skipping unresolvable link", "file", name, "error", err)
				skipped++
				continue
			}
			mode = target.Mode()
		}
		if !mode.IsRegular() {
			slog.Warn("skipping entry that is not a regular file",
				"file", name,
				"mode", mode.String())
			skipped++
			continue
		}

		paths = append(paths, path)
	}
	return paths, skipped, nil
}
