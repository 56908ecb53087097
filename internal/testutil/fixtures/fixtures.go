// Package fixtures provides helpers for building report directories in tests.
package fixtures

import (
	"os"
	"path/filepath"
	"sort"
	"testing"
	"time"

	"github.com/spf13/afero"
)

// ReportDir is the base directory used by in-memory fixtures.
const ReportDir = "/work_report"

// NewReportFs returns an in-memory filesystem with ReportDir created and the
// given files written into it. Keys are paths relative to ReportDir.
func NewReportFs(t *testing.T, files map[string]string) afero.Fs {
	t.Helper()

	fs := afero.NewMemMapFs()
	if err := fs.MkdirAll(ReportDir, 0755); err != nil {
		t.Fatalf("Failed to create %s: %v", ReportDir, err)
	}
	for name, content := range files {
		WriteFile(t, fs, filepath.Join(ReportDir, name), content)
	}
	return fs
}

// WriteFile writes content to path, creating parent directories as needed.
func WriteFile(t *testing.T, fs afero.Fs, path, content string) {
	t.Helper()

	if err := fs.MkdirAll(filepath.Dir(path), 0755); err != nil {
		t.Fatalf("Failed to create directory for %s: %v", path, err)
	}
	if err := afero.WriteFile(fs, path, []byte(content), 0644); err != nil {
		t.Fatalf("Failed to write fixture %s: %v", path, err)
	}
}

// ReadFile returns the content of path and fails the test if it cannot be read.
func ReadFile(t *testing.T, fs afero.Fs, path string) string {
	t.Helper()

	content, err := afero.ReadFile(fs, path)
	if err != nil {
		t.Fatalf("Failed to read %s: %v", path, err)
	}
	return string(content)
}

// Exists reports whether path exists on fs.
func Exists(fs afero.Fs, path string) bool {
	_, err := fs.Stat(path)
	return err == nil
}

// ModTime returns the modification time of path.
func ModTime(t *testing.T, fs afero.Fs, path string) time.Time {
	t.Helper()

	info, err := fs.Stat(path)
	if err != nil {
		t.Fatalf("Failed to stat %s: %v", path, err)
	}
	return info.ModTime()
}

// Tree returns every file below root as a sorted list of slash-separated
// paths relative to root.
func Tree(t *testing.T, fs afero.Fs, root string) []string {
	t.Helper()

	var files []string
	err := afero.Walk(fs, root, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if info.IsDir() {
			return nil
		}
		rel, err := filepath.Rel(root, path)
		if err != nil {
			return err
		}
		files = append(files, filepath.ToSlash(rel))
		return nil
	})
	if err != nil {
		t.Fatalf("Failed to walk %s: %v", root, err)
	}

	sort.Strings(files)
	return files
}

// Clock returns a function reporting a fixed local time on the given day.
func Clock(year int, month time.Month, day int) func() time.Time {
	ts := time.Date(year, month, day, 9, 30, 0, 0, time.Local)
	return func() time.Time { return ts }
}
