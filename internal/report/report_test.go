package report

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/scottbrown/workreport/internal/testutil/fixtures"
	"github.com/spf13/afero"
)

// recorder captures progress notifications.
type recorder struct {
	started   []string
	archived  []string
	finished  []Summary
	exists    []string
	templates []string
	created   []string
	removed   []string
}

func (r *recorder) ArchiveStarted(dir string)     { r.started = append(r.started, dir) }
func (r *recorder) Archived(name string)          { r.archived = append(r.archived, name) }
func (r *recorder) ArchiveFinished(s Summary)     { r.finished = append(r.finished, s) }
func (r *recorder) ReportExists(path string)      { r.exists = append(r.exists, path) }
func (r *recorder) TemplateGenerated(path string) { r.templates = append(r.templates, path) }
func (r *recorder) ReportCreated(path string)     { r.created = append(r.created, path) }
func (r *recorder) Removed(name string)           { r.removed = append(r.removed, name) }

func newTestManager(t *testing.T, files map[string]string) (*Manager, afero.Fs, *recorder) {
	t.Helper()

	fs := fixtures.NewReportFs(t, files)
	rec := &recorder{}
	m := New(Config{
		BaseDir: fixtures.ReportDir,
		Fs:      fs,
		Now:     fixtures.Clock(2020, time.February, 15),
		Events:  rec,
	})
	return m, fs, rec
}

func reportPath(parts ...string) string {
	return filepath.Join(append([]string{fixtures.ReportDir}, parts...)...)
}

func TestNew_Defaults(t *testing.T) {
	m := New(Config{BaseDir: "/tmp/reports"})

	if m.BaseDir() != "/tmp/reports" {
		t.Errorf("expected base dir %q, got %q", "/tmp/reports", m.BaseDir())
	}
	if m.now == nil {
		t.Error("clock should default to time.Now")
	}
	if _, ok := m.events.(NopEvents); !ok {
		t.Errorf("expected NopEvents, got %T", m.events)
	}
	if _, ok := m.store.Fs().(*afero.OsFs); !ok {
		t.Errorf("expected OS filesystem, got %T", m.store.Fs())
	}
}

func TestPaths(t *testing.T) {
	m := New(Config{BaseDir: "/reports"})

	if got := m.TemplatePath(); got != filepath.Join("/reports", "Template.txt") {
		t.Errorf("unexpected template path %q", got)
	}
	if got := m.ReportPath("20200826"); got != filepath.Join("/reports", "20200826.txt") {
		t.Errorf("unexpected report path %q", got)
	}
}

// End-to-end: archive two reports, then create today's report from a
// generated template.
func TestScenario_ArchiveThenCreateForToday(t *testing.T) {
	m, fs, _ := newTestManager(t, map[string]string{
		"20200101.txt": "A",
		"20200102.txt": "B",
		"random.txt":   "R",
	})

	if _, err := m.ArchiveAll(context.Background()); err != nil {
		t.Fatalf("ArchiveAll should succeed: %v", err)
	}

	if got := fixtures.ReadFile(t, fs, reportPath("Archive", "2020", "01", "20200101.txt")); got != "A" {
		t.Errorf("expected archived content %q, got %q", "A", got)
	}
	if got := fixtures.ReadFile(t, fs, reportPath("Archive", "2020", "01", "20200102.txt")); got != "B" {
		t.Errorf("expected archived content %q, got %q", "B", got)
	}
	if got := fixtures.ReadFile(t, fs, reportPath("random.txt")); got != "R" {
		t.Errorf("random.txt should be untouched, got %q", got)
	}

	if err := m.CreateForToday(); err != nil {
		t.Fatalf("CreateForToday should succeed: %v", err)
	}

	today := fixtures.ReadFile(t, fs, reportPath("20200215.txt"))
	template := fixtures.ReadFile(t, fs, reportPath("Template.txt"))
	if today != template {
		t.Errorf("today's report should equal the template, got %q", today)
	}

	want := []string{
		"20200101.txt",
		"20200102.txt",
		"20200215.txt",
		"Archive/2020/01/20200101.txt",
		"Archive/2020/01/20200102.txt",
		"Template.txt",
		"random.txt",
	}
	got := fixtures.Tree(t, fs, fixtures.ReportDir)
	if len(got) != len(want) {
		t.Fatalf("expected files %v, got %v", want, got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("file %d: expected %q, got %q", i, want[i], got[i])
		}
	}
}
