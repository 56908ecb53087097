// Package report maintains daily work report files in a base directory.
//
// A base directory holds a Template.txt, one YYYYMMDD.txt file per day and an
// Archive/YYYY/MM tree with copies of the dated files. The Manager creates new
// reports from the template and keeps the archive tree in sync with the
// dated files.
package report

import (
	"path/filepath"
	"time"

	"github.com/scottbrown/workreport/internal/storage"
	"github.com/spf13/afero"
)

const (
	// TemplateName is the file every new report is copied from.
	TemplateName = "Template.txt"
	// ArchiveDirName is the root of the archive tree inside the base directory.
	ArchiveDirName = "Archive"
	// DateLayout formats the date part of a report file name.
	DateLayout = "20060102"

	reportExt = ".txt"
)

// Events receives progress notifications from the Manager.
type Events interface {
	ArchiveStarted(dir string)
	Archived(name string)
	ArchiveFinished(summary Summary)
	ReportExists(path string)
	TemplateGenerated(path string)
	ReportCreated(path string)
	Removed(name string)
}

// Config contains the settings for a Manager.
type Config struct {
	// BaseDir is the directory holding the template, the reports and the archive tree.
	BaseDir string
	// Fs is the filesystem to operate on. Defaults to the OS filesystem.
	Fs afero.Fs
	// Now returns the current time. Defaults to time.Now.
	Now func() time.Time
	// Events receives progress notifications. Defaults to a no-op sink.
	Events Events
}

// Manager creates and archives work reports rooted at a base directory.
type Manager struct {
	baseDir string
	store   *storage.Store
	now     func() time.Time
	events  Events
}

// New creates a Manager with the given configuration
func New(cfg Config) *Manager {
	m := &Manager{
		baseDir: cfg.BaseDir,
		store:   storage.New(cfg.Fs),
		now:     cfg.Now,
		events:  cfg.Events,
	}
	if m.now == nil {
		m.now = time.Now
	}
	if m.events == nil {
		m.events = NopEvents{}
	}
	return m
}

// BaseDir returns the directory the Manager operates on.
func (m *Manager) BaseDir() string {
	return m.baseDir
}

// TemplatePath returns the path of the template file.
func (m *Manager) TemplatePath() string {
	return filepath.Join(m.baseDir, TemplateName)
}

// ReportPath returns the path of the report for date, formatted as YYYYMMDD.
func (m *Manager) ReportPath(date string) string {
	return filepath.Join(m.baseDir, date+reportExt)
}

// NopEvents discards all progress notifications.
type NopEvents struct{}

func (NopEvents) ArchiveStarted(string)    {}
func (NopEvents) Archived(string)          {}
func (NopEvents) ArchiveFinished(Summary)  {}
func (NopEvents) ReportExists(string)      {}
func (NopEvents) TemplateGenerated(string) {}
func (NopEvents) ReportCreated(string)     {}
func (NopEvents) Removed(string)           {}
