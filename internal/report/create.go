package report

import (
	_ "embed"
	"fmt"
	"log/slog"
)

//go:embed default_template.txt
var defaultTemplate []byte

// DefaultTemplate returns the content written to Template.txt when it is missing.
func DefaultTemplate() []byte {
	return append([]byte(nil), defaultTemplate...)
}

// CreateForToday creates the report for the current local date.
func (m *Manager) CreateForToday() error {
	return m.CreateForDate(m.now().Format(DateLayout))
}

// CreateForDate creates <date>.txt in the base directory as a copy of
// Template.txt, generating the template first if it does not exist. The date
// is used verbatim. Nothing is done if the report already exists.
func (m *Manager) CreateForDate(date string) error {
	dstPath := m.ReportPath(date)
	srcPath := m.TemplatePath()

	exists, err := m.store.Exists(dstPath)
	if err != nil {
		return err
	}
	if exists {
		slog.Debug("report already exists", "file", dstPath)
		m.events.ReportExists(dstPath)
		return nil
	}

	hasTemplate, err := m.store.Exists(srcPath)
	if err != nil {
		return err
	}
	if !hasTemplate {
		if err := m.createTemplate(); err != nil {
			return err
		}
		m.events.TemplateGenerated(srcPath)
	}

	if _, err := m.store.Copy(srcPath, dstPath); err != nil {
		return fmt.Errorf("failed to create report for %s: %w", date, err)
	}

	slog.Info("created report", "file", dstPath)
	m.events.ReportCreated(dstPath)
	return nil
}

func (m *Manager) createTemplate() error {
	path := m.TemplatePath()
	if err := m.store.WriteSynced(path, defaultTemplate); err != nil {
		return fmt.Errorf("failed to generate template: %w", err)
	}
	slog.Info("generated template", "file", path)
	return nil
}
