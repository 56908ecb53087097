// Package console prints human-readable progress lines for report operations.
package console

import (
	"io"
	"os"

	"github.com/pterm/pterm"
	"github.com/scottbrown/workreport/internal/report"
)

// Printer writes report progress to a terminal using pterm prefix printers.
// It implements report.Events.
type Printer struct {
	info    *pterm.PrefixPrinter
	success *pterm.PrefixPrinter
	warning *pterm.PrefixPrinter
}

// New creates a Printer writing to w. A nil writer selects stdout.
func New(w io.Writer) *Printer {
	if w == nil {
		w = os.Stdout
	}
	return &Printer{
		info:    pterm.Info.WithWriter(w),
		success: pterm.Success.WithWriter(w),
		warning: pterm.Warning.WithWriter(w),
	}
}

// ArchiveStarted announces the start of an archive run.
func (p *Printer) ArchiveStarted(dir string) {
	p.info.Printfln("Archiving reports in %s...", dir)
}

// Archived reports a single file copied into the archive tree.
func (p *Printer) Archived(name string) {
	p.success.Printfln("    Archived: %s", name)
}

// ArchiveFinished summarises an archive run.
func (p *Printer) ArchiveFinished(s report.Summary) {
	p.info.Printfln("All the files have been archived (%d copied, %d unchanged).", s.Copied, s.Unchanged)
	if s.Skipped > 0 {
		p.warning.Printfln("%d entries could not be inspected and were skipped.", s.Skipped)
	}
}

// ReportExists notes that the requested report was already there.
func (p *Printer) ReportExists(path string) {
	p.info.Printfln("Work report already exists: %s", path)
}

// TemplateGenerated notes that a missing template was generated.
func (p *Printer) TemplateGenerated(path string) {
	p.warning.Printfln("%s was not found, so it was generated automatically.", report.TemplateName)
	p.success.Printfln("    Created: %s", path)
}

// ReportCreated reports a newly created report file.
func (p *Printer) ReportCreated(path string) {
	p.success.Printfln("    Created: %s", path)
}

// Removed reports a dated file removed from the base directory by tidy.
func (p *Printer) Removed(name string) {
	p.success.Printfln("    Removed: %s", name)
}
