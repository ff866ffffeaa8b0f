// Package report prints human-readable progress for a generation run.
package report

import (
	"errors"
	"fmt"
	"io"
	"path/filepath"

	"github.com/charmbracelet/lipgloss"
	"github.com/dgallion1/llmsfull/internal/aggregate"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Reporter writes styled progress lines. Colors are dropped automatically
// when w is not a terminal.
type Reporter struct {
	w       io.Writer
	printer *message.Printer

	heading lipgloss.Style
	check   lipgloss.Style
	success lipgloss.Style
	failure lipgloss.Style
	muted   lipgloss.Style
}

func New(w io.Writer) *Reporter {
	r := lipgloss.NewRenderer(w)
	return &Reporter{
		w:       w,
		printer: message.NewPrinter(language.English),
		heading: r.NewStyle().Bold(true).Foreground(lipgloss.Color("#5B8DEF")),
		check:   r.NewStyle().Foreground(lipgloss.Color("#4CAF50")),
		success: r.NewStyle().Bold(true).Foreground(lipgloss.Color("#4CAF50")),
		failure: r.NewStyle().Bold(true).Foreground(lipgloss.Color("#FF6B6B")),
		muted:   r.NewStyle().Foreground(lipgloss.Color("#888888")),
	}
}

func (r *Reporter) Start() {
	fmt.Fprintln(r.w, r.heading.Render("Generating LLM context file..."))
	fmt.Fprintln(r.w)
}

// Discovered lists the files about to be concatenated, in output order.
func (r *Reporter) Discovered(entries []aggregate.FileEntry) {
	fmt.Fprintf(r.w, "Found %d markdown files:\n", len(entries))
	for _, e := range entries {
		fmt.Fprintf(r.w, "  %s %s\n", r.check.Render("✓"), e.RelPath)
	}
}

func (r *Reporter) Success(res *aggregate.Result) {
	mb := float64(res.Bytes) / 1024 / 1024

	fmt.Fprintln(r.w)
	fmt.Fprintln(r.w, r.success.Render("Successfully generated "+res.OutputPath))
	fmt.Fprintln(r.w, r.printer.Sprintf("File size: %.2f MB (%d bytes)", mb, res.Bytes))
	fmt.Fprintln(r.w, r.printer.Sprintf("Estimated tokens: ~%d", res.Tokens))
	fmt.Fprintln(r.w)
	fmt.Fprintln(r.w, r.muted.Render("Usage: attach "+filepath.Base(res.OutputPath)+" as LLM context in tools like:"))
	fmt.Fprintln(r.w, r.muted.Render("  - Cursor/VSCode with Claude"))
	fmt.Fprintln(r.w, r.muted.Render("  - ChatGPT with file upload"))
	fmt.Fprintln(r.w, r.muted.Render("  - Other LLM context windows"))
}

// Failure prints err. An empty docs tree gets its own message.
func (r *Reporter) Failure(err error, docsDir string) {
	if errors.Is(err, aggregate.ErrEmptyInput) {
		fmt.Fprintln(r.w, r.failure.Render("No markdown files found in "+docsDir))
		return
	}
	fmt.Fprintln(r.w, r.failure.Render("Error generating LLM context file: "+err.Error()))
}
