// Package summary renders the terminal report printed after a selection run.
package summary

import (
	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/lipgloss"

	"examgen/internal/assemble"
)

// Options configures rendering.
type Options struct {
	NoColor bool
	// ManifestPath is shown in the footer when set.
	ManifestPath string
}

// Render returns the summary of one assembled exam.
func Render(exam assemble.Exam, opts Options) string {
	rows := rowsForExam(exam)
	t := table.New(
		table.WithColumns(defaultColumns()),
		table.WithRows(rows),
		table.WithFocused(false),
		table.WithHeight(len(rows)+2),
	)
	t.SetStyles(tableStyles(opts.NoColor))

	parts := []string{
		renderHeader(exam, opts.NoColor),
		renderTotals(exam, opts.NoColor),
		t.View(),
	}
	if diagnostics := renderDiagnostics(exam, opts.NoColor); diagnostics != "" {
		parts = append(parts, diagnostics)
	}
	if footer := renderFooter(opts.ManifestPath, opts.NoColor); footer != "" {
		parts = append(parts, footer)
	}
	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}
