package summary

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"examgen/internal/assemble"
)

// renderHeader renders the exam title line.
func renderHeader(exam assemble.Exam, noColor bool) string {
	title := exam.Settings.Test
	if title == "" {
		title = "Exam"
	}
	line := title
	if exam.Version != "" {
		line += " | Version " + exam.Version
	}
	line += " | Seed " + fmtInt64(exam.Seed) + " | ID " + exam.ID
	return stylize(line, noColor, lipgloss.Color("33"))
}

// renderTotals renders the points and counts line.
func renderTotals(exam assemble.Exam, noColor bool) string {
	line := "Questions: " + fmtInt(exam.QuestionCount) +
		" Points: " + fmtInt(exam.TotalPoints) +
		" Bonus: " + fmtInt(exam.BonusPoints) +
		" Passes: " + fmtInt(exam.Passes)
	return stylize(line, noColor, lipgloss.Color("242"))
}

// renderDiagnostics lists the shortfalls of the run.
func renderDiagnostics(exam assemble.Exam, noColor bool) string {
	if len(exam.Diagnostics) == 0 {
		return ""
	}
	lines := make([]string, 0, len(exam.Diagnostics))
	for _, diag := range exam.Diagnostics {
		lines = append(lines, "warning: "+diag.String())
	}
	return stylize(strings.Join(lines, "\n"), noColor, lipgloss.Color("220"))
}

// renderFooter renders where the manifest was written.
func renderFooter(path string, noColor bool) string {
	if path == "" {
		return ""
	}
	return stylize("Wrote "+path, noColor, lipgloss.Color("244"))
}

// stylize applies optional color styling.
func stylize(text string, noColor bool, color lipgloss.Color) string {
	if noColor {
		return text
	}
	return lipgloss.NewStyle().Foreground(color).Render(text)
}
