package summary

import (
	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/lipgloss"

	"examgen/internal/assemble"
)

func defaultColumns() []table.Column {
	return []table.Column{
		{Title: "#", Width: 4},
		{Title: "Group", Width: 16},
		{Title: "Pts", Width: 4},
		{Title: "Path", Width: 36},
		{Title: "Question", Width: 48},
	}
}

// tableStyles returns table styles for the summary.
func tableStyles(noColor bool) table.Styles {
	styles := table.DefaultStyles()
	// an unfocused table still highlights its cursor row otherwise
	styles.Selected = lipgloss.NewStyle()
	if noColor {
		return styles
	}
	styles.Header = styles.Header.Foreground(lipgloss.Color("252"))
	return styles
}

// rowsForExam lists the questions of exam in page order.
func rowsForExam(exam assemble.Exam) []table.Row {
	rows := make([]table.Row, 0, exam.QuestionCount)
	for _, group := range exam.Groups {
		for _, item := range group.Questions {
			rows = append(rows, table.Row{
				formatNumber(item.Number),
				formatGroup(group, item),
				fmtInt(item.Points),
				item.Path,
				formatQuestionText(item.Text, 48),
			})
		}
	}
	return rows
}
