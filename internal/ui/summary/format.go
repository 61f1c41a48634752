package summary

import (
	"strconv"
	"strings"

	"examgen/internal/assemble"
)

// formatNumber renders a question number as Q01, Q02, ...
func formatNumber(number int) string {
	if number < 10 {
		return "Q0" + fmtInt(number)
	}
	return "Q" + fmtInt(number)
}

// formatGroup names the group a row belongs to, marking required questions.
func formatGroup(group assemble.Group, item assemble.Item) string {
	label := group.Title
	if item.Required {
		label += "*"
	}
	return label
}

// formatQuestionText collapses whitespace and truncates to limit runes.
func formatQuestionText(text string, limit int) string {
	normalized := strings.Join(strings.Fields(text), " ")
	runes := []rune(normalized)
	if len(runes) <= limit {
		return normalized
	}
	return string(runes[:limit-3]) + "..."
}

func fmtInt(value int) string {
	return strconv.Itoa(value)
}

func fmtInt64(value int64) string {
	return strconv.FormatInt(value, 10)
}
