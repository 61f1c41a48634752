package config

import (
	"fmt"
	"strings"
)

// Issue captures a validation problem with a settings field.
type Issue struct {
	Field   string
	Message string
}

// ValidationError aggregates settings validation issues.
type ValidationError struct {
	Issues []Issue
}

// Error renders validation errors as a multi-line string.
func (err *ValidationError) Error() string {
	if err == nil || len(err.Issues) == 0 {
		return "settings validation failed"
	}
	lines := make([]string, 0, len(err.Issues))
	for _, issue := range err.Issues {
		lines = append(lines, fmt.Sprintf("%s: %s", issue.Field, issue.Message))
	}
	return strings.Join(lines, "\n")
}

// Validate checks normalized settings.
func Validate(settings *Settings) error {
	var issues []Issue
	add := func(field, message string) {
		issues = append(issues, Issue{Field: field, Message: message})
	}

	if !settings.TypeOverflow.Valid() {
		add("typeOverflow", fmt.Sprintf("unsupported policy %q (expected %s|%s)", settings.TypeOverflow, OverflowStrict, OverflowSpill))
	}

	if len(issues) == 0 {
		return nil
	}
	return &ValidationError{Issues: issues}
}
