package bank

import (
	"fmt"
	"strings"
)

// Issue captures one configuration problem at a node path.
type Issue struct {
	Path    string
	Message string
}

// ConfigurationError reports one or more configuration issues. It is always fatal.
type ConfigurationError struct {
	Issues []Issue
}

// Error renders the issues as a multi-line string.
func (err *ConfigurationError) Error() string {
	if err == nil || len(err.Issues) == 0 {
		return "configuration error"
	}
	lines := make([]string, 0, len(err.Issues))
	for _, issue := range err.Issues {
		path := issue.Path
		if path == "" {
			path = "<root>"
		}
		lines = append(lines, fmt.Sprintf("%s: %s", path, issue.Message))
	}
	return strings.Join(lines, "\n")
}

// Misconfigured builds a single-issue ConfigurationError.
func Misconfigured(path, format string, args ...any) *ConfigurationError {
	return &ConfigurationError{Issues: []Issue{{Path: path, Message: fmt.Sprintf(format, args...)}}}
}

// issueCollector accumulates configuration issues.
type issueCollector struct {
	issues []Issue
}

// add records a new issue.
func (c *issueCollector) add(path, message string) {
	c.issues = append(c.issues, Issue{Path: path, Message: message})
}

func (c *issueCollector) addf(path, format string, args ...any) {
	c.add(path, fmt.Sprintf(format, args...))
}

// result returns a ConfigurationError when issues are present.
func (c *issueCollector) result() error {
	if len(c.issues) == 0 {
		return nil
	}
	return &ConfigurationError{Issues: c.issues}
}
