package cli

import (
	"fmt"
	"path/filepath"
	"strings"

	"examgen/internal/config"
)

// resolveExamPath normalizes an exam path or finds exam.yml from CWD.
func resolveExamPath(examPath string) (string, error) {
	if strings.TrimSpace(examPath) == "" {
		return config.FindExamPath("")
	}
	abs, err := filepath.Abs(examPath)
	if err != nil {
		return "", fmt.Errorf("resolve exam path: %w", err)
	}
	return abs, nil
}
