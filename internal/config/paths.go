package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// ExamFileName is the file searched for when no exam path is given.
const ExamFileName = "exam.yml"

// FindExamPath searches upward from a directory for an exam file.
func FindExamPath(startDir string) (string, error) {
	dir := strings.TrimSpace(startDir)
	if dir == "" {
		wd, err := os.Getwd()
		if err != nil {
			return "", fmt.Errorf("get working directory: %w", err)
		}
		dir = wd
	}
	abs, err := filepath.Abs(dir)
	if err != nil {
		return "", fmt.Errorf("resolve start directory: %w", err)
	}
	dir = abs

	for {
		examPath := filepath.Join(dir, ExamFileName)
		info, err := os.Stat(examPath)
		if err == nil {
			if info.IsDir() {
				return "", fmt.Errorf("exam path %q is a directory", examPath)
			}
			return examPath, nil
		}
		if !os.IsNotExist(err) {
			return "", fmt.Errorf("stat exam path %q: %w", examPath, err)
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return "", fmt.Errorf("no %s found in %s or parent directories", ExamFileName, dir)
		}
		dir = parent
	}
}
