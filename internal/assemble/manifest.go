package assemble

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// ErrManifestExists is returned when a manifest would be overwritten without force.
var ErrManifestExists = errors.New("manifest already exists")

// ManifestPath returns the manifest location for a version inside dir.
func ManifestPath(dir, version string) string {
	if strings.TrimSpace(version) == "" {
		return filepath.Join(dir, "exam.json")
	}
	return filepath.Join(dir, fmt.Sprintf("exam-%s.json", version))
}

// WriteManifest writes exam as pretty JSON to path.
func WriteManifest(exam Exam, path string, force bool) error {
	if strings.TrimSpace(path) == "" {
		return fmt.Errorf("manifest path is required")
	}
	if err := EnsureWritable(path, force); err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create output dir: %w", err)
	}
	payload, err := json.MarshalIndent(exam, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal json: %w", err)
	}
	payload = append(payload, '\n')
	if err := os.WriteFile(path, payload, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", filepath.Base(path), err)
	}
	return nil
}

// EnsureWritable fails with ErrManifestExists when path exists and force is unset.
func EnsureWritable(path string, force bool) error {
	if force {
		return nil
	}
	if _, err := os.Stat(path); err == nil {
		return fmt.Errorf("%s: %w (use --force to overwrite)", path, ErrManifestExists)
	} else if !os.IsNotExist(err) {
		return fmt.Errorf("stat %s: %w", filepath.Base(path), err)
	}
	return nil
}
