package cli

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"go.uber.org/goleak"

	"examgen/internal/assemble"
)

func readManifest(t *testing.T, path string) assemble.Exam {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read manifest: %v", err)
	}
	var exam assemble.Exam
	if err := json.Unmarshal(data, &exam); err != nil {
		t.Fatalf("decode manifest: %v", err)
	}
	return exam
}

// TestSelectWritesManifest verifies a seeded run writes exam.json and a summary.
func TestSelectWritesManifest(t *testing.T) {
	examPath := writeExam(t, sampleExam)

	var out, err bytes.Buffer
	code := Run([]string{"select", "--exam", examPath, "--seed", "42", "--no-color"}, &out, &err)
	if code != ExitOK {
		t.Fatalf("expected exit %d, got %d (stderr %q)", ExitOK, code, err.String())
	}

	manifestPath := filepath.Join(filepath.Dir(examPath), "exam.json")
	exam := readManifest(t, manifestPath)
	if exam.Seed != 42 || exam.Settings.Test != "Midterm" {
		t.Fatalf("unexpected manifest header %+v", exam)
	}
	if exam.BonusPoints != 2 {
		t.Fatalf("expected the bonus question, got %d bonus points", exam.BonusPoints)
	}
	if !strings.Contains(out.String(), "Wrote "+manifestPath) {
		t.Fatalf("expected manifest path in summary, got %q", out.String())
	}
	if strings.Contains(out.String(), "Using random seed") {
		t.Fatalf("did not expect a random seed message")
	}
}

// TestSelectIsReproducible verifies the same seed writes identical manifests.
func TestSelectIsReproducible(t *testing.T) {
	examPath := writeExam(t, sampleExam)
	manifestPath := filepath.Join(filepath.Dir(examPath), "exam.json")

	var contents [][]byte
	for i := 0; i < 2; i++ {
		var out, err bytes.Buffer
		code := Run([]string{"select", "--exam", examPath, "--seed", "1234", "--force", "--no-color"}, &out, &err)
		if code != ExitOK {
			t.Fatalf("run %d: expected exit %d, got %d (stderr %q)", i, ExitOK, code, err.String())
		}
		data, readErr := os.ReadFile(manifestPath)
		if readErr != nil {
			t.Fatalf("read manifest: %v", readErr)
		}
		contents = append(contents, data)
	}
	if !bytes.Equal(contents[0], contents[1]) {
		t.Fatalf("expected identical manifests for the same seed")
	}
}

// TestSelectRefusesOverwrite verifies --force is required to replace a manifest.
func TestSelectRefusesOverwrite(t *testing.T) {
	examPath := writeExam(t, sampleExam)
	args := []string{"select", "--exam", examPath, "--seed", "5", "--no-color"}

	var out, err bytes.Buffer
	if code := Run(args, &out, &err); code != ExitOK {
		t.Fatalf("first run failed: %d (%q)", code, err.String())
	}
	out.Reset()
	err.Reset()
	if code := Run(args, &out, &err); code != ExitError {
		t.Fatalf("expected exit %d, got %d", ExitError, code)
	}
	if !strings.Contains(err.String(), "manifest already exists") {
		t.Fatalf("expected overwrite error, got %q", err.String())
	}
}

// TestSelectVersions verifies lettered manifests with distinct IDs.
func TestSelectVersions(t *testing.T) {
	defer goleak.VerifyNone(t)
	examPath := writeExam(t, sampleExam)
	outDir := filepath.Join(t.TempDir(), "out")

	var out, err bytes.Buffer
	code := Run([]string{"select", "--exam", examPath, "--seed", "9", "--versions", "3", "--out", outDir, "--no-color"}, &out, &err)
	if code != ExitOK {
		t.Fatalf("expected exit %d, got %d (stderr %q)", ExitOK, code, err.String())
	}
	seen := map[string]bool{}
	for _, label := range []string{"A", "B", "C"} {
		exam := readManifest(t, filepath.Join(outDir, "exam-"+label+".json"))
		if exam.Version != label {
			t.Fatalf("expected version %s, got %s", label, exam.Version)
		}
		if seen[exam.ID] {
			t.Fatalf("duplicate exam ID %s", exam.ID)
		}
		seen[exam.ID] = true
	}
}

// TestSelectRandomSeed verifies a generated seed is announced.
func TestSelectRandomSeed(t *testing.T) {
	original := newSeed
	t.Cleanup(func() { newSeed = original })
	newSeed = func() (int64, error) { return 77, nil }

	examPath := writeExam(t, sampleExam)
	var out, err bytes.Buffer
	code := Run([]string{"select", "--exam", examPath, "--no-color"}, &out, &err)
	if code != ExitOK {
		t.Fatalf("expected exit %d, got %d (stderr %q)", ExitOK, code, err.String())
	}
	if !strings.Contains(out.String(), "Using random seed 77") {
		t.Fatalf("expected seed announcement, got %q", out.String())
	}
	if exam := readManifest(t, filepath.Join(filepath.Dir(examPath), "exam.json")); exam.Seed != 77 {
		t.Fatalf("expected seed 77, got %d", exam.Seed)
	}
}

// TestSelectRejectsBadFlags verifies usage errors.
func TestSelectRejectsBadFlags(t *testing.T) {
	cases := [][]string{
		{"select", "--seed", "abc"},
		{"select", "--versions", "0"},
		{"select", "--color", "sometimes"},
		{"select", "positional"},
	}
	for _, args := range cases {
		var out, err bytes.Buffer
		if code := Run(args, &out, &err); code != ExitUsage {
			t.Fatalf("%v: expected exit %d, got %d", args, ExitUsage, code)
		}
	}
}

// TestSelectDuplicateWritesNothing verifies fatal errors abort before any manifest.
func TestSelectDuplicateWritesNothing(t *testing.T) {
	exam := sampleExam + `again:
  question: What   is a zombie process?
  type: shortAnswer
`
	examPath := writeExam(t, exam)

	var out, err bytes.Buffer
	code := Run([]string{"select", "--exam", examPath, "--seed", "1", "--no-color"}, &out, &err)
	if code != ExitError {
		t.Fatalf("expected exit %d, got %d", ExitError, code)
	}
	if !strings.Contains(err.String(), "duplicate question") {
		t.Fatalf("expected duplicate error, got %q", err.String())
	}
	if _, statErr := os.Stat(filepath.Join(filepath.Dir(examPath), "exam.json")); !os.IsNotExist(statErr) {
		t.Fatalf("expected no manifest, got %v", statErr)
	}
}

// TestSelectVerboseLogsQuestions verifies debug logs go to stderr.
func TestSelectVerboseLogsQuestions(t *testing.T) {
	examPath := writeExam(t, sampleExam)

	var out, err bytes.Buffer
	code := Run([]string{"select", "--exam", examPath, "--seed", "3", "--verbose", "--no-color"}, &out, &err)
	if code != ExitOK {
		t.Fatalf("expected exit %d, got %d (stderr %q)", ExitOK, code, err.String())
	}
	if !strings.Contains(err.String(), "adding question") {
		t.Fatalf("expected debug logs, got %q", err.String())
	}
	if strings.Contains(out.String(), "adding question") {
		t.Fatalf("expected logs to stay off stdout")
	}
}
