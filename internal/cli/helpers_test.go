package cli

import (
	"os"
	"path/filepath"
	"testing"
)

const sampleExam = `test: Midterm
courseName: Operating Systems
defaultSolutionSpace: 1in
processes:
  maxPoints: 4
  fork:
    question: What does fork return in the child?
    type: multipleChoice
    correctAnswer: "0"
    wrongAnswers: ["-1", "the child pid"]
  exec:
    question: Does exec create a new process?
    type: trueFalse
    answer: false
  zombie:
    question: What is a zombie process?
    type: shortAnswer
  wait:
    question: Which call reaps a child?
    type: multipleChoice
    correctAnswer: wait
    wrongAnswers: [kill]
memory:
  include: memory.yml
`

const sampleMemory = `paging:
  question: Why does paging avoid external fragmentation?
  type: longAnswer
  points: 5
tlb:
  question: The TLB caches page table entries.
  type: trueFalse
  answer: true
  bonus: true
`

// writeExam writes the sample bank into a temp dir and returns the exam path.
func writeExam(t *testing.T, exam string) string {
	t.Helper()
	dir := t.TempDir()
	examPath := filepath.Join(dir, "exam.yml")
	if err := os.WriteFile(examPath, []byte(exam), 0o644); err != nil {
		t.Fatalf("write exam: %v", err)
	}
	if err := os.WriteFile(filepath.Join(dir, "memory.yml"), []byte(sampleMemory), 0o644); err != nil {
		t.Fatalf("write memory: %v", err)
	}
	return examPath
}
