package contenthash

import (
	"errors"
	"testing"
)

func TestHashIgnoresWhitespace(t *testing.T) {
	a := Hash("What does fork()\n  return?")
	b := Hash("What does\tfork() return ?")
	if a != b {
		t.Fatalf("expected equal digests, got %s and %s", a, b)
	}
	if len(a) != 32 {
		t.Fatalf("expected 32 hex characters, got %d", len(a))
	}
}

func TestHashDistinguishesText(t *testing.T) {
	if Hash("What is a page?") == Hash("What is a frame?") {
		t.Fatalf("expected different digests")
	}
}

func TestNormalizeStripsUnicodeSpace(t *testing.T) {
	if got := Normalize("a b \r\nc"); got != "abc" {
		t.Fatalf("expected abc, got %q", got)
	}
}

func TestRegistryRejectsDuplicate(t *testing.T) {
	registry := NewRegistry()
	digest := Hash("Define deadlock.")
	if err := registry.Register(digest, "exam.yml/week1/deadlock"); err != nil {
		t.Fatalf("register: %v", err)
	}
	err := registry.Register(digest, "week2.yml/deadlock")
	if err == nil {
		t.Fatalf("expected duplicate error")
	}
	var dup *DuplicateError
	if !errors.As(err, &dup) {
		t.Fatalf("expected DuplicateError, got %T", err)
	}
	if dup.OriginalPath != "exam.yml/week1/deadlock" || dup.Path != "week2.yml/deadlock" {
		t.Fatalf("unexpected paths: %+v", dup)
	}
}

func TestRegistryRejectsRepeatedPath(t *testing.T) {
	registry := NewRegistry()
	digest := Hash("Define livelock.")
	if err := registry.Register(digest, "exam.yml/livelock"); err != nil {
		t.Fatalf("register: %v", err)
	}
	var dup *DuplicateError
	if err := registry.Register(digest, "exam.yml/livelock"); !errors.As(err, &dup) {
		t.Fatalf("expected DuplicateError for a repeated path, got %v", err)
	}
	if registry.Len() != 1 {
		t.Fatalf("expected one digest, got %d", registry.Len())
	}
}
