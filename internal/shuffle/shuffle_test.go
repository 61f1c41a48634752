package shuffle

import (
	"errors"
	"slices"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestShuffleIsReproducible(t *testing.T) {
	items := []string{"a", "b", "c", "d", "e", "f", "g", "h"}

	first := New(42, false)
	second := New(42, false)
	for round := 0; round < 3; round++ {
		got := Shuffle(first, items)
		want := Shuffle(second, items)
		if diff := cmp.Diff(want, got); diff != "" {
			t.Fatalf("round %d: shuffles differ (-want +got):\n%s", round, diff)
		}
	}
}

func TestShuffleDoesNotMutateInput(t *testing.T) {
	items := []int{1, 2, 3, 4, 5}
	original := slices.Clone(items)

	out := Shuffle(New(7, false), items)

	if diff := cmp.Diff(original, items); diff != "" {
		t.Fatalf("input mutated (-want +got):\n%s", diff)
	}
	sorted := slices.Clone(out)
	slices.Sort(sorted)
	if diff := cmp.Diff(original, sorted); diff != "" {
		t.Fatalf("output is not a permutation (-want +got):\n%s", diff)
	}
}

func TestShuffleDiffersAcrossSeeds(t *testing.T) {
	items := make([]int, 32)
	for i := range items {
		items[i] = i
	}
	a := Shuffle(New(1, false), items)
	b := Shuffle(New(2, false), items)
	if slices.Equal(a, b) {
		t.Fatalf("expected different permutations for different seeds")
	}
}

func TestInspectionModeIsIdentity(t *testing.T) {
	items := []string{"x", "y", "z"}
	s := New(42, true)

	got := Shuffle(s, items)

	if diff := cmp.Diff(items, got); diff != "" {
		t.Fatalf("inspection shuffle changed order (-want +got):\n%s", diff)
	}
	if s.Draws() != 0 {
		t.Fatalf("expected no draws in inspection mode, got %d", s.Draws())
	}
	if !s.Inspecting() {
		t.Fatalf("expected inspecting shuffler")
	}
}

func TestShuffleCountsDraws(t *testing.T) {
	s := New(3, false)
	Shuffle(s, []int{1, 2, 3})
	Shuffle(s, []int{1, 2})
	if s.Draws() != 5 {
		t.Fatalf("expected 5 draws, got %d", s.Draws())
	}
}

func TestSequenceShufflesArrays(t *testing.T) {
	s := New(9, false)
	out, err := s.Sequence([4]int{1, 2, 3, 4})
	if err != nil {
		t.Fatalf("sequence: %v", err)
	}
	values, ok := out.([]int)
	if !ok {
		t.Fatalf("expected []int, got %T", out)
	}
	slices.Sort(values)
	if !slices.Equal(values, []int{1, 2, 3, 4}) {
		t.Fatalf("unexpected values %v", values)
	}
}

func TestSequenceRejectsUnorderedValues(t *testing.T) {
	s := New(9, false)
	for _, value := range []any{map[string]string{"a": "b"}, struct{}{}, 5, nil} {
		_, err := s.Sequence(value)
		var typeErr *TypeError
		if !errors.As(err, &typeErr) {
			t.Fatalf("expected TypeError for %T, got %v", value, err)
		}
	}
}

func TestDeriveSeedIsStableAndNonNegative(t *testing.T) {
	a := DeriveSeed(42, "exam.yml/week1")
	b := DeriveSeed(42, "exam.yml/week1")
	if a != b {
		t.Fatalf("expected stable derived seed, got %d and %d", a, b)
	}
	if a < 0 {
		t.Fatalf("expected non-negative seed, got %d", a)
	}
	if DeriveSeed(42, "exam.yml/week2") == a {
		t.Fatalf("expected labels to change the derived seed")
	}
	if DeriveSeed(43, "exam.yml/week1") == a {
		t.Fatalf("expected seeds to change the derived seed")
	}
}

func TestNewSeedIsNonNegative(t *testing.T) {
	for i := 0; i < 8; i++ {
		seed, err := NewSeed()
		if err != nil {
			t.Fatalf("new seed: %v", err)
		}
		if seed < 0 {
			t.Fatalf("expected non-negative seed, got %d", seed)
		}
	}
}
