// Package shuffle provides the seeded permutations behind every random choice of an exam.
//
// A Shuffler pairs each element with a fresh 64-bit draw from a PCG source and sorts by
// the draws. PCG is a fixed algorithm, so the same seed and the same sequence of calls
// give the same permutations on every machine and Go release.
package shuffle

import (
	"cmp"
	"fmt"
	"math/rand/v2"
	"reflect"
	"slices"
)

// pcgIncrement selects the PCG stream. Changing it changes every exam ever generated.
const pcgIncrement = 0x9e3779b97f4a7c15

// TypeError is returned when asked to shuffle a value without a natural order.
type TypeError struct {
	Kind string
}

func (err *TypeError) Error() string {
	return fmt.Sprintf("cannot shuffle a %s: only slices and arrays have an order", err.Kind)
}

// Shuffler is a seeded permutation source. It is not safe for concurrent use.
type Shuffler struct {
	rng     *rand.Rand
	inspect bool
	draws   int
}

// New returns a shuffler seeded with seed. In inspection mode every shuffle is the identity.
func New(seed int64, inspect bool) *Shuffler {
	return &Shuffler{
		rng:     rand.New(rand.NewPCG(uint64(seed), pcgIncrement)),
		inspect: inspect,
	}
}

// Inspecting reports whether shuffles are the identity.
func (s *Shuffler) Inspecting() bool {
	return s.inspect
}

// Draws returns how many values have been drawn so far.
func (s *Shuffler) Draws() int {
	return s.draws
}

// Perm returns a permutation of [0, n).
func (s *Shuffler) Perm(n int) []int {
	type keyed struct {
		draw  uint64
		index int
	}
	keys := make([]keyed, n)
	for i := range keys {
		keys[i].index = i
		if !s.inspect {
			keys[i].draw = s.rng.Uint64()
			s.draws++
		}
	}
	if !s.inspect {
		slices.SortStableFunc(keys, func(a, b keyed) int {
			return cmp.Compare(a.draw, b.draw)
		})
	}
	perm := make([]int, n)
	for i, key := range keys {
		perm[i] = key.index
	}
	return perm
}

// Shuffle returns a permuted copy of items. The input is never modified.
func Shuffle[T any](s *Shuffler, items []T) []T {
	out := make([]T, len(items))
	for i, j := range s.Perm(len(items)) {
		out[i] = items[j]
	}
	return out
}

// Sequence shuffles any slice or array and returns a new slice of the same element type.
// Maps, structs and scalars fail with *TypeError.
func (s *Shuffler) Sequence(value any) (any, error) {
	if value == nil {
		return nil, &TypeError{Kind: "nil"}
	}
	rv := reflect.ValueOf(value)
	switch rv.Kind() {
	case reflect.Slice, reflect.Array:
	default:
		return nil, &TypeError{Kind: rv.Kind().String()}
	}
	n := rv.Len()
	out := reflect.MakeSlice(reflect.SliceOf(rv.Type().Elem()), n, n)
	for i, j := range s.Perm(n) {
		out.Index(i).Set(rv.Index(j))
	}
	return out.Interface(), nil
}
