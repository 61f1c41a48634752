package selector

import (
	"go.uber.org/zap"

	"examgen/internal/bank"
	"examgen/internal/config"
	"examgen/internal/contenthash"
	"examgen/internal/shuffle"
)

// DefaultPoints is used for questions when no enclosing section sets defaultPoints.
const DefaultPoints = 2

// Options configure a selection run.
type Options struct {
	Seed     int64
	Inspect  bool
	Defaults bank.Defaults
	// Overflow comes from the validated exam settings; the zero value is strict.
	Overflow config.OverflowPolicy
	Logger   *zap.Logger
}

// RunState is the mutable state of one selection pass. Each pass, and each concurrent
// exam, owns its own RunState.
type RunState struct {
	seed        int64
	inspect     bool
	overflow    config.OverflowPolicy
	defaults    bank.Defaults
	registry    *contenthash.Registry
	grandTotal  int
	grandKnown  bool
	logger      *zap.Logger
	streams     map[string]*shuffle.Shuffler
	diagnostics []Shortfall
}

// NewRunState builds the state for a pass that does not know the grand total yet.
func NewRunState(opts Options) *RunState {
	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	return &RunState{
		seed:     opts.Seed,
		inspect:  opts.Inspect,
		overflow: opts.Overflow,
		defaults: bank.Defaults{Points: DefaultPoints}.Merge(opts.Defaults),
		registry: contenthash.NewRegistry(),
		logger:   logger,
		streams:  map[string]*shuffle.Shuffler{},
	}
}

// newFinalState builds the state of the second pass, which knows the grand total.
func newFinalState(opts Options, grandTotal int) *RunState {
	state := NewRunState(opts)
	state.grandTotal = grandTotal
	state.grandKnown = true
	return state
}

// Diagnostics returns the shortfalls recorded so far.
func (s *RunState) Diagnostics() []Shortfall {
	return append([]Shortfall(nil), s.diagnostics...)
}

// stream returns the shuffler owned by the section at path. Streams are seeded from the
// run seed and the path alone, so one section's draws never shift another's.
func (s *RunState) stream(path string) *shuffle.Shuffler {
	if rng, ok := s.streams[path]; ok {
		return rng
	}
	rng := shuffle.New(shuffle.DeriveSeed(s.seed, "section", path), s.inspect)
	s.streams[path] = rng
	return rng
}
