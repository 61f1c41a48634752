package selector

import (
	"go.uber.org/zap"

	"examgen/internal/bank"
)

// Outcome is the final selection of a run.
type Outcome struct {
	Result      Result
	Seed        int64
	GrandTotal  int
	Passes      int
	Diagnostics []Shortfall
}

// Run resolves root once, or twice when any section declares maxPercent: the first pass
// only measures the grand total, the second starts from a fresh state with the same seed
// and evaluates percent caps against that total.
func Run(root *bank.Section, opts Options) (Outcome, error) {
	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	if root == nil || !root.HasPercentConstraint() {
		pass := opts
		pass.Logger = logger.With(zap.Int("pass", 1))
		state := NewRunState(pass)
		result, err := state.Resolve(root)
		if err != nil {
			return Outcome{}, err
		}
		return Outcome{
			Result:      result,
			Seed:        opts.Seed,
			GrandTotal:  result.Points,
			Passes:      1,
			Diagnostics: state.Diagnostics(),
		}, nil
	}

	firstOpts := opts
	firstOpts.Logger = logger.With(zap.Int("pass", 1))
	first, err := NewRunState(firstOpts).Resolve(root)
	if err != nil {
		return Outcome{}, err
	}
	logger.Info("percent constraints found, re-running with grand total",
		zap.Int("grand_total", first.Points),
		zap.Int64("seed", opts.Seed),
	)

	finalOpts := opts
	finalOpts.Logger = logger.With(zap.Int("pass", 2))
	state := newFinalState(finalOpts, first.Points)
	result, err := state.Resolve(root)
	if err != nil {
		return Outcome{}, err
	}
	return Outcome{
		Result:      result,
		Seed:        opts.Seed,
		GrandTotal:  result.Points,
		Passes:      2,
		Diagnostics: state.Diagnostics(),
	}, nil
}
