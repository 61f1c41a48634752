package selector

import "examgen/internal/bank"

// Result is the ordered selection of a subtree with its totals.
type Result struct {
	Questions []bank.Question
	Points    int
	Count     int
}

func newResult(questions []bank.Question) Result {
	return Result{Questions: questions, Points: sumPoints(questions), Count: len(questions)}
}

// Paths returns the originating path of each selected question in order.
func (r Result) Paths() []string {
	paths := make([]string, len(r.Questions))
	for i, q := range r.Questions {
		paths[i] = q.Path
	}
	return paths
}

func sumPoints(questions []bank.Question) int {
	total := 0
	for _, q := range questions {
		total += q.Points
	}
	return total
}
