package selector

import (
	"fmt"

	"go.uber.org/zap"
)

// Shortfall records a constraint that asked for more than its subtree could supply.
// It is a warning: the run keeps everything that was available.
type Shortfall struct {
	Path       string `json:"path"`
	Constraint string `json:"constraint"`
	Requested  int    `json:"requested"`
	Available  int    `json:"available"`
	Unit       string `json:"unit"`
}

func (s Shortfall) String() string {
	return fmt.Sprintf("%s: %s requested %d %s but only %d available", s.Path, s.Constraint, s.Requested, s.Unit, s.Available)
}

func (s *RunState) shortfall(path, constraint string, requested, available int, unit string) {
	diag := Shortfall{
		Path:       path,
		Constraint: constraint,
		Requested:  requested,
		Available:  available,
		Unit:       unit,
	}
	s.diagnostics = append(s.diagnostics, diag)
	s.logger.Warn("constraint shortfall",
		zap.String("path", path),
		zap.String("constraint", constraint),
		zap.Int("requested", requested),
		zap.Int("available", available),
		zap.String("unit", unit),
	)
}
