package selector

import (
	"fmt"
	"math"

	"go.uber.org/zap"

	"examgen/internal/bank"
	"examgen/internal/config"
	"examgen/internal/shuffle"
)

// Caps choose members with the section's stream; survivors always keep pool order.

// pinRequired moves required questions to the front, keeping relative order.
func pinRequired(pool []bank.Question) []bank.Question {
	out := make([]bank.Question, 0, len(pool))
	for _, q := range pool {
		if q.Required {
			out = append(out, q)
		}
	}
	for _, q := range pool {
		if !q.Required {
			out = append(out, q)
		}
	}
	return out
}

// visitOrder shuffles the positions of items and then moves required ones to the front.
func visitOrder(rng *shuffle.Shuffler, items []bank.Question) []int {
	perm := rng.Perm(len(items))
	order := make([]int, 0, len(perm))
	for _, i := range perm {
		if items[i].Required {
			order = append(order, i)
		}
	}
	for _, i := range perm {
		if !items[i].Required {
			order = append(order, i)
		}
	}
	return order
}

// capPoints keeps items while the running total stays within limit. When everything
// already fits no draws are made.
func capPoints(rng *shuffle.Shuffler, items []bank.Question, limit int) (keep []bool, used int, truncated bool) {
	keep = make([]bool, len(items))
	total := sumPoints(items)
	if total <= limit {
		for i := range keep {
			keep[i] = true
		}
		return keep, total, false
	}
	for _, i := range visitOrder(rng, items) {
		if used+items[i].Points <= limit {
			keep[i] = true
			used += items[i].Points
		}
	}
	return keep, used, true
}

func pick(pool []bank.Question, positions []int) []bank.Question {
	out := make([]bank.Question, len(positions))
	for j, i := range positions {
		out[j] = pool[i]
	}
	return out
}

func filter(pool []bank.Question, keep []bool) []bank.Question {
	out := make([]bank.Question, 0, len(pool))
	for i, q := range pool {
		if keep[i] {
			out = append(out, q)
		}
	}
	return out
}

// applyPointCaps applies the per-type caps, in bank.QuestionTypes order, and then the
// section-wide maxPoints to the union of typed survivors and uncapped types.
func (s *RunState) applyPointCaps(section *bank.Section, rng *shuffle.Shuffler, pool []bank.Question) []bank.Question {
	c := section.Constraints
	keep := make([]bool, len(pool))
	for i := range keep {
		keep[i] = true
	}

	var overflow []int
	for _, qt := range bank.QuestionTypes {
		limit, capped := c.MaxPointsByType[qt]
		if !capped {
			continue
		}
		var positions []int
		for i, q := range pool {
			if q.Type == qt {
				positions = append(positions, i)
			}
		}
		items := pick(pool, positions)
		label := fmt.Sprintf("maxPointsByType[%s]", qt)
		supply := sumPoints(items)
		if supply < limit {
			s.shortfall(section.Path, label, limit, supply, "points")
		}
		typeKeep, used, truncated := capPoints(rng, items, limit)
		for j, i := range positions {
			if !typeKeep[j] {
				keep[i] = false
				overflow = append(overflow, i)
			}
		}
		if truncated {
			s.logTruncation(section, label, limit, items, used, countTrue(typeKeep))
		}
	}

	if c.MaxPoints == 0 {
		return filter(pool, keep)
	}

	var positions []int
	for i := range pool {
		if keep[i] {
			positions = append(positions, i)
		}
	}
	items := pick(pool, positions)
	supply := sumPoints(items)
	spill := s.overflow == config.OverflowSpill && len(overflow) > 0
	if spill {
		supply += sumPoints(pick(pool, overflow))
	}
	if supply < c.MaxPoints {
		s.shortfall(section.Path, "maxPoints", c.MaxPoints, supply, "points")
	}

	mainKeep, used, truncated := capPoints(rng, items, c.MaxPoints)
	for j, i := range positions {
		keep[i] = mainKeep[j]
	}
	if spill {
		leftovers := pick(pool, overflow)
		for _, j := range visitOrder(rng, leftovers) {
			if used+leftovers[j].Points <= c.MaxPoints {
				keep[overflow[j]] = true
				used += leftovers[j].Points
			}
		}
	}
	out := filter(pool, keep)
	if truncated || spill {
		s.logTruncation(section, "maxPoints", c.MaxPoints, pool, used, len(out))
	}
	return out
}

// applyQuestionCap keeps at most maxQuestions questions.
func (s *RunState) applyQuestionCap(section *bank.Section, rng *shuffle.Shuffler, pool []bank.Question) []bank.Question {
	limit := section.Constraints.MaxQuestions
	if len(pool) < limit {
		s.shortfall(section.Path, "maxQuestions", limit, len(pool), "questions")
	}
	if len(pool) <= limit {
		return pool
	}
	keep := make([]bool, len(pool))
	for _, i := range visitOrder(rng, pool)[:limit] {
		keep[i] = true
	}
	out := filter(pool, keep)
	s.logTruncation(section, "maxQuestions", limit, pool, sumPoints(out), len(out))
	return out
}

// applyPercentCap keeps questions until their total passes percent of the grand total.
// The item that crosses the target is kept.
func (s *RunState) applyPercentCap(section *bank.Section, rng *shuffle.Shuffler, pool []bank.Question) []bank.Question {
	target := PercentTarget(section.Constraints.MaxPercent, s.grandTotal)
	available := sumPoints(pool)
	if available < target {
		s.shortfall(section.Path, "maxPercent", target, available, "points")
		return pool
	}
	if available == target {
		return pool
	}
	keep := make([]bool, len(pool))
	running := 0
	for _, i := range visitOrder(rng, pool) {
		keep[i] = true
		running += pool[i].Points
		if running > target {
			break
		}
	}
	out := filter(pool, keep)
	s.logTruncation(section, "maxPercent", target, pool, running, len(out))
	return out
}

// percentEpsilon absorbs binary rounding in decimal percents such as 4.6.
const percentEpsilon = 1e-9

// PercentTarget is floor(percent/100 * grandTotal).
func PercentTarget(percent float64, grandTotal int) int {
	return int(math.Floor(percent*float64(grandTotal)/100 + percentEpsilon))
}

func (s *RunState) logTruncation(section *bank.Section, constraint string, limit int, before []bank.Question, newPoints, newCount int) {
	s.logger.Info("constraint applied",
		zap.String("kind", section.Kind.String()),
		zap.String("path", section.Path),
		zap.String("constraint", constraint),
		zap.Int("limit", limit),
		zap.Int("old_points", sumPoints(before)),
		zap.Int("old_questions", len(before)),
		zap.Int("new_points", newPoints),
		zap.Int("new_questions", newCount),
	)
}

func countTrue(values []bool) int {
	n := 0
	for _, v := range values {
		if v {
			n++
		}
	}
	return n
}
