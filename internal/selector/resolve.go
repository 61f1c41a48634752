package selector

import (
	"strings"

	"go.uber.org/zap"

	"examgen/internal/bank"
	"examgen/internal/contenthash"
)

// Resolve selects the questions of section and its subtree, bottom-up.
// Configuration and duplicate errors are fatal and abort the whole pass.
func (s *RunState) Resolve(section *bank.Section) (Result, error) {
	if section == nil {
		return Result{}, bank.Misconfigured("", "no section to resolve")
	}
	questions, err := s.resolveSection(section, s.defaults)
	if err != nil {
		return Result{}, err
	}
	return newResult(questions), nil
}

func (s *RunState) resolveSection(section *bank.Section, inherited bank.Defaults) ([]bank.Question, error) {
	defaults := inherited.Merge(section.Defaults)
	c := section.Constraints
	if c.MaxPoints > 0 && c.MaxPercent > 0 {
		return nil, bank.Misconfigured(section.Path, "maxPoints and maxPercent cannot both be set on one section")
	}

	var pool []bank.Question
	for _, child := range section.Children {
		switch node := child.(type) {
		case *bank.Question:
			q, err := s.resolveQuestion(node, defaults)
			if err != nil {
				return nil, err
			}
			pool = append(pool, q)
		case *bank.Section:
			selected, err := s.resolveSection(node, defaults)
			if err != nil {
				return nil, err
			}
			pool = append(pool, selected...)
		default:
			return nil, bank.Misconfigured(section.Path, "unsupported child node %T", child)
		}
	}

	if c.Empty() {
		s.logSection(section, pool)
		return pool, nil
	}

	pool = pinRequired(pool)
	rng := s.stream(section.Path)
	if c.MaxPoints > 0 || len(c.MaxPointsByType) > 0 {
		pool = s.applyPointCaps(section, rng, pool)
	}
	if c.MaxQuestions > 0 {
		pool = s.applyQuestionCap(section, rng, pool)
	}
	if c.MaxPercent > 0 && s.grandKnown {
		pool = s.applyPercentCap(section, rng, pool)
	}
	s.logSection(section, pool)
	return pool, nil
}

// resolveQuestion returns a copy of q with defaults applied and its hash registered.
func (s *RunState) resolveQuestion(q *bank.Question, defaults bank.Defaults) (bank.Question, error) {
	out := *q
	if strings.TrimSpace(out.Text) == "" {
		return bank.Question{}, bank.Misconfigured(q.Path, "question text is required")
	}
	if _, err := bank.ParseQuestionType(string(out.Type)); err != nil {
		return bank.Question{}, bank.Misconfigured(q.Path, "%v", err)
	}
	if out.Points <= 0 {
		out.Points = defaults.Points
	}
	if out.Type.FreeResponse() && out.Answer.SolutionSpace == "" {
		if defaults.SolutionSpace == "" {
			return bank.Question{}, bank.Misconfigured(q.Path, "solutionSpace and defaultSolutionSpace cannot both be undefined for %s questions", out.Type)
		}
		out.Answer.SolutionSpace = defaults.SolutionSpace
	}
	out.Hash = contenthash.Hash(out.Text)
	if err := s.registry.Register(out.Hash, out.Path); err != nil {
		return bank.Question{}, err
	}
	s.logger.Debug("adding question",
		zap.String("path", out.Path),
		zap.String("type", string(out.Type)),
		zap.Int("points", out.Points),
	)
	return out, nil
}

func (s *RunState) logSection(section *bank.Section, pool []bank.Question) {
	s.logger.Debug("section resolved",
		zap.String("kind", section.Kind.String()),
		zap.String("path", section.Path),
		zap.Int("questions", len(pool)),
		zap.Int("points", sumPoints(pool)),
	)
}
