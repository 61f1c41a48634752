package bank

import (
	"fmt"
	"strings"
)

// QuestionType identifies how a question is answered and laid out.
type QuestionType string

const (
	MultipleChoice QuestionType = "multipleChoice"
	TrueFalse      QuestionType = "trueFalse"
	ShortAnswer    QuestionType = "shortAnswer"
	LongAnswer     QuestionType = "longAnswer"
	Matching       QuestionType = "matching"
)

// QuestionTypes lists every type in the fixed order used wherever types are iterated.
var QuestionTypes = []QuestionType{MultipleChoice, TrueFalse, ShortAnswer, LongAnswer, Matching}

// ParseQuestionType matches a type name case-insensitively.
func ParseQuestionType(value string) (QuestionType, error) {
	normalized := strings.ToLower(strings.TrimSpace(value))
	for _, qt := range QuestionTypes {
		if strings.ToLower(string(qt)) == normalized {
			return qt, nil
		}
	}
	return "", fmt.Errorf("unknown question type %q", value)
}

// FreeResponse reports whether the type needs a solution space on the page.
func (qt QuestionType) FreeResponse() bool {
	return qt == ShortAnswer || qt == LongAnswer
}

// Node is either a *Question or a *Section.
type Node interface {
	NodePath() string
}

// MatchPair is one left/right pairing of a matching question.
type MatchPair struct {
	Left  string `json:"left" yaml:"left"`
	Right string `json:"right" yaml:"right"`
}

// Answer holds the type-specific answer payload.
type Answer struct {
	Solution      string      `json:"solution,omitempty"`
	SolutionSpace string      `json:"solutionSpace,omitempty"`
	Correct       string      `json:"correctAnswer,omitempty"`
	Wrong         []string    `json:"wrongAnswers,omitempty"`
	Truth         *bool       `json:"answer,omitempty"`
	Pairs         []MatchPair `json:"pairs,omitempty"`
}

// Question is a leaf of the bank tree. Points is zero until defaults are resolved.
type Question struct {
	Path     string
	Type     QuestionType
	Text     string
	Points   int
	Bonus    bool
	Required bool
	Answer   Answer
	Hash     string
}

func (q *Question) NodePath() string { return q.Path }

// SectionKind records where a section came from.
type SectionKind int

const (
	KindSection SectionKind = iota
	KindFile
)

func (k SectionKind) String() string {
	if k == KindFile {
		return "File"
	}
	return "Section"
}

// Defaults are inherited by every descendant that does not override them.
type Defaults struct {
	Points        int
	SolutionSpace string
}

// Merge returns d overridden by any value set in child.
func (d Defaults) Merge(child Defaults) Defaults {
	if child.Points > 0 {
		d.Points = child.Points
	}
	if child.SolutionSpace != "" {
		d.SolutionSpace = child.SolutionSpace
	}
	return d
}

// Constraints are the numeric limits declared on a section. Zero means unset.
type Constraints struct {
	MaxQuestions    int
	MaxPoints       int
	MaxPercent      float64
	MaxPointsByType map[QuestionType]int
}

// Empty reports whether no constraint is declared.
func (c Constraints) Empty() bool {
	return c.MaxQuestions == 0 && c.MaxPoints == 0 && c.MaxPercent == 0 && len(c.MaxPointsByType) == 0
}

// Section is an internal node of the bank tree.
type Section struct {
	Path        string
	Name        string
	Kind        SectionKind
	Children    []Node
	Constraints Constraints
	Defaults    Defaults
}

func (s *Section) NodePath() string { return s.Path }

// Walk visits s and every descendant section depth first.
func (s *Section) Walk(visit func(*Section) bool) {
	if !visit(s) {
		return
	}
	for _, child := range s.Children {
		if sub, ok := child.(*Section); ok {
			sub.Walk(visit)
		}
	}
}

// HasPercentConstraint reports whether any section in the tree declares maxPercent.
func (s *Section) HasPercentConstraint() bool {
	found := false
	s.Walk(func(sec *Section) bool {
		if sec.Constraints.MaxPercent > 0 {
			found = true
		}
		return !found
	})
	return found
}

// JoinPath appends name to a slash separated node path.
func JoinPath(parent, name string) string {
	if parent == "" {
		return name
	}
	return parent + "/" + name
}
