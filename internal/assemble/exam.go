// Package assemble turns a selection into the ordered exam handed to the renderer.
package assemble

import (
	"fmt"

	"github.com/google/uuid"

	"examgen/internal/bank"
	"examgen/internal/config"
	"examgen/internal/selector"
	"examgen/internal/shuffle"
)

// examNamespace scopes exam IDs so the same seed and version always name the same exam.
var examNamespace = uuid.MustParse("8d4f2c1e-6a3b-5e7d-9c0f-1b2a3d4e5f60")

// groupOrder is the order of question groups on the page. Bonus questions follow in their own group.
var groupOrder = []bank.QuestionType{
	bank.ShortAnswer,
	bank.LongAnswer,
	bank.Matching,
	bank.TrueFalse,
	bank.MultipleChoice,
}

var groupTitles = map[bank.QuestionType]string{
	bank.ShortAnswer:    "Short Answer",
	bank.LongAnswer:     "Long Answer",
	bank.Matching:       "Matching",
	bank.TrueFalse:      "True/False",
	bank.MultipleChoice: "Multiple Choice",
}

// Item is one numbered question of the assembled exam.
type Item struct {
	Number   int               `json:"number"`
	Path     string            `json:"path"`
	Type     bank.QuestionType `json:"type"`
	Text     string            `json:"question"`
	Points   int               `json:"points"`
	Bonus    bool              `json:"bonus,omitempty"`
	Required bool              `json:"required,omitempty"`
	Hash     string            `json:"hash"`
	// Choices are the shuffled multiple choice options or matching right-hand sides.
	Choices []string    `json:"choices,omitempty"`
	Answer  bank.Answer `json:"answer"`
}

// Group collects the questions printed under one heading.
type Group struct {
	Type      bank.QuestionType `json:"type,omitempty"`
	Bonus     bool              `json:"bonus,omitempty"`
	Title     string            `json:"title"`
	Points    int               `json:"points"`
	Questions []Item            `json:"questions"`
}

// Exam is the manifest of one exam version.
type Exam struct {
	ID            string               `json:"id"`
	Version       string               `json:"version,omitempty"`
	Seed          int64                `json:"seed"`
	Settings      config.Settings      `json:"settings"`
	AnswerKey     bool                 `json:"answerKey"`
	Groups        []Group              `json:"groups"`
	TotalPoints   int                  `json:"totalPoints"`
	BonusPoints   int                  `json:"bonusPoints"`
	QuestionCount int                  `json:"questionCount"`
	GrandTotal    int                  `json:"grandTotal"`
	Passes        int                  `json:"passes"`
	Diagnostics   []selector.Shortfall `json:"diagnostics,omitempty"`
}

// Options control assembly.
type Options struct {
	Version   string
	Settings  config.Settings
	AnswerKey bool
	Inspect   bool
}

// ExamID derives the stable identifier of a seed and version.
func ExamID(seed int64, version string) string {
	return uuid.NewSHA1(examNamespace, []byte(fmt.Sprintf("%d|%s", seed, version))).String()
}

// Build groups, orders and numbers the selected questions of outcome.
func Build(outcome selector.Outcome, opts Options) (Exam, error) {
	exam := Exam{
		ID:          ExamID(outcome.Seed, opts.Version),
		Version:     opts.Version,
		Seed:        outcome.Seed,
		Settings:    opts.Settings,
		AnswerKey:   opts.AnswerKey,
		GrandTotal:  outcome.GrandTotal,
		Passes:      outcome.Passes,
		Diagnostics: outcome.Diagnostics,
	}

	byType := map[bank.QuestionType][]bank.Question{}
	var bonus []bank.Question
	for _, q := range outcome.Result.Questions {
		if q.Bonus {
			bonus = append(bonus, q)
			continue
		}
		byType[q.Type] = append(byType[q.Type], q)
	}

	number := 1
	add := func(group Group, key string, questions []bank.Question) error {
		if len(questions) == 0 {
			return nil
		}
		rng := shuffle.New(shuffle.DeriveSeed(outcome.Seed, "assemble", key), opts.Inspect)
		for _, q := range shuffle.Shuffle(rng, questions) {
			item, err := buildItem(q, outcome.Seed, opts.Inspect)
			if err != nil {
				return err
			}
			item.Number = number
			number++
			group.Points += item.Points
			group.Questions = append(group.Questions, item)
		}
		exam.Groups = append(exam.Groups, group)
		return nil
	}

	for _, qt := range groupOrder {
		group := Group{Type: qt, Title: groupTitles[qt]}
		if err := add(group, string(qt), byType[qt]); err != nil {
			return Exam{}, err
		}
	}
	if err := add(Group{Bonus: true, Title: "Bonus"}, "bonus", bonus); err != nil {
		return Exam{}, err
	}

	for _, group := range exam.Groups {
		exam.QuestionCount += len(group.Questions)
		if group.Bonus {
			exam.BonusPoints += group.Points
		} else {
			exam.TotalPoints += group.Points
		}
	}
	return exam, nil
}

func buildItem(q bank.Question, seed int64, inspect bool) (Item, error) {
	item := Item{
		Path:     q.Path,
		Type:     q.Type,
		Text:     q.Text,
		Points:   q.Points,
		Bonus:    q.Bonus,
		Required: q.Required,
		Hash:     q.Hash,
		Answer:   q.Answer,
	}

	var options []string
	switch q.Type {
	case bank.MultipleChoice:
		options = append([]string{q.Answer.Correct}, q.Answer.Wrong...)
	case bank.Matching:
		for _, pair := range q.Answer.Pairs {
			options = append(options, pair.Right)
		}
	default:
		return item, nil
	}

	rng := shuffle.New(shuffle.DeriveSeed(seed, "choices", q.Path), inspect)
	shuffled, err := rng.Sequence(options)
	if err != nil {
		return Item{}, fmt.Errorf("shuffle choices of %s: %w", q.Path, err)
	}
	item.Choices = shuffled.([]string)
	return item, nil
}
