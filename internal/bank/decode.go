package bank

import (
	"io/fs"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// typeCapAliases are the short per-type cap keys accepted next to maxPointsByType.
var typeCapAliases = map[string]QuestionType{
	"maxMCPoints":       MultipleChoice,
	"maxTFPoints":       TrueFalse,
	"maxShortPoints":    ShortAnswer,
	"maxLongPoints":     LongAnswer,
	"maxMatchingPoints": Matching,
}

var questionKeys = map[string]struct{}{
	"question":      {},
	"type":          {},
	"points":        {},
	"bonus":         {},
	"required":      {},
	"solution":      {},
	"solutionSpace": {},
	"correctAnswer": {},
	"wrongAnswers":  {},
	"answer":        {},
	"pairs":         {},
}

func (l *loader) parseQuestion(path string, node *yaml.Node) *Question {
	q := &Question{Path: path}
	var typeName string
	for i := 0; i+1 < len(node.Content); i += 2 {
		key, value := node.Content[i].Value, node.Content[i+1]
		if _, ok := questionKeys[key]; !ok {
			l.issues.addf(path, "unknown key %q", key)
			continue
		}
		switch key {
		case "question":
			q.Text = l.nonEmptyString(path, key, value)
		case "type":
			typeName = l.nonEmptyString(path, key, value)
		case "points":
			q.Points = l.positiveInt(path, key, value)
		case "bonus":
			q.Bonus = l.boolean(path, key, value)
		case "required":
			q.Required = l.boolean(path, key, value)
		case "solution":
			q.Answer.Solution = l.str(path, key, value)
		case "solutionSpace":
			q.Answer.SolutionSpace = l.nonEmptyString(path, key, value)
		case "correctAnswer":
			q.Answer.Correct = l.nonEmptyString(path, key, value)
		case "wrongAnswers":
			q.Answer.Wrong = l.stringList(path, key, value)
		case "answer":
			truth := l.boolean(path, key, value)
			q.Answer.Truth = &truth
		case "pairs":
			if err := value.Decode(&q.Answer.Pairs); err != nil {
				l.issues.addf(path, "pairs: expected a list of {left, right}: %v", err)
			}
		}
	}

	if strings.TrimSpace(typeName) == "" {
		l.issues.add(path, "type: is required")
		return q
	}
	qt, err := ParseQuestionType(typeName)
	if err != nil {
		l.issues.addf(path, "type: %v", err)
		return q
	}
	q.Type = qt
	l.checkPayload(q)
	return q
}

// checkPayload verifies the answer fields each question type needs.
func (l *loader) checkPayload(q *Question) {
	switch q.Type {
	case MultipleChoice:
		if q.Answer.Correct == "" {
			l.issues.add(q.Path, "correctAnswer: is required for multipleChoice questions")
		}
		if len(q.Answer.Wrong) == 0 {
			l.issues.add(q.Path, "wrongAnswers: must include at least one entry")
		}
		for i, wrong := range q.Answer.Wrong {
			if strings.TrimSpace(wrong) == "" {
				l.issues.addf(q.Path, "wrongAnswers[%d]: is required", i)
			}
		}
	case TrueFalse:
		if q.Answer.Truth == nil {
			l.issues.add(q.Path, "answer: is required for trueFalse questions")
		}
	case Matching:
		if len(q.Answer.Pairs) < 2 {
			l.issues.add(q.Path, "pairs: matching questions need at least two pairs")
		}
		for i, pair := range q.Answer.Pairs {
			if strings.TrimSpace(pair.Left) == "" || strings.TrimSpace(pair.Right) == "" {
				l.issues.addf(q.Path, "pairs[%d]: left and right are required", i)
			}
		}
	}
}

func (l *loader) positiveInt(path, key string, node *yaml.Node) int {
	var value int
	if err := node.Decode(&value); err != nil {
		l.issues.addf(path, "%s: must be an integer", key)
		return 0
	}
	if value <= 0 {
		l.issues.addf(path, "%s: must be > 0", key)
		return 0
	}
	return value
}

func (l *loader) percent(path string, node *yaml.Node) float64 {
	var value float64
	if err := node.Decode(&value); err != nil {
		l.issues.add(path, "maxPercent: must be a number")
		return 0
	}
	if value <= 0 || value > 100 {
		l.issues.add(path, "maxPercent: must be in (0, 100]")
		return 0
	}
	return value
}

func (l *loader) pointsByType(path string, node *yaml.Node, byType map[QuestionType]int) {
	if node.Kind != yaml.MappingNode {
		l.issues.add(path, "maxPointsByType: expected a mapping of question type to points")
		return
	}
	for i := 0; i+1 < len(node.Content); i += 2 {
		name, value := node.Content[i].Value, node.Content[i+1]
		qt, err := ParseQuestionType(name)
		if err != nil {
			l.issues.addf(path, "maxPointsByType: %v", err)
			continue
		}
		l.setTypeCap(path, byType, qt, l.positiveInt(path, "maxPointsByType."+name, value))
	}
}

func (l *loader) setTypeCap(path string, byType map[QuestionType]int, qt QuestionType, limit int) {
	if limit == 0 {
		return
	}
	if _, exists := byType[qt]; exists {
		l.issues.addf(path, "point cap for %s declared more than once", qt)
		return
	}
	byType[qt] = limit
}

func (l *loader) str(path, key string, node *yaml.Node) string {
	if node.Kind != yaml.ScalarNode {
		l.issues.addf(path, "%s: expected a string", key)
		return ""
	}
	return strings.TrimSpace(node.Value)
}

func (l *loader) nonEmptyString(path, key string, node *yaml.Node) string {
	value := l.str(path, key, node)
	if value == "" && node.Kind == yaml.ScalarNode {
		l.issues.addf(path, "%s: is required", key)
	}
	return value
}

func (l *loader) boolean(path, key string, node *yaml.Node) bool {
	var value bool
	if err := node.Decode(&value); err != nil {
		l.issues.addf(path, "%s: must be true or false", key)
		return false
	}
	return value
}

// stringList accepts a single scalar or a sequence of scalars.
func (l *loader) stringList(path, key string, node *yaml.Node) []string {
	switch node.Kind {
	case yaml.ScalarNode:
		return []string{strings.TrimSpace(node.Value)}
	case yaml.SequenceNode:
		values := make([]string, 0, len(node.Content))
		for _, item := range node.Content {
			if item.Kind != yaml.ScalarNode {
				l.issues.addf(path, "%s: expected a list of strings", key)
				return nil
			}
			values = append(values, strings.TrimSpace(item.Value))
		}
		return values
	default:
		l.issues.addf(path, "%s: expected a string or a list of strings", key)
		return nil
	}
}

// bankFiles lists the YAML files under dir in lexical walk order, skipping dot entries.
func bankFiles(dir string) ([]string, error) {
	var files []string
	err := filepath.WalkDir(dir, func(path string, entry fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if path != dir && strings.HasPrefix(entry.Name(), ".") {
			if entry.IsDir() {
				return filepath.SkipDir
			}
			return nil
		}
		if entry.IsDir() {
			return nil
		}
		switch strings.ToLower(filepath.Ext(path)) {
		case ".yml", ".yaml":
			files = append(files, path)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return files, nil
}
