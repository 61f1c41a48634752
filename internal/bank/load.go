package bank

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"examgen/internal/config"
)

// Bank is a loaded exam file: its settings and the materialized section tree.
type Bank struct {
	Settings config.Settings
	Root     *Section
	Dir      string
}

// Load reads an exam file, expands every include and validates the result.
// All problems found are reported together in one ConfigurationError.
func Load(path string) (Bank, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return Bank{}, fmt.Errorf("resolve exam path: %w", err)
	}
	l := &loader{baseDir: filepath.Dir(abs), paths: map[string]int{}}
	node, settingsNode := l.loadFile(abs, "", true)

	var settings config.Settings
	if settingsNode != nil {
		if err := settingsNode.Decode(&settings); err != nil {
			l.issues.addf(l.relPath(abs), "settings: %v", err)
		}
	}
	config.Normalize(&settings)
	if err := config.Validate(&settings); err != nil {
		var validationErr *config.ValidationError
		if errors.As(err, &validationErr) {
			for _, issue := range validationErr.Issues {
				l.issues.add(l.relPath(abs), fmt.Sprintf("%s: %s", issue.Field, issue.Message))
			}
		} else {
			l.issues.add(l.relPath(abs), err.Error())
		}
	}

	root, isSection := node.(*Section)
	if node != nil && !isSection {
		l.issues.add(node.NodePath(), "exam file must describe a section, not a single question")
	}
	if err := l.issues.result(); err != nil {
		return Bank{}, err
	}
	if root == nil {
		return Bank{}, Misconfigured(l.relPath(abs), "exam file is empty")
	}
	return Bank{Settings: settings, Root: root, Dir: l.baseDir}, nil
}

type loader struct {
	baseDir string
	issues  issueCollector
	stack   []string
	paths   map[string]int
}

// claim reserves a node path. A path reached a second time, for example
// through overlapping includes, gets a numeric suffix so every node keeps
// its own path and its own shuffle stream.
func (l *loader) claim(path string) string {
	l.paths[path]++
	n := l.paths[path]
	if n == 1 {
		return path
	}
	unique := fmt.Sprintf("%s[%d]", path, n)
	for l.paths[unique] > 0 {
		n++
		unique = fmt.Sprintf("%s[%d]", path, n)
	}
	l.paths[unique]++
	return unique
}

// relPath renders a file path relative to the exam directory with forward slashes.
func (l *loader) relPath(abs string) string {
	rel, err := filepath.Rel(l.baseDir, abs)
	if err != nil {
		return filepath.ToSlash(abs)
	}
	return filepath.ToSlash(rel)
}

// loadFile parses one bank file into a node below parentPath.
// The settings mapping is only collected for the exam file.
func (l *loader) loadFile(abs, parentPath string, root bool) (Node, *yaml.Node) {
	name := l.relPath(abs)
	for _, open := range l.stack {
		if open == abs {
			chain := make([]string, 0, len(l.stack)+1)
			for _, p := range l.stack {
				chain = append(chain, l.relPath(p))
			}
			chain = append(chain, name)
			l.issues.addf(parentPath, "include cycle: %s", strings.Join(chain, " -> "))
			return nil, nil
		}
	}
	l.stack = append(l.stack, abs)
	defer func() { l.stack = l.stack[:len(l.stack)-1] }()

	data, err := os.ReadFile(abs)
	if err != nil {
		l.issues.addf(name, "read: %v", err)
		return nil, nil
	}
	doc, err := parseDocument(data)
	if err != nil {
		l.issues.add(name, err.Error())
		return nil, nil
	}

	path := l.claim(JoinPath(parentPath, name))
	section := &Section{Path: path, Name: name, Kind: KindFile}
	if doc == nil {
		return section, nil
	}
	if doc.Kind != yaml.MappingNode {
		l.issues.add(name, "expected a mapping at the top level")
		return nil, nil
	}
	if hasKey(doc, "question") {
		return l.parseQuestion(path, doc), nil
	}
	var settings *yaml.Node
	if root {
		settings = &yaml.Node{Kind: yaml.MappingNode, Tag: "!!map"}
	}
	l.parseSection(section, doc, filepath.Dir(abs), settings)
	return section, settings
}

func parseDocument(data []byte) (*yaml.Node, error) {
	var doc yaml.Node
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	if err := decoder.Decode(&doc); err != nil {
		if err == io.EOF {
			return nil, nil
		}
		return nil, fmt.Errorf("parse yaml: %w", err)
	}
	if err := decoder.Decode(&struct{}{}); err != io.EOF {
		if err == nil {
			return nil, fmt.Errorf("parse yaml: multiple documents are not supported")
		}
		return nil, fmt.Errorf("parse yaml: %w", err)
	}
	if doc.Kind == yaml.DocumentNode {
		if len(doc.Content) == 0 {
			return nil, nil
		}
		return doc.Content[0], nil
	}
	return &doc, nil
}

// parseSection fills section from a mapping node. A non-nil settings node marks the exam file.
func (l *loader) parseSection(section *Section, node *yaml.Node, dir string, settings *yaml.Node) {
	seen := map[string]struct{}{}
	byType := map[QuestionType]int{}
	for i := 0; i+1 < len(node.Content); i += 2 {
		keyNode, value := node.Content[i], node.Content[i+1]
		key := keyNode.Value
		if _, dup := seen[key]; dup {
			l.issues.addf(section.Path, "duplicate key %q", key)
			continue
		}
		seen[key] = struct{}{}

		switch key {
		case "maxQuestions":
			section.Constraints.MaxQuestions = l.positiveInt(section.Path, key, value)
		case "maxPoints":
			section.Constraints.MaxPoints = l.positiveInt(section.Path, key, value)
		case "maxPercent":
			section.Constraints.MaxPercent = l.percent(section.Path, value)
		case "maxPointsByType":
			l.pointsByType(section.Path, value, byType)
		case "defaultPoints":
			section.Defaults.Points = l.positiveInt(section.Path, key, value)
		case "defaultSolutionSpace":
			section.Defaults.SolutionSpace = l.nonEmptyString(section.Path, key, value)
		case "include":
			for _, target := range l.stringList(section.Path, key, value) {
				section.Children = append(section.Children, l.include(section.Path, dir, target)...)
			}
		default:
			if qt, ok := typeCapAliases[key]; ok {
				l.setTypeCap(section.Path, byType, qt, l.positiveInt(section.Path, key, value))
				continue
			}
			if config.IsSettingKey(key) {
				if settings == nil {
					l.issues.addf(section.Path, "setting %q is only allowed in the exam file", key)
					continue
				}
				settings.Content = append(settings.Content, keyNode, value)
				continue
			}
			if value.Kind != yaml.MappingNode {
				l.issues.addf(section.Path, "unknown key %q", key)
				continue
			}
			if strings.Contains(key, "/") {
				l.issues.addf(section.Path, "key %q must not contain \"/\"", key)
				continue
			}
			field := l.claim(JoinPath(section.Path, key))
			if hasKey(value, "question") {
				section.Children = append(section.Children, l.parseQuestion(field, value))
				continue
			}
			child := &Section{Path: field, Name: key, Kind: KindSection}
			l.parseSection(child, value, dir, nil)
			section.Children = append(section.Children, child)
		}
	}
	if len(byType) > 0 {
		section.Constraints.MaxPointsByType = byType
	}
}

// include expands one include directive into file sections.
func (l *loader) include(sectionPath, dir, target string) []Node {
	target = strings.TrimSpace(target)
	if target == "" {
		l.issues.add(sectionPath, "include: empty path")
		return nil
	}
	path := target
	if !filepath.IsAbs(path) {
		path = filepath.Join(dir, path)
	}
	info, err := os.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			l.issues.addf(sectionPath, "include %q: directory or file does not exist", target)
		} else {
			l.issues.addf(sectionPath, "include %q: %v", target, err)
		}
		return nil
	}

	files := []string{path}
	if info.IsDir() {
		files, err = bankFiles(path)
		if err != nil {
			l.issues.addf(sectionPath, "include %q: %v", target, err)
			return nil
		}
	}
	nodes := make([]Node, 0, len(files))
	for _, file := range files {
		node, _ := l.loadFile(file, sectionPath, false)
		if node != nil {
			nodes = append(nodes, node)
		}
	}
	return nodes
}

func hasKey(node *yaml.Node, key string) bool {
	for i := 0; i+1 < len(node.Content); i += 2 {
		if node.Content[i].Value == key {
			return true
		}
	}
	return false
}
