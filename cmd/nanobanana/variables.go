package main

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/spetersoncode/nanobanana/template"
)

// loadVariables reads a flat YAML or JSON mapping of variable names to
// values. File order is kept so substitution follows it.
func loadVariables(path string) ([]template.Variable, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %s: %w", path, err)
	}
	return parseVariables(data)
}

func parseVariables(data []byte) ([]template.Variable, error) {
	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("failed to parse variables: %w", err)
	}
	if len(doc.Content) == 0 {
		return nil, nil
	}

	root := doc.Content[0]
	if root.Kind != yaml.MappingNode {
		return nil, fmt.Errorf("variables must be a mapping, line %d", root.Line)
	}

	vars := make([]template.Variable, 0, len(root.Content)/2)
	for i := 0; i+1 < len(root.Content); i += 2 {
		key, value := root.Content[i], root.Content[i+1]
		if value.Kind != yaml.ScalarNode {
			return nil, fmt.Errorf("variable %q must be a scalar, line %d", key.Value, value.Line)
		}
		vars = append(vars, template.Variable{Key: key.Value, Value: value.Value})
	}
	return vars, nil
}

// parseAssignments parses key=value flag values.
func parseAssignments(assignments []string) ([]template.Variable, error) {
	vars := make([]template.Variable, 0, len(assignments))
	for _, a := range assignments {
		key, value, ok := strings.Cut(a, "=")
		if !ok || strings.TrimSpace(key) == "" {
			return nil, fmt.Errorf("invalid variable %q, want key=value", a)
		}
		vars = append(vars, template.Variable{Key: strings.TrimSpace(key), Value: value})
	}
	return vars, nil
}
