package template

import (
	orderedmap "github.com/wk8/go-ordered-map/v2"
)

// Variables is an insertion-ordered mapping of template variables.
// Substitution walks it oldest first.
type Variables = orderedmap.OrderedMap[string, string]

// Variable is a single key/value pair.
type Variable struct {
	Key   string `json:"key" yaml:"key"`
	Value string `json:"value" yaml:"value"`
}

// NewVariables returns an ordered mapping holding pairs in order.
// A repeated key keeps its first position and its last value.
func NewVariables(pairs ...Variable) *Variables {
	vars := orderedmap.New[string, string]()
	for _, p := range pairs {
		vars.Set(p.Key, p.Value)
	}
	return vars
}

// CopyVariables returns an independent copy of vars. A nil vars yields an
// empty mapping.
func CopyVariables(vars *Variables) *Variables {
	out := orderedmap.New[string, string]()
	if vars == nil {
		return out
	}
	for pair := vars.Oldest(); pair != nil; pair = pair.Next() {
		out.Set(pair.Key, pair.Value)
	}
	return out
}

// Pairs returns the entries of vars in order.
func Pairs(vars *Variables) []Variable {
	if vars == nil {
		return nil
	}
	out := make([]Variable, 0, vars.Len())
	for pair := vars.Oldest(); pair != nil; pair = pair.Next() {
		out = append(out, Variable{Key: pair.Key, Value: pair.Value})
	}
	return out
}

// PromptTemplate is a prompt body with {{key}} placeholders, its default
// variables and the keys that must be non-empty before generation.
type PromptTemplate interface {
	Name() string
	Description() string
	Body() string
	// DefaultVariables returns a fresh copy on every call.
	DefaultVariables() *Variables
	// RequiredVariables returns the required keys in declared order.
	RequiredVariables() []string
}

// Definition is an immutable PromptTemplate.
type Definition struct {
	name        string
	description string
	body        string
	defaults    []Variable
	required    []string
}

// NewDefinition creates a template definition. defaults and required are
// copied, so later changes by the caller have no effect.
func NewDefinition(name, description, body string, defaults []Variable, required ...string) *Definition {
	return &Definition{
		name:        name,
		description: description,
		body:        body,
		defaults:    append([]Variable(nil), defaults...),
		required:    append([]string(nil), required...),
	}
}

func (d *Definition) Name() string        { return d.name }
func (d *Definition) Description() string { return d.description }
func (d *Definition) Body() string        { return d.body }

func (d *Definition) DefaultVariables() *Variables {
	return NewVariables(d.defaults...)
}

func (d *Definition) RequiredVariables() []string {
	return append([]string(nil), d.required...)
}

var _ PromptTemplate = (*Definition)(nil)
