package template

import (
	"bytes"
	"encoding/json"
	"sort"
	"strings"

	"github.com/tidwall/gjson"

	ai "github.com/spetersoncode/nanobanana"
)

// PromptGenerator produces a prompt from a template and a variable set.
type PromptGenerator interface {
	TemplateName() string
	Variable(key string) (string, bool)
	Validate() bool
	MissingVariables() []string
	Generate() (string, error)
}

// Generator holds a working variable set seeded from a template's defaults.
// A Generator is not safe for concurrent use.
type Generator struct {
	template PromptTemplate
	vars     *Variables
}

// NewGenerator creates a generator whose variables start at t's defaults.
func NewGenerator(t PromptTemplate) *Generator {
	return &Generator{template: t, vars: t.DefaultVariables()}
}

// Template returns the underlying template.
func (g *Generator) Template() PromptTemplate { return g.template }

// TemplateName returns the template's name.
func (g *Generator) TemplateName() string { return g.template.Name() }

// TemplateDescription returns the template's description.
func (g *Generator) TemplateDescription() string { return g.template.Description() }

// SetVariable inserts or overwrites one variable.
func (g *Generator) SetVariable(key, value string) *Generator {
	g.vars.Set(key, value)
	return g
}

// SetVariables merges vars into the working set in vars' order.
// Keys absent from vars are untouched.
func (g *Generator) SetVariables(vars *Variables) *Generator {
	if vars == nil {
		return g
	}
	for pair := vars.Oldest(); pair != nil; pair = pair.Next() {
		g.vars.Set(pair.Key, pair.Value)
	}
	return g
}

// SetVariableMap merges m into the working set. Keys not yet present are
// appended in sorted order, so substitution order stays deterministic.
func (g *Generator) SetVariableMap(m map[string]string) *Generator {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		g.vars.Set(k, m[k])
	}
	return g
}

// Variable returns the current value of key.
func (g *Generator) Variable(key string) (string, bool) {
	return g.vars.Get(key)
}

// AllVariables returns a copy of the working set.
func (g *Generator) AllVariables() *Variables {
	return CopyVariables(g.vars)
}

// Validate reports whether every required variable is set and non-empty.
func (g *Generator) Validate() bool {
	return len(g.MissingVariables()) == 0
}

// MissingVariables returns the required keys that are unset or empty,
// in the template's declared order.
func (g *Generator) MissingVariables() []string {
	var missing []string
	for _, key := range g.template.RequiredVariables() {
		if v, ok := g.vars.Get(key); !ok || v == "" {
			missing = append(missing, key)
		}
	}
	return missing
}

// Generate substitutes every {{key}} in the template body.
//
// Keys are replaced one at a time in working-set order with a plain
// string replace. Values are not rescanned for their own placeholders,
// but a value containing {{k}} for a key later in the order will be
// replaced when that key's turn comes.
func (g *Generator) Generate() (string, error) {
	if missing := g.MissingVariables(); len(missing) > 0 {
		return "", &ai.MissingVariablesError{Template: g.template.Name(), Missing: missing}
	}

	out := g.template.Body()
	for pair := g.vars.Oldest(); pair != nil; pair = pair.Next() {
		out = strings.ReplaceAll(out, "{{"+pair.Key+"}}", pair.Value)
	}
	return out, nil
}

// ResetVariables discards all overrides and restores the defaults.
func (g *Generator) ResetVariables() *Generator {
	g.vars = g.template.DefaultVariables()
	return g
}

// ExportVariablesJSON returns the working set as an indented JSON object
// in working-set order.
func (g *Generator) ExportVariablesJSON() (string, error) {
	raw, err := json.Marshal(g.vars)
	if err != nil {
		return "", err
	}
	var buf bytes.Buffer
	if err := json.Indent(&buf, raw, "", "    "); err != nil {
		return "", err
	}
	return buf.String(), nil
}

// ImportVariablesJSON merges the members of a JSON object into the
// working set in document order. Input that is not a JSON object is
// ignored. Non-string members are stored as their JSON text.
func (g *Generator) ImportVariablesJSON(data []byte) *Generator {
	if !gjson.ValidBytes(data) {
		return g
	}
	root := gjson.ParseBytes(data)
	if !root.IsObject() {
		return g
	}
	root.ForEach(func(key, value gjson.Result) bool {
		g.vars.Set(key.String(), value.String())
		return true
	})
	return g
}

// Info describes a generator's template and current variable state.
type Info struct {
	TemplateName      string     `json:"template_name" yaml:"template_name"`
	Description       string     `json:"description" yaml:"description"`
	RequiredVariables []string   `json:"required_variables" yaml:"required_variables"`
	CurrentVariables  []Variable `json:"current_variables" yaml:"current_variables"`
	MissingVariables  []string   `json:"missing_variables" yaml:"missing_variables"`
}

// Info returns a snapshot of the generator's state.
func (g *Generator) Info() Info {
	return Info{
		TemplateName:      g.template.Name(),
		Description:       g.template.Description(),
		RequiredVariables: g.template.RequiredVariables(),
		CurrentVariables:  Pairs(g.vars),
		MissingVariables:  g.MissingVariables(),
	}
}

var _ PromptGenerator = (*Generator)(nil)
