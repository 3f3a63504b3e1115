package main

import (
	"github.com/spf13/cobra"

	"github.com/spetersoncode/nanobanana/template"
)

type templateSummary struct {
	Key         string   `json:"key" yaml:"key"`
	Name        string   `json:"name" yaml:"name"`
	Description string   `json:"description" yaml:"description"`
	Required    []string `json:"required_variables" yaml:"required_variables"`
}

type templateDetail struct {
	templateSummary `yaml:",inline"`
	Variables       []template.Variable `json:"default_variables" yaml:"default_variables"`
	Body            string              `json:"body" yaml:"body"`
}

// variableFlags collect template variable overrides.
type variableFlags struct {
	file        string
	assignments []string
}

func (f *variableFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&f.file, "file", "f", "", "YAML or JSON file of variables")
	cmd.Flags().StringArrayVar(&f.assignments, "var", nil, "variable override key=value (repeatable, applied after --file)")
}

// generator creates a generator for key with the file variables, then the
// --var overrides, applied in order.
func (f *variableFlags) generator(registry *template.Registry, key string) (*template.Generator, error) {
	gen, err := registry.NewGenerator(key)
	if err != nil {
		return nil, err
	}

	var vars []template.Variable
	if f.file != "" {
		fromFile, err := loadVariables(f.file)
		if err != nil {
			return nil, err
		}
		vars = append(vars, fromFile...)
	}
	fromFlags, err := parseAssignments(f.assignments)
	if err != nil {
		return nil, err
	}
	vars = append(vars, fromFlags...)

	for _, v := range vars {
		gen.SetVariable(v.Key, v.Value)
	}
	return gen, nil
}

func (a *app) templateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "template",
		Short: "Prompt templates",
		Long: `List, inspect, render and generate prompt templates.

Example variables file (sale.yaml):
  campaign_date: 9/30
  brand_name: Acme
  product_name: Widget`,
	}
	cmd.AddCommand(a.templateListCmd(), a.templateShowCmd(), a.templatePromptCmd(), a.templateGenerateCmd())
	return cmd
}

func (a *app) templateListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List registered templates",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			keys := a.registry.Keys()
			out := make([]templateSummary, 0, len(keys))
			for _, key := range keys {
				t, err := a.registry.Create(key)
				if err != nil {
					return err
				}
				out = append(out, summarize(key, t))
			}
			return a.print(out)
		},
	}
}

func (a *app) templateShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show <key>",
		Short: "Show a template with its default variables",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			t, err := a.registry.Create(args[0])
			if err != nil {
				return err
			}
			return a.print(templateDetail{
				templateSummary: summarize(args[0], t),
				Variables:       template.Pairs(t.DefaultVariables()),
				Body:            t.Body(),
			})
		},
	}
}

func (a *app) templatePromptCmd() *cobra.Command {
	var vars variableFlags
	cmd := &cobra.Command{
		Use:   "prompt <key>",
		Short: "Render a template without generating",
		Long: `Render a template with its defaults and the given overrides.

Examples:
  nanobanana template prompt sales_promotion -f sale.yaml --var brand_name=Acme`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			gen, err := vars.generator(a.registry, args[0])
			if err != nil {
				return err
			}
			text, err := gen.Generate()
			if err != nil {
				return err
			}
			return a.print(promptResult{Prompt: text})
		},
	}
	vars.register(cmd)
	return cmd
}

func (a *app) templateGenerateCmd() *cobra.Command {
	var (
		flags imageFlags
		vars  variableFlags
	)
	cmd := &cobra.Command{
		Use:   "generate <key>",
		Short: "Render a template and generate the image",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			gen, err := vars.generator(a.registry, args[0])
			if err != nil {
				return err
			}
			c, err := a.newClient(cmd.Context())
			if err != nil {
				return err
			}
			resp, err := c.GenerateFromTemplate(cmd.Context(), gen, flags.output, flags.options()...)
			if err != nil {
				return err
			}
			return a.print(newImageResult(flags.output, c.Model(), resp))
		},
	}
	flags.register(cmd)
	vars.register(cmd)
	return cmd
}

func summarize(key string, t template.PromptTemplate) templateSummary {
	return templateSummary{
		Key:         key,
		Name:        t.Name(),
		Description: t.Description(),
		Required:    t.RequiredVariables(),
	}
}
