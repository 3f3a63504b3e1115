package main

import (
	"github.com/spf13/cobra"

	"github.com/spetersoncode/nanobanana/model"
)

type modelInfo struct {
	ID               string  `json:"id" yaml:"id"`
	Name             string  `json:"name" yaml:"name"`
	Preview          bool    `json:"preview" yaml:"preview"`
	Default          bool    `json:"default" yaml:"default"`
	InputPerMillion  float64 `json:"input_per_million_usd" yaml:"input_per_million_usd"`
	OutputPerMillion float64 `json:"output_per_million_usd" yaml:"output_per_million_usd"`
	Endpoint         string  `json:"endpoint" yaml:"endpoint"`
}

func (a *app) modelsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "models",
		Short: "List the known image models",
		Long: `List the known image models with pricing and endpoint.

Aliases accepted by --model: gemini-2.5, gemini-3, nano-banana, nano-banana-pro.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			all := model.All()
			out := make([]modelInfo, 0, len(all))
			for _, m := range all {
				p := m.Pricing()
				out = append(out, modelInfo{
					ID:               m.String(),
					Name:             m.Name(),
					Preview:          m.Preview(),
					Default:          m == model.DefaultImageModel,
					InputPerMillion:  p.InputPerMillion,
					OutputPerMillion: p.OutputPerMillion,
					Endpoint:         m.URL(model.OpGenerateContent),
				})
			}
			return a.print(out)
		},
	}
}
