package main

import (
	"encoding/json"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	ai "github.com/spetersoncode/nanobanana"
	"github.com/spetersoncode/nanobanana/model"
)

// imageResult summarizes a generated image.
type imageResult struct {
	Output        string      `json:"output" yaml:"output"`
	Model         string      `json:"model" yaml:"model"`
	ModelVersion  string      `json:"model_version" yaml:"model_version"`
	ResponseID    string      `json:"response_id" yaml:"response_id"`
	RequestID     string      `json:"request_id" yaml:"request_id"`
	PayloadSource string      `json:"payload_source" yaml:"payload_source"`
	Tokens        tokenCounts `json:"tokens" yaml:"tokens"`
	CostUSD       float64     `json:"cost_usd" yaml:"cost_usd"`
}

type tokenCounts struct {
	Prompt     int `json:"prompt" yaml:"prompt"`
	Candidates int `json:"candidates" yaml:"candidates"`
	Thoughts   int `json:"thoughts" yaml:"thoughts"`
	Total      int `json:"total" yaml:"total"`
}

func newImageResult(output string, m model.ImageModel, resp *ai.Response) imageResult {
	return imageResult{
		Output:        output,
		Model:         m.String(),
		ModelVersion:  resp.ModelVersion,
		ResponseID:    resp.ResponseID,
		RequestID:     resp.RequestID,
		PayloadSource: string(resp.PayloadSource),
		Tokens: tokenCounts{
			Prompt:     resp.PromptTokenCount,
			Candidates: resp.CandidatesTokenCount,
			Thoughts:   resp.ThoughtsTokenCount,
			Total:      resp.TotalTokenCount,
		},
		CostUSD: m.Cost(resp),
	}
}

// writeResult prints v as indented JSON or as YAML.
func writeResult(w io.Writer, v any, asJSON bool) error {
	if asJSON {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(v)
	}
	data, err := yaml.Marshal(v)
	if err != nil {
		return fmt.Errorf("failed to format output: %w", err)
	}
	_, err = w.Write(data)
	return err
}
