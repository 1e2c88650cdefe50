package cot

import "github.com/ipveka/ThoughtChain/internal/llm"

// StepsSchema defines the JSON schema for structured-mode generation,
// where the model emits typed steps directly instead of free text.
var StepsSchema = &llm.Schema{
	Name:        "reasoning-steps",
	Description: "An ordered chain of typed reasoning steps for a problem",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"steps": map[string]any{
				"type":        "array",
				"description": "The reasoning steps in order, first to last",
				"items": map[string]any{
					"type": "object",
					"properties": map[string]any{
						"text": map[string]any{
							"type":        "string",
							"description": "The step content, one or two sentences",
						},
						"type": map[string]any{
							"type":        "string",
							"enum":        []any{"reasoning", "calculation", "conclusion", "assumption"},
							"description": "What kind of step this is",
						},
					},
					"required":             []any{"text", "type"},
					"additionalProperties": false,
				},
			},
		},
		"required":             []any{"steps"},
		"additionalProperties": false,
	},
}
