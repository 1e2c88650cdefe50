package cot

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/ipveka/ThoughtChain/internal/llm"
)

// Generator produces chain-of-thought results for problem statements.
type Generator interface {
	// Generate runs the full pipeline: classify, build the prompt, call
	// the model, and parse the output into typed steps.
	Generate(ctx context.Context, problem string, params Params) (*Result, error)
}

// Config controls the behavior of the LLMGenerator.
type Config struct {
	// Structured requests typed steps via the provider's structured
	// output mechanism instead of parsing free text. Free text is the
	// default because not every model supports schemas.
	Structured bool
}

// DefaultConfig returns the standard generator configuration.
func DefaultConfig() Config {
	return Config{Structured: false}
}

// LLMGenerator implements Generator on top of an llm.Provider.
type LLMGenerator struct {
	provider llm.Provider
	config   Config
}

// New creates a new LLMGenerator with the given provider and config.
func New(provider llm.Provider, cfg Config) *LLMGenerator {
	return &LLMGenerator{provider: provider, config: cfg}
}

// stepsOutput is the structured-mode response shape.
type stepsOutput struct {
	Steps []struct {
		Text string `json:"text"`
		Type string `json:"type"`
	} `json:"steps"`
}

// Generate runs the chain-of-thought pipeline for one problem.
func (g *LLMGenerator) Generate(ctx context.Context, problem string, params Params) (*Result, error) {
	problem = strings.TrimSpace(problem)
	if problem == "" {
		return nil, errors.New("empty problem")
	}

	ctx = llm.WithPurpose(ctx, "cot-gen")
	params = params.clamped()

	ptype := DetectProblemType(problem)
	prompt := PromptFor(ptype, problem)

	req := llm.Request{
		System: systemPrompt,
		Messages: []llm.Message{
			{Role: llm.RoleUser, Content: prompt},
		},
		MaxTokens:   params.MaxTokens,
		Temperature: params.Temperature,
		TopP:        params.TopP,
	}
	if g.config.Structured {
		req.Schema = StepsSchema
	}

	start := time.Now()
	resp, err := g.provider.Generate(ctx, req)
	elapsed := time.Since(start)
	if err != nil {
		return nil, fmt.Errorf("generation failed: %w", err)
	}

	result := &Result{
		Problem: problem,
		Type:    ptype,
		Prompt:  prompt,
		RawText: string(resp.Content),
		Elapsed: elapsed,
		Usage:   resp.Usage,
		Model:   resp.Model,
	}

	if g.config.Structured {
		result.Steps, err = decodeSteps(resp.Content)
		if err != nil {
			return nil, err
		}
	} else {
		result.Steps = ParseSteps(result.RawText)
	}

	return result, nil
}

// decodeSteps converts a structured-mode response into the Step list,
// assigning contiguous indices from 0.
func decodeSteps(raw json.RawMessage) ([]Step, error) {
	var out stepsOutput
	if err := json.Unmarshal(llm.NormalizeJSON(raw), &out); err != nil {
		return nil, fmt.Errorf("parse structured steps: %w", err)
	}
	if len(out.Steps) == 0 {
		return nil, errors.New("structured response contained no steps")
	}

	steps := make([]Step, len(out.Steps))
	for i, s := range out.Steps {
		t := StepType(s.Type)
		switch t {
		case StepReasoning, StepCalculation, StepConclusion, StepAssumption:
		default:
			t = StepReasoning
		}
		steps[i] = Step{Index: i, Text: s.Text, Type: t}
	}
	return steps, nil
}
