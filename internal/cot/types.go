package cot

import (
	"time"

	"github.com/ipveka/ThoughtChain/internal/llm"
)

// ProblemType is the heuristic category of a problem statement.
type ProblemType string

const (
	TypeMath    ProblemType = "math"
	TypeLogic   ProblemType = "logic"
	TypeRiddle  ProblemType = "riddle"
	TypeGeneral ProblemType = "general"
)

// ProblemTypes lists all problem types in classifier priority order.
var ProblemTypes = []ProblemType{TypeMath, TypeLogic, TypeRiddle, TypeGeneral}

// StepType classifies a single reasoning step.
type StepType string

const (
	StepReasoning   StepType = "reasoning"
	StepCalculation StepType = "calculation"
	StepConclusion  StepType = "conclusion"
	StepAssumption  StepType = "assumption"
)

// StepTypes lists all step types in display order.
var StepTypes = []StepType{StepReasoning, StepCalculation, StepConclusion, StepAssumption}

// Step is a single parsed reasoning step.
type Step struct {
	// Index is the step's position in the chain, contiguous from 0.
	Index int

	// Text is the step content.
	Text string

	// Type is the heuristic classification of this step.
	Type StepType
}

// Params are the sampling parameters for one generation request.
type Params struct {
	// Temperature controls randomness. Clamped to 0.0 - 1.0.
	Temperature float64

	// TopP is the nucleus sampling cutoff. Clamped to 0.0 - 1.0.
	TopP float64

	// MaxTokens is the response token budget. Clamped to 50 - 500.
	MaxTokens int
}

// Response length bounds, matching the UI slider range.
const (
	MinMaxTokens = 50
	MaxMaxTokens = 500
)

// DefaultParams returns the standard sampling parameters.
func DefaultParams() Params {
	return Params{
		Temperature: 0.7,
		TopP:        0.9,
		MaxTokens:   200,
	}
}

// clamped returns a copy of p with all fields forced into valid ranges.
func (p Params) clamped() Params {
	if p.Temperature < 0 {
		p.Temperature = 0
	}
	if p.Temperature > 1 {
		p.Temperature = 1
	}
	if p.TopP < 0 {
		p.TopP = 0
	}
	if p.TopP > 1 {
		p.TopP = 1
	}
	if p.MaxTokens < MinMaxTokens {
		p.MaxTokens = MinMaxTokens
	}
	if p.MaxTokens > MaxMaxTokens {
		p.MaxTokens = MaxMaxTokens
	}
	return p
}

// Result is the outcome of one chain-of-thought generation.
// It lives only in UI state for the current display.
type Result struct {
	// Problem is the raw problem text as entered.
	Problem string

	// Type is the detected problem type.
	Type ProblemType

	// Prompt is the fully formatted prompt that was sent to the model.
	Prompt string

	// RawText is the model's unparsed output.
	RawText string

	// Steps is the parsed reasoning chain. Never empty on success.
	Steps []Step

	// Elapsed is the wall time of the model call.
	Elapsed time.Duration

	// Usage reports token consumption.
	Usage llm.Usage

	// Model is the model that served the request.
	Model string
}

// CountByType tallies steps per step type.
func (r *Result) CountByType() map[StepType]int {
	counts := make(map[StepType]int)
	for _, s := range r.Steps {
		counts[s.Type]++
	}
	return counts
}

// Conclusion returns the text of the last conclusion step, or "" if the
// chain has none.
func (r *Result) Conclusion() string {
	for i := len(r.Steps) - 1; i >= 0; i-- {
		if r.Steps[i].Type == StepConclusion {
			return r.Steps[i].Text
		}
	}
	return ""
}
