package cot

import (
	"context"
	"encoding/json"
	"strings"
	"testing"

	"github.com/ipveka/ThoughtChain/internal/llm"
)

func TestGenerateParsesFreeText(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{
		Content: json.RawMessage("Step 1: Multiply 60 by 2.\nTherefore, the answer is 120 miles."),
		Usage:   llm.Usage{InputTokens: 40, OutputTokens: 20, TotalTokens: 60},
	})
	gen := New(mock, DefaultConfig())

	result, err := gen.Generate(context.Background(), "Calculate the distance at 60 mph for 2 hours.", DefaultParams())
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}

	if result.Type != TypeMath {
		t.Errorf("type = %q, want %q", result.Type, TypeMath)
	}
	if len(result.Steps) != 2 {
		t.Fatalf("expected 2 steps, got %d", len(result.Steps))
	}
	if result.Steps[1].Type != StepConclusion {
		t.Errorf("step 1 type = %q, want %q", result.Steps[1].Type, StepConclusion)
	}
	if result.Usage.TotalTokens != 60 {
		t.Errorf("total tokens = %d, want 60", result.Usage.TotalTokens)
	}
	if result.Model != "mock" {
		t.Errorf("model = %q, want mock", result.Model)
	}
}

func TestGenerateBuildsRequest(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{
		Content: json.RawMessage("Step 1: Think."),
	})
	gen := New(mock, DefaultConfig())

	params := Params{Temperature: 0.5, TopP: 0.8, MaxTokens: 300}
	if _, err := gen.Generate(context.Background(), "Calculate 2 plus 2.", params); err != nil {
		t.Fatalf("Generate: %v", err)
	}

	if mock.CallCount() != 1 {
		t.Fatalf("expected 1 call, got %d", mock.CallCount())
	}
	req := mock.Calls[0]
	if req.System == "" {
		t.Error("expected a system prompt")
	}
	if len(req.Messages) != 1 || req.Messages[0].Role != llm.RoleUser {
		t.Fatalf("expected one user message, got %+v", req.Messages)
	}
	if !strings.Contains(req.Messages[0].Content, "Calculate 2 plus 2.") {
		t.Errorf("prompt missing problem text: %q", req.Messages[0].Content)
	}
	if req.MaxTokens != 300 || req.Temperature != 0.5 || req.TopP != 0.8 {
		t.Errorf("params not forwarded: %+v", req)
	}
	if req.Schema != nil {
		t.Error("free-text mode should not set a schema")
	}
}

func TestGenerateClampsParams(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{
		Content: json.RawMessage("Step 1: Think."),
	})
	gen := New(mock, DefaultConfig())

	params := Params{Temperature: 3.0, TopP: -1, MaxTokens: 10000}
	if _, err := gen.Generate(context.Background(), "Calculate 2 plus 2.", params); err != nil {
		t.Fatalf("Generate: %v", err)
	}

	req := mock.Calls[0]
	if req.Temperature != 1.0 {
		t.Errorf("temperature = %v, want 1.0", req.Temperature)
	}
	if req.TopP != 0 {
		t.Errorf("top_p = %v, want 0", req.TopP)
	}
	if req.MaxTokens != MaxMaxTokens {
		t.Errorf("max tokens = %d, want %d", req.MaxTokens, MaxMaxTokens)
	}
}

func TestGenerateEmptyProblem(t *testing.T) {
	gen := New(llm.NewMockProvider(), DefaultConfig())

	if _, err := gen.Generate(context.Background(), "   ", DefaultParams()); err == nil {
		t.Fatal("expected error for empty problem")
	}
}

func TestGenerateStructuredMode(t *testing.T) {
	content, err := json.Marshal(map[string]any{
		"steps": []map[string]string{
			{"text": "Work out the product of 60 and 2.", "type": "calculation"},
			{"text": "The distance is 120 miles.", "type": "conclusion"},
		},
	})
	if err != nil {
		t.Fatal(err)
	}

	mock := llm.NewMockProvider(llm.MockResponse{Content: content})
	gen := New(mock, Config{Structured: true})

	result, err := gen.Generate(context.Background(), "Calculate the distance.", DefaultParams())
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}

	if mock.Calls[0].Schema == nil {
		t.Fatal("structured mode should set a schema")
	}
	if len(result.Steps) != 2 {
		t.Fatalf("expected 2 steps, got %d", len(result.Steps))
	}
	if result.Steps[0].Index != 0 || result.Steps[1].Index != 1 {
		t.Errorf("indices not contiguous: %+v", result.Steps)
	}
	if result.Steps[0].Type != StepCalculation {
		t.Errorf("step 0 type = %q", result.Steps[0].Type)
	}
}

func TestGenerateStructuredUnknownTypeDefaults(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{
		Content: json.RawMessage(`{"steps":[{"text":"x","type":"banana"}]}`),
	})
	gen := New(mock, Config{Structured: true})

	result, err := gen.Generate(context.Background(), "Calculate something.", DefaultParams())
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if result.Steps[0].Type != StepReasoning {
		t.Errorf("type = %q, want %q", result.Steps[0].Type, StepReasoning)
	}
}

func TestGenerateProviderError(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{
		Err: &llm.ErrProviderUnavailable{},
	})
	gen := New(mock, DefaultConfig())

	if _, err := gen.Generate(context.Background(), "Calculate 2 plus 2.", DefaultParams()); err == nil {
		t.Fatal("expected provider error to surface")
	}
}

func TestResultCountByType(t *testing.T) {
	r := &Result{Steps: []Step{
		{Index: 0, Type: StepReasoning},
		{Index: 1, Type: StepCalculation},
		{Index: 2, Type: StepCalculation},
		{Index: 3, Type: StepConclusion},
	}}

	counts := r.CountByType()
	if counts[StepCalculation] != 2 {
		t.Errorf("calculation count = %d, want 2", counts[StepCalculation])
	}
	if counts[StepAssumption] != 0 {
		t.Errorf("assumption count = %d, want 0", counts[StepAssumption])
	}
}

func TestResultConclusion(t *testing.T) {
	r := &Result{Steps: []Step{
		{Index: 0, Text: "think", Type: StepReasoning},
		{Index: 1, Text: "the answer is 4", Type: StepConclusion},
	}}
	if got := r.Conclusion(); got != "the answer is 4" {
		t.Errorf("Conclusion() = %q", got)
	}

	empty := &Result{Steps: []Step{{Index: 0, Type: StepReasoning}}}
	if got := empty.Conclusion(); got != "" {
		t.Errorf("Conclusion() = %q, want empty", got)
	}
}

func TestGenerateStructuredModeFencedJSON(t *testing.T) {
	content := json.RawMessage("```json\n" +
		`{"steps":[{"text":"Add 2 and 2.","type":"calculation"}]}` + "\n```")

	mock := llm.NewMockProvider(llm.MockResponse{Content: content})
	gen := New(mock, Config{Structured: true})

	result, err := gen.Generate(context.Background(), "Calculate 2 plus 2.", DefaultParams())
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if len(result.Steps) != 1 {
		t.Fatalf("expected 1 step, got %d", len(result.Steps))
	}
	if result.Steps[0].Type != StepCalculation {
		t.Errorf("type = %q, want %q", result.Steps[0].Type, StepCalculation)
	}
}
