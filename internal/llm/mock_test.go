package llm

import (
	"context"
	"encoding/json"
	"strings"
	"testing"
)

func TestMockSynthesizesStepsWhenScriptEmpty(t *testing.T) {
	mock := NewMockProvider()

	resp, err := mock.Generate(context.Background(), Request{
		Messages: []Message{{Role: RoleUser, Content: "Problem: 2+2?"}},
	})
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}

	text := string(resp.Content)
	if !strings.Contains(text, "Step 1:") || !strings.Contains(text, "Therefore,") {
		t.Errorf("synthesized text missing step markers: %q", text)
	}
	if resp.Usage.OutputTokens == 0 {
		t.Error("synthesized response has zero output tokens")
	}
}

func TestMockSynthesizesJSONWhenSchemaSet(t *testing.T) {
	mock := NewMockProvider()

	resp, err := mock.Generate(context.Background(), Request{
		Messages: []Message{{Role: RoleUser, Content: "Problem: 2+2?"}},
		Schema:   &Schema{Name: "steps", Definition: map[string]any{"type": "object"}},
	})
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}

	var parsed struct {
		Steps []struct {
			Text string `json:"text"`
			Type string `json:"type"`
		} `json:"steps"`
	}
	if err := json.Unmarshal(resp.Content, &parsed); err != nil {
		t.Fatalf("unmarshal synthesized JSON: %v", err)
	}
	if len(parsed.Steps) != 3 {
		t.Fatalf("expected 3 synthesized steps, got %d", len(parsed.Steps))
	}
	if parsed.Steps[2].Type != "conclusion" {
		t.Errorf("last step type = %q, want conclusion", parsed.Steps[2].Type)
	}
}

func TestMockScriptOrderAndRecording(t *testing.T) {
	mock := NewMockProvider(
		MockResponse{Content: json.RawMessage(`one`)},
		MockResponse{Content: json.RawMessage(`two`)},
	)

	ctx := WithPurpose(context.Background(), "cot-gen")
	first, err := mock.Generate(ctx, Request{})
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	second, err := mock.Generate(ctx, Request{})
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}

	if string(first.Content) != "one" || string(second.Content) != "two" {
		t.Errorf("scripted replies out of order: %q, %q", first.Content, second.Content)
	}
	if mock.CallCount() != 2 {
		t.Errorf("CallCount = %d, want 2", mock.CallCount())
	}
	if len(mock.Purposes) != 2 || mock.Purposes[0] != "cot-gen" {
		t.Errorf("purposes not recorded: %v", mock.Purposes)
	}
}
