package llm

import (
	"context"
	"encoding/json"
	"strings"
	"testing"
)

func mathPrompt(problem string) Request {
	return Request{
		Messages: []Message{{
			Role:    RoleUser,
			Content: "Let's solve this math problem step by step.\n\nProblem: " + problem + "\n\nStep-by-step solution:",
		}},
	}
}

func TestSimulatedKnownMathProblem(t *testing.T) {
	p := NewSimulatedProvider()

	resp, err := p.Generate(context.Background(), mathPrompt(
		"If a train leaves the station at 3 PM traveling at 60 mph and needs to cover 180 miles, what time will it arrive?"))
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}

	text := string(resp.Content)
	if !strings.Contains(text, "6 PM") {
		t.Errorf("missing expected answer in:\n%s", text)
	}
	if !strings.Contains(text, "Step 1:") {
		t.Errorf("missing step markers in:\n%s", text)
	}
	if resp.Model != "simulated-cot" {
		t.Errorf("model = %q", resp.Model)
	}
	if resp.Usage.TotalTokens == 0 {
		t.Error("expected nonzero token usage")
	}
	if resp.Usage.TotalTokens != resp.Usage.InputTokens+resp.Usage.OutputTokens {
		t.Error("usage totals do not add up")
	}
}

func TestSimulatedKnownRiddle(t *testing.T) {
	p := NewSimulatedProvider()

	resp, err := p.Generate(context.Background(), Request{
		Messages: []Message{{
			Role:    RoleUser,
			Content: "Let's think through this riddle step by step.\n\nRiddle: What gets wetter as it dries?\n\nStep-by-step thinking:",
		}},
	})
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if !strings.Contains(string(resp.Content), "towel") {
		t.Errorf("missing expected answer in:\n%s", resp.Content)
	}
}

func TestSimulatedUnknownProblemFallsBack(t *testing.T) {
	p := NewSimulatedProvider()

	resp, err := p.Generate(context.Background(), mathPrompt("Compute the prime factorization of 9973."))
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	text := string(resp.Content)
	if !strings.Contains(text, "Step 1:") || !strings.Contains(text, "Step 5:") {
		t.Errorf("fallback response missing steps:\n%s", text)
	}
}

func TestSimulatedStructuredMode(t *testing.T) {
	p := NewSimulatedProvider()

	req := mathPrompt("What is 123 × 45?")
	req.Schema = &Schema{
		Name:        "reasoning-steps-test",
		Description: "typed reasoning steps",
		Definition: map[string]any{
			"type": "object",
			"properties": map[string]any{
				"steps": map[string]any{
					"type": "array",
					"items": map[string]any{
						"type": "object",
						"properties": map[string]any{
							"text": map[string]any{"type": "string"},
							"type": map[string]any{
								"type": "string",
								"enum": []any{"reasoning", "calculation", "conclusion", "assumption"},
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

	resp, err := p.Generate(context.Background(), req)
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}

	var out struct {
		Steps []struct {
			Text string `json:"text"`
			Type string `json:"type"`
		} `json:"steps"`
	}
	if err := json.Unmarshal(resp.Content, &out); err != nil {
		t.Fatalf("unmarshal structured content: %v", err)
	}
	if len(out.Steps) == 0 {
		t.Fatal("no steps in structured response")
	}
	for _, s := range out.Steps {
		if s.Text == "" {
			t.Error("step with empty text")
		}
		switch s.Type {
		case "reasoning", "calculation", "conclusion", "assumption":
		default:
			t.Errorf("unexpected step type %q", s.Type)
		}
	}
}

func TestSimulatedCancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	p := NewSimulatedProvider()
	if _, err := p.Generate(ctx, mathPrompt("anything")); err == nil {
		t.Fatal("expected context error")
	}
}
