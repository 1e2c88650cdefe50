package llm

import (
	"encoding/json"
	"errors"
	"testing"
)

func testSchema() *Schema {
	return &Schema{
		Name: "answer-test",
		Definition: map[string]any{
			"type": "object",
			"properties": map[string]any{
				"answer": map[string]any{"type": "string"},
			},
			"required":             []any{"answer"},
			"additionalProperties": false,
		},
	}
}

func TestValidateResponseAccepts(t *testing.T) {
	err := validateResponse(testSchema(), json.RawMessage(`{"answer":"42"}`))
	if err != nil {
		t.Fatalf("validateResponse: %v", err)
	}
}

func TestValidateResponseRejectsMissingField(t *testing.T) {
	err := validateResponse(testSchema(), json.RawMessage(`{}`))
	var inv *ErrInvalidResponse
	if !errors.As(err, &inv) {
		t.Fatalf("error = %v, want ErrInvalidResponse", err)
	}
}

func TestValidateResponseRejectsBadJSON(t *testing.T) {
	err := validateResponse(testSchema(), json.RawMessage(`not json`))
	var inv *ErrInvalidResponse
	if !errors.As(err, &inv) {
		t.Fatalf("error = %v, want ErrInvalidResponse", err)
	}
}

func TestValidateResponseNilSchema(t *testing.T) {
	if err := validateResponse(nil, json.RawMessage(`anything`)); err != nil {
		t.Fatalf("nil schema should pass: %v", err)
	}
}

func TestLookupCost(t *testing.T) {
	c := LookupCost("simulated-cot")
	if c == nil {
		t.Fatal("simulated model missing from pricing table")
	}
	if got := c.Cost(1000, 1000); got != 0 {
		t.Errorf("simulated cost = %v, want 0", got)
	}

	if LookupCost("unknown-model") != nil {
		t.Error("unknown model should have no pricing")
	}

	oai := LookupCost("gpt-4o-mini")
	if oai == nil {
		t.Fatal("gpt-4o-mini missing from pricing table")
	}
	want := 0.15/2 + 0.6/2 // 500k input + 500k output
	if got := oai.Cost(500_000, 500_000); got != want {
		t.Errorf("cost = %v, want %v", got, want)
	}
}

func TestValidateResponseAcceptsFencedJSON(t *testing.T) {
	raw := json.RawMessage("```json\n{\"answer\":\"42\"}\n```")
	if err := validateResponse(testSchema(), raw); err != nil {
		t.Fatalf("validateResponse: %v", err)
	}
}

func TestNormalizeJSON(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{`{"a":1}`, `{"a":1}`},
		{"  {\"a\":1}\n", `{"a":1}`},
		{"```json\n{\"a\":1}\n```", `{"a":1}`},
		{"```\n{\"a\":1}\n```", `{"a":1}`},
	}

	for _, tc := range cases {
		got := string(NormalizeJSON(json.RawMessage(tc.in)))
		if got != tc.want {
			t.Errorf("NormalizeJSON(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}
