package llm

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"sync"
)

// MockResponse is one scripted reply for the MockProvider.
type MockResponse struct {
	Content json.RawMessage
	Usage   Usage
	Err     error
}

// MockProvider is a deterministic Provider for tests and the "mock"
// provider option. Scripted replies are returned in FIFO order; once the
// script runs out it synthesizes a short step-shaped answer from the
// request, so an unscripted mock still produces parseable reasoning.
// Every Generate call is recorded along with its purpose tag.
type MockProvider struct {
	mu       sync.Mutex
	script   []MockResponse
	Calls    []Request
	Purposes []string
}

// NewMockProvider creates a MockProvider with the given scripted replies.
func NewMockProvider(script ...MockResponse) *MockProvider {
	return &MockProvider{script: script}
}

func (m *MockProvider) Generate(ctx context.Context, req Request) (*Response, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.Calls = append(m.Calls, req)
	m.Purposes = append(m.Purposes, PurposeFrom(ctx))

	if len(m.script) == 0 {
		return m.synthesize(req)
	}

	next := m.script[0]
	m.script = m.script[1:]

	if next.Err != nil {
		return nil, next.Err
	}

	return &Response{
		Content:    next.Content,
		Usage:      next.Usage,
		Model:      "mock",
		StopReason: "end",
	}, nil
}

// synthesize builds a fixed three-step answer, as JSON steps when the
// request carries a schema and as marker-prefixed text otherwise.
func (m *MockProvider) synthesize(req Request) (*Response, error) {
	texts := []string{
		"Restate what the problem is asking for.",
		"Work through the givens one at a time.",
		"Therefore, the answer follows from the steps above.",
	}

	var content json.RawMessage
	if req.Schema != nil {
		types := []string{"reasoning", "calculation", "conclusion"}
		steps := make([]map[string]string, len(texts))
		for i, t := range texts {
			steps[i] = map[string]string{"text": t, "type": types[i]}
		}
		raw, err := json.Marshal(map[string]any{"steps": steps})
		if err != nil {
			return nil, &ErrInvalidResponse{Err: err}
		}
		content = raw
	} else {
		var b strings.Builder
		for i, t := range texts {
			fmt.Fprintf(&b, "Step %d: %s\n", i+1, t)
		}
		content = json.RawMessage(b.String())
	}

	out := len(strings.Fields(string(content)))
	return &Response{
		Content:    content,
		Usage:      Usage{InputTokens: 12, OutputTokens: out, TotalTokens: 12 + out},
		Model:      "mock",
		StopReason: "end",
	}, nil
}

// ModelID returns "mock".
func (m *MockProvider) ModelID() string {
	return "mock"
}

// AddResponse appends a scripted reply.
func (m *MockProvider) AddResponse(resp MockResponse) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.script = append(m.script, resp)
}

// CallCount returns the number of Generate calls made.
func (m *MockProvider) CallCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.Calls)
}
