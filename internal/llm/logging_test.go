package llm

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
)

func TestLoggingRecordsSuccess(t *testing.T) {
	log := NewSessionLog()
	mock := NewMockProvider(MockResponse{
		Content: json.RawMessage(`ok`),
		Usage:   Usage{InputTokens: 10, OutputTokens: 5, TotalTokens: 15},
	})
	p := WithLogging(mock, log)

	ctx := WithPurpose(context.Background(), "cot-gen")
	if _, err := p.Generate(ctx, Request{}); err != nil {
		t.Fatalf("Generate: %v", err)
	}

	entries := log.Entries()
	if len(entries) != 1 {
		t.Fatalf("entries = %d, want 1", len(entries))
	}
	e := entries[0]
	if !e.Success {
		t.Error("entry not marked successful")
	}
	if e.Purpose != "cot-gen" {
		t.Errorf("purpose = %q", e.Purpose)
	}
	if e.InputTokens != 10 || e.OutputTokens != 5 {
		t.Errorf("tokens = %d/%d", e.InputTokens, e.OutputTokens)
	}
	if e.Model != "mock" {
		t.Errorf("model = %q", e.Model)
	}
}

func TestLoggingRecordsFailure(t *testing.T) {
	log := NewSessionLog()
	mock := NewMockProvider(MockResponse{Err: errors.New("boom")})
	p := WithLogging(mock, log)

	if _, err := p.Generate(context.Background(), Request{}); err == nil {
		t.Fatal("expected error")
	}

	entries := log.Entries()
	if len(entries) != 1 {
		t.Fatalf("entries = %d, want 1", len(entries))
	}
	if entries[0].Success {
		t.Error("failed call marked successful")
	}
	if entries[0].ErrorMessage == "" {
		t.Error("missing error message")
	}
}

func TestLoggingNilLogIsNoop(t *testing.T) {
	mock := NewMockProvider(MockResponse{Content: json.RawMessage(`ok`)})
	p := WithLogging(mock, nil)

	resp, err := p.Generate(context.Background(), Request{})
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if string(resp.Content) != "ok" {
		t.Errorf("content = %q", resp.Content)
	}
}

func TestSessionLogTotals(t *testing.T) {
	log := NewSessionLog()
	log.Append(UsageEntry{InputTokens: 10, OutputTokens: 5, Success: true})
	log.Append(UsageEntry{InputTokens: 20, OutputTokens: 15, Success: true})

	calls, in, out := log.Totals()
	if calls != 2 || in != 30 || out != 20 {
		t.Errorf("Totals() = %d, %d, %d", calls, in, out)
	}
}

func TestSessionLogEntriesIsCopy(t *testing.T) {
	log := NewSessionLog()
	log.Append(UsageEntry{Purpose: "a"})

	entries := log.Entries()
	entries[0].Purpose = "mutated"

	if log.Entries()[0].Purpose != "a" {
		t.Error("Entries() exposed internal slice")
	}
}
