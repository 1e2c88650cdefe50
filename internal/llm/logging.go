package llm

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
)

// UsageEntry records a single generation request for the current session.
// Entries live in memory only; nothing is persisted across runs.
type UsageEntry struct {
	Timestamp    time.Time
	Purpose      string
	Model        string
	InputTokens  int
	OutputTokens int
	LatencyMs    int64
	Success      bool
	ErrorMessage string
}

// SessionLog is an in-memory, mutex-guarded log of generation requests.
// It powers the usage screen and cost estimates.
type SessionLog struct {
	id      string
	mu      sync.Mutex
	entries []UsageEntry
}

// NewSessionLog creates an empty SessionLog with a fresh session ID.
func NewSessionLog() *SessionLog {
	return &SessionLog{id: uuid.NewString()}
}

// ID returns the session identifier assigned at creation.
func (s *SessionLog) ID() string {
	return s.id
}

// Append adds an entry to the log. Safe for concurrent use.
func (s *SessionLog) Append(e UsageEntry) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.entries = append(s.entries, e)
}

// Entries returns a copy of all recorded entries, oldest first.
func (s *SessionLog) Entries() []UsageEntry {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]UsageEntry, len(s.entries))
	copy(out, s.entries)
	return out
}

// Totals returns aggregate call count and token usage.
func (s *SessionLog) Totals() (calls, inputTokens, outputTokens int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, e := range s.entries {
		calls++
		inputTokens += e.InputTokens
		outputTokens += e.OutputTokens
	}
	return calls, inputTokens, outputTokens
}

// LoggingProvider is a decorator that records every generation request
// in the session log.
type LoggingProvider struct {
	inner Provider
	log   *SessionLog
}

// WithLogging wraps a Provider with usage logging. A nil log disables
// recording without changing behavior.
func WithLogging(p Provider, log *SessionLog) Provider {
	return &LoggingProvider{inner: p, log: log}
}

func (l *LoggingProvider) Generate(ctx context.Context, req Request) (*Response, error) {
	start := time.Now()
	purpose := PurposeFrom(ctx)

	resp, err := l.inner.Generate(ctx, req)

	if l.log != nil {
		entry := UsageEntry{
			Timestamp: start,
			Purpose:   purpose,
			Model:     l.inner.ModelID(),
			LatencyMs: time.Since(start).Milliseconds(),
			Success:   err == nil,
		}
		if resp != nil {
			entry.InputTokens = resp.Usage.InputTokens
			entry.OutputTokens = resp.Usage.OutputTokens
			entry.Model = resp.Model
		}
		if err != nil {
			entry.ErrorMessage = err.Error()
		}
		l.log.Append(entry)
	}

	return resp, err
}

func (l *LoggingProvider) ModelID() string {
	return l.inner.ModelID()
}
