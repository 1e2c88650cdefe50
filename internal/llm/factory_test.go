package llm

import (
	"context"
	"errors"
	"testing"
	"time"
)

// stallProvider blocks until the context is cancelled.
type stallProvider struct{}

func (stallProvider) Generate(ctx context.Context, _ Request) (*Response, error) {
	<-ctx.Done()
	return nil, ctx.Err()
}

func (stallProvider) ModelID() string { return "stall" }

func TestWithDeadlineCutsOffSlowProviders(t *testing.T) {
	p := withDeadline(stallProvider{}, 5*time.Millisecond)

	start := time.Now()
	_, err := p.Generate(context.Background(), Request{})
	if !errors.Is(err, context.DeadlineExceeded) {
		t.Fatalf("error = %v, want DeadlineExceeded", err)
	}
	if time.Since(start) > time.Second {
		t.Error("deadline did not fire promptly")
	}
}

func TestWithDeadlineZeroIsNoop(t *testing.T) {
	inner := NewMockProvider()
	if p := withDeadline(inner, 0); p != Provider(inner) {
		t.Error("zero timeout should return the provider unchanged")
	}
}

func TestNewProviderWrapsWithDeadline(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Provider = "simulated"

	p, err := NewProvider(context.Background(), cfg, nil)
	if err != nil {
		t.Fatalf("NewProvider: %v", err)
	}
	if _, ok := p.(*deadlineProvider); !ok {
		t.Errorf("provider chain top = %T, want *deadlineProvider", p)
	}
	if p.ModelID() != "simulated-cot" {
		t.Errorf("ModelID = %q", p.ModelID())
	}
}
