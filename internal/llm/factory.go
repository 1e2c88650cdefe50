package llm

import (
	"context"
	"fmt"
	"os"
	"time"
)

// NewProvider creates a Provider from configuration.
// It returns the provider wrapped with retry and usage logging middleware.
func NewProvider(ctx context.Context, cfg Config, log *SessionLog) (Provider, error) {
	var base Provider
	var err error

	switch cfg.Provider {
	case "anthropic":
		base, err = NewAnthropicProvider(cfg.Anthropic)
	case "openai":
		base, err = NewOpenAIProvider(cfg.OpenAI)
	case "gemini":
		base, err = NewGeminiProvider(ctx, cfg.Gemini)
	case "openrouter":
		base, err = NewOpenRouterProvider(cfg.OpenRouter)
	case "simulated":
		base = NewSimulatedProvider()
	case "mock":
		base = NewMockProvider()
	default:
		return nil, fmt.Errorf("unknown provider: %q", cfg.Provider)
	}
	if err != nil {
		return nil, fmt.Errorf("initializing %s provider: %w", cfg.Provider, err)
	}

	// Wrap with middleware: caller → deadline → retry → logging → base
	logged := WithLogging(base, log)
	retried := WithRetry(logged, cfg.Retry)

	return withDeadline(retried, cfg.Timeout), nil
}

// deadlineProvider bounds each request, retries included, by the
// configured Timeout.
type deadlineProvider struct {
	inner   Provider
	timeout time.Duration
}

func withDeadline(p Provider, timeout time.Duration) Provider {
	if timeout <= 0 {
		return p
	}
	return &deadlineProvider{inner: p, timeout: timeout}
}

func (d *deadlineProvider) Generate(ctx context.Context, req Request) (*Response, error) {
	ctx, cancel := context.WithTimeout(ctx, d.timeout)
	defer cancel()
	return d.inner.Generate(ctx, req)
}

func (d *deadlineProvider) ModelID() string {
	return d.inner.ModelID()
}

// NewProviderFromEnv builds a Provider using THOUGHTCHAIN_* variables when
// set, otherwise discovering standard API key variables. The simulated
// provider is the fallback, so this never fails for want of credentials.
func NewProviderFromEnv(ctx context.Context, log *SessionLog) (Provider, error) {
	cfg := ConfigFromEnv()
	if os.Getenv("THOUGHTCHAIN_PROVIDER") == "" {
		// No explicit provider selection; probe standard key vars.
		cfg = DiscoverConfig()
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return NewProvider(ctx, cfg, log)
}
