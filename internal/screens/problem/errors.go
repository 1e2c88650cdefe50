package problem

import (
	"context"
	"errors"

	"github.com/ipveka/ThoughtChain/internal/llm"
)

// friendlyError turns provider errors into short, actionable messages.
func friendlyError(err error) string {
	var rl *llm.ErrRateLimit
	if errors.As(err, &rl) {
		return "The model is rate limited. Wait a moment and try again."
	}

	var unavail *llm.ErrProviderUnavailable
	if errors.As(err, &unavail) {
		return "The model provider is unreachable. Check your connection and API key."
	}

	var maxTok *llm.ErrMaxTokensExceeded
	if errors.As(err, &maxTok) {
		return "The response was cut off. Raise max tokens and try again."
	}

	var inv *llm.ErrInvalidResponse
	if errors.As(err, &inv) {
		return "The model returned an unusable response. Try again."
	}

	if errors.Is(err, context.DeadlineExceeded) {
		return "Generation timed out. Try again."
	}

	return err.Error()
}
