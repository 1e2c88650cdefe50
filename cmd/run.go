package cmd

import (
	"fmt"

	"github.com/ipveka/ThoughtChain/internal/app"
	"github.com/ipveka/ThoughtChain/internal/cot"
	"github.com/ipveka/ThoughtChain/internal/llm"
	"github.com/spf13/cobra"
)

// runApp builds the provider and generator and launches the TUI.
func runApp(cmd *cobra.Command) error {
	ctx := cmd.Context()

	sessionLog := llm.NewSessionLog()
	provider, err := llm.NewProviderFromEnv(ctx, sessionLog)
	if err != nil {
		return fmt.Errorf("configure model provider: %w", err)
	}

	opts := app.Options{
		Generator:  cot.New(provider, cot.DefaultConfig()),
		SessionLog: sessionLog,
		ModelID:    provider.ModelID(),
	}

	return app.Run(opts)
}
