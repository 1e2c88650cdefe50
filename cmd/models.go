package cmd

import (
	"fmt"

	"github.com/ipveka/ThoughtChain/internal/llm"
	"github.com/spf13/cobra"
)

var modelsCmd = &cobra.Command{
	Use:   "models",
	Short: "Show supported providers and their default models",
	Run: func(cmd *cobra.Command, args []string) {
		defaults := llm.DefaultConfig()

		rows := []struct {
			Provider string
			Model    string
			EnvVar   string
		}{
			{"simulated", "simulated-cot", "(none, works offline)"},
			{"anthropic", defaults.Anthropic.Model, "THOUGHTCHAIN_ANTHROPIC_API_KEY"},
			{"openai", defaults.OpenAI.Model, "THOUGHTCHAIN_OPENAI_API_KEY"},
			{"gemini", defaults.Gemini.Model, "THOUGHTCHAIN_GEMINI_API_KEY"},
			{"openrouter", defaults.OpenRouter.Model, "THOUGHTCHAIN_OPENROUTER_API_KEY"},
		}

		fmt.Printf("%-12s  %-26s  %s\n", "PROVIDER", "DEFAULT MODEL", "API KEY")
		for _, r := range rows {
			fmt.Printf("%-12s  %-26s  %s\n", r.Provider, r.Model, r.EnvVar)

			if c := llm.LookupCost(r.Model); c != nil && (c.InputPerMTok > 0 || c.OutputPerMTok > 0) {
				fmt.Printf("%-12s  %-26s  $%.2f in / $%.2f out per 1M tokens\n",
					"", "", c.InputPerMTok, c.OutputPerMTok)
			}
		}

		fmt.Println("\nSelect a provider with THOUGHTCHAIN_PROVIDER, or leave it unset to")
		fmt.Println("auto-discover standard *_API_KEY variables. Without any key the")
		fmt.Println("simulated model is used.")
	},
}
