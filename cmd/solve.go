package cmd

import (
	"fmt"
	"strings"
	"time"

	"github.com/ipveka/ThoughtChain/internal/cot"
	"github.com/ipveka/ThoughtChain/internal/llm"
	"github.com/spf13/cobra"
)

var solveCmd = &cobra.Command{
	Use:   "solve [problem...]",
	Short: "Run one problem through the reasoning pipeline",
	Long:  "Solve sends a problem to the configured model and prints the parsed reasoning steps. The problem is read from the arguments.",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		problem := strings.Join(args, " ")

		temperature, _ := cmd.Flags().GetFloat64("temperature")
		topP, _ := cmd.Flags().GetFloat64("top-p")
		maxTokens, _ := cmd.Flags().GetInt("max-tokens")
		showRaw, _ := cmd.Flags().GetBool("raw")
		structured, _ := cmd.Flags().GetBool("structured")

		sessionLog := llm.NewSessionLog()
		provider, err := llm.NewProviderFromEnv(cmd.Context(), sessionLog)
		if err != nil {
			return fmt.Errorf("configure model provider: %w", err)
		}

		gen := cot.New(provider, cot.Config{Structured: structured})
		params := cot.Params{
			Temperature: temperature,
			TopP:        topP,
			MaxTokens:   maxTokens,
		}

		result, err := gen.Generate(cmd.Context(), problem, params)
		if err != nil {
			return err
		}

		printResult(result, showRaw)
		return nil
	},
}

func init() {
	defaults := cot.DefaultParams()
	solveCmd.Flags().Float64("temperature", defaults.Temperature, "Sampling temperature (0.0-1.0)")
	solveCmd.Flags().Float64("top-p", defaults.TopP, "Nucleus sampling cutoff (0.0-1.0)")
	solveCmd.Flags().Int("max-tokens", defaults.MaxTokens, "Response token budget (50-500)")
	solveCmd.Flags().Bool("raw", false, "Also print the unparsed model output")
	solveCmd.Flags().Bool("structured", false, "Request typed steps via structured output")
}

// printResult writes a parsed result to stdout.
func printResult(result *cot.Result, showRaw bool) {
	fmt.Printf("Problem type: %s\n", result.Type)
	fmt.Printf("Model:        %s\n\n", result.Model)

	for _, step := range result.Steps {
		marker := stepMarker(step.Type)
		fmt.Printf("  %s [%d] %s\n      %s\n\n", marker, step.Index+1, step.Type, step.Text)
	}

	if conclusion := result.Conclusion(); conclusion != "" {
		fmt.Printf("Conclusion: %s\n\n", conclusion)
	}

	counts := result.CountByType()
	var parts []string
	for _, st := range cot.StepTypes {
		if counts[st] > 0 {
			parts = append(parts, fmt.Sprintf("%d %s", counts[st], st))
		}
	}
	fmt.Printf("%d steps (%s) · %s · %d tokens\n",
		len(result.Steps),
		strings.Join(parts, ", "),
		result.Elapsed.Round(10*time.Millisecond),
		result.Usage.TotalTokens,
	)

	if showRaw {
		fmt.Println("\n--- raw output ---")
		fmt.Println(result.RawText)
	}
}

func stepMarker(t cot.StepType) string {
	switch t {
	case cot.StepCalculation:
		return "∑"
	case cot.StepConclusion:
		return "✓"
	case cot.StepAssumption:
		return "≡"
	default:
		return "◆"
	}
}
