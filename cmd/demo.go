package cmd

import (
	"fmt"
	"strings"

	"github.com/ipveka/ThoughtChain/internal/cot"
	"github.com/ipveka/ThoughtChain/internal/examples"
	"github.com/ipveka/ThoughtChain/internal/llm"
	"github.com/spf13/cobra"
)

var demoCmd = &cobra.Command{
	Use:   "demo",
	Short: "Walk one example of each kind through the pipeline",
	Long:  "Demo runs a math problem, a logic problem, and a riddle end to end and prints the reasoning chain for each.",
	RunE: func(cmd *cobra.Command, args []string) error {
		sessionLog := llm.NewSessionLog()
		provider, err := llm.NewProviderFromEnv(cmd.Context(), sessionLog)
		if err != nil {
			return fmt.Errorf("configure model provider: %w", err)
		}

		gen := cot.New(provider, cot.DefaultConfig())

		fmt.Printf("Model: %s\n", provider.ModelID())

		for _, kind := range []cot.ProblemType{cot.TypeMath, cot.TypeLogic, cot.TypeRiddle} {
			bank := examples.ByKind(kind)
			if len(bank) == 0 {
				continue
			}
			example := bank[0]

			printSeparator(strings.ToUpper(string(kind)) + " PROBLEM")
			fmt.Printf("%s\n\n", example.Question)

			result, err := gen.Generate(cmd.Context(), example.Question, cot.DefaultParams())
			if err != nil {
				fmt.Printf("✗ generation failed: %v\n", err)
				continue
			}

			printResult(result, false)
		}

		printSeparator("SESSION TOTALS")
		calls, in, out := sessionLog.Totals()
		fmt.Printf("%d calls · %d input tokens · %d output tokens\n", calls, in, out)

		return nil
	},
}

func printSeparator(title string) {
	fmt.Printf("\n%s\n", strings.Repeat("=", 60))
	fmt.Printf("  %s\n", title)
	fmt.Printf("%s\n\n", strings.Repeat("=", 60))
}
