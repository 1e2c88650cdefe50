package cmd

import (
	"fmt"

	"github.com/ipveka/ThoughtChain/internal/cot"
	"github.com/ipveka/ThoughtChain/internal/examples"
	"github.com/spf13/cobra"
)

var examplesCmd = &cobra.Command{
	Use:   "examples",
	Short: "List the built-in example problems",
	RunE: func(cmd *cobra.Command, args []string) error {
		kind, _ := cmd.Flags().GetString("kind")
		category, _ := cmd.Flags().GetString("category")
		difficulty, _ := cmd.Flags().GetString("difficulty")

		problems := examples.All()
		if kind != "" {
			problems = examples.ByKind(cot.ProblemType(kind))
			if problems == nil {
				return fmt.Errorf("unknown kind %q (math, logic, riddle)", kind)
			}
		}

		shown := 0
		for _, p := range problems {
			if category != "" && p.Category != category {
				continue
			}
			if difficulty != "" && string(p.Difficulty) != difficulty {
				continue
			}
			fmt.Printf("[%s · %s · %s]\n  %s\n\n", p.Kind, p.Category, p.Difficulty, p.Question)
			shown++
		}

		if shown == 0 {
			fmt.Println("No examples match the given filters.")
			fmt.Printf("Categories: %v\n", examples.Categories())
		}
		return nil
	},
}

func init() {
	examplesCmd.Flags().String("kind", "", "Filter by kind (math, logic, riddle)")
	examplesCmd.Flags().String("category", "", "Filter by category")
	examplesCmd.Flags().String("difficulty", "", "Filter by difficulty (easy, medium, hard)")
}
