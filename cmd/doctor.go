package cmd

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/ipveka/ThoughtChain/internal/llm"
	"github.com/ipveka/ThoughtChain/internal/selfupdate"
	"github.com/spf13/cobra"
)

var doctorCmd = &cobra.Command{
	Use:   "doctor",
	Short: "Check the environment and model configuration",
	RunE: func(cmd *cobra.Command, args []string) error {
		ok := func(msg string) { fmt.Printf("  ✓ %s\n", msg) }
		warn := func(msg string) { fmt.Printf("  ! %s\n", msg) }

		fmt.Println("Terminal")
		if msg, good := checkTerminal(os.Getenv("TERM")); good {
			ok(msg)
		} else {
			warn(msg)
		}

		fmt.Println("\nProvider configuration")

		explicit := os.Getenv("THOUGHTCHAIN_PROVIDER")
		var cfg llm.Config
		if explicit != "" {
			cfg = llm.ConfigFromEnv()
			ok(fmt.Sprintf("THOUGHTCHAIN_PROVIDER=%s", explicit))
		} else {
			cfg = llm.DiscoverConfig()
			if cfg.Provider == "simulated" {
				warn("no API key found, the offline simulated model will be used")
			} else {
				ok(fmt.Sprintf("discovered %s credentials", cfg.Provider))
			}
		}

		if err := cfg.Validate(); err != nil {
			warn(err.Error())
		} else {
			ok(fmt.Sprintf("provider %q validates", cfg.Provider))
		}

		fmt.Println("\nModel reachability")
		provider, err := llm.NewProvider(cmd.Context(), cfg, nil)
		if err != nil {
			warn(err.Error())
		} else {
			ok(fmt.Sprintf("provider initialized, model %s", provider.ModelID()))
		}

		fmt.Println("\nUpdates")
		checker := selfupdate.NewChecker(selfupdate.WithTimeout(10 * time.Second))
		ctx, cancel := context.WithTimeout(cmd.Context(), 10*time.Second)
		defer cancel()
		result, err := checker.Check(ctx, &selfupdate.CheckInput{Version: version})
		switch {
		case err != nil:
			warn(fmt.Sprintf("update check failed: %v", err))
		case result.UpdateAvailable:
			warn(fmt.Sprintf("update available: %s (run 'thoughtchain update')", result.LatestVersion))
		default:
			ok("running the latest version")
		}

		return nil
	},
}

// checkTerminal reports whether the terminal can host the TUI, based on
// the TERM environment variable.
func checkTerminal(term string) (string, bool) {
	switch term {
	case "":
		return "TERM is not set, the interactive UI may not render", false
	case "dumb":
		return "TERM=dumb, the interactive UI will not render (use 'thoughtchain solve' instead)", false
	default:
		return fmt.Sprintf("TERM=%s", term), true
	}
}
