package main

import (
	"fmt"
	"log"
	"os"

	"github.com/spf13/cobra"
)

func main() {
	log.SetFlags(0)

	rootCmd := &cobra.Command{
		Use:   "sigil-bench",
		Short: "Micro-benchmarks for sigil signal graphs",
		Long: `sigil-bench measures the cost of the generation-tracking protocol on
synthetic graphs:

  • chain:  a linear chain of derived views over one signal
  • fanout: many independent views over one signal
  • pair:   a combined two-signal view with alternating mutations

Results print as a table, or as JSON with --json for tracking runs
over time.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.AddCommand(
		chainCmd(),
		fanoutCmd(),
		pairCmd(),
		versionCmd(),
	)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "\033[31mError:\033[0m %s\n", err)
		os.Exit(1)
	}
}
