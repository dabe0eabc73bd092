package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var verbose bool

var rootCmd = &cobra.Command{
	Use:   "enoughcalc",
	Short: "Retirement enough-number and Monte Carlo calculator",
	Long: `enoughcalc computes how much you need invested today to retire, projects a
year-by-year cashflow with guardrail withdrawals and a cash buffer, and estimates
plan success over thousands of correlated return/inflation paths.`,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
	rootCmd.AddCommand(newCalculateCmd(), newDefaultsCmd(), newValidateCmd(), newServeCmd())
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
