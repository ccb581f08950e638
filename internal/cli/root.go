// Package cli implements the Keel command-line interface using Cobra.
// Each subcommand maps to an engine operation (task, commit, status, etc.).
package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "keel",
	Short: "Keel: points, streaks, and commitments for your day",
	Long: `Keel is the engagement engine behind your self-management app.
It scores completed tasks, tracks cross-feature streaks, unlocks
achievements, and runs the single active 48-hour commitment.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute runs the root command. Called from main.go.
func Execute(version string) {
	rootCmd.Version = version

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
