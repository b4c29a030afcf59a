// Package cli implements the Retrofolio command-line interface using
// Cobra. Each subcommand maps to one surface: serve, chat, stats,
// achievements, reset.
package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "retrofolio",
	Short: "Retrofolio — retro-terminal portfolio engine",
	Long: `Retrofolio runs the portfolio backend: the scripted terminal chatbot,
the gamification engine, and the optional AI assistant.

Start the HTTP API with 'retrofolio serve', or explore the terminal
locally with 'retrofolio chat'.`,
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
