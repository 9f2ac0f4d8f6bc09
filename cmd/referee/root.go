package main

import (
	"log/slog"

	"github.com/spf13/cobra"
)

var version = "dev"

func newRootCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "referee",
		Short: "Referee - deterministic smartphone purchase comparisons",
		Long: `Referee compares a catalog of smartphones against your constraints
or a hand-picked shortlist and explains the outcome: who qualifies, who is
eliminated and why, normalized scores, ranked order, pairwise trade-offs,
and what-if sensitivity rules.

The same inputs always produce the same comparison.`,
		Version:      version,
		SilenceUsage: true,
	}

	debugLogging := cmd.PersistentFlags().Bool("debug", false, "Enable debug logging")
	cmd.PersistentPreRun = func(cmd *cobra.Command, args []string) {
		if *debugLogging {
			slog.SetLogLoggerLevel(slog.LevelDebug)
		}
	}

	// Add subcommands
	cmd.AddCommand(newEvaluateCommand())
	cmd.AddCommand(newShortlistCommand())
	cmd.AddCommand(newBatchCommand())
	cmd.AddCommand(newValidateCommand())
	cmd.AddCommand(newWizardCommand())

	return cmd
}

func execute() error {
	rootCmd := newRootCommand()
	return rootCmd.Execute()
}
