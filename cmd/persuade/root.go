package main

import (
	"log/slog"

	"github.com/spf13/cobra"
)

var version = "dev"

func newRootCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "persuade",
		Short: "Persuade - benchmark harness for Bayesian persuasion games",
		Long: `Persuade is a command-line harness for benchmarking language models on
Bayesian persuasion games.

The model plays the Sender: it commits to a signaling scheme for a scenario,
and the harness referees the result — validating the scheme, computing the
Receiver's best response to every posterior, and scoring the Sender's
expected utility against the theoretical optimum and fixed baselines.`,
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
	cmd.AddCommand(newRunCommand())
	cmd.AddCommand(newCheckCommand())
	cmd.AddCommand(newListCommand())
	cmd.AddCommand(newNewCommand())

	return cmd
}

func execute() error {
	rootCmd := newRootCommand()
	return rootCmd.Execute()
}
