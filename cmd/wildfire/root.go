package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"

	"github.com/spf13/cobra"

	"wildfire/internal/config"
	"wildfire/internal/logging"
)

var (
	cfgFlags config.Flags
	logLevel string
	logger   = logging.NewNop()
)

var rootCmd = &cobra.Command{
	Use:   "wildfire",
	Short: "Stochastic wildfire automaton with a logistic reference",
	Long: `wildfire spreads fire across an n×n forest, one step at a time: each burning
cell ignites each green 4-neighbour with probability p and then burns out.
The burnt-fraction curve is compared with the logistic model dB/dt = r·B·(1−B).

Running without a subcommand is the same as "wildfire run".`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		level, err := logging.ParseLevel(logLevel)
		if err != nil {
			return err
		}
		logger = logging.New(os.Stderr, level)
		slog.SetDefault(logger)
		return nil
	},
	RunE: runRun,
}

// Execute runs the command tree and exits non-zero on failure.
func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		stop()
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "info", "debug, info, warn or error")
	cfgFlags.Bind(rootCmd.PersistentFlags())
	bindRunFlags(rootCmd)
}
