package main

import (
	"runtime"

	"github.com/spf13/cobra"

	"wildfire/internal/cli"
)

var sweepOpts cli.SweepOptions

var sweepCmd = &cobra.Command{
	Use:   "sweep",
	Short: "Measure mean burnt fraction across a range of spread probabilities",
	Long: `Run several independent replicates at each probability from --from to --to
and print the mean final burnt fraction and mean steps. Replicates are seeded
from --seed so a sweep can be repeated exactly.`,
	Example: `  wildfire sweep -n 50 --from 0.3 --to 0.7 --step 0.02 --replicates 50 --sweep-chart sweep.png`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := cfgFlags.Resolve(cmd.Flags())
		if err != nil {
			return err
		}
		sweepOpts.Out = cmd.OutOrStdout()
		_, err = cli.Sweep(cmd.Context(), cfg, sweepOpts, logger)
		return err
	},
}

func init() {
	fs := sweepCmd.Flags()
	fs.Float64Var(&sweepOpts.From, "from", 0, "lowest spread probability")
	fs.Float64Var(&sweepOpts.To, "to", 1, "highest spread probability")
	fs.Float64Var(&sweepOpts.Step, "step", 0.05, "probability increment")
	fs.IntVar(&sweepOpts.Replicates, "replicates", 20, "runs per probability")
	fs.IntVar(&sweepOpts.Workers, "workers", runtime.NumCPU(), "number of worker goroutines")
	fs.StringVar(&sweepOpts.ChartPath, "sweep-chart", "", "write mean burnt fraction against p to this PNG")
	rootCmd.AddCommand(sweepCmd)
}
