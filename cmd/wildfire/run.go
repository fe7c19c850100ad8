package main

import (
	"github.com/spf13/cobra"

	"wildfire/internal/cli"
)

var runOpts cli.RunOptions

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run one simulation and write its reports",
	Long: `Run the automaton from the configured seeds until no cell is burning or the
step bound is reached, then write the annotated final state, the comparison
chart and any optional outputs.`,
	Example: `  wildfire run -n 50 -p 0.45 --seed 7 --plot
  wildfire run --config scenario.yaml --video fire.avi --csv series.csv
  wildfire run -p 0.6 --dump-config replay.yaml`,
	RunE: runRun,
}

func init() {
	bindRunFlags(runCmd)
	rootCmd.AddCommand(runCmd)
}

// bindRunFlags registers the output flags on cmd. The root command and run
// share the same destination variables.
func bindRunFlags(cmd *cobra.Command) {
	fs := cmd.Flags()
	fs.StringVarP(&runOpts.ImagePath, "out", "o", cli.DefaultImagePath, "final state PNG (empty to skip)")
	fs.StringVar(&runOpts.ChartPath, "chart", "comparacion_logistica.png", "comparison chart PNG (empty to skip)")
	fs.StringVar(&runOpts.VideoPath, "video", "", "write every step to this MJPEG AVI")
	fs.IntVar(&runOpts.VideoFPS, "fps", 4, "video frame rate")
	fs.StringVar(&runOpts.CSVPath, "csv", "", "write the burnt-fraction series to this CSV")
	fs.BoolVar(&runOpts.Plot, "plot", false, "print a terminal plot of both curves")
	fs.BoolVar(&runOpts.Strict, "strict", false, "fail when the step bound is reached while cells still burn")
	fs.StringVar(&runOpts.DumpConfigPath, "dump-config", "", "write the resolved configuration, seed included, to this YAML file")
}

func runRun(cmd *cobra.Command, args []string) error {
	cfg, err := cfgFlags.Resolve(cmd.Flags())
	if err != nil {
		return err
	}
	runOpts.Out = cmd.OutOrStdout()
	_, err = cli.Run(cmd.Context(), cfg, runOpts, logger)
	return err
}
