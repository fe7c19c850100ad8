//go:build ebiten

// Command wildfire-view animates the fire automaton in a window.
//
// Keys: Space pause, N single step, R restart with the same seed, S restart
// with a fresh seed, Up/Down change the spread probability, Q or Esc quit.
package main

import (
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/spf13/pflag"

	"wildfire/internal/app"
	"wildfire/internal/config"
	"wildfire/internal/logging"
	"wildfire/internal/sims/wildfire"
)

func main() {
	logger := logging.New(os.Stderr, slog.LevelInfo)

	var simFlags config.Flags
	viewCfg := app.NewConfig()
	fs := pflag.CommandLine
	simFlags.Bind(fs)
	viewCfg.Bind(fs)
	pflag.Parse()
	viewCfg.Normalize()

	cfg, err := simFlags.Resolve(fs)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(2)
	}
	fire, err := wildfire.New(cfg)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(2)
	}
	logger.Info("viewer starting", "n", cfg.Size, "p", cfg.SpreadChance, "seed", fire.Seed())

	game := app.New(fire, viewCfg, logger)
	size := fire.Size()

	ebiten.SetWindowTitle(fmt.Sprintf("wildfire %dx%d", size.W, size.H))
	ebiten.SetTPS(viewCfg.TPS)
	ebiten.SetWindowSize(size.W*viewCfg.Scale+viewCfg.HUDWidth, size.H*viewCfg.Scale)

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		logger.Error("viewer stopped", "error", err)
		os.Exit(1)
	}
}
