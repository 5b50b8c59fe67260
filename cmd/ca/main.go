//go:build ebiten

package main

import (
	"errors"
	"flag"
	"log"
	"log/slog"
	"os"

	"particle-sim/internal/app"
	"particle-sim/internal/core"
	_ "particle-sim/internal/sims/sandbox"

	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	cfg := app.NewConfig()
	cfg.Bind(flag.CommandLine)
	flag.Parse()

	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))

	sim, err := core.New(cfg.Sim, cfg.SimOptions())
	if err != nil {
		log.Fatalf("building sim: %v", err)
	}
	if cfg.Seed != 0 {
		sim.Reset(cfg.Seed)
	}

	game := app.New(sim, cfg.Scale, cfg.HUDWidth, cfg.Seed, logger)
	size := sim.Size()
	logger.Info("starting", "sim", sim.Name(), "w", size.W, "h", size.H, "tps", cfg.TPS)

	ebiten.SetWindowTitle("particle-sim: " + sim.Name())
	ebiten.SetTPS(cfg.TPS)
	ebiten.SetWindowSize(size.W*cfg.Scale+cfg.HUDWidth, size.H*cfg.Scale)

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
}
