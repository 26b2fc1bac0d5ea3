//go:build ebiten

package main

import (
	"errors"
	"flag"
	"fmt"
	"os"

	"falling-sand/internal/app"
	"falling-sand/internal/core"
	"falling-sand/internal/sims/sand"

	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	cfg, err := app.Load(flag.CommandLine, os.Args[1:], os.Getenv)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}
	log := core.NewLogger(cfg.LogLevel)

	world, err := sand.NewWithConfig(cfg.Sim, sand.WithLogger(log))
	if err != nil {
		log.Errorf("%v", err)
		os.Exit(2)
	}
	ctrl := app.NewController(world, cfg.Sim.Seed, log)
	game := app.New(ctrl, cfg.Scale)
	size := world.Size()

	ebiten.SetWindowTitle("falling-sand")
	ebiten.SetTPS(cfg.TPS)
	ebiten.SetWindowSize(size.W*cfg.Scale+app.HUDWidth, size.H*cfg.Scale)

	log.Infof("starting %dx%d grid at %d tps", size.W, size.H, cfg.TPS)
	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Errorf("%v", err)
		os.Exit(1)
	}
}
