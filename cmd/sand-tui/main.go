package main

import (
	"context"
	"flag"
	"fmt"
	stdlog "log"
	"os"
	"os/signal"

	"falling-sand/internal/app"
	"falling-sand/internal/core"
	"falling-sand/internal/sims/sand"

	"github.com/gdamore/tcell/v2"
)

func main() {
	fit := flag.Bool("fit", true, "size the grid to the terminal, ignoring -w and -h")
	logFile := flag.String("log-file", "", "write logs here while the screen is active (default: discard)")
	cfg, err := app.Load(flag.CommandLine, os.Args[1:], os.Getenv)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	// The screen owns stdout and stderr, so logs go to a file or nowhere.
	var log core.Logger = core.NopLogger{}
	if *logFile != "" {
		f, err := os.OpenFile(*logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(2)
		}
		defer f.Close()
		log = core.NewLoggerTo(stdlog.New(f, "", stdlog.LstdFlags), cfg.LogLevel)
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		fmt.Fprintf(os.Stderr, "open terminal: %v\n", err)
		os.Exit(1)
	}
	if err := screen.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "init terminal: %v\n", err)
		os.Exit(1)
	}
	if *fit {
		w, h := screen.Size()
		cfg.Sim.Width = max(w, 1)
		cfg.Sim.Height = max(h-1, 1)
	}

	world, err := sand.NewWithConfig(cfg.Sim, sand.WithLogger(log))
	if err != nil {
		screen.Fini()
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}
	ctrl := app.NewController(world, cfg.Sim.Seed, log)
	term := app.NewTerminal(screen, ctrl, cfg.TPS, log)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	if err := term.Run(ctx); err != nil && ctx.Err() == nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
