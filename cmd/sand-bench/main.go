package main

import (
	"flag"
	"fmt"
	"os"
	"runtime"
	"strings"

	"falling-sand/internal/core"
	"falling-sand/internal/sims/sand"
)

type kvList []string

func (l *kvList) String() string {
	return strings.Join(*l, ",")
}

func (l *kvList) Set(value string) error {
	*l = append(*l, value)
	return nil
}

func main() {
	steps := flag.Int("steps", 600, "number of steps to simulate per run")
	runs := flag.Int("runs", 4, "number of seeds to run")
	workers := flag.Int("workers", runtime.NumCPU(), "parallel runs")
	width := flag.Int("width", 192, "grid width for benchmark runs")
	height := flag.Int("height", 144, "grid height for benchmark runs")
	seed := flag.Int64("seed", 1337, "first seed; run i uses seed+i")
	logLevel := flag.String("log-level", "info", "log level: debug, info, warn, error")
	var overrides kvList
	flag.Var(&overrides, "set", "world setting in key=value form (repeatable)")
	flag.Parse()

	log := core.NewLogger(*logLevel)

	settings := map[string]string{}
	for _, kv := range overrides {
		parts := strings.SplitN(kv, "=", 2)
		if len(parts) != 2 {
			log.Warnf("ignoring malformed override %q", kv)
			continue
		}
		settings[parts[0]] = parts[1]
	}
	cfg := sand.FromMap(settings)
	cfg.Width = *width
	cfg.Height = *height

	seeds := make([]int64, max(*runs, 1))
	for i := range seeds {
		seeds[i] = *seed + int64(i)
	}
	log.Infof("running %d scenarios of %d steps on a %dx%d grid", len(seeds), *steps, cfg.Width, cfg.Height)

	results, err := sand.RunScenarios(cfg, seeds, *steps, *workers)
	if err != nil {
		log.Errorf("benchmark failed: %v", err)
		os.Exit(1)
	}

	failed := false
	total := 0.0
	for _, res := range results {
		settled := "still moving"
		if res.SettledStep >= 0 {
			settled = fmt.Sprintf("settled at step %d", res.SettledStep)
		}
		fmt.Printf("seed %d: %.0f steps/s, sand %d, water %d, dirt %d, %s\n",
			res.Seed, res.StepsPerSecond(), res.Final[sand.Sand], res.Final[sand.Water], res.Final[sand.Dirt], settled)
		if !res.Conserved() {
			failed = true
			log.Errorf("seed %d: particle counts changed %v -> %v", res.Seed, res.Initial, res.Final)
		}
		total += res.StepsPerSecond()
	}
	fmt.Printf("\nMean throughput: %.0f steps/s over %d runs\n", total/float64(len(results)), len(results))
	if failed {
		os.Exit(1)
	}
}
