package sand

import (
	"slices"
	"sync"
	"time"

	"falling-sand/internal/core"
)

// ScenarioResult captures telemetry from a deterministic headless run.
type ScenarioResult struct {
	Seed int64
	// Steps is how many update passes ran.
	Steps int
	// Initial and Final hold per-material cell counts indexed by Material.
	Initial []int
	Final   []int
	// SettledStep is the first step after which the grid stopped changing, or
	// -1 if it was still moving when the run ended.
	SettledStep int
	Elapsed     time.Duration
}

// Conserved reports whether every material kept its cell count.
func (r ScenarioResult) Conserved() bool {
	return slices.Equal(r.Initial, r.Final)
}

// StepsPerSecond returns the measured update throughput.
func (r ScenarioResult) StepsPerSecond() float64 {
	if r.Elapsed <= 0 {
		return 0
	}
	return float64(r.Steps) / r.Elapsed.Seconds()
}

// RunScenario builds a world from cfg with a seeded tie-break source, lays a
// dirt floor with a few ledges, scatters sand and water over the upper half
// and steps it the requested number of times.
func RunScenario(cfg Config, steps int) (ScenarioResult, error) {
	cfg.Ticks = core.TicksSeeded
	w, err := NewWithConfig(cfg)
	if err != nil {
		return ScenarioResult{}, err
	}
	populate(w.grid, core.NewRNG(cfg.Seed))

	res := ScenarioResult{
		Seed:        cfg.Seed,
		Steps:       max(steps, 0),
		Initial:     countAll(w.grid),
		SettledStep: -1,
	}
	prev := slices.Clone(w.Cells())
	start := time.Now()
	for i := 0; i < res.Steps; i++ {
		w.Step()
		cells := w.Cells()
		if slices.Equal(prev, cells) {
			if res.SettledStep < 0 {
				res.SettledStep = i
			}
		} else {
			res.SettledStep = -1
			copy(prev, cells)
		}
	}
	res.Elapsed = time.Since(start)
	res.Final = countAll(w.grid)
	return res, nil
}

// RunScenarios runs one scenario per seed on up to workers goroutines. Results
// are returned in seed order.
func RunScenarios(base Config, seeds []int64, steps, workers int) ([]ScenarioResult, error) {
	if workers <= 0 {
		workers = 1
	}
	results := make([]ScenarioResult, len(seeds))
	errs := make([]error, len(seeds))
	var wg sync.WaitGroup
	sem := make(chan struct{}, workers)

	for idx, seed := range seeds {
		wg.Add(1)
		sem <- struct{}{}
		go func(i int, s int64) {
			defer wg.Done()
			cfg := base
			cfg.Seed = s
			results[i], errs[i] = RunScenario(cfg, steps)
			<-sem
		}(idx, seed)
	}
	wg.Wait()

	for _, err := range errs {
		if err != nil {
			return nil, err
		}
	}
	return results, nil
}

func populate(g *Grid, rng *core.RNG) {
	size := g.Size()
	floor := size.H - 1
	for x := 0; x < size.W; x++ {
		g.put(floor*size.W+x, Dirt)
	}

	ledges := 1 + size.W/32
	for range ledges {
		y := size.H/2 + rng.IntN(max(size.H/2-1, 1))
		x0 := rng.IntN(size.W)
		length := 2 + rng.IntN(max(size.W/6, 1))
		for x := x0; x < min(x0+length, size.W); x++ {
			if y < floor {
				g.put(y*size.W+x, Dirt)
			}
		}
	}

	grains := size.W * size.H / 8
	for range grains {
		x := rng.IntN(size.W)
		y := rng.IntN(max(size.H/2, 1))
		i := y*size.W + x
		if g.at(i) != Empty {
			continue
		}
		if rng.Bool() {
			g.put(i, Sand)
		} else {
			g.put(i, Water)
		}
	}
}

func countAll(g *Grid) []int {
	counts := make([]int, materialCount)
	for _, m := range Materials() {
		counts[m] = g.Count(m)
	}
	return counts
}
