// Command radius-sweep measures how the world radius limits population
// growth, to pick a radius that keeps memory bounded for a given rule.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"runtime"
	"strconv"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"

	"sparse-life/internal/app"
	"sparse-life/internal/sim"
)

type floatList []float64

func (l *floatList) String() string {
	parts := make([]string, len(*l))
	for i, v := range *l {
		parts[i] = strconv.FormatFloat(v, 'f', -1, 64)
	}
	return strings.Join(parts, ",")
}

func (l *floatList) Set(value string) error {
	for _, part := range strings.Split(value, ",") {
		v, err := strconv.ParseFloat(strings.TrimSpace(part), 64)
		if err != nil {
			return err
		}
		*l = append(*l, v)
	}
	return nil
}

func main() {
	cfg := app.NewConfig()
	cfg.Bind(flag.CommandLine)
	steps := flag.Int("steps", 400, "generations to simulate per scenario")
	seedCount := flag.Int("seeds", 4, "seeds per radius, counting up from -seed")
	parallel := flag.Int("parallel", runtime.NumCPU(), "concurrent scenarios")
	var radii floatList
	flag.Var(&radii, "radii", "comma separated radii to sweep (0 disables the bound)")
	flag.Parse()

	if err := cfg.Resolve(flag.CommandLine, env.ToMap(os.Environ())); err != nil {
		log.Fatalf("config: %v", err)
	}
	if len(radii) == 0 {
		radii = floatList{250, 500, 1000, 2000}
	}
	if *steps < 1 {
		log.Fatalf("steps must be at least 1, got %d", *steps)
	}
	seeds, err := sim.SeedRange(cfg.Seed, *seedCount)
	if err != nil {
		log.Fatalf("seeds: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	fmt.Printf("Sweeping %d radii x %d seeds (%d parallel, %d steps, rule %d..%d)\n",
		len(radii), len(seeds), *parallel, *steps, cfg.RuleLower, cfg.RuleUpper)

	start := time.Now()
	results, err := sim.RadiusSweep(ctx, cfg.Options(), radii, seeds, *steps, *parallel)
	if err != nil {
		log.Fatalf("sweep: %v", err)
	}
	for _, res := range results {
		fmt.Println(res)
	}

	fmt.Printf("\nPer radius (elapsed %s):\n", time.Since(start).Round(time.Millisecond))
	for _, radius := range radii {
		peak, final, n := 0, 0, 0
		for _, res := range results {
			if res.Radius != radius {
				continue
			}
			peak = max(peak, res.PeakPopulation)
			final += res.Final
			n++
		}
		if n == 0 {
			continue
		}
		fmt.Printf("radius=%-6g worst peak=%-6d mean final=%.1f\n", radius, peak, float64(final)/float64(n))
	}
}
