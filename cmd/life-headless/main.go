// Command life-headless runs the simulation in the terminal and prints one
// status line per reported generation.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/caarlos0/env/v11"

	"sparse-life/internal/app"
	"sparse-life/internal/core"
	"sparse-life/internal/sim"
	"sparse-life/internal/ui"
)

func main() {
	cfg := app.NewConfig()
	cfg.Bind(flag.CommandLine)
	generations := flag.Int("generations", 500, "generations to run (0 runs until interrupted)")
	every := flag.Int("every", 10, "print a status line every N generations")
	fast := flag.Bool("fast", false, "ignore -tps and step as fast as possible")
	dump := flag.Bool("dump-config", false, "print the effective configuration as YAML and exit")
	flag.Parse()

	if err := cfg.Resolve(flag.CommandLine, env.ToMap(os.Environ())); err != nil {
		log.Fatalf("config: %v", err)
	}
	if *dump {
		if err := cfg.Dump(os.Stdout); err != nil {
			log.Fatal(err)
		}
		return
	}

	runner, err := sim.New(cfg.Options())
	if err != nil {
		log.Fatalf("create sim: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	runner.Seed(cfg.Seed)
	fmt.Printf("seed %d | %d cells | rule %d..%d | radius %.0f\n",
		cfg.Seed, runner.Live().Len(), cfg.RuleLower, cfg.RuleUpper, cfg.WorldRadius)

	if err := run(ctx, runner, cfg.TPS, *generations, *every, *fast); err != nil && ctx.Err() == nil {
		log.Fatal(err)
	}
	st := runner.Stats()
	fmt.Printf("done after %d generations | population %d | peak %d\n", st.Generation, st.Population, st.PeakPopulation)
}

func run(ctx context.Context, runner *sim.Runner, tps, generations, every int, fast bool) error {
	pacer := core.NewFixedStep(tps)
	if every <= 0 {
		every = 1
	}
	started := time.Now()
	for generations <= 0 || runner.Generation() < uint64(generations) {
		if !fast {
			for !pacer.ShouldStep() {
				select {
				case <-ctx.Done():
					return ctx.Err()
				case <-time.After(pacer.Remaining()):
				}
			}
		}
		if _, _, err := runner.TickContext(ctx); err != nil {
			return err
		}

		gen := runner.Generation()
		if gen%uint64(every) == 0 {
			elapsed := time.Since(started).Seconds()
			tm := ui.Timing{}
			if elapsed > 0 {
				tm.TPS = float64(gen) / elapsed
			}
			fmt.Println(ui.StatusLine(runner.Parameters(), tm))
		}
		if runner.Stats().Extinct() {
			fmt.Println("population extinct")
			return nil
		}
	}
	return nil
}
