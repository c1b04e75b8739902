//go:build ebiten

package main

import (
	"errors"
	"flag"
	"log"
	"os"
	"strings"

	"github.com/caarlos0/env/v11"
	"github.com/hajimehoshi/ebiten/v2"

	"sparse-life/internal/app"
	"sparse-life/internal/core"
	_ "sparse-life/internal/sim"
)

func main() {
	cfg := app.NewConfig()
	cfg.Bind(flag.CommandLine)
	flag.Parse()
	if err := cfg.Resolve(flag.CommandLine, env.ToMap(os.Environ())); err != nil {
		log.Fatalf("config: %v", err)
	}

	factory, ok := core.Sims()[cfg.Sim]
	if !ok {
		log.Fatalf("unknown sim %q (available: %s)", cfg.Sim, strings.Join(core.SimNames(), ", "))
	}

	sim, err := factory(cfg.Options())
	if err != nil {
		log.Fatalf("create %s: %v", cfg.Sim, err)
	}
	sim.Reset(cfg.Seed)

	game := app.New(sim, cfg)

	ebiten.SetWindowTitle("sparse-life: " + sim.Name())
	ebiten.SetTPS(cfg.TPS)
	ebiten.SetWindowSize(cfg.Width, cfg.Height)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
}
