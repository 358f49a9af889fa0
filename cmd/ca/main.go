//go:build ebiten

package main

import (
	"errors"
	"flag"
	"log"

	"topolife/internal/app"
	"topolife/internal/core"
	_ "topolife/internal/kernel"

	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	cfg := app.NewConfig()
	cfg.Bind(flag.CommandLine)
	flag.Parse()

	factory, ok := core.Engines()[cfg.Engine]
	if !ok {
		log.Fatalf("unknown engine %q", cfg.Engine)
	}

	sim := factory(cfg.Map())
	sim.Reset(cfg.Seed)

	game := app.New(sim, cfg)
	size := sim.Size()

	ebiten.SetWindowTitle("topolife - " + sim.Name())
	ebiten.SetWindowSize(size.W*cfg.Scale+cfg.PanelWidth, size.H*cfg.Scale)

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
}
