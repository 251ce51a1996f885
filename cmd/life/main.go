//go:build ebiten

package main

import (
	"errors"
	"flag"
	"log"

	"torlife/internal/app"
	"torlife/pkg/life"

	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	cfg, err := app.NewConfig()
	if err != nil {
		log.Fatalf("invalid LIFE_* environment: %v", err)
	}
	cfg.Bind(flag.CommandLine)
	flag.Parse()

	if _, ok := life.Patterns()[cfg.Pattern]; !ok {
		log.Fatalf("unknown pattern %q", cfg.Pattern)
	}

	universe := life.NewFromConfig(life.Config{
		Width:   cfg.Width,
		Height:  cfg.Height,
		Seed:    cfg.Seed,
		Pattern: cfg.Pattern,
	})

	game := app.New(universe, cfg.Pattern, cfg.Scale, cfg.Seed)

	ebiten.SetWindowTitle("torlife — " + cfg.Pattern)
	ebiten.SetTPS(cfg.TPS)
	ebiten.SetWindowSize(universe.Width()*cfg.Scale, universe.Height()*cfg.Scale)

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
}
