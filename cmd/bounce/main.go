//go:build ebiten

package main

import (
	"errors"
	"flag"
	"log"

	"psi-bounce/internal/app"
	"psi-bounce/internal/bounce"

	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	cfg := app.NewConfig()
	cfg.Bind(flag.CommandLine)
	flag.Parse()

	demoCfg, err := cfg.Resolve(flag.CommandLine)
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	demo := bounce.New(demoCfg)
	game := app.New(demo, cfg.HUDWidth)

	ebiten.SetWindowTitle("psi-bounce")
	ebiten.SetTPS(cfg.TPS)
	ebiten.SetWindowSize(demoCfg.Width+cfg.HUDWidth, demoCfg.Height)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	log.Printf("pressure %.1f PSI, restitution %.3f", demoCfg.Pressure, bounce.Restitution(demoCfg.Pressure))
	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
}
