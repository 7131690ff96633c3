//go:build ebiten

package main

import (
	"errors"
	"flag"
	"log"
	"os"

	"mad-life/internal/app"
	"mad-life/internal/ui"

	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	cfg := app.NewConfig()
	cfg.Bind(flag.CommandLine)
	flag.Parse()

	ui.PrintControls(os.Stdout)
	console := ui.NewConsole(os.Stdout)

	sess, err := cfg.NewSession(console)
	if err != nil {
		log.Fatal(err)
	}

	game := app.New(sess, console)

	ebiten.SetWindowTitle("Conway's Game of Life")
	ebiten.SetTPS(cfg.TPS)
	ebiten.SetWindowSize(cfg.Width, cfg.Height)

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
}
