package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"time"

	"starfield/internal/config"
	"starfield/internal/logging"
	"starfield/internal/raster"
	"starfield/internal/scene"
	"starfield/internal/term"
)

func main() {
	cfg, verbose, err := config.FromArgs("stars", os.Args[1:], os.Stderr, config.Config{Step: 0.001})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(2)
	}
	logging.SetLogger(logging.NewText(os.Stderr, verbose))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	fmt.Println("TEST PROGRAM 1: STARS")
	logging.Logger().Debug("starting", "seed", cfg.Seed, "width", cfg.Width, "height", cfg.Height)

	stars := scene.NewStars(cfg.Seed)
	buf := raster.NewDepthBuffer[rune](cfg.Width, cfg.Height)
	screen := term.NewScreen(os.Stdout)
	delay := time.Duration(cfg.FrameDelayMS) * time.Millisecond
	err = term.Loop(ctx, screen, cfg.Frames, cfg.Step, delay, func(t float64) *raster.Buffer[term.Cell] {
		stars.Draw(buf, t)
		return term.Glyphs(buf)
	})
	screen.Close()
	if err != nil && !errors.Is(err, context.Canceled) {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
