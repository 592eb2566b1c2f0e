package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"time"

	"github.com/fogleman/fauxgl"

	"starfield/internal/config"
	"starfield/internal/logging"
	"starfield/internal/raster"
	"starfield/internal/scene"
	"starfield/internal/term"
)

func main() {
	cfg, verbose, err := config.FromArgs("perspective", os.Args[1:], os.Stderr, config.Config{Step: 0.01})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(2)
	}
	logging.SetLogger(logging.NewText(os.Stderr, verbose))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	fmt.Println("TEST PROGRAM 3: PERSPECTIVE")
	logging.Logger().Debug("starting", "width", cfg.Width, "height", cfg.Height, "frames", cfg.Frames)

	sc := scene.NewPerspective()
	buf := raster.NewDepthBuffer[fauxgl.Color](cfg.Width, cfg.Height)
	screen := term.NewScreen(os.Stdout)
	delay := time.Duration(cfg.FrameDelayMS) * time.Millisecond
	err = term.Loop(ctx, screen, cfg.Frames, cfg.Step, delay, func(t float64) *raster.Buffer[term.Cell] {
		sc.Draw(buf, t)
		return term.Quantize(buf)
	})
	screen.Close()
	if err != nil && !errors.Is(err, context.Canceled) {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
