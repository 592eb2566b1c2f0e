package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"time"

	"github.com/fogleman/fauxgl"

	"starfield/internal/config"
	"starfield/internal/export"
	"starfield/internal/logging"
	"starfield/internal/scene"
)

func main() {
	cfg, verbose, err := config.FromArgs("render", os.Args[1:], os.Stderr, config.Config{
		Scene:  "gradient",
		Frames: 60,
		Step:   0.05,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(2)
	}
	logging.SetLogger(logging.NewText(os.Stderr, verbose))

	format, err := export.ParseFormat(cfg.Format)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(2)
	}
	if _, err := scene.Lookup(cfg.Scene); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(2)
	}
	if !strings.HasPrefix(cfg.Background, "#") {
		cfg.Background = "#" + cfg.Background
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	batchCfg := export.Config{
		Scene:      cfg.Scene,
		Width:      cfg.Width,
		Height:     cfg.Height,
		Frames:     cfg.Frames,
		Step:       cfg.Step,
		Scale:      cfg.Scale,
		Format:     format,
		OutputDir:  cfg.OutputDir,
		Workers:    cfg.Workers,
		Background: fauxgl.HexColor(cfg.Background),
	}

	fmt.Printf("Starfield frame export: %s -> %s\n", cfg.Scene, format)
	fmt.Printf("Frames: %d, Size: %dx%d (x%d), Workers: %d\n",
		cfg.Frames, cfg.Width, cfg.Height, cfg.Scale, cfg.Workers)
	fmt.Printf("Output: %s\n", filepath.Join(cfg.OutputDir, cfg.Scene))
	fmt.Println("------------------------------------------------------------")

	start := time.Now()
	results := export.Run(ctx, batchCfg)
	elapsed := time.Since(start)

	fmt.Println("------------------------------------------------------------")
	fmt.Printf("Done in %.1fs\n", elapsed.Seconds())

	var failures []export.Result
	for _, r := range results {
		if !r.Success {
			failures = append(failures, r)
		}
	}
	fmt.Printf("Rendered: %d/%d\n", len(results)-len(failures), len(results))

	if len(failures) > 0 {
		fmt.Printf("\nFailed (%d):\n", len(failures))
		for _, r := range failures[:min(20, len(failures))] {
			fmt.Printf("  frame %04d: %s\n", r.Frame, r.Error)
		}
	}

	manifestPath := filepath.Join(cfg.OutputDir, cfg.Scene, "manifest.json")
	if err := os.MkdirAll(filepath.Dir(manifestPath), 0755); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: %v\n", err)
	} else if err := export.WriteManifest(manifestPath, batchCfg, results); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: manifest write failed: %v\n", err)
	} else {
		fmt.Printf("Manifest: %s\n", manifestPath)
	}

	if len(failures) > 0 {
		os.Exit(1)
	}
}
