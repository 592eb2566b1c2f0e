package export

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"sync/atomic"
	"time"

	"github.com/fogleman/fauxgl"

	"starfield/internal/logging"
	"starfield/internal/raster"
	"starfield/internal/scene"
)

// Config holds everything a batch export needs.
type Config struct {
	Scene      string
	Width      int
	Height     int
	Frames     int
	Step       float64 // time advance per frame
	Scale      int
	Format     Format
	OutputDir  string
	Workers    int
	Background fauxgl.Color
}

// Result holds the outcome of exporting one frame.
type Result struct {
	Frame   int     `json:"frame"`
	Time    float64 `json:"time"`
	Path    string  `json:"path,omitempty"`
	Success bool    `json:"success"`
	Error   string  `json:"error,omitempty"`
}

// Run exports cfg.Frames frames with a worker pool. Each worker renders
// into its own buffer. Frames not started before ctx is done are reported
// with ctx's error.
func Run(ctx context.Context, cfg Config) []Result {
	total := cfg.Frames
	results := make([]Result, total)
	var processed atomic.Int64
	log := logging.Logger().With("scene", cfg.Scene)

	start := time.Now()

	// Progress reporter
	done := make(chan struct{})
	go func() {
		ticker := time.NewTicker(2 * time.Second)
		defer ticker.Stop()
		for {
			select {
			case <-done:
				return
			case <-ticker.C:
				if p := processed.Load(); p > 0 {
					rate := float64(p) / time.Since(start).Seconds()
					log.Info("progress", "done", p, "total", total, "fps", rate)
				}
			}
		}
	}()

	workers := cfg.Workers
	if workers < 1 {
		workers = 1
	}
	frameChan := make(chan int, workers*2)
	var wg sync.WaitGroup

	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			buf := raster.NewDepthBuffer[fauxgl.Color](cfg.Width, cfg.Height)
			sc, err := scene.Lookup(cfg.Scene)
			for i := range frameChan {
				switch {
				case err != nil:
					results[i] = failed(i, cfg, err)
				case ctx.Err() != nil:
					results[i] = failed(i, cfg, ctx.Err())
				default:
					results[i] = exportFrame(cfg, sc, buf, i)
				}
				processed.Add(1)
			}
		}()
	}

	for i := 0; i < total; i++ {
		frameChan <- i
	}
	close(frameChan)

	wg.Wait()
	close(done)

	log.Debug("batch finished", "frames", total, "elapsed", time.Since(start))
	return results
}

func failed(frame int, cfg Config, err error) Result {
	return Result{Frame: frame, Time: float64(frame) * cfg.Step, Error: err.Error()}
}

func exportFrame(cfg Config, sc scene.Scene, buf *raster.DepthBuffer[fauxgl.Color], frame int) Result {
	t := float64(frame) * cfg.Step
	sc.Draw(buf, t)
	img := Upscale(ToNRGBA(buf, cfg.Background), cfg.Scale)

	outPath := FramePath(cfg, frame)
	if err := os.MkdirAll(filepath.Dir(outPath), 0755); err != nil {
		return failed(frame, cfg, err)
	}
	f, err := os.Create(outPath)
	if err != nil {
		return failed(frame, cfg, err)
	}
	if err := Encode(f, img, cfg.Format); err != nil {
		f.Close()
		return failed(frame, cfg, err)
	}
	if err := f.Close(); err != nil {
		return failed(frame, cfg, err)
	}

	logging.Logger().Debug("frame written", "frame", frame, "path", outPath)
	return Result{Frame: frame, Time: t, Path: outPath, Success: true}
}

// FramePath is where frame i of cfg is written.
func FramePath(cfg Config, frame int) string {
	return filepath.Join(cfg.OutputDir, cfg.Scene, fmt.Sprintf("%04d%s", frame, cfg.Format.Ext()))
}
