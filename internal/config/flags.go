package config

import (
	"flag"
	"fmt"
	"io"
)

// FromArgs parses the flags shared by the starfield commands. The result
// is base, overlaid by the -config file, overlaid by explicit flags, with
// defaults filled by Resolve. verbose reports -v.
func FromArgs(name string, args []string, w io.Writer, base Config) (cfg Config, verbose bool, err error) {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(w)

	configFile := fs.String("config", "", "Path to config.json file")
	var f Flags
	fs.StringVar(&f.Scene, "scene", "", "Scene to render")
	fs.IntVar(&f.Width, "width", 0, "Buffer width in cells (default: 100)")
	fs.IntVar(&f.Height, "height", 0, "Buffer height in cells (default: 50)")
	fs.IntVar(&f.Frames, "frames", 0, "Number of frames (0: until interrupted)")
	fs.Float64Var(&f.Step, "step", 0, "Time advance per frame")
	fs.Uint64Var(&f.Seed, "seed", 0, "Random seed for procedural scenes")
	fs.StringVar(&f.OutputDir, "output", "", "Output directory (default: renders)")
	fs.StringVar(&f.Format, "format", "", "Image format: webp, tga or png (default: webp)")
	fs.IntVar(&f.Scale, "scale", 0, "Integer upscale factor for exported images (default: 4)")
	fs.IntVar(&f.Workers, "workers", 0, "Number of worker goroutines (default: NumCPU)")
	fs.BoolVar(&verbose, "v", false, "Verbose logging")

	if err := fs.Parse(args); err != nil {
		return Config{}, false, err
	}
	if fs.NArg() > 0 {
		return Config{}, false, fmt.Errorf("config: unexpected arguments %q", fs.Args())
	}

	cfg = base
	if *configFile != "" {
		if err := loadInto(*configFile, &cfg); err != nil {
			return Config{}, false, err
		}
	}
	cfg.Resolve(f)
	return cfg, verbose, nil
}
