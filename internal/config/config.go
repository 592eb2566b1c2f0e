package config

import (
	"encoding/json"
	"fmt"
	"os"
	"runtime"
)

// Config holds the demo and export settings.
type Config struct {
	// Scene
	Scene  string  `json:"scene"`
	Width  int     `json:"width"`
	Height int     `json:"height"`
	Step   float64 `json:"step"`   // time advance per frame
	Frames int     `json:"frames"` // 0 runs terminal demos until interrupted
	Seed   uint64  `json:"seed"`

	// Terminal
	FrameDelayMS int `json:"frame_delay_ms"`

	// Export
	OutputDir  string `json:"output_dir"`
	Format     string `json:"format"`
	Scale      int    `json:"scale"`
	Background string `json:"background"` // hex color
	Workers    int    `json:"workers"`
}

// Load reads a JSON config file and returns Config.
// Fields not set in the file keep their zero values.
func Load(path string) (Config, error) {
	var cfg Config
	if err := loadInto(path, &cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// loadInto decodes the file at path over cfg, keeping fields it omits.
func loadInto(path string, cfg *Config) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("config: read %s: %w", path, err)
	}
	if err := json.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("config: parse %s: %w", path, err)
	}
	return nil
}

// Resolve applies flags over the file values and fills defaults.
// CLI flags take priority when non-zero/non-empty.
func (c *Config) Resolve(flags Flags) {
	// CLI flags override config file
	if flags.Scene != "" {
		c.Scene = flags.Scene
	}
	if flags.Width > 0 {
		c.Width = flags.Width
	}
	if flags.Height > 0 {
		c.Height = flags.Height
	}
	if flags.Frames > 0 {
		c.Frames = flags.Frames
	}
	if flags.Step != 0 {
		c.Step = flags.Step
	}
	if flags.Seed != 0 {
		c.Seed = flags.Seed
	}
	if flags.OutputDir != "" {
		c.OutputDir = flags.OutputDir
	}
	if flags.Format != "" {
		c.Format = flags.Format
	}
	if flags.Scale > 0 {
		c.Scale = flags.Scale
	}
	if flags.Workers > 0 {
		c.Workers = flags.Workers
	}

	if c.Width <= 0 {
		c.Width = 100
	}
	if c.Height <= 0 {
		c.Height = 50
	}
	if c.Step == 0 {
		c.Step = 0.01
	}
	if c.Seed == 0 {
		c.Seed = 1
	}
	if c.FrameDelayMS <= 0 {
		c.FrameDelayMS = 33
	}
	if c.OutputDir == "" {
		c.OutputDir = "renders"
	}
	if c.Format == "" {
		c.Format = "webp"
	}
	if c.Scale <= 0 {
		c.Scale = 4
	}
	if c.Background == "" {
		c.Background = "#000000"
	}
	if c.Workers <= 0 {
		c.Workers = runtime.NumCPU()
	}
}

// Flags holds CLI flag values that override config file settings.
type Flags struct {
	Scene     string
	Width     int
	Height    int
	Frames    int
	Step      float64
	Seed      uint64
	OutputDir string
	Format    string
	Scale     int
	Workers   int
}
