package export

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// Manifest describes one batch export.
type Manifest struct {
	Scene  string   `json:"scene"`
	Width  int      `json:"width"`
	Height int      `json:"height"`
	Scale  int      `json:"scale"`
	Format Format   `json:"format"`
	Frames []Result `json:"frames"`
}

// WriteManifest writes the manifest for results to path. Frame paths are
// stored relative to the manifest's directory.
func WriteManifest(path string, cfg Config, results []Result) error {
	m := Manifest{
		Scene:  cfg.Scene,
		Width:  cfg.Width,
		Height: cfg.Height,
		Scale:  cfg.Scale,
		Format: cfg.Format,
		Frames: make([]Result, len(results)),
	}
	dir := filepath.Dir(path)
	for i, r := range results {
		if r.Path != "" {
			if rel, err := filepath.Rel(dir, r.Path); err == nil {
				r.Path = filepath.ToSlash(rel)
			}
		}
		m.Frames[i] = r
	}

	data, err := json.MarshalIndent(m, "", "  ")
	if err != nil {
		return fmt.Errorf("export: manifest: %w", err)
	}
	return os.WriteFile(path, data, 0644)
}
