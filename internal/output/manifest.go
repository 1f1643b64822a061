package output

import (
	"encoding/json"
	"fmt"
	"os"
)

// Manifest summarizes one render run.
type Manifest struct {
	Width     int      `json:"width"`
	Height    int      `json:"height"`
	Spheres   int      `json:"spheres"`
	Lights    int      `json:"lights"`
	Workers   int      `json:"workers"`
	Image     string   `json:"image"`
	Format    Format   `json:"format"`
	Thumbnail string   `json:"thumbnail,omitempty"`
	Published []string `json:"published,omitempty"`
	ElapsedMS int64    `json:"elapsed_ms"`
}

// WriteManifest writes m as indented JSON.
func WriteManifest(path string, m Manifest) error {
	data, err := json.MarshalIndent(m, "", "  ")
	if err != nil {
		return fmt.Errorf("output: manifest: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("output: write %s: %w", path, err)
	}
	return nil
}
