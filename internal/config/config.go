package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"sphere-tracer/internal/output"
	"sphere-tracer/internal/scene"
)

// ErrInvalidSize is returned by Validate for non-positive image dimensions.
var ErrInvalidSize = errors.New("config: width and height must be positive")

// Config holds the scene and all render settings.
type Config struct {
	// Render settings
	Width   int `json:"width"`
	Height  int `json:"height"`
	Workers int `json:"workers"`

	// Scene; nil slices and a zero camera fall back to the built-in scene.
	Camera  *scene.Camera  `json:"camera,omitempty"`
	Spheres []scene.Sphere `json:"spheres,omitempty"`
	Lights  []scene.Light  `json:"lights,omitempty"`

	// Output
	Output    string `json:"output"`
	Format    string `json:"format"`
	Thumbnail int    `json:"thumbnail"`
	Manifest  string `json:"manifest"`

	// Post-render actions
	Open    bool   `json:"open"`
	Publish bool   `json:"publish"`
	EnvFile string `json:"env_file"`
}

// Load reads a JSON config file and returns Config.
// Fields not set in the file keep their zero values.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("config: read %s: %w", path, err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("config: parse %s: %w", path, err)
	}

	return cfg, nil
}

// Flags holds CLI flag values that override config file settings.
type Flags struct {
	Width     int
	Height    int
	Output    string
	Workers   int
	Thumbnail int
	Open      bool
	Publish   bool
	EnvFile   string
}

// Resolve fills in any empty fields with defaults.
// CLI flags take priority when non-zero/non-empty.
func (c *Config) Resolve(flags Flags) {
	// CLI flags override config file
	if flags.Width > 0 {
		c.Width = flags.Width
	}
	if flags.Height > 0 {
		c.Height = flags.Height
	}
	if flags.Output != "" {
		c.Output = flags.Output
	}
	if flags.Workers > 0 {
		c.Workers = flags.Workers
	}
	if flags.Thumbnail > 0 {
		c.Thumbnail = flags.Thumbnail
	}
	if flags.EnvFile != "" {
		c.EnvFile = flags.EnvFile
	}
	c.Open = c.Open || flags.Open
	c.Publish = c.Publish || flags.Publish

	// Defaults
	if c.Width == 0 {
		c.Width = 2000
	}
	if c.Height == 0 {
		c.Height = 2000
	}
	if c.Workers <= 0 {
		c.Workers = runtime.NumCPU()
	}
	if c.Camera == nil {
		cam := scene.DefaultCamera()
		c.Camera = &cam
	}
	if c.Spheres == nil {
		c.Spheres = scene.DefaultSpheres()
	}
	if c.Lights == nil {
		c.Lights = scene.DefaultLights()
	}
	if c.Output == "" {
		c.Output = "testfile.bmp"
	}
	if c.Format == "" {
		if f, err := output.FormatFromPath(c.Output); err == nil {
			c.Format = string(f)
		} else {
			c.Format = string(output.BMP)
		}
	}
	if c.Manifest == "" {
		c.Manifest = filepath.Join(filepath.Dir(c.Output), "manifest.json")
	}
	if c.Publish && c.EnvFile == "" {
		c.EnvFile = ".env"
	}
}

// Validate reports the first construction-time problem in a resolved config.
func (c *Config) Validate() error {
	if c.Width <= 0 || c.Height <= 0 {
		return fmt.Errorf("%w: %dx%d", ErrInvalidSize, c.Width, c.Height)
	}
	if _, err := output.ParseFormat(c.Format); err != nil {
		return fmt.Errorf("config: %w", err)
	}
	if _, err := c.Scene(); err != nil {
		return fmt.Errorf("config: %w", err)
	}
	return nil
}

// OutputFormat returns the parsed output format.
func (c *Config) OutputFormat() output.Format {
	f, _ := output.ParseFormat(c.Format)
	return f
}

// Scene builds the scene described by the config.
func (c *Config) Scene() (*scene.Scene, error) {
	return scene.New(c.Spheres, c.Lights)
}

// SceneCamera returns the configured camera, or the default one.
func (c *Config) SceneCamera() scene.Camera {
	if c.Camera == nil {
		return scene.DefaultCamera()
	}
	return *c.Camera
}

// ThumbnailPath returns the thumbnail file name next to the output.
func (c *Config) ThumbnailPath() string {
	ext := filepath.Ext(c.Output)
	return strings.TrimSuffix(c.Output, ext) + "_thumb" + ext
}
