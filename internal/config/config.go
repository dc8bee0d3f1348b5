package config

import (
	"encoding/json"
	"fmt"
	"math"
	"os"
	"runtime"

	"sphere-raytracer/internal/output"
	"sphere-raytracer/internal/scene"
)

// Config holds the scene and all render settings.
type Config struct {
	// Scene
	Scene  *scene.Scene  `json:"scene"`
	Orbits []scene.Orbit `json:"orbits"`

	// Render settings
	Width      int    `json:"width"`
	Height     int    `json:"height"`
	Frames     int    `json:"frames"`
	Format     string `json:"format"`
	OutputDir  string `json:"output_dir"`
	Upscale    int    `json:"upscale"`
	Label      bool   `json:"label"`
	FrameDelay int    `json:"frame_delay"`
	Workers    int    `json:"workers"`
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
	Frames    int
	Format    string
	OutputDir string
	Upscale   int
	Label     bool
	Workers   int
}

// Resolve applies flag overrides and fills empty fields with defaults.
// CLI flags take priority when non-zero/non-empty.
func (c *Config) Resolve(flags Flags) {
	// CLI flags override config file
	if flags.Width > 0 {
		c.Width = flags.Width
	}
	if flags.Height > 0 {
		c.Height = flags.Height
	}
	if flags.Frames > 0 {
		c.Frames = flags.Frames
	}
	if flags.Format != "" {
		c.Format = flags.Format
	}
	if flags.OutputDir != "" {
		c.OutputDir = flags.OutputDir
	}
	if flags.Upscale > 0 {
		c.Upscale = flags.Upscale
	}
	if flags.Label {
		c.Label = true
	}
	if flags.Workers > 0 {
		c.Workers = flags.Workers
	}

	// No scene in the file: use the demo scene with its moons in motion.
	if c.Scene == nil {
		c.Scene = scene.Default()
		if c.Orbits == nil {
			c.Orbits = scene.DefaultOrbits()
		}
	}

	// Defaults for render settings
	if c.Width <= 0 {
		c.Width = 320
	}
	if c.Height <= 0 {
		c.Height = 240
	}
	if c.Frames <= 0 {
		c.Frames = 1
	}
	if c.Format == "" {
		c.Format = string(output.WebP)
	}
	if c.OutputDir == "" {
		c.OutputDir = "renders"
	}
	if c.Upscale <= 0 {
		c.Upscale = 1
	}
	if c.FrameDelay <= 0 {
		c.FrameDelay = 4
	}
	if c.Workers <= 0 {
		c.Workers = runtime.NumCPU()
	}
}

// Validate reports settings the renderer cannot work with.
// Call it after Resolve.
func (c *Config) Validate() error {
	if c.Width < 2 || c.Height < 2 {
		return fmt.Errorf("config: image size %dx%d, both sides must be at least 2", c.Width, c.Height)
	}
	if _, err := output.ParseFormat(c.Format); err != nil {
		return fmt.Errorf("config: %w", err)
	}
	if c.Scene == nil {
		return fmt.Errorf("config: no scene")
	}
	cam := c.Scene.Camera
	if !(cam.FOV > 0 && cam.FOV < 180) {
		return fmt.Errorf("config: camera fov %g must be in (0, 180)", cam.FOV)
	}
	if cam.Position == cam.Direction {
		return fmt.Errorf("config: camera position and target are both %v", cam.Position)
	}
	for i, s := range c.Scene.Spheres {
		if !(s.Radius > 0) || math.IsInf(s.Radius, 0) {
			return fmt.Errorf("config: sphere %d radius %g must be positive and finite", i, s.Radius)
		}
	}
	for i, o := range c.Orbits {
		if err := o.Validate(c.Scene); err != nil {
			return fmt.Errorf("config: orbit %d: %w", i, err)
		}
	}
	return nil
}
