package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"sphere-raytracer/internal/batch"
	"sphere-raytracer/internal/config"
	"sphere-raytracer/internal/output"
)

func main() {
	// CLI flags
	configFile := flag.String("config", "", "Path to config.json file")
	frames := flag.Int("frames", 0, "Number of animation frames (default: 1)")
	width := flag.Int("width", 0, "Image width in pixels (default: 320)")
	height := flag.Int("height", 0, "Image height in pixels (default: 240)")
	format := flag.String("format", "", "Output format: webp, png, tga, bmp, gif (default: webp)")
	outputDir := flag.String("output", "", "Output directory (default: renders)")
	upscale := flag.Int("upscale", 0, "Integer display scale applied after tracing (default: 1)")
	label := flag.Bool("label", false, "Stamp the frame number on each image")
	workers := flag.Int("workers", 0, "Number of frames rendered in parallel (default: NumCPU)")

	flag.Parse()

	// Load config
	var cfg config.Config
	if *configFile != "" {
		var err error
		cfg, err = config.Load(*configFile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
			os.Exit(1)
		}
	}

	// CLI flags override config file
	cfg.Resolve(config.Flags{
		Width:     *width,
		Height:    *height,
		Frames:    *frames,
		Format:    *format,
		OutputDir: *outputDir,
		Upscale:   *upscale,
		Label:     *label,
		Workers:   *workers,
	})

	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	outFormat, err := output.ParseFormat(cfg.Format)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	p := message.NewPrinter(language.English)

	p.Printf("Sphere ray tracer → %s\n", outFormat)
	p.Printf("Scene: %d spheres, %d lights, %d orbits\n", len(cfg.Scene.Spheres), len(cfg.Scene.Lights), len(cfg.Orbits))
	p.Printf("Frames: %d at %dx%d, Workers: %d\n", cfg.Frames, cfg.Width, cfg.Height, cfg.Workers)
	fmt.Printf("Output: %s\n", cfg.OutputDir)
	fmt.Println("------------------------------------------------------------")

	start := time.Now()

	results := batch.Run(batch.Config{
		OutputDir:  cfg.OutputDir,
		Width:      cfg.Width,
		Height:     cfg.Height,
		Frames:     cfg.Frames,
		Format:     outFormat,
		Upscale:    cfg.Upscale,
		Label:      cfg.Label,
		FrameDelay: cfg.FrameDelay,
		Workers:    cfg.Workers,
	}, cfg.Scene, cfg.Orbits)

	elapsed := time.Since(start)
	fmt.Println("------------------------------------------------------------")
	fmt.Printf("Done in %.1fs\n", elapsed.Seconds())

	// Count results
	success, failed := 0, 0
	var errors []batch.Result
	for _, r := range results {
		if r.Success {
			success++
		} else {
			failed++
			errors = append(errors, r)
		}
	}

	p.Printf("Rendered: %d/%d frames, %d primary rays\n", success, len(results), success*cfg.Width*cfg.Height)

	if len(errors) > 0 {
		fmt.Printf("\nFailed (%d):\n", failed)
		limit := 20
		if len(errors) < limit {
			limit = len(errors)
		}
		for _, e := range errors[:limit] {
			fmt.Printf("  frame %d: %s\n", e.Frame, e.Error)
		}
	}

	// Write manifest
	manifestPath := filepath.Join(cfg.OutputDir, "manifest.json")
	if err := batch.WriteManifest(manifestPath, results); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: manifest write failed: %v\n", err)
	} else {
		fmt.Printf("Manifest: %s\n", manifestPath)
	}

	if failed > 0 {
		os.Exit(1)
	}
}
