package batch

import (
	"fmt"
	"image"
	"path/filepath"
	"sync"
	"sync/atomic"
	"time"

	"sphere-raytracer/internal/mathutil"
	"sphere-raytracer/internal/output"
	"sphere-raytracer/internal/postprocess"
	"sphere-raytracer/internal/raster"
	"sphere-raytracer/internal/scene"
)

// AnimationName is the file all frames go into when the format is GIF.
const AnimationName = "animation.gif"

// Config holds the settings shared by every frame of a run.
type Config struct {
	OutputDir  string
	Width      int
	Height     int
	Frames     int
	Format     output.Format
	Upscale    int
	Label      bool
	FrameDelay int
	Workers    int
}

// Result holds the outcome of rendering one frame.
type Result struct {
	Frame   int
	Path    string
	Spheres []mathutil.Vec3 // sphere positions the frame was rendered with
	Success bool
	Error   string

	img image.Image // kept only until the GIF is assembled
}

// FramePath returns the file a single frame is written to.
func FramePath(dir string, frame int, f output.Format) string {
	return filepath.Join(dir, fmt.Sprintf("frame_%04d%s", frame, f.Ext()))
}

// Run renders frames 1..cfg.Frames using a worker pool. Each frame gets its
// own copy of base with orbits applied at its tick, so base is never modified.
func Run(cfg Config, base *scene.Scene, orbits []scene.Orbit) []Result {
	total := cfg.Frames
	results := make([]Result, total)
	var processed atomic.Int64

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
				p := processed.Load()
				if p > 0 {
					elapsed := time.Since(start).Seconds()
					rate := float64(p) / elapsed
					fmt.Printf("  [%d/%d] %.1f frames/sec\n", p, total, rate)
				}
			}
		}
	}()

	workers := cfg.Workers
	if workers < 1 {
		workers = 1
	}

	// Worker pool
	frameChan := make(chan int, workers*2)
	var wg sync.WaitGroup

	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for idx := range frameChan {
				results[idx] = processFrame(cfg, base, orbits, idx+1)
				processed.Add(1)
			}
		}()
	}

	// Send work
	for i := 0; i < total; i++ {
		frameChan <- i
	}
	close(frameChan)

	wg.Wait()
	close(done)

	if cfg.Format == output.GIF {
		assembleAnimation(cfg, results)
	}

	return results
}

func processFrame(cfg Config, base *scene.Scene, orbits []scene.Orbit, frame int) Result {
	sc := base.Clone()
	scene.Animate(sc, orbits, frame)

	res := Result{Frame: frame, Spheres: make([]mathutil.Vec3, len(sc.Spheres))}
	for i, s := range sc.Spheres {
		res.Spheres[i] = s.Position
	}

	img := raster.RenderImage(sc, cfg.Width, cfg.Height)
	img = postprocess.Upscale(img, cfg.Upscale)
	if cfg.Label {
		img = postprocess.Label(img, fmt.Sprintf("frame %d", frame))
	}

	if cfg.Format == output.GIF {
		res.Path = filepath.Join(cfg.OutputDir, AnimationName)
		res.img = img
		return res
	}

	res.Path = FramePath(cfg.OutputDir, frame, cfg.Format)
	if err := output.WriteFile(res.Path, img, cfg.Format); err != nil {
		res.Error = err.Error()
		return res
	}
	res.Success = true
	return res
}

func assembleAnimation(cfg Config, results []Result) {
	frames := make([]image.Image, len(results))
	for i := range results {
		frames[i] = results[i].img
		results[i].img = nil
	}

	err := output.WriteAnimation(filepath.Join(cfg.OutputDir, AnimationName), frames, cfg.FrameDelay)
	for i := range results {
		if err != nil {
			results[i].Error = err.Error()
			continue
		}
		results[i].Success = true
	}
}
