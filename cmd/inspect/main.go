package main

import (
	"flag"
	"fmt"
	"os"

	"sphere-raytracer/internal/config"
	"sphere-raytracer/internal/raster"
	"sphere-raytracer/internal/scene"
	"sphere-raytracer/internal/trace"
)

// inspect traces a single pixel and prints every step of the primary ray.
func main() {
	configFile := flag.String("config", "", "Path to config.json file")
	x := flag.Int("x", 0, "Pixel column")
	y := flag.Int("y", 0, "Pixel row")
	frame := flag.Int("frame", 1, "Animation tick to apply orbits at")
	flag.Parse()

	var cfg config.Config
	if *configFile != "" {
		var err error
		cfg, err = config.Load(*configFile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
			os.Exit(1)
		}
	}
	cfg.Resolve(config.Flags{})
	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	if *x < 0 || *x >= cfg.Width || *y < 0 || *y >= cfg.Height {
		fmt.Fprintf(os.Stderr, "Error: pixel (%d,%d) outside %dx%d\n", *x, *y, cfg.Width, cfg.Height)
		os.Exit(1)
	}

	sc := cfg.Scene.Clone()
	scene.Animate(sc, cfg.Orbits, *frame)

	ray := raster.NewViewport(sc.Camera, cfg.Width, cfg.Height).Ray(*x, *y)
	fmt.Printf("Pixel (%d,%d) of %dx%d, frame %d\n", *x, *y, cfg.Width, cfg.Height, *frame)
	fmt.Printf("  Ray: origin %.4f dir %.4f\n", ray.Position, ray.Direction)

	hit, ok := trace.IntersectScene(ray, sc)
	if !ok {
		fmt.Println("  Miss: background")
	} else {
		point := ray.Position.Add(ray.Direction.Scale(hit.Distance))
		normal := trace.Normal(hit.Sphere, point)
		fmt.Printf("  Hit: sphere %d at t=%.4f\n", hit.Index, hit.Distance)
		fmt.Printf("    Point:  %.4f\n", point)
		fmt.Printf("    Normal: %.4f\n", normal)
		for i, light := range sc.Lights {
			fmt.Printf("    Light %d: visible=%v\n", i, trace.IsLightVisible(point, sc, light))
		}
	}

	c := trace.Trace(ray, sc, 0)
	fmt.Printf("  Color: r=%.2f g=%.2f b=%.2f\n", c.R, c.G, c.B)
}
