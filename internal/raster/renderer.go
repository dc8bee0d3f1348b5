package raster

import (
	"image"

	"sphere-raytracer/internal/scene"
	"sphere-raytracer/internal/trace"
)

// Render traces one primary ray per pixel of fb against sc.
// sc is only read; the whole buffer is written before Render returns.
func Render(sc *scene.Scene, fb *FrameBuffer) {
	vp := NewViewport(sc.Camera, fb.Width, fb.Height)
	for x := 0; x < fb.Width; x++ {
		for y := 0; y < fb.Height; y++ {
			fb.Set(x, y, trace.Trace(vp.Ray(x, y), sc, 0))
		}
	}
}

// RenderImage renders sc into a fresh w×h NRGBA image.
func RenderImage(sc *scene.Scene, w, h int) *image.NRGBA {
	fb := NewFrameBuffer(w, h)
	Render(sc, fb)
	return fb.Image()
}
