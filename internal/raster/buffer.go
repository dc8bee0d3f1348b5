package raster

import (
	"image"
	"math"

	"sphere-raytracer/internal/scene"
)

// FrameBuffer holds the rendering target as a flat RGBA8 slice.
type FrameBuffer struct {
	Width  int
	Height int
	Pix    []uint8 // RGBA interleaved, len = W*H*4
}

// NewFrameBuffer allocates a zeroed buffer.
func NewFrameBuffer(w, h int) *FrameBuffer {
	return &FrameBuffer{
		Width:  w,
		Height: h,
		Pix:    make([]uint8, w*h*4),
	}
}

// Offset returns the byte index of pixel (x, y).
func (fb *FrameBuffer) Offset(x, y int) int {
	return x*4 + y*fb.Width*4
}

// Set writes c at (x, y) with alpha 255, clamping each channel to [0, 255].
func (fb *FrameBuffer) Set(x, y int, c scene.Color) {
	i := fb.Offset(x, y)
	fb.Pix[i] = clamp255(c.R)
	fb.Pix[i+1] = clamp255(c.G)
	fb.Pix[i+2] = clamp255(c.B)
	fb.Pix[i+3] = 255
}

// Image wraps the buffer as an NRGBA image without copying.
func (fb *FrameBuffer) Image() *image.NRGBA {
	return &image.NRGBA{
		Pix:    fb.Pix,
		Stride: fb.Width * 4,
		Rect:   image.Rect(0, 0, fb.Width, fb.Height),
	}
}

// clamp255 rounds half up and saturates; NaN maps to 0.
func clamp255(v float64) uint8 {
	if math.IsNaN(v) || v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return uint8(v + 0.5)
}
