package output

import (
	"fmt"
	"image"
	"image/color/palette"
	"image/draw"
	"image/gif"
	"io"
	"os"
	"path/filepath"
)

// paletted quantizes img to the Plan 9 palette with Floyd-Steinberg dithering.
func paletted(img image.Image) *image.Paletted {
	p := image.NewPaletted(img.Bounds(), palette.Plan9)
	draw.FloydSteinberg.Draw(p, p.Bounds(), img, img.Bounds().Min)
	return p
}

func encodeGIF(w io.Writer, img image.Image) error {
	return gif.Encode(w, paletted(img), nil)
}

// WriteAnimation writes frames as a looping GIF.
// delay is in 100ths of a second per frame.
func WriteAnimation(path string, frames []image.Image, delay int) error {
	if len(frames) == 0 {
		return fmt.Errorf("output: no frames for %s", path)
	}
	out := &gif.GIF{
		Image:     make([]*image.Paletted, 0, len(frames)),
		Delay:     make([]int, 0, len(frames)),
		LoopCount: 0,
	}
	for _, f := range frames {
		out.Image = append(out.Image, paletted(f))
		out.Delay = append(out.Delay, delay)
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("output: mkdir %s: %w", filepath.Dir(path), err)
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("output: create %s: %w", path, err)
	}
	if err := gif.EncodeAll(f, out); err != nil {
		f.Close()
		return fmt.Errorf("output: gif encode %s: %w", path, err)
	}
	return f.Close()
}
