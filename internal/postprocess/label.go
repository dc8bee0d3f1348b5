package postprocess

import (
	"image"

	"github.com/fogleman/gg"
	"golang.org/x/image/draw"
)

const labelPad = 3

// Label stamps text in the bottom-left corner on a dark translucent strip.
// The input is left untouched.
func Label(img *image.NRGBA, text string) *image.NRGBA {
	if text == "" {
		return img
	}
	dc := gg.NewContextForImage(img)
	w, h := dc.MeasureString(text)
	H := float64(dc.Height())

	dc.SetRGBA(0, 0, 0, 0.6)
	dc.DrawRectangle(0, H-h-2*labelPad, w+2*labelPad, h+2*labelPad)
	dc.Fill()

	dc.SetRGB(1, 1, 1)
	dc.DrawString(text, labelPad, H-labelPad)

	src := dc.Image()
	out := image.NewNRGBA(src.Bounds())
	draw.Draw(out, out.Bounds(), src, src.Bounds().Min, draw.Src)
	return out
}
