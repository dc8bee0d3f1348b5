package raster

import (
	"math"

	"sphere-raytracer/internal/mathutil"
	"sphere-raytracer/internal/scene"
)

// Viewport maps pixel coordinates to primary rays for one camera and image size.
type Viewport struct {
	origin      mathutil.Vec3
	eye         mathutil.Vec3
	right       mathutil.Vec3
	up          mathutil.Vec3
	halfWidth   float64
	halfHeight  float64
	pixelWidth  float64
	pixelHeight float64
}

// NewViewport precomputes the camera basis. width and height must exceed 1.
// When the view direction is parallel to Up the basis collapses to zero and
// every pixel looks straight along the eye vector. When the position equals
// the target the eye vector itself is zero and every ray direction is zero.
func NewViewport(cam scene.Camera, width, height int) Viewport {
	eye := cam.Direction.Sub(cam.Position).Normalize()
	right := eye.Cross(mathutil.Up).Normalize()
	up := right.Cross(eye).Normalize()

	fovRad := mathutil.Deg2Rad(cam.FOV / 2)
	halfWidth := math.Tan(fovRad)
	halfHeight := float64(height) / float64(width) * halfWidth

	return Viewport{
		origin:      cam.Position,
		eye:         eye,
		right:       right,
		up:          up,
		halfWidth:   halfWidth,
		halfHeight:  halfHeight,
		pixelWidth:  halfWidth * 2 / float64(width-1),
		pixelHeight: halfHeight * 2 / float64(height-1),
	}
}

// Ray returns the normalized primary ray through pixel (x, y).
// Row 0 lies at -halfHeight along the up vector.
func (v Viewport) Ray(x, y int) scene.Ray {
	xComp := v.right.Scale(float64(x)*v.pixelWidth - v.halfWidth)
	yComp := v.up.Scale(float64(y)*v.pixelHeight - v.halfHeight)
	return scene.Ray{
		Position:  v.origin,
		Direction: v.eye.Add3(xComp, yComp).Normalize(),
	}
}
