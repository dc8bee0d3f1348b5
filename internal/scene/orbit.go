package scene

import (
	"fmt"

	"sphere-raytracer/internal/mathutil"
)

// Orbit moves one sphere on a horizontal circle around Center.
// At tick n the sphere sits at angle n*Step radians, measured from +Z toward +X.
type Orbit struct {
	Sphere int           `json:"sphere"`
	Center mathutil.Vec3 `json:"center"`
	Radius float64       `json:"radius"`
	Step   float64       `json:"step"`
}

// PositionAt returns the orbiting sphere's position at the given tick.
func (o Orbit) PositionAt(tick int) mathutil.Vec3 {
	off := mathutil.RotY(float64(tick) * o.Step).MulVec3(mathutil.Vec3{0, 0, o.Radius})
	return o.Center.Add(off)
}

// Validate checks the orbit against the scene it will animate.
func (o Orbit) Validate(s *Scene) error {
	if o.Sphere < 0 || o.Sphere >= len(s.Spheres) {
		return fmt.Errorf("scene: orbit sphere %d out of range [0,%d)", o.Sphere, len(s.Spheres))
	}
	if o.Radius < 0 {
		return fmt.Errorf("scene: orbit radius %g is negative", o.Radius)
	}
	return nil
}

// Animate moves every orbiting sphere of s to its position at tick.
// Orbits referencing a missing sphere are skipped.
func Animate(s *Scene, orbits []Orbit, tick int) {
	for _, o := range orbits {
		if o.Sphere < 0 || o.Sphere >= len(s.Spheres) {
			continue
		}
		s.Spheres[o.Sphere].Position = o.PositionAt(tick)
	}
}
