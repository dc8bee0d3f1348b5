package trace

import (
	"sphere-raytracer/internal/mathutil"
	"sphere-raytracer/internal/scene"
)

// ShadowBias is the most negative shadow-ray distance still treated as lit.
// It absorbs the point's own sphere reporting a t just below zero.
const ShadowBias = -0.005

// Surface shades a hit point as reflection + diffuse + ambient.
// The reflection recurses through Trace at depth+1.
func Surface(ray scene.Ray, sc *scene.Scene, s *scene.Sphere, point, normal mathutil.Vec3, depth int) scene.Color {
	base := s.Color.Vec()
	c := mathutil.Zero

	lambertAmount := 0.0
	if s.Lambert != 0 {
		for _, light := range sc.Lights {
			if !IsLightVisible(point, sc, light) {
				continue
			}
			contribution := light.Sub(point).Normalize().Dot(normal)
			if contribution > 0 {
				lambertAmount += contribution
			}
		}
	}

	if s.Specular != 0 {
		reflected := scene.Ray{
			Position:  point,
			Direction: ray.Direction.Reflect(normal),
		}
		rc := Trace(reflected, sc, depth+1)
		c = c.Add(rc.Vec().Scale(s.Specular))
	}

	if lambertAmount > 1 {
		lambertAmount = 1
	}

	return scene.ColorFromVec(c.Add3(
		base.Scale(lambertAmount*s.Lambert),
		base.Scale(s.Ambient),
	))
}

// IsLightVisible casts a ray from point along point-light (away from the light)
// and reports the point lit unless the nearest hit lies behind ShadowBias.
// The test is not bounded by the light's distance: a sphere beyond the light
// on the same line still casts a shadow.
func IsLightVisible(point mathutil.Vec3, sc *scene.Scene, light mathutil.Vec3) bool {
	hit, ok := IntersectScene(scene.Ray{
		Position:  point,
		Direction: point.Sub(light).Normalize(),
	}, sc)
	if !ok {
		return true
	}
	return hit.Distance > ShadowBias
}
