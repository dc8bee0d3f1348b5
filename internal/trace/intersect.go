package trace

import (
	"math"

	"sphere-raytracer/internal/scene"
)

// Hit is the nearest sphere struck by a ray. Distance is the ray parameter t,
// so the hit point is ray.Position + t*ray.Direction.
type Hit struct {
	Distance float64
	Sphere   *scene.Sphere
	Index    int
}

// SphereIntersection returns the nearer root of the ray-sphere quadratic.
// Roots behind the ray origin are not rejected: a negative t is a valid result.
func SphereIntersection(s *scene.Sphere, ray scene.Ray) (float64, bool) {
	eyeToCenter := s.Position.Sub(ray.Position)
	v := eyeToCenter.Dot(ray.Direction)
	eoDot := eyeToCenter.Dot(eyeToCenter)
	disc := s.Radius*s.Radius - eoDot + v*v
	if disc < 0 {
		return 0, false
	}
	return v - math.Sqrt(disc), true
}

// IntersectScene scans every sphere and keeps the smallest t.
// On equal distances the earlier sphere wins; NaN distances never win.
func IntersectScene(ray scene.Ray, sc *scene.Scene) (Hit, bool) {
	best := Hit{Distance: math.Inf(1), Index: -1}
	for i := range sc.Spheres {
		s := &sc.Spheres[i]
		t, ok := SphereIntersection(s, ray)
		if ok && t < best.Distance {
			best = Hit{Distance: t, Sphere: s, Index: i}
		}
	}
	if best.Sphere == nil {
		return Hit{}, false
	}
	return best, true
}
