// Package trace implements recursive Whitted-style ray tracing over spheres.
package trace

import (
	"sphere-raytracer/internal/mathutil"
	"sphere-raytracer/internal/scene"
)

// MaxDepth is the deepest recursion level that still traces; a primary ray
// spawns at most MaxDepth reflected rays.
const MaxDepth = 3

// Trace returns the color seen along ray. Misses show the white background;
// calls past MaxDepth return black.
func Trace(ray scene.Ray, sc *scene.Scene, depth int) scene.Color {
	if depth > MaxDepth {
		return scene.Black
	}
	hit, ok := IntersectScene(ray, sc)
	if !ok {
		return scene.White
	}
	point := ray.Position.Add(ray.Direction.Scale(hit.Distance))
	return Surface(ray, sc, hit.Sphere, point, Normal(hit.Sphere, point), depth)
}

// Normal returns the outward unit normal of s at point.
func Normal(s *scene.Sphere, point mathutil.Vec3) mathutil.Vec3 {
	return point.Sub(s.Position).Normalize()
}
