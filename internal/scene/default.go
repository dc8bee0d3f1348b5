package scene

import "sphere-raytracer/internal/mathutil"

// Default returns the demo scene: a large planet with two small moons
// lit by a single light below and to the left.
func Default() *Scene {
	return &Scene{
		Camera: Camera{
			Position:  mathutil.Vec3{0, 1.8, 10},
			Direction: mathutil.Vec3{0, 3, 0},
			FOV:       45,
		},
		Lights: []mathutil.Vec3{{-30, -10, 20}},
		Spheres: []Sphere{
			{
				Position: mathutil.Vec3{0, 3.5, -3},
				Radius:   3,
				Color:    Color{155, 200, 155},
				Specular: 0.2,
				Lambert:  0.7,
				Ambient:  0.1,
			},
			{
				Position: mathutil.Vec3{-4, 2, -1},
				Radius:   0.2,
				Color:    Color{155, 155, 155},
				Specular: 0.2,
				Lambert:  0.9,
				Ambient:  0.0,
			},
			{
				Position: mathutil.Vec3{-4, 3, -1},
				Radius:   0.1,
				Color:    Color{255, 255, 255},
				Specular: 0.2,
				Lambert:  0.7,
				Ambient:  0.1,
			},
		},
	}
}

// DefaultOrbits moves the two moons of Default around the planet,
// the inner one at half the angular speed of the outer one.
func DefaultOrbits() []Orbit {
	return []Orbit{
		{Sphere: 1, Center: mathutil.Vec3{0, 2, -3}, Radius: 3.5, Step: 0.1},
		{Sphere: 2, Center: mathutil.Vec3{0, 3, -3}, Radius: 4, Step: 0.2},
	}
}
