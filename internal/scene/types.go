package scene

import "sphere-raytracer/internal/mathutil"

// Color is an RGB triple nominally in [0, 255] per channel.
// Values outside that range are legal; clamping happens when pixels are written.
type Color struct {
	R float64 `json:"r"`
	G float64 `json:"g"`
	B float64 `json:"b"`
}

var (
	Black = Color{0, 0, 0}
	White = Color{255, 255, 255}
)

// Vec reinterprets the color as a vector for shading arithmetic.
func (c Color) Vec() mathutil.Vec3 {
	return mathutil.Vec3{c.R, c.G, c.B}
}

func ColorFromVec(v mathutil.Vec3) Color {
	return Color{v[0], v[1], v[2]}
}

type Ray struct {
	Position  mathutil.Vec3
	Direction mathutil.Vec3
}

// Camera is a pinhole camera. Direction is the point it looks at,
// not a ray direction. FOV is in degrees.
type Camera struct {
	Position  mathutil.Vec3 `json:"position"`
	Direction mathutil.Vec3 `json:"direction"`
	FOV       float64       `json:"fov"`
}

// Sphere is the only primitive. Specular, Lambert and Ambient are weights
// in [0,1] and need not sum to 1.
type Sphere struct {
	Position mathutil.Vec3 `json:"position"`
	Radius   float64       `json:"radius"`
	Color    Color         `json:"color"`
	Specular float64       `json:"specular"`
	Lambert  float64       `json:"lambert"`
	Ambient  float64       `json:"ambient"`
}

// Scene is a per-frame snapshot. Lights are white point lights.
type Scene struct {
	Camera  Camera          `json:"camera"`
	Lights  []mathutil.Vec3 `json:"lights"`
	Spheres []Sphere        `json:"spheres"`
}

// Clone returns a deep copy so a frame can be animated without touching the original.
func (s *Scene) Clone() *Scene {
	c := &Scene{Camera: s.Camera}
	if s.Lights != nil {
		c.Lights = append([]mathutil.Vec3(nil), s.Lights...)
	}
	if s.Spheres != nil {
		c.Spheres = append([]Sphere(nil), s.Spheres...)
	}
	return c
}
