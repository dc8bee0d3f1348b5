package mathutil

import "math"

// Vec3 is a 3-component vector (value type, stack-allocated).
// It doubles as an RGB accumulator during shading.
type Vec3 [3]float64

var (
	Up   = Vec3{0, 1, 0}
	Zero = Vec3{0, 0, 0}
)

func (a Vec3) Add(b Vec3) Vec3 {
	return Vec3{a[0] + b[0], a[1] + b[1], a[2] + b[2]}
}

// Add3 returns a + b + c.
func (a Vec3) Add3(b, c Vec3) Vec3 {
	return Vec3{a[0] + b[0] + c[0], a[1] + b[1] + c[1], a[2] + b[2] + c[2]}
}

func (a Vec3) Sub(b Vec3) Vec3 {
	return Vec3{a[0] - b[0], a[1] - b[1], a[2] - b[2]}
}

func (v Vec3) Scale(s float64) Vec3 {
	return Vec3{v[0] * s, v[1] * s, v[2] * s}
}

func (a Vec3) Dot(b Vec3) float64 {
	return a[0]*b[0] + a[1]*b[1] + a[2]*b[2]
}

func (a Vec3) Cross(b Vec3) Vec3 {
	return Vec3{
		a[1]*b[2] - a[2]*b[1],
		a[2]*b[0] - a[0]*b[2],
		a[0]*b[1] - a[1]*b[0],
	}
}

func (v Vec3) Len() float64 {
	return math.Sqrt(v.Dot(v))
}

// Normalize returns v scaled to unit length.
// A zero-length vector normalizes to Zero instead of NaN.
func (v Vec3) Normalize() Vec3 {
	l := v.Len()
	if l == 0 {
		return Zero
	}
	return v.Scale(1 / l)
}

// Reflect returns 2(v·n)n − v, the mirror of v about the axis n.
// n must be unit length.
func (v Vec3) Reflect(n Vec3) Vec3 {
	return n.Scale(v.Dot(n)).Scale(2).Sub(v)
}
