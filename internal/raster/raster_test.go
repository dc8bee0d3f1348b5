package raster

import (
	"image/color"
	"math"
	"testing"

	"sphere-raytracer/internal/mathutil"
	"sphere-raytracer/internal/scene"
	"sphere-raytracer/internal/trace"
)

func vecNear(a, b mathutil.Vec3, tol float64) bool {
	for i := range a {
		if math.Abs(a[i]-b[i]) > tol {
			return false
		}
	}
	return true
}

func straightCamera() scene.Camera {
	return scene.Camera{Position: mathutil.Zero, Direction: mathutil.Vec3{0, 0, -1}, FOV: 90}
}

func TestViewportCenterAndCorners(t *testing.T) {
	vp := NewViewport(straightCamera(), 3, 3)

	center := vp.Ray(1, 1)
	if !vecNear(center.Direction, mathutil.Vec3{0, 0, -1}, 1e-12) {
		t.Fatalf("center ray = %v", center.Direction)
	}

	s := 1 / math.Sqrt(3)
	corners := map[[2]int]mathutil.Vec3{
		{0, 0}: {-s, -s, -s},
		{2, 0}: {s, -s, -s},
		{0, 2}: {-s, s, -s},
		{2, 2}: {s, s, -s},
	}
	for px, want := range corners {
		got := vp.Ray(px[0], px[1]).Direction
		if !vecNear(got, want, 1e-9) {
			t.Errorf("pixel %v: dir %v, want %v", px, got, want)
		}
	}
}

func TestViewportRaysAreUnitFromCamera(t *testing.T) {
	cam := scene.Default().Camera
	vp := NewViewport(cam, 32, 24)
	for x := 0; x < 32; x++ {
		for y := 0; y < 24; y++ {
			r := vp.Ray(x, y)
			if r.Position != cam.Position {
				t.Fatalf("pixel (%d,%d) origin %v, want %v", x, y, r.Position, cam.Position)
			}
			if l := r.Direction.Len(); math.Abs(l-1) > 1e-12 {
				t.Fatalf("pixel (%d,%d) direction length %v", x, y, l)
			}
		}
	}
}

func TestViewportAspectRatio(t *testing.T) {
	// 5×3 at 90°: half extents 1 × 0.6.
	vp := NewViewport(straightCamera(), 5, 3)
	got := vp.Ray(4, 2).Direction
	want := mathutil.Vec3{1, 0.6, -1}.Normalize()
	if !vecNear(got, want, 1e-9) {
		t.Fatalf("corner dir %v, want %v", got, want)
	}
}

func TestViewportLookingStraightUp(t *testing.T) {
	cam := scene.Camera{Position: mathutil.Zero, Direction: mathutil.Vec3{0, 5, 0}, FOV: 60}
	vp := NewViewport(cam, 4, 4)
	for x := 0; x < 4; x++ {
		for y := 0; y < 4; y++ {
			if d := vp.Ray(x, y).Direction; d != mathutil.Up {
				t.Fatalf("pixel (%d,%d) dir %v, want Up", x, y, d)
			}
		}
	}
}

func TestClamp255(t *testing.T) {
	tests := []struct {
		in   float64
		want uint8
	}{
		{-5, 0},
		{0, 0},
		{127.4, 127},
		{127.5, 128},
		{254.6, 255},
		{255, 255},
		{400, 255},
		{math.Inf(1), 255},
		{math.Inf(-1), 0},
		{math.NaN(), 0},
	}
	for _, tt := range tests {
		if got := clamp255(tt.in); got != tt.want {
			t.Errorf("clamp255(%v) = %d, want %d", tt.in, got, tt.want)
		}
	}
}

func TestFrameBufferLayout(t *testing.T) {
	fb := NewFrameBuffer(3, 2)
	if len(fb.Pix) != 3*2*4 {
		t.Fatalf("len(Pix) = %d", len(fb.Pix))
	}
	if got := fb.Offset(2, 1); got != 2*4+1*3*4 {
		t.Fatalf("Offset(2,1) = %d", got)
	}
	fb.Set(2, 1, scene.Color{R: 10, G: 300, B: -1})
	img := fb.Image()
	if got := img.NRGBAAt(2, 1); got != (color.NRGBA{10, 255, 0, 255}) {
		t.Fatalf("pixel = %+v", got)
	}
	if got := img.NRGBAAt(0, 0); got != (color.NRGBA{}) {
		t.Fatalf("untouched pixel = %+v", got)
	}
}

func TestRenderEmptySceneIsWhite(t *testing.T) {
	sc := &scene.Scene{Camera: straightCamera()}
	fb := NewFrameBuffer(4, 3)
	Render(sc, fb)
	for i, b := range fb.Pix {
		if b != 255 {
			t.Fatalf("byte %d = %d, want 255", i, b)
		}
	}
}

func TestRenderMatchesTracePerPixel(t *testing.T) {
	sc := scene.Default()
	const w, h = 16, 12
	img := RenderImage(sc, w, h)
	vp := NewViewport(sc.Camera, w, h)
	for x := 0; x < w; x++ {
		for y := 0; y < h; y++ {
			c := trace.Trace(vp.Ray(x, y), sc, 0)
			want := color.NRGBA{clamp255(c.R), clamp255(c.G), clamp255(c.B), 255}
			if got := img.NRGBAAt(x, y); got != want {
				t.Fatalf("pixel (%d,%d) = %+v, want %+v", x, y, got, want)
			}
		}
	}
}

func TestRenderDoesNotMutateScene(t *testing.T) {
	sc := scene.Default()
	RenderImage(sc, 8, 6)
	want := scene.Default()
	for i := range sc.Spheres {
		if sc.Spheres[i] != want.Spheres[i] {
			t.Fatalf("sphere %d changed: %+v", i, sc.Spheres[i])
		}
	}
	if sc.Camera != want.Camera || sc.Lights[0] != want.Lights[0] {
		t.Fatal("camera or lights changed")
	}
}

func TestRenderDiffuseFollowsCosine(t *testing.T) {
	// One sphere fills the 2×2 frame; the light sits to the right.
	sc := &scene.Scene{
		Camera: straightCamera(),
		Lights: []mathutil.Vec3{{10, 0, 0}},
		Spheres: []scene.Sphere{{
			Position: mathutil.Vec3{0, 0, -5},
			Radius:   4.5,
			Color:    scene.Color{R: 200, G: 200, B: 200},
			Lambert:  0.9,
			Ambient:  0.1,
		}},
	}
	img := RenderImage(sc, 2, 2)
	for y := 0; y < 2; y++ {
		left := img.NRGBAAt(0, y)
		right := img.NRGBAAt(1, y)
		if left.R != 20 || left.G != 20 || left.B != 20 {
			t.Errorf("row %d: left pixel %+v, want ambient only (20)", y, left)
		}
		if right.R <= left.R {
			t.Errorf("row %d: right %d not brighter than left %d", y, right.R, left.R)
		}
		if right.R == 255 {
			t.Errorf("row %d: right pixel is background", y)
		}
	}
}

func TestRenderDegenerateCameraIsUniform(t *testing.T) {
	sc := &scene.Scene{
		Camera: scene.Camera{Position: mathutil.Zero, Direction: mathutil.Vec3{0, 5, 0}, FOV: 45},
		Spheres: []scene.Sphere{{
			Position: mathutil.Vec3{0, 10, 0},
			Radius:   1,
			Color:    scene.Color{R: 1, G: 2, B: 3},
			Ambient:  1,
		}},
	}
	img := RenderImage(sc, 3, 3)
	want := color.NRGBA{1, 2, 3, 255}
	for x := 0; x < 3; x++ {
		for y := 0; y < 3; y++ {
			if got := img.NRGBAAt(x, y); got != want {
				t.Fatalf("pixel (%d,%d) = %+v, want %+v", x, y, got, want)
			}
		}
	}
}
