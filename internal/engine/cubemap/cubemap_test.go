package cubemap

import (
	"image"
	"image/color"
	"testing"

	"github.com/Faultbox/oceangrid/pkg/math"
)

func solidFace(size int, c color.RGBA) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, size, size))
	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			img.SetRGBA(x, y, c)
		}
	}
	return img
}

func testMap(t *testing.T) *Map {
	t.Helper()
	faces := [6]*image.RGBA{
		solidFace(4, color.RGBA{255, 0, 0, 255}),   // +X red
		solidFace(4, color.RGBA{0, 255, 0, 255}),   // -X green
		solidFace(4, color.RGBA{0, 0, 255, 255}),   // +Y blue
		solidFace(4, color.RGBA{255, 255, 0, 255}), // -Y yellow
		solidFace(4, color.RGBA{255, 0, 255, 255}), // +Z magenta
		solidFace(4, color.RGBA{0, 255, 255, 255}), // -Z cyan
	}
	m, err := New(faces)
	if err != nil {
		t.Fatalf("New() error: %v", err)
	}
	return m
}

func TestSampleFaceSelection(t *testing.T) {
	m := testMap(t)

	cases := []struct {
		dir     math.Vec3
		r, g, b float32
	}{
		{math.Vec3{X: 1}, 1, 0, 0},
		{math.Vec3{X: -1}, 0, 1, 0},
		{math.Vec3{Y: 1}, 0, 0, 1},
		{math.Vec3{Y: -1}, 1, 1, 0},
		{math.Vec3{Z: 1}, 1, 0, 1},
		{math.Vec3{Z: -1}, 0, 1, 1},
	}

	for _, tc := range cases {
		r, g, b := m.Sample(tc.dir)
		if r != tc.r || g != tc.g || b != tc.b {
			t.Errorf("Sample(%v) = (%v, %v, %v), want (%v, %v, %v)",
				tc.dir, r, g, b, tc.r, tc.g, tc.b)
		}
	}
}

func TestSampleUnnormalizedDirection(t *testing.T) {
	m := testMap(t)
	r, g, b := m.Sample(math.Vec3{X: 10, Y: 0.1, Z: -0.1})
	if r != 1 || g != 0 || b != 0 {
		t.Errorf("Sample of dominant +X = (%v, %v, %v), want red", r, g, b)
	}
}

func TestNewRejectsMismatchedFaces(t *testing.T) {
	faces := [6]*image.RGBA{
		solidFace(4, color.RGBA{}),
		solidFace(4, color.RGBA{}),
		solidFace(8, color.RGBA{}), // wrong size
		solidFace(4, color.RGBA{}),
		solidFace(4, color.RGBA{}),
		solidFace(4, color.RGBA{}),
	}
	if _, err := New(faces); err == nil {
		t.Error("New() should reject mismatched face sizes")
	}
}

func TestNewRejectsNonSquareFace(t *testing.T) {
	faces := [6]*image.RGBA{}
	for i := range faces {
		faces[i] = solidFace(4, color.RGBA{})
	}
	faces[1] = image.NewRGBA(image.Rect(0, 0, 4, 8))
	if _, err := New(faces); err == nil {
		t.Error("New() should reject non-square faces")
	}
}

func TestSampleBilinearBlend(t *testing.T) {
	// A face split into black and white halves should blend mid-gray near
	// the boundary.
	img := image.NewRGBA(image.Rect(0, 0, 4, 4))
	for y := 0; y < 4; y++ {
		for x := 0; x < 4; x++ {
			c := color.RGBA{0, 0, 0, 255}
			if x >= 2 {
				c = color.RGBA{255, 255, 255, 255}
			}
			img.SetRGBA(x, y, c)
		}
	}
	var faces [6]*image.RGBA
	for i := range faces {
		faces[i] = img
	}
	m, err := New(faces)
	if err != nil {
		t.Fatalf("New() error: %v", err)
	}

	// Straight along +Z samples the face center, right at the half
	// boundary.
	r, _, _ := m.Sample(math.Vec3{Z: 1})
	if r < 0.25 || r > 0.75 {
		t.Errorf("boundary sample = %v, want blended mid value", r)
	}
}
