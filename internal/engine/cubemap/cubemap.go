// Package cubemap provides a six-face directional environment texture
// sampled by a 3D direction vector.
package cubemap

import (
	"bytes"
	"fmt"
	"image"
	_ "image/jpeg"
	_ "image/png"
	"os"

	"github.com/chewxy/math32"

	"github.com/Faultbox/oceangrid/pkg/math"
)

// Face indices follow the OpenGL cubemap order.
const (
	FacePositiveX = iota
	FaceNegativeX
	FacePositiveY
	FaceNegativeY
	FacePositiveZ
	FaceNegativeZ
	faceCount
)

// Map is an immutable six-face environment texture. Sampling is pure and
// safe to call concurrently for every shaded point.
type Map struct {
	faces [faceCount]*image.RGBA
	size  int
}

// New creates a cubemap from six equally sized square RGBA faces in
// OpenGL face order (+X, -X, +Y, -Y, +Z, -Z).
func New(faces [6]*image.RGBA) (*Map, error) {
	size := faces[0].Bounds().Dx()
	for i, f := range faces {
		b := f.Bounds()
		if b.Dx() != b.Dy() {
			return nil, fmt.Errorf("cubemap face %d is not square: %dx%d", i, b.Dx(), b.Dy())
		}
		if b.Dx() != size {
			return nil, fmt.Errorf("cubemap face %d size %d differs from face 0 size %d", i, b.Dx(), size)
		}
	}

	m := &Map{size: size}
	copy(m.faces[:], faces[:])
	return m, nil
}

// Load reads six face images from disk in OpenGL face order and builds a
// cubemap. PNG and JPEG are supported.
func Load(paths [6]string) (*Map, error) {
	var faces [6]*image.RGBA
	for i, path := range paths {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("reading cubemap face %q: %w", path, err)
		}
		img, _, err := image.Decode(bytes.NewReader(data))
		if err != nil {
			return nil, fmt.Errorf("decoding cubemap face %q: %w", path, err)
		}
		faces[i] = toRGBA(img)
	}
	return New(faces)
}

// Size returns the edge length of each face in pixels.
func (m *Map) Size() int {
	return m.size
}

// Face returns the pixels of one face for GPU upload.
func (m *Map) Face(i int) *image.RGBA {
	return m.faces[i]
}

// Sample returns the bilinearly filtered color along dir, in [0,1] per
// channel. dir does not need to be normalized.
func (m *Map) Sample(dir math.Vec3) (r, g, b float32) {
	face, u, v := selectFace(dir)
	return m.sampleFace(face, u, v)
}

// selectFace picks the cubemap face for a direction and returns the face
// index plus the [0,1] texture coordinates on that face.
func selectFace(dir math.Vec3) (face int, u, v float32) {
	ax := math32.Abs(dir.X)
	ay := math32.Abs(dir.Y)
	az := math32.Abs(dir.Z)

	var sc, tc, ma float32
	switch {
	case ax >= ay && ax >= az:
		ma = ax
		if dir.X >= 0 {
			face, sc, tc = FacePositiveX, -dir.Z, -dir.Y
		} else {
			face, sc, tc = FaceNegativeX, dir.Z, -dir.Y
		}
	case ay >= az:
		ma = ay
		if dir.Y >= 0 {
			face, sc, tc = FacePositiveY, dir.X, dir.Z
		} else {
			face, sc, tc = FaceNegativeY, dir.X, -dir.Z
		}
	default:
		ma = az
		if dir.Z >= 0 {
			face, sc, tc = FacePositiveZ, dir.X, -dir.Y
		} else {
			face, sc, tc = FaceNegativeZ, -dir.X, -dir.Y
		}
	}

	if ma == 0 {
		return face, 0.5, 0.5
	}
	u = (sc/ma + 1) / 2
	v = (tc/ma + 1) / 2
	return face, u, v
}

// sampleFace bilinearly filters the face at texture coordinates (u, v).
func (m *Map) sampleFace(face int, u, v float32) (r, g, b float32) {
	img := m.faces[face]
	fx := u*float32(m.size) - 0.5
	fy := v*float32(m.size) - 0.5

	x0 := int(math32.Floor(fx))
	y0 := int(math32.Floor(fy))
	tx := fx - float32(x0)
	ty := fy - float32(y0)

	r00, g00, b00 := texel(img, x0, y0, m.size)
	r10, g10, b10 := texel(img, x0+1, y0, m.size)
	r01, g01, b01 := texel(img, x0, y0+1, m.size)
	r11, g11, b11 := texel(img, x0+1, y0+1, m.size)

	r = lerp(lerp(r00, r10, tx), lerp(r01, r11, tx), ty)
	g = lerp(lerp(g00, g10, tx), lerp(g01, g11, tx), ty)
	b = lerp(lerp(b00, b10, tx), lerp(b01, b11, tx), ty)
	return r, g, b
}

func texel(img *image.RGBA, x, y, size int) (r, g, b float32) {
	x = clampIdx(x, size)
	y = clampIdx(y, size)
	i := img.PixOffset(img.Bounds().Min.X+x, img.Bounds().Min.Y+y)
	return float32(img.Pix[i]) / 255, float32(img.Pix[i+1]) / 255, float32(img.Pix[i+2]) / 255
}

func clampIdx(i, size int) int {
	if i < 0 {
		return 0
	}
	if i >= size {
		return size - 1
	}
	return i
}

func lerp(a, b, t float32) float32 {
	return a + (b-a)*t
}

// toRGBA converts any decoded image to RGBA pixels.
func toRGBA(img image.Image) *image.RGBA {
	if rgba, ok := img.(*image.RGBA); ok {
		return rgba
	}
	b := img.Bounds()
	rgba := image.NewRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	for y := 0; y < b.Dy(); y++ {
		for x := 0; x < b.Dx(); x++ {
			rgba.Set(x, y, img.At(b.Min.X+x, b.Min.Y+y))
		}
	}
	return rgba
}
