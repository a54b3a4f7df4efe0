package shading

import (
	"image"
	"image/color"
	gomath "math"
	"testing"

	"github.com/Faultbox/oceangrid/internal/engine/cubemap"
	"github.com/Faultbox/oceangrid/pkg/math"
)

func absf(x float32) float64 {
	return gomath.Abs(float64(x))
}

func TestFresnelOverhead(t *testing.T) {
	// At n·v = 1 the angular term vanishes: F = clamp(F0 + bias).
	got := Fresnel(1, 0.02, 5, 0)
	if absf(got-0.02) > 0.0001 {
		t.Errorf("Fresnel(nv=1) = %v, want 0.02", got)
	}

	got = Fresnel(1, 0.02, 5, 0.1)
	if absf(got-0.12) > 0.0001 {
		t.Errorf("Fresnel(nv=1, bias=0.1) = %v, want 0.12", got)
	}
}

func TestFresnelGrazing(t *testing.T) {
	// At n·v = 0 the term saturates: F = clamp(1 + bias).
	got := Fresnel(0, 0.02, 5, 0)
	if absf(got-1) > 0.0001 {
		t.Errorf("Fresnel(nv=0) = %v, want 1", got)
	}

	got = Fresnel(0, 0.02, 5, 0.5)
	if got != 1 {
		t.Errorf("Fresnel(nv=0, bias=0.5) = %v, want clamped 1", got)
	}
}

func TestFresnelMonotonic(t *testing.T) {
	prev := float32(2)
	for nv := float32(0); nv <= 1.001; nv += 0.05 {
		f := Fresnel(nv, 0.02, 5, 0)
		if f > prev+0.0001 {
			t.Fatalf("Fresnel not decreasing at nv=%v: %v > %v", nv, f, prev)
		}
		prev = f
	}
}

func TestShadeOverheadFavorsWaterColor(t *testing.T) {
	p := DefaultParams()
	normal := math.Vec3{Y: 1}
	camera := math.Vec3{Y: 100}
	light := math.Vec3{Y: 1}
	refl := SkySource{Color: p.SkyColor}

	c := Shade(normal, math.Vec3{}, camera, light, p, refl)

	// Looking straight down: Fresnel is tiny, so the color should be close
	// to the fully lit deep water color.
	want := p.DeepColor // nv=1, nl=1: ambient + (1-ambient) = 1
	if absf(c.R-want.R) > 0.05 || absf(c.G-want.G) > 0.05 || absf(c.B-want.B) > 0.05 {
		t.Errorf("overhead Shade() = %+v, want near %+v", c, want)
	}
}

func TestShadeGrazingFavorsReflection(t *testing.T) {
	p := DefaultParams()
	normal := math.Vec3{Y: 1}
	// Nearly horizontal view direction.
	camera := math.Vec3{X: 1000, Y: 0.5}
	light := math.Vec3{Y: 1}
	refl := SkySource{Color: p.SkyColor}

	c := Shade(normal, math.Vec3{}, camera, light, p, refl)

	if absf(c.R-p.SkyColor.R) > 0.1 ||
		absf(c.G-p.SkyColor.G) > 0.1 ||
		absf(c.B-p.SkyColor.B) > 0.1 {
		t.Errorf("grazing Shade() = %+v, want near sky %+v", c, p.SkyColor)
	}
}

func TestShadeAlwaysClamped(t *testing.T) {
	p := DefaultParams()
	// Extreme inputs that would overshoot without clamping.
	p.DeepColor = RGBA{R: 5, G: -3, B: 10, A: 1}
	p.ShallowColor = RGBA{R: -2, G: 7, B: 4, A: 1}
	p.SkyColor = RGBA{R: 9, G: 9, B: 9, A: 1}
	p.FresnelBias = 0.4

	normals := []math.Vec3{{Y: 1}, {X: 0.3, Y: 0.9, Z: 0.1}}
	cameras := []math.Vec3{{Y: 50}, {X: 500, Y: 1}}

	for _, n := range normals {
		for _, cam := range cameras {
			c := Shade(n.Normalize(), math.Vec3{}, cam, math.Vec3{Y: 1}, p, SkySource{Color: p.SkyColor})
			for name, ch := range map[string]float32{"R": c.R, "G": c.G, "B": c.B, "A": c.A} {
				if ch < 0 || ch > 1 {
					t.Errorf("channel %s out of range: %v", name, ch)
				}
			}
		}
	}
}

func TestShadeOpaqueAlpha(t *testing.T) {
	p := DefaultParams()
	p.DeepColor.A = 0.2
	p.ShallowColor.A = 0.1
	c := Shade(math.Vec3{Y: 1}, math.Vec3{}, math.Vec3{Y: 10}, math.Vec3{Y: 1}, p, SkySource{Color: p.SkyColor})
	if c.A != 1 {
		t.Errorf("Shade() alpha = %v, want 1", c.A)
	}
}

func solidCubemap(t *testing.T, c color.RGBA) *cubemap.Map {
	t.Helper()
	var faces [6]*image.RGBA
	for i := range faces {
		img := image.NewRGBA(image.Rect(0, 0, 2, 2))
		for y := 0; y < 2; y++ {
			for x := 0; x < 2; x++ {
				img.SetRGBA(x, y, c)
			}
		}
		faces[i] = img
	}
	m, err := cubemap.New(faces)
	if err != nil {
		t.Fatalf("cubemap.New() error: %v", err)
	}
	return m
}

func TestSelectReflectionSource(t *testing.T) {
	p := DefaultParams()
	env := solidCubemap(t, color.RGBA{128, 128, 128, 255})

	p.UseEnvironmentMap = true
	if _, ok := SelectReflectionSource(p, env).(EnvironmentSource); !ok {
		t.Error("enabled + bound should select the environment source")
	}

	// Missing texture degrades to the sky fallback instead of failing.
	if _, ok := SelectReflectionSource(p, nil).(SkySource); !ok {
		t.Error("enabled + missing map should fall back to the sky source")
	}

	p.UseEnvironmentMap = false
	if _, ok := SelectReflectionSource(p, env).(SkySource); !ok {
		t.Error("disabled flag should select the sky source")
	}
}

func TestEnvironmentSourceSample(t *testing.T) {
	env := solidCubemap(t, color.RGBA{255, 0, 0, 255})
	src := EnvironmentSource{Map: env}
	c := src.Sample(math.Vec3{X: 1})
	if c.R != 1 || c.G != 0 || c.B != 0 {
		t.Errorf("EnvironmentSource.Sample() = %+v, want red", c)
	}
	if src.SpecularScale() != 0.3 {
		t.Errorf("environment specular scale = %v, want 0.3", src.SpecularScale())
	}
	if (SkySource{}).SpecularScale() != 0.5 {
		t.Errorf("sky specular scale = %v, want 0.5", SkySource{}.SpecularScale())
	}
}

func TestSpecularHighlightAdded(t *testing.T) {
	p := DefaultParams()
	p.SkyColor = RGBA{R: 0, G: 0, B: 0, A: 1}
	normal := math.Vec3{Y: 1}

	// Camera and light arranged so the reflection vector lines up with the
	// light: view (0,1,0) reflects to (0,1,0).
	camera := math.Vec3{Y: 10}
	light := math.Vec3{Y: 1}

	c := Shade(normal, math.Vec3{}, camera, light, p, SkySource{Color: p.SkyColor})

	// nv=1 so Fresnel is small but nonzero; reflection carries the full
	// specular term 0.5 * 1^64 = 0.5 over a black sky.
	if c.R <= 0 {
		t.Errorf("expected specular contribution in final color, got %+v", c)
	}
}
