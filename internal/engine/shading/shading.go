package shading

import (
	"github.com/chewxy/math32"

	"github.com/Faultbox/oceangrid/pkg/math"
)

// ambient is the fixed ambient lighting floor for the water body color.
const ambient = 0.3

// Params holds the per-frame shading configuration. It is immutable during
// a frame; tuning code replaces it between frames.
type Params struct {
	// DeepColor is the water body color seen from above.
	DeepColor RGBA
	// ShallowColor is the water body color seen at grazing angles.
	ShallowColor RGBA
	// SkyColor is the reflection fallback when no environment map is bound.
	SkyColor RGBA

	// Schlick Fresnel controls.
	FresnelF0    float32
	FresnelPower float32
	FresnelBias  float32

	// UseEnvironmentMap selects cubemap reflection when a map is bound.
	UseEnvironmentMap bool
}

// DefaultParams returns open-ocean shading defaults.
func DefaultParams() Params {
	return Params{
		DeepColor:    RGBA{R: 0, G: 0.1, B: 0.3, A: 1},
		ShallowColor: RGBA{R: 0, G: 0.4, B: 0.5, A: 1},
		SkyColor:     RGBA{R: 0.6, G: 0.8, B: 1, A: 1},
		FresnelF0:    0.02,
		FresnelPower: 5,
		FresnelBias:  0,
	}
}

// Fresnel returns the Schlick approximation clamped to [0, 1]:
// F0 + (1-F0)·(1-nv)^power + bias.
func Fresnel(nv, f0, power, bias float32) float32 {
	return clamp01(f0 + (1-f0)*math32.Pow(1-nv, power) + bias)
}

// Shade computes the final surface color at a point. All inputs are read
// only and the function has no state, so it can run in parallel for every
// shaded point.
//
// normal and lightDir must be normalized. The returned color is clamped to
// [0, 1] per channel with opaque alpha.
func Shade(normal, worldPos, cameraPos, lightDir math.Vec3, p Params, refl ReflectionSource) RGBA {
	view := cameraPos.Sub(worldPos).Normalize()

	nv := normal.Dot(view)
	if nv < 0 {
		nv = 0
	}

	fresnel := Fresnel(nv, p.FresnelF0, p.FresnelPower, p.FresnelBias)

	nl := normal.Dot(lightDir)
	if nl < 0 {
		nl = 0
	}

	// Deep when looked at from above, shallow toward grazing angles.
	water := p.DeepColor.Lerp(p.ShallowColor, 1-nv)
	lit := water.Scale(ambient + (1-ambient)*nl)

	reflectDir := view.Scale(-1).Reflect(normal)
	reflection := resolveReflection(refl, reflectDir, lightDir)

	out := lit.Lerp(reflection, fresnel).Clamp()
	out.A = 1
	return out
}

// resolveReflection samples the reflection source and adds a narrow
// specular highlight along the light direction.
func resolveReflection(refl ReflectionSource, reflectDir, lightDir math.Vec3) RGBA {
	c := refl.Sample(reflectDir)

	rl := reflectDir.Dot(lightDir)
	if rl < 0 {
		rl = 0
	}
	spec := math32.Pow(rl, specularPower) * refl.SpecularScale()

	c.R += spec
	c.G += spec
	c.B += spec
	return c
}
