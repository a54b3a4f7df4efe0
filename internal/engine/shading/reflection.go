package shading

import (
	"github.com/Faultbox/oceangrid/internal/engine/cubemap"
	"github.com/Faultbox/oceangrid/pkg/math"
)

// Specular highlight constants. The environment path uses a smaller scale
// because the sampled sky already carries brightness; the solid color
// fallback compensates with a stronger highlight.
const (
	specularPower    = 64
	specularEnvScale = 0.3
	specularSkyScale = 0.5
)

// ReflectionSource resolves a reflection color for a direction. Sources are
// stateless per frame and safe to sample concurrently.
type ReflectionSource interface {
	// Sample returns the reflection color along dir.
	Sample(dir math.Vec3) RGBA
	// SpecularScale returns the multiplier for the specular highlight
	// added on top of the sampled color.
	SpecularScale() float32
}

// SkySource is the constant color fallback used when no environment map is
// bound.
type SkySource struct {
	Color RGBA
}

// Sample returns the constant sky color.
func (s SkySource) Sample(math.Vec3) RGBA {
	return s.Color
}

// SpecularScale returns the fallback highlight scale.
func (s SkySource) SpecularScale() float32 {
	return specularSkyScale
}

// EnvironmentSource samples a directional cubemap.
type EnvironmentSource struct {
	Map *cubemap.Map
}

// Sample returns the cubemap color along dir.
func (e EnvironmentSource) Sample(dir math.Vec3) RGBA {
	r, g, b := e.Map.Sample(dir)
	return RGBA{R: r, G: g, B: b, A: 1}
}

// SpecularScale returns the environment highlight scale.
func (e EnvironmentSource) SpecularScale() float32 {
	return specularEnvScale
}

// SelectReflectionSource picks the environment map when it is enabled and
// bound, and degrades to the solid sky color otherwise. A missing texture
// is not an error; the frame simply renders with the fallback.
func SelectReflectionSource(p Params, env *cubemap.Map) ReflectionSource {
	if p.UseEnvironmentMap && env != nil {
		return EnvironmentSource{Map: env}
	}
	return SkySource{Color: p.SkyColor}
}
