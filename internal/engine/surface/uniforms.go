package surface

import (
	"github.com/Faultbox/oceangrid/internal/engine/shading"
	"github.com/Faultbox/oceangrid/internal/engine/waves"
)

// Per-frame uniform payload layout, in floats. The field order is the wire
// contract shared with the shader; a compatible renderer must reproduce it
// exactly:
//
//	wave[0..3].direction  vec4 (xy used)
//	wave[0..3].params     vec4 (steepness, wavelength, amplitude, speed)
//	time_and_config       vec4 (time, active_wave_count, use_env_map, 0)
//	deep_color            vec4
//	shallow_color         vec4
//	fresnel_params        vec4 (F0, power, bias, 0)
//	sky_color             vec4
const (
	UniformFloats = waves.MaxWaves*8 + 5*4

	offsetTimeConfig = waves.MaxWaves * 8
	offsetDeepColor  = offsetTimeConfig + 4
	offsetShallow    = offsetDeepColor + 4
	offsetFresnel    = offsetShallow + 4
	offsetSkyColor   = offsetFresnel + 4
)

// PackUniforms serializes the frame's wave field and shading parameters
// into the uniform payload. useEnv reports whether an environment map is
// actually bound; it overrides the params flag so a missing texture
// degrades to the sky fallback on the GPU as well.
func PackUniforms(field waves.Field, p shading.Params, time float32, useEnv bool) [UniformFloats]float32 {
	var out [UniformFloats]float32

	for i := 0; i < waves.MaxWaves; i++ {
		w := field.Waves[i]
		base := i * 8
		out[base+0] = w.Direction.X
		out[base+1] = w.Direction.Y
		// zw padding stays zero.
		out[base+4] = w.Steepness
		out[base+5] = w.Wavelength
		out[base+6] = w.Amplitude
		out[base+7] = w.Speed
	}

	out[offsetTimeConfig+0] = time
	out[offsetTimeConfig+1] = float32(field.ActiveCount)
	if useEnv && p.UseEnvironmentMap {
		out[offsetTimeConfig+2] = 1
	}

	packColor(out[offsetDeepColor:], p.DeepColor)
	packColor(out[offsetShallow:], p.ShallowColor)

	out[offsetFresnel+0] = p.FresnelF0
	out[offsetFresnel+1] = p.FresnelPower
	out[offsetFresnel+2] = p.FresnelBias

	packColor(out[offsetSkyColor:], p.SkyColor)

	return out
}

func packColor(dst []float32, c shading.RGBA) {
	dst[0] = c.R
	dst[1] = c.G
	dst[2] = c.B
	dst[3] = c.A
}
