// Package waves implements Gerstner (trochoidal) wave evaluation for
// animated water surfaces.
//
// Gerstner waves displace surface points both vertically and horizontally,
// producing circular orbital motion with peaked crests and rounded troughs.
// Evaluation is a pure function of (wave parameters, position, time), so it
// can run per-vertex on the CPU or be mirrored in a shader with identical
// results.
package waves

import (
	"github.com/chewxy/math32"

	"github.com/Faultbox/oceangrid/pkg/math"
)

// Gravity is the gravitational constant for deep water wave dispersion (m/s²).
const Gravity = 9.81

// MaxWaves is the fixed capacity of a Field. It matches the wave array
// length in the shader uniform block.
const MaxWaves = 4

// MinAmplitude is the amplitude below which a wave is skipped entirely.
// A skipped wave contributes exactly zero offset and zero tangent frame
// delta, so skipping is equivalent to evaluating it.
const MinAmplitude = 0.001

// Wave holds the parameters of a single Gerstner wave.
type Wave struct {
	// Direction is the normalized propagation direction in the XZ plane.
	// Producers must normalize it; evaluation does not renormalize.
	Direction math.Vec2
	// Steepness Q in [0,1] controls how sharply crests peak. Values near 1
	// can loop the surface when several steep waves overlap.
	Steepness float32
	// Wavelength is the crest-to-crest distance in world units.
	Wavelength float32
	// Amplitude is half the wave height.
	Amplitude float32
	// Speed scales the dispersion-derived phase speed (1.0 = physical).
	Speed float32
}

// New creates a wave with the direction normalized.
func New(direction math.Vec2, steepness, wavelength, amplitude, speed float32) Wave {
	return Wave{
		Direction:  direction.Normalize(),
		Steepness:  steepness,
		Wavelength: wavelength,
		Amplitude:  amplitude,
		Speed:      speed,
	}
}

// Default returns a medium ocean swell.
func Default() Wave {
	return Wave{
		Direction:  math.Vec2{X: 1, Y: 0},
		Steepness:  0.5,
		Wavelength: 60,
		Amplitude:  2,
		Speed:      1,
	}
}

// Number returns the wavenumber k = 2π / wavelength.
func (w Wave) Number() float32 {
	return 2 * math32.Pi / w.Wavelength
}

// AngularFrequency returns ω = sqrt(g·k) · speed, the deep water dispersion
// relation scaled by the speed knob.
func (w Wave) AngularFrequency() float32 {
	return math32.Sqrt(Gravity*w.Number()) * w.Speed
}

// FrameDelta is a wave's additive contribution to the surface tangent frame.
// Contributions from all active waves are summed onto the base frame
// binormal (1,0,0), tangent (0,0,1) before the normal is derived.
type FrameDelta struct {
	Binormal math.Vec3
	Tangent  math.Vec3
}

// Evaluate returns the position offset and tangent frame contribution of
// this wave at a world XZ position and time. It is a pure function with no
// shared state and is safe to call concurrently for every surface point.
func (w Wave) Evaluate(worldXZ math.Vec2, time float32) (math.Vec3, FrameDelta) {
	k := w.Number()
	omega := w.AngularFrequency()
	d := w.Direction
	a := w.Amplitude
	q := w.Steepness

	phase := k*d.Dot(worldXZ) - omega*time
	c := math32.Cos(phase)
	s := math32.Sin(phase)

	offset := math.Vec3{
		X: q * a * d.X * c,
		Y: a * s,
		Z: q * a * d.Y * c,
	}

	// Partial derivatives of the displaced surface with respect to world X
	// (binormal) and world Z (tangent).
	wa := k * a
	delta := FrameDelta{
		Binormal: math.Vec3{
			X: -q * d.X * d.X * wa * s,
			Y: d.X * wa * c,
			Z: -q * d.X * d.Y * wa * s,
		},
		Tangent: math.Vec3{
			X: -q * d.X * d.Y * wa * s,
			Y: d.Y * wa * c,
			Z: -q * d.Y * d.Y * wa * s,
		},
	}

	return offset, delta
}

// EvaluatePosition returns only the position offset (faster when the
// tangent frame is not needed).
func (w Wave) EvaluatePosition(worldXZ math.Vec2, time float32) math.Vec3 {
	k := w.Number()
	omega := w.AngularFrequency()
	d := w.Direction

	phase := k*d.Dot(worldXZ) - omega*time
	c := math32.Cos(phase)
	s := math32.Sin(phase)

	return math.Vec3{
		X: w.Steepness * w.Amplitude * d.X * c,
		Y: w.Amplitude * s,
		Z: w.Steepness * w.Amplitude * d.Y * c,
	}
}
