package waves

import "github.com/Faultbox/oceangrid/pkg/math"

// Field is a fixed-capacity ordered set of waves. Entries at index
// >= ActiveCount are ignored. The fixed size keeps per-point evaluation
// cost bounded and mirrors the shader's unrolled wave array.
//
// A Field is read-only during rendering; it is mutated only between frames
// by tuning code. Writers and readers are frame-sequenced by the host loop.
type Field struct {
	Waves       [MaxWaves]Wave
	ActiveCount int
}

// NewField builds a field from the given waves, truncating past MaxWaves.
func NewField(ws ...Wave) Field {
	var f Field
	for _, w := range ws {
		if f.ActiveCount >= MaxWaves {
			break
		}
		f.Waves[f.ActiveCount] = w
		f.ActiveCount++
	}
	return f
}

// Active returns the slice of waves that take part in evaluation.
func (f *Field) Active() []Wave {
	n := f.ActiveCount
	if n < 0 {
		n = 0
	}
	if n > MaxWaves {
		n = MaxWaves
	}
	return f.Waves[:n]
}

// Evaluate sums the offsets of all active waves and synthesizes the surface
// normal from the accumulated tangent frame.
//
// With zero active waves the frame stays at its base binormal (1,0,0),
// tangent (0,0,1), which yields the downward normal (0,-1,0). Downstream
// code relies on this exact value, so it is left as is.
func (f *Field) Evaluate(worldXZ math.Vec2, time float32) (offset, normal math.Vec3) {
	binormal := math.Vec3{X: 1, Y: 0, Z: 0}
	tangent := math.Vec3{X: 0, Y: 0, Z: 1}

	for _, w := range f.Active() {
		if w.Amplitude <= MinAmplitude {
			continue
		}
		o, delta := w.Evaluate(worldXZ, time)
		offset = offset.Add(o)
		binormal = binormal.Add(delta.Binormal)
		tangent = tangent.Add(delta.Tangent)
	}

	normal = binormal.Cross(tangent).Normalize()
	return offset, normal
}

// EvaluatePosition sums only the position offsets of all active waves.
func (f *Field) EvaluatePosition(worldXZ math.Vec2, time float32) math.Vec3 {
	var offset math.Vec3
	for _, w := range f.Active() {
		if w.Amplitude <= MinAmplitude {
			continue
		}
		offset = offset.Add(w.EvaluatePosition(worldXZ, time))
	}
	return offset
}

// DefaultField returns the standard three-wave open ocean preset.
func DefaultField() Field {
	return NewField(
		New(math.Vec2{X: 1, Y: 0}, 0.5, 60, 2, 1),
		New(math.Vec2{X: 0.7, Y: 0.7}, 0.6, 31, 1, 1.2),
		New(math.Vec2{X: -0.3, Y: 0.9}, 0.4, 18, 0.5, 0.9),
	)
}
