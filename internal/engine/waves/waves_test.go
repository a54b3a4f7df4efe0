package waves

import (
	gomath "math"
	"testing"

	"github.com/Faultbox/oceangrid/pkg/math"
)

func absf(x float32) float64 {
	return gomath.Abs(float64(x))
}

func TestWaveNumber(t *testing.T) {
	w := New(math.Vec2{X: 1, Y: 0}, 0.5, 60, 2, 1)
	k := w.Number()
	want := 2 * gomath.Pi / 60.0
	if absf(k-float32(want)) > 0.001 {
		t.Errorf("Number() = %v, want %v", k, want)
	}
}

func TestNewNormalizesDirection(t *testing.T) {
	w := New(math.Vec2{X: 3, Y: 4}, 0.5, 60, 2, 1)
	l := w.Direction.Length()
	if absf(l-1) > 0.001 {
		t.Errorf("New() direction length = %v, want 1", l)
	}
}

func TestSingleWaveSample(t *testing.T) {
	// direction (1,0), Q=0.5, wavelength 60, amplitude 2, speed 1 at the
	// origin, time zero: phase is 0, so cos=1, sin=0 and the offset is
	// (Q*A, 0, 0) = (1, 0, 0).
	w := New(math.Vec2{X: 1, Y: 0}, 0.5, 60, 2, 1)
	offset, _ := w.Evaluate(math.Vec2{}, 0)

	if absf(offset.X-1) > 0.0001 || absf(offset.Y) > 0.0001 || absf(offset.Z) > 0.0001 {
		t.Errorf("Evaluate() offset = %v, want (1, 0, 0)", offset)
	}
}

func TestEvaluatePositionMatchesEvaluate(t *testing.T) {
	w := New(math.Vec2{X: 0.6, Y: 0.8}, 0.7, 45, 1.5, 1.1)
	positions := []math.Vec2{{}, {X: 10, Y: -3}, {X: -120, Y: 77}}
	for _, p := range positions {
		full, _ := w.Evaluate(p, 2.5)
		fast := w.EvaluatePosition(p, 2.5)
		if full != fast {
			t.Errorf("EvaluatePosition(%v) = %v, Evaluate offset = %v", p, fast, full)
		}
	}
}

func TestZeroFieldIdentity(t *testing.T) {
	var f Field
	offset, normal := f.Evaluate(math.Vec2{X: 123, Y: -456}, 7.0)

	if offset != (math.Vec3{}) {
		t.Errorf("zero field offset = %v, want (0,0,0)", offset)
	}
	// Base binormal (1,0,0) crossed with base tangent (0,0,1) faces down.
	want := math.Vec3{X: 0, Y: -1, Z: 0}
	if normal != want {
		t.Errorf("zero field normal = %v, want %v", normal, want)
	}
}

func TestFieldNormalIsUnit(t *testing.T) {
	f := DefaultField()
	for _, xz := range []math.Vec2{{}, {X: 30, Y: 40}, {X: -500, Y: 900}} {
		_, normal := f.Evaluate(xz, 1.25)
		if absf(normal.Length()-1) > 0.001 {
			t.Errorf("normal at %v not unit length: %v", xz, normal)
		}
	}
}

func TestAmplitudeEpsilonSkip(t *testing.T) {
	strong := New(math.Vec2{X: 1, Y: 0}, 0.5, 60, 2, 1)
	faint := New(math.Vec2{X: 0, Y: 1}, 0.9, 20, 0.0005, 1)

	with := NewField(strong, faint)
	without := NewField(strong)

	xz := math.Vec2{X: 12, Y: 34}
	offsetWith, normalWith := with.Evaluate(xz, 3)
	offsetWithout, normalWithout := without.Evaluate(xz, 3)

	if offsetWith != offsetWithout {
		t.Errorf("sub-epsilon wave changed offset: %v vs %v", offsetWith, offsetWithout)
	}
	if normalWith != normalWithout {
		t.Errorf("sub-epsilon wave changed normal: %v vs %v", normalWith, normalWithout)
	}
}

func TestSuperpositionLinearity(t *testing.T) {
	ws := []Wave{
		New(math.Vec2{X: 1, Y: 0}, 0.5, 60, 2, 1),
		New(math.Vec2{X: 0.7, Y: 0.7}, 0.6, 31, 1, 1.2),
		New(math.Vec2{X: -0.3, Y: 0.9}, 0.4, 18, 0.5, 0.9),
	}
	f := NewField(ws...)

	xz := math.Vec2{X: -8, Y: 21}
	time := float32(4.5)

	total, _ := f.Evaluate(xz, time)

	var sum math.Vec3
	binormal := math.Vec3{X: 1, Y: 0, Z: 0}
	tangent := math.Vec3{X: 0, Y: 0, Z: 1}
	for _, w := range ws {
		o, d := w.Evaluate(xz, time)
		sum = sum.Add(o)
		binormal = binormal.Add(d.Binormal)
		tangent = tangent.Add(d.Tangent)
	}

	if absf(total.X-sum.X) > 1e-5 || absf(total.Y-sum.Y) > 1e-5 || absf(total.Z-sum.Z) > 1e-5 {
		t.Errorf("field offset %v != per-wave sum %v", total, sum)
	}

	_, normal := f.Evaluate(xz, time)
	wantNormal := binormal.Cross(tangent).Normalize()
	if absf(normal.X-wantNormal.X) > 1e-5 || absf(normal.Y-wantNormal.Y) > 1e-5 || absf(normal.Z-wantNormal.Z) > 1e-5 {
		t.Errorf("field normal %v != per-wave frame normal %v", normal, wantNormal)
	}
}

func TestEvaluateDeterministic(t *testing.T) {
	f := DefaultField()
	xz := math.Vec2{X: 55, Y: -14}
	o1, n1 := f.Evaluate(xz, 9.75)
	o2, n2 := f.Evaluate(xz, 9.75)
	if o1 != o2 || n1 != n2 {
		t.Error("Evaluate is not deterministic for identical inputs")
	}
}

func TestActiveCountCutoff(t *testing.T) {
	f := NewField(
		New(math.Vec2{X: 1, Y: 0}, 0.5, 60, 2, 1),
		New(math.Vec2{X: 0, Y: 1}, 0.5, 40, 1, 1),
	)
	f.ActiveCount = 1

	xz := math.Vec2{X: 5, Y: 5}
	got, _ := f.Evaluate(xz, 1)
	want, _ := f.Waves[0].Evaluate(xz, 1)
	if got != want {
		t.Errorf("field with ActiveCount=1 = %v, want first wave only %v", got, want)
	}
}
