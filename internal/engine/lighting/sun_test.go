package lighting

import (
	gomath "math"
	"testing"
)

func TestSunDirectionOverhead(t *testing.T) {
	d := SunDirection(0, 90)
	if gomath.Abs(float64(d.Y-1)) > 0.001 {
		t.Errorf("overhead sun Y = %v, want 1", d.Y)
	}
}

func TestSunDirectionHorizon(t *testing.T) {
	d := SunDirection(0, 0)
	if gomath.Abs(float64(d.Y)) > 0.001 {
		t.Errorf("horizon sun Y = %v, want 0", d.Y)
	}
	if gomath.Abs(float64(d.Z-1)) > 0.001 {
		t.Errorf("horizon sun at azimuth 0 Z = %v, want 1", d.Z)
	}
}

func TestSunDirectionNormalized(t *testing.T) {
	for _, angles := range [][2]float32{{0, 45}, {90, 30}, {215, 60}} {
		d := SunDirection(angles[0], angles[1])
		if gomath.Abs(float64(d.Length()-1)) > 0.001 {
			t.Errorf("SunDirection(%v, %v) not normalized: %v", angles[0], angles[1], d)
		}
	}
}
