package camera

import (
	gomath "math"
	"testing"

	"github.com/Faultbox/oceangrid/pkg/math"
)

func TestPositionRespectsDistance(t *testing.T) {
	c := New()
	c.Center = math.Vec3{}
	got := c.Position().Length()
	if gomath.Abs(float64(got-c.Distance)) > 0.01 {
		t.Errorf("Position() distance = %v, want %v", got, c.Distance)
	}
}

func TestForwardPointsAtCenter(t *testing.T) {
	c := New()
	c.Center = math.Vec3{X: 10, Y: 0, Z: -5}
	f := c.Forward()
	toCenter := c.Center.Sub(c.Position()).Normalize()
	if f.Distance(toCenter) > 0.0001 {
		t.Errorf("Forward() = %v, want %v", f, toCenter)
	}
}

func TestHandleZoomClamps(t *testing.T) {
	c := New()
	for i := 0; i < 100; i++ {
		c.HandleZoom(10)
	}
	if c.Distance < c.MinDistance {
		t.Errorf("zoom in went past MinDistance: %v", c.Distance)
	}
	for i := 0; i < 100; i++ {
		c.HandleZoom(-10)
	}
	if c.Distance > c.MaxDistance {
		t.Errorf("zoom out went past MaxDistance: %v", c.Distance)
	}
}

func TestHandleDragClampsPitch(t *testing.T) {
	c := New()
	c.HandleDrag(0, 10000)
	if c.Pitch > c.MaxPitch {
		t.Errorf("drag exceeded MaxPitch: %v", c.Pitch)
	}
	c.HandleDrag(0, -20000)
	if c.Pitch < c.MinPitch {
		t.Errorf("drag went below MinPitch: %v", c.Pitch)
	}
}

func TestSnapshotConsistent(t *testing.T) {
	c := New()
	s := c.Snapshot(16.0 / 9.0)

	if s.Position != c.Position() {
		t.Error("snapshot position differs from camera position")
	}
	vp := s.Proj.Mul(s.View)
	if vp != s.ViewProj {
		t.Error("snapshot ViewProj != Proj * View")
	}
}
