// Package camera provides the viewer camera for ocean rendering.
package camera

import (
	"github.com/chewxy/math32"

	"github.com/Faultbox/oceangrid/pkg/math"
)

// OrbitCamera orbits around a center point above the water plane.
type OrbitCamera struct {
	// Center point to orbit around
	Center math.Vec3

	// Spherical coordinates
	Distance float32 // Distance from center
	Pitch    float32 // Vertical angle, radians
	Yaw      float32 // Horizontal angle, radians

	// Constraints
	MinDistance float32
	MaxDistance float32
	MinPitch    float32
	MaxPitch    float32

	// Projection
	FovY float32
	Near float32
	Far  float32

	// Sensitivity
	DragSensitivity float32
	ZoomSensitivity float32
}

// New creates an orbit camera with defaults suited to an open water view:
// slightly above the surface, looking toward the horizon.
func New() *OrbitCamera {
	return &OrbitCamera{
		Center:          math.Vec3{},
		Distance:        60,
		Pitch:           0.25,
		Yaw:             0,
		MinDistance:     5,
		MaxDistance:     1500,
		MinPitch:        0.02,
		MaxPitch:        1.5,
		FovY:            math32.Pi / 4,
		Near:            0.1,
		Far:             5000,
		DragSensitivity: 0.005,
		ZoomSensitivity: 0.1,
	}
}

// Position returns the camera position in world space.
func (c *OrbitCamera) Position() math.Vec3 {
	x := c.Distance * math32.Cos(c.Pitch) * math32.Sin(c.Yaw)
	y := c.Distance * math32.Sin(c.Pitch)
	z := c.Distance * math32.Cos(c.Pitch) * math32.Cos(c.Yaw)

	return math.Vec3{
		X: c.Center.X + x,
		Y: c.Center.Y + y,
		Z: c.Center.Z + z,
	}
}

// Forward returns the normalized view direction.
func (c *OrbitCamera) Forward() math.Vec3 {
	return c.Center.Sub(c.Position()).Normalize()
}

// ViewMatrix returns the view matrix for this camera.
func (c *OrbitCamera) ViewMatrix() math.Mat4 {
	return math.LookAt(c.Position(), c.Center, math.Vec3{X: 0, Y: 1, Z: 0})
}

// ProjectionMatrix returns the perspective projection for the given aspect
// ratio (width/height).
func (c *OrbitCamera) ProjectionMatrix(aspect float32) math.Mat4 {
	return math.Perspective(c.FovY, aspect, c.Near, c.Far)
}

// State is the frame-scoped camera snapshot consumed by the mesh generator
// and shading stages.
type State struct {
	Position math.Vec3
	Forward  math.Vec3
	View     math.Mat4
	Proj     math.Mat4
	ViewProj math.Mat4
}

// Snapshot captures the camera state for one frame.
func (c *OrbitCamera) Snapshot(aspect float32) State {
	view := c.ViewMatrix()
	proj := c.ProjectionMatrix(aspect)
	return State{
		Position: c.Position(),
		Forward:  c.Forward(),
		View:     view,
		Proj:     proj,
		ViewProj: proj.Mul(view),
	}
}

// HandleDrag updates rotation based on mouse drag delta.
func (c *OrbitCamera) HandleDrag(deltaX, deltaY float32) {
	c.Yaw -= deltaX * c.DragSensitivity
	c.Pitch += deltaY * c.DragSensitivity

	if c.Pitch < c.MinPitch {
		c.Pitch = c.MinPitch
	}
	if c.Pitch > c.MaxPitch {
		c.Pitch = c.MaxPitch
	}
}

// HandleZoom updates distance based on scroll wheel delta.
func (c *OrbitCamera) HandleZoom(delta float32) {
	c.Distance -= delta * c.Distance * c.ZoomSensitivity
	if c.Distance < c.MinDistance {
		c.Distance = c.MinDistance
	}
	if c.Distance > c.MaxDistance {
		c.Distance = c.MaxDistance
	}
}

// HandlePan moves the orbit center on the water plane relative to the
// current yaw.
func (c *OrbitCamera) HandlePan(forward, right float32) {
	speed := c.Distance * 0.01

	dirX := math32.Sin(c.Yaw)
	dirZ := math32.Cos(c.Yaw)

	rightX := math32.Cos(c.Yaw)
	rightZ := -math32.Sin(c.Yaw)

	c.Center.X += (-dirX*forward + rightX*right) * speed
	c.Center.Z += (-dirZ*forward + rightZ*right) * speed
}
