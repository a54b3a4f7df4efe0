// Package projgrid builds camera-following projected grid meshes.
//
// A projected grid places vertices uniformly in screen space and unprojects
// them onto the water plane, so vertex density stays constant on screen no
// matter how far the surface stretches. Rays that miss the plane (horizon
// or above) are clamped to a maximum distance instead of producing
// infinities, which keeps the mesh continuous across the horizon line.
package projgrid

import (
	"github.com/chewxy/math32"

	"github.com/Faultbox/oceangrid/pkg/math"
)

// horizonEpsilon is the |ray.Y| threshold below which a ray is treated as
// parallel to the water plane.
const horizonEpsilon = 0.0001

// Config holds projected grid settings.
type Config struct {
	// Resolution is the number of vertices along each axis of the grid.
	Resolution int
	// MaxDistance clamps projected vertices to this XZ distance from the
	// camera.
	MaxDistance float32
	// SurfaceHeight is the Y coordinate of the water plane.
	SurfaceHeight float32
	// UpdateThreshold is the camera movement (world units) that triggers a
	// mesh rebuild.
	UpdateThreshold float32
	// RotationThreshold is the camera rotation (radians) that triggers a
	// mesh rebuild.
	RotationThreshold float32
}

// DefaultConfig returns the standard grid settings.
func DefaultConfig() Config {
	return Config{
		Resolution:        128,
		MaxDistance:       2000,
		SurfaceHeight:     0,
		UpdateThreshold:   0.5,
		RotationThreshold: 0.01,
	}
}

// Mesh is a grid of world-space vertices over the water plane. Normals are
// placeholders until wave displacement overwrites them.
type Mesh struct {
	Positions []math.Vec3
	Normals   []math.Vec3
	UVs       []math.Vec2
	Indices   []uint32
}

// VertexCount returns the number of vertices in the mesh.
func (m *Mesh) VertexCount() int {
	return len(m.Positions)
}

// Build creates a projected grid mesh for the given camera state.
//
// For each grid cell the clip-space point is unprojected through the
// inverse view-projection matrix at the near and far planes, forming a ray
// that is intersected with the water plane.
func Build(cfg Config, cameraPos math.Vec3, viewProj math.Mat4) *Mesh {
	res := cfg.Resolution
	if res < 2 {
		res = 2
	}

	invViewProj := viewProj.Inverse()

	numVertices := res * res
	mesh := &Mesh{
		Positions: make([]math.Vec3, 0, numVertices),
		Normals:   make([]math.Vec3, 0, numVertices),
		UVs:       make([]math.Vec2, 0, numVertices),
		Indices:   make([]uint32, 0, (res-1)*(res-1)*6),
	}

	for j := 0; j < res; j++ {
		for i := 0; i < res; i++ {
			u := float32(i) / float32(res-1)
			v := float32(j) / float32(res-1)

			clipX := u*2 - 1
			clipY := v*2 - 1

			origin, dir := unprojectRay(invViewProj, clipX, clipY)
			pos := intersectSurface(origin, dir, cameraPos, cfg.SurfaceHeight, cfg.MaxDistance)

			mesh.Positions = append(mesh.Positions, pos)
			mesh.Normals = append(mesh.Normals, math.Vec3{X: 0, Y: 1, Z: 0})
			mesh.UVs = append(mesh.UVs, math.Vec2{X: u, Y: v})
		}
	}

	for j := 0; j < res-1; j++ {
		for i := 0; i < res-1; i++ {
			topLeft := uint32(j*res + i)
			topRight := topLeft + 1
			bottomLeft := uint32((j+1)*res + i)
			bottomRight := bottomLeft + 1

			mesh.Indices = append(mesh.Indices,
				topLeft, bottomLeft, topRight,
				topRight, bottomLeft, bottomRight,
			)
		}
	}

	return mesh
}

// unprojectRay converts a clip-space XY position into a world-space ray by
// unprojecting points on the near and far planes.
func unprojectRay(invViewProj math.Mat4, clipX, clipY float32) (origin, dir math.Vec3) {
	nearWorld := invViewProj.MulVec4(math.Vec4{clipX, clipY, -1, 1})
	farWorld := invViewProj.MulVec4(math.Vec4{clipX, clipY, 1, 1})

	if nearWorld[3] != 0 {
		nearWorld[0] /= nearWorld[3]
		nearWorld[1] /= nearWorld[3]
		nearWorld[2] /= nearWorld[3]
	}
	if farWorld[3] != 0 {
		farWorld[0] /= farWorld[3]
		farWorld[1] /= farWorld[3]
		farWorld[2] /= farWorld[3]
	}

	origin = math.Vec3{X: nearWorld[0], Y: nearWorld[1], Z: nearWorld[2]}
	dir = math.Vec3{
		X: farWorld[0] - nearWorld[0],
		Y: farWorld[1] - nearWorld[1],
		Z: farWorld[2] - nearWorld[2],
	}.Normalize()

	return origin, dir
}

// intersectSurface intersects a ray with the plane y = surfaceHeight.
// Rays that are near-parallel to the plane, point away from it, or hit it
// beyond maxDistance are clamped to maxDistance from the camera, so the
// result is always finite.
func intersectSurface(origin, dir, cameraPos math.Vec3, surfaceHeight, maxDistance float32) math.Vec3 {
	denom := dir.Y

	if math32.Abs(denom) < horizonEpsilon {
		return clampToHorizon(dir, cameraPos, surfaceHeight, maxDistance)
	}

	t := (surfaceHeight - origin.Y) / denom
	if t < 0 {
		return clampToHorizon(dir, cameraPos, surfaceHeight, maxDistance)
	}

	hit := origin.Add(dir.Scale(t))

	toHit := math.Vec2{X: hit.X - cameraPos.X, Y: hit.Z - cameraPos.Z}
	dist := toHit.Length()
	if dist > maxDistance {
		clamped := toHit.Normalize().Scale(maxDistance)
		return math.Vec3{
			X: cameraPos.X + clamped.X,
			Y: surfaceHeight,
			Z: cameraPos.Z + clamped.Y,
		}
	}

	return hit
}

// clampToHorizon projects the ray direction onto the XZ plane and walks
// maxDistance along it from the camera.
func clampToHorizon(dir, cameraPos math.Vec3, surfaceHeight, maxDistance float32) math.Vec3 {
	horizontal := math.Vec2{X: dir.X, Y: dir.Z}.Normalize()
	if horizontal == (math.Vec2{}) {
		return math.Vec3{X: cameraPos.X, Y: surfaceHeight, Z: cameraPos.Z}
	}
	return math.Vec3{
		X: cameraPos.X + horizontal.X*maxDistance,
		Y: surfaceHeight,
		Z: cameraPos.Z + horizontal.Y*maxDistance,
	}
}
