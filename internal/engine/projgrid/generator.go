package projgrid

import (
	"github.com/chewxy/math32"

	"github.com/Faultbox/oceangrid/pkg/math"
)

// Generator caches the most recent projected grid mesh and rebuilds it only
// when the camera moves or rotates beyond the configured thresholds. The
// cache is invisible to consumers: a cached mesh is identical to one that
// would be freshly built within the thresholds.
//
// Each rebuild allocates a new Mesh, so a mesh handed out earlier stays
// valid as an immutable snapshot for the rest of its frame.
type Generator struct {
	cfg Config

	mesh        *Mesh
	lastCamPos  math.Vec3
	lastForward math.Vec3
}

// NewGenerator creates a generator with the given configuration.
func NewGenerator(cfg Config) *Generator {
	return &Generator{cfg: cfg}
}

// Config returns the generator's configuration.
func (g *Generator) Config() Config {
	return g.cfg
}

// Mesh returns the grid mesh for the given camera state, rebuilding it if
// the camera has moved past UpdateThreshold or rotated past
// RotationThreshold since the last build.
func (g *Generator) Mesh(cameraPos, forward math.Vec3, viewProj math.Mat4) *Mesh {
	if g.mesh != nil && !g.needsRebuild(cameraPos, forward) {
		return g.mesh
	}

	g.mesh = Build(g.cfg, cameraPos, viewProj)
	g.lastCamPos = cameraPos
	g.lastForward = forward.Normalize()
	return g.mesh
}

func (g *Generator) needsRebuild(cameraPos, forward math.Vec3) bool {
	if cameraPos.Distance(g.lastCamPos) > g.cfg.UpdateThreshold {
		return true
	}

	cosAngle := forward.Normalize().Dot(g.lastForward)
	if cosAngle > 1 {
		cosAngle = 1
	}
	if cosAngle < -1 {
		cosAngle = -1
	}
	return math32.Acos(cosAngle) > g.cfg.RotationThreshold
}
