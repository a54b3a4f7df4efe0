// Package surface drives the per-frame ocean pipeline: projected grid
// refresh, wave displacement and reference shading.
//
// The host loop is single threaded and frame paced; the per-vertex stages
// are data-parallel maps over independent records with no shared mutable
// state. The same pure evaluators back both this CPU path and the GLSL
// path, so either produces identical surfaces for identical inputs.
package surface

import (
	"runtime"
	"sync"

	"github.com/Faultbox/oceangrid/internal/engine/cubemap"
	"github.com/Faultbox/oceangrid/internal/engine/projgrid"
	"github.com/Faultbox/oceangrid/internal/engine/shading"
	"github.com/Faultbox/oceangrid/internal/engine/waves"
	"github.com/Faultbox/oceangrid/pkg/math"
)

// FrameState is the read-only snapshot handed to the frame's stages. It is
// built once per frame in the host update phase; wave and shading tuning
// never touches a snapshot after it is taken.
type FrameState struct {
	CameraPos     math.Vec3
	CameraForward math.Vec3
	ViewProj      math.Mat4
	Time          float32
	LightDir      math.Vec3

	Field   waves.Field
	Shading shading.Params
}

// Result holds the displaced surface for one frame. Grid is the flat base
// mesh (owned by the generator's cache); Positions and Normals are the
// displaced per-vertex outputs and belong to this Result alone.
type Result struct {
	Grid      *projgrid.Mesh
	Positions []math.Vec3
	Normals   []math.Vec3
	Colors    []shading.RGBA
}

// Pipeline owns the grid generator cache and an optional environment map.
type Pipeline struct {
	grid    *projgrid.Generator
	env     *cubemap.Map
	workers int
}

// New creates a pipeline with the given grid configuration.
func New(cfg projgrid.Config) *Pipeline {
	return &Pipeline{
		grid:    projgrid.NewGenerator(cfg),
		workers: runtime.NumCPU(),
	}
}

// SetEnvironment binds or clears the reflection cubemap. Call only between
// frames.
func (p *Pipeline) SetEnvironment(m *cubemap.Map) {
	p.env = m
}

// Environment returns the bound cubemap, or nil.
func (p *Pipeline) Environment() *cubemap.Map {
	return p.env
}

// Grid refreshes the projected grid cache for the frame's camera and
// returns the flat base mesh. The GLSL path displaces it on the GPU, so no
// per-vertex work happens here. The returned mesh is the generator's cached
// snapshot; callers can compare pointers across frames to skip re-uploads.
func (p *Pipeline) Grid(frame FrameState) *projgrid.Mesh {
	return p.grid.Mesh(frame.CameraPos, frame.CameraForward, frame.ViewProj)
}

// Displace refreshes the projected grid for the frame's camera and applies
// wave displacement to every vertex in parallel.
func (p *Pipeline) Displace(frame FrameState) *Result {
	grid := p.grid.Mesh(frame.CameraPos, frame.CameraForward, frame.ViewProj)

	n := grid.VertexCount()
	res := &Result{
		Grid:      grid,
		Positions: make([]math.Vec3, n),
		Normals:   make([]math.Vec3, n),
	}

	parallelFor(n, p.workers, func(i int) {
		base := grid.Positions[i]
		offset, normal := frame.Field.Evaluate(base.XZ(), frame.Time)
		res.Positions[i] = base.Add(offset)
		res.Normals[i] = normal
	})

	return res
}

// ShadeVertices runs the reflectance compositor at every displaced vertex
// in parallel. This is the CPU reference of the fragment stage; the GLSL
// path evaluates the same math per pixel.
func (p *Pipeline) ShadeVertices(frame FrameState, res *Result) {
	refl := shading.SelectReflectionSource(frame.Shading, p.env)

	if res.Colors == nil {
		res.Colors = make([]shading.RGBA, len(res.Positions))
	}

	parallelFor(len(res.Positions), p.workers, func(i int) {
		res.Colors[i] = shading.Shade(
			res.Normals[i], res.Positions[i],
			frame.CameraPos, frame.LightDir,
			frame.Shading, refl,
		)
	})
}

// parallelFor splits [0, n) into contiguous chunks, one per worker, and
// waits for all of them. fn must be free of shared mutable state.
func parallelFor(n, workers int, fn func(i int)) {
	if workers < 1 {
		workers = 1
	}
	if workers > n {
		workers = n
	}
	if workers <= 1 {
		for i := 0; i < n; i++ {
			fn(i)
		}
		return
	}

	chunk := (n + workers - 1) / workers
	var wg sync.WaitGroup
	for start := 0; start < n; start += chunk {
		end := start + chunk
		if end > n {
			end = n
		}
		wg.Add(1)
		go func(start, end int) {
			defer wg.Done()
			for i := start; i < end; i++ {
				fn(i)
			}
		}(start, end)
	}
	wg.Wait()
}
