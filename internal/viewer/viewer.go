// Package viewer implements the interactive ocean viewer loop.
package viewer

import (
	"fmt"
	"time"

	"github.com/veandco/go-sdl2/sdl"
	"go.uber.org/zap"

	"github.com/Faultbox/oceangrid/internal/config"
	"github.com/Faultbox/oceangrid/internal/engine/camera"
	"github.com/Faultbox/oceangrid/internal/engine/cubemap"
	"github.com/Faultbox/oceangrid/internal/engine/input"
	"github.com/Faultbox/oceangrid/internal/engine/lighting"
	"github.com/Faultbox/oceangrid/internal/engine/projgrid"
	"github.com/Faultbox/oceangrid/internal/engine/renderer"
	"github.com/Faultbox/oceangrid/internal/engine/scene"
	"github.com/Faultbox/oceangrid/internal/engine/shading"
	"github.com/Faultbox/oceangrid/internal/engine/surface"
	"github.com/Faultbox/oceangrid/internal/engine/waves"
	"github.com/Faultbox/oceangrid/internal/engine/window"
	"github.com/Faultbox/oceangrid/internal/logger"
	"github.com/Faultbox/oceangrid/pkg/math"
)

const windowTitle = "Ocean Grid"

// Viewer owns the window, the frame loop and the per-frame ocean state.
// Wave and shading parameters are mutated only between frames, from the
// event handlers; the render stages see an immutable snapshot.
type Viewer struct {
	cfg *config.Config

	window   *window.Window
	renderer *renderer.Renderer
	input    *input.Input
	camera   *camera.OrbitCamera
	pipeline *surface.Pipeline
	ocean    *scene.OceanRenderer

	field    waves.Field
	params   shading.Params
	lightDir math.Vec3

	lastGrid *projgrid.Mesh
	time     float32
	running  bool
	dragging bool
	panning  bool
}

// New creates the viewer: window, OpenGL state, ocean renderer and the
// CPU-side frame pipeline.
func New(cfg *config.Config) (*Viewer, error) {
	v := &Viewer{
		cfg:      cfg,
		field:    cfg.Ocean.Field(),
		params:   cfg.Shading.Params(),
		lightDir: lighting.SunDirection(cfg.Light.SunAzimuth, cfg.Light.SunElevation),
	}

	var err error
	v.window, err = window.New(window.Config{
		Title:      windowTitle,
		Width:      cfg.Graphics.Width,
		Height:     cfg.Graphics.Height,
		Fullscreen: cfg.Graphics.Fullscreen,
		VSync:      cfg.Graphics.VSync,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create window: %w", err)
	}

	// Renderer initializes OpenGL; everything GL-dependent comes after.
	v.renderer, err = renderer.New(renderer.Config{
		Width:  cfg.Graphics.Width,
		Height: cfg.Graphics.Height,
	})
	if err != nil {
		v.window.Close()
		return nil, fmt.Errorf("failed to create renderer: %w", err)
	}
	v.renderer.SetClearColor(v.params.SkyColor.R, v.params.SkyColor.G, v.params.SkyColor.B)

	v.ocean, err = scene.NewOceanRenderer()
	if err != nil {
		v.window.Close()
		return nil, fmt.Errorf("failed to create ocean renderer: %w", err)
	}

	v.input = input.New()
	v.camera = camera.New()
	v.pipeline = surface.New(cfg.Grid.GridConfig())

	v.loadEnvironment()

	logger.Info("viewer initialized",
		zap.Int("grid_resolution", cfg.Grid.Resolution),
		zap.Int("active_waves", v.field.ActiveCount),
	)
	return v, nil
}

// loadEnvironment loads the reflection cubemap when configured. A missing
// or broken map is not fatal; rendering falls back to the sky color.
func (v *Viewer) loadEnvironment() {
	faces := v.cfg.Shading.EnvironmentFaces
	if len(faces) != 6 {
		if len(faces) != 0 {
			logger.Warn("environment map needs exactly 6 face paths",
				zap.Int("got", len(faces)))
		}
		return
	}

	var paths [6]string
	copy(paths[:], faces)

	m, err := cubemap.Load(paths)
	if err != nil {
		logger.Warn("failed to load environment map", zap.Error(err))
		return
	}

	v.pipeline.SetEnvironment(m)
	v.ocean.SetEnvironmentMap(m)
	logger.Info("environment map loaded", zap.Int("face_size", m.Size()))
}

// Run starts the frame loop and blocks until quit.
func (v *Viewer) Run() error {
	v.running = true

	lastTime := time.Now()
	frameCount := 0
	fpsTimer := time.Now()

	logger.Info("starting viewer loop")

	for v.running {
		now := time.Now()
		dt := float32(now.Sub(lastTime).Seconds())
		lastTime = now

		if v.input.Update() {
			break
		}
		v.handleEvents()

		v.time += dt
		frame := v.frameState()

		// The base grid only rebuilds when the camera moved past its
		// thresholds; pointer identity tells us when to re-upload.
		grid := v.pipeline.Grid(frame)
		if grid != v.lastGrid {
			v.ocean.UploadMesh(grid)
			v.lastGrid = grid
		}

		uniforms := surface.PackUniforms(v.field, v.params, v.time, v.ocean.HasEnvironmentMap())

		v.renderer.Begin()
		v.ocean.Render(frame.ViewProj, frame.CameraPos, frame.LightDir, uniforms)
		v.window.SwapBuffers()

		frameCount++
		if time.Since(fpsTimer) >= time.Second {
			if v.cfg.Graphics.ShowFPS {
				v.window.SetTitle(fmt.Sprintf("%s - %d fps", windowTitle, frameCount))
			}
			logger.Debug("fps", zap.Int("frames", frameCount))
			frameCount = 0
			fpsTimer = time.Now()
		}
	}

	return nil
}

// frameState snapshots camera, waves and shading for one frame.
func (v *Viewer) frameState() surface.FrameState {
	st := v.camera.Snapshot(v.window.AspectRatio())
	return surface.FrameState{
		CameraPos:     st.Position,
		CameraForward: st.Forward,
		ViewProj:      st.ViewProj,
		Time:          v.time,
		LightDir:      v.lightDir,
		Field:         v.field,
		Shading:       v.params,
	}
}

func (v *Viewer) handleEvents() {
	for _, e := range v.input.Events() {
		switch e.Type {
		case input.EventWindowResize:
			v.renderer.Resize(e.Width, e.Height)

		case input.EventKeyDown:
			v.handleKey(e.Key)

		case input.EventMouseDown:
			switch e.Button {
			case sdl.BUTTON_LEFT:
				v.dragging = true
			case sdl.BUTTON_RIGHT, sdl.BUTTON_MIDDLE:
				v.panning = true
			}

		case input.EventMouseUp:
			switch e.Button {
			case sdl.BUTTON_LEFT:
				v.dragging = false
			case sdl.BUTTON_RIGHT, sdl.BUTTON_MIDDLE:
				v.panning = false
			}

		case input.EventMouseMove:
			if v.dragging {
				v.camera.HandleDrag(float32(e.RelX), float32(e.RelY))
			} else if v.panning {
				v.camera.HandlePan(float32(e.RelY), float32(-e.RelX))
			}

		case input.EventMouseWheel:
			v.camera.HandleZoom(e.WheelY)
		}
	}
}

// handleKey dispatches hotkeys: ESC quits, number keys switch presets.
func (v *Viewer) handleKey(key sdl.Scancode) {
	switch key {
	case sdl.SCANCODE_ESCAPE:
		v.running = false
	case sdl.SCANCODE_1, sdl.SCANCODE_2, sdl.SCANCODE_3, sdl.SCANCODE_4, sdl.SCANCODE_5:
		presets := config.Presets()
		idx := int(key - sdl.SCANCODE_1)
		if idx < len(presets) {
			v.applyPreset(presets[idx])
		}
	}
}

// applyPreset swaps wave and shading parameters between frames. The current
// frame's snapshot is unaffected; the next frame picks up the new values.
func (v *Viewer) applyPreset(name string) {
	if err := config.ApplyPreset(v.cfg, name); err != nil {
		logger.Warn("preset not applied", zap.Error(err))
		return
	}
	v.field = v.cfg.Ocean.Field()
	v.params = v.cfg.Shading.Params()
	v.renderer.SetClearColor(v.params.SkyColor.R, v.params.SkyColor.G, v.params.SkyColor.B)
	logger.Info("preset applied", zap.String("name", name))
}

// Close releases all resources.
func (v *Viewer) Close() {
	logger.Info("closing viewer")
	if v.ocean != nil {
		v.ocean.Destroy()
	}
	if v.window != nil {
		v.window.Close()
	}
}
