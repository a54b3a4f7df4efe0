// Package config handles renderer configuration loading and management.
package config

import (
	"github.com/Faultbox/oceangrid/internal/engine/projgrid"
	"github.com/Faultbox/oceangrid/internal/engine/shading"
	"github.com/Faultbox/oceangrid/internal/engine/waves"
	"github.com/Faultbox/oceangrid/pkg/math"
)

// Config holds all renderer settings.
type Config struct {
	Graphics GraphicsConfig `yaml:"graphics"`
	Grid     GridConfig     `yaml:"grid"`
	Ocean    OceanConfig    `yaml:"ocean"`
	Shading  ShadingConfig  `yaml:"shading"`
	Light    LightConfig    `yaml:"light"`
	Logging  LoggingConfig  `yaml:"logging"`
}

// GraphicsConfig holds display settings.
type GraphicsConfig struct {
	Width      int  `yaml:"width"`
	Height     int  `yaml:"height"`
	Fullscreen bool `yaml:"fullscreen"`
	VSync      bool `yaml:"vsync"`
	ShowFPS    bool `yaml:"show_fps"`
}

// GridConfig holds projected grid settings.
type GridConfig struct {
	Resolution      int     `yaml:"resolution"`
	MaxDistance     float32 `yaml:"max_distance"`
	SurfaceHeight   float32 `yaml:"surface_height"`
	UpdateThreshold float32 `yaml:"update_threshold"`
}

// WaveConfig holds the parameters of a single Gerstner wave.
type WaveConfig struct {
	Direction  [2]float32 `yaml:"direction"`
	Steepness  float32    `yaml:"steepness"`
	Wavelength float32    `yaml:"wavelength"`
	Amplitude  float32    `yaml:"amplitude"`
	Speed      float32    `yaml:"speed"`
}

// OceanConfig holds the wave field settings.
type OceanConfig struct {
	Waves       []WaveConfig `yaml:"waves"`
	ActiveCount int          `yaml:"active_count"`
}

// ShadingConfig holds surface shading settings.
type ShadingConfig struct {
	DeepColor    [4]float32 `yaml:"deep_color"`
	ShallowColor [4]float32 `yaml:"shallow_color"`
	SkyColor     [4]float32 `yaml:"sky_color"`

	FresnelF0    float32 `yaml:"fresnel_f0"`
	FresnelPower float32 `yaml:"fresnel_power"`
	FresnelBias  float32 `yaml:"fresnel_bias"`

	// UseEnvironmentMap enables cubemap reflection when EnvironmentFaces
	// are configured and load successfully.
	UseEnvironmentMap bool `yaml:"use_environment_map"`
	// EnvironmentFaces are the six cubemap face image paths in OpenGL
	// order (+X, -X, +Y, -Y, +Z, -Z).
	EnvironmentFaces []string `yaml:"environment_faces"`
}

// LightConfig holds sun direction angles in degrees.
type LightConfig struct {
	SunAzimuth   float32 `yaml:"sun_azimuth"`
	SunElevation float32 `yaml:"sun_elevation"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level   string `yaml:"level"`
	LogFile string `yaml:"log_file"`
}

// Default returns a Config with the standard three-wave open ocean.
func Default() *Config {
	return &Config{
		Graphics: GraphicsConfig{
			Width:      1280,
			Height:     720,
			Fullscreen: false,
			VSync:      true,
			ShowFPS:    false,
		},
		Grid: GridConfig{
			Resolution:      128,
			MaxDistance:     2000,
			SurfaceHeight:   0,
			UpdateThreshold: 0.5,
		},
		Ocean: OceanConfig{
			Waves: []WaveConfig{
				{Direction: [2]float32{1, 0}, Steepness: 0.5, Wavelength: 60, Amplitude: 2, Speed: 1},
				{Direction: [2]float32{0.7, 0.7}, Steepness: 0.6, Wavelength: 31, Amplitude: 1, Speed: 1.2},
				{Direction: [2]float32{-0.3, 0.9}, Steepness: 0.4, Wavelength: 18, Amplitude: 0.5, Speed: 0.9},
			},
			ActiveCount: 3,
		},
		Shading: ShadingConfig{
			DeepColor:    [4]float32{0, 0.1, 0.3, 1},
			ShallowColor: [4]float32{0, 0.4, 0.5, 1},
			SkyColor:     [4]float32{0.6, 0.8, 1, 1},
			FresnelF0:    0.02,
			FresnelPower: 5,
			FresnelBias:  0,
		},
		Light: LightConfig{
			SunAzimuth:   45,
			SunElevation: 60,
		},
		Logging: LoggingConfig{
			Level:   "info",
			LogFile: "",
		},
	}
}

// Field converts the ocean settings to a wave field, normalizing wave
// directions and truncating past the field capacity.
func (o OceanConfig) Field() waves.Field {
	var ws []waves.Wave
	for _, w := range o.Waves {
		ws = append(ws, waves.New(
			math.Vec2{X: w.Direction[0], Y: w.Direction[1]},
			w.Steepness, w.Wavelength, w.Amplitude, w.Speed,
		))
	}
	f := waves.NewField(ws...)
	if o.ActiveCount >= 0 && o.ActiveCount < f.ActiveCount {
		f.ActiveCount = o.ActiveCount
	}
	return f
}

// Params converts the shading settings to compositor parameters.
func (s ShadingConfig) Params() shading.Params {
	return shading.Params{
		DeepColor:         rgba(s.DeepColor),
		ShallowColor:      rgba(s.ShallowColor),
		SkyColor:          rgba(s.SkyColor),
		FresnelF0:         s.FresnelF0,
		FresnelPower:      s.FresnelPower,
		FresnelBias:       s.FresnelBias,
		UseEnvironmentMap: s.UseEnvironmentMap,
	}
}

// GridConfig converts the grid settings for the mesh generator.
func (g GridConfig) GridConfig() projgrid.Config {
	cfg := projgrid.DefaultConfig()
	if g.Resolution > 0 {
		cfg.Resolution = g.Resolution
	}
	if g.MaxDistance > 0 {
		cfg.MaxDistance = g.MaxDistance
	}
	cfg.SurfaceHeight = g.SurfaceHeight
	if g.UpdateThreshold > 0 {
		cfg.UpdateThreshold = g.UpdateThreshold
	}
	return cfg
}

func rgba(c [4]float32) shading.RGBA {
	return shading.RGBA{R: c[0], G: c[1], B: c[2], A: c[3]}
}
