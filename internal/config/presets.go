package config

import "fmt"

// Preset names, roughly ordered from simplest to richest scene.
const (
	PresetFlat          = "flat"
	PresetSingleSwell   = "single_swell"
	PresetMultiWave     = "multi_wave"
	PresetFresnelDemo   = "fresnel_demo"
	PresetSkyboxReflect = "skybox_reflect"
)

// Presets lists the available preset names.
func Presets() []string {
	return []string{
		PresetFlat,
		PresetSingleSwell,
		PresetMultiWave,
		PresetFresnelDemo,
		PresetSkyboxReflect,
	}
}

// ApplyPreset overwrites the ocean and shading sections of cfg with a
// named scene preset. Graphics, grid and logging settings are untouched.
func ApplyPreset(cfg *Config, name string) error {
	switch name {
	case PresetFlat:
		cfg.Ocean = OceanConfig{ActiveCount: 0}
	case PresetSingleSwell:
		cfg.Ocean = OceanConfig{
			Waves: []WaveConfig{
				{Direction: [2]float32{1, 0}, Steepness: 0.5, Wavelength: 60, Amplitude: 2, Speed: 1},
			},
			ActiveCount: 1,
		}
	case PresetMultiWave:
		cfg.Ocean = Default().Ocean
	case PresetFresnelDemo:
		cfg.Ocean = Default().Ocean
		cfg.Shading.DeepColor = [4]float32{0, 0.05, 0.15, 1}
		cfg.Shading.ShallowColor = [4]float32{0, 0.3, 0.4, 1}
		cfg.Shading.SkyColor = [4]float32{0.6, 0.8, 1, 1}
		cfg.Shading.FresnelF0 = 0.02
		cfg.Shading.FresnelPower = 5
		cfg.Shading.FresnelBias = 0
		cfg.Shading.UseEnvironmentMap = false
	case PresetSkyboxReflect:
		cfg.Ocean = Default().Ocean
		cfg.Shading.UseEnvironmentMap = true
	default:
		return fmt.Errorf("unknown preset %q", name)
	}
	return nil
}
