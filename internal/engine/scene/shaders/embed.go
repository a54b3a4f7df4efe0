// Package shaders provides embedded GLSL shader sources.
package shaders

import _ "embed"

// OceanVertexShader displaces the projected grid with Gerstner waves and
// derives the analytic surface normal. It mirrors the CPU wave evaluator.
//
//go:embed ocean.vert
var OceanVertexShader string

// OceanFragmentShader composites the water body color with Fresnel-weighted
// reflection. It mirrors the CPU shading compositor.
//
//go:embed ocean.frag
var OceanFragmentShader string
