// Package scene renders the ocean surface with OpenGL.
package scene

import (
	"fmt"
	"unsafe"

	"github.com/go-gl/gl/v4.1-core/gl"

	"github.com/Faultbox/oceangrid/internal/engine/cubemap"
	"github.com/Faultbox/oceangrid/internal/engine/projgrid"
	"github.com/Faultbox/oceangrid/internal/engine/scene/shaders"
	"github.com/Faultbox/oceangrid/internal/engine/shader"
	"github.com/Faultbox/oceangrid/internal/engine/surface"
	"github.com/Faultbox/oceangrid/pkg/math"
)

// vertexStride is position (3) plus texcoord (2) floats.
const vertexStride = 5

// OceanRenderer draws the projected grid ocean surface. Wave displacement
// and shading run in the shaders from the same uniform payload the CPU
// pipeline consumes.
type OceanRenderer struct {
	program uint32

	locViewProj   int32
	locWaveData   int32
	locTimeConfig int32
	locDeepColor  int32
	locShallow    int32
	locFresnel    int32
	locSkyColor   int32
	locCameraPos  int32
	locLightDir   int32
	locEnvMap     int32

	vao uint32
	vbo uint32
	ebo uint32

	indexCount int32
	vertexBuf  []float32
	envTexture uint32
	hasEnvMap  bool
}

// NewOceanRenderer compiles the ocean shaders and allocates mesh buffers.
func NewOceanRenderer() (*OceanRenderer, error) {
	r := &OceanRenderer{}

	program, err := shader.CompileProgram(shaders.OceanVertexShader, shaders.OceanFragmentShader)
	if err != nil {
		return nil, fmt.Errorf("ocean shader: %w", err)
	}
	r.program = program

	r.locViewProj = shader.GetUniform(program, "uViewProj")
	r.locWaveData = shader.GetUniform(program, "uWaveData")
	r.locTimeConfig = shader.GetUniform(program, "uTimeConfig")
	r.locDeepColor = shader.GetUniform(program, "uDeepColor")
	r.locShallow = shader.GetUniform(program, "uShallowColor")
	r.locFresnel = shader.GetUniform(program, "uFresnelParams")
	r.locSkyColor = shader.GetUniform(program, "uSkyColor")
	r.locCameraPos = shader.GetUniform(program, "uCameraPos")
	r.locLightDir = shader.GetUniform(program, "uLightDir")
	r.locEnvMap = shader.GetUniform(program, "uEnvMap")

	gl.GenVertexArrays(1, &r.vao)
	gl.BindVertexArray(r.vao)

	gl.GenBuffers(1, &r.vbo)
	gl.BindBuffer(gl.ARRAY_BUFFER, r.vbo)

	gl.VertexAttribPointerWithOffset(0, 3, gl.FLOAT, false, vertexStride*4, 0)
	gl.EnableVertexAttribArray(0)
	gl.VertexAttribPointerWithOffset(1, 2, gl.FLOAT, false, vertexStride*4, 3*4)
	gl.EnableVertexAttribArray(1)

	gl.GenBuffers(1, &r.ebo)
	gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, r.ebo)

	gl.BindVertexArray(0)

	return r, nil
}

// UploadMesh streams a projected grid mesh into the GPU buffers. The grid
// rebuilds only when the camera moves past its thresholds, so most frames
// skip this entirely.
func (r *OceanRenderer) UploadMesh(mesh *projgrid.Mesh) {
	n := mesh.VertexCount()
	if cap(r.vertexBuf) < n*vertexStride {
		r.vertexBuf = make([]float32, n*vertexStride)
	}
	buf := r.vertexBuf[:n*vertexStride]

	for i := 0; i < n; i++ {
		base := i * vertexStride
		buf[base+0] = mesh.Positions[i].X
		buf[base+1] = mesh.Positions[i].Y
		buf[base+2] = mesh.Positions[i].Z
		buf[base+3] = mesh.UVs[i].X
		buf[base+4] = mesh.UVs[i].Y
	}

	gl.BindVertexArray(r.vao)

	gl.BindBuffer(gl.ARRAY_BUFFER, r.vbo)
	gl.BufferData(gl.ARRAY_BUFFER, len(buf)*4, unsafe.Pointer(&buf[0]), gl.DYNAMIC_DRAW)

	gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, r.ebo)
	gl.BufferData(gl.ELEMENT_ARRAY_BUFFER, len(mesh.Indices)*4, unsafe.Pointer(&mesh.Indices[0]), gl.DYNAMIC_DRAW)

	gl.BindVertexArray(0)

	r.indexCount = int32(len(mesh.Indices))
}

// SetEnvironmentMap uploads the six cubemap faces. A nil map clears the
// binding so rendering falls back to the solid sky color.
func (r *OceanRenderer) SetEnvironmentMap(m *cubemap.Map) {
	if m == nil {
		if r.envTexture != 0 {
			gl.DeleteTextures(1, &r.envTexture)
			r.envTexture = 0
		}
		r.hasEnvMap = false
		return
	}

	if r.envTexture == 0 {
		gl.GenTextures(1, &r.envTexture)
	}
	gl.BindTexture(gl.TEXTURE_CUBE_MAP, r.envTexture)

	size := int32(m.Size())
	for i := 0; i < 6; i++ {
		face := m.Face(i)
		gl.TexImage2D(
			gl.TEXTURE_CUBE_MAP_POSITIVE_X+uint32(i),
			0, gl.RGBA, size, size, 0,
			gl.RGBA, gl.UNSIGNED_BYTE,
			unsafe.Pointer(&face.Pix[0]),
		)
	}

	gl.TexParameteri(gl.TEXTURE_CUBE_MAP, gl.TEXTURE_MIN_FILTER, gl.LINEAR)
	gl.TexParameteri(gl.TEXTURE_CUBE_MAP, gl.TEXTURE_MAG_FILTER, gl.LINEAR)
	gl.TexParameteri(gl.TEXTURE_CUBE_MAP, gl.TEXTURE_WRAP_S, gl.CLAMP_TO_EDGE)
	gl.TexParameteri(gl.TEXTURE_CUBE_MAP, gl.TEXTURE_WRAP_T, gl.CLAMP_TO_EDGE)
	gl.TexParameteri(gl.TEXTURE_CUBE_MAP, gl.TEXTURE_WRAP_R, gl.CLAMP_TO_EDGE)

	gl.BindTexture(gl.TEXTURE_CUBE_MAP, 0)
	r.hasEnvMap = true
}

// HasEnvironmentMap reports whether a cubemap texture is bound.
func (r *OceanRenderer) HasEnvironmentMap() bool {
	return r.hasEnvMap
}

// Render draws the ocean with the given frame uniforms. uniforms is the
// packed payload from surface.PackUniforms; its layout is the contract
// between the CPU pipeline and the shaders.
func (r *OceanRenderer) Render(viewProj math.Mat4, cameraPos, lightDir math.Vec3, uniforms [surface.UniformFloats]float32) {
	if r.indexCount == 0 {
		return
	}

	gl.UseProgram(r.program)

	gl.UniformMatrix4fv(r.locViewProj, 1, false, &viewProj[0])

	waveFloats := 8 * 4
	gl.Uniform4fv(r.locWaveData, 8, &uniforms[0])
	gl.Uniform4fv(r.locTimeConfig, 1, &uniforms[waveFloats])
	gl.Uniform4fv(r.locDeepColor, 1, &uniforms[waveFloats+4])
	gl.Uniform4fv(r.locShallow, 1, &uniforms[waveFloats+8])
	gl.Uniform4fv(r.locFresnel, 1, &uniforms[waveFloats+12])
	gl.Uniform4fv(r.locSkyColor, 1, &uniforms[waveFloats+16])

	gl.Uniform3f(r.locCameraPos, cameraPos.X, cameraPos.Y, cameraPos.Z)
	gl.Uniform3f(r.locLightDir, lightDir.X, lightDir.Y, lightDir.Z)

	if r.hasEnvMap {
		gl.ActiveTexture(gl.TEXTURE0)
		gl.BindTexture(gl.TEXTURE_CUBE_MAP, r.envTexture)
		gl.Uniform1i(r.locEnvMap, 0)
	}

	gl.Enable(gl.DEPTH_TEST)

	gl.BindVertexArray(r.vao)
	gl.DrawElements(gl.TRIANGLES, r.indexCount, gl.UNSIGNED_INT, nil)
	gl.BindVertexArray(0)
}

// Destroy releases all GPU resources.
func (r *OceanRenderer) Destroy() {
	if r.vao != 0 {
		gl.DeleteVertexArrays(1, &r.vao)
		r.vao = 0
	}
	if r.vbo != 0 {
		gl.DeleteBuffers(1, &r.vbo)
		r.vbo = 0
	}
	if r.ebo != 0 {
		gl.DeleteBuffers(1, &r.ebo)
		r.ebo = 0
	}
	if r.envTexture != 0 {
		gl.DeleteTextures(1, &r.envTexture)
		r.envTexture = 0
	}
	if r.program != 0 {
		gl.DeleteProgram(r.program)
		r.program = 0
	}
}
