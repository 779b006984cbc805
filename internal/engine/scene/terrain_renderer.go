package scene

import (
	"errors"
	"fmt"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/mathgl/mgl32"

	"github.com/Faultbox/terrain-viewer/internal/engine/frame"
	"github.com/Faultbox/terrain-viewer/internal/engine/lighting"
	"github.com/Faultbox/terrain-viewer/internal/engine/scene/shaders"
	"github.com/Faultbox/terrain-viewer/internal/engine/shader"
	"github.com/Faultbox/terrain-viewer/internal/engine/terrain"
)

// Vertex attribute locations shared with terrain.vert.
const (
	attrPosition = 0
	attrNormal   = 1
	attrColor    = 2
)

var errNoMesh = errors.New("scene: no terrain mesh")

// meshBuffers is one complete set of GPU buffers for a terrain mesh.
type meshBuffers struct {
	vao        uint32
	vbos       [3]uint32 // positions, normals, colors
	ebo        uint32
	indexCount int32
}

func (b *meshBuffers) delete() {
	if b.vao != 0 {
		gl.DeleteVertexArrays(1, &b.vao)
		b.vao = 0
	}
	for i := range b.vbos {
		if b.vbos[i] != 0 {
			gl.DeleteBuffers(1, &b.vbos[i])
			b.vbos[i] = 0
		}
	}
	if b.ebo != 0 {
		gl.DeleteBuffers(1, &b.ebo)
		b.ebo = 0
	}
	b.indexCount = 0
}

// TerrainRenderer draws the terrain mesh with per-vertex colour and one
// directional light.
type TerrainRenderer struct {
	program *shader.Program

	buffers meshBuffers
	mesh    *terrain.Mesh
}

// NewTerrainRenderer creates a new terrain renderer.
func NewTerrainRenderer() (*TerrainRenderer, error) {
	program, err := shader.New(shaders.TerrainVertexShader, shaders.TerrainFragmentShader)
	if err != nil {
		return nil, fmt.Errorf("terrain shader: %w", err)
	}
	return &TerrainRenderer{program: program}, nil
}

// Upload builds a fresh buffer set for m and swaps it in.
func (tr *TerrainRenderer) Upload(m *terrain.Mesh) error {
	if m == nil {
		return errNoMesh
	}

	var next meshBuffers
	gl.GenVertexArrays(1, &next.vao)
	gl.BindVertexArray(next.vao)

	gl.GenBuffers(3, &next.vbos[0])
	uploadAttribute(next.vbos[0], attrPosition, m.Vertices)
	uploadAttribute(next.vbos[1], attrNormal, m.Normals)
	uploadAttribute(next.vbos[2], attrColor, m.Colors)

	gl.GenBuffers(1, &next.ebo)
	gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, next.ebo)
	if len(m.Indices) > 0 {
		gl.BufferData(gl.ELEMENT_ARRAY_BUFFER, len(m.Indices)*4, gl.Ptr(m.Indices), gl.STATIC_DRAW)
	}
	next.indexCount = int32(len(m.Indices))

	gl.BindVertexArray(0)

	if code := gl.GetError(); code != gl.NO_ERROR {
		next.delete()
		return fmt.Errorf("uploading terrain buffers: gl error 0x%x", code)
	}

	old := tr.buffers
	tr.buffers = next
	tr.mesh = m
	old.delete()
	return nil
}

func uploadAttribute(vbo uint32, location uint32, data []float32) {
	gl.BindBuffer(gl.ARRAY_BUFFER, vbo)
	if len(data) > 0 {
		gl.BufferData(gl.ARRAY_BUFFER, len(data)*4, gl.Ptr(data), gl.STATIC_DRAW)
	}
	gl.VertexAttribPointerWithOffset(location, 3, gl.FLOAT, false, 3*4, 0)
	gl.EnableVertexAttribArray(location)
}

// Render draws the bound mesh as indexed triangles.
func (tr *TerrainRenderer) Render(projection mgl32.Mat4, f frame.Frame, light lighting.Light, mat lighting.Material) {
	if tr.buffers.vao == 0 || tr.buffers.indexCount == 0 {
		return
	}

	p := tr.program
	p.Use()

	mv := f.ModelView
	gl.UniformMatrix4fv(p.Uniform("uProjection"), 1, false, &projection[0])
	gl.UniformMatrix4fv(p.Uniform("uModelView"), 1, false, &mv[0])
	gl.Uniform3fv(p.Uniform("uLightDir"), 1, &f.LightDirEye[0])
	gl.Uniform3fv(p.Uniform("uGlobalAmbient"), 1, &light.Global[0])
	gl.Uniform3fv(p.Uniform("uAmbient"), 1, &light.Ambient[0])
	gl.Uniform1f(p.Uniform("uDiffuse"), light.Diffuse)
	gl.Uniform1f(p.Uniform("uSpecular"), light.Specular)
	gl.Uniform1f(p.Uniform("uMaterialSpecular"), mat.Specular)
	gl.Uniform1f(p.Uniform("uShininess"), mat.Shininess)

	count := tr.buffers.indexCount
	if n := int32(f.IndexCount); n < count {
		count = n
	}

	gl.BindVertexArray(tr.buffers.vao)
	gl.DrawElements(gl.TRIANGLES, count, gl.UNSIGNED_INT, nil)
	gl.BindVertexArray(0)
}

// Destroy releases all resources.
func (tr *TerrainRenderer) Destroy() {
	tr.buffers.delete()
	tr.mesh = nil
	if tr.program != nil {
		tr.program.Delete()
	}
}
