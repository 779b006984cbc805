package scene

import (
	"fmt"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/mathgl/mgl32"

	"github.com/Faultbox/terrain-viewer/internal/engine/frame"
	"github.com/Faultbox/terrain-viewer/internal/engine/scene/shaders"
	"github.com/Faultbox/terrain-viewer/internal/engine/shader"
)

// WaterRenderer draws the translucent water quad.
type WaterRenderer struct {
	program *shader.Program

	vao uint32
	vbo uint32

	height   float32
	uploaded bool
}

// NewWaterRenderer creates a new water renderer.
func NewWaterRenderer() (*WaterRenderer, error) {
	program, err := shader.New(shaders.WaterVertexShader, shaders.WaterFragmentShader)
	if err != nil {
		return nil, fmt.Errorf("water shader: %w", err)
	}
	wr := &WaterRenderer{program: program}

	gl.GenVertexArrays(1, &wr.vao)
	gl.BindVertexArray(wr.vao)

	gl.GenBuffers(1, &wr.vbo)
	gl.BindBuffer(gl.ARRAY_BUFFER, wr.vbo)
	gl.BufferData(gl.ARRAY_BUFFER, 4*3*4, nil, gl.DYNAMIC_DRAW)

	gl.VertexAttribPointerWithOffset(0, 3, gl.FLOAT, false, 3*4, 0)
	gl.EnableVertexAttribArray(0)

	gl.BindVertexArray(0)
	return wr, nil
}

// Render draws the water plane with alpha blending, then disables blending.
func (wr *WaterRenderer) Render(projection mgl32.Mat4, f frame.Frame) {
	if wr.vao == 0 {
		return
	}

	// Re-upload only when the level changed.
	if !wr.uploaded || f.Water.Height != wr.height {
		gl.BindBuffer(gl.ARRAY_BUFFER, wr.vbo)
		gl.BufferSubData(gl.ARRAY_BUFFER, 0, len(f.Water.Vertices)*4, gl.Ptr(f.Water.Vertices))
		wr.height = f.Water.Height
		wr.uploaded = true
	}

	p := wr.program
	p.Use()

	mv := f.ModelView
	gl.UniformMatrix4fv(p.Uniform("uProjection"), 1, false, &projection[0])
	gl.UniformMatrix4fv(p.Uniform("uModelView"), 1, false, &mv[0])
	gl.Uniform4fv(p.Uniform("uWaterColor"), 1, &f.WaterColor[0])

	gl.Enable(gl.BLEND)
	gl.BlendFunc(gl.SRC_ALPHA, gl.ONE_MINUS_SRC_ALPHA)

	gl.BindVertexArray(wr.vao)
	gl.DrawArrays(gl.TRIANGLE_FAN, 0, 4)
	gl.BindVertexArray(0)

	gl.Disable(gl.BLEND)
}

// Destroy releases all resources.
func (wr *WaterRenderer) Destroy() {
	if wr.vao != 0 {
		gl.DeleteVertexArrays(1, &wr.vao)
		wr.vao = 0
	}
	if wr.vbo != 0 {
		gl.DeleteBuffers(1, &wr.vbo)
		wr.vbo = 0
	}
	if wr.program != nil {
		wr.program.Delete()
	}
}
