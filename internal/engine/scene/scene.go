// Package scene draws a planned frame with OpenGL: the lit terrain mesh and
// the translucent water plane.
package scene

import (
	"fmt"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/mathgl/mgl32"
	"go.uber.org/zap"

	"github.com/Faultbox/terrain-viewer/internal/engine/frame"
	"github.com/Faultbox/terrain-viewer/internal/engine/lighting"
	"github.com/Faultbox/terrain-viewer/internal/engine/terrain"
	"github.com/Faultbox/terrain-viewer/internal/logger"
)

// Renderer owns the GL state for one terrain and one water plane.
// All methods must be called on the thread holding the GL context.
type Renderer struct {
	terrain *TerrainRenderer
	water   *WaterRenderer

	Light    lighting.Light
	Material lighting.Material

	// Wireframe draws the terrain as lines.
	Wireframe bool

	projection    mgl32.Mat4
	width, height int32
}

// New initializes OpenGL and compiles the scene shaders.
// It must be called after the GL context is current.
func New(width, height int) (*Renderer, error) {
	if err := gl.Init(); err != nil {
		return nil, fmt.Errorf("initializing OpenGL: %w", err)
	}

	logger.Info("OpenGL initialized",
		zap.String("version", gl.GoStr(gl.GetString(gl.VERSION))),
		zap.String("renderer", gl.GoStr(gl.GetString(gl.RENDERER))),
	)

	r := &Renderer{
		Light:    lighting.DefaultLight(),
		Material: lighting.DefaultMaterial(),
	}

	var err error
	r.terrain, err = NewTerrainRenderer()
	if err != nil {
		return nil, fmt.Errorf("creating terrain renderer: %w", err)
	}

	r.water, err = NewWaterRenderer()
	if err != nil {
		r.Destroy()
		return nil, fmt.Errorf("creating water renderer: %w", err)
	}

	gl.Enable(gl.DEPTH_TEST)
	gl.DepthFunc(gl.LEQUAL)
	r.Resize(width, height)

	return r, nil
}

// Resize updates the viewport and the cached projection.
func (r *Renderer) Resize(width, height int) {
	if height < 1 {
		height = 1
	}
	r.width, r.height = int32(width), int32(height)
	r.projection = frame.Projection(width, height)
	gl.Viewport(0, 0, r.width, r.height)
}

// Upload replaces the terrain buffers with m. The previous buffers are
// released only after the new set is complete.
func (r *Renderer) Upload(m *terrain.Mesh) error {
	return r.terrain.Upload(m)
}

// Render draws f: clear, terrain, water, flush.
func (r *Renderer) Render(f frame.Frame) {
	c := frame.ClearColor
	gl.ClearColor(c[0], c[1], c[2], c[3])
	gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)

	if f.DrawTerrain {
		if r.Wireframe {
			gl.PolygonMode(gl.FRONT_AND_BACK, gl.LINE)
		}
		r.terrain.Render(r.projection, f, r.Light, r.Material)
		if r.Wireframe {
			gl.PolygonMode(gl.FRONT_AND_BACK, gl.FILL)
		}
	}

	r.water.Render(r.projection, f)

	gl.Flush()
}

// ReadPixels reads the back buffer as bottom-up RGBA rows.
func (r *Renderer) ReadPixels() (pixels []byte, width, height int) {
	width, height = int(r.width), int(r.height)
	pixels = make([]byte, width*height*4)

	gl.PixelStorei(gl.PACK_ALIGNMENT, 1)
	gl.ReadBuffer(gl.BACK)
	gl.ReadPixels(0, 0, r.width, r.height, gl.RGBA, gl.UNSIGNED_BYTE, gl.Ptr(pixels))
	return pixels, width, height
}

// Destroy releases all GL resources.
func (r *Renderer) Destroy() {
	if r.terrain != nil {
		r.terrain.Destroy()
		r.terrain = nil
	}
	if r.water != nil {
		r.water.Destroy()
		r.water = nil
	}
}
