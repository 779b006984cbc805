// Package frame plans what the scene renderer draws each tick. Planning is
// pure math over a snapshot of the viewer state; all GL calls live in the
// scene package.
package frame

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/Faultbox/terrain-viewer/internal/engine/camera"
	"github.com/Faultbox/terrain-viewer/internal/engine/lighting"
	"github.com/Faultbox/terrain-viewer/internal/engine/terrain"
	"github.com/Faultbox/terrain-viewer/internal/engine/water"
)

// Projection parameters.
const (
	FieldOfView float32 = 45 // Vertical, degrees
	Near        float32 = 0.1
	Far         float32 = 100
)

// ClearColor is the background colour.
var ClearColor = [4]float32{0.08, 0.08, 0.16, 1}

// State is everything the planner reads for one frame.
type State struct {
	Camera     camera.State
	Light      lighting.Angles
	WaterLevel float32
	Mesh       *terrain.Mesh // nil until the first build is published
}

// Frame is the draw plan for one tick.
type Frame struct {
	ModelView mgl32.Mat4

	// LightDir points towards the light in world space; LightDirEye is the
	// same direction carried through the model-view rotation.
	LightDir    mgl32.Vec3
	LightDirEye mgl32.Vec3

	DrawTerrain bool
	Mesh        *terrain.Mesh
	IndexCount  int

	Water      water.Plane
	WaterColor mgl32.Vec4
}

// Plan builds the draw plan for s.
func Plan(s State) Frame {
	mv := ModelView(s.Camera)

	dir := mgl32.Vec3(lighting.Direction(s.Light))
	eye := mv.Mat3().Mul3x1(dir)

	f := Frame{
		ModelView:   mv,
		LightDir:    dir,
		LightDirEye: eye,
		Water:       water.BuildPlane(s.WaterLevel),
		WaterColor:  mgl32.Vec4(water.Color),
	}
	if s.Mesh != nil {
		f.DrawTerrain = true
		f.Mesh = s.Mesh
		f.IndexCount = s.Mesh.IndexCount()
	}
	return f
}

// ModelView returns T(0, 0, -zoom) · Rx(rotX) · Ry(rotY).
func ModelView(c camera.State) mgl32.Mat4 {
	return mgl32.Translate3D(0, 0, -c.Zoom).
		Mul4(mgl32.HomogRotate3DX(mgl32.DegToRad(c.RotationX))).
		Mul4(mgl32.HomogRotate3DY(mgl32.DegToRad(c.RotationY)))
}

// Projection returns a symmetric perspective frustum for a viewport of the
// given size. A height below 1 is treated as 1.
func Projection(width, height int) mgl32.Mat4 {
	if height < 1 {
		height = 1
	}
	aspect := float32(width) / float32(height)

	fH := float32(math.Tan(float64(FieldOfView)/360*math.Pi)) * Near
	fW := fH * aspect
	return mgl32.Frustum(-fW, fW, -fH, fH, Near, Far)
}
