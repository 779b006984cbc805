package frame

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/Faultbox/terrain-viewer/internal/engine/camera"
	"github.com/Faultbox/terrain-viewer/internal/engine/lighting"
	"github.com/Faultbox/terrain-viewer/internal/engine/terrain"
	"github.com/Faultbox/terrain-viewer/internal/engine/water"
)

const eps = 1e-4

// near compares component-wise with an absolute tolerance. mgl32's
// ApproxEqualThreshold turns relative when an operand is exactly zero.
func near(got, want []float32) bool {
	if len(got) != len(want) {
		return false
	}
	for i := range got {
		if math.Abs(float64(got[i]-want[i])) > eps {
			return false
		}
	}
	return true
}

func TestModelViewOrigin(t *testing.T) {
	mv := ModelView(camera.DefaultState())
	got := mv.Mul4x1(mgl32.Vec4{0, 0, 0, 1})
	if !near(got[:], []float32{0, 0, -2.5, 1}) {
		t.Errorf("origin maps to %v, want (0,0,-2.5,1)", got)
	}
}

func TestModelViewRotationOrder(t *testing.T) {
	tests := []struct {
		name  string
		state camera.State
		in    mgl32.Vec4
		want  mgl32.Vec4
	}{
		{
			name:  "translate only",
			state: camera.State{Zoom: 3},
			in:    mgl32.Vec4{1, 0, 0, 1},
			want:  mgl32.Vec4{1, 0, -3, 1},
		},
		{
			name:  "yaw turns +x to -z",
			state: camera.State{RotationY: 90, Zoom: 2},
			in:    mgl32.Vec4{1, 0, 0, 1},
			want:  mgl32.Vec4{0, 0, -3, 1},
		},
		{
			name:  "pitch turns +y to +z",
			state: camera.State{RotationX: 90, Zoom: 2},
			in:    mgl32.Vec4{0, 1, 0, 1},
			want:  mgl32.Vec4{0, 0, -1, 1},
		},
		{
			// Yaw is applied to the model first, then pitch.
			name:  "yaw then pitch",
			state: camera.State{RotationX: 90, RotationY: 90, Zoom: 1},
			in:    mgl32.Vec4{1, 0, 0, 1},
			want:  mgl32.Vec4{0, 1, -1, 1},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ModelView(tt.state).Mul4x1(tt.in)
			if !near(got[:], tt.want[:]) {
				t.Errorf("got %v, want %v", got, tt.want)
			}
		})
	}
}

func TestPlanWithoutMesh(t *testing.T) {
	f := Plan(State{Camera: camera.DefaultState(), Light: lighting.DefaultAngles(), WaterLevel: 0.8})

	if f.DrawTerrain || f.Mesh != nil || f.IndexCount != 0 {
		t.Errorf("expected no terrain draw, got draw=%v count=%d", f.DrawTerrain, f.IndexCount)
	}
	if math.Abs(float64(f.Water.Height-0.15)) > 1e-6 {
		t.Errorf("expected water at 0.15, got %f", f.Water.Height)
	}
	if f.WaterColor != mgl32.Vec4(water.Color) {
		t.Errorf("unexpected water colour %v", f.WaterColor)
	}
}

func TestPlanWithMesh(t *testing.T) {
	m := &terrain.Mesh{Indices: make([]uint32, 54)}
	f := Plan(State{Camera: camera.DefaultState(), Mesh: m})

	if !f.DrawTerrain || f.Mesh != m {
		t.Fatal("expected terrain draw with the published mesh")
	}
	if f.IndexCount != 54 {
		t.Errorf("expected 54 indices, got %d", f.IndexCount)
	}
}

func TestPlanLightDirection(t *testing.T) {
	angles := lighting.Angles{X: 30, Y: 120}
	world := mgl32.Vec3(lighting.Direction(angles))

	// Without rotation the eye-space direction equals the world direction.
	f := Plan(State{Camera: camera.State{Zoom: 2}, Light: angles})
	if !near(f.LightDir[:], world[:]) {
		t.Errorf("world light %v, want %v", f.LightDir, world)
	}
	if !near(f.LightDirEye[:], world[:]) {
		t.Errorf("eye light %v, want %v", f.LightDirEye, world)
	}

	// The light is attached to the world, so it turns with the camera.
	rotated := Plan(State{Camera: camera.State{RotationY: 90, Zoom: 2}, Light: lighting.Angles{}})
	want := mgl32.Vec3{0, 0, -1}
	if !near(rotated.LightDirEye[:], want[:]) {
		t.Errorf("rotated eye light %v, want %v", rotated.LightDirEye, want)
	}
	if l := rotated.LightDirEye.Len(); math.Abs(float64(l-1)) > eps {
		t.Errorf("eye light length %f, want 1", l)
	}
}

func TestProjection(t *testing.T) {
	cot := float32(1 / math.Tan(22.5*math.Pi/180))

	p := Projection(800, 400)
	if math.Abs(float64(p[5]-cot)) > eps {
		t.Errorf("y scale %f, want %f", p[5], cot)
	}
	if math.Abs(float64(p[0]-cot/2)) > eps {
		t.Errorf("x scale %f, want %f", p[0], cot/2)
	}

	// Depth maps near to -1 and far to +1 in NDC.
	for _, tc := range []struct{ z, ndc float32 }{{-Near, -1}, {-Far, 1}} {
		clip := p.Mul4x1(mgl32.Vec4{0, 0, tc.z, 1})
		if ndc := clip[2] / clip[3]; math.Abs(float64(ndc-tc.ndc)) > 1e-3 {
			t.Errorf("depth %f maps to %f, want %f", tc.z, ndc, tc.ndc)
		}
	}
}

func TestProjectionZeroHeight(t *testing.T) {
	p := Projection(640, 0)
	want := Projection(640, 1)
	if p != want {
		t.Error("zero height should be treated as one")
	}
	for _, v := range p {
		if math.IsNaN(float64(v)) || math.IsInf(float64(v), 0) {
			t.Fatalf("projection contains %v", v)
		}
	}
}
