package lighting

import (
	"math"
	"testing"
)

func vecNear(a, b [3]float32) bool {
	for i := range a {
		if math.Abs(float64(a[i]-b[i])) > 1e-5 {
			return false
		}
	}
	return true
}

func TestDirection(t *testing.T) {
	half := float32(math.Sqrt2 / 2)
	tests := []struct {
		name   string
		angles Angles
		want   [3]float32
	}{
		{"horizon along x", Angles{0, 0}, [3]float32{1, 0, 0}},
		{"zenith", Angles{90, 0}, [3]float32{0, 1, 0}},
		{"horizon along z", Angles{0, 90}, [3]float32{0, 0, 1}},
		{"below horizon", Angles{-90, 0}, [3]float32{0, -1, 0}},
		{"defaults", DefaultAngles(), [3]float32{0.5, half, 0.5}},
		{"full turn", Angles{0, 360}, [3]float32{1, 0, 0}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Direction(tt.angles); !vecNear(got, tt.want) {
				t.Errorf("Direction(%+v) = %v, want %v", tt.angles, got, tt.want)
			}
		})
	}
}

func TestDirectionUnitLength(t *testing.T) {
	for x := float32(-90); x <= 90; x += 15 {
		for y := float32(0); y <= 360; y += 30 {
			d := Direction(Angles{x, y})
			l := math.Sqrt(float64(d[0]*d[0] + d[1]*d[1] + d[2]*d[2]))
			if math.Abs(l-1) > 1e-5 {
				t.Errorf("Direction(%f, %f) has length %f", x, y, l)
			}
		}
	}
}

func TestDefaults(t *testing.T) {
	l := DefaultLight()
	if l.Ambient != [3]float32{0.3, 0.3, 0.35} || l.Diffuse != 0.8 || l.Specular != 1 {
		t.Errorf("unexpected default light %+v", l)
	}
	m := DefaultMaterial()
	if m.Specular != 0.3 || m.Shininess != 32 {
		t.Errorf("unexpected default material %+v", m)
	}
}
