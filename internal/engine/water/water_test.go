package water

import "testing"

func TestHeight(t *testing.T) {
	tests := []struct {
		level float32
		want  float32
	}{
		{0, -0.25},
		{0.5, 0},
		{0.8, 0.15},
		{1, 0.25},
	}
	for _, tt := range tests {
		got := Height(tt.level)
		if diff := got - tt.want; diff > 1e-6 || diff < -1e-6 {
			t.Errorf("Height(%f) = %f, want %f", tt.level, got, tt.want)
		}
	}
}

func TestBuildPlane(t *testing.T) {
	p := BuildPlane(1)

	if len(p.Vertices) != 12 {
		t.Fatalf("expected 4 vertices, got %d floats", len(p.Vertices))
	}
	if p.Height != 0.25 {
		t.Errorf("expected height 0.25, got %f", p.Height)
	}
	for i := 0; i < 4; i++ {
		x, y, z := p.Vertices[i*3], p.Vertices[i*3+1], p.Vertices[i*3+2]
		if y != p.Height {
			t.Errorf("vertex %d: y = %f, want %f", i, y, p.Height)
		}
		if (x != HalfExtent && x != -HalfExtent) || (z != HalfExtent && z != -HalfExtent) {
			t.Errorf("vertex %d: (%f, %f) not on the quad corners", i, x, z)
		}
	}
}

func TestColorTranslucent(t *testing.T) {
	if Color[3] <= 0 || Color[3] >= 1 {
		t.Errorf("water alpha should be translucent, got %f", Color[3])
	}
}
