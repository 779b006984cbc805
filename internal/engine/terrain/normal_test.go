package terrain

import (
	"math"
	"testing"
)

func length(n [3]float32) float64 {
	return math.Sqrt(float64(n[0]*n[0] + n[1]*n[1] + n[2]*n[2]))
}

func TestEstimateNormalUnitLength(t *testing.T) {
	field := noiseField(t, 96)
	grid, step := Dimensions(field.Size(), 40)
	for z := 0; z < grid; z++ {
		for x := 0; x < grid; x++ {
			n := EstimateNormal(field, x, z, grid, step)
			if l := length(n); math.Abs(l-1) > 1e-5 {
				t.Fatalf("cell (%d,%d): normal %v has length %f", x, z, n, l)
			}
		}
	}
}

func TestEstimateNormalSlope(t *testing.T) {
	// Height rises with x; normals should lean towards -x.
	field := fieldFunc(t, 5, func(x, z int) float32 { return float32(x) / 4 })

	n := EstimateNormal(field, 2, 2, 5, 1)
	// left-right = 0.25-0.75 = -0.5, scaled by 2 -> -1
	want := normalize([3]float32{-1, NormalUp, 0})
	for i := range n {
		if !approx(n[i], want[i]) {
			t.Fatalf("interior normal = %v, want %v", n, want)
		}
	}
	if n[0] >= 0 || n[2] != 0 {
		t.Errorf("expected normal leaning to -x with no z component, got %v", n)
	}
}

func TestEstimateNormalClampedBoundary(t *testing.T) {
	field := fieldFunc(t, 5, func(x, z int) float32 { return float32(x) / 4 })

	// At x=0 the left neighbour is the centre: (0 - 0.25) * 2 = -0.5.
	edge := EstimateNormal(field, 0, 2, 5, 1)
	want := normalize([3]float32{-0.5, NormalUp, 0})
	for i := range edge {
		if !approx(edge[i], want[i]) {
			t.Fatalf("edge normal = %v, want %v", edge, want)
		}
	}

	// At x=4 the right neighbour is the centre: (0.75 - 1) * 2 = -0.5.
	far := EstimateNormal(field, 4, 2, 5, 1)
	for i := range far {
		if !approx(far[i], want[i]) {
			t.Fatalf("far edge normal = %v, want %v", far, want)
		}
	}
}

func TestEstimateNormalUsesLODStep(t *testing.T) {
	// Only samples at even coordinates vary along z.
	field := fieldFunc(t, 8, func(x, z int) float32 {
		if z%2 == 0 {
			return float32(z) / 8
		}
		return 0
	})
	n := EstimateNormal(field, 1, 1, 4, 2)
	// down = At(2,0) = 0, up = At(2,4) = 0.5 -> nz = -1
	want := normalize([3]float32{0, NormalUp, -1})
	for i := range n {
		if !approx(n[i], want[i]) {
			t.Fatalf("normal = %v, want %v", n, want)
		}
	}
}

func TestNormalizeZeroLength(t *testing.T) {
	if got := normalize([3]float32{0, 0, 0}); got != [3]float32{0, 0, 0} {
		t.Errorf("zero vector should stay zero, got %v", got)
	}
}
