package terrain

import (
	"math"

	"github.com/Faultbox/terrain-viewer/internal/heightfield"
)

// EstimateNormal derives the surface normal at LOD cell (x, z) from its four
// axis neighbours one step away. Neighbours outside the LOD grid take the
// centre height. The result is unit length unless its length is exactly zero.
func EstimateNormal(field *heightfield.Field, x, z, gridSize, step int) [3]float32 {
	h := sample(field, x, z, step)

	left, right, down, up := h, h, h, h
	if x > 0 {
		left = sample(field, x-1, z, step)
	}
	if x < gridSize-1 {
		right = sample(field, x+1, z, step)
	}
	if z > 0 {
		down = sample(field, x, z-1, step)
	}
	if z < gridSize-1 {
		up = sample(field, x, z+1, step)
	}

	return normalize([3]float32{
		(left - right) * GradientScale,
		NormalUp,
		(down - up) * GradientScale,
	})
}

func normalize(v [3]float32) [3]float32 {
	length := float32(math.Sqrt(float64(v[0]*v[0] + v[1]*v[1] + v[2]*v[2])))
	if length == 0 {
		return v
	}
	return [3]float32{v[0] / length, v[1] / length, v[2] / length}
}
