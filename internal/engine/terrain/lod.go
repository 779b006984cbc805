package terrain

import (
	"errors"

	"github.com/Faultbox/terrain-viewer/internal/heightfield"
)

// ErrNoField is returned when Build is called without a height field.
var ErrNoField = errors.New("terrain: no height field")

// Dimensions returns the LOD grid size and sampling step for a source of
// size n and a maximum grid dimension target. A target below 1 is treated
// as 1. When n does not divide evenly by step the trailing samples are
// dropped.
func Dimensions(n, target int) (gridSize, step int) {
	if target < 1 {
		target = 1
	}
	step = max(1, n/target)
	return n / step, step
}

// Build downsamples field to at most target cells per side by
// nearest-neighbour sampling and emits vertex, normal, color and index
// buffers. The result is a fresh Mesh; nothing is shared with earlier builds.
func Build(field *heightfield.Field, target int) (*Mesh, error) {
	if field == nil {
		return nil, ErrNoField
	}

	size := field.Size()
	gridSize, step := Dimensions(size, target)
	half := float32(gridSize) / 2

	vertexCount := gridSize * gridSize
	m := &Mesh{
		Vertices:   make([]float32, vertexCount*3),
		Normals:    make([]float32, vertexCount*3),
		Colors:     make([]float32, vertexCount*3),
		Indices:    make([]uint32, 0, quadCount(gridSize)*6),
		GridSize:   gridSize,
		Step:       step,
		SourceSize: size,
	}

	for z := 0; z < gridSize; z++ {
		for x := 0; x < gridSize; x++ {
			idx := (z*gridSize + x) * 3
			h := sample(field, x, z, step)

			m.Vertices[idx] = (float32(x) - half) / half
			m.Vertices[idx+1] = h * VerticalScale
			m.Vertices[idx+2] = (float32(z) - half) / half

			n := EstimateNormal(field, x, z, gridSize, step)
			copy(m.Normals[idx:idx+3], n[:])

			c := Classify(h)
			copy(m.Colors[idx:idx+3], c[:])
		}
	}

	for z := 0; z < gridSize-1; z++ {
		for x := 0; x < gridSize-1; x++ {
			topLeft := uint32(z*gridSize + x)
			topRight := topLeft + 1
			bottomLeft := uint32((z+1)*gridSize + x)
			bottomRight := bottomLeft + 1

			m.Indices = append(m.Indices,
				topLeft, bottomLeft, topRight,
				topRight, bottomLeft, bottomRight,
			)
		}
	}

	return m, nil
}

func quadCount(gridSize int) int {
	if gridSize < 2 {
		return 0
	}
	return (gridSize - 1) * (gridSize - 1)
}

// sample reads the source height under LOD cell (x, z), clamped to the field.
func sample(field *heightfield.Field, x, z, step int) float32 {
	last := field.Size() - 1
	return field.At(min(x*step, last), min(z*step, last))
}
