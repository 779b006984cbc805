// Package terrain builds renderable level-of-detail meshes from height fields.
package terrain

// Fixed mesh synthesis constants.
const (
	// VerticalScale exaggerates normalized heights into world Y.
	VerticalScale float32 = 0.5

	// GradientScale weights neighbour height differences in normals.
	GradientScale float32 = 2.0

	// NormalUp is the fixed vertical normal component before normalization.
	NormalUp float32 = 0.1

	// DefaultTarget is the default maximum LOD grid dimension.
	DefaultTarget = 150
)

// Mesh holds GPU-ready terrain buffers. Vertices, Normals and Colors are flat
// xyz/rgb triples, one per LOD cell in row-major order; Indices holds two
// counter-clockwise triangles per quad. A Mesh is never modified after Build
// returns it.
type Mesh struct {
	Vertices []float32
	Normals  []float32
	Colors   []float32
	Indices  []uint32

	GridSize   int // LOD cells per side
	Step       int // Source samples per LOD cell
	SourceSize int // Source field dimension
}

// VertexCount returns the number of vertices in the mesh.
func (m *Mesh) VertexCount() int {
	return len(m.Vertices) / 3
}

// IndexCount returns the number of indices in the mesh.
func (m *Mesh) IndexCount() int {
	return len(m.Indices)
}
