// Package water provides the translucent water plane drawn over the terrain.
package water

// DefaultLevel is the initial water level.
const DefaultLevel float32 = 0.8

// HalfExtent is the half width of the square water quad. It extends past the
// terrain, which spans [-1, 1] on both axes.
const HalfExtent float32 = 1.5

// Color is the RGBA colour of the water surface.
var Color = [4]float32{0.2, 0.4, 0.7, 0.6}

// Plane holds water plane geometry ready for GPU upload.
type Plane struct {
	Vertices []float32 // Flat x,y,z for 4 vertices in TRIANGLE_FAN order
	Height   float32   // Plane Y in world coordinates
}

// Height maps a water level in [0, 1] to world Y. The terrain's vertical
// scale is 0.5, so level 0.5 sits at the origin.
func Height(level float32) float32 {
	return (level - 0.5) * 0.5
}

// BuildPlane creates the water quad for a level in [0, 1].
func BuildPlane(level float32) Plane {
	y := Height(level)
	e := HalfExtent

	// Order: BL, BR, TR, TL
	return Plane{
		Vertices: []float32{
			-e, y, -e,
			e, y, -e,
			e, y, e,
			-e, y, e,
		},
		Height: y,
	}
}
