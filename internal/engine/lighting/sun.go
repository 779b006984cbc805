// Package lighting provides the directional light used to shade the terrain.
package lighting

import "math"

// Angles orients the light. X is elevation above the horizon and Y is
// rotation around the vertical axis, both in degrees.
type Angles struct {
	X float32
	Y float32
}

// DefaultAngles returns the initial light orientation.
func DefaultAngles() Angles {
	return Angles{X: 45, Y: 45}
}

// Direction converts light angles to a unit vector pointing towards the light.
func Direction(a Angles) [3]float32 {
	ax := float64(a.X) * math.Pi / 180.0
	ay := float64(a.Y) * math.Pi / 180.0

	return [3]float32{
		float32(math.Cos(ay) * math.Cos(ax)),
		float32(math.Sin(ax)),
		float32(math.Sin(ay) * math.Cos(ax)),
	}
}

// Light holds the intensities of the single scene light.
type Light struct {
	Global   [3]float32 // Scene ambient independent of the light
	Ambient  [3]float32
	Diffuse  float32
	Specular float32
}

// DefaultLight returns a cool ambient with full-strength specular highlights.
func DefaultLight() Light {
	return Light{
		Global:   [3]float32{0.2, 0.2, 0.2},
		Ambient:  [3]float32{0.3, 0.3, 0.35},
		Diffuse:  0.8,
		Specular: 1.0,
	}
}

// Material describes how the terrain surface reflects light. Diffuse and
// ambient response follow the per-vertex band color.
type Material struct {
	Specular  float32
	Shininess float32
}

// DefaultMaterial returns the terrain material.
func DefaultMaterial() Material {
	return Material{Specular: 0.3, Shininess: 32}
}
