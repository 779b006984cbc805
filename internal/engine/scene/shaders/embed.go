// Package shaders provides embedded GLSL shader sources.
package shaders

import _ "embed"

// TerrainVertexShader transforms terrain vertices into eye space.
//
//go:embed terrain.vert
var TerrainVertexShader string

// TerrainFragmentShader shades terrain with one directional light.
//
//go:embed terrain.frag
var TerrainFragmentShader string

// WaterVertexShader is the vertex shader for the water plane.
//
//go:embed water.vert
var WaterVertexShader string

// WaterFragmentShader draws the water plane in a flat translucent colour.
//
//go:embed water.frag
var WaterFragmentShader string
