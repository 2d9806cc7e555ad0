// Package shaders provides embedded GLSL shader sources.
package shaders

import _ "embed"

// LitVertexShader transforms meshes for Phong shading.
//
//go:embed lit.vert
var LitVertexShader string

// LitFragmentShader shades with one point light, optional texture and alpha.
//
//go:embed lit.frag
var LitFragmentShader string

// WaterVertexShader displaces the river grid with the shared wave sum.
//
//go:embed water.vert
var WaterVertexShader string

// WaterFragmentShader shades the river surface.
//
//go:embed water.frag
var WaterFragmentShader string
