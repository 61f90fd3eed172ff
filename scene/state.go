// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scene

import (
	"github.com/go-gl/mathgl/mgl32"
	"github.com/smilinjake/CS-330-Computer-Graphics-and-Visualization/gpu"
)

// Uniform names used by the scene shader.
const (
	UniformModel       = "model"
	UniformColor       = "objectColor"
	UniformTexture     = "objectTexture"
	UniformUseTexture  = "bUseTexture"
	UniformUseLighting = "bUseLighting"
	UniformUVScale     = "UVscale"

	UniformAmbientColor    = "material.ambientColor"
	UniformAmbientStrength = "material.ambientStrength"
	UniformDiffuseColor    = "material.diffuseColor"
	UniformSpecularColor   = "material.specularColor"
	UniformShininess       = "material.shininess"
)

// DrawState is the complete shading state for one draw call.
// It is built for each placement and pushed in full with [DrawState.Apply]
// immediately before the draw, so nothing carries over between draws.
type DrawState struct {

	// Model is the model transform matrix.
	Model mgl32.Mat4

	// UseTexture selects texture sampling instead of the flat Color.
	UseTexture bool

	// TextureSlot is the texture unit sampled when UseTexture is set.
	TextureSlot int32

	// Color is the flat RGBA color used when UseTexture is not set.
	Color mgl32.Vec4

	// UVScale multiplies the texture coordinates, setting how many
	// times the texture repeats across the surface.
	UVScale mgl32.Vec2

	// Material is the resolved surface material.
	Material Material
}

// Apply pushes every field of the state to the given uniforms.
func (ds *DrawState) Apply(u gpu.Uniforms) {
	u.SetMat4(UniformModel, ds.Model)
	u.SetBool(UniformUseTexture, ds.UseTexture)
	if ds.UseTexture {
		u.SetSampler2D(UniformTexture, ds.TextureSlot)
	} else {
		u.SetVec4(UniformColor, ds.Color)
	}
	u.SetVec2(UniformUVScale, ds.UVScale)

	mt := &ds.Material
	u.SetVec3(UniformAmbientColor, mt.AmbientColor)
	u.SetFloat(UniformAmbientStrength, mt.AmbientStrength)
	u.SetVec3(UniformDiffuseColor, mt.DiffuseColor)
	u.SetVec3(UniformSpecularColor, mt.SpecularColor)
	u.SetFloat(UniformShininess, mt.Shininess)
}
