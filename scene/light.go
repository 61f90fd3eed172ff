// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scene

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/smilinjake/CS-330-Computer-Graphics-and-Visualization/gpu"
)

// MaxLights is the number of light sources the shader supports.
// All of them are always set.
const MaxLights = 4

// LightSource is an omnidirectional light at a fixed position.
type LightSource struct {

	// Position of the light in world coordinates.
	Position mgl32.Vec3

	// AmbientColor is added uniformly to every lit surface.
	AmbientColor mgl32.Vec3

	// DiffuseColor is the color of direct illumination.
	DiffuseColor mgl32.Vec3

	// SpecularColor is the color of highlights.
	SpecularColor mgl32.Vec3

	// FocalStrength is the specular exponent applied to this light.
	FocalStrength float32

	// SpecularIntensity scales the highlights from this light.
	SpecularIntensity float32
}

// Lights is the fixed set of light sources of a scene,
// indexed 0 to [MaxLights]-1.
type Lights [MaxLights]LightSource

// Set pushes the light as element index of the lightSources uniform array.
func (ls *LightSource) Set(u gpu.Uniforms, index int) {
	pre := fmt.Sprintf("lightSources[%d].", index)
	u.SetVec3(pre+"position", ls.Position)
	u.SetVec3(pre+"ambientColor", ls.AmbientColor)
	u.SetVec3(pre+"diffuseColor", ls.DiffuseColor)
	u.SetVec3(pre+"specularColor", ls.SpecularColor)
	u.SetFloat(pre+"focalStrength", ls.FocalStrength)
	u.SetFloat(pre+"specularIntensity", ls.SpecularIntensity)
}

// Set pushes all the lights and turns lighting on.
func (lt *Lights) Set(u gpu.Uniforms) {
	for i := range lt {
		lt[i].Set(u, i)
	}
	u.SetBool(UniformUseLighting, true)
}
