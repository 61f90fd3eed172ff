// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scene

import (
	"github.com/go-gl/mathgl/mgl32"
	"github.com/smilinjake/CS-330-Computer-Graphics-and-Visualization/mesh"
)

// FallbackColor is drawn in place of a texture that is not loaded.
var FallbackColor = mgl32.Vec4{1, 0, 1, 1}

// Placement is one primitive draw within an [Object]: which shape,
// where, and how it is shaded.
type Placement struct {

	// Name describes the part, e.g., "lid handle".
	Name string

	// Shape is the primitive mesh to draw.
	Shape mesh.Kind

	Transform Transform

	// Texture is the tag of the texture to sample.
	// If empty, the surface is drawn in the flat Color.
	Texture string

	// Color is the flat RGBA surface color, used when Texture is empty.
	// For a textured placement it is the color drawn if the texture is
	// not loaded; [FallbackColor] is used if it is zero.
	Color mgl32.Vec4

	// UVScale sets how many times the texture repeats in U and V.
	// Zero means (1, 1).
	UVScale mgl32.Vec2

	// Material is the tag of the surface material.
	Material string
}

// Object is a composite scene object: an ordered list of placements.
type Object struct {
	Name       string
	Placements []Placement
}

// Draw is one resolved draw call of a frame: the placement it came
// from and the full shading state pushed before drawing it.
type Draw struct {
	Object    string
	Placement Placement
	State     DrawState
}
