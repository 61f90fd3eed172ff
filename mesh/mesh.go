// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package mesh defines the primitive shapes that a scene is built
// from, and the contract for the library that tessellates, uploads
// and draws them.
package mesh

//go:generate core generate

// Kind is one of the fixed primitive mesh types. Each kind is
// tessellated and uploaded once, and shared by every placement
// that draws that shape.
type Kind int32 //enums:enum -transform kebab

const (
	// Plane is a flat unit square in the XZ plane, facing +Y.
	Plane Kind = iota

	// Box is a unit cube centered at the origin.
	Box

	// Cylinder has unit radius and height, with its base on the XZ plane.
	Cylinder

	// TaperedCylinder is a cylinder whose top radius is smaller
	// than its bottom radius.
	TaperedCylinder

	// Torus is a ring lying in the XY plane.
	Torus

	// Prism is a triangular prism.
	Prism

	// Sphere is a unit sphere centered at the origin.
	Sphere

	// Pyramid is a square (4-sided) pyramid.
	Pyramid
)

// Library tessellates primitive shapes into GPU-resident buffers and
// issues draw calls against them, using whatever transform and shading
// uniforms are currently set on the active program.
type Library interface {

	// Load tessellates and uploads the given kind. Loading a kind that
	// is already loaded does nothing.
	Load(kind Kind) error

	// Draw issues the draw call for a previously loaded kind.
	Draw(kind Kind) error
}
