// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scene

import (
	"cogentcore.org/core/base/ordmap"
	"github.com/go-gl/mathgl/mgl32"
)

// Material describes the Phong lighting parameters of a surface.
// Materials are stored in a [MaterialTable] and accessed by tag.
type Material struct {

	// Tag is the unique name of the material.
	Tag string

	// AmbientColor is the color reflected from ambient light.
	AmbientColor mgl32.Vec3

	// AmbientStrength scales the ambient contribution.
	AmbientStrength float32

	// DiffuseColor is the color reflected from direct light.
	DiffuseColor mgl32.Vec3

	// SpecularColor is the color of specular highlights.
	SpecularColor mgl32.Vec3

	// Shininess is the specular exponent: higher values give a smaller,
	// more focal highlight.
	Shininess float32
}

// DefaultMaterial is used for a draw whose material tag cannot be
// resolved: a neutral mid gray with a broad, faint highlight.
var DefaultMaterial = Material{
	Tag:             "default",
	AmbientColor:    mgl32.Vec3{0.5, 0.5, 0.5},
	AmbientStrength: 0.1,
	DiffuseColor:    mgl32.Vec3{0.5, 0.5, 0.5},
	SpecularColor:   mgl32.Vec3{0.1, 0.1, 0.1},
	Shininess:       16,
}

// MaterialTable holds materials keyed by unique tag, in definition order.
type MaterialTable struct {
	mats ordmap.Map[string, Material]
}

// Define adds the given material. If a material with the same tag is
// already defined it is kept and [ErrDuplicateTag] is returned.
func (mt *MaterialTable) Define(m Material) error {
	if _, has := mt.mats.IndexByKeyTry(m.Tag); has {
		return duplicateError("material", m.Tag)
	}
	mt.mats.Add(m.Tag, m)
	return nil
}

// Find returns the material with the given tag, or a [LookupMissError]
// if there is none.
func (mt *MaterialTable) Find(tag string) (Material, error) {
	m, ok := mt.mats.ValueByKeyTry(tag)
	if !ok {
		return Material{}, &LookupMissError{Table: "material", Tag: tag}
	}
	return m, nil
}

// Len returns the number of defined materials.
func (mt *MaterialTable) Len() int {
	return mt.mats.Len()
}

// Tags returns the material tags in definition order.
func (mt *MaterialTable) Tags() []string {
	return mt.mats.Keys()
}
