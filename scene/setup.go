// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scene

import (
	"github.com/go-gl/mathgl/mgl32"
	"github.com/smilinjake/CS-330-Computer-Graphics-and-Visualization/mesh"
)

// TextureFile names an image file (relative to the texture directory)
// and the tag it is loaded under.
type TextureFile struct {
	File string
	Tag  string
}

// TextureFiles are the scene textures, in slot order.
var TextureFiles = []TextureFile{
	{"wood.jpg", "WoodFloor"},
	{"aluminum.jpg", "Aluminum"},
	{"egyptian-bricks.jpg", "Pyramid"},
	{"orange.jpg", "Orange"},
	{"dirt.jpg", "Dirt"},
}

// MeshKinds are the primitive meshes the scene loads, in load order.
var MeshKinds = []mesh.Kind{
	mesh.Plane,
	mesh.TaperedCylinder,
	mesh.Torus,
	mesh.Cylinder,
	mesh.Box,
	mesh.Prism,
	mesh.Sphere,
	mesh.Pyramid,
}

// Materials returns the scene materials, in definition order.
func Materials() []Material {
	return []Material{
		{
			Tag:             "floor",
			AmbientColor:    mgl32.Vec3{0.1, 0.1, 0.1},
			AmbientStrength: 0.01,
			DiffuseColor:    mgl32.Vec3{0.1, 0.1, 0.1},
			SpecularColor:   mgl32.Vec3{0.1, 0.1, 0.1},
			Shininess:       35,
		},
		{
			Tag:             "orange",
			AmbientColor:    mgl32.Vec3{1, 0.9, 0},
			AmbientStrength: 0.03,
			DiffuseColor:    mgl32.Vec3{1, 0.4, 0},
			SpecularColor:   mgl32.Vec3{0.3, 0.3, 0.3},
			Shininess:       75,
		},
		{
			Tag:             "box",
			AmbientColor:    mgl32.Vec3{0.39, 0.39, 0.35},
			AmbientStrength: 0.15,
			DiffuseColor:    mgl32.Vec3{0.19, 0.19, 0.185},
			SpecularColor:   mgl32.Vec3{0.41, 0.41, 0.41},
			Shininess:       30,
		},
		{
			Tag:             "mug",
			AmbientColor:    mgl32.Vec3{0.001, 0.01, 0.48},
			AmbientStrength: 0.05,
			DiffuseColor:    mgl32.Vec3{0.001, 0.001, 0.48},
			SpecularColor:   mgl32.Vec3{0.01, 0.1, 0.1},
			Shininess:       50,
		},
		{
			Tag:             "cone",
			AmbientColor:    mgl32.Vec3{0.75, 0.75, 0.75},
			AmbientStrength: 0.025,
			DiffuseColor:    mgl32.Vec3{0.25, 0.25, 0.25},
			SpecularColor:   mgl32.Vec3{0.9, 0.9, 0.9},
			Shininess:       80,
		},
		{
			Tag:             "coffee",
			AmbientColor:    mgl32.Vec3{0.44, 0.31, 0.21},
			AmbientStrength: 0.05,
			DiffuseColor:    mgl32.Vec3{0.44, 0.31, 0.21},
			SpecularColor:   mgl32.Vec3{0.44, 0.31, 0.21},
			Shininess:       2,
		},
		{
			Tag:             "cylinder",
			AmbientColor:    mgl32.Vec3{0.7, 0.7, 0.7},
			AmbientStrength: 0.05,
			DiffuseColor:    mgl32.Vec3{0.1, 0.1, 0.1},
			SpecularColor:   mgl32.Vec3{0.3, 0.3, 0.3},
			Shininess:       75,
		},
	}
}

// SceneLights returns the four scene lights: two behind the table
// and two in front, all white, high above.
func SceneLights() Lights {
	light := func(x, y, z, specular float32) LightSource {
		return LightSource{
			Position:          mgl32.Vec3{x, y, z},
			AmbientColor:      mgl32.Vec3{0.07, 0.07, 0.07},
			DiffuseColor:      mgl32.Vec3{1, 1, 1},
			SpecularColor:     mgl32.Vec3{1, 1, 1},
			FocalStrength:     100,
			SpecularIntensity: specular,
		}
	}
	return Lights{
		light(-50, 20, -60, 0.05), // back left
		light(50, 20, -60, 0.05),  // back right
		light(-50, 20, -10, 0.05), // front left
		light(40, 20, -10, 0.18),  // front right
	}
}
