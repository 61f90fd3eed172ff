// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scene

import (
	"github.com/go-gl/mathgl/mgl32"
	"github.com/smilinjake/CS-330-Computer-Graphics-and-Visualization/mesh"
)

// coffee brown, for the plastic handles and the coffee in the spout
var coffeeColor = mgl32.Vec4{111.0 / 255.0, 78.0 / 255.0, 55.0 / 255.0, 1}

func xform(scale, rot, pos mgl32.Vec3) Transform {
	return Transform{Scale: scale, Rotation: rot, Position: pos}
}

// Objects returns the objects of the scene in drawing order.
func Objects() []Object {
	return []Object{Floor(), CoffeeMaker(), Oranges(), Mug(), Carton()}
}

// Floor is the wood plank floor, a plane tiled three times each way.
func Floor() Object {
	return Object{
		Name: "floor",
		Placements: []Placement{
			{
				Name:      "floor plane",
				Shape:     mesh.Plane,
				Transform: xform(mgl32.Vec3{10, 1, 20}, mgl32.Vec3{0, 90, 0}, mgl32.Vec3{0, 0, 0}),
				Texture:   "WoodFloor",
				UVScale:   mgl32.Vec2{3, 3},
				Material:  "floor",
			},
		},
	}
}

// CoffeeMaker is the aluminum moka pot: two tapered halves joined by a
// collar, with a brown lid knob, a two-part side handle and a spout.
func CoffeeMaker() Object {
	return Object{
		Name: "coffee maker",
		Placements: []Placement{
			{
				Name:      "bottom",
				Shape:     mesh.TaperedCylinder,
				Transform: xform(mgl32.Vec3{1, 2, 1}, mgl32.Vec3{0, 180, 0}, mgl32.Vec3{3, 0, 4}),
				Texture:   "Aluminum",
				UVScale:   mgl32.Vec2{1, 1},
				Material:  "cone",
			},
			{
				Name:      "collar",
				Shape:     mesh.Cylinder,
				Transform: xform(mgl32.Vec3{0.75, 0.35, 0.75}, mgl32.Vec3{180, 0, 0}, mgl32.Vec3{3, 1.8, 4}),
				Texture:   "Aluminum",
				UVScale:   mgl32.Vec2{1, 1},
				Material:  "cylinder",
			},
			{
				Name:      "top",
				Shape:     mesh.TaperedCylinder,
				Transform: xform(mgl32.Vec3{1, 2, 1}, mgl32.Vec3{180, 0, 0}, mgl32.Vec3{3, 3.5, 4}),
				Texture:   "Aluminum",
				UVScale:   mgl32.Vec2{1, 1},
				Material:  "cone",
			},
			{
				Name:      "lid handle",
				Shape:     mesh.Cylinder,
				Transform: xform(mgl32.Vec3{0.4, 0.25, 0.4}, mgl32.Vec3{90, 0, 0}, mgl32.Vec3{3, 3.9, 3.9}),
				Color:     coffeeColor,
				Material:  "coffee",
			},
			{
				Name:      "handle (horizontal)",
				Shape:     mesh.Box,
				Transform: xform(mgl32.Vec3{1.4, 0.25, 0.4}, mgl32.Vec3{0, 0, 0}, mgl32.Vec3{4, 3.3, 4}),
				Color:     coffeeColor,
				Material:  "coffee",
			},
			{
				Name:      "handle (vertical)",
				Shape:     mesh.Box,
				Transform: xform(mgl32.Vec3{1.25, 0.25, 0.4}, mgl32.Vec3{0, 0, 90}, mgl32.Vec3{4.6, 2.8, 4}),
				Color:     coffeeColor,
				Material:  "coffee",
			},
			{
				Name:      "spout",
				Shape:     mesh.Prism,
				Transform: xform(mgl32.Vec3{1.25, 0.25, 0.4}, mgl32.Vec3{90, 0, 0}, mgl32.Vec3{2.1, 3.27, 4}),
				Texture:   "Aluminum",
				UVScale:   mgl32.Vec2{3, 3},
				Material:  "cone",
			},
			{
				Name:      "spout coffee",
				Shape:     mesh.Prism,
				Transform: xform(mgl32.Vec3{1.22, 0.22, 0.38}, mgl32.Vec3{90, 0, 0}, mgl32.Vec3{2.1, 3.29, 4}),
				Color:     coffeeColor,
				Material:  "coffee",
			},
		},
	}
}

// Oranges are two mandarins side by side; the second is turned and its
// texture mirrored so the two do not look identical.
func Oranges() Object {
	return Object{
		Name: "oranges",
		Placements: []Placement{
			{
				Name:      "left orange",
				Shape:     mesh.Sphere,
				Transform: xform(mgl32.Vec3{0.75, 0.75, 0.75}, mgl32.Vec3{90, 0, 0}, mgl32.Vec3{-2, 0.75, 5}),
				Texture:   "Dirt",
				UVScale:   mgl32.Vec2{1, 1},
				Material:  "orange",
			},
			{
				Name:      "right orange",
				Shape:     mesh.Sphere,
				Transform: xform(mgl32.Vec3{0.75, 0.75, 0.75}, mgl32.Vec3{90, 90, 0}, mgl32.Vec3{-0.5, 0.75, 7}),
				Texture:   "Dirt",
				UVScale:   mgl32.Vec2{-1, 1},
				Material:  "orange",
			},
		},
	}
}

// Mug is the blue coffee mug: a cylinder body with a torus handle.
func Mug() Object {
	gray := mgl32.Vec4{0.5, 0.5, 0.5, 1}
	return Object{
		Name: "mug",
		Placements: []Placement{
			{
				Name:      "handle",
				Shape:     mesh.Torus,
				Transform: xform(mgl32.Vec3{0.75, 0.45, 0.75}, mgl32.Vec3{0, 0, 0}, mgl32.Vec3{-4.7, 1.4, 6}),
				Color:     gray,
				Material:  "mug",
			},
			{
				Name:      "body",
				Shape:     mesh.Cylinder,
				Transform: xform(mgl32.Vec3{1, 2.25, 0.75}, mgl32.Vec3{0, 0, 0}, mgl32.Vec3{-5.5, 0, 6}),
				Color:     gray,
				Material:  "mug",
			},
		},
	}
}

// Carton is the milk carton, turned -20 degrees: a box body, a prism
// gable top with its sealing tab, and a small round cap.
func Carton() Object {
	white := mgl32.Vec4{1, 0.9, 1, 1}
	return Object{
		Name: "carton",
		Placements: []Placement{
			{
				Name:      "body",
				Shape:     mesh.Box,
				Transform: xform(mgl32.Vec3{3, 6, 3}, mgl32.Vec3{0, -20, 0}, mgl32.Vec3{-3, 3, 0}),
				Color:     white,
				Material:  "box",
			},
			{
				Name:      "gable",
				Shape:     mesh.Prism,
				Transform: xform(mgl32.Vec3{3, 3, 1}, mgl32.Vec3{-90, 0, -110}, mgl32.Vec3{-3, 6.5, 0}),
				Color:     white,
				Material:  "box",
			},
			{
				Name:      "tab",
				Shape:     mesh.Box,
				Transform: xform(mgl32.Vec3{2.95, 0.5, 0.1}, mgl32.Vec3{0, -20, 0}, mgl32.Vec3{-3, 7.15, 0}),
				Color:     white,
				Material:  "box",
			},
			{
				Name:      "cap",
				Shape:     mesh.Cylinder,
				Transform: xform(mgl32.Vec3{0.25, 0.25, 0.25}, mgl32.Vec3{30, 0, 15}, mgl32.Vec3{-3.3, 6.35, 0.9}),
				Color:     white,
				Material:  "box",
			},
		},
	}
}
