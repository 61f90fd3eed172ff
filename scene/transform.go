// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scene

import "github.com/go-gl/mathgl/mgl32"

// Transform positions one primitive in the scene: it is scaled first,
// then rotated (see [Compose] for the axis order), then translated.
type Transform struct {

	// Scale along each local axis.
	Scale mgl32.Vec3

	// Rotation in degrees about the X, Y and Z axes.
	Rotation mgl32.Vec3

	// Position is the translation in world coordinates.
	Position mgl32.Vec3
}

// Matrix returns the model matrix of the transform. See [Compose].
func (tr Transform) Matrix() mgl32.Mat4 {
	return Compose(tr.Scale, tr.Rotation.X(), tr.Rotation.Y(), tr.Rotation.Z(), tr.Position)
}

// Compose returns the model matrix
//
//	Translate(pos) * RotateX(rx) * RotateY(ry) * RotateZ(rz) * Scale(scale)
//
// with rotations given in degrees. The multiplication order is the
// reverse of the order in which the operations apply to a vertex,
// and changing it changes the pose.
func Compose(scale mgl32.Vec3, rx, ry, rz float32, pos mgl32.Vec3) mgl32.Mat4 {
	sc := mgl32.Scale3D(scale.X(), scale.Y(), scale.Z())
	rotX := mgl32.HomogRotate3DX(mgl32.DegToRad(rx))
	rotY := mgl32.HomogRotate3DY(mgl32.DegToRad(ry))
	rotZ := mgl32.HomogRotate3DZ(mgl32.DegToRad(rz))
	tr := mgl32.Translate3D(pos.X(), pos.Y(), pos.Z())
	return tr.Mul4(rotX).Mul4(rotY).Mul4(rotZ).Mul4(sc)
}
