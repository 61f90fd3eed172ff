// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gpu

import "github.com/go-gl/mathgl/mgl32"

// Uniforms is a sink for named shader uniform values on the
// currently active shader program. Names may address struct fields
// and array elements, e.g., "material.shininess" or
// "lightSources[2].position".
type Uniforms interface {
	SetInt(name string, v int32)
	SetBool(name string, v bool)
	SetFloat(name string, v float32)
	SetVec2(name string, v mgl32.Vec2)
	SetVec3(name string, v mgl32.Vec3)
	SetVec4(name string, v mgl32.Vec4)
	SetMat4(name string, v mgl32.Mat4)

	// SetSampler2D sets a sampler uniform to sample from the
	// given texture unit.
	SetSampler2D(name string, unit int32)
}
