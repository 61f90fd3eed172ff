// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scene

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/smilinjake/CS-330-Computer-Graphics-and-Visualization/record"
	"github.com/stretchr/testify/assert"
)

func TestLightsSet(t *testing.T) {
	rc := record.New()
	lts := SceneLights()
	lts.Set(rc)

	assert.Len(t, rc.Calls, MaxLights*6+1)
	assert.Equal(t, mgl32.Vec3{-50, 20, -60}, rc.Values["lightSources[0].position"])
	assert.Equal(t, mgl32.Vec3{40, 20, -10}, rc.Values["lightSources[3].position"])
	assert.Equal(t, float32(0.18), rc.Values["lightSources[3].specularIntensity"])
	assert.Equal(t, float32(0.05), rc.Values["lightSources[1].specularIntensity"])
	assert.Equal(t, float32(100), rc.Values["lightSources[2].focalStrength"])
	assert.Equal(t, mgl32.Vec3{0.07, 0.07, 0.07}, rc.Values["lightSources[2].ambientColor"])

	last := rc.Calls[len(rc.Calls)-1]
	assert.Equal(t, UniformUseLighting, last.Name)
	assert.Equal(t, true, last.Value)
}
