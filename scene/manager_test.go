// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scene

import (
	"errors"
	"path/filepath"
	"slices"
	"testing"

	"cogentcore.org/core/base/tolassert"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/smilinjake/CS-330-Computer-Graphics-and-Visualization/gpu"
	"github.com/smilinjake/CS-330-Computer-Graphics-and-Visualization/mesh"
	"github.com/smilinjake/CS-330-Computer-Graphics-and-Visualization/record"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestManager() (*Manager, *record.Recorder, *record.Decoder) {
	rc := record.New()
	dec := &record.Decoder{}
	return NewManager(rc, rc, dec, rc, "textures"), rc, dec
}

// frameKinds are the shapes of one full frame, in drawing order.
var frameKinds = []mesh.Kind{
	mesh.Plane,
	mesh.TaperedCylinder, mesh.Cylinder, mesh.TaperedCylinder, mesh.Cylinder,
	mesh.Box, mesh.Box, mesh.Prism, mesh.Prism,
	mesh.Sphere, mesh.Sphere,
	mesh.Torus, mesh.Cylinder,
	mesh.Box, mesh.Prism, mesh.Box, mesh.Cylinder,
}

func callIndex(rc *record.Recorder, method string) int {
	return slices.IndexFunc(rc.Calls, func(c record.Call) bool { return c.Method == method })
}

func TestPrepare(t *testing.T) {
	sm, rc, dec := newTestManager()
	require.NoError(t, sm.Prepare())

	var tags []string
	for i, ts := range sm.Textures.Slots() {
		tags = append(tags, ts.Tag)
		assert.Equal(t, i, ts.Slot)
		assert.Equal(t, ts.Handle, rc.Bound[i])
	}
	assert.Equal(t, []string{"WoodFloor", "Aluminum", "Pyramid", "Orange", "Dirt"}, tags)
	assert.Equal(t, filepath.Join("textures", "wood.jpg"), dec.Decoded[0])
	assert.Len(t, dec.Decoded, 5)

	assert.Equal(t, []string{"floor", "orange", "box", "mug", "cone", "coffee", "cylinder"}, sm.Materials.Tags())
	assert.Equal(t, MeshKinds, rc.Loaded)
	assert.Equal(t, true, rc.Values[UniformUseLighting])
	assert.Equal(t, mgl32.Vec3{50, 20, -60}, rc.Values["lightSources[1].position"])

	// lights, then textures, then meshes
	lit := slices.IndexFunc(rc.Calls, func(c record.Call) bool { return c.Name == UniformUseLighting })
	upload := callIndex(rc, "Upload")
	bind := callIndex(rc, "Bind")
	load := callIndex(rc, "Load")
	assert.Less(t, lit, upload)
	assert.Less(t, upload, bind)
	assert.Less(t, bind, load)
	assert.Empty(t, rc.Draws)
}

func TestPrepareTwice(t *testing.T) {
	sm, rc, _ := newTestManager()
	require.NoError(t, sm.Prepare())
	first := sm.Textures.Slots()

	err := sm.Prepare()
	assert.ErrorIs(t, err, ErrDuplicateTag)
	assert.Equal(t, first, sm.Textures.Slots())
	assert.Equal(t, 7, sm.Materials.Len())
	assert.Len(t, rc.Uploads, 5)
	assert.Equal(t, MeshKinds, rc.Loaded)
}

func TestPrepareFailures(t *testing.T) {
	sm, rc, dec := newTestManager()
	dec.Missing = map[string]bool{"orange.jpg": true}
	dec.FileChannels = map[string]int{"dirt.jpg": 1}
	torusErr := errors.New("no torus")
	rc.MeshErr = map[mesh.Kind]error{mesh.Torus: torusErr}

	err := sm.Prepare()
	assert.ErrorIs(t, err, ErrDecode)
	assert.ErrorIs(t, err, torusErr)

	var tags []string
	for _, ts := range sm.Textures.Slots() {
		tags = append(tags, ts.Tag)
	}
	assert.Equal(t, []string{"WoodFloor", "Aluminum", "Pyramid"}, tags)
	assert.Len(t, rc.Loaded, len(MeshKinds)-1)
	assert.Equal(t, 7, sm.Materials.Len())
}

func TestRenderFloor(t *testing.T) {
	sm, rc, _ := newTestManager()
	require.NoError(t, sm.Prepare())
	require.NoError(t, sm.RenderObject(Floor()))

	require.Len(t, rc.Draws, 1)
	dr := rc.Draws[0]
	assert.Equal(t, mesh.Plane, dr.Kind)

	// rotate 90 about y, after scaling by 10, 1, 20
	want := mgl32.Mat4{
		0, 0, -10, 0,
		0, 1, 0, 0,
		20, 0, 0, 0,
		0, 0, 0, 1,
	}
	model, ok := dr.Uniforms[UniformModel].(mgl32.Mat4)
	require.True(t, ok)
	tolassert.EqualTolSlice(t, want[:], model[:], StandardTol)

	slot, _ := sm.Textures.FindSlot("WoodFloor")
	assert.Equal(t, true, dr.Uniforms[UniformUseTexture])
	assert.Equal(t, int32(slot), dr.Uniforms[UniformTexture])
	assert.Equal(t, mgl32.Vec2{3, 3}, dr.Uniforms[UniformUVScale])
	assert.Equal(t, float32(35), dr.Uniforms[UniformShininess])
	assert.Equal(t, float32(0.01), dr.Uniforms[UniformAmbientStrength])
	assert.Equal(t, mgl32.Vec3{0.1, 0.1, 0.1}, dr.Uniforms[UniformDiffuseColor])
}

func TestFrame(t *testing.T) {
	sm, _, _ := newTestManager()
	require.NoError(t, sm.Prepare())
	draws, err := sm.Frame()
	require.NoError(t, err)
	require.Len(t, draws, 17)

	counts := map[string]int{}
	var kinds []mesh.Kind
	for _, dr := range draws {
		counts[dr.Object]++
		kinds = append(kinds, dr.Placement.Shape)
	}
	assert.Equal(t, map[string]int{"floor": 1, "coffee maker": 8, "oranges": 2, "mug": 2, "carton": 4}, counts)
	assert.Equal(t, frameKinds, kinds)

	// the second orange mirrors its texture
	assert.Equal(t, mgl32.Vec2{-1, 1}, draws[10].State.UVScale)
	assert.Equal(t, "orange", draws[10].State.Material.Tag)

	// the mug is flat colored, nothing left over from the textured oranges
	mug := draws[11].State
	assert.False(t, mug.UseTexture)
	assert.Equal(t, mgl32.Vec4{0.5, 0.5, 0.5, 1}, mug.Color)
	assert.Equal(t, mgl32.Vec2{1, 1}, mug.UVScale)
	assert.Equal(t, "mug", mug.Material.Tag)
}

func TestRender(t *testing.T) {
	sm, rc, _ := newTestManager()
	require.NoError(t, sm.Prepare())
	require.NoError(t, sm.Render())

	require.Len(t, rc.Draws, 17)
	for i, dr := range rc.Draws {
		assert.Equal(t, frameKinds[i], dr.Kind, "draw %d", i)
	}
	handle := rc.Draws[11]
	assert.Equal(t, false, handle.Uniforms[UniformUseTexture])
	assert.Equal(t, mgl32.Vec4{0.5, 0.5, 0.5, 1}, handle.Uniforms[UniformColor])
	assert.Equal(t, float32(50), handle.Uniforms[UniformShininess])

	// rendering is the same every frame
	require.NoError(t, sm.Render())
	require.Len(t, rc.Draws, 34)
	for i, dr := range rc.Draws[17:] {
		prev := rc.Draws[i]
		assert.Equal(t, prev.Kind, dr.Kind, "draw %d", i)
		assert.Equal(t, prev.Uniforms[UniformModel], dr.Uniforms[UniformModel], "draw %d", i)
		assert.Equal(t, prev.Uniforms[UniformUseTexture], dr.Uniforms[UniformUseTexture], "draw %d", i)
		assert.Equal(t, prev.Uniforms[UniformAmbientColor], dr.Uniforms[UniformAmbientColor], "draw %d", i)
	}
	f1, _ := sm.Frame()
	f2, _ := sm.Frame()
	assert.Equal(t, f1, f2)
}

func TestFallbacks(t *testing.T) {
	sm, _, _ := newTestManager()

	ds, err := sm.DrawState(Placement{Name: "lost", Shape: mesh.Box, Texture: "Marble", Material: "marble"})
	assert.ErrorIs(t, err, ErrLookupMiss)
	assert.False(t, ds.UseTexture)
	assert.Equal(t, FallbackColor, ds.Color)
	assert.Equal(t, DefaultMaterial, ds.Material)
	assert.Equal(t, mgl32.Vec2{1, 1}, ds.UVScale)

	red := mgl32.Vec4{1, 0, 0, 1}
	ds, err = sm.DrawState(Placement{Texture: "Marble", Color: red, Material: "marble"})
	assert.ErrorIs(t, err, ErrLookupMiss)
	assert.Equal(t, red, ds.Color)

	// an unprepared scene still renders every draw it can, and reports the rest
	rc := record.New()
	sm.Meshes = rc
	sm.Uniforms = rc
	err = sm.Render()
	assert.Error(t, err)
	assert.Empty(t, rc.Draws)
	assert.NotEmpty(t, rc.Calls)
}

func TestDrawStateApply(t *testing.T) {
	rc := record.New()
	ds := DrawState{Model: mgl32.Ident4(), Color: mgl32.Vec4{0, 1, 0, 1}, UVScale: mgl32.Vec2{1, 1}, Material: DefaultMaterial}
	ds.Apply(rc)
	assert.Len(t, rc.Calls, 9)
	assert.Equal(t, mgl32.Vec4{0, 1, 0, 1}, rc.Values[UniformColor])
	assert.NotContains(t, rc.Values, UniformTexture)

	rc.Reset()
	ds.UseTexture = true
	ds.TextureSlot = 3
	ds.Apply(rc)
	assert.Equal(t, int32(3), rc.Values[UniformTexture])
	assert.NotContains(t, rc.Values, UniformColor)
	assert.Equal(t, float32(16), rc.Values[UniformShininess])
}

func TestDestroy(t *testing.T) {
	sm, rc, _ := newTestManager()
	require.NoError(t, sm.Prepare())
	sm.Destroy()
	assert.Equal(t, []gpu.Handle{1, 2, 3, 4, 5}, rc.Deleted)
	assert.Equal(t, 0, sm.Textures.Len())

	sm.Destroy()
	assert.Len(t, rc.Deleted, 5)
}
