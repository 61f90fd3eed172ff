// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package record

import (
	"errors"
	"io/fs"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/smilinjake/CS-330-Computer-Graphics-and-Visualization/gpu"
	"github.com/smilinjake/CS-330-Computer-Graphics-and-Visualization/mesh"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	_ gpu.Uniforms        = (*Recorder)(nil)
	_ gpu.TextureUploader = (*Recorder)(nil)
	_ mesh.Library        = (*Recorder)(nil)
)

func TestRecorderUniforms(t *testing.T) {
	rc := New()
	rc.SetFloat("a", 1)
	rc.SetVec3("b", mgl32.Vec3{1, 2, 3})
	rc.SetFloat("a", 2)

	assert.Len(t, rc.Calls, 3)
	assert.Equal(t, float32(2), rc.Values["a"])
	assert.Equal(t, "SetVec3(b, [1 2 3])", rc.Calls[1].String())
}

func TestRecorderTextures(t *testing.T) {
	rc := New()
	img := Image(4, 2, 3)
	h1, err := rc.Upload(img)
	require.NoError(t, err)
	img.Release()
	h2, err := rc.Upload(Image(0, 0, 4))
	require.NoError(t, err)

	assert.Equal(t, gpu.Handle(1), h1)
	assert.Equal(t, gpu.Handle(2), h2)
	assert.Len(t, rc.Uploads[0].Pix, 4*2*3)
	assert.NoError(t, rc.Uploads[1].Validate())

	rc.Bind(0, h1)
	rc.Bind(0, h2)
	assert.Equal(t, h2, rc.Bound[0])
	rc.Delete(h1)
	assert.Equal(t, []gpu.Handle{h1}, rc.Deleted)

	rc.UploadErr = errors.New("no device")
	_, err = rc.Upload(img)
	assert.ErrorIs(t, err, rc.UploadErr)
}

func TestRecorderMeshes(t *testing.T) {
	rc := New()
	assert.Error(t, rc.Draw(mesh.Box))

	require.NoError(t, rc.Load(mesh.Box))
	require.NoError(t, rc.Load(mesh.Box))
	assert.Equal(t, []mesh.Kind{mesh.Box}, rc.Loaded)

	rc.SetBool("lit", true)
	require.NoError(t, rc.Draw(mesh.Box))
	rc.SetBool("lit", false)
	require.Len(t, rc.Draws, 1)
	assert.Equal(t, true, rc.Draws[0].Uniforms["lit"])

	rc.MeshErr = map[mesh.Kind]error{mesh.Sphere: errors.New("bad sphere")}
	rc.Reset()
	assert.Empty(t, rc.Calls)
	assert.Error(t, rc.Load(mesh.Sphere))
	assert.False(t, rc.IsLoaded(mesh.Sphere))
}

func TestDecoder(t *testing.T) {
	dc := &Decoder{Channels: 4, FileChannels: map[string]int{"g.png": 1}, Missing: map[string]bool{"x.jpg": true}}
	img, err := dc.Decode("dir/a.png")
	require.NoError(t, err)
	assert.Equal(t, 4, img.Channels)
	assert.NoError(t, img.Validate())

	img, err = dc.Decode("dir/g.png")
	require.NoError(t, err)
	assert.Equal(t, 1, img.Channels)

	_, err = dc.Decode("dir/x.jpg")
	assert.ErrorIs(t, err, fs.ErrNotExist)
	assert.Equal(t, []string{"dir/a.png", "dir/g.png", "dir/x.jpg"}, dc.Decoded)
}
