// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/pelletier/go-toml/v2"
	"github.com/smilinjake/CS-330-Computer-Graphics-and-Visualization/mesh"
	"github.com/smilinjake/CS-330-Computer-Graphics-and-Visualization/record"
	"github.com/smilinjake/CS-330-Computer-Graphics-and-Visualization/scene"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestTrace(t *testing.T) {
	out := filepath.Join(t.TempDir(), "frame.toml")
	c := &Config{TextureDir: "textures", Frames: 2, Out: out, Synthetic: true}
	require.NoError(t, Trace(c))

	b, err := os.ReadFile(out)
	require.NoError(t, err)
	var tf TraceFile
	require.NoError(t, toml.Unmarshal(b, &tf))

	require.Len(t, tf.Textures, 5)
	assert.Equal(t, "WoodFloor", tf.Textures[0].Tag)
	assert.Equal(t, 4, tf.Textures[4].Slot)
	assert.Len(t, tf.Materials, 7)

	require.Len(t, tf.Draws, 17)
	floor := tf.Draws[0]
	assert.Equal(t, "floor", floor.Object)
	assert.Equal(t, mesh.Plane, floor.Shape)
	assert.True(t, floor.Textured)
	assert.Equal(t, "WoodFloor", floor.Texture)
	assert.Equal(t, [2]float32{3, 3}, floor.UVScale)
	assert.Equal(t, mesh.Cylinder, tf.Draws[16].Shape)
	assert.False(t, tf.Draws[16].Textured)
}

func TestTraceYAML(t *testing.T) {
	out := filepath.Join(t.TempDir(), "frame.yaml")
	c := &Config{TextureDir: "textures", Frames: 1, Out: out, Synthetic: true}
	require.NoError(t, Trace(c))

	b, err := os.ReadFile(out)
	require.NoError(t, err)
	var tf TraceFile
	require.NoError(t, yaml.Unmarshal(b, &tf))
	require.Len(t, tf.Draws, 17)
	assert.Equal(t, "coffee maker", tf.Draws[1].Object)
	assert.Equal(t, mesh.TaperedCylinder, tf.Draws[1].Shape)
	assert.Equal(t, "Aluminum", tf.Draws[1].Texture)
	assert.Equal(t, int32(1), tf.Draws[1].Slot)
}

func TestTraceMissingTextures(t *testing.T) {
	c := &Config{TextureDir: t.TempDir(), Frames: 1}
	err := Trace(c)
	assert.ErrorIs(t, err, scene.ErrDecode)
	assert.ErrorIs(t, err, scene.ErrLookupMiss)
}

func TestReportMeshes(t *testing.T) {
	rc := record.New()
	require.NoError(t, rc.Load(mesh.Plane))
	require.NoError(t, rc.Load(mesh.Torus))

	var b bytes.Buffer
	newReport(&b).meshes(rc.IsLoaded)
	s := b.String()
	assert.Contains(t, s, "Meshes (2 of 8 loaded)")
	assert.Contains(t, s, "tapered-cylinder")
	assert.NotContains(t, s, "torus")
}

func TestReportTextures(t *testing.T) {
	tt := scene.NewTextureTable(&record.Decoder{}, record.New())
	require.NoError(t, tt.Load("textures/wood.jpg", "WoodFloor"))

	var b bytes.Buffer
	rp := newReport(&b)
	rp.textures(tt)
	rp.summary(0, 1)
	s := b.String()
	assert.Contains(t, s, "Textures (1 of 16 slots)")
	assert.Contains(t, s, "WoodFloor")
	assert.Contains(t, s, "not loaded (dirt.jpg)")
	assert.Contains(t, s, "0 draws in 1 frames")
}
