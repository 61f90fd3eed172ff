// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"io"
	"os"
	"path/filepath"
	"strings"

	"cogentcore.org/core/base/errors"
	"github.com/pelletier/go-toml/v2"
	"github.com/smilinjake/CS-330-Computer-Graphics-and-Visualization/imagefile"
	"github.com/smilinjake/CS-330-Computer-Graphics-and-Visualization/mesh"
	"github.com/smilinjake/CS-330-Computer-Graphics-and-Visualization/record"
	"github.com/smilinjake/CS-330-Computer-Graphics-and-Visualization/scene"
	"gopkg.in/yaml.v3"
)

// Trace prepares the scene against a recorder, renders the configured
// number of frames and prints the texture table and draw list.
func Trace(c *Config) error {
	dir, err := textureDir(c)
	if err != nil {
		return err
	}
	rc := record.New()
	var dec scene.Decoder = &imagefile.Decoder{}
	if c.Synthetic {
		dec = &record.Decoder{Width: 4, Height: 4}
	}
	sm := scene.NewManager(rc, rc, dec, rc, dir)
	defer sm.Destroy()

	// failures are logged as they happen, and returned once the
	// report is written
	prepErr := sm.Prepare()
	var drawErr error
	for range c.Frames {
		drawErr = sm.Render()
	}
	draws, err := sm.Frame()
	if drawErr == nil {
		drawErr = err
	}

	rp := newReport(os.Stdout)
	rp.textures(sm.Textures)
	rp.meshes(rc.IsLoaded)
	rp.draws(draws)
	rp.summary(len(rc.Draws), c.Frames)
	if c.Out != "" {
		if err := writeTrace(c.Out, newTrace(sm, draws)); err != nil {
			return err
		}
	}
	return errors.Join(prepErr, drawErr)
}

// TraceFile is the TOML form of one traced frame.
type TraceFile struct {
	Textures  []TraceTexture
	Materials []string
	Draws     []TraceDraw
}

// TraceTexture is one loaded texture.
type TraceTexture struct {
	Tag    string
	Slot   int
	Handle uint32
}

// TraceDraw is one draw of a frame with its full shading state.
type TraceDraw struct {
	Object   string
	Part     string
	Shape    mesh.Kind
	Textured bool
	Texture  string `toml:",omitempty"`
	Slot     int32
	Color    [4]float32
	UVScale  [2]float32
	Material string
	Model    [16]float32
}

func newTrace(sm *scene.Manager, draws []scene.Draw) *TraceFile {
	tf := &TraceFile{Materials: sm.Materials.Tags()}
	for _, ts := range sm.Textures.Slots() {
		tf.Textures = append(tf.Textures, TraceTexture{Tag: ts.Tag, Slot: ts.Slot, Handle: uint32(ts.Handle)})
	}
	for _, dr := range draws {
		st := &dr.State
		td := TraceDraw{
			Object:   dr.Object,
			Part:     dr.Placement.Name,
			Shape:    dr.Placement.Shape,
			Textured: st.UseTexture,
			Color:    st.Color,
			UVScale:  st.UVScale,
			Material: st.Material.Tag,
			Model:    st.Model,
		}
		if st.UseTexture {
			td.Texture = dr.Placement.Texture
			td.Slot = st.TextureSlot
		}
		tf.Draws = append(tf.Draws, td)
	}
	return tf
}

func writeTrace(filename string, tf *TraceFile) error {
	f, err := os.Create(filename)
	if err != nil {
		return err
	}
	if err := encodeTrace(f, filepath.Ext(filename), tf); err != nil {
		errors.Log(f.Close())
		return err
	}
	return f.Close()
}

// encodeTrace writes the trace as YAML for a .yaml or .yml
// extension, and as TOML otherwise.
func encodeTrace(w io.Writer, ext string, tf *TraceFile) error {
	switch strings.ToLower(ext) {
	case ".yaml", ".yml":
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(tf); err != nil {
			return err
		}
		return enc.Close()
	}
	enc := toml.NewEncoder(w)
	enc.SetIndentTables(true)
	return enc.Encode(tf)
}
