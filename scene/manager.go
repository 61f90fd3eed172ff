// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scene

import (
	"errors"
	"log/slog"
	"path/filepath"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/smilinjake/CS-330-Computer-Graphics-and-Visualization/gpu"
	"github.com/smilinjake/CS-330-Computer-Graphics-and-Visualization/mesh"
)

// Manager prepares the scene resources and renders the tabletop
// still life through its collaborators.
type Manager struct {

	// Uniforms receives all the named shader values.
	Uniforms gpu.Uniforms

	// Meshes loads and draws the primitive meshes.
	Meshes mesh.Library

	// Textures is the texture slot table.
	Textures *TextureTable

	// Materials is the material table.
	Materials MaterialTable

	// Lights are the light sources pushed by Prepare.
	Lights Lights

	// TextureDir is the directory the scene texture files are read from.
	TextureDir string
}

// NewManager returns a new Manager drawing through the given collaborators,
// with the scene lights and textures read from texDir.
func NewManager(u gpu.Uniforms, tx gpu.TextureUploader, dec Decoder, meshes mesh.Library, texDir string) *Manager {
	return &Manager{
		Uniforms:   u,
		Meshes:     meshes,
		Textures:   NewTextureTable(dec, tx),
		Lights:     SceneLights(),
		TextureDir: texDir,
	}
}

// Prepare defines the materials, sets the lights, loads and binds the
// textures and loads the meshes, in that order. Failures are logged and
// do not stop the later steps; all of them are returned joined together.
// Calling Prepare again keeps the existing textures and materials and
// reports each of them as [ErrDuplicateTag].
func (sm *Manager) Prepare() error {
	var errs []error
	for _, m := range Materials() {
		if err := sm.Materials.Define(m); err != nil {
			slog.Error("could not define material", "material", m.Tag, "error", err)
			errs = append(errs, err)
		}
	}

	sm.Lights.Set(sm.Uniforms)

	for _, tf := range TextureFiles {
		fn := filepath.Join(sm.TextureDir, tf.File)
		if err := sm.Textures.Load(fn, tf.Tag); err != nil {
			slog.Error("could not load texture", "file", fn, "error", err)
			errs = append(errs, err)
		}
	}
	sm.Textures.BindAll()

	for _, k := range MeshKinds {
		if err := sm.Meshes.Load(k); err != nil {
			slog.Error("could not load mesh", "mesh", k, "error", err)
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// DrawState resolves the given placement into the full state for its
// draw. An unknown texture falls back to the placement color, or to
// [FallbackColor] if that is zero, and an unknown material to
// [DefaultMaterial]. Either miss is logged and returned as a
// [LookupMissError] along with the usable fallback state.
func (sm *Manager) DrawState(p Placement) (DrawState, error) {
	var errs []error
	ds := DrawState{
		Model:   p.Transform.Matrix(),
		Color:   p.Color,
		UVScale: p.UVScale,
	}
	if ds.UVScale == (mgl32.Vec2{}) {
		ds.UVScale = mgl32.Vec2{1, 1}
	}
	if p.Texture != "" {
		if slot, ok := sm.Textures.FindSlot(p.Texture); ok {
			ds.UseTexture = true
			ds.TextureSlot = int32(slot)
		} else {
			err := &LookupMissError{Table: "texture", Tag: p.Texture}
			slog.Warn("drawing flat color in place of texture", "part", p.Name, "error", err)
			errs = append(errs, err)
			if ds.Color == (mgl32.Vec4{}) {
				ds.Color = FallbackColor
			}
		}
	}
	mat, err := sm.Materials.Find(p.Material)
	if err != nil {
		slog.Warn("drawing default material", "part", p.Name, "error", err)
		errs = append(errs, err)
		mat = DefaultMaterial
	}
	ds.Material = mat
	return ds, errors.Join(errs...)
}

// Frame returns the resolved draws of one frame, in drawing order,
// along with any lookup misses.
func (sm *Manager) Frame() ([]Draw, error) {
	var draws []Draw
	var errs []error
	for _, ob := range Objects() {
		for _, p := range ob.Placements {
			ds, err := sm.DrawState(p)
			if err != nil {
				errs = append(errs, err)
			}
			draws = append(draws, Draw{Object: ob.Name, Placement: p, State: ds})
		}
	}
	return draws, errors.Join(errs...)
}

// RenderObject draws each placement of the given object: it pushes the
// full draw state and then draws the mesh.
func (sm *Manager) RenderObject(ob Object) error {
	var errs []error
	for _, p := range ob.Placements {
		ds, err := sm.DrawState(p)
		if err != nil {
			errs = append(errs, err)
		}
		ds.Apply(sm.Uniforms)
		if err := sm.Meshes.Draw(p.Shape); err != nil {
			slog.Error("could not draw mesh", "object", ob.Name, "part", p.Name, "mesh", p.Shape, "error", err)
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// Render draws one full frame of the scene.
func (sm *Manager) Render() error {
	var errs []error
	for _, ob := range Objects() {
		if err := sm.RenderObject(ob); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// Destroy releases the GPU textures. The material table is kept.
func (sm *Manager) Destroy() {
	sm.Textures.Destroy()
}
