// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package record provides a [Recorder] that stands in for the GPU and
// the mesh library, recording every call made on it. It is used for
// testing and for tracing a scene without a graphics context.
package record

import (
	"fmt"
	"maps"
	"slices"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/smilinjake/CS-330-Computer-Graphics-and-Visualization/gpu"
	"github.com/smilinjake/CS-330-Computer-Graphics-and-Visualization/mesh"
)

// Call is one recorded call: the method name, the uniform name or
// other subject of the call, and its value.
type Call struct {
	Method string
	Name   string
	Value  any
}

func (c Call) String() string {
	if c.Name == "" {
		return fmt.Sprintf("%s(%v)", c.Method, c.Value)
	}
	return fmt.Sprintf("%s(%s, %v)", c.Method, c.Name, c.Value)
}

// DrawCall is one recorded mesh draw, with a snapshot of all the
// uniform values that were set at the time.
type DrawCall struct {
	Kind     mesh.Kind
	Uniforms map[string]any
}

// Recorder implements [gpu.Uniforms], [gpu.TextureUploader] and
// [mesh.Library] by recording the calls made on it.
// The zero value is ready to use.
type Recorder struct {

	// Calls are all the calls in the order they were made.
	Calls []Call

	// Values has the last value set for each uniform name.
	Values map[string]any

	// Uploads are the images uploaded, indexed by handle - 1.
	// Their pixels are copied since the caller releases them.
	Uploads []gpu.Image

	// Bound maps each texture unit to the handle last bound to it.
	Bound map[int]gpu.Handle

	// Deleted are the deleted handles, in deletion order.
	Deleted []gpu.Handle

	// Loaded are the mesh kinds that have been loaded, in load order.
	Loaded []mesh.Kind

	// Draws are the mesh draws, in order.
	Draws []DrawCall

	// UploadErr, if set, is returned by Upload.
	UploadErr error

	// MeshErr, if set, is returned by Load and Draw for the given kinds.
	MeshErr map[mesh.Kind]error
}

// New returns a new empty Recorder.
func New() *Recorder {
	return &Recorder{}
}

func (rc *Recorder) set(method, name string, v any) {
	if rc.Values == nil {
		rc.Values = make(map[string]any)
	}
	rc.Values[name] = v
	rc.Calls = append(rc.Calls, Call{Method: method, Name: name, Value: v})
}

func (rc *Recorder) SetInt(name string, v int32) { rc.set("SetInt", name, v) }

func (rc *Recorder) SetBool(name string, v bool) { rc.set("SetBool", name, v) }

func (rc *Recorder) SetFloat(name string, v float32) { rc.set("SetFloat", name, v) }

func (rc *Recorder) SetVec2(name string, v mgl32.Vec2) { rc.set("SetVec2", name, v) }

func (rc *Recorder) SetVec3(name string, v mgl32.Vec3) { rc.set("SetVec3", name, v) }

func (rc *Recorder) SetVec4(name string, v mgl32.Vec4) { rc.set("SetVec4", name, v) }

func (rc *Recorder) SetMat4(name string, v mgl32.Mat4) { rc.set("SetMat4", name, v) }

func (rc *Recorder) SetSampler2D(name string, unit int32) { rc.set("SetSampler2D", name, unit) }

// Upload records a copy of the image and returns the next handle,
// starting at 1.
func (rc *Recorder) Upload(img *gpu.Image) (gpu.Handle, error) {
	if rc.UploadErr != nil {
		return 0, rc.UploadErr
	}
	cp := *img
	cp.Pix = append([]byte(nil), img.Pix...)
	rc.Uploads = append(rc.Uploads, cp)
	h := gpu.Handle(len(rc.Uploads))
	rc.Calls = append(rc.Calls, Call{Method: "Upload", Value: h})
	return h, nil
}

func (rc *Recorder) Bind(unit int, h gpu.Handle) {
	if rc.Bound == nil {
		rc.Bound = make(map[int]gpu.Handle)
	}
	rc.Bound[unit] = h
	rc.Calls = append(rc.Calls, Call{Method: "Bind", Name: fmt.Sprintf("unit %d", unit), Value: h})
}

func (rc *Recorder) Delete(h gpu.Handle) {
	rc.Deleted = append(rc.Deleted, h)
	rc.Calls = append(rc.Calls, Call{Method: "Delete", Value: h})
}

// Load records the kind as loaded. Loading a kind twice records it once.
func (rc *Recorder) Load(kind mesh.Kind) error {
	if err := rc.MeshErr[kind]; err != nil {
		return err
	}
	if !rc.IsLoaded(kind) {
		rc.Loaded = append(rc.Loaded, kind)
	}
	rc.Calls = append(rc.Calls, Call{Method: "Load", Value: kind})
	return nil
}

// Draw records a draw of the kind with the current uniform values.
// It is an error to draw a kind that has not been loaded.
func (rc *Recorder) Draw(kind mesh.Kind) error {
	if err := rc.MeshErr[kind]; err != nil {
		return err
	}
	if !rc.IsLoaded(kind) {
		return fmt.Errorf("record: mesh %v is not loaded", kind)
	}
	rc.Draws = append(rc.Draws, DrawCall{Kind: kind, Uniforms: maps.Clone(rc.Values)})
	rc.Calls = append(rc.Calls, Call{Method: "Draw", Value: kind})
	return nil
}

// IsLoaded returns whether the given kind has been loaded.
func (rc *Recorder) IsLoaded(kind mesh.Kind) bool {
	return slices.Contains(rc.Loaded, kind)
}

// Reset forgets all recorded calls, keeping the error settings.
func (rc *Recorder) Reset() {
	*rc = Recorder{UploadErr: rc.UploadErr, MeshErr: rc.MeshErr}
}
