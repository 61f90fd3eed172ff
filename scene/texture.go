// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scene

import (
	"log/slog"

	"cogentcore.org/core/base/ordmap"
	"github.com/smilinjake/CS-330-Computer-Graphics-and-Visualization/gpu"
)

// MaxTextureSlots is the maximum number of textures in a [TextureTable],
// matching the 16 texture units that are portably available.
const MaxTextureSlots = 16

// NoSlot is the slot index reported for a texture that is not loaded.
const NoSlot = -1

// Decoder decodes image files for upload as textures.
// Images must be flipped vertically on load.
type Decoder interface {
	Decode(path string) (*gpu.Image, error)
}

// TextureSlot is one loaded texture: its tag, its GPU handle,
// and the texture unit it is bound to.
type TextureSlot struct {
	Tag    string
	Handle gpu.Handle

	// Slot is the texture unit index, equal to the load order.
	Slot int
}

// TextureTable is a bounded table of textures, each loaded from an
// image file under a unique tag and bound to the texture unit equal
// to its load order.
type TextureTable struct {

	// Decoder decodes image files.
	Decoder Decoder

	// GPU uploads, binds and deletes textures.
	GPU gpu.TextureUploader

	slots ordmap.Map[string, TextureSlot]
}

// NewTextureTable returns a new empty table using the given collaborators.
func NewTextureTable(dec Decoder, gp gpu.TextureUploader) *TextureTable {
	return &TextureTable{Decoder: dec, GPU: gp}
}

// Load decodes the image file at path, uploads it as a texture and
// registers it under tag in the next free slot. Only 3-channel (RGB)
// and 4-channel (RGBA) images are supported; anything else, or a file
// that cannot be read, returns a [DecodeError] and registers nothing.
// A tag that is already loaded returns [ErrDuplicateTag] without
// touching the file, and a full table returns [ErrCapacityExceeded].
func (tt *TextureTable) Load(path, tag string) error {
	if _, has := tt.slots.IndexByKeyTry(tag); has {
		return duplicateError("texture", tag)
	}
	if tt.slots.Len() >= MaxTextureSlots {
		return ErrCapacityExceeded
	}
	img, err := tt.Decoder.Decode(path)
	if err != nil {
		return &DecodeError{Path: path, Tag: tag, Err: err}
	}
	if img == nil {
		return &DecodeError{Path: path, Tag: tag}
	}
	if img.Channels != 3 && img.Channels != 4 {
		return &DecodeError{Path: path, Tag: tag, Channels: img.Channels}
	}
	slog.Info("loaded texture image", "file", path, "width", img.Width, "height", img.Height, "channels", img.Channels)
	h, err := tt.GPU.Upload(img)
	img.Release()
	if err != nil {
		return &DecodeError{Path: path, Tag: tag, Channels: img.Channels, Err: err}
	}
	slot := tt.slots.Len()
	tt.slots.Add(tag, TextureSlot{Tag: tag, Handle: h, Slot: slot})
	return nil
}

// BindAll binds every loaded texture to the texture unit of its slot.
// It must be called after all loads and before drawing.
func (tt *TextureTable) BindAll() {
	for _, kv := range tt.slots.Order {
		tt.GPU.Bind(kv.Value.Slot, kv.Value.Handle)
	}
}

// FindHandle returns the GPU handle of the texture with the given tag.
func (tt *TextureTable) FindHandle(tag string) (gpu.Handle, bool) {
	ts, ok := tt.slots.ValueByKeyTry(tag)
	return ts.Handle, ok
}

// FindSlot returns the texture unit of the texture with the given tag,
// or [NoSlot] and false if it is not loaded.
func (tt *TextureTable) FindSlot(tag string) (int, bool) {
	ts, ok := tt.slots.ValueByKeyTry(tag)
	if !ok {
		return NoSlot, false
	}
	return ts.Slot, true
}

// Len returns the number of loaded textures.
func (tt *TextureTable) Len() int {
	return tt.slots.Len()
}

// Slots returns the loaded textures in slot order.
func (tt *TextureTable) Slots() []TextureSlot {
	return tt.slots.Values()
}

// Destroy deletes every loaded texture from the GPU and empties the table.
func (tt *TextureTable) Destroy() {
	for _, kv := range tt.slots.Order {
		tt.GPU.Delete(kv.Value.Handle)
	}
	tt.slots.Reset()
}
