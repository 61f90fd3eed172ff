// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package glgpu

import (
	"fmt"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/smilinjake/CS-330-Computer-Graphics-and-Visualization/gpu"
)

// Textures uploads, binds and deletes 2D textures on the current
// OpenGL context. It implements [gpu.TextureUploader].
type Textures struct{}

// Upload creates a new 2D texture from the given 3 (RGB) or
// 4 (RGBA) channel image, with repeat wrapping, linear filtering
// and mipmaps.
func (tx *Textures) Upload(img *gpu.Image) (gpu.Handle, error) {
	if err := img.Validate(); err != nil {
		return 0, err
	}
	var internal int32
	var format uint32
	switch img.Channels {
	case 3:
		internal, format = gl.RGB8, gl.RGB
	case 4:
		internal, format = gl.RGBA8, gl.RGBA
	default:
		return 0, fmt.Errorf("glgpu.Textures: unsupported image with %d channels", img.Channels)
	}

	var tex uint32
	gl.GenTextures(1, &tex)
	gl.BindTexture(gl.TEXTURE_2D, tex)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_S, gl.REPEAT)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_T, gl.REPEAT)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, gl.LINEAR)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, gl.LINEAR)

	// rows are tightly packed, which RGB rows may not be 4-byte aligned for
	gl.PixelStorei(gl.UNPACK_ALIGNMENT, 1)
	gl.TexImage2D(gl.TEXTURE_2D, 0, internal, int32(img.Width), int32(img.Height), 0, format, gl.UNSIGNED_BYTE, gl.Ptr(img.Pix))
	gl.GenerateMipmap(gl.TEXTURE_2D)
	gl.BindTexture(gl.TEXTURE_2D, 0)

	if code := gl.GetError(); code != gl.NO_ERROR {
		gl.DeleteTextures(1, &tex)
		return 0, fmt.Errorf("glgpu.Textures: upload failed with GL error 0x%x", code)
	}
	return gpu.Handle(tex), nil
}

// Bind binds the texture to the given texture unit.
func (tx *Textures) Bind(unit int, h gpu.Handle) {
	gl.ActiveTexture(gl.TEXTURE0 + uint32(unit))
	gl.BindTexture(gl.TEXTURE_2D, uint32(h))
}

// Delete deletes the texture.
func (tx *Textures) Delete(h gpu.Handle) {
	tex := uint32(h)
	gl.DeleteTextures(1, &tex)
}
