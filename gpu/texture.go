// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gpu

// Handle is an opaque GPU texture object id, as returned by
// [TextureUploader.Upload]. The zero Handle is never a valid texture.
type Handle uint32

// TextureUploader is the set of GPU texture operations needed to
// manage a flat table of 2D textures bound to fixed texture units.
type TextureUploader interface {

	// Upload creates a 2D texture from the given image, with repeat
	// wrapping in both directions, linear min / mag filtering and
	// generated mipmaps. The texture is bound while it is configured
	// and unbound before returning.
	Upload(img *Image) (Handle, error)

	// Bind makes the given texture active on texture unit unit.
	Bind(unit int, h Handle)

	// Delete releases the given texture from device memory.
	Delete(h Handle)
}
