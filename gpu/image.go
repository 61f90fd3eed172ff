// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gpu

import "fmt"

// Image is a decoded image in tightly packed 8-bit rows,
// ready for upload: Pix has Width * Height * Channels bytes,
// with the first row being the bottom of the picture (flipped
// vertically relative to the file, as OpenGL expects).
type Image struct {

	// Pix holds the pixel bytes, row by row.
	Pix []byte

	// Width and Height are the image size in pixels.
	Width, Height int

	// Channels is the number of 8-bit components per pixel:
	// 1 = gray, 2 = gray + alpha, 3 = RGB, 4 = RGBA.
	Channels int
}

// Stride returns the number of bytes per row.
func (im *Image) Stride() int {
	return im.Width * im.Channels
}

// Validate checks that the pixel buffer matches the image geometry.
func (im *Image) Validate() error {
	if im.Width <= 0 || im.Height <= 0 {
		return fmt.Errorf("gpu.Image: invalid size %dx%d", im.Width, im.Height)
	}
	if n := im.Stride() * im.Height; len(im.Pix) != n {
		return fmt.Errorf("gpu.Image: have %d pixel bytes, want %d", len(im.Pix), n)
	}
	return nil
}

// Release drops the pixel buffer so it can be garbage collected
// once the image has been uploaded.
func (im *Image) Release() {
	im.Pix = nil
}
