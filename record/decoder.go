// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package record

import (
	"fmt"
	"io/fs"
	"path/filepath"

	"github.com/smilinjake/CS-330-Computer-Graphics-and-Visualization/gpu"
)

// Decoder is an image decoder that returns synthetic images instead of
// reading files. Each path decodes to a new image of the configured
// size and channel count, so the caller may release it.
type Decoder struct {

	// Width and Height of the images. Zero means 2 x 2.
	Width, Height int

	// Channels per pixel for any file not in [Decoder.FileChannels].
	// Zero means 3.
	Channels int

	// FileChannels overrides Channels by file base name.
	FileChannels map[string]int

	// Missing are file base names that fail to decode as if absent.
	Missing map[string]bool

	// Decoded are the paths decoded, in order.
	Decoded []string
}

// Decode returns a synthetic image for the given path.
func (dc *Decoder) Decode(path string) (*gpu.Image, error) {
	dc.Decoded = append(dc.Decoded, path)
	base := filepath.Base(path)
	if dc.Missing[base] {
		return nil, fmt.Errorf("open %s: %w", path, fs.ErrNotExist)
	}
	ch := dc.Channels
	if c, ok := dc.FileChannels[base]; ok {
		ch = c
	}
	if ch == 0 {
		ch = 3
	}
	return Image(dc.Width, dc.Height, ch), nil
}

// Image returns a new image of the given size (2 x 2 if zero) and
// channel count, with every byte set to its index modulo 256.
func Image(width, height, channels int) *gpu.Image {
	if width <= 0 || height <= 0 {
		width, height = 2, 2
	}
	img := &gpu.Image{Width: width, Height: height, Channels: channels}
	img.Pix = make([]byte, img.Stride()*height)
	for i := range img.Pix {
		img.Pix[i] = byte(i)
	}
	return img
}
