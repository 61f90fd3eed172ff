// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package imagefile decodes image files into tightly packed,
// vertically flipped pixels ready for upload as GPU textures.
// png, jpeg, gif, tiff, bmp, and webp are supported.
package imagefile

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"io"
	"io/fs"
	"os"

	"github.com/anthonynsimon/bild/transform"
	"github.com/h2non/filetype"
	"github.com/smilinjake/CS-330-Computer-Graphics-and-Visualization/gpu"
	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"
)

// ErrNotImage is returned for a file whose content is not
// a recognized image format.
var ErrNotImage = errors.New("imagefile: not an image")

// Decoder decodes image files from a file system.
type Decoder struct {

	// FS is the file system to read from; if nil, the
	// operating system file system is used.
	FS fs.FS
}

// Decode reads and decodes the image file at path.
func (dc *Decoder) Decode(path string) (*gpu.Image, error) {
	var f fs.File
	var err error
	if dc.FS != nil {
		f, err = dc.FS.Open(path)
	} else {
		f, err = os.Open(path)
	}
	if err != nil {
		return nil, err
	}
	defer f.Close()
	img, err := Read(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return img, nil
}

// Read decodes an image from the given reader. The channel count is
// the one stored in the file where the format records it (png), and
// otherwise that of the decoded image; see [Channels].
func Read(r io.Reader) (*gpu.Image, error) {
	b, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	if !filetype.IsImage(b) {
		return nil, ErrNotImage
	}
	im, _, err := image.Decode(bytes.NewReader(b))
	if err != nil {
		return nil, err
	}
	nc := fileChannels(b)
	if nc == 0 {
		nc = Channels(im)
	}
	return pack(im, nc), nil
}

// fileChannels returns the channel count in the header of a png file,
// or 0 for other formats and for paletted png files.
func fileChannels(b []byte) int {
	// color type follows the signature, the IHDR chunk header,
	// the size and the bit depth
	if !filetype.Is(b, "png") || len(b) < 26 {
		return 0
	}
	switch b[25] {
	case 0:
		return 1
	case 4:
		return 2
	case 2:
		return 3
	case 6:
		return 4
	}
	return 0
}

// Channels returns the number of 8-bit channels needed to hold the
// given image: 1 for gray, 3 for color images with no transparency,
// and 4 otherwise.
func Channels(im image.Image) int {
	switch im.(type) {
	case *image.Gray, *image.Gray16:
		return 1
	}
	if op, ok := im.(interface{ Opaque() bool }); ok && op.Opaque() {
		return 3
	}
	return 4
}

// FromImage returns the pixels of the given image flipped vertically
// (bottom row first) and packed with [Channels] bytes per pixel.
// Colors are not alpha premultiplied.
func FromImage(im image.Image) *gpu.Image {
	return pack(im, Channels(im))
}

func pack(im image.Image, nc int) *gpu.Image {
	fl := transform.FlipV(im)
	sz := fl.Bounds().Size()
	img := &gpu.Image{Width: sz.X, Height: sz.Y, Channels: nc}
	img.Pix = make([]byte, 0, img.Stride()*sz.Y)
	for y := range sz.Y {
		row := fl.Pix[y*fl.Stride : y*fl.Stride+4*sz.X]
		for x := 0; x < len(row); x += 4 {
			px := row[x : x+4]
			switch nc {
			case 1:
				img.Pix = append(img.Pix, px[0])
			case 2:
				img.Pix = append(img.Pix, unpremultiply(px[0], px[3]), px[3])
			case 3:
				img.Pix = append(img.Pix, px[0], px[1], px[2])
			default:
				img.Pix = append(img.Pix, unpremultiply(px[0], px[3]), unpremultiply(px[1], px[3]), unpremultiply(px[2], px[3]), px[3])
			}
		}
	}
	return img
}

func unpremultiply(c, a uint8) uint8 {
	switch a {
	case 0:
		return 0
	case 0xff:
		return c
	}
	return uint8(min(uint32(c)*0xff/uint32(a), 0xff))
}
