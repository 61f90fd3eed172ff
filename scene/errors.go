// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scene

import (
	"errors"
	"fmt"
)

var (
	// ErrDecode is matched by every [DecodeError].
	ErrDecode = errors.New("texture decode failed")

	// ErrLookupMiss is matched by every [LookupMissError].
	ErrLookupMiss = errors.New("tag not found")

	// ErrCapacityExceeded is returned when loading a texture into a
	// table that already holds [MaxTextureSlots] textures.
	ErrCapacityExceeded = errors.New("texture slot table is full")

	// ErrDuplicateTag is returned when a texture or material is added
	// under a tag that is already in use. The existing entry is kept.
	ErrDuplicateTag = errors.New("duplicate tag")
)

// DecodeError reports a texture file that could not be read, decoded,
// or uploaded, including images with an unsupported channel count.
// The tag is not registered.
type DecodeError struct {
	Path string
	Tag  string

	// Channels is the decoded channel count, if decoding got that far.
	Channels int

	// Err is the underlying cause, if any.
	Err error
}

func (e *DecodeError) Error() string {
	switch {
	case e.Err != nil:
		return fmt.Sprintf("texture %q (%s): %v", e.Tag, e.Path, e.Err)
	case e.Channels != 0:
		return fmt.Sprintf("texture %q (%s): unsupported image with %d channels", e.Tag, e.Path, e.Channels)
	}
	return fmt.Sprintf("texture %q (%s): could not load image", e.Tag, e.Path)
}

func (e *DecodeError) Unwrap() error { return e.Err }

func (e *DecodeError) Is(target error) bool { return target == ErrDecode }

// LookupMissError reports a texture or material tag that was not found.
type LookupMissError struct {

	// Table is "texture" or "material".
	Table string
	Tag   string
}

func (e *LookupMissError) Error() string {
	return fmt.Sprintf("%s %q not found", e.Table, e.Tag)
}

func (e *LookupMissError) Is(target error) bool { return target == ErrLookupMiss }

// duplicateError wraps [ErrDuplicateTag] with the offending table and tag.
func duplicateError(table, tag string) error {
	return fmt.Errorf("%s %q: %w", table, tag, ErrDuplicateTag)
}
