// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mesh

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKindText(t *testing.T) {
	var got Kind
	require.NoError(t, got.UnmarshalText([]byte("torus")))
	assert.Equal(t, Torus, got)
	assert.Equal(t, "tapered-cylinder", TaperedCylinder.String())
	assert.Equal(t, "42", Kind(42).String())

	b, err := Pyramid.MarshalText()
	require.NoError(t, err)
	assert.Equal(t, "pyramid", string(b))

	k := Box
	assert.Error(t, k.SetString("teapot"))
	assert.Equal(t, Box, k)
}

func TestKindValues(t *testing.T) {
	ks := KindValues()
	assert.Len(t, ks, int(KindN))
	assert.Equal(t, Plane, ks[0])
	assert.Equal(t, Pyramid, ks[len(ks)-1])
	assert.Len(t, Sphere.Values(), 8)
	assert.Equal(t, "Torus is a ring lying in the XY plane.", Torus.Desc())
}
