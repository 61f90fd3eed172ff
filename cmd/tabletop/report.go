// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"io"

	"github.com/muesli/termenv"
	"github.com/smilinjake/CS-330-Computer-Graphics-and-Visualization/mesh"
	"github.com/smilinjake/CS-330-Computer-Graphics-and-Visualization/scene"
)

// report prints colored scene listings to a terminal.
type report struct {
	out *termenv.Output
}

func newReport(w io.Writer) *report {
	return &report{out: termenv.NewOutput(w)}
}

func (rp *report) title(s string) {
	fmt.Fprintln(rp.out, rp.out.String(s).Bold())
}

func (rp *report) textures(tt *scene.TextureTable) {
	rp.title(fmt.Sprintf("Textures (%d of %d slots)", tt.Len(), scene.MaxTextureSlots))
	for _, ts := range tt.Slots() {
		fmt.Fprintf(rp.out, "  %2d  %-10s  handle %d\n", ts.Slot, ts.Tag, ts.Handle)
	}
	for _, tf := range scene.TextureFiles {
		if _, ok := tt.FindSlot(tf.Tag); !ok {
			miss := rp.out.String(fmt.Sprintf("   -  %-10s  not loaded (%s)", tf.Tag, tf.File)).Foreground(rp.out.Color("1"))
			fmt.Fprintln(rp.out, miss)
		}
	}
}

func (rp *report) meshes(loaded func(mesh.Kind) bool) {
	n := 0
	var missing []mesh.Kind
	for _, k := range mesh.KindValues() {
		if loaded(k) {
			n++
		} else {
			missing = append(missing, k)
		}
	}
	rp.title(fmt.Sprintf("Meshes (%d of %d loaded)", n, mesh.KindN))
	for _, k := range missing {
		fmt.Fprintln(rp.out, rp.out.String(fmt.Sprintf("   -  %-16s  not loaded", k)).Foreground(rp.out.Color("1")))
	}
}

func (rp *report) draws(draws []scene.Draw) {
	rp.title(fmt.Sprintf("Draws (%d per frame)", len(draws)))
	obj := ""
	for i, dr := range draws {
		if dr.Object != obj {
			obj = dr.Object
			fmt.Fprintln(rp.out, rp.out.String(obj).Foreground(rp.out.Color("4")))
		}
		st := &dr.State
		shading := fmt.Sprintf("color %.2f", st.Color)
		if st.UseTexture {
			shading = fmt.Sprintf("texture %s (slot %d) uv %v", dr.Placement.Texture, st.TextureSlot, st.UVScale)
		}
		fmt.Fprintf(rp.out, "  %2d  %-20s %-16s %-8s %s\n", i, dr.Placement.Name, dr.Placement.Shape, st.Material.Tag, shading)
	}
}

func (rp *report) summary(draws, frames int) {
	fmt.Fprintln(rp.out, rp.out.String(fmt.Sprintf("%d draws in %d frames", draws, frames)).Faint())
}
