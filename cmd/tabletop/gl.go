// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"os"
	"runtime"

	"cogentcore.org/core/base/errors"
	"github.com/smilinjake/CS-330-Computer-Graphics-and-Visualization/glgpu"
	"github.com/smilinjake/CS-330-Computer-Graphics-and-Visualization/gpu"
	"github.com/smilinjake/CS-330-Computer-Graphics-and-Visualization/imagefile"
	"github.com/smilinjake/CS-330-Computer-Graphics-and-Visualization/record"
	"github.com/smilinjake/CS-330-Computer-Graphics-and-Visualization/scene"
)

// GL prepares the scene textures on a hidden OpenGL context and
// reports the texture table. Meshes are recorded, not drawn. If shader
// files are given, the scene uniforms of one frame are set on them.
func GL(c *Config) error {
	runtime.LockOSThread()
	defer runtime.UnlockOSThread()

	dir, err := textureDir(c)
	if err != nil {
		return err
	}
	cx, err := glgpu.NewContext(c.Width, c.Height)
	if err != nil {
		return err
	}
	defer cx.Destroy()

	rc := record.New()
	var uniforms gpu.Uniforms = rc
	if c.Vert != "" && c.Frag != "" {
		pr, err := loadProgram(c.Vert, c.Frag)
		if err != nil {
			return err
		}
		defer pr.Delete()
		pr.Use()
		uniforms = pr
	}

	sm := scene.NewManager(uniforms, &glgpu.Textures{}, &imagefile.Decoder{}, rc, dir)
	defer sm.Destroy()
	prepErr := sm.Prepare()
	drawErr := sm.Render()

	rp := newReport(os.Stdout)
	rp.title(fmt.Sprintf("OpenGL %s on %s, %d texture units", cx.Version(), cx.Renderer(), cx.MaxTextureUnits()))
	rp.textures(sm.Textures)
	rp.meshes(rc.IsLoaded)
	rp.summary(len(rc.Draws), 1)
	return errors.Join(prepErr, drawErr)
}

func loadProgram(vert, frag string) (*glgpu.Program, error) {
	vs, err := os.ReadFile(vert)
	if err != nil {
		return nil, err
	}
	fs, err := os.ReadFile(frag)
	if err != nil {
		return nil, err
	}
	return glgpu.NewProgram(string(vs), string(fs))
}
