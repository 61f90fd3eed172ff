// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command tabletop composes the tabletop still life scene. The trace
// command renders it headless and reports every draw; the gl command
// loads the scene textures on a real OpenGL context.
package main

import (
	"cogentcore.org/core/cli"
	"github.com/mitchellh/go-homedir"
)

// Config is the configuration information for the tabletop cli.
// It can be set from flags or a tabletop.toml file.
type Config struct {

	// TextureDir is the directory the scene texture image files are read from.
	TextureDir string `default:"textures" flag:"d,dir"`

	// Frames is the number of frames to render.
	Frames int `default:"1" flag:"n,frames"`

	// Out is a file to write the draw list of one frame to,
	// as YAML if it ends in .yaml or .yml and TOML otherwise.
	Out string `flag:"o,out"`

	// Synthetic uses generated images in place of the texture files,
	// so that a trace can be made without them.
	Synthetic bool `cmd:"trace" flag:"synthetic"`

	// Width and Height are the size of the hidden window for the gl command.
	Width  int `cmd:"gl" default:"800"`
	Height int `cmd:"gl" default:"600"`

	// Vert and Frag are GLSL 410 vertex and fragment shader files.
	// If both are given, the gl command renders its uniforms into them.
	Vert string `cmd:"gl"`
	Frag string `cmd:"gl"`
}

func main() {
	opts := cli.DefaultOptions("tabletop", "Composes and renders a tabletop still life scene.")
	opts.DefaultFiles = []string{"tabletop.toml"}
	cli.Run(opts, &Config{},
		&cli.Cmd[*Config]{Func: Trace, Name: "trace", Doc: "Trace renders frames without a GPU and reports every draw.", Root: true},
		&cli.Cmd[*Config]{Func: GL, Name: "gl", Doc: "GL loads the scene textures on an OpenGL context and reports them."},
	)
}

// textureDir returns the texture directory with a leading ~ expanded.
// Logging goes through the default logger, whose level cli sets from
// the -v, -vv and -q flags.
func textureDir(c *Config) (string, error) {
	return homedir.Expand(c.TextureDir)
}
