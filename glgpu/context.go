// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package glgpu implements the gpu contracts on OpenGL 4.1 core,
// using go-gl. All calls must be made on the thread that owns the
// current context; see [NewContext].
package glgpu

import (
	"fmt"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"
)

// Context is an OpenGL 4.1 core context hosted by a hidden window,
// for hosts that have no window of their own (tools and checks).
type Context struct {
	win *glfw.Window
}

// NewContext initializes glfw, creates a hidden window of the given
// size with an OpenGL 4.1 core context, makes it current and loads
// the OpenGL functions. The calling goroutine must be locked to its
// OS thread (runtime.LockOSThread) for as long as the context is used.
func NewContext(width, height int) (*Context, error) {
	if err := glfw.Init(); err != nil {
		return nil, fmt.Errorf("glgpu: failed to initialize glfw: %w", err)
	}
	glfw.DefaultWindowHints()
	glfw.WindowHint(glfw.Visible, glfw.False)
	glfw.WindowHint(glfw.ContextVersionMajor, 4)
	glfw.WindowHint(glfw.ContextVersionMinor, 1)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)

	win, err := glfw.CreateWindow(width, height, "tabletop", nil, nil)
	if err != nil {
		glfw.Terminate()
		return nil, fmt.Errorf("glgpu: failed to create window: %w", err)
	}
	win.MakeContextCurrent()
	if err := gl.Init(); err != nil {
		win.Destroy()
		glfw.Terminate()
		return nil, fmt.Errorf("glgpu: failed to initialize OpenGL: %w", err)
	}
	return &Context{win: win}, nil
}

// Version returns the OpenGL version string of the context.
func (cx *Context) Version() string {
	return gl.GoStr(gl.GetString(gl.VERSION))
}

// Renderer returns the name of the renderer of the context.
func (cx *Context) Renderer() string {
	return gl.GoStr(gl.GetString(gl.RENDERER))
}

// MaxTextureUnits returns the number of texture units
// available to the fragment shader.
func (cx *Context) MaxTextureUnits() int {
	var n int32
	gl.GetIntegerv(gl.MAX_TEXTURE_IMAGE_UNITS, &n)
	return int(n)
}

// Destroy destroys the window and its context and terminates glfw.
func (cx *Context) Destroy() {
	if cx.win != nil {
		cx.win.Destroy()
		cx.win = nil
	}
	glfw.Terminate()
}
