// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package glgpu

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/mathgl/mgl32"
)

// Program is a linked shader program that receives named uniform
// values. It implements [gpu.Uniforms]; all calls must be made with
// the program's context current and the program in use.
type Program struct {

	// Handle is the OpenGL program object.
	Handle uint32

	// locs caches uniform locations by name; -1 is not found.
	locs map[string]int32
}

// NewProgram compiles and links the given vertex and fragment shader
// sources (GLSL version 410) into a new program.
func NewProgram(vertSrc, fragSrc string) (*Program, error) {
	vs, err := compileShader(gl.VERTEX_SHADER, vertSrc)
	if err != nil {
		return nil, err
	}
	defer gl.DeleteShader(vs)
	fs, err := compileShader(gl.FRAGMENT_SHADER, fragSrc)
	if err != nil {
		return nil, err
	}
	defer gl.DeleteShader(fs)

	handle := gl.CreateProgram()
	gl.AttachShader(handle, vs)
	gl.AttachShader(handle, fs)
	gl.LinkProgram(handle)
	gl.DetachShader(handle, vs)
	gl.DetachShader(handle, fs)

	var status int32
	gl.GetProgramiv(handle, gl.LINK_STATUS, &status)
	if status == gl.FALSE {
		var lgLength int32
		gl.GetProgramiv(handle, gl.INFO_LOG_LENGTH, &lgLength)
		lg := strings.Repeat("\x00", int(lgLength+1))
		gl.GetProgramInfoLog(handle, lgLength, nil, gl.Str(lg))
		gl.DeleteProgram(handle)
		return nil, fmt.Errorf("glgpu.NewProgram: failed to link program: %v", strings.TrimRight(lg, "\x00"))
	}
	return &Program{Handle: handle}, nil
}

func compileShader(typ uint32, src string) (uint32, error) {
	handle := gl.CreateShader(typ)
	csources, free := gl.Strs(cString(src))
	gl.ShaderSource(handle, 1, csources, nil)
	free()
	gl.CompileShader(handle)

	var status int32
	gl.GetShaderiv(handle, gl.COMPILE_STATUS, &status)
	if status == gl.FALSE {
		var logLength int32
		gl.GetShaderiv(handle, gl.INFO_LOG_LENGTH, &logLength)
		msg := strings.Repeat("\x00", int(logLength+1))
		gl.GetShaderInfoLog(handle, logLength, nil, gl.Str(msg))
		gl.DeleteShader(handle)
		return 0, fmt.Errorf("glgpu: failed to compile shader: %v", strings.TrimRight(msg, "\x00"))
	}
	return handle, nil
}

// cString returns the string null terminated, as gl.Str requires.
func cString(s string) string {
	if strings.HasSuffix(s, "\x00") {
		return s
	}
	return s + "\x00"
}

// Use makes this the active program.
func (pr *Program) Use() {
	gl.UseProgram(pr.Handle)
}

// Delete deletes the program.
func (pr *Program) Delete() {
	gl.DeleteProgram(pr.Handle)
	pr.Handle = 0
	pr.locs = nil
}

// Location returns the location of the named uniform, or -1 if the
// program has no active uniform of that name. Setting a value at -1
// is silently ignored by OpenGL.
func (pr *Program) Location(name string) int32 {
	if loc, ok := pr.locs[name]; ok {
		return loc
	}
	if pr.locs == nil {
		pr.locs = make(map[string]int32)
	}
	loc := gl.GetUniformLocation(pr.Handle, gl.Str(cString(name)))
	if loc < 0 {
		slog.Debug("glgpu.Program: uniform not found", "uniform", name)
	}
	pr.locs[name] = loc
	return loc
}

func (pr *Program) SetInt(name string, v int32) {
	gl.Uniform1i(pr.Location(name), v)
}

func (pr *Program) SetBool(name string, v bool) {
	var iv int32
	if v {
		iv = 1
	}
	gl.Uniform1i(pr.Location(name), iv)
}

func (pr *Program) SetFloat(name string, v float32) {
	gl.Uniform1f(pr.Location(name), v)
}

func (pr *Program) SetVec2(name string, v mgl32.Vec2) {
	gl.Uniform2f(pr.Location(name), v[0], v[1])
}

func (pr *Program) SetVec3(name string, v mgl32.Vec3) {
	gl.Uniform3f(pr.Location(name), v[0], v[1], v[2])
}

func (pr *Program) SetVec4(name string, v mgl32.Vec4) {
	gl.Uniform4f(pr.Location(name), v[0], v[1], v[2], v[3])
}

func (pr *Program) SetMat4(name string, v mgl32.Mat4) {
	gl.UniformMatrix4fv(pr.Location(name), 1, false, &v[0])
}

// SetSampler2D sets the named sampler to read from texture unit unit.
func (pr *Program) SetSampler2D(name string, unit int32) {
	gl.Uniform1i(pr.Location(name), unit)
}
