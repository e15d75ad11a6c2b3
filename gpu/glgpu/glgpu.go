// Copyright (c) 2019, The GoKi Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package glgpu implements [gpu.Driver] on OpenGL 4.1 core,
// the latest version available on all desktop platforms.
// All calls must be made on the thread where the context is current.
package glgpu

import (
	"errors"
	"fmt"
	"strings"

	"cogentcore.org/gltri/gpu"
	"github.com/go-gl/gl/v4.1-core/gl"
)

// ErrDriverInit is returned when the OpenGL function pointers
// cannot be loaded.
var ErrDriverInit = errors.New("glgpu: failed to initialize OpenGL")

// Init loads the OpenGL functions for the current context.
// A context must be current; see glfwwin.NewWindow.
func Init() error {
	if err := gl.Init(); err != nil {
		return fmt.Errorf("%w: %w", ErrDriverInit, err)
	}
	return nil
}

// Version returns the OpenGL version string of the current context.
func Version() string {
	return gl.GoStr(gl.GetString(gl.VERSION))
}

// CString returns a null-terminated version of the given string,
// as required for passing strings to OpenGL.
func CString(s string) string {
	if strings.HasSuffix(s, "\x00") {
		return s
	}
	return s + "\x00"
}

var _ gpu.Driver = (*Driver)(nil)

// Driver is the OpenGL [gpu.Driver]. It has no state of its own:
// all state lives in the current context.
type Driver struct{}

var glShaders = map[gpu.ShaderTypes]uint32{
	gpu.VertexShader:   gl.VERTEX_SHADER,
	gpu.FragmentShader: gl.FRAGMENT_SHADER,
}

func (dr *Driver) CreateShader(typ gpu.ShaderTypes) uint32 {
	return gl.CreateShader(glShaders[typ])
}

func (dr *Driver) ShaderSource(shader uint32, src string) {
	csources, free := gl.Strs(CString(src))
	gl.ShaderSource(shader, 1, csources, nil)
	free()
}

func (dr *Driver) CompileShader(shader uint32) bool {
	gl.CompileShader(shader)
	var status int32
	gl.GetShaderiv(shader, gl.COMPILE_STATUS, &status)
	return status != gl.FALSE
}

func (dr *Driver) ShaderLog(shader uint32) string {
	var logLength int32
	gl.GetShaderiv(shader, gl.INFO_LOG_LENGTH, &logLength)
	msg := strings.Repeat("\x00", int(logLength+1))
	gl.GetShaderInfoLog(shader, logLength, nil, gl.Str(msg))
	return strings.TrimRight(msg, "\x00")
}

func (dr *Driver) DeleteShader(shader uint32) {
	gl.DeleteShader(shader)
}

func (dr *Driver) CreateProgram() uint32 {
	return gl.CreateProgram()
}

func (dr *Driver) AttachShader(program, shader uint32) {
	gl.AttachShader(program, shader)
}

func (dr *Driver) DetachShader(program, shader uint32) {
	gl.DetachShader(program, shader)
}

func (dr *Driver) LinkProgram(program uint32) bool {
	gl.LinkProgram(program)
	var status int32
	gl.GetProgramiv(program, gl.LINK_STATUS, &status)
	return status != gl.FALSE
}

func (dr *Driver) ProgramLog(program uint32) string {
	var lgLength int32
	gl.GetProgramiv(program, gl.INFO_LOG_LENGTH, &lgLength)
	lg := strings.Repeat("\x00", int(lgLength+1))
	gl.GetProgramInfoLog(program, lgLength, nil, gl.Str(lg))
	return strings.TrimRight(lg, "\x00")
}

func (dr *Driver) UseProgram(program uint32) {
	gl.UseProgram(program)
}

func (dr *Driver) DeleteProgram(program uint32) {
	gl.DeleteProgram(program)
}

func (dr *Driver) UniformLocation(program uint32, name string) int32 {
	return gl.GetUniformLocation(program, gl.Str(CString(name)))
}

func (dr *Driver) Uniform4f(location int32, x, y, z, w float32) {
	gl.Uniform4f(location, x, y, z, w)
}
