// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gpu

// Driver is the handle-based graphics API that all of the gpu types
// operate through. All calls act on the current context, which must
// be current on the calling thread. See glgpu for the OpenGL version,
// and gputest for a recording version used in tests.
//
// Handles are nonzero; 0 is used to unbind.
type Driver interface {
	// CreateShader returns a new shader object of the given type.
	CreateShader(typ ShaderTypes) uint32

	// ShaderSource replaces the source code of the shader.
	ShaderSource(shader uint32, src string)

	// CompileShader compiles the shader and reports success.
	CompileShader(shader uint32) bool

	// ShaderLog returns the compiler info log for the shader.
	ShaderLog(shader uint32) string

	DeleteShader(shader uint32)

	CreateProgram() uint32
	AttachShader(program, shader uint32)
	DetachShader(program, shader uint32)

	// LinkProgram links the attached shaders and reports success.
	LinkProgram(program uint32) bool

	// ProgramLog returns the linker info log for the program.
	ProgramLog(program uint32) string

	// UseProgram makes the program current; 0 for none.
	UseProgram(program uint32)
	DeleteProgram(program uint32)

	// UniformLocation returns the location of the named uniform
	// in a linked program, or [NoLocation].
	UniformLocation(program uint32, name string) int32

	// Uniform4f sets a vec4 uniform of the current program.
	Uniform4f(location int32, x, y, z, w float32)

	GenVertexArray() uint32
	BindVertexArray(array uint32)
	DeleteVertexArray(array uint32)

	GenBuffer() uint32
	BindArrayBuffer(buffer uint32)

	// ArrayBufferData uploads data to the bound array buffer
	// for static (upload once, draw many) use.
	ArrayBufferData(data []float32)
	DeleteBuffer(buffer uint32)

	EnableAttrib(slot uint32)
	DisableAttrib(slot uint32)

	// AttribPointer associates the slot with float components
	// read from the bound array buffer at the given byte stride
	// and offset.
	AttribPointer(slot uint32, components, stride, offset int)

	ClearColor(r, g, b, a float32)

	// Clear clears the color buffer.
	Clear()

	Viewport(x, y, width, height int)

	// Wireframe renders polygons as lines if on.
	Wireframe(on bool)

	// DrawTriangles draws non-indexed triangles from the
	// bound vertex array.
	DrawTriangles(first, count int)
}
