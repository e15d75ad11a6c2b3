// Copyright (c) 2019, The GoKi Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package glgpu

import (
	"github.com/go-gl/gl/v4.1-core/gl"
)

func (dr *Driver) GenVertexArray() uint32 {
	var vao uint32
	gl.GenVertexArrays(1, &vao)
	return vao
}

func (dr *Driver) BindVertexArray(array uint32) {
	gl.BindVertexArray(array)
}

func (dr *Driver) DeleteVertexArray(array uint32) {
	gl.DeleteVertexArrays(1, &array)
}

func (dr *Driver) GenBuffer() uint32 {
	var vbo uint32
	gl.GenBuffers(1, &vbo)
	return vbo
}

func (dr *Driver) BindArrayBuffer(buffer uint32) {
	gl.BindBuffer(gl.ARRAY_BUFFER, buffer)
}

// ArrayBufferData transfers data to the bound array buffer with
// STATIC_DRAW usage.
func (dr *Driver) ArrayBufferData(data []float32) {
	if len(data) == 0 {
		gl.BufferData(gl.ARRAY_BUFFER, 0, nil, gl.STATIC_DRAW)
		return
	}
	gl.BufferData(gl.ARRAY_BUFFER, len(data)*4, gl.Ptr(data), gl.STATIC_DRAW)
}

func (dr *Driver) DeleteBuffer(buffer uint32) {
	gl.DeleteBuffers(1, &buffer)
}

func (dr *Driver) EnableAttrib(slot uint32) {
	gl.EnableVertexAttribArray(slot)
}

func (dr *Driver) DisableAttrib(slot uint32) {
	gl.DisableVertexAttribArray(slot)
}

func (dr *Driver) AttribPointer(slot uint32, components, stride, offset int) {
	gl.VertexAttribPointerWithOffset(slot, int32(components), gl.FLOAT, false, int32(stride), uintptr(offset))
}
