// Copyright (c) 2019, The GoKi Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gpu

// GeometryBatch is one vertex array with its vertex buffer and
// attribute layout, drawn as a single call. The vertex data are
// uploaded once when the batch is made.
type GeometryBatch struct {

	// Vertices are the interleaved vertex components
	Vertices []float32

	// NVertices is the number of vertices, derived from the layout stride
	NVertices int

	// Layout describes how Vertices are read by the vertex shader
	Layout AttributeLayout

	drv         Driver
	vertexArray uint32
	buffer      uint32
}

// NewGeometryBatch allocates a vertex array and buffer, uploads the
// vertices, and binds the layout to the vertex array. The vertex
// array is left bound; the array buffer target is unbound.
func NewGeometryBatch(drv Driver, vertices []float32, layout AttributeLayout) *GeometryBatch {
	gb := &GeometryBatch{
		Vertices:  vertices,
		NVertices: VertexCount(len(vertices), layout.Stride()),
		Layout:    layout,
		drv:       drv,
	}
	gb.vertexArray = drv.GenVertexArray()
	gb.buffer = drv.GenBuffer()
	drv.BindVertexArray(gb.vertexArray)
	drv.BindArrayBuffer(gb.buffer)
	drv.ArrayBufferData(vertices)
	BindLayout(drv, layout)
	drv.BindArrayBuffer(0)
	return gb
}

// VertexCount returns the number of whole vertices in nfloats
// components at the given byte stride.
func VertexCount(nfloats, stride int) int {
	per := stride / FloatBytes
	if per == 0 {
		return 0
	}
	return nfloats / per
}

// VertexArray returns the vertex array handle, 0 if deleted.
func (gb *GeometryBatch) VertexArray() uint32 {
	return gb.vertexArray
}

// Buffer returns the vertex buffer handle, 0 if deleted.
func (gb *GeometryBatch) Buffer() uint32 {
	return gb.buffer
}

// Bind makes this the current vertex array.
func (gb *GeometryBatch) Bind() {
	gb.drv.BindVertexArray(gb.vertexArray)
}

// Draw draws all of the vertices as triangles, using the
// current program. The batch must be bound.
func (gb *GeometryBatch) Draw() {
	gb.drv.DrawTriangles(0, gb.NVertices)
}

// Delete deletes the vertex array and buffer.
// It is safe to call more than once.
func (gb *GeometryBatch) Delete() {
	if gb.vertexArray != 0 {
		gb.drv.DeleteVertexArray(gb.vertexArray)
		gb.vertexArray = 0
	}
	if gb.buffer != 0 {
		gb.drv.DeleteBuffer(gb.buffer)
		gb.buffer = 0
	}
}
