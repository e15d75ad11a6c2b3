// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package gputest provides a [gpu.Driver] that records every call
// and tracks the objects it hands out, so that code using the gpu
// package can be tested without a graphics context.
package gputest

import (
	"fmt"
	"regexp"
	"strings"

	"cogentcore.org/gltri/gpu"
)

// Call is one recorded driver call.
type Call struct {
	Name string
	Args []any
}

func (c Call) String() string {
	if len(c.Args) == 0 {
		return c.Name
	}
	return fmt.Sprintf("%s%v", c.Name, c.Args)
}

// Attrib is the recorded state of one attribute slot of a vertex array.
type Attrib struct {
	Enabled    bool
	Components int
	Stride     int
	Offset     int

	// Buffer is the array buffer bound when the pointer was set
	Buffer uint32
}

type shader struct {
	typ      gpu.ShaderTypes
	src      string
	compiled bool
}

type program struct {
	attached map[uint32]bool
	linked   bool
	log      string
	uniforms map[string]int32
	values   map[int32][4]float32
}

// uniformDecl matches GLSL uniform declarations, capturing the name.
var uniformDecl = regexp.MustCompile(`uniform\s+\w+\s+(\w+)\s*;`)

var _ gpu.Driver = (*Driver)(nil)

// Driver is a [gpu.Driver] that records calls. The zero value is
// ready to use.
type Driver struct {

	// Calls are all the calls made, in order
	Calls []Call

	// RejectSource makes compilation fail for any shader source
	// containing it, if non-empty
	RejectSource string

	// RejectLink makes all program links fail
	RejectLink bool

	// BadDeletes counts deletions of handles that were not live
	BadDeletes int

	// BoundArray, BoundBuffer and CurrentProgram are the current bindings
	BoundArray     uint32
	BoundBuffer    uint32
	CurrentProgram uint32

	// Attribs are the attribute slots of each vertex array
	Attribs map[uint32]map[uint32]Attrib

	// Data are the contents uploaded to each buffer
	Data map[uint32][]float32

	next     uint32
	shaders  map[uint32]*shader
	programs map[uint32]*program
	arrays   map[uint32]bool
	buffers  map[uint32]bool
}

// Record appends a call, and is also used by fakes of other
// collaborators to interleave their calls with the driver's.
func (d *Driver) Record(name string, args ...any) {
	d.Calls = append(d.Calls, Call{Name: name, Args: args})
}

// Names returns the names of the recorded calls.
func (d *Driver) Names() []string {
	nms := make([]string, len(d.Calls))
	for i, c := range d.Calls {
		nms[i] = c.Name
	}
	return nms
}

// Find returns the recorded calls with the given name.
func (d *Driver) Find(name string) []Call {
	var cs []Call
	for _, c := range d.Calls {
		if c.Name == name {
			cs = append(cs, c)
		}
	}
	return cs
}

// ResetCalls clears the recorded calls, keeping all object state.
func (d *Driver) ResetCalls() {
	d.Calls = nil
}

// Live returns the number of objects that have been created
// and not deleted.
func (d *Driver) Live() int {
	return len(d.shaders) + len(d.programs) + len(d.arrays) + len(d.buffers)
}

// IsProgram returns whether the handle is a live program.
func (d *Driver) IsProgram(handle uint32) bool {
	_, ok := d.programs[handle]
	return ok
}

// IsShader returns whether the handle is a live shader.
func (d *Driver) IsShader(handle uint32) bool {
	_, ok := d.shaders[handle]
	return ok
}

// Attached returns whether the shader is currently attached to the program.
func (d *Driver) Attached(prog, shader uint32) bool {
	pr, ok := d.programs[prog]
	return ok && pr.attached[shader]
}

// UniformValue returns the last vec4 value set at the location
// in the program.
func (d *Driver) UniformValue(prog uint32, loc int32) ([4]float32, bool) {
	pr, ok := d.programs[prog]
	if !ok {
		return [4]float32{}, false
	}
	v, ok := pr.values[loc]
	return v, ok
}

func (d *Driver) newHandle() uint32 {
	d.next++
	return d.next
}

func (d *Driver) init() {
	if d.shaders != nil {
		return
	}
	d.shaders = make(map[uint32]*shader)
	d.programs = make(map[uint32]*program)
	d.arrays = make(map[uint32]bool)
	d.buffers = make(map[uint32]bool)
	d.Attribs = make(map[uint32]map[uint32]Attrib)
	d.Data = make(map[uint32][]float32)
}

func (d *Driver) CreateShader(typ gpu.ShaderTypes) uint32 {
	d.init()
	h := d.newHandle()
	d.shaders[h] = &shader{typ: typ}
	d.Record("CreateShader", typ)
	return h
}

func (d *Driver) ShaderSource(sh uint32, src string) {
	d.Record("ShaderSource", sh)
	if s, ok := d.shaders[sh]; ok {
		s.src = src
		s.compiled = false
	}
}

func (d *Driver) CompileShader(sh uint32) bool {
	d.Record("CompileShader", sh)
	s, ok := d.shaders[sh]
	if !ok {
		return false
	}
	s.compiled = d.RejectSource == "" || !strings.Contains(s.src, d.RejectSource)
	return s.compiled
}

func (d *Driver) ShaderLog(sh uint32) string {
	d.Record("ShaderLog", sh)
	s, ok := d.shaders[sh]
	if !ok || s.compiled {
		return ""
	}
	return fmt.Sprintf("ERROR: 0:1: %q : syntax error\n", d.RejectSource)
}

func (d *Driver) DeleteShader(sh uint32) {
	d.Record("DeleteShader", sh)
	if _, ok := d.shaders[sh]; !ok {
		d.BadDeletes++
		return
	}
	delete(d.shaders, sh)
}

func (d *Driver) CreateProgram() uint32 {
	d.init()
	h := d.newHandle()
	d.programs[h] = &program{attached: make(map[uint32]bool), values: make(map[int32][4]float32)}
	d.Record("CreateProgram")
	return h
}

func (d *Driver) AttachShader(prog, sh uint32) {
	d.Record("AttachShader", prog, sh)
	if pr, ok := d.programs[prog]; ok {
		pr.attached[sh] = true
	}
}

func (d *Driver) DetachShader(prog, sh uint32) {
	d.Record("DetachShader", prog, sh)
	if pr, ok := d.programs[prog]; ok {
		delete(pr.attached, sh)
	}
}

// LinkProgram succeeds when exactly one compiled vertex and one
// compiled fragment shader are attached, assigning uniform locations
// in the order the uniforms are declared in the sources.
func (d *Driver) LinkProgram(prog uint32) bool {
	d.Record("LinkProgram", prog)
	pr, ok := d.programs[prog]
	if !ok {
		return false
	}
	pr.linked = false
	pr.uniforms = make(map[string]int32)
	if d.RejectLink {
		pr.log = "error: linking rejected"
		return false
	}
	var n [gpu.ShaderTypesN]int
	var srcs []string
	for h := range pr.attached {
		s, ok := d.shaders[h]
		if !ok || !s.compiled {
			pr.log = fmt.Sprintf("error: shader %d is not compiled", h)
			return false
		}
		n[s.typ]++
		srcs = append(srcs, s.src)
	}
	if n[gpu.VertexShader] != 1 || n[gpu.FragmentShader] != 1 {
		pr.log = "error: program needs one vertex and one fragment shader"
		return false
	}
	var loc int32
	for _, src := range srcs {
		for _, m := range uniformDecl.FindAllStringSubmatch(src, -1) {
			if _, has := pr.uniforms[m[1]]; !has {
				pr.uniforms[m[1]] = loc
				loc++
			}
		}
	}
	pr.linked = true
	pr.log = ""
	return true
}

func (d *Driver) ProgramLog(prog uint32) string {
	d.Record("ProgramLog", prog)
	if pr, ok := d.programs[prog]; ok {
		return pr.log
	}
	return ""
}

func (d *Driver) UseProgram(prog uint32) {
	d.Record("UseProgram", prog)
	d.CurrentProgram = prog
}

func (d *Driver) DeleteProgram(prog uint32) {
	d.Record("DeleteProgram", prog)
	if _, ok := d.programs[prog]; !ok {
		d.BadDeletes++
		return
	}
	delete(d.programs, prog)
	if d.CurrentProgram == prog {
		d.CurrentProgram = 0
	}
}

func (d *Driver) UniformLocation(prog uint32, name string) int32 {
	d.Record("UniformLocation", prog, name)
	pr, ok := d.programs[prog]
	if !ok || !pr.linked {
		return gpu.NoLocation
	}
	loc, ok := pr.uniforms[name]
	if !ok {
		return gpu.NoLocation
	}
	return loc
}

func (d *Driver) Uniform4f(loc int32, x, y, z, w float32) {
	d.Record("Uniform4f", loc, x, y, z, w)
	if pr, ok := d.programs[d.CurrentProgram]; ok && loc >= 0 {
		pr.values[loc] = [4]float32{x, y, z, w}
	}
}

func (d *Driver) GenVertexArray() uint32 {
	d.init()
	h := d.newHandle()
	d.arrays[h] = true
	d.Attribs[h] = make(map[uint32]Attrib)
	d.Record("GenVertexArray")
	return h
}

func (d *Driver) BindVertexArray(array uint32) {
	d.Record("BindVertexArray", array)
	d.BoundArray = array
}

func (d *Driver) DeleteVertexArray(array uint32) {
	d.Record("DeleteVertexArray", array)
	if !d.arrays[array] {
		d.BadDeletes++
		return
	}
	delete(d.arrays, array)
	if d.BoundArray == array {
		d.BoundArray = 0
	}
}

func (d *Driver) GenBuffer() uint32 {
	d.init()
	h := d.newHandle()
	d.buffers[h] = true
	d.Record("GenBuffer")
	return h
}

func (d *Driver) BindArrayBuffer(buf uint32) {
	d.Record("BindArrayBuffer", buf)
	d.BoundBuffer = buf
}

func (d *Driver) ArrayBufferData(data []float32) {
	d.Record("ArrayBufferData", len(data))
	if d.buffers[d.BoundBuffer] {
		d.Data[d.BoundBuffer] = append([]float32(nil), data...)
	}
}

func (d *Driver) DeleteBuffer(buf uint32) {
	d.Record("DeleteBuffer", buf)
	if !d.buffers[buf] {
		d.BadDeletes++
		return
	}
	delete(d.buffers, buf)
	if d.BoundBuffer == buf {
		d.BoundBuffer = 0
	}
}

func (d *Driver) attribs() map[uint32]Attrib {
	d.init()
	at, ok := d.Attribs[d.BoundArray]
	if !ok {
		// slots of the default vertex array (0)
		at = make(map[uint32]Attrib)
		d.Attribs[d.BoundArray] = at
	}
	return at
}

func (d *Driver) EnableAttrib(slot uint32) {
	d.Record("EnableAttrib", slot)
	ats := d.attribs()
	at := ats[slot]
	at.Enabled = true
	ats[slot] = at
}

func (d *Driver) DisableAttrib(slot uint32) {
	d.Record("DisableAttrib", slot)
	ats := d.attribs()
	at := ats[slot]
	at.Enabled = false
	ats[slot] = at
}

func (d *Driver) AttribPointer(slot uint32, components, stride, offset int) {
	d.Record("AttribPointer", slot, components, stride, offset)
	ats := d.attribs()
	at := ats[slot]
	at.Components, at.Stride, at.Offset, at.Buffer = components, stride, offset, d.BoundBuffer
	ats[slot] = at
}

func (d *Driver) ClearColor(r, g, b, a float32) {
	d.Record("ClearColor", r, g, b, a)
}

func (d *Driver) Clear() {
	d.Record("Clear")
}

func (d *Driver) Viewport(x, y, width, height int) {
	d.Record("Viewport", x, y, width, height)
}

func (d *Driver) Wireframe(on bool) {
	d.Record("Wireframe", on)
}

func (d *Driver) DrawTriangles(first, count int) {
	d.Record("DrawTriangles", first, count, d.CurrentProgram, d.BoundArray)
}
