// Copyright (c) 2019, The GoKi Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gpu

import (
	"fmt"

	"cogentcore.org/gltri/math32"
)

// Program is a linked, executable pairing of one vertex and one
// fragment stage, with a cache of the locations of its uniforms.
// Several Programs can share a stage; Link does not take ownership
// of the stages.
type Program struct {

	// Name is used for error messages and logging
	Name string

	// Vertex is the vertex stage the program was linked from
	Vertex *ShaderStage

	// Fragment is the fragment stage the program was linked from
	Fragment *ShaderStage

	drv    Driver
	handle uint32

	// uniforms are the names to resolve on each link, in order
	uniforms []string

	// locations caches the uniform locations from the last link
	locations map[string]int32

	// linked are the stage versions at the last link
	linked [ShaderTypesN]int
}

// Link links the given vertex and fragment stages into a new program,
// resolving and caching the location of each of the given uniform names.
// Names that are not active in the program cache [NoLocation].
// The stages are not deleted. A [*LinkError] with the linker log
// is returned if linking fails.
func Link(drv Driver, name string, vs, fs *ShaderStage, uniforms ...string) (*Program, error) {
	if err := checkStage(vs, VertexShader); err != nil {
		return nil, fmt.Errorf("gpu.Link %s: %w", name, err)
	}
	pr := &Program{Name: name, Vertex: vs, drv: drv, uniforms: uniforms}
	if err := pr.Relink(fs); err != nil {
		return nil, err
	}
	return pr, nil
}

// Relink replaces the fragment stage of the program and links it
// again, rebuilding the uniform location cache. The vertex stage is
// unchanged, as is any other program sharing it. On failure the
// program keeps its previous link.
func (pr *Program) Relink(fs *ShaderStage) error {
	if err := checkStage(fs, FragmentShader); err != nil {
		return fmt.Errorf("gpu.Program %s Relink: %w", pr.Name, err)
	}
	if !pr.Vertex.Compiled() {
		return fmt.Errorf("gpu.Program %s Relink: vertex stage has been deleted", pr.Name)
	}
	drv := pr.drv
	handle := drv.CreateProgram()
	drv.AttachShader(handle, pr.Vertex.handle)
	drv.AttachShader(handle, fs.handle)
	ok := drv.LinkProgram(handle)
	drv.DetachShader(handle, pr.Vertex.handle)
	drv.DetachShader(handle, fs.handle)
	if !ok {
		err := &LinkError{Program: pr.Name, Log: drv.ProgramLog(handle)}
		drv.DeleteProgram(handle)
		return err
	}
	if pr.handle != 0 {
		drv.DeleteProgram(pr.handle)
	}
	pr.handle = handle
	pr.Fragment = fs
	pr.linked[VertexShader] = pr.Vertex.version
	pr.linked[FragmentShader] = fs.version

	pr.locations = make(map[string]int32, len(pr.uniforms))
	for _, un := range pr.uniforms {
		pr.locations[un] = drv.UniformLocation(handle, un)
	}
	return nil
}

func checkStage(sh *ShaderStage, typ ShaderTypes) error {
	switch {
	case sh == nil:
		return fmt.Errorf("nil %s stage", typ)
	case sh.Type != typ:
		return fmt.Errorf("stage is a %s shader, not %s", sh.Type, typ)
	case !sh.Compiled():
		return fmt.Errorf("%s stage is not compiled", typ)
	}
	return nil
}

// Handle returns the driver handle, 0 if deleted.
func (pr *Program) Handle() uint32 {
	return pr.handle
}

// Stale returns whether either stage has been recompiled since
// the program was last linked, in which case it must be relinked
// before further use.
func (pr *Program) Stale() bool {
	return pr.Vertex.version != pr.linked[VertexShader] ||
		pr.Fragment.version != pr.linked[FragmentShader]
}

// Location returns the cached location of the named uniform,
// [NoLocation] if it is not active or was not requested at link time.
func (pr *Program) Location(name string) int32 {
	loc, ok := pr.locations[name]
	if !ok {
		return NoLocation
	}
	return loc
}

// Use makes this the current program.
func (pr *Program) Use() {
	if pr.handle == 0 {
		return
	}
	pr.drv.UseProgram(pr.handle)
}

// SetVector4 sets the named vec4 uniform, which is a no-op if the
// uniform has no location. The program must be current.
func (pr *Program) SetVector4(name string, v math32.Vector4) {
	loc := pr.Location(name)
	if loc == NoLocation {
		return
	}
	pr.drv.Uniform4f(loc, v.X, v.Y, v.Z, v.W)
}

// Delete deletes the GPU resources of the program.
// It is safe to call more than once.
func (pr *Program) Delete() {
	if pr.handle == 0 {
		return
	}
	pr.drv.DeleteProgram(pr.handle)
	pr.handle = 0
	pr.locations = nil
}
