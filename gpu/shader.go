// Copyright (c) 2019, The GoKi Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gpu

import (
	"strings"
)

// ShaderStage is a single compiled shader unit (vertex or fragment).
// It can be linked into any number of Programs, and is owned by
// whoever compiled it, who must Delete it once all of those Programs
// have been linked.
type ShaderStage struct {

	// Type is the stage of the pipeline this shader runs in
	Type ShaderTypes

	// Source is the source code of the last successful compile
	Source string

	drv    Driver
	handle uint32

	// version counts successful compiles, so that Programs can tell
	// when a stage they were linked from has been recompiled
	version int
}

// Compile compiles the given source code into a new shader stage of
// the given type. The source must be GLSL starting with a #version
// directive; it does not need to be null terminated. If the driver
// rejects the source, a [*CompileError] with the compiler log is
// returned and nothing is left allocated.
func Compile(drv Driver, typ ShaderTypes, src string) (*ShaderStage, error) {
	sh := &ShaderStage{Type: typ, drv: drv}
	if err := sh.Recompile(src); err != nil {
		return nil, err
	}
	return sh, nil
}

// Recompile replaces the source code of this stage in place and
// compiles it. Programs previously linked from this stage report
// [Program.Stale] until they are relinked. If compilation fails the
// stage is deleted.
func (sh *ShaderStage) Recompile(src string) error {
	if err := checkSource(src); err != nil {
		return err
	}
	if sh.handle == 0 {
		sh.handle = sh.drv.CreateShader(sh.Type)
	}
	sh.drv.ShaderSource(sh.handle, src)
	if !sh.drv.CompileShader(sh.handle) {
		err := &CompileError{Type: sh.Type, Log: sh.drv.ShaderLog(sh.handle)}
		sh.Delete()
		return err
	}
	sh.Source = src
	sh.version++
	return nil
}

func checkSource(src string) error {
	src = strings.TrimSpace(src)
	if src == "" || src == "\x00" {
		return ErrEmptySource
	}
	if !strings.HasPrefix(src, "#version") {
		return ErrNoVersion
	}
	return nil
}

// Handle returns the driver handle, 0 if not compiled or deleted.
func (sh *ShaderStage) Handle() uint32 {
	return sh.handle
}

// Compiled returns whether the stage holds a successfully compiled shader.
func (sh *ShaderStage) Compiled() bool {
	return sh.handle != 0
}

// Delete deletes the shader. It is safe to call more than once.
// Programs already linked from this stage are not affected, but
// cannot be relinked.
func (sh *ShaderStage) Delete() {
	if sh.handle == 0 {
		return
	}
	sh.drv.DeleteShader(sh.handle)
	sh.handle = 0
}
