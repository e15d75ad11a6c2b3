// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gpu

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrEmptySource is returned when compiling an empty shader source.
	ErrEmptySource = errors.New("gpu: empty shader source")

	// ErrNoVersion is returned when a shader source does not start
	// with a #version directive.
	ErrNoVersion = errors.New("gpu: shader source must start with a #version directive")
)

// CompileError is returned when the driver rejects a shader source.
type CompileError struct {
	Type ShaderTypes
	Log  string
}

func (e *CompileError) Error() string {
	return fmt.Sprintf("gpu: failed to compile %s shader: %s", e.Type, strings.TrimSpace(e.Log))
}

// LinkError is returned when the driver fails to link a program.
type LinkError struct {
	// Program is the name of the program
	Program string
	Log     string
}

func (e *LinkError) Error() string {
	return fmt.Sprintf("gpu: failed to link program %q: %s", e.Program, strings.TrimSpace(e.Log))
}
