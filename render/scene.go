// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package render

import (
	_ "embed"
	"fmt"
	"log/slog"

	"cogentcore.org/gltri/gpu"
)

// PositionVertex is the vertex shader shared by both programs.
// It reads the position at location 0 and the color at location 1.
// Location 2 is the filler float present in both buffers.
//
//go:embed shaders/position.vert
var PositionVertex string

// UniformFragment colors fragments with [ColorUniform].
//
//go:embed shaders/uniform.frag
var UniformFragment string

// VertexColorFragment colors fragments with the interpolated
// per-vertex color.
//
//go:embed shaders/vertexcolor.frag
var VertexColorFragment string

// ColorUniform is the name of the vec4 color uniform of [UniformFragment].
const ColorUniform = "ourColorUniform"

// UniformVertices is the left triangle: position then a filler float.
var UniformVertices = []float32{
	-0.5, -0.25, 0.0, 5.0,
	0.0, -0.25, 0.0, 5.0,
	-0.25, 0.25, 0.0, 5.0,
}

// UniformLayout reads [UniformVertices]. Slot 1 (color) is off,
// since its color comes from the uniform.
var UniformLayout = gpu.AttributeLayout{
	gpu.Float32Attribute(0, 3, 4, 0),
	{Slot: 1},
	gpu.Float32Attribute(2, 1, 4, 3),
}

// ColorVertices is the right triangle: position, color, filler float.
var ColorVertices = []float32{
	0.5, -0.25, 0.0, 1.0, 0.0, 0.0, 5.0,
	0.0, -0.25, 0.0, 0.0, 1.0, 0.0, 5.0,
	0.25, 0.25, 0.0, 0.0, 0.0, 1.0, 5.0,
}

// ColorLayout reads [ColorVertices].
var ColorLayout = gpu.AttributeLayout{
	gpu.Float32Attribute(0, 3, 7, 0),
	gpu.Float32Attribute(1, 3, 7, 3),
	gpu.Float32Attribute(2, 1, 7, 6),
}

// Scene holds the GPU resources of the two triangles.
type Scene struct {

	// Uniform is the program colored by [ColorUniform]
	Uniform *gpu.Program

	// Color is the program colored by the vertex colors
	Color *gpu.Program

	// UniformBatch is drawn with Uniform
	UniformBatch *gpu.GeometryBatch

	// ColorBatch is drawn with Color
	ColorBatch *gpu.GeometryBatch
}

// Setup compiles and links the two programs, which share one vertex
// stage, and uploads the two vertex buffers. The shader stages are
// deleted once both programs have linked. Any compile or link error
// is returned after releasing what was made.
func Setup(drv gpu.Driver) (*Scene, error) {
	sc := &Scene{}
	var stages []*gpu.ShaderStage
	defer func() {
		for _, sh := range stages {
			sh.Delete()
		}
	}()
	compile := func(typ gpu.ShaderTypes, src string) (*gpu.ShaderStage, error) {
		sh, err := gpu.Compile(drv, typ, src)
		if err != nil {
			return nil, err
		}
		stages = append(stages, sh)
		return sh, nil
	}

	vs, err := compile(gpu.VertexShader, PositionVertex)
	if err != nil {
		return nil, fmt.Errorf("render.Setup: %w", err)
	}
	ufs, err := compile(gpu.FragmentShader, UniformFragment)
	if err != nil {
		return nil, fmt.Errorf("render.Setup: %w", err)
	}
	cfs, err := compile(gpu.FragmentShader, VertexColorFragment)
	if err != nil {
		return nil, fmt.Errorf("render.Setup: %w", err)
	}
	sc.Uniform, err = gpu.Link(drv, "uniform", vs, ufs, ColorUniform)
	if err != nil {
		return nil, fmt.Errorf("render.Setup: %w", err)
	}
	sc.Color, err = gpu.Link(drv, "vertexcolor", vs, cfs)
	if err != nil {
		sc.Release()
		return nil, fmt.Errorf("render.Setup: %w", err)
	}
	if sc.Uniform.Location(ColorUniform) == gpu.NoLocation {
		slog.Warn("render.Setup: uniform not active", "program", sc.Uniform.Name, "uniform", ColorUniform)
	}

	sc.UniformBatch = gpu.NewGeometryBatch(drv, UniformVertices, UniformLayout)
	sc.ColorBatch = gpu.NewGeometryBatch(drv, ColorVertices, ColorLayout)
	drv.BindVertexArray(0)
	return sc, nil
}

// Release deletes the vertex arrays and buffers, then the programs.
// It is safe to call more than once.
func (sc *Scene) Release() {
	for _, gb := range []*gpu.GeometryBatch{sc.UniformBatch, sc.ColorBatch} {
		if gb != nil {
			gb.Delete()
		}
	}
	for _, pr := range []*gpu.Program{sc.Uniform, sc.Color} {
		if pr != nil {
			pr.Delete()
		}
	}
}
