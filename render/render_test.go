// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package render

import (
	"math"
	"testing"

	"cogentcore.org/gltri/gpu"
	"cogentcore.org/gltri/gpu/gputest"
	"cogentcore.org/gltri/math32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// testWindow records its calls into the driver, so that the order of
// window and driver calls can be checked together.
type testWindow struct {
	drv        *gputest.Driver
	closeAfter int
	swaps      int
	resize     func(width, height int)
}

func (w *testWindow) ShouldClose() bool { return w.swaps >= w.closeAfter }
func (w *testWindow) SwapBuffers()      { w.swaps++; w.drv.Record("SwapBuffers") }
func (w *testWindow) PollEvents()       { w.drv.Record("PollEvents") }
func (w *testWindow) PollInput()        { w.drv.Record("PollInput") }

func (w *testWindow) SetResizeCallback(fun func(width, height int)) { w.resize = fun }

type testClock struct {
	t float64
}

func (c *testClock) Seconds() float64 { return c.t }

func newTestLoop(t *testing.T, closeAfter int) (*Loop, *gputest.Driver, *testClock) {
	t.Helper()
	drv := &gputest.Driver{}
	sc, err := Setup(drv)
	require.NoError(t, err)
	clock := &testClock{}
	lp := NewLoop(&testWindow{drv: drv, closeAfter: closeAfter}, drv, sc, clock)
	drv.ResetCalls()
	return lp, drv, clock
}

func TestPulse(t *testing.T) {
	assert.Equal(t, float32(0.5), Pulse(0))
	assert.InDelta(t, 1, Pulse(math.Pi/2), 1e-6)
	assert.InDelta(t, 0, Pulse(3*math.Pi/2), 1e-6)
	for ts := 0.0; ts < 100; ts += 0.37 {
		p := Pulse(ts)
		assert.GreaterOrEqual(t, p, float32(0))
		assert.LessOrEqual(t, p, float32(1))
		assert.InDelta(t, p, Pulse(ts+2*math.Pi), 1e-5, "t = %g", ts)
	}
	assert.InDelta(t, Pulse(1), Pulse(1+1000*2*math.Pi), 1e-5)
}

func TestFrameClock(t *testing.T) {
	fc := NewFrameClock()
	a := fc.Seconds()
	b := fc.Seconds()
	assert.GreaterOrEqual(t, a, 0.0)
	assert.GreaterOrEqual(t, b, a)
}

func TestLayouts(t *testing.T) {
	assert.NoError(t, UniformLayout.Validate())
	assert.NoError(t, ColorLayout.Validate())

	assert.Equal(t, gpu.Attribute{Slot: 0, Components: 3, Stride: 16, Offset: 0, Enabled: true}, UniformLayout[0])
	assert.False(t, UniformLayout[1].Enabled)
	assert.Equal(t, uint32(1), UniformLayout[1].Slot)
	assert.Equal(t, gpu.Attribute{Slot: 2, Components: 1, Stride: 16, Offset: 12, Enabled: true}, UniformLayout[2])

	assert.Equal(t, gpu.Attribute{Slot: 0, Components: 3, Stride: 28, Offset: 0, Enabled: true}, ColorLayout[0])
	assert.Equal(t, gpu.Attribute{Slot: 1, Components: 3, Stride: 28, Offset: 12, Enabled: true}, ColorLayout[1])
	assert.Equal(t, gpu.Attribute{Slot: 2, Components: 1, Stride: 28, Offset: 24, Enabled: true}, ColorLayout[2])

	assert.Equal(t, 3, gpu.VertexCount(len(UniformVertices), UniformLayout.Stride()))
	assert.Equal(t, 3, gpu.VertexCount(len(ColorVertices), ColorLayout.Stride()))
}

func TestShaderSources(t *testing.T) {
	for _, src := range []string{PositionVertex, UniformFragment, VertexColorFragment} {
		assert.Regexp(t, `^#version 410 core\n`, src)
	}
	for _, loc := range []string{"0", "1", "2"} {
		assert.Contains(t, PositionVertex, "layout(location = "+loc+")")
	}
	assert.Contains(t, UniformFragment, "uniform vec4 "+ColorUniform+";")
}

func TestSetup(t *testing.T) {
	drv := &gputest.Driver{}
	sc, err := Setup(drv)
	require.NoError(t, err)

	assert.Same(t, sc.Uniform.Vertex, sc.Color.Vertex, "vertex stage is shared")
	assert.NotSame(t, sc.Uniform.Fragment, sc.Color.Fragment)
	assert.False(t, sc.Uniform.Vertex.Compiled(), "stages are deleted after linking")
	assert.Equal(t, int32(0), sc.Uniform.Location(ColorUniform))
	assert.Equal(t, 3, sc.UniformBatch.NVertices)
	assert.Equal(t, 3, sc.ColorBatch.NVertices)
	assert.Equal(t, uint32(0), drv.BoundArray)

	ua := drv.Attribs[sc.UniformBatch.VertexArray()]
	assert.False(t, ua[1].Enabled)
	assert.Equal(t, 16, ua[2].Stride)
	assert.Equal(t, 12, ua[2].Offset)
	ca := drv.Attribs[sc.ColorBatch.VertexArray()]
	assert.True(t, ca[1].Enabled)
	assert.Equal(t, 28, ca[1].Stride)
	assert.Equal(t, 12, ca[1].Offset)
	assert.Equal(t, 24, ca[2].Offset)

	// two programs, two arrays, two buffers
	assert.Equal(t, 6, drv.Live())
	sc.Release()
	sc.Release()
	assert.Equal(t, 0, drv.Live())
	assert.Equal(t, 0, drv.BadDeletes)
}

func TestSetupCompileError(t *testing.T) {
	drv := &gputest.Driver{RejectSource: "in vec3 ourColor;"}
	sc, err := Setup(drv)
	assert.Nil(t, sc)
	var cerr *gpu.CompileError
	require.ErrorAs(t, err, &cerr)
	assert.Equal(t, gpu.FragmentShader, cerr.Type)
	assert.Equal(t, 0, drv.Live())
	assert.Empty(t, drv.Find("CreateProgram"), "no program is made after a compile failure")
}

func TestSetupLinkError(t *testing.T) {
	drv := &gputest.Driver{RejectLink: true}
	sc, err := Setup(drv)
	assert.Nil(t, sc)
	var lerr *gpu.LinkError
	require.ErrorAs(t, err, &lerr)
	assert.Equal(t, "uniform", lerr.Program)
	assert.Equal(t, 0, drv.Live())
	assert.Empty(t, drv.Find("GenBuffer"))
}

func TestFrameOrder(t *testing.T) {
	lp, drv, _ := newTestLoop(t, 1)
	lp.Frame()
	assert.Equal(t, []string{
		"PollInput",
		"ClearColor", "Clear",
		"UseProgram", "Uniform4f", "BindVertexArray", "DrawTriangles",
		"UseProgram", "BindVertexArray", "DrawTriangles",
		"BindVertexArray",
		"SwapBuffers", "PollEvents",
	}, drv.Names())

	sc := lp.Scene
	draws := drv.Find("DrawTriangles")
	require.Len(t, draws, 2)
	assert.Equal(t, []any{0, 3, sc.Uniform.Handle(), sc.UniformBatch.VertexArray()}, draws[0].Args)
	assert.Equal(t, []any{0, 3, sc.Color.Handle(), sc.ColorBatch.VertexArray()}, draws[1].Args)
	assert.Equal(t, []any{float32(0.2), float32(0.3), float32(0.3), float32(1)}, drv.Find("ClearColor")[0].Args)
	assert.Equal(t, uint32(0), drv.BoundArray)
	assert.Equal(t, 1, lp.Frames)
}

func uniformColor(t *testing.T, lp *Loop, drv *gputest.Driver) math32.Vector4 {
	t.Helper()
	v, ok := drv.UniformValue(lp.Scene.Uniform.Handle(), lp.Scene.Uniform.Location(ColorUniform))
	require.True(t, ok)
	return math32.Vec4(v[0], v[1], v[2], v[3])
}

func TestFrameUniform(t *testing.T) {
	lp, drv, clock := newTestLoop(t, 2)
	lp.Frame()
	assert.Equal(t, math32.Vec4(0, 0.5, 0, 1), uniformColor(t, lp, drv))

	clock.t = math.Pi / 2
	lp.Frame()
	assert.True(t, math32.Vec4(0, 1, 0, 1).IsEqualTolerance(uniformColor(t, lp, drv), 1e-6))

	// program B never gets a uniform write
	for _, c := range drv.Find("Uniform4f") {
		assert.Equal(t, lp.Scene.Uniform.Location(ColorUniform), c.Args[0])
	}
	_, ok := drv.UniformValue(lp.Scene.Color.Handle(), 0)
	assert.False(t, ok)
}

func TestRun(t *testing.T) {
	lp, drv, _ := newTestLoop(t, 3)
	assert.Equal(t, Running, lp.State())
	lp.Run()
	assert.Equal(t, Terminated, lp.State())
	assert.Equal(t, 3, lp.Frames)
	assert.Len(t, drv.Find("SwapBuffers"), 3)
	assert.Equal(t, 0, drv.Live())

	// release happens in dependency order: arrays and buffers before programs
	names := drv.Names()
	lastBuffer, firstProgram := -1, -1
	for i, nm := range names {
		switch nm {
		case "DeleteVertexArray", "DeleteBuffer":
			lastBuffer = i
		case "DeleteProgram":
			if firstProgram < 0 {
				firstProgram = i
			}
		}
	}
	assert.Less(t, lastBuffer, firstProgram)
}

func TestCloseTwice(t *testing.T) {
	lp, drv, _ := newTestLoop(t, 1)
	lp.Close()
	n := len(drv.Calls)
	assert.NotPanics(t, lp.Close)
	assert.Equal(t, Terminated, lp.State())
	assert.Len(t, drv.Calls, n, "second close does nothing")
	assert.Equal(t, 0, drv.BadDeletes)

	lp.Frame()
	assert.Len(t, drv.Calls, n, "no frames after close")
}

func TestResizeViewport(t *testing.T) {
	lp, drv, _ := newTestLoop(t, 1)
	lp.Window.(*testWindow).resize(1024, 768)
	vp := drv.Find("Viewport")
	require.Len(t, vp, 1)
	assert.Equal(t, []any{0, 0, 1024, 768}, vp[0].Args)
}

func TestLoopStatesString(t *testing.T) {
	assert.Equal(t, "Running", Running.String())
	assert.Equal(t, "Closing", Closing.String())
	assert.Equal(t, "Terminated", Terminated.String())
}
