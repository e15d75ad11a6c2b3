// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package render draws the two-triangle scene: one triangle colored
// by a time-varying uniform, and one by its per-vertex colors.
package render

import (
	"log/slog"

	"cogentcore.org/gltri/gpu"
	"cogentcore.org/gltri/math32"
	"cogentcore.org/gltri/system"
)

// LoopStates are the states of a [Loop].
type LoopStates int32

const (
	// Running is the state in which frames are drawn.
	Running LoopStates = iota

	// Closing is the state while resources are released.
	Closing

	// Terminated is the final state, with all resources released.
	Terminated
)

func (ls LoopStates) String() string {
	switch ls {
	case Running:
		return "Running"
	case Closing:
		return "Closing"
	case Terminated:
		return "Terminated"
	}
	return "LoopStates(invalid)"
}

// Background is the color the frame is cleared to.
var Background = math32.Vec4(0.2, 0.3, 0.3, 1)

// FPSInterval is how many seconds of frames are averaged for each
// frames-per-second debug log.
const FPSInterval = 10

// Loop draws a [Scene] every frame until the window closes.
// It is single threaded: all calls must be made on the thread
// where the graphics context is current.
type Loop struct {
	Window system.Window
	Driver gpu.Driver
	Scene  *Scene
	Clock  Clock

	state LoopStates

	// Frames is the total number of frames drawn
	Frames int

	fpsFrames int
	fpsStart  float64
}

// NewLoop returns a new [Loop] in the Running state, to be made
// once [Setup] has succeeded. It sets the window resize callback
// to update the viewport.
func NewLoop(win system.Window, drv gpu.Driver, sc *Scene, clock Clock) *Loop {
	lp := &Loop{Window: win, Driver: drv, Scene: sc, Clock: clock, state: Running}
	lp.fpsStart = clock.Seconds()
	win.SetResizeCallback(func(width, height int) {
		drv.Viewport(0, 0, width, height)
	})
	return lp
}

// State returns the current state of the loop.
func (lp *Loop) State() LoopStates {
	return lp.state
}

// Run draws frames until the window should close, then calls [Loop.Close].
func (lp *Loop) Run() {
	for lp.state == Running && !lp.Window.ShouldClose() {
		lp.Frame()
	}
	lp.Close()
}

// Frame draws one frame. It does nothing unless the loop is Running.
func (lp *Loop) Frame() {
	if lp.state != Running {
		return
	}
	t := lp.Clock.Seconds()
	sc := lp.Scene
	drv := lp.Driver

	lp.Window.PollInput()

	bg := Background
	drv.ClearColor(bg.X, bg.Y, bg.Z, bg.W)
	drv.Clear()

	sc.Uniform.Use()
	sc.Uniform.SetVector4(ColorUniform, PulseColor(t))
	sc.UniformBatch.Bind()
	sc.UniformBatch.Draw()

	// the vertex colors are all that color this one, so no uniforms
	sc.Color.Use()
	sc.ColorBatch.Bind()
	sc.ColorBatch.Draw()

	drv.BindVertexArray(0)

	lp.Window.SwapBuffers()
	lp.Window.PollEvents()
	lp.countFrame(t)
}

func (lp *Loop) countFrame(t float64) {
	lp.Frames++
	lp.fpsFrames++
	dur := t - lp.fpsStart
	if dur < FPSInterval {
		return
	}
	slog.Debug("render.Loop", "fps", float64(lp.fpsFrames)/dur, "frames", lp.Frames)
	lp.fpsFrames = 0
	lp.fpsStart = t
}

// Close releases all of the scene's GPU resources, moving from
// Running through Closing to Terminated. It does nothing if the
// loop is not Running, so it is safe to call more than once.
func (lp *Loop) Close() {
	if lp.state != Running {
		return
	}
	lp.state = Closing
	lp.Scene.Release()
	lp.state = Terminated
	slog.Debug("render.Loop: terminated", "frames", lp.Frames)
}
