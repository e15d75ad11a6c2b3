// Copyright (c) 2022, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package glfwwin provides a [system.Window] using glfw,
// with an OpenGL 4.1 core context.
package glfwwin

import (
	"fmt"
	"image"
	"log/slog"

	"cogentcore.org/gltri/system"
	"github.com/go-gl/glfw/v3.3/glfw"
)

var _ system.Window = (*Window)(nil)

// Window is a glfw window whose OpenGL context is current
// on the thread that created it.
type Window struct {
	glw    *glfw.Window
	resize func(width, height int)
}

// NewWindow initializes glfw and makes a new window of the given
// size and title, with an OpenGL 4.1 core forward-compatible context
// (4.1 because macOS supports nothing later), and makes that context
// current. If vsync is on, SwapBuffers waits for the display refresh.
// IMPORTANT: must be called on the main initial thread!
func NewWindow(width, height int, title string, vsync bool) (*Window, error) {
	if err := glfw.Init(); err != nil {
		return nil, fmt.Errorf("%w: glfw.Init: %w", system.ErrWindowCreation, err)
	}
	glfw.WindowHint(glfw.Resizable, glfw.True)
	glfw.WindowHint(glfw.ContextVersionMajor, 4)
	glfw.WindowHint(glfw.ContextVersionMinor, 1)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)
	glw, err := glfw.CreateWindow(width, height, title, nil, nil)
	if err != nil {
		glfw.Terminate()
		return nil, fmt.Errorf("%w: %w", system.ErrWindowCreation, err)
	}
	glw.MakeContextCurrent()
	if vsync {
		glfw.SwapInterval(1)
	} else {
		glfw.SwapInterval(0)
	}
	w := &Window{glw: glw}
	glw.SetFramebufferSizeCallback(w.fbResized)
	slog.Debug("glfwwin: created window", "title", title, "size", image.Point{width, height})
	return w, nil
}

func (w *Window) fbResized(gw *glfw.Window, width, height int) {
	if w.resize != nil {
		w.resize(width, height)
	}
}

// FramebufferSize returns the current size of the framebuffer in pixels,
// which can differ from the window size on high DPI displays.
func (w *Window) FramebufferSize() image.Point {
	width, height := w.glw.GetFramebufferSize()
	return image.Point{width, height}
}

func (w *Window) ShouldClose() bool {
	return w.glw.ShouldClose()
}

func (w *Window) SwapBuffers() {
	w.glw.SwapBuffers()
}

func (w *Window) PollEvents() {
	glfw.PollEvents()
}

func (w *Window) PollInput() {
	if w.glw.GetKey(glfw.KeyEscape) == glfw.Press {
		w.glw.SetShouldClose(true)
	}
}

// SetResizeCallback sets the function called when the framebuffer
// is resized. It is called once immediately with the current size
// so that the viewport starts out matching the framebuffer.
func (w *Window) SetResizeCallback(fun func(width, height int)) {
	w.resize = fun
	if fun != nil {
		sz := w.FramebufferSize()
		fun(sz.X, sz.Y)
	}
}

// Close destroys the window and terminates glfw.
// IMPORTANT: must be called on the main initial thread!
func (w *Window) Close() {
	if w.glw == nil {
		return
	}
	w.glw.Destroy()
	w.glw = nil
	glfw.Terminate()
}
