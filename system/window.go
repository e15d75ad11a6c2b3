// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package system defines the interface to the windowing system
// that owns the graphics context.
package system

import "errors"

// ErrWindowCreation is returned when a window, or the graphics
// context it owns, cannot be created.
var ErrWindowCreation = errors.New("system: failed to create window")

// Window is a window with a current graphics context.
// All methods must be called on the thread that made it.
type Window interface {

	// ShouldClose returns whether the user or the app
	// has requested that the window close.
	ShouldClose() bool

	// SwapBuffers presents the rendered frame.
	SwapBuffers()

	// PollEvents processes pending window events,
	// calling any callbacks.
	PollEvents()

	// PollInput checks the keyboard, requesting close
	// when Escape is pressed.
	PollInput()

	// SetResizeCallback sets the function called with the new
	// framebuffer size, in pixels, whenever it changes.
	SetResizeCallback(fun func(width, height int))
}
