// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package render

import (
	"math"
	"time"

	"cogentcore.org/gltri/math32"
)

// Clock is a source of elapsed time, read once per frame.
type Clock interface {
	// Seconds returns the seconds elapsed since the clock started.
	Seconds() float64
}

// FrameClock is a monotonic [Clock] that starts when it is made.
// It never resets.
type FrameClock struct {
	start time.Time
}

// NewFrameClock returns a new [FrameClock] starting now.
func NewFrameClock() *FrameClock {
	return &FrameClock{start: time.Now()}
}

func (fc *FrameClock) Seconds() float64 {
	return time.Since(fc.start).Seconds()
}

// Pulse returns sin(t)/2 + 0.5, which oscillates within [0, 1]
// with a period of 2π seconds. t is reduced to one period before
// conversion to float32, so precision does not degrade as t grows.
func Pulse(t float64) float32 {
	ph := float32(math.Mod(t, math32.TwoPi))
	return math32.Clamp(math32.Sin(ph)/2+0.5, 0, 1)
}

// PulseColor returns the opaque green of intensity [Pulse] at t.
func PulseColor(t float64) math32.Vector4 {
	return math32.Vec4(0, Pulse(t), 0, 1)
}
