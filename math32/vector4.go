// Copyright 2019 Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package math32

import "fmt"

// Vector4 is a 4D vector, used for RGBA colors and vec4 uniforms.
type Vector4 struct {
	X float32
	Y float32
	Z float32
	W float32
}

// Vec4 returns a new [Vector4] with the given x, y, z, and w components.
func Vec4(x, y, z, w float32) Vector4 {
	return Vector4{X: x, Y: y, Z: z, W: w}
}

// Set sets this vector X, Y, Z and W components.
func (v *Vector4) Set(x, y, z, w float32) {
	v.X = x
	v.Y = y
	v.Z = z
	v.W = w
}

// Array returns the components as an array in XYZW order.
func (v Vector4) Array() [4]float32 {
	return [4]float32{v.X, v.Y, v.Z, v.W}
}

// IsEqualTolerance returns whether every component of this vector
// is within tol of the corresponding component of other.
func (v Vector4) IsEqualTolerance(other Vector4, tol float32) bool {
	return Abs(v.X-other.X) <= tol && Abs(v.Y-other.Y) <= tol &&
		Abs(v.Z-other.Z) <= tol && Abs(v.W-other.W) <= tol
}

func (v Vector4) String() string {
	return fmt.Sprintf("(%g, %g, %g, %g)", v.X, v.Y, v.Z, v.W)
}
