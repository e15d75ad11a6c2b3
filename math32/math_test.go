// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package math32

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSin(t *testing.T) {
	assert.Equal(t, float32(0), Sin(0))
	assert.InDelta(t, 1, Sin(Pi/2), 1e-6)
	assert.InDelta(t, -1, Sin(3*Pi/2), 1e-6)
}

func TestClamp(t *testing.T) {
	assert.Equal(t, float32(0), Clamp(-1, 0, 1))
	assert.Equal(t, float32(1), Clamp(2, 0, 1))
	assert.Equal(t, float32(0.5), Clamp(0.5, 0, 1))
}

func TestVector4(t *testing.T) {
	v := Vec4(0, 0.5, 0, 1)
	assert.Equal(t, [4]float32{0, 0.5, 0, 1}, v.Array())
	assert.True(t, v.IsEqualTolerance(Vec4(0, 0.5000001, 0, 1), 1e-6))
	assert.False(t, v.IsEqualTolerance(Vec4(0, 0.6, 0, 1), 1e-6))
	v.Set(1, 2, 3, 4)
	assert.Equal(t, "(1, 2, 3, 4)", v.String())
}
