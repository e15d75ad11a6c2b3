// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gpu_test

import (
	"testing"

	"cogentcore.org/gltri/gpu"
	"cogentcore.org/gltri/gpu/gputest"
	"github.com/stretchr/testify/assert"
)

func TestFloat32Attribute(t *testing.T) {
	at := gpu.Float32Attribute(1, 3, 7, 3)
	assert.Equal(t, gpu.Attribute{Slot: 1, Components: 3, Stride: 28, Offset: 12, Enabled: true}, at)
}

func TestLayoutStride(t *testing.T) {
	al := gpu.AttributeLayout{{Slot: 0}, gpu.Float32Attribute(1, 2, 4, 0)}
	assert.Equal(t, 16, al.Stride())
	assert.Equal(t, 0, gpu.AttributeLayout{{Slot: 0}}.Stride())
	assert.Equal(t, 0, gpu.AttributeLayout{}.Stride())
}

func TestLayoutValidate(t *testing.T) {
	tests := []struct {
		name string
		al   gpu.AttributeLayout
		ok   bool
	}{
		{"interleaved", gpu.AttributeLayout{gpu.Float32Attribute(0, 3, 4, 0), gpu.Float32Attribute(1, 1, 4, 3)}, true},
		{"disabled gap", gpu.AttributeLayout{gpu.Float32Attribute(0, 3, 4, 0), {Slot: 1}, gpu.Float32Attribute(2, 1, 4, 3)}, true},
		{"stride mismatch", gpu.AttributeLayout{gpu.Float32Attribute(0, 3, 4, 0), gpu.Float32Attribute(1, 1, 5, 3)}, false},
		{"overrun", gpu.AttributeLayout{gpu.Float32Attribute(0, 3, 4, 2)}, false},
		{"too many components", gpu.AttributeLayout{gpu.Float32Attribute(0, 5, 8, 0)}, false},
		{"duplicate slot", gpu.AttributeLayout{gpu.Float32Attribute(0, 3, 4, 0), {Slot: 0}}, false},
		{"zero stride", gpu.AttributeLayout{{Slot: 0, Components: 1, Enabled: true}}, false},
	}
	for _, tt := range tests {
		err := tt.al.Validate()
		if tt.ok {
			assert.NoError(t, err, tt.name)
		} else {
			assert.Error(t, err, tt.name)
		}
	}
}

func TestBindLayout(t *testing.T) {
	drv := &gputest.Driver{}
	vao := drv.GenVertexArray()
	drv.BindVertexArray(vao)
	drv.ResetCalls()
	gpu.BindLayout(drv, gpu.AttributeLayout{
		gpu.Float32Attribute(0, 3, 4, 0),
		{Slot: 1, Components: 3, Stride: 16, Offset: 4},
		gpu.Float32Attribute(2, 1, 4, 3),
	})
	assert.Equal(t, []string{"EnableAttrib", "AttribPointer", "DisableAttrib", "EnableAttrib", "AttribPointer"}, drv.Names())
	ats := drv.Attribs[vao]
	assert.Equal(t, gputest.Attrib{Enabled: true, Components: 3, Stride: 16, Offset: 0}, ats[0])
	assert.Equal(t, gputest.Attrib{}, ats[1], "disabled slot gets no pointer")
	assert.Equal(t, gputest.Attrib{Enabled: true, Components: 1, Stride: 16, Offset: 12}, ats[2])
}
