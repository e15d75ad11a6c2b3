// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gpu

import (
	"fmt"
)

// Attribute describes one vertex attribute slot (a layout location
// in the vertex shader) read from an interleaved float buffer.
// Stride and Offset are in bytes.
type Attribute struct {

	// Slot is the attribute location in the vertex shader
	Slot uint32

	// Components is the number of float32 components (1-4)
	Components int

	// Stride is the number of bytes between successive vertices
	Stride int

	// Offset is the byte offset of the first component in each vertex
	Offset int

	// Enabled marks the slot active. Disabled slots are not read
	// from the buffer, and their other fields are ignored.
	Enabled bool
}

// Float32Attribute returns an enabled attribute of n float components
// in a buffer of stride floats per vertex, starting at offset floats.
func Float32Attribute(slot uint32, n, stride, offset int) Attribute {
	return Attribute{Slot: slot, Components: n, Stride: stride * FloatBytes, Offset: offset * FloatBytes, Enabled: true}
}

// AttributeLayout is the ordered set of attributes that are read
// from one vertex buffer.
type AttributeLayout []Attribute

// Stride returns the byte stride shared by the enabled attributes,
// 0 if none are enabled.
func (al AttributeLayout) Stride() int {
	for _, at := range al {
		if at.Enabled {
			return at.Stride
		}
	}
	return 0
}

// Validate checks that all enabled attributes share the same
// positive stride and fit within it, with no slot used twice.
func (al AttributeLayout) Validate() error {
	stride := al.Stride()
	slots := make(map[uint32]bool, len(al))
	for _, at := range al {
		if slots[at.Slot] {
			return fmt.Errorf("gpu.AttributeLayout: slot %d listed more than once", at.Slot)
		}
		slots[at.Slot] = true
		if !at.Enabled {
			continue
		}
		switch {
		case at.Components < 1 || at.Components > 4:
			return fmt.Errorf("gpu.AttributeLayout: slot %d has %d components, must be 1-4", at.Slot, at.Components)
		case at.Stride <= 0 || at.Stride != stride:
			return fmt.Errorf("gpu.AttributeLayout: slot %d stride %d does not match buffer stride %d", at.Slot, at.Stride, stride)
		case at.Offset < 0 || at.Offset+at.Components*FloatBytes > at.Stride:
			return fmt.Errorf("gpu.AttributeLayout: slot %d at offset %d overruns stride %d", at.Slot, at.Offset, at.Stride)
		}
	}
	return nil
}

// BindLayout configures the attribute slots of the currently bound
// vertex array to read from the currently bound array buffer:
// enabled slots are activated and pointed at their components,
// disabled slots are deactivated. The layout is not validated.
func BindLayout(drv Driver, al AttributeLayout) {
	for _, at := range al {
		if !at.Enabled {
			drv.DisableAttrib(at.Slot)
			continue
		}
		drv.EnableAttrib(at.Slot)
		drv.AttribPointer(at.Slot, at.Components, at.Stride, at.Offset)
	}
}
