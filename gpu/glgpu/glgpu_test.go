// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package glgpu

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCString(t *testing.T) {
	assert.Equal(t, "color\x00", CString("color"))
	assert.Equal(t, "color\x00", CString("color\x00"))
}
