// Copyright (c) 2019, The GoKi Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gpu

// ShaderTypes is a list of GPU shader stage types
type ShaderTypes int32

const (
	// VertexShader runs once per vertex
	VertexShader ShaderTypes = iota

	// FragmentShader runs once per rasterized fragment
	FragmentShader

	ShaderTypesN
)

var shaderTypeNames = [ShaderTypesN]string{
	VertexShader:   "vertex",
	FragmentShader: "fragment",
}

func (st ShaderTypes) String() string {
	if st < 0 || st >= ShaderTypesN {
		return "ShaderTypes(invalid)"
	}
	return shaderTypeNames[st]
}

// FloatBytes is the number of bytes in each vertex component,
// which are always 32 bit floats.
const FloatBytes = 4

// NoLocation is the location reported for a uniform that is
// not present in a linked program. Writes to it are ignored.
const NoLocation int32 = -1
