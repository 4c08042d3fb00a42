//go:build !nogpu

package wgpu

import (
	"encoding/binary"
	"math"

	"github.com/gogpu/vg"
)

// canvasVertexStride is the byte stride per vertex in the canvas
// pipeline. Layout per vertex:
//
//	position (vec2<f32>) = 8 bytes (location 0)
//	uv       (vec2<f32>) = 8 bytes (location 1)
//	color    (unorm8x4)  = 4 bytes (location 2)
//
// Total = 20 bytes, matching vg.Vertex.
const canvasVertexStride = 20

// callUniformSize is the byte size of the per-call uniform block.
// Layout: two mat4x4<f32> (128 bytes) followed by six vec4<f32>
// (96 bytes), matching Uniforms in canvas.wgsl.
const callUniformSize = 224

// packVertices serializes the frame vertex buffer for GPU upload.
func packVertices(vertices []vg.Vertex) []byte {
	data := make([]byte, len(vertices)*canvasVertexStride)
	off := 0
	for i := range vertices {
		v := &vertices[i]
		binary.LittleEndian.PutUint32(data[off+0:], math.Float32bits(v.Pos[0]))
		binary.LittleEndian.PutUint32(data[off+4:], math.Float32bits(v.Pos[1]))
		binary.LittleEndian.PutUint32(data[off+8:], math.Float32bits(v.UV[0]))
		binary.LittleEndian.PutUint32(data[off+12:], math.Float32bits(v.UV[1]))
		data[off+16] = v.Color[0]
		data[off+17] = v.Color[1]
		data[off+18] = v.Color[2]
		data[off+19] = v.Color[3]
		off += canvasVertexStride
	}
	return data
}

// packIndices serializes the frame index buffer for GPU upload.
func packIndices(indices []uint32) []byte {
	data := make([]byte, len(indices)*4)
	for i, idx := range indices {
		binary.LittleEndian.PutUint32(data[i*4:], idx)
	}
	return data
}

// packCallUniform builds the uniform block for one draw call:
// inverse scissor and brush transforms, gradient stops and shape,
// viewport size, and the shading mode flags.
func packCallUniform(call *vg.DrawCall, width, height uint32, fringe float64) []byte {
	data := make([]byte, callUniformSize)

	scissored := call.ScissorExtent.X >= 0
	if scissored {
		putMat4(data[0:], call.ScissorTransform.Invert())
	} else {
		putMat4(data[0:], vg.Identity())
	}

	brush := &call.Brush
	gradient := brush.Kind != vg.BrushNone
	if gradient {
		putMat4(data[64:], brush.Transform.Invert())
	} else {
		putMat4(data[64:], vg.Identity())
	}

	putPremulColor(data[128:], brush.InnerColor)
	putPremulColor(data[144:], brush.OuterColor)

	// scissor_ext: x < 0 disables scissoring in the shader.
	if scissored {
		putVec4(data[160:], call.ScissorExtent.X, call.ScissorExtent.Y, 0, 0)
	} else {
		putVec4(data[160:], -1, -1, 0, 0)
	}

	putVec4(data[176:], brush.Extent.X, brush.Extent.Y, brush.Radius, brush.Feather)
	putVec4(data[192:], float64(width), float64(height), fringe, 0)

	var gradientFlag, texturedFlag float64
	if gradient {
		gradientFlag = 1
	}
	if call.Texture != vg.NoTexture {
		texturedFlag = 1
	}
	putVec4(data[208:], gradientFlag, texturedFlag, 0, 0)

	return data
}

// putMat4 writes a 2x3 affine matrix as a column-major mat4x4<f32>,
// so that M * vec4(x, y, 0, 1) applies the affine transform.
func putMat4(data []byte, m vg.Matrix) {
	cols := [16]float64{
		m.A, m.D, 0, 0,
		m.B, m.E, 0, 0,
		0, 0, 1, 0,
		m.C, m.F, 0, 1,
	}
	for i, f := range cols {
		binary.LittleEndian.PutUint32(data[i*4:], math.Float32bits(float32(f)))
	}
}

// putVec4 writes four float32 values.
func putVec4(data []byte, x, y, z, w float64) {
	binary.LittleEndian.PutUint32(data[0:], math.Float32bits(float32(x)))
	binary.LittleEndian.PutUint32(data[4:], math.Float32bits(float32(y)))
	binary.LittleEndian.PutUint32(data[8:], math.Float32bits(float32(z)))
	binary.LittleEndian.PutUint32(data[12:], math.Float32bits(float32(w)))
}

// putPremulColor writes a straight-alpha color as premultiplied float32
// RGBA, matching the blend state and the vertex color convention.
func putPremulColor(data []byte, c vg.RGBA) {
	putVec4(data, c.R*c.A, c.G*c.A, c.B*c.A, c.A)
}
