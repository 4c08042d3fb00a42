package vg

// DrawCall is a contiguous run of triangles sharing one pipeline
// state: texture binding, brush, and scissor. The renderer issues one
// indexed draw per call, binding TriangleCount*3 indices starting at
// IndexOffset.
type DrawCall struct {
	IndexOffset   int
	TriangleCount int

	Texture TextureHandle
	Brush   Brush

	ScissorTransform Matrix
	ScissorExtent    Point
}

// stateMatches reports whether the call can absorb triangles emitted
// under the current canvas state.
func (d *DrawCall) stateMatches(c *Canvas) bool {
	return d.Texture == c.state.Texture &&
		d.Brush == c.state.Brush &&
		d.ScissorTransform == c.state.Scissor.Transform &&
		d.ScissorExtent == c.state.Scissor.Extent
}

// currentDrawCall returns the draw call accepting new triangles,
// opening a fresh one when the render state changed since the last
// triangle.
func (c *Canvas) currentDrawCall() *DrawCall {
	if n := len(c.drawCalls); n > 0 {
		last := &c.drawCalls[n-1]
		if last.stateMatches(c) {
			return last
		}
	}
	c.drawCalls = append(c.drawCalls, DrawCall{
		IndexOffset:      len(c.indices),
		Texture:          c.state.Texture,
		Brush:            c.state.Brush,
		ScissorTransform: c.state.Scissor.Transform,
		ScissorExtent:    c.state.Scissor.Extent,
	})
	return &c.drawCalls[len(c.drawCalls)-1]
}

// SetTexture binds a texture for subsequent triangles. Textured draw
// calls sample it with the vertex UV; pass NoTexture to unbind.
func (c *Canvas) SetTexture(h TextureHandle) {
	c.state.Texture = h
}

// AddVertex appends a raw vertex to the frame buffer and returns its
// index. Intended for external mesh producers (text, sprites) that
// build geometry outside the path pipeline.
func (c *Canvas) AddVertex(v Vertex) uint32 {
	c.vertices = append(c.vertices, v)
	return uint32(len(c.vertices) - 1)
}

// AddTriangle appends one triangle by vertex index. Each triangle is
// batched into the current draw call, or a new call if the render
// state changed.
func (c *Canvas) AddTriangle(a, b, d uint32) {
	call := c.currentDrawCall()
	c.indices = append(c.indices, a, b, d)
	call.TriangleCount++
}

// Vertices returns the frame vertex buffer. The slice is owned by the
// canvas and valid until the next Clear.
func (c *Canvas) Vertices() []Vertex {
	return c.vertices
}

// Indices returns the frame index buffer, valid until the next Clear.
func (c *Canvas) Indices() []uint32 {
	return c.indices
}

// DrawCalls returns the frame's draw calls with empty calls filtered
// out. A call becomes empty when a state change opened it but no
// triangle followed before the next change.
func (c *Canvas) DrawCalls() []DrawCall {
	calls := make([]DrawCall, 0, len(c.drawCalls))
	for _, d := range c.drawCalls {
		if d.TriangleCount > 0 {
			calls = append(calls, d)
		}
	}
	Logger().Debug("frame buffers",
		"vertices", len(c.vertices),
		"indices", len(c.indices),
		"calls", len(calls))
	return calls
}
