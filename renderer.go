package vg

// Renderer consumes one finished frame: shared vertex and index
// buffers plus the draw calls slicing them. Implementations upload the
// buffers once and replay the calls in order; backend/wgpu provides a
// WebGPU implementation.
type Renderer interface {
	Render(vertices []Vertex, indices []uint32, calls []DrawCall) error
}

// TextureProvider manages GPU-side textures on behalf of the canvas
// and its mesh producers (images, glyph atlases). Handles are opaque;
// NoTexture is never issued.
type TextureProvider interface {
	// CreateTexture allocates a width x height RGBA texture and
	// returns its handle.
	CreateTexture(width, height int) (TextureHandle, error)

	// TextureSize reports the dimensions of an existing texture.
	// Returns ErrTextureNotFound for unknown handles.
	TextureSize(h TextureHandle) (width, height int, err error)

	// UpdateTexture writes RGBA pixels into a sub-rectangle of the
	// texture. data holds w*h*4 bytes in row-major order.
	UpdateTexture(h TextureHandle, x, y, w, hgt int, data []byte) error
}
