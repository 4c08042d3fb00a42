package vg

import "golang.org/x/image/math/f32"

// Vertex is a single entry in the shared frame vertex buffer.
//
// Pos is the device-space position. Color is premultiplied 8-bit RGBA.
//
// UV carries either texture coordinates (for textured draw calls, e.g.
// glyph quads) or the anti-aliasing coverage coordinate produced by the
// mesh generators. In coverage mode U runs across the stroke thickness:
// 0 and 1 at the two anti-aliased edges, 0.5 on the fully covered
// centerline (and at cap tips and fill centroids). The fragment shader
// folds U as min(U, 1-U) — 0 at an edge, 0.5 when fully covered — and
// feeds it through a smoothstep scaled to the device fringe width.
type Vertex struct {
	Pos   f32.Vec2
	UV    f32.Vec2
	Color [4]uint8
}

// vert builds a Vertex from device-space doubles.
func vert(x, y, u, v float64, color [4]uint8) Vertex {
	return Vertex{
		Pos:   f32.Vec2{float32(x), float32(y)},
		UV:    f32.Vec2{float32(u), float32(v)},
		Color: color,
	}
}

// TextureHandle identifies a texture owned by a TextureProvider.
// The zero handle means "no texture".
type TextureHandle int

// NoTexture is the nil texture handle.
const NoTexture TextureHandle = 0
