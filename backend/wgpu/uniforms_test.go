//go:build !nogpu

package wgpu

import (
	"encoding/binary"
	"math"
	"testing"

	"golang.org/x/image/math/f32"

	"github.com/gogpu/vg"
)

func f32At(t *testing.T, data []byte, off int) float32 {
	t.Helper()
	if off+4 > len(data) {
		t.Fatalf("offset %d out of range (%d bytes)", off, len(data))
	}
	return math.Float32frombits(binary.LittleEndian.Uint32(data[off:]))
}

func TestPackVertices(t *testing.T) {
	verts := []vg.Vertex{
		{Pos: f32.Vec2{1.5, -2}, UV: f32.Vec2{0, 0.5}, Color: [4]uint8{10, 20, 30, 40}},
		{Pos: f32.Vec2{3, 4}, UV: f32.Vec2{1, 0.5}, Color: [4]uint8{255, 0, 0, 255}},
	}

	data := packVertices(verts)
	if got, want := len(data), len(verts)*canvasVertexStride; got != want {
		t.Fatalf("len = %d, want %d", got, want)
	}

	if got := f32At(t, data, 0); got != 1.5 {
		t.Errorf("v0.x = %v, want 1.5", got)
	}
	if got := f32At(t, data, 4); got != -2 {
		t.Errorf("v0.y = %v, want -2", got)
	}
	if got := f32At(t, data, 12); got != 0.5 {
		t.Errorf("v0.v = %v, want 0.5", got)
	}
	if data[16] != 10 || data[17] != 20 || data[18] != 30 || data[19] != 40 {
		t.Errorf("v0 color bytes = %v, want [10 20 30 40]", data[16:20])
	}

	base := canvasVertexStride
	if got := f32At(t, data, base); got != 3 {
		t.Errorf("v1.x = %v, want 3", got)
	}
	if data[base+16] != 255 || data[base+19] != 255 {
		t.Errorf("v1 color bytes = %v, want [255 0 0 255]", data[base+16:base+20])
	}
}

func TestPackIndices(t *testing.T) {
	data := packIndices([]uint32{0, 1, 0x10002})
	if len(data) != 12 {
		t.Fatalf("len = %d, want 12", len(data))
	}
	if got := binary.LittleEndian.Uint32(data[8:]); got != 0x10002 {
		t.Errorf("index 2 = %#x, want 0x10002", got)
	}
}

func TestPackCallUniformDefaults(t *testing.T) {
	call := vg.DrawCall{
		ScissorTransform: vg.Identity(),
		ScissorExtent:    vg.Point{X: -1, Y: -1},
	}

	data := packCallUniform(&call, 800, 600, 1.0)
	if len(data) != callUniformSize {
		t.Fatalf("len = %d, want %d", len(data), callUniformSize)
	}

	// Disabled scissor: extent.x < 0.
	if got := f32At(t, data, 160); got >= 0 {
		t.Errorf("scissor_ext.x = %v, want negative", got)
	}
	// Viewport and fringe.
	if got := f32At(t, data, 192); got != 800 {
		t.Errorf("viewport.x = %v, want 800", got)
	}
	if got := f32At(t, data, 196); got != 600 {
		t.Errorf("viewport.y = %v, want 600", got)
	}
	if got := f32At(t, data, 200); got != 1 {
		t.Errorf("viewport.z (fringe) = %v, want 1", got)
	}
	// No gradient, no texture.
	if got := f32At(t, data, 208); got != 0 {
		t.Errorf("mode.x = %v, want 0", got)
	}
	if got := f32At(t, data, 212); got != 0 {
		t.Errorf("mode.y = %v, want 0", got)
	}
}

func TestPackCallUniformGradient(t *testing.T) {
	inner := vg.RGBA{R: 1, G: 0, B: 0, A: 0.5}
	outer := vg.RGBA{R: 0, G: 0, B: 1, A: 1}
	call := vg.DrawCall{
		Brush:            vg.RadialGradient(100, 50, 10, 40, inner, outer),
		ScissorTransform: vg.Identity(),
		ScissorExtent:    vg.Point{X: -1, Y: -1},
	}

	data := packCallUniform(&call, 200, 200, 1.0)

	// Gradient flag set.
	if got := f32At(t, data, 208); got != 1 {
		t.Errorf("mode.x = %v, want 1", got)
	}

	// Inner color premultiplied: (0.5, 0, 0, 0.5).
	if got := f32At(t, data, 128); got != 0.5 {
		t.Errorf("inner.r = %v, want 0.5", got)
	}
	if got := f32At(t, data, 140); got != 0.5 {
		t.Errorf("inner.a = %v, want 0.5", got)
	}
	// Outer color premultiplied: (0, 0, 1, 1).
	if got := f32At(t, data, 152); got != 1 {
		t.Errorf("outer.b = %v, want 1", got)
	}

	// paint_ext: extent (25, 25), radius 25, feather 30.
	if got := f32At(t, data, 176); got != 25 {
		t.Errorf("paint_ext.x = %v, want 25", got)
	}
	if got := f32At(t, data, 184); got != 25 {
		t.Errorf("paint_ext.z (radius) = %v, want 25", got)
	}
	if got := f32At(t, data, 188); got != 30 {
		t.Errorf("paint_ext.w (feather) = %v, want 30", got)
	}

	// paint_mat inverts the brush transform: a radial gradient at
	// (100, 50) maps the center back to the origin.
	x, y := 100.0, 50.0
	a, d := f32At(t, data, 64), f32At(t, data, 68)
	b, e := f32At(t, data, 80), f32At(t, data, 84)
	cx, cy := f32At(t, data, 112), f32At(t, data, 116)
	lx := float64(a)*x + float64(b)*y + float64(cx)
	ly := float64(d)*x + float64(e)*y + float64(cy)
	if math.Abs(lx) > 1e-4 || math.Abs(ly) > 1e-4 {
		t.Errorf("inverse paint transform maps center to (%v, %v), want origin", lx, ly)
	}
}

func TestPackCallUniformScissor(t *testing.T) {
	call := vg.DrawCall{
		// Scissor rect (10, 20, 60x40): centered transform with
		// half-extents (30, 20).
		ScissorTransform: vg.Translation(40, 40),
		ScissorExtent:    vg.Point{X: 30, Y: 20},
	}

	data := packCallUniform(&call, 100, 100, 1.0)

	if got := f32At(t, data, 160); got != 30 {
		t.Errorf("scissor_ext.x = %v, want 30", got)
	}
	if got := f32At(t, data, 164); got != 20 {
		t.Errorf("scissor_ext.y = %v, want 20", got)
	}

	// Inverse scissor transform maps the scissor center to the origin.
	cx, cy := f32At(t, data, 48), f32At(t, data, 52)
	if cx != -40 || cy != -40 {
		t.Errorf("inverse scissor translation = (%v, %v), want (-40, -40)", cx, cy)
	}
}

func TestPackCallUniformTextured(t *testing.T) {
	call := vg.DrawCall{
		Texture:          vg.TextureHandle(3),
		ScissorTransform: vg.Identity(),
		ScissorExtent:    vg.Point{X: -1, Y: -1},
	}

	data := packCallUniform(&call, 64, 64, 0.5)
	if got := f32At(t, data, 212); got != 1 {
		t.Errorf("mode.y = %v, want 1", got)
	}
	if got := f32At(t, data, 200); got != 0.5 {
		t.Errorf("viewport.z (fringe) = %v, want 0.5", got)
	}
}

func TestPutMat4ColumnMajor(t *testing.T) {
	// x' = 2x + 10, y' = 3y + 20.
	m := vg.Matrix{A: 2, B: 0, C: 10, D: 0, E: 3, F: 20}
	data := make([]byte, 64)
	putMat4(data, m)

	// Column 0 = (A, D, 0, 0), column 1 = (B, E, 0, 0),
	// column 3 = (C, F, 0, 1).
	if got := f32At(t, data, 0); got != 2 {
		t.Errorf("col0.x = %v, want 2", got)
	}
	if got := f32At(t, data, 20); got != 3 {
		t.Errorf("col1.y = %v, want 3", got)
	}
	if got := f32At(t, data, 48); got != 10 {
		t.Errorf("col3.x = %v, want 10", got)
	}
	if got := f32At(t, data, 52); got != 20 {
		t.Errorf("col3.y = %v, want 20", got)
	}
	if got := f32At(t, data, 60); got != 1 {
		t.Errorf("col3.w = %v, want 1", got)
	}
}

func BenchmarkPackVertices(b *testing.B) {
	verts := make([]vg.Vertex, 4096)
	for i := range verts {
		verts[i] = vg.Vertex{
			Pos:   f32.Vec2{float32(i), float32(i * 2)},
			UV:    f32.Vec2{0, 0.5},
			Color: [4]uint8{255, 255, 255, 255},
		}
	}
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = packVertices(verts)
	}
}
