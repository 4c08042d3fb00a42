// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package render

import (
	"image"
	"image/color"

	"github.com/gogpu/gputypes"
)

// RenderTarget is a destination for a rendered frame.
//
// Two kinds of target exist:
//   - PixmapTarget: CPU-backed *image.RGBA, filled by GPU readback or
//     software rasterization.
//   - SurfaceTarget: a window surface view owned by the host
//     application, drawn to directly.
//
// Targets may support CPU access (Pixels) or GPU access (SurfaceView),
// never neither. Renderers pick the access method that fits.
type RenderTarget interface {
	// Width returns the target width in pixels.
	Width() int

	// Height returns the target height in pixels.
	Height() int

	// Format returns the pixel format of the target.
	Format() gputypes.TextureFormat

	// Pixels returns direct access to pixel data, or nil for
	// GPU-only targets. For RGBA formats each pixel is 4 bytes.
	Pixels() []byte

	// Stride returns the number of bytes per pixel row. May exceed
	// Width*4 when rows are padded.
	Stride() int
}

// PixmapTarget is a CPU-backed render target wrapping *image.RGBA.
// backend/wgpu reads frames back into it; the image can then be
// encoded or compared in tests.
//
//	target := render.NewPixmapTarget(800, 600)
//	renderer.Render(canvas.Vertices(), canvas.Indices(), canvas.DrawCalls())
//	err := renderer.ReadTarget(target)
//	img := target.Image()
type PixmapTarget struct {
	img *image.RGBA
}

// NewPixmapTarget creates a CPU-backed render target.
func NewPixmapTarget(width, height int) *PixmapTarget {
	return &PixmapTarget{
		img: image.NewRGBA(image.Rect(0, 0, width, height)),
	}
}

// NewPixmapTargetFromImage wraps an existing *image.RGBA without
// copying.
func NewPixmapTargetFromImage(img *image.RGBA) *PixmapTarget {
	return &PixmapTarget{img: img}
}

// Width returns the target width in pixels.
func (t *PixmapTarget) Width() int {
	return t.img.Bounds().Dx()
}

// Height returns the target height in pixels.
func (t *PixmapTarget) Height() int {
	return t.img.Bounds().Dy()
}

// Format returns the pixel format (RGBA8).
func (t *PixmapTarget) Format() gputypes.TextureFormat {
	return gputypes.TextureFormatRGBA8Unorm
}

// Pixels returns direct access to the pixel data.
func (t *PixmapTarget) Pixels() []byte {
	return t.img.Pix
}

// Stride returns the number of bytes per row.
func (t *PixmapTarget) Stride() int {
	return t.img.Stride
}

// Image returns the underlying *image.RGBA, sharing memory with the
// target.
func (t *PixmapTarget) Image() *image.RGBA {
	return t.img
}

// Clear fills the entire target with the given color.
func (t *PixmapTarget) Clear(c color.Color) {
	r, g, b, a := c.RGBA()
	//nolint:gosec // G115: 16-bit color components shifted into 8 bits
	rgba := color.RGBA{
		R: uint8(r >> 8),
		G: uint8(g >> 8),
		B: uint8(b >> 8),
		A: uint8(a >> 8),
	}
	bounds := t.img.Bounds()
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			t.img.SetRGBA(x, y, rgba)
		}
	}
}

// Resize replaces the backing image with a new one of the given size.
// Contents are not preserved.
func (t *PixmapTarget) Resize(width, height int) {
	t.img = image.NewRGBA(image.Rect(0, 0, width, height))
}

var _ RenderTarget = (*PixmapTarget)(nil)

// SurfaceTarget describes a window surface owned by the host
// application. The surface view itself is backend-specific; the target
// carries the dimensions and format a renderer needs to configure its
// pipeline against the surface.
type SurfaceTarget struct {
	width  int
	height int
	format gputypes.TextureFormat
}

// NewSurfaceTarget describes a host window surface of the given size
// and format (typically the DeviceHandle's SurfaceFormat).
func NewSurfaceTarget(width, height int, format gputypes.TextureFormat) *SurfaceTarget {
	return &SurfaceTarget{width: width, height: height, format: format}
}

// Width returns the surface width in pixels.
func (t *SurfaceTarget) Width() int {
	return t.width
}

// Height returns the surface height in pixels.
func (t *SurfaceTarget) Height() int {
	return t.height
}

// Format returns the surface pixel format.
func (t *SurfaceTarget) Format() gputypes.TextureFormat {
	return t.format
}

// Pixels returns nil: surfaces do not support CPU access.
func (t *SurfaceTarget) Pixels() []byte {
	return nil
}

// Stride returns 0: surfaces do not support CPU access.
func (t *SurfaceTarget) Stride() int {
	return 0
}

var _ RenderTarget = (*SurfaceTarget)(nil)
