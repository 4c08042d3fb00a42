// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package render

import (
	"image"
	"image/color"
	"testing"

	"github.com/gogpu/gputypes"
)

func TestPixmapTargetBasics(t *testing.T) {
	target := NewPixmapTarget(64, 32)

	if target.Width() != 64 || target.Height() != 32 {
		t.Errorf("size = %dx%d, want 64x32", target.Width(), target.Height())
	}
	if target.Format() != gputypes.TextureFormatRGBA8Unorm {
		t.Errorf("format = %v, want RGBA8Unorm", target.Format())
	}
	if got, want := len(target.Pixels()), 64*32*4; got != want {
		t.Errorf("len(Pixels) = %d, want %d", got, want)
	}
	if target.Stride() < 64*4 {
		t.Errorf("stride = %d, want >= %d", target.Stride(), 64*4)
	}
}

func TestPixmapTargetClear(t *testing.T) {
	target := NewPixmapTarget(4, 4)
	target.Clear(color.RGBA{R: 255, G: 128, B: 0, A: 255})

	got := target.Image().RGBAAt(2, 2)
	want := color.RGBA{R: 255, G: 128, B: 0, A: 255}
	if got != want {
		t.Errorf("pixel (2,2) = %v, want %v", got, want)
	}
}

func TestPixmapTargetFromImage(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 8, 8))
	img.SetRGBA(3, 3, color.RGBA{R: 1, G: 2, B: 3, A: 4})

	target := NewPixmapTargetFromImage(img)
	if target.Image() != img {
		t.Error("target must share the wrapped image")
	}
	if got := target.Image().RGBAAt(3, 3); got != (color.RGBA{R: 1, G: 2, B: 3, A: 4}) {
		t.Errorf("pixel (3,3) = %v", got)
	}
}

func TestPixmapTargetResize(t *testing.T) {
	target := NewPixmapTarget(4, 4)
	target.Resize(16, 8)
	if target.Width() != 16 || target.Height() != 8 {
		t.Errorf("size after resize = %dx%d, want 16x8", target.Width(), target.Height())
	}
}

func TestSurfaceTarget(t *testing.T) {
	target := NewSurfaceTarget(800, 600, gputypes.TextureFormatBGRA8Unorm)

	if target.Width() != 800 || target.Height() != 600 {
		t.Errorf("size = %dx%d, want 800x600", target.Width(), target.Height())
	}
	if target.Format() != gputypes.TextureFormatBGRA8Unorm {
		t.Errorf("format = %v, want BGRA8Unorm", target.Format())
	}
	if target.Pixels() != nil {
		t.Error("surface target must not expose CPU pixels")
	}
	if target.Stride() != 0 {
		t.Errorf("stride = %d, want 0", target.Stride())
	}
}
