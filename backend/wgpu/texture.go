//go:build !nogpu

package wgpu

import (
	"fmt"

	"github.com/gogpu/gputypes"
	"github.com/gogpu/wgpu/hal"

	"github.com/gogpu/vg"
)

// gpuTexture is a canvas-visible texture and its sampling view.
type gpuTexture struct {
	tex    hal.Texture
	view   hal.TextureView
	width  int
	height int
}

// createTextureAndView allocates an RGBA8 texture with a 2D sampling view.
func (r *Renderer) createTextureAndView(label string, width, height uint32) (hal.Texture, hal.TextureView, error) {
	tex, err := r.device.CreateTexture(&hal.TextureDescriptor{
		Label:         label,
		Size:          hal.Extent3D{Width: width, Height: height, DepthOrArrayLayers: 1},
		MipLevelCount: 1,
		SampleCount:   1,
		Dimension:     gputypes.TextureDimension2D,
		Format:        gputypes.TextureFormatRGBA8Unorm,
		Usage:         gputypes.TextureUsageTextureBinding | gputypes.TextureUsageCopyDst,
	})
	if err != nil {
		return nil, nil, fmt.Errorf("create texture %s: %w", label, err)
	}
	view, err := r.device.CreateTextureView(tex, &hal.TextureViewDescriptor{
		Label:         label + "_view",
		Format:        gputypes.TextureFormatRGBA8Unorm,
		Dimension:     gputypes.TextureViewDimension2D,
		Aspect:        gputypes.TextureAspectAll,
		MipLevelCount: 1,
	})
	if err != nil {
		r.device.DestroyTexture(tex)
		return nil, nil, fmt.Errorf("create texture view %s: %w", label, err)
	}
	return tex, view, nil
}

// CreateTexture allocates a width x height RGBA texture and returns a
// handle the canvas can bind with SetTexture. It implements
// vg.TextureProvider.
func (r *Renderer) CreateTexture(width, height int) (vg.TextureHandle, error) {
	if width <= 0 || height <= 0 {
		return vg.NoTexture, fmt.Errorf("wgpu: invalid texture size %dx%d", width, height)
	}

	h := r.nextHandle
	tex, view, err := r.createTextureAndView(fmt.Sprintf("vg_texture_%d", h),
		uint32(width), uint32(height))
	if err != nil {
		return vg.NoTexture, err
	}

	r.nextHandle++
	r.textures[h] = &gpuTexture{tex: tex, view: view, width: width, height: height}
	return h, nil
}

// TextureSize reports the dimensions of an existing texture.
func (r *Renderer) TextureSize(h vg.TextureHandle) (int, int, error) {
	tex, ok := r.textures[h]
	if !ok {
		return 0, 0, fmt.Errorf("%w: handle %d", vg.ErrTextureNotFound, h)
	}
	return tex.width, tex.height, nil
}

// UpdateTexture writes RGBA pixels into a sub-rectangle of the texture.
// data holds w*h*4 bytes in row-major order. Premultiplied data blends
// correctly; glyph coverage atlases should store white premultiplied by
// coverage.
func (r *Renderer) UpdateTexture(h vg.TextureHandle, x, y, w, hgt int, data []byte) error {
	tex, ok := r.textures[h]
	if !ok {
		return fmt.Errorf("%w: handle %d", vg.ErrTextureNotFound, h)
	}
	if x < 0 || y < 0 || w <= 0 || hgt <= 0 || x+w > tex.width || y+hgt > tex.height {
		return fmt.Errorf("wgpu: update rect (%d,%d %dx%d) outside texture %dx%d",
			x, y, w, hgt, tex.width, tex.height)
	}
	if len(data) < w*hgt*4 {
		return fmt.Errorf("wgpu: update data %d bytes, need %d", len(data), w*hgt*4)
	}

	r.queue.WriteTexture(
		&hal.ImageCopyTexture{
			Texture:  tex.tex,
			MipLevel: 0,
			Origin:   hal.Origin3D{X: uint32(x), Y: uint32(y)},
			Aspect:   gputypes.TextureAspectAll,
		},
		data[:w*hgt*4],
		&hal.ImageDataLayout{
			Offset:       0,
			BytesPerRow:  uint32(w) * 4,
			RowsPerImage: uint32(hgt),
		},
		&hal.Extent3D{Width: uint32(w), Height: uint32(hgt), DepthOrArrayLayers: 1},
	)
	return nil
}

// DeleteTexture releases a texture created with CreateTexture.
func (r *Renderer) DeleteTexture(h vg.TextureHandle) error {
	tex, ok := r.textures[h]
	if !ok {
		return fmt.Errorf("%w: handle %d", vg.ErrTextureNotFound, h)
	}
	r.device.DestroyTextureView(tex.view)
	r.device.DestroyTexture(tex.tex)
	delete(r.textures, h)
	return nil
}
