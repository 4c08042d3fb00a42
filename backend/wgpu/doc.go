// Package wgpu renders vg draw calls through the gogpu/wgpu WebGPU
// HAL, which targets Vulkan, Metal, and DX12 depending on platform.
//
// The renderer consumes the frame a vg.Canvas produces — one shared
// vertex buffer, one index buffer, and an ordered list of draw calls —
// and replays it with a single render pipeline. Per-call uniforms carry
// the brush gradient, scissor, and shading mode, so batched calls only
// differ in their bind group.
//
// Basic usage:
//
//	renderer, err := wgpu.NewRenderer(device, queue)
//	if err != nil {
//		return err
//	}
//	defer renderer.Destroy()
//
//	if err := renderer.Resize(800, 600); err != nil {
//		return err
//	}
//
//	canvas, _ := vg.NewCanvas()
//	canvas.BeginPath()
//	canvas.Circle(400, 300, 120)
//	canvas.FillConvex()
//
//	err = renderer.Render(canvas.Vertices(), canvas.Indices(), canvas.DrawCalls())
//
// For windowed rendering, point the renderer at a swapchain view with
// SetSurface instead of Resize. Offscreen targets support ReadPixels
// for tests and image export.
//
// The renderer also implements vg.TextureProvider, backing the image
// and glyph-atlas textures the canvas samples in textured draw calls.
package wgpu
