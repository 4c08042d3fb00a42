// Package vg is an immediate-mode 2D vector graphics engine for GPU
// rendering.
//
// # Overview
//
// vg turns paths into anti-aliased triangle meshes. Each frame the
// application clears the canvas, issues drawing commands, and hands
// the resulting vertex, index, and draw-call buffers to a renderer.
// The engine itself never touches the GPU; backend/wgpu implements the
// Renderer interface on top of gogpu/wgpu.
//
// # Quick Start
//
//	import "github.com/gogpu/vg"
//
//	c, err := vg.NewCanvas(vg.WithDevicePixelRatio(2))
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	c.Clear()
//	c.BeginPath()
//	c.Circle(256, 256, 100)
//	c.SetFillColor(vg.Red)
//	c.FillConvex()
//
//	renderer.Render(c.Vertices(), c.Indices(), c.DrawCalls())
//
// # Architecture
//
// The library is organized into:
//   - Public API: Canvas, Point, Matrix, Color, Brush, Vertex, DrawCall
//   - Internal: curve (Bezier flattening), mesh (stroke tessellation)
//   - Collaborators: render (GPU resource layer), backend/wgpu
//     (WebGPU renderer), text (shaping and glyph atlas)
//
// # Anti-Aliasing
//
// Edges are anti-aliased geometrically: boundary vertices carry a
// coverage coordinate in UV, and the fragment shader fades alpha over
// a one-device-pixel fringe. No MSAA or texture lookups are required
// for solid geometry.
//
// # Coordinate System
//
// Uses standard computer graphics coordinates:
//   - Origin (0,0) at top-left
//   - X increases right
//   - Y increases down
//   - Angles in radians, 0 is right, increases clockwise on screen
package vg
