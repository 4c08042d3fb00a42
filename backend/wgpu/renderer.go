//go:build !nogpu

package wgpu

import (
	_ "embed"
	"errors"
	"fmt"
	"image"
	"time"

	"github.com/gogpu/gputypes"
	"github.com/gogpu/wgpu/hal"

	"github.com/gogpu/vg"
	"github.com/gogpu/vg/render"
)

//go:embed shaders/canvas.wgsl
var canvasShaderSource string

var (
	_ vg.Renderer        = (*Renderer)(nil)
	_ vg.TextureProvider = (*Renderer)(nil)
)

// Renderer errors.
var (
	// ErrNilDevice is returned when constructing a renderer without a device.
	ErrNilDevice = errors.New("wgpu: device is nil")

	// ErrNilQueue is returned when constructing a renderer without a queue.
	ErrNilQueue = errors.New("wgpu: queue is nil")

	// ErrNoTarget is returned when Render is called before a target exists.
	ErrNoTarget = errors.New("wgpu: no render target (call Resize or SetSurface first)")

	// ErrNoOffscreenTarget is returned when reading pixels from a surface target.
	ErrNoOffscreenTarget = errors.New("wgpu: pixel readback requires an offscreen target")
)

// fenceTimeout bounds how long a frame submission may take.
const fenceTimeout = 5 * time.Second

// Renderer executes vg draw calls against a WebGPU device. It
// implements vg.Renderer and vg.TextureProvider.
//
// One render pipeline serves every draw call; a small per-call uniform
// block selects between flat color, gradient, and textured shading.
// Vertex, index, and uniform buffers are created and uploaded per
// frame, then destroyed once the GPU fence signals.
//
// The renderer draws either into its own offscreen texture (Resize,
// readable with ReadPixels) or into a caller-provided surface view
// (SetSurface) for windowed presentation.
type Renderer struct {
	device hal.Device
	queue  hal.Queue

	// Pipeline objects, created once in NewRenderer.
	shader        hal.ShaderModule
	uniformLayout hal.BindGroupLayout
	pipeLayout    hal.PipelineLayout
	pipeline      hal.RenderPipeline
	sampler       hal.Sampler

	// Current render target. targetTex is nil when the view came
	// from SetSurface.
	targetTex  hal.Texture
	targetView hal.TextureView
	width      uint32
	height     uint32

	clearColor vg.RGBA
	fringe     float64

	// 1x1 white texture bound for untextured draw calls, so the
	// bind group layout never changes.
	whiteTex  hal.Texture
	whiteView hal.TextureView

	textures   map[vg.TextureHandle]*gpuTexture
	nextHandle vg.TextureHandle
}

// Option configures a Renderer.
type Option func(*Renderer)

// WithFringe sets the anti-aliasing fringe width in pixels. It must
// match the fringe the canvas meshes with (1 / device pixel ratio).
func WithFringe(fringe float64) Option {
	return func(r *Renderer) {
		if fringe > 0 {
			r.fringe = fringe
		}
	}
}

// WithClearColor sets the color the target is cleared to each frame.
// The default is transparent black.
func WithClearColor(c vg.RGBA) Option {
	return func(r *Renderer) { r.clearColor = c }
}

// NewRenderer creates a renderer on the given HAL device and queue.
// The shader is compiled and the render pipeline created eagerly, so
// construction fails fast on unsupported devices.
func NewRenderer(device hal.Device, queue hal.Queue, opts ...Option) (*Renderer, error) {
	if device == nil {
		return nil, ErrNilDevice
	}
	if queue == nil {
		return nil, ErrNilQueue
	}

	r := &Renderer{
		device:     device,
		queue:      queue,
		fringe:     1.0,
		textures:   make(map[vg.TextureHandle]*gpuTexture),
		nextHandle: vg.NoTexture + 1,
	}
	for _, opt := range opts {
		opt(r)
	}

	if err := r.createPipeline(); err != nil {
		r.Destroy()
		return nil, err
	}
	if err := r.createWhiteTexture(); err != nil {
		r.Destroy()
		return nil, err
	}
	vg.Logger().Info("wgpu canvas pipeline created", "fringe", r.fringe)
	return r, nil
}

// createPipeline compiles the canvas shader through naga and creates
// the bind group layout, pipeline layout, sampler, and render pipeline.
func (r *Renderer) createPipeline() error {
	spirv, err := compileShaderToSPIRV(canvasShaderSource)
	if err != nil {
		return fmt.Errorf("compile canvas shader: %w", err)
	}
	shader, err := r.device.CreateShaderModule(&hal.ShaderModuleDescriptor{
		Label:  "vg_canvas_shader",
		Source: hal.ShaderSource{SPIRV: spirv},
	})
	if err != nil {
		return fmt.Errorf("create canvas shader module: %w", err)
	}
	r.shader = shader

	// Bind group layout:
	//   Binding 0: per-call uniforms (vertex+fragment)
	//   Binding 1: call texture (fragment)
	//   Binding 2: sampler (fragment)
	uniformLayout, err := r.device.CreateBindGroupLayout(&hal.BindGroupLayoutDescriptor{
		Label: "vg_canvas_uniform_layout",
		Entries: []gputypes.BindGroupLayoutEntry{
			{
				Binding:    0,
				Visibility: gputypes.ShaderStageVertex | gputypes.ShaderStageFragment,
				Buffer:     &gputypes.BufferBindingLayout{Type: gputypes.BufferBindingTypeUniform},
			},
			{
				Binding:    1,
				Visibility: gputypes.ShaderStageFragment,
				Texture: &gputypes.TextureBindingLayout{
					SampleType:    gputypes.TextureSampleTypeFloat,
					ViewDimension: gputypes.TextureViewDimension2D,
				},
			},
			{
				Binding:    2,
				Visibility: gputypes.ShaderStageFragment,
				Sampler:    &gputypes.SamplerBindingLayout{Type: gputypes.SamplerBindingTypeFiltering},
			},
		},
	})
	if err != nil {
		return fmt.Errorf("create canvas uniform layout: %w", err)
	}
	r.uniformLayout = uniformLayout

	pipeLayout, err := r.device.CreatePipelineLayout(&hal.PipelineLayoutDescriptor{
		Label:            "vg_canvas_pipe_layout",
		BindGroupLayouts: []hal.BindGroupLayout{r.uniformLayout},
	})
	if err != nil {
		return fmt.Errorf("create canvas pipeline layout: %w", err)
	}
	r.pipeLayout = pipeLayout

	sampler, err := r.device.CreateSampler(&hal.SamplerDescriptor{
		Label:        "vg_canvas_sampler",
		AddressModeU: gputypes.AddressModeClampToEdge,
		AddressModeV: gputypes.AddressModeClampToEdge,
		AddressModeW: gputypes.AddressModeClampToEdge,
		MagFilter:    gputypes.FilterModeLinear,
		MinFilter:    gputypes.FilterModeLinear,
		MipmapFilter: gputypes.FilterModeLinear,
	})
	if err != nil {
		return fmt.Errorf("create canvas sampler: %w", err)
	}
	r.sampler = sampler

	premulBlend := gputypes.BlendStatePremultiplied()
	pipeline, err := r.device.CreateRenderPipeline(&hal.RenderPipelineDescriptor{
		Label:  "vg_canvas_pipeline",
		Layout: r.pipeLayout,
		Vertex: hal.VertexState{
			Module:     r.shader,
			EntryPoint: "vs_main",
			Buffers:    canvasVertexLayout(),
		},
		Fragment: &hal.FragmentState{
			Module:     r.shader,
			EntryPoint: "fs_main",
			Targets: []gputypes.ColorTargetState{
				{
					Format:    gputypes.TextureFormatBGRA8Unorm,
					Blend:     &premulBlend,
					WriteMask: gputypes.ColorWriteMaskAll,
				},
			},
		},
		Primitive: gputypes.PrimitiveState{
			Topology: gputypes.PrimitiveTopologyTriangleList,
			CullMode: gputypes.CullModeNone,
		},
		Multisample: gputypes.MultisampleState{
			Count: 1,
			Mask:  0xFFFFFFFF,
		},
	})
	if err != nil {
		return fmt.Errorf("create canvas pipeline: %w", err)
	}
	r.pipeline = pipeline

	return nil
}

// canvasVertexLayout returns the vertex buffer layout matching
// VertexInput in canvas.wgsl and the vg.Vertex memory layout:
//
//	location 0: position (vec2<f32>)
//	location 1: uv       (vec2<f32>)
//	location 2: color    (unorm8x4)
func canvasVertexLayout() []gputypes.VertexBufferLayout {
	return []gputypes.VertexBufferLayout{
		{
			ArrayStride: canvasVertexStride,
			StepMode:    gputypes.VertexStepModeVertex,
			Attributes: []gputypes.VertexAttribute{
				{Format: gputypes.VertexFormatFloat32x2, Offset: 0, ShaderLocation: 0},
				{Format: gputypes.VertexFormatFloat32x2, Offset: 8, ShaderLocation: 1},
				{Format: gputypes.VertexFormatUnorm8x4, Offset: 16, ShaderLocation: 2},
			},
		},
	}
}

// createWhiteTexture allocates the 1x1 opaque white texture bound on
// untextured draw calls.
func (r *Renderer) createWhiteTexture() error {
	tex, view, err := r.createTextureAndView("vg_white", 1, 1)
	if err != nil {
		return err
	}
	r.whiteTex = tex
	r.whiteView = view
	r.queue.WriteTexture(
		&hal.ImageCopyTexture{Texture: tex, MipLevel: 0},
		[]byte{0xFF, 0xFF, 0xFF, 0xFF},
		&hal.ImageDataLayout{Offset: 0, BytesPerRow: 4, RowsPerImage: 1},
		&hal.Extent3D{Width: 1, Height: 1, DepthOrArrayLayers: 1},
	)
	return nil
}

// Resize creates (or recreates) the offscreen render target at the
// given pixel size. Pixels are read back with ReadPixels after Render.
func (r *Renderer) Resize(width, height int) error {
	if width <= 0 || height <= 0 {
		return fmt.Errorf("wgpu: invalid target size %dx%d", width, height)
	}
	w, h := uint32(width), uint32(height)
	if r.targetTex != nil && r.width == w && r.height == h {
		return nil
	}
	r.destroyTarget()

	tex, err := r.device.CreateTexture(&hal.TextureDescriptor{
		Label:         "vg_target",
		Size:          hal.Extent3D{Width: w, Height: h, DepthOrArrayLayers: 1},
		MipLevelCount: 1,
		SampleCount:   1,
		Dimension:     gputypes.TextureDimension2D,
		Format:        gputypes.TextureFormatBGRA8Unorm,
		Usage:         gputypes.TextureUsageRenderAttachment | gputypes.TextureUsageCopySrc,
	})
	if err != nil {
		return fmt.Errorf("create target texture: %w", err)
	}
	view, err := r.device.CreateTextureView(tex, &hal.TextureViewDescriptor{
		Label:         "vg_target_view",
		Format:        gputypes.TextureFormatBGRA8Unorm,
		Dimension:     gputypes.TextureViewDimension2D,
		Aspect:        gputypes.TextureAspectAll,
		MipLevelCount: 1,
	})
	if err != nil {
		r.device.DestroyTexture(tex)
		return fmt.Errorf("create target view: %w", err)
	}
	r.targetTex = tex
	r.targetView = view
	r.width = w
	r.height = h
	return nil
}

// SetSurface points the renderer at a caller-owned texture view, such
// as a swapchain image. The renderer does not take ownership; ReadPixels
// is unavailable in this mode.
func (r *Renderer) SetSurface(view hal.TextureView, width, height uint32) {
	r.destroyTarget()
	r.targetView = view
	r.width = width
	r.height = height
}

// SetClearColor sets the color the target is cleared to each frame.
func (r *Renderer) SetClearColor(c vg.RGBA) {
	r.clearColor = c
}

// callResources holds the per-draw-call GPU objects for one frame.
type callResources struct {
	uniformBuf hal.Buffer
	bindGroup  hal.BindGroup
}

// Render uploads the frame buffers and replays the draw calls in
// order, then submits and waits for completion. It implements
// vg.Renderer.
//
// An empty frame still clears the target.
func (r *Renderer) Render(vertices []vg.Vertex, indices []uint32, calls []vg.DrawCall) error {
	if r.targetView == nil {
		return ErrNoTarget
	}

	vg.Logger().Debug("rendering frame",
		"vertices", len(vertices),
		"indices", len(indices),
		"calls", len(calls),
		"target", fmt.Sprintf("%dx%d", r.width, r.height))

	var vertBuf, idxBuf hal.Buffer
	var perCall []callResources
	defer func() {
		for i := len(perCall) - 1; i >= 0; i-- {
			if perCall[i].bindGroup != nil {
				r.device.DestroyBindGroup(perCall[i].bindGroup)
			}
			if perCall[i].uniformBuf != nil {
				r.device.DestroyBuffer(perCall[i].uniformBuf)
			}
		}
		if idxBuf != nil {
			r.device.DestroyBuffer(idxBuf)
		}
		if vertBuf != nil {
			r.device.DestroyBuffer(vertBuf)
		}
	}()

	if len(calls) > 0 {
		var err error
		vertBuf, err = r.createAndUploadBuffer("vg_frame_verts",
			packVertices(vertices), gputypes.BufferUsageVertex|gputypes.BufferUsageCopyDst)
		if err != nil {
			return err
		}
		idxBuf, err = r.createAndUploadBuffer("vg_frame_indices",
			packIndices(indices), gputypes.BufferUsageIndex|gputypes.BufferUsageCopyDst)
		if err != nil {
			return err
		}

		perCall = make([]callResources, 0, len(calls))
		for i := range calls {
			res, err := r.buildCallResources(&calls[i])
			if err != nil {
				return err
			}
			perCall = append(perCall, res)
		}
	}

	encoder, err := r.device.CreateCommandEncoder(&hal.CommandEncoderDescriptor{
		Label: "vg_frame_encoder",
	})
	if err != nil {
		return fmt.Errorf("create command encoder: %w", err)
	}
	if err := encoder.BeginEncoding("vg_frame"); err != nil {
		return fmt.Errorf("begin encoding: %w", err)
	}

	rp := encoder.BeginRenderPass(&hal.RenderPassDescriptor{
		Label: "vg_frame_pass",
		ColorAttachments: []hal.RenderPassColorAttachment{{
			View:    r.targetView,
			LoadOp:  gputypes.LoadOpClear,
			StoreOp: gputypes.StoreOpStore,
			ClearValue: gputypes.Color{
				R: r.clearColor.R * r.clearColor.A,
				G: r.clearColor.G * r.clearColor.A,
				B: r.clearColor.B * r.clearColor.A,
				A: r.clearColor.A,
			},
		}},
	})

	if len(perCall) > 0 {
		rp.SetPipeline(r.pipeline)
		rp.SetVertexBuffer(0, vertBuf, 0)
		rp.SetIndexBuffer(idxBuf, gputypes.IndexFormatUint32, 0)
		for i, call := range calls {
			rp.SetBindGroup(0, perCall[i].bindGroup, nil)
			//nolint:gosec // triangle counts and offsets are bounded by the frame buffers
			rp.DrawIndexed(uint32(call.TriangleCount*3), 1, uint32(call.IndexOffset), 0, 0)
		}
	}
	rp.End()

	cmdBuf, err := encoder.EndEncoding()
	if err != nil {
		return fmt.Errorf("end encoding: %w", err)
	}
	defer r.device.FreeCommandBuffer(cmdBuf)

	fence, err := r.device.CreateFence()
	if err != nil {
		return fmt.Errorf("create fence: %w", err)
	}
	defer r.device.DestroyFence(fence)

	if err := r.queue.Submit([]hal.CommandBuffer{cmdBuf}, fence, 1); err != nil {
		return fmt.Errorf("submit frame: %w", err)
	}
	ok, err := r.device.Wait(fence, 1, fenceTimeout)
	if err != nil || !ok {
		return fmt.Errorf("wait for frame: ok=%v err=%w", ok, err)
	}
	return nil
}

// buildCallResources creates the uniform buffer and bind group for one
// draw call.
func (r *Renderer) buildCallResources(call *vg.DrawCall) (callResources, error) {
	view := r.whiteView
	if call.Texture != vg.NoTexture {
		tex, ok := r.textures[call.Texture]
		if !ok {
			return callResources{}, fmt.Errorf("%w: handle %d", vg.ErrTextureNotFound, call.Texture)
		}
		view = tex.view
	}

	uniformBuf, err := r.createAndUploadBuffer("vg_call_uniform",
		packCallUniform(call, r.width, r.height, r.fringe),
		gputypes.BufferUsageUniform|gputypes.BufferUsageCopyDst)
	if err != nil {
		return callResources{}, err
	}

	bindGroup, err := r.device.CreateBindGroup(&hal.BindGroupDescriptor{
		Label:  "vg_call_bind",
		Layout: r.uniformLayout,
		Entries: []gputypes.BindGroupEntry{
			{Binding: 0, Resource: gputypes.BufferBinding{
				Buffer: uniformBuf.NativeHandle(), Offset: 0, Size: callUniformSize,
			}},
			{Binding: 1, Resource: gputypes.TextureViewBinding{
				TextureView: view.NativeHandle(),
			}},
			{Binding: 2, Resource: gputypes.SamplerBinding{
				Sampler: r.sampler.NativeHandle(),
			}},
		},
	})
	if err != nil {
		r.device.DestroyBuffer(uniformBuf)
		return callResources{}, fmt.Errorf("create call bind group: %w", err)
	}

	return callResources{uniformBuf: uniformBuf, bindGroup: bindGroup}, nil
}

// createAndUploadBuffer creates a GPU buffer and writes data into it.
func (r *Renderer) createAndUploadBuffer(label string, data []byte, usage gputypes.BufferUsage) (hal.Buffer, error) {
	buf, err := r.device.CreateBuffer(&hal.BufferDescriptor{
		Label: label,
		Size:  uint64(len(data)),
		Usage: usage,
	})
	if err != nil {
		return nil, fmt.Errorf("create %s: %w", label, err)
	}
	r.queue.WriteBuffer(buf, 0, data)
	return buf, nil
}

// ReadPixels copies the offscreen target into dst, converting from the
// GPU's BGRA byte order. dst must match the target size.
func (r *Renderer) ReadPixels(dst *image.RGBA) error {
	if r.targetTex == nil {
		return ErrNoOffscreenTarget
	}
	b := dst.Bounds()
	if uint32(b.Dx()) != r.width || uint32(b.Dy()) != r.height {
		return fmt.Errorf("wgpu: destination %dx%d does not match target %dx%d",
			b.Dx(), b.Dy(), r.width, r.height)
	}

	// Copy pitch must be 256-byte aligned for WebGPU and DX12.
	bytesPerRow := r.width * 4
	const copyPitchAlignment = 256
	alignedBytesPerRow := (bytesPerRow + copyPitchAlignment - 1) &^ (copyPitchAlignment - 1)
	stagingSize := uint64(alignedBytesPerRow) * uint64(r.height)

	stagingBuf, err := r.device.CreateBuffer(&hal.BufferDescriptor{
		Label: "vg_readback",
		Size:  stagingSize,
		Usage: gputypes.BufferUsageMapRead | gputypes.BufferUsageCopyDst,
	})
	if err != nil {
		return fmt.Errorf("create readback buffer: %w", err)
	}
	defer r.device.DestroyBuffer(stagingBuf)

	encoder, err := r.device.CreateCommandEncoder(&hal.CommandEncoderDescriptor{
		Label: "vg_readback_encoder",
	})
	if err != nil {
		return fmt.Errorf("create readback encoder: %w", err)
	}
	if err := encoder.BeginEncoding("vg_readback"); err != nil {
		return fmt.Errorf("begin readback encoding: %w", err)
	}

	encoder.TransitionTextures([]hal.TextureBarrier{{
		Texture: r.targetTex,
		Usage: hal.TextureUsageTransition{
			OldUsage: gputypes.TextureUsageRenderAttachment,
			NewUsage: gputypes.TextureUsageCopySrc,
		},
	}})
	encoder.CopyTextureToBuffer(r.targetTex, stagingBuf, []hal.BufferTextureCopy{{
		BufferLayout: hal.ImageDataLayout{Offset: 0, BytesPerRow: alignedBytesPerRow, RowsPerImage: r.height},
		TextureBase:  hal.ImageCopyTexture{Texture: r.targetTex, MipLevel: 0},
		Size:         hal.Extent3D{Width: r.width, Height: r.height, DepthOrArrayLayers: 1},
	}})
	encoder.TransitionTextures([]hal.TextureBarrier{{
		Texture: r.targetTex,
		Usage: hal.TextureUsageTransition{
			OldUsage: gputypes.TextureUsageCopySrc,
			NewUsage: gputypes.TextureUsageRenderAttachment,
		},
	}})

	cmdBuf, err := encoder.EndEncoding()
	if err != nil {
		return fmt.Errorf("end readback encoding: %w", err)
	}
	defer r.device.FreeCommandBuffer(cmdBuf)

	fence, err := r.device.CreateFence()
	if err != nil {
		return fmt.Errorf("create readback fence: %w", err)
	}
	defer r.device.DestroyFence(fence)

	if err := r.queue.Submit([]hal.CommandBuffer{cmdBuf}, fence, 1); err != nil {
		return fmt.Errorf("submit readback: %w", err)
	}
	ok, err := r.device.Wait(fence, 1, fenceTimeout)
	if err != nil || !ok {
		return fmt.Errorf("wait for readback: ok=%v err=%w", ok, err)
	}

	readback := make([]byte, stagingSize)
	if err := r.queue.ReadBuffer(stagingBuf, 0, readback); err != nil {
		return fmt.Errorf("read readback buffer: %w", err)
	}

	for row := uint32(0); row < r.height; row++ {
		src := readback[row*alignedBytesPerRow:]
		dstRow := dst.Pix[int(row)*dst.Stride:]
		for x := uint32(0); x < r.width; x++ {
			// BGRA -> RGBA
			dstRow[x*4+0] = src[x*4+2]
			dstRow[x*4+1] = src[x*4+1]
			dstRow[x*4+2] = src[x*4+0]
			dstRow[x*4+3] = src[x*4+3]
		}
	}
	return nil
}

// ReadTarget copies the offscreen frame into a CPU-accessible render
// target, such as a render.PixmapTarget. The target must expose pixels
// and match the renderer's size.
func (r *Renderer) ReadTarget(target render.RenderTarget) error {
	pix := target.Pixels()
	if pix == nil {
		return fmt.Errorf("wgpu: target %dx%d has no CPU pixel access",
			target.Width(), target.Height())
	}
	img := &image.RGBA{
		Pix:    pix,
		Stride: target.Stride(),
		Rect:   image.Rect(0, 0, target.Width(), target.Height()),
	}
	return r.ReadPixels(img)
}

// destroyTarget releases the offscreen target, if any.
func (r *Renderer) destroyTarget() {
	if r.targetTex != nil {
		if r.targetView != nil {
			r.device.DestroyTextureView(r.targetView)
		}
		r.device.DestroyTexture(r.targetTex)
		r.targetTex = nil
	}
	r.targetView = nil
	r.width = 0
	r.height = 0
}

// Destroy releases all GPU resources held by the renderer. Safe to
// call multiple times.
func (r *Renderer) Destroy() {
	if r.device == nil {
		return
	}
	for h, tex := range r.textures {
		r.device.DestroyTextureView(tex.view)
		r.device.DestroyTexture(tex.tex)
		delete(r.textures, h)
	}
	if r.whiteView != nil {
		r.device.DestroyTextureView(r.whiteView)
		r.whiteView = nil
	}
	if r.whiteTex != nil {
		r.device.DestroyTexture(r.whiteTex)
		r.whiteTex = nil
	}
	r.destroyTarget()
	if r.pipeline != nil {
		r.device.DestroyRenderPipeline(r.pipeline)
		r.pipeline = nil
	}
	if r.sampler != nil {
		r.device.DestroySampler(r.sampler)
		r.sampler = nil
	}
	if r.pipeLayout != nil {
		r.device.DestroyPipelineLayout(r.pipeLayout)
		r.pipeLayout = nil
	}
	if r.uniformLayout != nil {
		r.device.DestroyBindGroupLayout(r.uniformLayout)
		r.uniformLayout = nil
	}
	if r.shader != nil {
		r.device.DestroyShaderModule(r.shader)
		r.shader = nil
	}
}
