package vg

import (
	"fmt"

	"github.com/gogpu/vg/internal/curve"
	"github.com/gogpu/vg/internal/mesh"
)

// Canvas is the drawing surface. An application mutates the canvas
// state, builds a path, and calls Stroke or Fill; the canvas converts
// the path into anti-aliased triangles appended to shared vertex and
// index buffers, grouped into state-keyed draw calls. An external
// renderer consumes the finished buffers once per frame.
//
// Canvas is not safe for concurrent use: a single goroutine drives the
// whole frame, and Clear resets the buffers wholesale at frame start.
type Canvas struct {
	state State
	stack []State

	// Current path.
	path       []SubPath
	last       Point
	hasLast    bool
	flattenBuf []curve.Point

	// Frame buffers.
	vertices  []Vertex
	indices   []uint32
	drawCalls []DrawCall

	devicePixelRatio float64
	fringe           float64 // one device pixel, in canvas units
	edgeAA           bool

	tess Tessellator

	// Mesh scratch, reused every call.
	arena   mesh.Arena
	meshBuf mesh.Mesh
	ptsBuf  []mesh.Point
}

// NewCanvas creates an empty canvas with default state.
//
//	c, err := vg.NewCanvas(vg.WithDevicePixelRatio(2))
//
// Returns ErrInvalidDevicePixelRatio if the configured ratio is not
// positive: a corrupt ratio would silently break all anti-aliasing
// math, so it is the one validated precondition.
func NewCanvas(opts ...CanvasOption) (*Canvas, error) {
	options := defaultCanvasOptions()
	for _, opt := range opts {
		opt(&options)
	}
	if options.devicePixelRatio <= 0 {
		return nil, fmt.Errorf("%w: %v", ErrInvalidDevicePixelRatio, options.devicePixelRatio)
	}

	c := &Canvas{
		state:  defaultState(),
		stack:  make([]State, 0, 8),
		edgeAA: options.edgeAA,
		tess:   options.tess,
	}
	c.setDevicePixelRatio(options.devicePixelRatio)
	return c, nil
}

// SetDevicePixelRatio updates the device pixel ratio used for
// anti-aliasing fringe math. Returns ErrInvalidDevicePixelRatio for
// non-positive values.
func (c *Canvas) SetDevicePixelRatio(ratio float64) error {
	if ratio <= 0 {
		return fmt.Errorf("%w: %v", ErrInvalidDevicePixelRatio, ratio)
	}
	c.setDevicePixelRatio(ratio)
	return nil
}

func (c *Canvas) setDevicePixelRatio(ratio float64) {
	c.devicePixelRatio = ratio
	c.fringe = 1.0 / ratio
}

// DevicePixelRatio returns the active device pixel ratio.
func (c *Canvas) DevicePixelRatio() float64 {
	return c.devicePixelRatio
}

// Clear resets the canvas for a new frame: vertex, index, and
// draw-call buffers are emptied, the current path is dropped, and the
// state stack collapses back to defaults. Buffer capacity is kept.
func (c *Canvas) Clear() {
	c.vertices = c.vertices[:0]
	c.indices = c.indices[:0]
	c.drawCalls = c.drawCalls[:0]
	c.path = c.path[:0]
	c.hasLast = false
	c.stack = c.stack[:0]
	c.state = defaultState()
}

// Stroke converts the current path into a stroke triangle mesh using
// the active stroke style and appends it to the frame buffers.
// Degenerate input (sub-paths with fewer than 2 distinct points,
// non-positive width, fully transparent color) is silently skipped.
func (c *Canvas) Stroke() {
	style := c.state.Stroke
	width := style.Width * style.Scale
	if width <= 0 {
		Logger().Warn("stroke skipped: non-positive width", "width", style.Width, "scale", style.Scale)
		return
	}
	if style.Color.IsTransparent() {
		return
	}

	color := style.Color
	onePx := c.fringe
	if width < onePx {
		// Sub-pixel strokes render at one device pixel with alpha
		// scaled down, avoiding thin-line moiré.
		color = color.MulAlpha(width / onePx)
		width = onePx
	}

	fringe := 0.0
	if c.edgeAA {
		fringe = c.fringe
	}

	opts := mesh.Options{
		Thickness:  width,
		Fringe:     fringe,
		Join:       mesh.LineJoin(style.Join),
		CapStart:   mesh.LineCap(style.StartCap),
		CapEnd:     mesh.LineCap(style.EndCap),
		MiterLimit: style.MiterLimit,
	}

	packed := color.Premul()
	for i := range c.path {
		sp := &c.path[i]
		if len(sp.Points) < 2 {
			Logger().Warn("stroke skipped: sub-path has fewer than 2 points", "points", len(sp.Points))
			continue
		}
		opts.Closed = sp.Closed
		c.transformPoints(sp.Points)
		c.meshBuf.Reset()
		c.arena.Stroke(c.ptsBuf, opts, &c.meshBuf)
		c.appendMesh(&c.meshBuf, packed)
	}
}

// transformPoints maps a sub-path through the current transform into
// the reusable mesh point buffer.
func (c *Canvas) transformPoints(pts []Point) {
	c.ptsBuf = c.ptsBuf[:0]
	m := c.state.Transform
	for _, p := range pts {
		q := m.TransformPoint(p)
		c.ptsBuf = append(c.ptsBuf, mesh.Point{X: q.X, Y: q.Y})
	}
}

// appendMesh rebases a local mesh into the shared frame buffers,
// stamping every vertex with the given premultiplied color. Triangles
// go through the draw-call batcher one at a time.
func (c *Canvas) appendMesh(m *mesh.Mesh, color [4]uint8) {
	base := uint32(len(c.vertices))
	for _, v := range m.Verts {
		c.vertices = append(c.vertices, Vertex{
			Pos:   [2]float32{v.X, v.Y},
			UV:    [2]float32{v.U, v.V},
			Color: color,
		})
	}
	for i := 0; i+2 < len(m.Idx); i += 3 {
		c.AddTriangle(base+m.Idx[i], base+m.Idx[i+1], base+m.Idx[i+2])
	}
}
