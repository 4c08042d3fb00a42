package vg

import "math"

// Scissor is an inverse-transformable scissor rectangle: a center
// transform plus half-extents in the transform's local space.
// A negative extent disables scissoring.
type Scissor struct {
	Transform Matrix
	Extent    Point
}

// noScissor returns the disabled scissor value.
func noScissor() Scissor {
	return Scissor{Transform: Identity(), Extent: Point{X: -1, Y: -1}}
}

// Enabled reports whether the scissor clips anything.
func (s Scissor) Enabled() bool {
	return s.Extent.X >= 0
}

// State is the full, copyable canvas state snapshot. SaveState pushes a
// copy onto an index-addressed stack; RestoreState pops it back. No part
// of State lives behind a pointer, so copies are independent.
type State struct {
	Transform Matrix
	Stroke    StrokeStyle
	FillColor RGBA
	FillRule  FillRule
	Texture   TextureHandle
	Scissor   Scissor
	Brush     Brush
}

// defaultState returns the state installed by ResetState: identity
// transform, 1px black stroke with bevel joints and butt caps, black
// fill, non-zero winding, no scissor, no brush, no texture.
func defaultState() State {
	return State{
		Transform: Identity(),
		Stroke:    DefaultStrokeStyle(),
		FillColor: Black,
		FillRule:  FillRuleNonZero,
		Texture:   NoTexture,
		Scissor:   noScissor(),
		Brush:     Brush{},
	}
}

// SaveState pushes a copy of the current state onto the state stack.
func (c *Canvas) SaveState() {
	c.stack = append(c.stack, c.state)
}

// RestoreState pops the most recently saved state. Restoring with an
// empty stack is a no-op.
func (c *Canvas) RestoreState() {
	if n := len(c.stack); n > 0 {
		c.state = c.stack[n-1]
		c.stack = c.stack[:n-1]
	}
}

// ResetState reinstalls the default state without touching the stack.
func (c *Canvas) ResetState() {
	c.state = defaultState()
}

// CurrentTransform returns the active world transform.
func (c *Canvas) CurrentTransform() Matrix {
	return c.state.Transform
}

// TransformBy premultiplies the current transform by m: the new
// transform applies to points before the existing one, so nested
// TransformBy calls compose in call order, outer to inner.
func (c *Canvas) TransformBy(m Matrix) {
	c.state.Transform = c.state.Transform.Multiply(m)
}

// Translate moves the coordinate system.
func (c *Canvas) Translate(x, y float64) {
	c.TransformBy(Translation(x, y))
}

// Rotate rotates the coordinate system by angle radians.
func (c *Canvas) Rotate(angle float64) {
	c.TransformBy(Rotation(angle))
}

// Scale scales the coordinate system.
func (c *Canvas) Scale(x, y float64) {
	c.TransformBy(Scaling(x, y))
}

// Skew skews the coordinate system along the x axis by ax radians and
// the y axis by ay radians.
func (c *Canvas) Skew(ax, ay float64) {
	c.TransformBy(SkewX(ax))
	c.TransformBy(SkewY(ay))
}

// ResetTransform restores the identity transform.
func (c *Canvas) ResetTransform() {
	c.state.Transform = Identity()
}

// SetStrokeStyle replaces the whole stroke style.
func (c *Canvas) SetStrokeStyle(s StrokeStyle) {
	c.state.Stroke = s
}

// SetStrokeColor sets the stroke color.
func (c *Canvas) SetStrokeColor(col RGBA) {
	c.state.Stroke.Color = col
}

// SetStrokeWidth sets the stroke thickness in local units.
func (c *Canvas) SetStrokeWidth(w float64) {
	c.state.Stroke.Width = w
}

// SetStrokeScale sets the width multiplier applied at mesh time.
func (c *Canvas) SetStrokeScale(s float64) {
	c.state.Stroke.Scale = s
}

// SetLineJoin sets the joint style.
func (c *Canvas) SetLineJoin(j LineJoin) {
	c.state.Stroke.Join = j
}

// SetLineCap sets both the start and end cap.
func (c *Canvas) SetLineCap(cap LineCap) {
	c.state.Stroke.StartCap = cap
	c.state.Stroke.EndCap = cap
}

// SetStartCap sets the cap terminating the start of open strokes.
func (c *Canvas) SetStartCap(cap LineCap) {
	c.state.Stroke.StartCap = cap
}

// SetEndCap sets the cap terminating the end of open strokes.
func (c *Canvas) SetEndCap(cap LineCap) {
	c.state.Stroke.EndCap = cap
}

// SetMiterLimit sets the miter limit in half-width units.
func (c *Canvas) SetMiterLimit(limit float64) {
	c.state.Stroke.MiterLimit = limit
}

// SetFillColor sets the fill color.
func (c *Canvas) SetFillColor(col RGBA) {
	c.state.FillColor = col
}

// SetFillRule sets the winding rule used by complex fills.
func (c *Canvas) SetFillRule(rule FillRule) {
	c.state.FillRule = rule
}

// SetBrush installs a gradient brush. The brush's transform is composed
// with the current state transform so the gradient follows the
// coordinate system it was created in.
func (c *Canvas) SetBrush(b Brush) {
	b.Transform = c.state.Transform.Multiply(b.Transform)
	c.state.Brush = b
}

// ClearBrush removes the gradient brush; shading falls back to vertex
// colors.
func (c *Canvas) ClearBrush() {
	c.state.Brush = Brush{}
}

// SetScissor sets the scissor rectangle to (x, y, w, h) in the current
// local space, replacing any previous scissor. Negative sizes clamp
// to zero.
func (c *Canvas) SetScissor(x, y, w, h float64) {
	w = math.Max(0, w)
	h = math.Max(0, h)
	c.state.Scissor = Scissor{
		Transform: c.state.Transform.Multiply(Translation(x+w*0.5, y+h*0.5)),
		Extent:    Point{X: w * 0.5, Y: h * 0.5},
	}
}

// IntersectScissor intersects the current scissor with (x, y, w, h) in
// the current local space. The previous scissor is re-expressed in the
// new space as an axis-aligned bound before intersecting, so rotated
// scissors intersect conservatively.
func (c *Canvas) IntersectScissor(x, y, w, h float64) {
	if !c.state.Scissor.Enabled() {
		c.SetScissor(x, y, w, h)
		return
	}

	prev := c.state.Scissor
	local := c.state.Transform.Invert().Multiply(prev.Transform)
	ex := prev.Extent.X*math.Abs(local.A) + prev.Extent.Y*math.Abs(local.B)
	ey := prev.Extent.X*math.Abs(local.D) + prev.Extent.Y*math.Abs(local.E)

	ix, iy, iw, ih := intersectRects(local.C-ex, local.F-ey, ex*2, ey*2, x, y, w, h)
	c.SetScissor(ix, iy, iw, ih)
}

// ResetScissor disables scissoring.
func (c *Canvas) ResetScissor() {
	c.state.Scissor = noScissor()
}

// intersectRects returns the axis-aligned intersection of two
// rectangles. An empty intersection collapses to a zero-size rectangle.
func intersectRects(ax, ay, aw, ah, bx, by, bw, bh float64) (x, y, w, h float64) {
	minx := math.Max(ax, bx)
	miny := math.Max(ay, by)
	maxx := math.Min(ax+aw, bx+bw)
	maxy := math.Min(ay+ah, by+bh)
	return minx, miny, math.Max(0, maxx-minx), math.Max(0, maxy-miny)
}
