package vg

import "math"

// BrushKind selects the gradient evaluated by the shading stage.
type BrushKind int

const (
	// BrushNone means no gradient: draw calls shade from vertex color only.
	BrushNone BrushKind = iota
	// BrushLinear is a two-point linear gradient.
	BrushLinear
	// BrushRadial is a two-radius radial gradient.
	BrushRadial
	// BrushBox is a rounded-box gradient with a feathered border.
	BrushBox
)

// Brush is a pure-data gradient descriptor. The core never evaluates it;
// it rides along on draw calls and is consumed by the external renderer's
// shading stage. Brush is comparable, which is what the draw-call batcher
// relies on to detect state changes.
//
// The fields follow the NanoVG paint parameterization: Transform maps the
// gradient's local space into the space the brush was created in (the
// canvas composes the current state transform on top when the brush is
// installed), Extent holds the gradient half-extents, and Radius/Feather
// shape the falloff.
type Brush struct {
	// Kind selects the gradient; BrushNone disables shading.
	Kind BrushKind

	// Transform is the owning transform: gradient local space to
	// canvas space at creation time.
	Transform Matrix

	// Extent is the gradient half-extent vector.
	Extent Point

	// Radius is the gradient radius (radial mid radius or box
	// corner radius).
	Radius float64

	// Feather is the falloff width.
	Feather float64

	// InnerColor and OuterColor are the two gradient stops. They are
	// stored straight; consumers premultiply when uploading.
	InnerColor RGBA
	OuterColor RGBA
}

// LinearGradient creates a linear gradient brush running from (sx, sy)
// to (ex, ey). Degenerate (zero-length) axes fall back to a vertical
// unit axis.
func LinearGradient(sx, sy, ex, ey float64, inner, outer RGBA) Brush {
	// The gradient axis is encoded as a rotation whose y basis points
	// along the axis, pushed back by a large constant so the shader can
	// treat the start line as y=large.
	const large = 1e5

	dx := ex - sx
	dy := ey - sy
	d := math.Hypot(dx, dy)
	if d > 1e-4 {
		dx /= d
		dy /= d
	} else {
		dx = 0
		dy = 1
	}

	return Brush{
		Kind: BrushLinear,
		Transform: Matrix{
			A: dy, B: dx, C: sx - dx*large,
			D: -dx, E: dy, F: sy - dy*large,
		},
		Extent:     Point{X: large, Y: large + d*0.5},
		Radius:     0,
		Feather:    math.Max(1.0, d),
		InnerColor: inner,
		OuterColor: outer,
	}
}

// RadialGradient creates a radial gradient brush centered at (cx, cy)
// with the given inner and outer radii.
func RadialGradient(cx, cy, inr, outr float64, inner, outer RGBA) Brush {
	r := (inr + outr) * 0.5
	f := outr - inr

	return Brush{
		Kind:       BrushRadial,
		Transform:  Translation(cx, cy),
		Extent:     Point{X: r, Y: r},
		Radius:     r,
		Feather:    math.Max(1.0, f),
		InnerColor: inner,
		OuterColor: outer,
	}
}

// BoxGradient creates a box gradient brush: a feathered rounded
// rectangle, useful for drop shadows. (x, y, w, h) is the rectangle,
// r the corner radius and f the feather width.
func BoxGradient(x, y, w, h, r, f float64, inner, outer RGBA) Brush {
	return Brush{
		Kind:       BrushBox,
		Transform:  Translation(x+w*0.5, y+h*0.5),
		Extent:     Point{X: w * 0.5, Y: h * 0.5},
		Radius:     r,
		Feather:    math.Max(1.0, f),
		InnerColor: inner,
		OuterColor: outer,
	}
}
