package vg

import (
	"math"

	"github.com/gogpu/vg/internal/curve"
)

// SubPath is one contiguous polyline within the current path: an
// ordered point sequence plus a closed flag. Sub-paths with fewer than
// 2 points cannot be stroked and fewer than 3 cannot be filled; the
// mesh generators skip them silently.
type SubPath struct {
	Points []Point
	Closed bool
}

// distTol is the squared distance under which two path points are
// considered the same.
const distTol = 0.01

// BeginPath clears all sub-paths and starts a new shape. Every shape
// must begin with it, explicitly or through a shape helper.
func (c *Canvas) BeginPath() {
	c.path = c.path[:0]
	c.hasLast = false
}

// MoveTo starts a new sub-path at (x, y), which becomes the current
// point.
func (c *Canvas) MoveTo(x, y float64) {
	p := Point{X: x, Y: y}
	c.path = append(c.path, SubPath{Points: append(make([]Point, 0, 8), p)})
	c.last = p
	c.hasLast = true
}

// LineTo appends a straight segment from the current point to (x, y).
// With no current point it degrades to MoveTo, matching common 2D
// canvas semantics: a bare LineTo produces a single-point sub-path and
// no visible segment.
func (c *Canvas) LineTo(x, y float64) {
	if !c.hasLast || len(c.path) == 0 {
		c.MoveTo(x, y)
		return
	}
	c.appendPoint(Point{X: x, Y: y})
}

// ClosePath closes the current sub-path: if it has at least 2 points,
// its first point is appended again (a straight segment back to the
// start) and the sub-path is marked closed. It does not start a new
// sub-path.
func (c *Canvas) ClosePath() {
	if len(c.path) == 0 {
		return
	}
	sp := &c.path[len(c.path)-1]
	if len(sp.Points) < 2 {
		return
	}
	first := sp.Points[0]
	sp.Points = append(sp.Points, first)
	sp.Closed = true
	c.last = first
}

// QuadraticCurveTo appends a quadratic Bézier curve with control point
// (cx, cy) ending at (x, y). The curve is promoted to its cubic
// equivalent and flattened adaptively.
func (c *Canvas) QuadraticCurveTo(cx, cy, x, y float64) {
	if !c.hasLast || len(c.path) == 0 {
		c.MoveTo(x, y)
		return
	}
	p0 := curve.Point(c.last)
	c1, c2 := curve.QuadToCubic(p0, curve.Point{X: cx, Y: cy}, curve.Point{X: x, Y: y})
	c.flattenCubic(p0, c1, c2, curve.Point{X: x, Y: y})
}

// BezierCurveTo appends a cubic Bézier curve with control points
// (c1x, c1y) and (c2x, c2y) ending at (x, y), flattened adaptively.
func (c *Canvas) BezierCurveTo(c1x, c1y, c2x, c2y, x, y float64) {
	if !c.hasLast || len(c.path) == 0 {
		c.MoveTo(x, y)
		return
	}
	c.flattenCubic(
		curve.Point(c.last),
		curve.Point{X: c1x, Y: c1y},
		curve.Point{X: c2x, Y: c2y},
		curve.Point{X: x, Y: y},
	)
}

func (c *Canvas) flattenCubic(p0, c1, c2, p1 curve.Point) {
	c.flattenBuf = curve.FlattenCubic(p0, c1, c2, p1, c.flattenBuf[:0])
	for _, p := range c.flattenBuf {
		c.appendPoint(Point(p))
	}
}

// Arc appends a circular arc around (cx, cy) with radius r from
// startAngle to endAngle (radians). ccw selects the sweep direction.
// If a sub-path is open the arc start is connected with a straight
// segment; otherwise an implicit MoveTo starts one at the arc start.
func (c *Canvas) Arc(cx, cy, r, startAngle, endAngle float64, ccw bool) {
	c.flattenBuf = curve.Arc(cx, cy, r, startAngle, endAngle, ccw, c.flattenBuf[:0])
	for i, p := range c.flattenBuf {
		if i == 0 && (!c.hasLast || len(c.path) == 0) {
			c.MoveTo(p.X, p.Y)
			continue
		}
		c.appendPoint(Point(p))
	}
}

// ArcTo appends an arc of radius r tangent to the two segments meeting
// at (x1, y1), approaching from the current point and leaving toward
// (x2, y2). Degenerate configurations (zero radius, coincident points,
// near-parallel directions) fall back to a straight LineTo(x1, y1).
func (c *Canvas) ArcTo(x1, y1, x2, y2, r float64) {
	if !c.hasLast || len(c.path) == 0 {
		return
	}
	p0 := c.last
	p1 := Point{X: x1, Y: y1}
	p2 := Point{X: x2, Y: y2}

	if ptEquals(p0, p1) || ptEquals(p1, p2) || r < 1e-4 {
		c.LineTo(x1, y1)
		return
	}

	d0 := p0.Sub(p1).Normalize()
	d1 := p2.Sub(p1).Normalize()
	a := math.Acos(clampDot(d0.Dot(d1)))
	d := r / math.Tan(a*0.5)

	if math.IsNaN(d) || d > 1e4 {
		// Near-parallel: tangent points run off to infinity.
		c.LineTo(x1, y1)
		return
	}

	var cx, cy, a0, a1 float64
	var ccw bool
	// d0 points back toward the current point, so the forward turn
	// direction is the negated cross product.
	if d0.Cross(d1) < 0 {
		cx = x1 + d0.X*d + d0.Y*r
		cy = y1 + d0.Y*d - d0.X*r
		a0 = math.Atan2(d0.X, -d0.Y)
		a1 = math.Atan2(-d1.X, d1.Y)
		ccw = false
	} else {
		cx = x1 + d0.X*d - d0.Y*r
		cy = y1 + d0.Y*d + d0.X*r
		a0 = math.Atan2(-d0.X, d0.Y)
		a1 = math.Atan2(d1.X, -d1.Y)
		ccw = true
	}

	c.LineTo(cx+math.Cos(a0)*r, cy+math.Sin(a0)*r)
	c.Arc(cx, cy, r, a0, a1, ccw)
}

// appendPoint extends the current sub-path, collapsing points that
// coincide with the current point.
func (c *Canvas) appendPoint(p Point) {
	sp := &c.path[len(c.path)-1]
	if n := len(sp.Points); n > 0 && ptEquals(sp.Points[n-1], p) {
		return
	}
	sp.Points = append(sp.Points, p)
	c.last = p
	c.hasLast = true
}

func ptEquals(a, b Point) bool {
	dx := b.X - a.X
	dy := b.Y - a.Y
	return dx*dx+dy*dy < distTol*distTol
}

func clampDot(d float64) float64 {
	if d < -1 {
		return -1
	}
	if d > 1 {
		return 1
	}
	return d
}
