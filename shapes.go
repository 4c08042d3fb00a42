package vg

import "math"

// kappa is the control point distance for approximating a quarter
// circle with a cubic Bézier.
const kappa = 0.5522847498

// Rect appends a rectangle sub-path.
func (c *Canvas) Rect(x, y, w, h float64) {
	c.MoveTo(x, y)
	c.LineTo(x+w, y)
	c.LineTo(x+w, y+h)
	c.LineTo(x, y+h)
	c.ClosePath()
}

// RoundedRect appends a rectangle sub-path with circular corners of
// radius r. The radius is clamped to half the shorter side; r <= 0
// degrades to Rect.
func (c *Canvas) RoundedRect(x, y, w, h, r float64) {
	if r <= 0 {
		c.Rect(x, y, w, h)
		return
	}
	r = math.Min(r, math.Min(math.Abs(w), math.Abs(h))*0.5)
	k := kappa * r

	c.MoveTo(x+r, y)
	c.LineTo(x+w-r, y)
	c.BezierCurveTo(x+w-r+k, y, x+w, y+r-k, x+w, y+r)
	c.LineTo(x+w, y+h-r)
	c.BezierCurveTo(x+w, y+h-r+k, x+w-r+k, y+h, x+w-r, y+h)
	c.LineTo(x+r, y+h)
	c.BezierCurveTo(x+r-k, y+h, x, y+h-r+k, x, y+h-r)
	c.LineTo(x, y+r)
	c.BezierCurveTo(x, y+r-k, x+r-k, y, x+r, y)
	c.ClosePath()
}

// Ellipse appends an ellipse sub-path centered at (cx, cy) with the
// given radii, built from four Bézier quadrants. The sub-path ends on
// its start point but stays open: only ClosePath marks a sub-path
// closed, so a stroked ellipse gets caps rather than a join at the
// seam. Call ClosePath after Ellipse for a seamless stroked ring.
func (c *Canvas) Ellipse(cx, cy, rx, ry float64) {
	kx := kappa * rx
	ky := kappa * ry

	c.MoveTo(cx+rx, cy)
	c.BezierCurveTo(cx+rx, cy+ky, cx+kx, cy+ry, cx, cy+ry)
	c.BezierCurveTo(cx-kx, cy+ry, cx-rx, cy+ky, cx-rx, cy)
	c.BezierCurveTo(cx-rx, cy-ky, cx-kx, cy-ry, cx, cy-ry)
	c.BezierCurveTo(cx+kx, cy-ry, cx+rx, cy-ky, cx+rx, cy)
}

// Circle appends a circle sub-path. Like Ellipse it is left open with
// coincident endpoints.
func (c *Canvas) Circle(cx, cy, r float64) {
	c.Ellipse(cx, cy, r, r)
}

// Polygon appends a regular polygon with n sides inscribed in a circle
// of the given radius. Fewer than 3 sides is a no-op.
func (c *Canvas) Polygon(cx, cy, radius float64, n int) {
	if n < 3 {
		return
	}
	step := 2 * math.Pi / float64(n)
	for i := 0; i < n; i++ {
		a := -math.Pi/2 + step*float64(i)
		x := cx + radius*math.Cos(a)
		y := cy + radius*math.Sin(a)
		if i == 0 {
			c.MoveTo(x, y)
		} else {
			c.LineTo(x, y)
		}
	}
	c.ClosePath()
}
