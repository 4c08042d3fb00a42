package vg

import (
	"fmt"
	"math"

	"github.com/gogpu/vg/internal/mesh"
)

// Orientation is the winding direction of a contour in canvas space
// (y grows downward, so clockwise contours have positive signed area).
type Orientation int

const (
	Clockwise Orientation = iota
	CounterClockwise
)

// Contour is one closed outline handed to a Tessellator: device-space
// points plus the winding the path had before tessellation, which
// even-odd and non-zero rules need to resolve holes.
type Contour struct {
	Points      []Point
	Orientation Orientation
}

// Tessellator triangulates arbitrary (concave, self-intersecting,
// multi-contour) fills. Implementations return a triangle list over
// their own vertex slice; the canvas rebases indices into the frame
// buffers. The core ships no tessellator of its own: plug one in with
// WithTessellator.
type Tessellator interface {
	Tessellate(contours []Contour, rule FillRule) (vertices []Point, indices []uint32, err error)
}

// FillConvex fills the first sub-path of the current path as a
// triangle fan around its centroid. The path must be convex or
// star-shaped with respect to the centroid; no hole or multi-contour
// support. Invalid input is skipped silently, matching Stroke.
func (c *Canvas) FillConvex() {
	if len(c.path) == 0 || c.state.FillColor.IsTransparent() {
		return
	}
	sp := &c.path[0]
	pts := sp.Points
	// Closed sub-paths and open rings (Circle, Ellipse) repeat their
	// first point; the fan closes itself.
	if len(pts) > 1 && ptEquals(pts[0], pts[len(pts)-1]) {
		pts = pts[:len(pts)-1]
	}
	if len(pts) < 3 {
		Logger().Warn("fill skipped: sub-path has fewer than 3 points", "points", len(pts))
		return
	}

	c.transformPoints(pts)
	c.fanFill(c.ptsBuf, c.state.FillColor.Premul())
}

// fanFill emits a centroid fan over one device-space contour. Edge
// vertices carry coverage U=0 and are pushed half a fringe outward so
// the anti-aliased ramp straddles the true outline; the centroid sits
// at full coverage. Winding is detected from the first triangle and
// applied uniformly.
func (c *Canvas) fanFill(pts []mesh.Point, color [4]uint8) {
	n := len(pts)
	var cx, cy float64
	for _, p := range pts {
		cx += p.X
		cy += p.Y
	}
	cx /= float64(n)
	cy /= float64(n)

	eps := c.fringe * 0.5
	if !c.edgeAA {
		eps = 0
	}

	base := c.AddVertex(vert(cx, cy, 0.5, 0.5, color))
	for _, p := range pts {
		dx, dy := p.X-cx, p.Y-cy
		if l := dx*dx + dy*dy; l > 1e-12 && eps > 0 {
			inv := eps / math.Sqrt(l)
			dx, dy = p.X+dx*inv, p.Y+dy*inv
		} else {
			dx, dy = p.X, p.Y
		}
		c.AddVertex(vert(dx, dy, 0, 0.5, color))
	}

	// Winding of (centroid, p0, p1) decides the fan direction so every
	// triangle lands front-facing.
	cross := (pts[0].X-cx)*(pts[1].Y-cy) - (pts[0].Y-cy)*(pts[1].X-cx)
	for i := 0; i < n; i++ {
		j := (i + 1) % n
		a, b := base+1+uint32(i), base+1+uint32(j)
		if cross < 0 {
			a, b = b, a
		}
		c.AddTriangle(base, a, b)
	}
}

// Fill triangulates the current path with the configured Tessellator
// and appends the result to the frame buffers, then re-strokes every
// contour with a one-device-pixel fringe stroke to anti-alias the
// boundary. Returns ErrNoTessellator when none is configured; use
// FillConvex for simple shapes in that case.
func (c *Canvas) Fill() error {
	if c.state.FillColor.IsTransparent() {
		return nil
	}
	contours := c.buildContours()
	if len(contours) == 0 {
		return nil
	}
	if c.tess == nil {
		return ErrNoTessellator
	}

	verts, idx, err := c.tess.Tessellate(contours, c.state.FillRule)
	if err != nil {
		return fmt.Errorf("vg: fill tessellation: %w", err)
	}

	color := c.state.FillColor.Premul()
	base := uint32(len(c.vertices))
	for _, p := range verts {
		c.AddVertex(vert(p.X, p.Y, 0.5, 0.5, color))
	}
	for i := 0; i+2 < len(idx); i += 3 {
		c.AddTriangle(base+idx[i], base+idx[i+1], base+idx[i+2])
	}

	if c.edgeAA {
		c.fringeContours(contours, color)
	}
	return nil
}

// buildContours transforms the current path into tessellator input.
// Sub-paths with fewer than three distinct points cannot enclose area
// and are dropped.
func (c *Canvas) buildContours() []Contour {
	contours := make([]Contour, 0, len(c.path))
	for i := range c.path {
		sp := &c.path[i]
		pts := sp.Points
		if len(pts) > 1 && ptEquals(pts[0], pts[len(pts)-1]) {
			pts = pts[:len(pts)-1]
		}
		if len(pts) < 3 {
			continue
		}
		out := make([]Point, len(pts))
		m := c.state.Transform
		for j, p := range pts {
			out[j] = m.TransformPoint(p)
		}
		contours = append(contours, Contour{
			Points:      out,
			Orientation: contourOrientation(out),
		})
	}
	return contours
}

// fringeContours draws a hairline stroke over each contour in the fill
// color. The stroke mesh carries the coverage ramp the interior
// triangles lack, which reads as edge anti-aliasing.
func (c *Canvas) fringeContours(contours []Contour, color [4]uint8) {
	opts := mesh.Options{
		Thickness:  c.fringe,
		Fringe:     c.fringe,
		Join:       mesh.JoinBevel,
		CapStart:   mesh.CapButt,
		CapEnd:     mesh.CapButt,
		MiterLimit: 1,
		Closed:     true,
	}
	for _, ct := range contours {
		c.ptsBuf = c.ptsBuf[:0]
		for _, p := range ct.Points {
			c.ptsBuf = append(c.ptsBuf, mesh.Point{X: p.X, Y: p.Y})
		}
		c.meshBuf.Reset()
		c.arena.Stroke(c.ptsBuf, opts, &c.meshBuf)
		c.appendMesh(&c.meshBuf, color)
	}
}

// contourOrientation classifies winding by the shoelace signed area.
func contourOrientation(pts []Point) Orientation {
	var area float64
	for i := range pts {
		j := (i + 1) % len(pts)
		area += pts[i].X*pts[j].Y - pts[j].X*pts[i].Y
	}
	if area >= 0 {
		return Clockwise
	}
	return CounterClockwise
}
