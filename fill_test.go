package vg

import (
	"errors"
	"math"
	"testing"
)

func TestFillConvexRect(t *testing.T) {
	c := newTestCanvas(t, WithEdgeAntiAlias(false))
	c.SetFillColor(Red)
	c.BeginPath()
	c.Rect(0, 0, 100, 50)
	c.FillConvex()

	// Centroid fan over 4 corners: 5 vertices, 4 triangles.
	if got := len(c.Vertices()); got != 5 {
		t.Fatalf("vertices = %d, want 5", got)
	}
	calls := c.DrawCalls()
	if len(calls) != 1 || calls[0].TriangleCount != 4 {
		t.Fatalf("calls = %+v, want one 4-triangle call", calls)
	}

	center := c.Vertices()[0]
	if center.Pos[0] != 50 || center.Pos[1] != 25 {
		t.Errorf("centroid = %v, want (50,25)", center.Pos)
	}
	if center.UV[0] != 0.5 {
		t.Errorf("centroid U = %v, want 0.5", center.UV[0])
	}
	for _, v := range c.Vertices()[1:] {
		if v.UV[0] != 0 {
			t.Errorf("edge vertex U = %v, want 0", v.UV[0])
		}
	}
}

// fanArea sums the signed area of the emitted triangles. Consistent
// winding makes every term the same sign.
func fanArea(c *Canvas) (total float64, mixed bool) {
	verts := c.Vertices()
	idx := c.Indices()
	sign := 0.0
	for i := 0; i+2 < len(idx); i += 3 {
		a, b, d := verts[idx[i]], verts[idx[i+1]], verts[idx[i+2]]
		area := 0.5 * (float64(b.Pos[0]-a.Pos[0])*float64(d.Pos[1]-a.Pos[1]) -
			float64(b.Pos[1]-a.Pos[1])*float64(d.Pos[0]-a.Pos[0]))
		if area != 0 {
			s := math.Copysign(1, area)
			if sign != 0 && s != sign {
				mixed = true
			}
			sign = s
		}
		total += math.Abs(area)
	}
	return total, mixed
}

func TestFillConvexWindingInvariance(t *testing.T) {
	build := func(reverse bool) *Canvas {
		c, _ := NewCanvas(WithEdgeAntiAlias(false))
		c.SetFillColor(Red)
		c.BeginPath()
		if reverse {
			c.MoveTo(0, 0)
			c.LineTo(0, 50)
			c.LineTo(100, 50)
			c.LineTo(100, 0)
		} else {
			c.MoveTo(0, 0)
			c.LineTo(100, 0)
			c.LineTo(100, 50)
			c.LineTo(0, 50)
		}
		c.ClosePath()
		c.FillConvex()
		return c
	}

	for _, reverse := range []bool{false, true} {
		c := build(reverse)
		area, mixed := fanArea(c)
		if mixed {
			t.Errorf("reverse=%v: fan emitted mixed winding", reverse)
		}
		if math.Abs(area-5000) > 1 {
			t.Errorf("reverse=%v: fan area = %v, want 5000", reverse, area)
		}
	}
}

func TestFillConvexAAPushesEdges(t *testing.T) {
	c := newTestCanvas(t) // AA on, ratio 1
	c.SetFillColor(Red)
	c.BeginPath()
	c.Rect(0, 0, 100, 50)
	c.FillConvex()

	// Edge vertices move half a fringe outward from the true outline:
	// the (0,0) corner must land at negative coordinates.
	v := c.Vertices()[1]
	if v.Pos[0] >= 0 || v.Pos[1] >= 0 {
		t.Errorf("first corner %v not pushed outward", v.Pos)
	}
}

func TestFillConvexDegenerate(t *testing.T) {
	c := newTestCanvas(t)
	c.SetFillColor(Red)

	c.BeginPath()
	c.FillConvex() // no path

	c.BeginPath()
	c.MoveTo(0, 0)
	c.LineTo(10, 0)
	c.FillConvex() // 2 points cannot enclose area

	c.BeginPath()
	c.Rect(0, 0, 10, 10)
	c.SetFillColor(Transparent)
	c.FillConvex()

	if len(c.Vertices()) != 0 {
		t.Errorf("degenerate fills emitted %d vertices", len(c.Vertices()))
	}
}

// stubTessellator triangulates by recording its input and emitting one
// triangle per contour.
type stubTessellator struct {
	contours []Contour
	rule     FillRule
	err      error
}

func (s *stubTessellator) Tessellate(contours []Contour, rule FillRule) ([]Point, []uint32, error) {
	s.contours = contours
	s.rule = rule
	if s.err != nil {
		return nil, nil, s.err
	}
	var verts []Point
	var idx []uint32
	for _, ct := range contours {
		base := uint32(len(verts))
		verts = append(verts, ct.Points[0], ct.Points[1], ct.Points[2])
		idx = append(idx, base, base+1, base+2)
	}
	return verts, idx, nil
}

func TestFillRequiresTessellator(t *testing.T) {
	c := newTestCanvas(t)
	c.SetFillColor(Red)
	c.BeginPath()
	c.Rect(0, 0, 10, 10)
	if err := c.Fill(); !errors.Is(err, ErrNoTessellator) {
		t.Errorf("Fill err = %v, want ErrNoTessellator", err)
	}
}

func TestFillDelegatesToTessellator(t *testing.T) {
	tess := &stubTessellator{}
	c := newTestCanvas(t, WithTessellator(tess), WithEdgeAntiAlias(false))
	c.SetFillColor(Green)
	c.SetFillRule(FillRuleEvenOdd)

	c.BeginPath()
	c.Rect(0, 0, 100, 50)
	c.MoveTo(200, 0)
	c.LineTo(250, 0)
	c.LineTo(225, 50)
	c.ClosePath()
	if err := c.Fill(); err != nil {
		t.Fatalf("Fill: %v", err)
	}

	if len(tess.contours) != 2 {
		t.Fatalf("tessellator got %d contours, want 2", len(tess.contours))
	}
	if tess.rule != FillRuleEvenOdd {
		t.Errorf("rule = %v, want even-odd", tess.rule)
	}
	// The rect contour must arrive without the ClosePath duplicate.
	if got := len(tess.contours[0].Points); got != 4 {
		t.Errorf("rect contour has %d points, want 4", got)
	}
	if calls := c.DrawCalls(); len(calls) != 1 || calls[0].TriangleCount != 2 {
		t.Errorf("calls = %+v, want one 2-triangle call", calls)
	}
}

func TestFillContourOrientation(t *testing.T) {
	tess := &stubTessellator{}
	c := newTestCanvas(t, WithTessellator(tess), WithEdgeAntiAlias(false))
	c.SetFillColor(Red)

	// Rect() winds clockwise in y-down coordinates; the second contour
	// is wound the opposite way, as a hole would be.
	c.BeginPath()
	c.Rect(0, 0, 100, 100)
	c.MoveTo(20, 20)
	c.LineTo(20, 80)
	c.LineTo(80, 80)
	c.LineTo(80, 20)
	c.ClosePath()
	if err := c.Fill(); err != nil {
		t.Fatalf("Fill: %v", err)
	}

	if got := tess.contours[0].Orientation; got != Clockwise {
		t.Errorf("outer orientation = %v, want Clockwise", got)
	}
	if got := tess.contours[1].Orientation; got != CounterClockwise {
		t.Errorf("hole orientation = %v, want CounterClockwise", got)
	}
}

func TestFillPropagatesTessellatorError(t *testing.T) {
	sentinel := errors.New("tess failed")
	tess := &stubTessellator{err: sentinel}
	c := newTestCanvas(t, WithTessellator(tess))
	c.SetFillColor(Red)
	c.BeginPath()
	c.Rect(0, 0, 10, 10)

	err := c.Fill()
	if !errors.Is(err, sentinel) {
		t.Errorf("Fill err = %v, want wrapped %v", err, sentinel)
	}
	if len(c.DrawCalls()) != 0 {
		t.Error("failed Fill emitted draw calls")
	}
}

func TestFillAddsFringeStroke(t *testing.T) {
	tess := &stubTessellator{}
	plain := newTestCanvas(t, WithTessellator(tess), WithEdgeAntiAlias(false))
	plain.SetFillColor(Red)
	plain.BeginPath()
	plain.Rect(0, 0, 100, 50)
	if err := plain.Fill(); err != nil {
		t.Fatalf("Fill: %v", err)
	}

	aa := newTestCanvas(t, WithTessellator(&stubTessellator{}))
	aa.SetFillColor(Red)
	aa.BeginPath()
	aa.Rect(0, 0, 100, 50)
	if err := aa.Fill(); err != nil {
		t.Fatalf("Fill: %v", err)
	}

	if len(aa.Vertices()) <= len(plain.Vertices()) {
		t.Errorf("AA fill emitted %d vertices, plain %d; want AA to add fringe geometry",
			len(aa.Vertices()), len(plain.Vertices()))
	}
}

func TestFillTransparentSkipped(t *testing.T) {
	c := newTestCanvas(t, WithTessellator(&stubTessellator{}))
	c.SetFillColor(Transparent)
	c.BeginPath()
	c.Rect(0, 0, 10, 10)
	if err := c.Fill(); err != nil {
		t.Fatalf("Fill: %v", err)
	}
	if len(c.Vertices()) != 0 {
		t.Error("transparent fill emitted geometry")
	}
}
