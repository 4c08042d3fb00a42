package vg

import (
	"math"
	"testing"
)

func TestSaveRestoreState(t *testing.T) {
	c := newTestCanvas(t)
	c.SetFillColor(Red)
	c.SetStrokeWidth(5)
	c.Translate(10, 20)

	c.SaveState()
	c.SetFillColor(Blue)
	c.SetStrokeWidth(1)
	c.ResetTransform()
	c.RestoreState()

	if c.state.FillColor != Red {
		t.Errorf("FillColor = %+v, want Red", c.state.FillColor)
	}
	if c.state.Stroke.Width != 5 {
		t.Errorf("Stroke.Width = %v, want 5", c.state.Stroke.Width)
	}
	got := c.CurrentTransform().TransformPoint(Pt(0, 0))
	if !pointsClose(got, Pt(10, 20), matrixEps) {
		t.Errorf("transform origin = %v, want (10,20)", got)
	}
}

func TestSaveRestoreNesting(t *testing.T) {
	c := newTestCanvas(t)
	c.SetStrokeWidth(1)
	c.SaveState()
	c.SetStrokeWidth(2)
	c.SaveState()
	c.SetStrokeWidth(3)

	c.RestoreState()
	if c.state.Stroke.Width != 2 {
		t.Errorf("after first restore: Width = %v, want 2", c.state.Stroke.Width)
	}
	c.RestoreState()
	if c.state.Stroke.Width != 1 {
		t.Errorf("after second restore: Width = %v, want 1", c.state.Stroke.Width)
	}
	// Restoring past the bottom of the stack is a no-op.
	c.RestoreState()
	if c.state.Stroke.Width != 1 {
		t.Errorf("restore on empty stack changed state")
	}
}

func TestResetState(t *testing.T) {
	c := newTestCanvas(t)
	c.SetFillColor(Green)
	c.Translate(5, 5)
	c.SetScissor(0, 0, 10, 10)
	c.ResetState()

	def := defaultState()
	if c.state != def {
		t.Errorf("ResetState: state = %+v, want defaults", c.state)
	}
}

func TestTransformComposesInCallOrder(t *testing.T) {
	// Translate then Scale must behave like nested coordinate systems:
	// the scale applies inside the translated frame.
	c := newTestCanvas(t)
	c.Translate(100, 0)
	c.Scale(2, 2)

	got := c.CurrentTransform().TransformPoint(Pt(1, 1))
	want := Pt(102, 2)
	if !pointsClose(got, want, matrixEps) {
		t.Errorf("composed transform: got %v, want %v", got, want)
	}
}

func TestRotateAboutOrigin(t *testing.T) {
	c := newTestCanvas(t)
	c.Translate(50, 50)
	c.Rotate(math.Pi / 2)

	got := c.CurrentTransform().TransformPoint(Pt(10, 0))
	want := Pt(50, 60)
	if !pointsClose(got, want, 1e-9) {
		t.Errorf("rotate in translated frame: got %v, want %v", got, want)
	}
}

func TestSkew(t *testing.T) {
	c := newTestCanvas(t)
	c.Skew(math.Pi/4, 0)

	// tan(pi/4) = 1: x picks up the full y coordinate.
	got := c.CurrentTransform().TransformPoint(Pt(0, 10))
	want := Pt(10, 10)
	if !pointsClose(got, want, 1e-9) {
		t.Errorf("skew: got %v, want %v", got, want)
	}
}

func TestSetBrushComposesTransform(t *testing.T) {
	c := newTestCanvas(t)
	c.Translate(100, 100)
	c.SetBrush(RadialGradient(10, 10, 0, 20, Red, Blue))

	// The brush center must land where the current transform put it.
	got := c.state.Brush.Transform.TransformPoint(Pt(0, 0))
	if !pointsClose(got, Pt(110, 110), matrixEps) {
		t.Errorf("brush center = %v, want (110,110)", got)
	}

	c.ClearBrush()
	if c.state.Brush.Kind != BrushNone {
		t.Error("ClearBrush left a brush installed")
	}
}

func TestScissor(t *testing.T) {
	c := newTestCanvas(t)
	if c.state.Scissor.Enabled() {
		t.Fatal("default state has scissor enabled")
	}

	c.SetScissor(10, 20, 100, 60)
	s := c.state.Scissor
	if !s.Enabled() {
		t.Fatal("SetScissor did not enable scissor")
	}
	if !pointsClose(s.Extent, Pt(50, 30), matrixEps) {
		t.Errorf("extent = %v, want (50,30)", s.Extent)
	}
	center := s.Transform.TransformPoint(Pt(0, 0))
	if !pointsClose(center, Pt(60, 50), matrixEps) {
		t.Errorf("center = %v, want (60,50)", center)
	}

	c.ResetScissor()
	if c.state.Scissor.Enabled() {
		t.Error("ResetScissor left scissor enabled")
	}
}

func TestIntersectScissor(t *testing.T) {
	c := newTestCanvas(t)
	c.SetScissor(0, 0, 100, 100)
	c.IntersectScissor(50, 50, 100, 100)

	s := c.state.Scissor
	if !pointsClose(s.Extent, Pt(25, 25), 1e-9) {
		t.Errorf("intersection extent = %v, want (25,25)", s.Extent)
	}
	center := s.Transform.TransformPoint(Pt(0, 0))
	if !pointsClose(center, Pt(75, 75), 1e-9) {
		t.Errorf("intersection center = %v, want (75,75)", center)
	}
}

func TestIntersectScissorDisjoint(t *testing.T) {
	c := newTestCanvas(t)
	c.SetScissor(0, 0, 10, 10)
	c.IntersectScissor(50, 50, 10, 10)

	// Disjoint rectangles collapse to an empty, still-enabled scissor.
	s := c.state.Scissor
	if !s.Enabled() {
		t.Fatal("empty intersection disabled the scissor")
	}
	if s.Extent.X != 0 || s.Extent.Y != 0 {
		t.Errorf("empty intersection extent = %v, want zero", s.Extent)
	}
}

func TestIntersectScissorWithoutPrevious(t *testing.T) {
	c := newTestCanvas(t)
	c.IntersectScissor(10, 10, 20, 20)
	s := c.state.Scissor
	if !s.Enabled() || !pointsClose(s.Extent, Pt(10, 10), matrixEps) {
		t.Errorf("IntersectScissor with no previous: %+v", s)
	}
}
