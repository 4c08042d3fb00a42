package vg

import (
	"math"
	"testing"
)

func TestLinearGradientAxis(t *testing.T) {
	b := LinearGradient(10, 10, 10, 110, Red, Blue)
	if b.Kind != BrushLinear {
		t.Fatalf("Kind = %v, want BrushLinear", b.Kind)
	}

	// The transform's y basis points along the gradient axis.
	axis := b.Transform.TransformVector(Pt(0, 1))
	if !pointsClose(axis, Pt(0, 1), 1e-9) {
		t.Errorf("gradient axis = %v, want (0,1)", axis)
	}
	if b.InnerColor != Red || b.OuterColor != Blue {
		t.Error("gradient stops not preserved")
	}
}

func TestLinearGradientDegenerate(t *testing.T) {
	// Coincident endpoints fall back to a vertical axis instead of NaN.
	b := LinearGradient(5, 5, 5, 5, Red, Blue)
	axis := b.Transform.TransformVector(Pt(0, 1))
	if math.IsNaN(axis.X) || math.IsNaN(axis.Y) {
		t.Fatal("degenerate gradient produced NaN axis")
	}
	if !pointsClose(axis, Pt(0, 1), 1e-9) {
		t.Errorf("fallback axis = %v, want (0,1)", axis)
	}
}

func TestRadialGradient(t *testing.T) {
	b := RadialGradient(50, 60, 10, 30, White, Black)
	if b.Kind != BrushRadial {
		t.Fatalf("Kind = %v, want BrushRadial", b.Kind)
	}
	center := b.Transform.TransformPoint(Pt(0, 0))
	if !pointsClose(center, Pt(50, 60), 1e-9) {
		t.Errorf("center = %v, want (50,60)", center)
	}
	if b.Radius != 20 {
		t.Errorf("Radius = %v, want mid radius 20", b.Radius)
	}
	if b.Feather != 20 {
		t.Errorf("Feather = %v, want outer-inner 20", b.Feather)
	}
}

func TestBoxGradient(t *testing.T) {
	b := BoxGradient(10, 20, 100, 60, 8, 12, White, Black)
	if b.Kind != BrushBox {
		t.Fatalf("Kind = %v, want BrushBox", b.Kind)
	}
	center := b.Transform.TransformPoint(Pt(0, 0))
	if !pointsClose(center, Pt(60, 50), 1e-9) {
		t.Errorf("center = %v, want (60,50)", center)
	}
	if !pointsClose(b.Extent, Pt(50, 30), 1e-9) {
		t.Errorf("extent = %v, want (50,30)", b.Extent)
	}
	if b.Radius != 8 || b.Feather != 12 {
		t.Errorf("radius/feather = %v/%v, want 8/12", b.Radius, b.Feather)
	}
}

func TestBrushComparable(t *testing.T) {
	a := RadialGradient(1, 2, 3, 4, Red, Blue)
	b := RadialGradient(1, 2, 3, 4, Red, Blue)
	if a != b {
		t.Error("identical brushes compare unequal")
	}
	if a == RadialGradient(1, 2, 3, 5, Red, Blue) {
		t.Error("distinct brushes compare equal")
	}
}
