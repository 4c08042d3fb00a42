package vg

// LineCap specifies the shape terminating an open stroke's start or end.
type LineCap int

const (
	// LineCapButt ends the stroke flat, exactly at the endpoint.
	LineCapButt LineCap = iota
	// LineCapSquare extends the stroke past the endpoint and ends flat.
	LineCapSquare
	// LineCapRound ends the stroke with a half-circle fan.
	LineCapRound
	// LineCapBevel ends the stroke with a coarse, fixed-count fan.
	LineCapBevel
)

// LineJoin specifies the geometry connecting two consecutive
// stroke segments.
type LineJoin int

const (
	// LineJoinBevel connects segments with a single triangle.
	LineJoinBevel LineJoin = iota
	// LineJoinMiter extends the outer edges until they intersect.
	// Joints exceeding the miter limit fall back to bevel.
	LineJoinMiter
	// LineJoinRound connects segments with an arc fan.
	LineJoinRound
)

// FillRule determines the interior of self-intersecting or
// multi-contour paths.
type FillRule int

const (
	// FillRuleNonZero uses the non-zero winding rule.
	FillRuleNonZero FillRule = iota
	// FillRuleEvenOdd uses the even-odd rule.
	FillRuleEvenOdd
)

// StrokeStyle collects every stroke property carried by the canvas state.
type StrokeStyle struct {
	// Color is the stroke color.
	Color RGBA

	// Width is the stroke thickness in local units.
	Width float64

	// Scale multiplies Width at mesh time. Callers that scale their
	// transform can keep visually constant strokes by adjusting Scale.
	Scale float64

	// Join is the joint style between consecutive segments.
	Join LineJoin

	// StartCap and EndCap terminate open strokes independently.
	StartCap LineCap
	EndCap   LineCap

	// MiterLimit is the maximum miter length (in half-width units)
	// before a miter joint is demoted to bevel.
	MiterLimit float64
}

// DefaultStrokeStyle returns the stroke style installed by ResetState:
// 1px black, bevel joints, butt caps.
func DefaultStrokeStyle() StrokeStyle {
	return StrokeStyle{
		Color:      Black,
		Width:      1.0,
		Scale:      1.0,
		Join:       LineJoinBevel,
		StartCap:   LineCapButt,
		EndCap:     LineCapButt,
		MiterLimit: 10.0,
	}
}
