// Package curve flattens Bézier curves and arcs into line segments.
//
// Flattening is adaptive: a curve is subdivided (de Casteljau) until the
// perpendicular deviation of its control points from the chord falls
// within a fixed tolerance, so segment count is bounded by curvature
// rather than a fixed sample rate. Recursion depth is capped to keep
// pathological inputs cheap.
package curve

import "math"

// Point represents a 2D point (internal copy to avoid import cycle).
type Point struct {
	X, Y float64
}

const (
	// Tolerance is the maximum perpendicular deviation, in local
	// units, accepted before a curve span is emitted as a segment.
	Tolerance = 0.25

	// maxDepth caps the recursive subdivision.
	maxDepth = 10

	// MinSegmentDistance is the target chord length for arc
	// flattening: an arc emits max(1, ceil(arcLen/MinSegmentDistance))
	// segments.
	MinSegmentDistance = 3.0
)

// QuadToCubic converts the quadratic Bézier (p0, ctrl, p1) to the
// equivalent cubic control points.
func QuadToCubic(p0, ctrl, p1 Point) (c1, c2 Point) {
	c1 = Point{
		X: p0.X + 2.0/3.0*(ctrl.X-p0.X),
		Y: p0.Y + 2.0/3.0*(ctrl.Y-p0.Y),
	}
	c2 = Point{
		X: p1.X + 2.0/3.0*(ctrl.X-p1.X),
		Y: p1.Y + 2.0/3.0*(ctrl.Y-p1.Y),
	}
	return c1, c2
}

// FlattenCubic appends the flattened cubic Bézier (p0, p1, p2, p3) to
// out and returns the extended slice. The start point p0 is not
// appended; the final point p3 always is.
func FlattenCubic(p0, p1, p2, p3 Point, out []Point) []Point {
	return flattenCubicRec(p0, p1, p2, p3, 0, out)
}

func flattenCubicRec(p0, p1, p2, p3 Point, depth int, out []Point) []Point {
	d1 := perpDistance(p1, p0, p3)
	d2 := perpDistance(p2, p0, p3)

	if d1+d2 <= Tolerance || depth >= maxDepth {
		return append(out, p3)
	}

	// Subdivide at the midpoint (de Casteljau).
	q0 := lerp(p0, p1, 0.5)
	q1 := lerp(p1, p2, 0.5)
	q2 := lerp(p2, p3, 0.5)
	r0 := lerp(q0, q1, 0.5)
	r1 := lerp(q1, q2, 0.5)
	mid := lerp(r0, r1, 0.5)

	out = flattenCubicRec(p0, q0, r0, mid, depth+1, out)
	return flattenCubicRec(mid, r1, q2, p3, depth+1, out)
}

// Arc appends the flattened circular arc to out and returns the
// extended slice. The sweep runs from a0 to a1 around (cx, cy) with
// radius r; ccw selects the sweep direction. The arc's start point is
// included, so callers can turn it into a MoveTo or LineTo as needed.
func Arc(cx, cy, r, a0, a1 float64, ccw bool, out []Point) []Point {
	da := a1 - a0
	if !ccw {
		if math.Abs(da) >= 2*math.Pi {
			da = 2 * math.Pi
		} else {
			for da < 0 {
				da += 2 * math.Pi
			}
		}
	} else {
		if math.Abs(da) >= 2*math.Pi {
			da = -2 * math.Pi
		} else {
			for da > 0 {
				da -= 2 * math.Pi
			}
		}
	}

	arcLen := math.Abs(da) * math.Max(0, r)
	n := int(math.Ceil(arcLen / MinSegmentDistance))
	if n < 1 {
		n = 1
	}

	for i := 0; i <= n; i++ {
		a := a0 + da*float64(i)/float64(n)
		out = append(out, Point{
			X: cx + math.Cos(a)*r,
			Y: cy + math.Sin(a)*r,
		})
	}
	return out
}

// perpDistance is the perpendicular distance from p to the infinite
// line through a and b. When a and b coincide it degrades to the
// point distance.
func perpDistance(p, a, b Point) float64 {
	dx := b.X - a.X
	dy := b.Y - a.Y
	len2 := dx*dx + dy*dy
	if len2 < 1e-12 {
		return math.Hypot(p.X-a.X, p.Y-a.Y)
	}
	cross := (p.X-a.X)*dy - (p.Y-a.Y)*dx
	return math.Abs(cross) / math.Sqrt(len2)
}

func lerp(a, b Point, t float64) Point {
	return Point{
		X: a.X + (b.X-a.X)*t,
		Y: a.Y + (b.Y-a.Y)*t,
	}
}
