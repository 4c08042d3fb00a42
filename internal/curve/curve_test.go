package curve

import (
	"math"
	"testing"
)

func TestQuadToCubic(t *testing.T) {
	p0 := Point{X: 0, Y: 0}
	ctrl := Point{X: 50, Y: 100}
	p1 := Point{X: 100, Y: 0}
	c1, c2 := QuadToCubic(p0, ctrl, p1)

	// Degree elevation: c1 = p0 + 2/3*(ctrl-p0), c2 = p1 + 2/3*(ctrl-p1).
	want1 := Point{X: 100.0 / 3, Y: 200.0 / 3}
	want2 := Point{X: 200.0 / 3, Y: 200.0 / 3}
	if math.Abs(c1.X-want1.X) > 1e-9 || math.Abs(c1.Y-want1.Y) > 1e-9 {
		t.Errorf("c1 = %v, want %v", c1, want1)
	}
	if math.Abs(c2.X-want2.X) > 1e-9 || math.Abs(c2.Y-want2.Y) > 1e-9 {
		t.Errorf("c2 = %v, want %v", c2, want2)
	}
}

func cubicAt(p0, p1, p2, p3 Point, t float64) Point {
	u := 1 - t
	return Point{
		X: u*u*u*p0.X + 3*u*u*t*p1.X + 3*u*t*t*p2.X + t*t*t*p3.X,
		Y: u*u*u*p0.Y + 3*u*u*t*p1.Y + 3*u*t*t*p2.Y + t*t*t*p3.Y,
	}
}

func TestFlattenCubicEndsAtP3(t *testing.T) {
	p0 := Point{X: 0, Y: 0}
	p1 := Point{X: 0, Y: 100}
	p2 := Point{X: 100, Y: 100}
	p3 := Point{X: 100, Y: 0}

	out := FlattenCubic(p0, p1, p2, p3, nil)
	if len(out) == 0 {
		t.Fatal("no segments emitted")
	}
	last := out[len(out)-1]
	if last != p3 {
		t.Errorf("last point = %v, want %v", last, p3)
	}
}

func TestFlattenCubicWithinTolerance(t *testing.T) {
	p0 := Point{X: 0, Y: 0}
	p1 := Point{X: 30, Y: 90}
	p2 := Point{X: 70, Y: 90}
	p3 := Point{X: 100, Y: 0}

	pts := append([]Point{p0}, FlattenCubic(p0, p1, p2, p3, nil)...)
	// Sample the true curve densely; every sample must be close to the
	// polyline. Chord-to-curve error is bounded by the flattening
	// tolerance plus a little slack.
	for i := 0; i <= 100; i++ {
		s := cubicAt(p0, p1, p2, p3, float64(i)/100)
		best := math.Inf(1)
		for j := 0; j+1 < len(pts); j++ {
			best = math.Min(best, distToSegment(s, pts[j], pts[j+1]))
		}
		if best > Tolerance*2 {
			t.Fatalf("curve sample %v is %v from polyline", s, best)
		}
	}
}

func distToSegment(p, a, b Point) float64 {
	dx, dy := b.X-a.X, b.Y-a.Y
	l2 := dx*dx + dy*dy
	if l2 == 0 {
		return math.Hypot(p.X-a.X, p.Y-a.Y)
	}
	t := ((p.X-a.X)*dx + (p.Y-a.Y)*dy) / l2
	t = math.Max(0, math.Min(1, t))
	return math.Hypot(p.X-(a.X+dx*t), p.Y-(a.Y+dy*t))
}

func TestFlattenStraightCubic(t *testing.T) {
	p0 := Point{X: 0, Y: 0}
	p3 := Point{X: 100, Y: 0}
	out := FlattenCubic(p0, Point{X: 25, Y: 0}, Point{X: 75, Y: 0}, p3, nil)
	if len(out) != 1 {
		t.Errorf("straight cubic emitted %d points, want 1", len(out))
	}
}

func TestFlattenCubicAppends(t *testing.T) {
	seed := []Point{{X: -1, Y: -1}}
	out := FlattenCubic(Point{}, Point{X: 10, Y: 20}, Point{X: 20, Y: 20}, Point{X: 30, Y: 0}, seed)
	if out[0] != seed[0] {
		t.Error("FlattenCubic did not append to the given slice")
	}
}

func TestArcSegmentCount(t *testing.T) {
	tests := []struct {
		name   string
		r      float64
		a0, a1 float64
		ccw    bool
	}{
		{"quarter", 20, 0, math.Pi / 2, false},
		{"half", 50, 0, math.Pi, false},
		{"full circle", 30, 0, 2 * math.Pi, false},
		{"ccw quarter", 20, math.Pi / 2, 0, true},
		{"tiny radius", 0.5, 0, math.Pi, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out := Arc(0, 0, tt.r, tt.a0, tt.a1, tt.ccw, nil)
			if len(out) < 2 {
				t.Fatalf("arc emitted %d points", len(out))
			}
			// Every point on the circle.
			for _, p := range out {
				d := math.Hypot(p.X, p.Y)
				if math.Abs(d-tt.r) > 1e-9 {
					t.Fatalf("point %v at radius %v, want %v", p, d, tt.r)
				}
			}
			// Chord length stays near the target segment length.
			for i := 1; i < len(out); i++ {
				chord := math.Hypot(out[i].X-out[i-1].X, out[i].Y-out[i-1].Y)
				if chord > MinSegmentDistance+1e-9 {
					t.Fatalf("chord %d length %v exceeds target", i, chord)
				}
			}
		})
	}
}

func TestArcDirection(t *testing.T) {
	cw := Arc(0, 0, 10, 0, math.Pi/2, false, nil)
	if cw[1].Y <= 0 {
		t.Errorf("clockwise arc second point %v, want y > 0", cw[1])
	}
	ccw := Arc(0, 0, 10, 0, -math.Pi/2, true, nil)
	if ccw[1].Y >= 0 {
		t.Errorf("counter-clockwise arc second point %v, want y < 0", ccw[1])
	}
}

func TestArcFullCircleCloses(t *testing.T) {
	out := Arc(5, 5, 10, 0, 2*math.Pi, false, nil)
	first, last := out[0], out[len(out)-1]
	if math.Abs(first.X-last.X) > 1e-9 || math.Abs(first.Y-last.Y) > 1e-9 {
		t.Errorf("full circle: first %v, last %v", first, last)
	}
}

func BenchmarkFlattenCubic(b *testing.B) {
	p0 := Point{X: 0, Y: 0}
	p1 := Point{X: 30, Y: 90}
	p2 := Point{X: 70, Y: 90}
	p3 := Point{X: 100, Y: 0}
	buf := make([]Point, 0, 64)
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		buf = FlattenCubic(p0, p1, p2, p3, buf[:0])
	}
}
