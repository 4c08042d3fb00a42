package mesh

import "math"

const (
	// minMiterAngle is the interior angle below which miter joints are
	// always demoted to bevel, regardless of the miter limit.
	minMiterAngle = 20 * math.Pi / 180

	// maxJoinStep is the largest angular increment of a round-join fan.
	maxJoinStep = 40 * math.Pi / 180

	// capSegmentLength is the target rim chord length of a round cap fan.
	capSegmentLength = 3.0

	minRoundCapSegs = 6
	maxRoundCapSegs = 16
	bevelCapSegs    = 2
)

// Options configures one stroke expansion.
type Options struct {
	// Thickness is the stroke thickness before anti-aliasing expansion.
	Thickness float64

	// Fringe is the device pixel width reserved for edge anti-aliasing.
	// It is added to Thickness before the per-side offset is halved.
	Fringe float64

	// Join is the joint style between consecutive segments.
	Join LineJoin

	// CapStart and CapEnd terminate open strokes.
	CapStart LineCap
	CapEnd   LineCap

	// MiterLimit is the maximum miter length in half-width units.
	MiterLimit float64

	// Closed marks the polyline as closed: the caller guarantees the
	// last point coincides with the first, the wrap-around joint is
	// computed like an internal joint, and no caps are emitted.
	Closed bool
}

// segment is one stroked span between two distinct polyline points.
// l0/l1 and r0/r1 are the corner positions of the two parallel offset
// edges; joints adjust them in place before emission.
type segment struct {
	p0, p1 Point
	dir    Point

	l0, l1 Point
	r0, r1 Point

	base uint32 // first vertex index once the quad is emitted
}

// Arena owns the stroker's scratch buffers. Reusing one Arena across
// calls keeps steady-state stroking allocation-free. An Arena is not
// safe for concurrent use.
type Arena struct {
	pts  []Point
	segs []segment
}

// Stroke expands the polyline into an anti-aliased triangle mesh
// appended to out. Degenerate input (fewer than 2 distinct points,
// non-positive thickness) produces no output.
func (a *Arena) Stroke(pts []Point, o Options, out *Mesh) {
	if o.Thickness <= 0 {
		return
	}

	a.dedupe(pts, o.Closed)
	if len(a.pts) < 2 {
		return
	}

	half := (o.Thickness + o.Fringe) * 0.5
	if !a.buildSegments(half) {
		return
	}

	segs := a.segs
	for i := 1; i < len(segs); i++ {
		a.joint(&segs[i-1], &segs[i], o, out, half)
	}
	if o.Closed && len(segs) > 1 {
		a.joint(&segs[len(segs)-1], &segs[0], o, out, half)
	}

	// Segment quads: two triangles each, corners final after joints.
	for i := range segs {
		s := &segs[i]
		s.base = out.addVert(s.l0.X, s.l0.Y, 0, 0.5)
		out.addVert(s.r0.X, s.r0.Y, 1, 0.5)
		out.addVert(s.l1.X, s.l1.Y, 0, 0.5)
		out.addVert(s.r1.X, s.r1.Y, 1, 0.5)
		out.addTri(s.base, s.base+1, s.base+2)
		out.addTri(s.base+2, s.base+1, s.base+3)
	}

	if o.Closed {
		// Close the ring: the final joint's end vertices coincide with
		// the first segment's start vertices, so this bridge quad never
		// leaves a seam.
		last := &segs[len(segs)-1]
		first := &segs[0]
		out.addTri(last.base+2, last.base+3, first.base)
		out.addTri(first.base, last.base+3, first.base+1)
		return
	}

	a.cap(out, &segs[0], true, o.CapStart, half, o.Fringe)
	a.cap(out, &segs[len(segs)-1], false, o.CapEnd, half, o.Fringe)
}

// dedupe copies pts into the arena, collapsing consecutive duplicates.
// For closed polylines a missing terminal duplicate of the first point
// is appended so the wrap segment exists.
func (a *Arena) dedupe(pts []Point, closed bool) {
	const eps = 1e-9

	a.pts = a.pts[:0]
	for _, p := range pts {
		if n := len(a.pts); n > 0 {
			q := a.pts[n-1]
			if math.Abs(p.X-q.X) < eps && math.Abs(p.Y-q.Y) < eps {
				continue
			}
		}
		a.pts = append(a.pts, p)
	}

	if closed && len(a.pts) >= 2 {
		first, lastp := a.pts[0], a.pts[len(a.pts)-1]
		if math.Abs(first.X-lastp.X) >= eps || math.Abs(first.Y-lastp.Y) >= eps {
			a.pts = append(a.pts, first)
		}
	}
}

// buildSegments fills the arena segment list with offset edges at
// distance half from the centerline. Returns false if no segment
// survives.
func (a *Arena) buildSegments(half float64) bool {
	a.segs = a.segs[:0]
	for i := 0; i+1 < len(a.pts); i++ {
		p0, p1 := a.pts[i], a.pts[i+1]
		dir, l := normalize(sub(p1, p0))
		if l == 0 {
			continue
		}
		n := scale(perp(dir), half)
		a.segs = append(a.segs, segment{
			p0: p0, p1: p1, dir: dir,
			l0: add(p0, n), l1: add(p1, n),
			r0: sub(p0, n), r1: sub(p1, n),
		})
	}
	return len(a.segs) > 0
}

// joint connects s0's end to s1's start at their shared point.
func (a *Arena) joint(s0, s1 *segment, o Options, out *Mesh, half float64) {
	d0, d1 := s0.dir, s1.dir
	dotv := clampF(dot(d0, d1), -1, 1)
	crossv := cross(d0, d1)
	turn := math.Acos(dotv)
	if turn < 1e-6 {
		// Straight continuation: the offset corners already coincide.
		return
	}
	interior := math.Pi - turn

	join := o.Join
	if join == JoinMiter {
		miterLen := math.Inf(1)
		if s := math.Sin(interior * 0.5); s > 1e-12 {
			miterLen = 1 / s
		}
		if interior < minMiterAngle || miterLen > o.MiterLimit {
			// Demote this joint only; the stroke style is untouched.
			join = JoinBevel
		}
	}

	if join == JoinMiter {
		// Intersect both edge pairs as infinite lines. Parallel edges
		// (anti-parallel segments) fall back to the segment endpoints.
		if lp, ok := lineIntersection(s0.l0, d0, s1.l0, d1); ok {
			s0.l1, s1.l0 = lp, lp
		}
		if rp, ok := lineIntersection(s0.r0, d0, s1.r0, d1); ok {
			s0.r1, s1.r0 = rp, rp
		}
		return
	}

	// Bevel and round classify the edge pairs by winding: the 2D cross
	// product of the directions says which side of the bend pinches.
	p := s0.p1
	if crossv > 0 {
		// Left edges pinch (inner), right edges flare (outer).
		inner, innerU := p, 0.0
		if ip, ok := segmentIntersection(s0.l0, s0.l1, s1.l0, s1.l1); ok {
			s0.l1, s1.l0 = ip, ip
			inner = ip
		}
		if join == JoinRound {
			a.roundJoin(out, p, inner, innerU, s0.r1, s1.r0, 1, half, turn)
		} else {
			a.bevelJoin(out, inner, innerU, s0.r1, s1.r0, 1)
		}
	} else {
		inner, innerU := p, 1.0
		if ip, ok := segmentIntersection(s0.r0, s0.r1, s1.r0, s1.r1); ok {
			s0.r1, s1.r0 = ip, ip
			inner = ip
		}
		// Corner order swapped to keep triangle winding consistent
		// with the mirrored case.
		if join == JoinRound {
			a.roundJoin(out, p, inner, innerU, s0.l1, s1.l0, 0, half, -turn)
		} else {
			a.bevelJoin(out, inner, innerU, s1.l0, s0.l1, 0)
		}
	}
}

// bevelJoin emits the single triangle connecting the two outer corners
// to the inner intersection (or its endpoint fallback).
func (a *Arena) bevelJoin(out *Mesh, inner Point, innerU float64, c0, c1 Point, outerU float64) {
	i := out.addVert(inner.X, inner.Y, innerU, 0.5)
	o0 := out.addVert(c0.X, c0.Y, outerU, 0.5)
	o1 := out.addVert(c1.X, c1.Y, outerU, 0.5)
	out.addTri(i, o0, o1)
}

// roundJoin emits a fan from the inner point sweeping the outer arc
// from corner c0 to corner c1 in increments no larger than maxJoinStep.
// sweep is the signed turn angle; the arc is centered on the joint
// point with the full half-thickness radius, so its endpoints land
// exactly on the unadjusted outer corners.
func (a *Arena) roundJoin(out *Mesh, center, inner Point, innerU float64, c0, c1 Point, outerU float64, half, sweep float64) {
	steps := int(math.Ceil(math.Abs(sweep) / maxJoinStep))
	if steps < 1 {
		steps = 1
	}

	a0 := math.Atan2(c0.Y-center.Y, c0.X-center.X)
	pivot := out.addVert(inner.X, inner.Y, innerU, 0.5)

	prev := out.addVert(c0.X, c0.Y, outerU, 0.5)
	for i := 1; i <= steps; i++ {
		var rim Point
		if i == steps {
			rim = c1
		} else {
			ang := a0 + sweep*float64(i)/float64(steps)
			rim = Point{
				X: center.X + math.Cos(ang)*half,
				Y: center.Y + math.Sin(ang)*half,
			}
		}
		cur := out.addVert(rim.X, rim.Y, outerU, 0.5)
		if sweep > 0 {
			out.addTri(pivot, prev, cur)
		} else {
			out.addTri(pivot, cur, prev)
		}
		prev = cur
	}
}

// cap emits end-cap geometry at an open stroke's start or end.
func (a *Arena) cap(out *Mesh, s *segment, atStart bool, style LineCap, half, fringe float64) {
	switch style {
	case CapButt:
		return

	case CapSquare:
		// Extend both edge points along the path direction and close
		// the resulting quad.
		ext := scale(s.dir, half)
		var q [4]Point // quad corners in segment order: l0, r0, l1, r1
		if atStart {
			q = [4]Point{sub(s.l0, ext), sub(s.r0, ext), s.l0, s.r0}
		} else {
			q = [4]Point{s.l1, s.r1, add(s.l1, ext), add(s.r1, ext)}
		}
		l0 := out.addVert(q[0].X, q[0].Y, 0, 0.5)
		r0 := out.addVert(q[1].X, q[1].Y, 1, 0.5)
		l1 := out.addVert(q[2].X, q[2].Y, 0, 0.5)
		r1 := out.addVert(q[3].X, q[3].Y, 1, 0.5)
		out.addTri(l0, r0, l1)
		out.addTri(l1, r0, r1)

	case CapRound, CapBevel:
		segs := bevelCapSegs
		if style == CapRound {
			segs = int(math.Ceil(math.Pi * half / capSegmentLength))
			if segs < minRoundCapSegs {
				segs = minRoundCapSegs
			}
			if segs > maxRoundCapSegs {
				segs = maxRoundCapSegs
			}
		}

		// The fan center sits slightly inside the stroke so the cap
		// overlaps the first segment quad instead of abutting it.
		eps := fringe * 0.5
		var p Point
		var a0, u0, u1 float64
		if atStart {
			p = add(s.p0, scale(s.dir, eps))
			a0 = math.Atan2(perp(s.dir).Y, perp(s.dir).X)
			u0, u1 = 0, 1
		} else {
			p = sub(s.p1, scale(s.dir, eps))
			a0 = math.Atan2(-perp(s.dir).Y, -perp(s.dir).X)
			u0, u1 = 1, 0
		}

		center := out.addVert(p.X, p.Y, 0.5, 0.5)
		prev := uint32(0)
		for i := 0; i <= segs; i++ {
			t := float64(i) / float64(segs)
			ang := a0 + math.Pi*t
			rim := Point{
				X: p.X + math.Cos(ang)*half,
				Y: p.Y + math.Sin(ang)*half,
			}
			cur := out.addVert(rim.X, rim.Y, u0+(u1-u0)*t, 0.5)
			if i > 0 {
				out.addTri(center, prev, cur)
			}
			prev = cur
		}
	}
}
