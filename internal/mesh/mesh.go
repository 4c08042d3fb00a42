// Package mesh generates anti-aliased triangle meshes from flattened
// polylines.
//
// The stroke generator turns a point sequence plus a stroke style into
// a triangle list whose vertices carry a coverage coordinate U: 0 and 1
// on the two anti-aliased edges, 0.5 on the fully covered centerline
// and at cap tips. A fragment shader folds U as min(U, 1-U) and runs it
// through a smoothstep scaled to the device fringe, which is how edge
// anti-aliasing happens without multisampling.
//
// All scratch state lives in a caller-owned Arena so repeated calls do
// not allocate. The package keeps no global state; an Arena must not be
// shared between goroutines.
package mesh

import "math"

// Point represents a 2D point (internal copy to avoid import cycle).
type Point struct {
	X, Y float64
}

// Vertex is a mesh output vertex: device-space position plus the
// coverage UV described in the package comment.
type Vertex struct {
	X, Y float32
	U, V float32
}

// Mesh is a triangle list. Indices are local to Verts; the caller
// rebases them when appending to a shared buffer.
type Mesh struct {
	Verts []Vertex
	Idx   []uint32
}

// Reset empties the mesh, keeping capacity.
func (m *Mesh) Reset() {
	m.Verts = m.Verts[:0]
	m.Idx = m.Idx[:0]
}

func (m *Mesh) addVert(x, y, u, v float64) uint32 {
	m.Verts = append(m.Verts, Vertex{
		X: float32(x), Y: float32(y),
		U: float32(u), V: float32(v),
	})
	return uint32(len(m.Verts) - 1)
}

func (m *Mesh) addTri(a, b, c uint32) {
	m.Idx = append(m.Idx, a, b, c)
}

// LineCap mirrors the public cap styles.
type LineCap int

const (
	CapButt LineCap = iota
	CapSquare
	CapRound
	CapBevel
)

// LineJoin mirrors the public joint styles.
type LineJoin int

const (
	JoinBevel LineJoin = iota
	JoinMiter
	JoinRound
)

// lineIntersection intersects the infinite lines through p with
// direction d and through q with direction e. Returns false for
// parallel lines.
func lineIntersection(p, d, q, e Point) (Point, bool) {
	denom := d.X*e.Y - d.Y*e.X
	if math.Abs(denom) < 1e-12 {
		return Point{}, false
	}
	t := ((q.X-p.X)*e.Y - (q.Y-p.Y)*e.X) / denom
	return Point{X: p.X + d.X*t, Y: p.Y + d.Y*t}, true
}

// segmentIntersection intersects the finite segments a0-a1 and b0-b1.
// Returns false if they do not cross.
func segmentIntersection(a0, a1, b0, b1 Point) (Point, bool) {
	d := Point{X: a1.X - a0.X, Y: a1.Y - a0.Y}
	e := Point{X: b1.X - b0.X, Y: b1.Y - b0.Y}
	denom := d.X*e.Y - d.Y*e.X
	if math.Abs(denom) < 1e-12 {
		return Point{}, false
	}
	t := ((b0.X-a0.X)*e.Y - (b0.Y-a0.Y)*e.X) / denom
	s := ((b0.X-a0.X)*d.Y - (b0.Y-a0.Y)*d.X) / denom
	if t < 0 || t > 1 || s < 0 || s > 1 {
		return Point{}, false
	}
	return Point{X: a0.X + d.X*t, Y: a0.Y + d.Y*t}, true
}

func sub(a, b Point) Point           { return Point{X: a.X - b.X, Y: a.Y - b.Y} }
func add(a, b Point) Point           { return Point{X: a.X + b.X, Y: a.Y + b.Y} }
func scale(a Point, s float64) Point { return Point{X: a.X * s, Y: a.Y * s} }
func dot(a, b Point) float64         { return a.X*b.X + a.Y*b.Y }
func cross(a, b Point) float64       { return a.X*b.Y - a.Y*b.X }
func perp(a Point) Point             { return Point{X: -a.Y, Y: a.X} }
func length(a Point) float64         { return math.Hypot(a.X, a.Y) }

func normalize(a Point) (Point, float64) {
	l := length(a)
	if l < 1e-12 {
		return Point{}, 0
	}
	return Point{X: a.X / l, Y: a.Y / l}, l
}

func clampF(x, lo, hi float64) float64 {
	if x < lo {
		return lo
	}
	if x > hi {
		return hi
	}
	return x
}
