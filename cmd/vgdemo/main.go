// Command vgdemo builds a frame of vector geometry and reports the
// buffers it produces. It exercises the whole mesh pipeline — strokes
// with joins and caps, convex and concave fills, gradients, scissoring
// — without needing a GPU: the output of a frame is plain vertex,
// index, and draw-call slices.
package main

import (
	"flag"
	"log"
	"math"

	"github.com/gogpu/vg"
)

func main() {
	var (
		width  = flag.Int("width", 800, "frame width")
		height = flag.Int("height", 600, "frame height")
		dpr    = flag.Float64("dpr", 1.0, "device pixel ratio")
	)
	flag.Parse()

	canvas, err := vg.NewCanvas()
	if err != nil {
		log.Fatalf("create canvas: %v", err)
	}
	if err := canvas.SetDevicePixelRatio(*dpr); err != nil {
		log.Fatalf("set device pixel ratio: %v", err)
	}

	drawBackground(canvas, *width, *height)
	drawShapes(canvas)
	drawStrokes(canvas)
	drawStar(canvas)
	drawScissored(canvas)

	verts := canvas.Vertices()
	indices := canvas.Indices()
	calls := canvas.DrawCalls()

	log.Printf("frame: %d vertices (%d bytes), %d indices, %d triangles, %d draw calls",
		len(verts), len(verts)*20, len(indices), len(indices)/3, len(calls))
	for i, call := range calls {
		log.Printf("  call %d: %d triangles at index %d, brush=%v scissor=%v",
			i, call.TriangleCount, call.IndexOffset,
			call.Brush.Kind != vg.BrushNone, call.ScissorExtent.X >= 0)
	}
}

func drawBackground(c *vg.Canvas, w, h int) {
	c.BeginPath()
	c.Rect(0, 0, float64(w), float64(h))
	c.SetBrush(vg.LinearGradient(0, 0, 0, float64(h),
		vg.RGB(0.1, 0.2, 0.4), vg.RGB(0.5, 0.5, 0.6)))
	c.FillConvex()
	c.ClearBrush()
}

func drawShapes(c *vg.Canvas) {
	// Overlapping translucent circles.
	for i, col := range []vg.RGBA{
		vg.RGB(1, 0.3, 0.3).WithAlpha(0.8),
		vg.RGB(0.3, 1, 0.3).WithAlpha(0.8),
		vg.RGB(0.3, 0.3, 1).WithAlpha(0.8),
	} {
		c.BeginPath()
		c.Circle(150+float64(i)*50, 150, 60)
		c.SetFillColor(col)
		c.FillConvex()
	}

	c.BeginPath()
	c.RoundedRect(350, 100, 120, 80, 15)
	c.SetBrush(vg.BoxGradient(350, 100, 120, 80, 15, 20,
		vg.RGB(1, 0.8, 0), vg.RGB(0.6, 0.4, 0)))
	c.FillConvex()
	c.ClearBrush()
}

func drawStrokes(c *vg.Canvas) {
	// A wavy cubic stroked with round joins.
	c.SaveState()
	c.Translate(150, 400)
	c.BeginPath()
	c.MoveTo(0, 0)
	c.BezierCurveTo(50, -50, 100, 50, 150, 0)
	c.BezierCurveTo(200, -30, 250, 30, 300, 0)
	c.SetStrokeColor(vg.RGB(1, 0.5, 0))
	c.SetStrokeWidth(6)
	c.SetLineJoin(vg.LineJoinRound)
	c.SetLineCap(vg.LineCapRound)
	c.Stroke()
	c.RestoreState()

	// Rotated square outlines with sharp miters.
	for i := 0; i < 8; i++ {
		c.SaveState()
		c.Translate(600, 150)
		c.Rotate(float64(i) * math.Pi / 4)
		c.BeginPath()
		c.Rect(-30, -30, 60, 60)
		c.SetStrokeColor(vg.RGB(1, 1, 1).WithAlpha(0.5))
		c.SetStrokeWidth(3)
		c.SetLineJoin(vg.LineJoinMiter)
		c.Stroke()
		c.RestoreState()
	}
}

func drawStar(c *vg.Canvas) {
	// Concave but star-shaped around its centroid, so the fan fill
	// still covers it exactly.
	c.SaveState()
	c.Translate(550, 400)
	c.BeginPath()
	points := 5
	for i := 0; i < points*2; i++ {
		angle := float64(i)*math.Pi/float64(points) - math.Pi/2
		r := 60.0
		if i%2 == 1 {
			r = 30.0
		}
		x, y := r*math.Cos(angle), r*math.Sin(angle)
		if i == 0 {
			c.MoveTo(x, y)
		} else {
			c.LineTo(x, y)
		}
	}
	c.ClosePath()
	c.SetFillColor(vg.RGB(1, 1, 0))
	c.FillConvex()
	c.RestoreState()
}

func drawScissored(c *vg.Canvas) {
	c.SaveState()
	c.SetScissor(300, 450, 200, 100)
	c.BeginPath()
	c.Circle(400, 500, 120)
	c.SetBrush(vg.RadialGradient(400, 500, 20, 120,
		vg.RGB(1, 1, 1), vg.RGB(0.2, 0.6, 1)))
	c.FillConvex()
	c.ClearBrush()
	c.RestoreState()
}
