package text

import (
	"image"
	"image/draw"
	"math"

	"golang.org/x/image/font/sfnt"
	"golang.org/x/image/math/fixed"
	"golang.org/x/image/vector"

	"github.com/gogpu/vg"
)

// atlasPad is the empty border around each glyph in the atlas so that
// bilinear sampling never bleeds into a neighbor.
const atlasPad = 1

// AtlasEntry describes one rasterized glyph in the atlas. W and H are
// the bitmap size in pixels; BearingX and BearingY offset the bitmap's
// top-left corner from the pen position on the baseline. U0..V1 are
// normalized texture coordinates. Entries with W or H zero (spaces)
// produce no quad.
type AtlasEntry struct {
	W, H     int
	BearingX float64
	BearingY float64
	U0, V0   float64
	U1, V1   float64
}

// glyphKey identifies a rasterized glyph. Sizes are quantized to
// tenths of a pixel so nearby float sizes share bitmaps.
type glyphKey struct {
	source *FontSource
	gid    GlyphID
	size   int
}

// Atlas caches rasterized glyph bitmaps in a single RGBA texture
// managed by a vg.TextureProvider. Glyphs are packed left to right
// into shelves; a shelf closes when a glyph no longer fits its row.
//
// Atlas is not safe for concurrent use.
type Atlas struct {
	provider vg.TextureProvider
	handle   vg.TextureHandle
	size     int

	shelfX int
	shelfY int
	shelfH int

	entries map[glyphKey]*AtlasEntry
	buf     sfnt.Buffer
}

// NewAtlas creates an atlas backed by a size x size texture.
func NewAtlas(provider vg.TextureProvider, size int) (*Atlas, error) {
	if provider == nil {
		return nil, ErrNilProvider
	}
	handle, err := provider.CreateTexture(size, size)
	if err != nil {
		return nil, err
	}
	return &Atlas{
		provider: provider,
		handle:   handle,
		size:     size,
		entries:  make(map[glyphKey]*AtlasEntry),
	}, nil
}

// Texture returns the handle of the atlas texture.
func (a *Atlas) Texture() vg.TextureHandle { return a.handle }

// Glyph returns the atlas entry for a glyph at the face's size,
// rasterizing and uploading it on first use.
func (a *Atlas) Glyph(face *Face, gid GlyphID) (*AtlasEntry, error) {
	key := glyphKey{
		source: face.source,
		gid:    gid,
		size:   int(math.Round(face.size * 10)),
	}
	if e, ok := a.entries[key]; ok {
		return e, nil
	}

	e, pix, err := a.rasterize(face, gid)
	if err != nil {
		return nil, err
	}

	if e.W > 0 && e.H > 0 {
		x, y, err := a.place(e.W, e.H)
		if err != nil {
			return nil, err
		}
		if err := a.provider.UpdateTexture(a.handle, x, y, e.W, e.H, pix); err != nil {
			return nil, err
		}
		fsize := float64(a.size)
		e.U0 = float64(x) / fsize
		e.V0 = float64(y) / fsize
		e.U1 = float64(x+e.W) / fsize
		e.V1 = float64(y+e.H) / fsize

		vg.Logger().Debug("atlas glyph rasterized",
			"gid", uint16(gid), "w", e.W, "h", e.H, "x", x, "y", y)
	}

	a.entries[key] = e
	return e, nil
}

// place reserves a w x h region and returns its top-left corner.
func (a *Atlas) place(w, h int) (int, int, error) {
	if w > a.size || h > a.size {
		return 0, 0, ErrAtlasFull
	}
	if a.shelfX+w > a.size {
		a.shelfY += a.shelfH + atlasPad
		a.shelfX = 0
		a.shelfH = 0
	}
	if a.shelfY+h > a.size {
		return 0, 0, ErrAtlasFull
	}
	x, y := a.shelfX, a.shelfY
	a.shelfX += w + atlasPad
	if h > a.shelfH {
		a.shelfH = h
	}
	return x, y, nil
}

// rasterize renders a glyph outline into a premultiplied white RGBA
// bitmap. The returned pixels are e.W*e.H*4 bytes.
func (a *Atlas) rasterize(face *Face, gid GlyphID) (*AtlasEntry, []byte, error) {
	ppem := fixed.Int26_6(face.size * 64)

	segments, err := face.source.sfnt.LoadGlyph(&a.buf, sfnt.GlyphIndex(gid), ppem, nil)
	if err != nil {
		return nil, nil, err
	}

	minX, minY, maxX, maxY := segmentBounds(segments)
	if minX > maxX || minY > maxY {
		// No contours: a space or empty glyph.
		return &AtlasEntry{}, nil, nil
	}

	x0 := int(math.Floor(minX)) - atlasPad
	y0 := int(math.Floor(minY)) - atlasPad
	x1 := int(math.Ceil(maxX)) + atlasPad
	y1 := int(math.Ceil(maxY)) + atlasPad
	w, h := x1-x0, y1-y0

	r := vector.NewRasterizer(w, h)
	r.DrawOp = draw.Src

	ox, oy := float32(x0), float32(y0)
	started := false
	for _, seg := range segments {
		switch seg.Op {
		case sfnt.SegmentOpMoveTo:
			// sfnt contours close implicitly; the rasterizer needs it
			// explicit before the next contour starts.
			if started {
				r.ClosePath()
			}
			started = true
			r.MoveTo(fixedToF32(seg.Args[0].X)-ox, fixedToF32(seg.Args[0].Y)-oy)
		case sfnt.SegmentOpLineTo:
			r.LineTo(fixedToF32(seg.Args[0].X)-ox, fixedToF32(seg.Args[0].Y)-oy)
		case sfnt.SegmentOpQuadTo:
			r.QuadTo(
				fixedToF32(seg.Args[0].X)-ox, fixedToF32(seg.Args[0].Y)-oy,
				fixedToF32(seg.Args[1].X)-ox, fixedToF32(seg.Args[1].Y)-oy,
			)
		case sfnt.SegmentOpCubeTo:
			r.CubeTo(
				fixedToF32(seg.Args[0].X)-ox, fixedToF32(seg.Args[0].Y)-oy,
				fixedToF32(seg.Args[1].X)-ox, fixedToF32(seg.Args[1].Y)-oy,
				fixedToF32(seg.Args[2].X)-ox, fixedToF32(seg.Args[2].Y)-oy,
			)
		}
	}
	if started {
		r.ClosePath()
	}

	alpha := image.NewAlpha(image.Rect(0, 0, w, h))
	r.Draw(alpha, alpha.Bounds(), image.Opaque, image.Point{})

	// White glyph, premultiplied: every channel carries the coverage.
	pix := make([]byte, w*h*4)
	for i, c := range alpha.Pix {
		pix[i*4+0] = c
		pix[i*4+1] = c
		pix[i*4+2] = c
		pix[i*4+3] = c
	}

	return &AtlasEntry{
		W:        w,
		H:        h,
		BearingX: float64(x0),
		BearingY: float64(y0),
	}, pix, nil
}

// segmentBounds returns the outline bounding box in pixels. sfnt uses
// a y-down coordinate system, so ink above the baseline has negative Y.
func segmentBounds(segments sfnt.Segments) (minX, minY, maxX, maxY float64) {
	minX, minY = math.Inf(1), math.Inf(1)
	maxX, maxY = math.Inf(-1), math.Inf(-1)
	for _, seg := range segments {
		n := 1
		switch seg.Op {
		case sfnt.SegmentOpQuadTo:
			n = 2
		case sfnt.SegmentOpCubeTo:
			n = 3
		}
		for i := 0; i < n; i++ {
			x := fixedToFloat(seg.Args[i].X)
			y := fixedToFloat(seg.Args[i].Y)
			minX = math.Min(minX, x)
			minY = math.Min(minY, y)
			maxX = math.Max(maxX, x)
			maxY = math.Max(maxY, y)
		}
	}
	return minX, minY, maxX, maxY
}

// fixedToF32 converts 26.6 fixed point to float32 pixels.
func fixedToF32(v fixed.Int26_6) float32 {
	return float32(v) / 64
}
