package text

import (
	xfont "golang.org/x/image/font"
	"golang.org/x/image/font/sfnt"
	"golang.org/x/image/math/fixed"
)

// Face is a FontSource bound to a pixel size. Faces are cheap; create
// one per size rather than resizing.
type Face struct {
	source *FontSource
	size   float64
}

// Source returns the underlying font.
func (f *Face) Source() *FontSource { return f.source }

// Size returns the face size in pixels.
func (f *Face) Size() float64 { return f.size }

// Metrics returns the face's vertical metrics in pixels.
func (f *Face) Metrics() Metrics {
	var buf sfnt.Buffer
	ppem := fixed.Int26_6(f.size * 64)
	m, err := f.source.sfnt.Metrics(&buf, ppem, xfont.HintingFull)
	if err != nil {
		return Metrics{}
	}
	// Hinted Height can round below Ascent+Descent; a negative gap
	// would make LineHeight smaller than the glyph extent.
	gap := fixedToFloat(m.Height - m.Ascent - m.Descent)
	if gap < 0 {
		gap = 0
	}
	return Metrics{
		Ascent:    fixedToFloat(m.Ascent),
		Descent:   fixedToFloat(m.Descent),
		LineGap:   gap,
		XHeight:   fixedToFloat(m.XHeight),
		CapHeight: fixedToFloat(m.CapHeight),
	}
}

// HasGlyph reports whether the font has a glyph for r.
func (f *Face) HasGlyph(r rune) bool {
	return f.source.GlyphIndex(r) != 0
}

// GlyphAdvance returns the advance width of a glyph in pixels without
// shaping. Shaped text should use the advances from Shape instead.
func (f *Face) GlyphAdvance(gid GlyphID) float64 {
	var buf sfnt.Buffer
	ppem := fixed.Int26_6(f.size * 64)
	adv, err := f.source.sfnt.GlyphAdvance(&buf, sfnt.GlyphIndex(gid), ppem, xfont.HintingFull)
	if err != nil {
		return 0
	}
	return fixedToFloat(adv)
}

// floatToFixed converts a pixel value to 26.6 fixed point.
func floatToFixed(v float64) fixed.Int26_6 {
	return fixed.Int26_6(v * 64)
}

// fixedToFloat converts a 26.6 fixed point value to pixels.
func fixedToFloat(v fixed.Int26_6) float64 {
	return float64(v) / 64
}
