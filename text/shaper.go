package text

import (
	"sync"

	"github.com/go-text/typesetting/di"
	"github.com/go-text/typesetting/font"
	"github.com/go-text/typesetting/language"
	"github.com/go-text/typesetting/shaping"
)

// Shaper converts runs of text into positioned glyphs using HarfBuzz
// shaping via go-text/typesetting. It applies ligature substitution,
// kerning pairs, and complex-script glyph selection.
//
// Shaper is safe for concurrent use. HarfbuzzShaper instances have
// internal mutable buffers and are pooled; the parsed *font.Font held
// by FontSource is read-only and shared across calls.
type Shaper struct {
	pool sync.Pool
}

// NewShaper creates a Shaper.
func NewShaper() *Shaper {
	return &Shaper{
		pool: sync.Pool{
			New: func() any {
				return &shaping.HarfbuzzShaper{}
			},
		},
	}
}

// Shape shapes a single-direction run of text with the given face and
// returns positioned glyphs. Glyph positions are relative to a pen at
// the origin; callers add the baseline position.
func (s *Shaper) Shape(face *Face, run string, dir Direction) []Glyph {
	if face == nil || run == "" {
		return nil
	}

	runes := []rune(run)

	// font.Face is NOT safe for concurrent use; font.NewFace is a
	// cheap wrapper around the shared thread-safe *Font.
	input := shaping.Input{
		Text:      runes,
		RunStart:  0,
		RunEnd:    len(runes),
		Direction: mapDirection(dir),
		Face:      font.NewFace(face.source.face),
		Size:      floatToFixed(face.size),
		Script:    detectScript(runes),
		Language:  language.NewLanguage("en"),
	}

	hb := s.pool.Get().(*shaping.HarfbuzzShaper)
	output := hb.Shape(input)
	s.pool.Put(hb)

	return convertGlyphs(output.Glyphs)
}

// mapDirection converts a Direction to go-text's di.Direction.
func mapDirection(d Direction) di.Direction {
	if d == RightToLeft {
		return di.DirectionRTL
	}
	return di.DirectionLTR
}

// detectScript returns the script of the first non-space rune. Mixed
// scripts within one run keep the first script; the segmenter splits
// runs by direction before shaping, which covers the common cases.
func detectScript(runes []rune) language.Script {
	for _, r := range runes {
		if r == ' ' || r == '\t' || r == '\n' || r == '\r' {
			continue
		}
		return language.LookupScript(r)
	}
	return language.Latin
}

// convertGlyphs turns go-text output glyphs into pen-relative Glyphs.
func convertGlyphs(glyphs []shaping.Glyph) []Glyph {
	if len(glyphs) == 0 {
		return nil
	}

	result := make([]Glyph, len(glyphs))

	var x float64
	for i, g := range glyphs {
		// XOffset and YOffset are fine-grained adjustments on top of
		// the current pen position. go-text's Y axis points up.
		result[i] = Glyph{
			GID:     GlyphID(uint16(g.GlyphID)),
			Cluster: g.TextIndex(),
			X:       x + fixedToFloat(g.XOffset),
			Y:       -fixedToFloat(g.YOffset),
		}

		adv := fixedToFloat(g.Advance)
		result[i].XAdvance = adv
		x += adv
	}

	return result
}
