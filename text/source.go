package text

import (
	"bytes"
	"fmt"

	"github.com/go-text/typesetting/font"
	"golang.org/x/image/font/sfnt"
)

// FontSource holds a parsed font. It is parsed once through both font
// stacks: x/image/font/sfnt for outline access and metrics, and
// go-text/typesetting for HarfBuzz shaping. Both views share the same
// underlying data.
//
// A FontSource is heavyweight; parse once and share it. All methods
// are safe for concurrent use as long as callers do not share the
// sfnt.Buffer-taking methods' buffers.
type FontSource struct {
	data  []byte
	sfnt  *sfnt.Font
	face  *font.Font
	name  string
	units int
}

// NewFontSource parses TTF or OTF font data.
func NewFontSource(data []byte) (*FontSource, error) {
	if len(data) == 0 {
		return nil, ErrEmptyFontData
	}

	sf, err := sfnt.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidFont, err)
	}

	face, err := font.ParseTTF(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidFont, err)
	}

	name, err := sf.Name(nil, sfnt.NameIDFamily)
	if err != nil {
		name = ""
	}

	return &FontSource{
		data:  data,
		sfnt:  sf,
		face:  face.Font,
		name:  name,
		units: int(sf.UnitsPerEm()),
	}, nil
}

// Name returns the font family name, or "" when the font has none.
func (s *FontSource) Name() string { return s.name }

// UnitsPerEm returns the font's design units per em.
func (s *FontSource) UnitsPerEm() int { return s.units }

// Face returns a view of the font at the given pixel size.
func (s *FontSource) Face(size float64) *Face {
	return &Face{source: s, size: size}
}

// GlyphIndex returns the glyph for a rune, or 0 when the font has no
// glyph for it.
func (s *FontSource) GlyphIndex(r rune) GlyphID {
	gid, err := s.sfnt.GlyphIndex(nil, r)
	if err != nil {
		return 0
	}
	return GlyphID(gid)
}
