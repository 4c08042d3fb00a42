package text

// GlyphID identifies a glyph within a font.
type GlyphID uint16

// Direction is the text direction of a run.
type Direction int

const (
	// LeftToRight is the direction of Latin and most other scripts.
	LeftToRight Direction = iota
	// RightToLeft is the direction of Arabic and Hebrew scripts.
	RightToLeft
)

func (d Direction) String() string {
	if d == RightToLeft {
		return "rtl"
	}
	return "ltr"
}

// Metrics holds vertical font metrics at a given size, in pixels.
// Ascent is positive above the baseline, Descent positive below.
type Metrics struct {
	Ascent    float64
	Descent   float64
	LineGap   float64
	XHeight   float64
	CapHeight float64
}

// LineHeight returns the recommended baseline-to-baseline distance.
func (m Metrics) LineHeight() float64 {
	return m.Ascent + m.Descent + m.LineGap
}

// Glyph is a single positioned glyph produced by shaping. X and Y are
// pen-relative offsets in pixels; XAdvance is how far the pen moves
// after the glyph. Cluster maps back to the rune index in the source
// string.
type Glyph struct {
	GID      GlyphID
	Cluster  int
	X        float64
	Y        float64
	XAdvance float64
}
