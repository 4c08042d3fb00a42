package text

import "golang.org/x/text/unicode/bidi"

// Segment is a contiguous run of text with a single direction. Start
// and End are rune indices into the original string.
type Segment struct {
	Text      string
	Start     int
	End       int
	Direction Direction
}

// Segmenter splits mixed-direction text into directional runs using
// the Unicode bidi algorithm. The zero value segments with a neutral
// base direction.
type Segmenter struct {
	// BaseDirection is the paragraph direction used to resolve
	// neutral characters. LeftToRight leaves resolution to the bidi
	// algorithm; RightToLeft forces an RTL paragraph base.
	BaseDirection Direction
}

// Split returns the directional runs of text in logical order.
func (s *Segmenter) Split(text string) []Segment {
	if text == "" {
		return nil
	}

	runes := []rune(text)
	levels := s.bidiLevels(text, len(runes))

	segments := make([]Segment, 0, 2)
	start := 0
	for i := 1; i <= len(runes); i++ {
		if i < len(runes) && levels[i] == levels[start] {
			continue
		}
		dir := LeftToRight
		if levels[start]%2 == 1 {
			dir = RightToLeft
		}
		segments = append(segments, Segment{
			Text:      string(runes[start:i]),
			Start:     start,
			End:       i,
			Direction: dir,
		})
		start = i
	}

	return segments
}

// bidiLevels resolves per-rune embedding levels (0 = LTR, odd = RTL).
func (s *Segmenter) bidiLevels(text string, n int) []int {
	levels := make([]int, n)

	base := bidi.Neutral
	if s.BaseDirection == RightToLeft {
		base = bidi.RightToLeft
	}

	var p bidi.Paragraph
	_, _ = p.SetString(text, bidi.DefaultDirection(base))

	ordering, err := p.Order()
	if err != nil {
		return levels
	}

	// Run.Pos returns rune indices with an inclusive end.
	for i := 0; i < ordering.NumRuns(); i++ {
		run := ordering.Run(i)
		startRune, endRune := run.Pos()
		level := 0
		if run.Direction() == bidi.RightToLeft {
			level = 1
		}
		for j := startRune; j <= endRune && j < n; j++ {
			levels[j] = level
		}
	}

	return levels
}
