package glyphing

import (
	"fmt"
	"io"

	"golang.org/x/image/font/sfnt"
	"golang.org/x/image/math/fixed"
	"golang.org/x/text/language"
)

// Direction is the direction to typeset text in.
type Direction int

// Direction to typeset text in.
const (
	LeftToRight Direction = iota
	RightToLeft           = 1
	TopToBottom           = 2
	BottomToTop           = 3
)

// A ShapedGlyph is a glyph of a font, together with the position of the
// code-points it has been produced from.
type ShapedGlyph struct {
	ClusterID int             // position of code-point(s) for this glyph in original string
	XAdvance  fixed.Int26_6   // advance after glyph has been set, 0 if no font given
	GID       sfnt.GlyphIndex // glyph index within font, 0 if unknown
	CodePoint rune            // code-point (possibly PUA) producing this glyph
}

func (g ShapedGlyph) String() string {
	return fmt.Sprintf("(GID=%d, %U, cluster=%d)", g.GID, g.CodePoint, g.ClusterID)
}

// A Shaper creates a sequence of glyphs from a sequence of
// Unicode code-points.
//
// Clients may provide additional information in Params, as well as
// textual context ([2][]rune).
type Shaper interface {
	Shape(io.RuneReader, []ShapedGlyph, [][]rune, Params) (GlyphSequence, error)
}

// Params collects shaping parameters.
type Params struct {
	Font      *sfnt.Font      // font to take glyph indices and advances from, optional
	PPEM      fixed.Int26_6   // pixels per em, for advances
	Direction Direction       // writing direction
	Script    language.Script // 4-letter ISO 15924 script identifier
	Language  language.Tag    // BCP 47 language tag
}

// GlyphSequence contains a sequence of shaped glyphs.
type GlyphSequence struct {
	Glyphs []ShapedGlyph // resulting sequence of glyphs
	W      fixed.Int26_6 // sum of advances
}

// Width returns the sum of all glyph advances.
func (seq GlyphSequence) Width() fixed.Int26_6 {
	return seq.W
}

// CodePoints returns the code-points of all glyphs in sequence.
func (seq GlyphSequence) CodePoints() []rune {
	rs := make([]rune, len(seq.Glyphs))
	for i, g := range seq.Glyphs {
		rs[i] = g.CodePoint
	}
	return rs
}
