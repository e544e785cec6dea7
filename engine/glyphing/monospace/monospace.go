package monospace

import (
	"io"
	"strings"
	"unicode/utf8"

	"github.com/npillmayer/puashape/core"
	"github.com/npillmayer/puashape/engine/glyphing"
	"github.com/npillmayer/puashape/engine/glyphing/indic"
	"github.com/npillmayer/uax/grapheme"
	"github.com/npillmayer/uax/segment"
	"github.com/npillmayer/uax/uax11"
	"golang.org/x/image/font/sfnt"
	"golang.org/x/image/math/fixed"
)

type msshape struct {
	em               fixed.Int26_6
	doc              *indic.Document
	graphemeSplitter *segment.Segmenter
	context          *uax11.Context
}

// Shaper creates a shaper for monospace output, shaping Indic scripts as
// detected for doc. The width of a cell is em; if it is zero, it will be set
// to 10. If doc is nil, the global document is used. If context is nil,
// ambiguous widths are resolved for a Latin context.
func Shaper(em fixed.Int26_6, doc *indic.Document, context *uax11.Context) glyphing.Shaper {
	if em == 0 {
		em = fixed.I(10)
	}
	if doc == nil {
		doc = indic.Global()
	}
	if context == nil {
		context = uax11.LatinContext
	}
	grapheme.SetupGraphemeClasses()
	onGraphemes := grapheme.NewBreaker(1)
	return &msshape{
		em:               em,
		doc:              doc,
		graphemeSplitter: segment.NewSegmenter(onGraphemes),
		context:          context,
	}
}

// Shape creates a glyph sequence from a text. Cluster IDs are positions of
// grapheme clusters within the PUA-coded text.
func (ms *msshape) Shape(text io.RuneReader, buf []glyphing.ShapedGlyph, ctx [][]rune,
	p glyphing.Params) (glyphing.GlyphSequence, error) {
	//
	if text == nil {
		return glyphing.GlyphSequence{}, nil
	}
	if p.Direction != glyphing.LeftToRight {
		return glyphing.GlyphSequence{}, core.Error(core.EINVALID,
			"monospace output is left-to-right only, not direction %d", p.Direction)
	}
	var b strings.Builder
	for {
		r, _, err := text.ReadRune()
		if err == io.EOF {
			break
		} else if err != nil {
			return glyphing.GlyphSequence{}, core.WrapError(err, core.EMALFORMED, "cannot read text")
		}
		b.WriteRune(r)
	}
	coded := ms.doc.ProcessText(b.String())
	seq := glyphing.GlyphSequence{Glyphs: buf[:0]}
	if seq.Glyphs == nil {
		seq.Glyphs = make([]glyphing.ShapedGlyph, 0, 256)
	}
	ms.graphemeSplitter.Init(strings.NewReader(coded))
	i := 0
	for ms.graphemeSplitter.Next() {
		grphm := ms.graphemeSplitter.Bytes()
		w := uax11.Width(grphm, ms.context)
		codepoint, _ := utf8.DecodeRune(grphm)
		g := glyphing.ShapedGlyph{
			XAdvance:  fixed.Int26_6(w) * ms.em,
			ClusterID: i,
			CodePoint: codepoint,
		}
		if sh := indic.ShaperFor(codepoint); sh != nil && sh.IsPUA(codepoint) {
			if gid := sh.GlyphIndex(codepoint); gid > 0 && gid <= 0xFFFF {
				g.GID = sfnt.GlyphIndex(gid)
			}
		}
		seq.Glyphs = append(seq.Glyphs, g)
		seq.W += g.XAdvance
		i += utf8.RuneCount(grphm)
	}
	tracer().Debugf("monospace: %d glyphs, width %d", len(seq.Glyphs), seq.W)
	return seq, nil
}
