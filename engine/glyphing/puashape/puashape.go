package puashape

import (
	"io"
	"strings"
	"unicode"

	"github.com/npillmayer/puashape/core"
	"github.com/npillmayer/puashape/engine/glyphing"
	"github.com/npillmayer/puashape/engine/glyphing/indic"
	"github.com/npillmayer/uax/segment"
	"golang.org/x/image/font"
	"golang.org/x/image/font/sfnt"
)

type puashaper struct {
	doc *indic.Document
	buf sfnt.Buffer
}

// Shaper creates a shaper using the script detection and settings of doc.
// If doc is nil, the global document is used. Shapers are not safe for
// concurrent use.
func Shaper(doc *indic.Document) glyphing.Shaper {
	if doc == nil {
		doc = indic.Global()
	}
	return &puashaper{doc: doc}
}

// Shape creates a glyph sequence from a text. If p.Script names one of the
// supported scripts, only this script is shaped, regardless of detection.
// Otherwise scripts are detected on the text and shaped as configured for
// the document.
//
// If p.Font is set, glyph indices are taken from the font's character map
// and advances are set. Otherwise PUA code-points carry the glyph index of
// their ligature table entry and all other glyphs have glyph index 0.
func (ps *puashaper) Shape(text io.RuneReader, buf []glyphing.ShapedGlyph, ctx [][]rune,
	p glyphing.Params) (glyphing.GlyphSequence, error) {
	//
	if text == nil {
		return glyphing.GlyphSequence{}, nil
	}
	if p.Direction != glyphing.LeftToRight {
		return glyphing.GlyphSequence{}, core.Error(core.EINVALID,
			"Indic text must be shaped left-to-right, not direction %d", p.Direction)
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
	input := b.String()
	process := ps.doc.ProcessWord
	if sh := indic.Get(indic.ScriptFor(p.Script)); sh != nil {
		tracer().Debugf("shaping as %s", sh.Script())
		process = sh.ProcessWord
	} else {
		ps.doc.Detect(input)
	}
	seq := glyphing.GlyphSequence{Glyphs: buf[:0]}
	if seq.Glyphs == nil {
		seq.Glyphs = make([]glyphing.ShapedGlyph, 0, len(input))
	}
	pos := 0
	seg := segment.NewSegmenter(segment.NewSimpleWordBreaker())
	seg.Init(strings.NewReader(input))
	for seg.Next() {
		frag := []rune(seg.Text())
		for len(frag) > 0 {
			space, k := unicode.IsSpace(frag[0]), 1
			for k < len(frag) && unicode.IsSpace(frag[k]) == space {
				k++
			}
			run := frag[:k]
			frag = frag[k:]
			if space {
				for _, r := range run {
					seq = ps.append(seq, pos, r, p)
					pos++
				}
				continue
			}
			for _, r := range process(run) {
				seq = ps.append(seq, pos, r, p)
			}
			pos += len(run)
		}
	}
	return seq, nil
}

func (ps *puashaper) append(seq glyphing.GlyphSequence, cluster int, r rune,
	p glyphing.Params) glyphing.GlyphSequence {
	//
	g := glyphing.ShapedGlyph{ClusterID: cluster, CodePoint: r}
	sh := indic.ShaperFor(r)
	if p.Font != nil {
		gid, err := p.Font.GlyphIndex(&ps.buf, r)
		if err != nil {
			tracer().Errorf("font lookup for %U failed: %v", r, err)
		}
		g.GID = gid
		if gid == 0 && sh != nil && sh.IsPUA(r) {
			g.GID = tableGlyph(sh, r)
		}
		if g.GID != 0 {
			adv, err := p.Font.GlyphAdvance(&ps.buf, g.GID, p.PPEM, font.HintingNone)
			if err != nil {
				tracer().Errorf("no advance for glyph %d: %v", g.GID, err)
			}
			g.XAdvance = adv
		}
	} else if sh != nil && sh.IsPUA(r) {
		g.GID = tableGlyph(sh, r)
	}
	seq.Glyphs = append(seq.Glyphs, g)
	seq.W += g.XAdvance
	return seq
}

func tableGlyph(sh *indic.Shaper, pua rune) sfnt.GlyphIndex {
	if gid := sh.GlyphIndex(pua); gid > 0 && gid <= 0xFFFF {
		return sfnt.GlyphIndex(gid)
	}
	return 0
}
