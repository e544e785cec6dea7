package ligature

import (
	"github.com/npillmayer/puashape/core"
	"golang.org/x/image/font/sfnt"
)

// BindGlyphs looks up the glyph a font assigns to each row's PUA code-point
// and returns a copy of rows carrying these glyph indices. Rows for which the
// font has no glyph keep their glyph index.
func BindGlyphs(rows []Row, f *sfnt.Font) ([]Row, error) {
	if f == nil {
		return nil, core.Error(core.EMISSING, "no font to bind glyphs from")
	}
	var buf sfnt.Buffer
	bound := make([]Row, len(rows))
	missing := 0
	for i, row := range rows {
		bound[i] = row
		gid, err := f.GlyphIndex(&buf, row.PUA)
		if err != nil {
			return nil, core.WrapError(err, core.EINVALID, "font cmap lookup for %U", row.PUA)
		}
		if gid == 0 {
			missing++
			continue
		}
		bound[i].Glyph = int(gid)
	}
	if missing > 0 {
		tracer().Infof("font has no glyphs for %d of %d ligatures", missing, len(rows))
	}
	return bound, nil
}
