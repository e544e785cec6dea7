package puashape

import (
	"strings"
	"testing"

	"github.com/npillmayer/puashape/core"
	"github.com/npillmayer/puashape/engine/glyphing"
	"github.com/npillmayer/puashape/engine/glyphing/indic"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/image/font/sfnt"
	"golang.org/x/text/language"
)

func TestShapeDevanagari(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "puashape.glyphs")
	defer teardown()
	//
	sh := Shaper(indic.NewDocument(nil))
	params := glyphing.Params{Script: language.MustParseScript("Deva")}
	seq, err := sh.Shape(strings.NewReader("क्षत्रिय धर्म"), nil, nil, params)
	require.NoError(t, err)
	assert.Equal(t, []rune{0xE026, 0x093F, 0xE028, 0x092F, ' ', 0x0927, 0xE000, 0x092E}, seq.CodePoints())
	clusters := make([]int, len(seq.Glyphs))
	for i, g := range seq.Glyphs {
		clusters[i] = g.ClusterID
	}
	assert.Equal(t, []int{0, 0, 0, 0, 8, 9, 9, 9}, clusters)
	assert.Equal(t, sfnt.GlyphIndex(indic.Get(indic.Devanagari).GlyphIndex(0xE026)), seq.Glyphs[0].GID)
	assert.Equal(t, sfnt.GlyphIndex(300), seq.Glyphs[6].GID)
	assert.Equal(t, sfnt.GlyphIndex(0), seq.Glyphs[1].GID)
	assert.Zero(t, seq.Width(), "no font, no advances")
}

func TestShapeDetectsScripts(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "puashape.glyphs")
	defer teardown()
	//
	doc := indic.NewDocument(nil)
	sh := Shaper(doc)
	seq, err := sh.Shape(strings.NewReader("க்கொ"), nil, nil, glyphing.Params{})
	require.NoError(t, err)
	assert.True(t, doc.Contains(indic.Tamil))
	assert.Equal(t, []rune{0xEC00, 0x0BC6, 0x0B95, 0x0BBE}, seq.CodePoints())
	assert.Equal(t, "க்கொ", string(doc.RestoreWord(seq.CodePoints())))
}

func TestShapeLatinPassesThrough(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "puashape.glyphs")
	defer teardown()
	//
	sh := Shaper(nil)
	seq, err := sh.Shape(strings.NewReader("a b"), make([]glyphing.ShapedGlyph, 0, 8), nil, glyphing.Params{})
	require.NoError(t, err)
	assert.Equal(t, []rune("a b"), seq.CodePoints())
	assert.Equal(t, 2, seq.Glyphs[2].ClusterID)
	//
	seq, err = sh.Shape(nil, nil, nil, glyphing.Params{})
	assert.NoError(t, err)
	assert.Empty(t, seq.Glyphs)
}

func TestShapeRejectsRightToLeft(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "puashape.glyphs")
	defer teardown()
	//
	sh := Shaper(nil)
	_, err := sh.Shape(strings.NewReader("क"), nil, nil, glyphing.Params{Direction: glyphing.RightToLeft})
	assert.Equal(t, core.EINVALID, core.Code(err))
}
