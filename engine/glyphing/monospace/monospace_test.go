package monospace

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
	"golang.org/x/image/math/fixed"
)

func TestMonospaceLatin(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "puashape.glyphs")
	defer teardown()
	//
	sh := Shaper(fixed.I(10), nil, nil)
	seq, err := sh.Shape(strings.NewReader("Hello"), nil, nil, glyphing.Params{})
	require.NoError(t, err)
	assert.Len(t, seq.Glyphs, 5)
	assert.Equal(t, fixed.I(50), seq.Width())
	assert.Equal(t, 4, seq.Glyphs[4].ClusterID)
}

func TestMonospaceCodedText(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "puashape.glyphs")
	defer teardown()
	//
	sh := Shaper(0, indic.NewDocument(nil), nil)
	seq, err := sh.Shape(strings.NewReader("धर्म"), nil, nil, glyphing.Params{})
	require.NoError(t, err)
	require.Len(t, seq.Glyphs, 3)
	assert.Equal(t, []rune{0x0927, 0xE000, 0x092E}, seq.CodePoints())
	assert.Equal(t, sfnt.GlyphIndex(300), seq.Glyphs[1].GID)
	assert.Equal(t, 2, seq.Glyphs[2].ClusterID)
	assert.Equal(t, fixed.I(30), seq.Width())
	//
	_, err = sh.Shape(strings.NewReader("क"), nil, nil, glyphing.Params{Direction: glyphing.TopToBottom})
	assert.Equal(t, core.EINVALID, core.Code(err))
}
