package indic

import (
	"sync"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/npillmayer/puashape/core"
	"github.com/npillmayer/puashape/engine/glyphing/ligature"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var sampleWords = map[Script][]string{
	Devanagari: {"क्षत्रिय", "हिन्दी", "धर्म", "र्कि", "प्रेम", "ग्रे", "स्त्री", "विद्या",
		"कृष्ण", "र्के", "अर्थ", "क्", "रु", "पुस्तक", "ग्रंथ", "ड्डि", "द्रव्य"},
	Bangla: {"ক্ি", "বাংলা", "কর্মি", "কো", "ক্ষো", "কেবা", "র্কি", "ক্ষমা", "গুরু",
		"শ্রী", "সৌ", "ক্ত"},
	Gujarati: {"ગુજરાતી", "ધર્મ", "ર્કિ", "પ્રેમ", "ક્ષિ", "સ્ત્રી"},
	Kannada: {"ಕನ್ನಡ", "ರ್\u200dಕಿ", "ಕ್ಕೀ", "ಕ್ಕೆ", "ಕೊ", "ಕೈ",
		"ಪ್ರೇಮ", "ಕ್ಷ"},
	Telugu: {"తెలుగు", "క్కై", "కై", "ర్\u200dకి", "ప్రేమ", "క్ష"},
	Malayalam: {"മലയാളം", "ക്രെ", "ക്രൊ", "കൊ", "കു", "ക്കു", "പ്രേമം", "അവൻ",
		"ന്റെ", "മ്യ്രവ", "ക്ര്യാ", "ക്യക്ര", "ക്യ്രോ"},
	Oriya: {"ଓଡ଼ିଆ", "ର୍କେ", "କୋ", "କ୍ଷ", "କୈ", "ର୍କୋ"},
	Tamil: {"தமிழ்", "க்கொ", "கொ", "கோ", "கௌ", "ஸ்ரீ", "டி", "குரு", "க்ஷெ"},
}

func TestRoundTripWords(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "puashape.indic")
	defer teardown()
	tracing.Select("puashape.indic").SetTraceLevel(tracing.LevelError)
	//
	for script, words := range sampleWords {
		sh := Get(script)
		require.NotNil(t, sh, script.String())
		for _, word := range words {
			w := []rune(word)
			p := sh.ProcessWord(w)
			r := sh.RestoreWord(p)
			if diff := cmp.Diff(w, r); diff != "" {
				t.Errorf("%s: round trip of %q failed (-want +got):\n%s", script, word, diff)
			}
		}
	}
}

func TestRoundTripTableEntries(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "puashape.indic")
	defer teardown()
	tracing.Select("puashape.indic").SetTraceLevel(tracing.LevelError)
	//
	for _, sh := range All() {
		n := 0
		sh.Tables().Each(func(pua rune, rec ligature.Record) bool {
			w := rec.Runes()
			if r := sh.RestoreWord(sh.ProcessWord(w)); !assert.Equal(t, w, r,
				"%s: entry %U %s does not survive a round trip", sh.Script(), pua, rec) {
				return false
			}
			n++
			return true
		})
		assert.Equal(t, sh.Tables().Len(), n, sh.Script().String())
	}
}

func TestProcessDoesNotModifyInput(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "puashape.indic")
	defer teardown()
	//
	word := []rune("क्षत्रिय")
	orig := append([]rune(nil), word...)
	Get(Devanagari).ProcessWord(word)
	assert.Equal(t, orig, word)
}

func TestLongestMatchWins(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "puashape.indic")
	defer teardown()
	//
	sh := Get(Devanagari)
	kssa, ok := sh.Tables().Reverse([]rune{0x0915, 0x094D, 0x0937})
	require.True(t, ok)
	halfKa, ok := sh.Tables().Reverse([]rune{0x0915, 0x094D})
	require.True(t, ok)
	require.NotEqual(t, kssa, halfKa)
	assert.Equal(t, []rune{kssa}, sh.ProcessWord([]rune{0x0915, 0x094D, 0x0937}))
	assert.Equal(t, []rune{halfKa, 0x0924}, sh.ProcessWord([]rune{0x0915, 0x094D, 0x0924}))
	// five code-points beat the three code-point prefix
	kssma, ok := sh.Tables().Reverse([]rune{0x0915, 0x094D, 0x0937, 0x094D, 0x092E})
	require.True(t, ok)
	assert.Equal(t, []rune{kssma, 0x0940}, sh.ProcessWord([]rune("क्ष्मी")))
}

func TestBanglaPreBaseI(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "puashape.indic")
	defer teardown()
	//
	sh := Get(Bangla)
	word := []rune{0x0995, 0x09CD, 0x09BF}
	shaped := sh.ProcessWord(word)
	assert.Equal(t, []rune{0x09BF, 0x0995, 0x09CD}, shaped)
	assert.Equal(t, word, sh.RestoreWord(shaped))
}

func TestBanglaKhandaTa(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "puashape.indic")
	defer teardown()
	//
	sh := Get(Bangla)
	rec, ok := sh.Tables().Lookup(0x09CE)
	require.True(t, ok)
	assert.Equal(t, 66, rec.Glyph)
	assert.Equal(t, 3, rec.Len())
	assert.Equal(t, []rune{0x09A4, 0x09CD, 0x200D}, rec.Runes())
	pua, ok := sh.Tables().Reverse([]rune{0x09A4, 0x09CD, 0x200D})
	require.True(t, ok)
	assert.Equal(t, rune(0x09CE), pua)
	assert.Equal(t, []rune{0x09A4, 0x09CD, 0x200D}, sh.RestoreWord([]rune{0x09CE}))
	assert.Equal(t, 66, sh.GlyphIndex(0x09CE))
}

func TestFastIndexIsSound(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "puashape.indic")
	defer teardown()
	//
	for _, sh := range All() {
		tables := sh.Tables()
		require.Greater(t, tables.Len(), 0, sh.Script().String())
		tables.Each(func(pua rune, rec ligature.Record) bool {
			return assert.True(t, tables.HasPair(rec.At(0), rec.At(1)),
				"%s: pair of %U missing", sh.Script(), pua)
		})
	}
}

func TestScriptIsolation(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "puashape.indic")
	defer teardown()
	//
	for _, sh := range All() {
		for script, words := range sampleWords {
			if script == sh.Script() {
				continue
			}
			for _, word := range words {
				w := []rune(word)
				assert.Equal(t, w, sh.ProcessWord(w), "%s changed %s word %q", sh.Script(), script, word)
				assert.Equal(t, w, sh.RestoreWord(w), "%s changed %s word %q", sh.Script(), script, word)
			}
		}
	}
}

func TestMembership(t *testing.T) {
	assert.True(t, Get(Devanagari).Contains(0x0915))
	assert.True(t, Get(Devanagari).Contains(0xA8F2))
	assert.False(t, Get(Devanagari).Contains(0x0995))
	assert.True(t, Get(Bangla).IsPUA(0x09CE))
	assert.True(t, Get(Bangla).IsPUA(0xE3FF))
	assert.False(t, Get(Bangla).IsPUA(0xE400))
	assert.Equal(t, Tamil, ShaperFor(0x0B95).Script())
	assert.Equal(t, Telugu, ShaperFor(0xEE00).Script())
	assert.Nil(t, ShaperFor('a'))
	assert.Nil(t, Get(NoScript))
}

func TestGlyphIndex(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "puashape.indic")
	defer teardown()
	//
	sh := Get(Devanagari)
	assert.Equal(t, 300, sh.GlyphIndex(0xE000))
	assert.Equal(t, -1, sh.GlyphIndex(0xE1FF), "unused PUA code-point")
	assert.Equal(t, -1, sh.GlyphIndex(0x0915), "not a PUA code-point")
	assert.Equal(t, -1, sh.GlyphIndex(0xE200), "Bangla PUA code-point")
}

func TestRephVariants(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "puashape.indic")
	defer teardown()
	//
	sh := Get(Devanagari)
	assert.Equal(t, []rune{0x0927, 0xE000, 0x092E}, sh.ProcessWord([]rune("धर्म")))
	assert.Equal(t, []rune{0x093F, 0x0915, 0xE001}, sh.ProcessWord([]rune("र्कि")))
	assert.Equal(t, Reph, sh.Class(0xE001))
	assert.Equal(t, Half, sh.Class(0xE000))
	// no word-initial variant without a following consonant
	assert.Equal(t, []rune{0xE000}, sh.ProcessWord([]rune{0x0930, 0x094D}))
}

func TestOverrideTable(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "puashape.indic")
	defer teardown()
	//
	rows := []ligature.Row{
		{PUA: 0xE100, Glyph: 900, Seq: "0915 094D 0937"},
		{PUA: 0xE101, Glyph: 901, Seq: "0924 094D 0930"},
	}
	err := Get(Tamil).OverrideTable(rows)
	require.Error(t, err)
	assert.Equal(t, core.EINVALID, core.Code(err))
	//
	sh := Get(Devanagari)
	defer sh.ResetTable()
	err = sh.OverrideTable([]ligature.Row{{PUA: 0xE200, Glyph: 1, Seq: "0915 094D"}})
	assert.Equal(t, core.EINVALID, core.Code(err), "PUA out of range")
	err = sh.OverrideTable([]ligature.Row{{PUA: 0xE100, Glyph: 1, Seq: ""}})
	assert.Equal(t, core.EMALFORMED, core.Code(err))
	err = sh.OverrideTable(nil)
	assert.Equal(t, core.EMISSING, core.Code(err))
	assert.False(t, sh.Overridden())
	//
	require.NoError(t, sh.OverrideTable(rows))
	assert.True(t, sh.Overridden())
	assert.Equal(t, 2, sh.Tables().Len())
	assert.Equal(t, 900, sh.GlyphIndex(0xE100))
	assert.Equal(t, []rune{0xE100}, sh.ProcessWord([]rune{0x0915, 0x094D, 0x0937}))
	sh.ResetTable()
	assert.False(t, sh.Overridden())
	assert.Equal(t, -1, sh.GlyphIndex(0xE100))
}

func TestConcurrentFirstUse(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "puashape.indic")
	defer teardown()
	tracing.Select("puashape.indic").SetTraceLevel(tracing.LevelError)
	//
	sh := newShaper(tamil())
	word := []rune("க்கொ")
	results := make([][]rune, 8)
	var wg sync.WaitGroup
	for i := range results {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			results[i] = sh.RestoreWord(sh.ProcessWord(word))
		}(i)
	}
	wg.Wait()
	for _, r := range results {
		assert.Equal(t, word, r)
	}
}
