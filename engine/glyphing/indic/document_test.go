package indic

import (
	"testing"

	"github.com/npillmayer/schuko/schukonf/testconfig"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDetectSamples(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "puashape.indic")
	defer teardown()
	//
	doc := NewDocument(nil)
	assert.False(t, doc.Exhaustive())
	// 16 code-points, sampled at 0, 5, 10 and 15
	text := "abcdefghijklmकxy"
	assert.False(t, doc.Detect(text), "sparse occurrence should be missed")
	assert.False(t, doc.Contains(Devanagari))
	//
	doc = NewDocument(testconfig.Conf{KeyDetection: "exhaustive"})
	assert.True(t, doc.Exhaustive())
	assert.True(t, doc.Detect(text))
	assert.True(t, doc.Contains(Devanagari))
}

func TestDetectShortText(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "puashape.indic")
	defer teardown()
	//
	doc := NewDocument(nil)
	assert.True(t, doc.Detect("abcdক"), "every 2nd code-point of short texts is inspected")
	assert.True(t, doc.Contains(Bangla))
	assert.False(t, doc.Contains(Devanagari))
}

func TestDetectIsMonotone(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "puashape.indic")
	defer teardown()
	//
	doc := NewDocument(nil)
	require.True(t, doc.Detect("தமிழ்"))
	assert.False(t, doc.Detect("தமிழ்"), "script is known already")
	assert.False(t, doc.Detect("hello world"))
	assert.True(t, doc.Contains(Tamil))
	assert.False(t, doc.Contains(NoScript))
}

func TestProcessTextRoundTrip(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "puashape.indic")
	defer teardown()
	tracing.Select("puashape.indic").SetTraceLevel(tracing.LevelError)
	//
	for _, text := range []string{
		"क्षत्रिय धर्म, हिन्दी  पुस्तक",
		"কর্মি ক্ষমা and தமிழ் க்கொ",
		"ಕನ್ನಡ ಪ್ರೇಮ\tతెలుగు క్కై\nമലയാളം ക്രൊ ର୍କୋ ગુજરાતી",
		"plain text only",
		"",
	} {
		doc := NewDocument(testconfig.Conf{KeyDetection: "exhaustive"})
		shaped := doc.ProcessText(text)
		assert.Equal(t, text, doc.RestoreText(shaped), "round trip of %q", text)
	}
	doc := NewDocument(nil)
	shaped := doc.ProcessText("क्षत्रिय धर्म")
	assert.Equal(t, string([]rune{0xE026, 0x093F, 0xE028, 0x092F, ' ', 0x0927, 0xE000, 0x092E}), shaped)
}

func TestRestoreNeedsDetection(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "puashape.indic")
	defer teardown()
	//
	doc := NewDocument(nil)
	shaped := string([]rune{0x093F, 0xE026})
	assert.Equal(t, shaped, doc.RestoreText(shaped))
	doc.Detect("क")
	assert.Equal(t, "क्षि", doc.RestoreText(shaped))
}

func TestDisabledScripts(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "puashape.indic")
	defer teardown()
	//
	doc := NewDocument(testconfig.Conf{KeyScripts: "Deva, tamil, klingon"})
	assert.True(t, doc.Enabled(Devanagari))
	assert.True(t, doc.Enabled(Tamil))
	assert.False(t, doc.Enabled(Bangla))
	text := "ক্ষমা"
	assert.Equal(t, text, doc.ProcessText(text))
	assert.True(t, doc.Contains(Bangla), "detection does not depend on enabled scripts")
	assert.NotEqual(t, "க்கொ", doc.ProcessText("க்கொ"))
}

func TestNormalization(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "puashape.indic")
	defer teardown()
	//
	doc := NewDocument(testconfig.Conf{KeyNormalize: "NFC"})
	decomposed := "\u0995\u09C7\u09BE" // KA + E + AA
	shaped := doc.ProcessText(decomposed)
	assert.Equal(t, doc.ProcessText("কো"), shaped)
	assert.Equal(t, "কো", doc.RestoreText(shaped))
}

func TestDocumentWords(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "puashape.indic")
	defer teardown()
	//
	doc := NewDocument(nil)
	word := []rune("क्षत्रिय")
	assert.Equal(t, word, doc.ProcessWord(word), "nothing detected yet")
	doc.Detect("क्षत्रिय")
	shaped := doc.ProcessWord(word)
	assert.NotEqual(t, word, shaped)
	assert.Equal(t, word, doc.RestoreWord(shaped))
}

func TestDocumentConfiguration(t *testing.T) {
	doc := NewDocument(testconfig.Conf{KeyDiagnostics: "trace"})
	assert.Equal(t, TraceObserver{}, doc.obs())
	doc.SetObserver(nil)
	assert.Nil(t, doc.obs())
	assert.Same(t, Global(), Global())
}
