package ligature

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/npillmayer/puashape/core"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/sfnt"
)

var testRows = []Row{
	{0xE000, 301, "0915 094D 0937", 0},       // KSSA
	{0xE001, 302, "091C 094D 091E", 0},       // JNYA
	{0xE002, 303, "0915 094D", 0},            // half KA
	{0xE003, 304, "094D 0930", 0},            // rakar
	{0xE004, 305, "0930 094D", 0},            // reph
	{0xE005, 306, "0930 094D", InitialForm},  // reph, initial
	{0xE006, 307, "0936 094D 0930", Suspect}, // SHRA
	{0xE007, 308, "0915 094D 0937 094D", 0},  // half KSSA
	{0xE008, 309, "0915 0935 0936 094D 0936 0936 0936 0936 0936 0936 0936", 0},
}

func TestTablesBuild(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "puashape.ligature")
	defer teardown()
	tracing.Select("puashape.ligature").SetTraceLevel(tracing.LevelDebug)
	//
	tables := Build(testRows, virama)
	require.Equal(t, 8, tables.Len(), "over-long row should have been dropped")
	assert.Equal(t, 4, tables.MaxLen())
	rec, ok := tables.Lookup(0xE000)
	require.True(t, ok)
	assert.Equal(t, 301, rec.Glyph)
	pua, ok := tables.Reverse([]rune{0x0915, 0x094D, 0x0937})
	assert.True(t, ok)
	assert.Equal(t, rune(0xE000), pua)
	_, ok = tables.Reverse([]rune{0x0915, 0x0937})
	assert.False(t, ok)
	rec, _ = tables.Lookup(0xE006)
	assert.True(t, rec.Is(Suspect))
	_, ok = tables.Lookup(0xE008)
	assert.False(t, ok)
}

func TestCollisionLowestWins(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "puashape.ligature")
	defer teardown()
	//
	tables := Build(testRows, virama)
	pua, ok := tables.Reverse([]rune{0x0930, 0x094D})
	require.True(t, ok)
	assert.Equal(t, rune(0xE004), pua)
	colls := tables.Collisions()
	require.Len(t, colls, 1)
	assert.Equal(t, rune(0xE004), colls[0].Winner)
	assert.Equal(t, []rune{0xE005}, colls[0].Losers)
	// both restore identically
	r1, _ := tables.Lookup(0xE004)
	r2, _ := tables.Lookup(0xE005)
	assert.True(t, r1.Equals(r2))
}

func TestFastIndexCoversAllEntries(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "puashape.ligature")
	defer teardown()
	//
	tables := Build(testRows, virama)
	tables.Each(func(pua rune, rec Record) bool {
		if !tables.HasPair(rec.At(0), rec.At(1)) {
			t.Errorf("fast index misses pair of %U = %s", pua, rec)
		}
		return true
	})
	assert.False(t, tables.HasPair(0x0937, 0x0915))
}

func TestPrefixSearch(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "puashape.ligature")
	defer teardown()
	//
	tables := Build(testRows, virama)
	got := tables.WithPrefix([]rune{0x0915, 0x094D})
	if diff := cmp.Diff([]rune{0xE000, 0xE002, 0xE007}, got); diff != "" {
		t.Errorf("prefix search mismatch (-want +got):\n%s", diff)
	}
	assert.Empty(t, tables.WithPrefix([]rune{0x0905}))
}

func TestNilTablesAreEmpty(t *testing.T) {
	var tables *Tables
	assert.Equal(t, 0, tables.Len())
	assert.False(t, tables.HasPair(0x0915, 0x094D))
	_, ok := tables.Lookup(0xE000)
	assert.False(t, ok)
}

func TestRowReader(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "puashape.ligature")
	defer teardown()
	//
	input := `# test table
E000  301  0915 094D 0937
E001  302  0924 094D 0930   ! suspect

E002  303  0915 094D   # half KA
E003  304  0930 094D   ! initial suspect
`
	rows, err := ReadRows(strings.NewReader(input))
	require.NoError(t, err)
	require.Len(t, rows, 4)
	assert.Equal(t, Row{PUA: 0xE001, Glyph: 302, Seq: "0924 094D 0930", Flags: Suspect}, rows[1])
	assert.Equal(t, "0915 094D", rows[2].Seq)
	assert.Equal(t, InitialForm|Suspect, rows[3].Flags)
	//
	_, err = ReadRows(strings.NewReader("E000 x 0915 094D\n"))
	require.Error(t, err)
	assert.Equal(t, core.EMALFORMED, core.Code(err))
	_, err = ReadRows(strings.NewReader("E000 12\n"))
	assert.Equal(t, core.EMALFORMED, core.Code(err))
}

func TestBindGlyphsNeedsFont(t *testing.T) {
	_, err := BindGlyphs(testRows, nil)
	assert.Equal(t, core.EMISSING, core.Code(err))
}

func TestBindGlyphsFromFont(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "puashape.ligature")
	defer teardown()
	//
	f, err := sfnt.Parse(goregular.TTF)
	require.NoError(t, err)
	rows := []Row{
		{PUA: 0xE000, Glyph: 301, Seq: "0915 094D 0937"},
		{PUA: 'A', Glyph: 1, Seq: "0915 094D"}, // the Go fonts have no PUA glyphs
	}
	bound, err := BindGlyphs(rows, f)
	require.NoError(t, err)
	var buf sfnt.Buffer
	gid, err := f.GlyphIndex(&buf, 'A')
	require.NoError(t, err)
	assert.Equal(t, 301, bound[0].Glyph)
	assert.Equal(t, int(gid), bound[1].Glyph)
	assert.Equal(t, 1, rows[1].Glyph, "input rows must not change")
}
