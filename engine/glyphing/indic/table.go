package indic

import (
	"unicode"

	"github.com/npillmayer/puashape/engine/glyphing/ligature"
)

// definition holds everything which distinguishes one script from another:
// code-point ranges, table data and the sequence of reordering passes.
type definition struct {
	script       Script
	blocks       *unicode.RangeTable // Unicode blocks of the script
	base         rune                // first code-point of the primary block
	pua          *unicode.RangeTable // code-points the ligature tables use
	virama       rune
	classes      map[rune]Class // deviations from the ISCII layout
	rows         []ligature.Row
	reph         string   // decomposition of reph, if the script has one
	preBaseForms []string // decompositions of pre-base consonant forms
	passes       []pass
	overridable  bool // accepts font-supplied tables
}

// staticClass classifies Unicode characters, ignoring PUA code-points.
func (def *definition) staticClass(r rune) Class {
	if r == ligature.ZWJ || r == ligature.ZWNJ {
		return Joiner
	}
	if !unicode.Is(def.blocks, r) {
		return Other
	}
	if c, ok := def.classes[r]; ok {
		return c
	}
	o := r - def.base
	if o < 0 || o > 0x7F {
		return Other
	}
	return classByOffset(o)
}

// table is the compiled, immutable form of a script's ligature tables,
// together with the classes of its PUA code-points.
type table struct {
	def     *definition
	lig     *ligature.Tables
	classes map[rune]Class // PUA code-point → class
	initial map[rune]rune  // composition target → word-initial variant
}

func compile(def *definition, lig *ligature.Tables) *table {
	t := &table{
		def:     def,
		lig:     lig,
		classes: make(map[rune]Class, lig.Len()),
		initial: make(map[rune]rune),
	}
	lig.Each(func(pua rune, rec ligature.Record) bool {
		t.classes[pua] = classOfPUA(rec, def.staticClass)
		return true
	})
	var reph ligature.Record
	if def.reph != "" {
		reph = ligature.Parse(def.reph, def.virama)
	}
	for _, coll := range lig.Collisions() {
		for _, loser := range coll.Losers {
			rec, _ := lig.Lookup(loser)
			if !rec.Is(ligature.InitialForm) {
				continue
			}
			t.initial[coll.Winner] = loser
			if rec.Equals(reph) {
				t.classes[loser] = Reph
			}
		}
	}
	for _, seq := range def.preBaseForms {
		rec := ligature.Parse(seq, def.virama)
		if pua, ok := lig.Reverse(rec.Runes()); ok {
			t.classes[pua] = PreBaseForm
		}
	}
	tracer().Debugf("%s: compiled %d ligatures, %d initial variants",
		def.script, lig.Len(), len(t.initial))
	return t
}

func (t *table) class(r rune) Class {
	if c, ok := t.classes[r]; ok {
		return c
	}
	return t.def.staticClass(r)
}

func (t *table) isBase(r rune) bool {
	return bases.has(t.class(r))
}

// clusterStart scans backwards from the item before i across skippable
// items, a base and any half forms preceding it. It returns the position of
// the cluster's first item.
func (t *table) clusterStart(w []rune, i int, skip skipSet) (int, bool) {
	k := i - 1
	for k >= 0 && skip.has(t, w[k]) {
		k--
	}
	if k < 0 || !t.isBase(w[k]) {
		return 0, false
	}
	k--
	for k >= 0 && t.class(w[k]) == Half {
		k--
	}
	return k + 1, true
}

// clusterEnd scans forward from i across half forms, a base and skippable
// items. It returns the position after the cluster's last item.
func (t *table) clusterEnd(w []rune, i int, skip skipSet) (int, bool) {
	k := i
	for k < len(w) && t.class(w[k]) == Half {
		k++
	}
	if k >= len(w) || !t.isBase(w[k]) {
		return 0, false
	}
	k++
	for k < len(w) && skip.has(t, w[k]) {
		k++
	}
	return k, true
}

// block returns the code-points of a 128 code-point Unicode block.
func block(base rune) []rune {
	return span(base, base+0x7F)
}

// puaBlock returns the 512 code-points of a script's PUA range.
func puaBlock(from rune) []rune {
	return span(from, from+0x1FF)
}
