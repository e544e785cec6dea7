package indic

import (
	"unicode"

	"github.com/npillmayer/puashape/engine/glyphing/ligature"
	"golang.org/x/text/unicode/rangetable"
)

// Class is the shaping category of a code-point. Categories below Conjunct
// apply to Unicode characters, the others to PUA code-points, where they are
// derived from a ligature's decomposition.
type Class uint8

// Shaping categories.
const (
	Other       Class = iota
	Consonant         // base consonant
	Vowel             // independent vowel
	Matra             // dependent vowel sign, including length marks
	Virama            // halant
	Nukta             // consonant modifier dot
	Modifier          // candrabindu, anusvara, visarga
	Joiner            // ZWJ, ZWNJ
	Conjunct          // ligature acting as base consonant
	Half              // half form, also non-initial reph
	PostBase          // post-base or below-base consonant form
	PreBaseForm       // consonant form displayed before its base
	Reph              // word-initial reph
)

var classNames = []string{"Other", "Consonant", "Vowel", "Matra", "Virama", "Nukta",
	"Modifier", "Joiner", "Conjunct", "Half", "PostBase", "PreBaseForm", "Reph"}

func (c Class) String() string {
	if int(c) < len(classNames) {
		return classNames[c]
	}
	return "?"
}

// classMask is a set of classes.
type classMask uint16

func maskOf(classes ...Class) classMask {
	var m classMask
	for _, c := range classes {
		m |= 1 << c
	}
	return m
}

func (m classMask) has(c Class) bool {
	return m&(1<<c) != 0
}

// Bases are the classes which may carry a cluster.
var bases = maskOf(Consonant, Conjunct)

// classByOffset classifies a character by its offset within its script's
// Unicode block. All Indic blocks follow the ISCII layout; deviations are
// configured per script.
func classByOffset(o rune) Class {
	switch {
	case o >= 0x01 && o <= 0x03:
		return Modifier
	case o >= 0x04 && o <= 0x14, o == 0x60, o == 0x61:
		return Vowel
	case o >= 0x15 && o <= 0x39, o >= 0x58 && o <= 0x5F:
		return Consonant
	case o == 0x3C:
		return Nukta
	case o == 0x4D:
		return Virama
	case o == 0x3A, o == 0x3B, o >= 0x3E && o <= 0x4C, o == 0x4E, o == 0x4F,
		o >= 0x55 && o <= 0x57, o == 0x62, o == 0x63:
		return Matra
	}
	return Other
}

// classOfPUA derives the class of a ligature from its record.
func classOfPUA(rec ligature.Record, static func(rune) Class) Class {
	switch {
	case rec.Is(ligature.LeadingVirama):
		return PostBase
	case rec.Is(ligature.TrailingVirama) && !rec.Is(ligature.ViramaExempt):
		return Half
	case static(rec.At(0)) == Vowel:
		return Vowel
	}
	return Conjunct
}

// --- Rune sets -------------------------------------------------------------

// runes creates a set of code-points.
func runes(rs ...rune) *unicode.RangeTable {
	return rangetable.New(rs...)
}

// span creates a set of consecutive code-points.
func span(from, to rune) []rune {
	rs := make([]rune, 0, to-from+1)
	for r := from; r <= to; r++ {
		rs = append(rs, r)
	}
	return rs
}

func without(rs []rune, excl ...rune) []rune {
	out := rs[:0:0]
outer:
	for _, r := range rs {
		for _, x := range excl {
			if r == x {
				continue outer
			}
		}
		out = append(out, r)
	}
	return out
}

func in(set *unicode.RangeTable, r rune) bool {
	return set != nil && unicode.Is(set, r)
}

// skipSet tells a pass which items it may move across. An item is skipped
// if its class is in mask and it is not listed in except.
type skipSet struct {
	mask   classMask
	except *unicode.RangeTable
}

func skipping(classes ...Class) skipSet {
	return skipSet{mask: maskOf(classes...)}
}

func (s skipSet) but(rs ...rune) skipSet {
	s.except = runes(rs...)
	return s
}

func (s skipSet) has(t *table, r rune) bool {
	return s.mask.has(t.class(r)) && !in(s.except, r)
}
