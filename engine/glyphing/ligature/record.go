package ligature

import (
	"fmt"
	"hash/fnv"
	"strconv"
	"strings"
)

// MaxSlots is the maximum number of code-points a ligature record may hold.
const MaxSlots = 10

// Joiners
const (
	ZWNJ rune = 0x200C
	ZWJ  rune = 0x200D
)

// Flags are derived properties of a record.
type Flags uint8

// Record flags. LeadingVirama, TrailingVirama and TrailingJoiner are derived
// from the slots, the others are set from table rows.
const (
	LeadingVirama  Flags = 1 << iota // post-base or below-base form
	TrailingVirama                   // half form, possibly followed by a joiner
	TrailingJoiner                   // last slot is ZWJ or ZWNJ
	ViramaExempt                     // final virama does not make this a half form
	Suspect                          // row data is known to be questionable
	InitialForm                      // word-initial variant of another row
)

func (f Flags) String() string {
	if f == 0 {
		return "-"
	}
	var names []string
	for i, n := range []string{"lead", "trail", "joiner", "exempt", "suspect", "initial"} {
		if f&(1<<i) != 0 {
			names = append(names, n)
		}
	}
	return strings.Join(names, "|")
}

// Key is the comparable part of a ligature record: its slots and its length.
// Unused slots are always zero, therefore two keys are equal exactly if their
// lengths and their used slots are equal.
type Key struct {
	slots [MaxSlots]rune
	n     int8
}

// KeyOf creates a key from a run of code-points. Runs longer than MaxSlots
// result in the null key.
func KeyOf(rs []rune) Key {
	var k Key
	if len(rs) > MaxSlots {
		return k
	}
	copy(k.slots[:], rs)
	k.n = int8(len(rs))
	return k
}

// Len returns the number of slots in use.
func (k Key) Len() int {
	return int(k.n)
}

// Record is a ligature record. Records have value semantics and are immutable.
type Record struct {
	key   Key
	hash  uint16
	Glyph int   // glyph index within the font, -1 if unset
	Flags Flags // derived and row-supplied flags
}

// Null is the null record.
var Null = Record{Glyph: -1}

func newRecord(k Key, virama rune) Record {
	rec := Record{key: k, Glyph: -1}
	rec.hash = computeHash(k)
	rec.Flags = deriveFlags(k, virama)
	return rec
}

// Parse creates a record from a string of hexadecimal tokens, separated by
// white-space or commas, e.g. "0915 094D 0937". Tokens may carry a prefix
// of "0x" or "U+".
//
// A sequence of more than MaxSlots tokens results in the null record. Tokens
// which cannot be decoded are stored as 0. The virama is needed to derive the
// record's flags.
func Parse(seq string, virama rune) Record {
	tokens := strings.FieldsFunc(seq, func(r rune) bool {
		return r == ' ' || r == ',' || r == '\t'
	})
	if len(tokens) > MaxSlots {
		tracer().Errorf("ligature sequence [%s] has %d tokens, at most %d allowed",
			seq, len(tokens), MaxSlots)
		return Null
	}
	if len(tokens) == 0 {
		return Null
	}
	var k Key
	for i, tok := range tokens {
		k.slots[i] = parseToken(tok)
	}
	k.n = int8(len(tokens))
	return newRecord(k, virama)
}

func parseToken(tok string) rune {
	tok = strings.TrimPrefix(strings.TrimPrefix(tok, "0x"), "U+")
	n, err := strconv.ParseUint(tok, 16, 32)
	if err != nil {
		return 0
	}
	return rune(n)
}

// FromRunes creates a record from a run of 2 to MaxSlots code-points.
// For runs of other lengths the null record is returned.
func FromRunes(rs []rune, virama rune) Record {
	if len(rs) < 2 || len(rs) > MaxSlots {
		return Null
	}
	return newRecord(KeyOf(rs), virama)
}

func deriveFlags(k Key, virama rune) Flags {
	var f Flags
	n := int(k.n)
	if n == 0 || virama == 0 {
		return f
	}
	if k.slots[0] == virama {
		f |= LeadingVirama
	}
	last := k.slots[n-1]
	if last == ZWJ || last == ZWNJ {
		f |= TrailingJoiner
		if n > 1 && k.slots[n-2] == virama {
			f |= TrailingVirama
		}
	} else if last == virama && n > 1 {
		f |= TrailingVirama
	}
	return f
}

// computeHash hashes the fixed-width hex form of all slots, folded to 16 bits.
func computeHash(k Key) uint16 {
	h := fnv.New32a()
	for _, s := range k.slots {
		fmt.Fprintf(h, "%04x", s)
	}
	sum := h.Sum32()
	return uint16(sum>>16) ^ uint16(sum)
}

// Key returns the comparable key of the record.
func (rec Record) Key() Key {
	return rec.key
}

// Hash returns a bucketing hash. Equal records have equal hashes; the
// reverse does not hold.
func (rec Record) Hash() uint16 {
	return rec.hash
}

// Len is the number of code-points in the record.
func (rec Record) Len() int {
	return int(rec.key.n)
}

// IsNull is true for records without any slots.
func (rec Record) IsNull() bool {
	return rec.key.n <= 0
}

// At returns the code-point at slot i.
func (rec Record) At(i int) rune {
	if i < 0 || i >= int(rec.key.n) {
		return 0
	}
	return rec.key.slots[i]
}

// Equals compares length and slots. Glyph index and flags are not compared.
func (rec Record) Equals(other Record) bool {
	return rec.key == other.key
}

// Runes returns the decomposition of the record, i.e. the code-points the
// ligature stands for.
func (rec Record) Runes() []rune {
	rs := make([]rune, rec.key.n)
	copy(rs, rec.key.slots[:rec.key.n])
	return rs
}

// Is checks whether f is set for rec.
func (rec Record) Is(f Flags) bool {
	return rec.Flags&f != 0
}

func (rec Record) String() string {
	if rec.IsNull() {
		return "[]"
	}
	var b strings.Builder
	b.WriteByte('[')
	for i := 0; i < int(rec.key.n); i++ {
		if i > 0 {
			b.WriteByte(' ')
		}
		fmt.Fprintf(&b, "%04X", rec.key.slots[i])
	}
	b.WriteByte(']')
	return b.String()
}

// Compare establishes a total order on records: by hash, then by length,
// then slot by slot. It is compatible with gods' utils.Comparator.
func Compare(a, b interface{}) int {
	r1, r2 := a.(Record), b.(Record)
	switch {
	case r1.hash < r2.hash:
		return -1
	case r1.hash > r2.hash:
		return 1
	case r1.key.n < r2.key.n:
		return -1
	case r1.key.n > r2.key.n:
		return 1
	}
	for i := 0; i < int(r1.key.n); i++ {
		if r1.key.slots[i] < r2.key.slots[i] {
			return -1
		} else if r1.key.slots[i] > r2.key.slots[i] {
			return 1
		}
	}
	return 0
}
