package ligature

import (
	"sort"

	"github.com/derekparker/trie"
	"github.com/emirpasic/gods/maps/treemap"
)

// Row is a line of static table data: a PUA code-point, the glyph index
// the font uses for it, and the hex sequence of the cluster it stands for.
type Row struct {
	PUA   rune
	Glyph int
	Seq   string
	Flags Flags // ViramaExempt or Suspect; derived flags are computed
}

// Collision records a set of PUA code-points sharing the same decomposition.
// Only the winner is a composition target; all of them restore identically.
type Collision struct {
	Record Record
	Winner rune
	Losers []rune
}

// Tables holds the forward table, the reverse table and the fast pair index
// for a set of rows. Tables are immutable after Build.
type Tables struct {
	forward    *treemap.Map // rune → Record, ordered by PUA
	reverse    map[Key]rune
	fast       map[uint64]struct{}
	prefixes   *trie.Trie   // decomposition → PUA
	collisions *treemap.Map // Record → *Collision
	maxLen     int
}

// Build creates lookup tables from rows. Rows with a sequence which does not
// decode to a non-null record are logged and skipped, as are rows repeating
// an already used PUA code-point.
//
// If several PUA code-points decompose to the same record, the lowest
// code-point is kept as the composition target. All collisions are recorded
// and may be inspected with Collisions.
func Build(rows []Row, virama rune) *Tables {
	t := &Tables{
		forward:    treemap.NewWithIntComparator(),
		reverse:    make(map[Key]rune, len(rows)),
		fast:       make(map[uint64]struct{}, len(rows)),
		prefixes:   trie.New(),
		collisions: treemap.NewWith(Compare),
	}
	for _, row := range rows {
		rec := Parse(row.Seq, virama)
		if rec.IsNull() {
			tracer().Errorf("table row for %U has no valid sequence: %q", row.PUA, row.Seq)
			continue
		}
		if _, found := t.forward.Get(int(row.PUA)); found {
			tracer().Errorf("table row for %U is duplicate, ignored", row.PUA)
			continue
		}
		rec.Glyph = row.Glyph
		rec.Flags |= row.Flags
		t.forward.Put(int(row.PUA), rec)
		if rec.Len() > t.maxLen {
			t.maxLen = rec.Len()
		}
	}
	it := t.forward.Iterator()
	for it.Next() {
		pua, rec := rune(it.Key().(int)), it.Value().(Record)
		if rec.Len() >= 2 {
			t.fast[pair(rec.At(0), rec.At(1))] = struct{}{}
		}
		if winner, exists := t.reverse[rec.key]; exists {
			t.addCollision(rec, winner, pua)
			continue
		}
		t.reverse[rec.key] = pua
		t.prefixes.Add(string(rec.Runes()), pua)
	}
	tracer().Debugf("built ligature tables: %d entries, %d collisions, max length %d",
		t.forward.Size(), t.collisions.Size(), t.maxLen)
	return t
}

func (t *Tables) addCollision(rec Record, winner, loser rune) {
	tracer().Debugf("%U decomposes to %s like %U, keeping %U as composition target",
		loser, rec, winner, winner)
	if c, found := t.collisions.Get(rec); found {
		coll := c.(*Collision)
		coll.Losers = append(coll.Losers, loser)
		return
	}
	t.collisions.Put(rec, &Collision{Record: rec, Winner: winner, Losers: []rune{loser}})
}

func pair(a, b rune) uint64 {
	return uint64(uint32(a))<<32 | uint64(uint32(b))
}

// Lookup returns the record for a PUA code-point.
func (t *Tables) Lookup(pua rune) (Record, bool) {
	if t == nil {
		return Null, false
	}
	v, found := t.forward.Get(int(pua))
	if !found {
		return Null, false
	}
	return v.(Record), true
}

// Reverse returns the PUA code-point for a run of code-points, if the run is
// a ligature.
func (t *Tables) Reverse(rs []rune) (rune, bool) {
	if t == nil || len(rs) < 2 || len(rs) > MaxSlots {
		return 0, false
	}
	pua, ok := t.reverse[KeyOf(rs)]
	return pua, ok
}

// HasPair reports whether any ligature starts with code-points a and b.
func (t *Tables) HasPair(a, b rune) bool {
	if t == nil {
		return false
	}
	_, ok := t.fast[pair(a, b)]
	return ok
}

// MaxLen is the length of the longest record in the tables.
func (t *Tables) MaxLen() int {
	if t == nil {
		return 0
	}
	return t.maxLen
}

// Len is the number of entries of the forward table.
func (t *Tables) Len() int {
	if t == nil {
		return 0
	}
	return t.forward.Size()
}

// Each calls f for every forward entry in ascending PUA order, until f
// returns false.
func (t *Tables) Each(f func(pua rune, rec Record) bool) {
	if t == nil {
		return
	}
	it := t.forward.Iterator()
	for it.Next() {
		if !f(rune(it.Key().(int)), it.Value().(Record)) {
			return
		}
	}
}

// WithPrefix returns the composition targets of all ligatures whose
// decomposition starts with prefix.
func (t *Tables) WithPrefix(prefix []rune) []rune {
	if t == nil || len(prefix) == 0 {
		return nil
	}
	keys := t.prefixes.PrefixSearch(string(prefix))
	puas := make([]rune, 0, len(keys))
	for _, key := range keys {
		if node, ok := t.prefixes.Find(key); ok {
			puas = append(puas, node.Meta().(rune))
		}
	}
	sort.Slice(puas, func(i, j int) bool { return puas[i] < puas[j] })
	return puas
}

// Collisions returns all recorded collisions, ordered by record.
func (t *Tables) Collisions() []Collision {
	if t == nil {
		return nil
	}
	colls := make([]Collision, 0, t.collisions.Size())
	it := t.collisions.Iterator()
	for it.Next() {
		colls = append(colls, *it.Value().(*Collision))
	}
	return colls
}
