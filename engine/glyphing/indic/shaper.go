package indic

import (
	"sync"
	"sync/atomic"
	"unicode"

	"github.com/npillmayer/puashape/core"
	"github.com/npillmayer/puashape/engine/glyphing/ligature"
)

// Shaper holds the tables and reordering passes for one script.
// Shapers are safe for concurrent use.
type Shaper struct {
	def     *definition
	once    sync.Once
	builtin *table
	active  atomic.Pointer[table]
}

func newShaper(def *definition) *Shaper {
	return &Shaper{def: def}
}

// Script returns the script this shaper serves.
func (sh *Shaper) Script() Script {
	return sh.def.script
}

// Contains reports whether r belongs to one of the script's Unicode blocks.
func (sh *Shaper) Contains(r rune) bool {
	return unicode.Is(sh.def.blocks, r)
}

// IsPUA reports whether r lies in the code-point range the script's
// ligatures are mapped to.
func (sh *Shaper) IsPUA(r rune) bool {
	return unicode.Is(sh.def.pua, r)
}

// Class returns the shaping class of r with respect to the active tables.
func (sh *Shaper) Class(r rune) Class {
	return sh.table().class(r)
}

// table returns the active tables, building the built-in ones on first use.
func (sh *Shaper) table() *table {
	sh.once.Do(func() {
		tracer().Infof("building ligature tables for %s", sh.def.script)
		sh.builtin = compile(sh.def, ligature.Build(sh.def.rows, sh.def.virama))
		sh.active.CompareAndSwap(nil, sh.builtin)
	})
	return sh.active.Load()
}

// Tables returns the active ligature tables of the script.
func (sh *Shaper) Tables() *ligature.Tables {
	return sh.table().lig
}

// GlyphIndex returns the font's glyph index for a PUA code-point, or -1 if
// pua is not a ligature of this script.
func (sh *Shaper) GlyphIndex(pua rune) int {
	if !sh.IsPUA(pua) {
		return -1
	}
	if rec, ok := sh.table().lig.Lookup(pua); ok {
		return rec.Glyph
	}
	return -1
}

// ProcessWord transforms a word into its PUA-coded form: ligatures are
// composed, then all reordering passes run in order. Words without any
// characters of the script are returned unchanged.
func (sh *Shaper) ProcessWord(word []rune) []rune {
	return sh.process(word, nil)
}

// ProcessObserved is like ProcessWord, reporting its decisions to obs.
func (sh *Shaper) ProcessObserved(word []rune, obs Observer) []rune {
	return sh.process(word, obs)
}

// RestoreWord transforms a PUA-coded word back to Unicode text: the inverse
// passes run in reverse order, then ligatures are expanded.
func (sh *Shaper) RestoreWord(word []rune) []rune {
	return sh.restore(word, nil)
}

// RestoreObserved is like RestoreWord, reporting its decisions to obs.
func (sh *Shaper) RestoreObserved(word []rune, obs Observer) []rune {
	return sh.restore(word, obs)
}

func (sh *Shaper) touches(word []rune, puas bool) bool {
	for _, r := range word {
		if sh.Contains(r) || (puas && sh.IsPUA(r)) {
			return true
		}
	}
	return false
}

func (sh *Shaper) process(word []rune, obs Observer) []rune {
	if !sh.touches(word, false) {
		return word
	}
	t := sh.table()
	w := t.compose(word, obs)
	for _, p := range sh.def.passes {
		w = p.forward(w, t)
	}
	return w
}

func (sh *Shaper) restore(word []rune, obs Observer) []rune {
	if !sh.touches(word, true) {
		return word
	}
	t := sh.table()
	w := word
	for i := len(sh.def.passes) - 1; i >= 0; i-- {
		w = sh.def.passes[i].inverse(w, t)
	}
	out := make([]rune, 0, len(w)+len(w)/2)
	for i, r := range w {
		if !sh.IsPUA(r) {
			out = append(out, r)
			continue
		}
		rec, ok := t.lig.Lookup(r)
		if !ok {
			notify(obs, Event{Kind: Unmapped, Script: sh.def.script, Pos: i, PUA: r})
			out = append(out, r)
			continue
		}
		out = append(out, rec.Runes()...)
	}
	return out
}

// compose replaces runs of code-points by ligatures, longest runs first.
// Within one run length the word is scanned from right to left, so that
// splicing never shifts positions which are yet to be visited.
func (t *table) compose(word []rune, obs Observer) []rune {
	w := owned(word, 0)
	maxLen := t.lig.MaxLen()
	if len(w) < maxLen {
		maxLen = len(w)
	}
	for j := maxLen; j >= 2; j-- {
		for c := len(w) - j; c >= 0; c-- {
			if !t.lig.HasPair(w[c], w[c+1]) {
				continue
			}
			pua, ok := t.lig.Reverse(w[c : c+j])
			if !ok {
				continue
			}
			if pua, ok = t.disambiguate(w, c, j, pua, obs); !ok {
				continue
			}
			run := append([]rune(nil), w[c:c+j]...)
			notify(obs, Event{Kind: Matched, Script: t.def.script, Pos: c, PUA: pua, Run: run})
			if rec, _ := t.lig.Lookup(pua); rec.Is(ligature.Suspect) {
				notify(obs, Event{Kind: SuspectRow, Script: t.def.script, Pos: c, PUA: pua, Run: run})
			}
			// positions right of c keep their content, and table entries
			// never contain PUA code-points, so the scan continues at c-1
			w[c] = pua
			w = append(w[:c+1], w[c+j:]...)
		}
	}
	return w
}

// disambiguate applies context rules to a match of length j at position c.
// It may replace the match by a positional variant or refuse it.
func (t *table) disambiguate(w []rune, c, j int, pua rune, obs Observer) (rune, bool) {
	rec, _ := t.lig.Lookup(pua)
	if rec.Is(ligature.LeadingVirama) {
		reason := ""
		if c == 0 {
			reason = "post-base form at start of word"
		} else {
			switch t.class(w[c-1]) {
			case Consonant, Conjunct, Nukta, PostBase, PreBaseForm:
			default:
				reason = "post-base form without base consonant"
			}
		}
		if reason != "" {
			notify(obs, Event{Kind: Rejected, Script: t.def.script, Pos: c, PUA: pua,
				Run: append([]rune(nil), w[c:c+j]...), Reason: reason})
			return 0, false
		}
	}
	// a pre-base form directly followed by a post-base form would render
	// like the reverse spelling and could not be restored unambiguously
	if t.class(pua) == PreBaseForm && c+j < len(w) && t.class(w[c+j]) == PostBase {
		notify(obs, Event{Kind: Rejected, Script: t.def.script, Pos: c, PUA: pua,
			Run: append([]rune(nil), w[c:c+j]...), Reason: "pre-base form before post-base form"})
		return 0, false
	}
	if initial, ok := t.initial[pua]; ok && c == 0 && j < len(w) {
		switch t.class(w[j]) {
		case Consonant, Conjunct, Half:
			return initial, true
		}
	}
	return pua, true
}

// --- Font-supplied tables --------------------------------------------------

// OverrideTable replaces the active ligature table with one built from rows,
// e.g. rows read from a font's side-car file. Only Devanagari accepts
// font-supplied tables. Rows must map code-points in the script's PUA range
// to valid decompositions.
func (sh *Shaper) OverrideTable(rows []ligature.Row) error {
	if !sh.def.overridable {
		return core.Error(core.EINVALID, "%s does not accept font-supplied ligature tables",
			sh.def.script)
	}
	if len(rows) == 0 {
		return core.Error(core.EMISSING, "font-supplied ligature table for %s is empty",
			sh.def.script)
	}
	for _, row := range rows {
		if !sh.IsPUA(row.PUA) {
			return core.Error(core.EINVALID, "%U is outside the PUA range of %s",
				row.PUA, sh.def.script)
		}
		if ligature.Parse(row.Seq, sh.def.virama).IsNull() {
			return core.Error(core.EMALFORMED, "row for %U has no valid sequence", row.PUA)
		}
	}
	t := compile(sh.def, ligature.Build(rows, sh.def.virama))
	sh.table()
	sh.active.Store(t)
	tracer().Infof("%s uses font-supplied ligature table with %d entries", sh.def.script, t.lig.Len())
	return nil
}

// ResetTable re-activates the built-in ligature table.
func (sh *Shaper) ResetTable() {
	sh.table()
	sh.active.Store(sh.builtin)
}

// Overridden reports whether a font-supplied table is active.
func (sh *Shaper) Overridden() bool {
	return sh.table() != sh.builtin
}
