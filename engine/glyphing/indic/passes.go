package indic

import (
	"fmt"
	"unicode"
)

// A pass is one visual reordering step together with its inverse.
// Both directions are pure: they never modify their input and return a
// newly allocated word.
type pass interface {
	fmt.Stringer
	forward(w []rune, t *table) []rune
	inverse(w []rune, t *table) []rune
}

// --- Word editing ----------------------------------------------------------

func owned(w []rune, extra int) []rune {
	return append(make([]rune, 0, len(w)+extra), w...)
}

// move relocates the item at position from to position to, shifting the
// items in between.
func move(w []rune, from, to int) {
	if from == to {
		return
	}
	r := w[from]
	if from < to {
		copy(w[from:to], w[from+1:to+1])
	} else {
		copy(w[to+1:from+1], w[to:from])
	}
	w[to] = r
}

func insert(w []rune, at int, r rune) []rune {
	w = append(w, 0)
	copy(w[at+1:], w[at:])
	w[at] = r
	return w
}

func erase(w []rune, at int) []rune {
	copy(w[at:], w[at+1:])
	return w[:len(w)-1]
}

// --- Reph ------------------------------------------------------------------

// rephPass moves a word-initial reph behind the cluster it belongs to:
// half forms, the base and all items of the skip set following the base.
type rephPass struct {
	skip skipSet
}

func (p rephPass) String() string { return "reph" }

func (p rephPass) forward(w []rune, t *table) []rune {
	w = owned(w, 0)
	if len(w) < 2 || t.class(w[0]) != Reph {
		return w
	}
	if end, ok := t.clusterEnd(w, 1, p.skip); ok {
		move(w, 0, end-1)
	}
	return w
}

func (p rephPass) inverse(w []rune, t *table) []rune {
	w = owned(w, 0)
	for j := 1; j < len(w); j++ {
		if t.class(w[j]) != Reph {
			continue
		}
		if end, ok := t.clusterEnd(w, 0, p.skip); ok && end == j {
			move(w, j, 0)
		}
		break
	}
	return w
}

// --- Pre-base matras -------------------------------------------------------

// preBasePass moves dependent vowel signs which are displayed to the left of
// their consonant cluster in front of it. There is one such pass per group of
// vowel signs.
type preBasePass struct {
	name   string
	matras *unicode.RangeTable
	skip   skipSet
}

func (p preBasePass) String() string { return p.name }

func (p preBasePass) forward(w []rune, t *table) []rune {
	w = owned(w, 0)
	for i := 1; i < len(w); i++ {
		if !in(p.matras, w[i]) {
			continue
		}
		if start, ok := t.clusterStart(w, i, p.skip); ok {
			move(w, i, start)
		}
	}
	return w
}

func (p preBasePass) inverse(w []rune, t *table) []rune {
	w = owned(w, 0)
	for j := len(w) - 2; j >= 0; j-- {
		if !in(p.matras, w[j]) {
			continue
		}
		if end, ok := t.clusterEnd(w, j+1, p.skip); ok {
			move(w, j, end-1)
		}
	}
	return w
}

// --- Split matras ----------------------------------------------------------

type splitMode uint8

const (
	splitPre  splitMode = iota // first part goes before the cluster
	splitPost                  // first part stays, second part goes after post-base forms
)

// splitPass decomposes two-part vowel signs. In pre mode the first part is
// placed in front of the cluster and the second part where the composite
// sign was. In post mode the first part replaces the composite sign and the
// second part follows any post-base forms after it.
type splitPass struct {
	name   string
	parts  map[rune][2]rune
	mode   splitMode
	skip   skipSet
	merge  map[[2]rune]rune
	firsts map[rune]bool
}

func newSplitPass(name string, mode splitMode, skip skipSet, parts map[rune][2]rune) *splitPass {
	p := &splitPass{name: name, parts: parts, mode: mode, skip: skip}
	p.merge = make(map[[2]rune]rune, len(parts))
	p.firsts = make(map[rune]bool, len(parts))
	for composite, pp := range parts {
		p.merge[pp] = composite
		p.firsts[pp[0]] = true
	}
	return p
}

func (p *splitPass) String() string { return p.name }

func (p *splitPass) forward(w []rune, t *table) []rune {
	w = owned(w, 2)
	for i := 0; i < len(w); i++ {
		pp, ok := p.parts[w[i]]
		if !ok {
			continue
		}
		switch p.mode {
		case splitPre:
			start, ok := t.clusterStart(w, i, p.skip)
			if !ok {
				continue
			}
			w[i] = pp[1]
			w = insert(w, start, pp[0])
			i++
		case splitPost:
			w[i] = pp[0]
			k := i + 1
			for k < len(w) && t.class(w[k]) == PostBase {
				k++
			}
			w = insert(w, k, pp[1])
			i = k
		}
	}
	return w
}

func (p *splitPass) inverse(w []rune, t *table) []rune {
	w = owned(w, 0)
	for j := len(w) - 1; j >= 0; j-- {
		switch p.mode {
		case splitPre:
			if !p.firsts[w[j]] {
				continue
			}
			end, ok := t.clusterEnd(w, j+1, p.skip)
			if !ok || end >= len(w) {
				continue
			}
			if composite, ok := p.merge[[2]rune{w[j], w[end]}]; ok {
				w[end] = composite
				w = erase(w, j)
			}
		case splitPost:
			k := j - 1
			for k >= 0 && t.class(w[k]) == PostBase {
				k--
			}
			if k < 0 {
				continue
			}
			if composite, ok := p.merge[[2]rune{w[k], w[j]}]; ok {
				w[k] = composite
				w = erase(w, j)
			}
		}
	}
	return w
}

// --- Below-base forms ------------------------------------------------------

// belowBasePass places above-base vowel signs directly after their base,
// in front of any below-base forms: [C, B+, M] ⇒ [C, M, B+].
type belowBasePass struct {
	above *unicode.RangeTable
}

func (p belowBasePass) String() string { return "below-base" }

// formsAfter returns the position after base and nukta, if w[i] is a base.
func formsAfter(w []rune, i int, t *table) (int, bool) {
	if !t.isBase(w[i]) {
		return 0, false
	}
	k := i + 1
	if k < len(w) && t.class(w[k]) == Nukta {
		k++
	}
	return k, true
}

func (p belowBasePass) forward(w []rune, t *table) []rune {
	w = owned(w, 0)
	for i := 0; i < len(w); i++ {
		b, ok := formsAfter(w, i, t)
		if !ok {
			continue
		}
		k := b
		for k < len(w) && t.class(w[k]) == PostBase {
			k++
		}
		if k > b && k < len(w) && in(p.above, w[k]) {
			move(w, k, b)
			i = k
		}
	}
	return w
}

func (p belowBasePass) inverse(w []rune, t *table) []rune {
	w = owned(w, 0)
	for i := 0; i < len(w); i++ {
		b, ok := formsAfter(w, i, t)
		if !ok || b+1 >= len(w) || !in(p.above, w[b]) || t.class(w[b+1]) != PostBase {
			continue
		}
		k := b + 1
		for k < len(w) && t.class(w[k]) == PostBase {
			k++
		}
		move(w, b, k-1)
		i = k - 1
	}
	return w
}

// --- Pre-base consonant forms ----------------------------------------------

// preBaseFormPass moves consonant forms which are displayed left of their
// cluster, like the Malayalam ra sign, in front of the cluster.
type preBaseFormPass struct {
	skip skipSet
}

func (p preBaseFormPass) String() string { return "pre-base form" }

func (p preBaseFormPass) forward(w []rune, t *table) []rune {
	w = owned(w, 0)
	for i := 1; i < len(w); i++ {
		if t.class(w[i]) != PreBaseForm {
			continue
		}
		if start, ok := t.clusterStart(w, i, p.skip); ok {
			move(w, i, start)
		}
	}
	return w
}

func (p preBaseFormPass) inverse(w []rune, t *table) []rune {
	w = owned(w, 0)
	for j := len(w) - 2; j >= 0; j-- {
		if t.class(w[j]) != PreBaseForm {
			continue
		}
		if end, ok := t.clusterEnd(w, j+1, p.skip); ok {
			move(w, j, end-1)
		}
	}
	return w
}

// clusterSkip is the set of items a pre-base item moves across on its way
// to the front of a cluster.
var clusterSkip = skipping(Nukta, Virama, PostBase, PreBaseForm, Reph)
