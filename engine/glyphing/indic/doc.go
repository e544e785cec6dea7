/*
Package indic shapes text of eight Indic scripts for fonts which address
conjuncts and other ligatures through private use area (PUA) code-points.

The renderer this package serves has no OpenType layout engine. Instead, each
script comes with hand-built substitution tables and a fixed sequence of
visual reordering passes:

	word ──▶ composition ──▶ pass 1 ──▶ … ──▶ pass n ──▶ PUA-coded word

Composition replaces the longest runs of code-points which form a ligature
with the ligature's PUA code-point. Reordering passes then move vowel signs,
reph and some consonant forms into the visual order the font expects.
Every pass has an exact inverse. Restoration runs the inverse passes in reverse
order and expands PUA code-points back into their decompositions, which makes
the original text available for search, selection, clipboard and speech.

Shapers exist once per script and are obtained with Get. Tables are built on
first use. A Document decides which scripts are present in a text at all and
runs only the pipelines of those.

Supported scripts are Devanagari, Bangla, Gujarati, Kannada, Malayalam,
Oriya, Tamil and Telugu.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package indic

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'puashape.indic'.
func tracer() tracing.Trace {
	return tracing.Select("puashape.indic")
}
