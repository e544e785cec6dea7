/*
Package puashape implements a glyphing.Shaper for Indic scripts, producing
glyphs for PUA-coded ligatures.

Text is split into words, every word is run through the shaping pipeline of
the Indic scripts detected in a document, and one glyph is produced for
every resulting code-point. Cluster IDs are word-granular: all glyphs of a
word carry the position of the word's first code-point.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package puashape

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'puashape.glyphs'.
func tracer() tracing.Trace {
	return tracing.Select("puashape.glyphs")
}
