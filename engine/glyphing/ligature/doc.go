/*
Package ligature holds the value type for ligature records and the lookup
tables built from them.

A ligature record is a cluster of 2 to 10 code-points which a font renders
as a single glyph. Fonts used with this module address these glyphs through
code-points of the Unicode private use area (PUA). Tables map in both
directions:

	forward:  PUA code-point  →  record   (restoration, glyph lookup)
	reverse:  record          →  PUA      (composition)

Tables are built once from static rows and are immutable afterwards.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package ligature

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'puashape.ligature'.
func tracer() tracing.Trace {
	return tracing.Select("puashape.ligature")
}
