/*
Package monospace implements a shaper for monospace previews of PUA-coded
Indic text, as used for terminal output.

Text is converted to PUA-coded form and split into grapheme clusters. Every
grapheme cluster becomes one glyph, advancing by its East Asian width in
cells.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package monospace

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'puashape.glyphs'.
func tracer() tracing.Trace {
	return tracing.Select("puashape.glyphs")
}
