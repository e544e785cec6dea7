/*
Package xhtml converts the text content of (X)HTML documents between
Unicode and PUA-coded Indic text.

Text nodes are collected into a cord, which is used for script detection on
the document as a whole. Every text node is then converted in place,
except for text within elements matched by a skip selector (by default
script, style, code and pre elements). Markup is left untouched.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package xhtml

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'puashape.xhtml'.
func tracer() tracing.Trace {
	return tracing.Select("puashape.xhtml")
}
