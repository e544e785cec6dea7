package indic

import (
	"sync"
)

// definitions create the per-script data. They are called once, when the
// registry is created.
var definitions = [scriptCount]func() *definition{
	Devanagari: devanagari,
	Bangla:     bangla,
	Gujarati:   gujarati,
	Kannada:    kannada,
	Malayalam:  malayalam,
	Oriya:      oriya,
	Tamil:      tamil,
	Telugu:     telugu,
}

var shapers [scriptCount]*Shaper

var registryCreation sync.Once

func registry() *[scriptCount]*Shaper {
	registryCreation.Do(func() {
		for s, define := range definitions {
			shapers[s] = newShaper(define())
		}
	})
	return &shapers
}

// Get returns the application-wide shaper for script s, or nil if s is not
// a supported script. Ligature tables are not built before the shaper is
// used for the first time.
func Get(s Script) *Shaper {
	if !s.valid() {
		return nil
	}
	return registry()[s]
}

// All returns the shapers of all supported scripts, in the order of Scripts().
func All() []*Shaper {
	r := registry()
	return append([]*Shaper(nil), r[:]...)
}

// ShaperFor returns the shaper of the script r belongs to, either by its
// Unicode block or by its PUA range. It returns nil for other code-points.
func ShaperFor(r rune) *Shaper {
	for _, sh := range registry() {
		if sh.Contains(r) || sh.IsPUA(r) {
			return sh
		}
	}
	return nil
}
