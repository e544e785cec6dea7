package indic

import (
	"strings"

	"golang.org/x/text/language"
)

// Script identifies one of the supported Indic scripts.
type Script int8

// Supported scripts. NoScript is returned for unsupported script tags.
const (
	NoScript Script = iota - 1
	Devanagari
	Bangla
	Gujarati
	Kannada
	Malayalam
	Oriya
	Tamil
	Telugu
	scriptCount
)

var scriptNames = [scriptCount]string{
	"Devanagari", "Bangla", "Gujarati", "Kannada", "Malayalam", "Oriya", "Tamil", "Telugu",
}

// ISO 15924 codes
var scriptTags = [scriptCount]string{
	"Deva", "Beng", "Gujr", "Knda", "Mlym", "Orya", "Taml", "Telu",
}

// Scripts lists all supported scripts.
func Scripts() []Script {
	s := make([]Script, scriptCount)
	for i := range s {
		s[i] = Script(i)
	}
	return s
}

func (s Script) valid() bool {
	return s >= 0 && s < scriptCount
}

func (s Script) String() string {
	if !s.valid() {
		return "NoScript"
	}
	return scriptNames[s]
}

// Tag returns the ISO 15924 script tag of s.
func (s Script) Tag() language.Script {
	if !s.valid() {
		return language.Script{}
	}
	return language.MustParseScript(scriptTags[s])
}

// ScriptFor maps a script tag to a supported script. For unsupported scripts
// NoScript is returned.
func ScriptFor(tag language.Script) Script {
	code := tag.String()
	for i, t := range scriptTags {
		if t == code {
			return Script(i)
		}
	}
	return NoScript
}

// ScriptNamed finds a script by its ISO 15924 code or by its English name,
// case-insensitively.
func ScriptNamed(name string) Script {
	name = strings.TrimSpace(name)
	for i := range scriptTags {
		if strings.EqualFold(name, scriptTags[i]) || strings.EqualFold(name, scriptNames[i]) {
			return Script(i)
		}
	}
	switch strings.ToLower(name) {
	case "bengali":
		return Bangla
	case "odia":
		return Oriya
	}
	return NoScript
}
