package indic

import (
	"strings"
	"sync"
	"sync/atomic"
	"unicode"
	"unicode/utf8"

	"github.com/npillmayer/schuko"
	"github.com/npillmayer/uax/segment"
	"golang.org/x/text/unicode/norm"
)

// Configuration keys read by NewDocument.
const (
	KeyDetection   = "indic.detection"   // "sample" (default) or "exhaustive"
	KeyScripts     = "indic.scripts"     // comma separated ISO 15924 tags, empty for all
	KeyNormalize   = "indic.normalize"   // "NFC" to normalize text before shaping
	KeyDiagnostics = "indic.diagnostics" // "trace" to trace shaping decisions
)

// Document tracks which scripts a document contains and applies the shapers
// of those scripts to its text.
//
// Detection is sticky: once a script has been found, the document is
// considered to contain it for its whole lifetime.
type Document struct {
	present    [scriptCount]atomic.Bool
	enabled    [scriptCount]bool
	exhaustive bool
	normalize  bool
	mu         sync.RWMutex
	observer   Observer
}

// NewDocument creates a document tracker. conf may be nil, in which case
// all scripts are enabled and detection samples the text.
func NewDocument(conf schuko.Configuration) *Document {
	doc := &Document{}
	for s := range doc.enabled {
		doc.enabled[s] = true
	}
	if conf == nil {
		return doc
	}
	doc.exhaustive = strings.EqualFold(strings.TrimSpace(conf.GetString(KeyDetection)), "exhaustive")
	doc.normalize = strings.EqualFold(strings.TrimSpace(conf.GetString(KeyNormalize)), "NFC")
	if list := strings.TrimSpace(conf.GetString(KeyScripts)); list != "" {
		for s := range doc.enabled {
			doc.enabled[s] = false
		}
		for _, name := range strings.Split(list, ",") {
			if s := ScriptNamed(name); s.valid() {
				doc.enabled[s] = true
			} else {
				tracer().Errorf("configuration names unknown script %q", strings.TrimSpace(name))
			}
		}
	}
	if strings.EqualFold(strings.TrimSpace(conf.GetString(KeyDiagnostics)), "trace") {
		doc.observer = TraceObserver{}
	}
	return doc
}

var globalDocument *Document

var globalDocumentCreation sync.Once

// Global is an application-wide document with default settings.
func Global() *Document {
	globalDocumentCreation.Do(func() {
		globalDocument = NewDocument(nil)
	})
	return globalDocument
}

// SetObserver sets an observer for diagnostic events, or removes it if obs
// is nil.
func (doc *Document) SetObserver(obs Observer) {
	doc.mu.Lock()
	defer doc.mu.Unlock()
	doc.observer = obs
}

func (doc *Document) obs() Observer {
	doc.mu.RLock()
	defer doc.mu.RUnlock()
	return doc.observer
}

// Contains reports whether script s has been detected in the document.
func (doc *Document) Contains(s Script) bool {
	return s.valid() && doc.present[s].Load()
}

// Enabled reports whether shaping for script s is switched on.
func (doc *Document) Enabled(s Script) bool {
	return s.valid() && doc.enabled[s]
}

// Exhaustive reports whether detection inspects every code-point.
func (doc *Document) Exhaustive() bool {
	return doc.exhaustive
}

// Detect inspects text for characters of the supported scripts and returns
// true if any script not known before has been found. Unless detection is
// configured to be exhaustive, only a sample of code-points is inspected:
// every 5th, or every 2nd for texts of up to 10 code-points. Sparse
// occurrences of a script may therefore go unnoticed.
//
// Finding a script triggers the construction of its ligature tables.
func (doc *Document) Detect(text string) bool {
	step := 5
	if doc.exhaustive {
		step = 1
	} else if utf8.RuneCountInString(text) <= 10 {
		step = 2
	}
	found, i := false, 0
	for _, r := range text {
		if i%step == 0 && r >= 0x0900 {
			if sh := shaperForBlock(r); sh != nil && doc.mark(sh) {
				found = true
			}
		}
		i++
	}
	return found
}

// mark sets the presence flag for a shaper's script and returns true if it
// has not been set before.
func (doc *Document) mark(sh *Shaper) bool {
	if !doc.present[sh.Script()].CompareAndSwap(false, true) {
		return false
	}
	tracer().Infof("document contains %s", sh.Script())
	sh.table()
	return true
}

func shaperForBlock(r rune) *Shaper {
	for _, sh := range registry() {
		if sh.Contains(r) {
			return sh
		}
	}
	return nil
}

// active returns the shapers of scripts which are detected and enabled.
func (doc *Document) active() []*Shaper {
	var shs []*Shaper
	for s, sh := range registry() {
		if doc.enabled[s] && doc.present[s].Load() {
			shs = append(shs, sh)
		}
	}
	return shs
}

// ProcessText detects scripts in text and converts every word to its
// PUA-coded form. White space is passed through unchanged.
func (doc *Document) ProcessText(text string) string {
	if doc.normalize {
		text = norm.NFC.String(text)
	}
	doc.Detect(text)
	shs := doc.active()
	if len(shs) == 0 {
		return text
	}
	obs := doc.obs()
	return eachWord(text, func(word []rune) []rune {
		for _, sh := range shs {
			word = sh.process(word, obs)
		}
		return word
	})
}

// RestoreText converts PUA-coded text back to Unicode text. Only scripts
// which have been detected and are enabled are restored.
func (doc *Document) RestoreText(text string) string {
	shs := doc.active()
	if len(shs) == 0 {
		return text
	}
	obs := doc.obs()
	return eachWord(text, func(word []rune) []rune {
		for _, sh := range shs {
			word = sh.restore(word, obs)
		}
		return word
	})
}

// ProcessWord applies the shapers of all detected and enabled scripts to a
// single word.
func (doc *Document) ProcessWord(word []rune) []rune {
	obs := doc.obs()
	for _, sh := range doc.active() {
		word = sh.process(word, obs)
	}
	return word
}

// RestoreWord is the inverse of ProcessWord.
func (doc *Document) RestoreWord(word []rune) []rune {
	obs := doc.obs()
	for _, sh := range doc.active() {
		word = sh.restore(word, obs)
	}
	return word
}

// eachWord splits text into words and applies f to each of them.
func eachWord(text string, f func([]rune) []rune) string {
	var b strings.Builder
	b.Grow(len(text))
	seg := segment.NewSegmenter(segment.NewSimpleWordBreaker())
	seg.Init(strings.NewReader(text))
	for seg.Next() {
		frag := seg.Text()
		for frag != "" {
			k := strings.IndexFunc(frag, unicode.IsSpace)
			if k < 0 {
				k = len(frag)
			}
			if k > 0 {
				b.WriteString(string(f([]rune(frag[:k]))))
			}
			frag = frag[k:]
			k = strings.IndexFunc(frag, func(r rune) bool { return !unicode.IsSpace(r) })
			if k < 0 {
				k = len(frag)
			}
			b.WriteString(frag[:k])
			frag = frag[k:]
		}
	}
	return b.String()
}
