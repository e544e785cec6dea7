package indic

import (
	"fmt"
	"strings"
	"sync"

	"golang.org/x/text/unicode/runenames"
)

// EventKind classifies diagnostic events.
type EventKind int8

// Kinds of diagnostic events.
const (
	Matched    EventKind = iota // a run of code-points has been replaced by a ligature
	Rejected                    // a ligature matched but was refused by context rules
	Unmapped                    // a PUA code-point without table entry was left in place
	SuspectRow                  // a ligature from a questionable table row was used
)

func (k EventKind) String() string {
	switch k {
	case Matched:
		return "matched"
	case Rejected:
		return "rejected"
	case Unmapped:
		return "unmapped"
	case SuspectRow:
		return "suspect-row"
	}
	return "?"
}

// Event describes a decision of a shaper which does not show in its output.
type Event struct {
	Kind   EventKind
	Script Script
	Pos    int    // position within the word
	PUA    rune   // ligature code-point involved
	Run    []rune // code-points involved, if any
	Reason string
}

func (e Event) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s %s @%d %U", e.Script, e.Kind, e.Pos, e.PUA)
	for _, r := range e.Run {
		fmt.Fprintf(&b, " %04X", r)
	}
	if e.Reason != "" {
		b.WriteString(" (" + e.Reason + ")")
	}
	return b.String()
}

// Observer receives diagnostic events. Observers never influence shaping.
type Observer interface {
	Observe(Event)
}

// Recorder is an observer which collects all events.
type Recorder struct {
	mu     sync.Mutex
	events []Event
}

// Observe is part of interface Observer.
func (rec *Recorder) Observe(e Event) {
	rec.mu.Lock()
	defer rec.mu.Unlock()
	rec.events = append(rec.events, e)
}

// Events returns a copy of the events recorded so far.
func (rec *Recorder) Events() []Event {
	rec.mu.Lock()
	defer rec.mu.Unlock()
	return append([]Event(nil), rec.events...)
}

// Count returns the number of events of kind k.
func (rec *Recorder) Count(k EventKind) int {
	rec.mu.Lock()
	defer rec.mu.Unlock()
	n := 0
	for _, e := range rec.events {
		if e.Kind == k {
			n++
		}
	}
	return n
}

// Reset discards all recorded events.
func (rec *Recorder) Reset() {
	rec.mu.Lock()
	defer rec.mu.Unlock()
	rec.events = rec.events[:0]
}

// TraceObserver writes events to the trace, naming the characters involved.
// Matches are traced at level Debug, everything else at level Info.
type TraceObserver struct{}

// Observe is part of interface Observer.
func (TraceObserver) Observe(e Event) {
	names := make([]string, len(e.Run))
	for i, r := range e.Run {
		names[i] = CharName(r)
	}
	if e.Kind == Matched {
		tracer().Debugf("%s: %s", e, strings.Join(names, " + "))
		return
	}
	tracer().Infof("%s: %s", e, strings.Join(names, " + "))
}

// CharName returns the Unicode name of r, or its code-point for characters
// without a name (e.g., PUA code-points).
func CharName(r rune) string {
	if name := runenames.Name(r); name != "" && !strings.HasPrefix(name, "<") {
		return name
	}
	return fmt.Sprintf("%U", r)
}

func notify(obs Observer, e Event) {
	if obs != nil {
		obs.Observe(e)
	}
}
