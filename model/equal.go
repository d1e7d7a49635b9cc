package model

import "slices"

// EventKind distinguishes traversal events.
type EventKind uint8

// Event kinds.
const (
	EventStart EventKind = iota + 1
	EventEnd
)

// Event is one step of the canonical traversal used for equality and
// hashing. Two trees are equal exactly when their event streams are equal.
type Event struct {
	Kind  EventKind
	Name  string
	Index int
	Type  string
	ID    string
	HasID bool
	Value string
	// HasValue is true for primitives carrying a value.
	HasValue bool
	// URL is the url of an extension node.
	URL string
}

func (ev Event) writeTo(w *hashWriter) {
	w.tag(byte(ev.Kind))
	if ev.Kind == EventEnd {
		return
	}
	w.str(ev.Name)
	w.int(ev.Index)
	w.str(ev.Type)
	if ev.HasID {
		w.tag(1)
		w.str(ev.ID)
	} else {
		w.tag(0)
	}
	if ev.HasValue {
		w.tag(1)
		w.str(ev.Value)
	} else {
		w.tag(0)
	}
	w.str(ev.URL)
}

type recorder struct {
	NopVisitor
	events []Event
}

func (r *recorder) VisitStart(name string, index int, e Element) {
	ev := Event{Kind: EventStart, Name: name, Index: index, Type: e.TypeName()}
	ev.ID, ev.HasID = e.ElementID()
	if p, ok := e.(Primitive); ok {
		ev.Value, ev.HasValue = p.Literal()
	}
	if x, ok := e.(Extension); ok {
		ev.URL = x.ExtensionURL()
	}
	r.events = append(r.events, ev)
}

func (r *recorder) VisitEnd(string, int, Element) {
	r.events = append(r.events, Event{Kind: EventEnd})
}

// Events returns the canonical traversal of e.
func Events(e Element) []Event {
	if e == nil {
		return nil
	}
	r := &recorder{}
	e.Accept(r, "", -1)
	return r.events
}

// Equal reports deep value equality, including identifiers and extensions.
func Equal(a, b Element) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	if ha, hb, ok := knownHashes(a, b); ok && ha != hb {
		return false
	}
	return slices.Equal(Events(a), Events(b))
}

func knownHashes(a, b Element) (uint64, uint64, bool) {
	ma, ok := a.(memoized)
	if !ok || ma.hashMemo() == nil || !ma.hashMemo().done.Load() {
		return 0, 0, false
	}
	mb, ok := b.(memoized)
	if !ok || mb.hashMemo() == nil || !mb.hashMemo().done.Load() {
		return 0, 0, false
	}
	return ma.hashMemo().sum.Load(), mb.hashMemo().sum.Load(), true
}
