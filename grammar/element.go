package grammar

import (
	"fmt"
	"reflect"
)

// PostFunc is a callback run against a completed derivation's result. It may
// inspect the current main value via r.Get() and overwrite it via r.Set().
type PostFunc func(r ResultAccessor)

// ResultAccessor is the narrow view of a tree.Result that grammar callbacks
// are allowed to touch. It lives here, not in package tree, so that grammar
// need not import tree (tree already imports grammar for Element/Production).
type ResultAccessor interface {
	Get() interface{}
	Set(value interface{})
}

// Element is a grammar symbol, terminal or non-terminal. Elements are
// compared by identity (the pointer each concrete type wraps), never by
// structural equality — a grammar must use a single element object per
// logical role; SetName returns a distinct identity sharing the same
// children.
type Element interface {
	IsTerminal() bool
	AsList() bool
	IgnoreInResult() bool
	Ignore() Element
	SetResultAction(fns ...PostFunc) Element
	ReplaceResultWith(value interface{}) Element
	RunPostFuncs(r ResultAccessor)
	Streamline() Element
	Streamlined() bool

	// SetName returns a new element, a distinct identity, sharing structure
	// but carrying a new display name and a copy of the callback list.
	SetName(name string) Element

	// YieldProductions emits the productions this element contributes to a
	// grammar, per the kind-specific rules in the grammar compiler.
	YieldProductions() []*Production

	defaultName() string
	base() *elementBase
}

// Terminal is an Element that can match a whole input token by itself.
type Terminal interface {
	Element
	Match(lexicon string) bool
}

type elementBase struct {
	self          Element // concrete identity; set by each constructor
	name          string  // explicit, via SetName
	variableName  string  // bound to a host struct field by the compiler
	canonicalName string  // memoized fallback
	isTerminal    bool
	asList        bool
	ignore        bool
	streamlined   bool
	postFuncs     []PostFunc
}

func (b *elementBase) base() *elementBase { return b }

func (b *elementBase) IsTerminal() bool      { return b.isTerminal }
func (b *elementBase) AsList() bool          { return b.asList }
func (b *elementBase) IgnoreInResult() bool  { return b.ignore }
func (b *elementBase) Streamlined() bool     { return b.streamlined }
func (b *elementBase) setStreamlined()       { b.streamlined = true }
func (b *elementBase) setVariableName(n string) { b.variableName = n }
func (b *elementBase) hasExplicitOrBoundName() bool {
	return b.name != "" || b.variableName != ""
}

// Ignore marks completed derivations of this element as contributing no
// entry to the result; they are skipped entirely during result construction.
func (b *elementBase) Ignore() Element {
	b.ignore = true
	return b.self
}

// SetResultAction stores the callbacks invoked, in order, on the ParseResult
// of any completed derivation of this element.
func (b *elementBase) SetResultAction(fns ...PostFunc) Element {
	b.postFuncs = fns
	return b.self
}

// ReplaceResultWith is shorthand for a callback that overwrites the result's
// main value.
func (b *elementBase) ReplaceResultWith(value interface{}) Element {
	return b.SetResultAction(func(r ResultAccessor) { r.Set(value) })
}

func (b *elementBase) RunPostFuncs(r ResultAccessor) {
	for _, f := range b.postFuncs {
		if f != nil {
			f(r)
		}
	}
}

// cloneBase produces the elementBase for a SetName copy: a fresh name, a
// duplicated callback slice (so later SetResultAction calls on either copy
// don't alias), and cleared derived names so they are recomputed. Callers
// must overwrite the returned base's self field with the new element's own
// address once it exists.
func (b elementBase) cloneBase(name string) elementBase {
	nb := b
	nb.name = name
	nb.variableName = ""
	nb.canonicalName = ""
	nb.postFuncs = append([]PostFunc(nil), b.postFuncs...)
	return nb
}

// DisplayName resolves an element's display name: explicit name, else the
// host-binding name assigned by the compiler's naming pass, else a canonical
// name of the form Kind(defaultName), memoized on first computation.
func DisplayName(e Element) string {
	b := e.base()
	if b.name != "" {
		return b.name
	}
	if b.variableName != "" {
		return b.variableName
	}
	if b.canonicalName == "" {
		b.canonicalName = kindName(e) + "(" + e.defaultName() + ")"
	}
	return b.canonicalName
}

func kindName(e Element) string {
	t := reflect.TypeOf(e)
	if t.Kind() == reflect.Ptr {
		t = t.Elem()
	}
	return t.Name()
}

// Identity returns a stable string key for e's pointer identity, used for
// production deduplication and debug output. It is not a content hash.
func Identity(e Element) string {
	return fmt.Sprintf("%p", e)
}
