package grammar

import "testing"

func TestElementIdentityNotStructural(t *testing.T) {
	a := NewStringLit("red")
	b := NewStringLit("red")
	if Element(a) == Element(b) {
		t.Fatal("two distinct StringLit instances with the same text must not compare equal")
	}
	if a != a {
		t.Fatal("an element must compare equal to itself")
	}
}

func TestSetNameReturnsDistinctIdentity(t *testing.T) {
	a := NewStringLit("red")
	named := a.SetName("color")
	if Element(a) == named {
		t.Fatal("SetName must return a distinct identity from its receiver")
	}
	if DisplayName(named) != "color" {
		t.Fatalf("DisplayName(named) = %q, want %q", DisplayName(named), "color")
	}
	if DisplayName(Element(a)) == "color" {
		t.Fatal("SetName must not rename the original element in place")
	}
}

func TestSetNameCopiesCallbacksWithoutAliasing(t *testing.T) {
	a := NewStringLit("red")
	var aCalls, bCalls int
	a.SetResultAction(func(r ResultAccessor) { aCalls++ })
	b := a.SetName("b")
	b.SetResultAction(func(r ResultAccessor) { bCalls++ })

	a.RunPostFuncs(NewResultStub())
	b.RunPostFuncs(NewResultStub())

	if aCalls != 1 {
		t.Fatalf("aCalls = %d, want 1 (b's SetResultAction must not affect a)", aCalls)
	}
	if bCalls != 1 {
		t.Fatalf("bCalls = %d, want 1", bCalls)
	}
}

func TestIgnoreMarksInResult(t *testing.T) {
	a := NewStringLit("red")
	if a.IgnoreInResult() {
		t.Fatal("a fresh element must not start out ignored")
	}
	a.Ignore()
	if !a.IgnoreInResult() {
		t.Fatal("Ignore() must mark the element as ignored in the result")
	}
}

func TestReplaceResultWith(t *testing.T) {
	a := NewStringLit("five").ReplaceResultWith(5)
	r := NewResultStub()
	a.RunPostFuncs(r)
	if r.value != 5 {
		t.Fatalf("r.value = %v, want 5", r.value)
	}
}

func TestDisplayNameFallsBackToCanonicalForm(t *testing.T) {
	a := NewStringLit("red")
	name := DisplayName(Element(a))
	if name != "StringLit(red)" {
		t.Fatalf("DisplayName = %q, want %q", name, "StringLit(red)")
	}
}

// resultStub is a minimal ResultAccessor for exercising PostFunc callbacks
// without depending on package tree.
type resultStub struct {
	value interface{}
}

func NewResultStub() *resultStub            { return &resultStub{} }
func (r *resultStub) Get() interface{}      { return r.value }
func (r *resultStub) Set(value interface{}) { r.value = value }
