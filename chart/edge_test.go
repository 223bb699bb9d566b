package chart

import (
	"testing"

	"github.com/aeryon-dev/semchart/grammar"
)

func TestEdgeKeyIsStableForEqualFields(t *testing.T) {
	a := grammar.NewStringLit("a")
	b := grammar.NewStringLit("b")
	prod := grammar.NewProduction(a, []grammar.Element{a, b})
	e1 := NewEdge(0, 1, prod, 1)
	e2 := NewEdge(0, 1, prod, 1)
	if e1.Key() != e2.Key() {
		t.Fatal("two edges built from identical (start, end, production, dot) must share a key")
	}
}

func TestEdgeKeyDiffersOnDot(t *testing.T) {
	a := grammar.NewStringLit("a")
	b := grammar.NewStringLit("b")
	prod := grammar.NewProduction(a, []grammar.Element{a, b})
	e1 := NewEdge(0, 1, prod, 0)
	e2 := NewEdge(0, 1, prod, 1)
	if e1.Key() == e2.Key() {
		t.Fatal("edges differing only in dot position must not share a key")
	}
}

func TestScanAfterDotMatchesTerminal(t *testing.T) {
	word := grammar.NewStringLit("cat")
	prod := grammar.NewProduction(word, []grammar.Element{word})
	e := NewEdge(0, 0, prod, 0)
	progressed, isTerm := e.ScanAfterDot("cat")
	if !isTerm {
		t.Fatal("rhs after dot is a terminal; rhsIsTerminal should be true")
	}
	if !progressed {
		t.Fatal("\"cat\" should match the StringLit(cat) terminal")
	}
	progressed, _ = e.ScanAfterDot("dog")
	if progressed {
		t.Fatal("\"dog\" should not match the StringLit(cat) terminal")
	}
}

func TestScanAfterDotOnCompleteEdge(t *testing.T) {
	word := grammar.NewStringLit("cat")
	prod := grammar.NewProduction(word, []grammar.Element{word})
	e := NewEdge(0, 1, prod, 1) // dot at end: complete
	progressed, isTerm := e.ScanAfterDot("cat")
	if progressed || isTerm {
		t.Fatal("a complete edge has nothing left to scan")
	}
}

func TestMergeAndForwardDotAdvancesDotAndSpan(t *testing.T) {
	a := grammar.NewStringLit("a")
	b := grammar.NewStringLit("b")
	lhs := grammar.NewAnd(a, b)
	prod := grammar.NewProduction(lhs, []grammar.Element{a, b})
	left := NewEdge(0, 1, prod, 1)
	right := NewEdge(1, 2, prod, 1)
	merged := left.MergeAndForwardDot(right)
	if merged.Start != 0 || merged.End != 2 {
		t.Fatalf("merged span = [%d,%d], want [0,2]", merged.Start, merged.End)
	}
	if merged.Dot != 2 {
		t.Fatalf("merged.Dot = %d, want 2", merged.Dot)
	}
	if !merged.IsComplete() {
		t.Fatal("merged edge should be complete (dot == len(RHS))")
	}
}

func TestMergeAndForwardDotPanicsOnGap(t *testing.T) {
	a := grammar.NewStringLit("a")
	b := grammar.NewStringLit("b")
	lhs := grammar.NewAnd(a, b)
	prod := grammar.NewProduction(lhs, []grammar.Element{a, b})
	left := NewEdge(0, 1, prod, 1)
	right := NewEdge(2, 3, prod, 1) // gap: right.Start != left.End
	defer func() {
		if recover() == nil {
			t.Fatal("merging edges with a position gap should panic")
		}
	}()
	left.MergeAndForwardDot(right)
}

func TestIsCompleteReflectsDotPosition(t *testing.T) {
	a := grammar.NewStringLit("a")
	b := grammar.NewStringLit("b")
	lhs := grammar.NewAnd(a, b)
	prod := grammar.NewProduction(lhs, []grammar.Element{a, b})
	if NewEdge(0, 0, prod, 0).IsComplete() {
		t.Fatal("an edge with dot 0 of a 2-element RHS must not be complete")
	}
	if !NewEdge(0, 2, prod, 2).IsComplete() {
		t.Fatal("an edge with dot == len(RHS) must be complete")
	}
}

func TestAsSpanMatchesStartAndEnd(t *testing.T) {
	a := grammar.NewStringLit("a")
	prod := grammar.NewProduction(a, []grammar.Element{a})
	e := NewEdge(3, 5, prod, 1)
	span := e.AsSpan()
	if span.From() != 3 || span.To() != 5 {
		t.Fatalf("AsSpan() = %v, want (3, 5)", span)
	}
}
