package chart

import (
	"testing"

	"github.com/aeryon-dev/semchart/grammar"
)

func twoWordProduction() (*grammar.Production, grammar.Element, grammar.Element) {
	a := grammar.NewStringLit("a")
	b := grammar.NewStringLit("b")
	lhs := grammar.NewAnd(a, b)
	return grammar.NewProduction(lhs, []grammar.Element{a, b}), a, b
}

func TestNewChartFixedCapacityDoesNotGrow(t *testing.T) {
	c := NewChart(3)
	if c.Size() != 3 {
		t.Fatalf("Size() = %d, want 3", c.Size())
	}
	prod, _, _ := twoWordProduction()
	e := NewEdge(0, 2, prod, 2)
	c.AddEdge(e, nil, nil)
	if c.Size() != 3 {
		t.Fatalf("Size() after AddEdge = %d, want 3 (fixed-capacity chart must not grow)", c.Size())
	}
}

func TestNewIncrementalChartGrowsOnDemand(t *testing.T) {
	c := NewIncrementalChart(2, 4)
	prod, _, _ := twoWordProduction()
	e := NewEdge(0, 5, prod, 2)
	c.AddEdge(e, nil, nil)
	if c.Size() < 6 {
		t.Fatalf("Size() = %d, want >= 6 after adding an edge ending at 5", c.Size())
	}
	if c.maxSize < c.Size() {
		t.Fatalf("maxSize (%d) must be >= logical size (%d)", c.maxSize, c.Size())
	}
}

func TestAddEdgeDeduplicatesByKey(t *testing.T) {
	c := NewChart(3)
	prod, _, _ := twoWordProduction()
	e1 := NewEdge(0, 2, prod, 2)
	e2 := NewEdge(0, 2, prod, 2)
	added1 := c.AddEdge(e1, nil, nil)
	added2 := c.AddEdge(e2, nil, nil)
	if !added1 {
		t.Fatal("first AddEdge of a fresh edge should report added=true")
	}
	if added2 {
		t.Fatal("second AddEdge of an equal-keyed edge should report added=false")
	}
}

func TestAddEdgeRecordsBackpointerTuple(t *testing.T) {
	c := NewChart(3)
	prod, _, _ := twoWordProduction()
	partial := NewEdge(0, 1, prod, 1)
	childB := NewEdge(1, 2, prod, 1)
	complete := partial.MergeAndForwardDot(childB)

	c.AddEdge(partial, nil, nil)
	c.AddEdge(childB, nil, nil)
	c.AddEdge(complete, partial, childB)

	tuples, ok := c.Backpointers(complete)
	if !ok {
		t.Fatal("Backpointers should report a recorded tuple for the merged edge")
	}
	if len(tuples) != 1 || len(tuples[0]) != 1 || tuples[0][0] != childB {
		t.Fatalf("Backpointers(complete) = %v, want a single tuple containing childB", tuples)
	}
}

func TestAddEdgeSkipsBackpointerOnSelfRecursion(t *testing.T) {
	c := NewChart(3)
	prod, _, _ := twoWordProduction()
	e := NewEdge(0, 1, prod, 1)
	c.AddEdge(e, nil, nil)
	// edge.Key() == child.Key(): must not record a self-referential tuple.
	c.AddEdge(e, nil, e)
	if _, ok := c.Backpointers(e); ok {
		t.Fatal("AddEdge must not record a backpointer tuple when edge and child share a key")
	}
}

func TestFilterEdgesForPredictionBoundsSafety(t *testing.T) {
	c := NewChart(3)
	if out := c.FilterEdgesForPrediction(-1); out != nil {
		t.Fatalf("FilterEdgesForPrediction(-1) = %v, want nil", out)
	}
	if out := c.FilterEdgesForPrediction(100); out != nil {
		t.Fatalf("FilterEdgesForPrediction(100) on an empty chart = %v, want nil", out)
	}
}

func TestFilterEdgesForCompletionMatchesRHSAfterDotByIdentity(t *testing.T) {
	c := NewChart(3)
	prod, a, b := twoWordProduction()
	e := NewEdge(0, 1, prod, 0) // dot before a
	c.AddEdge(e, nil, nil)

	matches := c.FilterEdgesForCompletion(1, a)
	if len(matches) != 1 {
		t.Fatalf("len(FilterEdgesForCompletion(1, a)) = %d, want 1", len(matches))
	}
	if noMatches := c.FilterEdgesForCompletion(1, b); len(noMatches) != 0 {
		t.Fatalf("len(FilterEdgesForCompletion(1, b)) = %d, want 0 (dot is before a, not b)", len(noMatches))
	}
}

func TestFilterCompletedEdgesBoundsSafety(t *testing.T) {
	c := NewChart(3)
	lhs := grammar.NewStringLit("x")
	if out := c.FilterCompletedEdges(-1, lhs); out != nil {
		t.Fatalf("FilterCompletedEdges(-1, ...) = %v, want nil", out)
	}
	if out := c.FilterCompletedEdges(100, lhs); out != nil {
		t.Fatalf("FilterCompletedEdges(100, ...) = %v, want nil", out)
	}
}

func TestFilterCompletedEdgesMatchesLHSByIdentity(t *testing.T) {
	c := NewChart(3)
	prod, _, _ := twoWordProduction()
	complete := NewEdge(0, 2, prod, 2)
	c.AddEdge(complete, nil, nil)

	matches := c.FilterCompletedEdges(0, prod.LHS)
	if len(matches) != 1 {
		t.Fatalf("len(FilterCompletedEdges(0, prod.LHS)) = %d, want 1", len(matches))
	}
	other := grammar.NewStringLit("other")
	if noMatches := c.FilterCompletedEdges(0, other); len(noMatches) != 0 {
		t.Fatalf("len(FilterCompletedEdges(0, other)) = %d, want 0", len(noMatches))
	}
}

func TestRootCandidatesSpansWholeChart(t *testing.T) {
	c := NewChart(3)
	if out := c.RootCandidates(); out != nil {
		t.Fatalf("RootCandidates() on a fresh chart = %v, want nil", out)
	}
	prod, _, _ := twoWordProduction()
	root := NewEdge(0, 2, prod, 2)
	c.AddEdge(root, nil, nil)
	notRoot := NewEdge(0, 1, prod, 1)
	c.AddEdge(notRoot, nil, nil)

	candidates := c.RootCandidates()
	if len(candidates) != 1 || candidates[0] != root {
		t.Fatalf("RootCandidates() = %v, want [root]", candidates)
	}
}

func TestChartStringIsSortedAndStable(t *testing.T) {
	c := NewChart(3)
	prod, _, _ := twoWordProduction()
	c.AddEdge(NewEdge(0, 1, prod, 1), nil, nil)
	c.AddEdge(NewEdge(1, 2, prod, 1), nil, nil)
	s1 := c.String()
	s2 := c.String()
	if s1 != s2 {
		t.Fatal("Chart.String() must be deterministic across calls")
	}
	if s1 == "" {
		t.Fatal("Chart.String() should not be empty once edges are present")
	}
}
