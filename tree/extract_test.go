package tree

import (
	"testing"

	"github.com/aeryon-dev/semchart/chart"
	"github.com/aeryon-dev/semchart/grammar"
)

func terminalEdge(word grammar.Element, start, end uint) *chart.Edge {
	prod := grammar.NewProduction(word, []grammar.Element{word})
	return chart.NewEdge(start, end, prod, 1)
}

func TestTreesRequiresNonTrivialChart(t *testing.T) {
	c := chart.NewChart(1)
	if _, err := Trees(c, nil, false, nil); err == nil {
		t.Fatal("Trees on a chart with size <= 1 should return an error")
	}
}

func TestTreesFiltersByGoalIdentity(t *testing.T) {
	c := chart.NewChart(2)
	a := grammar.NewStringLit("a")
	childA := terminalEdge(a, 0, 1)
	c.AddEdge(childA, nil, nil)

	goalLHS := grammar.NewAnd(a)
	goalProd := grammar.NewProduction(goalLHS, []grammar.Element{a})
	root := chart.NewEdge(0, 1, goalProd, 1)
	c.AddEdge(root, nil, childA)

	otherLHS := grammar.NewStringLit("unrelated")
	trees, err := Trees(c, []string{"a"}, false, otherLHS)
	if err != nil {
		t.Fatalf("Trees returned error: %v", err)
	}
	if len(trees) != 0 {
		t.Fatalf("Trees filtered by an unrelated goal should return none, got %d", len(trees))
	}

	trees, err = Trees(c, []string{"a"}, false, goalLHS)
	if err != nil {
		t.Fatalf("Trees returned error: %v", err)
	}
	if len(trees) != 1 {
		t.Fatalf("Trees filtered by the matching goal should return 1, got %d", len(trees))
	}
}

func TestMostCompactDerivationsPrefersMinimumArity(t *testing.T) {
	c := chart.NewChart(2)
	a := grammar.NewStringLit("a")
	b := grammar.NewStringLit("b")
	childA := terminalEdge(a, 0, 1)
	childB := terminalEdge(b, 1, 2)
	c.AddEdge(childA, nil, nil)
	c.AddEdge(childB, nil, nil)

	prev1LHS := grammar.NewStringLit("prev1-marker")
	prev1Prod := grammar.NewProduction(prev1LHS, []grammar.Element{a})
	prev1 := chart.NewEdge(0, 1, prev1Prod, 1)
	c.AddEdge(prev1, nil, childA) // prev1's own tuple: [childA]

	goalLHS := grammar.NewAnd(a, b)
	goalProd := grammar.NewProduction(goalLHS, []grammar.Element{a, b})
	p := chart.NewEdge(0, 2, goalProd, 2)

	// arity-2 tuple: extends prev1's [childA] with childB -> [childA, childB]
	c.AddEdge(p, prev1, childB)
	// arity-1 tuple: just [childA]
	c.AddEdge(p, nil, childA)

	trees := mostCompactDerivations(c, p, []string{"a", "b"})
	if len(trees) != 1 {
		t.Fatalf("len(trees) = %d, want 1", len(trees))
	}
	if len(trees[0].Children) != 1 {
		t.Fatalf("len(trees[0].Children) = %d, want 1 (minimum-arity tuple [childA] should win)", len(trees[0].Children))
	}
}

func TestBestTreeWithParseResultRejectsEmpty(t *testing.T) {
	if _, _, err := BestTreeWithParseResult(nil); err == nil {
		t.Fatal("BestTreeWithParseResult(nil) should return an error")
	}
}

func TestBestTreeWithParseResultPicksSmallest(t *testing.T) {
	a := grammar.NewStringLit("a")
	small := terminalEdge(a, 0, 1)
	smallNode := NewNode(small, nil, "a")

	lhs := grammar.NewAnd(a, a)
	prod := grammar.NewProduction(lhs, []grammar.Element{a, a})
	bigEdge := chart.NewEdge(0, 2, prod, 2)
	bigNode := NewNode(bigEdge, []*Node{smallNode, smallNode}, "a a")

	best, result, err := BestTreeWithParseResult([]*Node{bigNode, smallNode})
	if err != nil {
		t.Fatalf("BestTreeWithParseResult returned error: %v", err)
	}
	if best != smallNode {
		t.Fatal("BestTreeWithParseResult should pick the smaller tree")
	}
	if result == nil {
		t.Fatal("BestTreeWithParseResult should also return a folded Result")
	}
}
