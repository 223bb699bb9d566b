package tree

import (
	"strings"

	"golang.org/x/exp/slices"

	"github.com/aeryon-dev/semchart/chart"
	"github.com/aeryon-dev/semchart/grammar"
)

// Trees yields every derivation spanning the whole chart, restricted to
// roots whose production's LHS is goal (pass nil for any root). allTrees
// asks for every derivation the chart admits; otherwise only the most
// compact ones per root are returned.
func Trees(c *chart.Chart, tokens []string, allTrees bool, goal grammar.Element) ([]*Node, error) {
	if c.Size() <= 1 {
		return nil, &ParseError{Msg: "no parse tree found"}
	}
	var out []*Node
	for _, root := range c.RootCandidates() {
		if !root.IsComplete() {
			continue
		}
		if goal != nil && root.Production.LHS != goal {
			continue
		}
		if allTrees {
			out = append(out, allDerivations(c, root, tokens)...)
		} else {
			out = append(out, mostCompactDerivations(c, root, tokens)...)
		}
	}
	return out, nil
}

// BestTreeWithParseResult picks the smallest (by Size) of trees, folds it
// into a Result, and returns both.
func BestTreeWithParseResult(trees []*Node) (*Node, *Result, error) {
	if len(trees) == 0 {
		return nil, nil, &ParseError{Msg: "no parse tree found"}
	}
	best := trees[0]
	for _, t := range trees[1:] {
		if t.Size() < best.Size() || (t.Size() == best.Size() && t.String() < best.String()) {
			best = t
		}
	}
	return best, best.ToParseResult(), nil
}

func lexiconFor(tokens []string, edge *chart.Edge) string {
	if tokens == nil {
		return ""
	}
	if int(edge.Start) >= len(tokens) || int(edge.End) > len(tokens) || edge.Start > edge.End {
		return ""
	}
	return strings.Join(tokens[edge.Start:edge.End], " ")
}

func allDerivations(c *chart.Chart, parent *chart.Edge, tokens []string) []*Node {
	lexicon := lexiconFor(tokens, parent)
	tuples, ok := c.Backpointers(parent)
	if !ok {
		return []*Node{NewNode(parent, nil, lexicon)}
	}
	var out []*Node
	for _, tuple := range tuples {
		childLists := make([][]*Node, len(tuple))
		for i, child := range tuple {
			childLists[i] = allDerivations(c, child, tokens)
		}
		for _, combo := range cartesianProduct(childLists) {
			out = append(out, NewNode(parent, combo, lexicon))
		}
	}
	return out
}

// mostCompactDerivations eliminates spurious ambiguity (mostly from
// Optional/ZeroOrMore not being taken) by keeping only the backpointer
// tuples of minimum arity, then among those only the one whose children
// are themselves smallest. Ties beyond that are broken deterministically
// by rendered form, a stronger guarantee than the modeled engine gives
// (its backpointer sets have no defined iteration order).
func mostCompactDerivations(c *chart.Chart, parent *chart.Edge, tokens []string) []*Node {
	lexicon := lexiconFor(tokens, parent)
	tuples, ok := c.Backpointers(parent)
	if !ok {
		return []*Node{NewNode(parent, nil, lexicon)}
	}

	minLen := -1
	for _, t := range tuples {
		if minLen == -1 || len(t) < minLen {
			minLen = len(t)
		}
	}
	var candidates [][]*chart.Edge
	for _, t := range tuples {
		if len(t) == minLen {
			candidates = append(candidates, t)
		}
	}

	type scored struct {
		sum        int
		childTrees [][]*Node
		tag        string
	}
	var options []scored
	for _, tuple := range candidates {
		childTrees := make([][]*Node, len(tuple))
		sum := 0
		var tags []string
		for i, child := range tuple {
			childTrees[i] = mostCompactDerivations(c, child, tokens)
			sum += childTrees[i][0].Size()
			tags = append(tags, child.String())
		}
		options = append(options, scored{sum: sum, childTrees: childTrees, tag: strings.Join(tags, "|")})
	}
	slices.SortStableFunc(options, func(a, b scored) bool {
		if a.sum != b.sum {
			return a.sum < b.sum
		}
		return a.tag < b.tag
	})
	best := options[0].childTrees

	var out []*Node
	for _, combo := range cartesianProduct(best) {
		out = append(out, NewNode(parent, combo, lexicon))
	}
	return out
}

// cartesianProduct returns every combination that picks exactly one
// element from each slice of lists, in order.
func cartesianProduct(lists [][]*Node) [][]*Node {
	if len(lists) == 0 {
		return [][]*Node{{}}
	}
	rest := cartesianProduct(lists[1:])
	var out [][]*Node
	for _, head := range lists[0] {
		for _, tail := range rest {
			combo := make([]*Node, 0, len(tail)+1)
			combo = append(combo, head)
			combo = append(combo, tail...)
			out = append(out, combo)
		}
	}
	return out
}
