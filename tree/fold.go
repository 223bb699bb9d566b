package tree

import "github.com/aeryon-dev/semchart/grammar"

// ToParseResult folds this tree into a Result, flattening as much as
// possible: a name shared by more than one child anywhere under this node
// becomes a list, a name that occurs only once is elevated to sit directly
// alongside its parent, and every element's post-parse callback runs on
// its own folded Result before the fold continues upward.
//
// Returns nil when this node contributes nothing to the result — it's
// marked Ignore(), or its span was empty (an Optional not taken, a
// ZeroOrMore with no repetitions).
func (n *Node) ToParseResult() *Result {
	lhs := n.Parent.Production.LHS
	if lhs.IgnoreInResult() {
		return nil
	}
	if n.Lexicon == "" {
		return nil
	}
	name := grammar.DisplayName(lhs)
	parentAsFlat := !lhs.AsList()

	var children []*Node
	var childResults []*Result
	for _, c := range n.Children {
		r := c.ToParseResult()
		if r != nil {
			children = append(children, c)
			childResults = append(childResults, r)
		}
	}

	result := NewResult(name, n.Lexicon, parentAsFlat)

	if len(childResults) != 0 {
		nameCount := map[string]int{}
		for _, cr := range childResults {
			for _, nm := range cr.Names() {
				nameCount[nm]++
			}
		}
		for i, cr := range childResults {
			flat := parentAsFlat
			for _, nm := range cr.Names() {
				if nameCount[nm] != 1 {
					flat = false
					break
				}
			}
			result.AddResult(cr, children[i].IsLeaf() || flat)
		}

		newLexicon := make([]interface{}, len(childResults))
		for i, cr := range childResults {
			newLexicon[i] = cr.Get()
		}
		if len(newLexicon) == 1 && parentAsFlat {
			result.Set(newLexicon[0])
		} else {
			result.Set(newLexicon)
		}
	}

	lhs.RunPostFuncs(result)
	return result
}
