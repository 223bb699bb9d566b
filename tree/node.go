package tree

import (
	"strings"

	"github.com/aeryon-dev/semchart"
	"github.com/aeryon-dev/semchart/chart"
	"github.com/aeryon-dev/semchart/grammar"
)

// Node is one node of an extracted derivation. Parent is the chart edge it
// was built from; Span is the token range that edge covers; Lexicon is the
// run of input tokens over that range, joined by spaces (empty for a
// zero-width span, e.g. an Optional not taken).
type Node struct {
	Parent   *chart.Edge
	Children []*Node
	Span     semchart.Span
	Lexicon  string
}

// NewNode builds a node, splicing in grandchildren in place of any child
// built from the same self-recursive production as parent — this flattens
// a OneOrMore/ZeroOrMore derivation chain (each repetition nests one level
// deeper than the last) into a single flat list of repetitions.
func NewNode(parent *chart.Edge, children []*Node, lexicon string) *Node {
	n := &Node{Parent: parent, Span: parent.AsSpan(), Lexicon: lexicon}
	if parent.Production.IsRecursive {
		flattened := make([]*Node, 0, len(children))
		for _, child := range children {
			if child.Parent.Production.LHS == parent.Production.LHS {
				flattened = append(flattened, child.Children...)
			} else {
				flattened = append(flattened, child)
			}
		}
		n.Children = flattened
	} else {
		n.Children = children
	}
	return n
}

// IsLeaf reports whether this node has no children — either it's a
// terminal match, or a zero-width Null match.
func (n *Node) IsLeaf() bool { return len(n.Children) == 0 }

// Size is the total number of nodes in the tree rooted at n, used to rank
// candidate derivations by compactness.
func (n *Node) Size() int {
	size := 1
	for _, c := range n.Children {
		size += c.Size()
	}
	return size
}

func (n *Node) String() string {
	var b strings.Builder
	n.writeIndented(&b, 0)
	return b.String()
}

func (n *Node) writeIndented(b *strings.Builder, indent int) {
	b.WriteString(strings.Repeat(" ", indent))
	b.WriteString("(")
	b.WriteString(grammar.DisplayName(n.Parent.Production.LHS))
	if n.IsLeaf() {
		b.WriteString(` "` + n.Lexicon + `")` + "\n")
		return
	}
	b.WriteString("\n")
	for _, c := range n.Children {
		c.writeIndented(b, indent+2)
	}
	b.WriteString(strings.Repeat(" ", indent))
	b.WriteString(")\n")
}

// AsJSON renders the tree as nested {name: children-or-lexicon} maps,
// suitable for json.Marshal.
func (n *Node) AsJSON() map[string]interface{} {
	name := grammar.DisplayName(n.Parent.Production.LHS)
	if n.IsLeaf() {
		return map[string]interface{}{name: n.Lexicon}
	}
	children := make([]interface{}, len(n.Children))
	for i, c := range n.Children {
		children[i] = c.AsJSON()
	}
	return map[string]interface{}{name: children}
}
