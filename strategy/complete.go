package strategy

import (
	"github.com/aeryon-dev/semchart/chart"
	"github.com/aeryon-dev/semchart/grammar"
)

// Complete merges a freshly produced edge with whichever incomplete edges
// it can advance — symmetric in direction: a completed edge looks for
// incomplete edges waiting on its LHS, and an incomplete edge looks for
// completed edges sitting right where it needs one.
type Complete struct{}

func (Complete) Apply(c *chart.Chart, g *grammar.Grammar, agenda *chart.Agenda, edge *chart.Edge, phrase string) bool {
	if edge.IsComplete() {
		applyComplete(c, agenda, edge)
	} else {
		applyIncomplete(c, agenda, edge)
	}
	return false
}

func applyComplete(c *chart.Chart, agenda *chart.Agenda, edge *chart.Edge) {
	for _, filtered := range c.FilterEdgesForCompletion(int(edge.Start), edge.Production.LHS) {
		moved := filtered.MergeAndForwardDot(edge)
		if moved.Key() == edge.Key() {
			continue
		}
		if c.AddEdge(moved, filtered, edge) {
			agenda.Push(moved)
		}
	}
}

func applyIncomplete(c *chart.Chart, agenda *chart.Agenda, edge *chart.Edge) {
	for _, filtered := range c.FilterCompletedEdges(int(edge.End), edge.Production.RHSAt(edge.Dot)) {
		moved := edge.MergeAndForwardDot(filtered)
		if moved.Key() == edge.Key() {
			continue
		}
		if c.AddEdge(moved, edge, filtered) {
			agenda.Push(moved)
		}
	}
}
