package strategy

import (
	"github.com/aeryon-dev/semchart/chart"
	"github.com/aeryon-dev/semchart/grammar"
)

// TopDownInit seeds the chart with one zero-width edge per goal production
// at position 0, then (agenda still being empty, since init rules run
// before any edge is popped) refills the agenda from whatever the chart
// already holds ending at ChartI-1 — needed for incremental parsing, where
// the chart carries edges forward from a previous call.
type TopDownInit struct{}

func (TopDownInit) Apply(c *chart.Chart, g *grammar.Grammar, agenda *chart.Agenda, phrase string) bool {
	if c.Size() == 0 {
		for _, prod := range g.GoalProductions {
			edge := chart.NewEdge(0, 0, prod, 0)
			if c.AddEdge(edge, nil, nil) {
				agenda.Push(edge)
			}
		}
		if agenda.Len() == 0 { // corner case: grammar has no nonterminals
			for _, prod := range g.Productions {
				edge := chart.NewEdge(0, 0, prod, 0)
				if c.AddEdge(edge, nil, nil) {
					agenda.Push(edge)
				}
			}
		}
	}
	if agenda.Len() == 0 {
		agenda.Extend(c.FilterEdgesForPrediction(c.ChartI - 1))
	}
	return false
}

// TopDownPredict adds a zero-width edge for every production of the
// nonterminal right after the dot, for an edge that just reached the
// current token boundary.
type TopDownPredict struct{}

func (TopDownPredict) Apply(c *chart.Chart, g *grammar.Grammar, agenda *chart.Agenda, edge *chart.Edge, phrase string) bool {
	if edge.IsComplete() {
		return false
	}
	if int(edge.End)+1 != c.ChartI {
		return false
	}
	rhs := edge.RHSAfterDot()
	if rhs.IsTerminal() {
		return false
	}
	for _, prod := range g.FilterProductionsForPredictionByLHS(rhs) {
		predicted := chart.NewEdge(edge.End, edge.End, prod, 0)
		if c.AddEdge(predicted, nil, nil) {
			agenda.Push(predicted)
		}
	}
	return false
}

// TopDownScan tries to match phrase against the terminal right after the
// dot of an edge that just reached the current token boundary.
type TopDownScan struct{}

func (TopDownScan) Apply(c *chart.Chart, g *grammar.Grammar, agenda *chart.Agenda, edge *chart.Edge, phrase string) bool {
	if edge.IsComplete() {
		return false
	}
	if int(edge.End)+1 != c.ChartI {
		return false
	}
	lexProgress, rhsIsTerminal := edge.ScanAfterDot(phrase)
	if !rhsIsTerminal || !lexProgress {
		return false
	}
	term := g.TerminalIndex[edge.Production.RHSAt(edge.Dot)]
	scanned := chart.NewEdge(uint(c.ChartI-1), uint(c.ChartI), term, len(term.RHS))
	if c.AddEdge(scanned, nil, nil) {
		agenda.Push(scanned)
	}
	return true
}
