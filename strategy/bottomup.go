package strategy

import (
	"github.com/aeryon-dev/semchart/chart"
	"github.com/aeryon-dev/semchart/grammar"
)

// BottomUpScan tries every terminal production the grammar has against
// phrase, adding a completed edge for each one that matches.
type BottomUpScan struct{}

func (BottomUpScan) Apply(c *chart.Chart, g *grammar.Grammar, agenda *chart.Agenda, phrase string) bool {
	progressed := false
	for _, prod := range g.FilterTerminalsForScan(phrase) {
		edge := chart.NewEdge(uint(c.ChartI-1), uint(c.ChartI), prod, len(prod.RHS))
		progressed = true
		if c.AddEdge(edge, nil, nil) {
			agenda.Push(edge)
		}
	}
	return progressed
}

// BottomUpPredict adds a zero-width edge for every production whose RHS
// starts with a completed edge's left-hand side, letting completion climb
// upward from the words actually seen.
type BottomUpPredict struct{}

func (BottomUpPredict) Apply(c *chart.Chart, g *grammar.Grammar, agenda *chart.Agenda, edge *chart.Edge, phrase string) bool {
	if !edge.IsComplete() {
		return false
	}
	for _, prod := range g.FilterProductionsForPredictionByRHS(edge.Production.LHS) {
		predicted := chart.NewEdge(edge.Start, edge.Start, prod, 0)
		if c.AddEdge(predicted, nil, nil) {
			agenda.Push(predicted)
		}
	}
	return false
}
