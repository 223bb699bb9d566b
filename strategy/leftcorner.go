package strategy

import (
	"github.com/aeryon-dev/semchart/chart"
	"github.com/aeryon-dev/semchart/grammar"
)

// LeftCornerPredictScan only ever predicts productions whose left-corner
// terminal can actually match phrase, skipping the wasted top-down
// predictions TopDownPredict makes for branches no word in phrase could
// ever satisfy.
type LeftCornerPredictScan struct{}

func (LeftCornerPredictScan) Apply(c *chart.Chart, g *grammar.Grammar, agenda *chart.Agenda, edge *chart.Edge, phrase string) bool {
	if edge.IsComplete() {
		return false
	}
	rhs := edge.RHSAfterDot()

	var candidates []*grammar.Production
	if rhs.IsTerminal() {
		if p, ok := g.TerminalIndex[rhs]; ok {
			candidates = []*grammar.Production{p}
		}
	} else {
		candidates = g.NonterminalIndex[rhs]
	}

	progressed := false
	for _, prod := range candidates {
		for _, term := range g.LeftCornerTerminals(prod) {
			t, ok := term.LHS.(grammar.Terminal)
			if !ok || !t.Match(phrase) {
				continue
			}
			progressed = true
			scanned := chart.NewEdge(uint(c.ChartI-1), uint(c.ChartI), term, len(term.RHS))
			if c.AddEdge(scanned, nil, nil) {
				agenda.Push(scanned)
			}

			if prod.IsTerminal {
				continue
			}
			for _, nonterm := range g.LeftCornerNonterminals(prod) {
				if !hasProduction(g.LeftCornerTerminals(nonterm), term) {
					continue
				}
				predicted := chart.NewEdge(uint(c.ChartI-1), uint(c.ChartI-1), nonterm, 0)
				if c.AddEdge(predicted, nil, nil) {
					agenda.Push(predicted)
				}
			}
		}
	}
	return progressed
}

func hasProduction(list []*grammar.Production, p *grammar.Production) bool {
	for _, q := range list {
		if q == p {
			return true
		}
	}
	return false
}
