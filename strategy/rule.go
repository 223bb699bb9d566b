package strategy

import (
	"github.com/aeryon-dev/semchart/chart"
	"github.com/aeryon-dev/semchart/grammar"
)

// InitRule seeds the chart and agenda once, before any edge has been
// popped. phrase is the very first phrase the driver is about to try.
type InitRule interface {
	Apply(c *chart.Chart, g *grammar.Grammar, agenda *chart.Agenda, phrase string) (progressed bool)
}

// EdgeRule reacts to a single edge popped off the agenda, possibly adding
// more edges (and, through them, pushing more work onto the agenda).
// progressed reports whether this application consumed a word of phrase —
// only scan rules ever return true.
type EdgeRule interface {
	Apply(c *chart.Chart, g *grammar.Grammar, agenda *chart.Agenda, edge *chart.Edge, phrase string) (progressed bool)
}

// Strategy bundles the init and edge rules that make up one parsing
// approach.
type Strategy struct {
	Name      string
	InitRules []InitRule
	EdgeRules []EdgeRule
}

// IsLeftCorner reports whether this strategy uses left-corner
// prediction/scanning, the only strategy that needs the grammar's
// left-corner closure precomputed.
func (s Strategy) IsLeftCorner() bool {
	for _, r := range s.EdgeRules {
		if _, ok := r.(LeftCornerPredictScan); ok {
			return true
		}
	}
	return false
}
