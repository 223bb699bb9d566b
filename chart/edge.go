package chart

import (
	"fmt"
	"strings"

	"github.com/aeryon-dev/semchart"
	"github.com/aeryon-dev/semchart/grammar"
)

// Edge is one entry in the chart: a production, how far into its RHS we've
// matched (dot), and the token span that match covers. Edges are immutable
// once built — the hash is computed once at construction — so two edges
// with identical (start, end, production, dot) are always the same edge,
// letting the chart de-duplicate by value rather than by pointer.
type Edge struct {
	Start      uint
	End        uint
	Production *grammar.Production
	Dot        int

	key string
}

// NewEdge builds an edge. start and end are token positions, not byte
// offsets; dot must be in [0, len(production.RHS)].
func NewEdge(start, end uint, production *grammar.Production, dot int) *Edge {
	return &Edge{
		Start:      start,
		End:        end,
		Production: production,
		Dot:        dot,
		key:        edgeHash(start, end, production.Key(), dot),
	}
}

// Key is the edge's identity, used as a chart/agenda/backpointer map key.
func (e *Edge) Key() string { return e.key }

// Span is end - start.
func (e *Edge) Span() uint { return e.End - e.Start }

// AsSpan returns the token range this edge covers as a semchart.Span.
func (e *Edge) AsSpan() semchart.Span { return semchart.Span{e.Start, e.End} }

// RHSAfterDot returns the RHS element just past the dot, or nil if the edge
// is already complete.
func (e *Edge) RHSAfterDot() grammar.Element {
	if e.Dot == len(e.Production.RHS) {
		return nil
	}
	return e.Production.RHSAt(e.Dot)
}

// ScanAfterDot tries to match phrase against the terminal right after the
// dot. progressed reports whether phrase matched; rhsIsTerminal reports
// whether there even was a terminal to try (false when the RHS after the
// dot is a nonterminal, or there is none).
func (e *Edge) ScanAfterDot(phrase string) (progressed, rhsIsTerminal bool) {
	if e.Dot == len(e.Production.RHS) {
		return false, false
	}
	rhs := e.Production.RHSAt(e.Dot)
	if !rhs.IsTerminal() {
		return false, false
	}
	t, ok := rhs.(grammar.Terminal)
	if !ok {
		return false, false
	}
	return t.Match(phrase), true
}

// MergeAndForwardDot advances self's dot by one and extends its span to
// other's end, producing a new edge. Requires other.Start == e.End.
func (e *Edge) MergeAndForwardDot(other *Edge) *Edge {
	if other.Start != e.End {
		panic(fmt.Errorf("chart: can't merge and forward dot:\n%s\n%s", e, other))
	}
	if e.Dot >= len(e.Production.RHS) {
		panic(fmt.Errorf("chart: dot position %d past RHS of %s", e.Dot, e))
	}
	return NewEdge(e.Start, other.End, e.Production, e.Dot+1)
}

// IsComplete reports whether the dot has reached the end of the RHS.
func (e *Edge) IsComplete() bool {
	return e.Dot == len(e.Production.RHS)
}

func (e *Edge) String() string {
	rhs := e.Production.RHS
	before := make([]string, e.Dot)
	for i := 0; i < e.Dot; i++ {
		before[i] = grammar.DisplayName(rhs[i])
	}
	after := make([]string, len(rhs)-e.Dot)
	for i := e.Dot; i < len(rhs); i++ {
		after[i-e.Dot] = grammar.DisplayName(rhs[i])
	}
	return fmt.Sprintf("[%d, %d] %s -> %s * %s",
		e.Start, e.End, grammar.DisplayName(e.Production.LHS),
		strings.Join(before, " "), strings.Join(after, " "))
}
