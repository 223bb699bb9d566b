/*
Package chart provides the edge/chart/agenda data structures shared by every
parsing strategy: a 2D chart of edges indexed by (start, end), a backpointer
map recording how each edge was derived, and a LIFO agenda of edges still
waiting to be processed.

None of this package knows how an edge gets created — that is the job of
package strategy. Chart only stores what strategy produces and answers the
three filter queries every chart rule needs: edges ending at a position,
edges waiting on a given nonterminal right after the dot, and completed
edges starting at a position with a given left-hand side.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.
*/
package chart

import (
	"github.com/npillmayer/schuko/tracing"
)

func tracer() tracing.Trace {
	return tracing.Select("semchart.chart")
}
