/*
Package tree extracts derivations from a finished chart.Chart and folds one
into a flattened, named parse result.

Extraction has two modes: Trees with allTrees=true yields every derivation
the chart admits (the Cartesian product over every edge's backpointer
tuples — can be large), while allTrees=false yields only the most compact
ones per root (minimum child count, then minimum total child size, a
deterministic tie-break beyond that). BestTreeWithParseResult picks the
smallest of a set of trees and folds it into a Result.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.
*/
package tree

import (
	"github.com/npillmayer/schuko/tracing"
)

func tracer() tracing.Trace {
	return tracing.Select("semchart.tree")
}
