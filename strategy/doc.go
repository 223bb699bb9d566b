/*
Package strategy provides the chart rules (scan, predict, complete) that
turn a grammar and an input phrase into chart edges, and the three fixed
rule bundles — TopDown, BottomUp, LeftCorner — that package parser drives.

A rule is either an init rule, run once per parse to seed the chart and
agenda, or an edge rule, run once for every edge popped off the agenda.
Bundling rules into a Strategy rather than letting callers mix and match
individual rules keeps the set of working combinations to the three the
teacher's engine actually validates.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.
*/
package strategy

import (
	"github.com/npillmayer/schuko/tracing"
)

func tracer() tracing.Trace {
	return tracing.Select("semchart.strategy")
}
