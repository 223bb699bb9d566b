/*
Package parser provides the robust, incremental driver: the piece that
turns a raw sentence (or a stream of single words, for incremental use)
into chart edges by repeatedly trying the chart strategy against growing
and shrinking candidate phrases.

Robustness here means two things: an unrecognized word is skipped rather
than aborting the whole parse, and a multi-word phrase ("turn off") is
tried before falling back to its first word alone, so a grammar can bind
whole idioms as single terminals without the caller having to pre-tokenize
around them.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.
*/
package parser

import (
	"github.com/npillmayer/schuko/tracing"
)

func tracer() tracing.Trace {
	return tracing.Select("semchart.parser")
}
