/*
Package grammar provides grammar elements, combinators and a compiler that
reduces a grammar built from them into a flat set of productions suitable
for chart parsing.

Building a grammar

Grammars are built directly in host Go code out of terminals and
combinators, not out of a separate grammar language:

    light   := grammar.NewSetLitCs([]string{"on", "off"})
    switch_ := grammar.NewStringLitCs("switch")
    goal    := grammar.NewAnd(switch_, light)

Terminals come in case-sensitive/case-insensitive pairs (NewStringLitCs /
NewStringLit, NewSetLitCs / NewSetLit, NewRegexLitCs / NewRegexLit), plus
NewRegexLitPartial for a regex allowed to match a prefix of the phrase
rather than the whole thing. Combinators (And, Or, Optional, OneOrMore,
ZeroOrMore) build up non-terminals the same way operator overloading does
in the language this package's algorithms are modeled on — Go has none,
so plain constructor functions take its place.

Compiling a grammar

A *Grammar is produced by Compile, which names every reachable element,
flattens the tree into Production values, eliminates one level of
Null-only productions, and precomputes the left-corner closure used by
the left-corner chart strategy:

    g, err := grammar.Compile(goal, container)

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.
*/
package grammar

import (
	"github.com/npillmayer/schuko/tracing"
)

func tracer() tracing.Trace {
	return tracing.Select("semchart.grammar")
}
