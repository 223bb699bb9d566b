/*
Package semchart is a semantic chart parser for small, hand-written grammars.

It turns short natural-language utterances into structured records by
matching them against grammars assembled from host Go code out of a fixed
vocabulary of terminals and combinators. Package structure is as follows:

■ grammar: grammar elements (terminals, And/Or/Optional/OneOrMore/ZeroOrMore)
and the compiler that reduces them to productions, eliminates nullable
productions and precomputes the left-corner closure.

■ chart: the edge/chart/agenda data structures shared by all parsing
strategies.

■ strategy: the pluggable chart rules (scan/predict/complete) and the three
fixed rule bundles (top-down, bottom-up, left-corner).

■ tree: derivation extraction ("most compact" tree selection) and folding of
a tree into a flattened, named parse result.

■ parser: the robust driver — adaptive tokenization, phrase skipping and
incremental, chart-reusing parsing.

The base package contains data types shared across all of the above.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.
*/
package semchart
