// Package examples holds small grammars used as test fixtures, each
// grounded on one of the grammars shipped in the teacher's own example
// suite, re-expressed against this module's grammar/chart/strategy/tree/
// parser packages.
package examples

import (
	"strconv"

	"github.com/aeryon-dev/semchart/grammar"
)

// replacedString builds a terminal that, once matched, replaces its own
// lexicon with v rather than whatever text it matched.
func replacedString(s string, v int) grammar.Element {
	return grammar.NewStringLit(s).ReplaceResultWith(v)
}

func toInt(v interface{}) int {
	switch t := v.(type) {
	case int:
		return t
	case string:
		n, err := strconv.Atoi(t)
		if err != nil {
			panic(err)
		}
		return n
	default:
		panic("numbers: unexpected value type in result")
	}
}

// resultSum replaces r's value with the sum of its children's values, or,
// when it holds a single value rather than a list, with that value as an int.
func resultSum(r grammar.ResultAccessor) {
	list, ok := r.Get().([]interface{})
	if !ok {
		r.Set(toInt(r.Get()))
		return
	}
	sum := 0
	for _, item := range list {
		sum += toInt(item)
	}
	r.Set(sum)
}

// resultMul replaces r's value with the product of its children's values.
// A child that is itself a list (e.g. the "zeros" multiplier chain) only
// contributes its first element — a quirk carried over from the grammar
// this is modeled on, not a bug introduced here.
func resultMul(r grammar.ResultAccessor) {
	list, ok := r.Get().([]interface{})
	if !ok {
		r.Set(toInt(r.Get()))
		return
	}
	product := 1
	for _, item := range list {
		if nested, isList := item.([]interface{}); isList {
			if len(nested) == 0 {
				continue
			}
			item = nested[0]
		}
		product *= toInt(item)
	}
	r.Set(product)
}

var singleMaps = []struct {
	word  string
	value int
}{
	{"zero", 0}, {"o", 0}, {"oh", 0}, {"nada", 0}, {"one", 1},
	{"a", 1}, {"two", 2}, {"three", 3}, {"four", 4}, {"five", 5},
	{"six", 6}, {"seven", 7}, {"eight", 8}, {"nine", 9}, {"ten", 10},
	{"eleven", 11}, {"twelve", 12}, {"thirteen", 13}, {"fourteen", 14},
	{"forteen", 14}, {"fifteen", 15}, {"sixteen", 16}, {"seventeen", 17},
	{"eighteen", 18}, {"nineteen", 19},
}

var tenMaps = []struct {
	word  string
	value int
}{
	{"ten", 10}, {"twenty", 20}, {"thirty", 30}, {"forty", 40},
	{"fourty", 40}, {"fifty", 50}, {"sixty", 60}, {"seventy", 70},
	{"eighty", 80}, {"ninety", 90},
}

var zeroMaps = []struct {
	word  string
	value int
}{
	{"hundred", 100}, {"thousand", 1000}, {"million", 1_000_000},
	{"billion", 1_000_000_000}, {"trillion", 1_000_000_000_000},
}

// NumbersGrammar spells out small English number phrases ("one hundred
// thousand five hundred sixty one") down to their integer value.
type NumbersGrammar struct {
	Digits   grammar.Element
	Single   grammar.Element
	Ten      grammar.Element
	Double   grammar.Element
	AHundred grammar.Element
	Zero     grammar.Element
	Zeros    grammar.Element
	Hundred  grammar.Element
	Unit     grammar.Element
	Goal     grammar.Element
}

// NewNumbersGrammar builds and compiles the number grammar standalone.
func NewNumbersGrammar() (*grammar.Grammar, *NumbersGrammar) {
	g := BuildNumbersElements()
	compiled, err := grammar.Compile(g.Goal, g)
	if err != nil {
		panic(err)
	}
	return compiled, g
}

// BuildNumbersElements builds the number grammar's element tree without
// compiling it, so another grammar (times.go's TimesGrammar) can embed its
// Goal element as a subgrammar before compiling the combined whole.
func BuildNumbersElements() *NumbersGrammar {
	g := &NumbersGrammar{}

	g.Digits = grammar.NewRegexLit(`\d+`).SetResultAction(func(r grammar.ResultAccessor) {
		r.Set(toInt(r.Get()))
	})

	singleAlts := make([]interface{}, len(singleMaps))
	for i, m := range singleMaps {
		singleAlts[i] = replacedString(m.word, m.value)
	}
	g.Single = grammar.NewOr(singleAlts...)

	tenAlts := make([]interface{}, len(tenMaps))
	for i, m := range tenMaps {
		tenAlts[i] = replacedString(m.word, m.value)
	}
	g.Ten = grammar.NewOr(tenAlts...)

	g.Double = grammar.NewOr(
		grammar.NewAnd(grammar.NewOptional(g.Ten), grammar.NewOptional(g.Single)).SetResultAction(resultSum),
		g.Digits,
	)

	g.AHundred = replacedString("hundred", 100)

	zeroAlts := make([]interface{}, len(zeroMaps))
	for i, m := range zeroMaps {
		zeroAlts[i] = replacedString(m.word, m.value)
	}
	g.Zero = grammar.NewOr(zeroAlts...)
	g.Zeros = grammar.NewZeroOrMore(g.Zero).SetResultAction(resultMul)

	g.Hundred = grammar.NewAnd(
		grammar.NewAnd(g.Double, g.AHundred).SetResultAction(resultMul),
		grammar.NewOptional(g.Double),
	).SetResultAction(resultSum)

	g.Unit = grammar.NewAnd(grammar.NewOr(g.Double, g.Hundred), g.Zeros).SetResultAction(resultMul)

	g.Goal = grammar.NewOneOrMore(g.Unit).SetResultAction(resultSum)

	return g
}
