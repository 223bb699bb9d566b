package examples

import "github.com/aeryon-dev/semchart/grammar"

var specialMaps = []struct {
	word  string
	value int
}{
	{"once", 1},
	{"twice", 2},
	{"thrice", 3},
}

// TimesGrammar spells out a repetition count ("five times", "once",
// "a million times") down to its integer value, embedding NumbersGrammar's
// goal as a subgrammar.
type TimesGrammar struct {
	Special grammar.Element
	Numbers grammar.Element
	Goal    grammar.Element
}

// NewTimesGrammar builds and compiles the times grammar standalone.
func NewTimesGrammar() (*grammar.Grammar, *TimesGrammar) {
	t := BuildTimesElements()
	compiled, err := grammar.Compile(t.Goal, t)
	if err != nil {
		panic(err)
	}
	return compiled, t
}

// BuildTimesElements builds the times element tree without compiling it, so
// another grammar (colored_light.go's ColoredLightGrammar) can embed its
// Goal element as a subgrammar before compiling the combined whole.
func BuildTimesElements() *TimesGrammar {
	t := &TimesGrammar{}

	specialAlts := make([]interface{}, len(specialMaps))
	for i, m := range specialMaps {
		specialAlts[i] = replacedString(m.word, m.value)
	}
	t.Special = grammar.NewOr(specialAlts...)

	numbers := BuildNumbersElements()
	t.Numbers = numbers.Goal

	t.Goal = grammar.NewOr(
		t.Special,
		grammar.NewAnd(t.Numbers, grammar.NewSetLit([]string{"times", "time"}).Ignore()),
	)

	return t
}
