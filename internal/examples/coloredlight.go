package examples

import "github.com/aeryon-dev/semchart/grammar"

// ColoredLightGrammar recognizes loose, conversational light-control
// commands ("blink top lights twice", "my top and bottom lights can be
// warmer", "give me something romantic"), embedding both NumbersGrammar
// (via TimesGrammar) and ColorsGrammar as subgrammars.
type ColoredLightGrammar struct {
	On    grammar.Element
	Off   grammar.Element
	OnOff grammar.Element

	GeneralName      grammar.Element
	SpecificName     grammar.Element
	LightQuantifiers grammar.Element
	LightName        grammar.Element
	ActionBlink      grammar.Element
	BrightnessMore   grammar.Element
	BrightnessLess   grammar.Element
	Brightness       grammar.Element
	SaturationMore   grammar.Element
	SaturationLess   grammar.Element
	Saturation       grammar.Element
	Color            grammar.Element
	Times            grammar.Element
	Theme            grammar.Element
	OneParse         grammar.Element
	Goal             grammar.Element
}

// NewColoredLightGrammar builds and compiles the colored-light grammar.
func NewColoredLightGrammar() (*grammar.Grammar, *ColoredLightGrammar) {
	l := BuildColoredLightElements()
	compiled, err := grammar.Compile(l.Goal, l)
	if err != nil {
		panic(err)
	}
	return compiled, l
}

// BuildColoredLightElements builds the colored-light element tree without
// compiling it.
func BuildColoredLightElements() *ColoredLightGrammar {
	l := &ColoredLightGrammar{}

	l.On = grammar.NewSetLit([]string{"turn on", "on", "hit"})
	l.Off = grammar.NewSetLit([]string{"turn off", "off", "kill"})
	l.OnOff = grammar.NewOr(l.On, l.Off)

	l.GeneralName = grammar.NewSetLit([]string{"lights", "light", "lamp", "bulb", "lightbulb"})
	l.SpecificName = grammar.NewSetLit([]string{"top", "bottom", "middle", "kitchen",
		"living room", "bedroom", "bedside"})
	l.LightQuantifiers = grammar.NewSetLit([]string{"both", "all"})
	l.LightName = grammar.NewAnd(
		grammar.NewOptional(l.LightQuantifiers),
		grammar.NewZeroOrMore(l.SpecificName),
		grammar.NewOptional(l.GeneralName),
	)

	l.ActionBlink = grammar.NewOptional(grammar.NewSetLit([]string{"blink", "flash"}))

	l.BrightnessMore = grammar.NewSetLit([]string{"bright", "brighter", "strong", "stronger", "too dark"})
	l.BrightnessLess = grammar.NewSetLit([]string{"less bright", "soft", "softer", "dim", "dimmer", "too bright"})
	l.Brightness = grammar.NewOr(l.BrightnessMore, l.BrightnessLess)

	l.SaturationMore = grammar.NewSetLit([]string{"deeper", "darker", "warmer", "too cold"})
	l.SaturationLess = grammar.NewSetLit([]string{"lighter", "shallower", "colder", "too warm"})
	l.Saturation = grammar.NewOr(l.SaturationLess, l.SaturationMore)

	l.Color = BuildColorsElement()
	l.Times = BuildTimesElements().Goal

	l.Theme = grammar.NewSetLit([]string{"christmas", "xmas", "halloween", "romantic",
		"valentine", "valentine's", "reading", "beach", "sunrise", "sunset"})

	l.OneParse = grammar.NewOr(
		l.OnOff,
		grammar.NewAnd(l.LightName, l.OnOff),
		grammar.NewAnd(l.OnOff, l.LightName),
		grammar.NewAnd(l.LightName, grammar.NewOptional(l.Color), grammar.NewOptional(l.Times)),
		grammar.NewAnd(l.LightName, grammar.NewOptional(l.Times), grammar.NewOptional(l.Color)),
		grammar.NewAnd(l.LightName, l.Color),
		grammar.NewAnd(l.LightName, l.Brightness),
		grammar.NewAnd(l.Brightness, l.LightName),
		grammar.NewAnd(l.LightName, l.Saturation),
		grammar.NewAnd(l.Saturation, l.LightName),
		l.Theme,
	)

	l.Goal = grammar.NewOr(
		grammar.NewOneOrMore(l.OneParse),
		grammar.NewAnd(l.ActionBlink, grammar.NewOneOrMore(l.OneParse)),
	)

	return l
}
