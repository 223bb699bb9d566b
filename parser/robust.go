package parser

import (
	"strings"

	"github.com/aeryon-dev/semchart/chart"
	"github.com/aeryon-dev/semchart/grammar"
	"github.com/aeryon-dev/semchart/strategy"
	"github.com/aeryon-dev/semchart/tree"
)

// RobustParser drives a grammar's chart strategy over raw input,
// recovering from unrecognized words and recognizing multi-word phrases
// without requiring the caller to pre-tokenize around them.
type RobustParser struct {
	Goal     grammar.Element
	Grammar  *grammar.Grammar
	Strategy strategy.Strategy

	toBeParsed     []string
	acceptedTokens []string
	chart          *chart.Chart
}

// New builds a parser for grammar, defaulting to the left-corner strategy
// when none is given.
func New(g *grammar.Grammar, strat ...strategy.Strategy) *RobustParser {
	s := strategy.LeftCorner
	if len(strat) > 0 {
		s = strat[0]
	}
	return &RobustParser{Goal: g.Goal, Grammar: g, Strategy: s}
}

// ClearCache drops all incremental-parsing history — the partially
// accumulated sentence, the tokens accepted so far, and the reused chart —
// so the next IncrementalParse call starts a fresh sentence.
func (p *RobustParser) ClearCache() {
	p.toBeParsed = nil
	p.acceptedTokens = nil
	p.chart = nil
}

func (p *RobustParser) parseSingleToken(agenda *chart.Agenda, c *chart.Chart, phrase string) bool {
	progressed := false
	for _, rule := range p.Strategy.InitRules {
		if rule.Apply(c, p.Grammar, agenda, phrase) {
			progressed = true
		}
	}
	for agenda.Len() > 0 {
		edge, _ := agenda.Pop()
		for _, rule := range p.Strategy.EdgeRules {
			if rule.Apply(c, p.Grammar, agenda, edge, phrase) {
				progressed = true
			}
		}
	}
	return progressed
}

// parseMultiToken parses tokens against c (a fresh incremental chart if
// nil), trying ever-longer phrases whenever the previous one didn't
// progress, and restarting from a single token whenever one did. It
// returns the chart and the list of phrases (each possibly multi-word)
// that matched.
func (p *RobustParser) parseMultiToken(tokens []string, c *chart.Chart) (*chart.Chart, []string) {
	agenda := chart.NewAgenda()
	if c == nil {
		c = chart.NewIncrementalChart(10, 10)
	}
	if c.Size() == 0 {
		c.ChartI = 0
	} else {
		c.ChartI = c.Size() - 1
	}

	var newTokens []string
	progressed := false
	phraseStart, phraseEnd := 0, 0
	length := len(tokens)
	for phraseEnd < length {
		if progressed || phraseEnd == 0 {
			c.ChartI++
			phraseStart = phraseEnd
			phraseEnd++
		} else {
			phraseEnd++ // grammar didn't match the shorter phrase yet; try a longer one
		}
		phrase := strings.Join(tokens[phraseStart:phraseEnd], " ")
		progressed = p.parseSingleToken(agenda, c, phrase)
		if progressed {
			newTokens = append(newTokens, phrase)
		}
	}
	tracer().Debugf("agenda total: %d", agenda.Total())
	return c, newTokens
}

// ParseToChart parses sentence into a raw chart and the tokens it
// recognized, without extracting a tree — useful when the caller wants to
// inspect every derivation the chart admits.
func (p *RobustParser) ParseToChart(sentence string) (*chart.Chart, []string, error) {
	tokens := splitWords(sentence)
	if len(tokens) == 0 {
		return nil, nil, &ParseError{Msg: "input string is empty"}
	}
	toBeParsed := append([]string(nil), tokens...)
	var allParsed []string
	var c *chart.Chart

	for len(toBeParsed) > 0 {
		var parsedTokens []string
		c, parsedTokens = p.parseMultiToken(toBeParsed, c)

		retLen := 0
		for _, t := range parsedTokens {
			retLen += len(splitWords(t))
		}

		switch {
		case retLen == 0:
			toBeParsed = toBeParsed[1:] // unrecognized token, skip it
		case retLen == len(toBeParsed):
			allParsed = append(allParsed, parsedTokens...)
			toBeParsed = nil
		default:
			allParsed = append(allParsed, parsedTokens...)
			skip := retLen + 1 // also skip the token the chart stalled on
			if skip > len(toBeParsed) {
				skip = len(toBeParsed)
			}
			toBeParsed = toBeParsed[skip:]
		}
	}

	if c != nil {
		tracer().Debugf("chart:\n%s", c)
		tracer().Debugf("backpointers:\n%s", c.PrintBackpointers())
	}
	return c, allParsed, nil
}

// IncrementalParseToChart feeds one more token into an in-progress parse.
// Pass the chart returned by the previous call (nil on the first call of a
// sentence). Returns the updated chart and any phrases it matched on this
// call — empty until enough tokens have accumulated to match something.
func (p *RobustParser) IncrementalParseToChart(token string, c *chart.Chart) (*chart.Chart, []string) {
	if c == nil {
		p.toBeParsed = nil
	}
	p.toBeParsed = append(p.toBeParsed, token)
	num := len(p.toBeParsed)

	progress := 0
	var parsedTokens []string
	for progress < num && len(parsedTokens) == 0 {
		phrase := strings.Join(p.toBeParsed[progress:], " ")
		c, parsedTokens = p.parseMultiToken([]string{phrase}, c)
		if len(parsedTokens) > 0 {
			p.toBeParsed = nil
		}
		progress++
	}
	return c, parsedTokens
}

// IncrementalParse feeds one more token into the parser's own running
// chart and returns the best tree and parse result so far. Set isFinal on
// the sentence's last token to reset the running state for the next
// sentence. onlyGoal restricts the extracted tree to the grammar's goal
// production; without it any complete root counts.
func (p *RobustParser) IncrementalParse(token string, isFinal, onlyGoal bool) (*tree.Node, *tree.Result) {
	newChart, parsedTokens := p.IncrementalParseToChart(token, p.chart)
	p.chart = newChart
	if len(parsedTokens) > 0 {
		p.acceptedTokens = append(p.acceptedTokens, parsedTokens...)
	}

	finish := func() {
		if isFinal {
			p.acceptedTokens = nil
			p.chart = nil
		}
	}

	var goal grammar.Element
	if onlyGoal {
		goal = p.Goal
	}
	trees, err := tree.Trees(p.chart, p.acceptedTokens, false, goal)
	if err != nil {
		finish()
		return nil, nil
	}
	bestTree, result, err := tree.BestTreeWithParseResult(trees)
	if err != nil {
		finish()
		return nil, nil
	}
	finish()
	return bestTree, result
}

// ParseString parses sentence end to end and returns its best tree and
// parse result.
func (p *RobustParser) ParseString(sentence string) (*tree.Node, *tree.Result, error) {
	c, tokens, err := p.ParseToChart(sentence)
	if err != nil {
		return nil, nil, err
	}
	trees, err := tree.Trees(c, tokens, false, p.Goal)
	if err != nil {
		return nil, nil, err
	}
	return tree.BestTreeWithParseResult(trees)
}

// Parse is an alias of ParseString.
func (p *RobustParser) Parse(sentence string) (*tree.Node, *tree.Result, error) {
	return p.ParseString(sentence)
}
