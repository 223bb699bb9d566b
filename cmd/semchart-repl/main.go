// Command semchart-repl is an interactive sandbox for trying a grammar
// against free-text input, printing the winning derivation tree and its
// folded parse result for each line.
//
// License
//
// Governed by a 3-Clause BSD license. License file may be found in the root
// folder of this module.
package main

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/chzyer/readline"
	"github.com/pterm/pterm"

	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gologadapter"

	"github.com/aeryon-dev/semchart/grammar"
	"github.com/aeryon-dev/semchart/internal/examples"
	"github.com/aeryon-dev/semchart/parser"
	"github.com/aeryon-dev/semchart/strategy"
	"github.com/aeryon-dev/semchart/tree"
)

func tracer() tracing.Trace {
	return tracing.Select("semchart.repl")
}

var grammars = map[string]func() (*grammar.Grammar, interface{}){
	"numbers": func() (*grammar.Grammar, interface{}) {
		g, n := examples.NewNumbersGrammar()
		return g, n
	},
	"times": func() (*grammar.Grammar, interface{}) {
		g, t := examples.NewTimesGrammar()
		return g, t
	},
	"colors": func() (*grammar.Grammar, interface{}) {
		g, c := examples.NewColorsGrammar()
		return g, c
	},
	"lights": func() (*grammar.Grammar, interface{}) {
		g, l := examples.NewColoredLightGrammar()
		return g, l
	},
}

var strategies = map[string]strategy.Strategy{
	"topdown":    strategy.TopDown,
	"bottomup":   strategy.BottomUp,
	"leftcorner": strategy.LeftCorner,
}

func main() {
	initDisplay()
	gtrace.SyntaxTracer = gologadapter.New()
	tlevel := flag.String("trace", "Info", "Trace level [Debug|Info|Error]")
	gname := flag.String("grammar", "numbers", "Grammar to load [numbers|times|colors|lights]")
	sname := flag.String("strategy", "leftcorner", "Chart strategy [topdown|bottomup|leftcorner]")
	flag.Parse()
	tracer().SetTraceLevel(tracing.TraceLevelFromString(*tlevel))

	build, ok := grammars[*gname]
	if !ok {
		fmt.Fprintf(os.Stderr, "unknown grammar %q\n", *gname)
		os.Exit(2)
	}
	strat, ok := strategies[*sname]
	if !ok {
		fmt.Fprintf(os.Stderr, "unknown strategy %q\n", *sname)
		os.Exit(2)
	}

	g, _ := build()
	p := parser.New(g, strat)

	pterm.Info.Println(fmt.Sprintf("Welcome to semchart-repl, grammar %q, strategy %q", *gname, *sname))
	pterm.Info.Println("Enter a sentence to parse; quit with <ctrl>D")

	input := strings.Join(flag.Args(), " ")
	if input = strings.TrimSpace(input); input != "" {
		runOnce(p, input)
	}

	repl, err := readline.New("semchart> ")
	if err != nil {
		tracer().Errorf(err.Error())
		os.Exit(3)
	}
	for {
		line, err := repl.Readline()
		if err != nil { // io.EOF
			break
		}
		if line = strings.TrimSpace(line); line == "" {
			continue
		}
		runOnce(p, line)
	}
	pterm.Info.Println("Good bye!")
}

func initDisplay() {
	pterm.Info.Prefix = pterm.Prefix{
		Text:  "  >>",
		Style: pterm.NewStyle(pterm.BgCyan, pterm.FgBlack),
	}
	pterm.Error.Prefix = pterm.Prefix{
		Text:  "  Error",
		Style: pterm.NewStyle(pterm.BgRed, pterm.FgBlack),
	}
}

func runOnce(p *parser.RobustParser, sentence string) {
	root, result, err := p.ParseString(sentence)
	if err != nil {
		pterm.Error.Println(err.Error())
		return
	}
	if root == nil {
		pterm.Error.Println("no parse found")
		return
	}
	pterm.DefaultTree.WithRoot(treeNodeFrom(root)).Render()
	if result != nil {
		pterm.Info.Println(fmt.Sprintf("%v", result.Get()))
	}
}

// treeNodeFrom renders a derivation node as a pterm tree, recursively.
func treeNodeFrom(n *tree.Node) pterm.TreeNode {
	if n.IsLeaf() {
		return pterm.TreeNode{Text: fmt.Sprintf("%s %s %q", labelOf(n), n.Span, n.Lexicon)}
	}
	children := make([]pterm.TreeNode, len(n.Children))
	for i, c := range n.Children {
		children[i] = treeNodeFrom(c)
	}
	return pterm.TreeNode{Text: labelOf(n), Children: children}
}

func labelOf(n *tree.Node) string {
	return grammar.DisplayName(n.Parent.Production.LHS)
}
