package grammar

import "testing"

// buildGreeting assembles a tiny grammar: Greeting -> Optional(Polite) Word,
// where Polite is nullable, to exercise null elimination, and Word is a
// plain alternation of literals, to exercise the terminal index.
type greetingFixture struct {
	Polite   Element
	Word     Element
	Greeting Element
}

func buildGreeting() *greetingFixture {
	f := &greetingFixture{}
	f.Polite = NewStringLit("please")
	f.Word = NewOr(NewStringLit("hello"), NewStringLit("hi"))
	f.Greeting = NewAnd(NewOptional(f.Polite), f.Word)
	return f
}

func TestCompileRejectsNilGoal(t *testing.T) {
	if _, err := Compile(nil, nil); err == nil {
		t.Fatal("Compile(nil, nil) should return an error")
	}
}

func TestCompileBindsContainerFieldNames(t *testing.T) {
	f := buildGreeting()
	g, err := Compile(f.Greeting, f)
	if err != nil {
		t.Fatalf("Compile failed: %v", err)
	}
	if DisplayName(f.Word) != "Word" {
		t.Fatalf("DisplayName(f.Word) = %q, want %q", DisplayName(f.Word), "Word")
	}
	if DisplayName(f.Greeting) != "Greeting" {
		t.Fatalf("DisplayName(f.Greeting) = %q, want %q", DisplayName(f.Greeting), "Greeting")
	}
	if g.Goal != f.Greeting {
		t.Fatal("Grammar.Goal must be the same identity passed to Compile")
	}
}

func TestCompileIndexesTerminalsAndNonterminals(t *testing.T) {
	f := buildGreeting()
	g, err := Compile(f.Greeting, f)
	if err != nil {
		t.Fatalf("Compile failed: %v", err)
	}
	if _, ok := g.TerminalIndex[f.Polite]; !ok {
		t.Fatal("TerminalIndex must contain the Polite literal")
	}
	if len(g.NonterminalIndex[f.Word]) != 2 {
		t.Fatalf("len(NonterminalIndex[Word]) = %d, want 2 (one per Or alternative)", len(g.NonterminalIndex[f.Word]))
	}
	if len(g.GoalProductions) == 0 {
		t.Fatal("GoalProductions must be non-empty")
	}
}

func TestCompileEliminatesNullOnlyProductions(t *testing.T) {
	f := buildGreeting()
	g, err := Compile(f.Greeting, f)
	if err != nil {
		t.Fatalf("Compile failed: %v", err)
	}
	for _, p := range g.Productions {
		allNull := len(p.RHS) > 0
		for _, r := range p.RHS {
			if r != Element(NULL) {
				allNull = false
			}
		}
		if allNull && p.LHS != Element(NULL) {
			t.Fatalf("a Null-only production for %s should have been eliminated", DisplayName(p.LHS))
		}
	}
}

func TestCompileExpandsNullableRHSPositions(t *testing.T) {
	f := buildGreeting()
	g, err := Compile(f.Greeting, f)
	if err != nil {
		t.Fatalf("Compile failed: %v", err)
	}
	// Greeting should get a production with the optional Polite position
	// dropped, i.e. RHS == [Word], alongside the one with both positions.
	found := false
	for _, p := range g.GoalProductions {
		if len(p.RHS) == 1 && p.RHS[0] == f.Word {
			found = true
		}
	}
	if !found {
		t.Fatal("expected a Greeting production with the nullable Polite position elided")
	}
}

func TestLeftCornerClosureReachesTerminals(t *testing.T) {
	f := buildGreeting()
	g, err := Compile(f.Greeting, f)
	if err != nil {
		t.Fatalf("Compile failed: %v", err)
	}
	for _, p := range g.GoalProductions {
		terms := g.LeftCornerTerminals(p)
		cats := g.LeftCornerNonterminals(p)
		if len(cats) == 0 {
			t.Fatal("LeftCornerNonterminals must at least contain the production itself")
		}
		// Greeting -> [Optional(Polite), Word] reaches "please" through the
		// Optional; Greeting -> [Word] reaches "hello" and "hi".
		if len(terms) == 0 {
			t.Fatalf("LeftCornerTerminals(%s) is empty, want at least one terminal", p)
		}
	}
}

func TestFilterTerminalsForScanMatchesLexicon(t *testing.T) {
	f := buildGreeting()
	g, err := Compile(f.Greeting, f)
	if err != nil {
		t.Fatalf("Compile failed: %v", err)
	}
	prods := g.FilterTerminalsForScan("hello")
	if len(prods) != 1 {
		t.Fatalf("len(FilterTerminalsForScan(\"hello\")) = %d, want 1", len(prods))
	}
}

func TestGrammarStringIsDeterministic(t *testing.T) {
	f := buildGreeting()
	g, err := Compile(f.Greeting, f)
	if err != nil {
		t.Fatalf("Compile failed: %v", err)
	}
	s1 := g.String()
	s2 := g.String()
	if s1 != s2 {
		t.Fatal("Grammar.String() must be deterministic across calls")
	}
}
