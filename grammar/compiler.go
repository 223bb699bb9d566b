package grammar

import (
	"reflect"
	"strings"

	"golang.org/x/exp/slices"
)

// Grammar is the frozen output of Compile: a flat, deduplicated production
// set plus the indexes the chart engine needs. Once compiled it is never
// mutated and may be shared across many concurrent parser instances.
type Grammar struct {
	Goal             Element
	Productions      []*Production
	TerminalIndex    map[Element]*Production   // one production per terminal LHS
	NonterminalIndex map[Element][]*Production // LHS -> all its productions
	GoalProductions  []*Production

	lcWords map[*Production]map[*Production]struct{}
	lcCats  map[*Production]map[*Production]struct{}
}

// Compile walks goal, names every reachable element (preferring the field
// name it is bound to in container, a pointer to a struct of Element-typed
// fields — pass nil if there is no such container), flattens it into
// productions, eliminates nullable productions, builds the terminal and
// nonterminal indexes, and precomputes the left-corner closure. Nullable
// expansion goes one level deep only: a production that becomes nullable
// through the expansion itself is not expanded again.
func Compile(goal Element, container interface{}) (*Grammar, error) {
	if goal == nil {
		return nil, &GrammarError{Msg: "grammar has no goal element"}
	}

	// 1. Name pass: bind host-container field names before streamlining and
	// before any production is printed or indexed, so streamlining never
	// flattens away a bound element and canonical-name fallbacks never
	// shadow a bound name computed later.
	bindVariableNames(goal, container)

	// 2. Streamline.
	goal.Streamline()

	// 3. Yield productions, depth-first, deduplicated by identity.
	set := newProductionSet()
	buildProductions(goal, set, map[Element]bool{})

	// 4. Null elimination / expansion (one level, see eliminateNullAndExpand).
	eliminateNullAndExpand(set)

	// 5. Index, with the NULL sentinel terminal installed.
	nullProd := NewProduction(NULL, []Element{NULL})
	set.add(nullProd)

	terminalIndex := map[Element]*Production{}
	nonterminalIndex := map[Element][]*Production{}
	var goalProductions []*Production
	for _, p := range set.list() {
		if p.IsTerminal {
			terminalIndex[p.LHS] = p
		} else {
			nonterminalIndex[p.LHS] = append(nonterminalIndex[p.LHS], p)
		}
		if p.LHS == goal {
			goalProductions = append(goalProductions, p)
		}
	}

	g := &Grammar{
		Goal:             goal,
		Productions:      set.list(),
		TerminalIndex:    terminalIndex,
		NonterminalIndex: nonterminalIndex,
		GoalProductions:  goalProductions,
	}

	// 6. Left-corner closure.
	g.buildLeftCorner()

	tracer().Debugf("grammar size: %d", len(g.Productions))
	return g, nil
}

func bindVariableNames(goal Element, container interface{}) {
	if container == nil {
		return
	}
	byIdentity := map[Element]string{}
	collectContainerFields(container, byIdentity)
	if len(byIdentity) == 0 {
		return
	}
	seen := map[Element]bool{}
	var visit func(e Element)
	visit = func(e Element) {
		if seen[e] {
			return
		}
		seen[e] = true
		if name, ok := byIdentity[e]; ok {
			e.base().setVariableName(name)
		}
		for _, c := range children(e) {
			visit(c)
		}
	}
	visit(goal)
}

// collectContainerFields walks the exported fields of a struct (container
// may be a pointer to one) and records each Element-typed field's identity
// under its Go field name — the bound-name mechanism of §4.1, reading host
// source bindings via reflection instead of the interpreter introspection
// the modeled engine uses.
func collectContainerFields(container interface{}, out map[Element]string) {
	v := reflect.ValueOf(container)
	for v.Kind() == reflect.Ptr {
		if v.IsNil() {
			return
		}
		v = v.Elem()
	}
	if v.Kind() != reflect.Struct {
		return
	}
	elemType := reflect.TypeOf((*Element)(nil)).Elem()
	t := v.Type()
	for i := 0; i < t.NumField(); i++ {
		f := t.Field(i)
		if f.PkgPath != "" {
			continue // unexported
		}
		fv := v.Field(i)
		if !fv.Type().Implements(elemType) {
			continue
		}
		if fv.Kind() == reflect.Interface || fv.Kind() == reflect.Ptr {
			if fv.IsNil() {
				continue
			}
		}
		el, ok := fv.Interface().(Element)
		if !ok {
			continue
		}
		if _, exists := out[el]; !exists {
			out[el] = f.Name
		}
	}
}

// children returns e's immediate grammar children, or nil for an atomic
// element.
func children(e Element) []Element {
	switch v := e.(type) {
	case *And:
		return v.exprs
	case *Or:
		return v.exprs
	case *Optional:
		return []Element{v.expr}
	case *OneOrMore:
		return []Element{v.expr}
	case *ZeroOrMore:
		return []Element{v.expr}
	default:
		return nil
	}
}

func buildProductions(e Element, set *productionSet, seen map[Element]bool) {
	if seen[e] {
		return
	}
	seen[e] = true
	for _, c := range children(e) {
		buildProductions(c, set, seen)
	}
	for _, p := range e.YieldProductions() {
		set.add(p)
	}
}

// eliminateNullAndExpand implements §4.2 step 4: remove Null-only and
// self-identity productions, then for every remaining production add one
// new production per non-empty subset of its Null-producing RHS positions,
// with those positions deleted. This is intentionally one level only — see
// the package doc and spec's design notes on deep nullable expansion.
func eliminateNullAndExpand(set *productionSet) {
	var nullProds []*Production
	for _, p := range set.list() {
		allNull := true
		for _, r := range p.RHS {
			if r != Element(NULL) {
				allNull = false
				break
			}
		}
		if allNull {
			nullProds = append(nullProds, p)
		}
	}
	nullProdKeys := map[string]bool{}
	nullElements := map[Element]bool{}
	for _, p := range nullProds {
		set.remove(p)
		nullProdKeys[p.Key()] = true
		nullElements[p.LHS] = true
	}

	var identityProds []*Production
	for _, p := range set.list() {
		if len(p.RHS) == 1 && !p.IsTerminal && p.RHS[0] == p.LHS {
			identityProds = append(identityProds, p)
		}
	}
	for _, p := range identityProds {
		set.remove(p)
	}

	var newProds []*Production
	for _, p := range set.list() {
		var nullIdx []int
		for i, r := range p.RHS {
			if nullElements[r] {
				nullIdx = append(nullIdx, i)
			}
		}
		if len(nullIdx) == 0 {
			continue
		}
		for _, combo := range nonEmptySubsets(nullIdx) {
			removed := map[int]bool{}
			for _, idx := range combo {
				removed[idx] = true
			}
			var newRHS []Element
			for i, r := range p.RHS {
				if !removed[i] {
					newRHS = append(newRHS, r)
				}
			}
			if len(newRHS) > 0 {
				newProds = append(newProds, NewProduction(p.LHS, newRHS))
			} else {
				np := NewProduction(p.LHS, []Element{NULL})
				if !nullProdKeys[np.Key()] {
					newProds = append(newProds, np)
				}
			}
		}
	}
	for _, p := range newProds {
		set.add(p)
	}
}

// nonEmptySubsets enumerates every non-empty subset of indices, each
// returned sorted ascending, mirroring itertools.combinations over every
// subset size from 1 to len(indices).
func nonEmptySubsets(indices []int) [][]int {
	n := len(indices)
	out := make([][]int, 0, (1<<n)-1)
	for mask := 1; mask < (1 << n); mask++ {
		var combo []int
		for i := 0; i < n; i++ {
			if mask&(1<<i) != 0 {
				combo = append(combo, indices[i])
			}
		}
		out = append(out, combo)
	}
	return out
}

// buildLeftCorner computes, for every production P, the set of terminal
// productions (lc_words) and the set of productions (lc_cats, including P)
// reachable by always taking RHS[0]. Only the left-corner chart strategy
// consults this.
func (g *Grammar) buildLeftCorner() {
	g.lcWords = map[*Production]map[*Production]struct{}{}
	g.lcCats = map[*Production]map[*Production]struct{}{}

	var add func(prod, cProd *Production)
	add = func(prod, cProd *Production) {
		rhs0 := cProd.RHS[0]
		if _, ok := g.lcWords[prod]; !ok {
			g.lcWords[prod] = map[*Production]struct{}{}
			g.lcCats[prod] = map[*Production]struct{}{prod: {}}
		}
		if rhs0.IsTerminal() {
			if t, ok := g.TerminalIndex[rhs0]; ok {
				g.lcWords[prod][t] = struct{}{}
			}
			return
		}
		for _, ccProd := range g.NonterminalIndex[rhs0] {
			if _, already := g.lcCats[prod][ccProd]; already {
				continue // guards left-recursive grammars against infinite descent
			}
			g.lcCats[prod][ccProd] = struct{}{}
			add(prod, ccProd)
		}
	}
	for _, p := range g.Productions {
		add(p, p)
	}
}

// LeftCornerTerminals returns the terminal productions reachable from prod
// by always taking RHS[0].
func (g *Grammar) LeftCornerTerminals(prod *Production) []*Production {
	return setToSlice(g.lcWords[prod])
}

// LeftCornerNonterminals returns the productions (including prod itself)
// reachable from prod by always taking RHS[0], or just prod if the closure
// was never computed for it (e.g. prod is not part of this grammar).
func (g *Grammar) LeftCornerNonterminals(prod *Production) []*Production {
	if set, ok := g.lcCats[prod]; ok {
		return setToSlice(set)
	}
	return []*Production{prod}
}

func setToSlice(set map[*Production]struct{}) []*Production {
	out := make([]*Production, 0, len(set))
	for p := range set {
		out = append(out, p)
	}
	return out
}

// FilterTerminalsForScan returns every terminal production whose LHS
// matches lexicon.
func (g *Grammar) FilterTerminalsForScan(lexicon string) []*Production {
	var out []*Production
	for _, p := range g.Productions {
		if !p.IsTerminal {
			continue
		}
		if t, ok := p.LHS.(Terminal); ok && t.Match(lexicon) {
			out = append(out, p)
		}
	}
	return out
}

// FilterProductionsForPredictionByRHS returns every production whose
// RHS[0] is, by identity, rhsStartsWith.
func (g *Grammar) FilterProductionsForPredictionByRHS(rhsStartsWith Element) []*Production {
	var out []*Production
	for _, p := range g.Productions {
		if p.RHS[0] == rhsStartsWith {
			out = append(out, p)
		}
	}
	return out
}

// FilterProductionsForPredictionByLHS returns every production whose LHS
// is, by identity, lhs — this is exactly g.NonterminalIndex[lhs] plus, for
// a terminal lhs, its single terminal production.
func (g *Grammar) FilterProductionsForPredictionByLHS(lhs Element) []*Production {
	if lhs.IsTerminal() {
		if p, ok := g.TerminalIndex[lhs]; ok {
			return []*Production{p}
		}
		return nil
	}
	return g.NonterminalIndex[lhs]
}

func (g *Grammar) Len() int { return len(g.Productions) }

// String renders a sorted, deterministic dump of every production, useful
// for debugging and for tests asserting grammar shape.
func (g *Grammar) String() string {
	lines := make([]string, 0, len(g.Productions))
	for _, p := range g.Productions {
		prefix := "NonTerminal "
		if p.IsTerminal {
			prefix = "IsaTerminal "
		}
		lines = append(lines, prefix+" "+p.String())
	}
	slices.Sort(lines)
	return strings.Join(lines, "\n")
}
