package grammar

import (
	"fmt"
	"strings"
)

// Production is a grammar rewrite rule LHS -> RHS. A grammar production is
// used by the engine; a grammar element is authored by the user — Production
// is the bridge between the two, emitted by Element.YieldProductions.
type Production struct {
	LHS         Element
	RHS         []Element
	IsTerminal  bool
	IsRecursive bool
	AsList      bool

	key string // identity key, see productionKey
}

// NewProduction builds a production, computing its terminal/recursive/
// as_list flags from lhs and rhs the same way every Element.YieldProductions
// implementation does.
func NewProduction(lhs Element, rhs []Element) *Production {
	recursive := false
	for _, r := range rhs {
		if r == lhs {
			recursive = true
			break
		}
	}
	return &Production{
		LHS:         lhs,
		RHS:         rhs,
		IsTerminal:  lhs.IsTerminal(),
		IsRecursive: recursive,
		AsList:      lhs.AsList(),
		key:         productionKey(lhs, rhs),
	}
}

// Key returns the identity key used to deduplicate productions: it is a
// function of LHS and RHS object identity, not of their display names, so
// two elements that merely print the same never collide.
func (p *Production) Key() string { return p.key }

// RHSAt returns RHS[position].
func (p *Production) RHSAt(position int) Element { return p.RHS[position] }

func (p *Production) String() string {
	parts := make([]string, len(p.RHS))
	for i, r := range p.RHS {
		parts[i] = DisplayName(r)
	}
	return fmt.Sprintf("%s (%s) -> [%s]", kindName(p.LHS), DisplayName(p.LHS), strings.Join(parts, ", "))
}

// productionKey derives a stable string key from the pointer identities of
// lhs and rhs, mirroring the original engine's hash((lhs,) + tuple(rhs)):
// both implementations hash identities, not structure, so two distinct
// element objects that happen to print alike never merge into one
// production. Plain pointer-formatted strings are used here, rather than a
// content hash, because the inputs already are machine identities — hashing
// them further would buy nothing a map lookup doesn't already give us.
func productionKey(lhs Element, rhs []Element) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "%p", lhs)
	for _, r := range rhs {
		fmt.Fprintf(&sb, "|%p", r)
	}
	return sb.String()
}

// productionSet is a deduplicated collection of productions keyed by
// identity, used while the compiler accumulates productions from a walk of
// the grammar tree.
type productionSet struct {
	byKey map[string]*Production
}

func newProductionSet() *productionSet {
	return &productionSet{byKey: make(map[string]*Production)}
}

func (s *productionSet) add(p *Production) {
	if _, ok := s.byKey[p.Key()]; !ok {
		s.byKey[p.Key()] = p
	}
}

func (s *productionSet) remove(p *Production) {
	delete(s.byKey, p.Key())
}

func (s *productionSet) has(p *Production) bool {
	_, ok := s.byKey[p.Key()]
	return ok
}

func (s *productionSet) list() []*Production {
	out := make([]*Production, 0, len(s.byKey))
	for _, p := range s.byKey {
		out = append(out, p)
	}
	return out
}

func (s *productionSet) len() int { return len(s.byKey) }
