package grammar

import "fmt"

// expression is the common shape of And/Or: a sequence of child elements,
// combined in a binary fashion by authoring code via And()/Or() but
// streamlined (flattened) before compilation.
type expression struct {
	elementBase
	exprs []Element
}

func elementize(items []interface{}) []Element {
	out := make([]Element, len(items))
	for i, it := range items {
		switch v := it.(type) {
		case Element:
			out[i] = v
		case string:
			out[i] = NewStringLit(v)
		default:
			panic(&GrammarError{Msg: fmt.Sprintf("can't compose grammar element from %v", it)})
		}
	}
	return out
}

// And requires matching every child, in sequence.
type And struct {
	expression
}

// NewAnd builds a sequence matcher out of elements and/or bare strings
// (bare strings are wrapped as case-insensitive literals).
func NewAnd(items ...interface{}) *And {
	return newAndFromElements(elementize(items))
}

func newAndFromElements(exprs []Element) *And {
	a := &And{expression{exprs: exprs}}
	a.elementBase.self = a
	return a
}

// Append adds another child to the sequence in place, mirroring the
// authoring-time += operator of the source this combinator is modeled on.
func (a *And) Append(e Element) *And {
	a.exprs = append(a.exprs, e)
	return a
}

func (a *And) defaultName() string { return joinNames(a.exprs) }

func (a *And) SetName(name string) Element {
	clone := *a
	clone.elementBase = a.elementBase.cloneBase(name)
	clone.elementBase.self = &clone
	return &clone
}

func (a *And) Streamline() Element {
	streamlineExpression(&a.expression, a)
	return a
}

func (a *And) YieldProductions() []*Production {
	return []*Production{NewProduction(a, append([]Element(nil), a.exprs...))}
}

// Or requires matching exactly one of its children.
type Or struct {
	expression
}

// NewOr builds an alternation matcher out of elements and/or bare strings.
func NewOr(items ...interface{}) *Or {
	return newOrFromElements(elementize(items))
}

func newOrFromElements(exprs []Element) *Or {
	o := &Or{expression{exprs: exprs}}
	o.elementBase.self = o
	return o
}

// Append adds another alternative in place.
func (o *Or) Append(e Element) *Or {
	o.exprs = append(o.exprs, e)
	return o
}

func (o *Or) defaultName() string { return joinNames(o.exprs) }

func (o *Or) SetName(name string) Element {
	clone := *o
	clone.elementBase = o.elementBase.cloneBase(name)
	clone.elementBase.self = &clone
	return &clone
}

func (o *Or) Streamline() Element {
	streamlineExpression(&o.expression, o)
	return o
}

func (o *Or) YieldProductions() []*Production {
	prods := make([]*Production, len(o.exprs))
	for i, e := range o.exprs {
		prods[i] = NewProduction(o, []Element{e})
	}
	return prods
}

// streamlineExpression recursively streamlines children, then flattens one
// level of nested same-kind expression at either end of exprs, provided the
// inner expression carries no callbacks and no bound/explicit name of its
// own — flattening it would otherwise silently discard a role the author
// gave it.
func streamlineExpression(e *expression, self Element) {
	if e.Streamlined() {
		return
	}
	e.setStreamlined()
	for _, child := range e.exprs {
		child.Streamline()
	}
	if len(e.exprs) == 2 {
		flattenEdge(e, self, true)
		flattenEdge(e, self, false)
	}
}

// flattenEdge inspects one end of a two-child expression and splices in the
// grandchildren if that end is a same-kind expression with no name and no
// callbacks of its own.
func flattenEdge(e *expression, self Element, atStart bool) {
	idx := 0
	if !atStart {
		idx = len(e.exprs) - 1
	}
	var inner *expression
	switch self.(type) {
	case *And:
		if and, ok := e.exprs[idx].(*And); ok {
			inner = &and.expression
		}
	case *Or:
		if or, ok := e.exprs[idx].(*Or); ok {
			inner = &or.expression
		}
	}
	if inner == nil || len(inner.postFuncs) > 0 || inner.hasExplicitOrBoundName() {
		return
	}
	if atStart {
		e.exprs = append(append([]Element(nil), inner.exprs...), e.exprs[1:]...)
	} else {
		e.exprs = append(append([]Element(nil), e.exprs[:len(e.exprs)-1]...), inner.exprs...)
	}
}

func joinNames(exprs []Element) string {
	names := make([]string, len(exprs))
	for i, e := range exprs {
		names[i] = DisplayName(e)
	}
	out := ""
	for i, n := range names {
		if i > 0 {
			out += ", "
		}
		out += n
	}
	return out
}

// enhance is the common shape of Optional/OneOrMore/ZeroOrMore: a single
// wrapped child.
type enhance struct {
	elementBase
	expr Element
}

func wrapIfString(e interface{}) Element {
	switch v := e.(type) {
	case Element:
		return v
	case string:
		return NewStringLit(v)
	default:
		panic(&GrammarError{Msg: fmt.Sprintf("can't wrap %v as a grammar element", e)})
	}
}

// Optional matches its child zero or one times.
type Optional struct {
	enhance
}

// NewOptional builds a 0-or-1-times matcher.
func NewOptional(e interface{}) *Optional {
	o := &Optional{enhance{expr: wrapIfString(e)}}
	o.elementBase.self = o
	return o
}

func (o *Optional) defaultName() string { return DisplayName(o.expr) }

func (o *Optional) SetName(name string) Element {
	clone := *o
	clone.elementBase = o.elementBase.cloneBase(name)
	clone.elementBase.self = &clone
	return &clone
}

func (o *Optional) Streamline() Element {
	if o.Streamlined() {
		return o
	}
	o.setStreamlined()
	o.expr.Streamline()
	return o
}

func (o *Optional) YieldProductions() []*Production {
	return []*Production{
		NewProduction(o, []Element{NULL}),
		NewProduction(o, []Element{o.expr}),
	}
}

// OneOrMore matches its child one or more times.
type OneOrMore struct {
	enhance
}

// NewOneOrMore builds a 1-or-more-times matcher.
func NewOneOrMore(e interface{}) *OneOrMore {
	o := &OneOrMore{enhance{expr: wrapIfString(e)}}
	o.elementBase.self = o
	o.elementBase.asList = true
	return o
}

func (o *OneOrMore) defaultName() string { return DisplayName(o.expr) }

func (o *OneOrMore) SetName(name string) Element {
	clone := *o
	clone.elementBase = o.elementBase.cloneBase(name)
	clone.elementBase.self = &clone
	return &clone
}

func (o *OneOrMore) Streamline() Element {
	if o.Streamlined() {
		return o
	}
	o.setStreamlined()
	o.expr.Streamline()
	return o
}

func (o *OneOrMore) YieldProductions() []*Production {
	return []*Production{
		NewProduction(o, []Element{o.expr}),
		NewProduction(o, []Element{o.expr, o}),
	}
}

// ZeroOrMore matches its child zero or more times.
type ZeroOrMore struct {
	enhance
}

// NewZeroOrMore builds a 0-or-more-times matcher.
func NewZeroOrMore(e interface{}) *ZeroOrMore {
	o := &ZeroOrMore{enhance{expr: wrapIfString(e)}}
	o.elementBase.self = o
	o.elementBase.asList = true
	return o
}

func (o *ZeroOrMore) defaultName() string { return DisplayName(o.expr) }

func (o *ZeroOrMore) SetName(name string) Element {
	clone := *o
	clone.elementBase = o.elementBase.cloneBase(name)
	clone.elementBase.self = &clone
	return &clone
}

func (o *ZeroOrMore) Streamline() Element {
	if o.Streamlined() {
		return o
	}
	o.setStreamlined()
	o.expr.Streamline()
	return o
}

func (o *ZeroOrMore) YieldProductions() []*Production {
	return []*Production{
		NewProduction(o, []Element{NULL}),
		NewProduction(o, []Element{o.expr}),
		NewProduction(o, []Element{o.expr, o}),
	}
}

// Repeat desugars a repetition range (m,n), either bound optional, onto the
// fixed vocabulary of combinators, matching the authoring-time multiplier
// operator this package has no operator syntax for:
//
//   Repeat(e, m, nil)     // m or more: m copies, then ZeroOrMore
//   Repeat(e, 0, &n)      // 0..n: m copies (0) plus (n-m) Optionals
//   Repeat(e, m, &n)      // m..n, n >= m
//
// RepeatExactly(e, m) is the m-exactly case (e*m in the source vocabulary).
func Repeat(e Element, m int, n *int) Element {
	if m < 0 {
		panic(&ValueError{Msg: "repetition count must not be negative"})
	}
	if n == nil {
		switch m {
		case 0:
			return NewZeroOrMore(e)
		case 1:
			return NewOneOrMore(e)
		default:
			return newAndFromElements(append(repeatSlice(e, m), NewZeroOrMore(e)))
		}
	}
	if *n < m {
		panic(&ValueError{Msg: "repetition range end must be >= start"})
	}
	if m == 0 && *n == 1 {
		return NewOptional(e)
	}
	if m == *n {
		return RepeatExactly(e, m)
	}
	items := repeatSlice(e, m)
	for i := 0; i < *n-m; i++ {
		items = append(items, NewOptional(e))
	}
	return newAndFromElements(items)
}

// RepeatExactly requires exactly m consecutive matches of e (m > 0).
func RepeatExactly(e Element, m int) Element {
	if m <= 0 {
		panic(&ValueError{Msg: "exact repetition count must be positive"})
	}
	if m == 1 {
		return e
	}
	return newAndFromElements(repeatSlice(e, m))
}

func repeatSlice(e Element, m int) []Element {
	out := make([]Element, m)
	for i := range out {
		out[i] = e
	}
	return out
}
