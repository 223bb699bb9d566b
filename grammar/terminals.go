package grammar

import (
	"fmt"
	"regexp"
	"strings"

	"golang.org/x/exp/slices"
)

// StringLit matches a single literal string, case-sensitively or not.
type StringLit struct {
	elementBase
	text     string
	caseless bool
}

func newStringLit(text string, caseless bool) *StringLit {
	if text == "" {
		panic(&ValueError{Msg: "StringLit does not accept an empty pattern"})
	}
	s := &StringLit{text: text}
	s.elementBase.isTerminal = true
	s.elementBase.self = s
	s.caseless = caseless
	if caseless {
		s.text = strings.ToLower(text)
	}
	return s
}

// NewStringLitCs builds a case-sensitive literal-string terminal.
func NewStringLitCs(text string) *StringLit { return newStringLit(text, false) }

// NewStringLit builds a case-insensitive literal-string terminal.
func NewStringLit(text string) *StringLit { return newStringLit(text, true) }

func (s *StringLit) Match(lexicon string) bool {
	if s.caseless {
		lexicon = strings.ToLower(lexicon)
	}
	return lexicon == s.text
}

func (s *StringLit) defaultName() string { return s.text }

func (s *StringLit) SetName(name string) Element {
	clone := *s
	clone.elementBase = s.elementBase.cloneBase(name)
	clone.elementBase.self = &clone
	return &clone
}

func (s *StringLit) Streamline() Element {
	s.elementBase.setStreamlined()
	return s
}

func (s *StringLit) YieldProductions() []*Production {
	return []*Production{NewProduction(s, []Element{s})}
}

// SetLit matches whole-token membership in a fixed set of strings, the
// terminal equivalent of an Or of StringLits.
type SetLit struct {
	elementBase
	set      map[string]struct{}
	caseless bool
	str      string // sorted, pipe-joined, for default naming and debug dumps
}

func newSetLit(strings_ []string, caseless bool) *SetLit {
	if len(strings_) == 0 {
		panic(&ValueError{Msg: "SetLit does not accept an empty set"})
	}
	set := make(map[string]struct{}, len(strings_))
	for _, s := range strings_ {
		if caseless {
			s = strings.ToLower(s)
		}
		set[s] = struct{}{}
	}
	keys := make([]string, 0, len(set))
	for k := range set {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	el := &SetLit{set: set, caseless: caseless, str: strings.Join(keys, "|")}
	el.elementBase.isTerminal = true
	el.elementBase.self = el
	return el
}

// NewSetLitCs builds a case-sensitive set-membership terminal.
func NewSetLitCs(strings []string) *SetLit { return newSetLit(strings, false) }

// NewSetLit builds a case-insensitive set-membership terminal.
func NewSetLit(strings []string) *SetLit { return newSetLit(strings, true) }

func (s *SetLit) Match(lexicon string) bool {
	if s.caseless {
		lexicon = strings.ToLower(lexicon)
	}
	_, ok := s.set[lexicon]
	return ok
}

func (s *SetLit) defaultName() string { return s.str }

func (s *SetLit) SetName(name string) Element {
	clone := *s
	clone.elementBase = s.elementBase.cloneBase(name)
	clone.elementBase.self = &clone
	return &clone
}

func (s *SetLit) Streamline() Element {
	s.elementBase.setStreamlined()
	return s
}

func (s *SetLit) YieldProductions() []*Production {
	return []*Production{NewProduction(s, []Element{s})}
}

// RegexLit matches a whole token against a regular expression, anchored at
// both ends by default.
type RegexLit struct {
	elementBase
	pattern    string // as supplied, before anchoring
	wholeMatch bool
	caseless   bool
	re         *regexp.Regexp
}

func newRegexLit(pattern string, caseless, wholeMatch bool) *RegexLit {
	if pattern == "" {
		panic(&ValueError{Msg: "RegexLit does not accept an empty pattern"})
	}
	effective := pattern
	if wholeMatch {
		effective = "^(?:" + pattern + ")$"
	}
	if caseless {
		effective = "(?i)" + effective
	}
	re, err := regexp.Compile(effective)
	if err != nil {
		panic(&ValueError{Msg: fmt.Sprintf("bad regex %q: %v", pattern, err)})
	}
	el := &RegexLit{pattern: pattern, wholeMatch: wholeMatch, caseless: caseless, re: re}
	el.elementBase.isTerminal = true
	el.elementBase.self = el
	return el
}

// NewRegexLitCs builds a case-sensitive, whole-match regex terminal.
func NewRegexLitCs(pattern string) *RegexLit { return newRegexLit(pattern, false, true) }

// NewRegexLit builds a case-insensitive, whole-match regex terminal.
func NewRegexLit(pattern string) *RegexLit { return newRegexLit(pattern, true, true) }

// NewRegexLitPartial builds a case-insensitive regex terminal that accepts
// on any match, not only a whole-string one.
func NewRegexLitPartial(pattern string) *RegexLit { return newRegexLit(pattern, true, false) }

func (r *RegexLit) Match(lexicon string) bool {
	return r.re.MatchString(lexicon)
}

func (r *RegexLit) defaultName() string { return r.pattern }

func (r *RegexLit) SetName(name string) Element {
	clone := *r
	clone.elementBase = r.elementBase.cloneBase(name)
	clone.elementBase.self = &clone
	return &clone
}

func (r *RegexLit) Streamline() Element {
	r.elementBase.setStreamlined()
	return r
}

func (r *RegexLit) YieldProductions() []*Production {
	return []*Production{NewProduction(r, []Element{r})}
}

// Null is the sentinel terminal standing for "nothing consumed". Its
// Match always reports false, so it never consumes a token. There is a single shared
// NULL instance; the grammar compiler installs it as its own terminal
// production (NULL -> [NULL]).
type Null struct {
	elementBase
}

func newNull() *Null {
	n := &Null{}
	n.elementBase.isTerminal = true
	n.elementBase.self = n
	n.elementBase.name = "NULL"
	return n
}

// NULL is the single shared null element used throughout a grammar.
var NULL = newNull()

func (n *Null) Match(lexicon string) bool { return false }

func (n *Null) defaultName() string { return "Null" }

func (n *Null) SetName(name string) Element {
	clone := *n
	clone.elementBase = n.elementBase.cloneBase(name)
	clone.elementBase.self = &clone
	return &clone
}

func (n *Null) Streamline() Element {
	n.elementBase.setStreamlined()
	return n
}

func (n *Null) YieldProductions() []*Production {
	return []*Production{NewProduction(n, []Element{n})}
}
