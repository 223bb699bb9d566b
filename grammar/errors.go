package grammar

// GrammarError reports a malformed grammar definition: a missing goal, or a
// value that is neither an Element nor a string composed into a combinator.
// Element names are not checked against reserved names.
type GrammarError struct {
	Msg string
}

func (e *GrammarError) Error() string { return "grammar: " + e.Msg }

// ValueError reports invalid combinator arguments: a negative repetition
// count (or a non-positive one for RepeatExactly), an inverted repetition
// range, an empty string, set or regex pattern, or an unparsable regular
// expression.
type ValueError struct {
	Msg string
}

func (e *ValueError) Error() string { return "grammar: " + e.Msg }
