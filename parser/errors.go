package parser

// ParseError reports that no parse could be found for the given input —
// either it was empty, or every candidate phrase was exhausted without the
// chart ever reaching a complete root edge.
type ParseError struct {
	Msg string
}

func (e *ParseError) Error() string { return "parser: " + e.Msg }
