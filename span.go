package semchart

import "fmt"

// Span captures a run of input positions. Every edge and every terminal
// match tracks which token positions it covers: a span denotes a start
// position and the position just behind the end, measured in tokens, not
// bytes.
type Span [2]uint // (x…y)

// From returns the start position of a span.
func (s Span) From() uint {
	return s[0]
}

// To returns the end position of a span.
func (s Span) To() uint {
	return s[1]
}

// Len returns the number of tokens covered by s.
func (s Span) Len() uint {
	return s[1] - s[0]
}

// IsNull returns true for the zero span, i.e. a span matching no tokens
// at position 0. Use Len() == 0 to test for an empty (but positioned) match.
func (s Span) IsNull() bool {
	return s == Span{}
}

// Extend returns the smallest span covering both s and other.
func (s Span) Extend(other Span) Span {
	if other[0] < s[0] {
		s[0] = other[0]
	}
	if other[1] > s[1] {
		s[1] = other[1]
	}
	return s
}

func (s Span) String() string {
	return fmt.Sprintf("(%d…%d)", s[0], s[1])
}
