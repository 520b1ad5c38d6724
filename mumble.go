package mumble

import "fmt"

// --- Tokens ----------------------------------------------------------------

// TokType is a category type for a Token. Concrete categories are defined by
// the scanner (see package syntax).
type TokType int

// Token represents an input token as produced by a scanner.
//
// An example would be a token for a number:
//
//    TokType = NUM         // identifier for this kind of tokens
//    Lexeme  = "-3.14"     // lexeme as it appeared in the input stream
//    Span    = 67…72       // occured from position 67 in the input stream
//
type Token interface {
	TokType() TokType
	Lexeme() string
	Span() Span
}

// --- Spans ------------------------------------------------------------

// Span captures a run of input positions. A span denotes a start position and
// the position just behind the end.
type Span [2]uint64 // (x…y)

// From returns the start value of a span.
func (s Span) From() uint64 {
	return s[0]
}

// To returns the end value of a span.
func (s Span) To() uint64 {
	return s[1]
}

// Len returns the length of (x…y)
func (s Span) Len() uint64 {
	return s[1] - s[0]
}

// IsNull is true for the zero span.
func (s Span) IsNull() bool {
	return s == Span{}
}

// Extend returns the smallest span covering s and other.
func (s Span) Extend(other Span) Span {
	if s.IsNull() {
		return other
	}
	if other.IsNull() {
		return s
	}
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
