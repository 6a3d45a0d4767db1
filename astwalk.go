package astwalk

import "fmt"

// --- Token types -----------------------------------------------------------

// TokType is a category type for tokens. We do not define any constants here, as
// it is up to scanners to define them.
type TokType int

// --- Spans ------------------------------------------------------------

// Span is a small type for capturing a length of input token run. A span
// denotes a start position and the position just behind the end, counted in
// bytes from the start of the input.
type Span [2]uint64 // (x…y)

// From returns the start value of a span.
func (s Span) From() uint64 {
	return s[0]
}

// To returns the end value of a span.
func (s Span) To() uint64 {
	return s[1]
}

// IsNull is a predicate: is s the zero span?
func (s Span) IsNull() bool {
	return s == Span{}
}

// Extend returns the smallest span covering s and other. Extending the zero
// span results in other.
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

// --- Positions -------------------------------------------------------------

// Position is a line/column location in a source text. Lines and columns
// start at 1.
type Position struct {
	Line   int
	Column int
}

func (p Position) String() string {
	return fmt.Sprintf("%d:%d", p.Line, p.Column)
}
