package qubxml

// Span is a half-open byte range over a shared input string. The input
// string is kept alive for the life of the whole tree (Go strings are
// immutable value headers, so sharing one costs nothing beyond a pointer
// and a length); every Lex and Segment recovers its text by slicing the
// same backing string, never by holding a private copy.
type Span struct {
	text       string
	StartIndex int
	Length     int
}

// NewSpan builds a Span over text[start : start+length].
func NewSpan(text string, start, length int) Span {
	return Span{text: text, StartIndex: start, Length: length}
}

// AfterEndIndex is the first index past the span, i.e. StartIndex+Length.
func (s Span) AfterEndIndex() int {
	return s.StartIndex + s.Length
}

// String returns the verbatim source text covered by the span.
func (s Span) String() string {
	return s.text[s.StartIndex:s.AfterEndIndex()]
}

// IsEmpty reports whether the span covers zero bytes.
func (s Span) IsEmpty() bool {
	return s.Length == 0
}

// source returns the full input string this span was cut from, so callers
// that need to build a sibling span (e.g. "everything after this one")
// don't need to thread the original string around separately.
func (s Span) source() string {
	return s.text
}

// spanFromTo builds the span covering [first.StartIndex, last.AfterEndIndex())
// assuming first and last came from the same source and first precedes last.
func spanFromTo(first, last Span) Span {
	return NewSpan(first.source(), first.StartIndex, last.AfterEndIndex()-first.StartIndex)
}

// containsInclusive implements the containsIndex rule for segment kinds
// (Name, Text) whose range is inclusive on both ends.
func containsInclusive(start, afterEnd, i int) bool {
	return i >= start && i <= afterEnd
}

// containsOpenInterior implements the containsIndex rule for tags that
// never found their closing bracket: anything strictly after the opening
// marker belongs to the tag, with no upper bound.
func containsOpenInterior(start, i int) bool {
	return i > start
}

// containsClosedInterior implements the containsIndex rule for tags that
// did find their closing bracket: interior points only, excluding both the
// opening marker and the closing bracket itself.
func containsClosedInterior(start, afterEnd, i int) bool {
	return i > start && i < afterEnd
}
