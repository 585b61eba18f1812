package qubxml

// Text is one or more non-LeftAngleBracket, non-NewLine lexes: everything
// the tokenizer reads between tags that isn't itself a tag.
type Text struct {
	lexes []Lex
}

// NewText builds a Text from its lexes. lexes must be non-empty.
func NewText(lexes []Lex) Text {
	return Text{lexes: lexes}
}

// SegmentKind implements Segment.
func (t Text) SegmentKind() SegmentKind { return SegmentKindText }

// Span implements Segment.
func (t Text) Span() Span {
	return spanFromTo(t.lexes[0].Span(), t.lexes[len(t.lexes)-1].Span())
}

// StartIndex implements Segment.
func (t Text) StartIndex() int { return t.Span().StartIndex }

// Length implements Segment.
func (t Text) Length() int { return t.Span().Length }

// AfterEndIndex implements Segment.
func (t Text) AfterEndIndex() int { return t.Span().AfterEndIndex() }

// String implements Segment.
func (t Text) String() string { return t.Span().String() }

// IsWhitespace reports whether every lex in the text is Whitespace or
// NewLine.
func (t Text) IsWhitespace() bool {
	for _, l := range t.lexes {
		if !l.IsWhitespaceOrNewLine() {
			return false
		}
	}
	return true
}

// NonWhitespaceSpan returns the tightest span covering the first through
// last non-whitespace lex, and false if the text is entirely whitespace.
func (t Text) NonWhitespaceSpan() (Span, bool) {
	first, last := -1, -1
	for i, l := range t.lexes {
		if !l.IsWhitespaceOrNewLine() {
			if first == -1 {
				first = i
			}
			last = i
		}
	}
	if first == -1 {
		return Span{}, false
	}
	return spanFromTo(t.lexes[first].Span(), t.lexes[last].Span()), true
}

// ContainsIndex implements Segment: inclusive on both ends.
func (t Text) ContainsIndex(i int) bool {
	s := t.Span()
	return containsInclusive(s.StartIndex, s.AfterEndIndex(), i)
}

var _ Segment = Text{}
