package qubxml

// QuotedString begins with a SingleQuote or DoubleQuote lex and may or may
// not end with a matching closing quote; its content between the quotes
// may be empty.
type QuotedString struct {
	startQuote Lex
	content    []Lex
	endQuote   *Lex
}

// NewQuotedString builds a QuotedString. endQuote is nil when the closing
// quote was never found (truncated input).
func NewQuotedString(startQuote Lex, content []Lex, endQuote *Lex) QuotedString {
	return QuotedString{startQuote: startQuote, content: content, endQuote: endQuote}
}

// Kind implements Segment.
func (q QuotedString) SegmentKind() SegmentKind { return SegmentKindQuotedString }

// Span implements Segment.
func (q QuotedString) Span() Span {
	last := q.startQuote.Span()
	if q.endQuote != nil {
		last = q.endQuote.Span()
	} else if len(q.content) > 0 {
		last = q.content[len(q.content)-1].Span()
	}
	return spanFromTo(q.startQuote.Span(), last)
}

// StartIndex implements Segment.
func (q QuotedString) StartIndex() int { return q.Span().StartIndex }

// Length implements Segment.
func (q QuotedString) Length() int { return q.Span().Length }

// AfterEndIndex implements Segment.
func (q QuotedString) AfterEndIndex() int { return q.Span().AfterEndIndex() }

// String implements Segment, returning the verbatim quoted text including
// both quote characters (or just the opening one, when truncated).
func (q QuotedString) String() string { return q.Span().String() }

// StartQuote returns the opening quote lex.
func (q QuotedString) StartQuote() Lex { return q.startQuote }

// HasEndQuote reports whether a matching closing quote was found.
func (q QuotedString) HasEndQuote() bool { return q.endQuote != nil }

// EndQuote returns the closing quote lex and whether it is present.
func (q QuotedString) EndQuote() (Lex, bool) {
	if q.endQuote == nil {
		return Lex{}, false
	}
	return *q.endQuote, true
}

// UnquotedLexes returns the lexes between the quotes, excluding both
// quote characters.
func (q QuotedString) UnquotedLexes() []Lex {
	return q.content
}

// UnquotedString returns the verbatim text between the quotes, excluding
// both quote characters.
func (q QuotedString) UnquotedString() string {
	if len(q.content) == 0 {
		return ""
	}
	s := spanFromTo(q.content[0].Span(), q.content[len(q.content)-1].Span())
	return s.String()
}

// ContainsIndex implements Segment: excludes the end quote when present;
// otherwise the whole truncated span is inclusive on both ends, same as
// Name and Text.
func (q QuotedString) ContainsIndex(i int) bool {
	s := q.Span()
	if q.endQuote != nil {
		return i >= s.StartIndex && i < q.endQuote.StartIndex()
	}
	return containsInclusive(s.StartIndex, s.AfterEndIndex(), i)
}

var _ Segment = QuotedString{}
