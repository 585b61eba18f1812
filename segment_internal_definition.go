package qubxml

// InternalDefinition captures a DOCTYPE internal subset verbatim:
// LeftSquareBracket followed by content lexes and an optional closing
// RightSquareBracket.
type InternalDefinition struct {
	open    Lex
	content []Lex
	close   *Lex
}

// NewInternalDefinition builds an InternalDefinition. close may be nil
// when the closing bracket was never found.
func NewInternalDefinition(open Lex, content []Lex, close *Lex) InternalDefinition {
	return InternalDefinition{open: open, content: content, close: close}
}

// SegmentKind implements Segment.
func (d InternalDefinition) SegmentKind() SegmentKind { return SegmentKindInternalDefinition }

// HasCloseBracket reports whether the closing RightSquareBracket was found.
func (d InternalDefinition) HasCloseBracket() bool { return d.close != nil }

// Span implements Segment.
func (d InternalDefinition) Span() Span {
	last := d.open.Span()
	if d.close != nil {
		last = d.close.Span()
	} else if len(d.content) > 0 {
		last = d.content[len(d.content)-1].Span()
	}
	return spanFromTo(d.open.Span(), last)
}

// StartIndex implements Segment.
func (d InternalDefinition) StartIndex() int { return d.Span().StartIndex }

// Length implements Segment.
func (d InternalDefinition) Length() int { return d.Span().Length }

// AfterEndIndex implements Segment.
func (d InternalDefinition) AfterEndIndex() int { return d.Span().AfterEndIndex() }

// String implements Segment.
func (d InternalDefinition) String() string { return d.Span().String() }

// ContainsIndex implements Segment: closed-interior when the closing
// bracket is present, open-ended otherwise, same policy as the Tag
// variants.
func (d InternalDefinition) ContainsIndex(i int) bool {
	s := d.Span()
	if d.close != nil {
		return containsClosedInterior(s.StartIndex, s.AfterEndIndex(), i)
	}
	return containsOpenInterior(s.StartIndex, i)
}

var _ Segment = InternalDefinition{}
