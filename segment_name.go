package qubxml

// Name is one or more Letters|Digits|Period|Dash|Underscore|Colon lexes.
// The first lex must be Letters, Underscore, or Colon.
type Name struct {
	lexes []Lex
}

// NewName builds a Name from its lexes. lexes must be non-empty and its
// first element must satisfy Lex.isNameStart (checked by callers, the
// tokenizer's name reader).
func NewName(lexes []Lex) Name {
	return Name{lexes: lexes}
}

// SegmentKind implements Segment.
func (n Name) SegmentKind() SegmentKind { return SegmentKindName }

// Span implements Segment.
func (n Name) Span() Span {
	return spanFromTo(n.lexes[0].Span(), n.lexes[len(n.lexes)-1].Span())
}

// StartIndex implements Segment.
func (n Name) StartIndex() int { return n.Span().StartIndex }

// Length implements Segment.
func (n Name) Length() int { return n.Span().Length }

// AfterEndIndex implements Segment.
func (n Name) AfterEndIndex() int { return n.Span().AfterEndIndex() }

// String implements Segment, returning the verbatim name text.
func (n Name) String() string { return n.Span().String() }

// Text is an alias for String, matching how names are usually read.
func (n Name) Text() string { return n.String() }

// ContainsIndex implements Segment: inclusive on both ends.
func (n Name) ContainsIndex(i int) bool {
	s := n.Span()
	return containsInclusive(s.StartIndex, s.AfterEndIndex(), i)
}

var _ Segment = Name{}
