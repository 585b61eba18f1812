package qubxml

// Attribute is one of three shapes: name-only; name plus trailing
// whitespace; or name, an Equals (optionally whitespace-padded), and a
// QuotedString value. Any of equals/value may be absent, and whitespace
// may follow the name or the equals depending on where the reader
// stopped; nothing after the value belongs to the Attribute.
type Attribute struct {
	name      Name
	nameTrail []Lex
	equals    *Lex
	eqTrail   []Lex
	value     *QuotedString
}

// NewAttribute builds an Attribute. equals and value may be nil.
// nameTrail is whitespace/newline lexes between name and equals (or
// trailing the name when there is no equals); eqTrail is whitespace
// between equals and value.
func NewAttribute(name Name, nameTrail []Lex, equals *Lex, eqTrail []Lex, value *QuotedString) Attribute {
	return Attribute{name: name, nameTrail: nameTrail, equals: equals, eqTrail: eqTrail, value: value}
}

// SegmentKind implements Segment.
func (a Attribute) SegmentKind() SegmentKind { return SegmentKindAttribute }

// Name returns the attribute's name.
func (a Attribute) Name() Name { return a.name }

// Equals returns the equals lex and whether it is present.
func (a Attribute) Equals() (Lex, bool) {
	if a.equals == nil {
		return Lex{}, false
	}
	return *a.equals, true
}

// Value returns the attribute's value and whether it is present.
func (a Attribute) Value() (QuotedString, bool) {
	if a.value == nil {
		return QuotedString{}, false
	}
	return *a.value, true
}

// Span implements Segment, covering the name through the furthest lex
// actually present (trailing whitespace included).
func (a Attribute) Span() Span {
	last := a.lastSpan()
	return spanFromTo(a.name.Span(), last)
}

func (a Attribute) lastSpan() Span {
	if a.value != nil {
		return a.value.Span()
	}
	if len(a.eqTrail) > 0 {
		return a.eqTrail[len(a.eqTrail)-1].Span()
	}
	if a.equals != nil {
		return a.equals.Span()
	}
	if len(a.nameTrail) > 0 {
		return a.nameTrail[len(a.nameTrail)-1].Span()
	}
	return a.name.Span()
}

// meaningfulEndIndex returns the AfterEndIndex of the last lex that is
// not trailing whitespace: the value's end, or the equals sign, or the
// name, in that order of preference.
func (a Attribute) meaningfulEndIndex() int {
	if a.value != nil {
		return a.value.AfterEndIndex()
	}
	if a.equals != nil {
		return a.equals.AfterEndIndex()
	}
	return a.name.AfterEndIndex()
}

// StartIndex implements Segment.
func (a Attribute) StartIndex() int { return a.Span().StartIndex }

// Length implements Segment.
func (a Attribute) Length() int { return a.Span().Length }

// AfterEndIndex implements Segment.
func (a Attribute) AfterEndIndex() int { return a.Span().AfterEndIndex() }

// String implements Segment.
func (a Attribute) String() string { return a.Span().String() }

// ContainsIndex implements Segment: excludes trailing whitespace that
// follows the value (or equals, or name, whichever is last present).
func (a Attribute) ContainsIndex(i int) bool {
	s := a.Span()
	return i >= s.StartIndex && i < a.meaningfulEndIndex()
}

var _ Segment = Attribute{}
