package qubxml

import "strings"

// SegmentKind identifies which variant of the Segment sum type a value is.
type SegmentKind int

const (
	SegmentKindLex SegmentKind = iota
	SegmentKindName
	SegmentKindQuotedString
	SegmentKindAttribute
	SegmentKindInternalDefinition
	SegmentKindStartTag
	SegmentKindEmptyElement
	SegmentKindEndTag
	SegmentKindUnrecognizedTag
	SegmentKindDeclaration
	SegmentKindProcessingInstruction
	SegmentKindComment
	SegmentKindCDATA
	SegmentKindDOCTYPE
	SegmentKindText
	SegmentKindElement
)

// String returns a stable debug name for the kind.
func (k SegmentKind) String() string {
	switch k {
	case SegmentKindLex:
		return "Lex"
	case SegmentKindName:
		return "Name"
	case SegmentKindQuotedString:
		return "QuotedString"
	case SegmentKindAttribute:
		return "Attribute"
	case SegmentKindInternalDefinition:
		return "InternalDefinition"
	case SegmentKindStartTag:
		return "StartTag"
	case SegmentKindEmptyElement:
		return "EmptyElement"
	case SegmentKindEndTag:
		return "EndTag"
	case SegmentKindUnrecognizedTag:
		return "UnrecognizedTag"
	case SegmentKindDeclaration:
		return "Declaration"
	case SegmentKindProcessingInstruction:
		return "ProcessingInstruction"
	case SegmentKindComment:
		return "Comment"
	case SegmentKindCDATA:
		return "CDATA"
	case SegmentKindDOCTYPE:
		return "DOCTYPE"
	case SegmentKindText:
		return "Text"
	case SegmentKindElement:
		return "Element"
	default:
		return "Unknown"
	}
}

// Segment is the tagged-variant contract every node in the parse tree
// satisfies, whether it is a bare Lex, a compound of lexes, a Tag
// variant, or an Element. Every Segment reconstructs its own verbatim
// source text from its children, so concatenating a document's top-level
// segments always reproduces the original input (spec.md §8, round-trip).
type Segment interface {
	SegmentKind() SegmentKind
	Span() Span
	StartIndex() int
	Length() int
	AfterEndIndex() int
	String() string
	ContainsIndex(i int) bool
}

// SegmentKind implements Segment for a bare Lex standing alone as a top-level
// segment (spec.md §4.2, state 1: a lone NewLine).
func (l Lex) SegmentKind() SegmentKind { return SegmentKindLex }

// ContainsIndex implements Segment for a Lex: inclusive on both ends,
// same rule as Name and Text, since a lone Lex is the smallest possible
// atomic segment.
func (l Lex) ContainsIndex(i int) bool {
	return containsInclusive(l.span.StartIndex, l.span.AfterEndIndex(), i)
}

var _ Segment = Lex{}

// spanOfChildren returns the span covering every child in order, from the
// first child's start to the last child's end. Every compound segment
// derives its own Span this way so that "a segment's length equals the
// sum of its children's lengths" holds by construction.
func spanOfChildren(children []Segment) Span {
	if len(children) == 0 {
		return Span{}
	}
	return spanFromTo(children[0].Span(), children[len(children)-1].Span())
}

// stringOfChildren concatenates every child's verbatim text, in order.
func stringOfChildren(children []Segment) string {
	var b strings.Builder
	for _, c := range children {
		b.WriteString(c.String())
	}
	return b.String()
}

// firstOfKind scans children for the first segment of the given kind.
func firstOfKind(children []Segment, kind SegmentKind) Segment {
	for _, c := range children {
		if c.SegmentKind() == kind {
			return c
		}
	}
	return nil
}

// allOfKind scans children for every segment of the given kind, in order.
func allOfKind(children []Segment, kind SegmentKind) []Segment {
	var out []Segment
	for _, c := range children {
		if c.SegmentKind() == kind {
			out = append(out, c)
		}
	}
	return out
}
