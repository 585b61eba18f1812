package qubxml

// Element is a StartTag followed by zero or more child segments followed
// by an optional EndTag. It is produced only by the element builder
// (Component D), never by the tokenizer itself: the tokenizer yields flat
// StartTag/EndTag pairs, and the builder nests them.
type Element struct {
	start    StartTag
	children []Segment
	end      *EndTag
}

// NewElement builds an Element. end is nil when the stream ended before
// a matching (or mismatched-name) EndTag was found, in which case a
// missingElementEndTag diagnostic has already been recorded.
func NewElement(start StartTag, children []Segment, end *EndTag) Element {
	return Element{start: start, children: children, end: end}
}

// SegmentKind implements Segment.
func (e Element) SegmentKind() SegmentKind { return SegmentKindElement }

// StartTag returns the element's opening tag.
func (e Element) StartTag() StartTag { return e.start }

// EndTag returns the element's closing tag and whether one was found.
func (e Element) EndTag() (EndTag, bool) {
	if e.end == nil {
		return EndTag{}, false
	}
	return *e.end, true
}

// Children returns every segment strictly between the start tag and the
// end tag, in document order.
func (e Element) Children() []Segment { return e.children }

// Name returns the element's name, taken from its start tag.
func (e Element) Name() Name { return e.start.Name() }

// Span implements Segment.
func (e Element) Span() Span {
	last := e.start.Span()
	if e.end != nil {
		last = e.end.Span()
	} else if len(e.children) > 0 {
		last = e.children[len(e.children)-1].Span()
	}
	return spanFromTo(e.start.Span(), last)
}

// StartIndex implements Segment.
func (e Element) StartIndex() int { return e.Span().StartIndex }

// Length implements Segment.
func (e Element) Length() int { return e.Span().Length }

// AfterEndIndex implements Segment.
func (e Element) AfterEndIndex() int { return e.Span().AfterEndIndex() }

// String implements Segment.
func (e Element) String() string { return e.Span().String() }

// ContainsIndex implements Segment: closed-interior when an end tag was
// found, open-ended otherwise, matching tagBase's policy since an
// Element's boundary markers are themselves tags.
func (e Element) ContainsIndex(i int) bool {
	s := e.Span()
	if e.end != nil {
		return containsClosedInterior(s.StartIndex, s.AfterEndIndex(), i)
	}
	return containsOpenInterior(s.StartIndex, i)
}

var _ Segment = Element{}
