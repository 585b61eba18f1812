package qubxml

// elementBuilder consumes a Tokenizer's segment stream and nests
// StartTag...EndTag pairs into Element values (Component D, §4.4).
type elementBuilder struct {
	tok     *Tokenizer
	sink    *Sink
	pending Segment
	hasPend bool
}

func newElementBuilder(tok *Tokenizer, sink *Sink) *elementBuilder {
	return &elementBuilder{tok: tok, sink: sink}
}

func (b *elementBuilder) next() (Segment, bool) {
	if b.hasPend {
		b.hasPend = false
		return b.pending, true
	}
	return b.tok.Next()
}

func (b *elementBuilder) pushBack(s Segment) {
	b.pending = s
	b.hasPend = true
}

// Next returns the next top-level segment, nesting a StartTag's
// children into an Element when one is encountered.
func (b *elementBuilder) Next() (Segment, bool) {
	s, ok := b.next()
	if !ok {
		return nil, false
	}
	if start, ok := s.(StartTag); ok {
		return b.buildElement(start), true
	}
	return s, true
}

// buildElement recursively accumulates children until a matching (or
// mismatched-name) EndTag is seen or the stream ends (§4.4).
func (b *elementBuilder) buildElement(start StartTag) Element {
	var children []Segment
	for {
		s, ok := b.next()
		if !ok {
			b.sink.Add(MsgMissingElementEndTag, start.Name().Span())
			return NewElement(start, children, nil)
		}
		if end, ok := s.(EndTag); ok {
			if name, hasName := end.Name(); hasName && !Matches(name.Text(), start.Name().Text()) {
				b.sink.Add(MsgExpectedElementEndTagWithDifferentName, name.Span())
			}
			return NewElement(start, children, &end)
		}
		if nestedStart, ok := s.(StartTag); ok {
			children = append(children, b.buildElement(nestedStart))
			continue
		}
		children = append(children, s)
	}
}
