package qubxml

// Document is the parse tree root: an ordered flat list of top-level
// segments (with Elements replacing their StartTag...EndTag spans) plus
// every diagnostic collected along the way (§3, §4.5).
type Document struct {
	segments []Segment
	issues   []Issue
}

// Segments returns the document's top-level segments, in order.
func (d Document) Segments() []Segment { return d.segments }

// Issues returns every diagnostic collected while building the
// document, in detection order.
func (d Document) Issues() []Issue { return d.issues }

// String reconstructs the document's verbatim source text.
func (d Document) String() string { return stringOfChildren(d.segments) }

// Declaration returns the document's declaration, if any.
func (d Document) Declaration() (Declaration, bool) {
	s := firstOfKind(d.segments, SegmentKindDeclaration)
	if s == nil {
		return Declaration{}, false
	}
	return s.(Declaration), true
}

// DOCTYPE returns the document's DOCTYPE, if any.
func (d Document) DOCTYPE() (DOCTYPE, bool) {
	s := firstOfKind(d.segments, SegmentKindDOCTYPE)
	if s == nil {
		return DOCTYPE{}, false
	}
	return s.(DOCTYPE), true
}

// Root returns the document's root element, if any. A root may be
// either a nested Element or a standalone EmptyElement.
func (d Document) Root() (Segment, bool) {
	for _, s := range d.segments {
		if s.SegmentKind() == SegmentKindElement || s.SegmentKind() == SegmentKindEmptyElement {
			return s, true
		}
	}
	return nil, false
}

// Prolog returns the longest prefix of segments consisting solely of
// Declaration, DOCTYPE, ProcessingInstruction, Comment, whitespace-only
// Text, or bare NewLine lexes (§4.5). If that prefix is empty, Prolog
// returns false.
func (d Document) Prolog() ([]Segment, bool) {
	n := 0
	for _, s := range d.segments {
		if !isPrologSegment(s) {
			break
		}
		n++
	}
	if n == 0 {
		return nil, false
	}
	return d.segments[:n], true
}

func isPrologSegment(s Segment) bool {
	switch v := s.(type) {
	case Declaration, DOCTYPE, ProcessingInstruction, Comment:
		return true
	case Text:
		return v.IsWhitespace()
	case Lex:
		return v.Kind == NewLine
	default:
		return false
	}
}

// BuildDocument runs element building over the entire segment stream
// produced by tok, enforcing root-level well-formedness (§4.5), and
// returns the resulting Document. sink receives every diagnostic
// produced by the tokenizer, the element builder, and this pass; it may
// be nil.
func BuildDocument(tok *Tokenizer, sink *Sink) Document {
	eb := newElementBuilder(tok, sink)

	var segments []Segment
	sawDeclaration := false
	sawDOCTYPE := false
	sawNonDeclaration := false
	sawRoot := false
	sawAnyContent := false

	for {
		s, ok := eb.Next()
		if !ok {
			break
		}

		if !isInsignificantWhitespace(s) {
			sawAnyContent = true
		}

		switch v := s.(type) {
		case Declaration:
			if sawDeclaration {
				sink.Add(MsgDocumentCanHaveOneDeclaration, v.Span())
			} else if sawNonDeclaration {
				sink.Add(MsgDocumentDeclarationMustBeFirstSegment, v.Span())
			}
			sawDeclaration = true
		case DOCTYPE:
			sawNonDeclaration = true
			if !sawDeclaration {
				sink.Add(MsgDocumentDOCTYPEMustBeAfterDeclaration, v.Span())
			}
			if sawDOCTYPE {
				sink.Add(MsgDocumentCanHaveOneDOCTYPE, v.Span())
			}
			sawDOCTYPE = true
		case Element:
			sawNonDeclaration = true
			if sawRoot {
				sink.Add(MsgDocumentCanHaveOneRootElement, v.Span())
			}
			sawRoot = true
		case EmptyElement:
			sawNonDeclaration = true
			if sawRoot {
				sink.Add(MsgDocumentCanHaveOneRootElement, v.Span())
			}
			sawRoot = true
		case CDATA:
			sawNonDeclaration = true
			sink.Add(MsgDocumentCannotHaveCDATAAtRootLevel, v.Span())
		case Text:
			if !v.IsWhitespace() {
				sawNonDeclaration = true
			}
			if span, ok := v.NonWhitespaceSpan(); ok {
				sink.Add(MsgDocumentCannotHaveTextAtRootLevel, span)
			}
		case Lex:
			// a bare NewLine between top-level segments is ignorable
			// filler (§4.5's prolog definition treats it the same as
			// whitespace-only Text) and never itself displaces a
			// declaration from first position.
		default:
			sawNonDeclaration = true
		}

		segments = append(segments, s)
	}

	if !sawAnyContent {
		sink.Add(MsgMissingDocumentRootElement, NewSpan("", 0, 0))
	}

	return Document{segments: segments, issues: sink.Issues()}
}

// isInsignificantWhitespace reports whether s is whitespace-only Text or
// a bare NewLine/Whitespace lex: the kind of segment that doesn't count
// as "content" when deciding whether the document had anything in it at
// all (§4.5, §8 boundary behavior for missingDocumentRootElement).
func isInsignificantWhitespace(s Segment) bool {
	switch v := s.(type) {
	case Text:
		return v.IsWhitespace()
	case Lex:
		return v.Kind == Whitespace || v.Kind == NewLine
	default:
		return false
	}
}
