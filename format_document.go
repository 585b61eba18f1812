package qubxml

// formatDocument iterates top-level segments, skipping whitespace-only
// text and inserting newline separators between non-NewLine segments
// when the previous output didn't already end in one (§4.6, document
// formatting).
func formatDocument(fc *formatContext, segments []Segment) {
	endedInNewline := true
	for _, s := range segments {
		if t, ok := s.(Text); ok && t.IsWhitespace() {
			continue
		}
		if l, ok := s.(Lex); ok && l.Kind == NewLine {
			continue
		}
		if !endedInNewline {
			fc.writeNewlineAndIndent()
		}
		formatSegment(fc, s)
		endedInNewline = false
	}
}

// formatSegment dispatches a single top-level or nested segment to its
// formatter.
func formatSegment(fc *formatContext, s Segment) {
	switch v := s.(type) {
	case Element:
		formatElement(fc, v)
	case EmptyElement:
		formatGenericTag(fc, v.tagBase)
	case StartTag:
		formatGenericTag(fc, v.tagBase)
	case EndTag:
		formatGenericTag(fc, v.tagBase)
	case UnrecognizedTag:
		formatGenericTag(fc, v.tagBase)
	case DOCTYPE:
		formatGenericTag(fc, v.tagBase)
	case Declaration:
		formatDeclaration(fc, v)
	case ProcessingInstruction:
		formatProcessingInstruction(fc, v)
	case Comment, CDATA:
		formatOpaqueTag(fc, v)
	case Text:
		fc.write(v.String())
	default:
		fc.write(s.String())
	}
}
