package qubxml

// formatTagOpen writes a tag's opening lex, its children with
// whitespace collapsed per §4.6, and finally closeText (">" , "/>", or
// "" when the tag was never closed in the source). Children preserve
// NewLine verbatim (re-indenting after each one); other Whitespace runs
// collapse to a single ASCII space, except trailing whitespace that
// would otherwise sit directly before the close, which is dropped.
func formatTagOpen(fc *formatContext, open Lex, children []Segment, closeText string) {
	fc.write(open.String())

	lastSignificant := -1
	for i, c := range children {
		if l, ok := c.(Lex); ok && l.IsWhitespaceOrNewLine() {
			continue
		}
		lastSignificant = i
	}

	alignPushed := false
	for i, c := range children {
		switch v := c.(type) {
		case Lex:
			switch {
			case v.Kind == NewLine:
				fc.write(v.Text())
				fc.write(fc.currentIndent())
			case v.Kind == Whitespace:
				if i <= lastSignificant {
					fc.write(" ")
				}
			default:
				fc.write(v.String())
			}
		case Attribute:
			if fc.alignAttributes && !alignPushed {
				alignPushed = true
				fc.pushIndent(fc.alignmentIndent(fc.column))
			}
			fc.write(v.String())
		default:
			fc.write(v.String())
		}
	}

	if alignPushed {
		fc.popIndent()
	}
	fc.write(closeText)
}

// formatOpaqueTag writes a tag whose content is never reflowed: Comment
// and CDATA format as their raw source text (§4.6).
func formatOpaqueTag(fc *formatContext, s Segment) {
	fc.write(s.String())
}

// formatGenericTag reflows a tag whose close is a bare '>' — StartTag,
// EmptyElement, EndTag, UnrecognizedTag, DOCTYPE.
func formatGenericTag(fc *formatContext, tb tagBase) {
	formatTagOpen(fc, tb.Open(), tb.Children(), tb.closeAngleText())
}

// formatDeclaration reflows a Declaration, whose terminator is the two
// lexes '?' and '>' rather than a bare '>'.
func formatDeclaration(fc *formatContext, d Declaration) {
	closeText := ""
	if q, ok := d.CloseQuestionMark(); ok {
		closeText = q.String()
	}
	closeText += d.tagBase.closeAngleText()
	formatTagOpen(fc, d.tagBase.Open(), d.tagBase.Children(), closeText)
}

// formatProcessingInstruction reflows a ProcessingInstruction, which
// shares Declaration's two-lex terminator shape.
func formatProcessingInstruction(fc *formatContext, p ProcessingInstruction) {
	closeText := ""
	if q, ok := p.CloseQuestionMark(); ok {
		closeText = q.String()
	}
	closeText += p.tagBase.closeAngleText()
	formatTagOpen(fc, p.tagBase.Open(), p.tagBase.Children(), closeText)
}
