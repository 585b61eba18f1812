package qubxml

// formatElement applies the element collapse/inline/multi-line rules of
// §4.6.
func formatElement(fc *formatContext, e Element) {
	end, hasEnd := e.EndTag()
	children := e.Children()

	if hasEnd {
		if endName, ok := end.Name(); ok && Matches(endName.Text(), e.Name().Text()) && isCollapsibleEmpty(children) {
			formatCollapsedEmptyElement(fc, e.StartTag(), end)
			return
		}
	}

	if text, ok := soleTextChild(children); ok && !text.IsWhitespace() {
		formatGenericTag(fc, e.StartTag().tagBase)
		span, _ := text.NonWhitespaceSpan()
		fc.write(span.String())
		if hasEnd {
			fc.write(end.String())
		}
		return
	}

	formatGenericTag(fc, e.StartTag().tagBase)
	fc.pushChildIndent()

	gapNewlines := 0
	for _, c := range children {
		if isWhitespaceFiller(c) {
			gapNewlines += countNewlines(c)
			continue
		}
		for extra := 0; extra < gapNewlines-1; extra++ {
			fc.write(fc.newline)
		}
		gapNewlines = 0
		fc.writeNewlineAndIndent()
		formatSegment(fc, c)
	}

	fc.popIndent()
	if hasEnd {
		fc.writeNewlineAndIndent()
		fc.write(end.String())
	}
}

// isCollapsibleEmpty reports whether children amounts to nothing more
// than optional whitespace filler, i.e. the element has no meaningful
// content and can collapse to a self-closing tag.
func isCollapsibleEmpty(children []Segment) bool {
	for _, c := range children {
		if !isWhitespaceFiller(c) {
			return false
		}
	}
	return true
}

// soleTextChild returns the element's single Text child, if children
// holds exactly one segment and it is Text.
func soleTextChild(children []Segment) (Text, bool) {
	if len(children) != 1 {
		return Text{}, false
	}
	t, ok := children[0].(Text)
	return t, ok
}

func isWhitespaceFiller(s Segment) bool {
	switch v := s.(type) {
	case Lex:
		return v.Kind == NewLine
	case Text:
		return v.IsWhitespace()
	default:
		return false
	}
}

func countNewlines(s Segment) int {
	switch v := s.(type) {
	case Lex:
		if v.Kind == NewLine {
			return 1
		}
		return 0
	case Text:
		n := 0
		for _, l := range v.lexes {
			if l.Kind == NewLine {
				n++
			}
		}
		return n
	default:
		return 0
	}
}

// formatCollapsedEmptyElement rewrites `<a></a>` / `<a b="c"></a>` as
// `<a/>` / `<a b="c"/>`: the end tag's '>' becomes '/>' and the start
// tag's own close ('>') is dropped.
func formatCollapsedEmptyElement(fc *formatContext, start StartTag, end EndTag) {
	closeText := "/>"
	formatTagOpen(fc, start.tagBase.Open(), stripTrailingWhitespace(start.tagBase.Children()), closeText)
}

// stripTrailingWhitespace drops trailing Whitespace/NewLine children so
// the synthesized "/>" doesn't inherit a stray space from the original
// "<a >" shape; formatTagOpen's own trailing-whitespace suppression
// already does this for plain Whitespace, but a trailing NewLine is
// preserved verbatim there, which would otherwise leave "/>" on a line
// by itself for an element being collapsed onto one line.
func stripTrailingWhitespace(children []Segment) []Segment {
	end := len(children)
	for end > 0 {
		l, ok := children[end-1].(Lex)
		if !ok || !l.IsWhitespaceOrNewLine() {
			break
		}
		end--
	}
	return children[:end]
}
