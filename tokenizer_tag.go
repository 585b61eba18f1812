package qubxml

// readStartOrEmptyElementTag reads a StartTag or, if a ForwardSlash
// appears before '>', an EmptyElement (§4.2.1).
func (t *Tokenizer) readStartOrEmptyElementTag(open Lex, name Name) Segment {
	var children []Segment
	isEmpty := false

	for {
		l, ok := t.nextLex()
		if !ok {
			if isEmpty {
				t.sink.Add(MsgMissingEmptyElementRightAngleBracket, open.Span())
				return NewEmptyElement(open, name, children, nil)
			}
			t.sink.Add(MsgMissingStartTagRightAngleBracket, open.Span())
			return NewStartTag(open, name, children, nil)
		}

		switch {
		case l.Kind == RightAngleBracket:
			if isEmpty {
				return NewEmptyElement(open, name, children, &l)
			}
			return NewStartTag(open, name, children, &l)

		case l.Kind == ForwardSlash && !isEmpty:
			isEmpty = true
			children = append(children, l)

		case isEmpty:
			t.sink.Add(MsgExpectedEmptyElementRightAngleBracket, l.Span())
			children = append(children, t.absorbTagContentLex(l))

		case l.isNameStart():
			attrName := t.readName(l)
			if lastChildIsAttribute(children) {
				t.sink.Add(MsgExpectedWhitespaceBetweenAttributes, attrName.Span())
			}
			children = append(children, t.readAttribute(attrName))

		case l.IsWhitespaceOrNewLine():
			children = append(children, l)

		default:
			t.sink.Add(expectedAfterStartTagContent(children), l.Span())
			children = append(children, t.absorbTagContentLex(l))
		}
	}
}

// absorbTagContentLex returns l itself, or the full QuotedString it
// opens when l is a quote lex, so a stray quoted value inside a tag's
// error-recovery region is absorbed as one unit rather than character
// by character.
func (t *Tokenizer) absorbTagContentLex(l Lex) Segment {
	if l.Kind == SingleQuote || l.Kind == DoubleQuote {
		return t.readQuotedString(l)
	}
	return l
}

func lastChildIsAttribute(children []Segment) bool {
	if len(children) == 0 {
		return false
	}
	_, ok := children[len(children)-1].(Attribute)
	return ok
}

// expectedAfterStartTagContent picks between the two "what comes next"
// diagnostics depending on whether the most recently absorbed child was
// whitespace (§4.2.1).
func expectedAfterStartTagContent(children []Segment) string {
	if len(children) > 0 {
		if l, ok := children[len(children)-1].(Lex); ok && l.IsWhitespaceOrNewLine() {
			return MsgExpectedAttributeNameStartTagRightAngleBracketOrEmptyElementForwardSlash
		}
	}
	return MsgExpectedWhitespaceStartTagRightAngleBracketOrEmptyElementForwardSlash
}

// readEndTag reads `</name ... >` (§4.2.1).
func (t *Tokenizer) readEndTag(open, slash Lex) EndTag {
	var name *Name

	first, ok := t.nextLex()
	if !ok {
		t.sink.Add(MsgMissingEndTagName, open.Span())
		return NewEndTag(open, slash, nil, nil, nil)
	}
	if first.isNameStart() {
		n := t.readName(first)
		name = &n
	} else {
		t.sink.Add(MsgExpectedEndTagName, first.Span())
		t.pushBackLex(first)
	}

	var children []Segment
	for {
		l, ok := t.nextLex()
		if !ok {
			t.sink.Add(MsgMissingEndTagRightAngleBracket, open.Span())
			return NewEndTag(open, slash, name, children, nil)
		}
		switch {
		case l.Kind == RightAngleBracket:
			return NewEndTag(open, slash, name, children, &l)
		case l.IsWhitespaceOrNewLine():
			children = append(children, l)
		default:
			t.sink.Add(MsgExpectedEndTagRightAngleBracket, l.Span())
			children = append(children, l)
		}
	}
}
