package qubxml

// readDeclaration reads `<?xml ...?>`, enforcing attribute order with
// graceful recovery (§4.2.2).
func (t *Tokenizer) readDeclaration(open, qm Lex, name Name) Declaration {
	var children []Segment
	var closeQuestion *Lex
	attrIndex := 0

	for {
		l, ok := t.nextLex()
		if !ok {
			switch {
			case attrIndex == 0:
				t.sink.Add(MsgMissingDeclarationVersionAttribute, open.Span())
			case closeQuestion == nil:
				t.sink.Add(MsgMissingDeclarationRightQuestionMark, open.Span())
			default:
				t.sink.Add(MsgMissingDeclarationRightAngleBracket, open.Span())
			}
			return NewDeclaration(open, qm, name, children, closeQuestion, nil)
		}

		switch {
		case l.Kind == RightAngleBracket && closeQuestion != nil:
			return NewDeclaration(open, qm, name, children, closeQuestion, &l)

		case l.Kind == QuestionMark && closeQuestion == nil:
			if attrIndex == 0 {
				t.sink.Add(MsgExpectedDeclarationVersionAttribute, l.Span())
			}
			closeQuestion = &l

		case l.IsWhitespaceOrNewLine():
			children = append(children, l)

		case closeQuestion == nil && l.isNameStart():
			attrName := t.readName(l)
			attrIndex++
			validateDeclarationAttributeName(t.sink, attrIndex, attrName)
			attr := t.readAttribute(attrName)
			switch {
			case attrIndex == 1:
				validateDeclarationVersionValue(t.sink, attr)
			case attrName.Text() == "standalone":
				validateDeclarationStandaloneValue(t.sink, attr)
			}
			children = append(children, attr)

		default:
			if closeQuestion == nil {
				t.sink.Add(MsgExpectedDeclarationRightQuestionMark, l.Span())
			} else {
				t.sink.Add(MsgExpectedDeclarationRightAngleBracket, l.Span())
			}
			children = append(children, t.absorbTagContentLex(l))
		}
	}
}

func validateDeclarationAttributeName(sink *Sink, index int, name Name) {
	text := name.Text()
	switch index {
	case 1:
		if text != "version" {
			sink.Add(MsgExpectedDeclarationVersionAttribute, name.Span())
		}
	case 2:
		if text != "encoding" && text != "standalone" {
			sink.Add(MsgExpectedDeclarationEncodingOrStandaloneAttribute, name.Span())
		}
	default:
		if text != "standalone" {
			sink.Add(MsgExpectedDeclarationEncodingOrStandaloneAttributeOrRightQuestionMark, name.Span())
		}
	}
}

func validateDeclarationVersionValue(sink *Sink, attr Attribute) {
	value, ok := attr.Value()
	if !ok {
		return
	}
	if value.UnquotedString() != "1.0" {
		sink.Add(MsgInvalidDeclarationVersionAttributeValue, value.Span())
	}
}

func validateDeclarationStandaloneValue(sink *Sink, attr Attribute) {
	value, ok := attr.Value()
	if !ok {
		return
	}
	s := value.UnquotedString()
	if s != "yes" && s != "no" {
		sink.Add(MsgInvalidDeclarationStandaloneAttributeValue, value.Span())
	}
}
