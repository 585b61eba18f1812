package qubxml

// readDOCTYPE reads `<!DOCTYPE name [PUBLIC "pub" "sys" | SYSTEM "sys"]
// [internal-subset] >` (§4.2.5).
func (t *Tokenizer) readDOCTYPE(open, excl Lex, doctypeKeyword Name) DOCTYPE {
	var children []Segment
	var rootName *Name
	var externalKind *Name
	var publicID, systemID *QuotedString
	var internal *InternalDefinition

	skipWS := func() {
		for _, l := range t.readWhitespaceRun() {
			children = append(children, l)
		}
	}

	skipWS()

	nameLex, ok := t.peekLex()
	if !ok || !nameLex.isNameStart() {
		t.sink.AddMissingOrExpected(ok, MsgMissingDOCTYPERootElementName, MsgExpectedDOCTYPERootElementName, open.Span())
	} else {
		t.nextLex()
		n := t.readName(nameLex)
		rootName = &n
		children = append(children, n)
	}

	skipWS()

	if kw, ok := t.peekLex(); ok && kw.isNameStart() {
		kwPeek, _ := t.nextLex()
		kwName := t.readName(kwPeek)
		switch kwName.Text() {
		case "PUBLIC":
			externalKind = &kwName
			children = append(children, kwName)
			skipWS()
			publicID = t.readDOCTYPEQuotedIdentifier(kwName.Span(), MsgMissingDOCTYPEPublicIdentifier, MsgExpectedDOCTYPEPublicIdentifier, &children)
			skipWS()
			systemID = t.readDOCTYPEQuotedIdentifier(kwName.Span(), MsgMissingDOCTYPESystemIdentifier, MsgExpectedDOCTYPESystemIdentifier, &children)
		case "SYSTEM":
			externalKind = &kwName
			children = append(children, kwName)
			skipWS()
			systemID = t.readDOCTYPEQuotedIdentifier(kwName.Span(), MsgMissingDOCTYPESystemIdentifier, MsgExpectedDOCTYPESystemIdentifier, &children)
		default:
			t.sink.Add(MsgInvalidDOCTYPEExternalIdType, kwName.Span())
			children = append(children, kwName)
		}
		skipWS()
	}

	if open2, ok := t.peekLex(); ok && open2.Kind == LeftSquareBracket {
		t.nextLex()
		internal = t.readInternalDefinition(open2)
		children = append(children, *internal)
		skipWS()
	}

	for {
		l, ok := t.nextLex()
		if !ok {
			t.sink.Add(MsgMissingDOCTYPERightAngleBracket, open.Span())
			return NewDOCTYPE(open, doctypeKeyword, children, nil, rootName, externalKind, publicID, systemID, internal)
		}
		if l.Kind == RightAngleBracket {
			return NewDOCTYPE(open, doctypeKeyword, children, &l, rootName, externalKind, publicID, systemID, internal)
		}
		t.sink.Add(MsgExpectedDOCTYPERightAngleBracket, l.Span())
		children = append(children, t.absorbTagContentLex(l))
	}
}

func (t *Tokenizer) readDOCTYPEQuotedIdentifier(anchor Span, missingMsg, expectedMsg string, children *[]Segment) *QuotedString {
	q, ok := t.peekLex()
	if !ok || !(q.Kind == SingleQuote || q.Kind == DoubleQuote) {
		span := anchor
		if ok {
			span = q.Span()
		}
		t.sink.AddMissingOrExpected(ok, missingMsg, expectedMsg, span)
		return nil
	}
	t.nextLex()
	qs := t.readQuotedString(q)
	*children = append(*children, qs)
	return &qs
}

// readInternalDefinition reads `[...]` content verbatim (§3, §4.2.5.3).
func (t *Tokenizer) readInternalDefinition(open Lex) *InternalDefinition {
	var content []Lex
	for {
		l, ok := t.nextLex()
		if !ok {
			t.sink.Add(MsgMissingInternalDefinitionRightSquareBracket, open.Span())
			d := NewInternalDefinition(open, content, nil)
			return &d
		}
		if l.Kind == RightSquareBracket {
			d := NewInternalDefinition(open, content, &l)
			return &d
		}
		content = append(content, l)
	}
}
