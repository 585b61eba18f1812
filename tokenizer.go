package qubxml

// Tokenizer consumes a Lexer's lex stream and yields exactly one Segment
// per Next call. It never fails: malformed shapes produce a diagnostic
// on the sink and a structurally complete (possibly truncated) segment,
// never an error return.
type Tokenizer struct {
	lx      *Lexer
	sink    *Sink
	pending Lex
	hasPend bool
}

// NewTokenizer creates a Tokenizer over text. sink may be nil.
func NewTokenizer(text string, sink *Sink) *Tokenizer {
	return &Tokenizer{lx: NewLexer(text), sink: sink}
}

// Next returns the next segment, or ok=false once the lex stream is
// exhausted.
func (t *Tokenizer) Next() (Segment, bool) {
	l, ok := t.nextLex()
	if !ok {
		return nil, false
	}

	switch l.Kind {
	case LeftAngleBracket:
		return t.readTag(l), true
	case NewLine:
		return l, true
	default:
		return t.readText(l), true
	}
}

func (t *Tokenizer) nextLex() (Lex, bool) {
	if t.hasPend {
		t.hasPend = false
		return t.pending, true
	}
	return t.lx.Next()
}

func (t *Tokenizer) peekLex() (Lex, bool) {
	l, ok := t.nextLex()
	if ok {
		t.pushBackLex(l)
	}
	return l, ok
}

func (t *Tokenizer) pushBackLex(l Lex) {
	t.pending = l
	t.hasPend = true
}

// readText absorbs lexes until the next '<', NewLine, or end-of-input
// (§4.2.4). first is never itself '<' or NewLine (the caller already
// dispatched those away).
func (t *Tokenizer) readText(first Lex) Text {
	lexes := []Lex{first}
	for {
		l, ok := t.nextLex()
		if !ok {
			break
		}
		if l.Kind == LeftAngleBracket || l.Kind == NewLine {
			t.pushBackLex(l)
			break
		}
		lexes = append(lexes, l)
	}
	return NewText(lexes)
}

// readName absorbs first plus every immediately following
// name-continuation lex (§3: Letters|Digits|Period|Dash|Underscore|Colon).
// first must already satisfy isNameStart; callers check that before
// calling readName.
func (t *Tokenizer) readName(first Lex) Name {
	lexes := []Lex{first}
	for {
		l, ok := t.nextLex()
		if !ok {
			break
		}
		if !l.isNameContinuation() {
			t.pushBackLex(l)
			break
		}
		lexes = append(lexes, l)
	}
	return NewName(lexes)
}

// readQuotedString absorbs lexes until a lex matching startQuote's kind
// closes the string, or end-of-input (missingQuotedStringEndQuote).
func (t *Tokenizer) readQuotedString(startQuote Lex) QuotedString {
	var content []Lex
	for {
		l, ok := t.nextLex()
		if !ok {
			t.sink.Add(MsgMissingQuotedStringEndQuote, startQuote.Span())
			return NewQuotedString(startQuote, content, nil)
		}
		if l.Kind == startQuote.Kind {
			return NewQuotedString(startQuote, content, &l)
		}
		content = append(content, l)
	}
}

// readAttribute reads `[ws] [= [ws] quoted-string]` following an
// already-read name (§4.2.8).
func (t *Tokenizer) readAttribute(name Name) Attribute {
	nameTrail := t.readWhitespaceRun()

	eq, ok := t.peekLex()
	if !ok || eq.Kind != Equals {
		t.sink.AddMissingOrExpected(ok, MsgMissingAttributeEqualsSign, MsgExpectedAttributeEqualsSign, name.Span())
		return NewAttribute(name, nameTrail, nil, nil, nil)
	}
	eqLex, _ := t.nextLex()

	eqTrail := t.readWhitespaceRun()

	q, ok := t.peekLex()
	if !ok || !(q.Kind == SingleQuote || q.Kind == DoubleQuote) {
		t.sink.AddMissingOrExpected(ok, MsgMissingAttributeValue, MsgExpectedAttributeValue, name.Span())
		return NewAttribute(name, nameTrail, &eqLex, eqTrail, nil)
	}
	qLex, _ := t.nextLex()
	value := t.readQuotedString(qLex)
	return NewAttribute(name, nameTrail, &eqLex, eqTrail, &value)
}

// readWhitespaceRun absorbs consecutive Whitespace/NewLine lexes.
func (t *Tokenizer) readWhitespaceRun() []Lex {
	var out []Lex
	for {
		l, ok := t.peekLex()
		if !ok || !l.IsWhitespaceOrNewLine() {
			return out
		}
		t.nextLex()
		out = append(out, l)
	}
}

// readTag dispatches on the lex following '<' (§4.2, outer state 2).
func (t *Tokenizer) readTag(open Lex) Segment {
	next, ok := t.nextLex()
	if !ok {
		t.sink.Add(MsgMissingNameQuestionMarkExclamationPointOrForwardSlash, open.Span())
		t.sink.Add(MsgMissingTagRightAngleBracket, open.Span())
		return NewUnrecognizedTag(open, nil, nil)
	}

	switch {
	case next.isNameStart():
		name := t.readName(next)
		return t.readStartOrEmptyElementTag(open, name)
	case next.Kind == ForwardSlash:
		return t.readEndTag(open, next)
	case next.Kind == QuestionMark:
		return t.readDeclarationOrProcessingInstruction(open, next)
	case next.Kind == ExclamationPoint:
		return t.readBangTag(open, next)
	default:
		t.sink.Add(MsgExpectedNameQuestionMarkExclamationPointOrForwardSlash, next.Span())
		t.pushBackLex(next)
		return t.readUnrecognizedTag(open, nil)
	}
}

func (t *Tokenizer) readDeclarationOrProcessingInstruction(open, qm Lex) Segment {
	nameLex, ok := t.peekLex()
	if !ok || !nameLex.isNameStart() {
		t.sink.AddMissingOrExpected(ok, MsgMissingDeclarationOrProcessingInstructionName, MsgExpectedDeclarationOrProcessingInstructionName, qm.Span())
		return t.readUnrecognizedTag(open, []Segment{qm})
	}
	t.nextLex()
	name := t.readName(nameLex)
	if name.Text() == "xml" {
		return t.readDeclaration(open, qm, name)
	}
	return t.readProcessingInstruction(open, qm, &name)
}

func (t *Tokenizer) readBangTag(open, excl Lex) Segment {
	next, ok := t.peekLex()
	if !ok {
		return t.readUnrecognizedTag(open, []Segment{excl})
	}
	switch {
	case next.isNameStart():
		t.nextLex()
		name := t.readName(next)
		if name.Text() == "DOCTYPE" {
			return t.readDOCTYPE(open, excl, name)
		}
		t.sink.Add(MsgExpectedDOCTYPENameCommentDashesOrCDATALeftSquareBracket, name.Span())
		return t.readUnrecognizedTag(open, []Segment{excl, name})
	case next.Kind == Dash:
		t.nextLex()
		return t.readComment(open, excl, next)
	case next.Kind == LeftSquareBracket:
		t.nextLex()
		return t.readCDATA(open, excl, next)
	default:
		return t.readUnrecognizedTag(open, []Segment{excl})
	}
}

// readUnrecognizedTag absorbs lexes until '>' or end-of-input (§4.2.9).
// prefix holds whatever marker lexes/segments were already consumed and
// positively identified before the tag turned out to be unrecognizable.
func (t *Tokenizer) readUnrecognizedTag(open Lex, prefix []Segment) UnrecognizedTag {
	children := append([]Segment{}, prefix...)
	for {
		l, ok := t.nextLex()
		if !ok {
			t.sink.Add(MsgMissingTagRightAngleBracket, open.Span())
			return NewUnrecognizedTag(open, children, nil)
		}
		if l.Kind == RightAngleBracket {
			return NewUnrecognizedTag(open, children, &l)
		}
		if l.Kind == SingleQuote || l.Kind == DoubleQuote {
			children = append(children, t.readQuotedString(l))
			continue
		}
		children = append(children, l)
	}
}
