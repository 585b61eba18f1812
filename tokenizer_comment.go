package qubxml

// readComment reads `<!--...-->` (§4.2.6). firstDash is the '-'
// immediately following '!'; the reader still needs a second '-'
// before the comment body begins.
func (t *Tokenizer) readComment(open, excl, firstDash Lex) Segment {
	secondDash, ok := t.peekLex()
	if !ok || secondDash.Kind != Dash {
		t.sink.AddMissingOrExpected(ok, MsgMissingCommentSecondStartDash, MsgExpectedCommentSecondStartDash, firstDash.Span())
		return t.readUnrecognizedTag(open, []Segment{excl, firstDash})
	}
	t.nextLex()

	var content []Segment
	dashRun := 0
	for {
		l, ok := t.nextLex()
		if !ok {
			switch dashRun {
			case 0:
				t.sink.Add(MsgMissingCommentClosingDashes, open.Span())
			case 1:
				t.sink.Add(MsgMissingCommentSecondClosingDash, open.Span())
			default:
				t.sink.Add(MsgMissingCommentRightAngleBracket, open.Span())
			}
			return NewComment(open, []Lex{firstDash, secondDash}, content, nil, nil, true)
		}

		if l.Kind == Dash {
			dashRun++
			content = append(content, l)
			continue
		}
		if l.Kind == RightAngleBracket && dashRun == 2 {
			// the two dashes immediately preceding '>' are the terminator,
			// not comment content.
			endDashes := content[len(content)-2:]
			body := content[:len(content)-2]
			return NewComment(open, []Lex{firstDash, secondDash}, body, lexesOf(endDashes), &l, true)
		}
		dashRun = 0
		content = append(content, l)
	}
}

func lexesOf(children []Segment) []Lex {
	out := make([]Lex, len(children))
	for i, c := range children {
		out[i] = c.(Lex)
	}
	return out
}
