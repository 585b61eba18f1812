package qubxml

// readProcessingInstruction reads `<?name ...?>` with opaque content
// (§4.2.3).
func (t *Tokenizer) readProcessingInstruction(open, qm Lex, name *Name) ProcessingInstruction {
	var children []Segment
	var closeQuestion *Lex

	for {
		l, ok := t.nextLex()
		if !ok {
			if closeQuestion == nil {
				t.sink.Add(MsgMissingProcessingInstructionRightQuestionMark, open.Span())
			} else {
				t.sink.Add(MsgMissingProcessingInstructionRightAngleBracket, open.Span())
			}
			return NewProcessingInstruction(open, qm, name, children, closeQuestion, nil)
		}

		switch {
		case l.Kind == RightAngleBracket && closeQuestion != nil:
			return NewProcessingInstruction(open, qm, name, children, closeQuestion, &l)
		case l.Kind == RightAngleBracket:
			t.sink.Add(MsgExpectedProcessingInstructionRightQuestionMark, l.Span())
			children = append(children, l)
		case l.Kind == QuestionMark && closeQuestion == nil:
			closeQuestion = &l
		default:
			children = append(children, l)
		}
	}
}
