package qubxml

import "github.com/danschultequb/qub-go-xml/internal/charclass"

// Lexer reshapes the primitive character-class stream into XML-specific
// Lexes. It is stateless beyond its underlying iterator: given the same
// input it always produces the same stream, in order, with strictly
// increasing StartIndex values. It never fails; unclassifiable runes
// surface as Unrecognized lexes rather than errors.
type Lexer struct {
	text string
	it   *charclass.Iterator

	// pending holds a primitive token already read from it but not yet
	// consumed, used when a Whitespace run is interrupted by a NewLine:
	// the NewLine has to be read to discover the run ended, but it belongs
	// to the next Lex.
	pending   charclass.Token
	hasPend   bool
	finalized bool
}

// NewLexer creates a Lexer over text.
func NewLexer(text string) *Lexer {
	return &Lexer{text: text, it: charclass.New(text)}
}

// Next returns the next Lex, or ok=false at end of input.
func (lx *Lexer) Next() (Lex, bool) {
	tok, ok := lx.nextXMLPrimitive()
	if !ok {
		return Lex{}, false
	}

	switch tok.Kind {
	case charclass.Space, charclass.Tab, charclass.CarriageReturn:
		return lx.coalesceWhitespace(tok), true
	case charclass.NewLine:
		return lx.makeLex(tok.StartIndex, len(tok.Text), NewLine), true
	default:
		return lx.simpleLex(tok), true
	}
}

// coalesceWhitespace absorbs consecutive Space/Tab/CarriageReturn
// primitive tokens into one Whitespace lex. A NewLine terminates the run
// and is pushed back for the following Next call.
func (lx *Lexer) coalesceWhitespace(first charclass.Token) Lex {
	start := first.StartIndex
	end := first.StartIndex + len(first.Text)

	for {
		tok, ok := lx.nextXMLPrimitive()
		if !ok {
			break
		}
		switch tok.Kind {
		case charclass.Space, charclass.Tab, charclass.CarriageReturn:
			end = tok.StartIndex + len(tok.Text)
		default:
			lx.pushBack(tok)
			goto done
		}
	}
done:
	return lx.makeLex(start, end-start, Whitespace)
}

func (lx *Lexer) simpleLex(tok charclass.Token) Lex {
	kind := xmlKindOf(tok.Kind)
	return lx.makeLex(tok.StartIndex, len(tok.Text), kind)
}

func (lx *Lexer) makeLex(start, length int, kind LexKind) Lex {
	return NewLex(NewSpan(lx.text, start, length), kind)
}

func (lx *Lexer) nextPrimitive() (charclass.Token, bool) {
	if lx.hasPend {
		lx.hasPend = false
		return lx.pending, true
	}
	return lx.it.Next()
}

func (lx *Lexer) pushBack(tok charclass.Token) {
	lx.pending = tok
	lx.hasPend = true
}

// nextXMLPrimitive wraps nextPrimitive to merge a CarriageReturn
// immediately followed by a NewLine into a single two-byte NewLine
// token ("\r\n"), matching the Lex invariant that NewLine text is
// always "\n" or "\r\n". A CarriageReturn not followed by a NewLine is
// left as CarriageReturn, eligible for Whitespace coalescing.
func (lx *Lexer) nextXMLPrimitive() (charclass.Token, bool) {
	tok, ok := lx.nextPrimitive()
	if !ok || tok.Kind != charclass.CarriageReturn {
		return tok, ok
	}
	nxt, ok2 := lx.nextPrimitive()
	if !ok2 {
		return tok, true
	}
	if nxt.Kind == charclass.NewLine {
		return charclass.Token{Text: tok.Text + nxt.Text, StartIndex: tok.StartIndex, Kind: charclass.NewLine}, true
	}
	lx.pushBack(nxt)
	return tok, true
}

// xmlKindOf maps every primitive kind other than whitespace-coalescing
// targets 1-to-1 onto its XML lex kind, preserving offsets and text.
func xmlKindOf(k charclass.Kind) LexKind {
	switch k {
	case charclass.LeftAngleBracket:
		return LeftAngleBracket
	case charclass.RightAngleBracket:
		return RightAngleBracket
	case charclass.LeftSquareBracket:
		return LeftSquareBracket
	case charclass.RightSquareBracket:
		return RightSquareBracket
	case charclass.QuestionMark:
		return QuestionMark
	case charclass.ExclamationPoint:
		return ExclamationPoint
	case charclass.Dash:
		return Dash
	case charclass.SingleQuote:
		return SingleQuote
	case charclass.DoubleQuote:
		return DoubleQuote
	case charclass.Equals:
		return Equals
	case charclass.Underscore:
		return Underscore
	case charclass.Period:
		return Period
	case charclass.Colon:
		return Colon
	case charclass.Semicolon:
		return Semicolon
	case charclass.Ampersand:
		return Ampersand
	case charclass.ForwardSlash:
		return ForwardSlash
	case charclass.Letters:
		return Letters
	case charclass.Digits:
		return Digits
	default:
		return Unrecognized
	}
}
