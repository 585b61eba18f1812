package qubxml

// LexKind identifies the kind of a single lexical unit produced by the
// Lexer. The kind determines exactly which character sequences Text may
// hold: Whitespace is always a run of space/tab/carriage-return,
// NewLine is always "\n" or "\r\n", Letters and Digits are runs of
// ASCII letters or digits, Unrecognized is a single rune, and every
// punctuation kind is exactly the one character it names.
type LexKind int

const (
	LeftAngleBracket LexKind = iota
	RightAngleBracket
	LeftSquareBracket
	RightSquareBracket
	QuestionMark
	ExclamationPoint
	Dash
	SingleQuote
	DoubleQuote
	Equals
	Underscore
	Period
	Colon
	Semicolon
	Ampersand
	ForwardSlash
	Whitespace
	NewLine
	Letters
	Digits
	Unrecognized
)

// String returns a stable debug name for the kind.
func (k LexKind) String() string {
	switch k {
	case LeftAngleBracket:
		return "LeftAngleBracket"
	case RightAngleBracket:
		return "RightAngleBracket"
	case LeftSquareBracket:
		return "LeftSquareBracket"
	case RightSquareBracket:
		return "RightSquareBracket"
	case QuestionMark:
		return "QuestionMark"
	case ExclamationPoint:
		return "ExclamationPoint"
	case Dash:
		return "Dash"
	case SingleQuote:
		return "SingleQuote"
	case DoubleQuote:
		return "DoubleQuote"
	case Equals:
		return "Equals"
	case Underscore:
		return "Underscore"
	case Period:
		return "Period"
	case Colon:
		return "Colon"
	case Semicolon:
		return "Semicolon"
	case Ampersand:
		return "Ampersand"
	case ForwardSlash:
		return "ForwardSlash"
	case Whitespace:
		return "Whitespace"
	case NewLine:
		return "NewLine"
	case Letters:
		return "Letters"
	case Digits:
		return "Digits"
	default:
		return "Unrecognized"
	}
}

// Lex is a single lexical unit: a classified run of source text with a
// byte offset. Lex is also a Segment (the simplest possible one): a bare
// newline stands on its own as a top-level segment (see Tokenizer.Next).
type Lex struct {
	span Span
	Kind LexKind
}

// NewLex builds a Lex from a Span and a kind.
func NewLex(span Span, kind LexKind) Lex {
	return Lex{span: span, Kind: kind}
}

// Span returns the lex's underlying span.
func (l Lex) Span() Span {
	return l.span
}

// Text returns the verbatim text of the lex.
func (l Lex) Text() string {
	return l.span.String()
}

// String implements Segment.
func (l Lex) String() string {
	return l.span.String()
}

// StartIndex is the byte offset of the first byte of the lex.
func (l Lex) StartIndex() int {
	return l.span.StartIndex
}

// Length is the number of bytes the lex covers.
func (l Lex) Length() int {
	return l.span.Length
}

// AfterEndIndex is the first byte offset past the lex.
func (l Lex) AfterEndIndex() int {
	return l.span.AfterEndIndex()
}

// IsWhitespaceOrNewLine reports whether the lex is Whitespace or NewLine,
// the two kinds that the tokenizer treats as insignificant filler inside
// tags.
func (l Lex) IsWhitespaceOrNewLine() bool {
	return l.Kind == Whitespace || l.Kind == NewLine
}

// isNameStart reports whether this lex could start a Name (Letters,
// Underscore, or Colon).
func (l Lex) isNameStart() bool {
	return l.Kind == Letters || l.Kind == Underscore || l.Kind == Colon
}

// isNameContinuation reports whether this lex could continue a Name
// (Letters, Digits, Period, Dash, Underscore, or Colon).
func (l Lex) isNameContinuation() bool {
	switch l.Kind {
	case Letters, Digits, Period, Dash, Underscore, Colon:
		return true
	default:
		return false
	}
}
