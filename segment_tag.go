package qubxml

// tagBase is the shared shape behind every Tag variant: a leading
// LeftAngleBracket, an ordered run of children (markers, names,
// attributes, quoted strings, whitespace, nested content), and an
// optional closing RightAngleBracket. Every Tag variant can be
// truncated (close == nil) and still hold a well-formed Span.
type tagBase struct {
	kind     SegmentKind
	open     Lex
	children []Segment
	close    *Lex
}

// SegmentKind implements Segment.
func (t tagBase) SegmentKind() SegmentKind { return t.kind }

// Children returns every segment between the opening bracket and the
// closing one (exclusive of both), in document order. The closing '?' of
// a Declaration or ProcessingInstruction is held separately and is not
// among the children.
func (t tagBase) Children() []Segment { return t.children }

// Open returns the tag's opening LeftAngleBracket lex.
func (t tagBase) Open() Lex { return t.open }

// closeAngleText returns the literal text of the closing '>', or "" if
// the tag was never closed.
func (t tagBase) closeAngleText() string {
	if t.close == nil {
		return ""
	}
	return t.close.String()
}

// CloseAngleBracket returns the closing '>' lex and whether it is
// present.
func (t tagBase) CloseAngleBracket() (Lex, bool) {
	if t.close == nil {
		return Lex{}, false
	}
	return *t.close, true
}

// Span implements Segment.
func (t tagBase) Span() Span {
	last := t.open.Span()
	if t.close != nil {
		last = t.close.Span()
	} else if len(t.children) > 0 {
		last = t.children[len(t.children)-1].Span()
	}
	return spanFromTo(t.open.Span(), last)
}

// StartIndex implements Segment.
func (t tagBase) StartIndex() int { return t.Span().StartIndex }

// Length implements Segment.
func (t tagBase) Length() int { return t.Span().Length }

// AfterEndIndex implements Segment.
func (t tagBase) AfterEndIndex() int { return t.Span().AfterEndIndex() }

// String implements Segment.
func (t tagBase) String() string { return t.Span().String() }

// ContainsIndex implements Segment: closed-interior when a closing
// bracket was found, open-ended otherwise.
func (t tagBase) ContainsIndex(i int) bool {
	s := t.Span()
	if t.close != nil {
		return containsClosedInterior(s.StartIndex, s.AfterEndIndex(), i)
	}
	return containsOpenInterior(s.StartIndex, i)
}

func attributesOf(children []Segment) []Attribute {
	var out []Attribute
	for _, c := range children {
		if a, ok := c.(Attribute); ok {
			out = append(out, a)
		}
	}
	return out
}

// StartTag is `<name attr="value" ...>`.
type StartTag struct {
	tagBase
	name Name
}

// NewStartTag builds a StartTag. children holds every lex/Attribute
// between the name and the close, in order; the name itself is prepended
// so tagBase's generic Span/String/formatting logic sees it too.
func NewStartTag(open Lex, name Name, children []Segment, close *Lex) StartTag {
	all := append([]Segment{name}, children...)
	return StartTag{tagBase: tagBase{kind: SegmentKindStartTag, open: open, children: all, close: close}, name: name}
}

// Name returns the tag's element name.
func (t StartTag) Name() Name { return t.name }

// Attributes returns the tag's attributes in document order.
func (t StartTag) Attributes() []Attribute { return attributesOf(t.children) }

var _ Segment = StartTag{}

// EmptyElement is `<name attr="value" .../>`, a start tag and end tag
// fused into one segment.
type EmptyElement struct {
	tagBase
	name Name
}

// NewEmptyElement builds an EmptyElement. children holds everything
// between the name and the close, including the terminating ForwardSlash
// lex; the name itself is prepended so tagBase's generic
// Span/String/formatting logic sees it too.
func NewEmptyElement(open Lex, name Name, children []Segment, close *Lex) EmptyElement {
	all := append([]Segment{name}, children...)
	return EmptyElement{tagBase: tagBase{kind: SegmentKindEmptyElement, open: open, children: all, close: close}, name: name}
}

// Name returns the element's name.
func (t EmptyElement) Name() Name { return t.name }

// Attributes returns the element's attributes in document order.
func (t EmptyElement) Attributes() []Attribute { return attributesOf(t.children) }

var _ Segment = EmptyElement{}

// EndTag is `</name>`.
type EndTag struct {
	tagBase
	name *Name
}

// NewEndTag builds an EndTag. name is nil when the reader could not
// find a name lex (missingEndTagName or expectedEndTagName).
func NewEndTag(open, slash Lex, name *Name, children []Segment, close *Lex) EndTag {
	all := []Segment{slash}
	if name != nil {
		all = append(all, *name)
	}
	all = append(all, children...)
	return EndTag{tagBase: tagBase{kind: SegmentKindEndTag, open: open, children: all, close: close}, name: name}
}

// Name returns the end tag's name and whether it was found.
func (t EndTag) Name() (Name, bool) {
	if t.name == nil {
		return Name{}, false
	}
	return *t.name, true
}

var _ Segment = EndTag{}

// UnrecognizedTag is any tag-opening sequence the tokenizer could not
// classify into one of the other variants: its children are whatever
// lexes and quoted strings were absorbed up to '>' or end-of-input.
type UnrecognizedTag struct {
	tagBase
}

// NewUnrecognizedTag builds an UnrecognizedTag.
func NewUnrecognizedTag(open Lex, children []Segment, close *Lex) UnrecognizedTag {
	return UnrecognizedTag{tagBase: tagBase{kind: SegmentKindUnrecognizedTag, open: open, children: children, close: close}}
}

var _ Segment = UnrecognizedTag{}

// Declaration is `<?xml version="1.0" ...?>`.
type Declaration struct {
	tagBase
	name     Name
	question *Lex
}

// NewDeclaration builds a Declaration. question is the closing '?' lex,
// nil if never found; close is the final '>'.
func NewDeclaration(open, questionMark Lex, name Name, children []Segment, closeQuestion *Lex, close *Lex) Declaration {
	all := append([]Segment{questionMark, name}, children...)
	return Declaration{
		tagBase:  tagBase{kind: SegmentKindDeclaration, open: open, children: all, close: close},
		name:     name,
		question: closeQuestion,
	}
}

// Name returns the literal "xml" name lex sequence.
func (d Declaration) Name() Name { return d.name }

// Attributes returns the declaration's attributes (version, encoding,
// standalone) without re-validating their order or values; that
// validation happened, with diagnostics, while the segment was built.
func (d Declaration) Attributes() []Attribute { return attributesOf(d.children) }

// HasCloseQuestionMark reports whether the terminating '?' before '>'
// was found.
func (d Declaration) HasCloseQuestionMark() bool { return d.question != nil }

// CloseQuestionMark returns the terminating '?' lex and whether it was
// found.
func (d Declaration) CloseQuestionMark() (Lex, bool) {
	if d.question == nil {
		return Lex{}, false
	}
	return *d.question, true
}

var _ Segment = Declaration{}

// ProcessingInstruction is `<?name ... ?>` with opaque content.
type ProcessingInstruction struct {
	tagBase
	name     *Name
	question *Lex
}

// NewProcessingInstruction builds a ProcessingInstruction. name is nil
// when no name lex followed the '?'.
func NewProcessingInstruction(open, questionMark Lex, name *Name, children []Segment, closeQuestion *Lex, close *Lex) ProcessingInstruction {
	all := []Segment{questionMark}
	if name != nil {
		all = append(all, Segment(*name))
	}
	all = append(all, children...)
	return ProcessingInstruction{
		tagBase:  tagBase{kind: SegmentKindProcessingInstruction, open: open, children: all, close: close},
		name:     name,
		question: closeQuestion,
	}
}

// Name returns the instruction's target name and whether it was found.
func (p ProcessingInstruction) Name() (Name, bool) {
	if p.name == nil {
		return Name{}, false
	}
	return *p.name, true
}

// HasCloseQuestionMark reports whether the terminating '?' before '>'
// was found.
func (p ProcessingInstruction) HasCloseQuestionMark() bool { return p.question != nil }

// CloseQuestionMark returns the terminating '?' lex and whether it was
// found.
func (p ProcessingInstruction) CloseQuestionMark() (Lex, bool) {
	if p.question == nil {
		return Lex{}, false
	}
	return *p.question, true
}

var _ Segment = ProcessingInstruction{}

// Comment is `<!-- ... -->`.
type Comment struct {
	tagBase
	hasSecondStartDash bool
}

// NewComment builds a Comment.
func NewComment(open Lex, startDashes []Lex, content []Segment, endDashes []Lex, close *Lex, hasSecondStartDash bool) Comment {
	all := append(append([]Segment{}, lexesToSegments(startDashes)...), content...)
	all = append(all, lexesToSegments(endDashes)...)
	return Comment{tagBase: tagBase{kind: SegmentKindComment, open: open, children: all, close: close}, hasSecondStartDash: hasSecondStartDash}
}

// HasSecondStartDash reports whether the second '-' opening the comment
// was found (a missing second dash falls back to an UnrecognizedTag
// before a Comment is ever constructed, but the flag is kept for
// callers inspecting a still-partial read).
func (c Comment) HasSecondStartDash() bool { return c.hasSecondStartDash }

var _ Segment = Comment{}

// CDATA is `<![CDATA[ ... ]]>`.
type CDATA struct {
	tagBase
}

// NewCDATA builds a CDATA segment. prefix holds the '[', "CDATA", '['
// marker lexes actually matched; content is the opaque interior;
// suffix holds the terminating ']', ']' lexes actually matched.
func NewCDATA(open Lex, prefix []Segment, content []Segment, suffix []Segment, close *Lex) CDATA {
	all := append(append(append([]Segment{}, prefix...), content...), suffix...)
	return CDATA{tagBase: tagBase{kind: SegmentKindCDATA, open: open, children: all, close: close}}
}

var _ Segment = CDATA{}

// DOCTYPE is `<!DOCTYPE name [PUBLIC "pub" "sys" | SYSTEM "sys"] [internal-subset] >`.
type DOCTYPE struct {
	tagBase
	name         *Name
	externalKind *Name
	publicID     *QuotedString
	systemID     *QuotedString
	internal     *InternalDefinition
}

// NewDOCTYPE builds a DOCTYPE segment. doctypeKeyword is the literal
// "DOCTYPE" name immediately following '<!'.
func NewDOCTYPE(open Lex, doctypeKeyword Name, children []Segment, close *Lex, name, externalKind *Name, publicID, systemID *QuotedString, internal *InternalDefinition) DOCTYPE {
	all := append([]Segment{doctypeKeyword}, children...)
	return DOCTYPE{
		tagBase:      tagBase{kind: SegmentKindDOCTYPE, open: open, children: all, close: close},
		name:         name,
		externalKind: externalKind,
		publicID:     publicID,
		systemID:     systemID,
		internal:     internal,
	}
}

// Name returns the root element name and whether it was found.
func (d DOCTYPE) Name() (Name, bool) {
	if d.name == nil {
		return Name{}, false
	}
	return *d.name, true
}

// ExternalIDKeyword returns the PUBLIC/SYSTEM keyword name and whether
// one was present.
func (d DOCTYPE) ExternalIDKeyword() (Name, bool) {
	if d.externalKind == nil {
		return Name{}, false
	}
	return *d.externalKind, true
}

// PublicID returns the public identifier quoted string, if present.
func (d DOCTYPE) PublicID() (QuotedString, bool) {
	if d.publicID == nil {
		return QuotedString{}, false
	}
	return *d.publicID, true
}

// SystemID returns the system identifier quoted string, if present.
func (d DOCTYPE) SystemID() (QuotedString, bool) {
	if d.systemID == nil {
		return QuotedString{}, false
	}
	return *d.systemID, true
}

// InternalSubset returns the internal definition, if present.
func (d DOCTYPE) InternalSubset() (InternalDefinition, bool) {
	if d.internal == nil {
		return InternalDefinition{}, false
	}
	return *d.internal, true
}

var _ Segment = DOCTYPE{}

func lexesToSegments(lexes []Lex) []Segment {
	out := make([]Segment, len(lexes))
	for i, l := range lexes {
		out[i] = l
	}
	return out
}
