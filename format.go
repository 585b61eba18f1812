package qubxml

import "strings"

// FormatOptions configures Document.Format and the tag/element
// formatters layered on top of it. Zero value uses every default in
// §4.6: two-space indent, "\n" newlines, no attribute alignment.
//
// Each field has a paired xSet flag so JoinOptions can tell "caller
// didn't set this" apart from "caller explicitly set the zero value",
// the same pattern the teacher's xmlopts package uses for decoder
// options.
type FormatOptions struct {
	singleIndent    string
	singleIndentSet bool

	tabLength    int
	tabLengthSet bool

	currentIndent    string
	currentIndentSet bool

	newline    string
	newlineSet bool

	currentColumnIndex    int
	currentColumnIndexSet bool

	alignAttributes    bool
	alignAttributesSet bool
}

// WithSingleIndent sets the string inserted for one level of indent.
func (o FormatOptions) WithSingleIndent(s string) FormatOptions {
	o.singleIndent, o.singleIndentSet = s, true
	return o
}

// WithTabLength sets the column width of a tab, used only when
// SingleIndent is a tab and AlignAttributes is true.
func (o FormatOptions) WithTabLength(n int) FormatOptions {
	o.tabLength, o.tabLengthSet = n, true
	return o
}

// WithCurrentIndent sets the starting indent prefix.
func (o FormatOptions) WithCurrentIndent(s string) FormatOptions {
	o.currentIndent, o.currentIndentSet = s, true
	return o
}

// WithNewline sets the line-ending string emitted between output lines.
func (o FormatOptions) WithNewline(s string) FormatOptions {
	o.newline, o.newlineSet = s, true
	return o
}

// WithCurrentColumnIndex sets the starting output column.
func (o FormatOptions) WithCurrentColumnIndex(n int) FormatOptions {
	o.currentColumnIndex, o.currentColumnIndexSet = n, true
	return o
}

// WithAlignAttributes turns on column-aligned continuation lines for
// multi-line tags.
func (o FormatOptions) WithAlignAttributes(b bool) FormatOptions {
	o.alignAttributes, o.alignAttributesSet = b, true
	return o
}

// JoinOptions merges option sets in order; a later, explicitly-set
// field always wins over an earlier one.
func JoinOptions(srcs ...FormatOptions) FormatOptions {
	var out FormatOptions
	for _, src := range srcs {
		if src.singleIndentSet {
			out.singleIndent, out.singleIndentSet = src.singleIndent, true
		}
		if src.tabLengthSet {
			out.tabLength, out.tabLengthSet = src.tabLength, true
		}
		if src.currentIndentSet {
			out.currentIndent, out.currentIndentSet = src.currentIndent, true
		}
		if src.newlineSet {
			out.newline, out.newlineSet = src.newline, true
		}
		if src.currentColumnIndexSet {
			out.currentColumnIndex, out.currentColumnIndexSet = src.currentColumnIndex, true
		}
		if src.alignAttributesSet {
			out.alignAttributes, out.alignAttributesSet = src.alignAttributes, true
		}
	}
	return out
}

func (o FormatOptions) singleIndentOrDefault() string {
	if o.singleIndentSet {
		return o.singleIndent
	}
	return "  "
}

func (o FormatOptions) tabLengthOrDefault() int {
	if o.tabLengthSet {
		return o.tabLength
	}
	return 2
}

func (o FormatOptions) newlineOrDefault() string {
	if o.newlineSet {
		return o.newline
	}
	return "\n"
}

// formatContext is the mutable formatting cursor threaded through every
// formatter function: the indent stack, the current output column, and
// the accumulated output (§4.6).
type formatContext struct {
	singleIndent    string
	tabLength       int
	newline         string
	alignAttributes bool

	indentStack []string
	column      int

	out strings.Builder
}

func newFormatContext(o FormatOptions) *formatContext {
	fc := &formatContext{
		singleIndent:    o.singleIndentOrDefault(),
		tabLength:       o.tabLengthOrDefault(),
		newline:         o.newlineOrDefault(),
		alignAttributes: o.alignAttributesSet && o.alignAttributes,
	}
	start := ""
	if o.currentIndentSet {
		start = o.currentIndent
	}
	fc.indentStack = []string{start}
	if o.currentColumnIndexSet {
		fc.column = o.currentColumnIndex
	}
	return fc
}

func (fc *formatContext) currentIndent() string {
	return fc.indentStack[len(fc.indentStack)-1]
}

func (fc *formatContext) pushIndent(indent string) {
	fc.indentStack = append(fc.indentStack, indent)
}

func (fc *formatContext) popIndent() {
	fc.indentStack = fc.indentStack[:len(fc.indentStack)-1]
}

// pushChildIndent enters a nested element: currentIndent + singleIndent.
func (fc *formatContext) pushChildIndent() {
	fc.pushIndent(fc.currentIndent() + fc.singleIndent)
}

// write appends s to the output and advances the column tracker:
// newline resets it to 0, a tab advances by tabLength, everything else
// advances by 1 rune.
func (fc *formatContext) write(s string) {
	fc.out.WriteString(s)
	for _, r := range s {
		switch {
		case r == '\n':
			fc.column = 0
		case r == '\t':
			fc.column += fc.tabLength
		default:
			fc.column++
		}
	}
}

// writeNewlineAndIndent emits a newline followed by the current indent.
func (fc *formatContext) writeNewlineAndIndent() {
	fc.write(fc.newline)
	fc.write(fc.currentIndent())
}

// alignmentIndent materializes an indent whose column width equals col,
// as tabs-then-spaces when singleIndent is a tab, or as col spaces
// otherwise (§4.6, attribute-value alignment).
func (fc *formatContext) alignmentIndent(col int) string {
	if fc.singleIndent == "\t" {
		tabs := col / fc.tabLength
		spaces := col % fc.tabLength
		return strings.Repeat("\t", tabs) + strings.Repeat(" ", spaces)
	}
	return strings.Repeat(" ", col)
}

// Format pretty-prints the document per the given options (§4.6,
// document formatting).
func (d Document) Format(options ...FormatOptions) string {
	fc := newFormatContext(JoinOptions(options...))
	formatDocument(fc, d.segments)
	return fc.out.String()
}
