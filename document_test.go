package qubxml

import "testing"

// TestScenario* cover spec.md §8's concrete end-to-end scenarios.

func TestScenario1SimpleElement(t *testing.T) {
	doc := Parse(`<a></a>`)
	if len(doc.Issues()) != 0 {
		t.Fatalf("unexpected issues: %+v", doc.Issues())
	}
	if len(doc.Segments()) != 1 {
		t.Fatalf("got %d segments, want 1", len(doc.Segments()))
	}
	el, ok := doc.Segments()[0].(Element)
	if !ok {
		t.Fatalf("segment is %T, want Element", doc.Segments()[0])
	}
	if el.Name().Text() != "a" {
		t.Fatalf("name = %q, want a", el.Name().Text())
	}
	if len(el.Children()) != 0 {
		t.Fatalf("got %d children, want 0", len(el.Children()))
	}
	if _, ok := el.EndTag(); !ok {
		t.Fatal("want end tag present")
	}
	if got := doc.Format(); got != "<a/>" {
		t.Fatalf("format() = %q, want %q", got, "<a/>")
	}
}

func TestScenario2TextWithPadding(t *testing.T) {
	doc := Parse(`<a>  test  </a>`)
	if len(doc.Issues()) != 0 {
		t.Fatalf("unexpected issues: %+v", doc.Issues())
	}
	el := doc.Segments()[0].(Element)
	if len(el.Children()) != 1 {
		t.Fatalf("got %d children, want 1", len(el.Children()))
	}
	text, ok := el.Children()[0].(Text)
	if !ok {
		t.Fatalf("child is %T, want Text", el.Children()[0])
	}
	if text.String() != "  test  " {
		t.Fatalf("text = %q, want %q", text.String(), "  test  ")
	}
	span, ok := text.NonWhitespaceSpan()
	if !ok {
		t.Fatal("want a non-whitespace span")
	}
	if span.StartIndex != 4 || span.Length != 4 {
		t.Fatalf("nonWhitespaceSpan = {%d,%d}, want {4,4}", span.StartIndex, span.Length)
	}
	if got := doc.Format(); got != "<a>test</a>" {
		t.Fatalf("format() = %q, want %q", got, "<a>test</a>")
	}
}

func TestScenario3DeclarationWithThreeAttributes(t *testing.T) {
	doc := Parse(`<?xml version="1.0" encoding="utf-8" standalone="yes" ?>`)
	if len(doc.Issues()) != 0 {
		t.Fatalf("unexpected issues: %+v", doc.Issues())
	}
	decl, ok := doc.Declaration()
	if !ok {
		t.Fatal("want a declaration")
	}
	attrs := decl.Attributes()
	if len(attrs) != 3 {
		t.Fatalf("got %d attrs, want 3", len(attrs))
	}
}

func TestScenario4DeclarationMissingVersion(t *testing.T) {
	doc := Parse(`<?xml?>`)
	if len(doc.Issues()) != 1 {
		t.Fatalf("got %d issues, want 1: %+v", len(doc.Issues()), doc.Issues())
	}
	if doc.Issues()[0].Message != MsgExpectedDeclarationVersionAttribute {
		t.Fatalf("issue = %q, want %q", doc.Issues()[0].Message, MsgExpectedDeclarationVersionAttribute)
	}
	if doc.Issues()[0].Span.StartIndex != 5 || doc.Issues()[0].Span.Length != 1 {
		t.Fatalf("issue span = {%d,%d}, want {5,1}", doc.Issues()[0].Span.StartIndex, doc.Issues()[0].Span.Length)
	}
}

func TestScenario5NestedElements(t *testing.T) {
	doc := Parse(`<a><b><c/></b></a>`)
	if len(doc.Issues()) != 0 {
		t.Fatalf("unexpected issues: %+v", doc.Issues())
	}
	a := doc.Segments()[0].(Element)
	if a.Name().Text() != "a" || len(a.Children()) != 1 {
		t.Fatalf("a = %+v", a)
	}
	b, ok := a.Children()[0].(Element)
	if !ok || b.Name().Text() != "b" || len(b.Children()) != 1 {
		t.Fatalf("b = %+v, ok=%v", b, ok)
	}
	c, ok := b.Children()[0].(EmptyElement)
	if !ok || c.Name().Text() != "c" {
		t.Fatalf("c = %+v, ok=%v", c, ok)
	}

	want := "<a>\n  <b>\n    <c/>\n  </b>\n</a>"
	if got := doc.Format(FormatOptions{}.WithAlignAttributes(false)); got != want {
		t.Fatalf("format() = %q, want %q", got, want)
	}
}

func TestScenario6CommentThenTextAtRoot(t *testing.T) {
	doc := Parse(`<!-- a's -->text`)
	if len(doc.Segments()) != 2 {
		t.Fatalf("got %d segments, want 2", len(doc.Segments()))
	}
	if _, ok := doc.Segments()[0].(Comment); !ok {
		t.Fatalf("segments[0] is %T, want Comment", doc.Segments()[0])
	}
	if _, ok := doc.Segments()[1].(Text); !ok {
		t.Fatalf("segments[1] is %T, want Text", doc.Segments()[1])
	}

	found := false
	for _, issue := range doc.Issues() {
		if issue.Message == MsgDocumentCannotHaveTextAtRootLevel {
			found = true
			if issue.Span.StartIndex != 12 || issue.Span.Length != 4 {
				t.Fatalf("issue span = {%d,%d}, want {12,4}", issue.Span.StartIndex, issue.Span.Length)
			}
		}
		if issue.Message == MsgMissingDocumentRootElement {
			t.Fatalf("missingDocumentRootElement should not fire when non-whitespace content is present: %+v", doc.Issues())
		}
	}
	if !found {
		t.Fatalf("expected documentCannotHaveTextAtRootLevel among issues: %+v", doc.Issues())
	}
}

func TestScenario7AttributeAlignment(t *testing.T) {
	doc := Parse("<a b=\"c\"\nd=\"e\"/>")
	got := doc.Format(FormatOptions{}.WithAlignAttributes(true))
	want := "<a b=\"c\"\n   d=\"e\"/>"
	if got != want {
		t.Fatalf("format() = %q, want %q", got, want)
	}
}

func TestBoundaryEmptyInput(t *testing.T) {
	doc := Parse(``)
	if len(doc.Issues()) != 1 {
		t.Fatalf("got %d issues, want 1: %+v", len(doc.Issues()), doc.Issues())
	}
	issue := doc.Issues()[0]
	if issue.Message != MsgMissingDocumentRootElement {
		t.Fatalf("issue = %q, want %q", issue.Message, MsgMissingDocumentRootElement)
	}
	if issue.Span.StartIndex != 0 || issue.Span.Length != 0 {
		t.Fatalf("issue span = {%d,%d}, want {0,0}", issue.Span.StartIndex, issue.Span.Length)
	}
}

func TestBoundaryWhitespaceOnlyInput(t *testing.T) {
	doc := Parse("   \n  ")
	if len(doc.Issues()) != 1 || doc.Issues()[0].Message != MsgMissingDocumentRootElement {
		t.Fatalf("issues = %+v, want exactly one missingDocumentRootElement", doc.Issues())
	}
}

func TestBoundaryBareLeftAngleBracket(t *testing.T) {
	doc := Parse(`<`)
	if len(doc.Segments()) != 1 {
		t.Fatalf("got %d segments, want 1", len(doc.Segments()))
	}
	if _, ok := doc.Segments()[0].(UnrecognizedTag); !ok {
		t.Fatalf("segment is %T, want UnrecognizedTag", doc.Segments()[0])
	}
	// no root element was found either, but there WAS non-whitespace
	// content (the UnrecognizedTag), so missingDocumentRootElement must
	// not additionally fire.
	for _, issue := range doc.Issues() {
		if issue.Message == MsgMissingDocumentRootElement {
			t.Fatalf("missingDocumentRootElement should not fire: %+v", doc.Issues())
		}
	}
}

func TestBoundaryEndTagAtRootIsAccepted(t *testing.T) {
	doc := Parse(`</a>`)
	for _, issue := range doc.Issues() {
		if issue.Message == MsgMissingDocumentRootElement {
			t.Fatalf("missingDocumentRootElement should not fire for a root-level end tag: %+v", doc.Issues())
		}
	}
	if len(doc.Segments()) != 1 {
		t.Fatalf("got %d segments, want 1", len(doc.Segments()))
	}
	if _, ok := doc.Segments()[0].(EndTag); !ok {
		t.Fatalf("segment is %T, want EndTag", doc.Segments()[0])
	}
}

func TestDocumentProlog(t *testing.T) {
	doc := Parse("<?xml version=\"1.0\"?>\n<!-- c -->\n<root/>")
	prolog, ok := doc.Prolog()
	if !ok {
		t.Fatal("want a non-empty prolog")
	}
	// declaration, newline, comment, newline: the root element itself is
	// not part of the prolog.
	if len(prolog) != 4 {
		t.Fatalf("got %d prolog segments, want 4: %+v", len(prolog), prolog)
	}
	root, ok := doc.Root()
	if !ok {
		t.Fatal("want a root element")
	}
	if root.SegmentKind() != SegmentKindEmptyElement {
		t.Fatalf("root kind = %v, want EmptyElement", root.SegmentKind())
	}
}

func TestDocumentSecondRootElementDiagnostic(t *testing.T) {
	doc := Parse(`<a/><b/>`)
	found := false
	for _, issue := range doc.Issues() {
		if issue.Message == MsgDocumentCanHaveOneRootElement {
			found = true
		}
	}
	if !found {
		t.Fatalf("expected documentCanHaveOneRootElement: %+v", doc.Issues())
	}
}

func TestDocumentDeclarationMustBeFirst(t *testing.T) {
	doc := Parse(`<a/><?xml version="1.0"?>`)
	found := false
	for _, issue := range doc.Issues() {
		if issue.Message == MsgDocumentDeclarationMustBeFirstSegment {
			found = true
		}
	}
	if !found {
		t.Fatalf("expected documentDeclarationMustBeFirstSegment: %+v", doc.Issues())
	}
}

func TestDocumentLeadingWhitespaceBeforeDeclarationIsIgnored(t *testing.T) {
	doc := Parse("  \n<?xml version=\"1.0\"?>\n<root/>")
	for _, issue := range doc.Issues() {
		if issue.Message == MsgDocumentDeclarationMustBeFirstSegment {
			t.Fatalf("leading whitespace/newline should not displace the declaration: %+v", doc.Issues())
		}
	}
}

func TestDocumentCommentBeforeDeclarationStillFlagged(t *testing.T) {
	doc := Parse(`<!-- c --><?xml version="1.0"?><root/>`)
	found := false
	for _, issue := range doc.Issues() {
		if issue.Message == MsgDocumentDeclarationMustBeFirstSegment {
			found = true
		}
	}
	if !found {
		t.Fatalf("a real segment before the declaration should still be flagged: %+v", doc.Issues())
	}
}

func TestDocumentEndTagNameMismatchStillAccepted(t *testing.T) {
	doc := Parse(`<a></A>`)
	if len(doc.Issues()) != 0 {
		t.Fatalf("case-insensitive end tag name should not be flagged: %+v", doc.Issues())
	}
	doc2 := Parse(`<a></b>`)
	found := false
	for _, issue := range doc2.Issues() {
		if issue.Message == MsgExpectedElementEndTagWithDifferentName {
			found = true
		}
	}
	if !found {
		t.Fatalf("expected expectedElementEndTagWithDifferentName: %+v", doc2.Issues())
	}
	el := doc2.Segments()[0].(Element)
	if _, ok := el.EndTag(); !ok {
		t.Fatal("mismatched end tag should still be accepted as this element's close")
	}
}
