package qubxml

import "testing"

func TestElementBuilderNestsStartAndEndTags(t *testing.T) {
	doc := Parse(`<a><b>text</b></a>`)
	if len(doc.Issues()) != 0 {
		t.Fatalf("unexpected issues: %+v", doc.Issues())
	}
	a, ok := doc.Segments()[0].(Element)
	if !ok {
		t.Fatalf("segment is %T, want Element", doc.Segments()[0])
	}
	if len(a.Children()) != 1 {
		t.Fatalf("got %d children, want 1", len(a.Children()))
	}
	b, ok := a.Children()[0].(Element)
	if !ok {
		t.Fatalf("a's child is %T, want Element", a.Children()[0])
	}
	if len(b.Children()) != 1 {
		t.Fatalf("got %d children, want 1", len(b.Children()))
	}
	if _, ok := b.Children()[0].(Text); !ok {
		t.Fatalf("b's child is %T, want Text", b.Children()[0])
	}
}

func TestElementBuilderMissingEndTag(t *testing.T) {
	doc := Parse(`<a><b></b>`)
	found := false
	for _, issue := range doc.Issues() {
		if issue.Message == MsgMissingElementEndTag {
			found = true
		}
	}
	if !found {
		t.Fatalf("expected missingElementEndTag: %+v", doc.Issues())
	}
	a, ok := doc.Segments()[0].(Element)
	if !ok {
		t.Fatalf("segment is %T, want Element", doc.Segments()[0])
	}
	if _, hasEnd := a.EndTag(); hasEnd {
		t.Fatal("a should have no end tag")
	}
	if len(a.Children()) != 1 {
		t.Fatalf("got %d children, want 1 (the nested, closed b)", len(a.Children()))
	}
	b := a.Children()[0].(Element)
	if _, hasEnd := b.EndTag(); !hasEnd {
		t.Fatal("b should have its own end tag")
	}
}

func TestElementBuilderMismatchedEndTagStillCloses(t *testing.T) {
	doc := Parse(`<a><b></c></a>`)
	found := false
	for _, issue := range doc.Issues() {
		if issue.Message == MsgExpectedElementEndTagWithDifferentName {
			found = true
		}
	}
	if !found {
		t.Fatalf("expected expectedElementEndTagWithDifferentName: %+v", doc.Issues())
	}
	a := doc.Segments()[0].(Element)
	b := a.Children()[0].(Element)
	end, ok := b.EndTag()
	if !ok {
		t.Fatal("b should still be closed by the mismatched end tag")
	}
	name, _ := end.Name()
	if name.Text() != "c" {
		t.Fatalf("end tag name = %q, want c", name.Text())
	}
	// </c> closed b (with a diagnostic); </a> still follows in the
	// stream and correctly closes a.
	aEnd, hasEnd := a.EndTag()
	if !hasEnd {
		t.Fatal("a should still be closed by the trailing </a>")
	}
	if aName, _ := aEnd.Name(); aName.Text() != "a" {
		t.Fatalf("a's end tag name = %q, want a", aName.Text())
	}
}

func TestElementBuilderDeepNesting(t *testing.T) {
	doc := Parse(`<a><b><c><d/></c></b></a>`)
	if len(doc.Issues()) != 0 {
		t.Fatalf("unexpected issues: %+v", doc.Issues())
	}
	a := doc.Segments()[0].(Element)
	b := a.Children()[0].(Element)
	c := b.Children()[0].(Element)
	d, ok := c.Children()[0].(EmptyElement)
	if !ok || d.Name().Text() != "d" {
		t.Fatalf("d = %+v, ok=%v", d, ok)
	}
}

func TestElementBuilderSiblingElements(t *testing.T) {
	doc := Parse(`<a><b/><c/></a>`)
	if len(doc.Issues()) != 0 {
		t.Fatalf("unexpected issues: %+v", doc.Issues())
	}
	a := doc.Segments()[0].(Element)
	if len(a.Children()) != 2 {
		t.Fatalf("got %d children, want 2", len(a.Children()))
	}
	if _, ok := a.Children()[0].(EmptyElement); !ok {
		t.Fatalf("a.Children()[0] is %T, want EmptyElement", a.Children()[0])
	}
	if _, ok := a.Children()[1].(EmptyElement); !ok {
		t.Fatalf("a.Children()[1] is %T, want EmptyElement", a.Children()[1])
	}
}
