package qubxml

import "testing"

// flattenTopLevel returns every top-level segment's span, used to check
// that top-level segments partition the input with no gaps or overlaps
// (spec.md §8, span coverage).
func flattenTopLevel(segments []Segment) []Span {
	out := make([]Span, len(segments))
	for i, s := range segments {
		out[i] = s.Span()
	}
	return out
}

func TestSegmentSpanCoverageIsContiguous(t *testing.T) {
	inputs := []string{
		`<a><b>x</b><c/></a>`,
		`<?xml version="1.0"?><root/>`,
		`<!-- c -->text<a/>`,
		`<a b="c"
d="e"/>`,
	}
	for _, in := range inputs {
		doc := Parse(in)
		spans := flattenTopLevel(doc.Segments())
		total := 0
		for i, s := range spans {
			if i == 0 {
				if s.StartIndex != 0 {
					t.Fatalf("%q: first segment starts at %d, want 0", in, s.StartIndex)
				}
			} else if s.StartIndex != spans[i-1].AfterEndIndex() {
				t.Fatalf("%q: segment %d starts at %d, want %d (immediately after previous)", in, i, s.StartIndex, spans[i-1].AfterEndIndex())
			}
			total += s.Length
		}
		if total != len(in) {
			t.Fatalf("%q: sum of top-level segment lengths = %d, want %d", in, total, len(in))
		}
	}
}

func TestSegmentRoundTrip(t *testing.T) {
	inputs := []string{
		``,
		`  `,
		`<a></a>`,
		`<a>  test  </a>`,
		`<?xml version="1.0" encoding="utf-8" standalone="yes" ?>`,
		`<?xml?>`,
		`<a><b><c/></b></a>`,
		`<!-- a's -->text`,
		`<a b="c"
d="e"/>`,
		`<`,
		`</a>`,
		`<a b=c>`,
		`<!DOCTYPE root PUBLIC "-//W3C" "root.dtd" [ <!ELEMENT root EMPTY> ]>`,
		`<![CDATA[ <not a tag> ]]>`,
		`<!-- unterminated`,
	}
	for _, in := range inputs {
		doc := Parse(in)
		if got := doc.String(); got != in {
			t.Fatalf("round trip failed for %q: got %q", in, got)
		}
	}
}

func TestSegmentContainsIndexConsistency(t *testing.T) {
	doc := Parse(`<a b="c">text</a>`)
	for _, s := range doc.Segments() {
		checkContainsIndexBoundaries(t, s)
	}
}

// checkContainsIndexBoundaries asserts that ContainsIndex is false at the
// two indexes just outside the span: start-1 (when start > 0) and
// afterEnd+1.
func checkContainsIndexBoundaries(t *testing.T, s Segment) {
	t.Helper()
	start := s.StartIndex()
	afterEnd := s.AfterEndIndex()
	if start > 0 && s.ContainsIndex(start-1) {
		t.Errorf("%T %q: ContainsIndex(%d) (one before start) should be false", s, s.String(), start-1)
	}
	if s.ContainsIndex(afterEnd + 1) {
		t.Errorf("%T %q: ContainsIndex(%d) (one past afterEnd) should be false", s, s.String(), afterEnd+1)
	}
}
