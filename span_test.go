package qubxml

import "testing"

func TestSpanString(t *testing.T) {
	text := "<a>hello</a>"
	s := NewSpan(text, 3, 5)
	if got := s.String(); got != "hello" {
		t.Fatalf("String() = %q, want %q", got, "hello")
	}
	if got := s.AfterEndIndex(); got != 8 {
		t.Fatalf("AfterEndIndex() = %d, want 8", got)
	}
}

func TestSpanIsEmpty(t *testing.T) {
	if !NewSpan("abc", 1, 0).IsEmpty() {
		t.Fatal("zero-length span should be empty")
	}
	if NewSpan("abc", 1, 1).IsEmpty() {
		t.Fatal("one-length span should not be empty")
	}
}

func TestSpanFromTo(t *testing.T) {
	text := "0123456789"
	first := NewSpan(text, 2, 3) // "234"
	last := NewSpan(text, 7, 2)  // "78"
	got := spanFromTo(first, last)
	if got.StartIndex != 2 || got.AfterEndIndex() != 9 {
		t.Fatalf("spanFromTo = {%d,%d}, want start=2 afterEnd=9", got.StartIndex, got.AfterEndIndex())
	}
	if got.String() != "2345678" {
		t.Fatalf("spanFromTo String() = %q, want %q", got.String(), "2345678")
	}
}

func TestContainsOpenAndClosedInterior(t *testing.T) {
	if !containsOpenInterior(5, 6) {
		t.Fatal("containsOpenInterior should accept any index strictly after start")
	}
	if containsOpenInterior(5, 5) {
		t.Fatal("containsOpenInterior should reject the start index itself")
	}
	if !containsClosedInterior(5, 10, 6) {
		t.Fatal("containsClosedInterior should accept an interior index")
	}
	if containsClosedInterior(5, 10, 5) || containsClosedInterior(5, 10, 10) {
		t.Fatal("containsClosedInterior should exclude both endpoints")
	}
}
