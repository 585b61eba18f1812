package qubxml

// Parse tokenizes and builds a Document from text. It never fails: every
// malformed construct in text surfaces as an Issue on the returned
// Document rather than as an error or a panic.
func Parse(text string) Document {
	sink := NewSink()
	tok := NewTokenizer(text, sink)
	return BuildDocument(tok, sink)
}
