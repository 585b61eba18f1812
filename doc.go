// Package qubxml is a fault-tolerant lexer, tokenizer, and pretty-printer
// for XML 1.0 source text, built for editor-grade use: every byte of input
// is classified, malformed constructs produce a diagnostic with a precise
// span instead of aborting, and the resulting tree reproduces the original
// input byte-for-byte through String.
//
// The pipeline runs in five sequential stages, each a single-owner,
// non-threaded, non-I/O stepper:
//
//	charclass (internal) -> Lexer -> Tokenizer -> elementBuilder -> Document
//
// Parse drives the whole pipeline and always succeeds; malformed input is
// represented in the returned tree together with the Document's Issues,
// never as a Go error.
package qubxml
