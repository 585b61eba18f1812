package qubxml

// Severity classifies a diagnostic. The core currently only ever produces
// errors; the type exists so a future warning-level diagnostic does not
// require an API break.
type Severity int

const (
	// SeverityError marks a well-formedness or shape defect.
	SeverityError Severity = iota
)

// String returns a stable name for the severity.
func (s Severity) String() string {
	switch s {
	case SeverityError:
		return "error"
	default:
		return "unknown"
	}
}

// Issue is a single structured diagnostic: a fixed message, a severity,
// and the precise span where the defect was detected. Issue is a plain
// value, never a Go error — the core never returns an error from parsing.
type Issue struct {
	Severity Severity
	Message  string
	Span     Span
}

// Error satisfies the error interface for callers that want to wrap an
// Issue, without making Issue itself part of any error-returning API.
func (i Issue) Error() string {
	return i.Message
}

// Sink is the append-only diagnostic destination threaded through the
// tokenizer. It is mutated only by appending, in document order, and is
// never read by the core itself (see spec.md §5, §7).
type Sink struct {
	issues []Issue
}

// NewSink creates an empty diagnostic sink.
func NewSink() *Sink {
	return &Sink{}
}

// Add appends one diagnostic. Add is a no-op on a nil Sink, so every
// reader in the tokenizer can call it unconditionally without checking
// whether the caller supplied a sink.
func (s *Sink) Add(message string, span Span) {
	if s == nil {
		return
	}
	s.issues = append(s.issues, Issue{Severity: SeverityError, Message: message, Span: span})
}

// AddMissingOrExpected appends missingMsg when hasLex is false (the
// reader ran out of input) or expectedMsg when hasLex is true (a lex
// was present but didn't match what the grammar expected). This pattern
// recurs throughout the tokenizer's readers.
func (s *Sink) AddMissingOrExpected(hasLex bool, missingMsg, expectedMsg string, span Span) {
	if hasLex {
		s.Add(expectedMsg, span)
		return
	}
	s.Add(missingMsg, span)
}

// Issues returns the diagnostics collected so far, in detection order.
func (s *Sink) Issues() []Issue {
	if s == nil {
		return nil
	}
	return s.issues
}

// Tag dispatch (spec.md §4.2).
const (
	MsgMissingNameQuestionMarkExclamationPointOrForwardSlash = "missingNameQuestionMarkExclamationPointOrForwardSlash"
	MsgExpectedNameQuestionMarkExclamationPointOrForwardSlash = "expectedNameQuestionMarkExclamationPointOrForwardSlash"
	MsgMissingDeclarationOrProcessingInstructionName          = "missingDeclarationOrProcessingInstructionName"
	MsgExpectedDeclarationOrProcessingInstructionName         = "expectedDeclarationOrProcessingInstructionName"
	MsgExpectedDOCTYPENameCommentDashesOrCDATALeftSquareBracket = "expectedDOCTYPENameCommentDashesOrCDATALeftSquareBracket"
)

// Start/end/empty-element tag reader (spec.md §4.2.1).
const (
	MsgExpectedEmptyElementRightAngleBracket                            = "expectedEmptyElementRightAngleBracket"
	MsgExpectedWhitespaceBetweenAttributes                              = "expectedWhitespaceBetweenAttributes"
	MsgExpectedWhitespaceStartTagRightAngleBracketOrEmptyElementForwardSlash = "expectedWhitespaceStartTagRightAngleBracketOrEmptyElementForwardSlash"
	MsgExpectedAttributeNameStartTagRightAngleBracketOrEmptyElementForwardSlash = "expectedAttributeNameStartTagRightAngleBracketOrEmptyElementForwardSlash"
	MsgMissingStartTagRightAngleBracket                                 = "missingStartTagRightAngleBracket"
	MsgMissingEmptyElementRightAngleBracket                             = "missingEmptyElementRightAngleBracket"
	MsgMissingEndTagName                                                = "missingEndTagName"
	MsgExpectedEndTagName                                               = "expectedEndTagName"
	MsgExpectedEndTagRightAngleBracket                                  = "expectedEndTagRightAngleBracket"
	MsgMissingEndTagRightAngleBracket                                   = "missingEndTagRightAngleBracket"
)

// Declaration reader (spec.md §4.2.2).
const (
	MsgExpectedDeclarationVersionAttribute                        = "expectedDeclarationVersionAttribute"
	MsgMissingDeclarationVersionAttribute                         = "missingDeclarationVersionAttribute"
	MsgInvalidDeclarationVersionAttributeValue                    = "invalidDeclarationVersionAttributeValue"
	MsgExpectedDeclarationEncodingOrStandaloneAttribute           = "expectedDeclarationEncodingOrStandaloneAttribute"
	MsgExpectedDeclarationEncodingOrStandaloneAttributeOrRightQuestionMark = "expectedDeclarationEncodingOrStandaloneAttributeOrRightQuestionMark"
	MsgInvalidDeclarationStandaloneAttributeValue                 = "invalidDeclarationStandaloneAttributeValue"
	MsgExpectedDeclarationRightQuestionMark                       = "expectedDeclarationRightQuestionMark"
	MsgExpectedDeclarationRightAngleBracket                       = "expectedDeclarationRightAngleBracket"
	MsgMissingDeclarationRightQuestionMark                        = "missingDeclarationRightQuestionMark"
	MsgMissingDeclarationRightAngleBracket                        = "missingDeclarationRightAngleBracket"
)

// Processing instruction reader (spec.md §4.2.3).
const (
	MsgMissingProcessingInstructionRightQuestionMark  = "missingProcessingInstructionRightQuestionMark"
	MsgMissingProcessingInstructionRightAngleBracket  = "missingProcessingInstructionRightAngleBracket"
	MsgExpectedProcessingInstructionRightQuestionMark = "expectedProcessingInstructionRightQuestionMark"
)

// DOCTYPE reader (spec.md §4.2.5).
const (
	MsgMissingDOCTYPERootElementName            = "missingDOCTYPERootElementName"
	MsgExpectedDOCTYPERootElementName           = "expectedDOCTYPERootElementName"
	MsgInvalidDOCTYPEExternalIdType             = "invalidDOCTYPEExternalIdType"
	MsgMissingDOCTYPEPublicIdentifier           = "missingDOCTYPEPublicIdentifier"
	MsgExpectedDOCTYPEPublicIdentifier          = "expectedDOCTYPEPublicIdentifier"
	MsgMissingDOCTYPESystemIdentifier           = "missingDOCTYPESystemIdentifier"
	MsgExpectedDOCTYPESystemIdentifier          = "expectedDOCTYPESystemIdentifier"
	MsgMissingInternalDefinitionRightSquareBracket = "missingInternalDefinitionRightSquareBracket"
	MsgExpectedDOCTYPERightAngleBracket         = "expectedDOCTYPERightAngleBracket"
	MsgMissingDOCTYPERightAngleBracket          = "missingDOCTYPERightAngleBracket"
)

// Comment reader (spec.md §4.2.6).
const (
	MsgExpectedCommentSecondStartDash   = "expectedCommentSecondStartDash"
	MsgMissingCommentSecondStartDash    = "missingCommentSecondStartDash"
	MsgMissingCommentClosingDashes      = "missingCommentClosingDashes"
	MsgMissingCommentSecondClosingDash  = "missingCommentSecondClosingDash"
	MsgMissingCommentRightAngleBracket  = "missingCommentRightAngleBracket"
)

// CDATA reader (spec.md §4.2.7).
const (
	MsgMissingCDATAName                    = "missingCDATAName"
	MsgExpectedCDATAName                   = "expectedCDATAName"
	MsgMissingCDATASecondLeftSquareBracket = "missingCDATASecondLeftSquareBracket"
	MsgExpectedCDATASecondLeftSquareBracket = "expectedCDATASecondLeftSquareBracket"
)

// Attribute reader (spec.md §4.2.8).
const (
	MsgMissingAttributeEqualsSign  = "missingAttributeEqualsSign"
	MsgExpectedAttributeEqualsSign = "expectedAttributeEqualsSign"
	MsgMissingAttributeValue       = "missingAttributeValue"
	MsgExpectedAttributeValue      = "expectedAttributeValue"
	MsgMissingQuotedStringEndQuote = "missingQuotedStringEndQuote"
)

// Unrecognized-tag reader (spec.md §4.2.9).
const (
	MsgMissingTagRightAngleBracket = "missingTagRightAngleBracket"
)

// Element builder (spec.md §4.4).
const (
	MsgMissingElementEndTag                    = "missingElementEndTag"
	MsgExpectedElementEndTagWithDifferentName  = "expectedElementEndTagWithDifferentName"
)

// Document builder (spec.md §4.5).
const (
	MsgMissingDocumentRootElement              = "missingDocumentRootElement"
	MsgDocumentDeclarationMustBeFirstSegment   = "documentDeclarationMustBeFirstSegment"
	MsgDocumentCanHaveOneDeclaration           = "documentCanHaveOneDeclaration"
	MsgDocumentDOCTYPEMustBeAfterDeclaration   = "documentDOCTYPEMustBeAfterDeclaration"
	MsgDocumentCanHaveOneDOCTYPE               = "documentCanHaveOneDOCTYPE"
	MsgDocumentCanHaveOneRootElement           = "documentCanHaveOneRootElement"
	MsgDocumentCannotHaveTextAtRootLevel       = "documentCannotHaveTextAtRootLevel"
	MsgDocumentCannotHaveCDATAAtRootLevel      = "documentCannotHaveCDATAAtRootLevel"
)
