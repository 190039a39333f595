package syntax

import (
	"fmt"
	"sort"
)

// Error codes. The namespace is flat: lexer errors occupy 101-106, the
// parser's single generic diagnostic is 201.
const (
	ErrExpectedCharacter            = 101
	ErrUnterminatedDelimitedComment = 102
	ErrInvalidTokenStart            = 103
	ErrUnterminatedString           = 104
	ErrUnterminatedQuotedIdentifier = 105
	ErrUnterminatedBackquotedIdent  = 106
	ErrSyntax                       = 201
)

// Message pairs a diagnostic range with human-readable text.
type Message struct {
	Range TextRange
	Text  string
}

// SyntaxError is a single diagnostic: a numeric code plus one or more
// (range, message) pairs. It implements the error interface so that code
// bridging into conventional Go error handling can treat it like any other
// error, without the parsing core itself ever returning one.
type SyntaxError struct {
	Code     int
	Messages []Message
}

// NewSyntaxError builds a SyntaxError with a single message.
func NewSyntaxError(code int, rng TextRange, text string) *SyntaxError {
	return &SyntaxError{Code: code, Messages: []Message{{Range: rng, Text: text}}}
}

// Range is the range of the first message, used when sorting diagnostics.
func (e *SyntaxError) Range() TextRange {
	if len(e.Messages) == 0 {
		return NoRange
	}
	return e.Messages[0].Range
}

func (e *SyntaxError) Error() string {
	if len(e.Messages) == 0 {
		return fmt.Sprintf("error %d", e.Code)
	}
	s := fmt.Sprintf("error %d @%s: %s", e.Code, e.Messages[0].Range, e.Messages[0].Text)
	for _, m := range e.Messages[1:] {
		s += fmt.Sprintf(", @%s: %s", m.Range, m.Text)
	}
	return s
}

// SortErrors sorts diagnostics by range, stably, matching the public entry
// point's contract that the returned diagnostic list is sorted.
func SortErrors(errs []*SyntaxError) {
	sort.SliceStable(errs, func(i, j int) bool {
		return rangeLess(errs[i].Range(), errs[j].Range())
	})
}

func rangeLess(a, b TextRange) bool {
	if a.Start != b.Start {
		return a.Start.Less(b.Start)
	}
	return a.End.Less(b.End)
}
