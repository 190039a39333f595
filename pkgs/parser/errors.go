package parser

import (
	"fmt"

	"github.com/prestosql/prestocst/pkgs/syntax"
)

// ErrorType classifies a ParseError the way callers typically want to
// branch on it: was the input lexically malformed, or syntactically
// unexpected given otherwise-valid tokens.
type ErrorType int

const (
	// ErrorTypeLex wraps a diagnostic that originated in the lexer (an
	// unterminated string, an invalid token start, ...).
	ErrorTypeLex ErrorType = iota
	// ErrorTypeSyntax is a parser-raised diagnostic: a token sequence that
	// does not fit any grammar production at the current position.
	ErrorTypeSyntax
)

func (e ErrorType) String() string {
	switch e {
	case ErrorTypeLex:
		return "lex"
	case ErrorTypeSyntax:
		return "syntax"
	default:
		return "unknown"
	}
}

// ParseError wraps a syntax.SyntaxError with the classification above and
// implements the error interface so callers can use errors.As against it
// like any other Go error.
type ParseError struct {
	Type ErrorType
	*syntax.SyntaxError
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("%s: %s", e.Type, e.SyntaxError.Error())
}

func newSyntaxError(rng syntax.TextRange, text string) *Tree {
	return errorNode(&syntax.SyntaxError{
		Code:     syntax.ErrSyntax,
		Messages: []syntax.Message{{Range: rng, Text: text}},
	})
}

// Errors classifies every diagnostic attached to tree, distinguishing
// lexer-originated errors (attached to a Token) from parser-raised ones
// (Error nodes), in source order.
func Errors(tree *Tree) []*ParseError {
	raw := tree.Errors()
	out := make([]*ParseError, 0, len(raw))
	for _, se := range raw {
		typ := ErrorTypeSyntax
		if se.Code != syntax.ErrSyntax {
			typ = ErrorTypeLex
		}
		out = append(out, &ParseError{Type: typ, SyntaxError: se})
	}
	return out
}
