package parser

import (
	"github.com/prestosql/prestocst/pkgs/lexer"
	"github.com/prestosql/prestocst/pkgs/syntax"
)

// tokenBuffer gives the parser unbounded positive lookahead over a lexer's
// token stream while only ever lexing each token once. Tokens are produced
// lazily, on demand, and appended to an internal slice; the parser only
// ever moves forward through that slice (advance), never unconsumes.
type tokenBuffer struct {
	lex    *lexer.Lexer
	tokens []syntax.Token
	pos    int
	atEOF  bool
}

func newTokenBuffer(source string) *tokenBuffer {
	b := &tokenBuffer{lex: lexer.New(source)}
	b.tokens = append(b.tokens, syntax.BeginningOfFileToken())
	// pos starts at 1: the synthetic BeginningOfFile token occupies index 0
	// and is never "current" - the parser's lookahead begins at the first
	// real lexed token.
	b.pos = 1
	return b
}

// fill ensures at least n+1 tokens are buffered (index 0..n).
func (b *tokenBuffer) fill(n int) {
	for len(b.tokens) <= n && !b.atEOF {
		tok := b.lex.NextToken()
		b.tokens = append(b.tokens, tok)
		if tok.Kind == syntax.EndOfFile {
			b.atEOF = true
		}
	}
}

// peekAt returns the token offset tokens ahead of the current
// position without consuming anything. Past end of file it keeps returning
// the EndOfFile token.
func (b *tokenBuffer) peekAt(offset int) syntax.Token {
	idx := b.pos + offset
	b.fill(idx)
	if idx >= len(b.tokens) {
		return b.tokens[len(b.tokens)-1]
	}
	return b.tokens[idx]
}

// current returns the token at the current position (lookahead 0).
func (b *tokenBuffer) current() syntax.Token {
	return b.peekAt(0)
}

// advance consumes the current token and returns it.
func (b *tokenBuffer) advance() syntax.Token {
	tok := b.current()
	if tok.Kind != syntax.EndOfFile {
		b.pos++
	}
	return tok
}

// at reports whether the current token has the given kind.
func (b *tokenBuffer) at(kind syntax.TokenKind) bool {
	return b.current().Kind == kind
}

// atOffset reports whether the token `offset` ahead has the given kind.
func (b *tokenBuffer) atOffset(offset int, kind syntax.TokenKind) bool {
	return b.peekAt(offset).Kind == kind
}
