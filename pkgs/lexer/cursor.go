// Package lexer turns Presto SQL source text into a stream of syntax.Token
// values, each carrying its own leading/trailing comment trivia and any
// lex-time diagnostics.
package lexer

import (
	"unicode/utf8"

	"github.com/prestosql/prestocst/pkgs/syntax"
)

const nul = rune(0)

// cursor is a forward iterator over source text with multi-character
// lookahead. It tracks both a byte index (for slicing) and a line/column
// Position, and normalizes CRLF line endings to a single line advance.
// Cheap to copy: the lexer performs speculative lookahead by cloning a
// cursor, never by "unreading" a character.
type cursor struct {
	source string
	index  int
	pos    syntax.Position
}

func newCursor(source string) cursor {
	return cursor{source: source, pos: syntax.Start}
}

// peekRuneAt returns the rune starting at byte index i and its width, or
// (nul, 0) at or past the end of source.
func (c cursor) peekRuneAt(i int) (rune, int) {
	if i >= len(c.source) {
		return nul, 0
	}
	r, size := utf8.DecodeRuneInString(c.source[i:])
	return r, size
}

// peek returns the next rune without consuming it, or the NUL sentinel past
// end of input.
func (c cursor) peek() rune {
	r, _ := c.peekRuneAt(c.index)
	return r
}

// peekOffset returns the rune n code points ahead; O(n).
func (c cursor) peekOffset(n int) rune {
	clone := c
	for n > 0 {
		clone.next()
		n--
	}
	return clone.peek()
}

// peekChar reports whether the next rune equals ch.
func (c cursor) peekChar(ch rune) bool {
	return c.peek() == ch
}

// peekCharOffset reports whether the rune n code points ahead equals ch.
func (c cursor) peekCharOffset(ch rune, n int) bool {
	return c.peekOffset(n) == ch
}

// atEnd reports whether the cursor has reached the end of source.
func (c cursor) atEnd() bool {
	return c.peekChar(nul)
}

// next consumes and returns one code point, advancing the byte index and
// updating position. \n advances the line and resets the column; \r does
// the same but additionally consumes a following \n (CRLF normalization);
// every other rune advances the column.
func (c *cursor) next() rune {
	r, size := c.peekRuneAt(c.index)
	if size == 0 {
		return nul
	}
	c.index += size
	switch r {
	case '\n':
		c.pos = c.pos.NextLine()
	case '\r':
		if nr, nsize := c.peekRuneAt(c.index); nr == '\n' {
			c.index += nsize
		}
		c.pos = c.pos.NextLine()
	default:
		c.pos = c.pos.NextColumn()
	}
	return r
}

// skipWhile consumes runes while pred holds, returning whether anything was
// consumed.
func (c *cursor) skipWhile(pred func(rune) bool) bool {
	consumed := false
	for pred(c.peek()) {
		c.next()
		consumed = true
	}
	return consumed
}

// rangeTo returns the TextRange spanning from c to end.
func (c cursor) rangeTo(end cursor) syntax.TextRange {
	return syntax.NewRange(c.pos, end.pos)
}

// textTo returns the verbatim substring spanning from c to end.
func (c cursor) textTo(end cursor) string {
	return c.source[c.index:end.index]
}
