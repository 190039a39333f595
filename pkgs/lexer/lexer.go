package lexer

import (
	"sync"

	"github.com/prestosql/prestocst/pkgs/syntax"
)

// Lexer is a stateful, scannerless token producer. It holds nothing beyond
// its current cursor; NextToken is the sole driver.
type Lexer struct {
	cur cursor
}

// New creates a Lexer over source.
func New(source string) *Lexer {
	return &Lexer{cur: newCursor(source)}
}

// NextToken lexes and returns the next token, including its leading and
// trailing trivia and any lex-time diagnostics. Advances past the token and
// its trailing trivia.
func (l *Lexer) NextToken() syntax.Token {
	leading, leadingErrs := l.scanLeadingTrivia()

	start := l.cur
	kind, text, lexErrs := l.lexLexeme()
	rng := start.rangeTo(l.cur)

	trailing := l.scanTrailingTrivia()

	errs := append(leadingErrs, lexErrs...)

	return syntax.Token{
		Kind:             kind,
		Range:            rng,
		Text:             text,
		LeadingComments:  leading,
		TrailingComments: trailing,
		Errors:           errs,
	}
}

// tokenSlicePool holds reusable backing arrays for TokenizeAll, mirroring
// the teacher's tiered sync.Pool slices for bulk tokenization.
var tokenSlicePool = sync.Pool{
	New: func() interface{} {
		s := make([]syntax.Token, 0, 64)
		return &s
	},
}

// TokenizeAll lexes source to exhaustion, including the final EndOfFile
// token, and returns the resulting slice. Intended for tests and tools that
// want every token without driving a parser.
func TokenizeAll(source string) []syntax.Token {
	l := New(source)
	bufPtr := tokenSlicePool.Get().(*[]syntax.Token)
	buf := (*bufPtr)[:0]
	defer func() {
		if cap(buf) <= 256 {
			*bufPtr = buf[:0]
			tokenSlicePool.Put(bufPtr)
		}
	}()

	for {
		tok := l.NextToken()
		buf = append(buf, tok)
		if tok.Kind == syntax.EndOfFile {
			break
		}
	}

	result := make([]syntax.Token, len(buf))
	copy(result, buf)
	return result
}

// scanLeadingTrivia consumes whitespace and comments up to the next
// significant character, returning every comment encountered (as leading
// trivia of the token about to be produced) along with any diagnostics
// raised while scanning them (e.g. an unterminated delimited comment).
func (l *Lexer) scanLeadingTrivia() ([]syntax.Comment, []*syntax.SyntaxError) {
	var comments []syntax.Comment
	var errs []*syntax.SyntaxError
	for {
		l.cur.skipWhile(isWhitespace)
		switch {
		case l.startsLineComment():
			comments = append(comments, l.lexLineComment())
		case l.startsDelimitedComment():
			c, err, _ := l.lexDelimitedComment()
			comments = append(comments, c)
			if err != nil {
				errs = append(errs, err)
			}
		default:
			return comments, errs
		}
	}
}

// scanTrailingTrivia implements the stateful rewind algorithm: trailing
// trivia is only attached for comments on the same line as the token just
// produced. Anything that disqualifies - a line crossing, a delimited
// comment that spans into a later line, or an unterminated delimited
// comment - causes the cursor to rewind to the checkpoint preceding that
// candidate, so the next call's leading-trivia scan picks it up instead.
func (l *Lexer) scanTrailingTrivia() []syntax.Comment {
	var comments []syntax.Comment
	tokenLine := l.cur.pos.Line
	for {
		checkpoint := l.cur
		l.cur.skipWhile(isWhitespace)

		if l.cur.pos.Line != tokenLine {
			l.cur = checkpoint
			return comments
		}

		switch {
		case l.startsLineComment():
			comments = append(comments, l.lexLineComment())
			return comments
		case l.startsDelimitedComment():
			c, err, crossedNewline := l.lexDelimitedComment()
			if err == nil && !crossedNewline {
				comments = append(comments, c)
				tokenLine = l.cur.pos.Line
				continue
			}
			l.cur = checkpoint
			return comments
		default:
			l.cur = checkpoint
			return comments
		}
	}
}

func (l *Lexer) startsLineComment() bool {
	return l.cur.peekChar('-') && l.cur.peekCharOffset('-', 1)
}

func (l *Lexer) startsDelimitedComment() bool {
	return l.cur.peekChar('/') && l.cur.peekCharOffset('*', 1)
}

// lexLineComment consumes a `--` comment through (and including) its
// terminating newline, or through end of input.
func (l *Lexer) lexLineComment() syntax.Comment {
	start := l.cur
	l.cur.next()
	l.cur.next()
	l.cur.skipWhile(func(r rune) bool { return r != '\n' && r != '\r' && r != nul })
	if !l.cur.atEnd() {
		l.cur.next() // consumes the terminator; CRLF normalized by cursor.next
	}
	return syntax.Comment{
		Kind:  syntax.LineComment,
		Range: start.rangeTo(l.cur),
		Text:  start.textTo(l.cur),
	}
}

// lexDelimitedComment consumes a /* ... */ comment. It reports whether the
// comment was properly terminated and whether a newline was crossed while
// scanning its body (used by the caller to decide trailing-trivia
// eligibility); an unterminated comment yields error 102 located at the
// opening delimiter.
func (l *Lexer) lexDelimitedComment() (syntax.Comment, *syntax.SyntaxError, bool) {
	start := l.cur
	l.cur.next()
	l.cur.next()
	openEnd := l.cur

	crossedNewline := false
	terminated := false
	for {
		if l.cur.atEnd() {
			break
		}
		if l.cur.peekChar('*') && l.cur.peekCharOffset('/', 1) {
			l.cur.next()
			l.cur.next()
			terminated = true
			break
		}
		r := l.cur.next()
		if r == '\n' || r == '\r' {
			crossedNewline = true
		}
	}

	rng := start.rangeTo(l.cur)
	comment := syntax.Comment{Kind: syntax.DelimitedComment, Range: rng, Text: start.textTo(l.cur)}
	if !terminated {
		err := syntax.NewSyntaxError(syntax.ErrUnterminatedDelimitedComment, start.rangeTo(openEnd), "Unterminated delimited comment.")
		return comment, err, crossedNewline
	}
	return comment, nil, crossedNewline
}

// lexLexeme consumes exactly one significant lexeme (the parts of a Token
// outside its trivia) and returns its kind, verbatim text and any
// lex-time errors.
func (l *Lexer) lexLexeme() (syntax.TokenKind, string, []*syntax.SyntaxError) {
	start := l.cur
	if l.cur.atEnd() {
		return syntax.EndOfFile, "", nil
	}

	ch := l.cur.peek()
	switch {
	case (ch == 'u' || ch == 'U') && l.cur.peekCharOffset('&', 1) && l.cur.peekCharOffset('\'', 2):
		l.cur.next()
		l.cur.next()
		return l.lexQuotedBody(start, '\'', syntax.UnicodeStringLit, syntax.ErrUnterminatedString)
	case (ch == 'x' || ch == 'X') && l.cur.peekCharOffset('\'', 1):
		l.cur.next()
		return l.lexQuotedBody(start, '\'', syntax.BinaryLiteralLit, syntax.ErrUnterminatedString)
	case isIdentifierStart(ch):
		return l.lexWord(start)
	case ch == '\'':
		return l.lexQuotedBody(start, '\'', syntax.StringLit, syntax.ErrUnterminatedString)
	case ch == '"':
		return l.lexQuotedBody(start, '"', syntax.QuotedIdentifier, syntax.ErrUnterminatedQuotedIdentifier)
	case ch == '`':
		return l.lexQuotedBody(start, '`', syntax.BackquotedIdentifier, syntax.ErrUnterminatedBackquotedIdent)
	case isDigit(ch) || (ch == '.' && isDigit(l.cur.peekOffset(1))):
		return l.lexNumber(start)
	default:
		return l.lexOperator(start)
	}
}

// lexQuotedBody consumes a delimiter-quoted body where the delimiter is
// escaped by doubling it (`''`, `""`, or back-tick-back-tick). start is the
// cursor at the beginning of the whole token (including any U&/X prefix
// already consumed by the caller); the opening delimiter itself has not yet
// been consumed.
func (l *Lexer) lexQuotedBody(start cursor, delim rune, kind syntax.TokenKind, errCode int) (syntax.TokenKind, string, []*syntax.SyntaxError) {
	l.cur.next() // opening delimiter
	for {
		if l.cur.atEnd() {
			text := start.textTo(l.cur)
			err := syntax.NewSyntaxError(errCode, start.rangeTo(l.cur), "Unterminated literal.")
			return kind, text, []*syntax.SyntaxError{err}
		}
		if l.cur.peekChar(delim) {
			if l.cur.peekCharOffset(delim, 1) {
				l.cur.next()
				l.cur.next()
				continue
			}
			l.cur.next()
			break
		}
		l.cur.next()
	}
	return kind, start.textTo(l.cur), nil
}

// lexNumber implements the Integer/DigitIdentifier/Decimal/Double kind
// decision described by the grammar digits ('.' digits? (e sign? digits)?)?.
func (l *Lexer) lexNumber(start cursor) (syntax.TokenKind, string, []*syntax.SyntaxError) {
	if l.cur.peekChar('.') {
		l.cur.next()
		l.cur.skipWhile(isDigit)
		l.consumeExponentIfPresent()
		return syntax.Decimal, start.textTo(l.cur), nil
	}

	l.cur.skipWhile(isDigit)

	hasFraction := false
	if l.cur.peekChar('.') {
		hasFraction = true
		l.cur.next()
		l.cur.skipWhile(isDigit)
	}

	if l.consumeExponentIfPresent() {
		return syntax.Double, start.textTo(l.cur), nil
	}
	if hasFraction {
		return syntax.Decimal, start.textTo(l.cur), nil
	}
	if isIdentifierStart(l.cur.peek()) {
		l.cur.skipWhile(isIdentifierPart)
		return syntax.DigitIdentifier, start.textTo(l.cur), nil
	}
	return syntax.Integer, start.textTo(l.cur), nil
}

func (l *Lexer) consumeExponentIfPresent() bool {
	if l.cur.peek() != 'e' && l.cur.peek() != 'E' {
		return false
	}
	lookahead := l.cur
	lookahead.next()
	if isSign(lookahead.peek()) {
		lookahead.next()
	}
	if !isDigit(lookahead.peek()) {
		return false
	}
	lookahead.skipWhile(isDigit)
	l.cur = lookahead
	return true
}

// lexWord lexes an identifier, reserved word, or multi-word lexeme
// (DOUBLE PRECISION / TIME WITH TIME ZONE / TIMESTAMP WITH TIME ZONE).
// Multi-word lookahead runs on a cloned cursor; the original only advances
// past the additional words once the full sequence is confirmed.
func (l *Lexer) lexWord(start cursor) (syntax.TokenKind, string, []*syntax.SyntaxError) {
	l.cur.skipWhile(isIdentifierPart)
	text := start.textTo(l.cur)

	if kind, ok := syntax.LookupKeyword(text); ok {
		return kind, text, nil
	}

	switch {
	case syntax.EqualsPredefinedName(text, "DOUBLE"):
		if after, ok := matchWord(l.cur, "PRECISION"); ok {
			l.cur = after
			return syntax.DoublePrecision, start.textTo(l.cur), nil
		}
	case syntax.EqualsPredefinedName(text, "TIME"):
		if after, ok := matchWithTimeZone(l.cur); ok {
			l.cur = after
			return syntax.TimeWithTimeZone, start.textTo(l.cur), nil
		}
	case syntax.EqualsPredefinedName(text, "TIMESTAMP"):
		if after, ok := matchWithTimeZone(l.cur); ok {
			l.cur = after
			return syntax.TimestampWithTimeZone, start.textTo(l.cur), nil
		}
	}

	return syntax.Identifier, text, nil
}

// matchWithTimeZone checks, on a clone of c, for the word sequence
// WITH TIME ZONE (WITH matched as the reserved keyword, TIME/ZONE matched
// as predefined names per the grammar), returning the cursor positioned
// after ZONE if the whole sequence matched.
func matchWithTimeZone(c cursor) (cursor, bool) {
	c, ok := matchKeyword(c, syntax.WITH)
	if !ok {
		return c, false
	}
	if c, ok = matchWord(c, "TIME"); !ok {
		return c, false
	}
	return matchWord(c, "ZONE")
}

// matchWord reads one identifier word from a whitespace-skipped clone of c
// and reports whether it equals name (a predefined-name comparison, case
// insensitive). Does not check for comments between words.
func matchWord(c cursor, name string) (cursor, bool) {
	c.skipWhile(isWhitespace)
	start := c
	if !isIdentifierStart(c.peek()) {
		return c, false
	}
	c.skipWhile(isIdentifierPart)
	if !syntax.EqualsPredefinedName(start.textTo(c), name) {
		return c, false
	}
	return c, true
}

// matchKeyword is matchWord specialized for a reserved keyword comparison.
func matchKeyword(c cursor, want syntax.TokenKind) (cursor, bool) {
	c.skipWhile(isWhitespace)
	start := c
	if !isIdentifierStart(c.peek()) {
		return c, false
	}
	c.skipWhile(isIdentifierPart)
	kind, ok := syntax.LookupKeyword(start.textTo(c))
	if !ok || kind != want {
		return c, false
	}
	return c, true
}

// lexOperator dispatches punctuation and operator tokens, each
// disambiguated by at most one character of lookahead. A bare ! not
// followed by =, or a bare | not followed by |, is not a valid lexeme start
// and yields an Error token with code 103, as does any other character that
// cannot begin a lexeme.
func (l *Lexer) lexOperator(start cursor) (syntax.TokenKind, string, []*syntax.SyntaxError) {
	ch := l.cur.next()
	switch ch {
	case '(':
		return syntax.OpenParen, start.textTo(l.cur), nil
	case ')':
		return syntax.CloseParen, start.textTo(l.cur), nil
	case ',':
		return syntax.Comma, start.textTo(l.cur), nil
	case '.':
		return syntax.Period, start.textTo(l.cur), nil
	case '[':
		return syntax.OpenSquare, start.textTo(l.cur), nil
	case ']':
		return syntax.CloseSquare, start.textTo(l.cur), nil
	case '+':
		return syntax.Plus, start.textTo(l.cur), nil
	case '*':
		return syntax.Asterisk, start.textTo(l.cur), nil
	case '/':
		return syntax.Slash, start.textTo(l.cur), nil
	case '%':
		return syntax.Percent, start.textTo(l.cur), nil
	case '?':
		return syntax.Question, start.textTo(l.cur), nil
	case '<':
		if l.cur.peekChar('=') {
			l.cur.next()
			return syntax.LessEqual, start.textTo(l.cur), nil
		}
		if l.cur.peekChar('>') {
			l.cur.next()
			return syntax.LessGreater, start.textTo(l.cur), nil
		}
		return syntax.OpenAngle, start.textTo(l.cur), nil
	case '>':
		if l.cur.peekChar('=') {
			l.cur.next()
			return syntax.GreaterEqual, start.textTo(l.cur), nil
		}
		return syntax.CloseAngle, start.textTo(l.cur), nil
	case '=':
		if l.cur.peekChar('>') {
			l.cur.next()
			return syntax.DoubleArrow, start.textTo(l.cur), nil
		}
		return syntax.Equal, start.textTo(l.cur), nil
	case '-':
		if l.cur.peekChar('>') {
			l.cur.next()
			return syntax.Arrow, start.textTo(l.cur), nil
		}
		return syntax.Minus, start.textTo(l.cur), nil
	case '!':
		if l.cur.peekChar('=') {
			l.cur.next()
			return syntax.BangEqual, start.textTo(l.cur), nil
		}
		return l.invalidTokenStart(start)
	case '|':
		if l.cur.peekChar('|') {
			l.cur.next()
			return syntax.BarBar, start.textTo(l.cur), nil
		}
		return l.invalidTokenStart(start)
	default:
		return l.invalidTokenStart(start)
	}
}

func (l *Lexer) invalidTokenStart(start cursor) (syntax.TokenKind, string, []*syntax.SyntaxError) {
	text := start.textTo(l.cur)
	err := syntax.NewSyntaxError(syntax.ErrInvalidTokenStart, start.rangeTo(l.cur), "Invalid token start: "+text)
	return syntax.ErrorToken, text, []*syntax.SyntaxError{err}
}
