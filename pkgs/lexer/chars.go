package lexer

// Fast ASCII classification tables, in the teacher's style of precomputed
// [128]bool lookup arrays rather than a chain of range comparisons on every
// call. Runes above ASCII bypass the tables: the functions below treat every
// non-ASCII rune as an identifier character, and never as whitespace or a
// digit, since Presto identifiers are not restricted to ASCII letters.

var (
	isWhitespaceASCII [128]bool
	isDigitASCII      [128]bool
	isIdentStartASCII [128]bool
	isIdentPartASCII  [128]bool
)

func init() {
	isWhitespaceASCII['\t'] = true
	isWhitespaceASCII['\n'] = true
	isWhitespaceASCII['\r'] = true
	isWhitespaceASCII[' '] = true

	for c := '0'; c <= '9'; c++ {
		isDigitASCII[c] = true
		isIdentPartASCII[c] = true
	}
	for c := 'a'; c <= 'z'; c++ {
		isIdentStartASCII[c] = true
		isIdentPartASCII[c] = true
	}
	for c := 'A'; c <= 'Z'; c++ {
		isIdentStartASCII[c] = true
		isIdentPartASCII[c] = true
	}
	isIdentStartASCII['_'] = true
	isIdentPartASCII['_'] = true
}

func isWhitespace(r rune) bool {
	if r < 128 {
		return isWhitespaceASCII[r]
	}
	return false
}

func isDigit(r rune) bool {
	if r < 128 {
		return isDigitASCII[r]
	}
	return false
}

func isIdentifierStart(r rune) bool {
	if r < 128 {
		return isIdentStartASCII[r]
	}
	return r > 127
}

func isIdentifierPart(r rune) bool {
	if r < 128 {
		return isIdentPartASCII[r]
	}
	return r > 127
}

func isSign(r rune) bool {
	return r == '+' || r == '-'
}
