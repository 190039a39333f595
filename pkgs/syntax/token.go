package syntax

// Token is a single lexeme: its kind, its significant range/text, and the
// trivia (comments) and lex errors attached to it. Range and Text cover only
// the significant characters; trivia ranges live in the comment lists.
type Token struct {
	Kind             TokenKind
	Range            TextRange
	Text             string
	LeadingComments  []Comment
	TrailingComments []Comment
	Errors           []*SyntaxError
}

// FullRange spans from the first leading trivia to the last trailing trivia,
// falling back to Range when there is no trivia on either side.
func (t Token) FullRange() TextRange {
	start := t.Range.Start
	if len(t.LeadingComments) > 0 {
		start = t.LeadingComments[0].Range.Start
	}
	end := t.Range.End
	if len(t.TrailingComments) > 0 {
		end = t.TrailingComments[len(t.TrailingComments)-1].Range.End
	}
	return TextRange{Start: start, End: end}
}

// FullText reconstructs the verbatim source text covered by FullRange:
// leading comment text, the token's own text, then trailing comment text.
// Concatenating this across every token in source order reproduces the
// original input except for whitespace between tokens, which the lexer
// does not keep as trivia.
func (t Token) FullText() string {
	s := ""
	for _, c := range t.LeadingComments {
		s += c.Text
	}
	s += t.Text
	for _, c := range t.TrailingComments {
		s += c.Text
	}
	return s
}

// BeginningOfFileToken is the synthetic token seeding the token buffer.
func BeginningOfFileToken() Token {
	return Token{Kind: BeginningOfFile, Range: TextRange{Start: Start, End: Start}}
}
