package lexer

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/prestosql/prestocst/pkgs/syntax"
)

// tokenExpectation captures the parts of a token worth asserting on in a
// table-driven test, leaving ranges to be checked separately where they
// matter.
type tokenExpectation struct {
	Kind syntax.TokenKind
	Text string
}

func tokenizeToSlice(t *testing.T, input string) []syntax.Token {
	t.Helper()
	return TokenizeAll(input)
}

func assertKindsAndText(t *testing.T, input string, expected []tokenExpectation) {
	t.Helper()
	tokens := tokenizeToSlice(t, input)
	if len(tokens) != len(expected)+1 { // +1 for the trailing EndOfFile
		t.Fatalf("tokenizing %q: got %d tokens, want %d (plus EOF): %+v", input, len(tokens), len(expected)+1, tokens)
	}
	var got []tokenExpectation
	for _, tok := range tokens[:len(tokens)-1] {
		got = append(got, tokenExpectation{Kind: tok.Kind, Text: tok.Text})
	}
	if diff := cmp.Diff(expected, got); diff != "" {
		t.Errorf("tokenizing %q (-want +got):\n%s", input, diff)
	}
}

func TestLexerSimplePunctuationAndOperators(t *testing.T) {
	assertKindsAndText(t, "( ) , . < > [ ] = <> != <= >= + - * / % || -> => ?", []tokenExpectation{
		{syntax.OpenParen, "("}, {syntax.CloseParen, ")"}, {syntax.Comma, ","}, {syntax.Period, "."},
		{syntax.OpenAngle, "<"}, {syntax.CloseAngle, ">"}, {syntax.OpenSquare, "["}, {syntax.CloseSquare, "]"},
		{syntax.Equal, "="}, {syntax.LessGreater, "<>"}, {syntax.BangEqual, "!="}, {syntax.LessEqual, "<="},
		{syntax.GreaterEqual, ">="}, {syntax.Plus, "+"}, {syntax.Minus, "-"}, {syntax.Asterisk, "*"},
		{syntax.Slash, "/"}, {syntax.Percent, "%"}, {syntax.BarBar, "||"}, {syntax.Arrow, "->"},
		{syntax.DoubleArrow, "=>"}, {syntax.Question, "?"},
	})
}

func TestLexerKeywordsAreCaseInsensitive(t *testing.T) {
	assertKindsAndText(t, "select Select SELECT", []tokenExpectation{
		{syntax.SELECT, "select"}, {syntax.SELECT, "Select"}, {syntax.SELECT, "SELECT"},
	})
}

func TestLexerIdentifiersAndQuotedForms(t *testing.T) {
	assertKindsAndText(t, `foo _bar "quo""ted" ` + "`back``tick`", []tokenExpectation{
		{syntax.Identifier, "foo"}, {syntax.Identifier, "_bar"},
		{syntax.QuotedIdentifier, `"quo""ted"`}, {syntax.BackquotedIdentifier, "`back``tick`"},
	})
}

func TestLexerNumberKinds(t *testing.T) {
	assertKindsAndText(t, "1 1.5 1e10 1.5e-10 .5 1x", []tokenExpectation{
		{syntax.Integer, "1"}, {syntax.Decimal, "1.5"}, {syntax.Double, "1e10"},
		{syntax.Double, "1.5e-10"}, {syntax.Decimal, ".5"}, {syntax.DigitIdentifier, "1x"},
	})
}

func TestLexerStringLiteralWithEscapedQuote(t *testing.T) {
	assertKindsAndText(t, `'it''s'`, []tokenExpectation{{syntax.StringLit, `'it''s'`}})
}

func TestLexerUnicodeAndBinaryLiterals(t *testing.T) {
	assertKindsAndText(t, `U&'abc' X'ab01'`, []tokenExpectation{
		{syntax.UnicodeStringLit, `U&'abc'`}, {syntax.BinaryLiteralLit, `X'ab01'`},
	})
}

func TestLexerMultiWordKeywords(t *testing.T) {
	assertKindsAndText(t, "DOUBLE PRECISION TIME WITH TIME ZONE TIMESTAMP WITH TIME ZONE", []tokenExpectation{
		{syntax.DoublePrecision, "DOUBLE PRECISION"},
		{syntax.TimeWithTimeZone, "TIME WITH TIME ZONE"},
		{syntax.TimestampWithTimeZone, "TIMESTAMP WITH TIME ZONE"},
	})
}

func TestLexerUnterminatedStringProducesError104(t *testing.T) {
	tokens := TokenizeAll("SELECT 'abc")
	last := tokens[len(tokens)-2] // token before EOF
	if last.Kind != syntax.StringLit {
		t.Fatalf("expected StringLit token, got %v", last.Kind)
	}
	if len(last.Errors) != 1 || last.Errors[0].Code != syntax.ErrUnterminatedString {
		t.Fatalf("expected a single error 104, got %+v", last.Errors)
	}
}

func TestLexerBareBangAndBarAreInvalidTokenStarts(t *testing.T) {
	for _, input := range []string{"!", "|"} {
		tokens := TokenizeAll(input)
		tok := tokens[0]
		if tok.Kind != syntax.ErrorToken {
			t.Fatalf("input %q: expected ErrorToken, got %v", input, tok.Kind)
		}
		if len(tok.Errors) != 1 || tok.Errors[0].Code != syntax.ErrInvalidTokenStart {
			t.Fatalf("input %q: expected error 103, got %+v", input, tok.Errors)
		}
	}
}

func TestLexerTrailingCommentOnSameLine(t *testing.T) {
	tokens := TokenizeAll("SELECT 1 -- c\n")
	integer := tokens[1]
	if integer.Kind != syntax.Integer {
		t.Fatalf("expected Integer token, got %v", integer.Kind)
	}
	if len(integer.TrailingComments) != 1 || integer.TrailingComments[0].Kind != syntax.LineComment {
		t.Fatalf("expected one trailing line comment, got %+v", integer.TrailingComments)
	}
}

func TestLexerMultiLineDelimitedCommentIsLeadingNotTrailing(t *testing.T) {
	tokens := TokenizeAll("SELECT /*\nhello\n*/ 1")
	selectTok := tokens[0]
	integer := tokens[1]
	if len(selectTok.TrailingComments) != 0 {
		t.Fatalf("SELECT should have no trailing comments, got %+v", selectTok.TrailingComments)
	}
	if len(integer.LeadingComments) != 1 || integer.LeadingComments[0].Kind != syntax.DelimitedComment {
		t.Fatalf("expected the delimited comment as leading trivia of the integer, got %+v", integer.LeadingComments)
	}
}

func TestLexerCRLFNormalization(t *testing.T) {
	tokens := TokenizeAll("A\r\nB")
	if tokens[0].Range.Start.Line != 0 {
		t.Fatalf("A should be on line 0, got %d", tokens[0].Range.Start.Line)
	}
	if tokens[1].Range.Start.Line != 1 {
		t.Fatalf("B should be on line 1, got %d", tokens[1].Range.Start.Line)
	}
}

// TestLexerRoundTripFidelity checks round-trip fidelity for inputs with no
// bare-whitespace gap between tokens (tokens touch, or are separated only by
// comments) - exactly the case where leading/trailing comment attachment
// fully accounts for every byte, since plain whitespace is deliberately not
// retained anywhere (§4.2: "not stored as trivia; only comments are").
func TestLexerRoundTripFidelity(t *testing.T) {
	inputs := []string{
		"SELECT/*c*/1",
		"SELECT--c\n1",
		"1+2*3",
		"",
	}
	for _, input := range inputs {
		tokens := TokenizeAll(input)
		var rebuilt string
		for _, tok := range tokens {
			rebuilt += tok.FullText()
		}
		if rebuilt != input {
			t.Errorf("round trip mismatch for %q: got %q", input, rebuilt)
		}
	}
}

func TestLexerEmptyInputYieldsOnlyEOF(t *testing.T) {
	tokens := TokenizeAll("")
	if diff := cmp.Diff(syntax.EndOfFile, tokens[0].Kind); diff != "" {
		t.Errorf("empty input (-want +got):\n%s", diff)
	}
}
