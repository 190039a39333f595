package parser

import "github.com/prestosql/prestocst/pkgs/syntax"

func (p *parser) parsePrimary() *Tree {
	switch {
	case p.buf.at(syntax.Integer), p.buf.at(syntax.Decimal), p.buf.at(syntax.Double),
		p.buf.at(syntax.StringLit), p.buf.at(syntax.UnicodeStringLit), p.buf.at(syntax.BinaryLiteralLit):
		return node(KindLiteral, tokenNode(p.buf.advance()))
	case p.buf.at(syntax.NULL):
		return node(KindNullLiteral, tokenNode(p.buf.advance()))
	case p.buf.at(syntax.TRUE), p.buf.at(syntax.FALSE):
		return node(KindBooleanLiteral, tokenNode(p.buf.advance()))
	case p.buf.at(syntax.CASE):
		return p.parseCase()
	case p.buf.at(syntax.CAST):
		return p.parseCast()
	case p.atKeyword("TRY_CAST") && p.buf.atOffset(1, syntax.OpenParen):
		return p.parseCast()
	case p.buf.at(syntax.EXTRACT):
		return p.parseExtract()
	case p.atKeyword("SUBSTRING") && p.buf.atOffset(1, syntax.OpenParen):
		return p.parseSubstring()
	case p.atKeyword("POSITION") && p.buf.atOffset(1, syntax.OpenParen):
		return p.parsePosition()
	case p.buf.at(syntax.NORMALIZE):
		return p.parseNormalize()
	case p.buf.at(syntax.EXISTS):
		return p.parseExists()
	case p.atKeyword("ROW") && p.buf.atOffset(1, syntax.OpenParen):
		return p.parseRowConstructor()
	case p.atKeyword("ARRAY") && p.buf.atOffset(1, syntax.OpenSquare):
		return p.parseArrayConstructor()
	case p.atKeyword("INTERVAL") && (p.buf.atOffset(1, syntax.Plus) || p.buf.atOffset(1, syntax.Minus) ||
		p.buf.atOffset(1, syntax.StringLit) || p.buf.atOffset(1, syntax.Identifier) || p.buf.atOffset(1, syntax.CONFIGURE)):
		return p.parseInterval()
	case p.buf.at(syntax.OpenParen):
		return p.parseParenthesizedPrimary()
	case p.buf.at(syntax.Identifier) || p.buf.at(syntax.QuotedIdentifier) || p.buf.at(syntax.BackquotedIdentifier):
		return p.parseIdentifierOrCall()
	default:
		cur := p.buf.current()
		return newSyntaxError(cur.Range, "expected an expression, found "+cur.Kind.String())
	}
}

// parseParenthesizedPrimary resolves the hard ambiguity between a
// parenthesized scalar expression, an implicit row constructor, and a
// parenthesized subquery, all of which share the "(" lookahead:
//
//   - "(" query ")"            -> a scalar subquery (ExpressionOrQuery)
//   - "(" expr ")"              -> a parenthesized expression
//   - "(" expr "," expr+ ")"    -> an implicit row constructor
//   - "(" ident, ... ")" "->"   -> a lambda with a parenthesized parameter list
func (p *parser) parseParenthesizedPrimary() *Tree {
	if p.looksLikeLambdaParams() {
		return p.parseLambda()
	}
	open := tokenNode(p.buf.advance())
	if p.buf.at(syntax.WITH) || p.buf.at(syntax.SELECT) || p.buf.at(syntax.VALUES) || p.buf.at(syntax.TABLE) {
		query := p.parseQuery()
		closeP := p.expect(syntax.CloseParen)
		return node(KindExpressionOrQuery, open, query, closeP)
	}
	first := p.parseExpression()
	if p.buf.at(syntax.Comma) {
		elements := []*Tree{first}
		for p.buf.at(syntax.Comma) {
			p.buf.advance()
			elements = append(elements, p.parseExpression())
		}
		closeP := p.expect(syntax.CloseParen)
		return node(KindRowConstructor, empty(), open, listNode(elements...), closeP)
	}
	closeP := p.expect(syntax.CloseParen)
	return node(KindParenthesizedExpression, open, first, closeP)
}

func (p *parser) parseRowConstructor() *Tree {
	row := tokenNode(p.buf.advance())
	open := p.expect(syntax.OpenParen)
	elements := p.parseExpressionList()
	closeP := p.expect(syntax.CloseParen)
	return node(KindRowConstructor, row, open, elements, closeP)
}

func (p *parser) parseArrayConstructor() *Tree {
	arrayKw := tokenNode(p.buf.advance())
	open := p.expect(syntax.OpenSquare)
	elements := p.parseExpressionList()
	closeP := p.expect(syntax.CloseSquare)
	return node(KindArrayConstructor, arrayKw, open, elements, closeP)
}

// parseInterval resolves the second hard ambiguity: a predefined-name
// contextual keyword (INTERVAL) whose tail is either a single from-unit
// ("INTERVAL '3' DAY") or a from/to range ("INTERVAL '3' DAY TO HOUR"). The
// unit identifiers themselves (DAY, HOUR, ...) are plain predefined names,
// not reserved words, so they are matched the same way INTERVAL itself is.
func (p *parser) parseInterval() *Tree {
	interval := tokenNode(p.buf.advance())
	sign := empty()
	if p.buf.at(syntax.Plus) || p.buf.at(syntax.Minus) {
		sign = tokenNode(p.buf.advance())
	}
	value := tokenNode(p.expectToken(syntax.StringLit))
	from := tokenNode(p.expectToken(syntax.Identifier))
	toOpt, to := empty(), empty()
	if p.atKeyword("TO") {
		toOpt = tokenNode(p.buf.advance())
		to = tokenNode(p.expectToken(syntax.Identifier))
	}
	return node(KindInterval, interval, sign, value, from, toOpt, to)
}

func (p *parser) parseExists() *Tree {
	exists := tokenNode(p.buf.advance())
	open := p.expect(syntax.OpenParen)
	query := p.parseQuery()
	closeP := p.expect(syntax.CloseParen)
	return node(KindExists, exists, open, query, closeP)
}

func (p *parser) parseCast() *Tree {
	cast := tokenNode(p.buf.advance())
	open := p.expect(syntax.OpenParen)
	expr := p.parseExpression()
	as := p.expect(syntax.AS)
	targetType := p.parseType()
	closeP := p.expect(syntax.CloseParen)
	return node(KindCast, cast, open, expr, as, targetType, closeP)
}

func (p *parser) parseExtract() *Tree {
	extract := tokenNode(p.buf.advance())
	open := p.expect(syntax.OpenParen)
	field := tokenNode(p.expectToken(syntax.Identifier))
	from := p.expect(syntax.FROM)
	expr := p.parseExpression()
	closeP := p.expect(syntax.CloseParen)
	return node(KindExtract, extract, open, field, from, expr, closeP)
}

func (p *parser) parseSubstring() *Tree {
	substring := tokenNode(p.buf.advance())
	open := p.expect(syntax.OpenParen)
	value := p.parseExpression()
	from := p.expect(syntax.FROM)
	start := p.parseExpression()
	forOpt, length := empty(), empty()
	if p.buf.at(syntax.FOR) {
		forOpt = tokenNode(p.buf.advance())
		length = p.parseExpression()
	}
	closeP := p.expect(syntax.CloseParen)
	return node(KindSubstring, substring, open, value, from, start, forOpt, length, closeP)
}

func (p *parser) parsePosition() *Tree {
	position := tokenNode(p.buf.advance())
	open := p.expect(syntax.OpenParen)
	needle := p.parseValueExpression()
	in := p.expect(syntax.IN)
	haystack := p.parseValueExpression()
	closeP := p.expect(syntax.CloseParen)
	return node(KindPositionExpr, position, open, needle, in, haystack, closeP)
}

func (p *parser) parseNormalize() *Tree {
	normalize := tokenNode(p.buf.advance())
	open := p.expect(syntax.OpenParen)
	value := p.parseExpression()
	commaOpt, formOpt := empty(), empty()
	if p.buf.at(syntax.Comma) {
		commaOpt = tokenNode(p.buf.advance())
		formOpt = tokenNode(p.expectToken(syntax.Identifier))
	}
	closeP := p.expect(syntax.CloseParen)
	return node(KindNormalize, normalize, open, value, commaOpt, formOpt, closeP)
}

func (p *parser) parseCase() *Tree {
	caseKw := tokenNode(p.buf.advance())
	if p.buf.at(syntax.WHEN) {
		return p.parseSearchedCaseTail(caseKw)
	}
	value := p.parseExpression()
	whens := p.parseWhenClauses()
	elseOpt, elseValue := p.parseElseOpt()
	end := p.expect(syntax.END)
	return node(KindSimpleCase, caseKw, value, whens, elseOpt, elseValue, end)
}

func (p *parser) parseSearchedCaseTail(caseKw *Tree) *Tree {
	whens := p.parseWhenClauses()
	elseOpt, elseValue := p.parseElseOpt()
	end := p.expect(syntax.END)
	return node(KindSearchedCase, caseKw, whens, elseOpt, elseValue, end)
}

func (p *parser) parseWhenClauses() *Tree {
	var whens []*Tree
	for p.buf.at(syntax.WHEN) {
		when := tokenNode(p.buf.advance())
		condition := p.parseExpression()
		then := p.expect(syntax.THEN)
		result := p.parseExpression()
		whens = append(whens, node(KindWhenClause, when, condition, then, result))
	}
	return listNode(whens...)
}

func (p *parser) parseElseOpt() (*Tree, *Tree) {
	if !p.buf.at(syntax.ELSE) {
		return empty(), empty()
	}
	elseOpt := tokenNode(p.buf.advance())
	return elseOpt, p.parseExpression()
}

// parseIdentifierOrCall resolves a leading identifier into a qualified
// name, a function call, or a lambda parameter list, depending on what
// follows it.
func (p *parser) parseIdentifierOrCall() *Tree {
	if p.buf.at(syntax.OpenParen) && p.looksLikeLambdaParams() {
		return p.parseLambda()
	}
	if p.buf.atOffset(1, syntax.Arrow) {
		return p.parseLambdaSingleParam()
	}
	name := p.parseQualifiedName()
	if !p.buf.at(syntax.OpenParen) {
		if parts := name.children[0].children; len(parts) == 1 {
			return node(KindIdentifier, parts[0])
		}
		return name
	}
	return p.parseFunctionCallTail(name)
}

// looksLikeLambdaParams performs bounded lookahead to tell "(x, y) -> ..."
// apart from a function call: a parenthesized, comma-separated identifier
// list immediately followed by "->".
func (p *parser) looksLikeLambdaParams() bool {
	offset := 1
	if p.buf.atOffset(offset, syntax.CloseParen) {
		return p.buf.atOffset(offset+1, syntax.Arrow)
	}
	for {
		if !isIdentifierKind(p.buf.peekAt(offset).Kind) {
			return false
		}
		offset++
		if p.buf.atOffset(offset, syntax.Comma) {
			offset++
			continue
		}
		if p.buf.atOffset(offset, syntax.CloseParen) {
			return p.buf.atOffset(offset+1, syntax.Arrow)
		}
		return false
	}
}

func isIdentifierKind(k syntax.TokenKind) bool {
	return k == syntax.Identifier || k == syntax.QuotedIdentifier || k == syntax.BackquotedIdentifier
}

func (p *parser) parseLambda() *Tree {
	open := p.expect(syntax.OpenParen)
	var params []*Tree
	if !p.buf.at(syntax.CloseParen) {
		params = append(params, tokenNode(p.buf.advance()))
		for p.buf.at(syntax.Comma) {
			p.buf.advance()
			params = append(params, tokenNode(p.buf.advance()))
		}
	}
	closeP := p.expect(syntax.CloseParen)
	arrow := p.expect(syntax.Arrow)
	body := p.parseExpression()
	return node(KindLambda, listNode(open, listNode(params...), closeP), arrow, body)
}

func (p *parser) parseLambdaSingleParam() *Tree {
	param := tokenNode(p.buf.advance())
	arrow := p.expect(syntax.Arrow)
	body := p.parseExpression()
	return node(KindLambda, listNode(param), arrow, body)
}

func (p *parser) parseQualifiedName() *Tree {
	var parts []*Tree
	parts = append(parts, tokenNode(p.buf.advance()))
	for p.buf.at(syntax.Period) && isIdentifierKind(p.buf.peekAt(1).Kind) {
		p.buf.advance()
		parts = append(parts, tokenNode(p.buf.advance()))
	}
	return node(KindQualifiedName, listNode(parts...))
}

func (p *parser) parseFunctionCallTail(name *Tree) *Tree {
	open := tokenNode(p.buf.advance())
	setQuant := empty()
	if p.atKeyword("ALL") || p.buf.at(syntax.DISTINCT) {
		setQuant = tokenNode(p.buf.advance())
	}
	args := empty()
	if !p.buf.at(syntax.CloseParen) {
		args = p.parseExpressionList()
	}
	orderBy := p.parseOrderByOpt()
	closeP := p.expect(syntax.CloseParen)

	filterOpt := empty()
	if p.atKeyword("FILTER") {
		filter := tokenNode(p.buf.advance())
		fopen := p.expect(syntax.OpenParen)
		where := p.expect(syntax.WHERE)
		cond := p.parseExpression()
		fclose := p.expect(syntax.CloseParen)
		filterOpt = listNode(filter, fopen, where, cond, fclose)
	}

	nullTreatmentOpt := empty()
	if p.atKeyword("IGNORE") || p.atKeyword("RESPECT") {
		treatment := tokenNode(p.buf.advance())
		nulls := p.expectKeyword("NULLS")
		nullTreatmentOpt = listNode(treatment, nulls)
	}

	overOpt := empty()
	if p.atKeyword("OVER") {
		overOpt = p.parseWindow()
	}

	return node(KindFunctionCall, name, open, setQuant, args, orderBy, closeP, filterOpt, nullTreatmentOpt, overOpt)
}

func (p *parser) parseWindow() *Tree {
	over := tokenNode(p.buf.advance())
	open := p.expect(syntax.OpenParen)

	partitionOpt, by, partitionBy := empty(), empty(), empty()
	if p.atKeyword("PARTITION") {
		partitionOpt = tokenNode(p.buf.advance())
		by = p.expect(syntax.BY)
		partitionBy = p.parseExpressionList()
	}

	orderBy := p.parseOrderByOpt()

	frameOpt := empty()
	if p.atKeyword("ROWS") || p.atKeyword("RANGE") {
		frameOpt = p.parseWindowFrame()
	}

	closeP := p.expect(syntax.CloseParen)
	return node(KindWindow, over, open, partitionOpt, by, partitionBy, orderBy, frameOpt, closeP)
}

func (p *parser) parseWindowFrame() *Tree {
	frameType := tokenNode(p.buf.advance())
	betweenOpt := empty()
	var start, and, end *Tree
	if p.buf.at(syntax.BETWEEN) {
		betweenOpt = tokenNode(p.buf.advance())
		start = p.parseFrameBound()
		and = p.expect(syntax.AND)
		end = p.parseFrameBound()
	} else {
		start = p.parseFrameBound()
		and, end = empty(), empty()
	}
	return node(KindWindowFrame, frameType, betweenOpt, start, and, end)
}

func (p *parser) parseFrameBound() *Tree {
	if p.atKeyword("CURRENT") {
		boundType := tokenNode(p.buf.advance())
		p.expectKeyword("ROW")
		return node(KindFrameBound, boundType, empty())
	}
	if p.atKeyword("UNBOUNDED") {
		boundType := tokenNode(p.buf.advance())
		if p.atKeyword("PRECEDING") || p.atKeyword("FOLLOWING") {
			p.buf.advance()
		}
		return node(KindFrameBound, boundType, empty())
	}
	offset := p.parseExpression()
	boundType := empty()
	if p.atKeyword("PRECEDING") || p.atKeyword("FOLLOWING") {
		boundType = tokenNode(p.buf.advance())
	}
	return node(KindFrameBound, boundType, offset)
}
