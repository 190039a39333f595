package parser

import "github.com/prestosql/prestocst/pkgs/syntax"

// parseExpression is the grammar's single entry point into the expression
// hierarchy: OR binds loosest, then AND, then NOT, then the predicates
// (comparison/BETWEEN/IN/LIKE/IS [NOT] NULL/IS [NOT] DISTINCT FROM), then
// the value expression (|| loosest, then +/-, then */%), then AT TIME ZONE,
// then unary sign, then primary expressions with their postfix forms
// (dereference, subscript).
func (p *parser) parseExpression() *Tree {
	return p.parseOr()
}

func (p *parser) parseOr() *Tree {
	left := p.parseAnd()
	for p.buf.at(syntax.OR) {
		op := tokenNode(p.buf.advance())
		right := p.parseAnd()
		left = node(KindBinaryExpression, left, op, right)
	}
	return left
}

func (p *parser) parseAnd() *Tree {
	left := p.parseNot()
	for p.buf.at(syntax.AND) {
		op := tokenNode(p.buf.advance())
		right := p.parseNot()
		left = node(KindBinaryExpression, left, op, right)
	}
	return left
}

func (p *parser) parseNot() *Tree {
	if p.buf.at(syntax.NOT) {
		not := tokenNode(p.buf.advance())
		return node(KindLogicalNot, not, p.parseNot())
	}
	return p.parsePredicate()
}

// parsePredicate handles every construct that can follow a value expression
// and produces a boolean: comparisons (plain or quantified), BETWEEN, IN,
// LIKE, IS [NOT] NULL and IS [NOT] DISTINCT FROM. BETWEEN, IN and LIKE
// accept an optional leading NOT; the IS forms take theirs after IS; the
// comparison operators take none.
func (p *parser) parsePredicate() *Tree {
	value := p.parseValueExpression()

	if isComparisonOperator(p.buf.current().Kind) {
		op := tokenNode(p.buf.advance())
		if p.atKeyword("ALL") || p.atKeyword("SOME") || p.atKeyword("ANY") {
			quantifier := tokenNode(p.buf.advance())
			open := p.expect(syntax.OpenParen)
			query := p.parseQuery()
			closeP := p.expect(syntax.CloseParen)
			return node(KindQuantifiedComparison, value, op, quantifier, open, query, closeP)
		}
		right := p.parseValueExpression()
		return node(KindBinaryExpression, value, op, right)
	}

	notOpt := empty()
	negated := false
	if p.buf.at(syntax.NOT) {
		notOpt = tokenNode(p.buf.advance())
		negated = true
	}

	switch {
	case p.buf.at(syntax.BETWEEN):
		between := tokenNode(p.buf.advance())
		low := p.parseValueExpression()
		and := p.expect(syntax.AND)
		high := p.parseValueExpression()
		return node(KindBetween, value, notOpt, between, low, and, high)
	case p.buf.at(syntax.IN):
		in := tokenNode(p.buf.advance())
		open := p.expect(syntax.OpenParen)
		if p.buf.at(syntax.WITH) || p.buf.at(syntax.SELECT) || p.buf.at(syntax.VALUES) || p.buf.at(syntax.TABLE) {
			query := p.parseQuery()
			closeP := p.expect(syntax.CloseParen)
			return node(KindInSubquery, value, notOpt, in, open, query, closeP)
		}
		elements := p.parseExpressionList()
		closeP := p.expect(syntax.CloseParen)
		return node(KindInList, value, notOpt, in, open, elements, closeP)
	case p.buf.at(syntax.LIKE):
		like := tokenNode(p.buf.advance())
		pattern := p.parseValueExpression()
		escapeOpt, escapeValue := empty(), empty()
		if p.buf.at(syntax.ESCAPE) {
			escapeOpt = tokenNode(p.buf.advance())
			escapeValue = p.parseValueExpression()
		}
		return node(KindLike, value, notOpt, like, pattern, escapeOpt, escapeValue)
	case p.buf.at(syntax.IS):
		is := tokenNode(p.buf.advance())
		innerNot := empty()
		if p.buf.at(syntax.NOT) {
			innerNot = tokenNode(p.buf.advance())
		}
		if p.buf.at(syntax.NULL) {
			null := tokenNode(p.buf.advance())
			return node(KindNullPredicate, value, is, innerNot, null)
		}
		distinct := p.expect(syntax.DISTINCT)
		from := p.expect(syntax.FROM)
		right := p.parseValueExpression()
		return node(KindDistinctFrom, value, is, innerNot, distinct, from, right)
	default:
		if negated {
			// A bare NOT we couldn't attach to BETWEEN/IN/LIKE/IS: report it
			// where it stands rather than silently discarding the token.
			return node(KindLogicalNot, notOpt, value)
		}
		return value
	}
}

func isComparisonOperator(k syntax.TokenKind) bool {
	switch k {
	case syntax.Equal, syntax.BangEqual, syntax.LessGreater, syntax.LessEqual, syntax.GreaterEqual,
		syntax.OpenAngle, syntax.CloseAngle:
		return true
	default:
		return false
	}
}

// parseValueExpression handles the arithmetic/concatenation chain: ||
// binds loosest, then + and -, then * / %, with AT TIME ZONE as a postfix
// suffix on the operand it follows.
func (p *parser) parseValueExpression() *Tree {
	return p.parseConcat()
}

func (p *parser) parseConcat() *Tree {
	left := p.parseAdditive()
	for p.buf.at(syntax.BarBar) {
		op := tokenNode(p.buf.advance())
		right := p.parseAdditive()
		left = node(KindBinaryExpression, left, op, right)
	}
	return left
}

func (p *parser) parseAdditive() *Tree {
	left := p.parseMultiplicative()
	for p.buf.at(syntax.Plus) || p.buf.at(syntax.Minus) {
		op := tokenNode(p.buf.advance())
		right := p.parseMultiplicative()
		left = node(KindBinaryExpression, left, op, right)
	}
	return left
}

func (p *parser) parseMultiplicative() *Tree {
	left := p.parseAtTimeZone()
	for p.buf.at(syntax.Asterisk) || p.buf.at(syntax.Slash) || p.buf.at(syntax.Percent) {
		op := tokenNode(p.buf.advance())
		right := p.parseAtTimeZone()
		left = node(KindBinaryExpression, left, op, right)
	}
	return left
}

func (p *parser) parseAtTimeZone() *Tree {
	value := p.parseUnary()
	for p.atKeyword("AT") {
		at := tokenNode(p.buf.advance())
		time := p.expectKeyword("TIME")
		zone := p.expectKeyword("ZONE")
		specifier := p.parseUnary()
		value = node(KindAtTimeZone, value, at, time, zone, specifier)
	}
	return value
}

func (p *parser) parseUnary() *Tree {
	if p.buf.at(syntax.Plus) || p.buf.at(syntax.Minus) {
		op := tokenNode(p.buf.advance())
		return node(KindUnaryExpression, op, p.parseUnary())
	}
	return p.parsePostfix()
}

// parsePostfix wraps a primary expression with any chain of trailing
// dereference (.field) and subscript ([index]) operators.
func (p *parser) parsePostfix() *Tree {
	expr := p.parsePrimary()
	for {
		switch {
		case p.buf.at(syntax.Period):
			period := tokenNode(p.buf.advance())
			field := tokenNode(p.expectToken(syntax.Identifier))
			expr = node(KindDereference, expr, period, field)
		case p.buf.at(syntax.OpenSquare):
			open := tokenNode(p.buf.advance())
			index := p.parseExpression()
			closeP := p.expect(syntax.CloseSquare)
			expr = node(KindSubscript, expr, open, index, closeP)
		default:
			return expr
		}
	}
}
