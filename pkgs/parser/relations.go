package parser

import "github.com/prestosql/prestocst/pkgs/syntax"

// parseRelationList parses the comma-separated FROM clause: a list of
// relations, each of which may itself be a chain of JOINs.
func (p *parser) parseRelationList() *Tree {
	var relations []*Tree
	relations = append(relations, p.parseJoinedRelation())
	for p.buf.at(syntax.Comma) {
		p.buf.advance()
		relations = append(relations, p.parseJoinedRelation())
	}
	return listNode(relations...)
}

func (p *parser) parseJoinedRelation() *Tree {
	left := p.parseSampledRelation()
	for p.startsJoin() {
		left = p.parseJoinTail(left)
	}
	return left
}

func (p *parser) startsJoin() bool {
	switch p.buf.current().Kind {
	case syntax.JOIN, syntax.INNER, syntax.LEFT, syntax.RIGHT, syntax.FULL, syntax.CROSS, syntax.NATURAL:
		return true
	default:
		return false
	}
}

// parseJoinTail consumes one JOIN following an already-parsed left relation.
// The corrected behavior here (relative to the implementation this grammar
// is grounded on) is that a leading NATURAL token is itself consumed as part
// of the join type: NATURAL JOIN, NATURAL LEFT JOIN, NATURAL INNER JOIN, and
// so on all eat the NATURAL keyword before the join-type keyword, rather
// than leaving it attached to CROSS.
func (p *parser) parseJoinTail(left *Tree) *Tree {
	var joinType *Tree
	if p.buf.at(syntax.NATURAL) {
		natural := tokenNode(p.buf.advance())
		kind := p.optional(syntax.INNER)
		if kind.Is(KindEmpty) {
			if p.buf.at(syntax.LEFT) || p.buf.at(syntax.RIGHT) || p.buf.at(syntax.FULL) {
				kind = tokenNode(p.buf.advance())
				p.optionalOuterKeyword()
			}
		}
		joinType = listNode(natural, kind)
	} else if p.buf.at(syntax.CROSS) {
		joinType = listNode(tokenNode(p.buf.advance()))
	} else if p.buf.at(syntax.INNER) {
		joinType = listNode(tokenNode(p.buf.advance()))
	} else if p.buf.at(syntax.LEFT) || p.buf.at(syntax.RIGHT) || p.buf.at(syntax.FULL) {
		kind := tokenNode(p.buf.advance())
		p.optionalOuterKeyword()
		joinType = listNode(kind)
	} else {
		joinType = empty()
	}

	join := p.expect(syntax.JOIN)
	right := p.parseSampledRelation()

	criteria := empty()
	if p.buf.at(syntax.ON) {
		on := tokenNode(p.buf.advance())
		pred := p.parseExpression()
		criteria = node(KindJoinOn, on, pred)
	} else if p.buf.at(syntax.USING) {
		using := tokenNode(p.buf.advance())
		cols := p.parseParenIdentifierList()
		criteria = node(KindJoinUsing, using, cols.children[0], cols.children[1], cols.children[2])
	}

	return node(KindJoinRelation, left, joinType, join, right, criteria)
}

func (p *parser) optionalOuterKeyword() *Tree {
	if p.buf.at(syntax.OUTER) {
		return tokenNode(p.buf.advance())
	}
	return empty()
}

// parseAliasedRelation parses the optional "AS? identifier columnAliases?"
// tail following a relation primary. A bare-identifier alias must not
// consume a following TABLESAMPLE or LIMIT clause, since TABLESAMPLE and
// LIMIT, like BERNOULLI/SYSTEM and ALL after them, are lexed as plain
// Identifier tokens; startsTablesampleSuffix/startsLimit guard against
// that ambiguity the same way the grammar this is grounded on does.
func (p *parser) parseAliasedRelation(relation *Tree) *Tree {
	asKw, alias, columns := empty(), empty(), empty()
	if p.buf.at(syntax.AS) {
		asKw = tokenNode(p.buf.advance())
		alias = tokenNode(p.expectToken(syntax.Identifier))
	} else if p.buf.at(syntax.Identifier) && !p.startsJoin() &&
		!p.startsTablesampleSuffix(0) && !p.startsLimit(0) {
		alias = tokenNode(p.buf.advance())
	}
	if !alias.Is(KindEmpty) && p.buf.at(syntax.OpenParen) {
		columns = p.parseParenIdentifierList()
	}
	if alias.Is(KindEmpty) {
		return relation
	}
	return node(KindAliasedRelation, relation, asKw, alias, columns)
}

// parseSampledRelation parses a relation primary, its optional alias, and
// then the optional TABLESAMPLE suffix applied to the now-aliased relation:
// sampledRelation: aliasedRelation (TABLESAMPLE sampleType '(' percentage ')')?
func (p *parser) parseSampledRelation() *Tree {
	primary := p.parsePrimaryRelation()
	relation := p.parseAliasedRelation(primary)
	if !p.atKeyword("TABLESAMPLE") {
		return relation
	}
	tablesample := tokenNode(p.buf.advance())
	sampleType := tokenNode(p.expectToken(syntax.Identifier))
	open := p.expect(syntax.OpenParen)
	percentage := p.parseExpression()
	closeP := p.expect(syntax.CloseParen)
	return node(KindSampledRelation, relation, tablesample, sampleType, open, percentage, closeP)
}

// startsTablesampleSuffix reports whether a TABLESAMPLE clause begins at
// the given lookahead offset: the predefined name TABLESAMPLE followed by
// a sample type (BERNOULLI or SYSTEM).
func (p *parser) startsTablesampleSuffix(offset int) bool {
	return p.atKeywordOffset(offset, "TABLESAMPLE") &&
		(p.atKeywordOffset(offset+1, "BERNOULLI") || p.atKeywordOffset(offset+1, "SYSTEM"))
}

// startsLimit reports whether a LIMIT clause begins at the given lookahead
// offset: the predefined name LIMIT followed by ALL or an integer literal.
func (p *parser) startsLimit(offset int) bool {
	return p.atKeywordOffset(offset, "LIMIT") &&
		(p.atKeywordOffset(offset+1, "ALL") || p.buf.atOffset(offset+1, syntax.Integer))
}

func (p *parser) parsePrimaryRelation() *Tree {
	switch {
	case p.buf.at(syntax.UNNEST):
		unnest := tokenNode(p.buf.advance())
		open := p.expect(syntax.OpenParen)
		exprs := p.parseExpressionList()
		closeP := p.expect(syntax.CloseParen)
		ordinality := empty()
		if p.buf.at(syntax.WITH) && p.atKeywordOffset(1, "ORDINALITY") {
			p.buf.advance()
			ordinality = tokenNode(p.buf.advance())
		}
		return node(KindUnnest, unnest, open, exprs, closeP, ordinality)
	case p.atKeyword("LATERAL"):
		lateral := tokenNode(p.buf.advance())
		open := p.expect(syntax.OpenParen)
		query := p.parseQuery()
		closeP := p.expect(syntax.CloseParen)
		return node(KindLateral, lateral, open, query, closeP)
	case p.buf.at(syntax.OpenParen):
		open := tokenNode(p.buf.advance())
		if p.startsQueryInParens() || p.buf.at(syntax.WITH) || p.buf.at(syntax.SELECT) ||
			p.buf.at(syntax.VALUES) || p.buf.at(syntax.TABLE) {
			query := p.parseQuery()
			closeP := p.expect(syntax.CloseParen)
			return node(KindRelationOrQuery, open, query, closeP)
		}
		relation := p.parseJoinedRelation()
		closeP := p.expect(syntax.CloseParen)
		return node(KindParenthesizedRelation, open, relation, closeP)
	default:
		return node(KindTableName, p.parseQualifiedName())
	}
}
