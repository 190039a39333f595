// Package parser builds full-fidelity concrete syntax trees from Presto SQL
// source text: every token, including whitespace-adjacent comments, is
// reachable from the resulting Tree, and malformed input still yields a
// complete tree with Error nodes standing in for the parts that did not
// parse.
package parser

import "github.com/prestosql/prestocst/pkgs/syntax"

// parser holds the mutable state of a single parse: a token buffer with
// unbounded lookahead and nothing else. Grammar productions are methods on
// *parser named parseX, mirroring the source grammar's own parse_x
// functions one-for-one wherever a direct mapping exists.
type parser struct {
	buf *tokenBuffer
}

func newParser(source string) *parser {
	return &parser{buf: newTokenBuffer(source)}
}

// entrypoint wraps a parsed rule with the synthetic beginning-of-file token
// and the terminating end-of-file token, matching Entrypoint's schema.
func (p *parser) entrypoint(rule *Tree) *Tree {
	bof := tokenNode(p.buf.tokens[0])
	var eof *Tree
	if p.buf.at(syntax.EndOfFile) {
		eof = tokenNode(p.buf.advance())
	} else {
		// Trailing input the rule didn't consume: wrap it as an error so
		// nothing is silently dropped from the tree.
		// The list holds the error, every skipped token, then the EOF token.
		start := p.buf.current()
		rest := []*Tree{newSyntaxError(start.Range, "unexpected trailing input after statement")}
		for !p.buf.at(syntax.EndOfFile) {
			rest = append(rest, tokenNode(p.buf.advance()))
		}
		rest = append(rest, tokenNode(p.buf.advance()))
		eof = listNode(rest...)
	}
	return node(KindEntrypoint, bof, rule, eof)
}

// ParseStatement parses a single top-level SQL statement (a query, or a DDL
// statement such as CREATE TABLE, INSERT INTO, DELETE, ...).
func ParseStatement(source string) (*Tree, []*ParseError) {
	p := newParser(source)
	tree := p.entrypoint(p.parseStatement())
	return tree, Errors(tree)
}

// ParseQuery parses a single SELECT/WITH/VALUES/TABLE query, rejecting DDL.
func ParseQuery(source string) (*Tree, []*ParseError) {
	p := newParser(source)
	tree := p.entrypoint(p.parseQuery())
	return tree, Errors(tree)
}

// ParseExpression parses a single scalar expression in isolation.
func ParseExpression(source string) (*Tree, []*ParseError) {
	p := newParser(source)
	tree := p.entrypoint(p.parseExpression())
	return tree, Errors(tree)
}

// ParseType parses a single SQL type reference in isolation.
func ParseType(source string) (*Tree, []*ParseError) {
	p := newParser(source)
	tree := p.entrypoint(p.parseType())
	return tree, Errors(tree)
}

// expect consumes the current token if it matches kind, otherwise returns an
// Error node describing the mismatch and does not advance.
func (p *parser) expect(kind syntax.TokenKind) *Tree {
	if p.buf.at(kind) {
		return tokenNode(p.buf.advance())
	}
	cur := p.buf.current()
	return newSyntaxError(cur.Range, "expected "+kind.String()+", found "+cur.Kind.String())
}

// optional consumes the current token if it matches kind, else returns Empty.
func (p *parser) optional(kind syntax.TokenKind) *Tree {
	if p.buf.at(kind) {
		return tokenNode(p.buf.advance())
	}
	return empty()
}

// optionalKeyword matches a predefined (non-reserved) name case-insensitively.
func (p *parser) optionalKeyword(name string) *Tree {
	cur := p.buf.current()
	if cur.Kind == syntax.Identifier && syntax.EqualsPredefinedName(cur.Text, name) {
		return tokenNode(p.buf.advance())
	}
	return empty()
}

// expectKeyword consumes the current token if it is a predefined name
// matching name, otherwise returns an Error node. Used for contextual
// keywords that the lexer never distinguishes from a plain Identifier.
func (p *parser) expectKeyword(name string) *Tree {
	if p.atKeyword(name) {
		return tokenNode(p.buf.advance())
	}
	cur := p.buf.current()
	return newSyntaxError(cur.Range, "expected "+name+", found "+cur.Kind.String())
}

func (p *parser) atKeyword(name string) bool {
	cur := p.buf.current()
	return cur.Kind == syntax.Identifier && syntax.EqualsPredefinedName(cur.Text, name)
}

// parseStatement dispatches on the leading keyword to the right top-level
// production. Anything unrecognized becomes a single Error node rather than
// a panic, so every input - however malformed - still yields a tree.
func (p *parser) parseStatement() *Tree {
	switch {
	case p.buf.at(syntax.WITH), p.buf.at(syntax.SELECT), p.buf.at(syntax.VALUES), p.buf.at(syntax.TABLE),
		p.buf.at(syntax.OpenParen) && p.startsQueryInParens():
		return p.parseQuery()
	case p.buf.at(syntax.CREATE):
		return p.parseCreateStatement()
	case p.buf.at(syntax.INSERT):
		return p.parseInsertInto()
	case p.buf.at(syntax.DELETE):
		return p.parseDelete()
	default:
		cur := p.buf.current()
		return newSyntaxError(cur.Range, "unexpected start of statement: "+cur.Kind.String())
	}
}

// startsQueryInParens performs a bounded lookahead to tell a parenthesized
// query ("(SELECT ...)") apart from a parenthesized DDL element list; only
// reachable from contexts where both are grammatically plausible starts.
func (p *parser) startsQueryInParens() bool {
	return p.buf.atOffset(1, syntax.WITH) || p.buf.atOffset(1, syntax.SELECT) ||
		p.buf.atOffset(1, syntax.VALUES) || p.buf.atOffset(1, syntax.TABLE) || p.buf.atOffset(1, syntax.OpenParen)
}

func (p *parser) parseCreateStatement() *Tree {
	switch {
	case p.buf.atOffset(1, syntax.TABLE):
		return p.parseCreateTableOrCTAS()
	case p.buf.atOffset(1, syntax.OR), p.atKeywordOffset(1, "VIEW"):
		return p.parseCreateView()
	case p.atKeywordOffset(1, "SCHEMA"):
		return p.parseCreateSchema()
	case p.atKeywordOffset(1, "ROLE"):
		return p.parseCreateRole()
	default:
		cur := p.buf.current()
		return newSyntaxError(cur.Range, "unsupported CREATE statement")
	}
}

func (p *parser) atKeywordOffset(offset int, name string) bool {
	tok := p.buf.peekAt(offset)
	return tok.Kind == syntax.Identifier && syntax.EqualsPredefinedName(tok.Text, name)
}

// parseQuery implements Query: an optional WITH clause followed by
// QueryNoWith (the set-operation body, plus trailing ORDER BY / LIMIT).
func (p *parser) parseQuery() *Tree {
	with := p.parseWithOpt()
	return node(KindQuery, with, p.parseQueryNoWith())
}

func (p *parser) parseWithOpt() *Tree {
	if !p.buf.at(syntax.WITH) {
		return empty()
	}
	with := tokenNode(p.buf.advance())
	recursive := p.optional(syntax.RECURSIVE)
	var named []*Tree
	named = append(named, p.parseNamedQuery())
	for p.buf.at(syntax.Comma) {
		p.buf.advance()
		named = append(named, p.parseNamedQuery())
	}
	return node(KindWith, with, recursive, listNode(named...))
}

func (p *parser) parseNamedQuery() *Tree {
	name := p.expect(syntax.Identifier)
	columns := empty()
	if p.buf.at(syntax.OpenParen) {
		columns = p.parseParenIdentifierList()
	}
	as := p.expect(syntax.AS)
	open := p.expect(syntax.OpenParen)
	query := p.parseQuery()
	closeP := p.expect(syntax.CloseParen)
	return node(KindNamedQuery, name, columns, as, open, query, closeP)
}

func (p *parser) parseParenIdentifierList() *Tree {
	open := p.expect(syntax.OpenParen)
	var items []*Tree
	items = append(items, tokenNode(p.expectToken(syntax.Identifier)))
	for p.buf.at(syntax.Comma) {
		p.buf.advance()
		items = append(items, tokenNode(p.expectToken(syntax.Identifier)))
	}
	closeP := p.expect(syntax.CloseParen)
	return listNode(open, listNode(items...), closeP)
}

func (p *parser) expectToken(kind syntax.TokenKind) syntax.Token {
	if p.buf.at(kind) {
		return p.buf.advance()
	}
	return p.buf.current()
}

// parseQueryNoWith handles the set-operation chain (UNION/INTERSECT/EXCEPT)
// over query primaries, with a trailing ORDER BY / LIMIT that binds to the
// whole chain rather than any single primary.
func (p *parser) parseQueryNoWith() *Tree {
	primary := p.parseQueryPrimaryOrSetOps()
	orderBy := p.parseOrderByOpt()
	limit := p.parseLimitOpt()
	return node(KindQueryNoWith, primary, orderBy, limit)
}

func (p *parser) parseQueryPrimaryOrSetOps() *Tree {
	left := p.parseQueryPrimary()
	for p.buf.at(syntax.UNION) || p.buf.at(syntax.INTERSECT) || p.buf.at(syntax.EXCEPT) {
		op := tokenNode(p.buf.advance())
		quant := empty()
		if p.atKeyword("ALL") || p.buf.at(syntax.DISTINCT) {
			quant = tokenNode(p.buf.advance())
		}
		right := p.parseQueryPrimary()
		left = node(KindSetOperation, left, op, quant, right)
	}
	return left
}

func (p *parser) parseQueryPrimary() *Tree {
	switch {
	case p.buf.at(syntax.SELECT):
		return p.parseQuerySpecification()
	case p.buf.at(syntax.VALUES):
		return p.parseValues()
	case p.buf.at(syntax.TABLE):
		return p.parseTableClause()
	case p.buf.at(syntax.OpenParen):
		open := tokenNode(p.buf.advance())
		body := p.parseQueryNoWith()
		closeP := p.expect(syntax.CloseParen)
		return node(KindRelationOrQuery, open, body, closeP)
	default:
		cur := p.buf.current()
		return newSyntaxError(cur.Range, "expected SELECT, VALUES, TABLE or (")
	}
}

func (p *parser) parseValues() *Tree {
	values := tokenNode(p.buf.advance())
	var rows []*Tree
	rows = append(rows, p.parseExpression())
	for p.buf.at(syntax.Comma) {
		p.buf.advance()
		rows = append(rows, p.parseExpression())
	}
	return node(KindValues, values, listNode(rows...))
}

func (p *parser) parseTableClause() *Tree {
	table := tokenNode(p.buf.advance())
	return node(KindTable, table, p.parseQualifiedName())
}

func (p *parser) parseQuerySpecification() *Tree {
	selectKw := tokenNode(p.buf.advance())
	setQuant := empty()
	if p.atKeyword("ALL") || p.buf.at(syntax.DISTINCT) {
		setQuant = tokenNode(p.buf.advance())
	}
	items := p.parseSelectItems()

	from, relations := empty(), empty()
	if p.buf.at(syntax.FROM) {
		from = tokenNode(p.buf.advance())
		relations = p.parseRelationList()
	}

	whereKw, wherePred := empty(), empty()
	if p.buf.at(syntax.WHERE) {
		whereKw = tokenNode(p.buf.advance())
		wherePred = p.parseExpression()
	}

	group, by, groupBy := empty(), empty(), empty()
	if p.buf.at(syntax.GROUP) {
		group = tokenNode(p.buf.advance())
		by = p.expect(syntax.BY)
		groupBy = p.parseGroupBy()
	}

	having, havingPred := empty(), empty()
	if p.buf.at(syntax.HAVING) {
		having = tokenNode(p.buf.advance())
		havingPred = p.parseExpression()
	}

	return node(KindQuerySpecification, selectKw, setQuant, items, from, relations,
		whereKw, wherePred, group, by, groupBy, having, havingPred)
}

func (p *parser) parseSelectItems() *Tree {
	var items []*Tree
	items = append(items, p.parseSelectItem())
	for p.buf.at(syntax.Comma) {
		p.buf.advance()
		items = append(items, p.parseSelectItem())
	}
	return listNode(items...)
}

func (p *parser) parseSelectItem() *Tree {
	if p.buf.at(syntax.Asterisk) {
		return node(KindSelectAll, tokenNode(p.buf.advance()))
	}
	if p.buf.at(syntax.Identifier) && p.buf.atOffset(1, syntax.Period) && p.buf.atOffset(2, syntax.Asterisk) {
		qualifier := tokenNode(p.buf.advance())
		period := tokenNode(p.buf.advance())
		asterisk := tokenNode(p.buf.advance())
		return node(KindQualifiedSelectAll, qualifier, period, asterisk)
	}
	expr := p.parseExpression()
	asKw := empty()
	alias := empty()
	if p.buf.at(syntax.AS) {
		asKw = tokenNode(p.buf.advance())
		alias = tokenNode(p.expectToken(syntax.Identifier))
	} else if p.buf.at(syntax.Identifier) {
		alias = tokenNode(p.buf.advance())
	}
	return node(KindSingleColumn, expr, asKw, alias)
}

func (p *parser) parseGroupBy() *Tree {
	var elements []*Tree
	elements = append(elements, p.parseGroupingElement())
	for p.buf.at(syntax.Comma) {
		p.buf.advance()
		elements = append(elements, p.parseGroupingElement())
	}
	return node(KindGroupBy, listNode(elements...))
}

func (p *parser) parseGroupingElement() *Tree {
	switch {
	case p.buf.at(syntax.ROLLUP):
		rollup := tokenNode(p.buf.advance())
		open := p.expect(syntax.OpenParen)
		exprs := p.parseExpressionList()
		closeP := p.expect(syntax.CloseParen)
		return node(KindRollup, rollup, open, exprs, closeP)
	case p.buf.at(syntax.CUBE):
		cube := tokenNode(p.buf.advance())
		open := p.expect(syntax.OpenParen)
		exprs := p.parseExpressionList()
		closeP := p.expect(syntax.CloseParen)
		return node(KindCube, cube, open, exprs, closeP)
	case p.buf.at(syntax.GROUPING):
		grouping := tokenNode(p.buf.advance())
		sets := p.expectKeyword("SETS")
		open := p.expect(syntax.OpenParen)
		var groups []*Tree
		groups = append(groups, p.parseParenthesizedExpressionList())
		for p.buf.at(syntax.Comma) {
			p.buf.advance()
			groups = append(groups, p.parseParenthesizedExpressionList())
		}
		closeP := p.expect(syntax.CloseParen)
		return node(KindGroupingSets, grouping, sets, open, listNode(groups...), closeP)
	default:
		return node(KindSimpleGroupBy, p.parseExpression())
	}
}

func (p *parser) parseParenthesizedExpressionList() *Tree {
	open := p.expect(syntax.OpenParen)
	exprs := p.parseExpressionList()
	closeP := p.expect(syntax.CloseParen)
	return listNode(open, exprs, closeP)
}

func (p *parser) parseExpressionList() *Tree {
	var exprs []*Tree
	if p.startsExpression() {
		exprs = append(exprs, p.parseExpression())
		for p.buf.at(syntax.Comma) {
			p.buf.advance()
			exprs = append(exprs, p.parseExpression())
		}
	}
	return listNode(exprs...)
}

func (p *parser) parseOrderByOpt() *Tree {
	if !p.buf.at(syntax.ORDER) {
		return empty()
	}
	order := tokenNode(p.buf.advance())
	by := p.expect(syntax.BY)
	var items []*Tree
	items = append(items, p.parseSortItem())
	for p.buf.at(syntax.Comma) {
		p.buf.advance()
		items = append(items, p.parseSortItem())
	}
	return node(KindOrderBy, order, by, listNode(items...))
}

func (p *parser) parseSortItem() *Tree {
	expr := p.parseExpression()
	ordering := empty()
	if p.atKeyword("ASC") || p.atKeyword("DESC") {
		ordering = tokenNode(p.buf.advance())
	}
	nulls, first := empty(), empty()
	if p.atKeyword("NULLS") {
		nulls = tokenNode(p.buf.advance())
		if p.atKeyword("FIRST") || p.atKeyword("LAST") {
			first = tokenNode(p.buf.advance())
		}
	}
	return node(KindSortItem, expr, ordering, nulls, first)
}

func (p *parser) parseLimitOpt() *Tree {
	if !p.atKeyword("LIMIT") {
		return empty()
	}
	limit := tokenNode(p.buf.advance())
	var value *Tree
	if p.buf.at(syntax.Integer) || p.atKeyword("ALL") {
		value = tokenNode(p.buf.advance())
	} else {
		value = newSyntaxError(p.buf.current().Range, "expected a row count or ALL after LIMIT")
	}
	return node(KindLimit, limit, value)
}

func (p *parser) startsExpression() bool {
	switch p.buf.current().Kind {
	case syntax.CloseParen, syntax.EndOfFile, syntax.Comma, syntax.CloseSquare:
		return false
	default:
		return true
	}
}
