package parser

import "github.com/prestosql/prestocst/pkgs/syntax"

func (p *parser) parseCreateTableOrCTAS() *Tree {
	create := tokenNode(p.buf.advance())
	table := tokenNode(p.buf.advance())
	ifNotExists := p.parseIfNotExistsOpt()
	name := p.parseQualifiedName()

	if p.buf.at(syntax.AS) {
		as := tokenNode(p.buf.advance())
		query := p.parseQuery()
		withDataOpt := empty()
		if p.buf.at(syntax.WITH) {
			withKw := tokenNode(p.buf.advance())
			noOpt := empty()
			if p.atKeyword("NO") {
				noOpt = tokenNode(p.buf.advance())
			}
			data := p.expectKeyword("DATA")
			withDataOpt = listNode(withKw, noOpt, data)
		}
		return node(KindCreateTableAsSelect, create, table, ifNotExists, name, as, query, withDataOpt)
	}

	open := p.expect(syntax.OpenParen)
	var elements []*Tree
	elements = append(elements, p.parseTableElement())
	for p.buf.at(syntax.Comma) {
		p.buf.advance()
		elements = append(elements, p.parseTableElement())
	}
	closeP := p.expect(syntax.CloseParen)
	return node(KindCreateTable, create, table, ifNotExists, name, open, listNode(elements...), closeP)
}

func (p *parser) parseIfNotExistsOpt() *Tree {
	if !p.atKeyword("IF") {
		return empty()
	}
	ifKw := tokenNode(p.buf.advance())
	not := p.expect(syntax.NOT)
	exists := p.expect(syntax.EXISTS)
	return listNode(ifKw, not, exists)
}

func (p *parser) parseTableElement() *Tree {
	if p.buf.at(syntax.LIKE) {
		return p.parseLikeClause()
	}
	return p.parseColumnDefinition()
}

func (p *parser) parseColumnDefinition() *Tree {
	name := tokenNode(p.expectToken(syntax.Identifier))
	typ := p.parseType()
	notNullOpt := empty()
	if p.buf.at(syntax.NOT) {
		not := tokenNode(p.buf.advance())
		null := p.expect(syntax.NULL)
		notNullOpt = listNode(not, null)
	}
	commentOpt := empty()
	if p.atKeyword("COMMENT") {
		comment := tokenNode(p.buf.advance())
		text := tokenNode(p.expectToken(syntax.StringLit))
		commentOpt = listNode(comment, text)
	}
	return node(KindColumnDefinition, name, typ, notNullOpt, commentOpt)
}

func (p *parser) parseLikeClause() *Tree {
	like := tokenNode(p.buf.advance())
	name := p.parseQualifiedName()
	optionOpt := empty()
	if p.atKeyword("INCLUDING") || p.atKeyword("EXCLUDING") {
		kind := tokenNode(p.buf.advance())
		properties := p.expectKeyword("PROPERTIES")
		optionOpt = listNode(kind, properties)
	}
	return node(KindLikeClause, like, name, optionOpt)
}

func (p *parser) parseCreateView() *Tree {
	create := tokenNode(p.buf.advance())
	orReplaceOpt := empty()
	if p.buf.at(syntax.OR) {
		or := tokenNode(p.buf.advance())
		replace := p.expectKeyword("REPLACE")
		orReplaceOpt = listNode(or, replace)
	}
	view := p.expectKeyword("VIEW")
	name := p.parseQualifiedName()
	as := p.expect(syntax.AS)
	query := p.parseQuery()
	return node(KindCreateView, create, orReplaceOpt, view, name, as, query)
}

// parseCreateSchema intentionally does not implement the full CREATE SCHEMA
// grammar: schema-level DDL carries no bearing on expression or query
// shape, and the production this replaces used to panic outright on this
// path. It now reports a proper syntax error instead of crashing, leaving
// the tokens for the entrypoint's trailing-input handling to account for.
func (p *parser) parseCreateSchema() *Tree {
	cur := p.buf.current()
	return newSyntaxError(cur.Range, "CREATE SCHEMA is not supported")
}

func (p *parser) parseCreateRole() *Tree {
	create := tokenNode(p.buf.advance())
	role := p.expectKeyword("ROLE")
	name := tokenNode(p.expectToken(syntax.Identifier))
	withAdminOpt := empty()
	if p.buf.at(syntax.WITH) {
		with := tokenNode(p.buf.advance())
		admin := p.expectKeyword("ADMIN")
		grantor := tokenNode(p.expectToken(syntax.Identifier))
		withAdminOpt = node(KindWithAdmin, with, admin, grantor)
	}
	return node(KindCreateRole, create, role, name, withAdminOpt)
}

func (p *parser) parseInsertInto() *Tree {
	insert := tokenNode(p.buf.advance())
	into := p.expect(syntax.INTO)
	name := p.parseQualifiedName()
	columnsOpt := empty()
	if p.buf.at(syntax.OpenParen) {
		columnsOpt = p.parseParenIdentifierList()
	}
	query := p.parseQuery()
	return node(KindInsertInto, insert, into, name, columnsOpt, query)
}

func (p *parser) parseDelete() *Tree {
	del := tokenNode(p.buf.advance())
	from := p.expect(syntax.FROM)
	name := p.parseQualifiedName()
	whereOpt, wherePred := empty(), empty()
	if p.buf.at(syntax.WHERE) {
		whereOpt = tokenNode(p.buf.advance())
		wherePred = p.parseExpression()
	}
	return node(KindDelete, del, from, name, whereOpt, wherePred)
}
