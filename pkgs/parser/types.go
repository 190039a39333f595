package parser

import "github.com/prestosql/prestocst/pkgs/syntax"

// parseType parses a single SQL type reference: a built-in scalar type, a
// parametrized named type (DECIMAL(p,s), VARCHAR(n)), ARRAY<T>, MAP<K,V>,
// ROW(name T, ...), or an INTERVAL type.
func (p *parser) parseType() *Tree {
	switch {
	case p.atKeyword("ARRAY"):
		return p.parseArrayType()
	case p.atKeyword("MAP"):
		return p.parseMapType()
	case p.atKeyword("ROW"):
		return p.parseRowType()
	case p.atKeyword("INTERVAL"):
		return p.parseIntervalType()
	case isScalarTypeKind(p.buf.current().Kind):
		return p.parseNamedType()
	case p.buf.at(syntax.Identifier):
		return p.parseNamedType()
	default:
		cur := p.buf.current()
		return newSyntaxError(cur.Range, "expected a type, found "+cur.Kind.String())
	}
}

func isScalarTypeKind(k syntax.TokenKind) bool {
	switch k {
	case syntax.BOOLEAN, syntax.TINYINT, syntax.SMALLINT, syntax.INTEGER, syntax.BIGINT,
		syntax.REAL, syntax.DECIMAL, syntax.VARCHAR, syntax.VARBINARY,
		syntax.DoublePrecision, syntax.TimeWithTimeZone, syntax.TimestampWithTimeZone:
		return true
	default:
		return false
	}
}

func (p *parser) parseNamedType() *Tree {
	name := tokenNode(p.buf.advance())
	parametersOpt := empty()
	if p.buf.at(syntax.OpenParen) {
		open := tokenNode(p.buf.advance())
		var args []*Tree
		args = append(args, tokenNode(p.expectToken(syntax.Integer)))
		for p.buf.at(syntax.Comma) {
			p.buf.advance()
			args = append(args, tokenNode(p.expectToken(syntax.Integer)))
		}
		closeP := p.expect(syntax.CloseParen)
		parametersOpt = listNode(open, listNode(args...), closeP)
	}
	return node(KindNamedType, name, parametersOpt)
}

func (p *parser) parseArrayType() *Tree {
	arrayKw := tokenNode(p.buf.advance())
	openAngle := p.expect(syntax.OpenAngle)
	element := p.parseType()
	closeAngle := p.expect(syntax.CloseAngle)
	return node(KindArrayType, arrayKw, openAngle, element, closeAngle)
}

func (p *parser) parseMapType() *Tree {
	mapKw := tokenNode(p.buf.advance())
	openAngle := p.expect(syntax.OpenAngle)
	key := p.parseType()
	comma := p.expect(syntax.Comma)
	value := p.parseType()
	closeAngle := p.expect(syntax.CloseAngle)
	return node(KindMapType, mapKw, openAngle, key, comma, value, closeAngle)
}

func (p *parser) parseRowType() *Tree {
	row := tokenNode(p.buf.advance())
	open := p.expect(syntax.OpenParen)
	var fields []*Tree
	fields = append(fields, p.parseRowField())
	for p.buf.at(syntax.Comma) {
		p.buf.advance()
		fields = append(fields, p.parseRowField())
	}
	closeP := p.expect(syntax.CloseParen)
	return node(KindRowType, row, open, listNode(fields...), closeP)
}

// parseRowField parses one "name type" pair of a ROW type. A leading
// Identifier token is always taken as the field name: an unnamed field whose
// type is itself a bare identifier (a user-defined type name) is not
// distinguishable from a named field without semantic type resolution. A
// field without a name is accepted only when its type starts with a token
// that is not an Identifier (INTEGER, VARCHAR, DOUBLE PRECISION, ...).
func (p *parser) parseRowField() *Tree {
	nameOpt := empty()
	if p.buf.at(syntax.Identifier) {
		nameOpt = tokenNode(p.buf.advance())
	}
	typ := p.parseType()
	return node(KindRowField, typ, nameOpt)
}

func (p *parser) parseIntervalType() *Tree {
	interval := tokenNode(p.buf.advance())
	fromField := tokenNode(p.expectToken(syntax.Identifier))
	toOpt, toField := empty(), empty()
	if p.atKeyword("TO") {
		toOpt = tokenNode(p.buf.advance())
		toField = tokenNode(p.expectToken(syntax.Identifier))
	}
	return node(KindIntervalType, interval, fromField, toOpt, toField)
}
