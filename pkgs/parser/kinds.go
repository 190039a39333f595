package parser

// Kind discriminates every ParseTree variant: the four structural shapes
// plus one entry per grammar production. The boilerplate here is
// intentionally mechanical - see tree.go for why a single generic Tree
// representation, driven by this table, stands in for ~80 hand-written
// struct types.
type Kind int

const (
	KindEmpty Kind = iota
	KindToken
	KindList
	KindError

	KindEntrypoint
	KindQuery
	KindWith
	KindNamedQuery
	KindQueryNoWith
	KindQuerySpecification
	KindSetOperation
	KindValues
	KindTable
	KindGroupBy
	KindSimpleGroupBy
	KindRollup
	KindCube
	KindGroupingSets
	KindSortItem
	KindLimit
	KindOrderBy
	KindSelectAll
	KindQualifiedSelectAll
	KindSingleColumn
	KindJoinRelation
	KindJoinOn
	KindJoinUsing
	KindSampledRelation
	KindAliasedRelation
	KindTableName
	KindUnnest
	KindLateral
	KindParenthesizedRelation
	KindRelationOrQuery
	KindExpressionOrQuery
	KindBinaryExpression
	KindUnaryExpression
	KindLogicalNot
	KindBetween
	KindInList
	KindInSubquery
	KindLike
	KindNullPredicate
	KindDistinctFrom
	KindQuantifiedComparison
	KindCast
	KindExtract
	KindSubstring
	KindPositionExpr
	KindNormalize
	KindSubscript
	KindDereference
	KindFunctionCall
	KindLambda
	KindRowConstructor
	KindArrayConstructor
	KindAtTimeZone
	KindInterval
	KindSimpleCase
	KindSearchedCase
	KindWhenClause
	KindLiteral
	KindNullLiteral
	KindBooleanLiteral
	KindIdentifier
	KindQualifiedName
	KindParenthesizedExpression
	KindExists
	KindWindow
	KindWindowFrame
	KindFrameBound
	KindNamedType
	KindArrayType
	KindMapType
	KindRowType
	KindRowField
	KindIntervalType
	KindCreateTable
	KindCreateTableAsSelect
	KindColumnDefinition
	KindLikeClause
	KindCreateView
	KindCreateSchema
	KindCreateRole
	KindWithAdmin
	KindInsertInto
	KindDelete

	kindCount
)

var kindNames = [kindCount]string{
	KindEmpty: "Empty", KindToken: "Token", KindList: "List", KindError: "Error",
	KindEntrypoint: "Entrypoint", KindQuery: "Query", KindWith: "With",
	KindNamedQuery: "NamedQuery", KindQueryNoWith: "QueryNoWith",
	KindQuerySpecification: "QuerySpecification", KindSetOperation: "SetOperation",
	KindValues: "Values", KindTable: "Table", KindGroupBy: "GroupBy",
	KindSimpleGroupBy: "SimpleGroupBy", KindRollup: "Rollup", KindCube: "Cube",
	KindGroupingSets: "GroupingSets", KindSortItem: "SortItem", KindLimit: "Limit",
	KindOrderBy: "OrderBy", KindSelectAll: "SelectAll",
	KindQualifiedSelectAll: "QualifiedSelectAll", KindSingleColumn: "SingleColumn",
	KindJoinRelation: "JoinRelation", KindJoinOn: "JoinOn", KindJoinUsing: "JoinUsing",
	KindSampledRelation: "SampledRelation", KindAliasedRelation: "AliasedRelation",
	KindTableName: "TableName", KindUnnest: "Unnest", KindLateral: "Lateral",
	KindParenthesizedRelation: "ParenthesizedRelation", KindRelationOrQuery: "RelationOrQuery",
	KindExpressionOrQuery: "ExpressionOrQuery", KindBinaryExpression: "BinaryExpression",
	KindUnaryExpression: "UnaryExpression", KindLogicalNot: "LogicalNot",
	KindBetween: "Between", KindInList: "InList", KindInSubquery: "InSubquery",
	KindLike: "Like", KindNullPredicate: "NullPredicate", KindDistinctFrom: "DistinctFrom",
	KindQuantifiedComparison: "QuantifiedComparison", KindCast: "Cast",
	KindExtract: "Extract", KindSubstring: "Substring", KindPositionExpr: "Position",
	KindNormalize: "Normalize", KindSubscript: "Subscript", KindDereference: "Dereference",
	KindFunctionCall: "FunctionCall", KindLambda: "Lambda",
	KindRowConstructor: "RowConstructor", KindArrayConstructor: "ArrayConstructor",
	KindAtTimeZone: "AtTimeZone", KindInterval: "Interval", KindSimpleCase: "SimpleCase",
	KindSearchedCase: "SearchedCase", KindWhenClause: "WhenClause", KindLiteral: "Literal",
	KindNullLiteral: "NullLiteral", KindBooleanLiteral: "BooleanLiteral",
	KindIdentifier: "Identifier", KindQualifiedName: "QualifiedName",
	KindParenthesizedExpression: "ParenthesizedExpression", KindExists: "Exists",
	KindWindow: "Window", KindWindowFrame: "WindowFrame", KindFrameBound: "FrameBound",
	KindNamedType: "NamedType", KindArrayType: "ArrayType", KindMapType: "MapType",
	KindRowType: "RowType", KindRowField: "RowField", KindIntervalType: "IntervalType",
	KindCreateTable: "CreateTable", KindCreateTableAsSelect: "CreateTableAsSelect",
	KindColumnDefinition: "ColumnDefinition", KindLikeClause: "LikeClause",
	KindCreateView: "CreateView", KindCreateSchema: "CreateSchema",
	KindCreateRole: "CreateRole", KindWithAdmin: "WithAdmin",
	KindInsertInto: "InsertInto", KindDelete: "Delete",
}

func (k Kind) String() string {
	if k < 0 || k >= kindCount {
		return "Kind(?)"
	}
	return kindNames[k]
}

// fieldNames gives the ordered child-field names for each grammar variant,
// the compact schema SPEC_FULL.md allows generating the ~100-variant
// boilerplate from. Structural variants (Empty/Token/List/Error) are not
// listed here; they are handled directly by Tree's own fields.
var fieldNames = map[Kind][]string{
	KindEntrypoint:              {"bof", "rule", "eof"},
	KindQuery:                   {"with", "queryNoWith"},
	KindWith:                    {"with", "recursiveOpt", "namedQueries"},
	KindNamedQuery:              {"name", "columnsOpt", "as", "openParen", "query", "closeParen"},
	KindQueryNoWith:             {"queryPrimary", "orderByOpt", "limitOpt"},
	KindQuerySpecification:      {"selectKw", "setQuantifierOpt", "selectItems", "from", "relations", "whereKw", "wherePredicate", "group", "by", "groupBy", "having", "havingPredicate"},
	KindSetOperation:            {"left", "op", "setQuantifierOpt", "right"},
	KindValues:                  {"values", "rows"},
	KindTable:                   {"table", "name"},
	KindGroupBy:                 {"elements"},
	KindSimpleGroupBy:           {"expression"},
	KindRollup:                  {"rollup", "openParen", "expressions", "closeParen"},
	KindCube:                    {"cube", "openParen", "expressions", "closeParen"},
	KindGroupingSets:            {"grouping", "sets", "openParen", "groups", "closeParen"},
	KindSortItem:                {"expression", "ordering", "nulls", "first"},
	KindLimit:                   {"limit", "value"},
	KindOrderBy:                 {"order", "by", "items"},
	KindSelectAll:               {"asterisk"},
	KindQualifiedSelectAll:      {"qualifier", "period", "asterisk"},
	KindSingleColumn:            {"expression", "asOpt", "aliasOpt"},
	KindJoinRelation:            {"left", "joinType", "join", "right", "criteria"},
	KindJoinOn:                  {"on", "predicate"},
	KindJoinUsing:               {"using", "openParen", "columns", "closeParen"},
	KindSampledRelation:         {"relation", "tablesample", "sampleType", "openParen", "percentage", "closeParen"},
	KindAliasedRelation:         {"relation", "asOpt", "alias", "columnsOpt"},
	KindTableName:               {"name"},
	KindUnnest:                  {"unnest", "openParen", "expressions", "closeParen", "withOrdinality"},
	KindLateral:                 {"lateral", "openParen", "query", "closeParen"},
	KindParenthesizedRelation:   {"openParen", "relation", "closeParen"},
	KindRelationOrQuery:         {"openParen", "body", "closeParen"},
	KindExpressionOrQuery:       {"openParen", "body", "closeParen"},
	KindBinaryExpression:        {"left", "operator", "right"},
	KindUnaryExpression:         {"operator", "operand"},
	KindLogicalNot:              {"not", "operand"},
	KindBetween:                 {"value", "notOpt", "between", "low", "and", "high"},
	KindInList:                  {"value", "notOpt", "in", "openParen", "elements", "closeParen"},
	KindInSubquery:              {"value", "notOpt", "in", "openParen", "query", "closeParen"},
	KindLike:                    {"value", "notOpt", "like", "pattern", "escapeOpt", "escapeValue"},
	KindNullPredicate:           {"value", "is", "notOpt", "null"},
	KindDistinctFrom:            {"left", "is", "notOpt", "distinct", "from", "right"},
	KindQuantifiedComparison:    {"left", "operator", "quantifier", "openParen", "query", "closeParen"},
	KindCast:                    {"cast", "openParen", "expression", "as", "targetType", "closeParen"},
	KindExtract:                 {"extract", "openParen", "field", "from", "expression", "closeParen"},
	KindSubstring:               {"substring", "openParen", "value", "from", "start", "forOpt", "length", "closeParen"},
	KindPositionExpr:            {"position", "openParen", "needle", "in", "haystack", "closeParen"},
	KindNormalize:               {"normalize", "openParen", "value", "commaOpt", "formOpt", "closeParen"},
	KindSubscript:               {"value", "openSquare", "index", "closeSquare"},
	KindDereference:             {"base", "period", "field"},
	KindFunctionCall:            {"name", "openParen", "setQuantifierOpt", "arguments", "orderByOpt", "closeParen", "filterOpt", "nullTreatmentOpt", "overOpt"},
	KindLambda:                  {"parameters", "arrow", "body"},
	KindRowConstructor:          {"row", "openParen", "elements", "closeParen"},
	KindArrayConstructor:        {"array", "openSquare", "elements", "closeSquare"},
	KindAtTimeZone:              {"value", "at", "time", "zone", "specifier"},
	KindInterval:                {"interval", "signOpt", "value", "from", "toOpt", "to"},
	KindSimpleCase:              {"case", "value", "whenClauses", "elseOpt", "elseValue", "end"},
	KindSearchedCase:            {"case", "whenClauses", "elseOpt", "elseValue", "end"},
	KindWhenClause:              {"when", "condition", "then", "result"},
	KindLiteral:                 {"token"},
	KindNullLiteral:             {"null"},
	KindBooleanLiteral:          {"token"},
	KindIdentifier:              {"token"},
	KindQualifiedName:           {"parts"},
	KindParenthesizedExpression: {"openParen", "expression", "closeParen"},
	KindExists:                  {"exists", "openParen", "query", "closeParen"},
	KindWindow:                  {"over", "openParen", "partitionOpt", "by", "partitionBy", "orderByOpt", "frameOpt", "closeParen"},
	KindWindowFrame:             {"frameType", "betweenOpt", "start", "andOpt", "end"},
	KindFrameBound:              {"boundType", "offsetOpt"},
	KindNamedType:               {"name", "parametersOpt"},
	KindArrayType:               {"array", "openAngle", "element", "closeAngle"},
	KindMapType:                 {"mapKw", "openAngle", "key", "comma", "value", "closeAngle"},
	KindRowType:                 {"row", "openParen", "fields", "closeParen"},
	KindRowField:                {"typ", "nameOpt"},
	KindIntervalType:            {"interval", "fromField", "toOpt", "toField"},
	KindCreateTable:             {"create", "table", "ifNotExistsOpt", "name", "openParen", "elements", "closeParen"},
	KindCreateTableAsSelect:     {"create", "table", "ifNotExistsOpt", "name", "as", "query", "withDataOpt"},
	KindColumnDefinition:        {"name", "typ", "notNullOpt", "commentOpt"},
	KindLikeClause:              {"like", "name", "optionOpt"},
	KindCreateView:              {"create", "orReplaceOpt", "view", "name", "as", "query"},
	KindCreateSchema:            {},
	KindCreateRole:              {"create", "role", "name", "withAdminOpt"},
	KindWithAdmin:               {"with", "admin", "grantor"},
	KindInsertInto:              {"insert", "into", "name", "columnsOpt", "query"},
	KindDelete:                  {"delete", "from", "name", "whereOpt", "wherePredicate"},
}
