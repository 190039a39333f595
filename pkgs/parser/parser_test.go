package parser

import (
	"testing"

	"github.com/prestosql/prestocst/pkgs/syntax"
)

func mustParseQuery(t *testing.T, source string) *Tree {
	t.Helper()
	tree, errs := ParseQuery(source)
	if len(errs) != 0 {
		t.Fatalf("parsing %q: unexpected errors: %+v", source, errs)
	}
	return tree
}

func TestParseSimpleSelect(t *testing.T) {
	tree := mustParseQuery(t, "SELECT a, b FROM t WHERE a > 1")
	query := tree.Field("rule")
	if !query.Is(KindQuery) {
		t.Fatalf("expected Query, got %v", query.Kind)
	}
	spec := query.Field("queryNoWith").Field("queryPrimary")
	if !spec.Is(KindQuerySpecification) {
		t.Fatalf("expected QuerySpecification, got %v", spec.Kind)
	}
	items := spec.Field("selectItems").Children()
	if len(items) != 2 {
		t.Fatalf("expected 2 select items, got %d", len(items))
	}
	if spec.Field("whereKw").Is(KindEmpty) {
		t.Fatalf("expected a WHERE clause")
	}
}

func TestParseSelectStar(t *testing.T) {
	tree := mustParseQuery(t, "SELECT * FROM t")
	spec := tree.Field("rule").Field("queryNoWith").Field("queryPrimary")
	items := spec.Field("selectItems").Children()
	if len(items) != 1 || !items[0].Is(KindSelectAll) {
		t.Fatalf("expected a single SelectAll item, got %+v", items)
	}
}

func TestParseJoinWithNaturalEatsNaturalNotCross(t *testing.T) {
	tree := mustParseQuery(t, "SELECT * FROM a NATURAL LEFT JOIN b")
	spec := tree.Field("rule").Field("queryNoWith").Field("queryPrimary")
	relations := spec.Field("relations").Children()
	join := relations[0]
	if !join.Is(KindJoinRelation) {
		t.Fatalf("expected JoinRelation, got %v", join.Kind)
	}
	joinType := join.Field("joinType")
	naturalTok, ok := joinType.Children()[0].FirstToken()
	if !ok || naturalTok.Kind != syntax.NATURAL {
		t.Fatalf("expected NATURAL to be consumed as part of the join type, got %+v", joinType)
	}
	leftTok, ok := joinType.Children()[1].FirstToken()
	if !ok || leftTok.Kind != syntax.LEFT {
		t.Fatalf("expected LEFT to follow NATURAL, got %+v", joinType.Children()[1])
	}
}

func TestParseInListSingleElementIsStillInList(t *testing.T) {
	tree := mustParseQuery(t, "SELECT * FROM t WHERE a IN (1)")
	spec := tree.Field("rule").Field("queryNoWith").Field("queryPrimary")
	pred := spec.Field("wherePredicate")
	if !pred.Is(KindInList) {
		t.Fatalf("expected InList, got %v", pred.Kind)
	}
	elements := pred.Field("elements").Children()
	if len(elements) != 1 {
		t.Fatalf("expected exactly one element, got %d", len(elements))
	}
}

func TestParseParenDisambiguation(t *testing.T) {
	cases := []struct {
		source string
		want   Kind
	}{
		{"SELECT (1)", KindParenthesizedExpression},
		{"SELECT (1, 2)", KindRowConstructor},
		{"SELECT (SELECT 1)", KindExpressionOrQuery},
	}
	for _, c := range cases {
		tree := mustParseQuery(t, c.source)
		spec := tree.Field("rule").Field("queryNoWith").Field("queryPrimary")
		expr := spec.Field("selectItems").Children()[0].Field("expression")
		if !expr.Is(c.want) {
			t.Errorf("%q: expected %v, got %v", c.source, c.want, expr.Kind)
		}
	}
}

func TestParseAllSomeAnyQuantifiedComparison(t *testing.T) {
	for _, quant := range []string{"ALL", "SOME", "ANY"} {
		source := "SELECT * FROM t WHERE a = " + quant + " (SELECT b FROM u)"
		tree := mustParseQuery(t, source)
		spec := tree.Field("rule").Field("queryNoWith").Field("queryPrimary")
		pred := spec.Field("wherePredicate")
		if !pred.Is(KindQuantifiedComparison) {
			t.Errorf("%q: expected QuantifiedComparison, got %v", source, pred.Kind)
		}
	}
}

func TestParseBinaryExpressionPrecedence(t *testing.T) {
	tree := mustParseQuery(t, "SELECT 1 + 2 * 3")
	expr := tree.Field("rule").Field("queryNoWith").Field("queryPrimary").
		Field("selectItems").Children()[0].Field("expression")
	if !expr.Is(KindBinaryExpression) {
		t.Fatalf("expected BinaryExpression, got %v", expr.Kind)
	}
	op, _ := expr.Field("operator").FirstToken()
	if op.Kind != syntax.Plus {
		t.Fatalf("expected top-level operator to be +, got %v", op.Kind)
	}
	right := expr.Field("right")
	if !right.Is(KindBinaryExpression) {
		t.Fatalf("expected right side to be the multiplication, got %v", right.Kind)
	}
}

func TestParseFunctionCallWithWindow(t *testing.T) {
	tree := mustParseQuery(t, "SELECT row_number() OVER (PARTITION BY a ORDER BY b) FROM t")
	expr := tree.Field("rule").Field("queryNoWith").Field("queryPrimary").
		Field("selectItems").Children()[0].Field("expression")
	if !expr.Is(KindFunctionCall) {
		t.Fatalf("expected FunctionCall, got %v", expr.Kind)
	}
	over := expr.Field("overOpt")
	if !over.Is(KindWindow) {
		t.Fatalf("expected Window, got %v", over.Kind)
	}
}

func TestParseCreateTable(t *testing.T) {
	tree, errs := ParseStatement("CREATE TABLE t (a INTEGER, b VARCHAR(10) NOT NULL)")
	if len(errs) != 0 {
		t.Fatalf("unexpected errors: %+v", errs)
	}
	stmt := tree.Field("rule")
	if !stmt.Is(KindCreateTable) {
		t.Fatalf("expected CreateTable, got %v", stmt.Kind)
	}
	elements := stmt.Field("elements").Children()
	if len(elements) != 2 {
		t.Fatalf("expected 2 column definitions, got %d", len(elements))
	}
}

func TestParseCreateTableAsSelect(t *testing.T) {
	tree, errs := ParseStatement("CREATE TABLE t AS SELECT * FROM u")
	if len(errs) != 0 {
		t.Fatalf("unexpected errors: %+v", errs)
	}
	if !tree.Field("rule").Is(KindCreateTableAsSelect) {
		t.Fatalf("expected CreateTableAsSelect, got %v", tree.Field("rule").Kind)
	}
}

func TestParseInsertIntoAndDelete(t *testing.T) {
	tree, errs := ParseStatement("INSERT INTO t SELECT * FROM u")
	if len(errs) != 0 {
		t.Fatalf("unexpected errors: %+v", errs)
	}
	if !tree.Field("rule").Is(KindInsertInto) {
		t.Fatalf("expected InsertInto, got %v", tree.Field("rule").Kind)
	}

	tree, errs = ParseStatement("DELETE FROM t WHERE a = 1")
	if len(errs) != 0 {
		t.Fatalf("unexpected errors: %+v", errs)
	}
	if !tree.Field("rule").Is(KindDelete) {
		t.Fatalf("expected Delete, got %v", tree.Field("rule").Kind)
	}
}

func TestParseCreateSchemaReportsErrorNotPanic(t *testing.T) {
	tree, errs := ParseStatement("CREATE SCHEMA s")
	if tree == nil {
		t.Fatalf("expected a tree even for an unsupported statement")
	}
	if len(errs) == 0 {
		t.Fatalf("expected at least one error for CREATE SCHEMA")
	}
}

func TestParseMalformedInputYieldsErrorNodeNotPanic(t *testing.T) {
	tree, errs := ParseStatement("SELECT FROM")
	if tree == nil {
		t.Fatalf("expected a tree even for malformed input")
	}
	if len(errs) == 0 {
		t.Fatalf("expected at least one diagnostic for malformed input")
	}
}

func TestParseUnknownStatementStartYieldsError(t *testing.T) {
	_, errs := ParseStatement("FOOBAR 1 2 3")
	if len(errs) == 0 {
		t.Fatalf("expected an error for an unrecognized statement start")
	}
}

func TestParseExpressionEntryPoint(t *testing.T) {
	tree, errs := ParseExpression("1 + 2")
	if len(errs) != 0 {
		t.Fatalf("unexpected errors: %+v", errs)
	}
	if !tree.Field("rule").Is(KindBinaryExpression) {
		t.Fatalf("expected BinaryExpression, got %v", tree.Field("rule").Kind)
	}
}

func TestParseTypeEntryPoint(t *testing.T) {
	cases := []struct {
		source string
		want   Kind
	}{
		{"VARCHAR(10)", KindNamedType},
		{"ARRAY<INTEGER>", KindArrayType},
		{"MAP<VARCHAR, INTEGER>", KindMapType},
		{"ROW(a INTEGER, b VARCHAR)", KindRowType},
	}
	for _, c := range cases {
		tree, errs := ParseType(c.source)
		if len(errs) != 0 {
			t.Errorf("%q: unexpected errors: %+v", c.source, errs)
		}
		if !tree.Field("rule").Is(c.want) {
			t.Errorf("%q: expected %v, got %v", c.source, c.want, tree.Field("rule").Kind)
		}
	}
}

func TestTreeFullRangeIncludesTrivia(t *testing.T) {
	tree := mustParseQuery(t, "SELECT /*c*/ 1")
	spec := tree.Field("rule").Field("queryNoWith").Field("queryPrimary")
	if spec.FullRange().IsNone() {
		t.Fatalf("expected a non-empty full range")
	}

	// A comment after the last token lies inside FullRange but outside Range.
	trailing := mustParseQuery(t, "SELECT 1 /*c*/")
	spec = trailing.Field("rule").Field("queryNoWith").Field("queryPrimary")
	if got, want := spec.Range().End, (syntax.Position{Line: 0, Column: 8}); got != want {
		t.Fatalf("expected Range to end at %v, got %v", want, got)
	}
	if got, want := spec.FullRange().End, (syntax.Position{Line: 0, Column: 14}); got != want {
		t.Fatalf("expected FullRange to end after the trailing comment at %v, got %v", want, got)
	}
}

func TestVisitPreOrderCanPrune(t *testing.T) {
	tree := mustParseQuery(t, "SELECT a + b FROM t")
	var visited int
	var sawBinary, sawIdentifier bool
	VisitPreOrder(tree, func(n *Tree) bool {
		visited++
		if n.Is(KindBinaryExpression) {
			sawBinary = true
		}
		if n.Is(KindIdentifier) {
			sawIdentifier = true
		}
		return !n.Is(KindBinaryExpression)
	})
	if visited == 0 {
		t.Fatalf("expected at least one visited node")
	}
	if !sawBinary {
		t.Fatalf("expected the BinaryExpression itself to be visited")
	}
	if sawIdentifier {
		t.Fatalf("expected the operands a and b under the pruned BinaryExpression to be skipped")
	}
}

func TestFindAllLocatesEveryIdentifier(t *testing.T) {
	tree := mustParseQuery(t, "SELECT a, b, c FROM t")
	idents := FindAll(tree, func(n *Tree) bool { return n.Is(KindIdentifier) })
	if len(idents) < 3 {
		t.Fatalf("expected at least 3 identifiers, got %d", len(idents))
	}
}

func TestParseLimitAfterBareRelationIsNotConsumedAsAlias(t *testing.T) {
	tree := mustParseQuery(t, "SELECT * FROM t LIMIT 5")
	queryNoWith := tree.Field("rule").Field("queryNoWith")
	spec := queryNoWith.Field("queryPrimary")
	relations := spec.Field("relations").Children()
	if !relations[0].Is(KindTableName) {
		t.Fatalf("expected LIMIT to stay out of the relation, got %v", relations[0].Kind)
	}
	limit := queryNoWith.Field("limitOpt")
	if !limit.Is(KindLimit) {
		t.Fatalf("expected a Limit clause, got %v", limit.Kind)
	}
	value, ok := limit.Field("value").FirstToken()
	if !ok || value.Text != "5" {
		t.Fatalf("expected LIMIT value 5, got %+v", limit.Field("value"))
	}
}

func TestParseLimitAllIsNotConsumedAsAlias(t *testing.T) {
	tree := mustParseQuery(t, "SELECT * FROM t LIMIT ALL")
	limit := tree.Field("rule").Field("queryNoWith").Field("limitOpt")
	if !limit.Is(KindLimit) {
		t.Fatalf("expected a Limit clause, got %v", limit.Kind)
	}
}

func TestParseBareIdentifierAliasOnRelation(t *testing.T) {
	tree := mustParseQuery(t, "SELECT * FROM t x")
	spec := tree.Field("rule").Field("queryNoWith").Field("queryPrimary")
	relation := spec.Field("relations").Children()[0]
	if !relation.Is(KindAliasedRelation) {
		t.Fatalf("expected AliasedRelation, got %v", relation.Kind)
	}
	alias, ok := relation.Field("alias").FirstToken()
	if !ok || alias.Text != "x" {
		t.Fatalf("expected alias 'x', got %+v", relation.Field("alias"))
	}
}

func TestParseTablesampleAfterAlias(t *testing.T) {
	tree := mustParseQuery(t, "SELECT * FROM t AS x TABLESAMPLE BERNOULLI(50)")
	spec := tree.Field("rule").Field("queryNoWith").Field("queryPrimary")
	relation := spec.Field("relations").Children()[0]
	if !relation.Is(KindSampledRelation) {
		t.Fatalf("expected SampledRelation, got %v", relation.Kind)
	}
	aliased := relation.Field("relation")
	if !aliased.Is(KindAliasedRelation) {
		t.Fatalf("expected the sampled relation to wrap an AliasedRelation, got %v", aliased.Kind)
	}
	alias, ok := aliased.Field("alias").FirstToken()
	if !ok || alias.Text != "x" {
		t.Fatalf("expected alias 'x' to survive under TABLESAMPLE, got %+v", aliased.Field("alias"))
	}
}

func TestParseTablesampleWithoutAlias(t *testing.T) {
	tree := mustParseQuery(t, "SELECT * FROM t TABLESAMPLE SYSTEM(50)")
	spec := tree.Field("rule").Field("queryNoWith").Field("queryPrimary")
	relation := spec.Field("relations").Children()[0]
	if !relation.Is(KindSampledRelation) {
		t.Fatalf("expected SampledRelation, got %v", relation.Kind)
	}
	if !relation.Field("relation").Is(KindTableName) {
		t.Fatalf("expected no alias to be inferred, got %v", relation.Field("relation").Kind)
	}
}

func TestParseConcatBindsLooserThanArithmetic(t *testing.T) {
	tree := mustParseQuery(t, "SELECT a || b + c")
	expr := tree.Field("rule").Field("queryNoWith").Field("queryPrimary").
		Field("selectItems").Children()[0].Field("expression")
	if !expr.Is(KindBinaryExpression) {
		t.Fatalf("expected BinaryExpression, got %v", expr.Kind)
	}
	op, _ := expr.Field("operator").FirstToken()
	if op.Kind != syntax.BarBar {
		t.Fatalf("expected the outermost operator to be ||, got %v", op.Kind)
	}
	right := expr.Field("right")
	if !right.Is(KindBinaryExpression) {
		t.Fatalf("expected b + c to nest under the right side of ||, got %v", right.Kind)
	}
	rightOp, _ := right.Field("operator").FirstToken()
	if rightOp.Kind != syntax.Plus {
		t.Fatalf("expected the nested operator to be +, got %v", rightOp.Kind)
	}
}

func TestParseArithmeticBindsTighterThanConcatOnLeft(t *testing.T) {
	tree := mustParseQuery(t, "SELECT a + b || c")
	expr := tree.Field("rule").Field("queryNoWith").Field("queryPrimary").
		Field("selectItems").Children()[0].Field("expression")
	if !expr.Is(KindBinaryExpression) {
		t.Fatalf("expected BinaryExpression, got %v", expr.Kind)
	}
	op, _ := expr.Field("operator").FirstToken()
	if op.Kind != syntax.BarBar {
		t.Fatalf("expected the outermost operator to be ||, got %v", op.Kind)
	}
	left := expr.Field("left")
	if !left.Is(KindBinaryExpression) {
		t.Fatalf("expected a + b to nest under the left side of ||, got %v", left.Kind)
	}
	leftOp, _ := left.Field("operator").FirstToken()
	if leftOp.Kind != syntax.Plus {
		t.Fatalf("expected the nested operator to be +, got %v", leftOp.Kind)
	}
}
