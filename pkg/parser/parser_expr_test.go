package parser_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/schemalens/schemalens/pkg/ast"
)

// exprOf parses "SELECT <expr>" and returns the select item expression.
func exprOf(t *testing.T, expr string) ast.Expr {
	t.Helper()
	stmt := parseSelect(t, "SELECT "+expr)
	require.Len(t, stmt.Columns, 1)
	return stmt.Columns[0].Expr
}

func TestParseLiterals(t *testing.T) {
	tests := []struct {
		input string
		want  ast.Expr
	}{
		{"42", ast.IntLit("42")},
		{"3.14", ast.FloatLit("3.14")},
		{"'hello'", ast.StringLit("hello")},
		{"TRUE", ast.BoolLit(true)},
		{"FALSE", ast.BoolLit(false)},
		{"NULL", ast.NullLit()},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.want, exprOf(t, tt.input))
		})
	}
}

func TestParseArithmeticPrecedence(t *testing.T) {
	// Multiplication binds tighter than addition.
	expr := exprOf(t, "1 + 2 * 3")

	want := &ast.BinaryExpr{
		Left: ast.IntLit("1"),
		Op:   ast.OpPlus,
		Right: &ast.BinaryExpr{
			Left:  ast.IntLit("2"),
			Op:    ast.OpMultiply,
			Right: ast.IntLit("3"),
		},
	}
	assert.Equal(t, want, expr)
}

func TestParseGroupedExpression(t *testing.T) {
	expr := exprOf(t, "(1 + 2) * 3")

	want := &ast.BinaryExpr{
		Left: &ast.BinaryExpr{
			Left:  ast.IntLit("1"),
			Op:    ast.OpPlus,
			Right: ast.IntLit("2"),
		},
		Op:    ast.OpMultiply,
		Right: ast.IntLit("3"),
	}
	assert.Equal(t, want, expr)
}

func TestParseLogicalPrecedence(t *testing.T) {
	// AND binds tighter than OR; comparisons bind tighter than AND.
	expr := exprOf(t, "a OR b = 1 AND c = 2")

	or, ok := expr.(*ast.BinaryExpr)
	require.True(t, ok)
	assert.Equal(t, ast.OpOr, or.Op)
	assert.Equal(t, ast.Column("a"), or.Left)

	and, ok := or.Right.(*ast.BinaryExpr)
	require.True(t, ok)
	assert.Equal(t, ast.OpAnd, and.Op)

	left, ok := and.Left.(*ast.BinaryExpr)
	require.True(t, ok)
	assert.Equal(t, ast.OpEq, left.Op)
}

func TestParseBinaryOperators(t *testing.T) {
	tests := []struct {
		input string
		op    ast.BinaryOp
	}{
		{"a = b", ast.OpEq},
		{"a != b", ast.OpNotEq},
		{"a <> b", ast.OpNotEq},
		{"a < b", ast.OpLt},
		{"a <= b", ast.OpLtEq},
		{"a > b", ast.OpGt},
		{"a >= b", ast.OpGtEq},
		{"a LIKE b", ast.OpLike},
		{"a ILIKE b", ast.OpILike},
		{"a - b", ast.OpMinus},
		{"a || b", ast.OpConcat},
		{"a / b", ast.OpDivide},
		{"a % b", ast.OpModulo},
		{"a & b", ast.OpBitAnd},
		{"a | b", ast.OpBitOr},
		{"a ^ b", ast.OpBitXor},
		{"a << b", ast.OpLeftShift},
		{"a >> b", ast.OpRightShift},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			bin, ok := exprOf(t, tt.input).(*ast.BinaryExpr)
			require.True(t, ok)
			assert.Equal(t, tt.op, bin.Op)
		})
	}
}

func TestParseUnaryOperators(t *testing.T) {
	tests := []struct {
		input string
		op    ast.UnaryOp
	}{
		{"NOT a", ast.UnaryNot},
		{"-a", ast.UnaryMinus},
		{"~a", ast.UnaryBitNot},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			un, ok := exprOf(t, tt.input).(*ast.UnaryExpr)
			require.True(t, ok)
			assert.Equal(t, tt.op, un.Op)
			assert.Equal(t, ast.Column("a"), un.Operand)
		})
	}
}

func TestParseUnaryPlusIsNoOp(t *testing.T) {
	assert.Equal(t, ast.IntLit("7"), exprOf(t, "+7"))
}

func TestParseIsNull(t *testing.T) {
	expr := exprOf(t, "a IS NULL")
	want := &ast.BinaryExpr{Left: ast.Column("a"), Op: ast.OpEq, Right: ast.NullLit()}
	assert.Equal(t, want, expr)

	expr = exprOf(t, "a IS NOT NULL")
	want = &ast.BinaryExpr{Left: ast.Column("a"), Op: ast.OpNotEq, Right: ast.NullLit()}
	assert.Equal(t, want, expr)
}

func TestParseInList(t *testing.T) {
	expr := exprOf(t, "status IN ('a', 'b', 'c')")

	in, ok := expr.(*ast.InExpr)
	require.True(t, ok)
	assert.False(t, in.Not)
	assert.Equal(t, ast.Column("status"), in.Expr)
	assert.Len(t, in.List, 3)
	assert.Nil(t, in.Subquery)
}

func TestParseInSubquery(t *testing.T) {
	expr := exprOf(t, "id IN (SELECT user_id FROM orders)")

	in, ok := expr.(*ast.InExpr)
	require.True(t, ok)
	require.NotNil(t, in.Subquery)
	assert.Empty(t, in.List)
}

func TestParseNotIn(t *testing.T) {
	expr := exprOf(t, "id NOT IN (1, 2)")

	in, ok := expr.(*ast.InExpr)
	require.True(t, ok)
	assert.True(t, in.Not)
	assert.Len(t, in.List, 2)
}

func TestParseBetween(t *testing.T) {
	expr := exprOf(t, "age BETWEEN 18 AND 65")

	between, ok := expr.(*ast.BetweenExpr)
	require.True(t, ok)
	assert.False(t, between.Not)
	assert.Equal(t, ast.IntLit("18"), between.Low)
	assert.Equal(t, ast.IntLit("65"), between.High)
}

func TestParseNotBetween(t *testing.T) {
	expr := exprOf(t, "age NOT BETWEEN 18 AND 65")

	between, ok := expr.(*ast.BetweenExpr)
	require.True(t, ok)
	assert.True(t, between.Not)
}

func TestParseNotLike(t *testing.T) {
	expr := exprOf(t, "name NOT LIKE 'a%'")

	not, ok := expr.(*ast.UnaryExpr)
	require.True(t, ok)
	assert.Equal(t, ast.UnaryNot, not.Op)

	like, ok := not.Operand.(*ast.BinaryExpr)
	require.True(t, ok)
	assert.Equal(t, ast.OpLike, like.Op)
}

func TestParseExists(t *testing.T) {
	expr := exprOf(t, "EXISTS (SELECT 1 FROM t)")

	exists, ok := expr.(*ast.ExistsExpr)
	require.True(t, ok)
	assert.False(t, exists.Not)
	require.NotNil(t, exists.Query)
}

func TestParseNotExists(t *testing.T) {
	expr := exprOf(t, "NOT EXISTS (SELECT 1 FROM t)")

	exists, ok := expr.(*ast.ExistsExpr)
	require.True(t, ok)
	assert.True(t, exists.Not)
}

func TestParseScalarSubquery(t *testing.T) {
	expr := exprOf(t, "(SELECT MAX(id) FROM t)")

	sub, ok := expr.(*ast.SubqueryExpr)
	require.True(t, ok)
	require.NotNil(t, sub.Query)
}

func TestParseSearchedCase(t *testing.T) {
	expr := exprOf(t, "CASE WHEN a > 1 THEN 'big' WHEN a > 0 THEN 'small' ELSE 'none' END")

	caseExpr, ok := expr.(*ast.CaseExpr)
	require.True(t, ok)
	assert.Nil(t, caseExpr.Operand)
	require.Len(t, caseExpr.Whens, 2)
	assert.Equal(t, ast.StringLit("none"), caseExpr.Else)
}

func TestParseSimpleCase(t *testing.T) {
	expr := exprOf(t, "CASE status WHEN 1 THEN 'on' END")

	caseExpr, ok := expr.(*ast.CaseExpr)
	require.True(t, ok)
	assert.Equal(t, ast.Column("status"), caseExpr.Operand)
	require.Len(t, caseExpr.Whens, 1)
	assert.Nil(t, caseExpr.Else)
}

func TestParseCast(t *testing.T) {
	tests := []struct {
		input string
		want  ast.DataType
	}{
		{"CAST(a AS INTEGER)", ast.IntegerType(32)},
		{"CAST(a AS VARCHAR(10))", ast.VarcharType(10)},
		{"CAST(a AS DECIMAL(10, 2))", ast.DecimalType(10, 2)},
		{"CAST(a AS DOUBLE PRECISION)", ast.DoubleType()},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			cast, ok := exprOf(t, tt.input).(*ast.CastExpr)
			require.True(t, ok)
			assert.Equal(t, tt.want, cast.Type)
		})
	}
}

func TestParseFuncCall(t *testing.T) {
	expr := exprOf(t, "COALESCE(a, b, 0)")

	call, ok := expr.(*ast.FuncCall)
	require.True(t, ok)
	assert.Equal(t, "COALESCE", call.Name)
	assert.Len(t, call.Args, 3)
	assert.False(t, call.Distinct)
}

func TestParseFuncCallNoArgs(t *testing.T) {
	call, ok := exprOf(t, "NOW()").(*ast.FuncCall)
	require.True(t, ok)
	assert.Empty(t, call.Args)
}

func TestParseCountStar(t *testing.T) {
	call, ok := exprOf(t, "COUNT(*)").(*ast.FuncCall)
	require.True(t, ok)
	require.Len(t, call.Args, 1)
	assert.IsType(t, &ast.StarExpr{}, call.Args[0])
}

func TestParseCountDistinct(t *testing.T) {
	call, ok := exprOf(t, "COUNT(DISTINCT user_id)").(*ast.FuncCall)
	require.True(t, ok)
	assert.True(t, call.Distinct)
	require.Len(t, call.Args, 1)
}

func TestParseWindowFunction(t *testing.T) {
	expr := exprOf(t, "ROW_NUMBER() OVER (PARTITION BY dept ORDER BY salary DESC)")

	call, ok := expr.(*ast.FuncCall)
	require.True(t, ok)
	require.NotNil(t, call.Over)
	require.Len(t, call.Over.PartitionBy, 1)
	assert.Equal(t, ast.Column("dept"), call.Over.PartitionBy[0])
	require.Len(t, call.Over.OrderBy, 1)
	assert.True(t, call.Over.OrderBy[0].Desc)
	assert.Nil(t, call.Over.Frame)
}

func TestParseWindowFrame(t *testing.T) {
	expr := exprOf(t, "SUM(x) OVER (ORDER BY ts ROWS BETWEEN 1 PRECEDING AND CURRENT ROW)")

	call, ok := expr.(*ast.FuncCall)
	require.True(t, ok)
	require.NotNil(t, call.Over)
	frame := call.Over.Frame
	require.NotNil(t, frame)
	assert.Equal(t, ast.FrameRows, frame.Unit)
	assert.Equal(t, ast.FrameBound{Kind: ast.Preceding, Offset: 1}, frame.Start)
	require.NotNil(t, frame.End)
	assert.Equal(t, ast.FrameBound{Kind: ast.CurrentRow}, *frame.End)
}

func TestParseWindowFrameSingleBound(t *testing.T) {
	expr := exprOf(t, "SUM(x) OVER (RANGE UNBOUNDED PRECEDING)")

	call := expr.(*ast.FuncCall)
	frame := call.Over.Frame
	require.NotNil(t, frame)
	assert.Equal(t, ast.FrameRange, frame.Unit)
	assert.Equal(t, ast.UnboundedPreceding, frame.Start.Kind)
	assert.Nil(t, frame.End)
}

func TestParseQuotedIdentifierColumn(t *testing.T) {
	assert.Equal(t, ast.Column("order"), exprOf(t, `"order"`))
}

func TestParseExpressionErrors(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"dangling operator", "SELECT a +", "unexpected end of input"},
		{"keyword in expression", "SELECT a + FROM", "in expression"},
		{"between missing and", "SELECT a BETWEEN 1 OR 2", "expected"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, errs := parse(t, tt.input)
			require.NotEmpty(t, errs)
			assert.Contains(t, errs[0].Error(), tt.want)
		})
	}
}
