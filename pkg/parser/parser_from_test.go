package parser_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/schemalens/schemalens/pkg/ast"
)

// fromOf parses the statement and returns its FROM clause.
func fromOf(t *testing.T, sql string) []ast.TableRef {
	t.Helper()
	return parseSelect(t, sql).From
}

func TestParseFromTableAliases(t *testing.T) {
	from := fromOf(t, "SELECT * FROM users AS u")
	require.Len(t, from, 1)
	table, ok := from[0].(*ast.TableName)
	require.True(t, ok)
	assert.Equal(t, "users", table.Name)
	assert.Equal(t, "u", table.Alias)

	// The AS keyword is optional.
	from = fromOf(t, "SELECT * FROM users u")
	table = from[0].(*ast.TableName)
	assert.Equal(t, "u", table.Alias)
}

func TestParseFromCommaList(t *testing.T) {
	from := fromOf(t, "SELECT * FROM a, b c, d")

	require.Len(t, from, 3)
	assert.Equal(t, &ast.TableName{Name: "a"}, from[0])
	assert.Equal(t, &ast.TableName{Name: "b", Alias: "c"}, from[1])
	assert.Equal(t, &ast.TableName{Name: "d"}, from[2])
}

func TestParseInnerJoin(t *testing.T) {
	from := fromOf(t, "SELECT * FROM a JOIN b ON a.id = b.a_id")

	require.Len(t, from, 1)
	join, ok := from[0].(*ast.Join)
	require.True(t, ok)
	assert.Equal(t, &ast.TableName{Name: "a"}, join.Left)
	assert.Equal(t, &ast.TableName{Name: "b"}, join.Right)

	require.Len(t, join.Joins, 1)
	clause := join.Joins[0]
	assert.Equal(t, ast.JoinInner, clause.Type)

	on, ok := clause.Condition.(*ast.OnCondition)
	require.True(t, ok)
	cond, ok := on.Expr.(*ast.BinaryExpr)
	require.True(t, ok)
	assert.Equal(t, ast.OpEq, cond.Op)
	assert.Equal(t, ast.QualifiedColumn("a", "id"), cond.Left)
}

func TestParseJoinTypes(t *testing.T) {
	tests := []struct {
		input string
		want  ast.JoinType
	}{
		{"SELECT * FROM a JOIN b ON x = y", ast.JoinInner},
		{"SELECT * FROM a INNER JOIN b ON x = y", ast.JoinInner},
		{"SELECT * FROM a LEFT JOIN b ON x = y", ast.JoinLeft},
		{"SELECT * FROM a LEFT OUTER JOIN b ON x = y", ast.JoinLeft},
		{"SELECT * FROM a RIGHT JOIN b ON x = y", ast.JoinRight},
		{"SELECT * FROM a RIGHT OUTER JOIN b ON x = y", ast.JoinRight},
		{"SELECT * FROM a FULL JOIN b ON x = y", ast.JoinFull},
		{"SELECT * FROM a FULL OUTER JOIN b ON x = y", ast.JoinFull},
		{"SELECT * FROM a CROSS JOIN b", ast.JoinCross},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			from := fromOf(t, tt.input)
			require.Len(t, from, 1)
			join, ok := from[0].(*ast.Join)
			require.True(t, ok)
			require.Len(t, join.Joins, 1)
			assert.Equal(t, tt.want, join.Joins[0].Type)
		})
	}
}

func TestParseCrossJoinHasNoCondition(t *testing.T) {
	from := fromOf(t, "SELECT * FROM a CROSS JOIN b")

	join := from[0].(*ast.Join)
	assert.Nil(t, join.Joins[0].Condition)
}

func TestParseJoinUsing(t *testing.T) {
	from := fromOf(t, "SELECT * FROM a JOIN b USING (id, tenant_id)")

	join := from[0].(*ast.Join)
	using, ok := join.Joins[0].Condition.(*ast.UsingCondition)
	require.True(t, ok)
	assert.Equal(t, []string{"id", "tenant_id"}, using.Columns)
}

func TestParseMultipleJoins(t *testing.T) {
	from := fromOf(t, `
		SELECT * FROM orders o
		JOIN users u ON o.user_id = u.id
		LEFT JOIN addresses a ON u.id = a.user_id`)

	require.Len(t, from, 1)
	join, ok := from[0].(*ast.Join)
	require.True(t, ok)

	assert.Equal(t, &ast.TableName{Name: "orders", Alias: "o"}, join.Left)
	require.Len(t, join.Joins, 2)
	assert.Equal(t, ast.JoinInner, join.Joins[0].Type)
	assert.Equal(t, ast.JoinLeft, join.Joins[1].Type)
	assert.Equal(t, &ast.TableName{Name: "addresses", Alias: "a"}, join.Joins[1].Table)
}

func TestParseJoinAfterCommaBindsToLastTable(t *testing.T) {
	from := fromOf(t, "SELECT * FROM a, b JOIN c ON b.id = c.b_id")

	require.Len(t, from, 2)
	assert.Equal(t, &ast.TableName{Name: "a"}, from[0])
	join, ok := from[1].(*ast.Join)
	require.True(t, ok)
	assert.Equal(t, &ast.TableName{Name: "b"}, join.Left)
}

func TestParseDerivedTable(t *testing.T) {
	from := fromOf(t, "SELECT * FROM (SELECT id FROM users WHERE active = TRUE) AS u")

	require.Len(t, from, 1)
	derived, ok := from[0].(*ast.DerivedTable)
	require.True(t, ok)
	assert.Equal(t, "u", derived.Alias)
	require.NotNil(t, derived.Query)
	require.Len(t, derived.Query.Columns, 1)
}

func TestParseDerivedTableInJoin(t *testing.T) {
	from := fromOf(t, "SELECT * FROM a JOIN (SELECT id FROM b) sub ON a.id = sub.id")

	join := from[0].(*ast.Join)
	derived, ok := join.Right.(*ast.DerivedTable)
	require.True(t, ok)
	assert.Equal(t, "sub", derived.Alias)
}

func TestParseQuotedTableName(t *testing.T) {
	from := fromOf(t, `SELECT * FROM "order"`)

	table := from[0].(*ast.TableName)
	assert.Equal(t, "order", table.Name)
}

func TestParseBareJoinHasNoCondition(t *testing.T) {
	stmt := parseSelect(t, "SELECT * FROM a JOIN b WHERE x = 1")

	join := stmt.From[0].(*ast.Join)
	assert.Nil(t, join.Joins[0].Condition)
	require.NotNil(t, stmt.Where)
}
