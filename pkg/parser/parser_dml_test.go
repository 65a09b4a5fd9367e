package parser_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/schemalens/schemalens/pkg/ast"
)

func TestParseInsertValues(t *testing.T) {
	stmt, ok := parseOne(t, "INSERT INTO users (name, age) VALUES ('alice', 30)").(*ast.InsertStmt)
	require.True(t, ok)

	assert.Equal(t, "users", stmt.Table)
	assert.Equal(t, []string{"name", "age"}, stmt.Columns)
	require.Len(t, stmt.Values, 1)
	require.Len(t, stmt.Values[0], 2)
	assert.Equal(t, ast.StringLit("alice"), stmt.Values[0][0])
	assert.Equal(t, ast.IntLit("30"), stmt.Values[0][1])
	assert.Nil(t, stmt.Query)
}

func TestParseInsertMultipleRows(t *testing.T) {
	stmt := parseOne(t, "INSERT INTO t VALUES (1, 2), (3, 4), (5, 6)").(*ast.InsertStmt)

	assert.Empty(t, stmt.Columns)
	assert.Len(t, stmt.Values, 3)
}

func TestParseInsertSelect(t *testing.T) {
	stmt := parseOne(t, "INSERT INTO archive (id) SELECT id FROM users WHERE active = FALSE").(*ast.InsertStmt)

	assert.Empty(t, stmt.Values)
	require.NotNil(t, stmt.Query)
	require.NotNil(t, stmt.Query.Where)
}

func TestParseInsertOnConflictDoNothing(t *testing.T) {
	stmt := parseOne(t, "INSERT INTO t (id) VALUES (1) ON CONFLICT (id) DO NOTHING").(*ast.InsertStmt)

	require.NotNil(t, stmt.OnConflict)
	assert.Equal(t, []string{"id"}, stmt.OnConflict.Columns)
	assert.True(t, stmt.OnConflict.DoNothing)
	assert.Empty(t, stmt.OnConflict.Updates)
}

func TestParseInsertOnConflictDoUpdate(t *testing.T) {
	stmt := parseOne(t, "INSERT INTO t (id, n) VALUES (1, 1) ON CONFLICT DO UPDATE SET n = n + 1").(*ast.InsertStmt)

	require.NotNil(t, stmt.OnConflict)
	assert.Empty(t, stmt.OnConflict.Columns)
	assert.False(t, stmt.OnConflict.DoNothing)
	require.Len(t, stmt.OnConflict.Updates, 1)
	assert.Equal(t, "n", stmt.OnConflict.Updates[0].Column)
}

func TestParseInsertReturning(t *testing.T) {
	stmt := parseOne(t, "INSERT INTO t (a) VALUES (1) RETURNING id, created_at").(*ast.InsertStmt)

	require.Len(t, stmt.Returning, 2)
	assert.Equal(t, ast.Column("id"), stmt.Returning[0].Expr)
}

func TestParseInsertRequiresSource(t *testing.T) {
	_, errs := parse(t, "INSERT INTO t (a) WHERE 1")
	require.NotEmpty(t, errs)
	assert.Contains(t, errs[0].Error(), "VALUES or SELECT")
}

func TestParseUpdate(t *testing.T) {
	stmt, ok := parseOne(t, "UPDATE users SET name = 'bob', age = age + 1 WHERE id = 7").(*ast.UpdateStmt)
	require.True(t, ok)

	assert.Equal(t, "users", stmt.Table)
	assert.Empty(t, stmt.Alias)

	require.Len(t, stmt.Assignments, 2)
	assert.Equal(t, "name", stmt.Assignments[0].Column)
	assert.Equal(t, ast.StringLit("bob"), stmt.Assignments[0].Value)
	assert.Equal(t, "age", stmt.Assignments[1].Column)

	require.NotNil(t, stmt.Where)
}

func TestParseUpdateAliasAndReturning(t *testing.T) {
	stmt := parseOne(t, "UPDATE users AS u SET active = FALSE RETURNING u.id").(*ast.UpdateStmt)

	assert.Equal(t, "u", stmt.Alias)
	assert.Nil(t, stmt.Where)
	require.Len(t, stmt.Returning, 1)
	assert.Equal(t, ast.QualifiedColumn("u", "id"), stmt.Returning[0].Expr)
}

func TestParseDelete(t *testing.T) {
	stmt, ok := parseOne(t, "DELETE FROM sessions WHERE expires_at < now()").(*ast.DeleteStmt)
	require.True(t, ok)

	assert.Equal(t, "sessions", stmt.Table)
	assert.Empty(t, stmt.Using)
	require.NotNil(t, stmt.Where)
}

func TestParseDeleteUsing(t *testing.T) {
	stmt := parseOne(t, `
		DELETE FROM orders o
		USING users u, blacklist b
		WHERE o.user_id = u.id AND u.email = b.email`).(*ast.DeleteStmt)

	assert.Equal(t, "orders", stmt.Table)
	assert.Equal(t, "o", stmt.Alias)
	require.Len(t, stmt.Using, 2)
	assert.Equal(t, &ast.TableName{Name: "users", Alias: "u"}, stmt.Using[0])
	assert.Equal(t, &ast.TableName{Name: "blacklist", Alias: "b"}, stmt.Using[1])
}

func TestParseDeleteReturning(t *testing.T) {
	stmt := parseOne(t, "DELETE FROM t WHERE id = 1 RETURNING *").(*ast.DeleteStmt)

	require.Len(t, stmt.Returning, 1)
	assert.True(t, stmt.Returning[0].Star)
}

func TestParseDeleteWithoutWhere(t *testing.T) {
	stmt := parseOne(t, "DELETE FROM audit_log").(*ast.DeleteStmt)
	assert.Nil(t, stmt.Where)
}
