package ast_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/schemalens/schemalens/pkg/ast"
)

func TestColumnDefPredicates(t *testing.T) {
	id := &ast.ColumnDef{
		Name: "id",
		Type: ast.IntegerType(64),
		Constraints: []ast.ColumnConstraint{
			{Kind: ast.PrimaryKeyColumn},
			{Kind: ast.AutoIncrement},
		},
	}
	name := &ast.ColumnDef{
		Name: "name",
		Type: ast.VarcharType(255),
	}
	email := &ast.ColumnDef{
		Name:        "email",
		Type:        ast.TextType(),
		Constraints: []ast.ColumnConstraint{{Kind: ast.NotNull}},
	}

	assert.True(t, id.IsPrimaryKey())
	assert.False(t, id.IsNullable())
	assert.False(t, name.IsPrimaryKey())
	assert.True(t, name.IsNullable())
	assert.False(t, email.IsNullable())
}

func TestPrimaryKeyColumns(t *testing.T) {
	stmt := &ast.CreateTableStmt{
		Name: "memberships",
		Columns: []*ast.ColumnDef{
			{Name: "user_id", Type: ast.BigIntType()},
			{Name: "group_id", Type: ast.BigIntType()},
		},
		Constraints: []ast.TableConstraint{
			{Kind: ast.PrimaryKeyConstraint, Columns: []string{"user_id", "group_id"}},
		},
	}

	assert.Equal(t, []string{"user_id", "group_id"}, stmt.PrimaryKeyColumns())
}

func TestStatementInterfaces(t *testing.T) {
	var stmt ast.Statement

	stmt = &ast.SelectStmt{}
	_, isDML := stmt.(ast.DMLStatement)
	assert.True(t, isDML)

	stmt = &ast.CreateTableStmt{}
	_, isDDL := stmt.(ast.DDLStatement)
	assert.True(t, isDDL)
	_, isDML = stmt.(ast.DMLStatement)
	assert.False(t, isDML)
}

func TestLiteralConstructors(t *testing.T) {
	assert.Equal(t, &ast.Literal{Kind: ast.LiteralInteger, Value: "42"}, ast.IntLit("42"))
	assert.Equal(t, &ast.Literal{Kind: ast.LiteralBool, Value: "true"}, ast.BoolLit(true))
	assert.Equal(t, &ast.Literal{Kind: ast.LiteralNull}, ast.NullLit())
	assert.Equal(t, "it's", ast.StringLit("it's").Value)
}

func TestRefActionString(t *testing.T) {
	assert.Equal(t, "CASCADE", ast.RefCascade.String())
	assert.Equal(t, "SET NULL", ast.RefSetNull.String())
	assert.Equal(t, "", ast.RefNone.String())
}
