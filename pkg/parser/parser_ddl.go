package parser

import (
	"strings"

	"github.com/schemalens/schemalens/pkg/ast"
	"github.com/schemalens/schemalens/pkg/token"
)

// ---------- DDL ----------

// parseDDLStatement dispatches CREATE, ALTER, and DROP statements.
func (p *Parser) parseDDLStatement() (ast.Statement, error) {
	switch p.token.Type {
	case token.CREATE:
		p.nextToken()
		switch {
		case p.match(token.TABLE):
			return p.parseCreateTable()
		case p.check(token.UNIQUE) || p.check(token.INDEX):
			return p.parseCreateIndex()
		default:
			return nil, p.errorf(ErrUnexpectedToken, p.token.Type, "TABLE or INDEX")
		}
	case token.ALTER:
		return p.parseAlterTable()
	case token.DROP:
		p.nextToken()
		switch {
		case p.match(token.TABLE):
			return p.parseDropTable()
		case p.match(token.INDEX):
			return p.parseDropIndex()
		default:
			return nil, p.errorf(ErrUnexpectedToken, p.token.Type, "TABLE or INDEX")
		}
	default:
		return nil, p.errorf(ErrUnexpectedToken, p.token.Type, "DDL statement")
	}
}

// matchIfNotExists consumes an optional IF NOT EXISTS.
func (p *Parser) matchIfNotExists() (bool, error) {
	if !p.match(token.IF) {
		return false, nil
	}
	if err := p.expect(token.NOT); err != nil {
		return false, err
	}
	if err := p.expect(token.EXISTS); err != nil {
		return false, err
	}
	return true, nil
}

// matchIfExists consumes an optional IF EXISTS.
func (p *Parser) matchIfExists() (bool, error) {
	if !p.match(token.IF) {
		return false, nil
	}
	if err := p.expect(token.EXISTS); err != nil {
		return false, err
	}
	return true, nil
}

// ---------- CREATE TABLE ----------

// parseCreateTable parses the body after CREATE TABLE:
//
//	create_table → [IF NOT EXISTS] name ( table_item, ... )
//	table_item   → column_def | table_constraint
func (p *Parser) parseCreateTable() (*ast.CreateTableStmt, error) {
	ifNotExists, err := p.matchIfNotExists()
	if err != nil {
		return nil, err
	}

	name, err := p.parseIdentifier()
	if err != nil {
		return nil, err
	}
	stmt := &ast.CreateTableStmt{Name: name, IfNotExists: ifNotExists}

	if err := p.expect(token.LPAREN); err != nil {
		return nil, err
	}

	// At least one column or constraint is required.
	if p.check(token.RPAREN) {
		return nil, p.errorf(ErrUnexpectedToken, p.token.Type, "column definition")
	}

	for {
		if p.match(token.RPAREN) {
			return stmt, nil
		}

		if p.atTableConstraint() {
			con, err := p.parseTableConstraint()
			if err != nil {
				return nil, err
			}
			stmt.Constraints = append(stmt.Constraints, con)
		} else {
			col, err := p.parseColumnDef()
			if err != nil {
				return nil, err
			}
			stmt.Columns = append(stmt.Columns, col)
		}

		if !p.match(token.COMMA) {
			if err := p.expect(token.RPAREN); err != nil {
				return nil, err
			}
			return stmt, nil
		}
	}
}

// atTableConstraint reports whether the current token starts a table-level
// constraint rather than a column definition. A UNIQUE column constraint
// is distinguished from UNIQUE (cols) by the following paren.
func (p *Parser) atTableConstraint() bool {
	switch p.token.Type {
	case token.CONSTRAINT, token.PRIMARY, token.FOREIGN, token.CHECK:
		return true
	case token.UNIQUE:
		return p.checkPeek(token.LPAREN)
	}
	return false
}

// parseTableConstraint parses:
//
//	table_constraint → [CONSTRAINT name]
//	                   ( PRIMARY KEY (cols)
//	                   | UNIQUE (cols)
//	                   | FOREIGN KEY (cols) REFERENCES table (cols)
//	                     [ON DELETE action] [ON UPDATE action]
//	                   | CHECK (expr) )
func (p *Parser) parseTableConstraint() (ast.TableConstraint, error) {
	var con ast.TableConstraint

	if p.match(token.CONSTRAINT) {
		name, err := p.parseIdentifier()
		if err != nil {
			return con, err
		}
		con.Name = name
	}

	switch p.token.Type {
	case token.PRIMARY:
		p.nextToken()
		if err := p.expect(token.KEY); err != nil {
			return con, err
		}
		cols, err := p.parseColumnNameList()
		if err != nil {
			return con, err
		}
		con.Kind = ast.PrimaryKeyConstraint
		con.Columns = cols
	case token.UNIQUE:
		p.nextToken()
		cols, err := p.parseColumnNameList()
		if err != nil {
			return con, err
		}
		con.Kind = ast.UniqueConstraint
		con.Columns = cols
	case token.FOREIGN:
		p.nextToken()
		if err := p.expect(token.KEY); err != nil {
			return con, err
		}
		cols, err := p.parseColumnNameList()
		if err != nil {
			return con, err
		}
		if err := p.expect(token.REFERENCES); err != nil {
			return con, err
		}
		refTable, err := p.parseIdentifier()
		if err != nil {
			return con, err
		}
		refCols, err := p.parseColumnNameList()
		if err != nil {
			return con, err
		}
		con.Kind = ast.ForeignKeyConstraint
		con.Columns = cols
		con.RefTable = refTable
		con.RefColumns = refCols
		if err := p.parseRefActions(&con); err != nil {
			return con, err
		}
	case token.CHECK:
		p.nextToken()
		if err := p.expect(token.LPAREN); err != nil {
			return con, err
		}
		expr, err := p.parseExpression()
		if err != nil {
			return con, err
		}
		if err := p.expect(token.RPAREN); err != nil {
			return con, err
		}
		con.Kind = ast.CheckConstraint
		con.Check = expr
	default:
		return con, p.errorf(ErrUnexpectedToken, p.token.Type, "table constraint")
	}

	return con, nil
}

// parseRefActions parses trailing ON DELETE / ON UPDATE clauses of a
// foreign key, in either order.
func (p *Parser) parseRefActions(con *ast.TableConstraint) error {
	for p.check(token.ON) {
		p.nextToken()
		switch {
		case p.match(token.DELETE):
			action, err := p.parseRefAction()
			if err != nil {
				return err
			}
			con.OnDelete = action
		case p.match(token.UPDATE):
			action, err := p.parseRefAction()
			if err != nil {
				return err
			}
			con.OnUpdate = action
		default:
			return p.errorf(ErrUnexpectedToken, p.token.Type, "DELETE or UPDATE")
		}
	}
	return nil
}

func (p *Parser) parseRefAction() (ast.RefAction, error) {
	switch p.token.Type {
	case token.CASCADE:
		p.nextToken()
		return ast.RefCascade, nil
	case token.RESTRICT:
		p.nextToken()
		return ast.RefRestrict, nil
	case token.NO:
		p.nextToken()
		if err := p.expect(token.ACTION); err != nil {
			return ast.RefNone, err
		}
		return ast.RefNoAction, nil
	case token.SET:
		p.nextToken()
		switch {
		case p.match(token.NULL):
			return ast.RefSetNull, nil
		case p.match(token.DEFAULT):
			return ast.RefSetDefault, nil
		default:
			return ast.RefNone, p.errorf(ErrUnexpectedToken, p.token.Type, "NULL or DEFAULT")
		}
	default:
		return ast.RefNone, p.errorf(ErrUnexpectedToken, p.token.Type, "referential action")
	}
}

// parseColumnDef parses name, data type, and the column constraint list.
func (p *Parser) parseColumnDef() (*ast.ColumnDef, error) {
	name, err := p.parseIdentifier()
	if err != nil {
		return nil, err
	}
	dataType, err := p.parseDataType()
	if err != nil {
		return nil, err
	}
	col := &ast.ColumnDef{Name: name, Type: dataType}

	for {
		switch p.token.Type {
		case token.NOT:
			p.nextToken()
			if err := p.expect(token.NULL); err != nil {
				return nil, err
			}
			col.Constraints = append(col.Constraints, ast.ColumnConstraint{Kind: ast.NotNull})
		case token.NULL:
			p.nextToken()
			col.Constraints = append(col.Constraints, ast.ColumnConstraint{Kind: ast.Nullable})
		case token.PRIMARY:
			p.nextToken()
			if err := p.expect(token.KEY); err != nil {
				return nil, err
			}
			col.Constraints = append(col.Constraints, ast.ColumnConstraint{Kind: ast.PrimaryKeyColumn})
		case token.UNIQUE:
			p.nextToken()
			col.Constraints = append(col.Constraints, ast.ColumnConstraint{Kind: ast.UniqueColumn})
		case token.AUTOINCREMENT:
			p.nextToken()
			col.Constraints = append(col.Constraints, ast.ColumnConstraint{Kind: ast.AutoIncrement})
		case token.DEFAULT:
			p.nextToken()
			value, err := p.parseDefaultValue()
			if err != nil {
				return nil, err
			}
			col.Constraints = append(col.Constraints, ast.ColumnConstraint{Kind: ast.DefaultValue, Default: value})
		case token.CHECK:
			p.nextToken()
			if err := p.expect(token.LPAREN); err != nil {
				return nil, err
			}
			expr, err := p.parseExpression()
			if err != nil {
				return nil, err
			}
			if err := p.expect(token.RPAREN); err != nil {
				return nil, err
			}
			col.Constraints = append(col.Constraints, ast.ColumnConstraint{Kind: ast.CheckColumn, Check: expr})
		case token.REFERENCES:
			p.nextToken()
			refTable, err := p.parseIdentifier()
			if err != nil {
				return nil, err
			}
			ref := &ast.ForeignKeyRef{Table: refTable}
			if p.check(token.LPAREN) {
				refCols, err := p.parseColumnNameList()
				if err != nil {
					return nil, err
				}
				ref.Columns = refCols
			}
			col.Constraints = append(col.Constraints, ast.ColumnConstraint{Kind: ast.ReferencesColumn, Ref: ref})
		default:
			return col, nil
		}
	}
}

// parseDefaultValue parses a literal default and renders it back to SQL
// text: strings re-quoted, booleans uppercased, NULL as NULL.
func (p *Parser) parseDefaultValue() (string, error) {
	switch p.token.Type {
	case token.STRING:
		value := "'" + p.token.Literal + "'"
		p.nextToken()
		return value, nil
	case token.INT, token.FLOAT:
		value := p.token.Literal
		p.nextToken()
		return value, nil
	case token.TRUE, token.FALSE:
		value := strings.ToUpper(p.token.Literal)
		p.nextToken()
		return value, nil
	case token.NULL:
		p.nextToken()
		return "NULL", nil
	default:
		return "", p.errorf(ErrUnexpectedToken, p.token.Type, "default value")
	}
}

// ---------- ALTER TABLE ----------

// parseAlterTable parses:
//
//	alter_table → ALTER TABLE name action [, action]...
//	action      → ADD [COLUMN] column_def
//	            | ADD table_constraint
//	            | DROP COLUMN name | DROP CONSTRAINT name
//	            | RENAME COLUMN old TO new | RENAME TO new
//	            | (ALTER COLUMN | MODIFY [COLUMN]) column_def
func (p *Parser) parseAlterTable() (*ast.AlterTableStmt, error) {
	if err := p.expect(token.ALTER); err != nil {
		return nil, err
	}
	if err := p.expect(token.TABLE); err != nil {
		return nil, err
	}

	table, err := p.parseIdentifier()
	if err != nil {
		return nil, err
	}
	stmt := &ast.AlterTableStmt{Table: table}

	for {
		action, err := p.parseAlterAction()
		if err != nil {
			return nil, err
		}
		stmt.Actions = append(stmt.Actions, action)
		if !p.match(token.COMMA) {
			break
		}
	}

	return stmt, nil
}

func (p *Parser) parseAlterAction() (ast.AlterAction, error) {
	switch p.token.Type {
	case token.ADD:
		p.nextToken()
		if p.atTableConstraint() {
			con, err := p.parseTableConstraint()
			if err != nil {
				return ast.AlterAction{}, err
			}
			return ast.AlterAction{Kind: ast.AddConstraint, Constraint: &con}, nil
		}
		p.match(token.COLUMN)
		col, err := p.parseColumnDef()
		if err != nil {
			return ast.AlterAction{}, err
		}
		return ast.AlterAction{Kind: ast.AddColumn, Column: col}, nil
	case token.DROP:
		p.nextToken()
		if p.match(token.CONSTRAINT) {
			name, err := p.parseIdentifier()
			if err != nil {
				return ast.AlterAction{}, err
			}
			return ast.AlterAction{Kind: ast.DropConstraint, Name: name}, nil
		}
		p.match(token.COLUMN)
		name, err := p.parseIdentifier()
		if err != nil {
			return ast.AlterAction{}, err
		}
		return ast.AlterAction{Kind: ast.DropColumn, Name: name}, nil
	case token.RENAME:
		p.nextToken()
		if p.match(token.TO) {
			newName, err := p.parseIdentifier()
			if err != nil {
				return ast.AlterAction{}, err
			}
			return ast.AlterAction{Kind: ast.RenameTable, NewName: newName}, nil
		}
		p.match(token.COLUMN)
		name, err := p.parseIdentifier()
		if err != nil {
			return ast.AlterAction{}, err
		}
		if err := p.expect(token.TO); err != nil {
			return ast.AlterAction{}, err
		}
		newName, err := p.parseIdentifier()
		if err != nil {
			return ast.AlterAction{}, err
		}
		return ast.AlterAction{Kind: ast.RenameColumn, Name: name, NewName: newName}, nil
	case token.ALTER:
		p.nextToken()
		if err := p.expect(token.COLUMN); err != nil {
			return ast.AlterAction{}, err
		}
		col, err := p.parseColumnDef()
		if err != nil {
			return ast.AlterAction{}, err
		}
		return ast.AlterAction{Kind: ast.AlterColumn, Column: col}, nil
	case token.MODIFY:
		p.nextToken()
		p.match(token.COLUMN)
		col, err := p.parseColumnDef()
		if err != nil {
			return ast.AlterAction{}, err
		}
		return ast.AlterAction{Kind: ast.AlterColumn, Column: col}, nil
	default:
		return ast.AlterAction{}, p.errorf(ErrUnexpectedToken, p.token.Type, "ALTER TABLE action")
	}
}

// ---------- DROP TABLE ----------

func (p *Parser) parseDropTable() (*ast.DropTableStmt, error) {
	ifExists, err := p.matchIfExists()
	if err != nil {
		return nil, err
	}
	stmt := &ast.DropTableStmt{IfExists: ifExists}

	for {
		name, err := p.parseIdentifier()
		if err != nil {
			return nil, err
		}
		stmt.Tables = append(stmt.Tables, name)
		if !p.match(token.COMMA) {
			break
		}
	}

	switch {
	case p.match(token.CASCADE):
		stmt.Cascade = true
	case p.match(token.RESTRICT):
		stmt.Restrict = true
	}

	return stmt, nil
}

// ---------- CREATE / DROP INDEX ----------

// parseCreateIndex parses the body after CREATE, with UNIQUE or INDEX
// current:
//
//	create_index → [UNIQUE] INDEX [IF NOT EXISTS] name ON table
//	               ( order_list ) [WHERE expr]
func (p *Parser) parseCreateIndex() (*ast.CreateIndexStmt, error) {
	stmt := &ast.CreateIndexStmt{}
	if p.match(token.UNIQUE) {
		stmt.Unique = true
	}
	if err := p.expect(token.INDEX); err != nil {
		return nil, err
	}

	ifNotExists, err := p.matchIfNotExists()
	if err != nil {
		return nil, err
	}
	stmt.IfNotExists = ifNotExists

	name, err := p.parseIdentifier()
	if err != nil {
		return nil, err
	}
	stmt.Name = name

	if err := p.expect(token.ON); err != nil {
		return nil, err
	}
	table, err := p.parseIdentifier()
	if err != nil {
		return nil, err
	}
	stmt.Table = table

	if err := p.expect(token.LPAREN); err != nil {
		return nil, err
	}
	cols, err := p.parseOrderByList()
	if err != nil {
		return nil, err
	}
	stmt.Columns = cols
	if err := p.expect(token.RPAREN); err != nil {
		return nil, err
	}

	if p.match(token.WHERE) {
		where, err := p.parseExpression()
		if err != nil {
			return nil, err
		}
		stmt.Where = where
	}

	return stmt, nil
}

func (p *Parser) parseDropIndex() (*ast.DropIndexStmt, error) {
	ifExists, err := p.matchIfExists()
	if err != nil {
		return nil, err
	}
	stmt := &ast.DropIndexStmt{IfExists: ifExists}

	for {
		name, err := p.parseIdentifier()
		if err != nil {
			return nil, err
		}
		stmt.Names = append(stmt.Names, name)
		if !p.match(token.COMMA) {
			break
		}
	}

	return stmt, nil
}
