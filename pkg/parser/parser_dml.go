package parser

import (
	"github.com/schemalens/schemalens/pkg/ast"
	"github.com/schemalens/schemalens/pkg/token"
)

// ---------- INSERT ----------

// parseInsertStatement parses:
//
//	insert → INSERT INTO table [(cols)] (VALUES (expr_list), ... | select)
//	         [ON CONFLICT [(cols)] (DO NOTHING | DO UPDATE SET assignments)]
//	         [RETURNING select_list]
func (p *Parser) parseInsertStatement() (*ast.InsertStmt, error) {
	if err := p.expect(token.INSERT); err != nil {
		return nil, err
	}
	if err := p.expect(token.INTO); err != nil {
		return nil, err
	}

	table, err := p.parseIdentifier()
	if err != nil {
		return nil, err
	}
	stmt := &ast.InsertStmt{Table: table}

	if p.check(token.LPAREN) {
		cols, err := p.parseColumnNameList()
		if err != nil {
			return nil, err
		}
		stmt.Columns = cols
	}

	switch {
	case p.match(token.VALUES):
		values, err := p.parseValuesRows()
		if err != nil {
			return nil, err
		}
		stmt.Values = values
	case p.check(token.SELECT) || p.check(token.WITH):
		query, err := p.parseSelectStatement()
		if err != nil {
			return nil, err
		}
		stmt.Query = query
	default:
		return nil, p.errorf(ErrUnexpectedToken, p.token.Type, "VALUES or SELECT")
	}

	if p.check(token.ON) {
		conflict, err := p.parseOnConflict()
		if err != nil {
			return nil, err
		}
		stmt.OnConflict = conflict
	}

	returning, err := p.parseReturning()
	if err != nil {
		return nil, err
	}
	stmt.Returning = returning

	return stmt, nil
}

// parseValuesRows parses (expr_list), (expr_list), ...
func (p *Parser) parseValuesRows() ([][]ast.Expr, error) {
	var rows [][]ast.Expr
	for {
		if err := p.expect(token.LPAREN); err != nil {
			return nil, err
		}
		row, err := p.parseExpressionList()
		if err != nil {
			return nil, err
		}
		if err := p.expect(token.RPAREN); err != nil {
			return nil, err
		}
		rows = append(rows, row)
		if !p.match(token.COMMA) {
			break
		}
	}
	return rows, nil
}

func (p *Parser) parseOnConflict() (*ast.OnConflictClause, error) {
	if err := p.expect(token.ON); err != nil {
		return nil, err
	}
	if err := p.expect(token.CONFLICT); err != nil {
		return nil, err
	}

	clause := &ast.OnConflictClause{}
	if p.check(token.LPAREN) {
		cols, err := p.parseColumnNameList()
		if err != nil {
			return nil, err
		}
		clause.Columns = cols
	}

	if err := p.expect(token.DO); err != nil {
		return nil, err
	}
	switch {
	case p.match(token.NOTHING):
		clause.DoNothing = true
	case p.match(token.UPDATE):
		if err := p.expect(token.SET); err != nil {
			return nil, err
		}
		updates, err := p.parseAssignments()
		if err != nil {
			return nil, err
		}
		clause.Updates = updates
	default:
		return nil, p.errorf(ErrUnexpectedToken, p.token.Type, "NOTHING or UPDATE")
	}

	return clause, nil
}

// parseReturning parses an optional RETURNING select-item list.
func (p *Parser) parseReturning() ([]ast.SelectItem, error) {
	if !p.match(token.RETURNING) {
		return nil, nil
	}
	return p.parseSelectList()
}

// ---------- UPDATE ----------

// parseUpdateStatement parses:
//
//	update → UPDATE table [[AS] alias] SET assignments [WHERE expr]
//	         [RETURNING select_list]
func (p *Parser) parseUpdateStatement() (*ast.UpdateStmt, error) {
	if err := p.expect(token.UPDATE); err != nil {
		return nil, err
	}

	table, err := p.parseIdentifier()
	if err != nil {
		return nil, err
	}
	stmt := &ast.UpdateStmt{Table: table}

	alias, err := p.parseOptionalAlias()
	if err != nil {
		return nil, err
	}
	stmt.Alias = alias

	if err := p.expect(token.SET); err != nil {
		return nil, err
	}
	assignments, err := p.parseAssignments()
	if err != nil {
		return nil, err
	}
	stmt.Assignments = assignments

	if p.match(token.WHERE) {
		where, err := p.parseExpression()
		if err != nil {
			return nil, err
		}
		stmt.Where = where
	}

	returning, err := p.parseReturning()
	if err != nil {
		return nil, err
	}
	stmt.Returning = returning

	return stmt, nil
}

// parseAssignments parses col = expr, ... preserving declaration order.
func (p *Parser) parseAssignments() ([]ast.Assignment, error) {
	var assignments []ast.Assignment
	for {
		column, err := p.parseIdentifier()
		if err != nil {
			return nil, err
		}
		if err := p.expect(token.EQ); err != nil {
			return nil, err
		}
		value, err := p.parseExpression()
		if err != nil {
			return nil, err
		}
		assignments = append(assignments, ast.Assignment{Column: column, Value: value})
		if !p.match(token.COMMA) {
			break
		}
	}
	return assignments, nil
}

// ---------- DELETE ----------

// parseDeleteStatement parses:
//
//	delete → DELETE FROM table [[AS] alias] [USING table_ref, ...]
//	         [WHERE expr] [RETURNING select_list]
func (p *Parser) parseDeleteStatement() (*ast.DeleteStmt, error) {
	if err := p.expect(token.DELETE); err != nil {
		return nil, err
	}
	if err := p.expect(token.FROM); err != nil {
		return nil, err
	}

	table, err := p.parseIdentifier()
	if err != nil {
		return nil, err
	}
	stmt := &ast.DeleteStmt{Table: table}

	alias, err := p.parseOptionalAlias()
	if err != nil {
		return nil, err
	}
	stmt.Alias = alias

	if p.match(token.USING) {
		for {
			ref, err := p.parseTableReference()
			if err != nil {
				return nil, err
			}
			stmt.Using = append(stmt.Using, ref)
			if !p.match(token.COMMA) {
				break
			}
		}
	}

	if p.match(token.WHERE) {
		where, err := p.parseExpression()
		if err != nil {
			return nil, err
		}
		stmt.Where = where
	}

	returning, err := p.parseReturning()
	if err != nil {
		return nil, err
	}
	stmt.Returning = returning

	return stmt, nil
}
