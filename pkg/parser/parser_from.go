package parser

import (
	"github.com/schemalens/schemalens/pkg/ast"
	"github.com/schemalens/schemalens/pkg/token"
)

// ---------- FROM Clause ----------

// parseFromClause parses a comma-separated list of table references, each
// optionally followed by a chain of joins. Joins fold into the preceding
// reference, building a left-deep tree: the first join converts a plain
// table into an ast.Join, later joins append to its clause list.
func (p *Parser) parseFromClause() ([]ast.TableRef, error) {
	var tables []ast.TableRef
	for {
		ref, err := p.parseTableReference()
		if err != nil {
			return nil, err
		}
		tables = append(tables, ref)

		for p.atJoinStart() {
			clause, err := p.parseJoin()
			if err != nil {
				return nil, err
			}
			last := len(tables) - 1
			if join, ok := tables[last].(*ast.Join); ok {
				join.Joins = append(join.Joins, clause)
			} else {
				tables[last] = &ast.Join{
					Left:  tables[last],
					Right: clause.Table,
					Joins: []*ast.JoinClause{clause},
				}
			}
		}

		if !p.match(token.COMMA) {
			break
		}
	}
	return tables, nil
}

func (p *Parser) atJoinStart() bool {
	switch p.token.Type {
	case token.INNER, token.LEFT, token.RIGHT, token.FULL, token.CROSS, token.JOIN:
		return true
	}
	return false
}

// parseTableReference parses a named table or a derived table, each with
// an optional alias:
//
//	table_ref → name [[AS] alias] | ( select ) [[AS] alias]
func (p *Parser) parseTableReference() (ast.TableRef, error) {
	if p.check(token.LPAREN) {
		p.nextToken()
		query, err := p.parseSelectStatement()
		if err != nil {
			return nil, err
		}
		if err := p.expect(token.RPAREN); err != nil {
			return nil, err
		}
		derived := &ast.DerivedTable{Query: query}
		alias, err := p.parseOptionalAlias()
		if err != nil {
			return nil, err
		}
		derived.Alias = alias
		return derived, nil
	}

	name, err := p.parseIdentifier()
	if err != nil {
		return nil, err
	}
	alias, err := p.parseOptionalAlias()
	if err != nil {
		return nil, err
	}
	return &ast.TableName{Name: name, Alias: alias}, nil
}

// parseOptionalAlias parses [AS] alias, returning "" when no alias is
// present. A bare identifier counts as an alias; keywords do not.
func (p *Parser) parseOptionalAlias() (string, error) {
	if p.match(token.AS) {
		return p.parseIdentifier()
	}
	if p.check(token.IDENT) || p.check(token.QIDENT) {
		alias := p.token.Literal
		p.nextToken()
		return alias, nil
	}
	return "", nil
}

// parseJoin parses one join clause:
//
//	join → [INNER | LEFT [OUTER] | RIGHT [OUTER] | FULL [OUTER] | CROSS]
//	       JOIN table_ref [ON expr | USING (cols)]
func (p *Parser) parseJoin() (*ast.JoinClause, error) {
	var joinType ast.JoinType
	switch p.token.Type {
	case token.INNER:
		p.nextToken()
		if err := p.expect(token.JOIN); err != nil {
			return nil, err
		}
		joinType = ast.JoinInner
	case token.LEFT:
		p.nextToken()
		p.match(token.OUTER)
		if err := p.expect(token.JOIN); err != nil {
			return nil, err
		}
		joinType = ast.JoinLeft
	case token.RIGHT:
		p.nextToken()
		p.match(token.OUTER)
		if err := p.expect(token.JOIN); err != nil {
			return nil, err
		}
		joinType = ast.JoinRight
	case token.FULL:
		p.nextToken()
		p.match(token.OUTER)
		if err := p.expect(token.JOIN); err != nil {
			return nil, err
		}
		joinType = ast.JoinFull
	case token.CROSS:
		p.nextToken()
		if err := p.expect(token.JOIN); err != nil {
			return nil, err
		}
		joinType = ast.JoinCross
	case token.JOIN:
		p.nextToken()
		joinType = ast.JoinInner
	default:
		return nil, p.errorf(ErrUnexpectedToken, p.token.Type, "join type")
	}

	table, err := p.parseTableReference()
	if err != nil {
		return nil, err
	}

	clause := &ast.JoinClause{Type: joinType, Table: table}
	switch {
	case p.match(token.ON):
		expr, err := p.parseExpression()
		if err != nil {
			return nil, err
		}
		clause.Condition = &ast.OnCondition{Expr: expr}
	case p.match(token.USING):
		cols, err := p.parseColumnNameList()
		if err != nil {
			return nil, err
		}
		clause.Condition = &ast.UsingCondition{Columns: cols}
	}

	return clause, nil
}
