package parser

import (
	"strconv"

	"github.com/schemalens/schemalens/pkg/ast"
	"github.com/schemalens/schemalens/pkg/token"
)

// ---------- SELECT ----------

// parseSelectStatement parses a full select:
//
//	select → [WITH [RECURSIVE] cte_list] SELECT [DISTINCT] select_list
//	         [FROM from_clause] [WHERE expr] [GROUP BY expr_list]
//	         [HAVING expr] [ORDER BY order_list] [LIMIT n] [OFFSET n]
//	         [UNION [ALL] select]...
func (p *Parser) parseSelectStatement() (*ast.SelectStmt, error) {
	stmt := &ast.SelectStmt{}

	if p.check(token.WITH) {
		with, err := p.parseWithClause()
		if err != nil {
			return nil, err
		}
		stmt.With = with
	}

	if err := p.expect(token.SELECT); err != nil {
		return nil, err
	}

	if p.match(token.DISTINCT) {
		stmt.Distinct = true
	}

	cols, err := p.parseSelectList()
	if err != nil {
		return nil, err
	}
	stmt.Columns = cols

	if p.match(token.FROM) {
		from, err := p.parseFromClause()
		if err != nil {
			return nil, err
		}
		stmt.From = from
	}

	if p.match(token.WHERE) {
		where, err := p.parseExpression()
		if err != nil {
			return nil, err
		}
		stmt.Where = where
	}

	if p.match(token.GROUP) {
		if err := p.expect(token.BY); err != nil {
			return nil, err
		}
		groupBy, err := p.parseExpressionList()
		if err != nil {
			return nil, err
		}
		stmt.GroupBy = groupBy
	}

	if p.match(token.HAVING) {
		having, err := p.parseExpression()
		if err != nil {
			return nil, err
		}
		stmt.Having = having
	}

	if p.match(token.ORDER) {
		if err := p.expect(token.BY); err != nil {
			return nil, err
		}
		orderBy, err := p.parseOrderByList()
		if err != nil {
			return nil, err
		}
		stmt.OrderBy = orderBy
	}

	if p.match(token.LIMIT) {
		limit, err := p.parseUnsignedInt("LIMIT")
		if err != nil {
			return nil, err
		}
		stmt.Limit = &limit
	}

	if p.match(token.OFFSET) {
		offset, err := p.parseUnsignedInt("OFFSET")
		if err != nil {
			return nil, err
		}
		stmt.Offset = &offset
	}

	for p.check(token.UNION) {
		p.nextToken()
		all := p.match(token.ALL)
		sel, err := p.parseSelectStatement()
		if err != nil {
			return nil, err
		}
		stmt.Unions = append(stmt.Unions, ast.UnionClause{All: all, Select: sel})
	}

	return stmt, nil
}

// parseWithClause parses WITH [RECURSIVE] name [(cols)] AS (select), ...
// The RECURSIVE flag is tracked per CTE.
func (p *Parser) parseWithClause() (*ast.WithClause, error) {
	if p.dialect != nil && !p.dialect.SupportsCTEs {
		return nil, p.errorf(ErrUnsupportedClause, "WITH", p.dialect.Name)
	}
	if err := p.expect(token.WITH); err != nil {
		return nil, err
	}

	with := &ast.WithClause{}
	for {
		cte := &ast.CTE{}
		if p.check(token.RECURSIVE) {
			if p.dialect != nil && !p.dialect.SupportsRecursiveCTEs {
				return nil, p.errorf(ErrUnsupportedClause, "WITH RECURSIVE", p.dialect.Name)
			}
			p.nextToken()
			cte.Recursive = true
		}

		name, err := p.parseIdentifier()
		if err != nil {
			return nil, err
		}
		cte.Name = name

		if p.check(token.LPAREN) {
			cols, err := p.parseColumnNameList()
			if err != nil {
				return nil, err
			}
			cte.Columns = cols
		}

		if err := p.expect(token.AS); err != nil {
			return nil, err
		}
		if err := p.expect(token.LPAREN); err != nil {
			return nil, err
		}
		query, err := p.parseSelectStatement()
		if err != nil {
			return nil, err
		}
		cte.Query = query
		if err := p.expect(token.RPAREN); err != nil {
			return nil, err
		}

		with.CTEs = append(with.CTEs, cte)
		if !p.match(token.COMMA) {
			break
		}
	}

	return with, nil
}

// parseSelectList parses the select-item list. Each item is `*`, `t.*`, or
// an expression with an optional alias.
func (p *Parser) parseSelectList() ([]ast.SelectItem, error) {
	var items []ast.SelectItem
	for {
		item, err := p.parseSelectItem()
		if err != nil {
			return nil, err
		}
		items = append(items, item)
		if !p.match(token.COMMA) {
			break
		}
	}
	return items, nil
}

func (p *Parser) parseSelectItem() (ast.SelectItem, error) {
	if p.check(token.STAR) {
		p.nextToken()
		return ast.SelectItem{Star: true}, nil
	}

	// t.* needs a third token of lookahead to disambiguate from t.col.
	if (p.check(token.IDENT) || p.check(token.QIDENT)) &&
		p.checkPeek(token.DOT) && p.peekAfter().Type == token.STAR {
		qualifier := p.token.Literal
		p.nextToken() // qualifier
		p.nextToken() // dot
		p.nextToken() // star
		return ast.SelectItem{Star: true, TableName: qualifier}, nil
	}

	expr, err := p.parseExpression()
	if err != nil {
		return ast.SelectItem{}, err
	}
	item := ast.SelectItem{Expr: expr}

	if p.match(token.AS) {
		alias, err := p.parseIdentifier()
		if err != nil {
			return ast.SelectItem{}, err
		}
		item.Alias = alias
	} else if p.check(token.IDENT) || p.check(token.QIDENT) {
		// Bare trailing identifier is an implicit alias.
		item.Alias = p.token.Literal
		p.nextToken()
	}

	return item, nil
}

// peekAfter returns the token following peek without consuming anything.
func (p *Parser) peekAfter() token.Token {
	if p.pos < len(p.tokens) {
		return p.tokens[p.pos]
	}
	return token.Token{Type: token.EOF}
}

// parseOrderByList parses expr [ASC|DESC] [NULLS FIRST|LAST], ...
func (p *Parser) parseOrderByList() ([]ast.OrderByItem, error) {
	var items []ast.OrderByItem
	for {
		expr, err := p.parseExpression()
		if err != nil {
			return nil, err
		}
		item := ast.OrderByItem{Expr: expr}

		switch {
		case p.match(token.ASC):
		case p.match(token.DESC):
			item.Desc = true
		}

		if p.match(token.NULLS) {
			switch {
			case p.match(token.FIRST):
				first := true
				item.NullsFirst = &first
			case p.match(token.LAST):
				first := false
				item.NullsFirst = &first
			default:
				return nil, p.errorf(ErrUnexpectedToken, p.token.Type, "FIRST or LAST")
			}
		}

		items = append(items, item)
		if !p.match(token.COMMA) {
			break
		}
	}
	return items, nil
}

// parseUnsignedInt parses the integer literal of a LIMIT or OFFSET clause.
func (p *Parser) parseUnsignedInt(clause string) (uint64, error) {
	if !p.check(token.INT) {
		return 0, p.errorf("expected integer for %s, found %s", clause, p.token.Type)
	}
	n, err := strconv.ParseUint(p.token.Literal, 10, 64)
	if err != nil {
		return 0, p.errorf("expected integer for %s, found %s", clause, p.token.Literal)
	}
	p.nextToken()
	return n, nil
}
