package parser

import (
	"strings"

	"github.com/schemalens/schemalens/pkg/ast"
	"github.com/schemalens/schemalens/pkg/token"
)

// ---------- Primary Expressions ----------

// parsePrimary parses literals, column references, function calls,
// parenthesized expressions and subqueries, EXISTS, CASE, and CAST.
func (p *Parser) parsePrimary() (ast.Expr, error) {
	switch p.token.Type {
	case token.INT:
		lit := ast.IntLit(p.token.Literal)
		p.nextToken()
		return lit, nil
	case token.FLOAT:
		lit := ast.FloatLit(p.token.Literal)
		p.nextToken()
		return lit, nil
	case token.STRING:
		lit := ast.StringLit(p.token.Literal)
		p.nextToken()
		return lit, nil
	case token.TRUE:
		p.nextToken()
		return ast.BoolLit(true), nil
	case token.FALSE:
		p.nextToken()
		return ast.BoolLit(false), nil
	case token.NULL:
		p.nextToken()
		return ast.NullLit(), nil
	case token.IDENT:
		return p.parseIdentExpr()
	case token.QIDENT:
		return p.parseQuotedIdentExpr()
	case token.LPAREN:
		p.nextToken()
		if p.check(token.SELECT) || p.check(token.WITH) {
			query, err := p.parseSelectStatement()
			if err != nil {
				return nil, err
			}
			if err := p.expect(token.RPAREN); err != nil {
				return nil, err
			}
			return &ast.SubqueryExpr{Query: query}, nil
		}
		expr, err := p.parseExpression()
		if err != nil {
			return nil, err
		}
		if err := p.expect(token.RPAREN); err != nil {
			return nil, err
		}
		return expr, nil
	case token.EXISTS:
		return p.parseExistsExpr(false)
	case token.CASE:
		return p.parseCaseExpr()
	case token.CAST:
		return p.parseCastExpr()
	case token.EOF:
		return nil, p.errorf(ErrUnexpectedEOF)
	default:
		return nil, p.errorf(ErrUnexpectedInExpr, p.token.Type)
	}
}

// parseIdentExpr parses an expression starting with a plain identifier:
// a function call, a qualified column, or a bare column.
func (p *Parser) parseIdentExpr() (ast.Expr, error) {
	name := p.token.Literal
	p.nextToken()

	switch {
	case p.check(token.LPAREN):
		return p.parseFuncCall(name)
	case p.check(token.DOT):
		p.nextToken()
		column, err := p.parseIdentifier()
		if err != nil {
			return nil, err
		}
		return ast.QualifiedColumn(name, column), nil
	default:
		return ast.Column(name), nil
	}
}

// parseQuotedIdentExpr parses an expression starting with a quoted
// identifier. Quoted identifiers never start function calls.
func (p *Parser) parseQuotedIdentExpr() (ast.Expr, error) {
	name := p.token.Literal
	p.nextToken()

	if p.match(token.DOT) {
		column, err := p.parseIdentifier()
		if err != nil {
			return nil, err
		}
		return ast.QualifiedColumn(name, column), nil
	}
	return ast.Column(name), nil
}

// parseFuncCall parses the argument list and optional OVER clause of a
// function call, with the opening paren current.
func (p *Parser) parseFuncCall(name string) (ast.Expr, error) {
	p.nextToken() // consume '('

	call := &ast.FuncCall{Name: name}
	if !p.match(token.RPAREN) {
		if p.match(token.DISTINCT) {
			call.Distinct = true
		}
		if p.check(token.STAR) {
			// COUNT(*) and friends.
			p.nextToken()
			call.Args = []ast.Expr{&ast.StarExpr{}}
		} else {
			args, err := p.parseExpressionList()
			if err != nil {
				return nil, err
			}
			call.Args = args
		}
		if err := p.expect(token.RPAREN); err != nil {
			return nil, err
		}
	}

	if p.check(token.OVER) {
		if p.dialect != nil && !p.dialect.SupportsWindowFunctions {
			return nil, p.errorf(ErrUnsupportedClause, "OVER", p.dialect.Name)
		}
		over, err := p.parseWindowSpec()
		if err != nil {
			return nil, err
		}
		call.Over = over
	}

	return call, nil
}

// parseExistsExpr parses EXISTS ( select ), with the EXISTS token current.
func (p *Parser) parseExistsExpr(not bool) (ast.Expr, error) {
	if err := p.expect(token.EXISTS); err != nil {
		return nil, err
	}
	if err := p.expect(token.LPAREN); err != nil {
		return nil, err
	}
	query, err := p.parseSelectStatement()
	if err != nil {
		return nil, err
	}
	if err := p.expect(token.RPAREN); err != nil {
		return nil, err
	}
	return &ast.ExistsExpr{Not: not, Query: query}, nil
}

// parseCaseExpr parses CASE [operand] WHEN ... THEN ... [ELSE ...] END.
func (p *Parser) parseCaseExpr() (ast.Expr, error) {
	if err := p.expect(token.CASE); err != nil {
		return nil, err
	}

	caseExpr := &ast.CaseExpr{}
	if !p.check(token.WHEN) {
		operand, err := p.parseExpression()
		if err != nil {
			return nil, err
		}
		caseExpr.Operand = operand
	}

	for p.match(token.WHEN) {
		cond, err := p.parseExpression()
		if err != nil {
			return nil, err
		}
		if err := p.expect(token.THEN); err != nil {
			return nil, err
		}
		result, err := p.parseExpression()
		if err != nil {
			return nil, err
		}
		caseExpr.Whens = append(caseExpr.Whens, &ast.WhenClause{Cond: cond, Result: result})
	}

	if p.match(token.ELSE) {
		elseExpr, err := p.parseExpression()
		if err != nil {
			return nil, err
		}
		caseExpr.Else = elseExpr
	}

	if err := p.expect(token.END); err != nil {
		return nil, err
	}
	return caseExpr, nil
}

// parseCastExpr parses CAST ( expr AS type ).
func (p *Parser) parseCastExpr() (ast.Expr, error) {
	if err := p.expect(token.CAST); err != nil {
		return nil, err
	}
	if err := p.expect(token.LPAREN); err != nil {
		return nil, err
	}
	expr, err := p.parseExpression()
	if err != nil {
		return nil, err
	}
	if err := p.expect(token.AS); err != nil {
		return nil, err
	}
	dataType, err := p.parseDataType()
	if err != nil {
		return nil, err
	}
	if err := p.expect(token.RPAREN); err != nil {
		return nil, err
	}
	return &ast.CastExpr{Expr: expr, Type: dataType}, nil
}

// parseDataType parses a type name plus optional parenthesized length or
// precision/scale parameters. The name resolves through the dialect's
// type table; unknown spellings become custom types.
func (p *Parser) parseDataType() (ast.DataType, error) {
	if !p.check(token.IDENT) {
		return ast.DataType{}, p.errorf(ErrUnexpectedToken, p.token.Type, "data type")
	}
	name := strings.ToUpper(p.token.Literal)
	p.nextToken()

	// Greedily extend multi-word type names the dialect knows, like
	// DOUBLE PRECISION or CHARACTER VARYING.
	if p.dialect != nil {
		for p.check(token.IDENT) {
			candidate := name + " " + strings.ToUpper(p.token.Literal)
			if _, ok := p.dialect.DataTypeFor(candidate); !ok {
				break
			}
			name = candidate
			p.nextToken()
		}
	}

	var dt ast.DataType
	if p.dialect != nil {
		if resolved, ok := p.dialect.DataTypeFor(name); ok {
			dt = resolved
		} else {
			dt = ast.CustomType(name)
		}
	} else {
		dt = ast.CustomType(name)
	}

	if p.match(token.LPAREN) {
		first, err := p.parseTypeParam()
		if err != nil {
			return ast.DataType{}, err
		}
		if p.match(token.COMMA) {
			second, err := p.parseTypeParam()
			if err != nil {
				return ast.DataType{}, err
			}
			dt.Precision = first
			dt.Scale = second
		} else {
			switch dt.Kind {
			case ast.TypeDecimal, ast.TypeFloat:
				dt.Precision = first
			default:
				dt.Length = first
			}
		}
		if err := p.expect(token.RPAREN); err != nil {
			return ast.DataType{}, err
		}
	}

	return dt, nil
}

func (p *Parser) parseTypeParam() (int, error) {
	n, err := p.parseUnsignedInt("type parameter")
	if err != nil {
		return 0, err
	}
	return int(n), nil
}
