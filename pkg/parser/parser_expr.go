package parser

import (
	"github.com/schemalens/schemalens/pkg/ast"
	"github.com/schemalens/schemalens/pkg/token"
)

// ---------- Expressions ----------
//
// Precedence climbing, lowest to highest:
//
//	expr       → or
//	or         → and (OR and)*
//	and        → equality (AND equality)*
//	equality   → comparison ((= | != | <>) comparison)*
//	comparison → term ((< | <= | > | >=| LIKE | ILIKE) term)*
//	           | term [NOT] IN ( expr_list | select )
//	           | term [NOT] BETWEEN term AND term
//	           | term IS [NOT] term
//	term       → factor ((+ | - | ||) factor)*
//	factor     → unary ((* | / | % | & | "|" | ^ | << | >>) unary)*
//	unary      → (NOT | - | + | ~) unary | primary
//
// The multi-token forms (IN, BETWEEN, IS) consume their whole construct
// and return, rather than continuing the left-associative loop. BETWEEN
// bounds parse at term precedence so the separating AND is not consumed.

func (p *Parser) parseExpression() (ast.Expr, error) {
	return p.parseLogicalOr()
}

func (p *Parser) parseLogicalOr() (ast.Expr, error) {
	left, err := p.parseLogicalAnd()
	if err != nil {
		return nil, err
	}
	for p.match(token.OR) {
		right, err := p.parseLogicalAnd()
		if err != nil {
			return nil, err
		}
		left = &ast.BinaryExpr{Left: left, Op: ast.OpOr, Right: right}
	}
	return left, nil
}

func (p *Parser) parseLogicalAnd() (ast.Expr, error) {
	left, err := p.parseEquality()
	if err != nil {
		return nil, err
	}
	for p.match(token.AND) {
		right, err := p.parseEquality()
		if err != nil {
			return nil, err
		}
		left = &ast.BinaryExpr{Left: left, Op: ast.OpAnd, Right: right}
	}
	return left, nil
}

func (p *Parser) parseEquality() (ast.Expr, error) {
	left, err := p.parseComparison()
	if err != nil {
		return nil, err
	}
	for {
		var op ast.BinaryOp
		switch p.token.Type {
		case token.EQ:
			op = ast.OpEq
		case token.NE:
			op = ast.OpNotEq
		default:
			return left, nil
		}
		p.nextToken()
		right, err := p.parseComparison()
		if err != nil {
			return nil, err
		}
		left = &ast.BinaryExpr{Left: left, Op: op, Right: right}
	}
}

func (p *Parser) parseComparison() (ast.Expr, error) {
	left, err := p.parseTerm()
	if err != nil {
		return nil, err
	}
	for {
		// Postfix NOT introduces the negated multi-token forms.
		if p.check(token.NOT) {
			switch p.peek.Type {
			case token.IN:
				p.nextToken()
				return p.parseInExpr(left, true)
			case token.BETWEEN:
				p.nextToken()
				return p.parseBetweenExpr(left, true)
			case token.LIKE, token.ILIKE:
				p.nextToken()
				op := ast.OpLike
				if p.token.Type == token.ILIKE {
					op = ast.OpILike
				}
				p.nextToken()
				right, err := p.parseTerm()
				if err != nil {
					return nil, err
				}
				return &ast.UnaryExpr{
					Op:      ast.UnaryNot,
					Operand: &ast.BinaryExpr{Left: left, Op: op, Right: right},
				}, nil
			default:
				return left, nil
			}
		}

		var op ast.BinaryOp
		switch p.token.Type {
		case token.LT:
			op = ast.OpLt
		case token.LE:
			op = ast.OpLtEq
		case token.GT:
			op = ast.OpGt
		case token.GE:
			op = ast.OpGtEq
		case token.LIKE:
			op = ast.OpLike
		case token.ILIKE:
			op = ast.OpILike
		case token.IN:
			return p.parseInExpr(left, false)
		case token.BETWEEN:
			return p.parseBetweenExpr(left, false)
		case token.IS:
			// IS [NOT] lowers to the plain (in)equality forms.
			p.nextToken()
			op := ast.OpEq
			if p.match(token.NOT) {
				op = ast.OpNotEq
			}
			right, err := p.parseTerm()
			if err != nil {
				return nil, err
			}
			return &ast.BinaryExpr{Left: left, Op: op, Right: right}, nil
		default:
			return left, nil
		}
		p.nextToken()
		right, err := p.parseTerm()
		if err != nil {
			return nil, err
		}
		left = &ast.BinaryExpr{Left: left, Op: op, Right: right}
	}
}

// parseInExpr parses IN ( expr_list ) or IN ( select ), with the IN token
// current.
func (p *Parser) parseInExpr(left ast.Expr, not bool) (ast.Expr, error) {
	p.nextToken() // consume IN
	if err := p.expect(token.LPAREN); err != nil {
		return nil, err
	}

	in := &ast.InExpr{Expr: left, Not: not}
	if p.check(token.SELECT) || p.check(token.WITH) {
		query, err := p.parseSelectStatement()
		if err != nil {
			return nil, err
		}
		in.Subquery = query
	} else {
		list, err := p.parseExpressionList()
		if err != nil {
			return nil, err
		}
		in.List = list
	}

	if err := p.expect(token.RPAREN); err != nil {
		return nil, err
	}
	return in, nil
}

// parseBetweenExpr parses BETWEEN term AND term, with the BETWEEN token
// current.
func (p *Parser) parseBetweenExpr(left ast.Expr, not bool) (ast.Expr, error) {
	p.nextToken() // consume BETWEEN
	low, err := p.parseTerm()
	if err != nil {
		return nil, err
	}
	if err := p.expect(token.AND); err != nil {
		return nil, err
	}
	high, err := p.parseTerm()
	if err != nil {
		return nil, err
	}
	return &ast.BetweenExpr{Expr: left, Not: not, Low: low, High: high}, nil
}

func (p *Parser) parseTerm() (ast.Expr, error) {
	left, err := p.parseFactor()
	if err != nil {
		return nil, err
	}
	for {
		var op ast.BinaryOp
		switch p.token.Type {
		case token.PLUS:
			op = ast.OpPlus
		case token.MINUS:
			op = ast.OpMinus
		case token.DPIPE:
			op = ast.OpConcat
		default:
			return left, nil
		}
		p.nextToken()
		right, err := p.parseFactor()
		if err != nil {
			return nil, err
		}
		left = &ast.BinaryExpr{Left: left, Op: op, Right: right}
	}
}

func (p *Parser) parseFactor() (ast.Expr, error) {
	left, err := p.parseUnary()
	if err != nil {
		return nil, err
	}
	for {
		var op ast.BinaryOp
		switch p.token.Type {
		case token.STAR:
			op = ast.OpMultiply
		case token.SLASH:
			op = ast.OpDivide
		case token.PERCENT:
			op = ast.OpModulo
		case token.AMP:
			op = ast.OpBitAnd
		case token.PIPE:
			op = ast.OpBitOr
		case token.CARET:
			op = ast.OpBitXor
		case token.LSHIFT:
			op = ast.OpLeftShift
		case token.RSHIFT:
			op = ast.OpRightShift
		default:
			return left, nil
		}
		p.nextToken()
		right, err := p.parseUnary()
		if err != nil {
			return nil, err
		}
		left = &ast.BinaryExpr{Left: left, Op: op, Right: right}
	}
}

func (p *Parser) parseUnary() (ast.Expr, error) {
	switch p.token.Type {
	case token.NOT:
		if p.checkPeek(token.EXISTS) {
			p.nextToken()
			return p.parseExistsExpr(true)
		}
		p.nextToken()
		operand, err := p.parseUnary()
		if err != nil {
			return nil, err
		}
		return &ast.UnaryExpr{Op: ast.UnaryNot, Operand: operand}, nil
	case token.MINUS:
		p.nextToken()
		operand, err := p.parseUnary()
		if err != nil {
			return nil, err
		}
		return &ast.UnaryExpr{Op: ast.UnaryMinus, Operand: operand}, nil
	case token.PLUS:
		// Unary plus is a no-op.
		p.nextToken()
		return p.parseUnary()
	case token.TILDE:
		p.nextToken()
		operand, err := p.parseUnary()
		if err != nil {
			return nil, err
		}
		return &ast.UnaryExpr{Op: ast.UnaryBitNot, Operand: operand}, nil
	}
	return p.parsePrimary()
}
