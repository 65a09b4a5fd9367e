package parser

import (
	"github.com/schemalens/schemalens/pkg/ast"
	"github.com/schemalens/schemalens/pkg/token"
)

// ---------- Window Specifications ----------

// parseWindowSpec parses the OVER clause of a window function:
//
//	over  → OVER ( [PARTITION BY expr_list] [ORDER BY order_list] [frame] )
//	frame → (ROWS | RANGE) (bound | BETWEEN bound AND bound)
//	bound → UNBOUNDED PRECEDING | n PRECEDING | CURRENT ROW
//	      | n FOLLOWING | UNBOUNDED FOLLOWING
func (p *Parser) parseWindowSpec() (*ast.WindowSpec, error) {
	if err := p.expect(token.OVER); err != nil {
		return nil, err
	}
	if err := p.expect(token.LPAREN); err != nil {
		return nil, err
	}

	spec := &ast.WindowSpec{}

	if p.match(token.PARTITION) {
		if err := p.expect(token.BY); err != nil {
			return nil, err
		}
		exprs, err := p.parseExpressionList()
		if err != nil {
			return nil, err
		}
		spec.PartitionBy = exprs
	}

	if p.match(token.ORDER) {
		if err := p.expect(token.BY); err != nil {
			return nil, err
		}
		orderBy, err := p.parseOrderByList()
		if err != nil {
			return nil, err
		}
		spec.OrderBy = orderBy
	}

	if p.check(token.ROWS) || p.check(token.RANGE) {
		frame, err := p.parseFrameSpec()
		if err != nil {
			return nil, err
		}
		spec.Frame = frame
	}

	if err := p.expect(token.RPAREN); err != nil {
		return nil, err
	}
	return spec, nil
}

func (p *Parser) parseFrameSpec() (*ast.FrameSpec, error) {
	frame := &ast.FrameSpec{}
	if p.token.Type == token.RANGE {
		frame.Unit = ast.FrameRange
	}
	p.nextToken()

	if p.match(token.BETWEEN) {
		start, err := p.parseFrameBound()
		if err != nil {
			return nil, err
		}
		if err := p.expect(token.AND); err != nil {
			return nil, err
		}
		end, err := p.parseFrameBound()
		if err != nil {
			return nil, err
		}
		frame.Start = start
		frame.End = &end
		return frame, nil
	}

	start, err := p.parseFrameBound()
	if err != nil {
		return nil, err
	}
	frame.Start = start
	return frame, nil
}

func (p *Parser) parseFrameBound() (ast.FrameBound, error) {
	switch p.token.Type {
	case token.UNBOUNDED:
		p.nextToken()
		switch {
		case p.match(token.PRECEDING):
			return ast.FrameBound{Kind: ast.UnboundedPreceding}, nil
		case p.match(token.FOLLOWING):
			return ast.FrameBound{Kind: ast.UnboundedFollowing}, nil
		default:
			return ast.FrameBound{}, p.errorf(ErrUnexpectedToken, p.token.Type, "PRECEDING or FOLLOWING")
		}
	case token.CURRENT:
		p.nextToken()
		if err := p.expect(token.ROW); err != nil {
			return ast.FrameBound{}, err
		}
		return ast.FrameBound{Kind: ast.CurrentRow}, nil
	case token.INT:
		offset, err := p.parseUnsignedInt("frame bound")
		if err != nil {
			return ast.FrameBound{}, err
		}
		switch {
		case p.match(token.PRECEDING):
			return ast.FrameBound{Kind: ast.Preceding, Offset: offset}, nil
		case p.match(token.FOLLOWING):
			return ast.FrameBound{Kind: ast.Following, Offset: offset}, nil
		default:
			return ast.FrameBound{}, p.errorf(ErrUnexpectedToken, p.token.Type, "PRECEDING or FOLLOWING")
		}
	default:
		return ast.FrameBound{}, p.errorf(ErrUnexpectedToken, p.token.Type, "frame bound")
	}
}
