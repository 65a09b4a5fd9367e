// Package parser provides dialect-aware SQL parsing.
//
// # Usage
//
//	stmts, errs := parser.ParseWithDialect("SELECT a, b FROM t", "postgres")
//	if len(errs) > 0 {
//	    // handle errors
//	}
//
// Parsing never stops at the first malformed statement: errors are
// collected and the parser resynchronizes at the next semicolon or
// statement-starting keyword, so a script with one bad statement still
// yields every valid statement around it.
//
// # Grammar Overview
//
// The parser implements recursive descent with precedence climbing:
//
//	script      → statement [; statement]...
//	statement   → select | insert | update | delete
//	            | create_table | alter_table | drop_table
//	            | create_index | drop_index
//	select      → [WITH [RECURSIVE] cte_list] SELECT [DISTINCT] select_list
//	              [FROM from_clause] [WHERE expr] [GROUP BY expr_list]
//	              [HAVING expr] [ORDER BY order_list] [LIMIT n] [OFFSET n]
//	              [UNION [ALL] select]...
//
// See each file for the grammar rules of that section.
package parser

import (
	"fmt"

	"github.com/schemalens/schemalens/pkg/ast"
	"github.com/schemalens/schemalens/pkg/dialect"
	"github.com/schemalens/schemalens/pkg/token"
)

// Parser parses a token stream into statements.
type Parser struct {
	tokens []token.Token
	pos    int // index of the token following peek

	token token.Token // current token
	peek  token.Token // lookahead token

	errors  []error
	dialect *dialect.Config
}

// NewParser creates a parser over a pre-lexed token stream. The stream is
// expected to end with an EOF token, as produced by Tokenize.
func NewParser(tokens []token.Token, cfg *dialect.Config) *Parser {
	p := &Parser{
		tokens:  tokens,
		dialect: cfg,
	}
	// Read two tokens to initialize current and peek.
	p.nextToken()
	p.nextToken()
	return p
}

// Parse lexes and parses a SQL script with the given dialect. It returns
// every statement that parsed cleanly plus the accumulated errors.
func Parse(sql string, cfg *dialect.Config) ([]ast.Statement, []error) {
	tokens, err := Tokenize(sql, cfg)
	if err != nil {
		return nil, []error{err}
	}
	p := NewParser(tokens, cfg)
	return p.ParseStatements()
}

// ParseWithDialect parses a SQL script with a dialect resolved by name
// through the registry.
func ParseWithDialect(sql, dialectName string) ([]ast.Statement, []error) {
	cfg, err := dialect.Get(dialectName)
	if err != nil {
		return nil, []error{err}
	}
	return Parse(sql, cfg)
}

// Dialect returns the parser's dialect.
func (p *Parser) Dialect() *dialect.Config {
	return p.dialect
}

// ParseStatements parses semicolon-separated statements until the stream
// is exhausted, collecting errors and recovering between statements.
func (p *Parser) ParseStatements() ([]ast.Statement, []error) {
	var stmts []ast.Statement
	for !p.check(token.EOF) {
		stmt, err := p.parseStatement()
		if err != nil {
			p.errors = append(p.errors, err)
			p.synchronize()
			continue
		}
		stmts = append(stmts, stmt)
		p.match(token.SEMICOLON)
	}
	return stmts, p.errors
}

// parseStatement dispatches on the statement-starting keyword.
func (p *Parser) parseStatement() (ast.Statement, error) {
	switch p.token.Type {
	case token.SELECT, token.WITH:
		return p.parseSelectStatement()
	case token.INSERT:
		return p.parseInsertStatement()
	case token.UPDATE:
		return p.parseUpdateStatement()
	case token.DELETE:
		return p.parseDeleteStatement()
	case token.CREATE, token.ALTER, token.DROP:
		return p.parseDDLStatement()
	case token.EOF:
		return nil, p.errorf(ErrUnexpectedEOF)
	default:
		return nil, p.errorf("unexpected token %s at start of statement", p.token.Type)
	}
}

// synchronize advances past the failed statement: it skips tokens until a
// semicolon is consumed or a statement-starting keyword is current.
func (p *Parser) synchronize() {
	p.nextToken()
	for !p.check(token.EOF) {
		if p.check(token.SEMICOLON) {
			p.nextToken()
			return
		}
		switch p.token.Type {
		case token.SELECT, token.WITH, token.INSERT, token.UPDATE, token.DELETE,
			token.CREATE, token.ALTER, token.DROP:
			return
		}
		p.nextToken()
	}
}

// ---------- Token Helpers ----------

// nextToken advances to the next token.
func (p *Parser) nextToken() {
	p.token = p.peek
	if p.pos < len(p.tokens) {
		p.peek = p.tokens[p.pos]
		p.pos++
	} else {
		p.peek = token.Token{Type: token.EOF}
	}
}

// check returns true if the current token is of the given type.
func (p *Parser) check(t token.TokenType) bool {
	return p.token.Type == t
}

// checkPeek returns true if the peek token is of the given type.
func (p *Parser) checkPeek(t token.TokenType) bool {
	return p.peek.Type == t
}

// match consumes the current token if it matches and returns true.
func (p *Parser) match(t token.TokenType) bool {
	if p.check(t) {
		p.nextToken()
		return true
	}
	return false
}

// expect consumes the current token if it matches, otherwise returns an
// unexpected-token error.
func (p *Parser) expect(t token.TokenType) error {
	if p.check(t) {
		p.nextToken()
		return nil
	}
	return p.errorf(ErrUnexpectedToken, p.token.Type, t)
}

// errorf builds a ParseError at the current token position.
func (p *Parser) errorf(format string, args ...any) error {
	return &ParseError{
		Pos:     p.token.Pos,
		Message: fmt.Sprintf(format, args...),
	}
}

// ---------- Shared Productions ----------

// parseIdentifier consumes an identifier (plain or quoted) and returns
// its text.
func (p *Parser) parseIdentifier() (string, error) {
	if p.check(token.IDENT) || p.check(token.QIDENT) {
		name := p.token.Literal
		p.nextToken()
		return name, nil
	}
	return "", p.errorf(ErrUnexpectedToken, p.token.Type, "identifier")
}

// parseColumnNameList parses a parenthesized, comma-separated list of
// column names.
func (p *Parser) parseColumnNameList() ([]string, error) {
	if err := p.expect(token.LPAREN); err != nil {
		return nil, err
	}
	var cols []string
	for {
		name, err := p.parseIdentifier()
		if err != nil {
			return nil, err
		}
		cols = append(cols, name)
		if !p.match(token.COMMA) {
			break
		}
	}
	if err := p.expect(token.RPAREN); err != nil {
		return nil, err
	}
	return cols, nil
}

// parseExpressionList parses a comma-separated expression list.
func (p *Parser) parseExpressionList() ([]ast.Expr, error) {
	var exprs []ast.Expr
	for {
		expr, err := p.parseExpression()
		if err != nil {
			return nil, err
		}
		exprs = append(exprs, expr)
		if !p.match(token.COMMA) {
			break
		}
	}
	return exprs, nil
}
