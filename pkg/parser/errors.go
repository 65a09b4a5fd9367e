package parser

import (
	"fmt"

	"github.com/schemalens/schemalens/pkg/token"
)

// ParseError represents a parsing error with position information.
type ParseError struct {
	Pos     token.Position
	Message string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parse error at line %d, column %d: %s", e.Pos.Line, e.Pos.Column, e.Message)
}

// LexError represents a lexical analysis error.
type LexError struct {
	Pos     token.Position
	Message string
}

func (e *LexError) Error() string {
	return fmt.Sprintf("lexer error at line %d, column %d: %s", e.Pos.Line, e.Pos.Column, e.Message)
}

// Common error messages
const (
	ErrUnexpectedToken    = "unexpected token %s, expected %s"
	ErrUnexpectedInExpr   = "unexpected token %s in expression"
	ErrUnexpectedChar     = "unexpected character %q"
	ErrUnexpectedEOF      = "unexpected end of input"
	ErrUnterminatedString = "unterminated string literal"
	ErrUnterminatedQuote  = "unterminated quoted identifier"
	ErrInvalidNumber      = "invalid number literal %q"
	ErrUnsupportedClause  = "%s is not supported in the %s dialect"
)
