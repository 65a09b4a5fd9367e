// Package dialect provides SQL dialect configuration.
//
// This package contains the public contract for dialect definitions used by
// the lexer, parser, and CLI. Concrete dialect implementations are registered
// from pkg/dialects/*/ packages.
package dialect

import (
	"strings"

	"github.com/schemalens/schemalens/pkg/ast"
	"github.com/schemalens/schemalens/pkg/token"
)

// Feature identifies an optional dialect capability.
type Feature int

const (
	// FeatureAutoIncrement means the dialect has an AUTO_INCREMENT-style column keyword.
	FeatureAutoIncrement Feature = iota
	// FeatureIdentity means the dialect supports identity column syntax.
	FeatureIdentity
	// FeatureCTE means WITH clauses are supported.
	FeatureCTE
	// FeatureRecursiveCTE means WITH RECURSIVE is supported.
	FeatureRecursiveCTE
	// FeatureWindowFunctions means OVER clauses are supported.
	FeatureWindowFunctions
)

// String returns the string representation of Feature.
func (f Feature) String() string {
	switch f {
	case FeatureAutoIncrement:
		return "auto-increment"
	case FeatureIdentity:
		return "identity"
	case FeatureCTE:
		return "cte"
	case FeatureRecursiveCTE:
		return "recursive-cte"
	case FeatureWindowFunctions:
		return "window-functions"
	default:
		return "unknown"
	}
}

// QuotePair describes an identifier quoting style, e.g. {'[', ']'} for SQL Server.
type QuotePair struct {
	Open  byte
	Close byte
}

// Config is a SQL dialect definition. It is pure data: the lexer consults
// QuotePairs and KeywordTokens, the parser consults the type and operator
// tables, and the CLI renders the feature flags.
type Config struct {
	Name string

	// Keywords holds the dialect's reserved words, uppercase.
	Keywords map[string]struct{}
	// Functions holds the dialect's built-in function names, uppercase.
	Functions map[string]struct{}
	// DataTypes maps uppercase type names to their canonical representation.
	DataTypes map[string]ast.DataType
	// Operators maps operator spellings (symbols, or uppercase words like LIKE)
	// to binary operators.
	Operators map[string]ast.BinaryOp

	// QuotePairs lists the identifier quoting styles the lexer accepts.
	// The first pair is the dialect's preferred style.
	QuotePairs []QuotePair
	// StringQuote is the string literal delimiter, always '\'' in practice.
	StringQuote byte

	// KeywordTokens maps dialect-specific keyword spellings (lowercase) to
	// token types. The lexer consults this before the core keyword table, so
	// a dialect can claim spellings like "auto_increment" without them being
	// keywords everywhere.
	KeywordTokens map[string]token.TokenType

	SupportsAutoIncrement bool
	AutoIncrementKeyword  string
	SupportsIdentity      bool
	IdentityKeyword       string

	LimitKeyword  string
	OffsetKeyword string

	CaseSensitiveIdentifiers bool

	SupportsCTEs            bool
	SupportsRecursiveCTEs   bool
	SupportsWindowFunctions bool
}

// IsKeyword reports whether word is reserved in this dialect.
func (c *Config) IsKeyword(word string) bool {
	_, ok := c.Keywords[strings.ToUpper(word)]
	return ok
}

// IsFunction reports whether word names a built-in function in this dialect.
func (c *Config) IsFunction(word string) bool {
	_, ok := c.Functions[strings.ToUpper(word)]
	return ok
}

// DataTypeFor resolves a type name to its canonical data type.
func (c *Config) DataTypeFor(name string) (ast.DataType, bool) {
	dt, ok := c.DataTypes[strings.ToUpper(name)]
	return dt, ok
}

// OperatorFor resolves an operator spelling to a binary operator.
// Word operators like LIKE are matched case-insensitively.
func (c *Config) OperatorFor(symbol string) (ast.BinaryOp, bool) {
	op, ok := c.Operators[strings.ToUpper(symbol)]
	return op, ok
}

// KeywordToken resolves a dialect-specific keyword spelling. The lookup is
// against the lowercase spelling, matching token.LookupIdent conventions.
func (c *Config) KeywordToken(word string) (token.TokenType, bool) {
	t, ok := c.KeywordTokens[strings.ToLower(word)]
	return t, ok
}

// CloseQuote returns the closing quote byte for an opening identifier quote,
// or false if the byte does not open a quoted identifier in this dialect.
func (c *Config) CloseQuote(open byte) (byte, bool) {
	for _, p := range c.QuotePairs {
		if p.Open == open {
			return p.Close, true
		}
	}
	return 0, false
}

// SupportsFeature reports whether the dialect supports an optional capability.
func (c *Config) SupportsFeature(f Feature) bool {
	switch f {
	case FeatureAutoIncrement:
		return c.SupportsAutoIncrement
	case FeatureIdentity:
		return c.SupportsIdentity
	case FeatureCTE:
		return c.SupportsCTEs
	case FeatureRecursiveCTE:
		return c.SupportsRecursiveCTEs
	case FeatureWindowFunctions:
		return c.SupportsWindowFunctions
	default:
		return false
	}
}

// AutoIncrementSyntax returns the dialect's auto-incrementing column syntax,
// preferring identity syntax where both are available. Returns "" when the
// dialect has neither.
func (c *Config) AutoIncrementSyntax() string {
	if c.SupportsIdentity {
		return c.IdentityKeyword
	}
	if c.SupportsAutoIncrement {
		return c.AutoIncrementKeyword
	}
	return ""
}
