// Package standard provides the ANSI SQL dialect definition.
package standard

import (
	"github.com/schemalens/schemalens/pkg/dialect"
	"github.com/schemalens/schemalens/pkg/token"
)

func init() {
	dialect.Register(New(), "sql", "ansi")
}

// New returns the ANSI SQL dialect configuration. The standard dialect
// accepts both AUTO_INCREMENT spellings so generic DDL parses without
// picking a vendor.
func New() *dialect.Config {
	return &dialect.Config{
		Name:        "standard",
		Keywords:    dialect.StandardKeywords(),
		Functions:   dialect.StandardFunctions(),
		DataTypes:   dialect.StandardDataTypes(),
		Operators:   dialect.StandardOperators(),
		QuotePairs:  []dialect.QuotePair{{Open: '"', Close: '"'}},
		StringQuote: '\'',
		KeywordTokens: map[string]token.TokenType{
			"auto_increment": token.AUTOINCREMENT,
			"autoincrement":  token.AUTOINCREMENT,
		},
		LimitKeyword:             "LIMIT",
		OffsetKeyword:            "OFFSET",
		CaseSensitiveIdentifiers: true,
		SupportsCTEs:             true,
		SupportsRecursiveCTEs:    true,
		SupportsWindowFunctions:  true,
	}
}
