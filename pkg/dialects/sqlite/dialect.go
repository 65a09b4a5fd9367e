// Package sqlite provides the SQLite dialect definition.
package sqlite

import (
	"github.com/schemalens/schemalens/pkg/ast"
	"github.com/schemalens/schemalens/pkg/dialect"
	"github.com/schemalens/schemalens/pkg/token"
)

func init() {
	dialect.Register(New(), "sqlite3")
}

// New returns the SQLite dialect configuration. SQLite also accepts square
// bracket quoting for compatibility with SQL Server scripts.
func New() *dialect.Config {
	return &dialect.Config{
		Name:      "sqlite",
		Keywords:  keywords(),
		Functions: functions(),
		DataTypes: dataTypes(),
		Operators: dialect.StandardOperators(),
		QuotePairs: []dialect.QuotePair{
			{Open: '"', Close: '"'},
			{Open: '`', Close: '`'},
			{Open: '[', Close: ']'},
		},
		StringQuote: '\'',
		KeywordTokens: map[string]token.TokenType{
			"autoincrement": token.AUTOINCREMENT,
		},

		SupportsAutoIncrement: true,
		AutoIncrementKeyword:  "AUTOINCREMENT",

		LimitKeyword:            "LIMIT",
		OffsetKeyword:           "OFFSET",
		SupportsCTEs:            true,
		SupportsRecursiveCTEs:   true,
		SupportsWindowFunctions: true,
	}
}

func keywords() map[string]struct{} {
	return dialect.MergeWords(dialect.StandardKeywords(),
		"ABORT", "ACTION", "ADD", "AFTER", "ALL", "ALTER", "ANALYZE", "AND", "AS", "ASC",
		"ATTACH", "AUTOINCREMENT", "BEFORE", "BEGIN", "BETWEEN", "BY", "CASCADE", "CASE",
		"CAST", "CHECK", "COLLATE", "COLUMN", "COMMIT", "CONFLICT", "CONSTRAINT", "CREATE",
		"CROSS", "CURRENT_DATE", "CURRENT_TIME", "CURRENT_TIMESTAMP", "DATABASE", "DEFAULT",
		"DEFERRABLE", "DEFERRED", "DELETE", "DESC", "DETACH", "DISTINCT", "DROP", "EACH",
		"ELSE", "END", "ESCAPE", "EXCEPT", "EXCLUSIVE", "EXISTS", "EXPLAIN", "FAIL", "FOR",
		"FOREIGN", "FROM", "FULL", "GLOB", "GROUP", "HAVING", "IF", "IGNORE", "IMMEDIATE",
		"IN", "INDEX", "INDEXED", "INITIALLY", "INNER", "INSERT", "INSTEAD", "INTERSECT",
		"INTO", "IS", "ISNULL", "JOIN", "KEY", "LEFT", "LIKE", "LIMIT", "MATCH", "NATURAL",
		"NO", "NOT", "NOTNULL", "NULL", "OF", "OFFSET", "ON", "OR", "ORDER", "OUTER", "PLAN",
		"PRAGMA", "PRIMARY", "QUERY", "RAISE", "RECURSIVE", "REFERENCES", "REGEXP", "REINDEX",
		"RELEASE", "RENAME", "REPLACE", "RESTRICT", "RIGHT", "ROLLBACK", "ROW", "SAVEPOINT",
		"SELECT", "SET", "TABLE", "TEMP", "TEMPORARY", "THEN", "TO", "TRANSACTION", "TRIGGER",
		"UNION", "UNIQUE", "UPDATE", "USING", "VACUUM", "VALUES", "VIEW", "VIRTUAL", "WHEN",
		"WHERE", "WITH", "WITHOUT",
	)
}

func functions() map[string]struct{} {
	return dialect.WordSet(
		"ABS", "CHANGES", "CHAR", "COALESCE", "GLOB", "IFNULL", "INSTR", "HEX", "LAST_INSERT_ROWID",
		"LENGTH", "LIKE", "LIKELIKE", "LOAD_EXTENSION", "LOWER", "LTRIM", "MAX", "MIN", "NULLIF",
		"PRINT", "QUOTE", "RANDOM", "RANDOMBLOB", "REPLACE", "ROUND", "RTRIM", "SOUNDEX",
		"SQLITE_COMPILEOPTION_GET", "SQLITE_COMPILEOPTION_USED", "SQLITE_SOURCE_ID",
		"SQLITE_VERSION", "SUBSTR", "TOTAL", "TRIM", "TYPEOF", "UNICODE", "UNLIKELY", "UPPER",
		"ZEROBLOB", "DATE", "DATETIME", "JULIANDAY", "STRFTIME",
		"AVG", "COUNT", "GROUP_CONCAT", "SUM", "ROW_NUMBER", "RANK", "DENSE_RANK",
		"PERCENT_RANK", "CUME_DIST", "NTILE", "LAG", "LEAD", "FIRST_VALUE", "LAST_VALUE",
		"NTH_VALUE",
	)
}

func dataTypes() map[string]ast.DataType {
	// SQLite uses type affinity, so INTEGER is 64-bit.
	types := dialect.StandardDataTypes()
	types["INTEGER"] = ast.IntegerType(64)
	types["REAL"] = ast.FloatType(53)
	types["NUMERIC"] = ast.DecimalType(0, 0)
	return types
}
