// Package oracle provides the Oracle Database dialect definition.
package oracle

import (
	"github.com/schemalens/schemalens/pkg/ast"
	"github.com/schemalens/schemalens/pkg/dialect"
)

func init() {
	dialect.Register(New())
}

// New returns the Oracle dialect configuration.
func New() *dialect.Config {
	return &dialect.Config{
		Name:        "oracle",
		Keywords:    keywords(),
		Functions:   functions(),
		DataTypes:   dataTypes(),
		Operators:   dialect.StandardOperators(),
		QuotePairs:  []dialect.QuotePair{{Open: '"', Close: '"'}, {Open: '`', Close: '`'}},
		StringQuote: '\'',

		SupportsIdentity: true,
		IdentityKeyword:  "GENERATED ALWAYS AS IDENTITY",

		LimitKeyword:             "ROWNUM",
		OffsetKeyword:            "OFFSET",
		CaseSensitiveIdentifiers: true,
		SupportsCTEs:             true,
		SupportsRecursiveCTEs:    true,
		SupportsWindowFunctions:  true,
	}
}

func keywords() map[string]struct{} {
	return dialect.MergeWords(dialect.StandardKeywords(),
		"ACCESS", "ADD", "ALL", "ALTER", "AND", "ANY", "AS", "ASC", "AUDIT", "BETWEEN", "BY",
		"CHAR", "CHECK", "CLUSTER", "COLUMN", "COMMENT", "COMPRESS", "CONNECT", "CREATE", "CURRENT",
		"DATE", "DECIMAL", "DEFAULT", "DELETE", "DESC", "DISTINCT", "DROP", "ELSE", "EXCLUSIVE",
		"EXISTS", "FILE", "FLOAT", "FOR", "FROM", "GRANT", "GROUP", "HAVING", "IDENTIFIED", "IMMEDIATE",
		"IN", "INCREMENT", "INDEX", "INITIAL", "INSERT", "INTEGER", "INTERSECT", "INTO", "IS", "LEVEL",
		"LIKE", "LOCK", "LONG", "MAXEXTENTS", "MINUS", "MLSLABEL", "MODE", "MODIFY", "NOAUDIT",
		"NOCOMPRESS", "NOT", "NOWAIT", "NULL", "NUMBER", "OF", "OFFLINE", "ON", "ONLINE", "OPTION",
		"OR", "ORDER", "PCTFREE", "PRIOR", "PRIVILEGES", "PUBLIC", "RAW", "RENAME", "RESOURCE",
		"REVOKE", "ROW", "ROWID", "ROWNUM", "ROWS", "SELECT", "SESSION", "SET", "SHARE", "SIZE",
		"SMALLINT", "START", "SUCCESSFUL", "SYNONYM", "SYSDATE", "TABLE", "THEN", "TO", "TRIGGER",
		"UID", "UNION", "UNIQUE", "UPDATE", "USER", "VALIDATE", "VALUES", "VARCHAR", "VARCHAR2",
		"VIEW", "WHENEVER", "WHERE", "WITH",
	)
}

func functions() map[string]struct{} {
	return dialect.WordSet(
		"ABS", "ACOS", "ASIN", "ATAN", "ATAN2", "CEIL", "COS", "COSH", "EXP", "FLOOR", "LN", "LOG",
		"MOD", "POWER", "ROUND", "SIGN", "SIN", "SINH", "SQRT", "TAN", "TANH", "TRUNC",
		"COUNT", "SUM", "AVG", "MIN", "MAX", "STDDEV", "STDDEV_POP", "STDDEV_SAMP", "VARIANCE",
		"VAR_POP", "VAR_SAMP", "COVAR_POP", "COVAR_SAMP", "CORR", "REGR_SLOPE", "REGR_INTERCEPT",
		"REGR_COUNT", "REGR_R2", "REGR_AVGX", "REGR_AVGY", "REGR_SXX", "REGR_SYY", "REGR_SXY",
		"ROW_NUMBER", "RANK", "DENSE_RANK", "PERCENT_RANK", "CUME_DIST", "NTILE", "LAG", "LEAD",
		"FIRST_VALUE", "LAST_VALUE", "NTH_VALUE", "RATIO_TO_REPORT", "COALESCE", "NVL", "NVL2",
		"NULLIF", "DECODE", "CASE", "GREATEST", "LEAST", "CONCAT", "SUBSTR", "SUBSTRING", "LENGTH",
		"LEN", "INSTR", "REPLACE", "TRANSLATE", "TRIM", "LTRIM", "RTRIM", "LOWER", "UPPER",
		"INITCAP", "LPAD", "RPAD", "SYSDATE", "CURRENT_DATE", "CURRENT_TIMESTAMP", "LOCALTIMESTAMP",
		"ADD_MONTHS", "LAST_DAY", "MONTHS_BETWEEN", "NEXT_DAY", "EXTRACT",
		"TO_CHAR", "TO_DATE", "TO_TIMESTAMP", "TO_NUMBER", "NLS_INITCAP", "NLS_LOWER", "NLS_UPPER",
		"ASCII", "CHR", "ROWIDTOCHAR", "USER", "UID", "USERENV",
	)
}

func dataTypes() map[string]ast.DataType {
	types := dialect.StandardDataTypes()
	types["NUMBER"] = ast.DecimalType(0, 0)
	types["PLS_INTEGER"] = ast.IntegerType(32)
	types["BINARY_INTEGER"] = ast.IntegerType(32)
	types["SIMPLE_INTEGER"] = ast.IntegerType(32)
	types["NATURAL"] = ast.DataType{Kind: ast.TypeInteger, Size: 32, Unsigned: true}
	types["POSITIVE"] = ast.DataType{Kind: ast.TypeInteger, Size: 32, Unsigned: true}
	types["SIGNTYPE"] = ast.TinyIntType()
	types["VARCHAR2"] = ast.VarcharType(0)
	types["NVARCHAR2"] = ast.CustomType("NVARCHAR2")
	types["CLOB"] = ast.TextType()
	types["NCLOB"] = ast.CustomType("NCLOB")
	types["BLOB"] = ast.BlobType()
	types["BFILE"] = ast.CustomType("BFILE")
	types["RAW"] = ast.VarbinaryType(0)
	types["ROWID"] = ast.CustomType("ROWID")
	types["UROWID"] = ast.CustomType("UROWID")
	// Oracle DATE carries a time component.
	types["DATE"] = ast.DateTimeType()
	types["TIMESTAMP"] = ast.TimestampType()
	types["INTERVAL"] = ast.CustomType("INTERVAL")
	return types
}
