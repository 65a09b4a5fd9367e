package dialect

import "github.com/schemalens/schemalens/pkg/ast"

// WordSet builds an uppercase lookup set from a word list. Inputs are
// expected to already be uppercase.
func WordSet(words ...string) map[string]struct{} {
	set := make(map[string]struct{}, len(words))
	for _, w := range words {
		set[w] = struct{}{}
	}
	return set
}

// MergeWords adds words to a set and returns it. Dialect packages use this
// to layer their vocabulary on top of the standard tables.
func MergeWords(set map[string]struct{}, words ...string) map[string]struct{} {
	for _, w := range words {
		set[w] = struct{}{}
	}
	return set
}

// StandardKeywords returns a fresh copy of the ANSI keyword set. Each call
// allocates so dialects can extend their copy without aliasing.
func StandardKeywords() map[string]struct{} {
	return WordSet(
		"SELECT", "FROM", "WHERE", "JOIN", "INNER", "LEFT", "RIGHT", "FULL", "OUTER", "CROSS",
		"ON", "USING", "GROUP", "BY", "HAVING", "ORDER", "ASC", "DESC", "LIMIT", "OFFSET",
		"INSERT", "INTO", "VALUES", "UPDATE", "SET", "DELETE", "CREATE", "TABLE", "INDEX",
		"ALTER", "DROP", "ADD", "MODIFY", "RENAME", "COLUMN", "CONSTRAINT", "PRIMARY", "FOREIGN",
		"KEY", "UNIQUE", "CHECK", "DEFAULT", "NOT", "NULL", "AUTO_INCREMENT", "AUTOINCREMENT",
		"IF", "EXISTS", "DISTINCT", "AS", "AND", "OR", "IN", "BETWEEN", "LIKE", "ILIKE", "IS",
		"UNION", "ALL", "INTERSECT", "EXCEPT", "WITH", "RECURSIVE", "CASE", "WHEN", "THEN",
		"ELSE", "END", "CAST",
	)
}

// StandardFunctions returns a fresh copy of the ANSI built-in function set.
func StandardFunctions() map[string]struct{} {
	return WordSet(
		"ABS", "ACOS", "ASIN", "ATAN", "ATAN2", "CEIL", "CEILING", "COS", "EXP", "FLOOR", "LN",
		"LOG", "LOG10", "MOD", "PI", "POWER", "ROUND", "SIGN", "SIN", "SQRT", "TAN", "TRUNC",
		"COUNT", "SUM", "AVG", "MIN", "MAX", "STDDEV", "STDDEV_POP", "STDDEV_SAMP", "VARIANCE",
		"VAR_POP", "VAR_SAMP", "ROW_NUMBER", "RANK", "DENSE_RANK", "PERCENT_RANK", "CUME_DIST",
		"NTILE", "LAG", "LEAD", "FIRST_VALUE", "LAST_VALUE", "NTH_VALUE", "COALESCE", "NULLIF",
		"GREATEST", "LEAST", "CONCAT", "SUBSTRING", "SUBSTR", "LENGTH", "LEN", "POSITION",
		"LOCATE", "REPLACE", "TRIM", "LTRIM", "RTRIM", "LOWER", "UPPER", "NOW", "CURRENT_DATE",
		"CURRENT_TIME", "CURRENT_TIMESTAMP", "EXTRACT", "DATE_PART", "YEAR", "MONTH", "DAY",
		"HOUR", "MINUTE", "SECOND", "CAST", "CONVERT",
	)
}

// StandardDataTypes returns a fresh copy of the ANSI type name table.
func StandardDataTypes() map[string]ast.DataType {
	return map[string]ast.DataType{
		"BOOLEAN":           ast.BooleanType(),
		"BOOL":              ast.BooleanType(),
		"SMALLINT":          ast.SmallIntType(),
		"INTEGER":           ast.IntegerType(32),
		"INT":               ast.IntegerType(32),
		"BIGINT":            ast.BigIntType(),
		"FLOAT":             ast.FloatType(0),
		"REAL":              ast.FloatType(24),
		"DOUBLE":            ast.DoubleType(),
		"DOUBLE PRECISION":  ast.DoubleType(),
		"DECIMAL":           ast.DecimalType(0, 0),
		"NUMERIC":           ast.DecimalType(0, 0),
		"CHAR":              ast.CharType(0),
		"CHARACTER":         ast.CharType(0),
		"VARCHAR":           ast.VarcharType(0),
		"CHARACTER VARYING": ast.VarcharType(0),
		"TEXT":              ast.TextType(),
		"CLOB":              ast.TextType(),
		"BINARY":            ast.BinaryType(0),
		"VARBINARY":         ast.VarbinaryType(0),
		"BLOB":              ast.BlobType(),
		"DATE":              ast.DateType(),
		"TIME":              ast.TimeType(),
		"TIMESTAMP":         ast.TimestampType(),
		"DATETIME":          ast.DateTimeType(),
		"UUID":              ast.UUIDType(),
		"JSON":              ast.JSONType(),
	}
}

// StandardOperators returns a fresh copy of the operator table shared by
// every dialect. Word operators are keyed uppercase.
func StandardOperators() map[string]ast.BinaryOp {
	return map[string]ast.BinaryOp{
		"||":    ast.OpConcat,
		"+":     ast.OpPlus,
		"-":     ast.OpMinus,
		"*":     ast.OpMultiply,
		"/":     ast.OpDivide,
		"%":     ast.OpModulo,
		"&":     ast.OpBitAnd,
		"|":     ast.OpBitOr,
		"^":     ast.OpBitXor,
		"<<":    ast.OpLeftShift,
		">>":    ast.OpRightShift,
		"=":     ast.OpEq,
		"<>":    ast.OpNotEq,
		"!=":    ast.OpNotEq,
		"<":     ast.OpLt,
		"<=":    ast.OpLtEq,
		">":     ast.OpGt,
		">=":    ast.OpGtEq,
		"AND":   ast.OpAnd,
		"OR":    ast.OpOr,
		"LIKE":  ast.OpLike,
		"ILIKE": ast.OpILike,
	}
}
