// Package mssql provides the Microsoft SQL Server dialect definition.
package mssql

import (
	"github.com/schemalens/schemalens/pkg/ast"
	"github.com/schemalens/schemalens/pkg/dialect"
)

func init() {
	dialect.Register(New(), "mssql", "sqlserver")
}

// New returns the SQL Server dialect configuration.
func New() *dialect.Config {
	return &dialect.Config{
		Name:        "SQL Server",
		Keywords:    keywords(),
		Functions:   functions(),
		DataTypes:   dataTypes(),
		Operators:   dialect.StandardOperators(),
		QuotePairs:  []dialect.QuotePair{{Open: '[', Close: ']'}, {Open: '"', Close: '"'}},
		StringQuote: '\'',

		SupportsAutoIncrement: true,
		AutoIncrementKeyword:  "IDENTITY(1,1)",
		SupportsIdentity:      true,
		IdentityKeyword:       "IDENTITY",

		LimitKeyword:            "TOP",
		OffsetKeyword:           "OFFSET",
		SupportsCTEs:            true,
		SupportsRecursiveCTEs:   true,
		SupportsWindowFunctions: true,
	}
}

func keywords() map[string]struct{} {
	return dialect.MergeWords(dialect.StandardKeywords(),
		"ADD", "ALL", "ALTER", "AND", "ANY", "AS", "ASC", "AUTHORIZATION", "BACKUP", "BEGIN",
		"BETWEEN", "BREAK", "BROWSE", "BULK", "BY", "CASCADE", "CASE", "CHECK", "CHECKPOINT",
		"CLOSE", "CLUSTERED", "COALESCE", "COLLATE", "COLUMN", "COMMIT", "COMPUTE", "CONSTRAINT",
		"CONTAINS", "CONTAINSTABLE", "CONTINUE", "CONVERT", "CREATE", "CROSS", "CURRENT",
		"CURRENT_DATE", "CURRENT_TIME", "CURRENT_TIMESTAMP", "CURRENT_USER", "CURSOR", "DATABASE",
		"DBCC", "DEALLOCATE", "DECLARE", "DEFAULT", "DELETE", "DENY", "DESC", "DISK", "DISTINCT",
		"DISTRIBUTED", "DOUBLE", "DROP", "DUMP", "ELSE", "END", "ERRLVL", "ESCAPE", "EXCEPT",
		"EXEC", "EXECUTE", "EXISTS", "EXIT", "EXTERNAL", "FETCH", "FILE", "FILLFACTOR", "FOR",
		"FOREIGN", "FREETEXT", "FREETEXTTABLE", "FROM", "FULL", "FUNCTION", "GOTO", "GRANT",
		"GROUP", "HAVING", "HOLDLOCK", "IDENTITY", "IDENTITYCOL", "IDENTITY_INSERT", "IF",
		"IN", "INDEX", "INNER", "INSERT", "INTERSECT", "INTO", "IS", "JOIN", "KEY", "KILL",
		"LEFT", "LIKE", "LINENO", "LOAD", "MERGE", "NATIONAL", "NOCHECK", "NONCLUSTERED",
		"NOT", "NULL", "NULLIF", "OF", "OFF", "OFFSETS", "ON", "OPEN", "OPENDATASOURCE",
		"OPENQUERY", "OPENROWSET", "OPENXML", "OPTION", "OR", "ORDER", "OUTER", "OVER",
		"PERCENT", "PIVOT", "PLAN", "PRECISION", "PRIMARY", "PRINT", "PROC", "PROCEDURE",
		"PUBLIC", "RAISERROR", "READ", "READTEXT", "RECONFIGURE", "REFERENCES", "REPLICATION",
		"RESTORE", "RESTRICT", "RETURN", "REVERT", "REVOKE", "RIGHT", "ROLLBACK", "ROWCOUNT",
		"ROWGUIDCOL", "RULE", "SAVE", "SCHEMA", "SECURITYAUDIT", "SELECT", "SEMANTICKEYPHRASETABLE",
		"SEMANTICSIMILARITYDETAILSTABLE", "SEMANTICSIMILARITYTABLE", "SESSION_USER", "SET",
		"SETUSER", "SHUTDOWN", "SOME", "STATISTICS", "SYSTEM_USER", "TABLE", "TABLESAMPLE",
		"TEXTSIZE", "THEN", "TO", "TOP", "TRAN", "TRANSACTION", "TRIGGER", "TRUNCATE", "TRY_CONVERT",
		"TSEQUAL", "UNION", "UNIQUE", "UNPIVOT", "UPDATE", "UPDATETEXT", "USE", "USER", "VALUES",
		"VARYING", "VIEW", "WAITFOR", "WHEN", "WHERE", "WHILE", "WITH", "WITHIN", "WRITETEXT", "XML",
	)
}

func functions() map[string]struct{} {
	return dialect.WordSet(
		"ABS", "ACOS", "ASIN", "ATAN", "ATN2", "CEILING", "COS", "COT", "DEGREES", "EXP", "FLOOR",
		"LOG", "LOG10", "PI", "POWER", "RADIANS", "RAND", "ROUND", "SIGN", "SIN", "SQRT", "SQUARE",
		"TAN", "COUNT", "COUNT_BIG", "GROUPING", "GROUPING_ID", "MAX", "MIN", "SUM", "STDEV", "STDEVP",
		"VAR", "VARP", "CHECKSUM_AGG", "ROW_NUMBER", "RANK", "DENSE_RANK", "NTILE", "LAG", "LEAD",
		"FIRST_VALUE", "LAST_VALUE", "PERCENTILE_CONT", "PERCENTILE_DISC", "CUME_DIST", "PERCENT_RANK",
		"COALESCE", "ISNULL", "NULLIF", "CHOOSE", "IIF", "CONCAT", "FORMAT", "LEFT", "LEN", "LOWER",
		"LTRIM", "NCHAR", "PATINDEX", "REPLACE", "REPLICATE", "REVERSE", "RIGHT", "RTRIM", "SPACE",
		"STR", "STUFF", "SUBSTRING", "UNICODE", "UPPER", "ASCII", "CHAR", "CHARINDEX", "DIFFERENCE",
		"SOUNDEX", "GETDATE", "CURRENT_TIMESTAMP", "DATEADD", "DATEDIFF", "DATENAME", "DATEPART",
		"DAY", "MONTH", "YEAR", "CONVERT", "CAST", "PARSE", "TRY_CONVERT", "TRY_PARSE", "DATALENGTH",
		"ISDATE", "ISNUMERIC", "NEWID", "NEWSEQUENTIALID",
	)
}

func dataTypes() map[string]ast.DataType {
	types := dialect.StandardDataTypes()
	types["BIT"] = ast.CustomType("BIT")
	types["TINYINT"] = ast.DataType{Kind: ast.TypeTinyInt, Unsigned: true}
	types["SMALLINT"] = ast.DataType{Kind: ast.TypeSmallInt, Unsigned: true}
	types["INT"] = ast.DataType{Kind: ast.TypeInteger, Size: 32, Unsigned: true}
	types["BIGINT"] = ast.DataType{Kind: ast.TypeBigInt, Unsigned: true}
	types["SMALLMONEY"] = ast.CustomType("SMALLMONEY")
	types["MONEY"] = ast.CustomType("MONEY")
	types["REAL"] = ast.FloatType(24)
	types["FLOAT"] = ast.FloatType(53)
	types["DECIMAL"] = ast.DecimalType(0, 0)
	types["NUMERIC"] = ast.DecimalType(0, 0)
	types["CHAR"] = ast.CharType(0)
	types["VARCHAR"] = ast.VarcharType(0)
	types["TEXT"] = ast.TextType()
	types["NCHAR"] = ast.CustomType("NCHAR")
	types["NVARCHAR"] = ast.CustomType("NVARCHAR")
	types["NTEXT"] = ast.CustomType("NTEXT")
	types["BINARY"] = ast.BinaryType(0)
	types["VARBINARY"] = ast.VarbinaryType(0)
	types["IMAGE"] = ast.BlobType()
	types["UNIQUEIDENTIFIER"] = ast.UUIDType()
	types["XML"] = ast.CustomType("XML")
	types["GEOGRAPHY"] = ast.CustomType("GEOGRAPHY")
	types["GEOMETRY"] = ast.CustomType("GEOMETRY")
	return types
}
