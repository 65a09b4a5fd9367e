// Package mysql provides the MySQL/MariaDB dialect definition.
package mysql

import (
	"github.com/schemalens/schemalens/pkg/ast"
	"github.com/schemalens/schemalens/pkg/dialect"
	"github.com/schemalens/schemalens/pkg/token"
)

func init() {
	dialect.Register(New(), "mariadb")
}

// New returns the MySQL dialect configuration.
func New() *dialect.Config {
	return &dialect.Config{
		Name:        "mysql",
		Keywords:    keywords(),
		Functions:   functions(),
		DataTypes:   dataTypes(),
		Operators:   dialect.StandardOperators(),
		QuotePairs:  []dialect.QuotePair{{Open: '`', Close: '`'}, {Open: '"', Close: '"'}},
		StringQuote: '\'',
		KeywordTokens: map[string]token.TokenType{
			"auto_increment": token.AUTOINCREMENT,
		},

		SupportsAutoIncrement: true,
		AutoIncrementKeyword:  "AUTO_INCREMENT",

		LimitKeyword:            "LIMIT",
		OffsetKeyword:           "OFFSET",
		SupportsCTEs:            true,
		SupportsRecursiveCTEs:   true,
		SupportsWindowFunctions: true,
	}
}

func keywords() map[string]struct{} {
	return dialect.MergeWords(dialect.StandardKeywords(),
		"ACCESSIBLE", "ADD", "ALL", "ALTER", "ANALYZE", "AND", "AS", "ASC", "ASENSITIVE",
		"BEFORE", "BETWEEN", "BIGINT", "BINARY", "BLOB", "BOTH", "BY", "CALL", "CASCADE",
		"CASE", "CHANGE", "CHAR", "CHARACTER", "CHECK", "COLLATE", "COLUMN", "CONDITION",
		"CONSTRAINT", "CONTINUE", "CONVERT", "CREATE", "CROSS", "CURRENT_DATE", "CURRENT_TIME",
		"CURRENT_TIMESTAMP", "CURRENT_USER", "CURSOR", "DATABASE", "DATABASES", "DAY_HOUR",
		"DAY_MICROSECOND", "DAY_MINUTE", "DAY_SECOND", "DEC", "DECIMAL", "DECLARE", "DEFAULT",
		"DELAYED", "DELETE", "DESC", "DESCRIBE", "DETERMINISTIC", "DISTINCT", "DISTINCTROW",
		"DIV", "DOUBLE", "DROP", "DUAL", "EACH", "ELSE", "ELSEIF", "ENCLOSED", "ESCAPED",
		"EXISTS", "EXIT", "EXPLAIN", "FALSE", "FETCH", "FLOAT", "FLOAT4", "FLOAT8", "FOR",
		"FORCE", "FOREIGN", "FROM", "FULLTEXT", "GENERATED", "GET", "GRANT", "GROUP", "HAVING",
		"HIGH_PRIORITY", "HOUR_MICROSECOND", "HOUR_MINUTE", "HOUR_SECOND", "IF", "IGNORE",
		"IN", "INDEX", "INFILE", "INNER", "INOUT", "INSENSITIVE", "INSERT", "INT", "INT1",
		"INT2", "INT3", "INT4", "INT8", "INTEGER", "INTERVAL", "INTO", "IO_AFTER_GTIDS",
		"IO_BEFORE_GTIDS", "IS", "ITERATE", "JOIN", "KEY", "KEYS", "KILL", "LEADING", "LEAVE",
		"LEFT", "LIKE", "LIMIT", "LINEAR", "LINES", "LOAD", "LOCALTIME", "LOCALTIMESTAMP",
		"LOCK", "LONG", "LONGBLOB", "LONGTEXT", "LOOP", "LOW_PRIORITY", "MASTER_BIND",
		"MASTER_SSL_VERIFY_SERVER_CERT", "MATCH", "MAXVALUE", "MEDIUMBLOB", "MEDIUMINT",
		"MEDIUMTEXT", "MIDDLEINT", "MINUTE_MICROSECOND", "MINUTE_MINUTE", "MINUTE_SECOND",
		"MOD", "MODIFIES", "NATURAL", "NOT", "NO_WRITE_TO_BINLOG", "NULL", "NUMERIC",
		"ON", "OPTIMIZE", "OPTIMIZER_COSTS", "OPTION", "OPTIONALLY", "OR", "ORDER", "OUT",
		"OUTER", "OUTFILE", "PARTITION", "PRECISION", "PRIMARY", "PROCEDURE", "PURGE",
		"RANGE", "READ", "READS", "READ_WRITE", "REAL", "REFERENCES", "REGEXP", "RELEASE",
		"RENAME", "REPEAT", "REPLACE", "REQUIRE", "RESIGNAL", "RESTRICT", "RETURN", "REVOKE",
		"RIGHT", "RLIKE", "SCHEMA", "SCHEMAS", "SECOND_MICROSECOND", "SELECT", "SENSITIVE",
		"SEPARATOR", "SET", "SHOW", "SIGNAL", "SMALLINT", "SPATIAL", "SPECIFIC", "SQL",
		"SQLEXCEPTION", "SQLSTATE", "SQLWARNING", "SQL_BIG_RESULT", "SQL_CALC_FOUND_ROWS",
		"SQL_SMALL_RESULT", "SSL", "STARTING", "STORED", "STRAIGHT_JOIN", "TABLE", "TERMINATED",
		"THEN", "TINYBLOB", "TINYINT", "TINYTEXT", "TO", "TRAILING", "TRIGGER", "TRUE",
		"UNDO", "UNION", "UNIQUE", "UNLOCK", "UNSIGNED", "UPDATE", "USAGE", "USE", "USING",
		"UTC_DATE", "UTC_TIME", "UTC_TIMESTAMP", "VALUES", "VARBINARY", "VARCHAR", "VARCHARACTER",
		"VARYING", "VIRTUAL", "WHEN", "WHERE", "WHILE", "WITH", "WRITE", "XOR", "YEAR_MONTH",
		"ZEROFILL",
	)
}

func functions() map[string]struct{} {
	return dialect.WordSet(
		"ABS", "ACOS", "ASIN", "ATAN", "ATAN2", "CEIL", "CEILING", "COS", "COT", "CRC32",
		"DEGREES", "EXP", "FLOOR", "LN", "LOG", "LOG10", "LOG2", "MOD", "PI", "POW", "POWER",
		"RADIANS", "RAND", "ROUND", "SIGN", "SIN", "SQRT", "TAN", "TRUNCATE",
		"BIT_AND", "BIT_OR", "BIT_XOR", "COUNT", "GROUP_CONCAT", "MAX", "MIN", "STD", "STDDEV",
		"STDDEV_POP", "STDDEV_SAMP", "SUM", "VAR_POP", "VAR_SAMP", "VARIANCE",
		"ROW_NUMBER", "RANK", "DENSE_RANK", "PERCENT_RANK", "CUME_DIST", "NTILE", "LAG", "LEAD",
		"FIRST_VALUE", "LAST_VALUE", "NTH_VALUE", "COALESCE", "IF", "IFNULL", "NULLIF",
		"GREATEST", "LEAST", "CONCAT", "CONCAT_WS", "ELT", "FIELD", "FIND_IN_SET", "FORMAT",
		"INSERT", "INSTR", "LCASE", "LEFT", "LENGTH", "LOAD_FILE", "LOCATE", "LOWER", "LPAD",
		"LTRIM", "MID", "POSITION", "QUOTE", "REPEAT", "REPLACE", "REVERSE", "RIGHT", "RPAD",
		"RTRIM", "SOUNDEX", "SPACE", "STRCMP", "SUBSTRING", "SUBSTR", "TRIM", "UCASE", "UNHEX",
		"UPPER", "WEIGHT_STRING", "NOW", "CURDATE", "CURTIME", "DATE", "DATEDIFF", "DATE_ADD",
		"DATE_SUB", "DATE_FORMAT", "DAY", "DAYNAME", "DAYOFMONTH", "DAYOFWEEK", "DAYOFYEAR",
		"EXTRACT", "FROM_DAYS", "FROM_UNIXTIME", "HOUR", "LAST_DAY", "MAKEDATE", "MAKETIME",
		"MICROSECOND", "MINUTE", "MONTH", "MONTHNAME", "QUARTER", "SECOND", "SEC_TO_TIME",
		"STR_TO_DATE", "TIME", "TIME_TO_SEC", "TIMEDIFF", "TIMESTAMP", "TIMESTAMPADD",
		"TIMESTAMPDIFF", "TO_DAYS", "TO_SECONDS", "UNIX_TIMESTAMP", "WEEK", "WEEKDAY",
		"WEEKOFYEAR", "YEAR", "YEARWEEK", "ADDDATE", "SUBDATE", "ADDTIME", "SUBTIME",
		"CONVERT_TZ", "GET_FORMAT", "INET_ATON", "INET_NTOA", "INET6_ATON", "INET6_NTOA",
		"IS_IPV4", "IS_IPV4_COMPAT", "IS_IPV4_MAPPED", "IS_IPV6", "UUID", "UUID_SHORT",
	)
}

func dataTypes() map[string]ast.DataType {
	types := dialect.StandardDataTypes()
	types["TINYINT"] = ast.TinyIntType()
	types["MEDIUMINT"] = ast.CustomType("MEDIUMINT")
	types["BIGINT"] = ast.BigIntType()
	types["FLOAT"] = ast.FloatType(0)
	types["DOUBLE"] = ast.DoubleType()
	types["DECIMAL"] = ast.DecimalType(0, 0)
	types["NUMERIC"] = ast.DecimalType(0, 0)
	types["BIT"] = ast.CustomType("BIT")
	types["YEAR"] = ast.CustomType("YEAR")
	types["TINYTEXT"] = ast.CustomType("TINYTEXT")
	types["MEDIUMTEXT"] = ast.CustomType("MEDIUMTEXT")
	types["LONGTEXT"] = ast.CustomType("LONGTEXT")
	types["TINYBLOB"] = ast.CustomType("TINYBLOB")
	types["MEDIUMBLOB"] = ast.CustomType("MEDIUMBLOB")
	types["LONGBLOB"] = ast.CustomType("LONGBLOB")
	types["ENUM"] = ast.CustomType("ENUM")
	types["SET"] = ast.CustomType("SET")
	types["GEOMETRY"] = ast.CustomType("GEOMETRY")
	types["POINT"] = ast.CustomType("POINT")
	types["LINESTRING"] = ast.CustomType("LINESTRING")
	types["POLYGON"] = ast.CustomType("POLYGON")
	types["MULTIPOINT"] = ast.CustomType("MULTIPOINT")
	types["MULTILINESTRING"] = ast.CustomType("MULTILINESTRING")
	types["MULTIPOLYGON"] = ast.CustomType("MULTIPOLYGON")
	types["GEOMETRYCOLLECTION"] = ast.CustomType("GEOMETRYCOLLECTION")
	types["JSON"] = ast.JSONType()
	return types
}
