// Package postgres provides the PostgreSQL dialect definition.
// This package is pure Go with no database driver dependencies.
package postgres

import (
	"github.com/schemalens/schemalens/pkg/ast"
	"github.com/schemalens/schemalens/pkg/dialect"
)

func init() {
	dialect.Register(New(), "postgresql", "pg")
}

// New returns the PostgreSQL dialect configuration.
func New() *dialect.Config {
	return &dialect.Config{
		Name:        "postgres",
		Keywords:    keywords(),
		Functions:   functions(),
		DataTypes:   dataTypes(),
		Operators:   dialect.StandardOperators(),
		QuotePairs:  []dialect.QuotePair{{Open: '"', Close: '"'}, {Open: '`', Close: '`'}},
		StringQuote: '\'',

		SupportsIdentity: true,
		IdentityKeyword:  "GENERATED ALWAYS AS IDENTITY",

		LimitKeyword:             "LIMIT",
		OffsetKeyword:            "OFFSET",
		CaseSensitiveIdentifiers: true,
		SupportsCTEs:             true,
		SupportsRecursiveCTEs:    true,
		SupportsWindowFunctions:  true,
	}
}

func keywords() map[string]struct{} {
	return dialect.MergeWords(dialect.StandardKeywords(),
		"ABORT", "ABSOLUTE", "ACCESS", "ACTION", "ADD", "ADMIN", "AFTER", "AGGREGATE",
		"ALSO", "ALTER", "ALWAYS", "ASSERTION", "ASSIGNMENT", "AT", "AUTHORIZATION",
		"BACKWARD", "BEFORE", "BEGIN", "BY", "CACHE", "CALLED", "CASCADE", "CASCADED",
		"CATALOG", "CHAIN", "CHARACTERISTICS", "CHECKPOINT", "CLASS", "CLOSE", "CLUSTER",
		"COMMENT", "COMMENTS", "COMMIT", "COMMITTED", "CONFIGURATION", "CONNECTION",
		"CONSTRAINTS", "CONTENT", "CONTINUE", "CONVERSION", "COPY", "COST", "CSV",
		"CUBE", "CURRENT", "CURSOR", "CYCLE", "DATA", "DATABASE", "DAY", "DEALLOCATE",
		"DECLARE", "DEFAULTS", "DEFER", "DEFERRED", "DEFINER", "DELETE", "DELIMITER",
		"DELIMITERS", "DICTIONARY", "DISABLE", "DISCARD", "DOCUMENT", "DOMAIN", "DOUBLE",
		"DROP", "EACH", "ENABLE", "ENCODING", "ENCRYPTED", "ENUM", "ESCAPE", "EVENT",
		"EXCLUDE", "EXCLUDING", "EXCLUSIVE", "EXECUTE", "EXPLAIN", "EXTENSION", "EXTERNAL",
		"FAMILY", "FILTER", "FIRST", "FOLLOWING", "FORCE", "FORWARD", "FUNCTION", "FUNCTIONS",
		"GLOBAL", "GRANTED", "HANDLER", "HEADER", "HOLD", "HOUR", "IDENTITY", "IF", "IMMEDIATE",
		"IMMUTABLE", "IMPLICIT", "IMPORT", "INCLUDING", "INCREMENT", "INDEX", "INDEXES",
		"INHERIT", "INHERITS", "INLINE", "INSENSITIVE", "INSERT", "INSTEAD", "INVOKER",
		"ISOLATION", "KEY", "LABEL", "LANGUAGE", "LARGE", "LAST", "LEAKPROOF", "LEVEL",
		"LISTEN", "LOAD", "LOCAL", "LOCATION", "LOCK", "MAPPING", "MATCH", "MATERIALIZED",
		"MAXVALUE", "MINUTE", "MINVALUE", "MODE", "MONTH", "MOVE", "NAME", "NAMES",
		"NEXT", "NO", "NOTHING", "NOTIFY", "NOWAIT", "NULLS", "OBJECT", "OF", "OIDS",
		"OPERATOR", "OPTION", "OPTIONS", "ORDINALITY", "OUT", "OVER", "OWNED", "OWNER",
		"PARSER", "PARTIAL", "PARTITION", "PASSING", "PASSWORD", "PLANS", "POLICY",
		"PRECEDING", "PREPARE", "PREPARED", "PRESERVE", "PRIOR", "PRIVILEGES", "PROCEDURAL",
		"PROCEDURE", "PROGRAM", "QUOTE", "RANGE", "READ", "REASSIGN", "RECHECK", "RECURSIVE",
		"REF", "REFRESH", "REINDEX", "RELATIVE", "RELEASE", "RENAME", "REPEATABLE",
		"REPLACE", "REPLICA", "RESET", "RESTART", "RESTRICT", "RETURNING", "RETURNS",
		"REVOKE", "ROLE", "ROLLBACK", "ROLLUP", "ROW", "RULE", "SAVEPOINT", "SCHEMA",
		"SCROLL", "SEARCH", "SECOND", "SECURITY", "SEQUENCE", "SEQUENCES", "SERIALIZABLE",
		"SERVER", "SESSION", "SET", "SETS", "SHARE", "SHOW", "SIMPLE", "SNAPSHOT", "SQL",
		"STABLE", "STANDALONE", "START", "STATEMENT", "STATISTICS", "STDIN", "STDOUT",
		"STORAGE", "STRICT", "STRIP", "SYSID", "SYSTEM", "TABLES", "TABLESPACE", "TEMP",
		"TEMPLATE", "TEMPORARY", "TEXT", "TRANSACTION", "TRIGGER", "TRIM", "TRUNCATE",
		"TRUSTED", "TYPE", "TYPES", "UNBOUNDED", "UNCOMMITTED", "UNENCRYPTED", "UNKNOWN",
		"UNLISTEN", "UNLOGGED", "UNTIL", "UPDATE", "VACUUM", "VALID", "VALIDATE", "VALIDATOR",
		"VALUE", "VARYING", "VERSION", "VIEW", "VOLATILE", "WHITESPACE", "WITHIN", "WITHOUT",
		"WORK", "WRAPPER", "WRITE", "XML", "XMLATTRIBUTES", "XMLCONCAT", "XMLELEMENT",
		"XMLEXISTS", "XMLFOREST", "XMLPARSE", "XMLPI", "XMLROOT", "XMLSERIALIZE", "YEAR",
		"YES", "ZONE",
	)
}

func functions() map[string]struct{} {
	return dialect.WordSet(
		"ABS", "ACOS", "ASIN", "ATAN", "ATAN2", "CEIL", "CEILING", "COS", "COT", "DEGREES",
		"DIV", "EXP", "FLOOR", "LN", "LOG", "LOG10", "MOD", "PI", "POWER", "RADIANS", "ROUND",
		"SIGN", "SIN", "SQRT", "TAN", "TRUNC", "WIDTH_BUCKET", "RANDOM", "SETSEED",
		"ARRAY_AGG", "AVG", "BIT_AND", "BIT_OR", "BOOL_AND", "BOOL_OR", "COUNT", "EVERY",
		"MAX", "MIN", "STDDEV", "STDDEV_POP", "STDDEV_SAMP", "SUM", "VAR_POP", "VAR_SAMP",
		"VARIANCE", "RANK", "DENSE_RANK", "PERCENT_RANK", "CUME_DIST", "NTILE", "ROW_NUMBER",
		"FIRST_VALUE", "LAST_VALUE", "LAG", "LEAD", "NTH_VALUE", "RATIO_TO_REPORT",
		"COALESCE", "NULLIF", "GREATEST", "LEAST", "CONCAT", "CONCAT_WS", "FORMAT",
		"LEFT", "RIGHT", "LENGTH", "LOWER", "UPPER", "LPAD", "RPAD", "LTRIM", "RTRIM",
		"TRIM", "SUBSTRING", "SUBSTR", "POSITION", "STRPOS", "REPLACE", "REGEXP_MATCH",
		"REGEXP_REPLACE", "REGEXP_SPLIT", "SPLIT_PART", "NOW", "CURRENT_DATE", "CURRENT_TIME",
		"CURRENT_TIMESTAMP", "EXTRACT", "DATE_PART", "DATE_TRUNC", "AGE", "TO_CHAR", "TO_DATE",
		"TO_TIMESTAMP", "GENERATE_SERIES", "UNNEST", "ARRAY_LENGTH", "CARDINALITY",
	)
}

func dataTypes() map[string]ast.DataType {
	types := dialect.StandardDataTypes()
	types["SERIAL"] = ast.IntegerType(32)
	types["BIGSERIAL"] = ast.BigIntType()
	types["SMALLSERIAL"] = ast.SmallIntType()
	types["MONEY"] = ast.DecimalType(10, 2)
	types["INET"] = ast.CustomType("INET")
	types["CIDR"] = ast.CustomType("CIDR")
	types["MACADDR"] = ast.CustomType("MACADDR")
	types["TSVECTOR"] = ast.CustomType("TSVECTOR")
	types["TSQUERY"] = ast.CustomType("TSQUERY")
	types["UUID"] = ast.UUIDType()
	types["JSON"] = ast.JSONType()
	types["JSONB"] = ast.JSONType()
	types["XML"] = ast.CustomType("XML")
	types["POINT"] = ast.CustomType("POINT")
	types["LINE"] = ast.CustomType("LINE")
	types["LSEG"] = ast.CustomType("LSEG")
	types["BOX"] = ast.CustomType("BOX")
	types["PATH"] = ast.CustomType("PATH")
	types["POLYGON"] = ast.CustomType("POLYGON")
	types["CIRCLE"] = ast.CustomType("CIRCLE")
	return types
}
