// Package token defines the lexical token types for SQL parsing.
//
// The token set is closed: dialect-specific keyword spellings (for example
// AUTOINCREMENT vs AUTO_INCREMENT) are mapped onto these kinds by the active
// dialect configuration rather than by registering new kinds.
package token

import "fmt"

// TokenType represents the type of a lexical token.
//
//nolint:revive // Accept stutter as token.TokenType is clear and widely used
type TokenType int32

const (
	// Special tokens
	EOF TokenType = iota
	ILLEGAL

	// Literals
	IDENT  // users, user_id
	QIDENT // "order", `from`, [select]
	INT    // 123
	FLOAT  // 45.67
	STRING // 'hello'

	// Operators and punctuation
	PLUS      // +
	MINUS     // -
	STAR      // *
	SLASH     // /
	PERCENT   // %
	DPIPE     // ||
	AMP       // &
	PIPE      // |
	CARET     // ^
	TILDE     // ~
	LSHIFT    // <<
	RSHIFT    // >>
	EQ        // =
	NE        // != or <>
	LT        // <
	GT        // >
	LE        // <=
	GE        // >=
	DOT       // .
	COMMA     // ,
	SEMICOLON // ;
	COLON     // :
	DCOLON    // ::
	QUESTION  // ?
	AT        // @
	LPAREN    // (
	RPAREN    // )
	LBRACKET  // [
	RBRACKET  // ]

	// Keywords (alphabetical)
	ACTION
	ADD
	ALL
	ALTER
	AND
	AS
	ASC
	AUTOINCREMENT
	BETWEEN
	BY
	CASCADE
	CASE
	CAST
	CHECK
	COLUMN
	CONFLICT
	CONSTRAINT
	CREATE
	CROSS
	CURRENT
	DEFAULT
	DELETE
	DESC
	DISTINCT
	DO
	DROP
	ELSE
	END
	EXCEPT
	EXISTS
	FALSE
	FIRST
	FOLLOWING
	FOREIGN
	FROM
	FULL
	GROUP
	HAVING
	IF
	ILIKE
	IN
	INDEX
	INNER
	INSERT
	INTERSECT
	INTO
	IS
	JOIN
	KEY
	LAST
	LEFT
	LIKE
	LIMIT
	MODIFY
	NO
	NOT
	NOTHING
	NULL
	NULLS
	OFFSET
	ON
	OR
	ORDER
	OUTER
	OVER
	PARTITION
	PRECEDING
	PRIMARY
	RANGE
	RECURSIVE
	REFERENCES
	RENAME
	RESTRICT
	RETURNING
	RIGHT
	ROW
	ROWS
	SELECT
	SET
	TABLE
	THEN
	TO
	TRUE
	UNBOUNDED
	UNION
	UNIQUE
	UPDATE
	USING
	VALUES
	WHEN
	WHERE
	WITH
)

// String returns a human-readable representation of the token type.
func (t TokenType) String() string {
	if name, ok := tokenNames[t]; ok {
		return name
	}
	return fmt.Sprintf("TOKEN(%d)", t)
}

// tokenNames maps token types to their string representations.
var tokenNames = map[TokenType]string{
	EOF:     "EOF",
	ILLEGAL: "ILLEGAL",

	IDENT:  "IDENT",
	QIDENT: "QIDENT",
	INT:    "INT",
	FLOAT:  "FLOAT",
	STRING: "STRING",

	PLUS:      "+",
	MINUS:     "-",
	STAR:      "*",
	SLASH:     "/",
	PERCENT:   "%",
	DPIPE:     "||",
	AMP:       "&",
	PIPE:      "|",
	CARET:     "^",
	TILDE:     "~",
	LSHIFT:    "<<",
	RSHIFT:    ">>",
	EQ:        "=",
	NE:        "!=",
	LT:        "<",
	GT:        ">",
	LE:        "<=",
	GE:        ">=",
	DOT:       ".",
	COMMA:     ",",
	SEMICOLON: ";",
	COLON:     ":",
	DCOLON:    "::",
	QUESTION:  "?",
	AT:        "@",
	LPAREN:    "(",
	RPAREN:    ")",
	LBRACKET:  "[",
	RBRACKET:  "]",

	ACTION:        "ACTION",
	ADD:           "ADD",
	ALL:           "ALL",
	ALTER:         "ALTER",
	AND:           "AND",
	AS:            "AS",
	ASC:           "ASC",
	AUTOINCREMENT: "AUTO_INCREMENT",
	BETWEEN:       "BETWEEN",
	BY:            "BY",
	CASCADE:       "CASCADE",
	CASE:          "CASE",
	CAST:          "CAST",
	CHECK:         "CHECK",
	COLUMN:        "COLUMN",
	CONFLICT:      "CONFLICT",
	CONSTRAINT:    "CONSTRAINT",
	CREATE:        "CREATE",
	CROSS:         "CROSS",
	CURRENT:       "CURRENT",
	DEFAULT:       "DEFAULT",
	DELETE:        "DELETE",
	DESC:          "DESC",
	DISTINCT:      "DISTINCT",
	DO:            "DO",
	DROP:          "DROP",
	ELSE:          "ELSE",
	END:           "END",
	EXCEPT:        "EXCEPT",
	EXISTS:        "EXISTS",
	FALSE:         "FALSE",
	FIRST:         "FIRST",
	FOLLOWING:     "FOLLOWING",
	FOREIGN:       "FOREIGN",
	FROM:          "FROM",
	FULL:          "FULL",
	GROUP:         "GROUP",
	HAVING:        "HAVING",
	IF:            "IF",
	ILIKE:         "ILIKE",
	IN:            "IN",
	INDEX:         "INDEX",
	INNER:         "INNER",
	INSERT:        "INSERT",
	INTERSECT:     "INTERSECT",
	INTO:          "INTO",
	IS:            "IS",
	JOIN:          "JOIN",
	KEY:           "KEY",
	LAST:          "LAST",
	LEFT:          "LEFT",
	LIKE:          "LIKE",
	LIMIT:         "LIMIT",
	MODIFY:        "MODIFY",
	NO:            "NO",
	NOT:           "NOT",
	NOTHING:       "NOTHING",
	NULL:          "NULL",
	NULLS:         "NULLS",
	OFFSET:        "OFFSET",
	ON:            "ON",
	OR:            "OR",
	ORDER:         "ORDER",
	OUTER:         "OUTER",
	OVER:          "OVER",
	PARTITION:     "PARTITION",
	PRECEDING:     "PRECEDING",
	PRIMARY:       "PRIMARY",
	RANGE:         "RANGE",
	RECURSIVE:     "RECURSIVE",
	REFERENCES:    "REFERENCES",
	RENAME:        "RENAME",
	RESTRICT:      "RESTRICT",
	RETURNING:     "RETURNING",
	RIGHT:         "RIGHT",
	ROW:           "ROW",
	ROWS:          "ROWS",
	SELECT:        "SELECT",
	SET:           "SET",
	TABLE:         "TABLE",
	THEN:          "THEN",
	TO:            "TO",
	TRUE:          "TRUE",
	UNBOUNDED:     "UNBOUNDED",
	UNION:         "UNION",
	UNIQUE:        "UNIQUE",
	UPDATE:        "UPDATE",
	USING:         "USING",
	VALUES:        "VALUES",
	WHEN:          "WHEN",
	WHERE:         "WHERE",
	WITH:          "WITH",
}

// keywords maps lowercase keyword strings to their token types.
// The AUTO_INCREMENT spellings are absent on purpose: dialects map their
// own spelling onto AUTOINCREMENT through their keyword tables.
var keywords = map[string]TokenType{
	"action":     ACTION,
	"add":        ADD,
	"all":        ALL,
	"alter":      ALTER,
	"and":        AND,
	"as":         AS,
	"asc":        ASC,
	"between":    BETWEEN,
	"by":         BY,
	"cascade":    CASCADE,
	"case":       CASE,
	"cast":       CAST,
	"check":      CHECK,
	"column":     COLUMN,
	"conflict":   CONFLICT,
	"constraint": CONSTRAINT,
	"create":     CREATE,
	"cross":      CROSS,
	"current":    CURRENT,
	"default":    DEFAULT,
	"delete":     DELETE,
	"desc":       DESC,
	"distinct":   DISTINCT,
	"do":         DO,
	"drop":       DROP,
	"else":       ELSE,
	"end":        END,
	"except":     EXCEPT,
	"exists":     EXISTS,
	"false":      FALSE,
	"first":      FIRST,
	"following":  FOLLOWING,
	"foreign":    FOREIGN,
	"from":       FROM,
	"full":       FULL,
	"group":      GROUP,
	"having":     HAVING,
	"if":         IF,
	"ilike":      ILIKE,
	"in":         IN,
	"index":      INDEX,
	"inner":      INNER,
	"insert":     INSERT,
	"intersect":  INTERSECT,
	"into":       INTO,
	"is":         IS,
	"join":       JOIN,
	"key":        KEY,
	"last":       LAST,
	"left":       LEFT,
	"like":       LIKE,
	"limit":      LIMIT,
	"modify":     MODIFY,
	"no":         NO,
	"not":        NOT,
	"nothing":    NOTHING,
	"null":       NULL,
	"nulls":      NULLS,
	"offset":     OFFSET,
	"on":         ON,
	"or":         OR,
	"order":      ORDER,
	"outer":      OUTER,
	"over":       OVER,
	"partition":  PARTITION,
	"preceding":  PRECEDING,
	"primary":    PRIMARY,
	"range":      RANGE,
	"recursive":  RECURSIVE,
	"references": REFERENCES,
	"rename":     RENAME,
	"restrict":   RESTRICT,
	"returning":  RETURNING,
	"right":      RIGHT,
	"row":        ROW,
	"rows":       ROWS,
	"select":     SELECT,
	"set":        SET,
	"table":      TABLE,
	"then":       THEN,
	"to":         TO,
	"true":       TRUE,
	"unbounded":  UNBOUNDED,
	"union":      UNION,
	"unique":     UNIQUE,
	"update":     UPDATE,
	"using":      USING,
	"values":     VALUES,
	"when":       WHEN,
	"where":      WHERE,
	"with":       WITH,
}

// LookupIdent returns the token type for the given identifier.
// If the identifier is a keyword, the keyword token type is returned.
// Otherwise, IDENT is returned. The lookup is case-insensitive through
// the caller lowercasing the identifier first.
func LookupIdent(ident string) TokenType {
	if tok, ok := keywords[ident]; ok {
		return tok
	}
	return IDENT
}

// IsKeyword returns true if the token type is a keyword.
func IsKeyword(t TokenType) bool {
	return t >= ACTION && t <= WITH
}

// IsOperator returns true if the token type is an operator or punctuation.
func IsOperator(t TokenType) bool {
	return t >= PLUS && t <= RBRACKET
}

// IsLiteral returns true for literal-carrying token types.
func IsLiteral(t TokenType) bool {
	switch t {
	case INT, FLOAT, STRING, TRUE, FALSE, NULL:
		return true
	}
	return false
}

// Token represents a lexical token with position information.
// For string literals and quoted identifiers Literal holds the decoded
// text, with quote escapes resolved and the delimiters stripped.
type Token struct {
	Type    TokenType
	Literal string
	Pos     Position
}
