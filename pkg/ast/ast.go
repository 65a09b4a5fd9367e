// Package ast defines the SQL abstract syntax tree produced by the parser.
//
// The tree is a plain data model: nodes carry no behavior beyond small
// predicates, so downstream consumers (validators, documentation
// generators, relationship analyzers) can walk it freely.
package ast

// Statement is any parsed SQL statement.
type Statement interface {
	stmtNode()
}

// DMLStatement is a data-manipulation statement (SELECT, INSERT, UPDATE,
// DELETE).
type DMLStatement interface {
	Statement
	dmlNode()
}

// DDLStatement is a data-definition statement (CREATE/ALTER/DROP TABLE,
// CREATE/DROP INDEX).
type DDLStatement interface {
	Statement
	ddlNode()
}

// Expr is any expression node.
type Expr interface {
	exprNode()
}

// TableRef is a table reference in a FROM, USING, or UPDATE clause.
type TableRef interface {
	tableRefNode()
}
