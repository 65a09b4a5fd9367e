package ast

// SelectStmt is a SELECT statement, including any trailing UNION chain.
type SelectStmt struct {
	With     *WithClause
	Distinct bool
	Columns  []SelectItem
	From     []TableRef
	Where    Expr
	GroupBy  []Expr
	Having   Expr
	OrderBy  []OrderByItem
	Limit    *uint64
	Offset   *uint64
	Unions   []UnionClause
}

func (*SelectStmt) stmtNode() {}
func (*SelectStmt) dmlNode()  {}

// WithClause holds the common table expressions of a statement.
type WithClause struct {
	CTEs []*CTE
}

// CTE is a single common table expression.
type CTE struct {
	Name      string
	Columns   []string
	Recursive bool
	Query     *SelectStmt
}

// SelectItem is one entry of a select list. Star marks the bare `*`
// wildcard; TableName qualifies a `t.*` wildcard. For expression items
// Expr is set and Alias is optional.
type SelectItem struct {
	Star      bool
	TableName string
	Expr      Expr
	Alias     string
}

// OrderByItem is one ORDER BY entry. NullsFirst is nil when the statement
// does not specify null ordering.
type OrderByItem struct {
	Expr       Expr
	Desc       bool
	NullsFirst *bool
}

// UnionClause is one UNION [ALL] arm following a select.
type UnionClause struct {
	All    bool
	Select *SelectStmt
}

// TableName is a named table with an optional alias.
type TableName struct {
	Name  string
	Alias string
}

func (*TableName) tableRefNode() {}

// DerivedTable is a parenthesized subquery in FROM with an alias.
type DerivedTable struct {
	Query *SelectStmt
	Alias string
}

func (*DerivedTable) tableRefNode() {}

// Join is a joined table expression. Left is the original base reference,
// Right the first joined table, and Joins the join clauses in declaration
// order (the first entry describes Right).
type Join struct {
	Left  TableRef
	Right TableRef
	Joins []*JoinClause
}

func (*Join) tableRefNode() {}

// JoinType identifies the join flavor.
type JoinType int

// Join types.
const (
	JoinInner JoinType = iota
	JoinLeft
	JoinRight
	JoinFull
	JoinCross
)

func (t JoinType) String() string {
	switch t {
	case JoinInner:
		return "INNER"
	case JoinLeft:
		return "LEFT"
	case JoinRight:
		return "RIGHT"
	case JoinFull:
		return "FULL"
	case JoinCross:
		return "CROSS"
	}
	return "?"
}

// JoinClause is one JOIN with its joined table and optional condition.
type JoinClause struct {
	Type      JoinType
	Table     TableRef
	Condition JoinCondition // nil for CROSS JOIN and bare joins
}

// JoinCondition is either an ON expression or a USING column list.
type JoinCondition interface {
	joinCondNode()
}

// OnCondition is JOIN ... ON expr.
type OnCondition struct {
	Expr Expr
}

func (*OnCondition) joinCondNode() {}

// UsingCondition is JOIN ... USING (columns).
type UsingCondition struct {
	Columns []string
}

func (*UsingCondition) joinCondNode() {}

// InsertStmt is an INSERT statement. Exactly one of Values and Query is
// set.
type InsertStmt struct {
	Table      string
	Columns    []string
	Values     [][]Expr
	Query      *SelectStmt
	OnConflict *OnConflictClause
	Returning  []SelectItem
}

func (*InsertStmt) stmtNode() {}
func (*InsertStmt) dmlNode()  {}

// OnConflictClause is INSERT ... ON CONFLICT [(cols)] DO NOTHING or
// DO UPDATE SET assignments.
type OnConflictClause struct {
	Columns   []string
	DoNothing bool
	Updates   []Assignment
}

// Assignment is one column = expr pair of a SET clause. Assignments keep
// declaration order.
type Assignment struct {
	Column string
	Value  Expr
}

// UpdateStmt is an UPDATE statement.
type UpdateStmt struct {
	Table       string
	Alias       string
	Assignments []Assignment
	Where       Expr
	Returning   []SelectItem
}

func (*UpdateStmt) stmtNode() {}
func (*UpdateStmt) dmlNode()  {}

// DeleteStmt is a DELETE statement.
type DeleteStmt struct {
	Table     string
	Alias     string
	Using     []TableRef
	Where     Expr
	Returning []SelectItem
}

func (*DeleteStmt) stmtNode() {}
func (*DeleteStmt) dmlNode()  {}
