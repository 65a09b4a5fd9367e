package ast

// BinaryOp identifies a binary operator.
type BinaryOp int

// Binary operators, grouped by precedence level.
const (
	OpOr BinaryOp = iota
	OpAnd

	OpEq
	OpNotEq

	OpLt
	OpLtEq
	OpGt
	OpGtEq
	OpLike
	OpILike

	OpPlus
	OpMinus
	OpConcat

	OpMultiply
	OpDivide
	OpModulo
	OpBitAnd
	OpBitOr
	OpBitXor
	OpLeftShift
	OpRightShift
)

var binaryOpNames = map[BinaryOp]string{
	OpOr:         "OR",
	OpAnd:        "AND",
	OpEq:         "=",
	OpNotEq:      "<>",
	OpLt:         "<",
	OpLtEq:       "<=",
	OpGt:         ">",
	OpGtEq:       ">=",
	OpLike:       "LIKE",
	OpILike:      "ILIKE",
	OpPlus:       "+",
	OpMinus:      "-",
	OpConcat:     "||",
	OpMultiply:   "*",
	OpDivide:     "/",
	OpModulo:     "%",
	OpBitAnd:     "&",
	OpBitOr:      "|",
	OpBitXor:     "^",
	OpLeftShift:  "<<",
	OpRightShift: ">>",
}

func (op BinaryOp) String() string {
	if name, ok := binaryOpNames[op]; ok {
		return name
	}
	return "?"
}

// UnaryOp identifies a unary operator.
type UnaryOp int

// Unary operators. Unary plus is a no-op and produces no node.
const (
	UnaryNot UnaryOp = iota
	UnaryMinus
	UnaryBitNot
)

func (op UnaryOp) String() string {
	switch op {
	case UnaryNot:
		return "NOT"
	case UnaryMinus:
		return "-"
	case UnaryBitNot:
		return "~"
	}
	return "?"
}

// LiteralKind identifies the type of a literal value.
type LiteralKind int

// Literal kinds.
const (
	LiteralInteger LiteralKind = iota
	LiteralFloat
	LiteralString
	LiteralBool
	LiteralNull
)

func (k LiteralKind) String() string {
	switch k {
	case LiteralInteger:
		return "integer"
	case LiteralFloat:
		return "float"
	case LiteralString:
		return "string"
	case LiteralBool:
		return "boolean"
	case LiteralNull:
		return "null"
	}
	return "unknown"
}

// Literal is a literal value. Value holds the canonical text: the digits
// for numbers, the decoded text for strings, "true"/"false" for booleans,
// and "" for NULL.
type Literal struct {
	Kind  LiteralKind
	Value string
}

func (*Literal) exprNode() {}

// IntLit returns an integer literal.
func IntLit(text string) *Literal { return &Literal{Kind: LiteralInteger, Value: text} }

// FloatLit returns a float literal.
func FloatLit(text string) *Literal { return &Literal{Kind: LiteralFloat, Value: text} }

// StringLit returns a string literal.
func StringLit(text string) *Literal { return &Literal{Kind: LiteralString, Value: text} }

// BoolLit returns a boolean literal.
func BoolLit(v bool) *Literal {
	if v {
		return &Literal{Kind: LiteralBool, Value: "true"}
	}
	return &Literal{Kind: LiteralBool, Value: "false"}
}

// NullLit returns the NULL literal.
func NullLit() *Literal { return &Literal{Kind: LiteralNull} }

// ColumnRef is a possibly qualified column reference. Table is empty for
// bare column names.
type ColumnRef struct {
	Table string
	Name  string
}

func (*ColumnRef) exprNode() {}

// Column returns an unqualified column reference.
func Column(name string) *ColumnRef { return &ColumnRef{Name: name} }

// QualifiedColumn returns a table-qualified column reference.
func QualifiedColumn(table, name string) *ColumnRef { return &ColumnRef{Table: table, Name: name} }

// BinaryExpr is a binary operation.
type BinaryExpr struct {
	Left  Expr
	Op    BinaryOp
	Right Expr
}

func (*BinaryExpr) exprNode() {}

// UnaryExpr is a unary operation.
type UnaryExpr struct {
	Op      UnaryOp
	Operand Expr
}

func (*UnaryExpr) exprNode() {}

// FuncCall is a function invocation, optionally with a window
// specification (fn(...) OVER (...)).
type FuncCall struct {
	Name     string
	Args     []Expr
	Distinct bool
	Over     *WindowSpec
}

func (*FuncCall) exprNode() {}

// StarExpr is the bare * argument in calls like COUNT(*).
type StarExpr struct{}

func (*StarExpr) exprNode() {}

// WindowSpec is the OVER (...) clause of a window function.
type WindowSpec struct {
	PartitionBy []Expr
	OrderBy     []OrderByItem
	Frame       *FrameSpec
}

// FrameUnit selects ROWS or RANGE framing.
type FrameUnit int

// Frame units.
const (
	FrameRows FrameUnit = iota
	FrameRange
)

// FrameSpec is a window frame. End is nil for single-bound frames.
type FrameSpec struct {
	Unit  FrameUnit
	Start FrameBound
	End   *FrameBound
}

// FrameBoundKind identifies a window frame bound.
type FrameBoundKind int

// Frame bound kinds.
const (
	UnboundedPreceding FrameBoundKind = iota
	Preceding
	CurrentRow
	Following
	UnboundedFollowing
)

// FrameBound is one bound of a window frame. Offset is meaningful only for
// Preceding and Following.
type FrameBound struct {
	Kind   FrameBoundKind
	Offset uint64
}

// CaseExpr is a CASE expression. Operand is nil for searched CASE.
type CaseExpr struct {
	Operand Expr
	Whens   []*WhenClause
	Else    Expr
}

func (*CaseExpr) exprNode() {}

// WhenClause is one WHEN ... THEN ... arm of a CASE expression.
type WhenClause struct {
	Cond   Expr
	Result Expr
}

// CastExpr is CAST(expr AS type).
type CastExpr struct {
	Expr Expr
	Type DataType
}

func (*CastExpr) exprNode() {}

// InExpr is expr [NOT] IN (list) or expr [NOT] IN (subquery). Exactly one
// of List and Subquery is set.
type InExpr struct {
	Expr     Expr
	Not      bool
	List     []Expr
	Subquery *SelectStmt
}

func (*InExpr) exprNode() {}

// BetweenExpr is expr [NOT] BETWEEN low AND high.
type BetweenExpr struct {
	Expr Expr
	Not  bool
	Low  Expr
	High Expr
}

func (*BetweenExpr) exprNode() {}

// SubqueryExpr is a parenthesized scalar subquery.
type SubqueryExpr struct {
	Query *SelectStmt
}

func (*SubqueryExpr) exprNode() {}

// ExistsExpr is [NOT] EXISTS (subquery).
type ExistsExpr struct {
	Not   bool
	Query *SelectStmt
}

func (*ExistsExpr) exprNode() {}
