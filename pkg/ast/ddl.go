package ast

// DataTypeKind identifies a canonical SQL data type.
type DataTypeKind int

// Canonical data-type kinds. Vendor types with no canonical mapping use
// TypeCustom with the original spelling in Name.
const (
	TypeBoolean DataTypeKind = iota
	TypeInteger
	TypeBigInt
	TypeSmallInt
	TypeTinyInt
	TypeFloat
	TypeDouble
	TypeDecimal
	TypeChar
	TypeVarchar
	TypeText
	TypeBinary
	TypeVarbinary
	TypeBlob
	TypeDate
	TypeTime
	TypeDateTime
	TypeTimestamp
	TypeJSON
	TypeUUID
	TypeCustom
)

// DataType is a resolved SQL data type. Zero-valued optional fields mean
// "unspecified": Size is the integer bit width, Length the char/binary
// length, Precision/Scale the numeric parameters. Name carries the
// original spelling for TypeCustom.
type DataType struct {
	Kind      DataTypeKind
	Size      int
	Unsigned  bool
	Length    int
	Precision int
	Scale     int
	Name      string
}

// Common data-type constructors.

// BooleanType returns the BOOLEAN type.
func BooleanType() DataType { return DataType{Kind: TypeBoolean} }

// IntegerType returns an INTEGER type with the given bit width.
func IntegerType(size int) DataType { return DataType{Kind: TypeInteger, Size: size} }

// BigIntType returns the BIGINT type.
func BigIntType() DataType { return DataType{Kind: TypeBigInt} }

// SmallIntType returns the SMALLINT type.
func SmallIntType() DataType { return DataType{Kind: TypeSmallInt} }

// TinyIntType returns the TINYINT type.
func TinyIntType() DataType { return DataType{Kind: TypeTinyInt} }

// FloatType returns a FLOAT type with the given precision (0 when
// unspecified).
func FloatType(precision int) DataType { return DataType{Kind: TypeFloat, Precision: precision} }

// DoubleType returns the DOUBLE type.
func DoubleType() DataType { return DataType{Kind: TypeDouble} }

// DecimalType returns a DECIMAL type.
func DecimalType(precision, scale int) DataType {
	return DataType{Kind: TypeDecimal, Precision: precision, Scale: scale}
}

// CharType returns a CHAR type.
func CharType(length int) DataType { return DataType{Kind: TypeChar, Length: length} }

// VarcharType returns a VARCHAR type.
func VarcharType(length int) DataType { return DataType{Kind: TypeVarchar, Length: length} }

// TextType returns the TEXT type.
func TextType() DataType { return DataType{Kind: TypeText} }

// BinaryType returns a BINARY type.
func BinaryType(length int) DataType { return DataType{Kind: TypeBinary, Length: length} }

// VarbinaryType returns a VARBINARY type.
func VarbinaryType(length int) DataType { return DataType{Kind: TypeVarbinary, Length: length} }

// BlobType returns the BLOB type.
func BlobType() DataType { return DataType{Kind: TypeBlob} }

// DateType returns the DATE type.
func DateType() DataType { return DataType{Kind: TypeDate} }

// TimeType returns the TIME type.
func TimeType() DataType { return DataType{Kind: TypeTime} }

// DateTimeType returns the DATETIME type.
func DateTimeType() DataType { return DataType{Kind: TypeDateTime} }

// TimestampType returns the TIMESTAMP type.
func TimestampType() DataType { return DataType{Kind: TypeTimestamp} }

// JSONType returns the JSON type.
func JSONType() DataType { return DataType{Kind: TypeJSON} }

// UUIDType returns the UUID type.
func UUIDType() DataType { return DataType{Kind: TypeUUID} }

// CustomType returns a vendor type with its original spelling.
func CustomType(name string) DataType { return DataType{Kind: TypeCustom, Name: name} }

// ColumnConstraintKind identifies a column constraint.
type ColumnConstraintKind int

// Column constraint kinds.
const (
	NotNull ColumnConstraintKind = iota
	Nullable
	DefaultValue
	UniqueColumn
	PrimaryKeyColumn
	AutoIncrement
	CheckColumn
	ReferencesColumn
)

// ColumnConstraint is one constraint attached to a column definition.
// Default holds the rendered default value for DefaultValue, Check the
// check expression for CheckColumn, and Ref the target for
// ReferencesColumn.
type ColumnConstraint struct {
	Kind    ColumnConstraintKind
	Default string
	Check   Expr
	Ref     *ForeignKeyRef
}

// ForeignKeyRef is the target of a REFERENCES constraint.
type ForeignKeyRef struct {
	Table   string
	Columns []string
}

// ColumnDef is one column of a CREATE TABLE statement.
type ColumnDef struct {
	Name        string
	Type        DataType
	Constraints []ColumnConstraint
}

// IsPrimaryKey reports whether the column carries a PRIMARY KEY constraint.
func (c *ColumnDef) IsPrimaryKey() bool {
	for _, con := range c.Constraints {
		if con.Kind == PrimaryKeyColumn {
			return true
		}
	}
	return false
}

// IsNullable reports whether the column accepts NULL. Primary key columns
// and NOT NULL columns do not.
func (c *ColumnDef) IsNullable() bool {
	for _, con := range c.Constraints {
		if con.Kind == NotNull || con.Kind == PrimaryKeyColumn {
			return false
		}
	}
	return true
}

// TableConstraintKind identifies a table-level constraint.
type TableConstraintKind int

// Table constraint kinds.
const (
	PrimaryKeyConstraint TableConstraintKind = iota
	UniqueConstraint
	ForeignKeyConstraint
	CheckConstraint
)

// RefAction is a referential action of a foreign key.
type RefAction int

// Referential actions. RefNone means the clause was absent.
const (
	RefNone RefAction = iota
	RefNoAction
	RefRestrict
	RefCascade
	RefSetNull
	RefSetDefault
)

func (a RefAction) String() string {
	switch a {
	case RefNoAction:
		return "NO ACTION"
	case RefRestrict:
		return "RESTRICT"
	case RefCascade:
		return "CASCADE"
	case RefSetNull:
		return "SET NULL"
	case RefSetDefault:
		return "SET DEFAULT"
	}
	return ""
}

// TableConstraint is a table-level constraint of a CREATE or ALTER TABLE
// statement. Name is empty for unnamed constraints.
type TableConstraint struct {
	Kind       TableConstraintKind
	Name       string
	Columns    []string
	RefTable   string
	RefColumns []string
	OnDelete   RefAction
	OnUpdate   RefAction
	Check      Expr
}

// CreateTableStmt is a CREATE TABLE statement.
type CreateTableStmt struct {
	Name        string
	IfNotExists bool
	Columns     []*ColumnDef
	Constraints []TableConstraint
}

func (*CreateTableStmt) stmtNode() {}
func (*CreateTableStmt) ddlNode()  {}

// PrimaryKeyColumns returns the primary key columns, combining column
// constraints and table constraints.
func (s *CreateTableStmt) PrimaryKeyColumns() []string {
	var cols []string
	for _, c := range s.Columns {
		if c.IsPrimaryKey() {
			cols = append(cols, c.Name)
		}
	}
	for _, con := range s.Constraints {
		if con.Kind == PrimaryKeyConstraint {
			cols = append(cols, con.Columns...)
		}
	}
	return cols
}

// AlterActionKind identifies an ALTER TABLE action.
type AlterActionKind int

// ALTER TABLE action kinds.
const (
	AddColumn AlterActionKind = iota
	DropColumn
	AlterColumn
	RenameColumn
	RenameTable
	AddConstraint
	DropConstraint
)

// AlterAction is one action of an ALTER TABLE statement. Column is set for
// AddColumn and AlterColumn; Name/NewName cover the drop and rename forms;
// Constraint is set for AddConstraint.
type AlterAction struct {
	Kind       AlterActionKind
	Column     *ColumnDef
	Name       string
	NewName    string
	Constraint *TableConstraint
}

// AlterTableStmt is an ALTER TABLE statement.
type AlterTableStmt struct {
	Table   string
	Actions []AlterAction
}

func (*AlterTableStmt) stmtNode() {}
func (*AlterTableStmt) ddlNode()  {}

// DropTableStmt is a DROP TABLE statement.
type DropTableStmt struct {
	Tables   []string
	IfExists bool
	Cascade  bool
	Restrict bool
}

func (*DropTableStmt) stmtNode() {}
func (*DropTableStmt) ddlNode()  {}

// CreateIndexStmt is a CREATE INDEX statement.
type CreateIndexStmt struct {
	Name        string
	Table       string
	IfNotExists bool
	Unique      bool
	Columns     []OrderByItem
	Where       Expr
}

func (*CreateIndexStmt) stmtNode() {}
func (*CreateIndexStmt) ddlNode()  {}

// DropIndexStmt is a DROP INDEX statement.
type DropIndexStmt struct {
	Names    []string
	IfExists bool
}

func (*DropIndexStmt) stmtNode() {}
func (*DropIndexStmt) ddlNode()  {}
