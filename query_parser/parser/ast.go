package parser

import (
	lex "DukaDB/query_parser/lexer"
	"DukaDB/types"
)

// Statement is implemented by every statement kind. The executor switches
// on the concrete type.
type Statement interface {
	statementNode()
}

// CREATE TABLE statement
type CreateTableStmt struct {
	TableName string
	Columns   []ColumnDef
}

type ColumnDef struct {
	Name       string
	Type       string
	Size       *int // only set when a (size) followed the type
	PrimaryKey bool
	Unique     bool
	NotNull    bool
}

// DROP TABLE statement
type DropTableStmt struct {
	TableName string
}

// CREATE [UNIQUE] INDEX statement
type CreateIndexStmt struct {
	IndexName string
	TableName string
	Column    string
	Unique    bool
}

// INSERT statement. Columns is empty when no column list was given.
type InsertStmt struct {
	Table   string
	Columns []string
	Values  []types.Value
}

// SELECT statement
type SelectStmt struct {
	Star    bool
	Columns []string
	Table   string
	Join    *JoinClause
	Where   *WhereClause
}

// UPDATE statement. Assignments keep their written order; a column named
// twice keeps its first position and its last value.
type UpdateStmt struct {
	Table       string
	Assignments []Assignment
	Where       *WhereClause
}

type Assignment struct {
	Column string
	Value  types.Value
}

// DELETE statement
type DeleteStmt struct {
	Table string
	Where *WhereClause
}

type JoinKind int

const (
	InnerJoin JoinKind = iota
	LeftJoin
	RightJoin
)

func (k JoinKind) String() string {
	switch k {
	case LeftJoin:
		return "LEFT"
	case RightJoin:
		return "RIGHT"
	}
	return "INNER"
}

type JoinClause struct {
	Kind        JoinKind
	Table       string
	LeftColumn  string
	RightColumn string
}

type LogicalOp int

const (
	LogicNone LogicalOp = iota
	LogicAnd
	LogicOr
)

// Condition is one comparison of a WHERE chain. Next says how it combines
// with the condition that follows it; the last condition has LogicNone.
type Condition struct {
	Left        string
	Op          lex.TokenKind
	RightColumn string
	RightValue  types.Value
	Next        LogicalOp
}

// HasColumnOperand reports whether the right side names a column.
func (c Condition) HasColumnOperand() bool {
	return c.RightColumn != ""
}

// WhereClause is a non-empty chain of conditions. It is evaluated from the
// last condition backwards, so "a AND b OR c" means "a AND (b OR c)".
type WhereClause struct {
	Conditions []Condition
}

func (*CreateTableStmt) statementNode() {}
func (*DropTableStmt) statementNode()   {}
func (*CreateIndexStmt) statementNode() {}
func (*InsertStmt) statementNode()      {}
func (*SelectStmt) statementNode()      {}
func (*UpdateStmt) statementNode()      {}
func (*DeleteStmt) statementNode()      {}
