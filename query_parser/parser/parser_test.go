package parser

import (
	lex "DukaDB/query_parser/lexer"
	"DukaDB/types"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestParseStatement_InvalidSQL_ReturnsError ensures invalid SQL returns an error and no statement.
func TestParseStatement_InvalidSQL_ReturnsError(t *testing.T) {
	tests := []struct {
		name string
		sql  string
	}{
		{"missing FROM", "SELECT * students"},
		{"INSERT missing VALUES", "INSERT INTO students ('S001', 'Alice')"},
		{"INSERT missing parens", "INSERT INTO students VALUES 'S001', 'Alice'"},
		{"CREATE TABLE missing paren", "CREATE TABLE students id int"},
		{"CREATE without target", "CREATE VIEW v"},
		{"WHERE without operator", "SELECT * FROM students WHERE id"},
		{"WHERE without value", "SELECT * FROM students WHERE id ="},
		{"dangling AND", "DELETE FROM t WHERE a = 1 AND"},
		{"bad number", "INSERT INTO t VALUES (1.2.3)"},
		{"unknown char", "SELECT @ FROM t"},
		{"bad column modifier", "CREATE TABLE t (id INT DEFAULT 1)"},
		{"join without ON", "SELECT * FROM a JOIN b"},
		{"DROP without TABLE", "DROP t"},
		{"empty", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			stmt, err := Parse(tt.sql)
			require.Error(t, err)
			assert.Nil(t, stmt)

			var se *SyntaxError
			assert.True(t, errors.As(err, &se), "want *SyntaxError, got %T", err)
		})
	}
}

func TestSyntaxErrorMessage(t *testing.T) {
	_, err := Parse("SELECT * students")
	require.Error(t, err)
	assert.Equal(t, "Expected FROM but got IDENTIFIER at position 9", err.Error())

	_, err = Parse("DROP TABLE")
	require.Error(t, err)
	assert.Equal(t, "Expected IDENTIFIER but got end of input at position 10", err.Error())

	_, err = Parse("CREATE VIEW v")
	assert.ErrorIs(t, err, ErrExpectedTableOrIx)

	_, err = Parse("; SELECT")
	assert.ErrorIs(t, err, ErrUnexpectedToken)
}

func TestParseCreateTable(t *testing.T) {
	stmt, err := Parse("CREATE TABLE users (id INT PRIMARY KEY, name VARCHAR(50) NOT NULL UNIQUE, active boolean)")
	require.NoError(t, err)

	ct, ok := stmt.(*CreateTableStmt)
	require.True(t, ok)
	assert.Equal(t, "users", ct.TableName)
	require.Len(t, ct.Columns, 3)

	assert.Equal(t, ColumnDef{Name: "id", Type: "INT", PrimaryKey: true}, ct.Columns[0])

	name := ct.Columns[1]
	assert.Equal(t, "VARCHAR", name.Type)
	require.NotNil(t, name.Size)
	assert.Equal(t, 50, *name.Size)
	assert.True(t, name.NotNull)
	assert.True(t, name.Unique)
	assert.False(t, name.PrimaryKey)

	assert.Equal(t, "boolean", ct.Columns[2].Type)
	assert.Nil(t, ct.Columns[2].Size)
}

func TestParseCreateIndex(t *testing.T) {
	stmt, err := Parse("CREATE UNIQUE INDEX idx_email ON users (email)")
	require.NoError(t, err)
	assert.Equal(t, &CreateIndexStmt{IndexName: "idx_email", TableName: "users", Column: "email", Unique: true}, stmt)

	stmt, err = Parse("create index by_name on users(name);")
	require.NoError(t, err)
	assert.Equal(t, &CreateIndexStmt{IndexName: "by_name", TableName: "users", Column: "name"}, stmt)
}

func TestParseDropTable(t *testing.T) {
	stmt, err := Parse("DROP TABLE users;")
	require.NoError(t, err)
	assert.Equal(t, &DropTableStmt{TableName: "users"}, stmt)
}

func TestParseInsert(t *testing.T) {
	stmt, err := Parse("INSERT INTO users (id, name, score, note) VALUES (1, 'Alice', 9.5, NULL)")
	require.NoError(t, err)

	ins := stmt.(*InsertStmt)
	assert.Equal(t, "users", ins.Table)
	assert.Equal(t, []string{"id", "name", "score", "note"}, ins.Columns)
	assert.Equal(t, []types.Value{
		types.IntValue(1),
		types.TextValue("Alice"),
		types.FloatValue(9.5),
		types.NullValue(),
	}, ins.Values)
}

func TestParseInsertWideInteger(t *testing.T) {
	stmt, err := Parse("INSERT INTO t VALUES (3000000000)")
	require.NoError(t, err)
	assert.Equal(t, []types.Value{types.LongValue(3000000000)}, stmt.(*InsertStmt).Values)
	assert.Empty(t, stmt.(*InsertStmt).Columns)
}

func TestParseSelect(t *testing.T) {
	stmt, err := Parse("SELECT * FROM users")
	require.NoError(t, err)
	sel := stmt.(*SelectStmt)
	assert.True(t, sel.Star)
	assert.Nil(t, sel.Join)
	assert.Nil(t, sel.Where)

	stmt, err = Parse("SELECT id, name FROM users WHERE age >= 18 AND name <> 'bob'")
	require.NoError(t, err)
	sel = stmt.(*SelectStmt)
	assert.False(t, sel.Star)
	assert.Equal(t, []string{"id", "name"}, sel.Columns)
	require.NotNil(t, sel.Where)
	assert.Equal(t, []Condition{
		{Left: "age", Op: lex.GREATER_EQUAL, RightValue: types.IntValue(18), Next: LogicAnd},
		{Left: "name", Op: lex.NOT_EQUALS, RightValue: types.TextValue("bob")},
	}, sel.Where.Conditions)
}

func TestParseWhereColumnOperand(t *testing.T) {
	stmt, err := Parse("SELECT * FROM t WHERE a < b OR c = 1")
	require.NoError(t, err)
	conds := stmt.(*SelectStmt).Where.Conditions
	require.Len(t, conds, 2)
	assert.True(t, conds[0].HasColumnOperand())
	assert.Equal(t, "b", conds[0].RightColumn)
	assert.Equal(t, LogicOr, conds[0].Next)
	assert.False(t, conds[1].HasColumnOperand())
}

func TestParseJoin(t *testing.T) {
	tests := []struct {
		sql  string
		kind JoinKind
	}{
		{"SELECT * FROM a JOIN b ON x = y", InnerJoin},
		{"SELECT * FROM a INNER JOIN b ON x = y", InnerJoin},
		{"SELECT * FROM a LEFT JOIN b ON x = y", LeftJoin},
		{"SELECT * FROM a RIGHT JOIN b ON x = y WHERE x = 1", RightJoin},
	}
	for _, tt := range tests {
		t.Run(tt.sql, func(t *testing.T) {
			stmt, err := Parse(tt.sql)
			require.NoError(t, err)
			sel := stmt.(*SelectStmt)
			require.NotNil(t, sel.Join)
			assert.Equal(t, &JoinClause{Kind: tt.kind, Table: "b", LeftColumn: "x", RightColumn: "y"}, sel.Join)
		})
	}
}

func TestParseUpdate(t *testing.T) {
	stmt, err := Parse("UPDATE users SET name = 'x', age = 3, name = 'y' WHERE id = 1")
	require.NoError(t, err)
	up := stmt.(*UpdateStmt)
	assert.Equal(t, "users", up.Table)
	assert.Equal(t, []Assignment{
		{Column: "name", Value: types.TextValue("y")},
		{Column: "age", Value: types.IntValue(3)},
	}, up.Assignments)
	require.NotNil(t, up.Where)
	assert.Len(t, up.Where.Conditions, 1)
}

func TestParseDelete(t *testing.T) {
	stmt, err := Parse("DELETE FROM users")
	require.NoError(t, err)
	assert.Equal(t, &DeleteStmt{Table: "users"}, stmt)

	stmt, err = Parse("DELETE FROM users WHERE id = 4")
	require.NoError(t, err)
	assert.NotNil(t, stmt.(*DeleteStmt).Where)
}

func TestTrailingTokensIgnored(t *testing.T) {
	stmt, err := Parse("SELECT * FROM t; garbage here")
	require.NoError(t, err)
	assert.Equal(t, "t", stmt.(*SelectStmt).Table)
}
