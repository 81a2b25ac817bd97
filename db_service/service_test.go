package dbservice

import (
	"testing"

	executor "DukaDB/query_executor"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newService(t *testing.T) *Service {
	t.Helper()
	e, err := executor.Open(t.TempDir())
	require.NoError(t, err)
	t.Cleanup(func() { e.Close() })
	return New(e)
}

func mustExec(t *testing.T, s *Service, sql string) *Response {
	t.Helper()
	resp := s.Execute(sql)
	require.True(t, resp.Success, "%s: %s", sql, resp.Message)
	return resp
}

func TestParseMeta(t *testing.T) {
	tests := []struct {
		sql      string
		show     bool
		describe string
	}{
		{"SHOW TABLES", true, ""},
		{"show tables", true, ""},
		{"Describe users", false, "users"},
		{"DESC order_items", false, "order_items"},
	}
	for _, tt := range tests {
		t.Run(tt.sql, func(t *testing.T) {
			cmd := parseMeta(tt.sql)
			require.NotNil(t, cmd)
			assert.Equal(t, tt.show, cmd.ShowTables)
			if tt.describe != "" {
				require.NotNil(t, cmd.Describe)
				assert.Equal(t, tt.describe, *cmd.Describe)
			}
		})
	}

	for _, sql := range []string{"SELECT * FROM t", "SHOW", "SHOW TABLES now", "DESCRIBE", ""} {
		assert.Nil(t, parseMeta(sql), sql)
	}
}

func TestTrailingSemicolon(t *testing.T) {
	s := newService(t)
	resp := mustExec(t, s, "  CREATE TABLE t (id INT);  ")
	assert.Equal(t, "Table created: t", resp.Message)
}

func TestShowTables(t *testing.T) {
	s := newService(t)

	resp := mustExec(t, s, "SHOW TABLES")
	assert.Equal(t, "0 table(s)", resp.Message)
	assert.Empty(t, resp.Records)

	mustExec(t, s, "CREATE TABLE b (id INT)")
	mustExec(t, s, "CREATE TABLE a (id INT)")

	resp = mustExec(t, s, "show tables;")
	assert.Equal(t, "2 table(s)", resp.Message)
	assert.Equal(t, []string{"Tables"}, resp.ColumnNames)
	require.Len(t, resp.Records, 2)
	assert.Equal(t, "a", resp.Records[0].Values[0].Text())
	assert.Equal(t, "b", resp.Records[1].Values[0].Text())
}

func TestDescribe(t *testing.T) {
	s := newService(t)
	mustExec(t, s, "CREATE TABLE users (id INT PRIMARY KEY, email VARCHAR(40) UNIQUE, born DATE)")
	mustExec(t, s, "INSERT INTO users VALUES (1, 'a@b.c', '1990-01-02')")

	resp := mustExec(t, s, "DESC users")
	assert.Equal(t, "Table structure for: users", resp.Message)
	assert.Equal(t, []string{"Column", "Type", "Primary", "Unique", "Nullable"}, resp.ColumnNames)
	require.Len(t, resp.Rows, 3)

	cells := func(i int) []string {
		var out []string
		for _, v := range resp.Rows[i] {
			out = append(out, v.Text())
		}
		return out
	}
	assert.Equal(t, []string{"id", "INT", "YES", "NO", "YES"}, cells(0))
	assert.Equal(t, []string{"email", "VARCHAR", "NO", "YES", "YES"}, cells(1))
	assert.Equal(t, []string{"born", "DATE", "NO", "NO", "YES"}, cells(2))
	assert.Contains(t, resp.Note, "1 rows")

	resp = s.Execute("DESCRIBE nope")
	assert.False(t, resp.Success)
	assert.Equal(t, "Table does not exist: nope", resp.Message)
}

func TestResponseJSONKeepsColumnOrder(t *testing.T) {
	s := newService(t)
	mustExec(t, s, "CREATE TABLE t (z INT, a VARCHAR(5), m BOOLEAN)")
	mustExec(t, s, "INSERT INTO t VALUES (7, 'x', 'true')")

	resp := mustExec(t, s, "SELECT * FROM t")
	require.Len(t, resp.Records, 1)
	data, err := json.Marshal(resp.Records[0])
	require.NoError(t, err)
	assert.Equal(t, `{"z":7,"a":"x","m":true}`, string(data))

	data, err = resp.JSON()
	require.NoError(t, err)
	var decoded map[string]any
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, true, decoded["success"])
	assert.Len(t, decoded["records"], 1)
}

func TestFailuresHaveNoRecords(t *testing.T) {
	s := newService(t)
	resp := s.Execute("SELECT * FROM missing")
	assert.False(t, resp.Success)
	assert.Equal(t, "Table does not exist: missing", resp.Message)
	assert.Nil(t, resp.Records)
}
