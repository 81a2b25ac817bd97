package dbservice

/*
This file wraps the query engine for the shell and the tools.
It trims the statement, answers SHOW TABLES and DESCRIBE from the catalog
and hands everything else to the engine, timing the call.
*/

import (
	"bytes"
	"fmt"
	"strings"
	"time"

	executor "DukaDB/query_executor"
	"DukaDB/types"

	"github.com/dustin/go-humanize"
	"github.com/goccy/go-json"
)

type Service struct {
	engine *executor.Engine
}

// Response is one executed statement as shown to a client.
type Response struct {
	*executor.Result
	Records []Record      `json:"records,omitempty"`
	Note    string        `json:"note,omitempty"`
	Elapsed time.Duration `json:"elapsedNs"`
}

// Record is a result row keyed by column name. It marshals as a JSON
// object with keys in column order.
type Record struct {
	Columns []string
	Values  []types.Value
}

func (r Record) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, col := range r.Columns {
		if i > 0 {
			buf.WriteByte(',')
		}
		k, err := json.Marshal(col)
		if err != nil {
			return nil, err
		}
		v, err := json.Marshal(r.Values[i])
		if err != nil {
			return nil, err
		}
		buf.Write(k)
		buf.WriteByte(':')
		buf.Write(v)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

func New(engine *executor.Engine) *Service {
	return &Service{engine: engine}
}

func (s *Service) Engine() *executor.Engine {
	return s.engine
}

// Execute runs one statement. Surrounding whitespace and a single trailing
// semicolon are ignored.
func (s *Service) Execute(sql string) *Response {
	start := time.Now()
	sql = strings.TrimSpace(sql)
	sql = strings.TrimSpace(strings.TrimSuffix(sql, ";"))

	var resp *Response
	switch cmd := parseMeta(sql); {
	case cmd == nil:
		resp = &Response{Result: s.engine.Execute(sql)}
	case cmd.ShowTables:
		resp = s.showTables()
	default:
		resp = s.describe(*cmd.Describe)
	}

	if resp.Success {
		resp.Records = records(resp.ColumnNames, resp.Rows)
	}
	resp.Elapsed = time.Since(start)
	return resp
}

func (s *Service) showTables() *Response {
	names := s.engine.Tables()
	rows := make([]types.Row, 0, len(names))
	for _, n := range names {
		rows = append(rows, types.Row{types.TextValue(n)})
	}
	return &Response{Result: &executor.Result{
		Success:      true,
		Message:      fmt.Sprintf("%d table(s)", len(names)),
		ColumnNames:  []string{"Tables"},
		Rows:         rows,
		RowsAffected: len(rows),
	}}
}

func (s *Service) describe(table string) *Response {
	schema, ok := s.engine.Describe(table)
	if !ok {
		return &Response{Result: &executor.Result{Message: "Table does not exist: " + table}}
	}

	rows := make([]types.Row, 0, len(schema.Columns))
	for _, c := range schema.Columns {
		rows = append(rows, types.Row{
			types.TextValue(c.Name),
			types.TextValue(c.Type.String()),
			yesNo(c.PrimaryKey),
			yesNo(c.Unique),
			yesNo(c.Nullable),
		})
	}
	resp := &Response{Result: &executor.Result{
		Success:      true,
		Message:      "Table structure for: " + table,
		ColumnNames:  []string{"Column", "Type", "Primary", "Unique", "Nullable"},
		Rows:         rows,
		RowsAffected: len(rows),
	}}

	count, err := s.engine.RowCount(schema.Name)
	if err != nil {
		resp.Note = err.Error()
		return resp
	}
	size, err := s.engine.TableFileSize(schema.Name)
	if err != nil {
		resp.Note = err.Error()
		return resp
	}
	resp.Note = fmt.Sprintf("%s rows, %s on disk", humanize.Comma(int64(count)), humanize.Bytes(uint64(size)))
	return resp
}

func yesNo(b bool) types.Value {
	if b {
		return types.TextValue("YES")
	}
	return types.TextValue("NO")
}

func records(cols []string, rows []types.Row) []Record {
	if len(cols) == 0 {
		return nil
	}
	out := make([]Record, 0, len(rows))
	for _, row := range rows {
		out = append(out, Record{Columns: cols, Values: row})
	}
	return out
}

// JSON encodes the response.
func (r *Response) JSON() ([]byte, error) {
	return json.MarshalIndent(r, "", "  ")
}
