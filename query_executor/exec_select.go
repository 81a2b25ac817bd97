package executor

import (
	"DukaDB/query_parser/parser"
	"DukaDB/types"
	"strings"
)

/*
This file contains the SELECT statement.

 scan base table → WHERE filter → optional JOIN → projection

WHERE is applied to the base table alone, before the join, so it can only
name columns of the table after FROM.
*/

func (e *Engine) ExecuteSelect(stmt *parser.SelectStmt) (*Result, error) {
	schema, err := e.tableSchema(stmt.Table)
	if err != nil {
		return nil, err
	}

	preds, err := compileWhere(stmt.Where, schema)
	if err != nil {
		return nil, err
	}
	rows, err := e.storageEngine.ReadAllRows(schema)
	if err != nil {
		return nil, storageErr(err)
	}
	if rows, err = filterRows(preds, rows); err != nil {
		return nil, err
	}

	columns := schema.Columns
	if stmt.Join != nil {
		var right types.TableSchema
		if rows, right, err = e.nestedLoopJoin(schema, rows, stmt.Join); err != nil {
			return nil, err
		}
		columns = append(append([]types.Column{}, schema.Columns...), right.Columns...)
	}

	names, out := project(columns, rows, stmt)
	return &Result{
		Success:      true,
		ColumnNames:  names,
		Rows:         out,
		RowsAffected: len(out),
	}, nil
}

// project keeps the requested columns. Names that match no column are
// dropped without error; when a name occurs on both sides of a join the
// left table's column is used.
func project(columns []types.Column, rows []types.Row, stmt *parser.SelectStmt) ([]string, []types.Row) {
	var (
		names []string
		pos   []int
	)
	if stmt.Star {
		for i, c := range columns {
			names = append(names, c.Name)
			pos = append(pos, i)
		}
	} else {
		for _, want := range stmt.Columns {
			for i, c := range columns {
				if strings.EqualFold(c.Name, want) {
					names = append(names, c.Name)
					pos = append(pos, i)
					break
				}
			}
		}
	}

	out := make([]types.Row, 0, len(rows))
	for _, row := range rows {
		r := make(types.Row, len(pos))
		for i, p := range pos {
			r[i] = row[p]
		}
		out = append(out, r)
	}
	return names, out
}
