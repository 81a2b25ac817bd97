package executor

import (
	"DukaDB/query_parser/parser"
	"DukaDB/types"
	"fmt"
)

/*
This file contains UPDATE and DELETE.
Both read the whole table, change it in memory and rewrite the file from
scratch. Indexes are left as they are.
*/

// ExecuteUpdate reports one affected row per assignment applied, so two
// SET columns over three matching rows count as 6.
func (e *Engine) ExecuteUpdate(stmt *parser.UpdateStmt) (*Result, error) {
	schema, err := e.tableSchema(stmt.Table)
	if err != nil {
		return nil, err
	}

	type setter struct {
		pos int
		val types.Value
	}
	setters := make([]setter, 0, len(stmt.Assignments))
	for _, a := range stmt.Assignments {
		pos := schema.ColumnIndex(a.Column)
		if pos < 0 {
			return nil, schemaErr(nil, "Column not found: %s", a.Column)
		}
		v, err := convertValue(a.Value, schema.Columns[pos].Type)
		if err != nil {
			return nil, fmt.Errorf("column %s: %w", a.Column, err)
		}
		setters = append(setters, setter{pos: pos, val: v})
	}

	preds, err := compileWhere(stmt.Where, schema)
	if err != nil {
		return nil, err
	}
	rows, err := e.storageEngine.ReadAllRows(schema)
	if err != nil {
		return nil, storageErr(err)
	}

	count := 0
	for _, row := range rows {
		ok, err := matchRow(preds, row)
		if err != nil {
			return nil, err
		}
		if !ok {
			continue
		}
		for _, s := range setters {
			row[s.pos] = s.val
			count++
		}
	}

	if err := e.storageEngine.RewriteRows(schema, rows); err != nil {
		return nil, storageErr(err)
	}
	return &Result{
		Success:      true,
		Message:      fmt.Sprintf("%d row(s) updated", count),
		RowsAffected: count,
	}, nil
}

// ExecuteDelete without WHERE empties the table.
func (e *Engine) ExecuteDelete(stmt *parser.DeleteStmt) (*Result, error) {
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

	var kept []types.Row
	if preds != nil {
		for _, row := range rows {
			ok, err := matchRow(preds, row)
			if err != nil {
				return nil, err
			}
			if !ok {
				kept = append(kept, row)
			}
		}
	}
	deleted := len(rows) - len(kept)

	if err := e.storageEngine.RewriteRows(schema, kept); err != nil {
		return nil, storageErr(err)
	}
	return &Result{
		Success:      true,
		Message:      fmt.Sprintf("%d row(s) deleted", deleted),
		RowsAffected: deleted,
	}, nil
}
