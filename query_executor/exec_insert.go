package executor

import (
	"DukaDB/query_parser/parser"
	indexmanager "DukaDB/storage_engine/access/index_manager"
	"DukaDB/types"
	"errors"
	"fmt"
)

/*
This file contains the INSERT statement.
The row is built full width, checked against NOT NULL, PRIMARY KEY and UNIQUE
columns by scanning the table, appended to the table file and only then
added to the table's indexes. A unique index conflict at that last step
therefore leaves the row in the file.
*/

func (e *Engine) ExecuteInsert(stmt *parser.InsertStmt) (*Result, error) {
	schema, err := e.tableSchema(stmt.Table)
	if err != nil {
		return nil, err
	}

	row, err := buildRow(schema, stmt)
	if err != nil {
		return nil, err
	}
	if err := e.validateConstraints(schema, row); err != nil {
		return nil, err
	}

	if err := e.storageEngine.InsertRow(schema, row); err != nil {
		return nil, storageErr(err)
	}
	if err := e.indexManager.InsertIntoIndexes(schema.Name, row); err != nil {
		if errors.Is(err, indexmanager.ErrUniqueViolation) {
			return nil, constraintErr(err, "%v", err)
		}
		return nil, err
	}

	return &Result{Success: true, Message: "1 row inserted", RowsAffected: 1}, nil
}

// buildRow places each value at its column's position, converted to the
// column type. Columns missing from an explicit column list are NULL.
func buildRow(schema types.TableSchema, stmt *parser.InsertStmt) (types.Row, error) {
	row := make(types.Row, len(schema.Columns))

	if len(stmt.Columns) == 0 {
		if len(stmt.Values) != len(schema.Columns) {
			return nil, fmt.Errorf("table %s has %d columns but %d values were supplied",
				schema.Name, len(schema.Columns), len(stmt.Values))
		}
		for i, col := range schema.Columns {
			v, err := convertValue(stmt.Values[i], col.Type)
			if err != nil {
				return nil, fmt.Errorf("column %s: %w", col.Name, err)
			}
			row[i] = v
		}
		return row, nil
	}

	if len(stmt.Columns) != len(stmt.Values) {
		return nil, fmt.Errorf("%d columns listed but %d values were supplied", len(stmt.Columns), len(stmt.Values))
	}
	set := make([]bool, len(schema.Columns))
	for i, name := range stmt.Columns {
		pos := schema.ColumnIndex(name)
		if pos < 0 {
			return nil, schemaErr(nil, "Column not found: %s", name)
		}
		if set[pos] {
			// the first mention wins
			continue
		}
		v, err := convertValue(stmt.Values[i], schema.Columns[pos].Type)
		if err != nil {
			return nil, fmt.Errorf("column %s: %w", name, err)
		}
		row[pos] = v
		set[pos] = true
	}
	return row, nil
}

// validateConstraints rejects NULL in NOT NULL columns and any non-null
// value of a PRIMARY KEY or UNIQUE column already present in the table.
func (e *Engine) validateConstraints(schema types.TableSchema, row types.Row) error {
	var existing []types.Row
	scanned := false

	for i, col := range schema.Columns {
		v := row[i]
		if !col.Nullable && v.IsNull() {
			return constraintErr(nil, "column %s cannot be NULL", col.Name)
		}
		if !(col.PrimaryKey || col.Unique) || v.IsNull() {
			continue
		}

		if !scanned {
			var err error
			if existing, err = e.storageEngine.ReadAllRows(schema); err != nil {
				return storageErr(err)
			}
			scanned = true
		}
		for _, other := range existing {
			if other[i].Equal(v) {
				return constraintErr(nil, "duplicate value %s for column %s", v, col.Name)
			}
		}
	}
	return nil
}
