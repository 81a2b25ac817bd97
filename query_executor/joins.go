package executor

import (
	"DukaDB/query_parser/parser"
	"DukaDB/types"
)

// nestedLoopJoin pairs every left row with every row of the join table
// whose join column holds an equal value. Joined rows are the left columns
// followed by the right ones. A LEFT join keeps unmatched left rows padded
// with NULLs. A RIGHT join is run as an INNER join, so right rows without
// a match are never produced.
func (e *Engine) nestedLoopJoin(left types.TableSchema, rows []types.Row, join *parser.JoinClause) ([]types.Row, types.TableSchema, error) {
	right, err := e.tableSchema(join.Table)
	if err != nil {
		return nil, right, err
	}

	lpos := left.ColumnIndex(join.LeftColumn)
	if lpos < 0 {
		return nil, right, schemaErr(nil, "Column not found: %s", join.LeftColumn)
	}
	rpos := right.ColumnIndex(join.RightColumn)
	if rpos < 0 {
		return nil, right, schemaErr(nil, "Column not found: %s", join.RightColumn)
	}

	rightRows, err := e.storageEngine.ReadAllRows(right)
	if err != nil {
		return nil, right, storageErr(err)
	}

	var out []types.Row
	for _, l := range rows {
		matched := false
		for _, r := range rightRows {
			if !l[lpos].Equal(r[rpos]) {
				continue
			}
			out = append(out, concatRows(l, r))
			matched = true
		}
		if !matched && join.Kind == parser.LeftJoin {
			out = append(out, concatRows(l, make(types.Row, len(right.Columns))))
		}
	}
	return out, right, nil
}

func concatRows(l, r types.Row) types.Row {
	row := make(types.Row, 0, len(l)+len(r))
	row = append(row, l...)
	return append(row, r...)
}
