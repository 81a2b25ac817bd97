package executor

import (
	lex "DukaDB/query_parser/lexer"
	"DukaDB/query_parser/parser"
	"DukaDB/types"
	"fmt"
)

// predicate is a WHERE condition with its columns resolved to positions.
type predicate struct {
	left  int
	right int // -1 when comparing against lit
	lit   types.Value
	op    lex.TokenKind
	next  parser.LogicalOp
}

// compileWhere resolves every column of the chain against schema. A nil
// clause compiles to a nil filter that matches every row.
func compileWhere(where *parser.WhereClause, schema types.TableSchema) ([]predicate, error) {
	if where == nil {
		return nil, nil
	}
	preds := make([]predicate, 0, len(where.Conditions))
	for _, c := range where.Conditions {
		p := predicate{op: c.Op, next: c.Next, right: -1}
		if p.left = schema.ColumnIndex(c.Left); p.left < 0 {
			return nil, schemaErr(nil, "Column not found: %s", c.Left)
		}
		if c.HasColumnOperand() {
			if p.right = schema.ColumnIndex(c.RightColumn); p.right < 0 {
				return nil, schemaErr(nil, "Column not found: %s", c.RightColumn)
			}
		} else {
			p.lit = coerceLiteral(c.RightValue, schema.Columns[p.left])
		}
		preds = append(preds, p)
	}
	return preds, nil
}

// matchRow folds the chain from the right: for "a AND b OR c" it computes
// a AND (b OR c), whatever the mix of operators.
func matchRow(preds []predicate, row types.Row) (bool, error) {
	if len(preds) == 0 {
		return true, nil
	}
	result, err := preds[len(preds)-1].eval(row)
	if err != nil {
		return false, err
	}
	for i := len(preds) - 2; i >= 0; i-- {
		cur, err := preds[i].eval(row)
		if err != nil {
			return false, err
		}
		switch preds[i].next {
		case parser.LogicAnd:
			result = cur && result
		case parser.LogicOr:
			result = cur || result
		}
	}
	return result, nil
}

func filterRows(preds []predicate, rows []types.Row) ([]types.Row, error) {
	if preds == nil {
		return rows, nil
	}
	var out []types.Row
	for _, row := range rows {
		ok, err := matchRow(preds, row)
		if err != nil {
			return nil, err
		}
		if ok {
			out = append(out, row)
		}
	}
	return out, nil
}

func (p predicate) eval(row types.Row) (bool, error) {
	right := p.lit
	if p.right >= 0 {
		right = row[p.right]
	}
	return compareValues(row[p.left], right, p.op)
}

// compareValues applies op. With a NULL on either side, = holds only when
// both are NULL, <> and != hold when exactly one is, and every other
// operator is false.
func compareValues(left, right types.Value, op lex.TokenKind) (bool, error) {
	if left.IsNull() || right.IsNull() {
		both := left.IsNull() && right.IsNull()
		switch op {
		case lex.EQUALS:
			return both, nil
		case lex.NOT_EQUALS:
			return !both, nil
		}
		return false, nil
	}

	c, err := left.Compare(right)
	if err != nil {
		return false, err
	}
	switch op {
	case lex.EQUALS:
		return c == 0, nil
	case lex.NOT_EQUALS:
		return c != 0, nil
	case lex.LESS_THAN:
		return c < 0, nil
	case lex.GREATER_THAN:
		return c > 0, nil
	case lex.LESS_EQUAL:
		return c <= 0, nil
	case lex.GREATER_EQUAL:
		return c >= 0, nil
	}
	return false, fmt.Errorf("unsupported operator %s", op)
}
