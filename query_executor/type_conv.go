package executor

import (
	"DukaDB/types"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// convertValue turns a literal into the value a column of type typ stores.
// NULL stays NULL for every type.
func convertValue(v types.Value, typ types.DataType) (types.Value, error) {
	if v.IsNull() {
		return v, nil
	}

	switch typ {
	case types.TypeInt:
		n, err := toLong(v)
		if err != nil {
			return types.Value{}, err
		}
		if n < math.MinInt32 || n > math.MaxInt32 {
			return types.Value{}, fmt.Errorf("value %d out of range for INT", n)
		}
		return types.IntValue(int32(n)), nil

	case types.TypeLong:
		n, err := toLong(v)
		if err != nil {
			return types.Value{}, err
		}
		return types.LongValue(n), nil

	case types.TypeDate, types.TypeDateTime, types.TypeTimestamp:
		ms, err := toMillis(v)
		if err != nil {
			return types.Value{}, err
		}
		return temporalValue(typ, ms), nil

	case types.TypeBoolean:
		return types.BoolValue(toBool(v)), nil

	case types.TypeVarchar:
		return types.TextValue(v.String()), nil
	}
	return types.Value{}, fmt.Errorf("unsupported type %s", typ)
}

func temporalValue(typ types.DataType, ms int64) types.Value {
	switch typ {
	case types.TypeDate:
		return types.DateValue(ms)
	case types.TypeDateTime:
		return types.DateTimeValue(ms)
	}
	return types.TimestampValue(ms)
}

func toLong(v types.Value) (int64, error) {
	switch v.Kind() {
	case types.KindInt, types.KindLong:
		return v.Long(), nil
	case types.KindFloat:
		f := v.Float()
		if f != math.Trunc(f) {
			return 0, fmt.Errorf("value %g is not an integer", f)
		}
		if f < math.MinInt64 || f >= math.MaxInt64 {
			return 0, fmt.Errorf("value %g out of range", f)
		}
		return int64(f), nil
	case types.KindText:
		n, err := strconv.ParseInt(strings.TrimSpace(v.Text()), 10, 64)
		if err != nil {
			return 0, fmt.Errorf("cannot convert %q to a number", v.Text())
		}
		return n, nil
	}
	if v.IsTemporal() {
		return v.Millis(), nil
	}
	return 0, fmt.Errorf("cannot convert %s to a number", v.Kind())
}

func toMillis(v types.Value) (int64, error) {
	if v.Kind() == types.KindText {
		if t, err := types.ParseTime(strings.TrimSpace(v.Text())); err == nil {
			return t.UnixMilli(), nil
		}
	}
	return toLong(v)
}

// toBool is true only for a boolean true or the text "true" in any case.
// Numbers are false.
func toBool(v types.Value) bool {
	switch v.Kind() {
	case types.KindBool:
		return v.Bool()
	case types.KindText:
		return strings.EqualFold(strings.TrimSpace(v.Text()), "true")
	}
	return false
}

// coerceLiteral adapts a WHERE literal to the column it is compared with.
// Only text written against a date column changes: it is read as a date.
func coerceLiteral(lit types.Value, col types.Column) types.Value {
	if lit.Kind() != types.KindText {
		return lit
	}
	switch col.Type {
	case types.TypeDate, types.TypeDateTime, types.TypeTimestamp:
		if t, err := types.ParseTime(strings.TrimSpace(lit.Text())); err == nil {
			return types.TimeValue(col.Type.Kind(), t)
		}
	}
	return lit
}
