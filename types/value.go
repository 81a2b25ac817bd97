package types

import (
	"encoding/binary"
	"errors"
	"fmt"
	"math"
	"strconv"
	"time"

	"github.com/goccy/go-json"
)

// Kind tags the variant held by a Value.
type Kind uint8

const (
	KindNull Kind = iota
	KindInt
	KindLong
	KindFloat
	KindText
	KindBool
	KindDate
	KindDateTime
	KindTimestamp
)

func (k Kind) String() string {
	switch k {
	case KindNull:
		return "NULL"
	case KindInt:
		return "INT"
	case KindLong:
		return "LONG"
	case KindFloat:
		return "FLOAT"
	case KindText:
		return "TEXT"
	case KindBool:
		return "BOOLEAN"
	case KindDate:
		return "DATE"
	case KindDateTime:
		return "DATETIME"
	case KindTimestamp:
		return "TIMESTAMP"
	default:
		return "UNKNOWN"
	}
}

// ErrIncomparable is returned when two values of different families are ordered.
var ErrIncomparable = errors.New("values are not comparable")

// Value is a single typed cell. Integers and the date kinds share the
// num field (date kinds hold epoch milliseconds, UTC).
type Value struct {
	kind Kind
	num  int64
	f    float64
	s    string
}

func NullValue() Value                    { return Value{} }
func IntValue(v int32) Value              { return Value{kind: KindInt, num: int64(v)} }
func LongValue(v int64) Value             { return Value{kind: KindLong, num: v} }
func FloatValue(v float64) Value          { return Value{kind: KindFloat, f: v} }
func TextValue(v string) Value            { return Value{kind: KindText, s: v} }
func DateValue(ms int64) Value            { return Value{kind: KindDate, num: ms} }
func DateTimeValue(ms int64) Value        { return Value{kind: KindDateTime, num: ms} }
func TimestampValue(ms int64) Value       { return Value{kind: KindTimestamp, num: ms} }
func TimeValue(k Kind, t time.Time) Value { return Value{kind: k, num: t.UnixMilli()} }

func BoolValue(v bool) Value {
	if v {
		return Value{kind: KindBool, num: 1}
	}
	return Value{kind: KindBool}
}

func (v Value) Kind() Kind     { return v.kind }
func (v Value) IsNull() bool   { return v.kind == KindNull }
func (v Value) Int() int32     { return int32(v.num) }
func (v Value) Long() int64    { return v.num }
func (v Value) Float() float64 { return v.f }
func (v Value) Text() string   { return v.s }
func (v Value) Bool() bool     { return v.num != 0 }

// Millis returns the epoch milliseconds of a date-kind value.
func (v Value) Millis() int64 { return v.num }

func (v Value) IsTemporal() bool {
	return v.kind == KindDate || v.kind == KindDateTime || v.kind == KindTimestamp
}

func (v Value) isNumeric() bool {
	switch v.kind {
	case KindInt, KindLong, KindFloat:
		return true
	}
	return v.IsTemporal()
}

// Compare orders v against o. Integers, floats and date kinds compare as
// numbers, text compares bytewise, booleans order false before true.
// Null values are not ordered and neither are values of different families.
func (v Value) Compare(o Value) (int, error) {
	if v.IsNull() || o.IsNull() {
		return 0, fmt.Errorf("%w: NULL", ErrIncomparable)
	}
	switch {
	case v.isNumeric() && o.isNumeric():
		if v.kind == KindFloat || o.kind == KindFloat {
			return cmpOrdered(v.asFloat(), o.asFloat()), nil
		}
		return cmpOrdered(v.num, o.num), nil
	case v.kind == KindText && o.kind == KindText:
		return cmpOrdered(v.s, o.s), nil
	case v.kind == KindBool && o.kind == KindBool:
		return cmpOrdered(v.num, o.num), nil
	}
	return 0, fmt.Errorf("%w: %s and %s", ErrIncomparable, v.kind, o.kind)
}

// Equal reports value equality. Null equals null and values from
// different families are never equal.
func (v Value) Equal(o Value) bool {
	if v.IsNull() || o.IsNull() {
		return v.IsNull() && o.IsNull()
	}
	c, err := v.Compare(o)
	return err == nil && c == 0
}

func (v Value) asFloat() float64 {
	if v.kind == KindFloat {
		return v.f
	}
	return float64(v.num)
}

func cmpOrdered[T int64 | float64 | string](a, b T) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	}
	return 0
}

const (
	dateLayout     = "2006-01-02"
	dateTimeLayout = "2006-01-02 15:04:05"
)

// ParseTime accepts the layouts a date-kind column can be written with.
func ParseTime(s string) (time.Time, error) {
	for _, layout := range []string{dateLayout, dateTimeLayout, time.RFC3339} {
		if t, err := time.ParseInLocation(layout, s, time.UTC); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("cannot parse %q as a date", s)
}

func (v Value) String() string {
	switch v.kind {
	case KindNull:
		return "NULL"
	case KindInt, KindLong:
		return strconv.FormatInt(v.num, 10)
	case KindFloat:
		return strconv.FormatFloat(v.f, 'g', -1, 64)
	case KindText:
		return v.s
	case KindBool:
		return strconv.FormatBool(v.Bool())
	case KindDate:
		return time.UnixMilli(v.num).UTC().Format(dateLayout)
	case KindDateTime:
		return time.UnixMilli(v.num).UTC().Format(dateTimeLayout)
	case KindTimestamp:
		return time.UnixMilli(v.num).UTC().Format(time.RFC3339)
	}
	return "?"
}

// Any returns the plain Go value, used when handing rows to encoders
// and database/sql.
func (v Value) Any() any {
	switch v.kind {
	case KindInt:
		return int32(v.num)
	case KindLong:
		return v.num
	case KindFloat:
		return v.f
	case KindText:
		return v.s
	case KindBool:
		return v.Bool()
	case KindDate, KindDateTime, KindTimestamp:
		return v.String()
	}
	return nil
}

func (v Value) MarshalJSON() ([]byte, error) {
	return json.Marshal(v.Any())
}

// KeyBytes is a canonical encoding of the value used for hashing.
// Values that are Equal within the numeric family hash alike as long as
// they are integral.
func (v Value) KeyBytes() []byte {
	switch {
	case v.IsNull():
		return []byte{0}
	case v.kind == KindFloat && v.f != math.Trunc(v.f):
		b := make([]byte, 9)
		b[0] = 'f'
		binary.BigEndian.PutUint64(b[1:], math.Float64bits(v.f))
		return b
	case v.isNumeric():
		n := v.num
		if v.kind == KindFloat {
			n = int64(v.f)
		}
		b := make([]byte, 9)
		b[0] = 'n'
		binary.BigEndian.PutUint64(b[1:], uint64(n))
		return b
	case v.kind == KindBool:
		return []byte{'b', byte(v.num)}
	}
	return append([]byte{'s'}, v.s...)
}
