package types

import (
	"errors"
	"fmt"
	"strings"
)

var ErrUnknownType = errors.New("unknown data type")

type DataType uint8

const (
	TypeInt DataType = iota
	TypeLong
	TypeVarchar
	TypeBoolean
	TypeDate
	TypeDateTime
	TypeTimestamp
)

// DefaultVarcharSize is used when VARCHAR is declared without a size.
const DefaultVarcharSize = 255

// String returns the tag persisted in schema.meta.
func (t DataType) String() string {
	switch t {
	case TypeInt:
		return "INT"
	case TypeLong:
		return "LONG"
	case TypeVarchar:
		return "VARCHAR"
	case TypeBoolean:
		return "BOOLEAN"
	case TypeDate:
		return "DATE"
	case TypeDateTime:
		return "DATETIME"
	case TypeTimestamp:
		return "TIMESTAMP"
	}
	return "UNKNOWN"
}

// DefaultSize is the byte width recorded for the type.
func (t DataType) DefaultSize() int {
	switch t {
	case TypeInt:
		return 4
	case TypeBoolean:
		return 1
	case TypeVarchar:
		return DefaultVarcharSize
	}
	return 8
}

// Kind is the value variant a column of this type stores.
func (t DataType) Kind() Kind {
	switch t {
	case TypeInt:
		return KindInt
	case TypeLong:
		return KindLong
	case TypeVarchar:
		return KindText
	case TypeBoolean:
		return KindBool
	case TypeDate:
		return KindDate
	case TypeDateTime:
		return KindDateTime
	}
	return KindTimestamp
}

// ParseDataType maps a declared type name to a DataType, ignoring case.
// Anything starting with VARCHAR, and TEXT, map to the text type.
func ParseDataType(name string) (DataType, error) {
	up := strings.ToUpper(strings.TrimSpace(name))
	switch {
	case strings.HasPrefix(up, "VARCHAR"), up == "TEXT":
		return TypeVarchar, nil
	case up == "INT", up == "INTEGER":
		return TypeInt, nil
	case up == "LONG", up == "BIGINT":
		return TypeLong, nil
	case up == "BOOLEAN", up == "BOOL":
		return TypeBoolean, nil
	case up == "DATE":
		return TypeDate, nil
	case up == "DATETIME":
		return TypeDateTime, nil
	case up == "TIMESTAMP":
		return TypeTimestamp, nil
	}
	return 0, fmt.Errorf("%w: %s", ErrUnknownType, name)
}

type Column struct {
	Name       string   `json:"name"`
	Type       DataType `json:"type"`
	Size       int      `json:"size"`
	Nullable   bool     `json:"nullable"`
	PrimaryKey bool     `json:"primary_key"`
	Unique     bool     `json:"unique"`
}

type TableSchema struct {
	Name    string   `json:"name"`
	Columns []Column `json:"columns"`
}

// ColumnIndex finds a column by name, ignoring case. It returns -1 when
// the table has no such column.
func (s TableSchema) ColumnIndex(name string) int {
	for i, c := range s.Columns {
		if strings.EqualFold(c.Name, name) {
			return i
		}
	}
	return -1
}

func (s TableSchema) ColumnNames() []string {
	names := make([]string, len(s.Columns))
	for i, c := range s.Columns {
		names[i] = c.Name
	}
	return names
}

func (t DataType) MarshalText() ([]byte, error) {
	return []byte(t.String()), nil
}
