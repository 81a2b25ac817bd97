package storageengine

import (
	"bufio"
	"encoding/binary"
	"errors"
	"fmt"
	"io"

	"DukaDB/types"
)

/*
Row codec. A row is its column values written back to back in schema
order, big-endian, with no header:

	INT                         4 bytes
	LONG, DATE, DATETIME,
	TIMESTAMP                   8 bytes
	BOOLEAN                     1 byte
	VARCHAR                     uint16 byte length + UTF-8 bytes

NULL is written as the type's zero value, so it reads back as 0, false or "".
*/

var ErrTypeMismatch = errors.New("value does not match column type")

const maxVarcharBytes = 0xFFFF

// SerializeRow encodes a row. values must be in the same order as cols.
func SerializeRow(cols []types.Column, row types.Row) ([]byte, error) {
	if len(cols) != len(row) {
		return nil, fmt.Errorf("column count (%d) != value count (%d)", len(cols), len(row))
	}
	var buf []byte
	for i, col := range cols {
		var err error
		buf, err = AppendValue(buf, col, row[i])
		if err != nil {
			return nil, fmt.Errorf("column %s: %w", col.Name, err)
		}
	}
	return buf, nil
}

func AppendValue(buf []byte, col types.Column, val types.Value) ([]byte, error) {
	if !val.IsNull() && val.Kind() != col.Type.Kind() {
		return nil, fmt.Errorf("%w: %s value for %s column", ErrTypeMismatch, val.Kind(), col.Type)
	}

	switch col.Type {
	case types.TypeInt:
		return binary.BigEndian.AppendUint32(buf, uint32(val.Int())), nil

	case types.TypeLong, types.TypeDate, types.TypeDateTime, types.TypeTimestamp:
		return binary.BigEndian.AppendUint64(buf, uint64(val.Long())), nil

	case types.TypeBoolean:
		if val.Bool() {
			return append(buf, 1), nil
		}
		return append(buf, 0), nil

	case types.TypeVarchar:
		s := val.Text()
		if len(s) > maxVarcharBytes {
			return nil, fmt.Errorf("varchar too long: %d bytes", len(s))
		}
		buf = binary.BigEndian.AppendUint16(buf, uint16(len(s)))
		return append(buf, s...), nil
	}
	return nil, fmt.Errorf("unsupported type %s", col.Type)
}

// DeserializeRow reads one row. It returns io.EOF when r is exhausted
// before the first byte of the row, and io.ErrUnexpectedEOF when the
// data ends partway through it.
func DeserializeRow(r *bufio.Reader, cols []types.Column) (types.Row, error) {
	row := make(types.Row, len(cols))
	for i, col := range cols {
		val, err := readValue(r, col.Type)
		if err != nil {
			if i > 0 && errors.Is(err, io.EOF) {
				err = io.ErrUnexpectedEOF
			}
			if errors.Is(err, io.EOF) {
				return nil, err
			}
			return nil, fmt.Errorf("column %s: %w", col.Name, err)
		}
		row[i] = val
	}
	return row, nil
}

func readValue(r *bufio.Reader, typ types.DataType) (types.Value, error) {
	var scratch [8]byte

	switch typ {
	case types.TypeInt:
		if _, err := io.ReadFull(r, scratch[:4]); err != nil {
			return types.Value{}, err
		}
		return types.IntValue(int32(binary.BigEndian.Uint32(scratch[:4]))), nil

	case types.TypeLong, types.TypeDate, types.TypeDateTime, types.TypeTimestamp:
		if _, err := io.ReadFull(r, scratch[:8]); err != nil {
			return types.Value{}, err
		}
		n := int64(binary.BigEndian.Uint64(scratch[:8]))
		switch typ {
		case types.TypeDate:
			return types.DateValue(n), nil
		case types.TypeDateTime:
			return types.DateTimeValue(n), nil
		case types.TypeTimestamp:
			return types.TimestampValue(n), nil
		}
		return types.LongValue(n), nil

	case types.TypeBoolean:
		b, err := r.ReadByte()
		if err != nil {
			return types.Value{}, err
		}
		return types.BoolValue(b != 0), nil

	case types.TypeVarchar:
		if _, err := io.ReadFull(r, scratch[:2]); err != nil {
			return types.Value{}, err
		}
		buf := make([]byte, binary.BigEndian.Uint16(scratch[:2]))
		if _, err := io.ReadFull(r, buf); err != nil {
			if errors.Is(err, io.EOF) {
				err = io.ErrUnexpectedEOF
			}
			return types.Value{}, err
		}
		return types.TextValue(string(buf)), nil
	}
	return types.Value{}, fmt.Errorf("unknown type %s", typ)
}
