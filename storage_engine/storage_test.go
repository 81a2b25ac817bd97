package storageengine

import (
	"bufio"
	"bytes"
	"io"
	"os"
	"testing"

	"DukaDB/types"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func productSchema() types.TableSchema {
	return types.TableSchema{
		Name: "Products",
		Columns: []types.Column{
			{Name: "id", Type: types.TypeInt, Size: 4, PrimaryKey: true},
			{Name: "name", Type: types.TypeVarchar, Size: 50, Nullable: true},
			{Name: "stock", Type: types.TypeLong, Size: 8, Nullable: true},
			{Name: "active", Type: types.TypeBoolean, Size: 1, Nullable: true},
			{Name: "added", Type: types.TypeDate, Size: 8, Nullable: true},
		},
	}
}

func newEngine(t *testing.T) *StorageEngine {
	t.Helper()
	se, err := NewStorageEngine(t.TempDir())
	require.NoError(t, err)
	return se
}

func TestSerializeRowLayout(t *testing.T) {
	cols := []types.Column{
		{Name: "a", Type: types.TypeInt},
		{Name: "b", Type: types.TypeVarchar},
		{Name: "c", Type: types.TypeBoolean},
	}
	data, err := SerializeRow(cols, types.Row{types.IntValue(258), types.TextValue("hi"), types.BoolValue(true)})
	require.NoError(t, err)
	assert.Equal(t, []byte{0, 0, 1, 2, 0, 2, 'h', 'i', 1}, data)
}

func TestSerializeRowRejectsWrongKind(t *testing.T) {
	cols := []types.Column{{Name: "a", Type: types.TypeInt}}
	_, err := SerializeRow(cols, types.Row{types.TextValue("x")})
	assert.ErrorIs(t, err, ErrTypeMismatch)

	_, err = SerializeRow(cols, types.Row{})
	assert.Error(t, err)
}

func TestNullsReadBackAsZeroValues(t *testing.T) {
	se := newEngine(t)
	schema := productSchema()
	require.NoError(t, se.CreateTableFile(schema.Name))

	nulls := types.Row{types.IntValue(1), types.NullValue(), types.NullValue(), types.NullValue(), types.NullValue()}
	require.NoError(t, se.InsertRow(schema, nulls))

	rows, err := se.ReadAllRows(schema)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, types.Row{
		types.IntValue(1),
		types.TextValue(""),
		types.LongValue(0),
		types.BoolValue(false),
		types.DateValue(0),
	}, rows[0])
}

func TestInsertAndReadAll(t *testing.T) {
	se := newEngine(t)
	schema := productSchema()
	require.NoError(t, se.CreateTableFile(schema.Name))

	want := []types.Row{
		{types.IntValue(1), types.TextValue("Sugar"), types.LongValue(40), types.BoolValue(true), types.DateValue(1704067200000)},
		{types.IntValue(2), types.TextValue("Unga 2kg"), types.LongValue(-3), types.BoolValue(false), types.DateValue(0)},
	}
	for _, row := range want {
		require.NoError(t, se.InsertRow(schema, row))
	}

	got, err := se.ReadAllRows(schema)
	require.NoError(t, err)
	assert.Equal(t, want, got)

	// file name is derived from the lowercase table name
	_, err = os.Stat(se.TablePath("PRODUCTS"))
	assert.NoError(t, err)
	assert.Equal(t, "products.tbl", se.TablePath("Products")[len(se.DataDir)+1:])
}

func TestReadMissingFileIsEmpty(t *testing.T) {
	se := newEngine(t)
	rows, err := se.ReadAllRows(productSchema())
	require.NoError(t, err)
	assert.Empty(t, rows)
}

func TestReadPartialRowFails(t *testing.T) {
	se := newEngine(t)
	schema := productSchema()
	require.NoError(t, se.InsertRow(schema, types.Row{
		types.IntValue(1), types.TextValue("x"), types.LongValue(1), types.BoolValue(true), types.DateValue(5),
	}))

	// append half of a second row
	f, err := os.OpenFile(se.TablePath(schema.Name), os.O_APPEND|os.O_WRONLY, 0644)
	require.NoError(t, err)
	_, err = f.Write([]byte{0, 0, 0, 2, 0, 5, 'a'})
	require.NoError(t, err)
	require.NoError(t, f.Close())

	_, err = se.ReadAllRows(schema)
	require.Error(t, err)
	assert.ErrorIs(t, err, io.ErrUnexpectedEOF)
}

func TestDeserializeCleanEOF(t *testing.T) {
	_, err := DeserializeRow(bufio.NewReader(bytes.NewReader(nil)), productSchema().Columns)
	assert.Equal(t, io.EOF, err)
}

func TestTruncateAndRewrite(t *testing.T) {
	se := newEngine(t)
	schema := types.TableSchema{Name: "t", Columns: []types.Column{{Name: "n", Type: types.TypeInt}}}
	require.NoError(t, se.CreateTableFile("t"))
	for i := int32(0); i < 3; i++ {
		require.NoError(t, se.InsertRow(schema, types.Row{types.IntValue(i)}))
	}

	require.NoError(t, se.RewriteRows(schema, []types.Row{{types.IntValue(9)}}))
	rows, err := se.ReadAllRows(schema)
	require.NoError(t, err)
	assert.Equal(t, []types.Row{{types.IntValue(9)}}, rows)

	require.NoError(t, se.TruncateTable("t"))
	size, err := se.FileSize("t")
	require.NoError(t, err)
	assert.Zero(t, size)

	require.NoError(t, se.DeleteTableFile("t"))
	require.NoError(t, se.DeleteTableFile("t"))
	_, err = os.Stat(se.TablePath("t"))
	assert.True(t, os.IsNotExist(err))
}
