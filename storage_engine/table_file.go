package storageengine

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"

	"DukaDB/types"
)

// CreateTableFile creates an empty row file unless one already exists.
func (se *StorageEngine) CreateTableFile(tableName string) error {
	f, err := os.OpenFile(se.TablePath(tableName), os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return fmt.Errorf("create table file %s: %w", tableName, err)
	}
	return f.Close()
}

// InsertRow appends one encoded row to the table file.
func (se *StorageEngine) InsertRow(schema types.TableSchema, row types.Row) error {
	data, err := SerializeRow(schema.Columns, row)
	if err != nil {
		return fmt.Errorf("serialize row for %s: %w", schema.Name, err)
	}

	f, err := os.OpenFile(se.TablePath(schema.Name), os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return fmt.Errorf("open table file %s: %w", schema.Name, err)
	}
	if _, err := f.Write(data); err != nil {
		f.Close()
		return fmt.Errorf("append row to %s: %w", schema.Name, err)
	}
	return f.Close()
}

// ReadAllRows decodes every row of the table using its current columns.
// A missing file reads as an empty table. Running out of data between two
// rows ends the scan; running out inside a row is an error.
func (se *StorageEngine) ReadAllRows(schema types.TableSchema) ([]types.Row, error) {
	f, err := os.Open(se.TablePath(schema.Name))
	if errors.Is(err, os.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("open table file %s: %w", schema.Name, err)
	}
	defer f.Close()

	if len(schema.Columns) == 0 {
		return nil, nil
	}

	r := bufio.NewReader(f)
	var rows []types.Row
	for {
		row, err := DeserializeRow(r, schema.Columns)
		if err == io.EOF {
			return rows, nil
		}
		if err != nil {
			return nil, fmt.Errorf("read row %d of %s: %w", len(rows), schema.Name, err)
		}
		rows = append(rows, row)
	}
}

// DeleteTableFile removes the row file; a missing file is not an error.
func (se *StorageEngine) DeleteTableFile(tableName string) error {
	err := os.Remove(se.TablePath(tableName))
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("delete table file %s: %w", tableName, err)
	}
	return nil
}

// TruncateTable empties an existing row file by deleting and recreating it.
func (se *StorageEngine) TruncateTable(tableName string) error {
	path := se.TablePath(tableName)
	if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
		return nil
	}
	if err := os.Remove(path); err != nil {
		return fmt.Errorf("truncate %s: %w", tableName, err)
	}
	return se.CreateTableFile(tableName)
}

// RewriteRows truncates the table and appends rows one at a time. It stops
// at the first failure, leaving only the rows written so far.
func (se *StorageEngine) RewriteRows(schema types.TableSchema, rows []types.Row) error {
	if err := se.TruncateTable(schema.Name); err != nil {
		return err
	}
	for _, row := range rows {
		if err := se.InsertRow(schema, row); err != nil {
			return err
		}
	}
	return nil
}
