package catalog

import (
	types "DukaDB/types"
	"bufio"
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
)

/*
schema.meta layout, big-endian, no header:

	int32 tableCount
	per table:  str name, int32 columnCount
	per column: str name, str typeTag, int32 size, bool nullable, bool primaryKey, bool unique

str is a uint16 byte length followed by the UTF-8 bytes; bool is one byte.
*/

func (cm *CatalogManager) MetaPath() string {
	return filepath.Join(cm.dataDir, MetaFileName)
}

// Save rewrites schema.meta with every table in the catalog.
func (cm *CatalogManager) Save() error {
	if err := os.MkdirAll(cm.dataDir, 0755); err != nil {
		return fmt.Errorf("create data dir: %w", err)
	}
	f, err := os.Create(cm.MetaPath())
	if err != nil {
		return fmt.Errorf("create %s: %w", MetaFileName, err)
	}
	defer f.Close()

	w := bufio.NewWriter(f)
	if err := writeCatalog(w, cm.AllTables()); err != nil {
		return fmt.Errorf("write %s: %w", MetaFileName, err)
	}
	if err := w.Flush(); err != nil {
		return fmt.Errorf("flush %s: %w", MetaFileName, err)
	}
	return f.Close()
}

// Load replaces the in-memory catalog with the contents of schema.meta.
// A missing file leaves an empty catalog.
func (cm *CatalogManager) Load() error {
	f, err := os.Open(cm.MetaPath())
	if errors.Is(err, os.ErrNotExist) {
		cm.tableSchemas = make(map[string]types.TableSchema)
		return nil
	}
	if err != nil {
		return fmt.Errorf("open %s: %w", MetaFileName, err)
	}
	defer f.Close()

	tables, err := readCatalog(bufio.NewReader(f))
	if err != nil {
		return fmt.Errorf("read %s: %w", MetaFileName, err)
	}
	cm.tableSchemas = make(map[string]types.TableSchema, len(tables))
	for _, t := range tables {
		cm.tableSchemas[key(t.Name)] = t
	}
	return nil
}

func writeCatalog(w io.Writer, tables []types.TableSchema) error {
	if err := binary.Write(w, binary.BigEndian, int32(len(tables))); err != nil {
		return err
	}
	for _, t := range tables {
		if err := writeString(w, t.Name); err != nil {
			return err
		}
		if err := binary.Write(w, binary.BigEndian, int32(len(t.Columns))); err != nil {
			return err
		}
		for _, c := range t.Columns {
			if err := writeString(w, c.Name); err != nil {
				return err
			}
			if err := writeString(w, c.Type.String()); err != nil {
				return err
			}
			flags := []any{int32(c.Size), c.Nullable, c.PrimaryKey, c.Unique}
			for _, v := range flags {
				if err := binary.Write(w, binary.BigEndian, v); err != nil {
					return err
				}
			}
		}
	}
	return nil
}

func readCatalog(r io.Reader) ([]types.TableSchema, error) {
	var count int32
	if err := binary.Read(r, binary.BigEndian, &count); err != nil {
		return nil, fmt.Errorf("table count: %w", err)
	}
	if count < 0 {
		return nil, fmt.Errorf("negative table count %d", count)
	}

	// count comes from the file; grow as tables are actually read
	var tables []types.TableSchema
	for i := int32(0); i < count; i++ {
		name, err := readString(r)
		if err != nil {
			return nil, fmt.Errorf("table %d name: %w", i, err)
		}
		var ncols int32
		if err := binary.Read(r, binary.BigEndian, &ncols); err != nil {
			return nil, fmt.Errorf("table %s column count: %w", name, err)
		}

		schema := types.TableSchema{Name: name}
		for j := int32(0); j < ncols; j++ {
			col, err := readColumn(r)
			if err != nil {
				return nil, fmt.Errorf("table %s column %d: %w", name, j, err)
			}
			schema.Columns = append(schema.Columns, col)
		}
		tables = append(tables, schema)
	}
	return tables, nil
}

func readColumn(r io.Reader) (types.Column, error) {
	var col types.Column
	var err error
	if col.Name, err = readString(r); err != nil {
		return col, err
	}
	tag, err := readString(r)
	if err != nil {
		return col, err
	}
	if col.Type, err = types.ParseDataType(tag); err != nil {
		return col, err
	}

	var size int32
	if err := binary.Read(r, binary.BigEndian, &size); err != nil {
		return col, err
	}
	col.Size = int(size)
	for _, flag := range []*bool{&col.Nullable, &col.PrimaryKey, &col.Unique} {
		if err := binary.Read(r, binary.BigEndian, flag); err != nil {
			return col, err
		}
	}
	return col, nil
}

func writeString(w io.Writer, s string) error {
	if len(s) > 0xFFFF {
		return fmt.Errorf("string of %d bytes is too long", len(s))
	}
	if err := binary.Write(w, binary.BigEndian, uint16(len(s))); err != nil {
		return err
	}
	_, err := io.WriteString(w, s)
	return err
}

func readString(r io.Reader) (string, error) {
	var n uint16
	if err := binary.Read(r, binary.BigEndian, &n); err != nil {
		return "", err
	}
	buf := make([]byte, n)
	if _, err := io.ReadFull(r, buf); err != nil {
		return "", err
	}
	return string(buf), nil
}
