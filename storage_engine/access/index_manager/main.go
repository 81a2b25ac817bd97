package indexmanager

import (
	bplus "DukaDB/storage_engine/access/index_manager/bplustree"
	"DukaDB/types"
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/bits-and-blooms/bloom/v3"
)

/*
This file is the main file for Index Manager.
Indexes live in memory only. They start empty when created and grow only
through InsertIntoIndexes; updates and deletes on the table never reach them.
Each index keeps a bloom filter of its keys so point lookups for keys that
were never inserted skip the tree.
*/

var (
	ErrIndexExists     = errors.New("index already exists")
	ErrIndexNotFound   = errors.New("index not found")
	ErrColumnNotFound  = errors.New("column not found")
	ErrUniqueViolation = errors.New("duplicate key in unique index")
)

const (
	bloomExpectedKeys  = 10000
	bloomFalsePositive = 0.01
)

func NewIndexManager() *IndexManager {
	return &IndexManager{indexes: make(map[string]*Index)}
}

// CreateIndex registers an empty index on schema's column. Rows already in
// the table are not added.
func (im *IndexManager) CreateIndex(name string, schema types.TableSchema, column string, unique bool) (*Index, error) {
	if im.HasIndex(name) {
		return nil, fmt.Errorf("%w: %s", ErrIndexExists, name)
	}
	pos := schema.ColumnIndex(column)
	if pos < 0 {
		return nil, fmt.Errorf("%w: %s", ErrColumnNotFound, column)
	}

	ix := &Index{
		Name:      name,
		Table:     schema.Name,
		Column:    schema.Columns[pos].Name,
		ColumnPos: pos,
		Unique:    unique,
		tree:      bplus.NewBPlusTree(nil),
		filter:    bloom.NewWithEstimates(bloomExpectedKeys, bloomFalsePositive),
	}
	im.indexes[strings.ToLower(name)] = ix
	return ix, nil
}

// InsertIntoIndexes adds row to every index on table. Null keys are not
// indexed. Unique indexes are all checked before any index is touched, so
// a conflict leaves every index unchanged.
func (im *IndexManager) InsertIntoIndexes(table string, row types.Row) error {
	targets := im.tableIndexes(table)

	for _, ix := range targets {
		key := row[ix.ColumnPos]
		if ix.Unique && !key.IsNull() && ix.contains(key) {
			return fmt.Errorf("%w: %s on %s.%s = %s", ErrUniqueViolation, ix.Name, ix.Table, ix.Column, key)
		}
	}
	// indexes keep their own copy of the row as inserted
	row = row.Clone()
	for _, ix := range targets {
		key := row[ix.ColumnPos]
		if key.IsNull() {
			continue
		}
		ix.tree.Insert(key, row)
		ix.filter.Add(key.KeyBytes())
	}
	return nil
}

// Search returns the rows indexed under key.
func (im *IndexManager) Search(name string, key types.Value) ([]types.Row, error) {
	ix, ok := im.Index(name)
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrIndexNotFound, name)
	}
	if key.IsNull() || !ix.filter.Test(key.KeyBytes()) {
		return nil, nil
	}
	return ix.tree.Search(key), nil
}

// Range returns the rows of every key in [lo, hi]. A null bound is open.
func (im *IndexManager) Range(name string, lo, hi types.Value) ([]types.Row, error) {
	ix, ok := im.Index(name)
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrIndexNotFound, name)
	}
	return ix.tree.Range(lo, hi), nil
}

// DropTableIndexes removes every index on table and returns their names.
func (im *IndexManager) DropTableIndexes(table string) []string {
	var dropped []string
	for _, ix := range im.tableIndexes(table) {
		delete(im.indexes, strings.ToLower(ix.Name))
		dropped = append(dropped, ix.Name)
	}
	return dropped
}

func (im *IndexManager) DropIndex(name string) error {
	if !im.HasIndex(name) {
		return fmt.Errorf("%w: %s", ErrIndexNotFound, name)
	}
	delete(im.indexes, strings.ToLower(name))
	return nil
}

func (im *IndexManager) HasIndex(name string) bool {
	_, ok := im.indexes[strings.ToLower(name)]
	return ok
}

func (im *IndexManager) Index(name string) (*Index, bool) {
	ix, ok := im.indexes[strings.ToLower(name)]
	return ix, ok
}

// Indexes returns every index ordered by name.
func (im *IndexManager) Indexes() []*Index {
	out := make([]*Index, 0, len(im.indexes))
	for _, ix := range im.indexes {
		out = append(out, ix)
	}
	sort.Slice(out, func(i, j int) bool {
		return strings.ToLower(out[i].Name) < strings.ToLower(out[j].Name)
	})
	return out
}

func (im *IndexManager) tableIndexes(table string) []*Index {
	var out []*Index
	for _, ix := range im.Indexes() {
		if strings.EqualFold(ix.Table, table) {
			out = append(out, ix)
		}
	}
	return out
}

// Size is the number of distinct keys in the index.
func (ix *Index) Size() int {
	return ix.tree.Len()
}

// Entries is the number of row references in the index.
func (ix *Index) Entries() int {
	return ix.tree.Rows()
}

func (ix *Index) contains(key types.Value) bool {
	return ix.filter.Test(key.KeyBytes()) && ix.tree.Contains(key)
}
