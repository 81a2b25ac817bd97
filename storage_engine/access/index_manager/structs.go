package indexmanager

import (
	bplus "DukaDB/storage_engine/access/index_manager/bplustree"

	"github.com/bits-and-blooms/bloom/v3"
)

// Index maps the values of one column of one table to the rows that
// carried them when they were inserted.
type Index struct {
	Name      string
	Table     string
	Column    string
	ColumnPos int
	Unique    bool

	tree   *bplus.BPlusTree
	filter *bloom.BloomFilter // every key ever inserted
}

type IndexManager struct {
	indexes map[string]*Index // keyed by lowercase index name
}
