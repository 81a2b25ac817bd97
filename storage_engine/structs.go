package storageengine

import (
	"DukaDB/storage_engine/catalog"
)

// TableFileExt is the extension of per-table row files.
const TableFileExt = ".tbl"

type StorageEngine struct {
	CatalogManager *catalog.CatalogManager

	DataDir string
}
