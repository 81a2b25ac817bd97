package catalog

import (
	types "DukaDB/types"
)

// MetaFileName is the catalog file kept in the data directory.
const MetaFileName = "schema.meta"

type CatalogManager struct {
	dataDir      string
	tableSchemas map[string]types.TableSchema // keyed by lowercase table name
}
