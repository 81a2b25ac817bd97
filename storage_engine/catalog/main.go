package catalog

import (
	types "DukaDB/types"
	"errors"
	"fmt"
	"sort"
	"strings"
)

/*
This file is the main access of Catalog Manager
Catalog manager holds the schema of every table in memory, keyed by the
lowercase table name, and persists the whole set to schema.meta
(see persistence.go). Callers decide when to persist.
*/

var (
	ErrTableExists   = errors.New("table already exists")
	ErrTableNotFound = errors.New("table does not exist")
)

func NewCatalogManager(dataDir string) *CatalogManager {
	return &CatalogManager{
		dataDir:      dataDir,
		tableSchemas: make(map[string]types.TableSchema),
	}
}

func key(name string) string {
	return strings.ToLower(name)
}

func (cm *CatalogManager) TableExists(name string) bool {
	_, exists := cm.tableSchemas[key(name)]
	return exists
}

func (cm *CatalogManager) AddTable(schema types.TableSchema) error {
	if cm.TableExists(schema.Name) {
		return fmt.Errorf("%w: %s", ErrTableExists, schema.Name)
	}
	cm.tableSchemas[key(schema.Name)] = schema
	return nil
}

func (cm *CatalogManager) GetTable(name string) (types.TableSchema, error) {
	schema, ok := cm.tableSchemas[key(name)]
	if !ok {
		return types.TableSchema{}, fmt.Errorf("%w: %s", ErrTableNotFound, name)
	}
	return schema, nil
}

func (cm *CatalogManager) DropTable(name string) error {
	if !cm.TableExists(name) {
		return fmt.Errorf("%w: %s", ErrTableNotFound, name)
	}
	delete(cm.tableSchemas, key(name))
	return nil
}

// AllTables returns every schema ordered by table name.
func (cm *CatalogManager) AllTables() []types.TableSchema {
	out := make([]types.TableSchema, 0, len(cm.tableSchemas))
	for _, schema := range cm.tableSchemas {
		out = append(out, schema)
	}
	sort.Slice(out, func(i, j int) bool {
		return key(out[i].Name) < key(out[j].Name)
	})
	return out
}

func (cm *CatalogManager) TableNames() []string {
	tables := cm.AllTables()
	names := make([]string, len(tables))
	for i, t := range tables {
		names[i] = t.Name
	}
	return names
}
