package storageengine

import (
	"DukaDB/storage_engine/catalog"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

/*
The main file of storage engine, that initializes the storage engine and the catalog manager.
Every table lives in its own <data dir>/<lowercase name>.tbl file, next to schema.meta.
No file handle outlives a single call.
*/

func NewStorageEngine(dataDir string) (*StorageEngine, error) {
	if err := os.MkdirAll(dataDir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create data dir: %w", err)
	}

	catalogManager := catalog.NewCatalogManager(dataDir)
	if err := catalogManager.Load(); err != nil {
		return nil, fmt.Errorf("failed to load catalog: %w", err)
	}

	return &StorageEngine{
		DataDir:        dataDir,
		CatalogManager: catalogManager,
	}, nil
}

func (se *StorageEngine) TablePath(tableName string) string {
	return filepath.Join(se.DataDir, strings.ToLower(tableName)+TableFileExt)
}

// FileSize reports the size of a table's row file, 0 if it is missing.
func (se *StorageEngine) FileSize(tableName string) (int64, error) {
	info, err := os.Stat(se.TablePath(tableName))
	if os.IsNotExist(err) {
		return 0, nil
	}
	if err != nil {
		return 0, err
	}
	return info.Size(), nil
}
