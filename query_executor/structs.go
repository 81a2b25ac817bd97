package executor

import (
	storageengine "DukaDB/storage_engine"
	indexmanager "DukaDB/storage_engine/access/index_manager"
	"DukaDB/types"
	"log/slog"
)

// Engine runs one SQL statement at a time against a data directory.
// It owns the catalog, the table files and the in-memory indexes.
type Engine struct {
	storageEngine *storageengine.StorageEngine
	indexManager  *indexmanager.IndexManager
	stmts         *stmtCache
	logger        *slog.Logger
}

// Result is the outcome of one statement. Failures only set Message.
type Result struct {
	Success      bool        `json:"success"`
	Message      string      `json:"message"`
	ColumnNames  []string    `json:"columnNames,omitempty"`
	Rows         []types.Row `json:"rows,omitempty"`
	RowsAffected int         `json:"rowsAffected"`
}

type options struct {
	logger    *slog.Logger
	cacheSize int64
}

type Option func(*options)

// WithLogger sets the engine's logger. The default discards everything.
func WithLogger(l *slog.Logger) Option {
	return func(o *options) { o.logger = l }
}

// WithStatementCacheSize bounds the number of parsed statements kept.
// Zero or less disables the cache.
func WithStatementCacheSize(n int64) Option {
	return func(o *options) { o.cacheSize = n }
}
