package executor

/*
This file is the entry point of the query engine.

 ============================================================================
 ARCHITECTURE OVERVIEW
 ============================================================================

 Engine.Execute(sql)
     ↓
     ├─→ statement cache / lexer + parser  - SQL text to AST
     │
     ├─→ CatalogManager  - table schemas, persisted to schema.meta
     │
     ├─→ StorageEngine   - one .tbl file per table, full scans only
     │
     └─→ IndexManager    - in-memory ordered indexes, fed by INSERT

 Statements run one at a time and every failure comes back as a Result
 with Success false; nothing is returned as an error or panic.
*/

import (
	"DukaDB/query_parser/parser"
	storageengine "DukaDB/storage_engine"
	indexmanager "DukaDB/storage_engine/access/index_manager"
	"DukaDB/types"
	"fmt"
	"log/slog"
	"time"
)

const defaultStatementCacheSize = 1024

// Open loads the catalog in dataDir, creating the directory if needed.
func Open(dataDir string, opts ...Option) (*Engine, error) {
	o := options{
		logger:    slog.New(slog.DiscardHandler),
		cacheSize: defaultStatementCacheSize,
	}
	for _, opt := range opts {
		opt(&o)
	}

	se, err := storageengine.NewStorageEngine(dataDir)
	if err != nil {
		return nil, err
	}
	stmts, err := newStmtCache(o.cacheSize)
	if err != nil {
		return nil, err
	}

	o.logger.Debug("engine opened", "dir", dataDir, "tables", len(se.CatalogManager.AllTables()))
	return &Engine{
		storageEngine: se,
		indexManager:  indexmanager.NewIndexManager(),
		stmts:         stmts,
		logger:        o.logger,
	}, nil
}

// Execute parses and runs one statement.
func (e *Engine) Execute(sql string) (res *Result) {
	start := time.Now()
	defer func() {
		if r := recover(); r != nil {
			e.logger.Error("statement panicked", "sql", sql, "panic", r)
			res = &Result{Message: fmt.Sprintf("Execution error: %v", r)}
		}
	}()

	stmt, hit, err := e.stmts.parse(sql)
	if err != nil {
		e.logger.Debug("parse failed", "sql", sql, "err", err)
		return &Result{Message: "Error: " + err.Error()}
	}

	res, err = e.dispatch(stmt)
	if err != nil {
		e.logger.Debug("statement failed", "kind", fmt.Sprintf("%T", stmt), "err", err)
		return &Result{Message: failureMessage(err)}
	}
	e.logger.Debug("statement executed",
		"kind", fmt.Sprintf("%T", stmt),
		"cached", hit,
		"rows", len(res.Rows),
		"affected", res.RowsAffected,
		"took", time.Since(start))
	return res
}

func (e *Engine) dispatch(stmt parser.Statement) (*Result, error) {
	switch s := stmt.(type) {
	case *parser.CreateTableStmt:
		return e.ExecuteCreateTable(s)
	case *parser.DropTableStmt:
		return e.ExecuteDropTable(s)
	case *parser.CreateIndexStmt:
		return e.ExecuteCreateIndex(s)
	case *parser.InsertStmt:
		return e.ExecuteInsert(s)
	case *parser.SelectStmt:
		return e.ExecuteSelect(s)
	case *parser.UpdateStmt:
		return e.ExecuteUpdate(s)
	case *parser.DeleteStmt:
		return e.ExecuteDelete(s)
	}
	return nil, fmt.Errorf("unsupported statement %T", stmt)
}

// Tables lists table names in order.
func (e *Engine) Tables() []string {
	return e.storageEngine.CatalogManager.TableNames()
}

// Describe returns a table's schema, looked up ignoring case.
func (e *Engine) Describe(table string) (types.TableSchema, bool) {
	schema, err := e.storageEngine.CatalogManager.GetTable(table)
	return schema, err == nil
}

// RowCount scans a table and counts its rows.
func (e *Engine) RowCount(table string) (int, error) {
	schema, err := e.tableSchema(table)
	if err != nil {
		return 0, err
	}
	rows, err := e.storageEngine.ReadAllRows(schema)
	if err != nil {
		return 0, storageErr(err)
	}
	return len(rows), nil
}

// TableFileSize reports the size in bytes of a table's row file.
func (e *Engine) TableFileSize(table string) (int64, error) {
	return e.storageEngine.FileSize(table)
}

func (e *Engine) Indexes() *indexmanager.IndexManager {
	return e.indexManager
}

func (e *Engine) Close() error {
	e.stmts.close()
	return nil
}

func (e *Engine) tableSchema(name string) (types.TableSchema, error) {
	schema, err := e.storageEngine.CatalogManager.GetTable(name)
	if err != nil {
		return schema, schemaErr(err, "Table does not exist: %s", name)
	}
	return schema, nil
}

// persistCatalog rewrites schema.meta. Failures are logged and otherwise
// ignored; the in-memory catalog stays authoritative.
func (e *Engine) persistCatalog() {
	if err := e.storageEngine.CatalogManager.Save(); err != nil {
		e.logger.Warn("catalog not persisted", "err", err)
	}
}
