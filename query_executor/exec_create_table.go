package executor

import (
	"DukaDB/query_parser/parser"
	indexmanager "DukaDB/storage_engine/access/index_manager"
	"DukaDB/types"
	"errors"
)

/*
This file contains the DDL statements: CREATE TABLE, DROP TABLE and CREATE INDEX.
Catalog changes are made in memory first and then written to schema.meta;
a failed write is only logged.
*/

func (e *Engine) ExecuteCreateTable(stmt *parser.CreateTableStmt) (*Result, error) {
	cm := e.storageEngine.CatalogManager
	if cm.TableExists(stmt.TableName) {
		return nil, schemaErr(nil, "Table already exists: %s", stmt.TableName)
	}

	schema, err := buildSchema(stmt)
	if err != nil {
		return nil, err
	}
	if err := cm.AddTable(schema); err != nil {
		return nil, schemaErr(err, "Table already exists: %s", stmt.TableName)
	}
	if err := e.storageEngine.CreateTableFile(schema.Name); err != nil {
		return nil, storageErr(err)
	}
	e.persistCatalog()

	return &Result{Success: true, Message: "Table created: " + stmt.TableName}, nil
}

func buildSchema(stmt *parser.CreateTableStmt) (types.TableSchema, error) {
	schema := types.TableSchema{Name: stmt.TableName}
	for _, def := range stmt.Columns {
		if schema.ColumnIndex(def.Name) >= 0 {
			return schema, schemaErr(nil, "Duplicate column: %s", def.Name)
		}
		typ, err := types.ParseDataType(def.Type)
		if err != nil {
			return schema, err
		}

		col := types.Column{
			Name:       def.Name,
			Type:       typ,
			Size:       typ.DefaultSize(),
			PrimaryKey: def.PrimaryKey,
			Unique:     def.Unique,
			Nullable:   !def.NotNull,
		}
		// only the text type takes its width from the declaration
		if typ == types.TypeVarchar && def.Size != nil {
			col.Size = *def.Size
		}
		schema.Columns = append(schema.Columns, col)
	}
	return schema, nil
}

func (e *Engine) ExecuteDropTable(stmt *parser.DropTableStmt) (*Result, error) {
	cm := e.storageEngine.CatalogManager
	if err := cm.DropTable(stmt.TableName); err != nil {
		return nil, schemaErr(err, "Table does not exist: %s", stmt.TableName)
	}
	if err := e.storageEngine.DeleteTableFile(stmt.TableName); err != nil {
		return nil, storageErr(err)
	}
	dropped := e.indexManager.DropTableIndexes(stmt.TableName)
	if len(dropped) > 0 {
		e.logger.Debug("indexes dropped with table", "table", stmt.TableName, "indexes", dropped)
	}
	e.persistCatalog()

	return &Result{Success: true, Message: "Table dropped: " + stmt.TableName}, nil
}

// ExecuteCreateIndex registers an empty index. Existing rows are not
// added; only rows inserted afterwards are.
func (e *Engine) ExecuteCreateIndex(stmt *parser.CreateIndexStmt) (*Result, error) {
	schema, err := e.tableSchema(stmt.TableName)
	if err != nil {
		return nil, err
	}

	_, err = e.indexManager.CreateIndex(stmt.IndexName, schema, stmt.Column, stmt.Unique)
	switch {
	case errors.Is(err, indexmanager.ErrIndexExists):
		return nil, schemaErr(err, "Index already exists: %s", stmt.IndexName)
	case errors.Is(err, indexmanager.ErrColumnNotFound):
		return nil, schemaErr(err, "Column not found: %s", stmt.Column)
	case err != nil:
		return nil, err
	}

	return &Result{Success: true, Message: "Index created: " + stmt.IndexName}, nil
}
